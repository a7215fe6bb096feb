package showcase

import (
	"time"

	"github.com/goliatone/go-uikit/pkg/markup"
	"github.com/goliatone/go-uikit/pkg/render"
	"github.com/goliatone/go-uikit/pkg/ui/alert"
	"github.com/goliatone/go-uikit/pkg/ui/badge"
	"github.com/goliatone/go-uikit/pkg/ui/banner"
	"github.com/goliatone/go-uikit/pkg/ui/button"
	"github.com/goliatone/go-uikit/pkg/ui/card"
	"github.com/goliatone/go-uikit/pkg/ui/flyout"
	"github.com/goliatone/go-uikit/pkg/ui/footer"
	"github.com/goliatone/go-uikit/pkg/ui/form"
	"github.com/goliatone/go-uikit/pkg/ui/header"
	"github.com/goliatone/go-uikit/pkg/ui/navigation"
	"github.com/goliatone/go-uikit/pkg/ui/table"
)

// LaunchDate is the fixed end of the countdown demo.
var LaunchDate = time.Date(2030, time.January, 1, 9, 0, 0, 0, time.UTC)

func node(fn func(ctx *render.Context) markup.Node) render.Component {
	return func(ctx *render.Context) (markup.Node, error) {
		return fn(ctx), nil
	}
}

func row(nodes ...markup.Node) markup.Node {
	return markup.Tag("div", "flex gap-3 flex-wrap items-center", nodes...)
}

func stack(nodes ...markup.Node) markup.Node {
	return markup.Tag("div", "space-y-4", nodes...)
}

var demos = []render.Definition{
	{
		Name: "flyout.menus", Family: FamilyFlyout,
		Description: "Simple, described and icon grid flyout menus",
		Render: node(func(ctx *render.Context) markup.Node {
			return row(
				flyout.Simple(ctx, "Menu simple", []flyout.Item{
					{Label: "Option 1", URL: "#", Icon: "fas fa-home"},
					{Label: "Option 2", URL: "#", Icon: "fas fa-cog"},
					flyout.Divider,
					{Label: "Option 3", URL: "#", Icon: "fas fa-sign-out-alt"},
				}),
				flyout.WithDescriptions(ctx, "Avec descriptions", []flyout.Item{
					{Label: "Analytics", Description: "Analysez vos données", URL: "#", Icon: "fas fa-chart-bar"},
					{Label: "Reports", Description: "Générez des rapports", URL: "#", Icon: "fas fa-file-alt"},
				}),
				flyout.IconGrid(ctx, "Applications", []flyout.Item{
					{Label: "Mail", URL: "#", Icon: "fas fa-envelope"},
					{Label: "Agenda", URL: "#", Icon: "fas fa-calendar"},
					{Label: "Fichiers", URL: "#", Icon: "fas fa-folder"},
				}, 3),
			)
		}),
	},
	{
		Name: "flyout.mega", Family: FamilyFlyout,
		Description: "Mega menu with a featured column",
		Render: node(func(ctx *render.Context) markup.Node {
			return flyout.Mega(ctx, "Solutions", []flyout.Section{
				{Title: "Produit", Items: []flyout.Item{{Label: "Fonctionnalités", URL: "#", Icon: "fas fa-star"}, {Label: "Tarifs", URL: "#", Icon: "fas fa-tag"}}},
				{Title: "Ressources", Items: []flyout.Item{{Label: "Documentation", URL: "#", Icon: "fas fa-book"}}},
			}, &flyout.Section{Title: "Nouveau", Items: []flyout.Item{{Label: "Version 2.0", URL: "#", Description: "Découvrez les nouveautés"}}})
		}),
	},
	{
		Name: "button.variants", Family: FamilyButton,
		Description: "Solid variants, icon buttons and outlines",
		Render: node(func(ctx *render.Context) markup.Node {
			with := button.WithContext(ctx)
			return stack(
				row(
					button.Primary("Primary", with),
					button.Secondary("Secondary", with),
					button.Success("Success", with),
					button.Danger("Danger", with),
					button.Warning("Warning", with),
					button.Info("Info", with),
				),
				row(
					button.WithIcon("Enregistrer", "fas fa-save", "primary", with),
					button.WithIcon("Supprimer", "fas fa-trash", "danger", with),
					button.Outline("Outline", "blue", with),
				),
			)
		}),
	},
	{
		Name: "alert.types", Family: FamilyAlert,
		Description: "Success, error, warning and info alerts",
		Render: node(func(ctx *render.Context) markup.Node {
			return stack(
				alert.Success(ctx, "Opération réussie !", true),
				alert.Error(ctx, "Une erreur est survenue.", false),
				alert.Warning(ctx, "Attention, vérifiez vos données.", false),
				alert.Info(ctx, "Information importante.", false),
			)
		}),
	},
	{
		Name: "badge.variants", Family: FamilyBadge,
		Description: "Color variants",
		Render: node(func(*render.Context) markup.Node {
			return badge.Group(
				badge.Primary("Primary"),
				badge.Success("Success"),
				badge.Danger("Danger"),
				badge.Warning("Warning"),
				badge.Info("Info"),
			)
		}),
	},
	{
		Name: "badge.mappings", Family: FamilyBadge,
		Description: "Status and priority badges resolved from lookup tables",
		Render: node(func(ctx *render.Context) markup.Node {
			return badge.Group(
				badge.Status(ctx, "active", ""),
				badge.Status(ctx, "pending", ""),
				badge.Status(ctx, "completed", ""),
				badge.Status(ctx, "in_progress", ""),
				badge.Status(ctx, "cancelled", ""),
				badge.Priority(ctx, "low", ""),
				badge.Priority(ctx, "medium", ""),
				badge.Priority(ctx, "high", ""),
				badge.Priority(ctx, "urgent", ""),
			)
		}),
	},
	{
		Name: "card.stats", Family: FamilyCard,
		Description: "Statistic cards",
		Render: node(func(*render.Context) markup.Node {
			return markup.Tag("div", "grid md:grid-cols-3 gap-4",
				card.Stat("Total projets", "42", "fas fa-folder", "blue", "+12%"),
				card.Stat("Revenus", "12,500 €", "fas fa-euro-sign", "green", "+4%"),
				card.Stat("Erreurs", "3", "fas fa-exclamation-triangle", "red", "-2"),
			)
		}),
	},
	{
		Name: "card.pricing", Family: FamilyCard,
		Description: "Pricing plans",
		Render: node(func(ctx *render.Context) markup.Node {
			return markup.Tag("div", "grid md:grid-cols-2 gap-6",
				card.Pricing(ctx, card.Plan{Name: "Starter", Price: "0 €", Period: "/mois", Features: []string{"1 projet", "Support communautaire"}}),
				card.Pricing(ctx, card.Plan{
					Name: "Pro", Price: "29 €", Period: "/mois", Popular: true,
					Features: []string{"Projets illimités", "Support prioritaire"},
					Action:   button.Primary("Choisir", button.WithContext(ctx)),
				}),
			)
		}),
	},
	{
		Name: "card.project", Family: FamilyCard,
		Description: "Project card with team initials",
		Render: node(func(*render.Context) markup.Node {
			return card.ProjectCard(card.Project{
				Title:       "Site e-commerce",
				Description: "Refonte complète de la boutique en ligne avec paiement intégré.",
				Status:      "active",
				Deadline:    "15/03/2025",
				Color:       "#8B5CF6",
				Team:        []string{"Alice", "Bruno", "Chloé", "David", "Emma"},
			})
		}),
	},
	{
		Name: "form.project", Family: FamilyForm,
		Description: "Project form with grid, select, date and checkbox",
		Render: node(func(ctx *render.Context) markup.Node {
			with := form.WithContext(ctx)
			fields := markup.El("form", markup.Attrs{markup.A("method", "POST"), markup.A("action", "#")},
				form.HiddenInputs(nil, form.CSRFToken("_csrf", "demo")),
				form.Input("title", "Titre du projet", with, form.Required(), form.WithAttrs(markup.A("placeholder", "Mon super projet"))),
				form.Textarea("description", "Description", with, form.WithAttrs(markup.Int("rows", 3), markup.A("placeholder", "Décrivez votre projet..."))),
				form.Grid(2,
					form.Select("priority", "Priorité", form.Choices("low", "Basse", "medium", "Moyenne", "high", "Haute"), "medium", with),
					form.Datetime("deadline", "Date limite", "date", with),
				),
				form.Checkbox("notifications", "Recevoir des notifications", true, with),
				markup.Tag("div", "flex justify-end space-x-4 pt-4 border-t",
					button.Secondary("Annuler", button.WithContext(ctx)),
					button.WithIcon("Créer", "fas fa-save", "primary", button.WithContext(ctx), button.WithAttrs(markup.A("type", "submit"))),
				),
			)
			return card.WithHeader("Nouveau projet", fields, nil)
		}),
	},
	{
		Name: "form.errors", Family: FamilyForm,
		Description: "Validation summary and field errors",
		Render: node(func(ctx *render.Context) markup.Node {
			mapped := form.MapErrors([]string{"email"}, map[string][]string{"/email": {"Adresse invalide"}})
			return stack(
				form.ErrorSummary(ctx, mapped.All("email")),
				form.Input("email", "Email", form.WithContext(ctx), form.WithValue("jean@"), form.WithError(mapped.Field("email")),
					form.WithAttrs(markup.A("type", "email"))),
			)
		}),
	},
	{
		Name: "navigation.trail", Family: FamilyNavigation,
		Description: "Breadcrumb and tabs",
		Render: node(func(ctx *render.Context) markup.Node {
			return stack(
				navigation.Breadcrumb(ctx, []navigation.Item{
					{Label: "Accueil", URL: "#"},
					{Label: "Projets", URL: "#"},
					{Label: "Configuration"},
				}),
				navigation.Tabs([]navigation.Item{
					{Key: "all", Label: "Toutes", URL: "#", Icon: "fas fa-list", Count: "42"},
					{Key: "active", Label: "Actives", URL: "#", Count: "8"},
					{Key: "completed", Label: "Terminées", URL: "#", Count: "34"},
				}, "all"),
			)
		}),
	},
	{
		Name: "navigation.dropdown", Family: FamilyNavigation,
		Description: "Dropdown menu",
		Render: node(func(ctx *render.Context) markup.Node {
			return navigation.Dropdown(ctx, markup.Text("Options"), []navigation.Item{
				{Label: "Modifier", URL: "#", Icon: "fas fa-edit"},
				navigation.Divider,
				{Label: "Supprimer", URL: "#", Icon: "fas fa-trash"},
			})
		}),
	},
	{
		Name: "table.projects", Family: FamilyTable,
		Description: "Striped table with badges and actions, plus pagination",
		Render: node(func(ctx *render.Context) markup.Node {
			actions := func(n int) markup.Node {
				buttons := []markup.Node{
					table.ActionButton("#", "fas fa-eye", "Voir", "blue"),
					table.ActionButton("#", "fas fa-edit", "Modifier", "green"),
					table.ActionButton("#", "fas fa-trash", "Supprimer", "red"),
				}
				return table.ActionsCell(buttons[:n]...)
			}
			rows := []table.Row{
				{markup.Text("Site e-commerce"), table.StatusCell(ctx, "in_progress", ""), table.PriorityCell(ctx, "high", ""), actions(3)},
				{markup.Text("Application mobile"), table.StatusCell(ctx, "pending", ""), table.PriorityCell(ctx, "medium", ""), actions(2)},
				{markup.Text("API REST"), table.StatusCell(ctx, "completed", ""), table.PriorityCell(ctx, "low", ""), actions(1)},
			}
			return markup.Fragment{
				table.Full(ctx, []string{"Projet", "Statut", "Priorité", "Actions"}, rows),
				table.Pagination(ctx, 1, 3, "?"),
			}
		}),
	},
	{
		Name: "table.empty", Family: FamilyTable,
		Description: "Placeholder row for a table without data",
		Render: node(func(ctx *render.Context) markup.Node {
			return table.Simple(ctx, []string{"Tâche", "Statut", "Priorité"}, nil)
		}),
	},
	{
		Name: "header.section", Family: FamilyHeader,
		Description: "Section and page headers",
		Render: node(func(ctx *render.Context) markup.Node {
			return stack(
				header.Section("Titre de section", "Description de la section"),
				header.PageWithBreadcrumb(ctx, "Paramètres", []navigation.Item{{Label: "Accueil", URL: "#"}, {Label: "Paramètres"}},
					button.Primary("Enregistrer", button.WithContext(ctx))),
			)
		}),
	},
	{
		Name: "header.hero", Family: FamilyHeader,
		Description: "Gradient hero",
		Render: node(func(ctx *render.Context) markup.Node {
			return header.Hero("Des interfaces élégantes", "Composants Tailwind prêts à l'emploi.",
				button.Render("glass", "Commencer", button.WithContext(ctx)))
		}),
	},
	{
		Name: "banner.alerts", Family: FamilyBanner,
		Description: "Alert banners",
		Render: node(func(ctx *render.Context) markup.Node {
			return stack(
				banner.Alert(ctx, "info", "Information importante", "", false),
				banner.Alert(ctx, "success", "Opération réussie", "", false),
				banner.Alert(ctx, "warning", "Attention requise", "", false),
				banner.Alert(ctx, "error", "Une erreur est survenue", "", true),
			)
		}),
	},
	{
		Name: "banner.campaigns", Family: FamilyBanner,
		Description: "Promo, countdown and cookie banners",
		Render: node(func(ctx *render.Context) markup.Node {
			return stack(
				banner.Promo(ctx, "Offre de lancement", "-30% sur l'abonnement annuel", banner.CTA{Text: "En profiter", URL: "#"}, true),
				banner.Countdown(ctx, "Lancement dans", LaunchDate, banner.CTA{Text: "S'inscrire", URL: "#"}),
				banner.Cookie(ctx, "Nous utilisons des cookies pour améliorer votre expérience.", "", ""),
			)
		}),
	},
	{
		Name: "footer.social", Family: FamilyFooter,
		Description: "Footer with social links",
		Render: node(func(*render.Context) markup.Node {
			return footer.WithSocial("© 2024 go-uikit", []footer.Social{
				{URL: "#", Icon: "fab fa-github", Label: "GitHub"},
				{URL: "#", Icon: "fab fa-twitter", Label: "Twitter"},
			})
		}),
	},
}
