// Package card renders content cards: plain and glass surfaces, statistics,
// features, pricing plans, projects, empty states and testimonials.
package card

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/goliatone/go-uikit/pkg/lookup"
	"github.com/goliatone/go-uikit/pkg/markup"
	"github.com/goliatone/go-uikit/pkg/render"
	"github.com/goliatone/go-uikit/pkg/ui/icon"
)

const (
	surface = "bg-white rounded-3xl shadow-sm border border-gray-100/50"
	lift    = "transition-all duration-500 hover:shadow-xl hover:shadow-gray-200/50"

	// DefaultColor is used for unknown stat and feature colors.
	DefaultColor = "blue"
	// DefaultProjectColor is the accent bar color of projects without one.
	DefaultProjectColor = "#3B82F6"
	// DescriptionLimit is the number of runes kept from a project description.
	DescriptionLimit = 120
	// TeamLimit is the number of team initials shown before the +N counter.
	TeamLimit = 3
)

// Palette groups the classes a colored card needs.
type Palette struct {
	Background string
	Text       string
	Shadow     string
	Ring       string
}

// StatPalettes maps stat card colors to their gradient, shadow and ring.
var StatPalettes = map[string]Palette{
	"blue":   {Background: "bg-gradient-to-br from-blue-500 via-blue-600 to-indigo-700", Shadow: "shadow-blue-500/30", Ring: "ring-blue-400/30"},
	"green":  {Background: "bg-gradient-to-br from-emerald-400 via-emerald-500 to-teal-600", Shadow: "shadow-emerald-500/30", Ring: "ring-emerald-400/30"},
	"red":    {Background: "bg-gradient-to-br from-red-500 via-red-600 to-rose-700", Shadow: "shadow-red-500/30", Ring: "ring-red-400/30"},
	"orange": {Background: "bg-gradient-to-br from-amber-400 via-orange-500 to-red-500", Shadow: "shadow-orange-500/30", Ring: "ring-orange-400/30"},
	"purple": {Background: "bg-gradient-to-br from-purple-500 via-purple-600 to-indigo-700", Shadow: "shadow-purple-500/30", Ring: "ring-purple-400/30"},
	"pink":   {Background: "bg-gradient-to-br from-pink-500 via-rose-500 to-red-500", Shadow: "shadow-pink-500/30", Ring: "ring-pink-400/30"},
	"cyan":   {Background: "bg-gradient-to-br from-cyan-400 via-cyan-500 to-blue-600", Shadow: "shadow-cyan-500/30", Ring: "ring-cyan-400/30"},
}

// FeaturePalettes maps feature card colors to the icon tile classes.
var FeaturePalettes = map[string]Palette{
	"blue":   {Background: "bg-blue-50", Text: "text-blue-600", Ring: "ring-blue-500/20"},
	"green":  {Background: "bg-emerald-50", Text: "text-emerald-600", Ring: "ring-emerald-500/20"},
	"purple": {Background: "bg-purple-50", Text: "text-purple-600", Ring: "ring-purple-500/20"},
	"pink":   {Background: "bg-pink-50", Text: "text-pink-600", Ring: "ring-pink-500/20"},
	"orange": {Background: "bg-orange-50", Text: "text-orange-600", Ring: "ring-orange-500/20"},
	"cyan":   {Background: "bg-cyan-50", Text: "text-cyan-600", Ring: "ring-cyan-500/20"},
}

func palette(table map[string]Palette, color string) Palette {
	if p, ok := table[strings.ToLower(color)]; ok {
		return p
	}
	return table[DefaultColor]
}

// Plan is one pricing tier.
type Plan struct {
	Name     string
	Price    string
	Period   string
	Features []string
	Popular  bool
	// Action is rendered below the feature list, typically a button.
	Action markup.Node
}

// Project is the data shown on a project card. Empty fields are omitted.
type Project struct {
	Title       string
	Description string
	Status      string
	Deadline    string
	// Color is the CSS color of the accent bar; hex or a named color.
	Color string
	Team  []string
}

// Basic renders content on a white card that lifts on hover.
func Basic(content markup.Node, attrs ...markup.Attr) markup.Node {
	return markup.Div(markup.Classes(surface, "p-6", lift, "hover:-translate-y-1"), attrs, content)
}

// WithHeader renders a card with a title bar and an optional footer. A nil or
// empty footer is omitted.
func WithHeader(title string, content, footer markup.Node, attrs ...markup.Attr) markup.Node {
	el := markup.Div(markup.Classes(surface, "overflow-hidden", lift), attrs,
		markup.Tag("div", "px-6 py-5 border-b border-gray-100 bg-gradient-to-r from-gray-50/80 via-white to-gray-50/80",
			markup.Tag("h3", "text-lg font-bold text-gray-900", markup.Text(title)),
		),
		markup.Tag("div", "p-6", content),
	)
	if !markup.IsEmpty(footer) {
		el.Append(markup.Tag("div", "px-6 py-4 bg-gradient-to-r from-gray-50/50 to-gray-100/50 border-t border-gray-100", footer))
	}
	return el
}

// Glass renders content on a translucent blurred card.
func Glass(content markup.Node, attrs ...markup.Attr) markup.Node {
	return markup.Div(markup.Classes(
		"backdrop-blur-xl bg-white/70 rounded-3xl shadow-lg border border-white/20 p-6 transition-all duration-500 hover:bg-white/80 hover:shadow-xl",
	), attrs, content)
}

// Stat renders a gradient statistic card. trend is shown with an up arrow when
// it starts with "+" and a down arrow otherwise; empty trend and icon are
// omitted.
func Stat(label, value, iconClass, color, trend string, attrs ...markup.Attr) markup.Node {
	p := palette(StatPalettes, color)
	figures := markup.Tag("div", "",
		markup.Tag("p", "text-sm font-medium text-white/80", markup.Text(label)),
		markup.Tag("p", "text-4xl font-bold text-white mt-2 tracking-tight", markup.Text(value)),
	)
	if trend != "" {
		up := strings.HasPrefix(trend, "+")
		figures.Append(markup.Div([]markup.ClassEntry{
			markup.C("flex items-center mt-2"),
			markup.Either(up, "text-emerald-200", "text-red-200"),
		}, nil,
			icon.Trend(up, "w-4 h-4 mr-1"),
			markup.Tag("span", "text-sm font-medium", markup.Text(trend)),
		))
	}
	row := markup.Tag("div", "flex items-center justify-between", figures)
	if iconClass != "" {
		row.Append(markup.Tag("div", "bg-white/20 rounded-2xl p-4 backdrop-blur-sm ring-1 "+p.Ring,
			icon.FA(iconClass, "text-white text-2xl"),
		))
	}
	return markup.Div(markup.Classes(
		p.Background, p.Shadow,
		"rounded-3xl shadow-xl p-6 transition-all duration-500 hover:shadow-2xl hover:-translate-y-1 hover:scale-[1.02]",
	), attrs, row)
}

// Feature renders an icon tile followed by a title and description.
func Feature(title, description, iconClass, color string, attrs ...markup.Attr) markup.Node {
	p := palette(FeaturePalettes, color)
	return markup.Div(markup.Classes(surface, "p-8", lift, "hover:-translate-y-1 group"), attrs,
		markup.Tag("div", markup.ClassList(
			markup.C(p.Background),
			markup.C("rounded-2xl p-4 w-fit ring-1"),
			markup.C(p.Ring),
			markup.C("mb-6 group-hover:scale-110 transition-transform duration-300"),
		), icon.FA(iconClass, p.Text, "text-2xl")),
		markup.Tag("h3", "text-xl font-bold text-gray-900 mb-3", markup.Text(title)),
		markup.Tag("p", "text-gray-500 leading-relaxed", markup.Text(description)),
	)
}

// Pricing renders a plan. The popular plan is highlighted and labelled with
// the card.pricing.popular message.
func Pricing(ctx *render.Context, plan Plan, attrs ...markup.Attr) markup.Node {
	pop := plan.Popular
	base := surface + " p-8 " + lift + " hover:-translate-y-1"
	if pop {
		base = "bg-gradient-to-br from-blue-600 via-blue-700 to-indigo-800 text-white rounded-3xl shadow-xl shadow-blue-500/30 p-8 transition-all duration-500 hover:shadow-2xl hover:-translate-y-2 ring-4 ring-blue-500/20"
	}
	el := markup.Div(markup.Classes(base), attrs)
	if pop {
		el.Append(markup.Tag("div", "bg-white/20 backdrop-blur-sm text-white text-xs font-bold px-3 py-1 rounded-full w-fit mb-6",
			markup.Text(ctx.Translate("card.pricing.popular", "Plus populaire")),
		))
	}
	heading := markup.Either(pop, "text-white", "text-gray-900")
	features := make([]markup.Node, 0, len(plan.Features))
	for _, feature := range plan.Features {
		features = append(features, markup.Tag("li", "flex items-center",
			icon.Check(markup.ClassList(markup.C("w-5 h-5"), markup.Either(pop, "text-emerald-300", "text-emerald-500"), markup.C("mr-3 flex-shrink-0"))),
			markup.Tag("span", markup.ClassList(markup.Either(pop, "text-white/90", "text-gray-600")), markup.Text(feature)),
		))
	}
	el.Append(
		markup.Tag("h3", markup.ClassList(markup.C("text-xl font-bold"), heading, markup.C("mb-2")), markup.Text(plan.Name)),
		markup.Tag("div", "mb-6",
			markup.Tag("span", markup.ClassList(markup.C("text-5xl font-bold"), heading), markup.Text(plan.Price)),
			markup.Tag("span", markup.ClassList(markup.Either(pop, "text-white/70", "text-gray-500")), markup.Text("/"+plan.Period)),
		),
		markup.Tag("ul", "space-y-4 mb-8", features...),
	)
	if plan.Action != nil {
		el.Append(plan.Action)
	}
	return el
}

var cssColor = regexp.MustCompile(`^(#[0-9a-fA-F]{3,8}|[a-zA-Z]+)$`)

// ProjectCard renders a project summary: accent bar, status, title,
// truncated description, deadline and team initials.
func ProjectCard(p Project, attrs ...markup.Attr) markup.Node {
	color := strings.TrimSpace(p.Color)
	if !cssColor.MatchString(color) {
		color = DefaultProjectColor
	}
	body := markup.Tag("div", "p-6")
	if p.Status != "" {
		entry := lookup.Resolve(p.Status, lookup.ProjectStatusTable, lookup.ProjectStatusTable["pending"].Style)
		body.Append(markup.Tag("span", "inline-flex items-center text-xs font-semibold px-2.5 py-1 rounded-lg "+entry.Style+" mb-4",
			markup.Text(entry.Label),
		))
	}
	body.Append(markup.Tag("h3", "font-bold text-xl text-gray-900 mb-3 group-hover:text-blue-600 transition-colors", markup.Text(p.Title)))
	if p.Description != "" {
		body.Append(markup.Tag("p", "text-sm text-gray-500 mb-4 leading-relaxed", markup.Text(Truncate(p.Description, DescriptionLimit))))
	}

	meta := markup.Tag("div", "flex items-center justify-between pt-4 border-t border-gray-100")
	if p.Deadline != "" {
		meta.Append(markup.Tag("div", "flex items-center text-sm text-gray-400",
			icon.Calendar("w-4 h-4 mr-1.5"),
			markup.Tag("span", "", markup.Text(p.Deadline)),
		))
	}
	if len(p.Team) > 0 {
		meta.Append(team(p.Team))
	}
	body.Append(meta)

	return markup.Div(markup.Classes(surface, lift, "hover:-translate-y-1 group overflow-hidden"), attrs,
		markup.El("div", markup.Attrs{
			markup.A("class", "h-1.5 w-full"),
			markup.A("style", "background: linear-gradient(90deg, "+color+", "+color+"88)"),
		}),
		body,
	)
}

func team(members []string) markup.Node {
	avatars := markup.Tag("div", "flex -space-x-2")
	for i, member := range members {
		if i == TeamLimit {
			break
		}
		avatars.Append(markup.Tag("div",
			"w-7 h-7 rounded-full bg-gradient-to-br from-gray-200 to-gray-300 ring-2 ring-white flex items-center justify-center text-xs font-medium text-gray-600",
			markup.Text(Initial(member)),
		))
	}
	if extra := len(members) - TeamLimit; extra > 0 {
		avatars.Append(markup.Tag("div",
			"w-7 h-7 rounded-full bg-gray-100 ring-2 ring-white flex items-center justify-center text-xs font-medium text-gray-500",
			markup.Text("+"+strconv.Itoa(extra)),
		))
	}
	return avatars
}

// EmptyState renders a centered placeholder with an optional action.
func EmptyState(iconClass, title, message string, action markup.Node, attrs ...markup.Attr) markup.Node {
	el := markup.Div(markup.Classes("bg-gradient-to-b from-white to-gray-50/50 rounded-3xl shadow-sm border border-gray-100/50 p-12 text-center"), attrs,
		markup.Tag("div", "bg-gradient-to-br from-gray-100 to-gray-200 rounded-2xl w-20 h-20 flex items-center justify-center mx-auto mb-6",
			icon.FA(iconClass, "text-gray-400 text-3xl"),
		),
		markup.Tag("h3", "text-xl font-bold text-gray-900 mb-2", markup.Text(title)),
		markup.Tag("p", "text-gray-500 mb-8 max-w-sm mx-auto leading-relaxed", markup.Text(message)),
	)
	if action != nil {
		el.Append(action)
	}
	return el
}

// Testimonial renders a quote with its author. Without an avatar URL the
// author's initial is shown instead.
func Testimonial(content, author, role, avatar string, attrs ...markup.Attr) markup.Node {
	var portrait markup.Node
	if avatar != "" {
		portrait = markup.El("img", markup.Attrs{
			markup.A("src", avatar),
			markup.A("alt", author),
			markup.A("class", "w-12 h-12 rounded-full ring-2 ring-gray-100"),
		})
	} else {
		portrait = markup.Tag("div", "w-12 h-12 rounded-full bg-gradient-to-br from-blue-500 to-indigo-600 flex items-center justify-center text-white font-bold",
			markup.Text(Initial(author)),
		)
	}
	return markup.Div(markup.Classes(surface, "p-8", lift), attrs,
		icon.Quote("w-10 h-10 text-blue-100 mb-4"),
		markup.Tag("p", "text-gray-600 leading-relaxed mb-6", markup.Text(content)),
		markup.Tag("div", "flex items-center",
			portrait,
			markup.Tag("div", "ml-4",
				markup.Tag("p", "font-semibold text-gray-900", markup.Text(author)),
				markup.Tag("p", "text-sm text-gray-500", markup.Text(role)),
			),
		),
	)
}

// Truncate keeps the first limit runes of s and appends "..." when s was
// longer. A negative limit counts as zero.
func Truncate(s string, limit int) string {
	limit = max(limit, 0)
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit]) + "..."
}

// Initial returns the first rune of s, or "" for an empty string.
func Initial(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(s)
	return string(r)
}
