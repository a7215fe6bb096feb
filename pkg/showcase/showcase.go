// Package showcase registers a demo of every component family and assembles
// them into a single preview document.
package showcase

import (
	"fmt"
	"slices"

	"github.com/goliatone/go-uikit/pkg/lookup"
	"github.com/goliatone/go-uikit/pkg/markup"
	"github.com/goliatone/go-uikit/pkg/page"
	"github.com/goliatone/go-uikit/pkg/render"
	"github.com/goliatone/go-uikit/pkg/ui/banner"
)

// Component families, in the order the document shows them.
const (
	FamilyFlyout     = "flyout"
	FamilyButton     = "button"
	FamilyAlert      = "alert"
	FamilyBadge      = "badge"
	FamilyCard       = "card"
	FamilyForm       = "form"
	FamilyNavigation = "navigation"
	FamilyTable      = "table"
	FamilyHeader     = "header"
	FamilyBanner     = "banner"
	FamilyFooter     = "footer"
)

// Families lists every family in display order.
var Families = []string{
	FamilyFlyout, FamilyButton, FamilyAlert, FamilyBadge, FamilyCard, FamilyForm,
	FamilyNavigation, FamilyTable, FamilyHeader, FamilyBanner, FamilyFooter,
}

// Title is the document title.
const Title = "go-uikit"

// Register adds every demo to reg.
func Register(reg *render.Registry) error {
	for _, def := range demos {
		if err := reg.Register(def); err != nil {
			return fmt.Errorf("showcase: %w", err)
		}
	}
	return nil
}

// NewRegistry returns a registry holding every demo.
func NewRegistry() (*render.Registry, error) {
	reg := render.NewRegistry()
	if err := Register(reg); err != nil {
		return nil, err
	}
	return reg, nil
}

// Document renders every registered demo into a page document: one section
// per family, framed by an announcement banner and the footer demos. ctx
// must be the context later passed to page.Renderer.Render.
func Document(ctx *render.Context, reg *render.Registry) (page.Document, error) {
	byFamily := make(map[string][]render.Definition)
	for _, def := range reg.Definitions() {
		byFamily[def.Family] = append(byFamily[def.Family], def)
	}

	content := markup.Tag("div", "max-w-6xl mx-auto px-4 py-8",
		markup.Tag("h1", "text-3xl font-bold text-gray-900 mb-8", markup.Text(Title)),
	)
	var closing []markup.Node
	for _, family := range orderedFamilies(byFamily) {
		nodes, err := renderFamily(ctx, reg, byFamily[family])
		if err != nil {
			return page.Document{}, err
		}
		if family == FamilyFooter {
			closing = append(closing, nodes...)
			continue
		}
		content.Append(Section(family, nodes...))
	}

	body := []markup.Node{banner.Announcement(ctx, "go-uikit : composants Tailwind pour Go", "", true), content}
	return page.Document{
		Title:     Title,
		BodyClass: "bg-gray-100",
		Body:      append(body, closing...),
	}, nil
}

// Section frames the demos of one family.
func Section(family string, demos ...markup.Node) markup.Node {
	return markup.El("section", markup.Attrs{
		markup.A("id", family),
		markup.A("class", "bg-white rounded-lg shadow p-6 mb-8"),
	},
		markup.Tag("h2", "text-xl font-bold mb-4", markup.Text(lookup.Capitalize(family))),
		markup.Tag("div", "space-y-6", demos...),
	)
}

func renderFamily(ctx *render.Context, reg *render.Registry, defs []render.Definition) ([]markup.Node, error) {
	nodes := make([]markup.Node, 0, len(defs))
	for _, def := range defs {
		node, err := reg.Render(ctx, def.Name)
		if err != nil {
			return nil, fmt.Errorf("showcase: %w", err)
		}
		nodes = append(nodes, markup.El("div", markup.Attrs{markup.A("data-demo", def.Name)}, node))
	}
	return nodes, nil
}

// orderedFamilies returns the known families first, then any family
// registered by callers, sorted by name.
func orderedFamilies(byFamily map[string][]render.Definition) []string {
	out := make([]string, 0, len(byFamily))
	known := make(map[string]bool, len(Families))
	for _, family := range Families {
		known[family] = true
		if len(byFamily[family]) > 0 {
			out = append(out, family)
		}
	}
	var extra []string
	for family := range byFamily {
		if !known[family] {
			extra = append(extra, family)
		}
	}
	slices.Sort(extra)
	return append(out, extra...)
}
