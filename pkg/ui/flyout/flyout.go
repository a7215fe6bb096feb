// Package flyout renders menus that open below a trigger button: simple
// lists, described entries, mega menus, icon grids and menus with a footer.
//
// Every menu gets a panel id from the render context. The trigger carries
// aria-controls and aria-expanded, and the toggle script is emitted once per
// context.
package flyout

import (
	"github.com/goliatone/go-uikit/pkg/markup"
	"github.com/goliatone/go-uikit/pkg/render"
	"github.com/goliatone/go-uikit/pkg/ui/behavior"
	"github.com/goliatone/go-uikit/pkg/ui/icon"
)

const (
	panelShell = "rounded-2xl bg-white shadow-xl ring-1 ring-black/5"

	// DefaultGridColumns is used by IconGrid for column counts outside 2..4.
	DefaultGridColumns = 3
)

// Item is a menu entry. Empty Icon, Description and Image are omitted.
// Divider entries only render in Simple.
type Item struct {
	Label       string
	URL         string
	Icon        string
	Description string
	Image       string
	Divider     bool
}

// Divider separates groups in a simple menu.
var Divider = Item{Divider: true}

// Section is a titled column of a mega menu.
type Section struct {
	Title string
	Items []Item
}

var megaColumns = map[int]string{
	1: "lg:grid-cols-1",
	2: "lg:grid-cols-2",
	3: "lg:grid-cols-3",
	4: "lg:grid-cols-4",
	5: "lg:grid-cols-5",
}

var gridLayouts = map[int]struct{ cols, width string }{
	2: {"grid-cols-2", "w-64"},
	3: {"grid-cols-3", "w-80"},
	4: {"grid-cols-4", "w-96"},
}

// Simple renders a compact list of links with optional icons and dividers.
func Simple(ctx *render.Context, trigger string, items []Item, attrs ...markup.Attr) markup.Node {
	list := markup.Tag("div", "py-2")
	for _, item := range items {
		if item.Divider {
			list.Append(markup.El("div", markup.Attrs{
				markup.A("class", "border-t border-gray-100 my-2"),
				markup.A("role", "separator"),
			}))
			continue
		}
		list.Append(markup.El("a", markup.Attrs{
			markup.A("href", item.URL),
			markup.A("class", "block px-4 py-2.5 text-sm text-gray-700 hover:bg-gray-50 hover:text-gray-900 transition-colors duration-150"),
		}, icon.FA(item.Icon, "mr-3 text-gray-400"), markup.Text(item.Label)))
	}
	return menu(ctx, "flyout", "relative inline-block text-left",
		"absolute left-0 z-50 mt-2 w-56 origin-top-left rounded-xl bg-white shadow-lg ring-1 ring-black/5 focus:outline-none",
		trigger, attrs, list)
}

// WithDescriptions renders entries with an icon tile and a description.
func WithDescriptions(ctx *render.Context, trigger string, items []Item, attrs ...markup.Attr) markup.Node {
	list := markup.Tag("div", "p-4 space-y-1")
	for _, item := range items {
		link := markup.El("a", markup.Attrs{
			markup.A("href", item.URL),
			markup.A("class", "group flex items-start p-3 rounded-xl hover:bg-gray-50 transition-colors duration-150"),
		})
		if item.Icon != "" {
			link.Append(markup.Tag("div", "flex-shrink-0 flex items-center justify-center h-10 w-10 rounded-lg bg-blue-50 text-blue-600 group-hover:bg-blue-100 transition-colors",
				icon.FA(item.Icon),
			))
		}
		link.Append(markup.Tag("div", "ml-4",
			markup.Tag("p", "text-sm font-semibold text-gray-900", markup.Text(item.Label)),
			description("text-sm text-gray-500 mt-1", item.Description),
		))
		list.Append(link)
	}
	return menu(ctx, "flyout", "relative inline-block text-left",
		"absolute left-0 z-50 mt-3 w-80 origin-top-left",
		trigger, attrs, markup.Tag("div", panelShell+" overflow-hidden", list))
}

// Mega renders a wide panel with one column per section and an optional
// featured column. featured may be nil.
func Mega(ctx *render.Context, trigger string, sections []Section, featured *Section, attrs ...markup.Attr) markup.Node {
	columns := make([]markup.Node, 0, len(sections)+1)
	for _, section := range sections {
		list := markup.Tag("ul", "space-y-3")
		for _, item := range section.Items {
			list.Append(markup.Tag("li", "",
				markup.El("a", markup.Attrs{
					markup.A("href", item.URL),
					markup.A("class", "group flex items-center text-sm text-gray-600 hover:text-blue-600 transition-colors"),
				}, icon.FA(item.Icon, "mr-3 text-gray-400 group-hover:text-blue-500"), markup.Text(item.Label)),
			))
		}
		columns = append(columns, markup.Tag("div", "p-6", sectionTitle(section.Title), list))
	}
	if featured != nil {
		column := markup.Tag("div", "bg-gray-50 p-6", sectionTitle(featured.Title))
		for _, item := range featured.Items {
			link := markup.El("a", markup.Attrs{
				markup.A("href", item.URL),
				markup.A("class", "group block p-3 -mx-3 rounded-xl hover:bg-white transition-colors mb-2"),
			})
			if item.Image != "" {
				link.Append(markup.El("img", markup.Attrs{
					markup.A("src", item.Image),
					markup.A("alt", ""),
					markup.A("class", "w-full h-32 object-cover rounded-lg mb-3"),
				}))
			}
			link.Append(
				markup.Tag("p", "text-sm font-semibold text-gray-900 group-hover:text-blue-600", markup.Text(item.Label)),
				description("text-xs text-gray-500 mt-1", item.Description),
			)
			column.Append(link)
		}
		columns = append(columns, column)
	}

	cols := megaColumns[min(max(len(columns), 1), len(megaColumns))]
	return menu(ctx, "mega", "relative",
		"absolute left-1/2 z-50 mt-3 w-screen max-w-4xl -translate-x-1/2 transform",
		trigger, attrs,
		markup.Tag("div", panelShell+" overflow-hidden",
			markup.Tag("div", "grid grid-cols-1 "+cols+" divide-x divide-gray-100", columns...),
		))
}

// IconGrid renders entries as icon tiles. cols is 2, 3 or 4; other values
// use DefaultGridColumns.
func IconGrid(ctx *render.Context, trigger string, items []Item, cols int, attrs ...markup.Attr) markup.Node {
	layout, ok := gridLayouts[cols]
	if !ok {
		layout = gridLayouts[DefaultGridColumns]
	}
	grid := markup.Tag("div", "grid "+layout.cols+" gap-2")
	for _, item := range items {
		grid.Append(markup.El("a", markup.Attrs{
			markup.A("href", item.URL),
			markup.A("class", "flex flex-col items-center p-4 rounded-xl hover:bg-gray-50 transition-colors text-center"),
		},
			markup.Tag("div", "w-10 h-10 rounded-lg bg-blue-50 flex items-center justify-center mb-2", icon.FA(item.Icon, "text-blue-600")),
			markup.Tag("span", "text-xs font-medium text-gray-700", markup.Text(item.Label)),
		))
	}
	return menu(ctx, "flyout-grid", "relative inline-block text-left",
		"absolute left-0 z-50 mt-3 "+layout.width+" origin-top-left",
		trigger, attrs, markup.Tag("div", panelShell+" p-4", grid))
}

// WithFooter renders described entries above a shaded bar of footer links.
func WithFooter(ctx *render.Context, trigger string, items []Item, footer []Item, attrs ...markup.Attr) markup.Node {
	list := markup.Tag("div", "p-3 space-y-1")
	for _, item := range items {
		list.Append(markup.El("a", markup.Attrs{
			markup.A("href", item.URL),
			markup.A("class", "group flex items-start p-3 rounded-xl hover:bg-gray-50 transition-colors"),
		},
			icon.FA(item.Icon, "mr-3 text-gray-400 group-hover:text-blue-500 mt-0.5"),
			markup.Tag("div", "",
				markup.Tag("p", "text-sm font-semibold text-gray-900", markup.Text(item.Label)),
				description("text-xs text-gray-500 mt-0.5", item.Description),
			),
		))
	}
	bar := markup.Tag("div", "bg-gray-50 px-4 py-3 border-t border-gray-100")
	for _, link := range footer {
		bar.Append(markup.El("a", markup.Attrs{
			markup.A("href", link.URL),
			markup.A("class", "flex items-center text-sm font-medium text-blue-600 hover:text-blue-700"),
		}, markup.Text(link.Label), icon.FA("fas fa-arrow-right", "ml-2 text-xs")))
	}
	return menu(ctx, "flyout-footer", "relative inline-block text-left",
		"absolute left-0 z-50 mt-3 w-72 origin-top-left",
		trigger, attrs, markup.Tag("div", panelShell+" overflow-hidden", list, bar))
}

// menu wraps a panel with its trigger button.
func menu(ctx *render.Context, prefix, rootClass, panelClass, trigger string, attrs markup.Attrs, content markup.Node) markup.Node {
	panelID := ctx.NextID(prefix)
	el := markup.Build("div", markup.Classes(rootClass), nil, attrs,
		markup.El("button", markup.Attrs{
			markup.A("type", "button"),
			markup.A("class", "inline-flex items-center px-4 py-2 text-sm font-semibold text-gray-700 hover:text-gray-900 transition-colors duration-200"),
			markup.Flag(behavior.FlyoutToggleAttr, true),
			markup.A("aria-expanded", "false"),
			markup.A("aria-controls", panelID),
		}, markup.Text(trigger), icon.FA("fas fa-chevron-down", "ml-2 text-xs text-gray-400")),
		markup.El("div", markup.Attrs{
			markup.A("id", panelID),
			markup.A("class", "hidden "+panelClass),
		}, content),
	)
	return markup.Fragment{el, ctx.Script(behavior.Flyout)}
}

func sectionTitle(title string) markup.Node {
	return markup.Tag("h3", "text-sm font-bold text-gray-900 uppercase tracking-wider mb-4", markup.Text(title))
}

func description(class, text string) markup.Node {
	if text == "" {
		return markup.Empty
	}
	return markup.Tag("p", class, markup.Text(text))
}
