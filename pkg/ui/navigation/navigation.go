// Package navigation renders the navbar, nav links, breadcrumbs, tabs,
// sidebar menus and dropdowns.
package navigation

import (
	"github.com/goliatone/go-uikit/pkg/markup"
	"github.com/goliatone/go-uikit/pkg/render"
	"github.com/goliatone/go-uikit/pkg/ui/behavior"
	"github.com/goliatone/go-uikit/pkg/ui/icon"
	"github.com/goliatone/go-uikit/pkg/ui/table"
)

// Item is an entry of a breadcrumb, tab bar, sidebar or dropdown. Key
// identifies the active tab or sidebar entry. Empty Icon, Badge and Count are
// omitted.
type Item struct {
	Key     string
	Label   string
	URL     string
	Icon    string
	Badge   string
	Count   string
	Divider bool
}

// Divider separates dropdown groups.
var Divider = Item{Divider: true}

// UserMenu is the right side of the navbar.
type UserMenu struct {
	Name    string
	Actions []markup.Node
}

// Navbar renders the top bar: brand, links and an optional user menu. brand
// and links are trusted fragments, typically built with Link.
func Navbar(brand markup.Node, links []markup.Node, user *UserMenu, attrs ...markup.Attr) markup.Node {
	left := markup.Tag("div", "flex",
		markup.Tag("div", "flex-shrink-0 flex items-center", brand),
	)
	if len(links) > 0 {
		left.Append(markup.Tag("div", "hidden sm:ml-10 sm:flex sm:space-x-8", links...))
	}
	bar := markup.Tag("div", "flex justify-between h-16", left)
	if user != nil {
		menu := markup.Tag("div", "flex items-center space-x-4")
		if user.Name != "" {
			menu.Append(markup.Tag("span", "text-sm text-gray-700", markup.Text(user.Name)))
		}
		menu.Append(user.Actions...)
		bar.Append(markup.Tag("div", "flex items-center", markup.Tag("div", "ml-3 relative", menu)))
	}
	return markup.Build("nav", markup.Classes("bg-white shadow-lg"), nil, attrs,
		markup.Tag("div", "max-w-7xl mx-auto px-4 sm:px-6 lg:px-8", bar),
	)
}

// Link renders a navbar link underlined when active. Active links carry
// aria-current="page".
func Link(text, url string, active bool, iconClass string, attrs ...markup.Attr) markup.Node {
	defaults := markup.Attrs{markup.A("href", url)}
	if active {
		defaults = append(defaults, markup.A("aria-current", "page"))
	}
	return markup.Build("a", []markup.ClassEntry{
		markup.C("inline-flex items-center px-1 pt-1 border-b-2 text-sm font-medium"),
		markup.Either(active, "border-blue-500 text-gray-900", "border-transparent text-gray-500 hover:border-gray-300 hover:text-gray-700"),
	}, defaults, attrs, icon.FA(iconClass, "mr-2"), markup.Text(text))
}

// Breadcrumb renders the trail of items. The last item is the current page
// and is not linked.
func Breadcrumb(ctx *render.Context, items []Item, attrs ...markup.Attr) markup.Node {
	if len(items) == 0 {
		return markup.Empty
	}
	list := markup.Tag("ol", "flex items-center space-x-2")
	for i, item := range items {
		if i == len(items)-1 {
			list.Append(markup.Tag("li", "flex items-center",
				markup.El("span", markup.Attrs{
					markup.A("class", "text-gray-700 font-medium"),
					markup.A("aria-current", "page"),
				}, markup.Text(item.Label)),
			))
			continue
		}
		list.Append(markup.Tag("li", "flex items-center",
			markup.El("a", markup.Attrs{markup.A("href", item.URL), markup.A("class", "hover:text-gray-700")}, markup.Text(item.Label)),
			icon.FA("fas fa-chevron-right", "mx-2 text-gray-400 text-xs"),
		))
	}
	return markup.Build("nav", markup.Classes("flex items-center space-x-2 text-sm text-gray-500"),
		markup.Attrs{markup.A("aria-label", ctx.Translate("navigation.breadcrumb", "Fil d'Ariane"))}, attrs, list)
}

// Tabs renders an underlined tab bar; the item whose Key equals active is
// highlighted.
func Tabs(items []Item, active string, attrs ...markup.Attr) markup.Node {
	links := make([]markup.Node, 0, len(items))
	for _, item := range items {
		on := item.Key == active
		link := markup.El("a", markup.Attrs{
			markup.A("href", item.URL),
			markup.A("class", markup.ClassList(
				markup.C("whitespace-nowrap py-4 px-1 border-b-2 font-medium text-sm"),
				markup.Either(on, "border-blue-500 text-blue-600", "border-transparent text-gray-500 hover:text-gray-700 hover:border-gray-300"),
			)),
			currentAttr(on),
		}, icon.FA(item.Icon, "mr-2"), markup.Text(item.Label))
		if item.Count != "" {
			link.Append(markup.Text(" "), markup.Tag("span", markup.ClassList(
				markup.C("ml-2 py-0.5 px-2 rounded-full text-xs font-medium"),
				markup.Either(on, "bg-blue-100 text-blue-600", "bg-gray-100 text-gray-600"),
			), markup.Text(item.Count)))
		}
		links = append(links, link)
	}
	return markup.Build("div", markup.Classes("border-b border-gray-200"), nil, attrs,
		markup.Tag("nav", "-mb-px flex space-x-8", links...),
	)
}

// Sidebar renders a vertical menu; the item whose Key equals active is
// highlighted.
func Sidebar(items []Item, active string, attrs ...markup.Attr) markup.Node {
	links := make([]markup.Node, 0, len(items))
	for _, item := range items {
		on := item.Key == active
		link := markup.El("a", markup.Attrs{
			markup.A("href", item.URL),
			markup.A("class", markup.ClassList(
				markup.C("group flex items-center px-3 py-2 text-sm font-medium rounded-md"),
				markup.Either(on, "bg-blue-100 text-blue-700", "text-gray-600 hover:bg-gray-50 hover:text-gray-900"),
			)),
			currentAttr(on),
		})
		if item.Icon != "" {
			link.Append(icon.FA(item.Icon, "mr-3", markup.ClassList(markup.Either(on, "text-blue-600", "text-gray-400 group-hover:text-gray-500"))))
		}
		link.Append(markup.Text(item.Label))
		if item.Badge != "" {
			link.Append(markup.Tag("span", "ml-auto inline-block py-0.5 px-3 text-xs rounded-full bg-gray-100 text-gray-600", markup.Text(item.Badge)))
		}
		links = append(links, link)
	}
	return markup.Build("nav", markup.Classes("space-y-1"), nil, attrs, links...)
}

// Dropdown renders a button toggling a menu of items. trigger is a trusted
// fragment. The toggle script is emitted once per context.
func Dropdown(ctx *render.Context, trigger markup.Node, items []Item, attrs ...markup.Attr) markup.Node {
	menuID := ctx.NextID("dropdown")
	entries := make([]markup.Node, 0, len(items))
	for _, item := range items {
		if item.Divider {
			entries = append(entries, markup.El("div", markup.Attrs{
				markup.A("class", "border-t border-gray-100"),
				markup.A("role", "separator"),
			}))
			continue
		}
		entries = append(entries, markup.El("a", markup.Attrs{
			markup.A("href", item.URL),
			markup.A("class", "block px-4 py-2 text-sm text-gray-700 hover:bg-gray-100"),
			markup.A("role", "menuitem"),
		}, icon.FA(item.Icon, "mr-2"), markup.Text(item.Label)))
	}

	el := markup.Build("div", markup.Classes("relative inline-block text-left"), nil, attrs,
		markup.Tag("div", "",
			markup.El("button", markup.Attrs{
				markup.A("type", "button"),
				markup.A("class", "inline-flex justify-center w-full rounded-md border border-gray-300 shadow-sm px-4 py-2 bg-white text-sm font-medium text-gray-700 hover:bg-gray-50 focus:outline-none"),
				markup.Flag(behavior.DropdownToggleAttr, true),
				markup.A("aria-haspopup", "true"),
				markup.A("aria-expanded", "false"),
				markup.A("aria-controls", menuID),
			}, trigger, markup.Text(" "), icon.FA("fas fa-chevron-down", "ml-2 -mr-1")),
			markup.El("div", markup.Attrs{
				markup.A("id", menuID),
				markup.A("class", "hidden origin-top-right absolute right-0 mt-2 w-56 rounded-md shadow-lg bg-white ring-1 ring-black ring-opacity-5 z-10"),
				markup.A("role", "menu"),
			}, markup.Tag("div", "py-1", entries...)),
		),
	)
	return markup.Fragment{el, ctx.Script(behavior.Flyout)}
}

// Pagination is table.Pagination.
func Pagination(ctx *render.Context, current, total int, baseURL string) markup.Node {
	return table.Pagination(ctx, current, total, baseURL)
}

func currentAttr(on bool) markup.Attr {
	if on {
		return markup.A("aria-current", "page")
	}
	return markup.Nil("aria-current")
}
