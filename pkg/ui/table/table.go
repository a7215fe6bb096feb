// Package table renders data tables, the usual cell helpers (status and
// priority badges, action buttons) and page navigation.
package table

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-uikit/pkg/lookup"
	"github.com/goliatone/go-uikit/pkg/markup"
	"github.com/goliatone/go-uikit/pkg/render"
	"github.com/goliatone/go-uikit/pkg/ui/badge"
	"github.com/goliatone/go-uikit/pkg/ui/icon"
)

const (
	containerBase = "bg-white rounded-2xl shadow-sm border border-gray-100 overflow-hidden"
	headerCell    = "px-6 py-4 text-left text-xs font-bold text-gray-600 uppercase tracking-wider"
	bodyCell      = "px-6 py-4 whitespace-nowrap text-sm text-gray-700"

	// DefaultActionColor is used for unknown action button colors.
	DefaultActionColor = "blue"
	// DefaultIconColor is used by IconCell for invalid color names.
	DefaultIconColor = "gray"
)

// ActionColors maps action button colors to their classes.
var ActionColors = lookup.Variants{
	"blue":   "text-blue-500 hover:text-blue-700 hover:bg-blue-50",
	"green":  "text-emerald-500 hover:text-emerald-700 hover:bg-emerald-50",
	"red":    "text-red-500 hover:text-red-700 hover:bg-red-50",
	"yellow": "text-amber-500 hover:text-amber-700 hover:bg-amber-50",
}

// Row is one table row. Cells are trusted fragments: build them with the
// cell helpers, the badge package or markup.Text.
type Row []markup.Node

// TextRow escapes each value into a cell.
func TextRow(values ...string) Row {
	return Row(markup.Texts(values...))
}

// Options selects the table style.
type Options struct {
	Striped   bool
	Hoverable bool
	// ContainerClass is appended to the classes of the wrapping card.
	ContainerClass string
}

// Simple renders a plain table.
func Simple(ctx *render.Context, headers []string, rows []Row, attrs ...markup.Attr) markup.Node {
	return Render(ctx, headers, rows, Options{}, attrs...)
}

// Striped shades every other row.
func Striped(ctx *render.Context, headers []string, rows []Row, attrs ...markup.Attr) markup.Node {
	return Render(ctx, headers, rows, Options{Striped: true}, attrs...)
}

// Hoverable highlights the row under the pointer.
func Hoverable(ctx *render.Context, headers []string, rows []Row, attrs ...markup.Attr) markup.Node {
	return Render(ctx, headers, rows, Options{Hoverable: true}, attrs...)
}

// Full is striped and hoverable.
func Full(ctx *render.Context, headers []string, rows []Row, attrs ...markup.Attr) markup.Node {
	return Render(ctx, headers, rows, Options{Striped: true, Hoverable: true}, attrs...)
}

// Responsive is Full with horizontal scrolling on the container.
func Responsive(ctx *render.Context, headers []string, rows []Row, attrs ...markup.Attr) markup.Node {
	return Render(ctx, headers, rows, Options{Striped: true, Hoverable: true, ContainerClass: "overflow-x-auto"}, attrs...)
}

// Render renders a table inside a card. attrs apply to the table element.
// Without rows a single placeholder row spans every column.
func Render(ctx *render.Context, headers []string, rows []Row, opts Options, attrs ...markup.Attr) markup.Node {
	head := make([]markup.Node, 0, len(headers))
	for _, header := range headers {
		head = append(head, markup.El("th", markup.Attrs{markup.A("scope", "col"), markup.A("class", headerCell)}, markup.Text(header)))
	}

	body := markup.Tag("tbody", "bg-white divide-y divide-gray-100")
	if len(rows) == 0 {
		body.Append(emptyRow(ctx, len(headers)))
	}
	for i, row := range rows {
		cells := make([]markup.Node, 0, len(row))
		for _, cell := range row {
			cells = append(cells, markup.Tag("td", bodyCell, cell))
		}
		body.Append(markup.Tag("tr", markup.ClassList(
			markup.C("transition-colors duration-150"),
			markup.If("bg-gray-50/50", opts.Striped && i%2 == 0),
			markup.If("hover:bg-blue-50/50", opts.Hoverable),
		), cells...))
	}

	tbl := markup.Build("table", markup.Classes("min-w-full divide-y divide-gray-100"), nil, attrs,
		markup.Tag("thead", "bg-gray-50/50", markup.Tag("tr", "", head...)),
		body,
	)
	return markup.Tag("div", markup.ClassList(markup.C(containerBase), markup.C(opts.ContainerClass)),
		markup.Tag("div", "overflow-x-auto", tbl),
	)
}

func emptyRow(ctx *render.Context, columns int) markup.Node {
	if columns < 1 {
		columns = 1
	}
	return markup.Tag("tr", "",
		markup.El("td", markup.Attrs{
			markup.Int("colspan", columns),
			markup.A("class", "px-6 py-12 text-center text-gray-400"),
		},
			icon.FA("fas fa-inbox", "text-3xl mb-3 block"),
			markup.Text(ctx.Translate("table.empty", "Aucune donnée disponible")),
		),
	)
}

// StatusCell is a status badge.
func StatusCell(ctx *render.Context, status, label string) markup.Node {
	return badge.Status(ctx, status, label)
}

// PriorityCell is a priority badge.
func PriorityCell(ctx *render.Context, priority, label string) markup.Node {
	return badge.Priority(ctx, priority, label)
}

// ActionsCell lines up action buttons.
func ActionsCell(actions ...markup.Node) markup.Node {
	return markup.Tag("div", "flex items-center space-x-2", actions...)
}

// ActionButton is an icon link. title doubles as the accessible name. color
// is blue, green, red or yellow; unknown colors render as blue.
func ActionButton(url, iconClass, title, color string) markup.Node {
	return markup.El("a", markup.Attrs{
		markup.A("href", url),
		markup.A("title", title),
		markup.A("aria-label", title),
		markup.A("class", ActionColors.Pick(color, DefaultActionColor)+" p-2 rounded-lg transition-all duration-200"),
	}, icon.FA(iconClass))
}

// IconCell is text preceded by an icon tinted with a Tailwind color name.
// Names that are not plain lowercase words render gray.
func IconCell(iconClass, text, color string) markup.Node {
	if !isColorName(color) {
		color = DefaultIconColor
	}
	return markup.Tag("div", "flex items-center",
		icon.FA(iconClass, "text-"+color+"-500 mr-2"),
		markup.Tag("span", "", markup.Text(text)),
	)
}

func isColorName(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Pagination renders previous/next links for small screens and numbered
// links for larger ones. current is clamped to 1..total. Nothing is rendered
// for a single page.
func Pagination(ctx *render.Context, current, total int, baseURL string) markup.Node {
	if total <= 1 {
		return markup.Empty
	}
	current = min(max(current, 1), total)

	mobile := markup.Tag("div", "flex-1 flex justify-between sm:hidden")
	if current > 1 {
		mobile.Append(markup.El("a", markup.Attrs{
			markup.A("href", PageURL(baseURL, current-1)),
			markup.A("rel", "prev"),
			markup.A("class", "relative inline-flex items-center px-4 py-2.5 border border-gray-200 text-sm font-semibold rounded-xl text-gray-700 bg-white hover:bg-gray-50 transition-colors"),
		}, markup.Text(ctx.Translate("pagination.previous", "Précédent"))))
	}
	if current < total {
		mobile.Append(markup.El("a", markup.Attrs{
			markup.A("href", PageURL(baseURL, current+1)),
			markup.A("rel", "next"),
			markup.A("class", "ml-3 relative inline-flex items-center px-4 py-2.5 border border-gray-200 text-sm font-semibold rounded-xl text-gray-700 bg-white hover:bg-gray-50 transition-colors"),
		}, markup.Text(ctx.Translate("pagination.next", "Suivant"))))
	}

	pages := make([]markup.Node, 0, total)
	for i := 1; i <= total; i++ {
		if i == current {
			pages = append(pages, markup.El("span", markup.Attrs{
				markup.A("class", "bg-blue-600 text-white relative inline-flex items-center px-4 py-2.5 text-sm font-semibold"),
				markup.A("aria-current", "page"),
			}, markup.Text(strconv.Itoa(i))))
			continue
		}
		pages = append(pages, markup.El("a", markup.Attrs{
			markup.A("href", PageURL(baseURL, i)),
			markup.A("class", "bg-white text-gray-600 hover:bg-gray-50 relative inline-flex items-center px-4 py-2.5 text-sm font-medium border-l border-gray-200 first:border-l-0 transition-colors"),
		}, markup.Text(strconv.Itoa(i))))
	}

	bold := func(n int) markup.Node {
		return markup.Tag("span", "font-bold text-gray-900", markup.Text(strconv.Itoa(n)))
	}
	desktop := markup.Tag("div", "hidden sm:flex-1 sm:flex sm:items-center sm:justify-between",
		markup.Tag("div", "",
			markup.Tag("p", "text-sm text-gray-600",
				markup.Text(ctx.Translate("pagination.page", "Page")+" "), bold(current),
				markup.Text(" "+ctx.Translate("pagination.of", "sur")+" "), bold(total),
			),
		),
		markup.Tag("div", "",
			markup.El("nav", markup.Attrs{
				markup.A("class", "relative z-0 inline-flex rounded-xl overflow-hidden border border-gray-200"),
				markup.A("aria-label", ctx.Translate("pagination.label", "Pagination")),
			}, pages...),
		),
	)

	return markup.Tag("div", "bg-white px-6 py-4 flex items-center justify-between border-t border-gray-100", mobile, desktop)
}

// PageURL appends the page query parameter to baseURL.
func PageURL(baseURL string, page int) string {
	sep := "?"
	if strings.Contains(baseURL, "?") {
		sep = "&"
	}
	return baseURL + sep + "page=" + strconv.Itoa(page)
}
