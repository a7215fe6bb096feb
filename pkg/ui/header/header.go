// Package header renders hero sections, page headers and section titles.
package header

import (
	"regexp"
	"strings"

	"github.com/goliatone/go-uikit/pkg/markup"
	"github.com/goliatone/go-uikit/pkg/render"
	"github.com/goliatone/go-uikit/pkg/ui/navigation"
)

const (
	container  = "max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"
	heroTitle  = "text-4xl md:text-5xl lg:text-6xl font-bold mb-6 leading-tight"
	pageTitle  = "text-2xl md:text-3xl font-bold text-gray-900"
	pageHeader = "bg-white border-b border-gray-200 py-8"

	// DefaultGradientFrom and DefaultGradientTo replace invalid gradient stops.
	DefaultGradientFrom = "blue-600"
	DefaultGradientTo   = "purple-700"
)

// Stat is a figure shown under a centered header.
type Stat struct {
	Value string
	Label string
}

// Hero renders the gradient landing header. action is a trusted fragment,
// usually buttons; nil omits the action row.
func Hero(title, description string, action markup.Node, attrs ...markup.Attr) markup.Node {
	return markup.Build("header", markup.Classes("bg-gradient-to-br from-blue-600 via-blue-700 to-purple-700 text-white py-24"), nil, attrs,
		markup.Tag("div", container+" text-center",
			markup.Tag("h1", heroTitle, markup.Text(title)),
			markup.Tag("p", "text-xl md:text-2xl text-blue-100 mb-8 max-w-3xl mx-auto leading-relaxed", markup.Text(description)),
			actions("flex flex-col sm:flex-row gap-4 justify-center", action),
		),
	)
}

// HeroWithBackground renders a hero over a darkened background image. Image
// URLs that could break out of the CSS url() are dropped.
func HeroWithBackground(title, description, image string, action markup.Node, attrs ...markup.Attr) markup.Node {
	var defaults markup.Attrs
	if safeURL(image) {
		defaults = markup.Attrs{markup.A("style", "background-image: url('"+image+"')")}
	}
	return markup.Build("header", markup.Classes("relative bg-cover bg-center bg-no-repeat py-32"), defaults, attrs,
		markup.El("div", markup.Attrs{
			markup.A("class", "absolute inset-0 bg-black/60 backdrop-blur-sm"),
			markup.A("aria-hidden", "true"),
		}),
		markup.Tag("div", "relative "+container+" text-center text-white",
			markup.Tag("h1", heroTitle, markup.Text(title)),
			markup.Tag("p", "text-xl text-gray-200 mb-8 max-w-3xl mx-auto", markup.Text(description)),
			actions("flex flex-col sm:flex-row gap-4 justify-center", action),
		),
	)
}

// HeroSplit puts the text beside an image on large screens.
func HeroSplit(title, description, image string, action markup.Node, attrs ...markup.Attr) markup.Node {
	return markup.Build("header", markup.Classes("bg-white py-16 lg:py-24"), nil, attrs,
		markup.Tag("div", container,
			markup.Tag("div", "lg:grid lg:grid-cols-2 lg:gap-16 items-center",
				markup.Tag("div", "mb-12 lg:mb-0",
					markup.Tag("h1", "text-4xl md:text-5xl font-bold text-gray-900 mb-6 leading-tight", markup.Text(title)),
					markup.Tag("p", "text-xl text-gray-600 mb-8 leading-relaxed", markup.Text(description)),
					actions("flex flex-col sm:flex-row gap-4", action),
				),
				markup.Tag("div", "relative",
					markup.El("img", markup.Attrs{
						markup.A("src", image),
						markup.A("alt", ""),
						markup.A("class", "rounded-2xl shadow-2xl w-full"),
					}),
					markup.El("div", markup.Attrs{
						markup.A("class", "absolute -inset-4 bg-gradient-to-r from-blue-500 to-purple-500 rounded-2xl -z-10 opacity-20 blur-xl"),
						markup.A("aria-hidden", "true"),
					}),
				),
			),
		),
	)
}

// Page renders a page title with an optional description and action.
func Page(title, description string, action markup.Node, attrs ...markup.Attr) markup.Node {
	text := markup.Tag("div", "flex-1 min-w-0", markup.Tag("h1", pageTitle, markup.Text(title)))
	if description != "" {
		text.Append(markup.Tag("p", "mt-1 text-gray-500", markup.Text(description)))
	}
	return markup.Build("header", markup.Classes(pageHeader), nil, attrs,
		markup.Tag("div", container,
			markup.Tag("div", "md:flex md:items-center md:justify-between",
				text,
				actions("mt-4 md:mt-0 md:ml-4", action),
			),
		),
	)
}

// PageWithBreadcrumb renders a page title under its breadcrumb trail.
func PageWithBreadcrumb(ctx *render.Context, title string, trail []navigation.Item, action markup.Node, attrs ...markup.Attr) markup.Node {
	return markup.Build("header", markup.Classes(pageHeader), nil, attrs,
		markup.Tag("div", container,
			navigation.Breadcrumb(ctx, trail),
			markup.Tag("div", "mt-4 md:flex md:items-center md:justify-between",
				markup.Tag("h1", pageTitle, markup.Text(title)),
				actions("mt-4 md:mt-0 md:ml-4", action),
			),
		),
	)
}

// Centered renders a centered title and description followed by a grid of
// stats.
func Centered(title, description string, stats []Stat, attrs ...markup.Attr) markup.Node {
	body := markup.Tag("div", container+" text-center",
		markup.Tag("h2", "text-3xl md:text-4xl font-bold text-gray-900 mb-4", markup.Text(title)),
		markup.Tag("p", "text-xl text-gray-600 max-w-2xl mx-auto mb-12", markup.Text(description)),
	)
	if len(stats) > 0 {
		grid := markup.Tag("div", "grid grid-cols-2 md:grid-cols-4 gap-8")
		for _, stat := range stats {
			grid.Append(markup.Tag("div", "",
				markup.Tag("div", "text-3xl md:text-4xl font-bold text-blue-600 mb-2", markup.Text(stat.Value)),
				markup.Tag("div", "text-sm text-gray-500 uppercase tracking-wider", markup.Text(stat.Label)),
			))
		}
		body.Append(grid)
	}
	return markup.Build("header", markup.Classes("bg-gray-50 py-16"), nil, attrs, body)
}

// Gradient is a hero with custom gradient stops given as Tailwind color
// tokens such as "emerald-500". Invalid tokens fall back to the defaults.
func Gradient(title, description, from, to string, action markup.Node, attrs ...markup.Attr) markup.Node {
	from = colorToken(from, DefaultGradientFrom)
	to = colorToken(to, DefaultGradientTo)
	return markup.Build("header", markup.Classes("bg-gradient-to-br", "from-"+from, "to-"+to, "text-white py-24"), nil, attrs,
		markup.Tag("div", container+" text-center",
			markup.Tag("h1", heroTitle, markup.Text(title)),
			markup.Tag("p", "text-xl text-white/80 mb-8 max-w-3xl mx-auto", markup.Text(description)),
			actions("flex flex-col sm:flex-row gap-4 justify-center", action),
		),
	)
}

// Section renders a section title with an optional description.
func Section(title, description string, attrs ...markup.Attr) markup.Node {
	el := markup.Build("header", markup.Classes("mb-8"), nil, attrs,
		markup.Tag("h2", "text-2xl font-bold text-gray-900", markup.Text(title)),
	)
	if description != "" {
		el.Append(markup.Tag("p", "mt-2 text-gray-600", markup.Text(description)))
	}
	return el
}

func actions(class string, action markup.Node) markup.Node {
	if markup.IsEmpty(action) {
		return markup.Empty
	}
	return markup.Tag("div", class, action)
}

var tokenPattern = regexp.MustCompile(`^[a-z]+(-[0-9]{2,3})?$`)

func colorToken(token, fallback string) string {
	if tokenPattern.MatchString(token) {
		return token
	}
	return fallback
}

func safeURL(url string) bool {
	return url != "" && !strings.ContainsAny(url, "'\"()\\\n\r")
}
