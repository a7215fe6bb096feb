// Package footer renders page footers: copyright bars, link columns, social
// links and a newsletter signup.
package footer

import (
	"github.com/goliatone/go-uikit/pkg/markup"
	"github.com/goliatone/go-uikit/pkg/render"
	"github.com/goliatone/go-uikit/pkg/ui/form"
	"github.com/goliatone/go-uikit/pkg/ui/icon"
)

const (
	container = "max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"
	dark      = "bg-gray-900 text-white"
	muted     = "text-gray-400 text-sm"
)

// Link is a footer link.
type Link struct {
	Label string
	URL   string
}

// Column is a titled list of links.
type Column struct {
	Title string
	Links []Link
}

// Social is an icon link to an external profile. Label is read by screen
// readers only.
type Social struct {
	Label string
	URL   string
	Icon  string
}

// Newsletter configures the signup form. Hidden fields, typically a CSRF
// token, are rendered inside the form.
type Newsletter struct {
	Title       string
	Description string
	Action      string
	Hidden      []form.HiddenField
}

// Brand is the logo block of the full footer. Logo is a trusted fragment.
type Brand struct {
	Logo    markup.Node
	Tagline string
}

// Simple renders a centered copyright line.
func Simple(copyright string, attrs ...markup.Attr) markup.Node {
	return markup.Build("footer", markup.Classes(dark, "py-8"), nil, attrs,
		markup.Tag("div", container+" text-center",
			markup.Tag("p", muted, markup.Text(copyright)),
		),
	)
}

// WithSocial puts the copyright beside social links.
func WithSocial(copyright string, links []Social, attrs ...markup.Attr) markup.Node {
	return markup.Build("footer", markup.Classes(dark, "py-12"), nil, attrs,
		markup.Tag("div", container,
			markup.Tag("div", "flex flex-col md:flex-row justify-between items-center",
				markup.Tag("p", muted+" mb-4 md:mb-0", markup.Text(copyright)),
				socialLinks(links),
			),
		),
	)
}

// WithColumns renders link columns above the copyright bar. The grid widens
// with the number of columns, up to four.
func WithColumns(columns []Column, copyright string, attrs ...markup.Attr) markup.Node {
	grid := markup.Tag("div", "grid grid-cols-2 "+gridCols(len(columns))+" gap-8 mb-8", columnNodes(columns)...)
	return markup.Build("footer", markup.Classes(dark), nil, attrs,
		markup.Tag("div", container+" py-12",
			grid,
			markup.Tag("div", "border-t border-gray-800 pt-8",
				markup.Tag("p", muted+" text-center", markup.Text(copyright)),
			),
		),
	)
}

// WithNewsletter renders an email signup card above the copyright. The input
// placeholder and button label are translated.
func WithNewsletter(ctx *render.Context, signup Newsletter, copyright string, attrs ...markup.Attr) markup.Node {
	email := ctx.Translate("footer.newsletter.email", "Votre email")
	signupForm := markup.El("form", markup.Attrs{
		markup.A("action", signup.Action),
		markup.A("method", "POST"),
		markup.A("class", "flex-shrink-0"),
	},
		form.HiddenInputs(nil, signup.Hidden...),
		markup.Tag("div", "flex",
			markup.El("input", markup.Attrs{
				markup.A("type", "email"),
				markup.A("name", "email"),
				markup.Flag("required", true),
				markup.A("placeholder", email),
				markup.A("aria-label", email),
				markup.A("class", "w-full md:w-64 px-4 py-3 rounded-l-xl bg-white/10 backdrop-blur-sm border border-white/20 text-white placeholder-blue-200 focus:outline-none focus:ring-2 focus:ring-white/50"),
			}),
			markup.El("button", markup.Attrs{
				markup.A("type", "submit"),
				markup.A("class", "px-6 py-3 bg-white text-blue-600 font-semibold rounded-r-xl hover:bg-blue-50 transition-colors duration-200"),
			}, markup.Text(ctx.Translate("footer.newsletter.subscribe", "S'inscrire"))),
		),
	)

	return markup.Build("footer", markup.Classes(dark), nil, attrs,
		markup.Tag("div", container+" py-12",
			markup.Tag("div", "bg-gradient-to-r from-blue-600 to-blue-700 rounded-2xl p-8 mb-8",
				markup.Tag("div", "md:flex md:items-center md:justify-between",
					markup.Tag("div", "mb-6 md:mb-0 md:mr-8",
						markup.Tag("h3", "text-xl font-bold text-white mb-2", markup.Text(signup.Title)),
						markup.Tag("p", "text-blue-100 text-sm", markup.Text(signup.Description)),
					),
					signupForm,
				),
			),
			markup.Tag("div", "text-center", markup.Tag("p", muted, markup.Text(copyright))),
		),
	)
}

// Full renders the brand block, link columns, copyright and social links.
func Full(brand Brand, columns []Column, links []Social, copyright string, attrs ...markup.Attr) markup.Node {
	logo := markup.Tag("div", "lg:col-span-2",
		markup.Tag("div", "text-2xl font-bold text-white mb-4", brand.Logo),
	)
	if brand.Tagline != "" {
		logo.Append(markup.Tag("p", muted+" max-w-md", markup.Text(brand.Tagline)))
	}
	top := markup.Tag("div", "grid grid-cols-1 lg:grid-cols-5 gap-8 mb-8", logo)
	top.Append(columnNodes(columns)...)

	return markup.Build("footer", markup.Classes(dark), nil, attrs,
		markup.Tag("div", container+" py-12",
			top,
			markup.Tag("div", "border-t border-gray-800 pt-8 flex flex-col md:flex-row justify-between items-center",
				markup.Tag("p", muted+" mb-4 md:mb-0", markup.Text(copyright)),
				socialLinks(links),
			),
		),
	)
}

// Light is a white footer with an optional row of links.
func Light(copyright string, links []Link, attrs ...markup.Attr) markup.Node {
	body := markup.Tag("div", container)
	if len(links) > 0 {
		row := markup.Tag("div", "flex flex-wrap justify-center gap-6 mb-4")
		for _, link := range links {
			row.Append(markup.El("a", markup.Attrs{
				markup.A("href", link.URL),
				markup.A("class", "text-gray-500 hover:text-gray-900 text-sm transition-colors duration-200"),
			}, markup.Text(link.Label)))
		}
		body.Append(row)
	}
	body.Append(markup.Tag("p", muted+" text-center", markup.Text(copyright)))
	return markup.Build("footer", markup.Classes("bg-white border-t border-gray-200 py-8"), nil, attrs, body)
}

func gridCols(n int) string {
	switch {
	case n <= 2:
		return "md:grid-cols-2"
	case n == 3:
		return "md:grid-cols-3"
	default:
		return "md:grid-cols-4"
	}
}

func columnNodes(columns []Column) []markup.Node {
	nodes := make([]markup.Node, 0, len(columns))
	for _, column := range columns {
		list := markup.Tag("ul", "space-y-3")
		for _, link := range column.Links {
			list.Append(markup.Tag("li", "",
				markup.El("a", markup.Attrs{
					markup.A("href", link.URL),
					markup.A("class", "text-gray-400 hover:text-white text-sm transition-colors duration-200"),
				}, markup.Text(link.Label)),
			))
		}
		nodes = append(nodes, markup.Tag("div", "",
			markup.Tag("h3", "text-sm font-bold text-white uppercase tracking-wider mb-4", markup.Text(column.Title)),
			list,
		))
	}
	return nodes
}

func socialLinks(links []Social) markup.Node {
	if len(links) == 0 {
		return markup.Empty
	}
	row := markup.Tag("div", "flex space-x-6")
	for _, link := range links {
		a := markup.El("a", markup.Attrs{
			markup.A("href", link.URL),
			markup.A("class", "text-gray-400 hover:text-white transition-colors duration-200"),
			markup.A("target", "_blank"),
			markup.A("rel", "noopener noreferrer"),
		}, icon.FA(link.Icon, "text-xl"))
		if link.Label != "" {
			a.Append(markup.Tag("span", "sr-only", markup.Text(link.Label)))
		}
		row.Append(a)
	}
	return row
}
