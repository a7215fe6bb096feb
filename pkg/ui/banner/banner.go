// Package banner renders full-width announcement bars, promotional strips,
// the cookie consent bar, countdowns and floating call-to-action cards.
package banner

import (
	"strings"
	"time"

	"github.com/goliatone/go-uikit/pkg/lookup"
	"github.com/goliatone/go-uikit/pkg/markup"
	"github.com/goliatone/go-uikit/pkg/render"
	"github.com/goliatone/go-uikit/pkg/ui/behavior"
	"github.com/goliatone/go-uikit/pkg/ui/icon"
)

const (
	container = "max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"

	// DefaultAlertType is used for unknown alert banner types.
	DefaultAlertType = "info"
	// DefaultColor is used for unknown icon banner colors.
	DefaultColor = "blue"
)

// AlertColors maps alert banner types to their color classes.
var AlertColors = lookup.Variants{
	"info":    "bg-blue-50 text-blue-800 border-blue-200",
	"success": "bg-emerald-50 text-emerald-800 border-emerald-200",
	"warning": "bg-amber-50 text-amber-800 border-amber-200",
	"danger":  "bg-red-50 text-red-800 border-red-200",
}

// AlertIcons maps alert banner types to their Font Awesome icon.
var AlertIcons = lookup.Variants{
	"info":    "fas fa-info-circle text-blue-500",
	"success": "fas fa-check-circle text-emerald-500",
	"warning": "fas fa-exclamation-triangle text-amber-500",
	"danger":  "fas fa-exclamation-circle text-red-500",
}

// IconColors maps icon banner colors to background classes.
var IconColors = lookup.Variants{
	"blue":   "bg-blue-600",
	"green":  "bg-emerald-600",
	"red":    "bg-red-600",
	"yellow": "bg-amber-500",
	"purple": "bg-purple-600",
	"gray":   "bg-gray-800",
}

// CTA is a call-to-action link. It renders only when both fields are set.
type CTA struct {
	Text string
	URL  string
}

func (c CTA) ok() bool { return c.Text != "" && c.URL != "" }

// Announcement renders a blue bar with a centered message, optionally linked.
func Announcement(ctx *render.Context, message, url string, dismissible bool, attrs ...markup.Attr) markup.Node {
	var content markup.Node = markup.Text(message)
	if url != "" {
		content = markup.El("a", markup.Attrs{markup.A("href", url), markup.A("class", "hover:underline")},
			markup.Text(message),
			markup.Text(" "),
			markup.El("span", markup.Attrs{markup.A("aria-hidden", "true")}, markup.Raw("&rarr;")),
		)
	}
	row := markup.Tag("div", "flex items-center justify-between flex-wrap gap-2",
		markup.Tag("div", "flex-1 flex items-center justify-center",
			markup.Tag("p", "text-sm font-medium text-center", content),
		),
	)
	return shell(ctx, "banner", "bg-blue-600 text-white", attrs, dismissible,
		"flex-shrink-0 p-1 rounded-lg hover:bg-blue-500 focus:outline-none focus:ring-2 focus:ring-white transition-colors", "h-5 w-5",
		func(n markup.Node) markup.Node {
			return markup.Tag("div", container+" py-3", row.Append(n))
		})
}

// Promo renders a gradient promotional bar with a title, description and an
// optional call to action.
func Promo(ctx *render.Context, title, description string, cta CTA, dismissible bool, attrs ...markup.Attr) markup.Node {
	row := markup.Tag("div", "flex items-center justify-between flex-wrap gap-4",
		markup.Tag("div", "flex-1",
			markup.Tag("p", "text-sm font-bold", markup.Text(title)),
			markup.Tag("p", "text-sm text-purple-100", markup.Text(description)),
		),
	)
	if cta.ok() {
		row.Append(markup.Tag("div", "flex-shrink-0",
			link(cta, "inline-flex items-center px-4 py-2 bg-white text-purple-600 text-sm font-semibold rounded-lg hover:bg-purple-50 transition-colors"),
		))
	}
	return shell(ctx, "promo", "bg-gradient-to-r from-purple-600 to-blue-600 text-white", attrs, dismissible,
		"flex-shrink-0 p-1 rounded-lg hover:bg-white/10 focus:outline-none transition-colors", "h-5 w-5",
		func(n markup.Node) markup.Node {
			return markup.Tag("div", container+" py-4", row.Append(n))
		})
}

// Cookie renders the fixed consent bar. Empty button labels are translated
// from banner.cookie.accept and banner.cookie.decline. Both buttons close the
// bar and record the choice in localStorage.
func Cookie(ctx *render.Context, message, acceptText, declineText string, attrs ...markup.Attr) markup.Node {
	if acceptText == "" {
		acceptText = ctx.Translate("banner.cookie.accept", "Accepter")
	}
	if declineText == "" {
		declineText = ctx.Translate("banner.cookie.decline", "Refuser")
	}
	id := idFor(ctx, "cookie", attrs)
	choice := func(text, value, class string) markup.Node {
		return markup.El("button", markup.Attrs{
			markup.A("type", "button"),
			markup.A("class", class),
			markup.A(behavior.DismissAttr, id),
			markup.A(behavior.ConsentAttr, value),
		}, markup.Text(text))
	}
	body := markup.Tag("div", "bg-gray-900 text-white",
		markup.Tag("div", container+" py-4",
			markup.Tag("div", "md:flex md:items-center md:justify-between",
				markup.Tag("div", "flex-1 mb-4 md:mb-0 md:mr-8",
					markup.Tag("p", "text-sm text-gray-300", markup.Text(message)),
				),
				markup.Tag("div", "flex space-x-4",
					choice(acceptText, "accepted", "px-4 py-2 bg-blue-600 text-white text-sm font-semibold rounded-lg hover:bg-blue-700 transition-colors"),
					choice(declineText, "declined", "px-4 py-2 bg-gray-700 text-white text-sm font-semibold rounded-lg hover:bg-gray-600 transition-colors"),
				),
			),
		),
	)
	el := wrapper(id, "fixed bottom-0 inset-x-0 z-50", attrs, body)
	return markup.Fragment{el, ctx.Script(behavior.Dismiss), ctx.Script(behavior.Consent)}
}

// Countdown renders a bar counting down to end. The remaining days, hours,
// minutes and seconds are filled in client side.
func Countdown(ctx *render.Context, message string, end time.Time, cta CTA, attrs ...markup.Attr) markup.Node {
	id := idFor(ctx, "countdown", attrs)
	unit := func(name, label string) markup.Node {
		return markup.Tag("div", "bg-white/20 rounded-lg px-2 py-1",
			markup.El("span", markup.Attrs{markup.A("data-unit", name)}, markup.Text("00")),
			markup.Tag("span", "text-xs ml-1", markup.Text(label)),
		)
	}
	sep := func() markup.Node { return markup.Tag("span", "", markup.Text(":")) }

	row := markup.Tag("div", "flex items-center justify-center flex-wrap gap-4",
		markup.Tag("span", "text-sm font-bold", markup.Text(message)),
		markup.El("div", markup.Attrs{
			markup.A("class", "flex items-center space-x-2 font-mono"),
			markup.A(behavior.CountdownEndAttr, end.Format(time.RFC3339)),
			markup.A("role", "timer"),
		},
			unit("d", ctx.Translate("banner.countdown.days", "j")), sep(),
			unit("h", "h"), sep(),
			unit("m", "m"), sep(),
			unit("s", "s"),
		),
	)
	if cta.ok() {
		row.Append(link(cta, "px-4 py-2 bg-white text-red-600 text-sm font-semibold rounded-lg hover:bg-red-50 transition-colors"))
	}
	el := wrapper(id, "bg-gradient-to-r from-red-600 to-orange-500 text-white", attrs,
		markup.Tag("div", container+" py-4", row))
	return markup.Fragment{el, ctx.Script(behavior.Countdown)}
}

// Alert renders a bordered bar of type info, success, warning or danger.
// Unknown types render as info.
func Alert(ctx *render.Context, kind, message, url string, dismissible bool, attrs ...markup.Attr) markup.Node {
	kind = strings.ToLower(strings.TrimSpace(kind))
	if !AlertColors.Has(kind) {
		kind = DefaultAlertType
	}
	var content markup.Node = markup.Text(message)
	if url != "" {
		content = markup.El("a", markup.Attrs{markup.A("href", url), markup.A("class", "hover:underline")}, markup.Text(message))
	}
	row := markup.Tag("div", "flex items-center justify-between",
		markup.Tag("div", "flex items-center",
			icon.FA(AlertIcons.Pick(kind, DefaultAlertType), "mr-3"),
			markup.Tag("p", "text-sm font-medium", content),
		),
	)
	color := ctx.Class("banner.alert."+kind, AlertColors.Pick(kind, DefaultAlertType))
	return shell(ctx, "alert-banner", color+" border-b", attrs, dismissible,
		"flex-shrink-0 ml-4 p-1 rounded-lg hover:bg-black/5 focus:outline-none transition-colors", "h-4 w-4",
		func(n markup.Node) markup.Node {
			return markup.Tag("div", container+" py-3", row.Append(n))
		})
}

// Floating renders a dark card pinned to the bottom of the viewport.
func Floating(ctx *render.Context, message string, cta CTA, dismissible bool, attrs ...markup.Attr) markup.Node {
	actions := markup.Tag("div", "flex items-center space-x-2",
		markup.El("a", markup.Attrs{
			markup.A("href", cta.URL),
			markup.A("class", "flex-shrink-0 px-4 py-2 bg-blue-600 text-white text-sm font-semibold rounded-lg hover:bg-blue-700 transition-colors"),
		}, markup.Text(cta.Text)),
	)
	return shell(ctx, "floating", "fixed bottom-4 left-4 right-4 md:left-auto md:right-4 md:max-w-md z-50", attrs, dismissible,
		"flex-shrink-0 p-2 rounded-lg hover:bg-gray-800 focus:outline-none transition-colors", "h-4 w-4",
		func(n markup.Node) markup.Node {
			return markup.Tag("div", "bg-gray-900 text-white rounded-2xl shadow-2xl p-4",
				markup.Tag("div", "flex items-center justify-between gap-4",
					markup.Tag("p", "text-sm", markup.Text(message)),
					actions.Append(n),
				),
			)
		})
}

// WithIcon renders a solid bar with a leading Font Awesome icon. color is
// blue, green, red, yellow, purple or gray; unknown colors render as blue.
func WithIcon(ctx *render.Context, iconClass, message, color string, dismissible bool, attrs ...markup.Attr) markup.Node {
	row := markup.Tag("div", "flex items-center justify-between",
		markup.Tag("div", "flex items-center",
			icon.FA(iconClass, "mr-3 text-lg"),
			markup.Tag("p", "text-sm font-medium", markup.Text(message)),
		),
	)
	return shell(ctx, "icon-banner", IconColors.Pick(color, DefaultColor)+" text-white", attrs, dismissible,
		"flex-shrink-0 p-1 rounded-lg hover:bg-white/10 focus:outline-none transition-colors", "h-5 w-5",
		func(n markup.Node) markup.Node {
			return markup.Tag("div", container+" py-3", row.Append(n))
		})
}

// shell wraps the body built by layout in the outer banner element. layout
// receives the close button, or Empty when the banner is not dismissible.
func shell(ctx *render.Context, prefix, class string, attrs []markup.Attr, dismissible bool,
	closeClass, iconClass string, layout func(markup.Node) markup.Node) markup.Node {
	id := idFor(ctx, prefix, attrs)
	if !dismissible {
		return wrapper(id, class, attrs, layout(markup.Empty))
	}
	el := wrapper(id, class, attrs, layout(behavior.DismissButton(ctx, id, closeClass, iconClass)))
	return markup.Fragment{el, ctx.Script(behavior.Dismiss)}
}

func wrapper(id, class string, attrs []markup.Attr, body markup.Node) *markup.Element {
	extra := markup.Attrs(attrs)
	var defaults markup.Attrs
	if !extra.Has("id") {
		defaults = markup.Attrs{markup.A("id", id)}
	}
	return markup.Build("div", []markup.ClassEntry{markup.C(class)}, defaults, extra, body)
}

// idFor returns the caller's id attribute or a fresh one from the context.
func idFor(ctx *render.Context, prefix string, attrs []markup.Attr) string {
	if id := markup.Attrs(attrs).Value("id"); id != "" {
		return id
	}
	return ctx.NextID(prefix)
}

func link(cta CTA, class string) markup.Node {
	return markup.El("a", markup.Attrs{markup.A("href", cta.URL), markup.A("class", class)}, markup.Text(cta.Text))
}
