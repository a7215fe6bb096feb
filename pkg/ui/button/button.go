// Package button renders buttons, icon buttons, button groups and links styled
// as buttons.
package button

import (
	"strings"

	"github.com/goliatone/go-uikit/pkg/lookup"
	"github.com/goliatone/go-uikit/pkg/markup"
	"github.com/goliatone/go-uikit/pkg/render"
	"github.com/goliatone/go-uikit/pkg/ui/icon"
)

const baseClasses = "inline-flex items-center justify-center font-semibold rounded-2xl transition-all duration-300 ease-out focus:outline-none focus:ring-2 focus:ring-offset-2 transform hover:-translate-y-0.5 hover:scale-[1.02] active:scale-[0.98] disabled:opacity-50 disabled:cursor-not-allowed disabled:transform-none"

// DefaultSize and DefaultVariant are used for unknown sizes and variants.
const (
	DefaultSize    = "md"
	DefaultVariant = "primary"
)

// Sizes maps size names to padding and type scale.
var Sizes = lookup.Variants{
	"xs": "px-3 py-1.5 text-xs gap-1",
	"sm": "px-4 py-2 text-sm gap-1.5",
	"md": "px-5 py-2.5 text-sm gap-2",
	"lg": "px-6 py-3 text-base gap-2.5",
	"xl": "px-8 py-4 text-lg gap-3",
}

// IconPadding replaces the size padding on icon-only buttons.
var IconPadding = lookup.Variants{
	"xs": "!p-1.5",
	"sm": "!p-2",
	"md": "!p-2.5",
	"lg": "!p-3",
	"xl": "!p-4",
}

// Variants maps variant names to their color classes.
var Variants = lookup.Variants{
	"primary":   "text-white bg-gradient-to-br from-blue-500 via-blue-600 to-blue-700 hover:from-blue-600 hover:via-blue-700 hover:to-blue-800 focus:ring-blue-500 shadow-lg shadow-blue-500/30 hover:shadow-xl hover:shadow-blue-500/40",
	"secondary": "text-gray-700 bg-white border border-gray-200 hover:bg-gray-50 hover:border-gray-300 focus:ring-gray-400 shadow-lg shadow-gray-200/50 hover:shadow-xl",
	"success":   "text-white bg-gradient-to-br from-emerald-400 via-emerald-500 to-emerald-600 hover:from-emerald-500 hover:via-emerald-600 hover:to-emerald-700 focus:ring-emerald-500 shadow-lg shadow-emerald-500/30 hover:shadow-xl hover:shadow-emerald-500/40",
	"danger":    "text-white bg-gradient-to-br from-red-500 via-red-600 to-red-700 hover:from-red-600 hover:via-red-700 hover:to-red-800 focus:ring-red-500 shadow-lg shadow-red-500/30 hover:shadow-xl hover:shadow-red-500/40",
	"warning":   "text-white bg-gradient-to-br from-amber-400 via-orange-500 to-orange-600 hover:from-amber-500 hover:via-orange-600 hover:to-orange-700 focus:ring-orange-500 shadow-lg shadow-orange-500/30 hover:shadow-xl hover:shadow-orange-500/40",
	"info":      "text-white bg-gradient-to-br from-cyan-400 via-cyan-500 to-blue-600 hover:from-cyan-500 hover:via-cyan-600 hover:to-blue-700 focus:ring-cyan-500 shadow-lg shadow-cyan-500/30 hover:shadow-xl hover:shadow-cyan-500/40",

	"glass": "text-white bg-white/10 backdrop-blur-md border border-white/20 hover:bg-white/20 focus:ring-white/50 shadow-lg",

	"glow-purple": "text-white bg-gradient-to-br from-purple-500 via-purple-600 to-indigo-700 hover:from-purple-600 hover:via-purple-700 hover:to-indigo-800 focus:ring-purple-500 shadow-lg shadow-purple-500/50 hover:shadow-xl hover:shadow-purple-500/60",
	"glow-pink":   "text-white bg-gradient-to-br from-pink-500 via-rose-500 to-rose-600 hover:from-pink-600 hover:via-rose-600 hover:to-rose-700 focus:ring-pink-500 shadow-lg shadow-pink-500/50 hover:shadow-xl hover:shadow-pink-500/60",
	"glow-indigo": "text-white bg-gradient-to-br from-indigo-500 via-indigo-600 to-purple-700 hover:from-indigo-600 hover:via-indigo-700 hover:to-purple-800 focus:ring-indigo-500 shadow-lg shadow-indigo-500/50 hover:shadow-xl hover:shadow-indigo-500/60",

	"outline-blue":  "text-blue-600 bg-transparent border-2 border-blue-500 hover:bg-blue-500 hover:text-white focus:ring-blue-500",
	"outline-gray":  "text-gray-600 bg-transparent border-2 border-gray-300 hover:bg-gray-100 hover:border-gray-400 focus:ring-gray-400",
	"outline-red":   "text-red-600 bg-transparent border-2 border-red-500 hover:bg-red-500 hover:text-white focus:ring-red-500",
	"outline-green": "text-emerald-600 bg-transparent border-2 border-emerald-500 hover:bg-emerald-500 hover:text-white focus:ring-emerald-500",

	"soft-blue":   "text-blue-700 bg-blue-50 hover:bg-blue-100 focus:ring-blue-500 border border-blue-100",
	"soft-red":    "text-red-700 bg-red-50 hover:bg-red-100 focus:ring-red-500 border border-red-100",
	"soft-green":  "text-emerald-700 bg-emerald-50 hover:bg-emerald-100 focus:ring-emerald-500 border border-emerald-100",
	"soft-purple": "text-purple-700 bg-purple-50 hover:bg-purple-100 focus:ring-purple-500 border border-purple-100",
	"soft-amber":  "text-amber-700 bg-amber-50 hover:bg-amber-100 focus:ring-amber-500 border border-amber-100",
}

// Option configures a single button.
type Option func(*config)

type config struct {
	ctx      *render.Context
	size     string
	attrs    markup.Attrs
	disabled bool
}

// WithSize selects xs, sm, md, lg or xl. Unknown sizes render as md.
func WithSize(size string) Option {
	return func(c *config) {
		c.size = size
	}
}

// WithAttrs adds caller attributes. A class attribute is appended to the
// computed classes; type overrides the default "button".
func WithAttrs(attrs ...markup.Attr) Option {
	return func(c *config) {
		c.attrs = append(c.attrs, attrs...)
	}
}

// WithContext lets theme tokens named button.<variant> override the variant
// classes.
func WithContext(ctx *render.Context) Option {
	return func(c *config) {
		c.ctx = ctx
	}
}

// Disabled renders the button disabled.
func Disabled() Option {
	return func(c *config) {
		c.disabled = true
	}
}

func newConfig(opts []Option) config {
	cfg := config{size: DefaultSize}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Primary renders a primary button.
func Primary(text string, opts ...Option) markup.Node { return Render("primary", text, opts...) }

// Secondary renders a secondary button.
func Secondary(text string, opts ...Option) markup.Node { return Render("secondary", text, opts...) }

// Success renders a success button.
func Success(text string, opts ...Option) markup.Node { return Render("success", text, opts...) }

// Danger renders a danger button.
func Danger(text string, opts ...Option) markup.Node { return Render("danger", text, opts...) }

// Warning renders a warning button.
func Warning(text string, opts ...Option) markup.Node { return Render("warning", text, opts...) }

// Info renders an info button.
func Info(text string, opts ...Option) markup.Node { return Render("info", text, opts...) }

// Glass renders a translucent button for dark or image backgrounds.
func Glass(text string, opts ...Option) markup.Node { return Render("glass", text, opts...) }

// Glow renders a glowing gradient button: purple, pink or indigo.
func Glow(text, color string, opts ...Option) markup.Node {
	return Render("glow-"+color, text, opts...)
}

// Outline renders an outlined button: blue, gray, red or green.
func Outline(text, color string, opts ...Option) markup.Node {
	return Render("outline-"+color, text, opts...)
}

// Soft renders a pastel button: blue, red, green, purple or amber.
func Soft(text, color string, opts ...Option) markup.Node {
	return Render("soft-"+color, text, opts...)
}

// Render renders a button for any variant name. Unknown variants render as
// primary.
func Render(variant, text string, opts ...Option) markup.Node {
	return button(variant, newConfig(opts), nil, markup.Text(text))
}

// WithIcon renders a button with a leading icon.
func WithIcon(text, iconClass, variant string, opts ...Option) markup.Node {
	return button(variant, newConfig(opts), nil, icon.FA(iconClass), markup.Tag("span", "", markup.Text(text)))
}

// Icon renders an icon-only square button. A title attribute doubles as the
// accessible name.
func Icon(iconClass, variant string, opts ...Option) markup.Node {
	cfg := newConfig(opts)
	extra := []markup.ClassEntry{markup.C(IconPadding.Pick(cfg.size, DefaultSize)), markup.C("aspect-square")}
	if title := cfg.attrs.Value("title"); title != "" && !cfg.attrs.Has("aria-label") {
		cfg.attrs = append(cfg.attrs, markup.A("aria-label", title))
	}
	return button(variant, cfg, extra, icon.FA(iconClass))
}

// Link renders an anchor styled as a button.
func Link(text, href, variant string, opts ...Option) markup.Node {
	cfg := newConfig(opts)
	defaults := markup.Attrs{markup.A("href", href)}
	if cfg.disabled {
		defaults = append(defaults, markup.A("aria-disabled", "true"), markup.Int("tabindex", -1))
	}
	classes := classes(variant, cfg, []markup.ClassEntry{markup.If("pointer-events-none opacity-50", cfg.disabled)})
	return markup.Build("a", classes, defaults, cfg.attrs, markup.Text(text))
}

// Group joins buttons into a segmented control.
func Group(buttons ...markup.Node) markup.Node {
	return markup.El("div", markup.Attrs{
		markup.A("class", "inline-flex rounded-2xl shadow-lg overflow-hidden divide-x divide-white/20"),
		markup.A("role", "group"),
	}, buttons...)
}

func button(variant string, cfg config, extra []markup.ClassEntry, children ...markup.Node) markup.Node {
	defaults := markup.Attrs{markup.A("type", "button")}
	if cfg.disabled {
		defaults = append(defaults, markup.Flag("disabled", true), markup.A("aria-disabled", "true"))
	}
	return markup.Build("button", classes(variant, cfg, extra), defaults, cfg.attrs, children...)
}

func classes(variant string, cfg config, extra []markup.ClassEntry) []markup.ClassEntry {
	name := strings.ToLower(variant)
	if !Variants.Has(name) {
		name = DefaultVariant
	}
	out := []markup.ClassEntry{
		markup.C(baseClasses),
		markup.C(Sizes.Pick(cfg.size, DefaultSize)),
		markup.C(cfg.ctx.Class("button."+name, Variants.Pick(name, DefaultVariant))),
	}
	return append(out, extra...)
}
