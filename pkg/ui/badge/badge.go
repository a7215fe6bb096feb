// Package badge renders pill shaped labels: color variants, workflow status
// and priority badges, dot indicators and counters.
package badge

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-uikit/pkg/lookup"
	"github.com/goliatone/go-uikit/pkg/markup"
	"github.com/goliatone/go-uikit/pkg/render"
	"github.com/goliatone/go-uikit/pkg/ui/icon"
)

const baseClasses = "inline-flex items-center px-2.5 py-0.5 rounded-full text-xs font-medium"

// Colors maps badge variants to their color classes.
var Colors = lookup.Variants{
	"primary":   "bg-blue-100 text-blue-800",
	"success":   "bg-green-100 text-green-800",
	"danger":    "bg-red-100 text-red-800",
	"warning":   "bg-orange-100 text-orange-800",
	"info":      "bg-cyan-100 text-cyan-800",
	"secondary": "bg-gray-100 text-gray-800",
}

// DotColors maps indicator colors to the dot class.
var DotColors = lookup.Variants{
	"blue":   "bg-blue-400",
	"green":  "bg-green-400",
	"red":    "bg-red-400",
	"yellow": "bg-yellow-400",
	"gray":   "bg-gray-400",
}

const defaultColor = "bg-blue-100 text-blue-800"

// Primary renders a blue badge.
func Primary(text string, attrs ...markup.Attr) markup.Node {
	return Render(nil, "primary", text, attrs...)
}

// Success renders a green badge.
func Success(text string, attrs ...markup.Attr) markup.Node {
	return Render(nil, "success", text, attrs...)
}

// Danger renders a red badge.
func Danger(text string, attrs ...markup.Attr) markup.Node {
	return Render(nil, "danger", text, attrs...)
}

// Warning renders an orange badge.
func Warning(text string, attrs ...markup.Attr) markup.Node {
	return Render(nil, "warning", text, attrs...)
}

// Info renders a cyan badge.
func Info(text string, attrs ...markup.Attr) markup.Node {
	return Render(nil, "info", text, attrs...)
}

// Secondary renders a neutral badge.
func Secondary(text string, attrs ...markup.Attr) markup.Node {
	return Render(nil, "secondary", text, attrs...)
}

// Render renders a badge for a named variant. Unknown variants use the
// primary colors. Theme tokens named badge.<variant> override the colors.
func Render(ctx *render.Context, variant, text string, attrs ...markup.Attr) markup.Node {
	name := strings.ToLower(variant)
	if !Colors.Has(name) {
		name = "primary"
	}
	colors := ctx.Class("badge."+name, Colors.Pick(name, "primary"))
	return pill(colors, markup.Attrs(attrs), markup.Text(text))
}

// Status renders a workflow status badge. label overrides the built-in label
// when not empty.
func Status(ctx *render.Context, status, label string) markup.Node {
	return fromTable(ctx, lookup.StatusTable, status, label)
}

// Priority renders a task priority badge.
func Priority(ctx *render.Context, priority, label string) markup.Node {
	return fromTable(ctx, lookup.PriorityTable, priority, label)
}

func fromTable(ctx *render.Context, table lookup.Table, key, label string) markup.Node {
	entry := lookup.Resolve(key, table, lookup.NeutralStyle)
	text := label
	if text == "" {
		text = entry.Label
		if entry.Key != "" {
			text = ctx.Translate(entry.Key, entry.Label)
		}
	}
	return pill(entry.Style, nil, markup.Text(text))
}

// WithIcon renders a badge led by a Font Awesome icon. An empty colorClass
// uses the primary colors.
func WithIcon(text, iconClass, colorClass string, attrs ...markup.Attr) markup.Node {
	if colorClass == "" {
		colorClass = defaultColor
	}
	return pill(colorClass, markup.Attrs(attrs), icon.FA(iconClass, "mr-1"), markup.Text(text))
}

// WithDot renders a badge with a colored dot indicator. Unknown colors use
// blue.
func WithDot(text, color string, attrs ...markup.Attr) markup.Node {
	color = strings.ToLower(color)
	if !DotColors.Has(color) {
		color = "blue"
	}
	dot := markup.El("span", markup.Attrs{
		markup.A("class", markup.ClassList(markup.C("w-2 h-2 rounded-full"), markup.C(DotColors.Pick(color, "blue")), markup.C("mr-1.5"))),
		markup.A("aria-hidden", "true"),
	})
	colors := "bg-" + color + "-100 text-" + color + "-800"
	return pill(colors, markup.Attrs(attrs), dot, markup.Text(text))
}

// Count renders a numeric badge.
func Count(n int, colorClass string, attrs ...markup.Attr) markup.Node {
	if colorClass == "" {
		colorClass = defaultColor
	}
	return pill(colorClass, markup.Attrs(attrs), markup.Text(strconv.Itoa(n)))
}

// Group lays badges out in a wrapping row.
func Group(badges ...markup.Node) markup.Node {
	return markup.Tag("div", "flex flex-wrap gap-2", badges...)
}

func pill(colors string, attrs markup.Attrs, children ...markup.Node) markup.Node {
	return markup.Build("span", []markup.ClassEntry{markup.C(baseClasses), markup.C(colors)}, nil, attrs, children...)
}
