// Package alert renders inline alerts, session flash messages and toasts.
package alert

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-uikit/pkg/lookup"
	"github.com/goliatone/go-uikit/pkg/markup"
	"github.com/goliatone/go-uikit/pkg/render"
	"github.com/goliatone/go-uikit/pkg/ui/behavior"
	"github.com/goliatone/go-uikit/pkg/ui/icon"
)

const (
	baseClasses = "px-4 py-4 rounded-xl relative mb-4 backdrop-blur-sm"

	// DefaultType is used for unknown alert types.
	DefaultType = "info"
	// DefaultToastDuration is the toast lifetime in milliseconds.
	DefaultToastDuration = 3000
)

// Colors maps alert types to their color classes.
var Colors = lookup.Variants{
	"success": "bg-emerald-50 border border-emerald-200 text-emerald-800",
	"error":   "bg-red-50 border border-red-200 text-red-800",
	"warning": "bg-amber-50 border border-amber-200 text-amber-800",
	"info":    "bg-blue-50 border border-blue-200 text-blue-800",
}

// Icons maps alert types to their Font Awesome icon.
var Icons = lookup.Variants{
	"success": "fas fa-check-circle text-xl text-emerald-500",
	"error":   "fas fa-exclamation-circle text-xl text-red-500",
	"warning": "fas fa-exclamation-triangle text-xl text-amber-500",
	"info":    "fas fa-info-circle text-xl text-blue-500",
}

// Flash is one session flash message.
type Flash struct {
	Type    string
	Message string
}

// Success renders a success alert.
func Success(ctx *render.Context, message string, dismissible bool, attrs ...markup.Attr) markup.Node {
	return Render(ctx, "success", message, dismissible, attrs...)
}

// Error renders an error alert.
func Error(ctx *render.Context, message string, dismissible bool, attrs ...markup.Attr) markup.Node {
	return Render(ctx, "error", message, dismissible, attrs...)
}

// Warning renders a warning alert.
func Warning(ctx *render.Context, message string, dismissible bool, attrs ...markup.Attr) markup.Node {
	return Render(ctx, "warning", message, dismissible, attrs...)
}

// Info renders an informational alert.
func Info(ctx *render.Context, message string, dismissible bool, attrs ...markup.Attr) markup.Node {
	return Render(ctx, "info", message, dismissible, attrs...)
}

// Render renders an alert of any type. Unknown types render as info.
// Dismissible alerts get an id (unless the caller sets one) targeted by the
// close button.
func Render(ctx *render.Context, kind, message string, dismissible bool, attrs ...markup.Attr) markup.Node {
	kind = normalize(kind)
	extra := markup.Attrs(attrs)

	body := markup.Tag("div", "flex items-start",
		markup.Tag("div", "flex-shrink-0", icon.FA(Icons.Pick(kind, DefaultType))),
		markup.Tag("div", "ml-3 flex-1",
			markup.Tag("span", "block sm:inline", markup.Text(message)),
		),
	)

	defaults := markup.Attrs{markup.A("role", "alert"), markup.A("aria-live", liveness(kind))}
	var script markup.Node = markup.Empty
	if dismissible {
		id := extra.Value("id")
		if id == "" {
			id = ctx.NextID("alert")
			defaults = append(markup.Attrs{markup.A("id", id)}, defaults...)
		}
		body.Append(behavior.DismissButton(ctx, id,
			"ml-3 inline-flex text-gray-400 hover:text-gray-600 focus:outline-none transition-colors rounded-lg p-1 hover:bg-gray-100",
			"h-5 w-5"))
		script = ctx.Script(behavior.Dismiss)
	}

	el := markup.Build("div", []markup.ClassEntry{
		markup.C(baseClasses),
		markup.C(ctx.Class("alert."+kind, Colors.Pick(kind, DefaultType))),
	}, defaults, extra, body)
	return markup.Fragment{el, script}
}

// Flashes renders session flash messages in a centered container followed by
// the auto-hide script. No messages render nothing.
func Flashes(ctx *render.Context, flashes []Flash) markup.Node {
	if len(flashes) == 0 {
		return markup.Empty
	}
	items := make([]markup.Node, 0, len(flashes))
	for _, flash := range flashes {
		items = append(items, Render(ctx, flash.Type, flash.Message, true))
	}
	container := markup.El("div", markup.Attrs{
		markup.A("class", "max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 mt-4"),
		markup.Flag(behavior.FlashAttr, true),
	}, items...)
	return markup.Fragment{container, ctx.Script(behavior.FlashAutoHide)}
}

// Toast renders a fixed notification in the top right corner that fades out
// after duration milliseconds. Non-positive durations use the default.
func Toast(ctx *render.Context, message, kind string, duration int) markup.Node {
	kind = normalize(kind)
	if duration <= 0 {
		duration = DefaultToastDuration
	}
	el := markup.El("div", markup.Attrs{
		markup.A("id", ctx.NextID("toast")),
		markup.A("class", markup.ClassList(
			markup.C("fixed top-4 right-4 z-50"),
			markup.C(ctx.Class("alert."+kind, Colors.Pick(kind, DefaultType))),
			markup.C(baseClasses),
			markup.C("shadow-xl transform transition-all duration-300 animate-slide-in-right"),
		)),
		markup.A("role", "alert"),
		markup.A("aria-live", liveness(kind)),
		markup.A(behavior.ToastAttr, strconv.Itoa(duration)),
	},
		markup.Tag("div", "flex items-center",
			markup.Tag("div", "flex-shrink-0", icon.FA(Icons.Pick(kind, DefaultType))),
			markup.Tag("div", "ml-3 font-medium", markup.Text(message)),
		),
	)
	return markup.Fragment{el, ctx.Script(behavior.Toast)}
}

func normalize(kind string) string {
	kind = strings.ToLower(strings.TrimSpace(kind))
	if !Colors.Has(kind) {
		return DefaultType
	}
	return kind
}

func liveness(kind string) string {
	if kind == "error" {
		return "assertive"
	}
	return "polite"
}
