// Package behavior holds the client-side scripts shared by component families.
// Each script is emitted at most once per render.Context and acts on data
// attributes, so any number of component instances share one copy.
package behavior

import (
	"embed"
	"io/fs"
	"strings"

	"github.com/goliatone/go-uikit/pkg/markup"
	"github.com/goliatone/go-uikit/pkg/render"
	"github.com/goliatone/go-uikit/pkg/ui/icon"
)

//go:embed assets/*.js
var assets embed.FS

// Assets returns the scripts as <name>.js files for serving as static files.
func Assets() fs.FS {
	sub, err := fs.Sub(assets, "assets")
	if err != nil {
		panic(err)
	}
	return sub
}

func asset(name string) string {
	data, err := fs.ReadFile(assets, "assets/"+name)
	if err != nil {
		panic(err)
	}
	return strings.TrimSpace(string(data))
}

// Scripts lists every shared script.
func Scripts() []render.Script {
	return []render.Script{Dismiss, Consent, FlashAutoHide, Toast, Countdown, Flyout}
}

// Data attributes the scripts act on.
const (
	DismissAttr        = "data-uikit-dismiss"
	FlashAttr          = "data-uikit-flash"
	ToastAttr          = "data-uikit-toast"
	CountdownEndAttr   = "data-countdown-end"
	FlyoutToggleAttr   = "data-uikit-flyout"
	DropdownToggleAttr = "data-uikit-dropdown"
	ConsentAttr        = "data-uikit-consent"
)

// Dismiss removes the element whose id is the value of data-uikit-dismiss on
// the clicked control.
var Dismiss = render.Script{
	Name:   "dismiss",
	Inline: asset("dismiss.js"),
}

// Consent stores the cookie banner choice in localStorage under "cookies".
var Consent = render.Script{
	Name:   "consent",
	Inline: asset("consent.js"),
}

// FlashAutoHide fades flash messages out after five seconds.
var FlashAutoHide = render.Script{
	Name:   "flash",
	Inline: asset("flash.js"),
}

// Toast fades every toast out after its data-uikit-toast duration.
var Toast = render.Script{
	Name:   "toast",
	Inline: asset("toast.js"),
}

// Countdown updates every [data-countdown-end] block once per second. Unit
// spans are marked with data-unit.
var Countdown = render.Script{
	Name:   "countdown",
	Inline: asset("countdown.js"),
}

// Flyout toggles the panel named by aria-controls and closes open panels on
// outside clicks.
var Flyout = render.Script{
	Name:   "flyout",
	Inline: asset("flyout.js"),
}

// DismissButton is the close control targeting the element with id target.
func DismissButton(ctx *render.Context, target, class, iconClass string) markup.Node {
	return markup.El("button", markup.Attrs{
		markup.A("type", "button"),
		markup.A("class", class),
		markup.A(DismissAttr, target),
		markup.A("aria-label", ctx.Translate("common.close", "Fermer")),
	}, icon.Close(iconClass))
}
