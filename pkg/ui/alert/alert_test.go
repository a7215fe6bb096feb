package alert_test

import (
	"strings"
	"testing"

	"github.com/goliatone/go-uikit/pkg/markup"
	"github.com/goliatone/go-uikit/pkg/render"
	"github.com/goliatone/go-uikit/pkg/testsupport"
	"github.com/goliatone/go-uikit/pkg/ui/alert"
)

func TestAlertTypes(t *testing.T) {
	cases := []struct {
		node  markup.Node
		color string
		icon  string
		live  string
	}{
		{node: alert.Success(nil, "ok", false), color: "bg-emerald-50", icon: "fa-check-circle", live: "polite"},
		{node: alert.Error(nil, "ko", false), color: "bg-red-50", icon: "fa-exclamation-circle", live: "assertive"},
		{node: alert.Warning(nil, "hm", false), color: "bg-amber-50", icon: "fa-exclamation-triangle", live: "polite"},
		{node: alert.Info(nil, "fyi", false), color: "bg-blue-50", icon: "fa-info-circle", live: "polite"},
		{node: alert.Render(nil, "bogus", "?", false), color: "bg-blue-50", icon: "fa-info-circle", live: "polite"},
	}
	for _, tc := range cases {
		doc := testsupport.Parse(t, tc.node)
		box := testsupport.RequireOne(t, doc, `div[role="alert"]`)
		if !box.HasClass(tc.color) {
			t.Fatalf("expected %s in %q", tc.color, box.AttrOr("class", ""))
		}
		if box.AttrOr("aria-live", "") != tc.live {
			t.Fatalf("aria-live = %q, want %q", box.AttrOr("aria-live", ""), tc.live)
		}
		testsupport.RequireOne(t, doc, "i."+tc.icon)
		if testsupport.Count(t, doc, "button") != 0 {
			t.Fatalf("non dismissible alert must not have a close button")
		}
	}
}

func TestAlertEscapesMessage(t *testing.T) {
	got := markup.Render(alert.Info(nil, `<img src=x onerror="alert(1)">`, false))
	if strings.Contains(got, "<img") {
		t.Fatalf("message not escaped: %s", got)
	}
}

func TestDismissibleAlertsShareOneScript(t *testing.T) {
	ctx := render.NewContext()
	out := markup.Render(
		alert.Success(ctx, "one", true),
		alert.Error(ctx, "two", true, markup.A("id", "custom")),
	)
	doc := testsupport.ParseHTML(t, out)

	if n := strings.Count(out, `data-uikit-script="dismiss"`); n != 1 {
		t.Fatalf("dismiss script emitted %d times", n)
	}
	first := testsupport.RequireOne(t, doc, "#alert-1")
	if first.Find(`button[data-uikit-dismiss="alert-1"]`).Length() != 1 {
		t.Fatalf("close button should target its alert")
	}
	if first.Find("button").AttrOr("aria-label", "") != "Fermer" {
		t.Fatalf("close button needs an accessible name")
	}
	second := testsupport.RequireOne(t, doc, "#custom")
	if second.Find(`button[data-uikit-dismiss="custom"]`).Length() != 1 {
		t.Fatalf("caller id should be targeted")
	}
}

func TestFlashes(t *testing.T) {
	if got := markup.Render(alert.Flashes(render.NewContext(), nil)); got != "" {
		t.Fatalf("empty flashes rendered %q", got)
	}

	ctx := render.NewContext()
	out := markup.Render(
		alert.Flashes(ctx, []alert.Flash{{Type: "success", Message: "Saved"}, {Type: "nope", Message: "Fallback"}}),
		alert.Flashes(ctx, []alert.Flash{{Type: "warning", Message: "Again"}}),
	)
	doc := testsupport.ParseHTML(t, out)

	if n := testsupport.Count(t, doc, `[data-uikit-flash] [role="alert"]`); n != 3 {
		t.Fatalf("flash alerts = %d", n)
	}
	if n := strings.Count(out, `data-uikit-script="flash"`); n != 1 {
		t.Fatalf("flash script emitted %d times", n)
	}
	if !doc.Find(`[role="alert"]`).Eq(1).HasClass("bg-blue-50") {
		t.Fatalf("unknown flash type should render as info")
	}
}

func TestToast(t *testing.T) {
	ctx := render.NewContext()
	out := markup.Render(
		alert.Toast(ctx, "Copied", "success", 0),
		alert.Toast(ctx, "Later", "error", 8000),
	)
	doc := testsupport.ParseHTML(t, out)

	first := testsupport.RequireOne(t, doc, "#toast-1")
	if first.AttrOr("data-uikit-toast", "") != "3000" {
		t.Fatalf("default duration = %q", first.AttrOr("data-uikit-toast", ""))
	}
	second := testsupport.RequireOne(t, doc, "#toast-2")
	if second.AttrOr("data-uikit-toast", "") != "8000" || !second.HasClass("bg-red-50") {
		t.Fatalf("unexpected second toast %q", second.AttrOr("class", ""))
	}
	if n := strings.Count(out, "<script"); n != 1 {
		t.Fatalf("toast script emitted %d times", n)
	}
}

func TestDeferredScriptsAreCollected(t *testing.T) {
	ctx := render.NewContext(render.WithDeferredScripts())
	out := markup.Render(alert.Toast(ctx, "x", "info", 100), alert.Success(ctx, "y", true))

	if strings.Contains(out, "<script") {
		t.Fatalf("deferred context must not inline scripts: %s", out)
	}
	scripts := ctx.Scripts()
	if len(scripts) != 2 || scripts[0].Name != "toast" || scripts[1].Name != "dismiss" {
		t.Fatalf("unexpected deferred scripts %+v", scripts)
	}
}
