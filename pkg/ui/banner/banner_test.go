package banner_test

import (
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/goliatone/go-uikit/pkg/markup"
	"github.com/goliatone/go-uikit/pkg/render"
	"github.com/goliatone/go-uikit/pkg/testsupport"
	"github.com/goliatone/go-uikit/pkg/ui/banner"
)

func TestAnnouncement(t *testing.T) {
	ctx := render.NewContext()
	doc := testsupport.Parse(t, banner.Announcement(ctx, "Version 2.0", "/news?x=1&y=2", true, markup.A("class", "shadow")))

	bar := testsupport.RequireOne(t, doc, "#banner-1")
	if !bar.HasClass("bg-blue-600") || !bar.HasClass("shadow") {
		t.Fatalf("unexpected classes %q", bar.AttrOr("class", ""))
	}
	a := testsupport.RequireOne(t, doc, "#banner-1 p a")
	if a.AttrOr("href", "") != "/news?x=1&y=2" {
		t.Fatalf("href = %q", a.AttrOr("href", ""))
	}
	if got := a.Text(); got != "Version 2.0 →" {
		t.Fatalf("link text = %q", got)
	}
	testsupport.RequireOne(t, doc, `button[data-uikit-dismiss="banner-1"]`)
	testsupport.RequireOne(t, doc, `script[data-uikit-script="dismiss"]`)
}

func TestNotDismissible(t *testing.T) {
	out := markup.Render(banner.Announcement(render.NewContext(), "plain", "", false))
	if strings.Contains(out, "<button") || strings.Contains(out, "<script") {
		t.Fatalf("non dismissible banner should render no close control: %s", out)
	}
	if strings.Contains(out, "<a ") {
		t.Fatalf("no url should render no link: %s", out)
	}
}

func TestUniqueIDsAndSingleScript(t *testing.T) {
	ctx := render.NewContext()
	out := markup.Render(
		banner.Announcement(ctx, "a", "", true),
		banner.Announcement(ctx, "b", "", true),
		banner.Promo(ctx, "Sale", "Half off", banner.CTA{Text: "Shop", URL: "/shop"}, true),
		banner.WithIcon(ctx, "fas fa-bell", "c", "purple", true, markup.A("id", "mine")),
	)
	doc := testsupport.ParseHTML(t, out)

	for _, id := range []string{"banner-1", "banner-2", "promo-3", "mine"} {
		testsupport.RequireOne(t, doc, "#"+id)
		testsupport.RequireOne(t, doc, `button[data-uikit-dismiss="`+id+`"]`)
	}
	if n := strings.Count(out, `data-uikit-script="dismiss"`); n != 1 {
		t.Fatalf("dismiss script emitted %d times", n)
	}
}

func TestPromoCTARequiresTextAndURL(t *testing.T) {
	ctx := render.NewContext()
	doc := testsupport.Parse(t, banner.Promo(ctx, "T", "D", banner.CTA{Text: "Go"}, false))
	if n := testsupport.Count(t, doc, "a"); n != 0 {
		t.Fatalf("partial CTA should be omitted, got %d links", n)
	}
	doc = testsupport.Parse(t, banner.Promo(ctx, "T", "D", banner.CTA{Text: "Go", URL: "/go"}, false))
	if got := testsupport.RequireOne(t, doc, "a").Text(); got != "Go" {
		t.Fatalf("cta text = %q", got)
	}
}

func TestCookie(t *testing.T) {
	ctx := render.NewContext()
	out := markup.Render(banner.Cookie(ctx, "We use cookies", "", ""))
	doc := testsupport.ParseHTML(t, out)

	accept := testsupport.RequireOne(t, doc, `button[data-uikit-consent="accepted"]`)
	decline := testsupport.RequireOne(t, doc, `button[data-uikit-consent="declined"]`)
	if accept.Text() != "Accepter" || decline.Text() != "Refuser" {
		t.Fatalf("default labels = %q / %q", accept.Text(), decline.Text())
	}
	if accept.AttrOr("data-uikit-dismiss", "") != "cookie-1" {
		t.Fatalf("accept should dismiss the bar")
	}
	for _, name := range []string{"dismiss", "consent"} {
		if n := strings.Count(out, `data-uikit-script="`+name+`"`); n != 1 {
			t.Fatalf("%s script emitted %d times", name, n)
		}
	}

	en := render.NewContext(render.WithLocale("en"))
	doc = testsupport.Parse(t, banner.Cookie(en, "x", "", "No thanks"))
	if got := doc.Find("button").First().Text(); got != "Accept" {
		t.Fatalf("english accept = %q", got)
	}
	if got := doc.Find("button").Last().Text(); got != "No thanks" {
		t.Fatalf("explicit decline = %q", got)
	}
}

func TestCountdown(t *testing.T) {
	ctx := render.NewContext()
	end := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)
	out := markup.Render(
		banner.Countdown(ctx, "Ends soon", end, banner.CTA{Text: "Buy", URL: "/buy"}),
		banner.Countdown(ctx, "Again", end, banner.CTA{}),
	)
	doc := testsupport.ParseHTML(t, out)

	timer := doc.Find("#countdown-1 [data-countdown-end]")
	if timer.Length() != 1 || timer.AttrOr("data-countdown-end", "") != "2030-01-02T03:04:05Z" {
		t.Fatalf("countdown end = %q", timer.AttrOr("data-countdown-end", ""))
	}
	var units []string
	timer.Find("[data-unit]").Each(func(_ int, s *goquery.Selection) {
		units = append(units, s.AttrOr("data-unit", ""))
	})
	if strings.Join(units, ",") != "d,h,m,s" {
		t.Fatalf("units = %v", units)
	}
	if n := strings.Count(out, `data-uikit-script="countdown"`); n != 1 {
		t.Fatalf("countdown script emitted %d times", n)
	}
	if n := testsupport.Count(t, doc, "#countdown-2 a"); n != 0 {
		t.Fatalf("empty CTA rendered %d links", n)
	}
}

func TestAlertBanner(t *testing.T) {
	cases := []struct {
		kind  string
		color string
		icon  string
	}{
		{kind: "danger", color: "bg-red-50", icon: "fa-exclamation-circle"},
		{kind: "SUCCESS", color: "bg-emerald-50", icon: "fa-check-circle"},
		{kind: "unknown", color: "bg-blue-50", icon: "fa-info-circle"},
	}
	for _, tc := range cases {
		doc := testsupport.Parse(t, banner.Alert(render.NewContext(), tc.kind, "msg", "/x", false))
		bar := testsupport.RequireOne(t, doc, "#alert-banner-1")
		if !bar.HasClass(tc.color) || !bar.HasClass("border-b") {
			t.Fatalf("%s: classes %q", tc.kind, bar.AttrOr("class", ""))
		}
		testsupport.RequireOne(t, doc, "i."+tc.icon+".mr-3")
		testsupport.RequireOne(t, doc, `p a[href="/x"]`)
	}
}

func TestFloatingAndIconColors(t *testing.T) {
	ctx := render.NewContext()
	doc := testsupport.Parse(t, banner.Floating(ctx, "Try it", banner.CTA{Text: "Start", URL: "/start"}, true))
	card := testsupport.RequireOne(t, doc, "#floating-1")
	if !card.HasClass("fixed") || !card.HasClass("md:max-w-md") {
		t.Fatalf("floating classes %q", card.AttrOr("class", ""))
	}
	testsupport.RequireOne(t, doc, `a[href="/start"]`)

	doc = testsupport.Parse(t, banner.WithIcon(ctx, "fas fa-bolt", "x", "orange", false))
	bar := testsupport.RequireOne(t, doc, "#icon-banner-2")
	if !bar.HasClass("bg-blue-600") {
		t.Fatalf("unknown color should fall back to blue: %q", bar.AttrOr("class", ""))
	}
	testsupport.RequireOne(t, doc, "i.fas.fa-bolt.text-lg")
}
