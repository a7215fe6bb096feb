package page_test

import (
	"strings"
	"testing"
	"testing/fstest"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-uikit/pkg/markup"
	"github.com/goliatone/go-uikit/pkg/page"
	"github.com/goliatone/go-uikit/pkg/render"
	"github.com/goliatone/go-uikit/pkg/render/template/gotemplate"
	"github.com/goliatone/go-uikit/pkg/testsupport"
	"github.com/goliatone/go-uikit/pkg/ui/banner"
)

func newRenderer(t *testing.T, opts ...page.Option) *page.Renderer {
	t.Helper()
	r, err := page.New(opts...)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return r
}

func TestRenderDocument(t *testing.T) {
	ctx := render.NewContext(render.WithLocale("en"), render.WithDeferredScripts())
	body := []markup.Node{
		banner.Announcement(ctx, "One", "", true),
		banner.Announcement(ctx, "Two <b>", "", true),
	}

	out, err := newRenderer(t).Render(ctx, page.Document{
		Title:     " Showcase ",
		BodyClass: "bg-gray-50  antialiased",
		Body:      body,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasPrefix(out, "<!DOCTYPE html>") {
		t.Fatalf("missing doctype: %.40s", out)
	}

	doc := testsupport.ParseHTML(t, out)
	if got := doc.Find("html").AttrOr("lang", ""); got != "en" {
		t.Fatalf("lang = %q", got)
	}
	if got := doc.Find("title").Text(); got != "Showcase" {
		t.Fatalf("title = %q", got)
	}
	testsupport.RequireOne(t, doc, `head script[src="`+page.TailwindCDN+`"]`)
	testsupport.RequireOne(t, doc, `head link[href="`+page.FontAwesomeCDN+`"]`)
	if got := doc.Find("body").AttrOr("class", ""); got != "bg-gray-50 antialiased" {
		t.Fatalf("body class = %q", got)
	}
	if n := testsupport.Count(t, doc, "body [data-uikit-dismiss]"); n != 2 {
		t.Fatalf("dismiss buttons = %d", n)
	}
	if n := testsupport.Count(t, doc, `script[data-uikit-script="dismiss"]`); n != 1 {
		t.Fatalf("deferred dismiss script written %d times", n)
	}
	if !strings.Contains(out, "Two &lt;b&gt;") {
		t.Fatalf("body text not escaped once")
	}
	if n := testsupport.Count(t, doc, "style"); n != 0 {
		t.Fatalf("style block without theme")
	}
}

func TestRenderThemeAssets(t *testing.T) {
	cfg := &theme.RendererConfig{
		Theme:   "acme",
		CSSVars: map[string]string{"--brand": "#123456", "--evil": "red</style><script>"},
		AssetURL: func(key string) string {
			if key == page.StylesheetAsset {
				return "/assets/acme/theme.css"
			}
			return ""
		},
	}
	ctx := render.NewContext(render.WithTheme(cfg))

	out, err := newRenderer(t, page.WithAssets(page.Assets{})).Render(ctx, page.Document{Title: "T"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	doc := testsupport.ParseHTML(t, out)
	if got := doc.Find("html").AttrOr("lang", ""); got != render.DefaultLocale {
		t.Fatalf("lang = %q", got)
	}
	if n := testsupport.Count(t, doc, "head script"); n != 0 {
		t.Fatalf("empty tailwind asset rendered")
	}
	testsupport.RequireOne(t, doc, `link[href="/assets/acme/theme.css"]`)
	style := testsupport.RequireOne(t, doc, "style").Text()
	if !strings.Contains(style, "--brand: #123456;") {
		t.Fatalf("css vars = %q", style)
	}
	if strings.Contains(out, "</style><script>") {
		t.Fatalf("css vars escaped the style block")
	}
}

func TestThemeLayoutPartial(t *testing.T) {
	files := fstest.MapFS{
		"custom.tpl": {Data: []byte(`<main lang="{{ lang }}">{{ body }}</main>`)},
	}
	engine, err := gotemplate.New(gotemplate.WithFS(files))
	if err != nil {
		t.Fatalf("engine: %v", err)
	}
	cfg := &theme.RendererConfig{Partials: map[string]string{page.LayoutPartial: "custom.tpl"}}
	ctx := render.NewContext(render.WithTheme(cfg))

	out, err := newRenderer(t, page.WithEngine(engine)).Render(ctx, page.Document{
		Lang: "de",
		Body: []markup.Node{markup.Tag("p", "", markup.Text("hi"))},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != `<main lang="de"><p>hi</p></main>` {
		t.Fatalf("out = %q", out)
	}

	if _, err := newRenderer(t, page.WithEngine(engine)).Render(nil, page.Document{}); err == nil {
		t.Fatalf("missing default layout should fail")
	}
}

func TestLayoutTranslates(t *testing.T) {
	files := fstest.MapFS{
		"i18n.tpl": {Data: []byte(`<p data-locale="{{ current_locale(lang) }}">{{ translate(lang, "table.empty") }}|{{ translate(lang, "custom.key") }}</p>`)},
	}
	engine, err := gotemplate.New(gotemplate.WithFS(files))
	if err != nil {
		t.Fatalf("engine: %v", err)
	}
	renderer := newRenderer(t, page.WithEngine(engine), page.WithLayout("i18n.tpl"))

	cases := []struct {
		name string
		ctx  *render.Context
		lang string
		want string
	}{
		{name: "context locale", ctx: render.NewContext(render.WithLocale("en")), want: `<p data-locale="en">No data available|custom.key</p>`},
		{name: "document lang", ctx: render.NewContext(render.WithLocale("en")), lang: "fr", want: `<p data-locale="fr">Aucune donnée disponible|custom.key</p>`},
		{name: "nil context", want: `<p data-locale="fr">Aucune donnée disponible|custom.key</p>`},
		{
			name: "custom translator",
			ctx: render.NewContext(render.WithTranslator(render.TranslatorFunc(func(locale, key string, _ ...any) (string, error) {
				return locale + ":" + key, nil
			}))),
			want: `<p data-locale="fr">fr:table.empty|fr:custom.key</p>`,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := renderer.Render(tc.ctx, page.Document{Lang: tc.lang})
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			if out != tc.want {
				t.Fatalf("out = %q, want %q", out, tc.want)
			}
		})
	}
}

func TestPartials(t *testing.T) {
	if got := page.Partials()[page.LayoutPartial]; got != page.DefaultLayout {
		t.Fatalf("layout partial = %q", got)
	}
}
