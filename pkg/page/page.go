// Package page renders complete HTML documents around component fragments:
// the Tailwind and Font Awesome assets, theme CSS variables and the scripts a
// deferred render.Context collected.
package page

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/goliatone/go-uikit/pkg/markup"
	"github.com/goliatone/go-uikit/pkg/render"
	"github.com/goliatone/go-uikit/pkg/render/template"
	"github.com/goliatone/go-uikit/pkg/render/template/gotemplate"
	"github.com/goliatone/go-uikit/pkg/themes"
)

const (
	// TailwindCDN is the Tailwind Play CDN script.
	TailwindCDN = "https://cdn.tailwindcss.com"
	// FontAwesomeCDN is the Font Awesome 6 stylesheet.
	FontAwesomeCDN = "https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.4.0/css/all.min.css"

	// LayoutPartial is the theme partial that overrides the layout template.
	LayoutPartial = "page.layout"
	// DefaultLayout is the embedded layout template.
	DefaultLayout = "layout.tpl"
	// StylesheetAsset is the theme asset key linked after the CDN assets.
	StylesheetAsset = "stylesheet"
)

//go:embed templates/*.tpl
var embedded embed.FS

// Templates returns the embedded layout templates.
func Templates() fs.FS {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}

// Partials are the fallback partials to pass to themes.RendererConfig.
func Partials() map[string]string {
	return map[string]string{LayoutPartial: DefaultLayout}
}

// Assets are the stylesheet and script URLs written in the document head.
// Empty URLs are omitted.
type Assets struct {
	Tailwind    string
	FontAwesome string
}

// DefaultAssets load Tailwind and Font Awesome from their CDNs.
var DefaultAssets = Assets{Tailwind: TailwindCDN, FontAwesome: FontAwesomeCDN}

// Document is the content of a page. Head and Body are trusted fragments.
// An empty Lang uses the context locale.
type Document struct {
	Title     string
	Lang      string
	BodyClass string
	Head      []markup.Node
	Body      []markup.Node
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithEngine renders layouts with engine instead of the embedded templates.
func WithEngine(engine template.TemplateRenderer) Option {
	return func(r *Renderer) {
		if engine != nil {
			r.engine = engine
		}
	}
}

// WithAssets replaces the CDN assets.
func WithAssets(assets Assets) Option {
	return func(r *Renderer) {
		r.assets = assets
	}
}

// WithLayout selects the layout template used when the theme does not name
// one.
func WithLayout(name string) Option {
	return func(r *Renderer) {
		if name = strings.TrimSpace(name); name != "" {
			r.layout = name
		}
	}
}

// Renderer writes documents through a template engine. It is safe for
// concurrent use.
type Renderer struct {
	engine template.TemplateRenderer
	assets Assets
	layout string
}

// New returns a Renderer backed by the embedded layout.
func New(opts ...Option) (*Renderer, error) {
	r := &Renderer{assets: DefaultAssets, layout: DefaultLayout}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	if r.engine == nil {
		engine, err := gotemplate.New(gotemplate.WithFS(Templates()))
		if err != nil {
			return nil, fmt.Errorf("page: create template engine: %w", err)
		}
		r.engine = engine
	}
	return r, nil
}

// Render renders doc. Scripts ctx collected in deferred mode are written
// before </body>; build the body with the same ctx before calling Render.
// Layouts can call translate(lang, key) and current_locale(lang), bound to the
// ctx translator.
func (r *Renderer) Render(ctx *render.Context, doc Document, out ...io.Writer) (string, error) {
	html, err := r.engine.RenderTemplate(r.layoutFor(ctx), r.data(ctx, doc), out...)
	if err != nil {
		return "", fmt.Errorf("page: render %q: %w", doc.Title, err)
	}
	return html, nil
}

func (r *Renderer) layoutFor(ctx *render.Context) string {
	if cfg := ctx.Theme(); cfg != nil {
		if name := strings.TrimSpace(cfg.Partials[LayoutPartial]); name != "" {
			return name
		}
	}
	return r.layout
}

func (r *Renderer) data(ctx *render.Context, doc Document) map[string]any {
	lang := strings.TrimSpace(doc.Lang)
	if lang == "" {
		lang = ctx.Locale()
	}

	var stylesheet, vars string
	if cfg := ctx.Theme(); cfg != nil {
		if cfg.AssetURL != nil {
			stylesheet = cfg.AssetURL(StylesheetAsset)
		}
		vars = themes.CSSVarsStyle(cfg.CSSVars)
	}

	data := map[string]any{
		"lang":         lang,
		"title":        doc.Title,
		"body_class":   doc.BodyClass,
		"tailwind":     r.assets.Tailwind,
		"font_awesome": r.assets.FontAwesome,
		"stylesheet":   stylesheet,
		"css_vars":     markup.Trusted(strings.ReplaceAll(vars, "<", "")),
		"head":         markup.Fragment(doc.Head),
		"body":         markup.Fragment(doc.Body),
		"scripts":      render.ScriptNodes(ctx.Scripts()),
	}
	for name, fn := range ctx.TemplateFuncs() {
		data[name] = fn
	}
	return data
}
