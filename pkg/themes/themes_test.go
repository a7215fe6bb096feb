package themes_test

import (
	"errors"
	"os"
	"testing"
	"testing/fstest"

	theme "github.com/goliatone/go-theme"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-uikit/pkg/render"
	"github.com/goliatone/go-uikit/pkg/themes"
)

func loadCatalog(t *testing.T) *themes.Catalog {
	t.Helper()

	manifest, err := themes.LoadManifest(os.DirFS("testdata"), "acme.yaml")
	if err != nil {
		t.Fatalf("load manifest: %v", err)
	}
	catalog := themes.NewCatalog()
	if err := catalog.Register(manifest); err != nil {
		t.Fatalf("register manifest: %v", err)
	}
	return catalog
}

func TestRendererConfigMergesVariant(t *testing.T) {
	catalog := loadCatalog(t)

	selection, err := catalog.Select("acme", "dark")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	cfg := themes.RendererConfig(selection, map[string]string{
		"page.layout": "layout.tpl",
		"page.extra":  "extra.tpl",
	})

	if cfg.Theme != "acme" || cfg.Variant != "dark" {
		t.Fatalf("unexpected selection %s/%s", cfg.Theme, cfg.Variant)
	}
	wantTokens := map[string]string{
		"brand":         "#654321",
		"badge.primary": "bg-indigo-100 text-indigo-800",
	}
	if diff := cmp.Diff(wantTokens, cfg.Tokens); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[string]string{"--brand": "#654321"}, cfg.CSSVars); diff != "" {
		t.Fatalf("css vars mismatch (-want +got):\n%s", diff)
	}
	wantPartials := map[string]string{
		"page.layout": "themes/acme/layout.tpl",
		"page.extra":  "extra.tpl",
	}
	if diff := cmp.Diff(wantPartials, cfg.Partials); diff != "" {
		t.Fatalf("partials mismatch (-want +got):\n%s", diff)
	}
	if got := cfg.AssetURL("stylesheet"); got != "/assets/themes/acme/theme.css" {
		t.Fatalf("stylesheet url = %q", got)
	}
	if got := cfg.AssetURL("vendor"); got != "/assets/themes/acme/vendor.dark.js" {
		t.Fatalf("vendor url = %q", got)
	}
	if got := cfg.AssetURL("missing"); got != "" {
		t.Fatalf("missing asset url = %q", got)
	}

	ctx := render.NewContext(render.WithTheme(cfg))
	if got := ctx.Class("badge.primary", "bg-blue-100 text-blue-800"); got != "bg-indigo-100 text-indigo-800" {
		t.Fatalf("context class = %q", got)
	}
}

func TestSelectDefaultsAndErrors(t *testing.T) {
	catalog := loadCatalog(t)

	selection, err := catalog.Select("", "")
	if err != nil {
		t.Fatalf("select default: %v", err)
	}
	if selection.Theme != "acme" {
		t.Fatalf("default theme = %q", selection.Theme)
	}

	_, err = catalog.Select("nope", "")
	if !errors.Is(err, render.ErrInvalidArgument) || !errors.Is(err, theme.ErrThemeNotFound) {
		t.Fatalf("expected ErrInvalidArgument and ErrThemeNotFound for unknown theme, got %v", err)
	}
	if _, err := catalog.Select("acme", "neon"); !errors.Is(err, render.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for unknown variant, got %v", err)
	}
	if diff := cmp.Diff([]string{"acme"}, catalog.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	stored, err := catalog.Provider().Theme("acme")
	if err != nil {
		t.Fatalf("provider theme: %v", err)
	}
	if stored.Version != "1.0.0" {
		t.Fatalf("stored version = %q", stored.Version)
	}
}

func TestSelectVersion(t *testing.T) {
	catalog := loadCatalog(t)

	next, err := themes.ParseManifest([]byte(`{"name":"acme","version":"2.0.0","tokens":{"brand":"#000000"}}`))
	if err != nil {
		t.Fatalf("parse json manifest: %v", err)
	}
	if err := catalog.Register(next); err != nil {
		t.Fatalf("register v2: %v", err)
	}

	latest, err := catalog.Select("acme", "")
	if err != nil {
		t.Fatalf("select latest: %v", err)
	}
	if got := themes.RendererConfig(latest, nil).Tokens["brand"]; got != "#000000" {
		t.Fatalf("latest brand = %q", got)
	}

	pinned, err := catalog.Select("acme", "dark", theme.WithVersion("1.0.0"))
	if err != nil {
		t.Fatalf("select pinned: %v", err)
	}
	if got := themes.RendererConfig(pinned, nil).Tokens["brand"]; got != "#654321" {
		t.Fatalf("pinned brand = %q", got)
	}

	if _, err := catalog.Select("acme", "", theme.WithVersion("9.0.0"), theme.WithoutFallback()); !errors.Is(err, theme.ErrVersionNotFound) {
		t.Fatalf("expected ErrVersionNotFound, got %v", err)
	}
	if diff := cmp.Diff([]string{"acme"}, catalog.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestRegisterRejectsInvalidManifest(t *testing.T) {
	catalog := themes.NewCatalog()

	if err := catalog.Register(nil); !errors.Is(err, render.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for nil manifest, got %v", err)
	}
	err := catalog.Register(&theme.Manifest{Name: "acme"})
	if !errors.Is(err, render.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for missing version, got %v", err)
	}
	if _, err := catalog.Select("", ""); !errors.Is(err, render.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument on empty catalog, got %v", err)
	}
}

func TestParseManifestErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"broken.yaml":   {Data: []byte("name: [")},
		"nameless.yaml": {Data: []byte("version: 1.0.0\n")},
	}

	if _, err := themes.LoadManifest(fsys, "broken.yaml"); err == nil {
		t.Fatalf("expected decode error")
	}
	if _, err := themes.LoadManifest(fsys, "nameless.yaml"); !errors.Is(err, render.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if _, err := themes.LoadManifest(fsys, "absent.yaml"); err == nil {
		t.Fatalf("expected read error")
	}
}

func TestCSSVarsStyle(t *testing.T) {
	got := themes.CSSVarsStyle(map[string]string{"--b": "2", "--a": "1"})
	want := ":root {\n  --a: 1;\n  --b: 2;\n}"
	if got != want {
		t.Fatalf("CSSVarsStyle = %q, want %q", got, want)
	}
	if themes.CSSVarsStyle(nil) != "" {
		t.Fatalf("expected empty style for no vars")
	}
	if themes.RendererConfig(nil, nil) != nil {
		t.Fatalf("expected nil config for nil selection")
	}
}
