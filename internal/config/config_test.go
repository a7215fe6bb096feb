package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-uikit/pkg/page"
	"github.com/goliatone/go-uikit/pkg/render"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.Server.Addr)
	require.Equal(t, render.DefaultLocale, cfg.Locale)
	require.Equal(t, ScriptsDeferred, cfg.Scripts)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "console", cfg.Log.Format)
}

func TestLoadLayersFileAndEnvironment(t *testing.T) {
	path := writeFile(t, t.TempDir(), "uikit.yaml", `
server:
  addr: localhost:9000
locale: en
log:
  level: debug
`)
	t.Setenv("UIKIT_LOG_FORMAT", "json")
	t.Setenv("UIKIT_SCRIPTS", "inline")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "localhost:9000", cfg.Server.Addr)
	require.Equal(t, "en", cfg.Locale)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "json", cfg.Log.Format)
	require.Equal(t, ScriptsInline, cfg.Scripts)
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "uikit.yaml", "locale: en\n")
	t.Setenv("UIKIT_LOCALE", "fr")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "fr", cfg.Locale)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	t.Setenv("UIKIT_LOCALE", "de")
	_, err = Load("")
	require.ErrorIs(t, err, ErrInvalid)
	require.Contains(t, err.Error(), "locale")
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Server:  Server{Addr: "127.0.0.1:8080"},
			Locale:  "en",
			Scripts: ScriptsInline,
			Log:     Log{Level: "warn", Format: "json"},
		}
	}

	cases := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"bad addr", func(c *Config) { c.Server.Addr = "8080" }, "server.addr"},
		{"port out of range", func(c *Config) { c.Server.Addr = ":70000" }, "server.addr"},
		{"bad scripts", func(c *Config) { c.Scripts = "async" }, "scripts"},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
		{"variant without manifest", func(c *Config) { c.Theme.Variant = "dark" }, "theme.variant"},
	}

	base := valid()
	require.NoError(t, base.Validate())
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(&cfg)
			err := cfg.Validate()
			require.ErrorIs(t, err, ErrInvalid)
			require.Contains(t, err.Error(), tc.field)
		})
	}
}

const manifest = `name: acme
version: 1.0.0
tokens:
  brand: "#123456"
  badge.primary: "bg-indigo-100 text-indigo-800"
assets:
  prefix: /assets/acme
  files:
    stylesheet: theme.css
variants:
  dark:
    tokens:
      brand: "#654321"
`

func TestThemeConfig(t *testing.T) {
	cfg := &Config{}
	themeCfg, err := cfg.ThemeConfig()
	require.NoError(t, err)
	require.Nil(t, themeCfg)

	cfg.Theme = Theme{Manifest: writeFile(t, t.TempDir(), "acme.yaml", manifest), Variant: "dark"}
	themeCfg, err = cfg.ThemeConfig()
	require.NoError(t, err)
	require.Equal(t, "acme", themeCfg.Theme)
	require.Equal(t, "dark", themeCfg.Variant)
	require.Equal(t, "#654321", themeCfg.Tokens["brand"])
	require.Equal(t, page.DefaultLayout, themeCfg.Partials[page.LayoutPartial])
	require.Equal(t, "/assets/acme/theme.css", themeCfg.AssetURL(page.StylesheetAsset))

	cfg.Theme.Variant = "sepia"
	_, err = cfg.ThemeConfig()
	require.True(t, errors.Is(err, render.ErrInvalidArgument))
}

func TestRenderOptions(t *testing.T) {
	cfg := &Config{
		Locale:  "en",
		Scripts: ScriptsDeferred,
		Theme:   Theme{Manifest: writeFile(t, t.TempDir(), "acme.yaml", manifest)},
	}
	opts, err := cfg.RenderOptions()
	require.NoError(t, err)

	ctx := render.NewContext(opts...)
	require.Equal(t, "en", ctx.Locale())
	require.True(t, ctx.Deferred())
	require.NotNil(t, ctx.Theme())
	require.Equal(t, "bg-indigo-100 text-indigo-800", ctx.Class("badge.primary", "bg-gray-100"))

	cfg.Scripts = ScriptsInline
	cfg.Theme = Theme{}
	opts, err = cfg.RenderOptions()
	require.NoError(t, err)
	ctx = render.NewContext(opts...)
	require.False(t, ctx.Deferred())
	require.Nil(t, ctx.Theme())
}
