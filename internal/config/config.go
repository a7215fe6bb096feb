// Package config loads the CLI and preview server settings: built-in
// defaults, then an optional YAML file, then UIKIT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	theme "github.com/goliatone/go-theme"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/goliatone/go-uikit/pkg/page"
	"github.com/goliatone/go-uikit/pkg/render"
	"github.com/goliatone/go-uikit/pkg/themes"
)

// EnvPrefix prefixes environment overrides: UIKIT_SERVER_ADDR sets server.addr.
const EnvPrefix = "UIKIT_"

// Script modes.
const (
	ScriptsInline   = "inline"
	ScriptsDeferred = "deferred"
)

// ErrInvalid reports a configuration that failed validation.
var ErrInvalid = errors.New("config: invalid configuration")

// Config holds every setting the commands read.
type Config struct {
	Server  Server `koanf:"server"`
	Locale  string `koanf:"locale" validate:"required,oneof=fr en"`
	Theme   Theme  `koanf:"theme"`
	Scripts string `koanf:"scripts" validate:"required,oneof=inline deferred"`
	Log     Log    `koanf:"log"`
}

// Server configures the preview server.
type Server struct {
	Addr string `koanf:"addr" validate:"required,hostname_port"`
}

// Theme selects an optional theme manifest. An empty manifest renders the
// built-in classes.
type Theme struct {
	Manifest string `koanf:"manifest"`
	Name     string `koanf:"name"`
	Variant  string `koanf:"variant" validate:"omitempty,excluded_without=Manifest"`
}

// Log configures logging.
type Log struct {
	Level  string `koanf:"level" validate:"required,oneof=trace debug info warn error"`
	Format string `koanf:"format" validate:"required,oneof=json console"`
}

// Defaults returns the built-in settings as a flat koanf map.
func Defaults() map[string]any {
	return map[string]any{
		"server.addr": ":8080",
		"locale":      render.DefaultLocale,
		"scripts":     ScriptsDeferred,
		"log.level":   "info",
		"log.format":  "console",
	}
}

// Load layers the defaults, the YAML file at path (skipped when empty) and
// the environment, then validates the result.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}

	if path = strings.TrimSpace(path); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: load %s: %w", path, err)
		}
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("config: load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New(validator.WithRequiredStructEnabled())
	})
	return validateInst
}

// Validate checks every field, reporting the first failure.
func (c *Config) Validate() error {
	err := validatorInstance().Struct(c)
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		fe := errs[0]
		return fmt.Errorf("%w: %s failed validation for tag '%s'", ErrInvalid, fieldName(fe), fe.Tag())
	}
	return fmt.Errorf("%w: %v", ErrInvalid, err)
}

func fieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}

// ThemeConfig loads the configured manifest and resolves the selected theme
// and variant. It returns nil when no manifest is configured.
func (c *Config) ThemeConfig() (*theme.RendererConfig, error) {
	if strings.TrimSpace(c.Theme.Manifest) == "" {
		return nil, nil
	}
	dir, name := filepath.Split(c.Theme.Manifest)
	if dir == "" {
		dir = "."
	}
	manifest, err := themes.LoadManifest(os.DirFS(dir), name)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	catalog := themes.NewCatalog()
	if err := catalog.Register(manifest); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	selection, err := catalog.Select(c.Theme.Name, c.Theme.Variant)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return themes.RendererConfig(selection, page.Partials()), nil
}

// RenderOptions translates the settings into render.Context options.
func (c *Config) RenderOptions() ([]render.Option, error) {
	opts := []render.Option{render.WithLocale(c.Locale)}
	cfg, err := c.ThemeConfig()
	if err != nil {
		return nil, err
	}
	if cfg != nil {
		opts = append(opts, render.WithTheme(cfg))
	}
	if c.Scripts == ScriptsDeferred {
		opts = append(opts, render.WithDeferredScripts())
	}
	return opts, nil
}
