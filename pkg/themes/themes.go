// Package themes loads theme manifests and turns a theme/variant selection into
// the renderer configuration consumed by render.Context and the page shell.
package themes

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"sync"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-uikit/pkg/render"
)

// ParseManifest decodes a JSON or YAML theme manifest.
func ParseManifest(data []byte) (*theme.Manifest, error) {
	manifest, err := theme.LoadBytes(data, "")
	if err != nil {
		return nil, manifestError(err)
	}
	return manifest, nil
}

// LoadManifest reads and decodes a manifest from fsys. The format follows the
// file extension.
func LoadManifest(fsys fs.FS, name string) (*theme.Manifest, error) {
	manifest, err := theme.LoadFile(fsys, name)
	if err != nil {
		return nil, manifestError(err)
	}
	return manifest, nil
}

func manifestError(err error) error {
	var invalid theme.ValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("themes: %w: %w", render.ErrInvalidArgument, err)
	}
	return fmt.Errorf("themes: %w", err)
}

// Catalog resolves theme selections against a go-theme registry. The first
// registered theme is the default.
type Catalog struct {
	mu           sync.RWMutex
	registry     *theme.MemoryRegistry
	defaultTheme string
}

var _ theme.ThemeSelector = (*Catalog)(nil)

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{registry: theme.NewRegistry()}
}

// Register validates and stores a manifest. Registering the same name and
// version again replaces the stored copy.
func (c *Catalog) Register(manifest *theme.Manifest) error {
	if manifest == nil {
		return fmt.Errorf("themes: manifest is required: %w", render.ErrInvalidArgument)
	}
	if err := c.registry.Register(manifest); err != nil {
		return fmt.Errorf("themes: register %q: %w: %w", manifest.Name, render.ErrInvalidArgument, err)
	}

	c.mu.Lock()
	if c.defaultTheme == "" {
		c.defaultTheme = manifest.Name
	}
	c.mu.Unlock()
	return nil
}

// Provider exposes the registry for other go-theme consumers.
func (c *Catalog) Provider() theme.ThemeProvider {
	return c.registry
}

// Names lists registered themes, sorted.
func (c *Catalog) Names() []string {
	seen := make(map[string]struct{})
	var names []string
	for _, ref := range c.registry.List() {
		if _, ok := seen[ref.Name]; ok {
			continue
		}
		seen[ref.Name] = struct{}{}
		names = append(names, ref.Name)
	}
	sort.Strings(names)
	return names
}

// Select resolves a theme and variant. An empty name selects the default
// theme and an empty variant the base tokens. Unknown themes and variants
// are errors; there is no silent fallback to the default theme.
func (c *Catalog) Select(name, variant string, opts ...theme.QueryOption) (*theme.Selection, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		c.mu.RLock()
		name = c.defaultTheme
		c.mu.RUnlock()
	}

	selector := theme.Selector{Registry: c.registry}
	selection, err := selector.Select(name, strings.TrimSpace(variant), opts...)
	if err != nil {
		return nil, fmt.Errorf("themes: %w: %w", render.ErrInvalidArgument, err)
	}
	if selection.Variant != "" {
		if _, ok := selection.Manifest.Variants[selection.Variant]; !ok {
			return nil, fmt.Errorf("themes: theme %q has no variant %q: %w", name, selection.Variant, render.ErrInvalidArgument)
		}
	}
	return selection, nil
}

// RendererConfig resolves the selection against fallback partials. Only
// tokens that form valid custom property names are exposed as CSS variables;
// dotted class tokens stay in Tokens.
func RendererConfig(selection *theme.Selection, fallbacks map[string]string) *theme.RendererConfig {
	if selection == nil || selection.Manifest == nil {
		return nil
	}
	cfg := selection.RendererTheme(fallbacks)
	cfg.CSSVars = cssVars(cfg.CSSVars)
	return &cfg
}

// CSSVarsStyle renders CSS variables as a :root block, keys sorted.
func CSSVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		b.WriteString("  ")
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}

func cssVars(vars map[string]string) map[string]string {
	out := make(map[string]string, len(vars))
	for key, value := range vars {
		if strings.Contains(key, ".") || strings.TrimSpace(strings.TrimPrefix(key, "--")) == "" {
			continue
		}
		out[key] = value
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
