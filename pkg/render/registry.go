package render

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-uikit/pkg/markup"
)

// Registry stores component definitions by name, providing discovery and
// duplication safeguards.
type Registry struct {
	mu         sync.RWMutex
	components map[string]Definition
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		components: make(map[string]Definition),
	}
}

// Register adds a definition by name. Duplicate names return an error.
func (r *Registry) Register(def Definition) error {
	name := strings.TrimSpace(def.Name)
	if name == "" {
		return fmt.Errorf("render: component name is required: %w", ErrInvalidArgument)
	}
	if def.Render == nil {
		return fmt.Errorf("render: component %q has no render func: %w", name, ErrInvalidArgument)
	}
	def.Name = name

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.components[name]; exists {
		return fmt.Errorf("render: component %q already registered", name)
	}
	r.components[name] = def
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(def Definition) {
	if err := r.Register(def); err != nil {
		panic(err)
	}
}

// Get retrieves a definition by name.
func (r *Registry) Get(name string) (Definition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, ok := r.components[name]
	if !ok {
		return Definition{}, fmt.Errorf("render: component %q: %w", name, ErrUnknownComponent)
	}
	return def, nil
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.components))
	for name := range r.components {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Definitions returns every definition ordered by family then name.
func (r *Registry) Definitions() []Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	defs := make([]Definition, 0, len(r.components))
	for _, def := range r.components {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool {
		if defs[i].Family != defs[j].Family {
			return defs[i].Family < defs[j].Family
		}
		return defs[i].Name < defs[j].Name
	})
	return defs
}

// Has reports whether a component is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.components[name]
	return ok
}

// Render looks up name and renders it within ctx.
func (r *Registry) Render(ctx *Context, name string) (markup.Node, error) {
	def, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	node, err := def.Render(ctx)
	if err != nil {
		return nil, fmt.Errorf("render: component %q: %w", name, err)
	}
	if node == nil {
		return markup.Empty, nil
	}
	return node, nil
}
