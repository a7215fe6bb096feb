// Package uikit is the entry point for rendering the component showcase and
// single registered components. The component families live under pkg/ui.
package uikit

import (
	"fmt"
	"io"

	"github.com/goliatone/go-uikit/pkg/markup"
	"github.com/goliatone/go-uikit/pkg/page"
	"github.com/goliatone/go-uikit/pkg/render"
	"github.com/goliatone/go-uikit/pkg/showcase"
)

// Context aliases render.Context for callers that only use the root package.
type Context = render.Context

// Option aliases render.Option.
type Option = render.Option

// NewContext creates a rendering session.
func NewContext(opts ...Option) *Context {
	return render.NewContext(opts...)
}

// NewRegistry returns a registry holding every showcase demo.
func NewRegistry() (*render.Registry, error) {
	return showcase.NewRegistry()
}

// RenderShowcase renders the showcase page. Scripts are collected and written
// once before </body>, whatever the script mode of ctx.
func RenderShowcase(ctx *Context, reg *render.Registry, out ...io.Writer) (string, error) {
	if ctx == nil || !ctx.Deferred() {
		return "", fmt.Errorf("uikit: showcase needs a context with deferred scripts: %w", render.ErrInvalidArgument)
	}
	doc, err := showcase.Document(ctx, reg)
	if err != nil {
		return "", err
	}
	pages, err := page.New()
	if err != nil {
		return "", err
	}
	return pages.Render(ctx, doc, out...)
}

// RenderComponent renders one registered component as a fragment, followed
// by any scripts ctx deferred while rendering it.
func RenderComponent(ctx *Context, reg *render.Registry, name string) (string, error) {
	node, err := reg.Render(ctx, name)
	if err != nil {
		return "", err
	}
	return markup.Render(node, render.ScriptNodes(ctx.Scripts())), nil
}
