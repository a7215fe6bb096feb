package render

import (
	"errors"

	"github.com/goliatone/go-uikit/pkg/markup"
)

var (
	// ErrInvalidArgument reports input rejected at a dynamic boundary (config
	// files, theme manifests, HTTP parameters).
	ErrInvalidArgument = errors.New("render: invalid argument")
	// ErrUnknownComponent is returned when a registry lookup misses.
	ErrUnknownComponent = errors.New("render: unknown component")
)

// Component renders a named fragment within a session.
type Component func(ctx *Context) (markup.Node, error)

// Definition describes a registered component.
type Definition struct {
	Name        string
	Family      string
	Description string
	Render      Component
}
