package uikit

import (
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-uikit/pkg/render"
)

func TestRenderShowcase(t *testing.T) {
	reg, err := NewRegistry()
	if err != nil {
		t.Fatalf("registry: %v", err)
	}

	var buf strings.Builder
	out, err := RenderShowcase(NewContext(render.WithDeferredScripts()), reg, &buf)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasPrefix(out, "<!DOCTYPE html>") {
		t.Fatalf("missing doctype: %.40s", out)
	}
	if buf.String() != out {
		t.Fatalf("writer did not receive the document")
	}

	if _, err := RenderShowcase(NewContext(), reg); !errors.Is(err, render.ErrInvalidArgument) {
		t.Fatalf("inline context should be rejected, got %v", err)
	}
}

func TestRenderComponent(t *testing.T) {
	reg, err := NewRegistry()
	if err != nil {
		t.Fatalf("registry: %v", err)
	}

	for _, ctx := range []*Context{NewContext(), NewContext(render.WithDeferredScripts())} {
		out, err := RenderComponent(ctx, reg, "flyout.menus")
		if err != nil {
			t.Fatalf("render: %v", err)
		}
		if n := strings.Count(out, `data-uikit-script="flyout"`); n != 1 {
			t.Fatalf("flyout script written %d times", n)
		}
	}

	if _, err := RenderComponent(NewContext(), reg, "nope"); !errors.Is(err, render.ErrUnknownComponent) {
		t.Fatalf("unknown component error = %v", err)
	}
}
