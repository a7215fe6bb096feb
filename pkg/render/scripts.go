package render

import (
	"strings"

	"github.com/goliatone/go-uikit/pkg/markup"
)

// Script is a client-side behaviour shared by every instance of a component.
// Name identifies the script for de-duplication.
type Script struct {
	Name   string
	Src    string
	Inline string
	Module bool
	Defer  bool
}

// Node renders the script tag.
func (s Script) Node() markup.Node {
	attrs := markup.Attrs{markup.A("data-uikit-script", s.Name)}
	if s.Module {
		attrs = append(attrs, markup.A("type", "module"))
	}
	if src := strings.TrimSpace(s.Src); src != "" {
		attrs = append(attrs, markup.A("src", src), markup.Flag("defer", s.Defer))
		return markup.El("script", attrs)
	}
	return markup.El("script", attrs, markup.Raw(s.Inline))
}

// ScriptNodes renders a list of scripts in order.
func ScriptNodes(scripts []Script) markup.Node {
	out := make(markup.Fragment, 0, len(scripts))
	for _, script := range scripts {
		out = append(out, script.Node())
	}
	return out
}
