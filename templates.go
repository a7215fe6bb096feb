package uikit

import (
	"io/fs"

	"github.com/goliatone/go-uikit/pkg/page"
)

// EmbeddedTemplates exposes the built-in page layout so callers can reuse or
// extend it with their own template engine.
func EmbeddedTemplates() fs.FS {
	return page.Templates()
}
