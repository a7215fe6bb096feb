// Package icon renders Font Awesome glyphs and the few inline SVGs shared by
// several component families.
package icon

import (
	"strings"

	"github.com/goliatone/go-uikit/pkg/markup"
)

const (
	closePath     = "M4.293 4.293a1 1 0 011.414 0L10 8.586l4.293-4.293a1 1 0 111.414 1.414L11.414 10l4.293 4.293a1 1 0 01-1.414 1.414L10 11.414l-4.293 4.293a1 1 0 01-1.414-1.414L8.586 10 4.293 5.707a1 1 0 010-1.414z"
	checkPath     = "M16.707 5.293a1 1 0 010 1.414l-8 8a1 1 0 01-1.414 0l-4-4a1 1 0 011.414-1.414L8 12.586l7.293-7.293a1 1 0 011.414 0z"
	trendUpPath   = "M5 10l7-7m0 0l7 7m-7-7v18"
	trendDownPath = "M19 14l-7 7m0 0l-7-7m7 7V3"
	calendarPath  = "M8 7V3m8 4V3m-9 8h10M5 21h14a2 2 0 002-2V7a2 2 0 00-2-2H5a2 2 0 00-2 2v12a2 2 0 002 2z"
	quotePath     = "M10 8c-3.3 0-6 2.7-6 6v10h10V14H6c0-2.2 1.8-4 4-4V8zm18 0c-3.3 0-6 2.7-6 6v10h10V14h-8c0-2.2 1.8-4 4-4V8z"
)

// FA renders a Font Awesome icon. extra classes (spacing, color) are appended
// after the icon class. A blank class renders nothing.
func FA(class string, extra ...string) markup.Node {
	if strings.TrimSpace(class) == "" {
		return markup.Empty
	}
	entries := []markup.ClassEntry{markup.C(class)}
	for _, e := range extra {
		entries = append(entries, markup.C(e))
	}
	return markup.El("i", markup.Attrs{
		markup.A("class", markup.ClassList(entries...)),
		markup.A("aria-hidden", "true"),
	})
}

func solid(class, viewBox, path string) markup.Node {
	return markup.El("svg", markup.Attrs{
		markup.A("class", class),
		markup.A("fill", "currentColor"),
		markup.A("viewBox", viewBox),
		markup.A("aria-hidden", "true"),
	}, markup.El("path", markup.Attrs{
		markup.A("fill-rule", "evenodd"),
		markup.A("d", path),
		markup.A("clip-rule", "evenodd"),
	}))
}

func outline(class, path string) markup.Node {
	return markup.El("svg", markup.Attrs{
		markup.A("class", class),
		markup.A("fill", "none"),
		markup.A("viewBox", "0 0 24 24"),
		markup.A("stroke", "currentColor"),
		markup.A("aria-hidden", "true"),
	}, markup.El("path", markup.Attrs{
		markup.A("stroke-linecap", "round"),
		markup.A("stroke-linejoin", "round"),
		markup.A("stroke-width", "2"),
		markup.A("d", path),
	}))
}

// Close is the × glyph used by dismiss buttons.
func Close(class string) markup.Node {
	return solid(class, "0 0 20 20", closePath)
}

// Check is the check mark used in feature lists.
func Check(class string) markup.Node {
	return solid(class, "0 0 20 20", checkPath)
}

// Trend is an up or down arrow.
func Trend(up bool, class string) markup.Node {
	if up {
		return outline(class, trendUpPath)
	}
	return outline(class, trendDownPath)
}

// Calendar is the outline calendar glyph.
func Calendar(class string) markup.Node {
	return outline(class, calendarPath)
}

// Quote is the opening quotation mark used by testimonials.
func Quote(class string) markup.Node {
	return markup.El("svg", markup.Attrs{
		markup.A("class", class),
		markup.A("fill", "currentColor"),
		markup.A("viewBox", "0 0 32 32"),
		markup.A("aria-hidden", "true"),
	}, markup.El("path", markup.Attrs{markup.A("d", quotePath)}))
}

// SVG renders caller supplied icon markup after sanitizing it.
func SVG(raw string) markup.Node {
	return markup.SanitizeSVG(raw)
}
