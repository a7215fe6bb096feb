package markup

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	contentPolicyOnce sync.Once
	contentPolicy     *bluemonday.Policy

	svgPolicyOnce sync.Once
	svgPolicy     *bluemonday.Policy
)

// Sanitize runs untrusted HTML through a user-generated-content policy and
// returns the result as a trusted fragment.
func Sanitize(html string) Raw {
	trimmed := strings.TrimSpace(html)
	if trimmed == "" {
		return ""
	}
	return Raw(contentSanitizer().Sanitize(trimmed))
}

// SanitizeSVG keeps only inline SVG icon markup. Anything that is not an
// allow-listed SVG element or attribute is dropped.
func SanitizeSVG(svg string) Raw {
	trimmed := strings.TrimSpace(svg)
	if trimmed == "" {
		return ""
	}
	return Raw(strings.TrimSpace(svgSanitizer().Sanitize(trimmed)))
}

func contentSanitizer() *bluemonday.Policy {
	contentPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.AllowAttrs("class").Globally()
		contentPolicy = policy
	})
	return contentPolicy
}

func svgSanitizer() *bluemonday.Policy {
	svgPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements(
			"svg", "g", "path", "circle", "rect", "line", "polyline", "polygon",
			"ellipse", "title", "desc", "defs", "use", "clipPath",
		)
		policy.AllowAttrs(
			"xmlns", "viewBox", "width", "height", "fill", "stroke",
			"stroke-width", "stroke-linecap", "stroke-linejoin", "aria-hidden",
			"role", "focusable", "class",
		).OnElements("svg")
		policy.AllowAttrs("href", "xlink:href", "clip-path").OnElements("use")
		for _, el := range []string{"path", "circle", "rect", "line", "polyline", "polygon", "ellipse"} {
			policy.AllowAttrs(
				"d", "cx", "cy", "r", "x", "y", "x1", "y1", "x2", "y2",
				"points", "rx", "ry", "fill", "stroke", "stroke-width",
				"stroke-linecap", "stroke-linejoin", "fill-rule", "clip-rule", "class",
			).OnElements(el)
		}
		policy.AllowAttrs("id", "clipPathUnits").OnElements("clipPath")
		policy.AllowAttrs("id").OnElements("defs", "g")
		svgPolicy = policy
	})
	return svgPolicy
}
