package markup

import (
	"strings"
	"unicode/utf8"
)

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// Escape encodes the five HTML special characters so the result is safe both
// as text content and inside a double or single quoted attribute value.
// Invalid UTF-8 sequences are replaced with U+FFFD.
func Escape(value string) string {
	if value == "" {
		return ""
	}
	if !utf8.ValidString(value) {
		value = strings.ToValidUTF8(value, "�")
	}
	return htmlEscaper.Replace(value)
}
