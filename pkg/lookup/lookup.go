// Package lookup resolves semantic keys (status names, colors, variants) to a
// style and label, falling back to a neutral entry for keys it does not know.
package lookup

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Entry is the resolution of a key: the style class string, the default label
// and, for built-in tables, the translation key for that label.
type Entry struct {
	Style string
	Label string
	Key   string
}

// Table maps lowercase keys to entries.
type Table map[string]Entry

// Resolve lowercases key and looks it up. Unknown keys resolve to
// fallbackStyle with the key itself, first letter upper-cased, as label.
func Resolve(key string, table Table, fallbackStyle string) Entry {
	if entry, ok := table[strings.ToLower(key)]; ok {
		return entry
	}
	return Entry{Style: fallbackStyle, Label: Capitalize(key)}
}

// Lookup reports whether key is present in the table.
func (t Table) Lookup(key string) (Entry, bool) {
	entry, ok := t[strings.ToLower(key)]
	return entry, ok
}

// Keys returns the table keys in no particular order.
func (t Table) Keys() []string {
	keys := make([]string, 0, len(t))
	for key := range t {
		keys = append(keys, key)
	}
	return keys
}

// Variants maps a variant name to its class string.
type Variants map[string]string

// Pick returns the classes for name, or those of fallback when name is unknown.
func (v Variants) Pick(name, fallback string) string {
	if classes, ok := v[strings.ToLower(name)]; ok {
		return classes
	}
	return v[fallback]
}

// Has reports whether name is a known variant.
func (v Variants) Has(name string) bool {
	_, ok := v[strings.ToLower(name)]
	return ok
}

// Capitalize upper-cases the first rune of s and leaves the rest untouched.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	upper := unicode.ToUpper(r)
	if upper == r {
		return s
	}
	return string(upper) + s[size:]
}
