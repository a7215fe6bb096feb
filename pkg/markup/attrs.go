package markup

import (
	"fmt"
	"strconv"
	"strings"
)

type attrState uint8

const (
	attrValue attrState = iota
	attrBare
	attrOmit
)

// Attr is a single HTML attribute. The zero value of the state renders as a
// key="value" pair; use Flag and Nil for boolean and absent attributes.
type Attr struct {
	Key   string
	Value string
	state attrState
}

// A returns a key="value" attribute.
func A(key, value string) Attr {
	return Attr{Key: key, Value: value}
}

// Flag returns a boolean attribute: rendered bare when on, omitted otherwise.
func Flag(key string, on bool) Attr {
	if on {
		return Attr{Key: key, state: attrBare}
	}
	return Attr{Key: key, state: attrOmit}
}

// Nil returns an attribute that is never rendered. Merging a Nil over an
// existing key removes that key from the output.
func Nil(key string) Attr {
	return Attr{Key: key, state: attrOmit}
}

// Int returns a numeric attribute.
func Int(key string, value int) Attr {
	return Attr{Key: key, Value: strconv.Itoa(value)}
}

// Any coerces a loosely typed value (decoded YAML/JSON, template data) into an
// attribute: nil omits, bools behave like Flag, everything else renders its
// string form.
func Any(key string, value any) Attr {
	switch v := value.(type) {
	case nil:
		return Nil(key)
	case bool:
		return Flag(key, v)
	case string:
		return A(key, v)
	case fmt.Stringer:
		return A(key, v.String())
	default:
		return A(key, fmt.Sprint(v))
	}
}

// Omitted reports whether the attribute renders nothing.
func (a Attr) Omitted() bool {
	return a.state == attrOmit
}

// Bare reports whether the attribute renders as a bare key.
func (a Attr) Bare() bool {
	return a.state == attrBare
}

func (a Attr) write(sb *strings.Builder) bool {
	key := strings.TrimSpace(a.Key)
	if key == "" {
		return false
	}
	switch a.state {
	case attrOmit:
		return false
	case attrBare:
		sb.WriteString(key)
	default:
		sb.WriteString(key)
		sb.WriteString(`="`)
		sb.WriteString(Escape(a.Value))
		sb.WriteByte('"')
	}
	return true
}

// Attrs is an ordered attribute map. Order is insertion order; a key that
// appears more than once keeps its first position and its last value.
type Attrs []Attr

// Lookup returns the last attribute stored under key.
func (a Attrs) Lookup(key string) (Attr, bool) {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i].Key == key {
			return a[i], true
		}
	}
	return Attr{}, false
}

// Value returns the string value stored under key, or "" when the key is
// missing, omitted or bare.
func (a Attrs) Value(key string) string {
	attr, ok := a.Lookup(key)
	if !ok || attr.state != attrValue {
		return ""
	}
	return attr.Value
}

// Has reports whether key is present and renders something.
func (a Attrs) Has(key string) bool {
	attr, ok := a.Lookup(key)
	return ok && attr.state != attrOmit
}

// Set returns a copy of a with attr stored under its key. An existing key is
// replaced in place, a new key is appended.
func (a Attrs) Set(attr Attr) Attrs {
	out := make(Attrs, 0, len(a)+1)
	replaced := false
	for _, existing := range a {
		if existing.Key == attr.Key {
			if !replaced {
				out = append(out, attr)
				replaced = true
			}
			continue
		}
		out = append(out, existing)
	}
	if !replaced {
		out = append(out, attr)
	}
	return out
}

// Without returns a copy of a with the given keys removed.
func (a Attrs) Without(keys ...string) Attrs {
	if len(a) == 0 {
		return nil
	}
	drop := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		drop[key] = struct{}{}
	}
	out := make(Attrs, 0, len(a))
	for _, attr := range a {
		if _, skip := drop[attr.Key]; skip {
			continue
		}
		out = append(out, attr)
	}
	return out
}

// String renders the attributes, see RenderAttributes.
func (a Attrs) String() string {
	return RenderAttributes(a)
}

// Merge layers overrides on top of base: keys keep the position they first
// appeared at, later values win, new keys are appended in order.
func Merge(base Attrs, overrides ...Attrs) Attrs {
	out := make(Attrs, 0, len(base))
	index := make(map[string]int, len(base))
	add := func(attrs Attrs) {
		for _, attr := range attrs {
			if pos, ok := index[attr.Key]; ok {
				out[pos] = attr
				continue
			}
			index[attr.Key] = len(out)
			out = append(out, attr)
		}
	}
	add(base)
	for _, override := range overrides {
		add(override)
	}
	return out
}

// RenderAttributes serializes attributes separated by single spaces. Omitted
// attributes vanish, bare attributes render as their key, every value is
// escaped.
func RenderAttributes(attrs Attrs) string {
	if len(attrs) == 0 {
		return ""
	}
	var sb strings.Builder
	writeAttributes(&sb, Merge(nil, attrs), false)
	return sb.String()
}

// writeAttributes writes normalized attributes. With leadingSpace each
// attribute is prefixed by a space, which is what element serialization needs.
func writeAttributes(sb *strings.Builder, attrs Attrs, leadingSpace bool) {
	first := true
	for _, attr := range attrs {
		if attr.state == attrOmit || strings.TrimSpace(attr.Key) == "" {
			continue
		}
		if leadingSpace || !first {
			sb.WriteByte(' ')
		}
		attr.write(sb)
		first = false
	}
}
