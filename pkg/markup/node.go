package markup

import "strings"

// Node is anything that can be written into an HTML fragment.
type Node interface {
	String() string
	writeTo(sb *strings.Builder)
}

// Text is user content. It is escaped when written.
type Text string

func (t Text) String() string { return Escape(string(t)) }

func (t Text) writeTo(sb *strings.Builder) { sb.WriteString(Escape(string(t))) }

// Raw is a trusted HTML fragment written verbatim.
type Raw string

func (r Raw) String() string { return string(r) }

func (r Raw) writeTo(sb *strings.Builder) { sb.WriteString(string(r)) }

// Trusted marks html as a trusted fragment. The caller vouches that any user
// data inside it has already been escaped.
func Trusted(html string) Raw {
	return Raw(html)
}

// Fragment is an ordered list of sibling nodes.
type Fragment []Node

func (f Fragment) String() string {
	var sb strings.Builder
	f.writeTo(&sb)
	return sb.String()
}

func (f Fragment) writeTo(sb *strings.Builder) {
	for _, node := range f {
		if node == nil {
			continue
		}
		node.writeTo(sb)
	}
}

// Empty is the node rendered by components that have nothing to show.
var Empty Node = Fragment(nil)

// IsEmpty reports whether node renders to the empty string.
func IsEmpty(node Node) bool {
	if node == nil {
		return true
	}
	switch n := node.(type) {
	case Fragment:
		for _, child := range n {
			if !IsEmpty(child) {
				return false
			}
		}
		return true
	case Text:
		return n == ""
	case Raw:
		return n == ""
	}
	return false
}

var voidElements = map[string]struct{}{
	"area": {}, "base": {}, "br": {}, "col": {}, "embed": {}, "hr": {},
	"img": {}, "input": {}, "link": {}, "meta": {}, "source": {},
	"track": {}, "wbr": {},
}

// Element is a tagged HTML element.
type Element struct {
	Tag      string
	Attrs    Attrs
	Children []Node
}

// El returns an element with the given attributes and children.
func El(tag string, attrs Attrs, children ...Node) *Element {
	return &Element{Tag: tag, Attrs: attrs, Children: children}
}

// Append adds children and returns the element.
func (e *Element) Append(children ...Node) *Element {
	e.Children = append(e.Children, children...)
	return e
}

// Void reports whether the element is serialized without a closing tag.
func (e *Element) Void() bool {
	_, ok := voidElements[strings.ToLower(e.Tag)]
	return ok
}

func (e *Element) String() string {
	var sb strings.Builder
	e.writeTo(&sb)
	return sb.String()
}

func (e *Element) writeTo(sb *strings.Builder) {
	if e == nil {
		return
	}
	sb.WriteByte('<')
	sb.WriteString(e.Tag)
	writeAttributes(sb, Merge(nil, e.Attrs), true)
	sb.WriteByte('>')
	if e.Void() {
		return
	}
	for _, child := range e.Children {
		if child == nil {
			continue
		}
		child.writeTo(sb)
	}
	sb.WriteString("</")
	sb.WriteString(e.Tag)
	sb.WriteByte('>')
}

// Render serializes nodes in order.
func Render(nodes ...Node) string {
	var sb strings.Builder
	Fragment(nodes).writeTo(&sb)
	return sb.String()
}

// Texts wraps plain strings as escaped text nodes.
func Texts(values ...string) []Node {
	out := make([]Node, 0, len(values))
	for _, value := range values {
		out = append(out, Text(value))
	}
	return out
}
