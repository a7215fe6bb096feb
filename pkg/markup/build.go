package markup

// Build renders the common component shape: an element whose class attribute
// is the computed class list followed by the caller's class, with the
// remaining caller attributes merged over defaults. The class attribute is
// always written first.
func Build(tag string, classes []ClassEntry, defaults, extra Attrs, children ...Node) *Element {
	entries := make([]ClassEntry, 0, len(classes)+2)
	entries = append(entries, classes...)
	if defaults.Has("class") {
		entries = append(entries, C(defaults.Value("class")))
	}
	if extra.Has("class") {
		entries = append(entries, C(extra.Value("class")))
	}
	attrs := make(Attrs, 0, len(defaults)+len(extra)+1)
	if class := ClassList(entries...); class != "" {
		attrs = append(attrs, A("class", class))
	}
	attrs = append(attrs, Merge(defaults.Without("class"), extra.Without("class"))...)
	return El(tag, attrs, children...)
}

// Div is Build for a div with no default attributes.
func Div(classes []ClassEntry, extra Attrs, children ...Node) *Element {
	return Build("div", classes, nil, extra, children...)
}

// Tag returns an element whose only attribute is a class string.
func Tag(tag, class string, children ...Node) *Element {
	if class == "" {
		return El(tag, nil, children...)
	}
	return El(tag, Attrs{A("class", class)}, children...)
}
