// Package form renders labelled form controls, error summaries and hidden
// inputs, and maps server validation payloads back onto field names.
package form

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-uikit/pkg/markup"
	"github.com/goliatone/go-uikit/pkg/render"
)

const (
	inputBase  = "w-full px-4 py-2 border border-gray-300 rounded-lg focus:ring-2 focus:ring-blue-500 focus:border-transparent"
	inputError = "border-red-500 focus:ring-red-500"
	labelBase  = "block text-sm font-medium text-gray-700 mb-2"

	// DefaultColor is the initial value of color pickers.
	DefaultColor = "#3B82F6"
	// DefaultDatetimeType is used for unknown date input types.
	DefaultDatetimeType = "datetime-local"
	// DefaultColumns is used by Grid for out of range column counts.
	DefaultColumns = 2
)

var datetimeTypes = map[string]struct{}{
	"datetime-local": {}, "date": {}, "time": {}, "month": {}, "week": {},
}

// Option is one choice of a select, in display order.
type Option struct {
	Value string
	Label string
}

// Choices builds options from value, label pairs. A trailing value without a
// label is its own label.
func Choices(pairs ...string) []Option {
	out := make([]Option, 0, (len(pairs)+1)/2)
	for i := 0; i < len(pairs); i += 2 {
		opt := Option{Value: pairs[i], Label: pairs[i]}
		if i+1 < len(pairs) {
			opt.Label = pairs[i+1]
		}
		out = append(out, opt)
	}
	return out
}

// FieldOption configures a single control.
type FieldOption func(*field)

type field struct {
	ctx      *render.Context
	attrs    markup.Attrs
	err      string
	help     string
	value    string
	hasValue bool
	required bool
}

// WithAttrs adds caller attributes to the control. class is appended to the
// computed classes; id, type and the other defaults are overridden.
func WithAttrs(attrs ...markup.Attr) FieldOption {
	return func(f *field) {
		f.attrs = append(f.attrs, attrs...)
	}
}

// WithError marks the control invalid and shows message below it.
func WithError(message string) FieldOption {
	return func(f *field) {
		f.err = strings.TrimSpace(message)
	}
}

// WithHelp shows a hint below the control.
func WithHelp(text string) FieldOption {
	return func(f *field) {
		f.help = strings.TrimSpace(text)
	}
}

// WithValue sets the initial value: the value attribute of inputs or the
// content of a textarea.
func WithValue(value string) FieldOption {
	return func(f *field) {
		f.value = value
		f.hasValue = true
	}
}

// Required marks the control required and adds an asterisk to its label.
func Required() FieldOption {
	return func(f *field) {
		f.required = true
	}
}

// WithContext translates the required marker title.
func WithContext(ctx *render.Context) FieldOption {
	return func(f *field) {
		f.ctx = ctx
	}
}

func newField(opts []FieldOption) *field {
	f := &field{}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}
	if a, ok := f.attrs.Lookup("required"); ok && !a.Omitted() {
		f.required = true
	}
	return f
}

// id is the caller's id attribute or fallback.
func (f *field) id(fallback string) string {
	if id := f.attrs.Value("id"); id != "" {
		return id
	}
	return fallback
}

// aria appends validation and description attributes for the control id.
func (f *field) aria(id string, defaults markup.Attrs) markup.Attrs {
	var described []string
	if f.err != "" {
		defaults = append(defaults, markup.A("aria-invalid", "true"))
		described = append(described, id+"-error")
	}
	if f.help != "" {
		described = append(described, id+"-help")
	}
	if len(described) > 0 {
		defaults = append(defaults, markup.A("aria-describedby", strings.Join(described, " ")))
	}
	if f.required {
		defaults = append(defaults, markup.Flag("required", true))
	}
	return defaults
}

func (f *field) label(id, text string) markup.Node {
	el := markup.El("label", markup.Attrs{markup.A("for", id), markup.A("class", labelBase)}, markup.Text(text))
	if f.required {
		el.Append(markup.Text(" "), markup.El("span", markup.Attrs{
			markup.A("class", "text-red-500"),
			markup.A("title", f.ctx.Translate("form.required", "obligatoire")),
		}, markup.Text("*")))
	}
	return el
}

// feedback renders the error then the help text.
func (f *field) feedback(id string) markup.Node {
	out := markup.Fragment{}
	if f.err != "" {
		out = append(out, markup.El("p", markup.Attrs{
			markup.A("id", id+"-error"),
			markup.A("class", "mt-1 text-sm text-red-600"),
		}, markup.Text(f.err)))
	}
	if f.help != "" {
		out = append(out, markup.El("p", markup.Attrs{
			markup.A("id", id+"-help"),
			markup.A("class", "mt-1 text-sm text-gray-500"),
		}, markup.Text(f.help)))
	}
	return out
}

func (f *field) group(id, label string, control markup.Node) markup.Node {
	return markup.Tag("div", "mb-4", f.label(id, label), control, f.feedback(id))
}

func (f *field) valueAttr(defaults markup.Attrs) markup.Attrs {
	if f.hasValue {
		defaults = append(defaults, markup.A("value", f.value))
	}
	return defaults
}

// Input renders a labelled text input. Pass a type attribute for email,
// password, number and the like.
func Input(name, label string, opts ...FieldOption) markup.Node {
	f := newField(opts)
	id := f.id(name)
	defaults := f.valueAttr(markup.Attrs{markup.A("type", "text"), markup.A("id", id), markup.A("name", name)})
	control := markup.Build("input", []markup.ClassEntry{
		markup.C(inputBase),
		markup.If(inputError, f.err != ""),
	}, f.aria(id, defaults), f.attrs)
	return f.group(id, label, control)
}

// Textarea renders a labelled textarea of four rows. A value attribute is
// used as the content, like WithValue.
func Textarea(name, label string, opts ...FieldOption) markup.Node {
	f := newField(opts)
	if v, ok := f.attrs.Lookup("value"); ok {
		f.value, f.hasValue = v.Value, true
		f.attrs = f.attrs.Without("value")
	}
	id := f.id(name)
	defaults := markup.Attrs{markup.A("id", id), markup.A("name", name), markup.Int("rows", 4)}
	control := markup.Build("textarea", []markup.ClassEntry{
		markup.C(inputBase),
		markup.If(inputError, f.err != ""),
	}, f.aria(id, defaults), f.attrs, markup.Text(f.value))
	return f.group(id, label, control)
}

// Select renders a labelled dropdown. The option whose value equals selected
// is marked selected.
func Select(name, label string, options []Option, selected string, opts ...FieldOption) markup.Node {
	f := newField(opts)
	id := f.id(name)
	items := make([]markup.Node, 0, len(options))
	for _, opt := range options {
		items = append(items, markup.El("option", markup.Attrs{
			markup.A("value", opt.Value),
			markup.Flag("selected", opt.Value == selected),
		}, markup.Text(opt.Label)))
	}
	control := markup.Build("select", []markup.ClassEntry{
		markup.C(inputBase),
		markup.C("cursor-pointer"),
		markup.If(inputError, f.err != ""),
	}, f.aria(id, markup.Attrs{markup.A("id", id), markup.A("name", name)}), f.attrs, items...)
	return f.group(id, label, control)
}

// Checkbox renders a checkbox with its label on the right.
func Checkbox(name, label string, checked bool, opts ...FieldOption) markup.Node {
	f := newField(opts)
	id := f.id(name)
	defaults := f.valueAttr(markup.Attrs{
		markup.A("type", "checkbox"),
		markup.A("id", id),
		markup.A("name", name),
		markup.Flag("checked", checked),
	})
	control := markup.Build("input", []markup.ClassEntry{
		markup.C("h-4 w-4 text-blue-600 focus:ring-blue-500 border-gray-300 rounded"),
	}, f.aria(id, defaults), f.attrs)
	return markup.Fragment{
		markup.Tag("div", "mb-4 flex items-start",
			control,
			markup.El("label", markup.Attrs{markup.A("for", id), markup.A("class", "ml-3 text-sm text-gray-700")}, markup.Text(label)),
		),
		f.feedback(id),
	}
}

// Radio renders one radio button. Its id is name_value so that several
// buttons of a group get distinct ids.
func Radio(name, value, label string, checked bool, opts ...FieldOption) markup.Node {
	f := newField(opts)
	id := f.id(name + "_" + value)
	control := markup.Build("input", []markup.ClassEntry{
		markup.C("h-4 w-4 text-blue-600 focus:ring-blue-500 border-gray-300"),
	}, f.aria(id, markup.Attrs{
		markup.A("type", "radio"),
		markup.A("id", id),
		markup.A("name", name),
		markup.A("value", value),
		markup.Flag("checked", checked),
	}), f.attrs)
	return markup.Tag("div", "flex items-center mb-2",
		control,
		markup.El("label", markup.Attrs{markup.A("for", id), markup.A("class", "ml-3 text-sm text-gray-700")}, markup.Text(label)),
	)
}

// File renders a labelled file upload input.
func File(name, label string, opts ...FieldOption) markup.Node {
	f := newField(opts)
	id := f.id(name)
	control := markup.Build("input", []markup.ClassEntry{
		markup.C("block w-full text-sm text-gray-900 border border-gray-300 rounded-lg cursor-pointer bg-gray-50 focus:outline-none"),
		markup.If("border-red-500", f.err != ""),
	}, f.aria(id, markup.Attrs{markup.A("type", "file"), markup.A("id", id), markup.A("name", name)}), f.attrs)
	return f.group(id, label, control)
}

// Color renders a labelled color picker. An empty value uses DefaultColor.
func Color(name, label, value string, opts ...FieldOption) markup.Node {
	f := newField(opts)
	if value == "" {
		value = DefaultColor
	}
	id := f.id(name)
	control := markup.Build("input", []markup.ClassEntry{
		markup.C("w-full h-12 border border-gray-300 rounded-lg cursor-pointer"),
	}, f.aria(id, markup.Attrs{
		markup.A("type", "color"),
		markup.A("id", id),
		markup.A("name", name),
		markup.A("value", value),
	}), f.attrs)
	return f.group(id, label, control)
}

// Datetime renders a labelled date or time input. kind is datetime-local,
// date, time, month or week; anything else is datetime-local.
func Datetime(name, label, kind string, opts ...FieldOption) markup.Node {
	f := newField(opts)
	kind = strings.ToLower(strings.TrimSpace(kind))
	if _, ok := datetimeTypes[kind]; !ok {
		kind = DefaultDatetimeType
	}
	id := f.id(name)
	defaults := f.valueAttr(markup.Attrs{markup.A("type", kind), markup.A("id", id), markup.A("name", name)})
	control := markup.Build("input", []markup.ClassEntry{
		markup.C(inputBase),
		markup.If(inputError, f.err != ""),
	}, f.aria(id, defaults), f.attrs)
	return f.group(id, label, control)
}

// Grid lays fields out in cols columns. Counts outside 1..12 use two columns.
func Grid(cols int, fields ...markup.Node) markup.Node {
	if cols < 1 || cols > 12 {
		cols = DefaultColumns
	}
	return markup.Tag("div", "grid grid-cols-"+strconv.Itoa(cols)+" gap-6", fields...)
}

// ErrorSummary lists validation messages above a form. Blank and duplicate
// messages are dropped; nothing is rendered when none remain.
func ErrorSummary(ctx *render.Context, messages []string, attrs ...markup.Attr) markup.Node {
	messages = normalizeMessages(messages)
	if len(messages) == 0 {
		return markup.Empty
	}
	items := make([]markup.Node, 0, len(messages))
	for _, message := range messages {
		items = append(items, markup.Tag("li", "", markup.Text(message)))
	}
	return markup.Build("div", markup.Classes("rounded-lg bg-red-50 border border-red-200 p-4 mb-4"),
		markup.Attrs{markup.A("role", "alert"), markup.A("aria-live", "assertive")}, attrs,
		markup.Tag("p", "text-sm font-medium text-red-800",
			markup.Text(ctx.Translate("form.errors.summary", "Veuillez corriger les erreurs suivantes")),
		),
		markup.Tag("ul", "mt-2 list-disc list-inside text-sm text-red-700", items...),
	)
}
