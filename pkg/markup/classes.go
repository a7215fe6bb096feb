package markup

import "strings"

// ClassEntry is one item of a class list: included when On is true.
type ClassEntry struct {
	Name string
	On   bool
}

// C returns an unconditional class entry.
func C(name string) ClassEntry {
	return ClassEntry{Name: name, On: true}
}

// If returns a class entry included only when cond holds.
func If(name string, cond bool) ClassEntry {
	return ClassEntry{Name: name, On: cond}
}

// Either picks between two class strings.
func Either(cond bool, whenTrue, whenFalse string) ClassEntry {
	if cond {
		return C(whenTrue)
	}
	return C(whenFalse)
}

// ClassList joins the enabled, non-blank entries with single spaces. Order is
// preserved and duplicate tokens are kept as given.
func ClassList(entries ...ClassEntry) string {
	if len(entries) == 0 {
		return ""
	}
	parts := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.On {
			continue
		}
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			continue
		}
		parts = append(parts, name)
	}
	return strings.Join(parts, " ")
}

// Classes is shorthand for a list of unconditional entries.
func Classes(names ...string) []ClassEntry {
	out := make([]ClassEntry, 0, len(names))
	for _, name := range names {
		out = append(out, C(name))
	}
	return out
}
