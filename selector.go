package selscan

import "strings"

// SelectorKind is the kind of CSS selector being extracted.
type SelectorKind int

// SelectorKind constants.
const (
	SelectorClass SelectorKind = iota + 1
	SelectorID
)

// String returns the kind's name.
func (k SelectorKind) String() string {
	switch k {
	case SelectorClass:
		return "class"
	case SelectorID:
		return "id"
	default:
		return "unknown"
	}
}

// Matches reports whether an attribute name is a source of this kind of
// selector. className is the JSX spelling of class.
func (k SelectorKind) Matches(attr string) bool {
	switch k {
	case SelectorClass:
		return attr == "class" || attr == "className"
	case SelectorID:
		return attr == "id"
	default:
		return false
	}
}

// Format normalizes a raw attribute value into a selector string.
// Returns false if the value contributes nothing.
//
// Class values become "." followed by their whitespace-separated tokens
// joined by ".", so "a b" yields ".a.b". Id values become "#" followed by
// the raw value.
func (k SelectorKind) Format(value string) (string, bool) {
	switch k {
	case SelectorClass:
		fields := strings.Fields(value)
		if len(fields) == 0 {
			return "", false
		}
		return "." + strings.Join(fields, "."), true
	case SelectorID:
		if value == "" {
			return "", false
		}
		return "#" + value, true
	default:
		return "", false
	}
}

// Selectors returns the selector strings n contributes for kind, in
// attribute order.
func (k SelectorKind) Selectors(n *Node) []string {
	if !n.IsTag() {
		return nil
	}
	var out []string
	for _, a := range n.Attrs {
		if !k.Matches(a.Name) {
			continue
		}
		if s, ok := k.Format(a.Value); ok {
			out = append(out, s)
		}
	}
	return out
}
