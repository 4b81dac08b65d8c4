package vdom

import "github.com/go-drift/materialweb/pkg/props"

// ForEachChild maps fn over children in declaration order and returns the
// results as a new slice. index counts every child, including text and nil.
func ForEachChild(children []Node, fn func(child Node, index int) Node) []Node {
	if len(children) == 0 {
		return nil
	}
	out := make([]Node, len(children))
	for i, c := range children {
		out[i] = fn(c, i)
	}
	return out
}

// CloneWithProps returns a copy of e whose props are e's props overlaid with
// overrides. Overrides holding a nil value remove the prop from the clone.
// The children slice is copied; e itself is left untouched.
func CloneWithProps(e *Element, overrides *props.Props) *Element {
	merged := e.Props.Clone()
	var drop []string
	overrides.Range(func(k string, v any) bool {
		if v == nil {
			drop = append(drop, k)
		} else {
			merged = merged.With(k, v)
		}
		return true
	})
	if len(drop) > 0 {
		merged = merged.Omit(drop...)
	}

	var children []Node
	if e.Children != nil {
		children = make([]Node, len(e.Children))
		copy(children, e.Children)
	}
	return &Element{
		Type:     e.Type,
		Key:      e.Key,
		Props:    merged,
		Children: children,
	}
}

// AnnotateChildren clones every element child with extra merged in and leaves
// other children as they are.
func AnnotateChildren(children []Node, extra *props.Props) []Node {
	return ForEachChild(children, func(child Node, _ int) Node {
		if e, ok := AsElement(child); ok {
			return CloneWithProps(e, extra)
		}
		return child
	})
}
