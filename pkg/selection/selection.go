// Package selection marks which child of a controlled container is selected
// before the children render, so the markup carries the selection state the
// toolkit reads when it constructs the container's widget.
package selection

import (
	"github.com/go-drift/materialweb/pkg/props"
	"github.com/go-drift/materialweb/pkg/vdom"
)

// Key returns the selection key of child: its normalized "value" prop, or
// its "data-value" prop when "value" is absent or nil. An empty string is a
// declared value and does not fall back. Non-element children have no key.
func Key(child vdom.Node) any {
	e, ok := vdom.AsElement(child)
	if !ok {
		return nil
	}
	if v := e.Props.Value("value"); v != nil {
		return v
	}
	return e.Props.Value("data-value")
}

// IsSelected reports whether child's key equals current.
func IsSelected(child vdom.Node, current any) bool {
	key := Key(child)
	return key != nil && props.Equal(key, current)
}

// Propagate returns a copy of children in which every element child carries
// a "selected" flag and a "tabIndex" equal to its position. When enabled the
// clones also carry "role"="option" and "aria-selected". Other children pass
// through unchanged, and the input descriptions are never modified.
//
// With enabled false no child is selected, and any "role" or "aria-selected"
// the child declared is removed.
func Propagate(children []vdom.Node, current any, enabled bool) []vdom.Node {
	current = props.Normalize(current)
	return vdom.ForEachChild(children, func(child vdom.Node, i int) vdom.Node {
		e, ok := vdom.AsElement(child)
		if !ok {
			return child
		}
		selected := enabled && IsSelected(e, current)
		extra := props.New("selected", selected, "tabIndex", i)
		if enabled {
			extra = extra.With("aria-selected", ariaBool(selected)).With("role", "option")
		} else {
			extra = extra.With("aria-selected", nil).With("role", nil)
		}
		return vdom.CloneWithProps(e, extra)
	})
}

// SelectedIndex returns the position of the first child whose key equals
// current, or -1.
func SelectedIndex(children []vdom.Node, current any) int {
	for i, c := range children {
		if IsSelected(c, current) {
			return i
		}
	}
	return -1
}

func ariaBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
