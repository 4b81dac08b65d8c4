// Package vdom describes what a component renders: host elements, component
// elements, text, and refs to the concrete nodes they produce.
//
// Descriptions are values. Nothing in this package or in the runtime mutates an
// Element after it is built; CloneWithProps and ForEachChild produce new ones.
package vdom

import (
	"fmt"

	"github.com/go-drift/materialweb/pkg/props"
	"golang.org/x/net/html"
)

// Node is anything that can appear as a child: *Element, string (text), other
// primitives (rendered as text), or nil (renders nothing).
type Node any

// Element describes one rendered element. Type is a lowercase tag name for
// host elements, or a component value (see package core) otherwise.
type Element struct {
	Type     any
	Key      string
	Props    *props.Props
	Children []Node
}

// H describes a host element.
//
//	vdom.H("ul", props.New("className", "mdc-list"), items...)
func H(tag string, p *props.Props, children ...Node) *Element {
	return New(tag, p, children...)
}

// New describes an element of any type. Nested []Node and []*Element children
// are flattened in place. A "key" prop is lifted into Key.
func New(typ any, p *props.Props, children ...Node) *Element {
	e := &Element{Type: typ, Props: p, Children: Flatten(children)}
	if p.Has("key") {
		e.Key = props.ToString(p.Value("key"))
		e.Props = p.Omit("key")
	}
	return e
}

// Tag returns the host tag, or "" for component elements.
func (e *Element) Tag() string {
	if tag, ok := e.Type.(string); ok {
		return tag
	}
	return ""
}

// IsHost reports whether e describes a host element.
func (e *Element) IsHost() bool {
	_, ok := e.Type.(string)
	return ok
}

func (e *Element) String() string {
	if e.IsHost() {
		return fmt.Sprintf("<%s>", e.Tag())
	}
	return fmt.Sprintf("<%T>", e.Type)
}

// AsElement returns n as an *Element when it is one.
func AsElement(n Node) (*Element, bool) {
	e, ok := n.(*Element)
	return e, ok && e != nil
}

// Flatten expands nested child slices into a single sequence.
func Flatten(children []Node) []Node {
	var out []Node
	for _, c := range children {
		switch t := c.(type) {
		case []Node:
			out = append(out, Flatten(t)...)
		case []*Element:
			for _, e := range t {
				out = append(out, e)
			}
		default:
			out = append(out, c)
		}
	}
	return out
}

// Ref is bound by the runtime to the concrete node of the host element whose
// "ref" prop holds it. It is nil before mount and after unmount.
type Ref struct {
	node *html.Node
}

// NewRef creates an unbound ref.
func NewRef() *Ref {
	return &Ref{}
}

// Current returns the bound node, or nil.
func (r *Ref) Current() *html.Node {
	if r == nil {
		return nil
	}
	return r.node
}

// Bind attaches the ref to n. Passing nil releases it.
func (r *Ref) Bind(n *html.Node) {
	r.node = n
}
