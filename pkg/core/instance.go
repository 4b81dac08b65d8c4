package core

import (
	"github.com/go-drift/materialweb/pkg/dom"
	"github.com/go-drift/materialweb/pkg/props"
	"github.com/go-drift/materialweb/pkg/vdom"
	"golang.org/x/net/html"
)

// instance is one mounted occurrence of a node description. Every instance
// is represented by exactly one document node at a time.
type instance interface {
	domNode() *html.Node
	canUpdate(next vdom.Node) bool
	update(next vdom.Node)
	unmount()
}

// normalizeChild maps a description to nil, a string or an *vdom.Element.
// Booleans render nothing; other primitives render as text.
func normalizeChild(n vdom.Node) vdom.Node {
	switch t := props.Normalize(n).(type) {
	case nil, bool:
		return nil
	case *vdom.Element:
		if t == nil {
			return nil
		}
		return t
	case string:
		return t
	default:
		return props.ToString(t)
	}
}

// mount creates a detached instance for n. The caller inserts its node.
func (o *Owner) mount(n vdom.Node, depth int) instance {
	switch t := normalizeChild(n).(type) {
	case string:
		return &textInstance{node: &html.Node{Type: html.TextNode, Data: t}}
	case *vdom.Element:
		if t.IsHost() {
			return o.mountHost(t, depth)
		}
		return o.mountComponent(t, depth)
	default:
		return &placeholderInstance{node: &html.Node{Type: html.CommentNode}}
	}
}

// reconcile updates existing in place when possible, otherwise replaces it
// at the same position.
func (o *Owner) reconcile(existing instance, next vdom.Node, depth int) instance {
	next = normalizeChild(next)
	if existing.canUpdate(next) {
		existing.update(next)
		return existing
	}
	old := existing.domNode()
	parent, before := old.Parent, old.NextSibling
	o.remove(existing)
	inst := o.mount(next, depth)
	if parent != nil {
		parent.InsertBefore(inst.domNode(), before)
	}
	return inst
}

// remove unmounts inst and then detaches its node.
func (o *Owner) remove(inst instance) {
	n := inst.domNode()
	inst.unmount()
	dom.Detach(n)
}

type textInstance struct {
	node *html.Node
}

func (t *textInstance) domNode() *html.Node { return t.node }

func (t *textInstance) canUpdate(next vdom.Node) bool {
	_, ok := next.(string)
	return ok
}

func (t *textInstance) update(next vdom.Node) {
	t.node.Data = next.(string)
}

func (t *textInstance) unmount() {}

// placeholderInstance holds the position of a child that renders nothing.
type placeholderInstance struct {
	node *html.Node
}

func (p *placeholderInstance) domNode() *html.Node { return p.node }

func (p *placeholderInstance) canUpdate(next vdom.Node) bool { return next == nil }

func (p *placeholderInstance) update(vdom.Node) {}

func (p *placeholderInstance) unmount() {}
