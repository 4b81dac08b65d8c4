package core

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-drift/materialweb/pkg/dom"
	"github.com/go-drift/materialweb/pkg/props"
	"github.com/go-drift/materialweb/pkg/vdom"
	"golang.org/x/net/html"
)

// hostInstance owns one element node.
type hostInstance struct {
	owner    *Owner
	elem     *vdom.Element
	node     *html.Node
	depth    int
	children []instance

	// attrs holds the attributes this instance rendered last, so attributes
	// written by anyone else are left alone on update.
	attrs    map[string]string
	handlers map[string]any
	ref      *vdom.Ref
}

func (o *Owner) mountHost(e *vdom.Element, depth int) *hostInstance {
	h := &hostInstance{
		owner: o,
		elem:  e,
		node:  dom.NewElement(e.Tag()),
		depth: depth,
	}
	o.hosts[h.node] = h
	h.applyProps(e.Props)
	for _, c := range e.Children {
		child := o.mount(c, depth+1)
		h.node.AppendChild(child.domNode())
		h.children = append(h.children, child)
	}
	return h
}

func (h *hostInstance) domNode() *html.Node { return h.node }

func (h *hostInstance) canUpdate(next vdom.Node) bool {
	e, ok := next.(*vdom.Element)
	return ok && e.IsHost() && e.Tag() == h.elem.Tag() && e.Key == h.elem.Key
}

func (h *hostInstance) update(next vdom.Node) {
	e := next.(*vdom.Element)
	h.elem = e
	h.applyProps(e.Props)
	h.updateChildren(e.Children)
}

func (h *hostInstance) updateChildren(next []vdom.Node) {
	updated := make([]instance, 0, len(next))
	for i, n := range next {
		if i < len(h.children) {
			updated = append(updated, h.owner.reconcile(h.children[i], n, h.depth+1))
			continue
		}
		child := h.owner.mount(n, h.depth+1)
		h.node.AppendChild(child.domNode())
		updated = append(updated, child)
	}
	for i := len(next); i < len(h.children); i++ {
		h.owner.remove(h.children[i])
	}
	h.children = updated
}

func (h *hostInstance) unmount() {
	for _, c := range h.children {
		c.unmount()
	}
	if h.ref != nil && h.ref.Current() == h.node {
		h.ref.Bind(nil)
	}
	h.ref = nil
	h.handlers = nil
	delete(h.owner.hosts, h.node)
}

func (h *hostInstance) applyProps(p *props.Props) {
	next := make(map[string]string, p.Len())
	var order []string
	handlers := make(map[string]any)
	var ref *vdom.Ref

	p.Range(func(name string, raw any) bool {
		if name == "ref" {
			ref, _ = raw.(*vdom.Ref)
			return true
		}
		if event, ok := handlerEvent(name, raw); ok {
			handlers[event] = raw
			return true
		}
		attr := attrName(name)
		if val, ok := attrValue(attr, props.Normalize(raw)); ok {
			if _, seen := next[attr]; !seen {
				order = append(order, attr)
			}
			next[attr] = val
		}
		return true
	})

	for attr := range h.attrs {
		if _, keep := next[attr]; !keep {
			dom.RemoveAttr(h.node, attr)
		}
	}
	for _, attr := range order {
		prev, had := h.attrs[attr]
		if !had || prev != next[attr] {
			dom.SetAttr(h.node, attr, next[attr])
		}
	}
	h.attrs = next
	h.handlers = handlers

	if ref != h.ref {
		if h.ref != nil && h.ref.Current() == h.node {
			h.ref.Bind(nil)
		}
		if ref != nil {
			ref.Bind(h.node)
		}
		h.ref = ref
	}
}

// handlerEvent recognizes on<Event> props holding a handler and returns the
// lowercase event name.
func handlerEvent(name string, v any) (string, bool) {
	if len(name) < 3 || !strings.HasPrefix(name, "on") || name[2] < 'A' || name[2] > 'Z' {
		return "", false
	}
	switch v.(type) {
	case func(), func(Event):
		return strings.ToLower(name[2:]), true
	}
	return "", false
}

var attrNames = map[string]string{
	"className": "class",
	"htmlFor":   "for",
	"tabIndex":  "tabindex",
	"readOnly":  "readonly",
	"maxLength": "maxlength",
	"viewBox":   "viewBox",
	"fillRule":  "fill-rule",
}

func attrName(name string) string {
	if a, ok := attrNames[name]; ok {
		return a
	}
	return strings.ToLower(name)
}

// attrValue formats a normalized prop value as an attribute. Values that
// cannot be represented (nil, false on plain attributes, funcs, nodes) are
// reported as absent.
func attrValue(attr string, v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		return t, true
	case bool:
		if strings.HasPrefix(attr, "aria-") || strings.HasPrefix(attr, "data-") {
			return strconv.FormatBool(t), true
		}
		return "", t
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return fmt.Sprint(t), true
	case fmt.Stringer:
		return t.String(), true
	}
	return "", false
}
