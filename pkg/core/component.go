package core

import (
	"fmt"
	"reflect"
	"sync/atomic"

	"github.com/go-drift/materialweb/pkg/props"
	"github.com/go-drift/materialweb/pkg/vdom"
	"github.com/go-drift/materialweb/pkg/widget"
	"golang.org/x/net/html"
)

// StatelessComponent renders from its props alone.
type StatelessComponent interface {
	Render(ctx *BuildContext) vdom.Node
}

// StatefulComponent creates the State backing each mounted instance.
type StatefulComponent interface {
	CreateState() State
}

// State is the per-instance half of a stateful component.
type State interface {
	// Render describes what the instance shows. It runs on mount, on every
	// parent-driven update, after SetState and after a subscribed cell changes.
	Render(ctx *BuildContext) vdom.Node
	// DidMount runs once the instance and its subtree are attached.
	DidMount() error
	// DidUpdate runs after every re-render. old holds the props of the
	// previous render with cells already read, so comparing old against the
	// current props detects cell changes too.
	DidUpdate(old *props.Props) error
	// WillUnmount runs before the instance's children are removed.
	WillUnmount() error
}

// BuildContext gives Render access to the instance being rendered.
type BuildContext struct {
	inst *componentInstance
}

// Props returns the instance's current props.
func (c *BuildContext) Props() *props.Props { return c.inst.props }

// Children returns the child descriptions passed to the instance.
func (c *BuildContext) Children() []vdom.Node { return c.inst.children }

// Owner returns the owner the instance is mounted in.
func (c *BuildContext) Owner() *Owner { return c.inst.owner }

// Registry returns the widget registry of the owner.
func (c *BuildContext) Registry() *widget.Registry { return c.inst.owner.Registry }

// componentInstance hosts a component and, for stateful ones, its State.
type componentInstance struct {
	owner    *Owner
	elem     *vdom.Element
	props    *props.Props
	children []vdom.Node
	state    State
	rendered *props.Props
	child    instance
	depth    int
	cells    []func()

	// mounted is read by cell notifications that may arrive on any goroutine.
	mounted atomic.Bool
}

func (o *Owner) mountComponent(e *vdom.Element, depth int) *componentInstance {
	c := &componentInstance{
		owner:    o,
		elem:     e,
		props:    e.Props,
		children: e.Children,
		depth:    depth,
	}
	if sf, ok := e.Type.(StatefulComponent); ok {
		c.state = sf.CreateState()
		if b, ok := c.state.(stateBase); ok {
			b.state().inst = c
		}
	}
	c.mounted.Store(true)
	c.subscribe()
	c.child = o.mount(c.render(), depth+1)
	c.rendered = props.NormalizeAll(c.props)
	if c.state != nil {
		o.enqueue(c.state.DidMount)
	}
	return c
}

func (c *componentInstance) render() vdom.Node {
	ctx := &BuildContext{inst: c}
	if c.state != nil {
		return c.state.Render(ctx)
	}
	if sl, ok := c.elem.Type.(StatelessComponent); ok {
		return sl.Render(ctx)
	}
	c.owner.fail(fmt.Errorf("core: %T is not a component", c.elem.Type))
	return nil
}

func (c *componentInstance) domNode() *html.Node { return c.child.domNode() }

func (c *componentInstance) canUpdate(next vdom.Node) bool {
	e, ok := next.(*vdom.Element)
	return ok && !e.IsHost() &&
		reflect.TypeOf(e.Type) == reflect.TypeOf(c.elem.Type) &&
		e.Key == c.elem.Key
}

func (c *componentInstance) update(next vdom.Node) {
	e := next.(*vdom.Element)
	c.elem, c.props, c.children = e, e.Props, e.Children
	c.unsubscribe()
	c.subscribe()
	c.rebuild()
}

func (c *componentInstance) rebuild() {
	old := c.rendered
	c.child = c.owner.reconcile(c.child, c.render(), c.depth+1)
	c.rendered = props.NormalizeAll(c.props)
	if c.state != nil {
		c.owner.enqueue(func() error { return c.state.DidUpdate(old) })
	}
}

func (c *componentInstance) unmount() {
	if !c.mounted.CompareAndSwap(true, false) {
		return
	}
	if c.state != nil {
		if err := c.state.WillUnmount(); err != nil {
			c.owner.fail(err)
		}
	}
	c.unsubscribe()
	c.child.unmount()
	if b, ok := c.state.(stateBase); ok {
		b.state().RunDisposers()
	}
}

func (c *componentInstance) markNeedsBuild() {
	if c.mounted.Load() {
		c.owner.scheduleBuild(c)
	}
}

// subscribe listens to every observable cell in the current props.
func (c *componentInstance) subscribe() {
	c.props.Range(func(_ string, v any) bool {
		if s, ok := v.(props.Subscribable); ok && s != nil {
			c.cells = append(c.cells, s.Subscribe(c.markNeedsBuild))
		}
		return true
	})
}

func (c *componentInstance) unsubscribe() {
	for _, unsub := range c.cells {
		unsub()
	}
	c.cells = nil
}
