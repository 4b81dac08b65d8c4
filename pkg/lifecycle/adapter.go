// Package lifecycle binds one imperative widget to the mount/update/unmount
// cycle of one component instance.
//
// An Adapter moves through Unmounted → Mounting → Mounted → Unmounting →
// Unmounted. The final Unmounted is terminal: a retired adapter cannot mount
// again, so a widget is never constructed twice for the same instance.
//
//	a := lifecycle.New(widget.KindDialog, registry)
//	a.Listen(widget.EventDialogOpened, onOpened)
//	a.Watch("visible", func(old, cur any) error { ... })
//	err := a.Mount(ref.Current())  // in DidMount
//	err = a.PropsChanged(old, cur) // in DidUpdate
//	err = a.Unmount()              // in WillUnmount
package lifecycle

import (
	"github.com/go-drift/materialweb/pkg/errors"
	"github.com/go-drift/materialweb/pkg/props"
	"github.com/go-drift/materialweb/pkg/widget"
	"golang.org/x/net/html"
)

// State is a lifecycle state.
type State int

const (
	StateUnmounted State = iota
	StateMounting
	StateMounted
	StateUnmounting
)

func (s State) String() string {
	switch s {
	case StateMounting:
		return "mounting"
	case StateMounted:
		return "mounted"
	case StateUnmounting:
		return "unmounting"
	default:
		return "unmounted"
	}
}

type listener struct {
	event   string
	handler func(widget.Event)
}

type watch struct {
	field   string
	handler func(old, cur any) error
}

// Adapter owns one widget for the lifetime of one mount.
type Adapter struct {
	kind     string
	registry *widget.Registry

	state   State
	retired bool
	element *html.Node
	handle  *widget.Handle

	listeners []listener
	watches   []watch
	setups    []func(w widget.Widget) error
}

// New creates an adapter that will construct widgets of kind from registry.
func New(kind string, registry *widget.Registry) *Adapter {
	return &Adapter{kind: kind, registry: registry}
}

// Kind returns the widget kind.
func (a *Adapter) Kind() string { return a.kind }

// State returns the current lifecycle state.
func (a *Adapter) State() State { return a.state }

// Listen declares a widget event listener. Listeners declared before Mount are
// attached when the widget is constructed; later ones attach immediately.
// Handlers never run outside the mounted window.
func (a *Adapter) Listen(event string, handler func(widget.Event)) {
	l := listener{event: event, handler: handler}
	a.listeners = append(a.listeners, l)
	if a.state == StateMounted {
		a.attach(l)
	}
}

// OnMount declares a setup step run against the freshly constructed widget.
func (a *Adapter) OnMount(fn func(w widget.Widget) error) {
	a.setups = append(a.setups, fn)
}

// Watch declares a handler for changes of one prop between renders. Values are
// normalized before comparison.
func (a *Adapter) Watch(field string, handler func(old, cur any) error) {
	a.watches = append(a.watches, watch{field: field, handler: handler})
}

// Mount constructs the widget against el.
func (a *Adapter) Mount(el *html.Node) error {
	const op = "lifecycle.Mount"
	if a.retired {
		return errors.NewLifecycleError(op, a.state.String(), errors.ErrRetired)
	}
	if a.state != StateUnmounted {
		return errors.NewLifecycleError(op, a.state.String(), errors.ErrAlreadyMounted)
	}
	if el == nil {
		return &errors.MountError{Op: op, Widget: a.kind, Err: errors.ErrMissingElement}
	}

	a.state = StateMounting
	h, err := a.registry.Construct(a.kind, el)
	if err != nil {
		a.state = StateUnmounted
		return err
	}
	for _, setup := range a.setups {
		if err := setup(h.Widget()); err != nil {
			_ = h.Destroy()
			a.state = StateUnmounted
			return err
		}
	}

	a.handle = h
	a.element = el
	a.state = StateMounted
	for _, l := range a.listeners {
		a.attach(l)
	}
	return nil
}

// PropsChanged runs the watch handlers whose field differs between old and cur.
// Handlers run in declaration order; the first error stops the pass.
func (a *Adapter) PropsChanged(old, cur *props.Props) error {
	if a.state != StateMounted {
		return errors.NewLifecycleError("lifecycle.PropsChanged", a.state.String(), errors.ErrNotMounted)
	}
	for _, w := range a.watches {
		before, after := old.Value(w.field), cur.Value(w.field)
		if same(before, after) {
			continue
		}
		if err := w.handler(before, after); err != nil {
			return err
		}
	}
	return nil
}

// Unmount destroys the widget and retires the adapter.
func (a *Adapter) Unmount() error {
	if a.state != StateMounted {
		return errors.NewLifecycleError("lifecycle.Unmount", a.state.String(), errors.ErrNotMounted)
	}
	a.state = StateUnmounting
	h := a.handle
	a.handle = nil
	a.element = nil
	err := h.Destroy()
	a.state = StateUnmounted
	a.retired = true
	return err
}

// Widget returns the mounted widget.
func (a *Adapter) Widget() (widget.Widget, error) {
	if a.state != StateMounted {
		return nil, errors.NewLifecycleError("lifecycle.Widget", a.state.String(), errors.ErrNotMounted)
	}
	return a.handle.Widget(), nil
}

// Element returns the element the widget is bound to.
func (a *Adapter) Element() (*html.Node, error) {
	if a.state != StateMounted {
		return nil, errors.NewLifecycleError("lifecycle.Element", a.state.String(), errors.ErrNotMounted)
	}
	return a.element, nil
}

func (a *Adapter) attach(l listener) {
	a.handle.Listen(l.event, func(ev widget.Event) {
		if a.state != StateMounted {
			return
		}
		l.handler(ev)
	})
}

func same(a, b any) bool {
	if a == nil && b == nil {
		return true
	}
	return props.Equal(a, b)
}
