package widget

import (
	"sync"
	"sync/atomic"

	"github.com/go-drift/materialweb/pkg/dom"
	"github.com/go-drift/materialweb/pkg/errors"
	"golang.org/x/net/html"
)

// Registry manages widget factories and the widgets constructed through them.
type Registry struct {
	// Version is the toolkit version the factories implement, e.g. "v14.0.0".
	Version string

	factories map[string]Factory
	live      map[int64]*Handle
	nextID    atomic.Int64
	mu        sync.RWMutex
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
		live:      make(map[int64]*Handle),
	}
}

// RegisterFactory registers a factory for its widget kind, replacing any
// previous one.
func (r *Registry) RegisterFactory(factory Factory) {
	r.mu.Lock()
	r.factories[factory.Kind()] = factory
	r.mu.Unlock()
}

// HasKind reports whether a factory is registered for kind.
func (r *Registry) HasKind(kind string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[kind]
	return ok
}

// Construct creates a widget of the given kind bound to el.
// It fails with a MountError when el is nil, not attached to a document, or
// the kind is unknown. Factory errors are wrapped in a MountError as well.
func (r *Registry) Construct(kind string, el *html.Node) (*Handle, error) {
	const op = "widget.Construct"
	if el == nil {
		return nil, &errors.MountError{Op: op, Widget: kind, Err: errors.ErrMissingElement}
	}
	if !dom.IsAttached(el) {
		return nil, &errors.MountError{Op: op, Widget: kind, Err: errors.ErrDetachedElement}
	}

	r.mu.RLock()
	factory, ok := r.factories[kind]
	r.mu.RUnlock()
	if !ok {
		return nil, &errors.MountError{Op: op, Widget: kind, Err: errors.ErrWidgetKindNotFound}
	}

	w, err := factory.Construct(el)
	if err != nil {
		return nil, &errors.MountError{Op: op, Widget: kind, Err: err}
	}

	h := &Handle{
		id:       r.nextID.Add(1),
		kind:     kind,
		element:  el,
		widget:   w,
		registry: r,
	}
	r.mu.Lock()
	r.live[h.id] = h
	r.mu.Unlock()
	return h, nil
}

// Live returns the number of constructed widgets not yet destroyed.
func (r *Registry) Live() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.live)
}

// LiveHandles returns the handles of widgets not yet destroyed.
func (r *Registry) LiveHandles() []*Handle {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Handle, 0, len(r.live))
	for _, h := range r.live {
		out = append(out, h)
	}
	return out
}

func (r *Registry) release(id int64) {
	r.mu.Lock()
	delete(r.live, id)
	r.mu.Unlock()
}

// Handle owns one constructed widget. It enforces destroy-once and drops
// events delivered after destruction.
type Handle struct {
	id        int64
	kind      string
	element   *html.Node
	widget    Widget
	registry  *Registry
	destroyed bool
}

// ID returns the registry-unique identifier of the widget.
func (h *Handle) ID() int64 { return h.id }

// Kind returns the widget kind.
func (h *Handle) Kind() string { return h.kind }

// Element returns the element the widget is bound to.
func (h *Handle) Element() *html.Node { return h.element }

// Widget returns the underlying widget for capability checks.
func (h *Handle) Widget() Widget { return h.widget }

// Destroyed reports whether Destroy has run.
func (h *Handle) Destroyed() bool { return h.destroyed }

// Listen subscribes handler to a widget event. Events arriving after Destroy
// are dropped.
func (h *Handle) Listen(event string, handler func(Event)) {
	h.widget.Listen(event, func(ev Event) {
		if h.destroyed {
			return
		}
		handler(ev)
	})
}

// Destroy tears the widget down. A second call fails with a LifecycleError
// and does not reach the widget.
func (h *Handle) Destroy() error {
	if h.destroyed {
		return errors.NewLifecycleError("widget.Destroy", "destroyed", errors.ErrDestroyed)
	}
	h.destroyed = true
	h.registry.release(h.id)
	h.widget.Destroy()
	return nil
}
