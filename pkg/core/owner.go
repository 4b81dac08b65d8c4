package core

import (
	stderrors "errors"
	"fmt"
	"slices"
	"sync"

	"github.com/go-drift/materialweb/pkg/errors"
	"github.com/go-drift/materialweb/pkg/vdom"
	"github.com/go-drift/materialweb/pkg/widget"
	"golang.org/x/net/html"
)

// maxFlushPasses bounds FlushBuild when hooks keep scheduling rebuilds.
const maxFlushPasses = 64

// ErrUpdateDepth means hooks kept scheduling rebuilds past maxFlushPasses.
var ErrUpdateDepth = stderrors.New("core: rebuilds did not settle")

// Owner tracks mounted roots, dirty components and the hooks waiting for
// their subtree to be committed.
type Owner struct {
	// Registry constructs widgets for components that wrap toolkit widgets.
	Registry *widget.Registry

	// OnNeedsFrame is called when a component is first scheduled for rebuild
	// since the last flush. Hosts use it to schedule a FlushBuild.
	OnNeedsFrame func()

	mu       sync.Mutex
	dirty    []*componentInstance
	dirtySet map[*componentInstance]bool

	pending []func() error
	errs    []error
	hosts   map[*html.Node]*hostInstance
}

// NewOwner creates an owner that constructs widgets from registry.
func NewOwner(registry *widget.Registry) *Owner {
	return &Owner{
		Registry: registry,
		dirtySet: make(map[*componentInstance]bool),
		hosts:    make(map[*html.Node]*hostInstance),
	}
}

// Mount renders node and appends the result to container. Hooks queued by
// the mount run before Mount returns; their errors are joined into the result.
func (o *Owner) Mount(container *html.Node, node vdom.Node) (*Root, error) {
	if container == nil {
		return nil, &errors.MountError{Op: "core.Mount", Err: errors.ErrMissingElement}
	}
	r := &Root{owner: o, container: container}
	r.child = o.mount(node, 0)
	container.AppendChild(r.child.domNode())
	return r, o.FlushBuild()
}

// scheduleBuild marks c as needing rebuild. Safe to call from any goroutine.
func (o *Owner) scheduleBuild(c *componentInstance) {
	added := func() bool {
		o.mu.Lock()
		defer o.mu.Unlock()
		if o.dirtySet[c] {
			return false
		}
		o.dirtySet[c] = true
		o.dirty = append(o.dirty, c)
		return true
	}()

	if added && o.OnNeedsFrame != nil {
		o.OnNeedsFrame()
	}
}

// NeedsWork reports whether rebuilds or hooks are pending.
func (o *Owner) NeedsWork() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.dirty) > 0 || len(o.pending) > 0
}

// FlushBuild rebuilds dirty components in depth order, then runs the hooks
// the rebuilds queued. It repeats until nothing is left to do and returns the
// errors collected along the way.
func (o *Owner) FlushBuild() error {
	for pass := 0; o.NeedsWork(); pass++ {
		if pass == maxFlushPasses {
			o.fail(ErrUpdateDepth)
			break
		}
		o.rebuildDirty()
		o.commit()
	}
	return o.takeErrors()
}

func (o *Owner) rebuildDirty() {
	o.mu.Lock()
	dirty := o.dirty
	o.dirty = nil
	clear(o.dirtySet)
	o.mu.Unlock()

	slices.SortFunc(dirty, func(a, b *componentInstance) int {
		return a.depth - b.depth
	})
	for _, c := range dirty {
		if c.mounted.Load() {
			c.rebuild()
		}
	}
}

// enqueue defers a hook until the current subtree is committed.
func (o *Owner) enqueue(hook func() error) {
	o.mu.Lock()
	o.pending = append(o.pending, hook)
	o.mu.Unlock()
}

func (o *Owner) commit() {
	for {
		o.mu.Lock()
		pending := o.pending
		o.pending = nil
		o.mu.Unlock()
		if len(pending) == 0 {
			return
		}
		for _, hook := range pending {
			if err := hook(); err != nil {
				o.fail(err)
			}
		}
	}
}

func (o *Owner) fail(err error) {
	o.errs = append(o.errs, err)
}

func (o *Owner) takeErrors() error {
	errs := o.errs
	o.errs = nil
	return errors.Join(errs...)
}

// Event is delivered to DOM event handlers declared with on<Event> props.
type Event struct {
	// Type is the lowercase event name, e.g. "click".
	Type string
	// Target is the node the event was dispatched to.
	Target *html.Node
	// CurrentTarget is the node whose handler is running.
	CurrentTarget *html.Node
}

// Dispatch delivers an event to target and bubbles it through its ancestors,
// calling every matching on<Event> handler. It reports whether any ran.
// Rebuilds scheduled by handlers happen on the next FlushBuild.
func (o *Owner) Dispatch(target *html.Node, event string) bool {
	handled := false
	for n := target; n != nil; n = n.Parent {
		h, ok := o.hosts[n]
		if !ok {
			continue
		}
		fn, ok := h.handlers[event]
		if !ok {
			continue
		}
		switch f := fn.(type) {
		case func():
			f()
		case func(Event):
			f(Event{Type: event, Target: target, CurrentTarget: n})
		}
		handled = true
	}
	return handled
}

// Root is a tree mounted into a container node.
type Root struct {
	owner     *Owner
	container *html.Node
	child     instance
}

// Container returns the node the root renders into.
func (r *Root) Container() *html.Node { return r.container }

// Render reconciles the mounted tree against node.
func (r *Root) Render(node vdom.Node) error {
	if r.child == nil {
		return errors.NewLifecycleError("core.Render", "unmounted", errors.ErrNotMounted)
	}
	r.child = r.owner.reconcile(r.child, node, 0)
	return r.owner.FlushBuild()
}

// Unmount tears the tree down and removes it from the container.
func (r *Root) Unmount() error {
	if r.child == nil {
		return errors.NewLifecycleError("core.Unmount", "unmounted", errors.ErrNotMounted)
	}
	r.owner.remove(r.child)
	r.child = nil
	return r.owner.FlushBuild()
}

func (r *Root) String() string {
	return fmt.Sprintf("Root(%s)", r.container.Data)
}
