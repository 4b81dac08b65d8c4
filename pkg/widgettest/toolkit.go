package widgettest

import (
	"fmt"
	"sync"

	"github.com/go-drift/materialweb/pkg/dom"
	"github.com/go-drift/materialweb/pkg/widget"
	"golang.org/x/net/html"
)

// ToolkitVersion is the version the fake toolkit reports.
const ToolkitVersion = "v14.0.0"

// Toolkit is an in-memory widget toolkit that records every call made to the
// widgets it constructs.
type Toolkit struct {
	mu      sync.Mutex
	widgets []*FakeWidget

	// FailKinds makes Construct fail for the listed kinds.
	FailKinds map[string]error
}

// NewToolkit creates a toolkit.
func NewToolkit() *Toolkit {
	return &Toolkit{FailKinds: make(map[string]error)}
}

// Install registers a factory for every known widget kind on r.
func (tk *Toolkit) Install(r *widget.Registry) {
	r.Version = ToolkitVersion
	for _, kind := range widget.Kinds {
		r.RegisterFactory(widget.FactoryFunc{WidgetKind: kind, Fn: tk.constructor(kind)})
	}
}

// NewRegistry returns a registry with the toolkit installed.
func (tk *Toolkit) NewRegistry() *widget.Registry {
	r := widget.NewRegistry()
	tk.Install(r)
	return r
}

func (tk *Toolkit) constructor(kind string) func(el *html.Node) (widget.Widget, error) {
	return func(el *html.Node) (widget.Widget, error) {
		tk.mu.Lock()
		defer tk.mu.Unlock()
		if err := tk.FailKinds[kind]; err != nil {
			return nil, err
		}
		w := &FakeWidget{
			kind:     kind,
			element:  el,
			handlers: make(map[string][]func(widget.Event)),
		}
		if kind == widget.KindSelect {
			w.value = initialSelectValue(el)
		}
		tk.widgets = append(tk.widgets, w)
		return w, nil
	}
}

// initialSelectValue mirrors how a select widget picks its value from the
// pre-annotated markup: the option flagged aria-selected="true".
func initialSelectValue(el *html.Node) string {
	sel := dom.FindByAttr(el, ".mdc-list-item", "aria-selected", "true").First()
	if v, ok := sel.Attr("data-value"); ok {
		return v
	}
	return ""
}

// Widgets returns every widget constructed for kind, in construction order.
// An empty kind returns all widgets.
func (tk *Toolkit) Widgets(kind string) []*FakeWidget {
	tk.mu.Lock()
	defer tk.mu.Unlock()
	var out []*FakeWidget
	for _, w := range tk.widgets {
		if kind == "" || w.kind == kind {
			out = append(out, w)
		}
	}
	return out
}

// Last returns the most recently constructed widget of kind, or nil.
func (tk *Toolkit) Last(kind string) *FakeWidget {
	ws := tk.Widgets(kind)
	if len(ws) == 0 {
		return nil
	}
	return ws[len(ws)-1]
}

// Alive returns the widgets not yet destroyed.
func (tk *Toolkit) Alive() []*FakeWidget {
	var out []*FakeWidget
	for _, w := range tk.Widgets("") {
		if w.DestroyCount() == 0 {
			out = append(out, w)
		}
	}
	return out
}

// FakeWidget records the calls made on it.
type FakeWidget struct {
	kind      string
	element   *html.Node
	handlers  map[string][]func(widget.Event)
	destroyed int
	opens     int
	closes    int
	value     string
	single    bool
	unbounded bool
}

// Kind returns the widget kind.
func (w *FakeWidget) Kind() string { return w.kind }

// Element returns the element the widget was constructed against.
func (w *FakeWidget) Element() *html.Node { return w.element }

// Destroy implements widget.Widget. It drops all listeners.
func (w *FakeWidget) Destroy() {
	w.destroyed++
	w.handlers = make(map[string][]func(widget.Event))
}

// Listen implements widget.Widget.
func (w *FakeWidget) Listen(event string, handler func(widget.Event)) {
	w.handlers[event] = append(w.handlers[event], handler)
}

// Emit delivers a named event to the current listeners, as the toolkit would.
func (w *FakeWidget) Emit(name string, detail map[string]any) {
	for _, h := range w.handlers[name] {
		h(widget.Event{Name: name, Detail: detail})
	}
}

// ListenerCount returns the number of listeners registered for event.
func (w *FakeWidget) ListenerCount(event string) int { return len(w.handlers[event]) }

// Open implements widget.Opener.
func (w *FakeWidget) Open() { w.opens++ }

// Close implements widget.Opener.
func (w *FakeWidget) Close() { w.closes++ }

// Value implements widget.ValueHolder.
func (w *FakeWidget) Value() string { return w.value }

// SetValue implements widget.ValueSetter. Like the toolkit's programmatic
// setter it does not emit a change event.
func (w *FakeWidget) SetValue(v string) { w.value = v }

// Choose simulates the user picking v: the value changes and a change event
// is emitted.
func (w *FakeWidget) Choose(v string) {
	w.value = v
	w.Emit(widget.EventSelectChange, map[string]any{"value": v})
}

// SetSingleSelection implements widget.SingleSelector.
func (w *FakeWidget) SetSingleSelection(enabled bool) { w.single = enabled }

// SetUnbounded implements widget.Unbounder.
func (w *FakeWidget) SetUnbounded(unbounded bool) { w.unbounded = unbounded }

// DestroyCount returns how many times Destroy ran.
func (w *FakeWidget) DestroyCount() int { return w.destroyed }

// OpenCount returns how many times Open ran.
func (w *FakeWidget) OpenCount() int { return w.opens }

// CloseCount returns how many times Close ran.
func (w *FakeWidget) CloseCount() int { return w.closes }

// SingleSelection reports the last SetSingleSelection value.
func (w *FakeWidget) SingleSelection() bool { return w.single }

// Unbounded reports the last SetUnbounded value.
func (w *FakeWidget) Unbounded() bool { return w.unbounded }

func (w *FakeWidget) String() string {
	return fmt.Sprintf("FakeWidget(%s)", w.kind)
}
