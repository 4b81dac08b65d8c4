// Package widget defines the boundary to the imperative widget toolkit: the
// widget contract, optional capabilities, factories and the registry that
// constructs widgets against concrete elements.
package widget

import "golang.org/x/net/html"

// Widget kinds understood by the wrappers and the auto-init scan.
const (
	KindRipple           = "ripple"
	KindTextField        = "text-field"
	KindList             = "list"
	KindSelect           = "select"
	KindDialog           = "dialog"
	KindIconButtonToggle = "icon-button-toggle"
	KindCheckbox         = "checkbox"
	KindFormField        = "form-field"
	KindTopAppBar        = "top-app-bar"
	KindDataTable        = "data-table"
)

// Kinds lists every known widget kind.
var Kinds = []string{
	KindRipple, KindTextField, KindList, KindSelect, KindDialog,
	KindIconButtonToggle, KindCheckbox, KindFormField, KindTopAppBar, KindDataTable,
}

// Event names emitted by toolkit widgets.
const (
	EventDialogOpened  = "MDCDialog:opened"
	EventDialogClosing = "MDCDialog:closing"
	EventSelectChange  = "MDCSelect:change"
)

// Event is what a widget reports to its listeners.
type Event struct {
	// Name is the event name, e.g. EventSelectChange.
	Name string
	// Detail carries event-specific data reported by the widget.
	Detail map[string]any
}

// Widget is a stateful toolkit object bound to one element. Destroy releases
// its listeners and timers and must be called exactly once.
type Widget interface {
	Destroy()
	Listen(event string, handler func(Event))
}

// Opener is implemented by widgets that can be opened and closed (dialogs).
type Opener interface {
	Open()
	Close()
}

// ValueHolder is implemented by widgets with an authoritative current value.
type ValueHolder interface {
	Value() string
}

// ValueSetter is implemented by widgets whose value can be set imperatively.
type ValueSetter interface {
	SetValue(value string)
}

// SingleSelector is implemented by list widgets supporting single selection.
type SingleSelector interface {
	SetSingleSelection(enabled bool)
}

// Unbounder is implemented by ripples that can be made unbounded.
type Unbounder interface {
	SetUnbounded(unbounded bool)
}

// Factory constructs widgets of one kind.
type Factory interface {
	// Kind returns the widget kind this factory creates.
	Kind() string
	// Construct binds a new widget to el. el is never nil and is attached.
	Construct(el *html.Node) (Widget, error)
}

// FactoryFunc adapts a function to Factory.
type FactoryFunc struct {
	WidgetKind string
	Fn         func(el *html.Node) (Widget, error)
}

// Kind implements Factory.
func (f FactoryFunc) Kind() string { return f.WidgetKind }

// Construct implements Factory.
func (f FactoryFunc) Construct(el *html.Node) (Widget, error) { return f.Fn(el) }
