package core

import "github.com/go-drift/materialweb/pkg/props"

// UseCell subscribes to cell and rebuilds on every notification.
// The subscription is removed when the state is disposed.
//
//	func (s *myState) DidMount() error {
//	    core.UseCell(s, s.selected)
//	    return nil
//	}
func UseCell(s stateBase, cell props.Subscribable) {
	base := s.state()
	unsub := cell.Subscribe(func() {
		base.SetState(nil)
	})
	base.OnDispose(unsub)
}

// UseObservable is UseCell for a typed observable.
func UseObservable[T any](s stateBase, obs *props.Observable[T]) {
	base := s.state()
	unsub := obs.AddListener(func(T) {
		base.SetState(nil)
	})
	base.OnDispose(unsub)
}

// Managed holds a value and triggers a rebuild when it changes.
// Unlike props.Observable it is tied to one state and is not thread-safe.
//
//	type selectState struct {
//	    core.StateBase
//	    label *core.Managed[string]
//	}
type Managed[T any] struct {
	base  *StateBase
	value T
}

// NewManaged creates a managed value owned by s.
func NewManaged[T any](s stateBase, initial T) *Managed[T] {
	return &Managed[T]{
		base:  s.state(),
		value: initial,
	}
}

// Value returns the current value.
func (m *Managed[T]) Value() T {
	return m.value
}

// Set updates the value and triggers a rebuild.
func (m *Managed[T]) Set(value T) {
	m.value = value
	m.base.SetState(nil)
}

// Update applies a transformation to the current value and triggers a rebuild.
func (m *Managed[T]) Update(transform func(T) T) {
	m.value = transform(m.value)
	m.base.SetState(nil)
}
