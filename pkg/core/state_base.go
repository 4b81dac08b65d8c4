package core

import (
	"sync"

	"github.com/go-drift/materialweb/pkg/props"
	"github.com/go-drift/materialweb/pkg/vdom"
	"github.com/go-drift/materialweb/pkg/widget"
)

// stateBase is satisfied by any struct that embeds StateBase.
// Hooks and NewManaged accept stateBase so callers can pass s directly.
type stateBase interface {
	state() *StateBase
}

func (s *StateBase) state() *StateBase { return s }

// StateBase provides common functionality for component states.
// Embed it and implement Render:
//
//	type dialogState struct {
//	    core.StateBase
//	    adapter *lifecycle.Adapter
//	}
type StateBase struct {
	inst      *componentInstance
	disposers []func()
	disposed  bool
	mu        sync.Mutex
}

// Props returns the current props of the instance, or nil before mount.
func (s *StateBase) Props() *props.Props {
	if s.inst == nil {
		return nil
	}
	return s.inst.props
}

// Children returns the child descriptions passed to the instance.
func (s *StateBase) Children() []vdom.Node {
	if s.inst == nil {
		return nil
	}
	return s.inst.children
}

// Owner returns the owner the instance is mounted in.
func (s *StateBase) Owner() *Owner {
	if s.inst == nil {
		return nil
	}
	return s.inst.owner
}

// Registry returns the widget registry of the owner.
func (s *StateBase) Registry() *widget.Registry {
	if o := s.Owner(); o != nil {
		return o.Registry
	}
	return nil
}

// SetState executes fn and schedules a rebuild. It is a no-op after disposal.
func (s *StateBase) SetState(fn func()) {
	if s.IsDisposed() {
		return
	}
	if fn != nil {
		fn()
	}
	if s.inst != nil {
		s.inst.markNeedsBuild()
	}
}

// OnDispose registers a cleanup function to be called when the state is disposed.
// Returns an unregister function that can be called to remove the disposer.
// The cleanup function will only be called once.
func (s *StateBase) OnDispose(cleanup func()) func() {
	if cleanup == nil {
		return func() {}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.disposed {
		cleanup()
		return func() {}
	}

	index := len(s.disposers)
	s.disposers = append(s.disposers, cleanup)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if index < len(s.disposers) {
			s.disposers[index] = nil
		}
	}
}

// RunDisposers executes all registered disposers in reverse order.
// The runtime calls it after WillUnmount and the children are gone.
func (s *StateBase) RunDisposers() {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return
	}
	s.disposed = true
	disposers := s.disposers
	s.disposers = nil
	s.mu.Unlock()

	for i := len(disposers) - 1; i >= 0; i-- {
		if disposers[i] != nil {
			disposers[i]()
		}
	}
}

// IsDisposed returns true if this state has been disposed.
func (s *StateBase) IsDisposed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.disposed
}

// Render is a default that renders nothing.
func (s *StateBase) Render(ctx *BuildContext) vdom.Node { return nil }

// DidMount is a no-op default.
func (s *StateBase) DidMount() error { return nil }

// DidUpdate is a no-op default.
func (s *StateBase) DidUpdate(old *props.Props) error { return nil }

// WillUnmount is a no-op default.
func (s *StateBase) WillUnmount() error { return nil }
