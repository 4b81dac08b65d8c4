package props

import (
	"slices"
	"sync"
)

// Observable is a thread-safe reactive value. It satisfies Subscribable, so it
// can be placed directly in a Props bag: readers see the current value through
// Normalize, and mounted components subscribe to it for re-rendering.
//
//	selected := props.NewObservable("b")
//	list := vdom.New(mdc.List{}, props.New("selection", true, "value", selected), items...)
//	selected.Set("c") // the list re-renders on the next build flush
type Observable[T any] struct {
	mu        sync.RWMutex
	value     T
	listeners map[int]func(T)
	nextID    int
}

// NewObservable creates an observable holding initial.
func NewObservable[T any](initial T) *Observable[T] {
	return &Observable[T]{value: initial}
}

// Value returns the current value.
func (o *Observable[T]) Value() T {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.value
}

// Read implements Cell.
func (o *Observable[T]) Read() any {
	return o.Value()
}

// Set stores value and notifies listeners. Listeners run outside the lock,
// in registration order.
func (o *Observable[T]) Set(value T) {
	o.mu.Lock()
	o.value = value
	listeners := o.snapshot()
	o.mu.Unlock()

	for _, fn := range listeners {
		fn(value)
	}
}

// Update applies transform to the current value and stores the result.
func (o *Observable[T]) Update(transform func(T) T) {
	o.Set(transform(o.Value()))
}

// AddListener registers fn to receive every new value. The returned function
// removes it.
func (o *Observable[T]) AddListener(fn func(T)) func() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.listeners == nil {
		o.listeners = make(map[int]func(T))
	}
	id := o.nextID
	o.nextID++
	o.listeners[id] = fn
	return func() {
		o.mu.Lock()
		delete(o.listeners, id)
		o.mu.Unlock()
	}
}

// Subscribe implements Subscribable.
func (o *Observable[T]) Subscribe(fn func()) func() {
	return o.AddListener(func(T) { fn() })
}

// ListenerCount returns the number of active listeners.
func (o *Observable[T]) ListenerCount() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return len(o.listeners)
}

func (o *Observable[T]) snapshot() []func(T) {
	ids := make([]int, 0, len(o.listeners))
	for id := range o.listeners {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	out := make([]func(T), len(ids))
	for i, id := range ids {
		out[i] = o.listeners[id]
	}
	return out
}
