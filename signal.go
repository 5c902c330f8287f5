package sapling

import "fmt"

// Handle identifies a listener registered on a Signal or Ref. The zero Handle
// is never issued.
type Handle struct {
	id uint32
}

type listener[T any] struct {
	id uint32
	fn func(T)
}

// Signal is a synchronous broadcaster. Listeners run on the emitting goroutine
// in registration order. A Signal is not safe for concurrent use.
type Signal[T any] struct {
	listeners []listener[T]
	nextID    uint32
}

// Connect registers fn and returns a handle for Disconnect.
func (s *Signal[T]) Connect(fn func(T)) Handle {
	if fn == nil {
		panic("sapling: cannot connect nil listener")
	}
	s.nextID++
	s.listeners = append(s.listeners, listener[T]{id: s.nextID, fn: fn})
	return Handle{id: s.nextID}
}

// Disconnect removes the listener behind h. It reports whether one was found.
func (s *Signal[T]) Disconnect(h Handle) bool {
	for i := range s.listeners {
		if s.listeners[i].id == h.id {
			// Copy so an Emit already ranging over the old slice is unaffected.
			next := make([]listener[T], 0, len(s.listeners)-1)
			next = append(next, s.listeners[:i]...)
			next = append(next, s.listeners[i+1:]...)
			s.listeners = next
			return true
		}
	}
	return false
}

// Emit calls every listener with v. Listeners connected or disconnected during
// Emit take effect from the next Emit.
func (s *Signal[T]) Emit(v T) {
	for _, l := range s.listeners {
		l.fn(v)
	}
}

// Len returns the number of connected listeners.
func (s *Signal[T]) Len() int {
	return len(s.listeners)
}

// Clear disconnects every listener.
func (s *Signal[T]) Clear() {
	s.listeners = nil
}

// Ref holds a value and notifies watchers whenever it changes.
type Ref[T any] struct {
	value   T
	changed Signal[T]
}

// NewRef returns a Ref holding v.
func NewRef[T any](v T) *Ref[T] {
	return &Ref[T]{value: v}
}

// Value returns the current value.
func (r *Ref[T]) Value() T {
	return r.value
}

// Set stores v and notifies watchers, even when v equals the old value.
func (r *Ref[T]) Set(v T) {
	r.value = v
	r.changed.Emit(r.value)
}

// Watch registers fn to receive every new value.
func (r *Ref[T]) Watch(fn func(T)) Handle {
	return r.changed.Connect(fn)
}

// Unwatch removes a watcher registered with Watch.
func (r *Ref[T]) Unwatch(h Handle) bool {
	return r.changed.Disconnect(h)
}

// Mutate changes the value in place through fn, then notifies watchers. Use it
// for values such as slices or structs that are modified rather than replaced.
func (r *Ref[T]) Mutate(fn func(*T)) {
	fn(&r.value)
	r.changed.Emit(r.value)
}

// Update replaces the value with fn's result and notifies watchers.
func (r *Ref[T]) Update(fn func(T) T) {
	r.Set(fn(r.value))
}

func (r *Ref[T]) String() string {
	return fmt.Sprintf("Ref<%v>", r.value)
}
