// Package lifecycle provides ownership slots for objects that must have at
// most one live instance per owner.
package lifecycle

import "sync"

// Slot holds at most one live value. The zero value is an empty slot.
type Slot[T any] struct {
	mu    sync.Mutex
	value T
	live  bool
}

// Acquire returns the live value if there is one. Otherwise it calls create
// and, on success, stores the result. The returned flag is true only when
// create was called and succeeded.
//
// create runs with the slot locked, so concurrent callers observe a single
// construction.
func (s *Slot[T]) Acquire(create func() (T, error)) (T, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.live {
		return s.value, false, nil
	}
	value, err := create()
	if err != nil {
		var zero T
		return zero, false, err
	}
	s.value = value
	s.live = true
	return value, true, nil
}

// Get returns the live value, if any.
func (s *Slot[T]) Get() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value, s.live
}

// Release empties the slot if it still holds value, as decided by same.
// Releasing a value that has already been replaced is a no-op.
func (s *Slot[T]) Release(same func(T) bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.live || !same(s.value) {
		return false
	}
	var zero T
	s.value = zero
	s.live = false
	return true
}
