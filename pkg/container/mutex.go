package container

import "sync"

// mutexCell is the heap allocation a Mutex handle points at.
type mutexCell[T any] struct {
	mu    sync.Mutex
	value T
}

// Mutex guards a value behind a mutual-exclusion lock. Copies of the handle
// alias the same guarded cell.
type Mutex[T any] struct {
	cell *mutexCell[T]
}

// NewMutex allocates a Mutex guarding value.
func NewMutex[T any](value T) Mutex[T] {
	return Mutex[T]{cell: &mutexCell[T]{value: value}}
}

// Lock blocks until the lock is held and returns a pointer to the guarded
// value. The pointer must not be used after Unlock.
func (m Mutex[T]) Lock() *T {
	m.cell.mu.Lock()
	return &m.cell.value
}

// TryLock attempts to take the lock once; false means it was already held.
func (m Mutex[T]) TryLock() (*T, bool) {
	if !m.cell.mu.TryLock() {
		return nil, false
	}
	return &m.cell.value, true
}

// Unlock releases the lock taken by Lock or a successful TryLock.
func (m Mutex[T]) Unlock() {
	m.cell.mu.Unlock()
}
