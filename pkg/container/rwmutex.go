package container

import "sync"

// rwCell is the heap allocation an RWMutex handle points at.
type rwCell[T any] struct {
	mu    sync.RWMutex
	value T
}

// RWMutex guards a value behind a multiple-readers-or-one-writer lock.
// Copies of the handle alias the same guarded cell.
type RWMutex[T any] struct {
	cell *rwCell[T]
}

// NewRWMutex allocates an RWMutex guarding value.
func NewRWMutex[T any](value T) RWMutex[T] {
	return RWMutex[T]{cell: &rwCell[T]{value: value}}
}

// RLock blocks until a read lock is held and returns a pointer to the
// guarded value. The pointer must not be written through and must not be
// used after RUnlock.
func (m RWMutex[T]) RLock() *T {
	m.cell.mu.RLock()
	return &m.cell.value
}

// TryRLock attempts to take a read lock once; false means a writer held it.
func (m RWMutex[T]) TryRLock() (*T, bool) {
	if !m.cell.mu.TryRLock() {
		return nil, false
	}
	return &m.cell.value, true
}

// RUnlock releases the read lock taken by RLock or a successful TryRLock.
func (m RWMutex[T]) RUnlock() {
	m.cell.mu.RUnlock()
}

// Lock blocks until the write lock is held and returns a pointer to the
// guarded value. The pointer must not be used after Unlock.
func (m RWMutex[T]) Lock() *T {
	m.cell.mu.Lock()
	return &m.cell.value
}

// TryLock attempts to take the write lock once; false means any lock was
// already held.
func (m RWMutex[T]) TryLock() (*T, bool) {
	if !m.cell.mu.TryLock() {
		return nil, false
	}
	return &m.cell.value, true
}

// Unlock releases the write lock taken by Lock or a successful TryLock.
func (m RWMutex[T]) Unlock() {
	m.cell.mu.Unlock()
}
