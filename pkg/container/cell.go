package container

import "sync/atomic"

// exclusiveBorrow marks a cell held by a single writer.
const exclusiveBorrow = -1

// borrowCell is the heap allocation a Cell handle points at. state counts
// live shared borrows, or holds exclusiveBorrow while a writer is live.
type borrowCell[T any] struct {
	state atomic.Int64
	value T
}

// Cell is a dynamically borrow-checked container: any number of concurrent
// shared borrows, or exactly one exclusive borrow, enforced at runtime.
// Acquisition never blocks; it fails immediately when the discipline would
// be violated. Copies of the handle alias the same cell.
type Cell[T any] struct {
	cell *borrowCell[T]
}

// NewCell allocates a Cell holding value.
func NewCell[T any](value T) Cell[T] {
	return Cell[T]{cell: &borrowCell[T]{value: value}}
}

// TryBorrow attempts a shared borrow; false means a writer is live. The
// caller must pair a successful borrow with EndBorrow.
func (c Cell[T]) TryBorrow() (*T, bool) {
	for {
		s := c.cell.state.Load()
		if s == exclusiveBorrow {
			return nil, false
		}
		if c.cell.state.CompareAndSwap(s, s+1) {
			return &c.cell.value, true
		}
	}
}

// EndBorrow releases a shared borrow taken by TryBorrow.
func (c Cell[T]) EndBorrow() {
	c.cell.state.Add(-1)
}

// TryBorrowMut attempts the exclusive borrow; false means any borrow is
// live. The caller must pair a successful borrow with EndBorrowMut.
func (c Cell[T]) TryBorrowMut() (*T, bool) {
	if !c.cell.state.CompareAndSwap(0, exclusiveBorrow) {
		return nil, false
	}
	return &c.cell.value, true
}

// EndBorrowMut releases the exclusive borrow taken by TryBorrowMut.
func (c Cell[T]) EndBorrowMut() {
	c.cell.state.Store(0)
}
