package container

// Shared is a shared-ownership indirection: every copy and every Clone
// aliases the same payload. Because no handle can prove it is the only one,
// keypaths adapted through Shared are read-only; the write-capable adapters
// refuse it outright.
type Shared[T any] struct {
	ptr *T
}

// NewShared allocates a Shared holding value.
func NewShared[T any](value T) Shared[T] {
	return Shared[T]{ptr: &value}
}

// Clone returns another handle to the same payload.
func (s Shared[T]) Clone() Shared[T] {
	return s
}

// Deref returns a pointer to the shared value.
func (s Shared[T]) Deref() *T {
	return s.ptr
}
