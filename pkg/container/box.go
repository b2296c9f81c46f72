package container

// Box is a unique heap indirection: one owner, full access to the payload.
type Box[T any] struct {
	ptr *T
}

// NewBox allocates a Box holding value.
func NewBox[T any](value T) Box[T] {
	return Box[T]{ptr: &value}
}

// Deref returns a pointer to the boxed value.
func (b Box[T]) Deref() *T {
	return b.ptr
}
