package container

// Tagged is a phantom-tagged wrapper: the Tag type parameter distinguishes
// otherwise identical payloads at compile time and stores nothing. The
// wrapper is read-only by construction; keypath adapters refuse to lift
// write capability through it.
type Tagged[Tag any, T any] struct {
	ptr *T
}

// NewTagged allocates a Tagged wrapper holding value.
func NewTagged[Tag any, T any](value T) Tagged[Tag, T] {
	return Tagged[Tag, T]{ptr: &value}
}

// Deref returns a pointer to the wrapped value. Callers must treat it as
// read-only.
func (t Tagged[Tag, T]) Deref() *T {
	return t.ptr
}
