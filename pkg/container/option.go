package container

// Option holds either one value or nothing.
type Option[T any] struct {
	value T
	ok    bool
}

// Some builds an Option holding value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, ok: true}
}

// None builds an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether the option holds a value.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// Get returns a pointer to the contained value, or false when empty. The
// pointer aims into the option itself, so writes through it update the
// contained value in place.
func (o *Option[T]) Get() (*T, bool) {
	if !o.ok {
		return nil, false
	}
	return &o.value, true
}
