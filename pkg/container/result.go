package container

// Result holds either one value or the error that prevented producing it.
type Result[T any] struct {
	value T
	err   error
}

// Ok builds a Result holding value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Err builds a failed Result carrying err.
func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// IsOk reports whether the result holds a value.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// Err returns the error of a failed result, nil otherwise.
func (r Result[T]) Err() error {
	return r.err
}

// Get returns a pointer to the contained value, or the error of a failed
// result. The pointer aims into the result itself, so writes through it
// update the contained value in place.
func (r *Result[T]) Get() (*T, error) {
	if r.err != nil {
		return nil, r.err
	}
	return &r.value, nil
}
