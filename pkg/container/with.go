package container

// Scoped access: each helper runs the callback with a borrowed pointer to
// the contained value and releases any guard on every exit path, including
// a panic inside the callback. Helpers over fallible containers (locks, the
// borrow cell, empty or failed shells) attempt acquisition exactly once and
// report false instead of blocking; retrying is the caller's business.

// WithBox runs fn with read access to the boxed value.
func WithBox[T, R any](b Box[T], fn func(*T) R) R {
	return fn(b.Deref())
}

// WithBoxMut runs fn with write access to the boxed value. Sole ownership
// makes this as infallible as the read side.
func WithBoxMut[T, R any](b Box[T], fn func(*T) R) R {
	return fn(b.Deref())
}

// WithShared runs fn with read access to the shared value. There is no
// write-side counterpart: shared ownership cannot guarantee exclusivity.
func WithShared[T, R any](s Shared[T], fn func(*T) R) R {
	return fn(s.Deref())
}

// WithTagged runs fn with read access to the tagged value.
func WithTagged[Tag, T, R any](t Tagged[Tag, T], fn func(*T) R) R {
	return fn(t.Deref())
}

// WithOption runs fn with read access to the contained value; false means
// the option is empty and fn was not invoked.
func WithOption[T, R any](o *Option[T], fn func(*T) R) (R, bool) {
	value, ok := o.Get()
	if !ok {
		var zero R
		return zero, false
	}
	return fn(value), true
}

// WithOptionMut runs fn with write access to the contained value; false
// means the option is empty and fn was not invoked.
func WithOptionMut[T, R any](o *Option[T], fn func(*T) R) (R, bool) {
	return WithOption(o, fn)
}

// WithResult runs fn with read access to the contained value; false means
// the result holds an error and fn was not invoked.
func WithResult[T, R any](r *Result[T], fn func(*T) R) (R, bool) {
	value, err := r.Get()
	if err != nil {
		var zero R
		return zero, false
	}
	return fn(value), true
}

// WithResultMut runs fn with write access to the contained value; false
// means the result holds an error and fn was not invoked.
func WithResultMut[T, R any](r *Result[T], fn func(*T) R) (R, bool) {
	return WithResult(r, fn)
}

// WithMutex runs fn with read access to the guarded value under a single
// TryLock attempt; false means the lock was held.
func WithMutex[T, R any](m Mutex[T], fn func(*T) R) (R, bool) {
	value, ok := m.TryLock()
	if !ok {
		var zero R
		return zero, false
	}
	defer m.Unlock()
	return fn(value), true
}

// WithMutexMut runs fn with write access to the guarded value under a
// single TryLock attempt; false means the lock was held.
func WithMutexMut[T, R any](m Mutex[T], fn func(*T) R) (R, bool) {
	return WithMutex(m, fn)
}

// WithRead runs fn with read access under a single TryRLock attempt; false
// means a writer held the lock.
func WithRead[T, R any](m RWMutex[T], fn func(*T) R) (R, bool) {
	value, ok := m.TryRLock()
	if !ok {
		var zero R
		return zero, false
	}
	defer m.RUnlock()
	return fn(value), true
}

// WithWrite runs fn with write access under a single TryLock attempt; false
// means any lock was held.
func WithWrite[T, R any](m RWMutex[T], fn func(*T) R) (R, bool) {
	value, ok := m.TryLock()
	if !ok {
		var zero R
		return zero, false
	}
	defer m.Unlock()
	return fn(value), true
}

// WithCell runs fn under a shared borrow; false means a writer was live.
func WithCell[T, R any](c Cell[T], fn func(*T) R) (R, bool) {
	value, ok := c.TryBorrow()
	if !ok {
		var zero R
		return zero, false
	}
	defer c.EndBorrow()
	return fn(value), true
}

// WithCellMut runs fn under the exclusive borrow; false means any borrow
// was live.
func WithCellMut[T, R any](c Cell[T], fn func(*T) R) (R, bool) {
	value, ok := c.TryBorrowMut()
	if !ok {
		var zero R
		return zero, false
	}
	defer c.EndBorrowMut()
	return fn(value), true
}
