package keypath

import "github.com/mesh-intelligence/keypath/pkg/container"

// Container adapters lift a Keypath[T, V] to a Keypath[W[T], V] for one
// wrapper layer W. The resulting capability reflects what the wrapper
// actually permits: an optional or fallible shell degrades total access to
// partial, a unique indirection passes everything through, shared ownership
// and the phantom tag refuse write capability outright, and lock wrappers
// turn reads into value-consuming owned reads that copy the result out of
// the guard. Applying an adapter to a variant it does not support panics
// with an *AdaptError at adaptation time, never at use.

// ForOption lifts a keypath through an optional shell. Total read and write
// degrade to partial (the shell may be empty), partial stays partial, and
// the enum variants keep their capability with embed re-wrapped to reinsert
// the constructed root into a fresh shell. Value-consuming variants are
// refused.
func ForOption[Root, Value any](k Keypath[Root, Value]) Keypath[container.Option[Root], Value] {
	switch k.kind {
	case KindReadable, KindFailableReadable:
		return FailableReadable(throughOption(k.read))
	case KindWritable, KindFailableWritable:
		return FailableWritable(throughOption(k.write))
	case KindReadableEnum:
		embed := k.embed
		return ReadableEnum(
			throughOption(k.read),
			func(value Value) container.Option[Root] { return container.Some(embed(value)) },
		)
	case KindWritableEnum:
		embed := k.embed
		return WritableEnum(
			throughOption(k.read),
			throughOption(k.write),
			func(value Value) container.Option[Root] { return container.Some(embed(value)) },
		)
	default:
		panic(&AdaptError{Adapter: "ForOption", Kind: k.kind})
	}
}

// ForResult lifts a keypath through a fallible shell, with the same
// capability degradation as ForOption; a failed shell reads as absent.
func ForResult[Root, Value any](k Keypath[Root, Value]) Keypath[container.Result[Root], Value] {
	switch k.kind {
	case KindReadable, KindFailableReadable:
		return FailableReadable(throughResult(k.read))
	case KindWritable, KindFailableWritable:
		return FailableWritable(throughResult(k.write))
	case KindReadableEnum:
		embed := k.embed
		return ReadableEnum(
			throughResult(k.read),
			func(value Value) container.Result[Root] { return container.Ok(embed(value)) },
		)
	case KindWritableEnum:
		embed := k.embed
		return WritableEnum(
			throughResult(k.read),
			throughResult(k.write),
			func(value Value) container.Result[Root] { return container.Ok(embed(value)) },
		)
	default:
		panic(&AdaptError{Adapter: "ForResult", Kind: k.kind})
	}
}

// ForBox lifts a keypath through a unique heap indirection. Sole ownership
// permits everything, so every variant passes through with its capability
// unchanged; the consuming variants copy the boxed root out.
func ForBox[Root, Value any](k Keypath[Root, Value]) Keypath[container.Box[Root], Value] {
	switch k.kind {
	case KindReadable:
		return Readable(throughBox(k.read))
	case KindFailableReadable:
		return FailableReadable(throughBox(k.read))
	case KindWritable:
		return Writable(throughBox(k.write))
	case KindFailableWritable:
		return FailableWritable(throughBox(k.write))
	case KindReferenceWritable:
		return ReferenceWritable(throughBox(k.write))
	case KindReadableEnum:
		embed := k.embed
		return ReadableEnum(
			throughBox(k.read),
			func(value Value) container.Box[Root] { return container.NewBox(embed(value)) },
		)
	case KindWritableEnum:
		embed := k.embed
		return WritableEnum(
			throughBox(k.read),
			throughBox(k.write),
			func(value Value) container.Box[Root] { return container.NewBox(embed(value)) },
		)
	case KindOwned:
		owned := k.owned
		return Owned(func(b container.Box[Root]) Value {
			value, _ := owned(*b.Deref())
			return value
		})
	case KindFailableOwned:
		owned := k.owned
		return FailableOwned(func(b container.Box[Root]) (Value, bool) {
			return owned(*b.Deref())
		})
	default:
		panic(&AdaptError{Adapter: "ForBox", Kind: k.kind})
	}
}

// ForShared lifts a keypath through a shared-ownership indirection. Only the
// read-side variants are accepted: shared ownership cannot statically
// guarantee exclusivity, so every write-capable (and every value-consuming)
// variant is refused here, at adaptation time, rather than failing later at
// use.
func ForShared[Root, Value any](k Keypath[Root, Value]) Keypath[container.Shared[Root], Value] {
	switch k.kind {
	case KindReadable:
		return Readable(throughShared(k.read))
	case KindFailableReadable:
		return FailableReadable(throughShared(k.read))
	case KindReadableEnum:
		embed := k.embed
		return ReadableEnum(
			throughShared(k.read),
			func(value Value) container.Shared[Root] { return container.NewShared(embed(value)) },
		)
	default:
		panic(&AdaptError{Adapter: "ForShared", Kind: k.kind})
	}
}

// ForMutex lifts a read-side keypath over a lock-guarded root into a
// value-consuming keypath: each access takes the lock, applies the read,
// copies the value out of the guard, releases the guard, and only then
// returns. Readable becomes Owned; FailableReadable and ReadableEnum become
// FailableOwned (the read, or the branch, may miss). All other variants are
// refused: a borrowed result cannot outlive the guard.
//
// Precondition on Value: its shallow copy must remain valid after the guard
// is released, i.e. it must not retain pointers into the guarded region that
// the caller then mutates.
func ForMutex[Root, Value any](k Keypath[Root, Value]) Keypath[container.Mutex[Root], Value] {
	switch k.kind {
	case KindReadable:
		read := k.read
		return Owned(func(m container.Mutex[Root]) Value {
			root := m.Lock()
			defer m.Unlock()
			return *read(root)
		})
	case KindFailableReadable, KindReadableEnum:
		read := k.read
		return FailableOwned(func(m container.Mutex[Root]) (Value, bool) {
			root := m.Lock()
			defer m.Unlock()
			v := read(root)
			if v == nil {
				var zero Value
				return zero, false
			}
			return *v, true
		})
	default:
		panic(&AdaptError{Adapter: "ForMutex", Kind: k.kind})
	}
}

// ForRWMutex is ForMutex over a reader-writer lock, acquiring the read side.
// The same Value copy precondition applies.
func ForRWMutex[Root, Value any](k Keypath[Root, Value]) Keypath[container.RWMutex[Root], Value] {
	switch k.kind {
	case KindReadable:
		read := k.read
		return Owned(func(m container.RWMutex[Root]) Value {
			root := m.RLock()
			defer m.RUnlock()
			return *read(root)
		})
	case KindFailableReadable, KindReadableEnum:
		read := k.read
		return FailableOwned(func(m container.RWMutex[Root]) (Value, bool) {
			root := m.RLock()
			defer m.RUnlock()
			v := read(root)
			if v == nil {
				var zero Value
				return zero, false
			}
			return *v, true
		})
	default:
		panic(&AdaptError{Adapter: "ForRWMutex", Kind: k.kind})
	}
}

// ForSharedMutex is ForMutex over a lock behind a shared-ownership handle,
// with the same accepted variants and Value copy precondition.
func ForSharedMutex[Root, Value any](k Keypath[Root, Value]) Keypath[container.Shared[container.Mutex[Root]], Value] {
	switch k.kind {
	case KindReadable, KindFailableReadable, KindReadableEnum:
	default:
		panic(&AdaptError{Adapter: "ForSharedMutex", Kind: k.kind})
	}
	inner := ForMutex(k)
	if inner.kind == KindOwned {
		owned := inner.owned
		return Owned(func(s container.Shared[container.Mutex[Root]]) Value {
			value, _ := owned(*s.Deref())
			return value
		})
	}
	owned := inner.owned
	return FailableOwned(func(s container.Shared[container.Mutex[Root]]) (Value, bool) {
		return owned(*s.Deref())
	})
}

// ForSharedRWMutex is ForRWMutex over a lock behind a shared-ownership
// handle, with the same accepted variants and Value copy precondition.
func ForSharedRWMutex[Root, Value any](k Keypath[Root, Value]) Keypath[container.Shared[container.RWMutex[Root]], Value] {
	switch k.kind {
	case KindReadable, KindFailableReadable, KindReadableEnum:
	default:
		panic(&AdaptError{Adapter: "ForSharedRWMutex", Kind: k.kind})
	}
	inner := ForRWMutex(k)
	if inner.kind == KindOwned {
		owned := inner.owned
		return Owned(func(s container.Shared[container.RWMutex[Root]]) Value {
			value, _ := owned(*s.Deref())
			return value
		})
	}
	owned := inner.owned
	return FailableOwned(func(s container.Shared[container.RWMutex[Root]]) (Value, bool) {
		return owned(*s.Deref())
	})
}

// ForTagged lifts a keypath through a phantom-tagged wrapper. Reads pass
// through like a unique indirection, the consuming variants copy the wrapped
// root out, and every write-capable variant is refused: the wrapper is
// read-only by construction.
func ForTagged[Tag, Root, Value any](k Keypath[Root, Value]) Keypath[container.Tagged[Tag, Root], Value] {
	switch k.kind {
	case KindReadable:
		return Readable(throughTagged[Tag](k.read))
	case KindFailableReadable:
		return FailableReadable(throughTagged[Tag](k.read))
	case KindReadableEnum:
		embed := k.embed
		return ReadableEnum(
			throughTagged[Tag](k.read),
			func(value Value) container.Tagged[Tag, Root] { return container.NewTagged[Tag](embed(value)) },
		)
	case KindOwned:
		owned := k.owned
		return Owned(func(t container.Tagged[Tag, Root]) Value {
			value, _ := owned(*t.Deref())
			return value
		})
	case KindFailableOwned:
		owned := k.owned
		return FailableOwned(func(t container.Tagged[Tag, Root]) (Value, bool) {
			return owned(*t.Deref())
		})
	default:
		panic(&AdaptError{Adapter: "ForTagged", Kind: k.kind})
	}
}

// throughOption routes an accessor through an optional shell, reporting
// absence when the shell is empty.
func throughOption[Root, Value any](access func(*Root) *Value) func(*container.Option[Root]) *Value {
	return func(o *container.Option[Root]) *Value {
		root, ok := o.Get()
		if !ok {
			return nil
		}
		return access(root)
	}
}

// throughResult routes an accessor through a fallible shell, reporting
// absence when the shell failed.
func throughResult[Root, Value any](access func(*Root) *Value) func(*container.Result[Root]) *Value {
	return func(r *container.Result[Root]) *Value {
		root, err := r.Get()
		if err != nil {
			return nil
		}
		return access(root)
	}
}

func throughBox[Root, Value any](access func(*Root) *Value) func(*container.Box[Root]) *Value {
	return func(b *container.Box[Root]) *Value {
		return access(b.Deref())
	}
}

func throughShared[Root, Value any](access func(*Root) *Value) func(*container.Shared[Root]) *Value {
	return func(s *container.Shared[Root]) *Value {
		return access(s.Deref())
	}
}

func throughTagged[Tag, Root, Value any](access func(*Root) *Value) func(*container.Tagged[Tag, Root]) *Value {
	return func(t *container.Tagged[Tag, Root]) *Value {
		return access(t.Deref())
	}
}
