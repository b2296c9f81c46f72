package keypath

import "github.com/mesh-intelligence/keypath/pkg/container"

// Erased container adapters: the same lifts as adapt.go, re-implemented
// against the `any`-valued accessors of ValueErased. Capability degradation
// is identical to the concrete adapters. The results carry no typed
// original, so RestoreValue on them reports false; to restore an adapted
// keypath, adapt the concrete keypath first and erase the result instead.

// ForOptionErased lifts a value-erased keypath through an optional shell
// with the same degradation as ForOption.
func ForOptionErased[Root any](e ValueErased[Root]) ValueErased[container.Option[Root]] {
	out := ValueErased[container.Option[Root]]{deref: e.deref}
	switch e.kind {
	case KindReadable, KindFailableReadable:
		out.kind = KindFailableReadable
		out.read = throughOptionErased(e.read)
	case KindWritable, KindFailableWritable:
		out.kind = KindFailableWritable
		out.write = throughOptionErased(e.write)
	case KindReadableEnum:
		out.kind = KindReadableEnum
		out.read = throughOptionErased(e.read)
		out.embed = wrapEmbed(e.embed, container.Some[Root])
	case KindWritableEnum:
		out.kind = KindWritableEnum
		out.read = throughOptionErased(e.read)
		out.write = throughOptionErased(e.write)
		out.embed = wrapEmbed(e.embed, container.Some[Root])
	default:
		panic(&AdaptError{Adapter: "ForOptionErased", Kind: e.kind})
	}
	return out
}

// ForResultErased lifts a value-erased keypath through a fallible shell with
// the same degradation as ForResult.
func ForResultErased[Root any](e ValueErased[Root]) ValueErased[container.Result[Root]] {
	out := ValueErased[container.Result[Root]]{deref: e.deref}
	switch e.kind {
	case KindReadable, KindFailableReadable:
		out.kind = KindFailableReadable
		out.read = throughResultErased(e.read)
	case KindWritable, KindFailableWritable:
		out.kind = KindFailableWritable
		out.write = throughResultErased(e.write)
	case KindReadableEnum:
		out.kind = KindReadableEnum
		out.read = throughResultErased(e.read)
		out.embed = wrapEmbed(e.embed, container.Ok[Root])
	case KindWritableEnum:
		out.kind = KindWritableEnum
		out.read = throughResultErased(e.read)
		out.write = throughResultErased(e.write)
		out.embed = wrapEmbed(e.embed, container.Ok[Root])
	default:
		panic(&AdaptError{Adapter: "ForResultErased", Kind: e.kind})
	}
	return out
}

// ForBoxErased lifts a value-erased keypath through a unique indirection;
// every variant passes through with its capability unchanged.
func ForBoxErased[Root any](e ValueErased[Root]) ValueErased[container.Box[Root]] {
	out := ValueErased[container.Box[Root]]{kind: e.kind, deref: e.deref}
	if e.read != nil {
		read := e.read
		out.read = func(b *container.Box[Root]) any { return read(b.Deref()) }
	}
	if e.write != nil {
		write := e.write
		out.write = func(b *container.Box[Root]) any { return write(b.Deref()) }
	}
	if e.embed != nil {
		out.embed = wrapEmbed(e.embed, container.NewBox[Root])
	}
	if e.owned != nil {
		owned := e.owned
		out.owned = func(b container.Box[Root]) (any, bool) { return owned(*b.Deref()) }
	}
	return out
}

// ForSharedErased lifts a value-erased keypath through a shared-ownership
// indirection. Read-side variants only; write-capable and value-consuming
// variants are refused at adaptation time, as with ForShared.
func ForSharedErased[Root any](e ValueErased[Root]) ValueErased[container.Shared[Root]] {
	out := ValueErased[container.Shared[Root]]{deref: e.deref}
	switch e.kind {
	case KindReadable, KindFailableReadable:
		out.kind = e.kind
		read := e.read
		out.read = func(s *container.Shared[Root]) any { return read(s.Deref()) }
	case KindReadableEnum:
		out.kind = KindReadableEnum
		read := e.read
		out.read = func(s *container.Shared[Root]) any { return read(s.Deref()) }
		out.embed = wrapEmbed(e.embed, container.NewShared[Root])
	default:
		panic(&AdaptError{Adapter: "ForSharedErased", Kind: e.kind})
	}
	return out
}

// ForMutexErased lifts a read-side value-erased keypath over a lock-guarded
// root into a value-consuming erased keypath, copying the value out of the
// guard before release exactly like ForMutex, with the same Value copy
// precondition.
func ForMutexErased[Root any](e ValueErased[Root]) ValueErased[container.Mutex[Root]] {
	out := ValueErased[container.Mutex[Root]]{deref: e.deref}
	read, deref := e.read, e.deref
	switch e.kind {
	case KindReadable:
		out.kind = KindOwned
		out.owned = func(m container.Mutex[Root]) (any, bool) {
			root := m.Lock()
			defer m.Unlock()
			return deref(read(root)), true
		}
	case KindFailableReadable, KindReadableEnum:
		out.kind = KindFailableOwned
		out.owned = func(m container.Mutex[Root]) (any, bool) {
			root := m.Lock()
			defer m.Unlock()
			ptr := read(root)
			if ptr == nil {
				return nil, false
			}
			return deref(ptr), true
		}
	default:
		panic(&AdaptError{Adapter: "ForMutexErased", Kind: e.kind})
	}
	return out
}

// ForRWMutexErased is ForMutexErased over a reader-writer lock, acquiring
// the read side.
func ForRWMutexErased[Root any](e ValueErased[Root]) ValueErased[container.RWMutex[Root]] {
	out := ValueErased[container.RWMutex[Root]]{deref: e.deref}
	read, deref := e.read, e.deref
	switch e.kind {
	case KindReadable:
		out.kind = KindOwned
		out.owned = func(m container.RWMutex[Root]) (any, bool) {
			root := m.RLock()
			defer m.RUnlock()
			return deref(read(root)), true
		}
	case KindFailableReadable, KindReadableEnum:
		out.kind = KindFailableOwned
		out.owned = func(m container.RWMutex[Root]) (any, bool) {
			root := m.RLock()
			defer m.RUnlock()
			ptr := read(root)
			if ptr == nil {
				return nil, false
			}
			return deref(ptr), true
		}
	default:
		panic(&AdaptError{Adapter: "ForRWMutexErased", Kind: e.kind})
	}
	return out
}

// throughOptionErased routes an erased accessor through an optional shell,
// reporting absence when the shell is empty.
func throughOptionErased[Root any](access func(*Root) any) func(*container.Option[Root]) any {
	return func(o *container.Option[Root]) any {
		root, ok := o.Get()
		if !ok {
			return nil
		}
		return access(root)
	}
}

// throughResultErased routes an erased accessor through a fallible shell,
// reporting absence when the shell failed.
func throughResultErased[Root any](access func(*Root) any) func(*container.Result[Root]) any {
	return func(r *container.Result[Root]) any {
		root, err := r.Get()
		if err != nil {
			return nil
		}
		return access(root)
	}
}

// wrapEmbed re-wraps an erased embed so the constructed root is reinserted
// into a fresh shell of the wrapper type.
func wrapEmbed[Root, Wrapper any](embed func(any) Root, wrap func(Root) Wrapper) func(any) Wrapper {
	return func(value any) Wrapper {
		return wrap(embed(value))
	}
}
