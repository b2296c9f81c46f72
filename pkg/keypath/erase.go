package keypath

import (
	"fmt"
	"strings"
)

// Erasure hides a keypath's static types behind `any` so keypaths over
// different types can live in one collection. The original type identity is
// kept in two forms: the typed keypath itself, stored for checked
// restoration, and coercions wrapped around every accessor that verify the
// concrete type of whatever the caller hands in. Reading through an erased
// keypath yields an `any` holding a *Value; consuming accessors yield an
// `any` holding a Value. A payload or root of the wrong concrete type panics
// with a *CastError, never a reinterpretation.

// ValueErased is a keypath with its Value type hidden; the Root type stays
// visible. Capability dispatch follows the same rules as Keypath.
type ValueErased[Root any] struct {
	kind  Kind
	typed any // the original Keypath[Root, Value], kept for restoration

	read  func(*Root) any        // returns *Value as any; nil on absence
	write func(*Root) any        // returns *Value as any; nil on absence
	embed func(any) Root         // takes Value as any
	owned func(Root) (any, bool) // returns Value as any
	deref func(any) any          // copies the Value out of a *Value handle
}

// EraseValue hides the Value type of a keypath. The result supports the same
// operations as the original, speaking `any` at the value boundary.
func EraseValue[Root, Value any](k Keypath[Root, Value]) ValueErased[Root] {
	e := ValueErased[Root]{kind: k.kind, typed: k}
	if k.read != nil {
		read := k.read
		e.read = func(root *Root) any {
			if v := read(root); v != nil {
				return v
			}
			return nil
		}
	}
	if k.write != nil {
		write := k.write
		e.write = func(root *Root) any {
			if v := write(root); v != nil {
				return v
			}
			return nil
		}
	}
	if k.embed != nil {
		embed := k.embed
		e.embed = func(value any) Root {
			v, ok := value.(Value)
			if !ok {
				panic(&CastError{Op: "Embed", Want: typeName[Value](), Got: fmt.Sprintf("%T", value)})
			}
			return embed(v)
		}
	}
	if k.owned != nil {
		owned := k.owned
		e.owned = func(root Root) (any, bool) {
			v, ok := owned(root)
			if !ok {
				return nil, false
			}
			return v, true
		}
	}
	e.deref = func(ptr any) any {
		p, ok := ptr.(*Value)
		if !ok {
			panic(&CastError{Op: "deref", Want: typeName[*Value](), Got: fmt.Sprintf("%T", ptr)})
		}
		return *p
	}
	return e
}

// RestoreValue recovers the typed keypath from a value-erased one. The cast
// is checked: restoring to any type other than the erased one, or restoring
// a keypath produced by an erased adapter (which has no typed original),
// reports false.
func RestoreValue[Root, Value any](e ValueErased[Root]) (Keypath[Root, Value], bool) {
	k, ok := e.typed.(Keypath[Root, Value])
	return k, ok
}

// Kind reports the capability variant of the erased keypath.
func (e ValueErased[Root]) Kind() Kind {
	return e.kind
}

// Get returns an `any` holding a pointer to the value, or nil when absent,
// with the same capability rules as Keypath.Get.
func (e ValueErased[Root]) Get(root *Root) any {
	switch e.kind {
	case KindReadable, KindFailableReadable, KindReadableEnum, KindWritableEnum:
		return e.read(root)
	case KindWritable, KindFailableWritable, KindReferenceWritable:
		return nil
	default:
		panic(&KindError{Op: "Get", Kind: e.kind})
	}
}

// GetMut returns an `any` holding a pointer for writing, or nil when absent,
// with the same capability rules as Keypath.GetMut.
func (e ValueErased[Root]) GetMut(root *Root) any {
	switch e.kind {
	case KindWritable, KindFailableWritable, KindWritableEnum, KindReferenceWritable:
		return e.write(root)
	case KindReadable, KindFailableReadable, KindReadableEnum:
		return nil
	default:
		panic(&KindError{Op: "GetMut", Kind: e.kind})
	}
}

// GetOwned consumes root and returns the value as `any`. KindOwned only.
func (e ValueErased[Root]) GetOwned(root Root) any {
	if e.kind != KindOwned {
		panic(&KindError{Op: "GetOwned", Kind: e.kind})
	}
	value, _ := e.owned(root)
	return value
}

// GetFailableOwned consumes root and returns the value as `any` with a
// presence flag. Legal on the owned variants only.
func (e ValueErased[Root]) GetFailableOwned(root Root) (any, bool) {
	switch e.kind {
	case KindOwned, KindFailableOwned:
		return e.owned(root)
	default:
		panic(&KindError{Op: "GetFailableOwned", Kind: e.kind})
	}
}

// Embed constructs a root from a branch value handed in as `any`. Enum
// variants only; a payload of the wrong type panics with a *CastError.
func (e ValueErased[Root]) Embed(value any) Root {
	switch e.kind {
	case KindReadableEnum, KindWritableEnum:
		return e.embed(value)
	default:
		panic(&KindError{Op: "Embed", Kind: e.kind})
	}
}

// EmbedMut is Embed restricted to the writable enum variant.
func (e ValueErased[Root]) EmbedMut(value any) Root {
	if e.kind != KindWritableEnum {
		panic(&KindError{Op: "EmbedMut", Kind: e.kind})
	}
	return e.embed(value)
}

// FullyErased is a keypath with both Root and Value hidden. Roots are handed
// in as `any` holding a *Root (or a Root value for the consuming accessors);
// a root of the wrong concrete type panics with a *CastError.
type FullyErased struct {
	kind  Kind
	typed any // the original keypath; nil for Then-composed paths

	read  func(any) any
	write func(any) any
	embed func(any) any
	owned func(any) (any, bool)
}

// Erase hides both types of a keypath.
func Erase[Root, Value any](k Keypath[Root, Value]) FullyErased {
	f := FullyErased{kind: k.kind, typed: k}
	if k.read != nil {
		read := k.read
		f.read = func(root any) any {
			r, ok := root.(*Root)
			if !ok {
				panic(&CastError{Op: "Get", Want: typeName[*Root](), Got: fmt.Sprintf("%T", root)})
			}
			if v := read(r); v != nil {
				return v
			}
			return nil
		}
	}
	if k.write != nil {
		write := k.write
		f.write = func(root any) any {
			r, ok := root.(*Root)
			if !ok {
				panic(&CastError{Op: "GetMut", Want: typeName[*Root](), Got: fmt.Sprintf("%T", root)})
			}
			if v := write(r); v != nil {
				return v
			}
			return nil
		}
	}
	if k.embed != nil {
		embed := k.embed
		f.embed = func(value any) any {
			v, ok := value.(Value)
			if !ok {
				panic(&CastError{Op: "Embed", Want: typeName[Value](), Got: fmt.Sprintf("%T", value)})
			}
			return embed(v)
		}
	}
	if k.owned != nil {
		owned := k.owned
		f.owned = func(root any) (any, bool) {
			r, ok := root.(Root)
			if !ok {
				panic(&CastError{Op: "GetOwned", Want: typeName[Root](), Got: fmt.Sprintf("%T", root)})
			}
			v, present := owned(r)
			if !present {
				return nil, false
			}
			return v, true
		}
	}
	return f
}

// Restore recovers the typed keypath from a fully erased one. The cast is
// checked: restoring to any types other than the erased ones, or restoring
// a Then-composed path (which has no typed original), reports false.
func Restore[Root, Value any](f FullyErased) (Keypath[Root, Value], bool) {
	k, ok := f.typed.(Keypath[Root, Value])
	return k, ok
}

// Kind reports the capability variant of the erased keypath.
func (f FullyErased) Kind() Kind {
	return f.kind
}

// Get returns an `any` holding a pointer to the value inside the root handed
// in as *Root, or nil when absent; same capability rules as Keypath.Get.
func (f FullyErased) Get(root any) any {
	switch f.kind {
	case KindReadable, KindFailableReadable, KindReadableEnum, KindWritableEnum:
		return f.read(root)
	case KindWritable, KindFailableWritable, KindReferenceWritable:
		return nil
	default:
		panic(&KindError{Op: "Get", Kind: f.kind})
	}
}

// GetMut returns an `any` holding a pointer for writing, or nil when absent;
// same capability rules as Keypath.GetMut.
func (f FullyErased) GetMut(root any) any {
	switch f.kind {
	case KindWritable, KindFailableWritable, KindWritableEnum, KindReferenceWritable:
		return f.write(root)
	case KindReadable, KindFailableReadable, KindReadableEnum:
		return nil
	default:
		panic(&KindError{Op: "GetMut", Kind: f.kind})
	}
}

// GetOwned consumes the root handed in by value and returns the value as
// `any`. KindOwned only.
func (f FullyErased) GetOwned(root any) any {
	if f.kind != KindOwned {
		panic(&KindError{Op: "GetOwned", Kind: f.kind})
	}
	value, _ := f.owned(root)
	return value
}

// GetFailableOwned consumes the root handed in by value and returns the
// value as `any` with a presence flag. Owned variants only.
func (f FullyErased) GetFailableOwned(root any) (any, bool) {
	switch f.kind {
	case KindOwned, KindFailableOwned:
		return f.owned(root)
	default:
		panic(&KindError{Op: "GetFailableOwned", Kind: f.kind})
	}
}

// Embed constructs a root (returned as `any`) from a branch value. Enum
// variants only.
func (f FullyErased) Embed(value any) any {
	switch f.kind {
	case KindReadableEnum, KindWritableEnum:
		return f.embed(value)
	default:
		panic(&KindError{Op: "Embed", Kind: f.kind})
	}
}

// EmbedMut is Embed restricted to the writable enum variant.
func (f FullyErased) EmbedMut(value any) any {
	if f.kind != KindWritableEnum {
		panic(&KindError{Op: "EmbedMut", Kind: f.kind})
	}
	return f.embed(value)
}

// Then composes this keypath with an inner one, applying the same pairing
// table as Compose. The variant pair is checked eagerly; the intermediate
// type agreement is checked lazily, at access time, because the erased form
// carries no static types — a mismatch panics there with a *CastError. A
// composed path has no typed original, so Restore on it reports false.
func (f FullyErased) Then(inner FullyErased) FullyErased {
	out := FullyErased{}
	switch f.kind {
	case KindReadable:
		switch inner.kind {
		case KindReadable:
			out.kind = KindReadable
			out.read = chainErased(f.read, inner.read)
			return out
		case KindFailableReadable:
			out.kind = KindFailableReadable
			out.read = chainErased(f.read, inner.read)
			return out
		}
	case KindFailableReadable:
		switch inner.kind {
		case KindReadable, KindFailableReadable:
			out.kind = KindFailableReadable
			out.read = chainErased(f.read, inner.read)
			return out
		}
	case KindReadableEnum:
		switch inner.kind {
		case KindReadable, KindFailableReadable:
			out.kind = KindFailableReadable
			out.read = chainErased(f.read, inner.read)
			return out
		case KindReadableEnum:
			out.kind = KindReadableEnum
			out.read = chainErased(f.read, inner.read)
			out.embed = chainEmbed(f.embed, inner.embed)
			return out
		}
	case KindWritable:
		switch inner.kind {
		case KindWritable:
			out.kind = KindWritable
			out.write = chainErased(f.write, inner.write)
			return out
		case KindFailableWritable:
			out.kind = KindFailableWritable
			out.write = chainErased(f.write, inner.write)
			return out
		}
	case KindFailableWritable:
		switch inner.kind {
		case KindWritable, KindFailableWritable:
			out.kind = KindFailableWritable
			out.write = chainErased(f.write, inner.write)
			return out
		}
	case KindWritableEnum:
		switch inner.kind {
		case KindWritable, KindFailableWritable:
			out.kind = KindFailableWritable
			out.write = chainErased(f.write, inner.write)
			return out
		case KindWritableEnum:
			out.kind = KindWritableEnum
			out.read = chainErased(f.read, inner.read)
			out.write = chainErased(f.write, inner.write)
			out.embed = chainEmbed(f.embed, inner.embed)
			return out
		}
	case KindOwned:
		switch inner.kind {
		case KindOwned:
			out.kind = KindOwned
			out.owned = chainErasedOwned(f.owned, inner.owned)
			return out
		case KindFailableOwned:
			out.kind = KindFailableOwned
			out.owned = chainErasedOwned(f.owned, inner.owned)
			return out
		}
	case KindFailableOwned:
		switch inner.kind {
		case KindOwned, KindFailableOwned:
			out.kind = KindFailableOwned
			out.owned = chainErasedOwned(f.owned, inner.owned)
			return out
		}
	}
	panic(&ComposeError{Outer: f.kind, Inner: inner.kind})
}

// chainErased joins two erased reference accessors. The outer step yields an
// `any` holding a *Mid, which is exactly the root handle the inner step
// expects, so no extra coercion is needed.
func chainErased(outer, inner func(any) any) func(any) any {
	return func(root any) any {
		mid := outer(root)
		if mid == nil {
			return nil
		}
		return inner(mid)
	}
}

// chainErasedOwned joins two erased consuming accessors with absence
// propagation.
func chainErasedOwned(outer, inner func(any) (any, bool)) func(any) (any, bool) {
	return func(root any) (any, bool) {
		mid, ok := outer(root)
		if !ok {
			return nil, false
		}
		return inner(mid)
	}
}

// chainEmbed composes embed functions inside-out: the inner embed builds the
// intermediate branch value, the outer embed wraps it into the root.
func chainEmbed(outer, inner func(any) any) func(any) any {
	return func(value any) any {
		return outer(inner(value))
	}
}

// typeName names a type for *CastError messages without reflection.
func typeName[T any]() string {
	return strings.TrimPrefix(fmt.Sprintf("%T", (*T)(nil)), "*")
}
