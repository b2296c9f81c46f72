package keypath

// Compose joins an outer Keypath[Root, Mid] with an inner Keypath[Mid, Value]
// into a Keypath[Root, Value]. The resulting capability is determined by the
// variant pair:
//
//	Readable         ∘ Readable                   → Readable
//	Readable         ∘ FailableReadable           → FailableReadable
//	FailableReadable ∘ Readable|FailableReadable  → FailableReadable
//	ReadableEnum     ∘ Readable|FailableReadable  → FailableReadable
//	ReadableEnum     ∘ ReadableEnum               → ReadableEnum
//	Writable         ∘ Writable                   → Writable
//	Writable         ∘ FailableWritable           → FailableWritable
//	FailableWritable ∘ Writable|FailableWritable  → FailableWritable
//	WritableEnum     ∘ Writable|FailableWritable  → FailableWritable
//	WritableEnum     ∘ WritableEnum               → WritableEnum
//	Owned            ∘ Owned                      → Owned
//	Owned            ∘ FailableOwned              → FailableOwned
//	FailableOwned    ∘ Owned|FailableOwned        → FailableOwned
//
// Partial steps short-circuit: when the outer step reports absence the inner
// accessor is never invoked. Any pairing not listed — mixing read and write
// directions, mixing reference-based and value-consuming variants, or any
// pairing involving ReferenceWritable — panics with a *ComposeError naming
// both variants. Reference-based and value-consuming variants never mix
// because consuming the root destroys the storage a reference would target.
func Compose[Root, Mid, Value any](outer Keypath[Root, Mid], inner Keypath[Mid, Value]) Keypath[Root, Value] {
	switch outer.kind {
	case KindReadable:
		switch inner.kind {
		case KindReadable:
			o, i := outer.read, inner.read
			return Readable(func(root *Root) *Value { return i(o(root)) })
		case KindFailableReadable:
			return FailableReadable(chain(outer.read, inner.read))
		}
	case KindFailableReadable:
		switch inner.kind {
		case KindReadable, KindFailableReadable:
			return FailableReadable(chain(outer.read, inner.read))
		}
	case KindReadableEnum:
		switch inner.kind {
		case KindReadable, KindFailableReadable:
			return FailableReadable(chain(outer.read, inner.read))
		case KindReadableEnum:
			oEmbed, iEmbed := outer.embed, inner.embed
			return ReadableEnum(
				chain(outer.read, inner.read),
				func(value Value) Root { return oEmbed(iEmbed(value)) },
			)
		}
	case KindWritable:
		switch inner.kind {
		case KindWritable:
			o, i := outer.write, inner.write
			return Writable(func(root *Root) *Value { return i(o(root)) })
		case KindFailableWritable:
			return FailableWritable(chain(outer.write, inner.write))
		}
	case KindFailableWritable:
		switch inner.kind {
		case KindWritable, KindFailableWritable:
			return FailableWritable(chain(outer.write, inner.write))
		}
	case KindWritableEnum:
		switch inner.kind {
		case KindWritable, KindFailableWritable:
			// The inner step may be total, but the outer branch can still
			// mismatch, so the result is partial.
			return FailableWritable(chain(outer.write, inner.write))
		case KindWritableEnum:
			oEmbed, iEmbed := outer.embed, inner.embed
			return WritableEnum(
				chain(outer.read, inner.read),
				chain(outer.write, inner.write),
				func(value Value) Root { return oEmbed(iEmbed(value)) },
			)
		}
	case KindOwned:
		switch inner.kind {
		case KindOwned:
			o, i := outer.owned, inner.owned
			return Owned(func(root Root) Value {
				mid, _ := o(root)
				value, _ := i(mid)
				return value
			})
		case KindFailableOwned:
			return FailableOwned(chainOwned(outer.owned, inner.owned))
		}
	case KindFailableOwned:
		switch inner.kind {
		case KindOwned, KindFailableOwned:
			return FailableOwned(chainOwned(outer.owned, inner.owned))
		}
	}
	panic(&ComposeError{Outer: outer.kind, Inner: inner.kind})
}

// chain joins two reference accessors with absence propagation: a nil from
// the outer step returns immediately without invoking the inner step.
func chain[Root, Mid, Value any](outer func(*Root) *Mid, inner func(*Mid) *Value) func(*Root) *Value {
	return func(root *Root) *Value {
		mid := outer(root)
		if mid == nil {
			return nil
		}
		return inner(mid)
	}
}

// chainOwned joins two consuming accessors with absence propagation.
func chainOwned[Root, Mid, Value any](outer func(Root) (Mid, bool), inner func(Mid) (Value, bool)) func(Root) (Value, bool) {
	return func(root Root) (Value, bool) {
		mid, ok := outer(root)
		if !ok {
			var zero Value
			return zero, false
		}
		return inner(mid)
	}
}
