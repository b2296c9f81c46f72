package keypath

// Get returns a pointer to the value inside root, or nil when the value is
// absent. Variants that carry a write or construct capability but no read
// side (Writable, FailableWritable, ReferenceWritable) also report nil, so
// callers can probe read access uniformly. Only the value-consuming variants
// have no reference semantics at all; calling Get on them panics with a
// *KindError.
func (k Keypath[Root, Value]) Get(root *Root) *Value {
	switch k.kind {
	case KindReadable, KindFailableReadable, KindReadableEnum, KindWritableEnum:
		return k.read(root)
	case KindWritable, KindFailableWritable, KindReferenceWritable:
		return nil
	default:
		panic(&KindError{Op: "Get", Kind: k.kind})
	}
}

// GetMut returns a pointer for writing into root, or nil when the value is
// absent. Read-only variants (Readable, FailableReadable, ReadableEnum)
// report nil; value-consuming variants panic with a *KindError.
func (k Keypath[Root, Value]) GetMut(root *Root) *Value {
	switch k.kind {
	case KindWritable, KindFailableWritable, KindWritableEnum, KindReferenceWritable:
		return k.write(root)
	case KindReadable, KindFailableReadable, KindReadableEnum:
		return nil
	default:
		panic(&KindError{Op: "GetMut", Kind: k.kind})
	}
}

// GetOwned consumes root and returns the value. Legal only on KindOwned;
// every other variant panics with a *KindError.
func (k Keypath[Root, Value]) GetOwned(root Root) Value {
	if k.kind != KindOwned {
		panic(&KindError{Op: "GetOwned", Kind: k.kind})
	}
	value, _ := k.owned(root)
	return value
}

// GetFailableOwned consumes root and returns the value with a presence flag.
// Legal on KindFailableOwned and on KindOwned (which always reports true);
// every other variant panics with a *KindError.
func (k Keypath[Root, Value]) GetFailableOwned(root Root) (Value, bool) {
	switch k.kind {
	case KindOwned, KindFailableOwned:
		return k.owned(root)
	default:
		panic(&KindError{Op: "GetFailableOwned", Kind: k.kind})
	}
}

// Embed constructs a root holding value in this keypath's tagged-union
// branch. Legal only on the enum variants; others panic with a *KindError.
func (k Keypath[Root, Value]) Embed(value Value) Root {
	switch k.kind {
	case KindReadableEnum, KindWritableEnum:
		return k.embed(value)
	default:
		panic(&KindError{Op: "Embed", Kind: k.kind})
	}
}

// EmbedMut is Embed restricted to the writable enum variant.
func (k Keypath[Root, Value]) EmbedMut(value Value) Root {
	if k.kind != KindWritableEnum {
		panic(&KindError{Op: "EmbedMut", Kind: k.kind})
	}
	return k.embed(value)
}
