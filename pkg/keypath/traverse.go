package keypath

// GetAll reads through every root in the slice and collects the values that
// are present, preserving order. Legal only on the read-side variants
// (Readable, FailableReadable, ReadableEnum); using it on a write-side or
// value-consuming variant panics with a *KindError.
func (k Keypath[Root, Value]) GetAll(roots []*Root) []*Value {
	switch k.kind {
	case KindReadable, KindFailableReadable, KindReadableEnum:
	default:
		panic(&KindError{Op: "GetAll", Kind: k.kind})
	}
	values := make([]*Value, 0, len(roots))
	for _, root := range roots {
		if v := k.read(root); v != nil {
			values = append(values, v)
		}
	}
	return values
}

// GetAllMut is the write-side counterpart of GetAll: it collects writable
// pointers from every root where the value is present. Legal only on the
// write-side variants (Writable, FailableWritable, WritableEnum,
// ReferenceWritable).
func (k Keypath[Root, Value]) GetAllMut(roots []*Root) []*Value {
	switch k.kind {
	case KindWritable, KindFailableWritable, KindWritableEnum, KindReferenceWritable:
	default:
		panic(&KindError{Op: "GetAllMut", Kind: k.kind})
	}
	values := make([]*Value, 0, len(roots))
	for _, root := range roots {
		if v := k.write(root); v != nil {
			values = append(values, v)
		}
	}
	return values
}
