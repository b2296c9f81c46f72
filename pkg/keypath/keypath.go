// Package keypath implements composable, capability-tagged accessors for
// values nested inside structured Go values. A Keypath[Root, Value] is built
// once from plain accessor functions and then invoked directly, composed with
// another keypath, lifted through a container wrapper, or erased for storage
// in a heterogeneous collection.
//
// Every keypath is exactly one capability variant (Kind); the variant fixes
// which access operations are legal. Invoking an operation a variant cannot
// support at all raises a typed panic (see errors.go), never undefined
// behavior; a read or write that merely misses (a partial keypath, a
// tagged-union branch mismatch) reports absence with a nil result instead.
package keypath

// Kind identifies the capability variant of a keypath.
type Kind int

const (
	// KindReadable always locates its value and permits reading.
	KindReadable Kind = iota

	// KindWritable always locates its value and permits reading through a
	// mutable reference.
	KindWritable

	// KindFailableReadable may fail to locate its value; reads report
	// absence with a nil result.
	KindFailableReadable

	// KindFailableWritable may fail to locate its value; writes report
	// absence with a nil result.
	KindFailableWritable

	// KindReadableEnum extracts one branch of a tagged union and can
	// construct a root from a branch value.
	KindReadableEnum

	// KindWritableEnum is KindReadableEnum plus mutable extraction.
	KindWritableEnum

	// KindReferenceWritable permits total writes on reference-like roots.
	KindReferenceWritable

	// KindOwned consumes the root by value and always produces a value.
	KindOwned

	// KindFailableOwned consumes the root by value and may produce nothing.
	KindFailableOwned
)

// kindNames maps each variant to its diagnostic name.
var kindNames = map[Kind]string{
	KindReadable:          "Readable",
	KindWritable:          "Writable",
	KindFailableReadable:  "FailableReadable",
	KindFailableWritable:  "FailableWritable",
	KindReadableEnum:      "ReadableEnum",
	KindWritableEnum:      "WritableEnum",
	KindReferenceWritable: "ReferenceWritable",
	KindOwned:             "Owned",
	KindFailableOwned:     "FailableOwned",
}

// String returns the variant name used in diagnostics.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "InvalidKind"
}

// Keypath describes how to reach and act on a Value inside a Root. It is
// immutable; copying a Keypath shares the underlying accessor closures
// without re-capturing their state. The zero Keypath is KindReadable with no
// accessor and must not be used; always build keypaths with a constructor.
type Keypath[Root, Value any] struct {
	kind Kind

	// read locates the value for reading. Total variants never return nil;
	// failable and enum variants return nil on absence or branch mismatch.
	read func(*Root) *Value

	// write locates the value for writing, with the same nil convention.
	write func(*Root) *Value

	// embed constructs a root from a branch value (enum variants only).
	embed func(Value) Root

	// owned consumes a root and produces the value. Total owned keypaths
	// always report true.
	owned func(Root) (Value, bool)
}

// Kind reports the capability variant of the keypath.
func (k Keypath[Root, Value]) Kind() Kind {
	return k.kind
}

// Readable builds a total read-only keypath from an accessor that always
// locates the value. The accessor must not return nil.
func Readable[Root, Value any](get func(*Root) *Value) Keypath[Root, Value] {
	return Keypath[Root, Value]{kind: KindReadable, read: get}
}

// Writable builds a total read-write keypath from an accessor that always
// locates the value. The accessor must not return nil.
func Writable[Root, Value any](getMut func(*Root) *Value) Keypath[Root, Value] {
	return Keypath[Root, Value]{kind: KindWritable, write: getMut}
}

// FailableReadable builds a partial read-only keypath. The accessor returns
// nil when the value is absent.
func FailableReadable[Root, Value any](get func(*Root) *Value) Keypath[Root, Value] {
	return Keypath[Root, Value]{kind: KindFailableReadable, read: get}
}

// FailableWritable builds a partial read-write keypath. The accessor returns
// nil when the value is absent.
func FailableWritable[Root, Value any](getMut func(*Root) *Value) Keypath[Root, Value] {
	return Keypath[Root, Value]{kind: KindFailableWritable, write: getMut}
}

// ReadableEnum builds a tagged-union read keypath from a branch extractor
// (nil on branch mismatch) and a constructor embedding a branch value into a
// fresh root.
func ReadableEnum[Root, Value any](extract func(*Root) *Value, embed func(Value) Root) Keypath[Root, Value] {
	return Keypath[Root, Value]{kind: KindReadableEnum, read: extract, embed: embed}
}

// WritableEnum builds a tagged-union read-write keypath. extract and
// extractMut return nil on branch mismatch; embed constructs a root from a
// branch value.
func WritableEnum[Root, Value any](extract func(*Root) *Value, extractMut func(*Root) *Value, embed func(Value) Root) Keypath[Root, Value] {
	return Keypath[Root, Value]{kind: KindWritableEnum, read: extract, write: extractMut, embed: embed}
}

// ReferenceWritable builds a total read-write keypath for reference-like
// roots, where the root itself is a handle and mutation flows through it.
func ReferenceWritable[Root, Value any](getMut func(*Root) *Value) Keypath[Root, Value] {
	return Keypath[Root, Value]{kind: KindReferenceWritable, write: getMut}
}

// Owned builds a value-consuming keypath: the accessor takes the root by
// value and always produces the value.
func Owned[Root, Value any](get func(Root) Value) Keypath[Root, Value] {
	return Keypath[Root, Value]{kind: KindOwned, owned: func(root Root) (Value, bool) {
		return get(root), true
	}}
}

// FailableOwned builds a partial value-consuming keypath: the accessor takes
// the root by value and reports false when no value is produced.
func FailableOwned[Root, Value any](get func(Root) (Value, bool)) Keypath[Root, Value] {
	return Keypath[Root, Value]{kind: KindFailableOwned, owned: get}
}
