package keypath

import "fmt"

// Misuse of the keypath API is a programmer error, not an expected outcome,
// so it is reported by panicking with one of the typed errors below. An
// expected miss (a partial keypath finding nothing, a tagged-union branch
// mismatch, a failed try-acquisition) is reported with a nil result or a
// false flag instead and never panics.

// KindError reports an access operation invoked on a keypath variant that
// has no capability for it at all.
type KindError struct {
	Op   string // the operation attempted, e.g. "GetOwned"
	Kind Kind   // the variant it was attempted on
}

func (e *KindError) Error() string {
	return fmt.Sprintf("keypath: %s is not supported on a %s keypath", e.Op, e.Kind)
}

// ComposeError reports a composition of two variants with no defined rule.
type ComposeError struct {
	Outer Kind
	Inner Kind
}

func (e *ComposeError) Error() string {
	return fmt.Sprintf("keypath: cannot compose a %s outer keypath with a %s inner keypath", e.Outer, e.Inner)
}

// AdaptError reports a container adapter applied to a variant the wrapper
// cannot support, refused at adaptation time rather than at use.
type AdaptError struct {
	Adapter string
	Kind    Kind
}

func (e *AdaptError) Error() string {
	return fmt.Sprintf("keypath: adapter %s does not accept a %s keypath", e.Adapter, e.Kind)
}

// CastError reports a runtime type mismatch at an erasure boundary: a value
// or root of the wrong concrete type handed to an erased keypath.
type CastError struct {
	Op   string
	Want string
	Got  string
}

func (e *CastError) Error() string {
	return fmt.Sprintf("keypath: %s expected %s, got %s", e.Op, e.Want, e.Got)
}
