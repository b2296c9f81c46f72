// Package container defines the wrapper types keypaths are lifted through
// (optional and fallible shells, unique and shared indirections, lock-backed
// cells, a dynamically borrow-checked cell, and a phantom-tagged read-only
// wrapper) together with scoped-access helpers that run a callback against
// the contained value and release any guard on every exit path.
//
// All wrappers are small value-type handles: copying one shares the payload
// rather than duplicating it, so they can appear as keypath roots, which are
// passed around by value.
package container
