package main

import (
	"fmt"
	"io"
)

// owned is the single handle to a heap value. Copying the handle is not
// prevented, so callers pass *owned around, never owned.
//
// Go has no destructors: the value is collected once nothing references it.
// Release drops the handle's reference so that point is the end of the
// owning scope, which is why it is paired with defer.
type owned[T any] struct {
	v *T
}

// own moves v to the heap and returns its only handle.
func own[T any](v T) *owned[T] {
	p := new(T) // escapes: outlives this frame
	*p = v
	return &owned[T]{v: p}
}

// Value reports the owned value, or false once released.
func (o *owned[T]) Value() (T, bool) {
	if o.v == nil {
		var zero T
		return zero, false
	}
	return *o.v, true
}

// Release is safe to call more than once.
func (o *owned[T]) Release() {
	o.v = nil
}

func demoOwnership(w io.Writer) {
	ptr := own(10)
	defer ptr.Release() // runs on every return path

	v, _ := ptr.Value()
	fmt.Fprintln(w, "Unique Ptr value:", v)
}
