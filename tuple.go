package main

import (
	"fmt"
	"io"
)

// tuple3 groups three values of unrelated types. Fields are positional.
type tuple3[A, B, C any] struct {
	first  A
	second B
	third  C
}

func makeTuple[A, B, C any](a A, b B, c C) tuple3[A, B, C] {
	return tuple3[A, B, C]{first: a, second: b, third: c}
}

func (t tuple3[A, B, C]) Get0() A { return t.first }
func (t tuple3[A, B, C]) Get1() B { return t.second }
func (t tuple3[A, B, C]) Get2() C { return t.third }

// Unpack returns all three fields, for use with a multi-value assignment.
func (t tuple3[A, B, C]) Unpack() (A, B, C) {
	return t.first, t.second, t.third
}

func demoTuple(w io.Writer) {
	t := makeTuple(1, "Hello", 3.14)
	fmt.Fprintf(w, "Tuple values: %v, %v, %v\n", t.Get0(), t.Get1(), t.Get2())
}
