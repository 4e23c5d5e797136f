package main

import (
	"fmt"
	"io"
)

// binaryOp is any function taking two ints and returning one: a named func,
// a method value or a closure all fit.
type binaryOp func(a, b int) int

func demoFunction(w io.Writer) {
	var add binaryOp = func(a, b int) int {
		return a + b
	}
	fmt.Fprintln(w, "Function result:", add(2, 3))
}

// inferredReturn's result is assigned with := by callers; the type is
// declared once, here.
func inferredReturn() int {
	return 42
}

// demoCapture computes y from x when the closure is built.
// The closure holds its own copy of y; x is not captured at all.
func demoCapture(w io.Writer) {
	x := 10
	lambda := func(y int) func() {
		return func() {
			fmt.Fprintln(w, "Captured value:", y)
		}
	}(x + 1)

	lambda()
}
