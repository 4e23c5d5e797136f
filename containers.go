package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// printMatrix writes a header and then one line per row, values separated by
// a single space.
func printMatrix(w io.Writer, grid [][]int) {
	fmt.Fprintln(w, "Matrix:")
	for _, row := range grid {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = strconv.Itoa(v)
		}
		fmt.Fprintln(w, strings.Join(cells, " "))
	}
}

// forEach applies fn to every element of s, in order.
func forEach[T any](s []T, fn func(T)) {
	for _, v := range s {
		fn(v)
	}
}

// demoLambda hands an anonymous function to forEach.
// The element type is inferred from the slice, fn's from the literal.
func demoLambda(w io.Writer) {
	vec := []int{1, 2, 3, 4, 5}
	forEach(vec, func(n int) {
		fmt.Fprintf(w, "%d ", n)
	})
	fmt.Fprintln(w)
}

// demoInitList builds the same sequence with a composite literal and ranges
// over it directly.
func demoInitList(w io.Writer) {
	vec := []int{1, 2, 3, 4, 5}
	for _, v := range vec {
		fmt.Fprintf(w, "%d ", v)
	}
	fmt.Fprintln(w)
}
