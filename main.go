package main

import (
	"fmt"
	"io"
	"os"
	"time"
)

func main() {
	run(os.Stdout)
}

// run walks through every demo once, in declaration order.
func run(w io.Writer) {
	printMatrix(w, [][]int{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})

	demoLambda(w)
	demoOwnership(w)
	demoThread(w)
	demoAsync(w)
	demoTuple(w)
	demoChrono(w, time.Second)
	demoFunction(w)
	demoInitList(w)

	fmt.Fprintln(w, "Auto return type result:", inferredReturn())

	demoCapture(w)
}
