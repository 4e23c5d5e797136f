package main

import (
	"fmt"
	"io"
	"time"
)

// demoChrono measures a sleep with the monotonic clock.
// time.Since(start) is time.Now().Sub(start); both read the monotonic
// reading, so wall-clock jumps do not skew the result.
func demoChrono(w io.Writer, pause time.Duration) {
	start := time.Now()
	time.Sleep(pause)
	elapsed := time.Since(start)

	fmt.Fprintf(w, "Elapsed time: %.6g seconds\n", elapsed.Seconds())
}
