package main

import (
	"fmt"
	"io"
	"sync"
)

// ── Spawn and join ───────────────────────────────────────────────────────────

// demoThread launches one goroutine and waits for it before returning.
// Without wg.Wait() the caller could move on, or exit, before it runs.
func demoThread(w io.Writer) {
	var wg sync.WaitGroup

	hello := func() {
		defer wg.Done()
		fmt.Fprintln(w, "Hello from thread!")
	}

	wg.Add(1)
	go hello()
	wg.Wait()
}

// ── Future ───────────────────────────────────────────────────────────────────

// future is a handle to a value being computed on another goroutine.
type future[T any] struct {
	ch   chan T
	once sync.Once
	val  T
}

// goAsync starts fn right away on its own goroutine.
// ch has capacity 1 so the goroutine never blocks, even if Get is never called.
func goAsync[T any](fn func() T) *future[T] {
	f := &future[T]{ch: make(chan T, 1)}
	go func() {
		f.ch <- fn()
	}()
	return f
}

// Get blocks until the result is ready. Later calls return the same value.
func (f *future[T]) Get() T {
	f.once.Do(func() {
		f.val = <-f.ch
	})
	return f.val
}

func demoAsync(w io.Writer) {
	square := func(x int) int {
		return x * x
	}

	result := goAsync(func() int { return square(5) })
	fmt.Fprintln(w, "Async result:", result.Get())
}
