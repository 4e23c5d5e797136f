package main

import (
	"bytes"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPrintMatrix(t *testing.T) {
	var buf bytes.Buffer
	printMatrix(&buf, [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})

	want := []string{"Matrix:", "1 2 3", "4 5 6", "7 8 9"}
	if diff := cmp.Diff(want, lines(buf.String())); diff != "" {
		t.Errorf("printMatrix mismatch (-want +got):\n%s", diff)
	}
}

func TestPrintMatrixEmptyRow(t *testing.T) {
	var buf bytes.Buffer
	printMatrix(&buf, [][]int{{}, {42}})

	want := "Matrix:\n\n42\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q; want %q", got, want)
	}
}

func TestForEachOrder(t *testing.T) {
	var seen []string
	forEach([]string{"a", "b", "c"}, func(s string) {
		seen = append(seen, s)
	})

	if diff := cmp.Diff([]string{"a", "b", "c"}, seen); diff != "" {
		t.Errorf("forEach order (-want +got):\n%s", diff)
	}
}

// Both sequence demos keep the trailing space after the last element.
func TestSequenceDemos(t *testing.T) {
	const want = "1 2 3 4 5 \n"

	for name, demo := range map[string]func(io.Writer){
		"lambda":   demoLambda,
		"initlist": demoInitList,
	} {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			demo(&buf)
			if got := buf.String(); got != want {
				t.Errorf("got %q; want %q", got, want)
			}
		})
	}
}
