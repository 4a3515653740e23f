// Package day defines the shape shared by every puzzle solution.
package day

import (
	"fmt"
	"io"
)

// Result is a puzzle's two-part answer. Parts are usually numbers but a
// few puzzles answer with rendered text.
type Result struct {
	Part1 any
	Part2 any
}

func (r Result) String() string {
	return fmt.Sprintf("Part 1: %v\nPart 2: %v", r.Part1, r.Part2)
}

// Solution runs one day's puzzle against its input.
type Solution func(r io.Reader) (Result, error)
