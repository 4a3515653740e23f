// Package parse provides a small parser-combinator library. A grammar is
// built once, ahead of time, as a tree of immutable parser values; running
// it threads an offset through the tree from left to right. There is no
// alternation and no backtracking: concatenation is all-or-nothing, and
// only Repeat treats a child failure as control flow (the natural end of
// the repetition) rather than an error.
package parse

import (
	"io"
	"os"
)

// Result holds the value produced by a successful parse step and the
// offset at which the next parser should resume. Offsets never decrease
// across successful steps.
type Result[T any] struct {
	Value T
	Next  int
}

// Parser is anything that can attempt to produce a value from an input
// string at a byte offset. Implementations never mutate themselves after
// construction, so a parser tree may be reused across inputs and
// goroutines.
type Parser[T any] interface {
	Parse(data string, offset int) (Result[T], error)
}

// ParseString runs the parser against data from offset zero. Trailing
// input the grammar does not consume is ignored.
func ParseString[T any](p Parser[T], data string) (T, error) {
	res, err := p.Parse(data, 0)
	if err != nil {
		var zero T
		return zero, err
	}
	return res.Value, nil
}

// ParseReader reads r to the end and parses the result.
func ParseReader[T any](p Parser[T], r io.Reader) (T, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		var zero T
		return zero, err
	}
	return ParseString(p, string(data))
}

// ParseFile reads the file at path and parses it.
func ParseFile[T any](p Parser[T], path string) (T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		var zero T
		return zero, err
	}
	return ParseString(p, string(data))
}

// Parse binds a parser to a solve function, producing a function that
// reads an entire input source, parses it, and runs the solution on the
// parsed value. Parse failures are returned unchanged.
func Parse[T, R any](p Parser[T], solve func(T) R) func(io.Reader) (R, error) {
	return func(r io.Reader) (R, error) {
		value, err := ParseReader(p, r)
		if err != nil {
			var zero R
			return zero, err
		}
		return solve(value), nil
	}
}
