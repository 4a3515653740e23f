package parse

import (
	"fmt"
	"unicode/utf8"
)

type charParser struct {
	allowed    map[rune]bool // nil means any character is acceptable
	illegal    map[rune]bool
	allowedSet string
	illegalSet string
}

// CharOption configures a Char parser.
type CharOption func(*charParser)

// Allowed restricts the parser to the given set of characters. An empty
// set matches nothing.
func Allowed(set string) CharOption {
	return func(p *charParser) {
		p.allowed = runeSet(set)
		p.allowedSet = set
	}
}

// Illegal replaces the default deny-set (a single newline) with the given
// set. Pass an empty set to accept newlines.
func Illegal(set string) CharOption {
	return func(p *charParser) {
		p.illegal = runeSet(set)
		p.illegalSet = set
	}
}

// Char parses a single character and advances past it. By default any
// character other than a newline matches, so textual parsers stop at line
// boundaries unless told otherwise.
func Char(opts ...CharOption) Parser[rune] {
	p := &charParser{illegal: runeSet("\n"), illegalSet: "\n"}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *charParser) Parse(data string, offset int) (Result[rune], error) {
	if offset >= len(data) {
		return Result[rune]{}, failf(EndOfInput, offset, "expected %s but reached end of input", p.expectation())
	}
	c, size := utf8.DecodeRuneInString(data[offset:])
	if p.allowed != nil && !p.allowed[c] {
		return Result[rune]{}, failf(UnexpectedChar, offset, "expected %s but found %q", p.expectation(), c)
	}
	if p.illegal[c] {
		return Result[rune]{}, failf(IllegalChar, offset, "expected no %q but found %q", p.illegalSet, c)
	}
	return Result[rune]{Value: c, Next: offset + size}, nil
}

func (p *charParser) expectation() string {
	if p.allowed == nil {
		return "a character"
	}
	return fmt.Sprintf("one of %q", p.allowedSet)
}

func runeSet(s string) map[rune]bool {
	set := make(map[rune]bool, len(s))
	for _, c := range s {
		set[c] = true
	}
	return set
}
