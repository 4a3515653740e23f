package parse

import "fmt"

// Kind classifies a parse failure.
type Kind int

const (
	// EndOfInput means a parser needed a character past the end of the input.
	EndOfInput Kind = iota
	// UnexpectedChar means the character was not in the configured allow-set.
	UnexpectedChar
	// IllegalChar means the character was in the configured deny-set.
	IllegalChar
	// InsufficientRepetitions means a repetition ended below its minimum count.
	InsufficientRepetitions
	// PostParse means a transform function rejected a syntactically valid value.
	PostParse
	// Mismatch covers derived-parser failures that fit no other kind.
	Mismatch
)

func (k Kind) String() string {
	switch k {
	case EndOfInput:
		return "end of input"
	case UnexpectedChar:
		return "unexpected character"
	case IllegalChar:
		return "illegal character"
	case InsufficientRepetitions:
		return "insufficient repetitions"
	case PostParse:
		return "post-parse failure"
	case Mismatch:
		return "mismatch"
	default:
		return "unknown"
	}
}

// Error is the uniform failure signal produced by every parser. Callers
// catch all parse failures with a single errors.As target and can branch
// on Kind when they need to.
type Error struct {
	Kind   Kind
	Offset int
	Reason string
	cause  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("parse: %s at offset %d: %s", e.Kind, e.Offset, e.Reason)
}

func (e *Error) Unwrap() error {
	return e.cause
}

func failf(kind Kind, offset int, format string, args ...any) *Error {
	return &Error{Kind: kind, Offset: offset, Reason: fmt.Sprintf(format, args...)}
}
