package parse

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/NickG123/AdventOfCode2021/geometry"
)

const (
	asciiLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	asciiDigits  = "0123456789"
)

// String greedily consumes characters until one fails the configured
// sets, then joins them. It matches the empty string when the first
// character already fails.
func String(opts ...CharOption) Parser[string] {
	return MapValue(Repeat(Char(opts...)), func(chars []rune) string {
		return string(chars)
	})
}

type intConfig struct {
	base    int
	padding string
}

// IntOption configures an Int parser.
type IntOption func(*intConfig)

// Base sets the numeric base used to convert the matched digits.
func Base(base int) IntOption {
	return func(c *intConfig) { c.base = base }
}

// Padding allows the given characters before the digits, e.g. " " for
// right-aligned columns. The padding is consumed and discarded.
func Padding(padding string) IntOption {
	return func(c *intConfig) { c.padding = padding }
}

// Int parses an optionally padded unsigned integer. Matching no digits at
// all is a PostParse failure.
func Int(opts ...IntOption) Parser[int] {
	cfg := intConfig{base: 10}
	for _, opt := range opts {
		opt(&cfg)
	}
	return Map(
		Pair(String(Allowed(cfg.padding)), String(Allowed(asciiDigits))),
		func(t Tuple[string, string]) (int, error) {
			n, err := strconv.ParseInt(strings.TrimLeft(t.Second, cfg.padding), cfg.base, 64)
			if err != nil {
				return 0, err
			}
			return int(n), nil
		},
	)
}

// Literal matches lit exactly, character by character; a mismatch fails
// at the first differing character.
func Literal(lit string) Parser[string] {
	children := []Parser[any]{}
	for _, c := range lit {
		children = append(children, Erase(Char(Allowed(string(c)), Illegal(""))))
	}
	return MapValue(Series(children...), func(chars []any) string {
		var b strings.Builder
		for _, c := range chars {
			b.WriteRune(c.(rune))
		}
		return b.String()
	})
}

// NewLine matches a single newline character.
var NewLine = Char(Allowed("\n"), Illegal(""))

// Word matches a run of ASCII letters.
var Word = String(Allowed(asciiLetters))

// Digit matches a single decimal digit as its numeric value.
var Digit = MapValue(Char(Allowed(asciiDigits)), func(c rune) int {
	return int(c - '0')
})

// DigitList matches a run of decimal digits as individual values.
var DigitList = Repeat(Digit)

// IgnoreNewline runs p, then consumes and discards one trailing newline.
// The newline must be present.
func IgnoreNewline[T any](p Parser[T]) Parser[T] {
	return MapValue(Pair(p, NewLine), func(t Tuple[T, rune]) T {
		return t.First
	})
}

// IgnoreNewlines runs p, then consumes and discards any number of
// trailing newlines.
func IgnoreNewlines[T any](p Parser[T]) Parser[T] {
	return MapValue(Pair(p, Repeat(NewLine)), func(t Tuple[T, []rune]) T {
		return t.First
	})
}

// Line matches the rest of a line and its terminating newline, which must
// be present.
var Line = IgnoreNewline(String())

// Lines matches consecutive newline-terminated lines.
var Lines = Repeat(Line)

// IntLine matches a line holding a single integer.
var IntLine = Map(Line, func(s string) (int, error) {
	return strconv.Atoi(s)
})

// IntLines matches consecutive lines each holding a single integer.
var IntLines = Repeat(IntLine)

// IntList matches comma-separated integers.
var IntList = Repeat(Int(), Separator(Literal(",")))

// Point2D matches two comma-separated integers as a point.
var Point2D = MapValue(
	Series(Erase(Int()), Erase(Literal(",")), Erase(Int())),
	func(v []any) geometry.Point2D {
		return geometry.Point2D{X: v[0].(int), Y: v[2].(int)}
	},
)

// Enumeration matches a word and looks it up in a fixed table of variant
// names. Lookup is case-sensitive; an unknown name is a PostParse
// failure.
func Enumeration[T any](variants map[string]T) Parser[T] {
	return Map(Word, func(name string) (T, error) {
		v, ok := variants[name]
		if !ok {
			var zero T
			return zero, fmt.Errorf("unknown variant %q", name)
		}
		return v, nil
	})
}

// Record builds a struct of type T from the parsed values, assigned to
// the struct's fields in declaration order. A field-count or type
// mismatch is a defect in the grammar, not in the input, and panics.
func Record[T any](fields Parser[[]any]) Parser[T] {
	return MapValue(fields, func(values []any) T {
		var record T
		rv := reflect.ValueOf(&record).Elem()
		if rv.Kind() != reflect.Struct {
			panic(fmt.Sprintf("parse: Record target %s is not a struct", rv.Type()))
		}
		if rv.NumField() != len(values) {
			panic(fmt.Sprintf("parse: %s has %d fields but the grammar produced %d values", rv.Type(), rv.NumField(), len(values)))
		}
		for i, v := range values {
			field := rv.Field(i)
			value := reflect.ValueOf(v)
			if !value.Type().AssignableTo(field.Type()) {
				if !value.Type().ConvertibleTo(field.Type()) {
					panic(fmt.Sprintf("parse: cannot assign %s to field %s of %s", value.Type(), rv.Type().Field(i).Name, rv.Type()))
				}
				value = value.Convert(field.Type())
			}
			field.Set(value)
		}
		return record
	})
}

// Dictionary collects parsed key/value tuples into a map. Later keys
// overwrite earlier ones.
func Dictionary[K comparable, V any](pairs Parser[[]Tuple[K, V]]) Parser[map[K]V] {
	return MapValue(pairs, func(ts []Tuple[K, V]) map[K]V {
		m := make(map[K]V, len(ts))
		for _, t := range ts {
			m[t.First] = t.Second
		}
		return m
	})
}

// Counter tallies how many times each parsed value occurs.
func Counter[T comparable](p Parser[[]T]) Parser[map[T]int] {
	return MapValue(p, func(values []T) map[T]int {
		counts := make(map[T]int)
		for _, v := range values {
			counts[v]++
		}
		return counts
	})
}
