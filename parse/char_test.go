package parse

import (
	"errors"
	"testing"
)

func kindOf(t *testing.T, err error) Kind {
	t.Helper()
	var parseErr *Error
	if !errors.As(err, &parseErr) {
		t.Fatalf("error %v is not a parse error", err)
	}
	return parseErr.Kind
}

func TestCharDefault(t *testing.T) {
	res, err := Char().Parse("ab", 0)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if res.Value != 'a' {
		t.Errorf("Value = %q, want %q", res.Value, 'a')
	}
	if res.Next != 1 {
		t.Errorf("Next = %d, want 1", res.Next)
	}
}

func TestCharFailures(t *testing.T) {
	tests := []struct {
		name   string
		parser Parser[rune]
		input  string
		offset int
		kind   Kind
	}{
		{"end of input", Char(), "", 0, EndOfInput},
		{"end of input mid string", Char(), "ab", 2, EndOfInput},
		{"not in allow set", Char(Allowed("abc")), "d", 0, UnexpectedChar},
		{"empty allow set", Char(Allowed("")), "a", 0, UnexpectedChar},
		{"newline denied by default", Char(), "\n", 0, IllegalChar},
		{"custom deny set", Char(Illegal("x")), "x", 0, IllegalChar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.parser.Parse(tt.input, tt.offset)
			if err == nil {
				t.Fatal("Parse() succeeded, want failure")
			}
			if kind := kindOf(t, err); kind != tt.kind {
				t.Errorf("Kind = %v, want %v", kind, tt.kind)
			}
		})
	}
}

func TestCharNewlineAllowedExplicitly(t *testing.T) {
	res, err := Char(Allowed("\n"), Illegal("")).Parse("\n", 0)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if res.Value != '\n' {
		t.Errorf("Value = %q, want newline", res.Value)
	}
}

func TestCharMidOffset(t *testing.T) {
	res, err := Char(Allowed("c")).Parse("abc", 2)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if res.Next != 3 {
		t.Errorf("Next = %d, want 3", res.Next)
	}
}
