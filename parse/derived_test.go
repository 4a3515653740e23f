package parse

import (
	"errors"
	"reflect"
	"testing"

	"github.com/NickG123/AdventOfCode2021/geometry"
)

func TestString(t *testing.T) {
	tests := []struct {
		name     string
		parser   Parser[string]
		input    string
		want     string
		wantNext int
	}{
		{"stops at newline", String(), "abc\ndef", "abc", 3},
		{"restricted set", String(Allowed("ab")), "abba cd", "abba", 4},
		{"no match is empty", String(Allowed("x")), "abc", "", 0},
		{"empty input is empty", String(), "", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := tt.parser.Parse(tt.input, 0)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if res.Value != tt.want {
				t.Errorf("Value = %q, want %q", res.Value, tt.want)
			}
			if res.Next != tt.wantNext {
				t.Errorf("Next = %d, want %d", res.Next, tt.wantNext)
			}
		})
	}
}

func TestInt(t *testing.T) {
	tests := []struct {
		name     string
		parser   Parser[int]
		input    string
		want     int
		wantNext int
		wantErr  bool
	}{
		{"plain", Int(), "42", 42, 2, false},
		{"leading zeros", Int(), "007", 7, 3, false},
		{"stops at non-digit", Int(), "12ab", 12, 2, false},
		{"space padding consumed", Int(Padding(" ")), "  42", 42, 4, false},
		{"hex base", Int(Base(16)), "19", 25, 2, false},
		{"no digits", Int(), "abc", 0, 0, true},
		{"empty input", Int(), "", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := tt.parser.Parse(tt.input, 0)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Parse() succeeded, want failure")
				}
				if kind := kindOf(t, err); kind != PostParse {
					t.Errorf("Kind = %v, want %v", kind, PostParse)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if res.Value != tt.want {
				t.Errorf("Value = %d, want %d", res.Value, tt.want)
			}
			if res.Next != tt.wantNext {
				t.Errorf("Next = %d, want %d", res.Next, tt.wantNext)
			}
		})
	}
}

func TestLiteral(t *testing.T) {
	res, err := Literal("fold along ").Parse("fold along x=5", 0)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if res.Value != "fold along " {
		t.Errorf("Value = %q, want %q", res.Value, "fold along ")
	}
	if res.Next != len("fold along ") {
		t.Errorf("Next = %d, want %d", res.Next, len("fold along "))
	}
}

func TestLiteralFailsAtFirstDeviation(t *testing.T) {
	tests := []struct {
		input      string
		wantOffset int
	}{
		{"Xbc", 0},
		{"aXc", 1},
		{"abX", 2},
		{"ab", 2},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Literal("abc").Parse(tt.input, 0)
			if err == nil {
				t.Fatal("Parse() succeeded, want failure")
			}
			var parseErr *Error
			if !errors.As(err, &parseErr) {
				t.Fatalf("error %v is not a parse error", err)
			}
			if parseErr.Offset != tt.wantOffset {
				t.Errorf("Offset = %d, want %d", parseErr.Offset, tt.wantOffset)
			}
		})
	}
}

func TestLine(t *testing.T) {
	res, err := Line.Parse("abc\ndef\n", 0)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if res.Value != "abc" {
		t.Errorf("Value = %q, want %q", res.Value, "abc")
	}
	if res.Next != 4 {
		t.Errorf("Next = %d, want 4", res.Next)
	}
}

func TestLineRequiresNewline(t *testing.T) {
	_, err := Line.Parse("abc", 0)
	if err == nil {
		t.Fatal("Parse() succeeded, want failure")
	}
	if kind := kindOf(t, err); kind != EndOfInput {
		t.Errorf("Kind = %v, want %v", kind, EndOfInput)
	}
}

func TestLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"terminated lines", "abc\ndef\n", []string{"abc", "def"}},
		{"unterminated last line excluded", "abc\ndef", []string{"abc"}},
		{"empty input", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseString(Lines, tt.input)
			if err != nil {
				t.Fatalf("ParseString() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIntLines(t *testing.T) {
	got, err := ParseString(IntLines, "199\n200\n208\n")
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}
	want := []int{199, 200, 208}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestIntList(t *testing.T) {
	got, err := ParseString(IntList, "3,1,4,1,5")
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}
	want := []int{3, 1, 4, 1, 5}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDigitList(t *testing.T) {
	got, err := ParseString(DigitList, "2199\n")
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}
	want := []int{2, 1, 9, 9}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

type compass int

const (
	up compass = iota
	down
)

func TestEnumeration(t *testing.T) {
	directions := Enumeration(map[string]compass{"UP": up, "DOWN": down})

	got, err := ParseString(directions, "UP")
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}
	if got != up {
		t.Errorf("got %v, want %v", got, up)
	}
}

func TestEnumerationCaseSensitive(t *testing.T) {
	directions := Enumeration(map[string]compass{"UP": up, "DOWN": down})

	_, err := ParseString(directions, "up")
	if err == nil {
		t.Fatal("ParseString() succeeded, want failure")
	}
	if kind := kindOf(t, err); kind != PostParse {
		t.Errorf("Kind = %v, want %v", kind, PostParse)
	}
}

type sighting struct {
	Name  string
	Count int
}

func TestRecord(t *testing.T) {
	p := Record[sighting](SeriesSep(Literal(" "), Erase(Word), Erase(Int())))
	got, err := ParseString(p, "whale 7")
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}
	want := sighting{Name: "whale", Count: 7}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestRecordFieldCountMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for mismatched field count")
		}
	}()
	p := Record[sighting](Series(Erase(Word)))
	p.Parse("whale", 0)
}

func TestRecordRoundTrip(t *testing.T) {
	// Reparsing the regenerated text yields the same record.
	p := Record[sighting](SeriesSep(Literal(" "), Erase(Word), Erase(Int())))
	first, err := ParseString(p, "squid 12")
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}
	second, err := ParseString(p, first.Name+" "+"12")
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}
	if first != second {
		t.Errorf("round trip changed the record: %+v vs %+v", first, second)
	}
}

func TestPoint2D(t *testing.T) {
	got, err := ParseString(Point2D, "6,10")
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}
	want := geometry.Point2D{X: 6, Y: 10}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDictionary(t *testing.T) {
	p := Dictionary(Repeat(Pair(Word, Word, Separator(Literal(" -> "))), Separator(NewLine)))
	got, err := ParseString(p, "CH -> B\nHH -> N")
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}
	want := map[string]string{"CH": "B", "HH": "N"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCounter(t *testing.T) {
	got, err := ParseString(Counter(IntList), "3,4,3,1,2")
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}
	want := map[int]int{1: 1, 2: 1, 3: 2, 4: 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestIgnoreNewline(t *testing.T) {
	got, err := ParseString(IgnoreNewline(Word), "abc\n")
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}
	if got != "abc" {
		t.Errorf("got %q, want %q", got, "abc")
	}
}

func TestIgnoreNewlines(t *testing.T) {
	res, err := IgnoreNewlines(Word).Parse("abc\n\n\ndef", 0)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if res.Value != "abc" {
		t.Errorf("Value = %q, want %q", res.Value, "abc")
	}
	if res.Next != 6 {
		t.Errorf("Next = %d, want 6", res.Next)
	}
}

func TestWord(t *testing.T) {
	res, err := Word.Parse("forward 5", 0)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if res.Value != "forward" {
		t.Errorf("Value = %q, want %q", res.Value, "forward")
	}
}
