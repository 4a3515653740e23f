package day

import "testing"

func TestResultString(t *testing.T) {
	r := Result{Part1: 42, Part2: "CODE"}
	want := "Part 1: 42\nPart 2: CODE"
	if got := r.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
