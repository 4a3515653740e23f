// Package day08 decodes the scrambled seven-segment displays.
package day08

import (
	"fmt"
	"math/bits"

	"github.com/NickG123/AdventOfCode2021/day"
	"github.com/NickG123/AdventOfCode2021/parse"
	"github.com/NickG123/AdventOfCode2021/seq"
)

// segmentLengths maps each digit to the number of segments it lights.
var segmentLengths = map[int]int{0: 6, 1: 2, 2: 5, 3: 5, 4: 4, 5: 5, 6: 6, 7: 3, 8: 7, 9: 6}

// groupedLengths maps a segment count to the digits using that many
// segments; deterministicLengths keeps only the unambiguous ones.
var groupedLengths = func() map[int]map[int]bool {
	pairs := []seq.Pair[int, int]{}
	for digit, length := range segmentLengths {
		pairs = append(pairs, seq.Pair[int, int]{Key: length, Value: digit})
	}
	return seq.GroupAsSet(pairs)
}()

var deterministicLengths = func() map[int]int {
	lengths := map[int]int{}
	for length, digits := range groupedLengths {
		if len(digits) == 1 {
			for digit := range digits {
				lengths[length] = digit
			}
		}
	}
	return lengths
}()

// pattern is a set of lit segments, one bit per segment a through g.
type pattern uint8

func patternOf(word string) (pattern, error) {
	if word == "" {
		return 0, fmt.Errorf("empty signal pattern")
	}
	var p pattern
	for _, c := range word {
		if c < 'a' || c > 'g' {
			return 0, fmt.Errorf("segment %q out of range", c)
		}
		p |= 1 << (c - 'a')
	}
	return p, nil
}

func (p pattern) size() int {
	return bits.OnesCount8(uint8(p))
}

// contains reports whether every segment of sub is lit in p.
func (p pattern) contains(sub pattern) bool {
	return p&sub == sub
}

// entry is one display: ten observed patterns and a four-digit output.
type entry struct {
	Patterns []pattern
	Outputs  []pattern
}

var signal = parse.Map(parse.Word, patternOf)
var signalList = parse.Repeat(signal, parse.Separator(parse.Literal(" ")))

var entryParser = parse.Record[entry](parse.Series(
	parse.Erase(signalList),
	parse.Suppress(parse.Literal(" | ")),
	parse.Erase(signalList),
))

var entries = parse.Repeat(entryParser, parse.Separator(parse.NewLine))

// Run solves day 8.
var Run = parse.Parse(entries, solve)

func parseEntries(data string) ([]entry, error) {
	return parse.ParseString(entries, data)
}

// popPattern removes and returns the first pattern that contains (or,
// inverted, does not contain) the given subset.
func popPattern(patterns map[pattern]bool, subset pattern, invert bool) pattern {
	for p := range patterns {
		if p.contains(subset) != invert {
			delete(patterns, p)
			return p
		}
	}
	panic("no pattern matches")
}

func decode(e entry) int {
	// Fingerprint the digits identified by segment count alone.
	fingerprints := map[int]pattern{}
	for _, p := range e.Patterns {
		if digit, ok := deterministicLengths[p.size()]; ok {
			fingerprints[digit] = p
		}
	}

	byLength := map[int]map[pattern]bool{}
	for _, p := range e.Patterns {
		if byLength[p.size()] == nil {
			byLength[p.size()] = map[pattern]bool{}
		}
		byLength[p.size()][p] = true
	}

	// Five segments: 5 contains 4 minus 1, 3 contains 1, 2 is the rest.
	length5 := byLength[5]
	fingerprints[5] = popPattern(length5, fingerprints[4]&^fingerprints[1], false)
	fingerprints[3] = popPattern(length5, fingerprints[1], false)
	fingerprints[2] = popPattern(length5, 0, false)

	// Six segments: 9 contains 3, 6 does not contain 1, 0 is the rest.
	length6 := byLength[6]
	fingerprints[9] = popPattern(length6, fingerprints[3], false)
	fingerprints[6] = popPattern(length6, fingerprints[1], true)
	fingerprints[0] = popPattern(length6, 0, false)

	lookup := map[pattern]int{}
	for digit, p := range fingerprints {
		lookup[p] = digit
	}

	value := 0
	for _, output := range e.Outputs {
		value = value*10 + lookup[output]
	}
	return value
}

func solve(displays []entry) day.Result {
	part1 := 0
	part2 := 0
	for _, e := range displays {
		for _, output := range e.Outputs {
			if len(groupedLengths[output.size()]) == 1 {
				part1++
			}
		}
		part2 += decode(e)
	}

	return day.Result{Part1: part1, Part2: part2}
}
