// Package day14 grows the polymer by pair insertion.
package day14

import (
	"math"

	"github.com/NickG123/AdventOfCode2021/day"
	"github.com/NickG123/AdventOfCode2021/parse"
)

var template = parse.IgnoreNewlines(parse.Word)
var rule = parse.Pair(parse.Word, parse.Word, parse.Separator(parse.Literal(" -> ")))
var rules = parse.Dictionary(parse.Repeat(rule, parse.Separator(parse.NewLine)))

// Run solves day 14.
var Run = parse.Parse(parse.Pair(template, rules), solve)

type memoKey struct {
	polymer string
	steps   int
}

// builder counts polymer elements without materialising the polymer,
// memoising on (fragment, steps).
type builder struct {
	rules map[string]string
	memo  map[memoKey]map[byte]int
}

func newBuilder(rules map[string]string) *builder {
	return &builder{rules: rules, memo: map[memoKey]map[byte]int{}}
}

// countAfter returns how many of each element the fragment contains after
// the given number of insertion steps.
func (b *builder) countAfter(polymer string, steps int) map[byte]int {
	key := memoKey{polymer: polymer, steps: steps}
	if cached, ok := b.memo[key]; ok {
		return cached
	}

	counts := map[byte]int{}
	if steps == 0 {
		for i := 0; i < len(polymer); i++ {
			counts[polymer[i]]++
		}
		b.memo[key] = counts
		return counts
	}

	for i := 1; i < len(polymer); i++ {
		e1, e2 := polymer[i-1], polymer[i]
		inserted := b.rules[string([]byte{e1, e2})][0]
		addCounts(counts, b.countAfter(string([]byte{e1, inserted}), steps-1))
		addCounts(counts, b.countAfter(string([]byte{inserted, e2}), steps-1))
		// The inserted element is counted by both halves of the recursion.
		counts[inserted]--
	}
	// Every element except the first and last appears in two windows.
	for i := 1; i < len(polymer)-1; i++ {
		counts[polymer[i]]--
	}

	b.memo[key] = counts
	return counts
}

func addCounts(dst, src map[byte]int) {
	for k, v := range src {
		dst[k] += v
	}
}

func spread(counts map[byte]int) int {
	most, least := 0, math.MaxInt
	for _, n := range counts {
		most = max(most, n)
		least = min(least, n)
	}
	return most - least
}

func solve(input parse.Tuple[string, map[string]string]) day.Result {
	polymer, insertions := input.First, input.Second

	b := newBuilder(insertions)
	part1 := spread(b.countAfter(polymer, 10))
	part2 := spread(b.countAfter(polymer, 40))

	return day.Result{Part1: part1, Part2: part2}
}
