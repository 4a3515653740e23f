// Package day06 simulates the lanternfish population.
package day06

import (
	"github.com/NickG123/AdventOfCode2021/day"
	"github.com/NickG123/AdventOfCode2021/parse"
)

// Run solves day 6.
var Run = parse.Parse(parse.Counter(parse.IntList), solve)

// step advances every fish's timer by one day. Fish at zero spawn a new
// fish at 8 and reset to 6.
func step(counts map[int]int) map[int]int {
	next := make(map[int]int, len(counts))
	for timer, n := range counts {
		if timer == 0 {
			continue
		}
		next[timer-1] += n
	}
	next[6] += counts[0]
	next[8] += counts[0]
	return next
}

func total(counts map[int]int) int {
	sum := 0
	for _, n := range counts {
		sum += n
	}
	return sum
}

func solve(counts map[int]int) day.Result {
	for i := 0; i < 80; i++ {
		counts = step(counts)
	}
	part1 := total(counts)

	for i := 0; i < 176; i++ {
		counts = step(counts)
	}
	part2 := total(counts)

	return day.Result{Part1: part1, Part2: part2}
}
