// Package day01 counts sonar depth increases.
package day01

import (
	"github.com/NickG123/AdventOfCode2021/day"
	"github.com/NickG123/AdventOfCode2021/parse"
	"github.com/NickG123/AdventOfCode2021/seq"
)

// Run solves day 1.
var Run = parse.Parse(parse.IntLines, solve)

func solve(depths []int) day.Result {
	part1 := 0
	for _, pair := range seq.Pairwise(depths) {
		if pair[1] > pair[0] {
			part1++
		}
	}

	// Comparing three-measurement windows reduces to comparing the value
	// entering the window with the one leaving it.
	part2 := 0
	for i := 3; i < len(depths); i++ {
		if depths[i] > depths[i-3] {
			part2++
		}
	}

	return day.Result{Part1: part1, Part2: part2}
}
