// Package day07 aligns the crab submarines with minimal fuel.
package day07

import (
	"math"
	"sort"

	"github.com/NickG123/AdventOfCode2021/day"
	"github.com/NickG123/AdventOfCode2021/parse"
)

// Run solves day 7.
var Run = parse.Parse(parse.IntList, solve)

func fuelCost(positions []int, target int, cost func(distance int) int) int {
	sum := 0
	for _, p := range positions {
		distance := p - target
		if distance < 0 {
			distance = -distance
		}
		sum += cost(distance)
	}
	return sum
}

func solve(positions []int) day.Result {
	sorted := append([]int(nil), positions...)
	sort.Ints(sorted)
	median := sorted[len(sorted)/2]

	sum := 0
	for _, p := range positions {
		sum += p
	}
	mean := float64(sum) / float64(len(positions))
	meanLow := int(math.Floor(mean))
	meanHigh := int(math.Ceil(mean))

	part1 := fuelCost(positions, median, func(d int) int { return d })

	// Each step costs one more than the last, so moving d costs d(d+1)/2.
	triangular := func(d int) int { return d * (d + 1) / 2 }
	part2 := min(
		fuelCost(positions, meanLow, triangular),
		fuelCost(positions, meanHigh, triangular),
	)

	return day.Result{Part1: part1, Part2: part2}
}
