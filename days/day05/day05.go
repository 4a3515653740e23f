// Package day05 maps overlapping hydrothermal vent lines.
package day05

import (
	"github.com/NickG123/AdventOfCode2021/day"
	"github.com/NickG123/AdventOfCode2021/geometry"
	"github.com/NickG123/AdventOfCode2021/parse"
)

var ventLine = parse.Pair(parse.Point2D, parse.Point2D, parse.Separator(parse.Literal(" -> ")))

// Run solves day 5.
var Run = parse.Parse(parse.Repeat(ventLine, parse.Separator(parse.NewLine)), solve)

func solve(lines []parse.Tuple[geometry.Point2D, geometry.Point2D]) day.Result {
	part1Grid := geometry.NewGrid2D[int]()
	part2Grid := geometry.NewGrid2D[int]()
	for _, line := range lines {
		p1, p2 := line.First, line.Second
		points, err := p1.PointsBetween(p2)
		if err != nil {
			// Vent lines are always axis-aligned or diagonal.
			panic(err)
		}
		for _, p := range points {
			if p1.X == p2.X || p1.Y == p2.Y {
				part1Grid.Set(p, part1Grid.At(p)+1)
			}
			part2Grid.Set(p, part2Grid.At(p)+1)
		}
	}

	return day.Result{Part1: countOverlaps(part1Grid), Part2: countOverlaps(part2Grid)}
}

func countOverlaps(grid *geometry.Grid2D[int]) int {
	overlaps := 0
	for _, p := range grid.Points() {
		if grid.At(p) > 1 {
			overlaps++
		}
	}
	return overlaps
}
