// Package day13 folds the transparent origami paper.
package day13

import (
	"github.com/NickG123/AdventOfCode2021/day"
	"github.com/NickG123/AdventOfCode2021/geometry"
	"github.com/NickG123/AdventOfCode2021/parse"
)

// Axis is the direction of a fold instruction.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// reflect mirrors num against axis when it lies beyond it.
func reflect(num, axis int) int {
	if num > axis {
		return 2*axis - num
	}
	return num
}

// Fold is a single fold instruction.
type Fold struct {
	Direction Axis
	Offset    int
}

// Apply returns p's position after the fold.
func (f Fold) Apply(p geometry.Point2D) geometry.Point2D {
	if f.Direction == AxisX {
		return geometry.Point2D{X: reflect(p.X, f.Offset), Y: p.Y}
	}
	return geometry.Point2D{X: p.X, Y: reflect(p.Y, f.Offset)}
}

// Run applies the fold to every dot on the grid.
func (f Fold) Run(grid *geometry.Grid2D[bool]) {
	for _, p := range grid.Points() {
		folded := f.Apply(p)
		if folded != p {
			grid.Set(folded, true)
			grid.Delete(p)
		}
	}
}

var axis = parse.Enumeration(map[string]Axis{"x": AxisX, "y": AxisY})

var foldLine = parse.Record[Fold](parse.Series(
	parse.Suppress(parse.Literal("fold along ")),
	parse.Erase(axis),
	parse.Suppress(parse.Literal("=")),
	parse.Erase(parse.Int()),
))

var folds = parse.Repeat(foldLine, parse.Separator(parse.NewLine))
var dots = parse.IgnoreNewline(parse.Repeat(parse.Point2D, parse.Separator(parse.NewLine)))

// Run solves day 13.
var Run = parse.Parse(parse.Pair(parse.IgnoreNewline(dots), folds), solve)

func solve(input parse.Tuple[[]geometry.Point2D, []Fold]) day.Result {
	points, instructions := input.First, input.Second

	grid := geometry.NewGrid2D[bool]()
	for _, p := range points {
		grid.Set(p, true)
	}

	instructions[0].Run(grid)
	part1 := grid.Len()

	for _, fold := range instructions[1:] {
		fold.Run(grid)
	}
	part2 := grid.Render(func(bool) string { return "#" }, " ")

	return day.Result{Part1: part1, Part2: part2}
}
