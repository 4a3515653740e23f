// Package day02 follows the submarine's planned course.
package day02

import (
	"github.com/NickG123/AdventOfCode2021/day"
	"github.com/NickG123/AdventOfCode2021/geometry"
	"github.com/NickG123/AdventOfCode2021/parse"
)

var forward = geometry.Point2D{X: 1}

// Direction is parsed by name from the course instructions.
var direction = parse.Enumeration(map[string]geometry.Point2D{
	"forward": forward,
	"down":    {Y: 1},
	"up":      {Y: -1},
})

// Movement is a single course instruction.
type Movement struct {
	Direction geometry.Point2D
	Velocity  int
}

// Distance is the 2D distance travelled by this movement.
func (m Movement) Distance() geometry.Point2D {
	return m.Direction.Scale(m.Velocity)
}

var movement = parse.Record[Movement](
	parse.SeriesSep(parse.Literal(" "), parse.Erase(direction), parse.Erase(parse.Int())),
)

// Run solves day 2.
var Run = parse.Parse(parse.Repeat(movement, parse.Separator(parse.NewLine)), solve)

func solve(moves []Movement) day.Result {
	var part1 geometry.Point2D
	for _, m := range moves {
		part1 = part1.Add(m.Distance())
	}

	var part2, aim geometry.Point2D
	for _, m := range moves {
		if m.Direction == forward {
			part2 = part2.Add(m.Distance())
			part2 = part2.Add(aim.Scale(m.Velocity))
		} else {
			aim = aim.Add(m.Distance())
		}
	}

	return day.Result{Part1: part1.X * part1.Y, Part2: part2.X * part2.Y}
}
