// Package days registers every implemented solution by day number.
package days

import (
	"github.com/NickG123/AdventOfCode2021/day"
	"github.com/NickG123/AdventOfCode2021/days/day01"
	"github.com/NickG123/AdventOfCode2021/days/day02"
	"github.com/NickG123/AdventOfCode2021/days/day05"
	"github.com/NickG123/AdventOfCode2021/days/day06"
	"github.com/NickG123/AdventOfCode2021/days/day07"
	"github.com/NickG123/AdventOfCode2021/days/day08"
	"github.com/NickG123/AdventOfCode2021/days/day09"
	"github.com/NickG123/AdventOfCode2021/days/day13"
	"github.com/NickG123/AdventOfCode2021/days/day14"
)

var registry = map[int]day.Solution{
	1:  day01.Run,
	2:  day02.Run,
	5:  day05.Run,
	6:  day06.Run,
	7:  day07.Run,
	8:  day08.Run,
	9:  day09.Run,
	13: day13.Run,
	14: day14.Run,
}

// Lookup returns the solution registered for a day number.
func Lookup(n int) (day.Solution, bool) {
	sol, ok := registry[n]
	return sol, ok
}
