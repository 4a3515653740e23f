// Package day09 finds low points and basins on the smoke height map.
package day09

import (
	"sort"

	"github.com/NickG123/AdventOfCode2021/day"
	"github.com/NickG123/AdventOfCode2021/geometry"
	"github.com/NickG123/AdventOfCode2021/parse"
)

// Run solves day 9.
var Run = parse.Parse(parse.Repeat(parse.DigitList, parse.Separator(parse.NewLine)), solve)

// basinSize flood-fills outward from a low point, stopping at height 9.
func basinSize(grid *geometry.SizedGrid2D[int], start geometry.Point2D) int {
	visited := map[geometry.Point2D]bool{}
	queue := []geometry.Point2D{start}

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		visited[node] = true

		for _, neighbour := range grid.Neighbours(node, false) {
			if !visited[neighbour] && grid.At(neighbour) != 9 {
				queue = append(queue, neighbour)
			}
		}
	}

	return len(visited)
}

func solve(rows [][]int) day.Result {
	grid := geometry.SizedGridFromRows(rows)

	part1 := 0
	basinSizes := []int{}
	for _, item := range grid.Items() {
		lowPoint := true
		for _, neighbour := range grid.Neighbours(item.Point, false) {
			if grid.At(neighbour) <= item.Value {
				lowPoint = false
				break
			}
		}
		if lowPoint {
			part1 += 1 + item.Value
			basinSizes = append(basinSizes, basinSize(grid, item.Point))
		}
	}

	sort.Sort(sort.Reverse(sort.IntSlice(basinSizes)))
	part2 := basinSizes[0] * basinSizes[1] * basinSizes[2]

	return day.Result{Part1: part1, Part2: part2}
}
