package geometry

import (
	"fmt"
	"strings"
)

// Grid2D is a sparse grid: only cells that have been set exist. The zero
// value is not usable; call NewGrid2D.
type Grid2D[T comparable] struct {
	cells map[Point2D]T
}

// NewGrid2D returns an empty sparse grid.
func NewGrid2D[T comparable]() *Grid2D[T] {
	return &Grid2D[T]{cells: make(map[Point2D]T)}
}

// Set fills in the cell at p.
func (g *Grid2D[T]) Set(p Point2D, v T) {
	g.cells[p] = v
}

// Get returns the cell at p and whether it has been set.
func (g *Grid2D[T]) Get(p Point2D) (T, bool) {
	v, ok := g.cells[p]
	return v, ok
}

// At returns the cell at p, or the zero value when it has not been set.
func (g *Grid2D[T]) At(p Point2D) T {
	return g.cells[p]
}

// Delete removes the cell at p.
func (g *Grid2D[T]) Delete(p Point2D) {
	delete(g.cells, p)
}

// Len returns the number of cells that have been set.
func (g *Grid2D[T]) Len() int {
	return len(g.cells)
}

// Points returns a snapshot of the occupied positions, safe to iterate
// while mutating the grid.
func (g *Grid2D[T]) Points() []Point2D {
	points := make([]Point2D, 0, len(g.cells))
	for p := range g.cells {
		points = append(points, p)
	}
	return points
}

// Neighbours returns the occupied cells adjacent to p, cardinally or,
// when diagonal is set, in all eight directions.
func (g *Grid2D[T]) Neighbours(p Point2D, diagonal bool) []Point2D {
	directions := CardinalDirections
	if diagonal {
		directions = AllDirections
	}
	neighbours := []Point2D{}
	for _, d := range directions {
		n := p.Add(d)
		if _, ok := g.cells[n]; ok {
			neighbours = append(neighbours, n)
		}
	}
	return neighbours
}

// BoundingBox returns the smallest rectangle containing every occupied
// cell. The second result is false when the grid is empty.
func (g *Grid2D[T]) BoundingBox() (Rect2D, bool) {
	if len(g.cells) == 0 {
		return Rect2D{}, false
	}
	first := true
	var minX, maxX, minY, maxY int
	for p := range g.cells {
		if first {
			minX, maxX, minY, maxY = p.X, p.X, p.Y, p.Y
			first = false
			continue
		}
		minX = min(minX, p.X)
		maxX = max(maxX, p.X)
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}
	return Rect2D{TopLeft: Point2D{X: minX, Y: minY}, BottomRight: Point2D{X: maxX + 1, Y: maxY + 1}}, true
}

// Render draws the bounding box of the grid row by row, using cell for
// occupied positions and empty elsewhere. Every row ends with a newline.
func (g *Grid2D[T]) Render(cell func(T) string, empty string) string {
	bb, ok := g.BoundingBox()
	if !ok {
		return ""
	}
	var b strings.Builder
	for y := bb.TopLeft.Y; y < bb.BottomRight.Y; y++ {
		for x := bb.TopLeft.X; x < bb.BottomRight.X; x++ {
			if v, found := g.Get(Point2D{X: x, Y: y}); found {
				b.WriteString(cell(v))
			} else {
				b.WriteString(empty)
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Item pairs a position with the value stored there.
type Item[T comparable] struct {
	Point Point2D
	Value T
}

// SizedGrid2D is a grid with fixed bounds. Access outside the bounds is a
// programming error and panics.
type SizedGrid2D[T comparable] struct {
	Grid2D[T]
	rect Rect2D
}

// NewSizedGrid2D returns an empty grid covering rect.
func NewSizedGrid2D[T comparable](rect Rect2D) *SizedGrid2D[T] {
	return &SizedGrid2D[T]{Grid2D: Grid2D[T]{cells: make(map[Point2D]T)}, rect: rect}
}

// SizedGridFromRows builds a grid from row-major data. All rows must have
// the length of the first.
func SizedGridFromRows[T comparable](rows [][]T) *SizedGrid2D[T] {
	height := len(rows)
	width := 0
	if height > 0 {
		width = len(rows[0])
	}
	g := NewSizedGrid2D[T](Rect2D{BottomRight: Point2D{X: width, Y: height}})
	for y, row := range rows {
		for x, v := range row {
			g.Set(Point2D{X: x, Y: y}, v)
		}
	}
	return g
}

// Rect returns the grid's bounds.
func (g *SizedGrid2D[T]) Rect() Rect2D {
	return g.rect
}

// Set fills in the cell at p, which must be in bounds.
func (g *SizedGrid2D[T]) Set(p Point2D, v T) {
	if !g.rect.Contains(p) {
		panic(fmt.Sprintf("geometry: point %v out of bounds %v", p, g.rect))
	}
	g.Grid2D.Set(p, v)
}

// Row returns the cells of one row, left to right.
func (g *SizedGrid2D[T]) Row(y int) []T {
	row := make([]T, 0, g.rect.Width())
	for x := g.rect.TopLeft.X; x < g.rect.BottomRight.X; x++ {
		row = append(row, g.At(Point2D{X: x, Y: y}))
	}
	return row
}

// Col returns the cells of one column, top to bottom.
func (g *SizedGrid2D[T]) Col(x int) []T {
	col := make([]T, 0, g.rect.Height())
	for y := g.rect.TopLeft.Y; y < g.rect.BottomRight.Y; y++ {
		col = append(col, g.At(Point2D{X: x, Y: y}))
	}
	return col
}

// Items returns every position and value in row-major order.
func (g *SizedGrid2D[T]) Items() []Item[T] {
	items := make([]Item[T], 0, g.rect.Width()*g.rect.Height())
	for y := g.rect.TopLeft.Y; y < g.rect.BottomRight.Y; y++ {
		for x := g.rect.TopLeft.X; x < g.rect.BottomRight.X; x++ {
			p := Point2D{X: x, Y: y}
			items = append(items, Item[T]{Point: p, Value: g.At(p)})
		}
	}
	return items
}

// WrapPoint maps p into the grid's bounds, wrapping around both axes.
func (g *SizedGrid2D[T]) WrapPoint(p Point2D) Point2D {
	x := mod(p.X-g.rect.TopLeft.X, g.rect.Width()) + g.rect.TopLeft.X
	y := mod(p.Y-g.rect.TopLeft.Y, g.rect.Height()) + g.rect.TopLeft.Y
	return Point2D{X: x, Y: y}
}

func mod(a, b int) int {
	return ((a % b) + b) % b
}
