// Package geometry provides the 2D point, rectangle and grid types shared
// by the puzzle solutions.
package geometry

import "fmt"

// Point2D is a point (or vector) on the integer plane.
type Point2D struct {
	X, Y int
}

// Add returns the sum of two points.
func (p Point2D) Add(o Point2D) Point2D {
	return Point2D{X: p.X + o.X, Y: p.Y + o.Y}
}

// Scale returns the point multiplied by a scalar.
func (p Point2D) Scale(n int) Point2D {
	return Point2D{X: p.X * n, Y: p.Y * n}
}

func (p Point2D) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Basis reduces n to its sign: -1, 0 or 1.
func Basis(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

// PointsBetween returns every point from p to o inclusive. The two points
// must be aligned horizontally, vertically or at 45 degrees.
func (p Point2D) PointsBetween(o Point2D) ([]Point2D, error) {
	dx := o.X - p.X
	dy := o.Y - p.Y
	if dx != 0 && dy != 0 && abs(dx) != abs(dy) {
		return nil, fmt.Errorf("points %v and %v are not aligned", p, o)
	}
	return p.PointsInPath(Point2D{X: Basis(dx), Y: Basis(dy)}, max(abs(dx), abs(dy))), nil
}

// PointsInPath returns the points visited by starting at p and stepping
// in direction maxDistance times, including both endpoints.
func (p Point2D) PointsInPath(direction Point2D, maxDistance int) []Point2D {
	points := make([]Point2D, 0, maxDistance+1)
	for distance := 0; distance <= maxDistance; distance++ {
		points = append(points, p.Add(direction.Scale(distance)))
	}
	return points
}

// CardinalDirections are the four axis-aligned unit vectors.
var CardinalDirections = []Point2D{{X: -1}, {X: 1}, {Y: -1}, {Y: 1}}

// AllDirections are the eight unit vectors including diagonals.
var AllDirections = []Point2D{
	{X: -1}, {X: 1}, {Y: -1}, {Y: 1},
	{X: -1, Y: -1}, {X: 1, Y: 1}, {X: 1, Y: -1}, {X: -1, Y: 1},
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
