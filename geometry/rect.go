package geometry

import "fmt"

// Rect2D is a half-open rectangle: TopLeft is inside, BottomRight is not.
type Rect2D struct {
	TopLeft, BottomRight Point2D
}

// NewRect2D builds a rectangle from its corners.
func NewRect2D(topLeft, bottomRight Point2D) (Rect2D, error) {
	if topLeft.X > bottomRight.X || topLeft.Y > bottomRight.Y {
		return Rect2D{}, fmt.Errorf("invalid corner points %v, %v", topLeft, bottomRight)
	}
	return Rect2D{TopLeft: topLeft, BottomRight: bottomRight}, nil
}

// Width returns the number of columns covered.
func (r Rect2D) Width() int {
	return r.BottomRight.X - r.TopLeft.X
}

// Height returns the number of rows covered.
func (r Rect2D) Height() int {
	return r.BottomRight.Y - r.TopLeft.Y
}

// Contains reports whether p lies inside the rectangle.
func (r Rect2D) Contains(p Point2D) bool {
	return r.TopLeft.X <= p.X && p.X < r.BottomRight.X &&
		r.TopLeft.Y <= p.Y && p.Y < r.BottomRight.Y
}
