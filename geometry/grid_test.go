package geometry

import (
	"reflect"
	"testing"
)

func TestGridSetGetDelete(t *testing.T) {
	g := NewGrid2D[int]()
	p := Point2D{X: 2, Y: 3}

	if _, ok := g.Get(p); ok {
		t.Error("Get on empty grid reported a value")
	}
	g.Set(p, 7)
	if v, ok := g.Get(p); !ok || v != 7 {
		t.Errorf("Get = %d, %v, want 7, true", v, ok)
	}
	if g.At(Point2D{}) != 0 {
		t.Error("At on unset cell is not the zero value")
	}
	g.Delete(p)
	if g.Len() != 0 {
		t.Errorf("Len = %d, want 0 after delete", g.Len())
	}
}

func TestGridNeighbours(t *testing.T) {
	g := NewGrid2D[int]()
	centre := Point2D{X: 1, Y: 1}
	for _, p := range []Point2D{{X: 0, Y: 1}, {X: 2, Y: 1}, {X: 0, Y: 0}, {X: 5, Y: 5}} {
		g.Set(p, 1)
	}

	cardinal := g.Neighbours(centre, false)
	if len(cardinal) != 2 {
		t.Errorf("cardinal neighbours = %v, want 2 of them", cardinal)
	}

	diagonal := g.Neighbours(centre, true)
	if len(diagonal) != 3 {
		t.Errorf("diagonal neighbours = %v, want 3 of them", diagonal)
	}
}

func TestGridBoundingBox(t *testing.T) {
	g := NewGrid2D[bool]()
	if _, ok := g.BoundingBox(); ok {
		t.Error("empty grid reported a bounding box")
	}

	g.Set(Point2D{X: 1, Y: 2}, true)
	g.Set(Point2D{X: 4, Y: 0}, true)
	bb, ok := g.BoundingBox()
	if !ok {
		t.Fatal("BoundingBox() not ok")
	}
	want := Rect2D{TopLeft: Point2D{X: 1, Y: 0}, BottomRight: Point2D{X: 5, Y: 3}}
	if bb != want {
		t.Errorf("BoundingBox = %v, want %v", bb, want)
	}
}

func TestGridRender(t *testing.T) {
	g := NewGrid2D[bool]()
	g.Set(Point2D{X: 0, Y: 0}, true)
	g.Set(Point2D{X: 2, Y: 1}, true)

	got := g.Render(func(bool) string { return "#" }, ".")
	want := "#..\n..#\n"
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestSizedGridFromRows(t *testing.T) {
	g := SizedGridFromRows([][]int{
		{2, 1, 9},
		{3, 9, 8},
	})

	if got := g.Rect(); got != (Rect2D{BottomRight: Point2D{X: 3, Y: 2}}) {
		t.Errorf("Rect = %v", got)
	}
	if got := g.At(Point2D{X: 2, Y: 1}); got != 8 {
		t.Errorf("At(2,1) = %d, want 8", got)
	}
	if got := g.Row(0); !reflect.DeepEqual(got, []int{2, 1, 9}) {
		t.Errorf("Row(0) = %v", got)
	}
	if got := g.Col(1); !reflect.DeepEqual(got, []int{1, 9}) {
		t.Errorf("Col(1) = %v", got)
	}
	if got := len(g.Items()); got != 6 {
		t.Errorf("len(Items) = %d, want 6", got)
	}
}

func TestSizedGridOutOfBoundsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for out-of-bounds Set")
		}
	}()
	g := NewSizedGrid2D[int](Rect2D{BottomRight: Point2D{X: 2, Y: 2}})
	g.Set(Point2D{X: 2, Y: 0}, 1)
}

func TestSizedGridWrapPoint(t *testing.T) {
	g := NewSizedGrid2D[int](Rect2D{BottomRight: Point2D{X: 3, Y: 2}})

	tests := []struct {
		in, want Point2D
	}{
		{Point2D{X: 3, Y: 0}, Point2D{}},
		{Point2D{X: -1, Y: 1}, Point2D{X: 2, Y: 1}},
		{Point2D{X: 1, Y: 4}, Point2D{X: 1, Y: 0}},
	}
	for _, tt := range tests {
		if got := g.WrapPoint(tt.in); got != tt.want {
			t.Errorf("WrapPoint(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
