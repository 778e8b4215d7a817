package types

import (
	"testing"
)

func TestWrapNegativeCoordinates(t *testing.T) {
	grid := Grid{Width: 40, Height: 30}

	tests := []struct {
		name string
		in   Point
		want Point
	}{
		{"Inside", Point{X: 5, Y: 7}, Point{X: 5, Y: 7}},
		{"Negative x", Point{X: -1, Y: 0}, Point{X: 39, Y: 0}},
		{"Negative y", Point{X: 0, Y: -1}, Point{X: 0, Y: 29}},
		{"Past right edge", Point{X: 40, Y: 10}, Point{X: 0, Y: 10}},
		{"Past bottom edge", Point{X: 10, Y: 30}, Point{X: 10, Y: 0}},
		{"Far negative", Point{X: -41, Y: -31}, Point{X: 39, Y: 29}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := grid.Wrap(tt.in); got != tt.want {
				t.Errorf("Wrap(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMoveByOppositeIsIdentity(t *testing.T) {
	grid := Grid{Width: 40, Height: 30}

	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			p := Point{X: x, Y: y}
			for _, d := range Directions {
				back := grid.MoveBy(grid.MoveBy(p, d), d.Opposite())
				if back != p {
					t.Fatalf("MoveBy(%v, %v) then opposite = %v, want %v", p, d, back, p)
				}
			}
		}
	}
}

func TestOppositePairs(t *testing.T) {
	pairs := map[Direction]Direction{
		Up:    Down,
		Down:  Up,
		Left:  Right,
		Right: Left,
	}
	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("%v.Opposite() = %v, want %v", d, got, want)
		}
	}
}

func TestNeighborsOrderAndWrap(t *testing.T) {
	grid := Grid{Width: 4, Height: 4}

	got := grid.Neighbors(Point{X: 0, Y: 0})
	want := [4]Neighbor{
		{Dir: Up, Cell: Point{X: 0, Y: 3}},
		{Dir: Down, Cell: Point{X: 0, Y: 1}},
		{Dir: Left, Cell: Point{X: 3, Y: 0}},
		{Dir: Right, Cell: Point{X: 1, Y: 0}},
	}
	if got != want {
		t.Errorf("Neighbors(0,0) = %v, want %v", got, want)
	}
}

func TestManhattanDistanceIgnoresWrap(t *testing.T) {
	a := Point{X: 0, Y: 0}
	b := Point{X: 39, Y: 0}

	// The heuristic is straight-line on purpose: one wrap step away, yet
	// the distance reads as the full width minus one.
	if got := ManhattanDistance(a, b); got != 39 {
		t.Errorf("ManhattanDistance(%v, %v) = %d, want 39", a, b, got)
	}
	if got := ManhattanDistance(b, a); got != 39 {
		t.Errorf("ManhattanDistance is not symmetric: got %d", got)
	}
	if got := ManhattanDistance(a, a); got != 0 {
		t.Errorf("ManhattanDistance(a, a) = %d, want 0", got)
	}
}
