package types

// Grid represents the game grid dimensions. The grid is toroidal: every
// coordinate wraps to the opposite edge, so there are no walls.
type Grid struct {
	Width  int
	Height int
}

// Point is a cell on the grid. Points compare by value and are used as map
// keys by the search and reachability code.
type Point struct {
	X, Y int
}

// Direction represents a cardinal direction. The declaration order
// (Up, Down, Left, Right) is load-bearing: the agent enumerates candidate
// moves in this order and keeps the first on ties.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists all four directions in enumeration order.
var Directions = [4]Direction{Up, Down, Left, Right}

// Delta converts a Direction into a unit displacement vector.
func (d Direction) Delta() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	case Right:
		return Point{X: 1, Y: 0}
	default:
		return Point{}
	}
}

// Opposite returns the 180-degree reverse of d.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Neighbor pairs a direction with the cell it leads to.
type Neighbor struct {
	Dir  Direction
	Cell Point
}

// Wrap maps a point back onto the grid with floored (Euclidean) modulo:
// negative coordinates re-enter at the high edge, not at zero.
func (g Grid) Wrap(p Point) Point {
	x := p.X % g.Width
	if x < 0 {
		x += g.Width
	}
	y := p.Y % g.Height
	if y < 0 {
		y += g.Height
	}
	return Point{X: x, Y: y}
}

// MoveBy applies the direction's delta to p and wraps both axes.
func (g Grid) MoveBy(p Point, d Direction) Point {
	delta := d.Delta()
	return g.Wrap(Point{X: p.X + delta.X, Y: p.Y + delta.Y})
}

// Neighbors returns the four adjacent cells of p in direction enumeration
// order, each already wrapped.
func (g Grid) Neighbors(p Point) [4]Neighbor {
	var out [4]Neighbor
	for i, d := range Directions {
		out[i] = Neighbor{Dir: d, Cell: g.MoveBy(p, d)}
	}
	return out
}

// Cells returns the total cell count, the upper bound for any traversal.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Contains reports whether p lies inside the grid bounds without wrapping.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// ManhattanDistance is the sum of absolute per-axis differences. It is
// deliberately not wrap-aware: it overestimates distances that would profit
// from a toroidal shortcut, so paths found near the wrap seams may come out
// longer than the true optimum. This is preserved behavior, not an
// oversight.
func ManhattanDistance(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
