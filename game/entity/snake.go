package entity

import (
	"torus-snake/game/types"
)

// Snake is an ordered sequence of grid cells, head at index 0 and tail at
// the last index. Consecutive cells are orthogonally adjacent under wrap
// arithmetic. The body is mutated only through Advance (prepend new head)
// and Shrink (drop tail), so growth is the caller's decision: Advance
// without a matching Shrink grows the snake by one.
type Snake struct {
	body    []types.Point
	heading types.Direction
	pending types.Direction
}

// NewSnake builds a snake of the given length with its head at start,
// trailing away opposite the heading. Length must be at least 1; the body is
// never empty by construction.
func NewSnake(start types.Point, length int, heading types.Direction, grid types.Grid) *Snake {
	if length < 1 {
		panic("entity: snake length must be at least 1")
	}
	body := make([]types.Point, 0, length)
	cell := start
	back := heading.Opposite()
	for i := 0; i < length; i++ {
		body = append(body, cell)
		cell = grid.MoveBy(cell, back)
	}
	return &Snake{
		body:    body,
		heading: heading,
		pending: heading,
	}
}

// NewSnakeFromBody builds a snake from an explicit body, head first. Used to
// set up coiled positions that the straight-line constructor cannot express.
// The cells must form a chain of orthogonally adjacent, distinct cells under
// wrap arithmetic.
func NewSnakeFromBody(body []types.Point, heading types.Direction, grid types.Grid) *Snake {
	if len(body) == 0 {
		panic("entity: snake body is empty")
	}
	seen := make(map[types.Point]bool, len(body))
	for i, cell := range body {
		if seen[cell] {
			panic("entity: duplicate cell in snake body")
		}
		seen[cell] = true
		if i > 0 {
			adjacent := false
			for _, n := range grid.Neighbors(body[i-1]) {
				if n.Cell == cell {
					adjacent = true
					break
				}
			}
			if !adjacent {
				panic("entity: snake body cells are not adjacent")
			}
		}
	}
	s := &Snake{
		body:    make([]types.Point, len(body)),
		heading: heading,
		pending: heading,
	}
	copy(s.body, body)
	return s
}

// Head returns the first body cell. An empty body is a contract violation.
func (s *Snake) Head() types.Point {
	if len(s.body) == 0 {
		panic("entity: snake body is empty")
	}
	return s.body[0]
}

// Tail returns the last body cell.
func (s *Snake) Tail() types.Point {
	if len(s.body) == 0 {
		panic("entity: snake body is empty")
	}
	return s.body[len(s.body)-1]
}

// Len returns the number of body cells.
func (s *Snake) Len() int {
	return len(s.body)
}

// Heading returns the direction committed by the last Advance.
func (s *Snake) Heading() types.Direction {
	return s.heading
}

// SetDirection records a pending direction for the next Advance. A request
// for the exact opposite of the active direction is silently ignored, which
// prevents instant self-reversal; it is not an error.
func (s *Snake) SetDirection(d types.Direction) {
	if d == s.heading.Opposite() {
		return
	}
	s.pending = d
}

// Advance commits the pending direction, computes the new head under wrap
// arithmetic and prepends it. The tail is not removed here.
func (s *Snake) Advance(grid types.Grid) types.Point {
	s.heading = s.pending
	newHead := grid.MoveBy(s.Head(), s.heading)
	s.body = append([]types.Point{newHead}, s.body...)
	return newHead
}

// Shrink removes the tail cell.
func (s *Snake) Shrink() {
	if len(s.body) == 0 {
		panic("entity: shrink on empty snake")
	}
	s.body = s.body[:len(s.body)-1]
}

// Contains reports whether p is occupied by any body cell.
func (s *Snake) Contains(p types.Point) bool {
	for _, cell := range s.body {
		if cell == p {
			return true
		}
	}
	return false
}

// Body returns a copy of the body, head first. Callers may hold it across
// mutations without aliasing the live snake.
func (s *Snake) Body() []types.Point {
	out := make([]types.Point, len(s.body))
	copy(out, s.body)
	return out
}

// Serialize flattens the body into x,y coordinate pairs, head first, in the
// layout the rasterizer consumes.
func (s *Snake) Serialize() []int32 {
	out := make([]int32, 0, len(s.body)*2)
	for _, cell := range s.body {
		out = append(out, int32(cell.X), int32(cell.Y))
	}
	return out
}
