package ai

import (
	"torus-snake/game/types"
)

// Agent picks one direction per decision tick for the autonomous mode. Two
// policy tiers are evaluated fresh on every call:
//
//  1. Primary: A* from the head to the apple with the whole body as
//     obstacles. If a path exists and its first step passes the safety
//     check, take that step.
//  2. Fallback: one-ply greedy space maximization over the legal candidate
//     moves, keeping the current heading when nothing qualifies.
//
// The fallback is intentionally a single greedy lookahead rather than a
// second search: it keeps every decision cheap and bounded within a tick.
type Agent struct{}

// NewAgent returns an agent. It carries no state between decisions.
func NewAgent() *Agent {
	return &Agent{}
}

// NextDirection decides the move for the given position. body is the snake
// head first, heading the currently committed direction, apple the goal.
func (a *Agent) NextDirection(grid types.Grid, body []types.Point, heading types.Direction, apple types.Point) types.Direction {
	if len(body) == 0 {
		panic("ai: agent decision on empty body")
	}
	head := body[0]

	blocked := make(map[types.Point]bool, len(body))
	for _, cell := range body {
		blocked[cell] = true
	}

	if path, ok := FindPath(grid, head, apple, blocked); ok && len(path) > 0 {
		step := path[0]
		if IsSafeMove(grid, grid.MoveBy(head, step), body) {
			return step
		}
	}

	return a.fallback(grid, body, heading)
}

// fallback scores each candidate direction by the free space reachable after
// taking it and returns the best one. The forbidden set is the body minus
// its tail (the tail vacates on the same tick) plus the candidate head cell.
// Candidates are tried in direction enumeration order and ties keep the
// first, so the choice is deterministic. When every direction is occupied or
// reversed, the current heading is returned and the collision is accepted as
// a terminal outcome; the agent never stalls.
func (a *Agent) fallback(grid types.Grid, body []types.Point, heading types.Direction) types.Direction {
	head := body[0]
	tail := body[len(body)-1]

	occupied := make(map[types.Point]bool, len(body))
	for _, cell := range body {
		occupied[cell] = true
	}

	best := heading
	bestSpace := -1
	for _, d := range types.Directions {
		if d == heading.Opposite() {
			continue
		}
		next := grid.MoveBy(head, d)
		if occupied[next] {
			continue
		}

		// The tail vacates on the same tick, so it is walkable; the
		// candidate head cell is the flood start and counts itself.
		blocked := make(map[types.Point]bool, len(body))
		for _, cell := range body {
			blocked[cell] = true
		}
		delete(blocked, tail)

		space := ReachableCells(grid, next, blocked)
		if space > bestSpace {
			bestSpace = space
			best = d
		}
	}
	return best
}
