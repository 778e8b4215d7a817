package ai

import (
	"torus-snake/game/types"
)

// IsSafeMove judges whether moving the head onto next leaves the snake room
// to keep moving afterwards. The forbidden set is the current body without
// its head (the head cell is vacated by the move), and the move is accepted
// only when the space reachable from next strictly exceeds the body length,
// so every remaining segment can eventually move again.
//
// This is a sufficiency heuristic, not a proof of long-term survivability: a
// pocket can hold more cells than the body and still close before the tail
// comes around.
func IsSafeMove(grid types.Grid, next types.Point, body []types.Point) bool {
	if len(body) == 0 {
		panic("ai: safety check on empty body")
	}

	blocked := make(map[types.Point]bool, len(body))
	for _, cell := range body[1:] {
		blocked[cell] = true
	}

	return ReachableCells(grid, next, blocked) > len(body)
}
