package ai

import (
	"torus-snake/game/types"
)

// ReachableCells counts the cells reachable from start via 4-directional
// moves that never enter a blocked cell, including start itself. It is a
// plain breadth-first expansion: the queue is bounded by the grid cell
// count, so it always terminates. The blocked set is never mutated.
//
// The count is used purely as a capacity oracle by the safety evaluator and
// the agent's fallback; no ordering of the visited cells is promised.
func ReachableCells(grid types.Grid, start types.Point, blocked map[types.Point]bool) int {
	if blocked[start] {
		return 0
	}

	visited := make(map[types.Point]bool, grid.Cells())
	visited[start] = true
	queue := make([]types.Point, 0, grid.Cells())
	queue = append(queue, start)
	count := 0

	for len(queue) > 0 {
		cell := queue[0]
		queue = queue[1:]
		count++

		for _, n := range grid.Neighbors(cell) {
			if visited[n.Cell] || blocked[n.Cell] {
				continue
			}
			visited[n.Cell] = true
			queue = append(queue, n.Cell)
		}
	}
	return count
}
