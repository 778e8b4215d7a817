package ai

import (
	"container/heap"

	"torus-snake/game/types"
)

// searchNode is a transient A* frontier entry: a cell plus the accumulated
// step count g and the heuristic estimate h. Nodes live only for the
// duration of one FindPath call.
type searchNode struct {
	cell types.Point
	g    int
	h    int
}

func (n searchNode) f() int {
	return n.g + n.h
}

// frontier is a min-heap ordered by ascending f = g + h. The ordering is
// explicit rather than inherited from any default heap semantics; ties on f
// fall back to the heap's structural order, which is deliberately left
// unspecified. Path length is deterministic for identical inputs, the exact
// tie-broken route is not.
type frontier []searchNode

func (fr frontier) Len() int            { return len(fr) }
func (fr frontier) Less(i, j int) bool  { return fr[i].f() < fr[j].f() }
func (fr frontier) Swap(i, j int)       { fr[i], fr[j] = fr[j], fr[i] }
func (fr *frontier) Push(x interface{}) { *fr = append(*fr, x.(searchNode)) }
func (fr *frontier) Pop() interface{} {
	old := *fr
	n := old[len(old)-1]
	*fr = old[:len(old)-1]
	return n
}

// FindPath runs A* from start to goal over the toroidal grid, avoiding every
// cell in blocked, and returns the shortest direction sequence. ok is false
// when the goal is unreachable; that is an ordinary outcome, not an error.
//
// The heuristic is the non-wrap-aware Manhattan distance (see
// types.ManhattanDistance), so routes that would profit from a wrap seam can
// come out longer than optimal. All step costs are uniform, so a cell is on
// its best-known path the first time it is discovered; the predecessor map
// records, per cell, the single direction that reached it and is never
// revised afterwards.
func FindPath(grid types.Grid, start, goal types.Point, blocked map[types.Point]bool) ([]types.Direction, bool) {
	if start == goal {
		return nil, true
	}

	// cameFrom maps each discovered cell to the direction that entered it.
	// A flat cell->direction map keeps reconstruction O(path) with value
	// lookups; cells are revisited by value, not identity.
	cameFrom := make(map[types.Point]types.Direction)
	closed := make(map[types.Point]bool)

	open := &frontier{{cell: start, g: 0, h: types.ManhattanDistance(start, goal)}}
	heap.Init(open)

	for open.Len() > 0 {
		node := heap.Pop(open).(searchNode)
		if node.cell == goal {
			return reconstruct(grid, start, goal, cameFrom), true
		}
		if closed[node.cell] {
			continue
		}
		closed[node.cell] = true

		for _, n := range grid.Neighbors(node.cell) {
			if closed[n.Cell] || blocked[n.Cell] {
				continue
			}
			if _, seen := cameFrom[n.Cell]; !seen {
				cameFrom[n.Cell] = n.Dir
				heap.Push(open, searchNode{
					cell: n.Cell,
					g:    node.g + 1,
					h:    types.ManhattanDistance(n.Cell, goal),
				})
			}
		}
	}
	return nil, false
}

// reconstruct walks the predecessor map from goal back to start, then
// reverses the collected directions.
func reconstruct(grid types.Grid, start, goal types.Point, cameFrom map[types.Point]types.Direction) []types.Direction {
	var path []types.Direction
	cell := goal
	for cell != start {
		dir, ok := cameFrom[cell]
		if !ok {
			panic("ai: broken predecessor chain in path reconstruction")
		}
		path = append(path, dir)
		cell = grid.MoveBy(cell, dir.Opposite())
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
