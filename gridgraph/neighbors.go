package gridgraph

import "math"

// OrthogonalCost is the cost of a N/E/S/W move.
const OrthogonalCost = 1.0

// DiagonalCost is the cost of a diagonal move, √2.
const DiagonalCost = math.Sqrt2

// NeighborOffsets returns the precomputed (dRow, dCol) offsets in scan order.
// Should be used in all adjacency traversals to avoid branching.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Neighbors returns the passable in-bounds cells adjacent to pos, in the
// fixed scan order N, E, S, W, NE, SE, SW, NW.
//
// Diagonal-squeeze rule: a diagonal destination is excluded when both
// flanking orthogonal cells are blocked, unless AllowSqueeze is set.
// Every strategy calls this, so the rule is enforced identically.
//
// Returns nil for an out-of-bounds pos.
// Complexity: O(d), d = 4 or 8.
func (gg *GridGraph) Neighbors(pos Cell) []Cell {
	if !gg.InBounds(pos) {
		return nil
	}
	out := make([]Cell, 0, len(gg.neighborOffsets))
	for _, d := range gg.neighborOffsets {
		next := Cell{Row: pos.Row + d[0], Col: pos.Col + d[1]}
		if gg.Blocked(next) {
			continue
		}
		if d[0] != 0 && d[1] != 0 && !gg.AllowSqueeze {
			// flanks: vertical step then horizontal step
			if gg.Blocked(Cell{Row: pos.Row + d[0], Col: pos.Col}) &&
				gg.Blocked(Cell{Row: pos.Row, Col: pos.Col + d[1]}) {
				continue
			}
		}
		out = append(out, next)
	}
	return out
}

// MoveCost returns the cost of a single step from a to b:
// OrthogonalCost for N/E/S/W, DiagonalCost for diagonal steps.
// The cells are assumed adjacent.
func MoveCost(a, b Cell) float64 {
	if a.Diagonal(b) {
		return DiagonalCost
	}
	return OrthogonalCost
}

// PathCost sums MoveCost over consecutive cells of path.
func PathCost(path []Cell) float64 {
	total := 0.0
	for i := 1; i < len(path); i++ {
		total += MoveCost(path[i-1], path[i])
	}
	return total
}
