// Package search provides six uninformed, stepwise searches over a
// gridgraph.GridGraph: BFS, DFS, UCS, DLS, IDDFS and Bidirectional.
//
// What
//
//   - New(variant, grid, start, target, opts...) returns a Strategy.
//   - Strategy.Step performs one frontier pop and expansion and returns the
//     events it produced: Expanded, Frontiered, Discarded, Deepened, and
//     finally Found (with the Path) or Exhausted.
//   - Events(s) wraps a Strategy as an iter.Seq[Event]; Run(s) drains it.
//   - Every strategy uses the grid's Neighbors (diagonal-squeeze rule
//     included) and gridgraph.MoveCost, so adjacency and cost are identical
//     across variants.
//   - Parent links live in a flat per-strategy node table as indices.
//
// Variants
//
//   - BFS:           FIFO frontier; shortest path by move count.
//   - DFS:           LIFO frontier with a closed set; no optimality.
//   - UCS:           heap keyed by g-cost (1 orthogonal, √2 diagonal), ties by
//     insertion order; optimal cost.
//   - DLS:           DFS bounded by DepthLimit; Exhausted when the target is
//     beyond it, even if reachable.
//   - IDDFS:         DLS with limits 0, 1, 2, … up to DepthCap, fresh state per
//     iteration; shortest path by move count.
//   - Bidirectional: two BFS frontiers alternating layer by layer; the path is
//     stitched at the meeting cell.
//
// Stale entries
//
//	Frontier entries whose cell became blocked after being pushed (a
//	dynamic obstacle), or that were superseded by a cheaper or shallower
//	entry, are filtered lazily when popped and reported as Discarded.
//
// Options
//
//   - DefaultOptions():  DepthLimit 20, DepthCap = grid cell count, no-op hooks.
//   - WithDepthLimit(d): DLS depth limit (d ≥ 0).
//   - WithDepthCap(n):   IDDFS maximum limit (n ≥ 0, 0 = cell count).
//   - WithOnExpand(fn):  hook on every expansion.
//   - WithOnFrontier(fn): hook on every frontier push, seeds included.
//
// Complexity (N = W×H cells, d ≤ 8)
//
//   - BFS, DFS, Bidirectional: O(N·d) time, O(N) memory.
//   - UCS:                     O(N·d·log N) time, O(N·d) memory.
//   - DLS:                     O(N·d·L) worst case for limit L.
//   - IDDFS:                   sum of DLS costs over the iterations.
//
// Errors
//
//   - ErrNilGrid          if the grid is nil.
//   - ErrUnknownVariant   for an unsupported Variant or ParseVariant name.
//   - ErrOptionViolation  for negative DepthLimit or DepthCap.
package search
