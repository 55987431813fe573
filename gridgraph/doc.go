// Package gridgraph models the fixed-size 2D lattice that the searches in
// github.com/katalvlaran/pathviz run on.
//
// What:
//
//   - GridGraph owns one CellState per cell: Empty, Wall, Start, Target, DynamicObstacle.
//   - Exactly one Start and one Target once placed; the roles move, never duplicate.
//   - Neighbors yields up to 8 passable adjacent cells in a fixed scan order.
//   - MoveCost/PathCost centralise the 1 vs √2 step cost.
//   - Subscribe delivers synchronous mutation events (obstacle spawns etc.).
//   - ConnectedComponents/Connected answer reachability questions.
//   - LoadPreset draws the simple, maze, spiral and random layouts.
//
// Diagonal-squeeze rule:
//
//	A diagonal step is allowed only if at least one of the two orthogonal
//	cells flanking it is passable:
//
//	    S #      S .
//	    # .      # .
//	  S→(1,1)  S→(1,1)
//	  excluded allowed
//
// Options:
//
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors, default).
//   - GridOptions.AllowSqueeze: disable the diagonal-squeeze rule.
//
// Complexity:
//
//   - SetCell, SpawnObstacle, ClearObstacle: O(1) + O(subscribers).
//   - Neighbors:                             O(d).
//   - ConnectedComponents, Connected:        O(W×H×d), Memory: O(W×H).
//   - Reset, ClearAll, LoadPreset:           O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: non-positive dimensions or empty ASCII input.
//   - ErrNonRectangular: ASCII rows have differing lengths.
//   - ErrOutOfBounds: coordinate outside the lattice.
//   - ErrRoleConflict: blocking state written over Start/Target, or a role over the other role.
//   - ErrUnknownPreset: LoadPreset name not recognised.
//
// A GridGraph is not safe for concurrent use; the single driver that
// steps the search also mutates the grid.
package gridgraph
