// Package gridgraph defines core types, options, and sentinel errors
// for the mutable search grid of github.com/katalvlaran/pathviz.
package gridgraph

import "fmt"

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, E, S, W, NE, SE, SW, NW.
	Conn8
)

// CellState is the role a single cell plays in the grid.
type CellState int

const (
	// Empty cells are free to traverse.
	Empty CellState = iota
	// Wall cells are drawn by the user before a run.
	Wall
	// Start marks the unique search origin.
	Start
	// Target marks the unique search goal.
	Target
	// DynamicObstacle cells appear while a run is in progress.
	DynamicObstacle
)

// String returns a short human-readable name of the state.
func (s CellState) String() string {
	switch s {
	case Empty:
		return "empty"
	case Wall:
		return "wall"
	case Start:
		return "start"
	case Target:
		return "target"
	case DynamicObstacle:
		return "obstacle"
	default:
		return fmt.Sprintf("CellState(%d)", int(s))
	}
}

// Blocking reports whether the state prevents traversal.
func (s CellState) Blocking() bool {
	return s == Wall || s == DynamicObstacle
}

// Role reports whether the state is one of the unique endpoint roles.
func (s CellState) Role() bool {
	return s == Start || s == Target
}

// Cell is a (Row, Col) coordinate. Identity is the coordinate itself.
type Cell struct {
	Row, Col int
}

// String formats the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Diagonal reports whether a step from c to d is a diagonal move.
func (c Cell) Diagonal(d Cell) bool {
	return c.Row != d.Row && c.Col != d.Col
}

// GridOptions contains tunable parameters for grid adjacency.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// AllowSqueeze, if true, disables the diagonal-squeeze rule and lets a
	// diagonal move pass between two blocked orthogonal cells.
	AllowSqueeze bool
}

// DefaultGridOptions returns a GridOptions with default settings:
// Conn=Conn8, diagonal-squeeze rule enforced.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Conn:         Conn8,
		AllowSqueeze: false,
	}
}

// GridGraph is a fixed-size W×H lattice of CellState plus the current
// Start and Target coordinates.
// Width and Height never change after construction.
// cells[row][col] holds the state; at most one cell holds Start and at most
// one holds Target at any time.
type GridGraph struct {
	Width, Height   int
	Conn            Connectivity
	AllowSqueeze    bool
	cells           [][]CellState
	start, target   Cell
	hasStart        bool
	hasTarget       bool
	neighborOffsets [][2]int
	subscribers     map[int]func(Event)
	nextSubscriber  int
}
