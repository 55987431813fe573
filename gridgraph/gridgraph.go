// Package gridgraph provides the mutable 2D grid that every search runs on.
// It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Unique Start and Target roles, user walls, and dynamic obstacles
//   - Neighbor generation with the diagonal-squeeze rule
//   - Synchronous mutation events for subscribers
//   - Connected components of passable cells
//
// Cells in state Wall or DynamicObstacle are "blocked"; all others are passable.
package gridgraph

import (
	"fmt"
)

// NewGridGraph constructs an empty width×height GridGraph with no Start
// and no Target.
// Returns ErrEmptyGrid if either dimension is not positive.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(width, height int, opts GridOptions) (*GridGraph, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyGrid, width, height)
	}
	cells := make([][]CellState, height)
	for r := 0; r < height; r++ {
		cells[r] = make([]CellState, width)
	}
	// Precompute neighbor offsets based on connectivity, as (dRow, dCol).
	// The order is the fixed scan order every strategy inherits.
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}, {-1, 1}, {1, 1}, {1, -1}, {-1, -1}}
	} else {
		offsets = [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	}

	return &GridGraph{
		Width:           width,
		Height:          height,
		Conn:            opts.Conn,
		AllowSqueeze:    opts.AllowSqueeze,
		cells:           cells,
		neighborOffsets: offsets,
		subscribers:     make(map[int]func(Event)),
	}, nil
}

// From2D builds a grid from rows of ASCII art:
//
//	'.' empty  '#' wall  'S' start  'T' target  'X' dynamic obstacle
//
// Any other rune is treated as empty. Returns ErrEmptyGrid or
// ErrNonRectangular for malformed input.
func From2D(rows []string, conn Connectivity) (*GridGraph, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	opts := DefaultGridOptions()
	opts.Conn = conn
	gg, err := NewGridGraph(w, len(rows), opts)
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		for c, ch := range row {
			pos := Cell{Row: r, Col: c}
			switch ch {
			case '#':
				err = gg.SetCell(pos, Wall)
			case 'S':
				err = gg.SetCell(pos, Start)
			case 'T':
				err = gg.SetCell(pos, Target)
			case 'X':
				err = gg.SetCell(pos, DynamicObstacle)
			}
			if err != nil {
				return nil, err
			}
		}
	}

	return gg, nil
}

// InBounds reports whether pos lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(pos Cell) bool {
	return pos.Row >= 0 && pos.Row < gg.Height && pos.Col >= 0 && pos.Col < gg.Width
}

// Size returns the total number of cells, W×H.
func (gg *GridGraph) Size() int {
	return gg.Width * gg.Height
}

// State returns the state at pos, or ErrOutOfBounds.
func (gg *GridGraph) State(pos Cell) (CellState, error) {
	if !gg.InBounds(pos) {
		return Empty, fmt.Errorf("%w: %v", ErrOutOfBounds, pos)
	}
	return gg.cells[pos.Row][pos.Col], nil
}

// Blocked reports whether pos is out of bounds, a Wall, or a DynamicObstacle.
func (gg *GridGraph) Blocked(pos Cell) bool {
	if !gg.InBounds(pos) {
		return true
	}
	return gg.cells[pos.Row][pos.Col].Blocking()
}

// StartCell returns the Start coordinate and whether one is placed.
func (gg *GridGraph) StartCell() (Cell, bool) {
	return gg.start, gg.hasStart
}

// TargetCell returns the Target coordinate and whether one is placed.
func (gg *GridGraph) TargetCell() (Cell, bool) {
	return gg.target, gg.hasTarget
}

// SetCell writes state at pos.
//
// Rules:
//   - pos outside W×H → ErrOutOfBounds.
//   - Wall or DynamicObstacle over Start/Target → ErrRoleConflict.
//   - Start over Target (or vice versa) → ErrRoleConflict.
//   - Writing Start or Target moves the role: the previous holder becomes Empty.
//   - Writing Empty over Start/Target clears that role.
func (gg *GridGraph) SetCell(pos Cell, state CellState) error {
	if !gg.InBounds(pos) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, pos)
	}
	prev := gg.cells[pos.Row][pos.Col]
	if prev == state {
		return nil
	}
	if prev.Role() && state != Empty {
		return fmt.Errorf("%w: %v is %s, cannot become %s", ErrRoleConflict, pos, prev, state)
	}

	switch state {
	case Start:
		if gg.hasStart {
			gg.write(gg.start, Empty)
		}
		gg.start, gg.hasStart = pos, true
	case Target:
		if gg.hasTarget {
			gg.write(gg.target, Empty)
		}
		gg.target, gg.hasTarget = pos, true
	}
	switch prev {
	case Start:
		gg.hasStart = false
	case Target:
		gg.hasTarget = false
	}
	gg.write(pos, state)

	return nil
}

// SetStart moves the Start role to pos.
func (gg *GridGraph) SetStart(pos Cell) error {
	return gg.SetCell(pos, Start)
}

// SetTarget moves the Target role to pos.
func (gg *GridGraph) SetTarget(pos Cell) error {
	return gg.SetCell(pos, Target)
}

// ToggleWall flips pos between Wall and Empty. A DynamicObstacle is
// cleared to Empty. Start/Target yield ErrRoleConflict.
func (gg *GridGraph) ToggleWall(pos Cell) error {
	st, err := gg.State(pos)
	if err != nil {
		return err
	}
	switch st {
	case Wall, DynamicObstacle:
		return gg.SetCell(pos, Empty)
	default:
		return gg.SetCell(pos, Wall)
	}
}

// SpawnObstacle marks pos as DynamicObstacle and reports whether the grid
// changed. It is a silent no-op on Start, Target, Wall, or an existing
// obstacle. Only an out-of-bounds pos is an error.
func (gg *GridGraph) SpawnObstacle(pos Cell) (bool, error) {
	st, err := gg.State(pos)
	if err != nil {
		return false, err
	}
	if st != Empty {
		return false, nil
	}
	gg.write(pos, DynamicObstacle)

	return true, nil
}

// ClearObstacle turns a DynamicObstacle at pos back into Empty.
// Any other state is left untouched.
func (gg *GridGraph) ClearObstacle(pos Cell) error {
	st, err := gg.State(pos)
	if err != nil {
		return err
	}
	if st == DynamicObstacle {
		gg.write(pos, Empty)
	}
	return nil
}

// Reset clears every Wall and DynamicObstacle. Dimensions and the
// Start/Target roles are preserved. Subscribers receive a single EventReset.
func (gg *GridGraph) Reset() {
	gg.clear(false)
}

// ClearAll clears walls, obstacles, and both roles.
func (gg *GridGraph) ClearAll() {
	gg.clear(true)
}

func (gg *GridGraph) clear(roles bool) {
	for r := 0; r < gg.Height; r++ {
		for c := 0; c < gg.Width; c++ {
			st := gg.cells[r][c]
			if st.Blocking() || (roles && st.Role()) {
				gg.cells[r][c] = Empty
			}
		}
	}
	if roles {
		gg.hasStart, gg.hasTarget = false, false
	}
	gg.emit(Event{Kind: EventReset})
}

// Count returns how many cells currently hold state.
func (gg *GridGraph) Count(state CellState) int {
	n := 0
	for r := 0; r < gg.Height; r++ {
		for c := 0; c < gg.Width; c++ {
			if gg.cells[r][c] == state {
				n++
			}
		}
	}
	return n
}

// Each calls fn for every cell in row-major order.
func (gg *GridGraph) Each(fn func(pos Cell, state CellState)) {
	for r := 0; r < gg.Height; r++ {
		for c := 0; c < gg.Width; c++ {
			fn(Cell{Row: r, Col: c}, gg.cells[r][c])
		}
	}
}

// write stores state at an in-bounds pos and notifies subscribers.
func (gg *GridGraph) write(pos Cell, state CellState) {
	prev := gg.cells[pos.Row][pos.Col]
	gg.cells[pos.Row][pos.Col] = state
	gg.emit(Event{Kind: kindFor(prev, state), Cell: pos, Prev: prev, State: state})
}

// Index maps pos to a row-major index: Row*Width + Col.
// Complexity: O(1).
func (gg *GridGraph) Index(pos Cell) int {
	return pos.Row*gg.Width + pos.Col
}

// Coordinate converts a row-major index back to a Cell.
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) Cell {
	return Cell{Row: idx / gg.Width, Col: idx % gg.Width}
}
