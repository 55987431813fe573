package gridgraph_test

import (
	"math"
	"reflect"
	"testing"

	"github.com/katalvlaran/pathviz/gridgraph"
)

// TestNeighbors_ScanOrder checks the fixed N,E,S,W,NE,SE,SW,NW order on an open 3×3 grid.
func TestNeighbors_ScanOrder(t *testing.T) {
	gg, _ := gridgraph.NewGridGraph(3, 3, gridgraph.DefaultGridOptions())
	got := gg.Neighbors(gridgraph.Cell{Row: 1, Col: 1})
	want := []gridgraph.Cell{
		{0, 1}, {1, 2}, {2, 1}, {1, 0},
		{0, 2}, {2, 2}, {2, 0}, {0, 0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Neighbors(1,1) = %v; want %v", got, want)
	}
}

// TestNeighbors_Conn4 excludes diagonals entirely.
func TestNeighbors_Conn4(t *testing.T) {
	gg, _ := gridgraph.From2D([]string{"...", "...", "..."}, gridgraph.Conn4)
	got := gg.Neighbors(gridgraph.Cell{Row: 0, Col: 0})
	want := []gridgraph.Cell{{0, 1}, {1, 0}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Conn4 Neighbors(0,0) = %v; want %v", got, want)
	}
}

// TestNeighbors_DiagonalSqueeze verifies that an "L" of two walls blocks the diagonal.
//
// Grid:
//
//	. #
//	# .
//
// From (0,0) the only candidate (1,1) is flanked by walls on both sides.
func TestNeighbors_DiagonalSqueeze(t *testing.T) {
	gg, _ := gridgraph.From2D([]string{".#", "#."}, gridgraph.Conn8)
	if got := gg.Neighbors(gridgraph.Cell{Row: 0, Col: 0}); len(got) != 0 {
		t.Errorf("squeeze: Neighbors(0,0) = %v; want none", got)
	}
	// Symmetric from the other side.
	if got := gg.Neighbors(gridgraph.Cell{Row: 1, Col: 1}); len(got) != 0 {
		t.Errorf("squeeze: Neighbors(1,1) = %v; want none", got)
	}

	// Obstacles count as blocking flanks too.
	gg2, _ := gridgraph.From2D([]string{".X", "#."}, gridgraph.Conn8)
	if got := gg2.Neighbors(gridgraph.Cell{Row: 0, Col: 0}); len(got) != 0 {
		t.Errorf("squeeze with obstacle: Neighbors(0,0) = %v; want none", got)
	}

	opts := gridgraph.DefaultGridOptions()
	opts.AllowSqueeze = true
	gg3, _ := gridgraph.NewGridGraph(2, 2, opts)
	_ = gg3.ToggleWall(gridgraph.Cell{Row: 0, Col: 1})
	_ = gg3.ToggleWall(gridgraph.Cell{Row: 1, Col: 0})
	want := []gridgraph.Cell{{1, 1}}
	if got := gg3.Neighbors(gridgraph.Cell{Row: 0, Col: 0}); !reflect.DeepEqual(got, want) {
		t.Errorf("AllowSqueeze: Neighbors(0,0) = %v; want %v", got, want)
	}
}

// TestNeighbors_OneFlankFree allows the diagonal when only one flank is blocked.
func TestNeighbors_OneFlankFree(t *testing.T) {
	gg, _ := gridgraph.From2D([]string{"..", "#."}, gridgraph.Conn8)
	got := gg.Neighbors(gridgraph.Cell{Row: 0, Col: 0})
	want := []gridgraph.Cell{{0, 1}, {1, 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Neighbors(0,0) = %v; want %v", got, want)
	}
	if got := gg.Neighbors(gridgraph.Cell{Row: 5, Col: 5}); got != nil {
		t.Errorf("out of bounds: got %v; want nil", got)
	}
}

// TestMoveCost checks the 1 / √2 cost rule and PathCost summation.
func TestMoveCost(t *testing.T) {
	a := gridgraph.Cell{Row: 0, Col: 0}
	if c := gridgraph.MoveCost(a, gridgraph.Cell{Row: 0, Col: 1}); c != 1 {
		t.Errorf("orthogonal cost = %v; want 1", c)
	}
	if c := gridgraph.MoveCost(a, gridgraph.Cell{Row: 1, Col: 1}); c != math.Sqrt2 {
		t.Errorf("diagonal cost = %v; want √2", c)
	}
	path := []gridgraph.Cell{{0, 0}, {1, 1}, {2, 2}, {2, 3}}
	if c := gridgraph.PathCost(path); math.Abs(c-(2*math.Sqrt2+1)) > 1e-9 {
		t.Errorf("PathCost = %v; want %v", c, 2*math.Sqrt2+1)
	}
	if c := gridgraph.PathCost(nil); c != 0 {
		t.Errorf("PathCost(nil) = %v; want 0", c)
	}
}
