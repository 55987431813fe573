package gridgraph

import (
	"fmt"
	"math/rand"
)

// Preset names accepted by LoadPreset.
const (
	PresetSimple = "simple"
	PresetMaze   = "maze"
	PresetSpiral = "spiral"
	PresetRandom = "random"
)

// RandomWallDensity is the probability that PresetRandom walls a cell.
const RandomWallDensity = 0.25

// PresetNames lists the supported presets in display order.
func PresetNames() []string {
	return []string{PresetSimple, PresetMaze, PresetSpiral, PresetRandom}
}

// LoadPreset clears the grid (walls, obstacles, roles) and draws the named
// layout, placing Start and Target relative to the grid dimensions.
// rng is only consulted by PresetRandom; a nil rng falls back to a fixed seed.
// Returns ErrUnknownPreset for an unrecognised name.
func (gg *GridGraph) LoadPreset(name string, rng *rand.Rand) error {
	var start, target Cell
	switch name {
	case PresetSimple, PresetRandom:
		start = Cell{Row: 5, Col: 5}
		target = Cell{Row: gg.Height - 6, Col: gg.Width - 6}
	case PresetMaze:
		start = Cell{Row: 2, Col: 2}
		target = Cell{Row: gg.Height - 3, Col: gg.Width - 3}
	case PresetSpiral:
		start = Cell{Row: gg.Height / 2, Col: gg.Width / 2}
		target = Cell{Row: 2, Col: 2}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}

	gg.ClearAll()
	switch name {
	case PresetMaze:
		gg.drawMaze()
	case PresetSpiral:
		gg.drawSpiral()
	case PresetRandom:
		if rng == nil {
			rng = rand.New(rand.NewSource(42))
		}
		gg.drawRandom(rng, start, target)
	}

	start, target = gg.clamp(start), gg.clamp(target)
	if start == target && gg.Size() > 1 {
		target = Cell{Row: gg.Height - 1, Col: gg.Width - 1}
		if start == target {
			start = Cell{}
		}
	}
	if err := gg.SetStart(start); err != nil {
		return err
	}
	if start == target {
		return nil // 1×1 grid: no room for a target
	}
	return gg.SetTarget(target)
}

// drawMaze lays horizontal wall bands every 8 rows, each pair offset so that
// the single gaps alternate between the right and left sides.
func (gg *GridGraph) drawMaze() {
	for r := 5; r < gg.Height-5; r += 8 {
		for c := 5; c < gg.Width-5; c++ {
			gg.setWall(Cell{Row: r, Col: c})
		}
		if r+4 < gg.Height {
			for c := 10; c < gg.Width-5; c++ {
				gg.setWall(Cell{Row: r + 4, Col: c})
			}
		}
		gg.clearWall(Cell{Row: r, Col: gg.Width - 10})
		if r+4 < gg.Height {
			gg.clearWall(Cell{Row: r + 4, Col: 10})
		}
	}
}

// drawSpiral draws concentric rectangles three cells apart, each with a
// doorway on its top edge.
func (gg *GridGraph) drawSpiral() {
	limit := min(gg.Height, gg.Width) / 4
	for layer := 1; layer < limit; layer++ {
		off := layer * 3
		for c := off; c < gg.Width-off; c++ {
			gg.setWall(Cell{Row: off, Col: c})
			gg.setWall(Cell{Row: gg.Height - off - 1, Col: c})
		}
		for r := off; r < gg.Height-off; r++ {
			gg.setWall(Cell{Row: r, Col: gg.Width - off - 1})
		}
		for r := off + 1; r < gg.Height-off; r++ {
			gg.setWall(Cell{Row: r, Col: off})
		}
		gg.clearWall(Cell{Row: off, Col: off + 3})
	}
}

func (gg *GridGraph) drawRandom(rng *rand.Rand, start, target Cell) {
	start, target = gg.clamp(start), gg.clamp(target)
	gg.Each(func(pos Cell, _ CellState) {
		if pos == start || pos == target {
			return
		}
		if rng.Float64() < RandomWallDensity {
			gg.setWall(pos)
		}
	})
}

func (gg *GridGraph) setWall(pos Cell) {
	if gg.InBounds(pos) && gg.cells[pos.Row][pos.Col] == Empty {
		gg.write(pos, Wall)
	}
}

func (gg *GridGraph) clearWall(pos Cell) {
	if gg.InBounds(pos) && gg.cells[pos.Row][pos.Col] == Wall {
		gg.write(pos, Empty)
	}
}

func (gg *GridGraph) clamp(pos Cell) Cell {
	pos.Row = max(0, min(pos.Row, gg.Height-1))
	pos.Col = max(0, min(pos.Col, gg.Width-1))
	return pos
}
