package engine

import (
	"cmp"
	"iter"
	"maps"
	"slices"
	"strings"

	"github.com/katalvlaran/pathviz/gridgraph"
	"github.com/katalvlaran/pathviz/search"
)

// Snapshot is a read-only copy of the engine's observable view.
// Cell slices are sorted row-major and never alias engine state.
//
// Frontier and Visited belong to the Start side; BackFrontier and
// BackVisited are only populated by Bidirectional.
type Snapshot struct {
	State   State
	Variant search.Variant
	Start   gridgraph.Cell
	Target  gridgraph.Cell

	Frontier     []gridgraph.Cell
	Visited      []gridgraph.Cell
	BackFrontier []gridgraph.Cell
	BackVisited  []gridgraph.Cell

	Current    gridgraph.Cell
	HasCurrent bool

	Path []gridgraph.Cell // nil unless Succeeded

	Stats Stats
}

// Snapshot returns the current view. It has no side effects; repeated
// calls without an intervening Step or Start return equal values.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		State:        e.state,
		Variant:      e.variant,
		Start:        e.start,
		Target:       e.target,
		Frontier:     sortedCells(maps.Keys(e.frontier[search.Forward])),
		BackFrontier: sortedCells(maps.Keys(e.frontier[search.Backward])),
		Visited:      e.visitedCells(search.Forward),
		BackVisited:  e.visitedCells(search.Backward),
		Current:      e.current,
		HasCurrent:   e.hasCurrent,
		Stats: Stats{
			Steps:      e.steps,
			Expanded:   e.expanded,
			DepthLimit: -1,
		},
	}
	if e.strategy != nil {
		s.Stats.DepthLimit = e.strategy.DepthLimit()
	}
	if e.hasPath {
		s.Path = slices.Clone(e.path.Cells)
		s.Stats.PathLength = e.path.Len()
		s.Stats.PathCost = e.path.Cost
	}
	return s
}

func (e *Engine) visitedCells(side search.Side) []gridgraph.Cell {
	out := make([]gridgraph.Cell, 0, e.visited[side].Size())
	e.visited[side].Each(func(c gridgraph.Cell) {
		out = append(out, c)
	})
	slices.SortFunc(out, compareCells)
	return out
}

func sortedCells(seq iter.Seq[gridgraph.Cell]) []gridgraph.Cell {
	out := slices.SortedFunc(seq, compareCells)
	if out == nil {
		out = []gridgraph.Cell{}
	}
	return out
}

func compareCells(a, b gridgraph.Cell) int {
	return cmp.Or(cmp.Compare(a.Row, b.Row), cmp.Compare(a.Col, b.Col))
}

// Render glyphs. Grid states use the gridgraph.From2D legend.
const (
	GlyphEmpty    = '.'
	GlyphWall     = '#'
	GlyphStart    = 'S'
	GlyphTarget   = 'T'
	GlyphObstacle = 'X'
	GlyphPath     = '*'
	GlyphCurrent  = '@'
	GlyphFrontier = '+'
	GlyphVisited  = '-'
)

// Render draws snap over g as one line per row, one glyph per cell.
// Precedence: Start/Target/Wall/obstacle, then path, current, frontier,
// visited. Both Bidirectional sides use the same glyphs.
func Render(g *gridgraph.GridGraph, snap Snapshot) string {
	overlay := make(map[gridgraph.Cell]byte, len(snap.Visited)+len(snap.Frontier)+len(snap.Path))
	mark := func(cells []gridgraph.Cell, glyph byte) {
		for _, c := range cells {
			overlay[c] = glyph
		}
	}
	// Lowest precedence first; later marks overwrite.
	mark(snap.Visited, GlyphVisited)
	mark(snap.BackVisited, GlyphVisited)
	mark(snap.Frontier, GlyphFrontier)
	mark(snap.BackFrontier, GlyphFrontier)
	if snap.HasCurrent {
		overlay[snap.Current] = GlyphCurrent
	}
	mark(snap.Path, GlyphPath)

	var b strings.Builder
	b.Grow((g.Width + 1) * g.Height)
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			pos := gridgraph.Cell{Row: r, Col: c}
			st, _ := g.State(pos)
			switch st {
			case gridgraph.Start:
				b.WriteByte(GlyphStart)
			case gridgraph.Target:
				b.WriteByte(GlyphTarget)
			case gridgraph.Wall:
				b.WriteByte(GlyphWall)
			case gridgraph.DynamicObstacle:
				b.WriteByte(GlyphObstacle)
			default:
				if glyph, ok := overlay[pos]; ok {
					b.WriteByte(glyph)
				} else {
					b.WriteByte(GlyphEmpty)
				}
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
