package replan

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/pathviz/gridgraph"
)

// SpawnerOption configures a Spawner.
type SpawnerOption func(*SpawnerOptions)

// SpawnerOptions holds the spawner's path bias.
type SpawnerOptions struct {
	// PathBias is the probability, in [0,1], of picking a cell on the
	// current path instead of any Empty cell.
	PathBias float64

	// Path supplies the current path; nil disables the bias.
	Path func() []gridgraph.Cell

	err error
}

// WithPathBias makes the spawner prefer cells on path() with probability p.
// p outside [0,1] is recorded as ErrOptionViolation.
func WithPathBias(p float64, path func() []gridgraph.Cell) SpawnerOption {
	return func(o *SpawnerOptions) {
		if p < 0 || p > 1 {
			o.err = fmt.Errorf("%w: PathBias must be in [0,1] (%g)", ErrOptionViolation, p)
			return
		}
		o.PathBias, o.Path = p, path
	}
}

// Spawner drops dynamic obstacles on random Empty cells. It stands in for
// the timer-driven spawner of an interactive driver; call Spawn at
// whatever cadence the driver wants.
type Spawner struct {
	grid *gridgraph.GridGraph
	rng  *rand.Rand
	opts SpawnerOptions
}

// NewSpawner returns a Spawner over g drawing from rng.
// A nil rng falls back to a fixed seed of 42.
func NewSpawner(g *gridgraph.GridGraph, rng *rand.Rand, opts ...SpawnerOption) (*Spawner, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	var o SpawnerOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(42))
	}
	return &Spawner{grid: g, rng: rng, opts: o}, nil
}

// Spawn places one obstacle and returns its cell. ok is false when no
// Empty cell is left.
func (s *Spawner) Spawn() (pos gridgraph.Cell, ok bool, err error) {
	candidates := s.pathCandidates()
	if len(candidates) == 0 {
		s.grid.Each(func(c gridgraph.Cell, st gridgraph.CellState) {
			if st == gridgraph.Empty {
				candidates = append(candidates, c)
			}
		})
	}
	if len(candidates) == 0 {
		return gridgraph.Cell{}, false, nil
	}

	pos = candidates[s.rng.Intn(len(candidates))]
	ok, err = s.grid.SpawnObstacle(pos)
	return pos, ok, err
}

// pathCandidates returns the Empty cells of the current path when the
// bias roll succeeds, or nil.
func (s *Spawner) pathCandidates() []gridgraph.Cell {
	if s.opts.Path == nil || s.opts.PathBias == 0 || s.rng.Float64() >= s.opts.PathBias {
		return nil
	}
	var out []gridgraph.Cell
	for _, c := range s.opts.Path() {
		if st, err := s.grid.State(c); err == nil && st == gridgraph.Empty {
			out = append(out, c)
		}
	}
	return out
}
