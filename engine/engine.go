package engine

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/pathviz/gridgraph"
	"github.com/katalvlaran/pathviz/search"
)

// Engine drives one Strategy step by step and keeps the observable view
// of its progress: frontier and visited cells per side, the most recently
// expanded cell, and the path once found.
//
// An Engine is not safe for concurrent use; the driver calls Step at its
// own pace and mutates the grid only between Steps.
type Engine struct {
	opts  Options
	state State

	variant  search.Variant
	grid     Grid
	start    gridgraph.Cell
	target   gridgraph.Cell
	strategy search.Strategy

	// frontier counts queued entries per cell, since a cell may be queued
	// more than once (DFS, UCS); a cell is in the frontier while its count > 0.
	frontier [2]map[gridgraph.Cell]int
	visited  [2]mapset.Set[gridgraph.Cell]

	current    gridgraph.Cell
	hasCurrent bool
	path       search.Path
	hasPath    bool

	steps    int
	expanded int
}

// New returns an Idle engine configured by opts.
func New(opts ...Option) *Engine {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	e := &Engine{opts: o}
	e.clear()
	return e
}

// State returns the current lifecycle state.
func (e *Engine) State() State { return e.state }

// Variant returns the variant of the last Start.
func (e *Engine) Variant() search.Variant { return e.variant }

// Endpoints returns the start and target of the last Start.
func (e *Engine) Endpoints() (start, target gridgraph.Cell) { return e.start, e.target }

// Path returns the materialized path; ok is false unless Succeeded.
func (e *Engine) Path() (p search.Path, ok bool) { return e.path, e.hasPath }

// OnPath reports whether pos lies on the materialized path.
func (e *Engine) OnPath(pos gridgraph.Cell) bool {
	return e.hasPath && e.path.Contains(pos)
}

// Start validates the endpoints, discards any previous search, builds the
// strategy for v and enters Running. It may be called in any state; a
// run that is not Idle passes through Idle first.
//
// Returns ErrNilGrid, ErrInvalidEndpoints (out of bounds, blocked, or
// start == target), or a strategy construction error. On error the
// engine is left untouched.
func (e *Engine) Start(v search.Variant, g Grid, start, target gridgraph.Cell) error {
	if g == nil {
		return ErrNilGrid
	}
	for _, pos := range []gridgraph.Cell{start, target} {
		if !g.InBounds(pos) {
			return fmt.Errorf("%w: %v out of bounds", ErrInvalidEndpoints, pos)
		}
		if g.Blocked(pos) {
			return fmt.Errorf("%w: %v is blocked", ErrInvalidEndpoints, pos)
		}
	}
	if start == target {
		return fmt.Errorf("%w: start and target are both %v", ErrInvalidEndpoints, start)
	}
	st, err := search.New(v, g, start, target, e.opts.Search...)
	if err != nil {
		return err
	}

	e.Reset()
	e.variant, e.grid, e.start, e.target = v, g, start, target
	e.strategy = st
	for _, n := range st.Seeds() {
		e.frontier[n.Side][n.Cell]++
	}
	e.transition(Running)

	return nil
}

// Restart re-runs the last Start with the same variant, grid and endpoints.
func (e *Engine) Restart() error {
	return e.Start(e.variant, e.grid, e.start, e.target)
}

// Step pulls one unit of work from the strategy and applies its events.
// It returns ErrNotRunning outside Running.
func (e *Engine) Step() error {
	if e.state != Running {
		return fmt.Errorf("%w: state is %v", ErrNotRunning, e.state)
	}
	e.steps++
	events := e.strategy.Step()
	for _, ev := range events {
		e.apply(ev)
	}
	e.opts.OnStep(events)

	return nil
}

// Run steps until the search is no longer Running.
func (e *Engine) Run() error {
	for e.state == Running {
		if err := e.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Reset discards all search state unconditionally and enters Idle.
// The variant, grid and endpoints of the last Start are kept for Restart.
func (e *Engine) Reset() {
	e.strategy = nil
	e.clear()
	e.transition(Idle)
}

func (e *Engine) apply(ev search.Event) {
	side := ev.Node.Side
	switch ev.Kind {
	case search.Frontiered:
		e.frontier[side][ev.Node.Cell]++
	case search.Discarded:
		e.dequeue(side, ev.Node.Cell)
	case search.Expanded:
		e.dequeue(side, ev.Node.Cell)
		e.visited[side].Put(ev.Node.Cell)
		e.current, e.hasCurrent = ev.Node.Cell, true
		e.expanded++
	case search.Deepened:
		// IDDFS keeps nothing across iterations; neither does the view.
		e.clearSets()
		e.hasCurrent = false
	case search.Found:
		e.path, e.hasPath = ev.Path, true
		e.transition(Succeeded)
	case search.Exhausted:
		e.transition(Failed)
	}
}

func (e *Engine) dequeue(side search.Side, pos gridgraph.Cell) {
	switch n := e.frontier[side][pos]; {
	case n > 1:
		e.frontier[side][pos] = n - 1
	case n == 1:
		delete(e.frontier[side], pos)
	}
}

func (e *Engine) transition(to State) {
	from := e.state
	if from == to {
		return
	}
	e.state = to
	e.opts.OnTransition(from, to)
}

// clear resets the view and counters; the lifecycle state is untouched.
func (e *Engine) clear() {
	e.clearSets()
	e.current, e.hasCurrent = gridgraph.Cell{}, false
	e.path, e.hasPath = search.Path{}, false
	e.steps, e.expanded = 0, 0
}

func (e *Engine) clearSets() {
	for i := range e.frontier {
		e.frontier[i] = make(map[gridgraph.Cell]int)
		e.visited[i] = mapset.New[gridgraph.Cell]()
	}
}
