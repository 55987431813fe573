package replan

import (
	"errors"

	"github.com/katalvlaran/pathviz/engine"
	"github.com/katalvlaran/pathviz/gridgraph"
	"github.com/katalvlaran/pathviz/search"
)

// Controller owns a grid and an engine and keeps a run alive while
// obstacles appear. It reacts to grid events synchronously: by the time
// SpawnObstacle returns, an invalidated run is Running again.
//
// A Controller is not safe for concurrent use.
type Controller struct {
	grid    *gridgraph.GridGraph
	engine  *engine.Engine
	opts    Options
	variant search.Variant
	cancel  func()
	closed  bool
	replans int

	// agent is the simulated traversal position along a found path;
	// pathIdx is its index into the path.
	agent    gridgraph.Cell
	pathIdx  int
	hasAgent bool
}

// New builds a Controller over g and subscribes it to g's events.
// Returns ErrNilGrid or ErrOptionViolation.
func New(g *gridgraph.GridGraph, opts ...Option) (*Controller, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	c := &Controller{
		grid:    g,
		engine:  engine.New(o.Engine...),
		opts:    o,
		variant: o.Variant,
	}
	c.cancel = g.Subscribe(c.onGridEvent)

	return c, nil
}

// Grid returns the controlled grid.
func (c *Controller) Grid() *gridgraph.GridGraph { return c.grid }

// Engine returns the underlying engine.
func (c *Controller) Engine() *engine.Engine { return c.engine }

// Variant returns the selected strategy.
func (c *Controller) Variant() search.Variant { return c.variant }

// Replans returns how many replans have been triggered.
func (c *Controller) Replans() int { return c.replans }

// Closed reports whether Close or Quit has been called.
func (c *Controller) Closed() bool { return c.closed }

// Snapshot returns the engine's snapshot.
func (c *Controller) Snapshot() engine.Snapshot { return c.engine.Snapshot() }

// Path returns the cells of the current path, or nil.
func (c *Controller) Path() []gridgraph.Cell {
	p, ok := c.engine.Path()
	if !ok {
		return nil
	}
	return p.Cells
}

// Step advances the engine by one step. A path found through a cell
// that was blocked during the run is replanned at once.
func (c *Controller) Step() error {
	if c.closed {
		return ErrClosed
	}
	if err := c.engine.Step(); err != nil {
		return err
	}
	c.revalidate()
	return nil
}

// Finish steps until the engine is no longer Running, replanning any
// found path that crosses a blocked cell.
func (c *Controller) Finish() error {
	if c.closed {
		return ErrClosed
	}
	for {
		if err := c.engine.Run(); err != nil {
			return err
		}
		if !c.revalidate() {
			return nil
		}
	}
}

// Advance moves the agent one cell along the found path and returns its
// new position. ok is false when there is no path or the agent has
// reached the target.
func (c *Controller) Advance() (pos gridgraph.Cell, ok bool) {
	path := c.Path()
	if c.closed || !c.hasAgent || c.pathIdx+1 >= len(path) {
		return c.agent, false
	}
	c.pathIdx++
	c.agent = path[c.pathIdx]
	return c.agent, true
}

// Position returns the agent position; ok is false before the first run.
func (c *Controller) Position() (pos gridgraph.Cell, ok bool) {
	return c.agent, c.hasAgent
}

// Close unsubscribes from the grid and resets the engine. It is idempotent.
func (c *Controller) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.cancel()
	c.engine.Reset()
}

func (c *Controller) onGridEvent(ev gridgraph.Event) {
	switch ev.Kind {
	case gridgraph.EventObstacleSpawned, gridgraph.EventWallSet:
		// Running: stale frontier entries are dropped when popped, and a
		// path found through an expanded cell is caught by revalidate.
		// Idle or Failed: nothing to protect.
		if c.engine.State() == engine.Succeeded && c.engine.OnPath(ev.Cell) {
			c.replan(ev.Cell)
		}
	case gridgraph.EventReset:
		c.clearSearch()
	default:
		// Any change to an endpoint invalidates the run it belongs to.
		if ev.Prev.Role() || ev.State.Role() {
			c.clearSearch()
		}
	}
}

// revalidate replans a Succeeded run whose path crosses a blocked cell.
// Strategies only check cells as they are popped, so an obstacle placed
// on an already expanded cell can still end up on the found path.
// It reports whether a replan was attempted.
func (c *Controller) revalidate() bool {
	if c.engine.State() != engine.Succeeded {
		return false
	}
	p, _ := c.engine.Path()
	for _, cell := range p.Cells {
		if c.grid.Blocked(cell) {
			c.replan(cell)
			return true
		}
	}
	return false
}

// replan discards the search and re-runs Start on the same strategy,
// grid and target. With ResumeFromCurrent the agent's position is the
// new start; if that fails the original Start is used. If no search can
// be started the engine is reset, so the invalidated path is dropped.
func (c *Controller) replan(obstacle gridgraph.Cell) {
	c.replans++
	start, target := c.engine.Endpoints()
	if s, ok := c.grid.StartCell(); ok {
		start = s
	}

	var err error
	from := start
	if c.opts.ResumeFromCurrent && c.hasAgent && c.agent != start {
		from = c.agent
		err = c.engine.Start(c.variant, c.grid, from, target)
		if errors.Is(err, engine.ErrInvalidEndpoints) {
			from = start
			err = c.engine.Start(c.variant, c.grid, from, target)
		}
	} else {
		err = c.engine.Start(c.variant, c.grid, from, target)
	}
	if err != nil {
		c.clearSearch()
	} else {
		c.agent, c.pathIdx, c.hasAgent = from, 0, true
	}

	c.opts.OnReplan(ReplanEvent{Obstacle: obstacle, From: from, Count: c.replans, Err: err})
}
