package engine

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathviz/gridgraph"
	"github.com/katalvlaran/pathviz/search"
)

// Sentinel errors for engine operations.
var (
	// ErrInvalidEndpoints is returned by Start when an endpoint is out of
	// bounds, blocked, or both endpoints are the same cell.
	ErrInvalidEndpoints = errors.New("engine: invalid endpoints")

	// ErrNotRunning is returned by Step outside the Running state.
	ErrNotRunning = errors.New("engine: not running")

	// ErrNilGrid is returned by Start for a nil grid.
	ErrNilGrid = errors.New("engine: grid is nil")
)

// State is the engine lifecycle state.
//
//	Idle → Running → {Succeeded, Failed} → Idle (Reset or a new Start)
type State int

const (
	// Idle: no search in progress.
	Idle State = iota
	// Running: a strategy is active and Step may be called.
	Running
	// Succeeded: Found was reached; the path is materialized.
	Succeeded
	// Failed: the strategy was Exhausted.
	Failed
)

// String returns the lower-case state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Finished reports whether s is Succeeded or Failed.
func (s State) Finished() bool {
	return s == Succeeded || s == Failed
}

// Grid is what the engine needs from a grid: the strategy view plus
// bounds checking. *gridgraph.GridGraph satisfies it.
type Grid interface {
	search.Grid
	InBounds(pos gridgraph.Cell) bool
}

// Option configures an Engine via functional arguments.
type Option func(*Options)

// Options holds the engine's strategy options and lifecycle hooks.
type Options struct {
	// Search is passed to search.New on every Start.
	Search []search.Option

	// OnTransition is called after every state change.
	OnTransition func(from, to State)

	// OnStep is called after each successful Step with the events it applied.
	OnStep func(events []search.Event)
}

// DefaultOptions returns Options with no strategy options and no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnTransition: func(State, State) {},
		OnStep:       func([]search.Event) {},
	}
}

// WithSearchOptions appends strategy options used by every Start.
func WithSearchOptions(opts ...search.Option) Option {
	return func(o *Options) {
		o.Search = append(o.Search, opts...)
	}
}

// WithOnTransition registers a callback for state changes.
func WithOnTransition(fn func(from, to State)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnTransition = fn
		}
	}
}

// WithOnStep registers a callback run after every Step.
func WithOnStep(fn func(events []search.Event)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// Stats are the running counters shown next to the grid.
type Stats struct {
	Steps      int     // Step calls since Start
	Expanded   int     // expansions, both sides summed for Bidirectional
	PathLength int     // moves in the path, 0 without one
	PathCost   float64 // g-cost of the path, 0 without one
	DepthLimit int     // DLS limit or current IDDFS limit; -1 otherwise
}
