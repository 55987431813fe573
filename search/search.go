package search

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/pathviz/gridgraph"
)

// New builds a Strategy of variant v searching g from start to target,
// applying any number of functional Options.
// Returns ErrNilGrid for a nil grid, ErrUnknownVariant for an unsupported
// variant, or ErrOptionViolation for bad options.
//
// New does not validate the endpoints; that is the caller's contract
// (see engine.Start).
func New(v Variant, g Grid, start, target gridgraph.Cell, opts ...Option) (Strategy, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	switch v {
	case BFS:
		return newBFS(g, start, target, o), nil
	case DFS:
		return newDFS(g, start, target, o), nil
	case UCS:
		return newUCS(g, start, target, o), nil
	case DLS:
		return dls{newLimited(DLS, g, start, target, o.DepthLimit, o)}, nil
	case IDDFS:
		return newIDDFS(g, start, target, o), nil
	case Bidirectional:
		return newBidirectional(g, start, target, o), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownVariant, v)
	}
}

// Events exposes s as a lazy sequence of step events, ending with the
// terminal Found or Exhausted event. Each pull of the sequence consumes
// at most one Step.
func Events(s Strategy) iter.Seq[Event] {
	return func(yield func(Event) bool) {
		for {
			for _, ev := range s.Step() {
				if !yield(ev) {
					return
				}
				if ev.Kind.Terminal() {
					return
				}
			}
		}
	}
}

// Run drives s to completion and returns the path, whether it was found,
// and how many steps were taken.
func Run(s Strategy) (path Path, found bool, steps int) {
	for !s.Done() {
		steps++
		for _, ev := range s.Step() {
			if ev.Kind == Found {
				path, found = ev.Path, true
			}
		}
	}
	return path, found, steps
}
