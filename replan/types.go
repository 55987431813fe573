package replan

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathviz/engine"
	"github.com/katalvlaran/pathviz/gridgraph"
	"github.com/katalvlaran/pathviz/search"
)

// Sentinel errors for controller and spawner operations.
var (
	// ErrClosed is returned by every operation after Close or Quit.
	ErrClosed = errors.New("replan: controller closed")

	// ErrUnknownCommand is returned by Dispatch for an unsupported CommandKind.
	ErrUnknownCommand = errors.New("replan: unknown command")

	// ErrNoEndpoints is returned by Run when the grid lacks Start or Target.
	ErrNoEndpoints = errors.New("replan: start or target not placed")

	// ErrNilGrid is returned when a nil grid is supplied.
	ErrNilGrid = errors.New("replan: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("replan: invalid option supplied")
)

// ReplanEvent describes one full re-search triggered by an obstacle.
type ReplanEvent struct {
	Obstacle gridgraph.Cell // cell that invalidated the path
	From     gridgraph.Cell // start cell of the new search
	Count    int            // replans since the controller was created
	Err      error          // non-nil if the new search could not start
}

// Option configures a Controller via functional arguments.
type Option func(*Options)

// Options holds the controller's engine options, policy and hooks.
type Options struct {
	// Engine is passed to engine.New.
	Engine []engine.Option

	// Variant is the initially selected strategy. Defaults to BFS.
	Variant search.Variant

	// ResumeFromCurrent restarts a replan from the agent's position on the
	// old path instead of the original Start. Defaults to false.
	ResumeFromCurrent bool

	// OnReplan is called after every replan attempt.
	OnReplan func(ev ReplanEvent)

	err error
}

// DefaultOptions returns Options selecting BFS, restarting from the
// original Start, with a no-op OnReplan.
func DefaultOptions() Options {
	return Options{
		Variant:  search.BFS,
		OnReplan: func(ReplanEvent) {},
	}
}

// WithEngineOptions appends options passed to the underlying engine.
func WithEngineOptions(opts ...engine.Option) Option {
	return func(o *Options) {
		o.Engine = append(o.Engine, opts...)
	}
}

// WithVariant selects the initial strategy.
// An unsupported variant is recorded as ErrOptionViolation.
func WithVariant(v search.Variant) Option {
	return func(o *Options) {
		if !v.Valid() {
			o.err = fmt.Errorf("%w: %v", ErrOptionViolation, v)
			return
		}
		o.Variant = v
	}
}

// WithResumeFromCurrent sets the replan start policy.
func WithResumeFromCurrent(resume bool) Option {
	return func(o *Options) {
		o.ResumeFromCurrent = resume
	}
}

// WithOnReplan registers a callback for replan attempts.
func WithOnReplan(fn func(ev ReplanEvent)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnReplan = fn
		}
	}
}
