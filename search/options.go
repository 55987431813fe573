package search

import "fmt"

// DefaultDepthLimit is the DLS depth limit used when none is given.
const DefaultDepthLimit = 20

// Option configures strategy behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded
// internally and surfaced as ErrOptionViolation when New is invoked.
type Option func(*Options)

// Options holds parameters and callbacks that customize a strategy.
type Options struct {
	// DepthLimit bounds DLS. Must be ≥ 0.
	DepthLimit int

	// DepthCap bounds the IDDFS iterations. 0 means "grid cell count".
	DepthCap int

	// OnExpand is called when a node is popped and examined.
	OnExpand func(n Node)

	// OnFrontier is called when a node is pushed to a frontier,
	// seeds included.
	OnFrontier func(n Node)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns an Options with sane defaults:
//   - DepthLimit = DefaultDepthLimit
//   - DepthCap = 0 (grid cell count)
//   - no-op hooks
func DefaultOptions() Options {
	return Options{
		DepthLimit: DefaultDepthLimit,
		DepthCap:   0,
		OnExpand:   func(Node) {},
		OnFrontier: func(Node) {},
	}
}

// WithDepthLimit sets the DLS depth limit.
//
//	d ≥ 0: limit expansion to depth d
//	d < 0: invalid option → ErrOptionViolation
func WithDepthLimit(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: DepthLimit cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.DepthLimit = d
	}
}

// WithDepthCap sets the largest depth limit IDDFS will try.
//
//	n > 0: stop after the iteration with limit n
//	n == 0: use the grid cell count
//	n < 0: invalid option → ErrOptionViolation
func WithDepthCap(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: DepthCap cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.DepthCap = n
	}
}

// WithOnExpand registers a callback to run on every expansion.
func WithOnExpand(fn func(n Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnFrontier registers a callback to run on every frontier push.
func WithOnFrontier(fn func(n Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFrontier = fn
		}
	}
}
