package search

import "github.com/katalvlaran/pathviz/gridgraph"

// iddfs repeats the depth-limited pass with limits 0, 1, 2, …
// Each iteration starts from an empty node table and depth map; nothing
// carries over. The search ends Exhausted once the cap is reached, or
// earlier when an iteration finishes without any node being cut off by
// the limit (the whole reachable region has been seen).
type iddfs struct {
	*limited
	maxLimit int
}

func newIDDFS(g Grid, start, target gridgraph.Cell, o Options) *iddfs {
	limitCap := o.DepthCap
	if limitCap == 0 {
		limitCap = g.Size()
	}
	return &iddfs{
		limited:  newLimited(IDDFS, g, start, target, 0, o),
		maxLimit: limitCap,
	}
}

// Step performs one live pop of the current iteration, or, when the
// iteration's stack has emptied, one restart that emits Deepened followed
// by the Frontiered seed.
func (s *iddfs) Step() []Event {
	if !s.begin() {
		return s.terminal()
	}
	if events, live := s.advance(); live {
		return events
	}
	if !s.cutoff || s.limit >= s.maxLimit {
		return s.exhaust()
	}

	s.limit++
	s.restart()
	s.events = append(s.events,
		Event{Kind: Deepened, Limit: s.limit},
		Event{Kind: Frontiered, Node: s.nodes.at(0)},
	)
	return s.flush()
}
