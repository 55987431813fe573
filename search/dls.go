package search

import (
	"github.com/zyedidia/generic/stack"

	"github.com/katalvlaran/pathviz/gridgraph"
)

// limited is depth-limited DFS over the grid. Instead of a plain closed
// set it keeps the best depth each cell was reached at: a cell is pushed
// again only when reached strictly shallower. This keeps the search
// finite on a cyclic grid and makes it complete within the limit, so a
// target at distance ≤ limit is always found.
type limited struct {
	walker
	limit     int
	stack     *stack.Stack[int]
	bestDepth map[gridgraph.Cell]int
	cutoff    bool // some node at the limit had an unexplored neighbor
}

func newLimited(v Variant, g Grid, start, target gridgraph.Cell, limit int, o Options) *limited {
	s := &limited{
		walker: newWalker(v, g, start, target, o),
		limit:  limit,
	}
	s.restart()
	return s
}

// restart discards every piece of iteration state and seeds the start node.
func (s *limited) restart() {
	s.nodes.reset()
	s.seeds = s.seeds[:0]
	s.stack = stack.New[int]()
	s.bestDepth = make(map[gridgraph.Cell]int, s.grid.Size())
	s.cutoff = false
	s.bestDepth[s.start] = 0
	s.stack.Push(s.root(s.start, Forward))
}

func (s *limited) DepthLimit() int { return s.limit }

// advance performs one live pop. It reports false when the stack has
// emptied without finding the target; the caller decides between
// Exhausted and another iteration.
func (s *limited) advance() (events []Event, live bool) {
	for s.stack.Size() > 0 {
		idx := s.stack.Pop()
		n := s.nodes.at(idx)
		if n.Depth > s.bestDepth[n.Cell] || s.grid.Blocked(n.Cell) {
			s.discard(idx)
			continue
		}

		s.expand(idx)
		if n.Cell == s.target {
			return s.found(s.nodes.chain(idx)), true
		}
		kids := s.children(idx)
		for i := len(kids) - 1; i >= 0; i-- {
			kid := kids[i]
			if d, seen := s.bestDepth[kid.Cell]; seen && d <= kid.Depth {
				continue
			}
			if n.Depth >= s.limit {
				s.cutoff = true
				continue
			}
			s.bestDepth[kid.Cell] = kid.Depth
			s.stack.Push(s.push(kid))
		}
		return s.flush(), true
	}
	return nil, false
}

// dls is DLS proper: one depth-limited pass. It returns Exhausted when the
// target lies beyond the limit even if it is reachable, by construction.
type dls struct {
	*limited
}

// Step performs one live pop of the bounded search.
func (s dls) Step() []Event {
	if !s.begin() {
		return s.terminal()
	}
	if events, live := s.advance(); live {
		return events
	}
	return s.exhaust()
}
