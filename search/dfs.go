package search

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/stack"

	"github.com/katalvlaran/pathviz/gridgraph"
)

// dfs expands deepest-first. The closed set is filled on pop, and the
// same cell may sit on the stack more than once; stale copies are
// discarded when popped. That closed set is what stops the search from
// cycling on the grid.
type dfs struct {
	walker
	stack  *stack.Stack[int]
	closed mapset.Set[gridgraph.Cell]
}

func newDFS(g Grid, start, target gridgraph.Cell, o Options) *dfs {
	s := &dfs{
		walker: newWalker(DFS, g, start, target, o),
		stack:  stack.New[int](),
		closed: mapset.New[gridgraph.Cell](),
	}
	s.stack.Push(s.root(start, Forward))
	return s
}

// Step pops one live node and pushes its unclosed neighbors in reverse
// scan order, so the first neighbor in scan order is explored next.
func (s *dfs) Step() []Event {
	if !s.begin() {
		return s.terminal()
	}
	for {
		if s.stack.Size() == 0 {
			return s.exhaust()
		}
		idx := s.stack.Pop()
		n := s.nodes.at(idx)
		if s.closed.Has(n.Cell) || s.grid.Blocked(n.Cell) {
			s.discard(idx)
			continue
		}

		s.closed.Put(n.Cell)
		s.expand(idx)
		if n.Cell == s.target {
			return s.found(s.nodes.chain(idx))
		}
		kids := s.children(idx)
		for i := len(kids) - 1; i >= 0; i-- {
			if s.closed.Has(kids[i].Cell) {
				continue
			}
			s.stack.Push(s.push(kids[i]))
		}
		return s.flush()
	}
}
