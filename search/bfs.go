package search

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"github.com/katalvlaran/pathviz/gridgraph"
)

// bfs expands shallowest-first. Cells are marked discovered on push,
// so every cell enters the queue at most once and its parent is fixed
// by the first (shallowest) discovery.
type bfs struct {
	walker
	queue      *queue.Queue[int]
	discovered mapset.Set[gridgraph.Cell]
}

func newBFS(g Grid, start, target gridgraph.Cell, o Options) *bfs {
	s := &bfs{
		walker:     newWalker(BFS, g, start, target, o),
		queue:      queue.New[int](),
		discovered: mapset.New[gridgraph.Cell](),
	}
	s.discovered.Put(start)
	s.queue.Enqueue(s.root(start, Forward))
	return s
}

// Step pops one live node, checks for the target, and enqueues its
// undiscovered neighbors in scan order.
func (s *bfs) Step() []Event {
	if !s.begin() {
		return s.terminal()
	}
	for {
		if s.queue.Empty() {
			return s.exhaust()
		}
		idx := s.queue.Dequeue()
		n := s.nodes.at(idx)
		if s.grid.Blocked(n.Cell) {
			s.discard(idx)
			continue
		}

		s.expand(idx)
		if n.Cell == s.target {
			return s.found(s.nodes.chain(idx))
		}
		for _, child := range s.children(idx) {
			if s.discovered.Has(child.Cell) {
				continue
			}
			s.discovered.Put(child.Cell)
			s.queue.Enqueue(s.push(child))
		}
		return s.flush()
	}
}
