package search

import (
	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/pathviz/gridgraph"
)

// costEpsilon absorbs floating-point noise when comparing g-costs built
// from sums of 1 and √2.
const costEpsilon = 1e-9

// ucsItem is a heap entry. seq is the insertion counter used for ties.
type ucsItem struct {
	idx  int
	cost float64
	seq  int
}

func ucsLess(a, b ucsItem) bool {
	if d := a.cost - b.cost; d < -costEpsilon || d > costEpsilon {
		return a.cost < b.cost
	}
	return a.seq < b.seq
}

// ucs expands cheapest-first by g-cost, ties broken by insertion order.
// It uses a lazy decrease-key: an improved cost pushes a new entry and the
// superseded one is discarded when popped.
type ucs struct {
	walker
	heap   *heap.Heap[ucsItem]
	best   map[gridgraph.Cell]float64
	closed mapset.Set[gridgraph.Cell]
	seq    int
}

func newUCS(g Grid, start, target gridgraph.Cell, o Options) *ucs {
	s := &ucs{
		walker: newWalker(UCS, g, start, target, o),
		heap:   heap.New[ucsItem](ucsLess),
		best:   make(map[gridgraph.Cell]float64, g.Size()),
		closed: mapset.New[gridgraph.Cell](),
	}
	s.best[start] = 0
	s.enqueue(s.root(start, Forward), 0)
	return s
}

func (s *ucs) enqueue(idx int, cost float64) {
	s.heap.Push(ucsItem{idx: idx, cost: cost, seq: s.seq})
	s.seq++
}

// Step pops the cheapest live node and relaxes its neighbors.
func (s *ucs) Step() []Event {
	if !s.begin() {
		return s.terminal()
	}
	for {
		item, ok := s.heap.Pop()
		if !ok {
			return s.exhaust()
		}
		n := s.nodes.at(item.idx)
		if s.closed.Has(n.Cell) || s.grid.Blocked(n.Cell) || item.cost > s.best[n.Cell]+costEpsilon {
			s.discard(item.idx)
			continue
		}

		s.closed.Put(n.Cell)
		s.expand(item.idx)
		if n.Cell == s.target {
			return s.found(s.nodes.chain(item.idx))
		}
		for _, child := range s.children(item.idx) {
			if s.closed.Has(child.Cell) {
				continue
			}
			if old, seen := s.best[child.Cell]; seen && child.Cost >= old-costEpsilon {
				continue
			}
			s.best[child.Cell] = child.Cost
			s.enqueue(s.push(child), child.Cost)
		}
		return s.flush()
	}
}
