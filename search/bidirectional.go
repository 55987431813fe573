package search

import (
	"slices"

	"github.com/zyedidia/generic/queue"

	"github.com/katalvlaran/pathviz/gridgraph"
)

// frontier is one side of the bidirectional search: a BFS queue plus the
// node index of every cell that side has discovered.
type frontier struct {
	queue      *queue.Queue[int]
	size       int
	discovered map[gridgraph.Cell]int
}

func newFrontier(n int) *frontier {
	return &frontier{queue: queue.New[int](), discovered: make(map[gridgraph.Cell]int, n)}
}

func (f *frontier) enqueue(idx int, pos gridgraph.Cell) {
	f.discovered[pos] = idx
	f.queue.Enqueue(idx)
	f.size++
}

func (f *frontier) dequeue() int {
	f.size--
	return f.queue.Dequeue()
}

// bidirectional runs two BFS frontiers, rooted at Start and Target, and
// alternates between them one whole layer at a time: the layer length is
// the queue size when the side takes its turn. One Step pops a single node
// of the active layer. The sides meet when a popped node has already been
// discovered by the other side.
type bidirectional struct {
	walker
	sides     [2]*frontier
	side      Side
	layerLeft int
}

func newBidirectional(g Grid, start, target gridgraph.Cell, o Options) *bidirectional {
	s := &bidirectional{
		walker: newWalker(Bidirectional, g, start, target, o),
		sides:  [2]*frontier{newFrontier(g.Size()), newFrontier(g.Size())},
		side:   Forward,
	}
	s.sides[Forward].enqueue(s.root(start, Forward), start)
	s.sides[Backward].enqueue(s.root(target, Backward), target)
	s.layerLeft = 1
	return s
}

// Step pops one live node from the active side.
func (s *bidirectional) Step() []Event {
	if !s.begin() {
		return s.terminal()
	}
	for {
		if s.layerLeft == 0 {
			s.side = 1 - s.side
			s.layerLeft = s.sides[s.side].size
		}
		// Either side running dry means its whole component was explored
		// without touching the other: Start and Target are disconnected.
		if s.sides[Forward].size == 0 || s.sides[Backward].size == 0 {
			return s.exhaust()
		}

		own, other := s.sides[s.side], s.sides[1-s.side]
		idx := own.dequeue()
		s.layerLeft--
		n := s.nodes.at(idx)
		if s.grid.Blocked(n.Cell) {
			s.discard(idx)
			continue
		}

		s.expand(idx)
		if meet, ok := other.discovered[n.Cell]; ok {
			return s.found(s.stitch(idx, meet))
		}
		for _, child := range s.children(idx) {
			if _, seen := own.discovered[child.Cell]; seen {
				continue
			}
			own.enqueue(s.push(child), child.Cell)
		}
		return s.flush()
	}
}

// stitch joins the two half-paths at the meeting cell: Start→meet from the
// forward table, then meet→Target by reversing the backward chain.
func (s *bidirectional) stitch(a, b int) []gridgraph.Cell {
	fwd, bwd := a, b
	if s.nodes.at(a).Side == Backward {
		fwd, bwd = b, a
	}
	head := s.nodes.chain(fwd)
	tail := s.nodes.chain(bwd)
	slices.Reverse(tail)

	return append(head, tail[1:]...)
}
