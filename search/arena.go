package search

import (
	"slices"

	"github.com/katalvlaran/pathviz/gridgraph"
)

// arena is the flat node table every strategy writes into.
// Parent links are indices into nodes, so paths are rebuilt without pointers.
type arena struct {
	nodes []Node
}

func (a *arena) add(n Node) int {
	a.nodes = append(a.nodes, n)
	return len(a.nodes) - 1
}

func (a *arena) at(idx int) Node {
	return a.nodes[idx]
}

// chain returns the cells from the root of idx down to idx.
func (a *arena) chain(idx int) []gridgraph.Cell {
	var cells []gridgraph.Cell
	for at := idx; at >= 0; at = a.nodes[at].Parent {
		cells = append(cells, a.nodes[at].Cell)
	}
	slices.Reverse(cells)
	return cells
}

func (a *arena) reset() {
	a.nodes = a.nodes[:0]
}

// walker holds the state shared by all six strategies: the grid view,
// options, node table, the per-step event buffer, and the terminal event.
type walker struct {
	variant Variant
	grid    Grid
	opts    Options
	start   gridgraph.Cell
	target  gridgraph.Cell
	nodes   arena
	seeds   []Node
	events  []Event
	final   *Event
}

func newWalker(v Variant, g Grid, start, target gridgraph.Cell, opts Options) walker {
	return walker{
		variant: v,
		grid:    g,
		opts:    opts,
		start:   start,
		target:  target,
		nodes:   arena{nodes: make([]Node, 0, g.Size())},
	}
}

func (w *walker) Variant() Variant { return w.variant }

func (w *walker) Seeds() []Node { return slices.Clone(w.seeds) }

func (w *walker) Done() bool { return w.final != nil }

func (w *walker) DepthLimit() int { return -1 }

// root adds a seed node and returns its index.
func (w *walker) root(pos gridgraph.Cell, side Side) int {
	n := Node{Cell: pos, Parent: -1, Side: side}
	idx := w.nodes.add(n)
	w.seeds = append(w.seeds, n)
	w.opts.OnFrontier(n)
	return idx
}

// begin clears the event buffer; it reports false if the search is over.
func (w *walker) begin() bool {
	w.events = w.events[:0]
	return w.final == nil
}

// flush hands the buffered events to the caller.
func (w *walker) flush() []Event {
	return slices.Clone(w.events)
}

// terminal returns the terminal event again after the search is over.
func (w *walker) terminal() []Event {
	return []Event{*w.final}
}

// children is the shared "expand one node" primitive: it turns the grid's
// passable neighbors of idx into candidate nodes carrying depth, g-cost
// and parent. Adjacency and the diagonal-squeeze rule come from the grid;
// the cost rule comes from gridgraph.MoveCost.
func (w *walker) children(idx int) []Node {
	parent := w.nodes.at(idx)
	nbrs := w.grid.Neighbors(parent.Cell)
	out := make([]Node, 0, len(nbrs))
	for _, c := range nbrs {
		out = append(out, Node{
			Cell:   c,
			Cost:   parent.Cost + gridgraph.MoveCost(parent.Cell, c),
			Depth:  parent.Depth + 1,
			Parent: idx,
			Side:   parent.Side,
		})
	}
	return out
}

// expand records that idx was popped and examined.
func (w *walker) expand(idx int) {
	n := w.nodes.at(idx)
	w.opts.OnExpand(n)
	w.events = append(w.events, Event{Kind: Expanded, Node: n})
}

// push adds n to the node table, records the frontier event and returns its index.
func (w *walker) push(n Node) int {
	idx := w.nodes.add(n)
	w.opts.OnFrontier(n)
	w.events = append(w.events, Event{Kind: Frontiered, Node: n})
	return idx
}

// discard records that a stale entry left the frontier unexpanded.
func (w *walker) discard(idx int) {
	w.events = append(w.events, Event{Kind: Discarded, Node: w.nodes.at(idx)})
}

// found terminates the search with the given cell sequence.
func (w *walker) found(cells []gridgraph.Cell) []Event {
	w.final = &Event{Kind: Found, Path: Path{Cells: cells, Cost: gridgraph.PathCost(cells)}}
	w.events = append(w.events, *w.final)
	return w.flush()
}

// exhaust terminates the search without a path.
func (w *walker) exhaust() []Event {
	w.final = &Event{Kind: Exhausted}
	w.events = append(w.events, *w.final)
	return w.flush()
}
