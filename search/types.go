// Package search defines the strategy variants, step events, options and
// sentinel errors for the stepwise grid searches of
// github.com/katalvlaran/pathviz.
package search

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/pathviz/gridgraph"
)

// Sentinel errors for strategy construction.
var (
	// ErrNilGrid is returned if a nil grid is passed to New.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrUnknownVariant is returned for a Variant outside the six supported ones.
	ErrUnknownVariant = errors.New("search: unknown variant")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Variant selects one of the six uninformed search strategies.
type Variant int

const (
	// BFS expands shallowest-first from a FIFO frontier.
	BFS Variant = iota
	// DFS expands deepest-first from a LIFO frontier.
	DFS
	// UCS expands cheapest-first by accumulated g-cost.
	UCS
	// DLS is DFS bounded by a fixed depth limit.
	DLS
	// IDDFS repeats DLS with limits 0, 1, 2, … up to a cap.
	IDDFS
	// Bidirectional runs two BFS frontiers, from Start and from Target.
	Bidirectional
)

var variantNames = []string{"BFS", "DFS", "UCS", "DLS", "IDDFS", "Bidirectional"}

// Variants returns every supported Variant in display order.
func Variants() []Variant {
	return []Variant{BFS, DFS, UCS, DLS, IDDFS, Bidirectional}
}

// String returns the display name, e.g. "IDDFS".
func (v Variant) String() string {
	if v < 0 || int(v) >= len(variantNames) {
		return fmt.Sprintf("Variant(%d)", int(v))
	}
	return variantNames[v]
}

// Valid reports whether v is one of the six supported variants.
func (v Variant) Valid() bool {
	return v >= BFS && v <= Bidirectional
}

// ParseVariant maps a case-insensitive display name to its Variant.
func ParseVariant(name string) (Variant, error) {
	i := slices.IndexFunc(variantNames, func(n string) bool { return strings.EqualFold(n, name) })
	if i < 0 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
	}
	return Variant(i), nil
}

// Side tells which frontier a node belongs to. Only Bidirectional uses Backward.
type Side int

const (
	// Forward nodes are rooted at Start.
	Forward Side = iota
	// Backward nodes are rooted at Target.
	Backward
)

// EventKind classifies a step event.
type EventKind int

const (
	// Expanded: a node was popped from the frontier and examined.
	Expanded EventKind = iota
	// Frontiered: a node was pushed to the frontier.
	Frontiered
	// Discarded: a stale frontier entry (closed, superseded, or now blocked)
	// was popped and dropped without expansion.
	Discarded
	// Deepened: IDDFS finished an iteration and restarted with Limit.
	Deepened
	// Found is terminal: Path holds the Start→Target route.
	Found
	// Exhausted is terminal: the frontier emptied without reaching Target.
	Exhausted
)

// String returns the lower-case event name.
func (k EventKind) String() string {
	switch k {
	case Expanded:
		return "expanded"
	case Frontiered:
		return "frontiered"
	case Discarded:
		return "discarded"
	case Deepened:
		return "deepened"
	case Found:
		return "found"
	case Exhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Terminal reports whether k ends the sequence.
func (k EventKind) Terminal() bool {
	return k == Found || k == Exhausted
}

// Node is one entry of a strategy's node table.
// Parent is the table index of the predecessor (-1 for a root); it is a
// back-reference only and never leaves the strategy that issued it.
type Node struct {
	Cell   gridgraph.Cell
	Cost   float64 // g-cost: 1 per orthogonal, √2 per diagonal step
	Depth  int     // edges from the root
	Parent int
	Side   Side
}

// Event is one observable change produced by Strategy.Step.
//
//	Expanded, Frontiered, Discarded: Node is set.
//	Deepened:                        Limit is the new depth limit.
//	Found:                           Path is set.
type Event struct {
	Kind  EventKind
	Node  Node
	Path  Path
	Limit int
}

// Path is an ordered Start→Target sequence of cells and its total cost.
type Path struct {
	Cells []gridgraph.Cell
	Cost  float64
}

// Len returns the number of moves (edges) in the path; 0 for an empty path.
func (p Path) Len() int {
	if len(p.Cells) == 0 {
		return 0
	}
	return len(p.Cells) - 1
}

// Contains reports whether the path traverses pos.
func (p Path) Contains(pos gridgraph.Cell) bool {
	return slices.Contains(p.Cells, pos)
}

// Grid is the read-only view of the grid that strategies consume.
// *gridgraph.GridGraph satisfies it.
type Grid interface {
	Neighbors(pos gridgraph.Cell) []gridgraph.Cell
	Blocked(pos gridgraph.Cell) bool
	Size() int
}

// Strategy is a lazy, stepwise search from Start to Target.
//
// Each Step performs exactly one live frontier pop and expansion (stale
// entries popped on the way are reported as Discarded), or one IDDFS
// restart, and returns the events it produced in order. The final event
// of the sequence is Found or Exhausted; once Done, Step keeps returning
// that terminal event.
type Strategy interface {
	// Variant reports which algorithm drives the strategy.
	Variant() Variant
	// Seeds returns the nodes placed on the frontier at construction.
	Seeds() []Node
	// Step advances the search by one unit of work.
	Step() []Event
	// Done reports whether a terminal event has been produced.
	Done() bool
	// DepthLimit reports the depth limit currently in force
	// (DLS: fixed, IDDFS: current iteration, others: -1).
	DepthLimit() int
}
