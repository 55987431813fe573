// File: search/example_test.go
package search_test

import (
	"fmt"

	"github.com/katalvlaran/pathviz/gridgraph"
	"github.com/katalvlaran/pathviz/search"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Run
////////////////////////////////////////////////////////////////////////////////

// ExampleRun searches around a single wall with BFS.
// The diagonal (0,1)→(1,2) is legal because only one of its flanks is a wall.
func ExampleRun() {
	gg, _ := gridgraph.From2D([]string{
		"S..",
		".#.",
		"..T",
	}, gridgraph.Conn8)
	s, _ := gg.StartCell()
	t, _ := gg.TargetCell()

	st, _ := search.New(search.BFS, gg, s, t)
	path, found, _ := search.Run(st)

	fmt.Println(found, path.Cells)
	fmt.Printf("moves=%d cost=%.2f\n", path.Len(), path.Cost)

	// Output:
	// true [(0,0) (0,1) (1,2) (2,2)]
	// moves=3 cost=3.41
}

////////////////////////////////////////////////////////////////////////////////
// Example: Events
////////////////////////////////////////////////////////////////////////////////

// ExampleEvents follows IDDFS as it raises its depth limit.
func ExampleEvents() {
	gg, _ := gridgraph.From2D([]string{
		"S..",
		".#.",
		"..T",
	}, gridgraph.Conn8)
	s, _ := gg.StartCell()
	t, _ := gg.TargetCell()

	st, _ := search.New(search.IDDFS, gg, s, t)
	for ev := range search.Events(st) {
		switch ev.Kind {
		case search.Deepened:
			fmt.Println("deepened to", ev.Limit)
		case search.Found:
			fmt.Println("found in", ev.Path.Len(), "moves")
		}
	}

	// Output:
	// deepened to 1
	// deepened to 2
	// deepened to 3
	// found in 3 moves
}
