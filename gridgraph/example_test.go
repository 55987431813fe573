// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/pathviz/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Neighbors
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph_Neighbors demonstrates the diagonal-squeeze rule.
// Scenario:
//
//   - Walls at (0,1) and (1,0) form an "L" around the Start corner.
//   - The diagonal (1,1) is flanked by two walls, so it is excluded.
//   - Removing one wall re-opens both that cell and the diagonal.
func ExampleGridGraph_Neighbors() {
	gg, _ := gridgraph.From2D([]string{
		"S#.",
		"#..",
		"..T",
	}, gridgraph.Conn8)

	s, _ := gg.StartCell()
	fmt.Println("walled:", gg.Neighbors(s))

	_ = gg.ToggleWall(gridgraph.Cell{Row: 0, Col: 1})
	fmt.Println("opened:", gg.Neighbors(s))

	// Output:
	// walled: []
	// opened: [(0,1) (1,1)]
}

////////////////////////////////////////////////////////////////////////////////
// Example: Subscribe
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph_Subscribe shows the synchronous obstacle event feed.
func ExampleGridGraph_Subscribe() {
	gg, _ := gridgraph.NewGridGraph(4, 4, gridgraph.DefaultGridOptions())
	cancel := gg.Subscribe(func(ev gridgraph.Event) {
		if ev.Kind == gridgraph.EventObstacleSpawned {
			fmt.Println("obstacle at", ev.Cell)
		}
	})
	defer cancel()

	_, _ = gg.SpawnObstacle(gridgraph.Cell{Row: 2, Col: 3})
	_, _ = gg.SpawnObstacle(gridgraph.Cell{Row: 2, Col: 3}) // already an obstacle

	// Output:
	// obstacle at (2,3)
}
