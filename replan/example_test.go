// File: replan/example_test.go
package replan_test

import (
	"fmt"

	"github.com/katalvlaran/pathviz/gridgraph"
	"github.com/katalvlaran/pathviz/replan"
	"github.com/katalvlaran/pathviz/search"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Replanning
////////////////////////////////////////////////////////////////////////////////

// ExampleController shows a found path being invalidated by an obstacle
// and recomputed from scratch.
func ExampleController() {
	gg, _ := gridgraph.From2D([]string{
		"S..",
		"...",
		"..T",
	}, gridgraph.Conn8)

	c, _ := replan.New(gg, replan.WithOnReplan(func(ev replan.ReplanEvent) {
		fmt.Println("replan", ev.Count, "after obstacle at", ev.Obstacle)
	}))
	_ = c.Dispatch(replan.SelectStrategy(search.UCS))
	_ = c.Dispatch(replan.Run())
	_ = c.Finish()
	fmt.Println(c.Path())

	_, _ = gg.SpawnObstacle(gridgraph.Cell{Row: 1, Col: 1})
	fmt.Println(c.Engine().State())
	_ = c.Finish()
	fmt.Println(c.Path())

	// Output:
	// [(0,0) (1,1) (2,2)]
	// replan 1 after obstacle at (1,1)
	// running
	// [(0,0) (0,1) (1,2) (2,2)]
}
