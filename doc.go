// Package pathviz is a headless engine for watching uninformed searches
// unfold on a 2D grid, and for keeping a found route alive while obstacles
// appear.
//
// What is inside?
//
//	gridgraph/ — the W×H cell grid: walls, Start/Target roles, dynamic
//	             obstacles, 8-way neighbors with the diagonal-squeeze rule,
//	             mutation events and maze presets
//	search/    — BFS, DFS, UCS, DLS, IDDFS and Bidirectional as lazy,
//	             one-expansion-per-Step strategies over a shared node table
//	engine/    — the Idle/Running/Succeeded/Failed stepper with a
//	             side-effect-free Snapshot and an ASCII Render
//	replan/    — the Controller that re-runs a search when an obstacle lands
//	             on the path, driver commands, and a random obstacle Spawner
//
// Quick ASCII example (BFS, after the run):
//
//	S*-      S start    T target   # wall
//	-#*      * path     - visited  + frontier
//	--T
//
// Everything is single-threaded and step-driven: the caller decides when to
// Step, when to spawn an obstacle and when to draw. A snapshot never
// changes engine state.
//
//	go get github.com/katalvlaran/pathviz
package pathviz
