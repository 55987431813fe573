// Package replan keeps a search alive while dynamic obstacles appear.
//
// A Controller owns a gridgraph.GridGraph and an engine.Engine and
// subscribes to the grid's events:
//
//   - ObstacleSpawned or WallSet on a cell of the path of a Succeeded run:
//     the path is invalidated and the same strategy is started again, from
//     scratch. The engine is Running again before the grid call returns.
//     If the new search cannot start, the engine is reset to Idle.
//   - ObstacleSpawned or WallSet while Running: ignored; the strategy drops
//     stale frontier entries when it pops them, and Neighbors no longer
//     yields the cell. A cell blocked after it was expanded can still end
//     up on the found path, so Controller.Step and Controller.Finish check
//     every found path and replan one that crosses a blocked cell.
//   - ObstacleSpawned while Idle or Failed: ignored.
//   - Any change to Start or Target, or a grid Reset: the search is cleared.
//
// Replanning is always a full re-search. By default it restarts from the
// original Start. WithResumeFromCurrent(true) restarts from the agent's
// position instead (see Controller.Advance), falling back to Start when
// that cell has itself become blocked.
//
// Dispatch maps the driver's input commands (SetStart, SetTarget,
// ToggleWall, SelectStrategy, Run, Reset, Clear, Quit) onto the grid and
// engine. Spawner places random obstacles, optionally biased toward the
// current path.
package replan
