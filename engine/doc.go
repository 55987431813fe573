// Package engine is the stepper that drives a search.Strategy one unit of
// work at a time and exposes a side-effect-free Snapshot of its progress.
//
// Lifecycle
//
//	Idle ──Start──▶ Running ──Found──▶ Succeeded
//	                   │
//	                   └──Exhausted──▶ Failed
//	any ──Reset──▶ Idle        any ──Start──▶ (Idle) ──▶ Running
//
// Start validates the endpoints (in bounds, not blocked, distinct), builds
// the strategy and seeds the frontier view. Step pulls exactly one Strategy
// step and applies its events to the view:
//
//   - Frontiered adds the cell to the frontier of its side.
//   - Expanded moves it to visited and makes it the current cell.
//   - Discarded removes a stale entry from the frontier.
//   - Deepened (IDDFS) empties both sets; the new iteration starts fresh.
//   - Found materializes the path and enters Succeeded.
//   - Exhausted enters Failed.
//
// Render draws a Snapshot over a grid as ASCII, one glyph per cell.
//
// Errors
//
//   - ErrNilGrid          Start with a nil grid.
//   - ErrInvalidEndpoints Start with an out-of-bounds, blocked, or shared endpoint.
//   - ErrNotRunning       Step outside Running.
package engine
