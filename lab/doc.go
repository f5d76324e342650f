// Package lab is the session layer of gridlab: one Session owns one Grid
// and the Stats of the last run, the way a front end would hold them.
//
// What:
//
//   - New places start at (1,1) and end at the bottom-right lattice cell.
//   - Paint applies an editing Tool (wall, erase, mud, water, start, end).
//   - Run clears earlier search marks, runs one algorithm, times it with the
//     injected clock and stores the Stats.
//   - GenerateMaze carves a maze and re-places the endpoints.
//   - Compare runs two algorithms back to back on the same board and keeps
//     a copy of each render buffer for side-by-side display.
//
// A Session is not safe for concurrent use; the grid is a single mutable
// resource and exactly one operation may touch it at a time.
//
// Logging goes through an injected *zap.Logger (zap.NewNop by default).
// Every entry carries the session id.
package lab
