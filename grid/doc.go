// Package grid models the paintable 2-D board that every search and maze
// generator in gridlab operates on.
//
// What:
//
//   - Grid is a dense width×height array of Cell values addressed by
//     index = row*width + col.
//   - A Cell composes three independent variants instead of loose flags:
//     Kind (open/wall), Role (start/end bitset) and Mark (visited/path).
//   - Terrain cost lives on the cell: 1 normal, 3 mud, 5 water, 0 wall.
//     The invariant cost == 0 ⇔ wall holds after every mutation.
//   - Neighbors returns the in-bounds, non-wall orthogonal neighbours of a
//     cell in the fixed order up, down, left, right.
//
// Lifecycle:
//
//   - New allocates all cells open with cost 1.
//   - SetWall, SetTerrain, SetStart, SetEnd mutate in place.
//   - ResetSearchState clears marks only; ResetAll restores defaults.
//
// Errors:
//
//   - ErrEmptyGrid: non-positive dimensions or empty text input.
//   - ErrIndexOutOfRange: any mutator given an index outside [0, Size()).
//     Nothing is mutated when this is returned.
//   - ErrInvalidCost: terrain cost other than CostNormal, CostMud, CostWater.
//   - ErrNonRectangular, ErrUnknownSymbol: Parse input problems.
//
// Concurrency:
//
//   - A Grid is not safe for concurrent use. One search or generator at a
//     time owns it for the duration of a call.
//
// Complexity:
//
//   - SetStart/SetEnd/Start/End: O(W×H) (grid-wide scan).
//   - Neighbors: O(1). Everything else per-cell: O(1).
package grid
