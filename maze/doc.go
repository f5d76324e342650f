// Package maze carves perfect mazes into a *grid.Grid.
//
// What:
//
//   - Backtracker: randomized depth-first carving with an explicit stack.
//     Long winding corridors, few branches.
//   - Prims: randomized Prim's growth over a frontier of (wall, cell) pairs.
//     Many short dead ends, even branching.
//
// Both generators work on the odd-coordinate lattice. A maze neighbour of
// (r,c) is the cell two steps away in one of the four directions; the cell
// in between is the wall that gets knocked down. Carving always starts at
// (1,1), so corridors are one cell wide and walls one cell thick.
//
// Each generator resets the grid itself: every cell becomes a wall (cost 0,
// no role, no marks) before carving starts. Callers re-place start and end
// afterwards, typically on lattice cells (see IsLatticeCell).
//
// Randomness:
//
//	The only random input is a uniform index over [0, n), supplied through
//	the Source interface. NewSource(seed) wraps math/rand with a fixed seed
//	so the same seed always yields the same maze.
//
// Errors:
//
//   - ErrGridTooSmall: width or height below 3 (no room for (1,1)).
//   - ErrNilGrid, ErrNilSource: a generator got a nil grid or source.
//   - ErrUnknownGenerator: Generate or ParseGenerator got an unknown name.
//
// Complexity: O(W×H) time and memory for both generators, plus the
// frontier's order-preserving removal in Prims, O(F) per pick.
package maze
