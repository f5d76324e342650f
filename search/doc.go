// Package search runs the four grid path-finding algorithms of gridlab
// against a *grid.Grid and reports what they did as a Stats value.
//
// What:
//
//   - BFS: FIFO queue, enqueue-once; shortest path by edge count, terrain ignored.
//   - DFS: LIFO stack with lazy visited check; finds a path, not the shortest.
//   - Dijkstra: min-heap on accumulated terrain cost with lazy deletion.
//   - AStar: Dijkstra keyed by g+h, h = Manhattan distance to the goal.
//
// Every algorithm locates the start and end cells by scanning the grid,
// marks each expanded cell except the start as visited, stops when the end
// is popped, and hands its parent map to ReconstructPath, which marks the
// route and returns its edge count.
//
// Contract shared by all four:
//
//   - Missing start or end ⇒ zero Stats, grid untouched.
//   - start == end ⇒ NodesExplored ≥ 1, PathLength == 0, PathFound == false.
//   - NodesExplored counts pops that survive the stale (Dijkstra, AStar) or
//     visited (DFS) check; BFS never enqueues a cell twice.
//   - Algorithms do not clear earlier marks; callers run
//     (*grid.Grid).ResetSearchState first when re-running on one grid.
//   - Stats.ExecutionMS is left at zero. Timing belongs to the caller.
//
// Tie-breaking:
//
//   - BFS and DFS follow grid.Neighbors order (up, down, left, right).
//   - Dijkstra pops by (cost, index); AStar by (f, h, index). Both are fully
//     deterministic, so node counts are reproducible across runs.
//   - AStar's lower-h preference on equal f is deliberate: among equally
//     promising cells it expands the one nearer the goal, so on open
//     boards it walks straight to the end (9 pops on an open 5×5 corner
//     to corner) instead of fanning out by index.
//
// Complexity (N = W×H):
//
//   - BFS, DFS: O(N) time and memory.
//   - Dijkstra, AStar: O(N log N) time, O(N) memory (lazy heap holds ≤ 4N entries).
package search
