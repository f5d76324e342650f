package search

import "github.com/katalvlaran/gridlab/grid"

// TracePath walks parent links from end back to start and returns the cells
// in between, ordered end-first: the end itself is included, the start is
// not. ok is false when end was never reached or the chain is broken
// (a missing link, an out-of-range index, or a loop). When start == end the
// trace is empty and ok is true.
//
// Complexity: O(len(path)).
func TracePath(parent []int, start, end int) (cells []int, ok bool) {
	if end < 0 || end >= len(parent) {
		return nil, false
	}
	if end == start {
		return nil, true
	}
	if parent[end] == noParent {
		return nil, false
	}
	for cur := end; cur != start; cur = parent[cur] {
		if cur < 0 || cur >= len(parent) || len(cells) >= len(parent) {
			return nil, false
		}
		cells = append(cells, cur)
	}
	return cells, true
}

// ReconstructPath marks the route recorded in parent on g and returns its
// length in edges. The end cell keeps its own marker; every other cell on
// the chain gets grid.MarkPath.
//
// Returns 0 without touching g when end is unreachable or the chain is
// broken.
func ReconstructPath(g *grid.Grid, parent []int, start, end int) uint32 {
	cells, ok := TracePath(parent, start, end)
	if !ok {
		return 0
	}
	for _, idx := range cells {
		if idx != end {
			g.MarkPath(idx)
		}
	}
	return uint32(len(cells))
}

// PathCost sums the terrain cost of every cell entered along the route the
// last run marked on g: each path cell plus the end. It is 0 when st
// reports no path.
func PathCost(g *grid.Grid, st Stats) uint32 {
	if !st.PathFound {
		return 0
	}
	var total uint32
	for _, c := range g.Cells() {
		if c.IsPath() || c.IsEnd() {
			total += uint32(c.Cost())
		}
	}
	return total
}
