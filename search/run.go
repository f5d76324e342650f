package search

import (
	"fmt"

	"github.com/katalvlaran/gridlab/grid"
)

// Run dispatches to the algorithm named by algo.
// Returns ErrUnknownAlgorithm for values outside Algorithms().
func Run(g *grid.Grid, algo Algorithm) (Stats, error) {
	switch algo {
	case AlgBFS:
		return BFS(g), nil
	case AlgDFS:
		return DFS(g), nil
	case AlgDijkstra:
		return Dijkstra(g), nil
	case AlgAStar:
		return AStar(g), nil
	}
	return Stats{}, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(algo))
}

// runner holds the state every algorithm shares for one execution.
type runner struct {
	g          *grid.Grid
	start, end int
	parent     []int
	nodes      uint32
	nbuf       []int // neighbour scratch, reused per expansion
}

// newRunner locates the endpoints; ok is false when either is missing,
// in which case the caller must return zero Stats.
func newRunner(g *grid.Grid) (*runner, bool) {
	if g == nil {
		return nil, false
	}
	start, ok := g.Start()
	if !ok {
		return nil, false
	}
	end, ok := g.End()
	if !ok {
		return nil, false
	}
	parent := make([]int, g.Size())
	for i := range parent {
		parent[i] = noParent
	}

	return &runner{
		g:      g,
		start:  start,
		end:    end,
		parent: parent,
		nbuf:   make([]int, 0, 4),
	}, true
}

// neighbors returns the open neighbours of idx in grid order. The slice is
// only valid until the next call.
func (r *runner) neighbors(idx int) []int {
	r.nbuf = r.g.AppendNeighbors(r.nbuf[:0], idx)
	return r.nbuf
}

// finish reconstructs the path and assembles the Stats.
func (r *runner) finish() Stats {
	length := ReconstructPath(r.g, r.parent, r.start, r.end)
	return Stats{
		NodesExplored: r.nodes,
		PathLength:    length,
		PathFound:     length > 0,
	}
}
