package search

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAlgorithm is returned by Run and ParseAlgorithm for a value
// outside the four supported algorithms.
var ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

// noParent fills parent maps for cells that were never reached.
const noParent = -1

// infinity is the distance of a cell no relaxation has reached.
const infinity = ^uint32(0)

// Stats is the outcome of one search run.
type Stats struct {
	// NodesExplored counts expansion pops, including the goal's.
	NodesExplored uint32
	// PathLength is the edge count from start to end; 0 if unreachable.
	PathLength uint32
	// ExecutionMS is wall-clock duration, filled in by the caller.
	ExecutionMS float64
	// PathFound is PathLength > 0.
	PathFound bool
}

// Algorithm selects one of the search strategies.
type Algorithm int

const (
	// AlgBFS is breadth-first search.
	AlgBFS Algorithm = iota
	// AlgDFS is depth-first search.
	AlgDFS
	// AlgDijkstra is Dijkstra's least-cost search.
	AlgDijkstra
	// AlgAStar is A* with the Manhattan heuristic.
	AlgAStar
)

// Algorithms lists every supported algorithm in display order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgBFS, AlgDFS, AlgDijkstra, AlgAStar}
}

// String returns the short lowercase name used by the CLI and logs.
func (a Algorithm) String() string {
	switch a {
	case AlgBFS:
		return "bfs"
	case AlgDFS:
		return "dfs"
	case AlgDijkstra:
		return "dijkstra"
	case AlgAStar:
		return "astar"
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm accepts the names produced by String (case-insensitive)
// plus "a*" for AlgAStar.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bfs":
		return AlgBFS, nil
	case "dfs":
		return AlgDFS, nil
	case "dijkstra":
		return AlgDijkstra, nil
	case "astar", "a*":
		return AlgAStar, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}
