package maze

import "github.com/katalvlaran/gridlab/grid"

// GeneratePrims carves a perfect maze with randomized Prim's algorithm.
//
// The frontier holds (wall, neighbour) pairs adjacent to the carved region.
// Each round removes a random entry, keeping the order of the rest. If the
// neighbour already joined the maze the entry is stale and dropped;
// otherwise wall and neighbour are carved and the neighbour's own maze
// neighbours outside the maze are appended.
//
// Complexity: O(W×H) cells carved; each pick costs O(F) for the
// order-preserving removal, F = frontier length.
func GeneratePrims(g *grid.Grid, src Source) error {
	if err := prepare(g, src); err != nil {
		return err
	}

	inMaze := make([]bool, g.Size())
	start := g.Index(1, 1)
	carve(g, start)
	inMaze[start] = true

	var frontier, steps []step
	grow := func(idx int) {
		steps = appendSteps(steps[:0], g, idx)
		for _, s := range steps {
			if !inMaze[s.cell] {
				frontier = append(frontier, s)
			}
		}
	}
	grow(start)

	for len(frontier) > 0 {
		pick := src.Intn(len(frontier))
		s := frontier[pick]
		frontier = append(frontier[:pick], frontier[pick+1:]...)
		if inMaze[s.cell] {
			continue
		}
		carve(g, s.wall)
		carve(g, s.cell)
		inMaze[s.cell] = true
		grow(s.cell)
	}
	return nil
}
