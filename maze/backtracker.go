package maze

import "github.com/katalvlaran/gridlab/grid"

// GenerateBacktracker carves a perfect maze by randomized depth-first
// search from (1,1).
//
// Steps:
//  1. Wall in the whole grid; carve (1,1), mark it visited, push it.
//  2. Look at the top of the stack and collect its unvisited maze
//     neighbours. None left: pop.
//  3. Otherwise pick one with src, carve the wall between and the
//     neighbour, mark it visited and push it.
//
// Complexity: O(W×H) time and memory.
func GenerateBacktracker(g *grid.Grid, src Source) error {
	if err := prepare(g, src); err != nil {
		return err
	}

	visited := make([]bool, g.Size())
	start := g.Index(1, 1)
	visited[start] = true
	carve(g, start)
	stack := []int{start}

	var steps, open []step
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		steps = appendSteps(steps[:0], g, cur)
		open = open[:0]
		for _, s := range steps {
			if !visited[s.cell] {
				open = append(open, s)
			}
		}
		if len(open) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		next := open[src.Intn(len(open))]
		carve(g, next.wall)
		carve(g, next.cell)
		visited[next.cell] = true
		stack = append(stack, next.cell)
	}
	return nil
}
