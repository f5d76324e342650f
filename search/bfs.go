package search

import "github.com/katalvlaran/gridlab/grid"

// BFS runs breadth-first search from the start cell to the end cell.
//
// Steps:
//  1. Seed the queue with start and mark it seen.
//  2. Pop the front, count it, stop if it is the end.
//  3. Mark it visited (start excepted) and enqueue every unseen neighbour,
//     recording its parent. A cell is enqueued at most once.
//
// Terrain cost is ignored: the path is shortest by edge count only.
// Complexity: O(W×H) time and memory.
func BFS(g *grid.Grid) Stats {
	r, ok := newRunner(g)
	if !ok {
		return Stats{}
	}

	seen := make([]bool, g.Size())
	queue := make([]int, 0, g.Size())
	queue = append(queue, r.start)
	seen[r.start] = true

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		r.nodes++
		if cur == r.end {
			break
		}
		g.MarkVisited(cur)
		for _, n := range r.neighbors(cur) {
			if seen[n] {
				continue
			}
			seen[n] = true
			r.parent[n] = cur
			queue = append(queue, n)
		}
	}

	return r.finish()
}
