package search

import "github.com/katalvlaran/gridlab/grid"

// DFS runs an iterative depth-first search from the start cell.
//
// Neighbours are pushed in grid order (up, down, left, right), so the last
// pushed (right) is explored first. A cell may sit on the stack several
// times; pops of an already visited cell are skipped and not counted. The
// parent of a cell is whoever pushed it last, which is always the entry
// that gets popped first, so the parent chain stays consistent.
//
// The result is a path, not necessarily a shortest one, and terrain cost
// is ignored.
// Complexity: O(W×H) time; the stack holds at most 4×W×H entries.
func DFS(g *grid.Grid) Stats {
	r, ok := newRunner(g)
	if !ok {
		return Stats{}
	}

	visited := make([]bool, g.Size())
	stack := []int{r.start}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[cur] {
			continue
		}
		visited[cur] = true
		r.nodes++
		if cur == r.end {
			break
		}
		g.MarkVisited(cur)
		for _, n := range r.neighbors(cur) {
			if !visited[n] {
				r.parent[n] = cur
				stack = append(stack, n)
			}
		}
	}

	return r.finish()
}
