package search

import (
	"container/heap"

	"github.com/katalvlaran/gridlab/grid"
)

// AStar is Dijkstra guided by h = Manhattan distance to the end. With unit
// steps and costs ≥ 1, h never overestimates and is consistent, so the
// returned path is least-cost.
//
// Stale guard: the start entry is always accepted; any other popped entry
// whose f exceeds gcost[cell]+h(cell) has been superseded and is skipped
// without counting.
//
// Ties on f pop the entry closer to the goal (lower h), then the lowest
// index.
// Complexity: O(N log N) time, O(N) memory, N = W×H.
func AStar(g *grid.Grid) Stats {
	r, ok := newRunner(g)
	if !ok {
		return Stats{}
	}
	endRow, endCol := g.Coord(r.end)
	h := func(idx int) uint32 {
		row, col := g.Coord(idx)
		return absDiff(row, endRow) + absDiff(col, endCol)
	}

	gcost := make([]uint32, g.Size())
	for i := range gcost {
		gcost[i] = infinity
	}
	gcost[r.start] = 0

	pq := make(minPQ, 0, g.Size())
	hs := h(r.start)
	heap.Push(&pq, pqItem{key: hs, tie: hs, idx: r.start})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(pqItem)
		cur := item.idx
		if cur != r.start && item.key > gcost[cur]+item.tie {
			continue
		}
		r.nodes++
		if cur == r.end {
			break
		}
		g.MarkVisited(cur)
		for _, n := range r.neighbors(cur) {
			c, _ := g.Cell(n)
			tentative := gcost[cur] + uint32(c.Cost())
			if tentative < gcost[n] {
				gcost[n] = tentative
				r.parent[n] = cur
				hn := h(n)
				heap.Push(&pq, pqItem{key: tentative + hn, tie: hn, idx: n})
			}
		}
	}

	return r.finish()
}

func absDiff(a, b int) uint32 {
	if a > b {
		return uint32(a - b)
	}
	return uint32(b - a)
}
