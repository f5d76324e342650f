package search

import (
	"container/heap"

	"github.com/katalvlaran/gridlab/grid"
)

// Dijkstra finds the least-total-cost path, where entering a cell costs
// that cell's terrain weight.
//
// Steps:
//  1. dist[start] = 0; push (0, start).
//  2. Pop the cheapest entry. If its cost exceeds dist[cell] it is stale:
//     skip it without counting.
//  3. Count the pop; stop at the end cell.
//  4. Mark visited and relax each neighbour n with dist[cur]+cost(n),
//     pushing a new entry on strict improvement (lazy decrease-key).
//
// Ties pop lowest index first.
// Complexity: O(N log N) time, O(N) memory, N = W×H.
func Dijkstra(g *grid.Grid) Stats {
	r, ok := newRunner(g)
	if !ok {
		return Stats{}
	}

	dist := make([]uint32, g.Size())
	for i := range dist {
		dist[i] = infinity
	}
	dist[r.start] = 0

	pq := make(minPQ, 0, g.Size())
	heap.Push(&pq, pqItem{key: 0, idx: r.start})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(pqItem)
		cur := item.idx
		if item.key > dist[cur] {
			continue
		}
		r.nodes++
		if cur == r.end {
			break
		}
		g.MarkVisited(cur)
		for _, n := range r.neighbors(cur) {
			c, _ := g.Cell(n)
			next := item.key + uint32(c.Cost())
			if next < dist[n] {
				dist[n] = next
				r.parent[n] = cur
				heap.Push(&pq, pqItem{key: next, idx: n})
			}
		}
	}

	return r.finish()
}
