package search

// pqItem is one lazy heap entry. Entries are never updated in place: an
// improved cell gets a fresh entry and the outdated one is discarded when
// popped.
type pqItem struct {
	key uint32 // accumulated cost (Dijkstra) or g+h (A*)
	tie uint32 // secondary key; h for A*, 0 for Dijkstra
	idx int    // cell index, final tie-break
}

// minPQ is a min-heap of pqItem ordered by (key, tie, idx).
// It implements container/heap.Interface.
type minPQ []pqItem

// Len returns the number of entries.
func (pq minPQ) Len() int { return len(pq) }

// Less orders by key, then tie, then lowest index.
func (pq minPQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.key != b.key {
		return a.key < b.key
	}
	if a.tie != b.tie {
		return a.tie < b.tie
	}
	return a.idx < b.idx
}

// Swap swaps two entries.
func (pq minPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x, which must be a pqItem. Called by heap.Push.
func (pq *minPQ) Push(x interface{}) { *pq = append(*pq, x.(pqItem)) }

// Pop removes the last entry. Called by heap.Pop.
func (pq *minPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
