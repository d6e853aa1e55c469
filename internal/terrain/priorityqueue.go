package terrain

import "container/heap"

// triQueueEntry is a single entry in the downslope priority-flood queue:
// adapted from QueueEntry (geo/regionqueue.go in
// github.com/Flokey82/genworldvoronoi), which carries an Origin/Destination
// pair for pathfinding -- here there is only the triangle being flooded and
// the elevation it was enqueued with.
type triQueueEntry struct {
	Triangle  int
	Elevation float32
	index     int // heap bookkeeping, maintained by container/heap
}

// triPriorityQueue implements heap.Interface as an ascending (lowest
// elevation first) min-heap, the same shape as AscPriorityQueue, with ties
// broken on triangle id so results stay reproducible across runs.
type triPriorityQueue []*triQueueEntry

func (pq triPriorityQueue) Len() int { return len(pq) }

func (pq triPriorityQueue) Less(i, j int) bool {
	if pq[i].Elevation != pq[j].Elevation {
		return pq[i].Elevation < pq[j].Elevation
	}
	return pq[i].Triangle < pq[j].Triangle
}

func (pq triPriorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *triPriorityQueue) Push(x any) {
	e := x.(*triQueueEntry)
	e.index = len(*pq)
	*pq = append(*pq, e)
}

func (pq *triPriorityQueue) Pop() any {
	old := *pq
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return e
}

// newTriPriorityQueue returns an initialized, empty priority queue.
func newTriPriorityQueue() *triPriorityQueue {
	pq := &triPriorityQueue{}
	heap.Init(pq)
	return pq
}

func (pq *triPriorityQueue) push(t int, elevation float32) {
	heap.Push(pq, &triQueueEntry{Triangle: t, Elevation: elevation})
}

func (pq *triPriorityQueue) pop() (int, float32) {
	e := heap.Pop(pq).(*triQueueEntry)
	return e.Triangle, e.Elevation
}
