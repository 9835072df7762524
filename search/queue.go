package search

import "container/heap"

// Item is one frontier entry of a priority-driven search: a node, the node
// it was reached from and the measures of the partial route ending there.
type Item struct {
	Node     string  // node reached
	Prev     string  // predecessor on this partial route; path.None for the start
	Priority float64 // primary ordering key, smaller pops first
	Distance float64 // cumulative length, secondary key
	Gain     float64 // cumulative clamped elevation gain
	seq      uint64  // insertion order, final tie-break
}

// itemHeap orders *Item by (Priority, Distance, seq) ascending.
type itemHeap []*Item

func (h itemHeap) Len() int { return len(h) }

func (h itemHeap) Less(i, j int) bool {
	if h[i].Priority != h[j].Priority {
		return h[i].Priority < h[j].Priority
	}
	if h[i].Distance != h[j].Distance {
		return h[i].Distance < h[j].Distance
	}

	return h[i].seq < h[j].seq
}

func (h itemHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *itemHeap) Push(x interface{}) { *h = append(*h, x.(*Item)) }

func (h *itemHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return item
}

// Queue is a min-priority queue of frontier items with lazy decrease-key:
// a node may be queued several times and stale entries are discarded by the
// caller when popped. Equal priorities pop by shorter distance, then by
// insertion order, so searches are deterministic.
//
// A Queue is not safe for concurrent use; each search owns its own.
type Queue struct {
	h   itemHeap
	seq uint64
}

// NewQueue returns an empty queue with room for capacity items.
func NewQueue(capacity int) *Queue {
	if capacity < 0 {
		capacity = 0
	}

	return &Queue{h: make(itemHeap, 0, capacity)}
}

// Push inserts it and stamps its insertion sequence.
func (q *Queue) Push(it *Item) {
	q.seq++
	it.seq = q.seq
	heap.Push(&q.h, it)
}

// Pop removes and returns the smallest item, or nil if the queue is empty.
func (q *Queue) Pop() *Item {
	if len(q.h) == 0 {
		return nil
	}

	return heap.Pop(&q.h).(*Item)
}

// Len returns the number of queued items, stale ones included.
func (q *Queue) Len() int { return len(q.h) }
