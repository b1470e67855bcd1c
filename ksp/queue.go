package ksp

import "container/heap"

// candidate is a complete source→target path waiting to be accepted.
type candidate struct {
	length float64  // total weight
	seq    uint64   // insertion order, breaks length ties
	path   []string // vertex sequence
}

// candidateQueue is a min-heap of candidates ordered by (length, seq).
// It owns its sequence counter, so seq values are never reused.
type candidateQueue struct {
	items   candidateHeap
	nextSeq uint64
}

// push queues path with the given length. O(log n).
func (q *candidateQueue) push(length float64, path []string) {
	heap.Push(&q.items, &candidate{length: length, seq: q.nextSeq, path: path})
	q.nextSeq++
}

// popMin removes and returns the cheapest candidate, earliest first on ties.
// Returns ErrEmptyQueue when nothing is queued. O(log n).
func (q *candidateQueue) popMin() (*candidate, error) {
	if q.items.Len() == 0 {
		return nil, ErrEmptyQueue
	}

	return heap.Pop(&q.items).(*candidate), nil
}

// len returns the number of queued candidates.
func (q *candidateQueue) len() int { return q.items.Len() }

// candidateHeap implements heap.Interface over *candidate.
type candidateHeap []*candidate

func (h candidateHeap) Len() int { return len(h) }

// Less orders by length, breaking ties on insertion sequence.
func (h candidateHeap) Less(i, j int) bool {
	if h[i].length != h[j].length {
		return h[i].length < h[j].length
	}

	return h[i].seq < h[j].seq
}

func (h candidateHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *candidateHeap) Push(x interface{}) { *h = append(*h, x.(*candidate)) }

// Pop removes the last element; heap.Pop has moved the minimum there.
func (h *candidateHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return item
}
