package search

import "container/heap"

// MinQueue is a min-priority queue ordered by an int64 key. Entries with equal
// keys pop in the order they were pushed, so every priority-based search is
// deterministic for a given adjacency order.
//
// The zero value is an empty queue ready to use.
type MinQueue[T any] struct {
	items entries[T]
	seq   uint64
}

// Push adds value with priority key.
// Complexity: O(log n).
func (q *MinQueue[T]) Push(key int64, value T) {
	heap.Push(&q.items, entry[T]{key: key, seq: q.seq, value: value})
	q.seq++
}

// Pop removes and returns the entry with the smallest key.
// It must not be called on an empty queue.
// Complexity: O(log n).
func (q *MinQueue[T]) Pop() (int64, T) {
	e := heap.Pop(&q.items).(entry[T])

	return e.key, e.value
}

// Len returns the number of queued entries.
func (q *MinQueue[T]) Len() int { return len(q.items) }

// entry pairs a value with its key and insertion sequence number.
type entry[T any] struct {
	key   int64
	seq   uint64
	value T
}

// entries implements heap.Interface ordered by (key, seq).
type entries[T any] []entry[T]

func (pq entries[T]) Len() int { return len(pq) }

func (pq entries[T]) Less(i, j int) bool {
	if pq[i].key != pq[j].key {
		return pq[i].key < pq[j].key
	}

	return pq[i].seq < pq[j].seq
}

func (pq entries[T]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *entries[T]) Push(x interface{}) { *pq = append(*pq, x.(entry[T])) }

func (pq *entries[T]) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
