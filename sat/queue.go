package sat

import "math/bits"

// Queue is a FIFO queue backed by a power-of-two ring buffer.
type Queue[T any] struct {
	ring  []T
	mask  int
	start int
	end   int
	size  int
}

// NewQueue returns a new queue with at least the given capacity.
func NewQueue[T any](capacity int) *Queue[T] {
	if capacity < 2 {
		capacity = 2
	}
	capacity = 1 << bits.Len(uint(capacity-1))
	return &Queue[T]{
		ring: make([]T, capacity),
		mask: capacity - 1,
	}
}

func (q *Queue[T]) IsEmpty() bool {
	return q.size == 0
}

func (q *Queue[T]) Size() int {
	return q.size
}

// Clear empties the queue in constant time.
func (q *Queue[T]) Clear() {
	q.start = 0
	q.end = 0
	q.size = 0
}

// Push appends an element to the back of the queue, growing the ring if it
// is full.
func (q *Queue[T]) Push(elem T) {
	if q.size == len(q.ring) {
		q.grow()
	}
	q.ring[q.end] = elem
	q.end = (q.end + 1) & q.mask
	q.size++
}

// Pop removes and returns the element at the front of the queue. It panics
// if the queue is empty.
func (q *Queue[T]) Pop() T {
	if q.size == 0 {
		panic("pop on an empty queue")
	}
	elem := q.ring[q.start]
	q.start = (q.start + 1) & q.mask
	q.size--
	return elem
}

func (q *Queue[T]) grow() {
	ring := make([]T, len(q.ring)*2)
	n := copy(ring, q.ring[q.start:])
	copy(ring[n:], q.ring[:q.start])
	q.ring = ring
	q.mask = len(ring) - 1
	q.start = 0
	q.end = q.size
}
