package sat

import "testing"

func TestQueue_FIFO(t *testing.T) {
	q := NewQueue[int](2)

	for i := 0; i < 100; i++ {
		q.Push(i)
	}
	for i := 0; i < 100; i++ {
		if got := q.Pop(); got != i {
			t.Fatalf("Pop: want %d, got %d", i, got)
		}
	}
	if !q.IsEmpty() {
		t.Errorf("queue should be empty")
	}
}

func TestQueue_GrowWithRotation(t *testing.T) {
	q := NewQueue[int](4)

	// Rotate the ring so that the front is in the middle of the buffer,
	// then force a resize.
	for i := 0; i < 3; i++ {
		q.Push(-1)
		q.Pop()
	}
	for i := 0; i < 10; i++ {
		q.Push(i)
	}

	if got := q.Size(); got != 10 {
		t.Fatalf("Size: want 10, got %d", got)
	}
	for i := 0; i < 10; i++ {
		if got := q.Pop(); got != i {
			t.Fatalf("Pop after grow: want %d, got %d", i, got)
		}
	}
}

func TestQueue_Clear(t *testing.T) {
	q := NewQueue[int](4)
	q.Push(1)
	q.Push(2)

	q.Clear()

	if !q.IsEmpty() || q.Size() != 0 {
		t.Errorf("queue should be empty after Clear")
	}
}
