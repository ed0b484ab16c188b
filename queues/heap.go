package queues

import (
	"container/heap"
)

type innerHeap[T any] struct {
	data    []T
	compare func(a, b T) int
}

func (ih *innerHeap[T]) Len() int {
	return len(ih.data)
}

func (ih *innerHeap[T]) Less(i, j int) bool {
	return ih.compare(ih.data[i], ih.data[j]) < 0
}

func (ih *innerHeap[T]) Swap(i, j int) {
	ih.data[i], ih.data[j] = ih.data[j], ih.data[i]
}

func (ih *innerHeap[T]) Push(x any) {
	ih.data = append(ih.data, x.(T))
}

func (ih *innerHeap[T]) Pop() any {
	old := ih.data
	n := len(old)
	last := old[n-1]

	// avoid memory leak
	var zero T
	old[n-1] = zero

	ih.data = old[0 : n-1]
	return last
}

const maxHeapPrealloc = 64

// Heap is a binary min-heap ordered by a comparison function: Pop returns the
// smallest element. Reverse the comparison for a max-heap.
type Heap[T any] struct {
	heap *innerHeap[T]
}

// NewHeap creates an empty heap sized for capacity elements. At most
// maxHeapPrealloc slots are reserved up front; the rest grow on Push.
// compare must not be nil.
func NewHeap[T any](capacity int, compare func(a, b T) int) *Heap[T] {
	if capacity < 0 {
		capacity = 0
	}
	if compare == nil {
		panic("queues.NewHeap: compare function cannot be nil")
	}
	return &Heap[T]{
		heap: &innerHeap[T]{
			data:    make([]T, 0, min(capacity, maxHeapPrealloc)),
			compare: compare,
		},
	}
}

func (h *Heap[T]) Push(v T) {
	heap.Push(h.heap, v)
}

func (h *Heap[T]) Pop() (value T, ok bool) {
	if h.heap.Len() == 0 {
		return value, false
	}
	return heap.Pop(h.heap).(T), true
}

func (h *Heap[T]) Peek() (value T, ok bool) {
	if h.heap.Len() == 0 {
		return value, false
	}
	return h.heap.data[0], true
}

// ReplaceTop replaces the smallest element with v and restores the heap order.
// It is cheaper than Pop followed by Push. The heap must not be empty.
func (h *Heap[T]) ReplaceTop(v T) {
	if h.heap.Len() == 0 {
		panic("queues.Heap: ReplaceTop called on empty heap")
	}
	h.heap.data[0] = v
	heap.Fix(h.heap, 0)
}

// Drain pops every element, smallest first.
func (h *Heap[T]) Drain() []T {
	out := make([]T, 0, h.heap.Len())
	for h.heap.Len() > 0 {
		out = append(out, heap.Pop(h.heap).(T))
	}
	return out
}

func (h *Heap[T]) Len() int {
	return h.heap.Len()
}

func (h *Heap[T]) IsEmpty() bool {
	return h.heap.Len() == 0
}
