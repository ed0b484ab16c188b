package queues

import (
	"iter"
	"math/bits"
)

const initialRingSize = 16

// Ring is a FIFO circular buffer whose backing array length is always a power of two.
// Push grows the buffer on demand; PushEvict keeps it bounded to the capacity it was
// created with and hands back the element it displaced. Storage is allocated as
// elements arrive, so the capacity may be far larger than what is ever stored.
type Ring[T any] struct {
	buf   []T // backing array, length is a power of two
	head  int // index of the oldest element
	size  int // number of stored elements
	mask  int // len(buf) - 1, idx & mask == idx % len(buf)
	limit int // logical capacity requested by the caller
}

// NewRing creates a ring that holds up to capacity elements before PushEvict starts
// evicting. capacity <= 0 is treated as 1.
func NewRing[T any](capacity int) *Ring[T] {
	if capacity <= 0 {
		capacity = 1
	}
	n := roundPow2(min(capacity, initialRingSize))
	return &Ring[T]{
		buf:   make([]T, n),
		mask:  n - 1,
		limit: capacity,
	}
}

func roundPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << uint(bits.Len(uint(n-1)))
}

// grow doubles the backing array until it can hold need elements, unwrapping
// the stored elements to start at index 0.
func (r *Ring[T]) grow(need int) {
	n := roundPow2(need)
	newBuf := make([]T, n)
	if r.head+r.size <= len(r.buf) {
		copy(newBuf, r.buf[r.head:r.head+r.size])
	} else {
		k := copy(newBuf, r.buf[r.head:])
		copy(newBuf[k:], r.buf[:(r.head+r.size)&r.mask])
	}
	clear(r.buf)
	r.buf = newBuf
	r.head = 0
	r.mask = n - 1
}

// Push appends value, growing the buffer past its capacity if necessary.
func (r *Ring[T]) Push(value T) {
	if r.size == len(r.buf) {
		r.grow(r.size + 1)
	}
	r.buf[(r.head+r.size)&r.mask] = value
	r.size++
	if r.size > r.limit {
		r.limit = r.size
	}
}

// PushEvict appends value. When the ring already holds Cap() elements the
// oldest one is removed first and returned with ok == true.
func (r *Ring[T]) PushEvict(value T) (evicted T, ok bool) {
	if r.size == r.limit {
		evicted, ok = r.Pop()
	}
	r.Push(value)
	return evicted, ok
}

// Pop removes and returns the oldest element.
func (r *Ring[T]) Pop() (value T, ok bool) {
	if r.size == 0 {
		return value, false
	}
	value = r.buf[r.head]
	var zero T
	r.buf[r.head] = zero // drop reference
	r.head = (r.head + 1) & r.mask
	r.size--
	return value, true
}

// Peek returns the oldest element without removing it.
func (r *Ring[T]) Peek() (value T, ok bool) {
	if r.size == 0 {
		return value, false
	}
	return r.buf[r.head], true
}

func (r *Ring[T]) Len() int { return r.size }

func (r *Ring[T]) Cap() int { return r.limit }

func (r *Ring[T]) Full() bool { return r.size == r.limit }

func (r *Ring[T]) IsEmpty() bool { return r.size == 0 }

// Clear removes all elements and keeps the capacity.
func (r *Ring[T]) Clear() {
	clear(r.buf)
	r.head = 0
	r.size = 0
}

// Values returns a fresh slice with the stored elements, oldest first.
func (r *Ring[T]) Values() []T {
	out := make([]T, r.size)
	if r.head+r.size <= len(r.buf) {
		copy(out, r.buf[r.head:r.head+r.size])
	} else {
		k := copy(out, r.buf[r.head:])
		copy(out[k:], r.buf[:r.size-k])
	}
	return out
}

// All iterates the stored elements oldest first without copying.
// The ring must not be modified during iteration.
func (r *Ring[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < r.size; i++ {
			if !yield(r.buf[(r.head+i)&r.mask]) {
				return
			}
		}
	}
}
