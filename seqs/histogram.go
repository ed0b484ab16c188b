package seqs

import (
	"iter"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Histogram counts occurrences of values. Keys keep the order in which each
// distinct value was first added.
type Histogram[T comparable] struct {
	counts *linkedhashmap.Map
}

func NewHistogram[T comparable]() *Histogram[T] {
	return &Histogram[T]{counts: linkedhashmap.New()}
}

// HistogramOf traverses s once and counts every element.
//
// T may be an interface type; adding a value whose dynamic type is not
// comparable panics, as it would for a map key.
func HistogramOf[T comparable](s Seq[T]) *Histogram[T] {
	h := NewHistogram[T]()
	for v := range s.All() {
		h.Add(v)
	}
	return h
}

// Add records one more occurrence of v.
func (h *Histogram[T]) Add(v T) {
	h.counts.Put(v, h.Count(v)+1)
}

// Count returns the number of occurrences of v, 0 if it was never added.
func (h *Histogram[T]) Count(v T) int {
	n, found := h.counts.Get(v)
	if !found {
		return 0
	}
	return n.(int)
}

func (h *Histogram[T]) Len() int {
	return h.counts.Size()
}

// Keys returns the distinct values in first-seen order.
func (h *Histogram[T]) Keys() []T {
	keys := h.counts.Keys()
	out := make([]T, len(keys))
	for i, k := range keys {
		out[i], _ = k.(T)
	}
	return out
}

// All iterates (value, count) pairs in first-seen order.
func (h *Histogram[T]) All() iter.Seq2[T, int] {
	return func(yield func(T, int) bool) {
		it := h.counts.Iterator()
		for it.Next() {
			k, _ := it.Key().(T)
			if !yield(k, it.Value().(int)) {
				return
			}
		}
	}
}

// Map copies the counts into a plain map.
func (h *Histogram[T]) Map() map[T]int {
	out := make(map[T]int, h.Len())
	for k, n := range h.All() {
		out[k] = n
	}
	return out
}
