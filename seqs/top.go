package seqs

import "lazyseq/queues"

type ranked[T any] struct {
	v T
	i int
}

// Largest yields the n greatest elements of s by compare, greatest first.
// Equal elements keep their input order. Only n elements are held in memory,
// but s must be finite. n <= 0 yields nothing.
func Largest[T any](s Seq[T], n int, compare func(a, b T) int) Seq[T] {
	return derive(s, func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		// min-heap on rank: lower value, or same value seen later
		h := queues.NewHeap(n, func(a, b ranked[T]) int {
			if c := compare(a.v, b.v); c != 0 {
				return c
			}
			return b.i - a.i
		})
		i := 0
		for v := range s.All() {
			item := ranked[T]{v, i}
			i++
			if h.Len() < n {
				h.Push(item)
				continue
			}
			if top, _ := h.Peek(); compare(v, top.v) > 0 {
				h.ReplaceTop(item)
			}
		}
		kept := h.Drain()
		for j := len(kept) - 1; j >= 0; j-- {
			if !yield(kept[j].v) {
				return
			}
		}
	})
}

// Smallest yields the n least elements of s by compare, least first.
func Smallest[T any](s Seq[T], n int, compare func(a, b T) int) Seq[T] {
	return Largest(s, n, func(a, b T) int { return compare(b, a) })
}
