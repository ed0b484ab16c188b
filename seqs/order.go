package seqs

import "slices"

// Sorted yields the elements of s in DefaultCompare order. The input is
// collected and sorted when a traversal starts; elements are then handed out
// one at a time. The sort is stable.
func Sorted[T any](s Seq[T]) Seq[T] {
	return SortedFunc(s, func(a, b T) int {
		return DefaultCompare(a, b)
	})
}

// SortedFunc is like Sorted, ordering elements with compare.
func SortedFunc[T any](s Seq[T], compare func(a, b T) int) Seq[T] {
	return derive(s, func(yield func(T) bool) {
		buf := Collect(s)
		slices.SortStableFunc(buf, compare)
		for _, v := range buf {
			if !yield(v) {
				return
			}
		}
	})
}

// SortedBy orders elements by the keys returned by by. A nil compare orders
// the keys with DefaultCompare. by is called on every comparison.
func SortedBy[T, K any](s Seq[T], by func(T) K, compare func(a, b K) int) Seq[T] {
	if compare == nil {
		compare = func(a, b K) int { return DefaultCompare(a, b) }
	}
	return SortedFunc(s, func(a, b T) int {
		return compare(by(a), by(b))
	})
}

// Reversed yields the elements of s back to front. s must be finite.
func Reversed[T any](s Seq[T]) Seq[T] {
	return derive(s, func(yield func(T) bool) {
		buf := Collect(s)
		for i := len(buf) - 1; i >= 0; i-- {
			if !yield(buf[i]) {
				return
			}
		}
	})
}

// Permutations yields every ordering of the elements of s, starting with the
// input order. Consecutive permutations differ by a single swap, so the output
// is not in lexicographic order. Each yielded slice is owned by the caller.
//
// A sequence of k elements produces k! permutations; s must be finite.
func Permutations[T any](s Seq[T]) Seq[[]T] {
	return permutations(s, true)
}

// PermutationsInPlace is like Permutations but yields the same backing slice
// every time, rearranged between yields. Copy a permutation to keep it past
// the next iteration.
func PermutationsInPlace[T any](s Seq[T]) Seq[[]T] {
	return permutations(s, false)
}

func permutations[T any](s Seq[T], owned bool) Seq[[]T] {
	return derive(s, func(yield func([]T) bool) {
		perm := Collect(s)
		emit := func() bool {
			if owned {
				return yield(slices.Clone(perm))
			}
			return yield(perm)
		}
		if !emit() {
			return
		}

		// Heap's algorithm, iterative form: c[i] counts the swaps done at
		// position i since the positions below it were last reset.
		k := len(perm)
		c := make([]int, k)
		for i := 0; i < k; {
			if c[i] >= i {
				c[i] = 0
				i++
				continue
			}
			j := 0
			if i%2 == 1 {
				j = c[i]
			}
			perm[j], perm[i] = perm[i], perm[j]
			if !emit() {
				return
			}
			c[i]++
			i = 0
		}
	})
}
