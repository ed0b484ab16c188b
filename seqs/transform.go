package seqs

import "iter"

// Map applies transform to each element of s, yielding the transformed elements.
func Map[T, R any](s Seq[T], transform func(T) R) Seq[R] {
	return derive(s, func(yield func(R) bool) {
		for v := range s.All() {
			if !yield(transform(v)) {
				return
			}
		}
	})
}

// MapIndexed is like Map, but fn also receives the element's position in the
// current traversal (starting at 0) and the sequence being mapped.
func MapIndexed[T, R any](s Seq[T], fn func(v T, i int, src Seq[T]) R) Seq[R] {
	return derive(s, func(yield func(R) bool) {
		i := 0
		for v := range s.All() {
			if !yield(fn(v, i, s)) {
				return
			}
			i++
		}
	})
}

// Filter yields only the elements of s that satisfy predicate.
func Filter[T any](s Seq[T], predicate func(T) bool) Seq[T] {
	return derive(s, func(yield func(T) bool) {
		for v := range s.All() {
			if predicate(v) {
				if !yield(v) {
					return
				}
			}
		}
	})
}

// FilterIndexed is like Filter, but fn also receives the element's position and
// the sequence being filtered. Positions count every source element, including
// the rejected ones.
func FilterIndexed[T any](s Seq[T], fn func(v T, i int, src Seq[T]) bool) Seq[T] {
	return derive(s, func(yield func(T) bool) {
		i := 0
		for v := range s.All() {
			keep := fn(v, i, s)
			i++
			if keep && !yield(v) {
				return
			}
		}
	})
}

// TryMap applies transform to each element of s, yielding the transformed elements.
// The transform function can return an error.
// The resulting sequence yields pairs of (transformed element, error).
// If transform returns an error:
//   - The error is yielded to the consumer along with a zero-value of type R.
//   - The iteration CONTINUES if the consumer returns true (yield returns true).
//   - The iteration STOPS if the consumer returns false (yield returns false).
func TryMap[T, R any](s Seq[T], transform func(T) (R, error)) iter.Seq2[R, error] {
	return func(yield func(R, error) bool) {
		for v := range s.All() {
			res, err := transform(v)
			if err != nil {
				var zero R
				res = zero
			}
			if !yield(res, err) {
				return
			}
		}
	}
}

func FlatMap[S, T any](source Seq[S], f func(S) Seq[T]) Seq[T] {
	return derive(source, func(yield func(T) bool) {
		for s := range source.All() {
			for t := range f(s).All() {
				if !yield(t) {
					return
				}
			}
		}
	})
}

// Concat yields the elements of every sequence in turn. The result is single-use
// if any of the inputs is.
func Concat[T any](seqs ...Seq[T]) Seq[T] {
	out := Lazy(func(yield func(T) bool) {
		for _, s := range seqs {
			for v := range s.All() {
				if !yield(v) {
					return
				}
			}
		}
	})
	for _, s := range seqs {
		out.single = out.single || s.single
	}
	return out
}

type Pair[T1, T2 any] struct {
	V1 T1
	V2 T2
}

// Zip pairs up elements of s1 and s2 and stops at the end of the shorter one.
func Zip[T1, T2 any](s1 Seq[T1], s2 Seq[T2]) Seq[Pair[T1, T2]] {
	out := derive(s1, func(yield func(Pair[T1, T2]) bool) {
		next2, stop2 := iter.Pull(s2.All())
		defer stop2()

		for v1 := range s1.All() {
			v2, ok := next2()
			if !ok {
				return
			}
			if !yield(Pair[T1, T2]{v1, v2}) {
				return
			}
		}
	})
	out.single = out.single || s2.single
	return out
}

func Enumerate[T any](s Seq[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		index := 0
		for v := range s.All() {
			if !yield(index, v) {
				return
			}
			index++
		}
	}
}

// Distinct returns a sequence that yields only unique elements.
// It keeps a set of seen elements per traversal, so memory usage is proportional
// to the number of unique elements.
func Distinct[T comparable](s Seq[T]) Seq[T] {
	return DistinctBy(s, func(v T) T { return v })
}

// DistinctBy yields the first element for every distinct key.
func DistinctBy[T any, K comparable](s Seq[T], key func(T) K) Seq[T] {
	return derive(s, func(yield func(T) bool) {
		seen := make(map[K]struct{})
		for v := range s.All() {
			k := key(v)
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			if !yield(v) {
				return
			}
		}
	})
}

// Peek performs the provided action on each element of the sequence without modifying it.
// It is useful for debugging (e.g., logging) or side effects.
func Peek[T any](s Seq[T], action func(T)) Seq[T] {
	return derive(s, func(yield func(T) bool) {
		for v := range s.All() {
			action(v)
			if !yield(v) {
				return
			}
		}
	})
}

// Scan is similar to Reduce, but it yields the accumulated result at each step.
func Scan[T, R any](s Seq[T], initial R, reducer func(R, T) R) Seq[R] {
	return derive(s, func(yield func(R) bool) {
		acc := initial
		for v := range s.All() {
			acc = reducer(acc, v)
			if !yield(acc) {
				return
			}
		}
	})
}
