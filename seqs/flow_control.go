package seqs

import "lazyseq/queues"

// Take yields at most n elements of s. n <= 0 yields nothing.
func Take[T any](s Seq[T], n int) Seq[T] {
	return derive(s, func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		count := 0
		for v := range s.All() {
			if !yield(v) {
				return
			}
			count++
			if count >= n {
				return
			}
		}
	})
}

// Drop skips the first n elements of s. n <= 0 skips nothing.
func Drop[T any](s Seq[T], n int) Seq[T] {
	return derive(s, func(yield func(T) bool) {
		skipped := 0
		for v := range s.All() {
			if skipped < n {
				skipped++
				continue
			}
			if !yield(v) {
				return
			}
		}
	})
}

// TakeWhile continues to yield elements from the sequence
// as long as the predicate returns true.
func TakeWhile[T any](s Seq[T], predicate func(T) bool) Seq[T] {
	return derive(s, func(yield func(T) bool) {
		for v := range s.All() {
			if !predicate(v) {
				return // Condition not met, terminate the stream
			}
			if !yield(v) {
				return
			}
		}
	})
}

// DropWhile skips elements from the sequence
// as long as the predicate returns true, then yields the rest.
func DropWhile[T any](s Seq[T], predicate func(T) bool) Seq[T] {
	return derive(s, func(yield func(T) bool) {
		dropping := true
		for v := range s.All() {
			if dropping {
				if predicate(v) {
					continue
				}
				dropping = false
			}
			if !yield(v) {
				return
			}
		}
	})
}

// TakeExceptLast yields every element of s except the trailing n. Elements are
// held back in a ring buffer of n slots and released once the buffer overflows,
// so the output lags the input by exactly n elements. n <= 0 returns s unchanged.
func TakeExceptLast[T any](s Seq[T], n int) Seq[T] {
	if n <= 0 {
		return s
	}
	return derive(s, func(yield func(T) bool) {
		held := queues.NewRing[T](n)
		for v := range s.All() {
			if oldest, ok := held.PushEvict(v); ok {
				if !yield(oldest) {
					return
				}
			}
		}
	})
}

// Sliced returns s[start:] with Python slicing rules. A negative start counts
// from the end: every traversal first counts s, so s must be restartable;
// Sliced panics with ErrSingleUse otherwise.
func Sliced[T any](s Seq[T], start int) Seq[T] {
	if start >= 0 {
		return Drop(s, start)
	}
	mustRestart("Sliced", s)
	return derive(s, func(yield func(T) bool) {
		Drop(s, resolveStart(s, start)).All()(yield)
	})
}

// SlicedRange returns s[start:end] with Python slicing rules. A negative end
// excludes the last -end elements and never needs to know the length; a negative
// start has the same requirements as in Sliced.
func SlicedRange[T any](s Seq[T], start, end int) Seq[T] {
	if start < 0 {
		mustRestart("SlicedRange", s)
	}
	return derive(s, func(yield func(T) bool) {
		from := resolveStart(s, start)
		rest := Drop(s, from)
		if end < 0 {
			rest = TakeExceptLast(rest, -end)
		} else {
			rest = Take(rest, end-from)
		}
		rest.All()(yield)
	})
}

func resolveStart[T any](s Seq[T], start int) int {
	if start >= 0 {
		return start
	}
	return max(0, Count(s)+start)
}
