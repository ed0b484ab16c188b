package seqs

import "lazyseq/queues"

// chunks larger than this grow by append instead of being reserved up front
const maxChunkPrealloc = 64

// SlicesOf splits s into consecutive chunks of size elements. The last chunk
// may be shorter and is emitted if it is not empty.
// A size <= 0 produces exactly one empty chunk whatever the input.
func SlicesOf[T any](s Seq[T], size int) Seq[[]T] {
	if size <= 0 {
		return Lazy(func(yield func([]T) bool) {
			yield([]T{})
		})
	}
	prealloc := min(size, maxChunkPrealloc)
	return derive(s, func(yield func([]T) bool) {
		batch := make([]T, 0, prealloc)

		for v := range s.All() {
			batch = append(batch, v)
			if len(batch) == size {
				if !yield(batch) {
					return
				}
				batch = make([]T, 0, prealloc)
			}
		}
		if len(batch) > 0 {
			yield(batch)
		}
	})
}

// SlicesOfOverlapping yields a sliding window of size elements that advances by
// one element at a time, e.g. [1,2,3], [2,3,4] for size 3. Every window is a
// fresh slice. A size <= 0 produces one empty window and nothing else.
func SlicesOfOverlapping[T any](s Seq[T], size int) Seq[[]T] {
	if size <= 0 {
		return Lazy(func(yield func([]T) bool) {
			yield([]T{})
		})
	}
	return derive(s, func(yield func([]T) bool) {
		window := queues.NewRing[T](size)
		for v := range s.All() {
			window.PushEvict(v)
			if !window.Full() {
				continue
			}
			if !yield(window.Values()) {
				return
			}
		}
	})
}

// Transpose reads rows as a matrix and yields its columns. The number of columns
// is the length of the longest row; cells missing from shorter rows hold the zero
// value of T.
//
// rows is traversed once to measure the rows and once more per emitted column,
// and every row once per column, so rows and all of its rows must be restartable.
// A single-use rows panics immediately; a single-use row panics when the result
// is first traversed, before any column is produced.
func Transpose[T any](rows Seq[Seq[T]]) Seq[Seq[T]] {
	var zero T
	return transpose("Transpose", rows, zero)
}

// TransposeFill is like Transpose but pads short rows with fill.
func TransposeFill[T any](rows Seq[Seq[T]], fill T) Seq[Seq[T]] {
	return transpose("TransposeFill", rows, fill)
}

func transpose[T any](fn string, rows Seq[Seq[T]], fill T) Seq[Seq[T]] {
	mustRestart(fn, rows)
	return Lazy(func(yield func(Seq[T]) bool) {
		width := 0
		for row := range rows.All() {
			mustRestart(fn, row)
			width = max(width, Count(row))
		}
		for x := range width {
			column := Lazy(func(yield func(T) bool) {
				for row := range rows.All() {
					v, ok := Nth(row, x)
					if !ok {
						v = fill
					}
					if !yield(v) {
						return
					}
				}
			})
			if !yield(column) {
				return
			}
		}
	})
}
