package seqs

// Range yields start, start+step, ... while the value stays below end, or above
// end for a negative step. A zero step yields nothing.
func Range(start, end, step int) Seq[int] {
	return Lazy(func(yield func(int) bool) {
		if step == 0 {
			return
		}
		if step > 0 && start >= end || step < 0 && start <= end {
			return
		}
		// distances are taken as uint so that i += step never runs past end,
		// even where end-i does not fit in an int
		for i := start; ; i += step {
			if !yield(i) {
				return
			}
			if step > 0 && uint(end-i) <= uint(step) || step < 0 && uint(i-end) <= uint(-step) {
				return
			}
		}
	})
}

func Repeat[T any](value T, count int) Seq[T] {
	return Lazy(func(yield func(T) bool) {
		for i := 0; i < count; i++ {
			if !yield(value) {
				return
			}
		}
	})
}

// Iterate yields seed, next(seed), next(next(seed)), ... without end.
func Iterate[T any](seed T, next func(T) T) Seq[T] {
	return Lazy(func(yield func(T) bool) {
		for v := seed; ; v = next(v) {
			if !yield(v) {
				return
			}
		}
	})
}

// Naturals yields 0, 1, 2, ... without end.
func Naturals() Seq[int] {
	return Lazy(func(yield func(int) bool) {
		for i := 0; ; i++ {
			if !yield(i) {
				return
			}
		}
	})
}
