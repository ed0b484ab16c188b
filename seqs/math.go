package seqs

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Integer | constraints.Float
}

func Sum[T Number](s Seq[T]) T {
	var total T
	for v := range s.All() {
		total += v
	}
	return total
}

// Product multiplies the elements of s. The product of an empty sequence is 1.
func Product[T Number](s Seq[T]) T {
	total := T(1)
	for v := range s.All() {
		total *= v
	}
	return total
}

func Min[T cmp.Ordered](s Seq[T]) (T, bool) {
	var min T
	first := true
	for v := range s.All() {
		if first {
			min = v
			first = false
			continue
		}
		if v < min {
			min = v
		}
	}
	if first {
		var zero T
		return zero, false
	}
	return min, true
}

// Max returns the largest element of s. On ties the earliest element wins.
// ok is false for an empty sequence.
func Max[T cmp.Ordered](s Seq[T]) (T, bool) {
	return MaxFunc(s, func(a, b T) int {
		if a > b {
			return 1
		}
		return 0
	})
}

// MaxFunc is like Max, ordering elements with compare.
func MaxFunc[T any](s Seq[T], compare func(a, b T) int) (T, bool) {
	var max T
	first := true
	for v := range s.All() {
		if first {
			max = v
			first = false
			continue
		}
		if compare(v, max) > 0 {
			max = v
		}
	}
	if first {
		var zero T
		return zero, false
	}
	return max, true
}

// FromDigits reads s as digits in the given base, least significant digit first,
// and returns sum(digit[i] * base^i).
func FromDigits[T Number](s Seq[T], base T) T {
	var total T
	place := T(1)
	for d := range s.All() {
		total += d * place
		place *= base
	}
	return total
}
