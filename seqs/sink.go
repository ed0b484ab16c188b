package seqs

import (
	"fmt"
	"strings"
)

// Fold accumulates the elements of s from left to right. fn receives the
// accumulator, the element, its position and s itself.
func Fold[T, R any](s Seq[T], initial R, fn func(acc R, v T, i int, src Seq[T]) R) R {
	acc := initial
	i := 0
	for v := range s.All() {
		acc = fn(acc, v, i, s)
		i++
	}
	return acc
}

// Reduce aggregates the elements of s using the reducer function, starting from the initial value.
func Reduce[T, R any](s Seq[T], initial R, reducer func(R, T) R) R {
	acc := initial
	for v := range s.All() {
		acc = reducer(acc, v)
	}
	return acc
}

// TryReduce aggregates the elements of s using the reducer function, starting from the initial value.
// If reducer returns an error, the accumulator so far and the error are returned immediately.
func TryReduce[T, R any](s Seq[T], initial R, reducer func(R, T) (R, error)) (R, error) {
	acc := initial
	for v := range s.All() {
		next, err := reducer(acc, v)
		if err != nil {
			return acc, err
		}
		acc = next
	}
	return acc, nil
}

func First[T any](s Seq[T]) (T, bool) {
	for v := range s.All() {
		return v, true
	}
	var zero T
	return zero, false
}

func Last[T any](s Seq[T]) (T, bool) {
	var last T
	found := false
	for v := range s.All() {
		last = v
		found = true
	}
	return last, found
}

// Nth returns the element at zero-based index i. ok is false when i is negative
// or the sequence is shorter than i+1.
func Nth[T any](s Seq[T], i int) (T, bool) {
	if i < 0 {
		var zero T
		return zero, false
	}
	return First(Drop(s, i))
}

func Any[T any](s Seq[T], predicate func(T) bool) bool {
	for v := range s.All() {
		if predicate(v) {
			return true
		}
	}
	return false
}

func All[T any](s Seq[T], predicate func(T) bool) bool {
	for v := range s.All() {
		if !predicate(v) {
			return false
		}
	}
	return true
}

func Count[T any](s Seq[T]) int {
	count := 0
	for range s.All() {
		count++
	}
	return count
}

// CountFunc counts the elements that satisfy predicate.
func CountFunc[T any](s Seq[T], predicate func(T) bool) int {
	count := 0
	for v := range s.All() {
		if predicate(v) {
			count++
		}
	}
	return count
}

// JoinStr concatenates the elements of s with sep between consecutive elements.
// Strings are written as is, anything else is formatted with fmt's default verb.
func JoinStr[T any](s Seq[T], sep string) string {
	var b strings.Builder
	first := true
	for v := range s.All() {
		if !first {
			b.WriteString(sep)
		}
		first = false
		if str, ok := any(v).(string); ok {
			b.WriteString(str)
			continue
		}
		fmt.Fprint(&b, v)
	}
	return b.String()
}
