package seqs

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

// ErrSingleUse is wrapped by the panic raised when a combinator that traverses its
// input more than once is given a single-use sequence.
var ErrSingleUse = errors.New("sequence can only be traversed once")

// Recipe produces one traversal of a sequence. Every call starts a fresh,
// independent run, so per-traversal state belongs inside the function body.
type Recipe[T any] func(yield func(T) bool)

// Seq is a lazily evaluated sequence of values.
//
// The zero value is an empty, restartable sequence.
type Seq[T any] struct {
	src    iter.Seq[T]
	single bool
}

// Wrap exposes src as a Seq without copying anything. src is assumed to be
// restartable, which holds for any iter.Seq whose state lives inside the function.
func Wrap[T any](src iter.Seq[T]) Seq[T] {
	return Seq[T]{src: src}
}

// Lazy builds a restartable sequence: each traversal invokes recipe anew.
func Lazy[T any](recipe Recipe[T]) Seq[T] {
	if recipe == nil {
		return Seq[T]{}
	}
	return Seq[T]{src: iter.Seq[T](recipe)}
}

// Once wraps a source that can only be traversed once. The first traversal
// consumes src; any later traversal yields nothing, even if the first one stopped early.
func Once[T any](src iter.Seq[T]) Seq[T] {
	used := false
	return Seq[T]{
		src: func(yield func(T) bool) {
			if used || src == nil {
				return
			}
			used = true
			src(yield)
		},
		single: true,
	}
}

// FromSlice returns a restartable view over s. The slice is not copied, so
// later writes to s are visible to later traversals.
func FromSlice[T any](s []T) Seq[T] {
	return Seq[T]{src: slices.Values(s)}
}

// Of returns a restartable sequence over the given values.
func Of[T any](values ...T) Seq[T] {
	return FromSlice(values)
}

// Materialize traverses s once and returns a restartable sequence over the collected values.
func Materialize[T any](s Seq[T]) Seq[T] {
	return FromSlice(Collect(s))
}

// All returns the underlying iterator, for use with range.
func (s Seq[T]) All() iter.Seq[T] {
	if s.src == nil {
		return func(func(T) bool) {}
	}
	return s.src
}

// Restartable reports whether s can be traversed more than once.
func (s Seq[T]) Restartable() bool {
	return !s.single
}

// Collect traverses s and returns its elements. An empty sequence yields an
// empty, non-nil slice.
func Collect[T any](s Seq[T]) []T {
	out := make([]T, 0)
	for v := range s.All() {
		out = append(out, v)
	}
	return out
}

// derive builds a sequence from recipe that inherits the capability tag of parent.
func derive[T, R any](parent Seq[T], recipe Recipe[R]) Seq[R] {
	return Seq[R]{src: iter.Seq[R](recipe), single: parent.single}
}

func mustRestart[T any](fn string, s Seq[T]) {
	if s.single {
		panic(fmt.Errorf("seqs.%s: %w; wrap the input with seqs.Materialize", fn, ErrSingleUse))
	}
}
