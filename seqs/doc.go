/*
Package seqs provides restartable lazy sequences on top of Go 1.23+ iterators (iter.Seq).

A [Seq] wraps an iter.Seq and can be traversed any number of times: every traversal
reruns the recipe that produces it, so no intermediate collection is built and no
bookkeeping is needed to iterate a pipeline twice.

	evens := seqs.Filter(seqs.Naturals(), func(n int) bool { return n%2 == 0 })
	firstFive := seqs.Take(evens, 5)
	fmt.Println(firstFive.Collect()) // [0 2 4 6 8]
	fmt.Println(seqs.Sum(firstFive)) // 20, a second independent traversal

The package includes:

  - **Building**: [Wrap], [Lazy], [Once], [FromSlice], [Of], [Materialize], [Range],
    [Repeat], [Iterate], [Naturals].
  - **Transformations**: [Map], [MapIndexed], [Filter], [FilterIndexed], [FlatMap],
    [Concat], [Zip], [Distinct], [DistinctBy], [Peek], [Scan].
  - **Aggregation**: [Fold], [Reduce], [Count], [Sum], [Product], [Max], [HistogramOf],
    [FromDigits], [JoinStr].
  - **Positional access**: [Drop], [Take], [Nth], [First], [Last], [Sliced],
    [SlicedRange], [TakeExceptLast].
  - **Windowing**: [SlicesOf], [SlicesOfOverlapping], [Transpose].
  - **Ordering**: [Sorted], [SortedFunc], [SortedBy], [Reversed], [Largest], [Smallest],
    [Permutations].

# Restartable and single-use sequences

Sequences built by this package are restartable. A source that can only be traversed
once (a channel drain, an iter.Pull cursor) should be wrapped with [Once]; the tag is
carried by every combinator built on top of it. Combinators that need several passes
over their input ([Transpose], [Sliced] with a negative start) panic with an error
wrapping [ErrSingleUse] when handed a single-use sequence. Use [Materialize] to turn
such a sequence into a restartable one.

# Missing values

Queries that may have no answer ([First], [Last], [Nth], [Max]) return (value, ok)
with ok == false on an empty or too short sequence; they never panic.

# Error Handling

Callbacks are called at traversal time. A panic raised by a callback propagates to the
consumer unchanged; a later traversal starts from scratch and is unaffected.
[TryMap] and [TryReduce] thread errors through the sequence instead.
*/
package seqs
