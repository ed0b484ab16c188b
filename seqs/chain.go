package seqs

// Methods for combinators that keep the element type, so pipelines read left to
// right:
//
//	seqs.Naturals().Filter(isPrime).Drop(10).Take(5).Collect()
//
// Combinators that change the element type are package functions.

func (s Seq[T]) Filter(predicate func(T) bool) Seq[T]       { return Filter(s, predicate) }
func (s Seq[T]) Drop(n int) Seq[T]                          { return Drop(s, n) }
func (s Seq[T]) Take(n int) Seq[T]                          { return Take(s, n) }
func (s Seq[T]) TakeWhile(predicate func(T) bool) Seq[T]    { return TakeWhile(s, predicate) }
func (s Seq[T]) DropWhile(predicate func(T) bool) Seq[T]    { return DropWhile(s, predicate) }
func (s Seq[T]) TakeExceptLast(n int) Seq[T]                { return TakeExceptLast(s, n) }
func (s Seq[T]) Sliced(start int) Seq[T]                    { return Sliced(s, start) }
func (s Seq[T]) SlicedRange(start, end int) Seq[T]          { return SlicedRange(s, start, end) }
func (s Seq[T]) Sorted() Seq[T]                             { return Sorted(s) }
func (s Seq[T]) SortedFunc(compare func(a, b T) int) Seq[T] { return SortedFunc(s, compare) }
func (s Seq[T]) Reversed() Seq[T]                           { return Reversed(s) }
func (s Seq[T]) Peek(action func(T)) Seq[T]                 { return Peek(s, action) }
func (s Seq[T]) Materialize() Seq[T]                        { return Materialize(s) }

func (s Seq[T]) Collect() []T              { return Collect(s) }
func (s Seq[T]) Count() int                { return Count(s) }
func (s Seq[T]) First() (T, bool)          { return First(s) }
func (s Seq[T]) Last() (T, bool)           { return Last(s) }
func (s Seq[T]) Nth(i int) (T, bool)       { return Nth(s, i) }
func (s Seq[T]) JoinStr(sep string) string { return JoinStr(s, sep) }
