package seqs_test

import (
	"lazyseq/seqs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTakeDrop(t *testing.T) {
	s := seqs.Of(1, 2, 3, 4, 5)

	assert.Equal(t, []int{2, 3}, seqs.Take(seqs.Drop(s, 1), 2).Collect())
	assert.Equal(t, []int{}, s.Take(0).Collect())
	assert.Equal(t, []int{}, s.Take(-3).Collect())
	assert.Equal(t, []int{1, 2, 3, 4, 5}, s.Take(10).Collect())
	assert.Equal(t, []int{1, 2, 3, 4, 5}, s.Drop(-1).Collect())
	assert.Equal(t, []int{}, s.Drop(9).Collect())

	// infinite input
	assert.Equal(t, []int{5, 6, 7}, seqs.Naturals().Drop(5).Take(3).Collect())
}

func TestTakeWhileDropWhile(t *testing.T) {
	small := func(v int) bool { return v < 3 }
	assert.Equal(t, []int{0, 1, 2}, seqs.Naturals().TakeWhile(small).Collect())
	assert.Equal(t, []int{3, 1}, seqs.Of(1, 2, 3, 1).DropWhile(small).Collect())
}

func TestTakeExceptLast(t *testing.T) {
	s := seqs.Of(1, 2, 3, 4, 5)

	tests := []struct {
		name string
		n    int
		want []int
	}{
		{"Two", 2, []int{1, 2, 3}},
		{"Zero passthrough", 0, []int{1, 2, 3, 4, 5}},
		{"Negative passthrough", -2, []int{1, 2, 3, 4, 5}},
		{"All but one", 4, []int{1}},
		{"Whole length", 5, []int{}},
		{"Longer than input", 8, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := seqs.TakeExceptLast(s, tt.n)
			assert.Equal(t, tt.want, got.Collect())
			// test statelessness
			assert.Equal(t, tt.want, got.Collect())
		})
	}
}

func TestTakeExceptLast_Infinite(t *testing.T) {
	// the output only lags the input, so it works on infinite sequences
	got := seqs.Naturals().TakeExceptLast(3).Take(4).Collect()
	assert.Equal(t, []int{0, 1, 2, 3}, got)
}

func TestTakeExceptLast_HugeCount(t *testing.T) {
	assert.Equal(t, []int{}, seqs.TakeExceptLast(seqs.Of(1, 2, 3), 1<<50).Collect())
}

func TestSliced(t *testing.T) {
	s := seqs.Of(1, 2, 3, 4, 5)

	tests := []struct {
		name  string
		slice seqs.Seq[int]
		want  []int
	}{
		{"Start", seqs.Sliced(s, 2), []int{3, 4, 5}},
		{"Negative start", seqs.Sliced(s, -2), []int{4, 5}},
		{"Negative start past the beginning", seqs.Sliced(s, -10), []int{1, 2, 3, 4, 5}},
		{"Start past the end", seqs.Sliced(s, 7), []int{}},
		{"Negative end", seqs.SlicedRange(s, 1, -1), []int{2, 3, 4}},
		{"Both negative", seqs.SlicedRange(s, -3, -1), []int{3, 4}},
		{"Negative start, positive end", seqs.SlicedRange(s, -3, 4), []int{3, 4}},
		{"Range", seqs.SlicedRange(s, 1, 3), []int{2, 3}},
		{"End before start", seqs.SlicedRange(s, 3, 1), []int{}},
		{"End past the end", seqs.SlicedRange(s, 3, 100), []int{4, 5}},
		{"Zero end", seqs.SlicedRange(s, 0, 0), []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.slice.Collect())
			// test statelessness
			assert.Equal(t, tt.want, tt.slice.Collect())
		})
	}
}

func TestSliced_InfiniteWithPositiveBounds(t *testing.T) {
	assert.Equal(t, []int{2, 3, 4}, seqs.Naturals().SlicedRange(2, 5).Collect())
	assert.Equal(t, []int{10, 11}, seqs.Naturals().Sliced(10).Take(2).Collect())
}
