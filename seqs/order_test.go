package seqs_test

import (
	"cmp"
	"fmt"
	"lazyseq/seqs"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSorted_DefaultCompare(t *testing.T) {
	input := seqs.Of[any](true, "b", 3, (*int)(nil), nil, "a", false)
	want := []any{false, true, 3, "a", "b", (*int)(nil), nil}
	assert.Equal(t, want, seqs.Sorted(input).Collect())
}

func TestSorted_Numbers(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 10}, seqs.Sorted(seqs.Of(10, 2, 3, 1)).Collect())
	assert.Equal(t, []any{-1, 0.5, uint8(2), 2.5}, seqs.Sorted(seqs.Of[any](2.5, uint8(2), -1, 0.5)).Collect())
}

func TestSorted_OtherValuesKeepInputOrder(t *testing.T) {
	type point struct{ X, Y int }
	input := seqs.Of[any](point{2, 2}, "s", []int{1}, point{1, 1})
	want := []any{"s", point{2, 2}, []int{1}, point{1, 1}}
	assert.Equal(t, want, seqs.Sorted(input).Collect())
}

func TestSortedFunc(t *testing.T) {
	desc := func(a, b int) int { return cmp.Compare(b, a) }
	assert.Equal(t, []int{3, 2, 1}, seqs.SortedFunc(seqs.Of(2, 3, 1), desc).Collect())
}

func TestSortedBy(t *testing.T) {
	byLen := func(s string) int { return len(s) }
	got := seqs.SortedBy(seqs.Of("ccc", "a", "bb", "d"), byLen, nil)
	assert.Equal(t, []string{"a", "d", "bb", "ccc"}, got.Collect())

	got = seqs.SortedBy(seqs.Of("ccc", "a", "bb"), byLen, func(a, b int) int { return b - a })
	assert.Equal(t, []string{"ccc", "bb", "a"}, got.Collect())
}

func TestSorted_IsLazyUntilTraversed(t *testing.T) {
	pulled := 0
	s := seqs.Sorted(seqs.Peek(seqs.Of(3, 1, 2), func(int) { pulled++ }))
	assert.Equal(t, 0, pulled)
	assert.Equal(t, []int{1, 2, 3}, s.Collect())
	assert.Equal(t, 3, pulled)
}

func TestReversed(t *testing.T) {
	s := seqs.Of(1, 2, 3, 4)
	assert.Equal(t, []int{4, 3, 2, 1}, seqs.Reversed(s).Collect())
	assert.Equal(t, s.Collect(), seqs.Reversed(seqs.Reversed(s)).Collect())
	assert.Equal(t, []int{}, seqs.Reversed(seqs.Of[int]()).Collect())
}

func TestPermutations(t *testing.T) {
	perms := seqs.Permutations(seqs.Of(1, 2, 3)).Collect()

	require.Len(t, perms, 6)
	assert.Equal(t, []int{1, 2, 3}, perms[0])

	seen := make(map[string]bool)
	for _, p := range perms {
		seen[fmt.Sprint(p)] = true
	}
	assert.Len(t, seen, 6, "permutations must be distinct")

	// one swap between consecutive permutations
	want := [][]int{{1, 2, 3}, {2, 1, 3}, {3, 1, 2}, {1, 3, 2}, {2, 3, 1}, {3, 2, 1}}
	assert.Equal(t, want, perms)
}

func TestPermutations_Sizes(t *testing.T) {
	for k := 0; k <= 5; k++ {
		got := seqs.Count(seqs.Permutations(seqs.Range(0, k, 1)))
		want := 1
		for i := 2; i <= k; i++ {
			want *= i
		}
		assert.Equal(t, want, got, "k=%d", k)
	}
	assert.Equal(t, [][]int{{}}, seqs.Permutations(seqs.Of[int]()).Collect())
}

func TestPermutationsInPlace_Aliases(t *testing.T) {
	perms := seqs.PermutationsInPlace(seqs.Of(1, 2, 3)).Collect()
	require.Len(t, perms, 6)
	// every element is the same backing array, holding the last permutation
	for _, p := range perms {
		assert.Same(t, &perms[0][0], &p[0])
		assert.Equal(t, []int{3, 2, 1}, p)
	}
}

func TestRank(t *testing.T) {
	var nilMap map[string]int
	tests := []struct {
		v    any
		want seqs.Kind
	}{
		{true, seqs.KindBool},
		{42, seqs.KindNumber},
		{uint16(1), seqs.KindNumber},
		{math.Pi, seqs.KindNumber},
		{"s", seqs.KindString},
		{struct{}{}, seqs.KindOther},
		{[]int{}, seqs.KindOther},
		{(*int)(nil), seqs.KindNull},
		{nilMap, seqs.KindNull},
		{nil, seqs.KindUndefined},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, seqs.Rank(tt.v), "Rank(%#v)", tt.v)
	}
}

func TestDefaultCompare(t *testing.T) {
	tests := []struct {
		a, b any
		want int
	}{
		{false, true, -1},
		{true, true, 0},
		{true, 0, -1},
		{2, 2.5, -1},
		{uint(3), 2, 1},
		{int8(4), int64(4), 0},
		{math.NaN(), 1.0, 0},
		{"a", "b", -1},
		{99, "0", -1},
		{"z", struct{}{}, -1},
		{struct{}{}, []int{1}, 0},
		{[]int{1}, (*int)(nil), -1},
		{(*int)(nil), nil, -1},
		{nil, nil, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, seqs.DefaultCompare(tt.a, tt.b), "DefaultCompare(%#v, %#v)", tt.a, tt.b)
		assert.Equal(t, -tt.want, seqs.DefaultCompare(tt.b, tt.a), "DefaultCompare(%#v, %#v)", tt.b, tt.a)
	}
}
