package pipeline_test

import (
	"lazyseq/pipeline"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func items(vs ...any) []any {
	for i, v := range vs {
		if n, ok := v.(int); ok {
			vs[i] = int64(n)
		}
	}
	return vs
}

func TestEvalCollect(t *testing.T) {
	tests := []struct {
		expr string
		want []any
	}{
		{"range 1 6 | drop 1 | take 2", items(2, 3)},
		{"naturals | filter odd | map * 3 | take 4", items(3, 9, 15, 21)},
		{"range 0 10 | filter even | map + 1", items(1, 3, 5, 7, 9)},
		{"range 1 4 | map % 2", items(1, 0, 1)},
		{"naturals | map -1 | take 2", items(-1, 0)},
		{"range 0 3 | map +10", items(10, 11, 12)},
		{"range 0 10 | slice -2 | map -1", items(7, 8)},
		{"values 7 | map / 2", items(3)},
		{"values 1 2 | map * 1.5", items(1.5, 3.0)},
		{"range 0 10 | filter >= 7", items(7, 8, 9)},
		{"values 1 2.5 3 | filter < 2.5", items(1)},
		{"values 1 2 3 | filter != 2", items(1, 3)},
		{"range 0 10 | slice -3", items(7, 8, 9)},
		{"range 0 10 | slice 2 -5", items(2, 3, 4)},
		{"range 0 10 | slice -4 8", items(6, 7)},
		{"range 0 10 | exceptlast 8", items(0, 1)},
		{"range 5 0 -2", items(5, 3, 1)},
		{"values 1 2 3 | reverse", items(3, 2, 1)},
		{`values 3 "a" true 1 | sort`, items(true, 1, 3, "a")},
		{"values 1 2 1 3 2 | distinct", items(1, 2, 3)},
		{`repeat "x" 2`, items("x", "x")},
		{"values nil false", items(nil, false)},
		{"range 1 7 | chunk 3 | transpose", items(items(1, 4), items(2, 5), items(3, 6))},
		{"range 1 5 | window 2", items(items(1, 2), items(2, 3), items(3, 4))},
		{"range 1 6 | chunk 2", items(items(1, 2), items(3, 4), items(5))},
		{"range 1 4 | chunk 2 | transpose", items(items(1, 3), items(2, nil))},
		{"values 1 2 | permutations", items(items(1, 2), items(2, 1))},
		{"range 0 3 | chunk 2 | distinct", items(items(0, 1), items(2))},
		{"values 3 1 4 1 5 9 2 6 | top 3", items(9, 6, 5)},
		{"values 3 1 4 1 5 9 2 6 | bottom 2", items(1, 1)},
		{`values "b" 2 true | top 1`, items("b")},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			res, err := pipeline.Eval(tt.expr, pipeline.Options{})
			require.NoError(t, err)
			assert.False(t, res.HasValue)
			assert.False(t, res.Truncated)
			assert.Equal(t, tt.want, res.Items)
		})
	}
}

func TestEvalSinks(t *testing.T) {
	tests := []struct {
		expr string
		want any
	}{
		{"values 3 2 1 | digits", int64(123)},
		{"values 1 0 1 1 | digits 2", int64(13)},
		{"range 0 10 | sum", int64(45)},
		{"range 1 6 | product", int64(120)},
		{"range 1 5 | map / 2.0 | sum", 5.0},
		{"range 0 0 | sum", int64(0)},
		{"values 1 2 3 | permutations | count", int64(6)},
		{"values 3 9 4 | max", int64(9)},
		{"range 0 0 | max", nil},
		{"naturals | nth 10", int64(10)},
		{"values 1 2 | nth 5", nil},
		{"values 1 2 | first", int64(1)},
		{"values 1 2 | last", int64(2)},
		{`values 1 "x" true | join ", "`, "1, x, true"},
		{`repeat "ab" 3 | join`, "ababab"},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			res, err := pipeline.Eval(tt.expr, pipeline.Options{})
			require.NoError(t, err)
			assert.True(t, res.HasValue)
			assert.Equal(t, tt.want, res.Value)
		})
	}
}

func TestEvalHistogram(t *testing.T) {
	res, err := pipeline.Eval(`values "a" "b" "a" | histogram`, pipeline.Options{})
	require.NoError(t, err)

	h, ok := res.Histogram()
	require.True(t, ok)
	assert.Equal(t, []any{"a", "b"}, h.Keys())
	assert.Equal(t, 2, h.Count("a"))
	assert.Equal(t, 1, h.Count("b"))
}

func TestEvalHistogramOfRows(t *testing.T) {
	res, err := pipeline.Eval("values 1 2 1 2 | chunk 2 | histogram", pipeline.Options{})
	require.NoError(t, err)

	h, ok := res.Histogram()
	require.True(t, ok)
	assert.Equal(t, 2, h.Count(pipeline.RowKey("[1 2]")))
	assert.Equal(t, 0, h.Count("[1 2]"))
	require.Len(t, h.Keys(), 1)
	assert.Equal(t, "[1 2]", pipeline.Format(h.Keys()[0]))
}

func TestEvalHistogramKeepsRowsApartFromStrings(t *testing.T) {
	res, err := pipeline.Eval(`values "[1 2]" 1 2 | chunk 1 | histogram`, pipeline.Options{})
	require.NoError(t, err)

	h, ok := res.Histogram()
	require.True(t, ok)
	var printed []string
	for _, k := range h.Keys() {
		printed = append(printed, pipeline.Format(k))
	}
	assert.Equal(t, []string{`["[1 2]"]`, "[1]", "[2]"}, printed)
}

func TestEvalTruncates(t *testing.T) {
	res, err := pipeline.Eval("naturals", pipeline.Options{MaxItems: 5})
	require.NoError(t, err)
	assert.True(t, res.Truncated)
	assert.Equal(t, items(0, 1, 2, 3, 4), res.Items)

	res, err = pipeline.Eval("range 0 3", pipeline.Options{MaxItems: 3})
	require.NoError(t, err)
	assert.False(t, res.Truncated)
	assert.Len(t, res.Items, 3)
}

func TestEvalIsRepeatable(t *testing.T) {
	p := pipeline.MustParse("range 0 10 | slice -3 | sort")
	first, err := p.Eval(pipeline.Options{})
	require.NoError(t, err)
	second, err := p.Eval(pipeline.Options{})
	require.NoError(t, err)
	assert.Equal(t, first.Items, second.Items)
}

func TestEvalHugeSizes(t *testing.T) {
	tests := []struct {
		expr string
		want []any
	}{
		{"range 1 5 | exceptlast 1000000000000000", []any{}},
		{"range 1 5 | window 1000000000000000", []any{}},
		{"range 1 5 | chunk 1000000000000000", items(items(1, 2, 3, 4))},
		{"range 1 5 | top 1000000000000000", items(4, 3, 2, 1)},
		{"range 1 5 | bottom 1000000000000000", items(1, 2, 3, 4)},
		{"range 1 5 | slice 1 -1000000000000000", []any{}},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			res, err := pipeline.Eval(tt.expr, pipeline.Options{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Items)
		})
	}
}

func TestEvalErrors(t *testing.T) {
	tests := []struct {
		expr string
		opts pipeline.Options
	}{
		{"range 0 3 | map / 0", pipeline.Options{}},
		{"range 0 3 | map % 0", pipeline.Options{}},
		{`values "a" | sum`, pipeline.Options{}},
		{`values 2 "b" | map * 2`, pipeline.Options{}},
		{"values 1 2 | transpose", pipeline.Options{}},
		{"values 1.5 | digits", pipeline.Options{}},
		{"naturals | sum", pipeline.Options{MaxPulls: 1000}},
		{"naturals | sort", pipeline.Options{MaxPulls: 1000}},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			_, err := pipeline.Eval(tt.expr, tt.opts)
			assert.ErrorIs(t, err, pipeline.ErrEval)
		})
	}
}

func TestEvalPullBudgetIsPerEval(t *testing.T) {
	p := pipeline.MustParse("range 0 10 | sum")
	for range 3 {
		res, err := p.Eval(pipeline.Options{MaxPulls: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(45), res.Value)
	}
}
