package pipeline

import (
	"maps"
	"slices"

	"lazyseq/seqs"
)

type (
	sourceFunc func(args []any) (seqs.Seq[any], error)
	stageFunc  func(args []any) (func(seqs.Seq[any]) seqs.Seq[any], error)
	sinkFunc   func(args []any) (func(seqs.Seq[any]) any, error)
)

var sources = map[string]sourceFunc{
	"range":    rangeSource,
	"naturals": naturalsSource,
	"values":   valuesSource,
	"repeat":   repeatSource,
}

var stages = map[string]stageFunc{
	"map":          mapStage,
	"filter":       filterStage,
	"drop":         countStage("drop", seqs.Drop[any]),
	"take":         countStage("take", seqs.Take[any]),
	"slice":        sliceStage,
	"exceptlast":   countStage("exceptlast", seqs.TakeExceptLast[any]),
	"chunk":        countStage("chunk", chunk),
	"window":       countStage("window", window),
	"transpose":    noArgStage("transpose", transposeRows),
	"sort":         noArgStage("sort", seqs.Sorted[any]),
	"reverse":      noArgStage("reverse", seqs.Reversed[any]),
	"permutations": noArgStage("permutations", permute),
	"distinct":     noArgStage("distinct", distinct),
	"top":          countStage("top", top),
	"bottom":       countStage("bottom", bottom),
}

var sinks = map[string]sinkFunc{
	"sum":       sumSink,
	"product":   productSink,
	"count":     countSink,
	"max":       maxSink,
	"first":     firstSink,
	"last":      lastSink,
	"nth":       nthSink,
	"histogram": histogramSink,
	"digits":    digitsSink,
	"join":      joinSink,
}

// --- argument checks

func arity(name string, args []any, lo, hi int) error {
	if len(args) < lo || (hi >= 0 && len(args) > hi) {
		switch {
		case lo == hi:
			return syntaxErrorf("%s takes %d argument(s), got %d", name, lo, len(args))
		case hi < 0:
			return syntaxErrorf("%s takes at least %d argument(s), got %d", name, lo, len(args))
		default:
			return syntaxErrorf("%s takes %d to %d arguments, got %d", name, lo, hi, len(args))
		}
	}
	return nil
}

func intArg(name string, args []any, i int) (int, error) {
	n, ok := args[i].(int64)
	if !ok {
		return 0, syntaxErrorf("%s: argument %d must be an integer, got %s", name, i+1, Format(args[i]))
	}
	return int(n), nil
}

func numArg(name string, args []any, i int) (any, error) {
	if _, ok := asFloat(args[i]); !ok {
		return nil, syntaxErrorf("%s: argument %d must be a number, got %s", name, i+1, Format(args[i]))
	}
	return args[i], nil
}

func opArg(name string, args []any, i int, allowed ...Op) (Op, error) {
	op, ok := args[i].(Op)
	if ok {
		for _, a := range allowed {
			if op == a {
				return op, nil
			}
		}
	}
	return "", syntaxErrorf("%s: argument %d must be one of %v, got %s", name, i+1, allowed, Format(args[i]))
}

func boxInt(v int) any { return int64(v) }

func boxSlice(v []any) any { return v }

// --- sources

func rangeSource(args []any) (seqs.Seq[any], error) {
	if err := arity("range", args, 2, 3); err != nil {
		return seqs.Seq[any]{}, err
	}
	bounds := []int{0, 0, 1}
	for i := range args {
		n, err := intArg("range", args, i)
		if err != nil {
			return seqs.Seq[any]{}, err
		}
		bounds[i] = n
	}
	if bounds[2] == 0 {
		return seqs.Seq[any]{}, syntaxErrorf("range: step must not be 0")
	}
	return seqs.Map(seqs.Range(bounds[0], bounds[1], bounds[2]), boxInt), nil
}

func naturalsSource(args []any) (seqs.Seq[any], error) {
	if err := arity("naturals", args, 0, 0); err != nil {
		return seqs.Seq[any]{}, err
	}
	return seqs.Map(seqs.Naturals(), boxInt), nil
}

func valuesSource(args []any) (seqs.Seq[any], error) {
	return seqs.Of(args...), nil
}

func repeatSource(args []any) (seqs.Seq[any], error) {
	if err := arity("repeat", args, 2, 2); err != nil {
		return seqs.Seq[any]{}, err
	}
	n, err := intArg("repeat", args, 1)
	if err != nil {
		return seqs.Seq[any]{}, err
	}
	return seqs.Repeat(args[0], n), nil
}

// --- stages

func noArgStage(name string, fn func(seqs.Seq[any]) seqs.Seq[any]) stageFunc {
	return func(args []any) (func(seqs.Seq[any]) seqs.Seq[any], error) {
		if err := arity(name, args, 0, 0); err != nil {
			return nil, err
		}
		return fn, nil
	}
}

func mapStage(args []any) (func(seqs.Seq[any]) seqs.Seq[any], error) {
	if err := arity("map", args, 2, 2); err != nil {
		return nil, err
	}
	op, err := opArg("map", args, 0, "+", "-", "*", "/", "%")
	if err != nil {
		return nil, err
	}
	operand, err := numArg("map", args, 1)
	if err != nil {
		return nil, err
	}
	return func(in seqs.Seq[any]) seqs.Seq[any] {
		return seqs.Map(in, func(v any) any { return arith(op, v, operand) })
	}, nil
}

func filterStage(args []any) (func(seqs.Seq[any]) seqs.Seq[any], error) {
	if len(args) == 1 {
		word, _ := args[0].(Word)
		var want int64
		switch word {
		case "even":
			want = 0
		case "odd":
			want = 1
		default:
			return nil, syntaxErrorf("filter: expected even, odd or an operator, got %s", Format(args[0]))
		}
		return func(in seqs.Seq[any]) seqs.Seq[any] {
			return seqs.Filter(in, func(v any) bool {
				n, ok := v.(int64)
				return ok && (n%2+2)%2 == want
			})
		}, nil
	}
	if err := arity("filter", args, 2, 2); err != nil {
		return nil, err
	}
	op, err := opArg("filter", args, 0, "<", "<=", ">", ">=", "==", "!=")
	if err != nil {
		return nil, err
	}
	operand := args[1]
	return func(in seqs.Seq[any]) seqs.Seq[any] {
		return seqs.Filter(in, func(v any) bool {
			c := seqs.DefaultCompare(v, operand)
			switch op {
			case "<":
				return c < 0
			case "<=":
				return c <= 0
			case ">":
				return c > 0
			case ">=":
				return c >= 0
			case "==":
				return c == 0
			}
			return c != 0
		})
	}, nil
}

func countStage(name string, fn func(seqs.Seq[any], int) seqs.Seq[any]) stageFunc {
	return func(args []any) (func(seqs.Seq[any]) seqs.Seq[any], error) {
		if err := arity(name, args, 1, 1); err != nil {
			return nil, err
		}
		n, err := intArg(name, args, 0)
		if err != nil {
			return nil, err
		}
		return func(in seqs.Seq[any]) seqs.Seq[any] { return fn(in, n) }, nil
	}
}

func chunk(in seqs.Seq[any], n int) seqs.Seq[any] {
	return seqs.Map(seqs.SlicesOf(in, n), boxSlice)
}

func window(in seqs.Seq[any], n int) seqs.Seq[any] {
	return seqs.Map(seqs.SlicesOfOverlapping(in, n), boxSlice)
}

func top(in seqs.Seq[any], n int) seqs.Seq[any] {
	return seqs.Largest(in, n, seqs.DefaultCompare)
}

func bottom(in seqs.Seq[any], n int) seqs.Seq[any] {
	return seqs.Smallest(in, n, seqs.DefaultCompare)
}

func sliceStage(args []any) (func(seqs.Seq[any]) seqs.Seq[any], error) {
	if err := arity("slice", args, 1, 2); err != nil {
		return nil, err
	}
	start, err := intArg("slice", args, 0)
	if err != nil {
		return nil, err
	}
	if len(args) == 1 {
		return func(in seqs.Seq[any]) seqs.Seq[any] { return seqs.Sliced(in, start) }, nil
	}
	end, err := intArg("slice", args, 1)
	if err != nil {
		return nil, err
	}
	return func(in seqs.Seq[any]) seqs.Seq[any] { return seqs.SlicedRange(in, start, end) }, nil
}

func transposeRows(in seqs.Seq[any]) seqs.Seq[any] {
	rows := seqs.Map(in, func(v any) seqs.Seq[any] {
		row, ok := v.([]any)
		if !ok {
			panic(evalErrorf("transpose: %s is not a row; use chunk or window first", Format(v)))
		}
		return seqs.FromSlice(row)
	})
	return seqs.Map(seqs.Transpose(rows), func(col seqs.Seq[any]) any { return col.Collect() })
}

func permute(in seqs.Seq[any]) seqs.Seq[any] {
	return seqs.Map(seqs.Permutations(in), boxSlice)
}

func distinct(in seqs.Seq[any]) seqs.Seq[any] {
	return seqs.DistinctBy(in, hashKey)
}

// --- sinks

func noArgSink(name string, args []any, fn func(seqs.Seq[any]) any) (func(seqs.Seq[any]) any, error) {
	if err := arity(name, args, 0, 0); err != nil {
		return nil, err
	}
	return fn, nil
}

// orNil turns a missing value into nil.
func orNil(v any, ok bool) any {
	if !ok {
		return nil
	}
	return v
}

func sumSink(args []any) (func(seqs.Seq[any]) any, error) {
	return noArgSink("sum", args, func(in seqs.Seq[any]) any {
		return seqs.Reduce(in, any(int64(0)), func(acc, v any) any { return arith("+", acc, v) })
	})
}

func productSink(args []any) (func(seqs.Seq[any]) any, error) {
	return noArgSink("product", args, func(in seqs.Seq[any]) any {
		return seqs.Reduce(in, any(int64(1)), func(acc, v any) any { return arith("*", acc, v) })
	})
}

func countSink(args []any) (func(seqs.Seq[any]) any, error) {
	return noArgSink("count", args, func(in seqs.Seq[any]) any { return int64(in.Count()) })
}

func maxSink(args []any) (func(seqs.Seq[any]) any, error) {
	return noArgSink("max", args, func(in seqs.Seq[any]) any {
		return orNil(seqs.MaxFunc(in, seqs.DefaultCompare))
	})
}

func firstSink(args []any) (func(seqs.Seq[any]) any, error) {
	return noArgSink("first", args, func(in seqs.Seq[any]) any { return orNil(in.First()) })
}

func lastSink(args []any) (func(seqs.Seq[any]) any, error) {
	return noArgSink("last", args, func(in seqs.Seq[any]) any { return orNil(in.Last()) })
}

func nthSink(args []any) (func(seqs.Seq[any]) any, error) {
	if err := arity("nth", args, 1, 1); err != nil {
		return nil, err
	}
	i, err := intArg("nth", args, 0)
	if err != nil {
		return nil, err
	}
	return func(in seqs.Seq[any]) any { return orNil(in.Nth(i)) }, nil
}

func histogramSink(args []any) (func(seqs.Seq[any]) any, error) {
	return noArgSink("histogram", args, func(in seqs.Seq[any]) any {
		return seqs.HistogramOf(seqs.Map(in, hashKey))
	})
}

func digitsSink(args []any) (func(seqs.Seq[any]) any, error) {
	if err := arity("digits", args, 0, 1); err != nil {
		return nil, err
	}
	base := 10
	if len(args) == 1 {
		b, err := intArg("digits", args, 0)
		if err != nil {
			return nil, err
		}
		if b < 2 {
			return nil, syntaxErrorf("digits: base must be at least 2, got %d", b)
		}
		base = b
	}
	return func(in seqs.Seq[any]) any {
		digits := seqs.Map(in, func(v any) int64 {
			d, ok := v.(int64)
			if !ok {
				panic(evalErrorf("digits: %s is not an integer", Format(v)))
			}
			return d
		})
		return seqs.FromDigits(digits, int64(base))
	}, nil
}

func joinSink(args []any) (func(seqs.Seq[any]) any, error) {
	if err := arity("join", args, 0, 1); err != nil {
		return nil, err
	}
	sep := ""
	if len(args) == 1 {
		s, ok := args[0].(string)
		if !ok {
			return nil, syntaxErrorf("join: separator must be a string, got %s", Format(args[0]))
		}
		sep = s
	}
	return func(in seqs.Seq[any]) any { return seqs.JoinStr(in, sep) }, nil
}

// Words returns the known source, stage and sink names, sorted.
func Words() (sourceWords, stageWords, sinkWords []string) {
	return slices.Sorted(maps.Keys(sources)), slices.Sorted(maps.Keys(stages)), slices.Sorted(maps.Keys(sinks))
}
