package pipeline

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Op is an operator argument such as + or <=.
type Op string

// Word is a bare identifier argument such as even.
type Word string

func asFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case int64:
		return float64(x), true
	case float64:
		return x, true
	}
	return 0, false
}

func arith(op Op, a, b any) any {
	if x, ok := a.(int64); ok {
		if y, ok := b.(int64); ok {
			return intArith(op, x, y)
		}
	}
	x, okx := asFloat(a)
	y, oky := asFloat(b)
	if !okx || !oky {
		panic(evalErrorf("cannot apply %s to %s and %s", op, Format(a), Format(b)))
	}
	switch op {
	case "+":
		return x + y
	case "-":
		return x - y
	case "*":
		return x * y
	case "/":
		return x / y
	case "%":
		return math.Mod(x, y)
	}
	panic(evalErrorf("unknown operator %s", op))
}

func intArith(op Op, x, y int64) any {
	switch op {
	case "+":
		return x + y
	case "-":
		return x - y
	case "*":
		return x * y
	case "/", "%":
		if y == 0 {
			panic(evalErrorf("integer division by zero"))
		}
		if op == "/" {
			return x / y
		}
		return x % y
	}
	panic(evalErrorf("unknown operator %s", op))
}

// RowKey stands in for a non-comparable value (a chunk or window) where a map
// key is needed. It holds the value's Format output and prints as that text.
type RowKey string

// hashKey maps v to a value usable as a map key. Values of non-comparable
// types are keyed by a RowKey of their printed form.
func hashKey(v any) any {
	if v == nil {
		return nil
	}
	if reflect.TypeOf(v).Comparable() {
		return v
	}
	return RowKey(Format(v))
}

// Format prints a pipeline value the way it would be written as a literal.
func Format(v any) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case string:
		return strconv.Quote(x)
	case RowKey:
		return string(x)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case []any:
		parts := make([]string, len(x))
		for i, e := range x {
			parts[i] = Format(e)
		}
		return "[" + strings.Join(parts, " ") + "]"
	}
	return fmt.Sprint(v)
}
