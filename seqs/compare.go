package seqs

import (
	"cmp"
	"reflect"
)

// Kind is the category DefaultCompare ranks a value in. Categories are ordered
// as declared.
type Kind int

const (
	KindBool      Kind = iota // bool and types derived from it
	KindNumber                // integers and floats of any size
	KindString                // string and types derived from it
	KindOther                 // structs, non-nil pointers, slices, maps, ...
	KindNull                  // a nil pointer, slice, map, chan, func stored in an interface
	KindUndefined             // the untyped nil interface
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindOther:
		return "other"
	case KindNull:
		return "null"
	case KindUndefined:
		return "undefined"
	}
	return "unknown"
}

// Rank returns the category of v.
func Rank(v any) Kind {
	if v == nil {
		return KindUndefined
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return KindBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return KindNumber
	case reflect.String:
		return KindString
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		if rv.IsNil() {
			return KindNull
		}
	}
	return KindOther
}

// DefaultCompare imposes a total order over values of any type:
//
//	bool < number < string < other < null < undefined
//
// Within bool, number and string, values compare with < and > (false < true,
// NaN equal to everything). Values in the other categories are all equal to
// each other, so a stable sort keeps their input order.
func DefaultCompare(a, b any) int {
	ka, kb := Rank(a), Rank(b)
	if ka != kb {
		return cmp.Compare(ka, kb)
	}
	switch ka {
	case KindBool:
		x, y := reflect.ValueOf(a).Bool(), reflect.ValueOf(b).Bool()
		switch {
		case x == y:
			return 0
		case !x:
			return -1
		}
		return 1
	case KindNumber:
		return compareNumbers(reflect.ValueOf(a), reflect.ValueOf(b))
	case KindString:
		return cmp.Compare(reflect.ValueOf(a).String(), reflect.ValueOf(b).String())
	}
	return 0
}

func compareNumbers(x, y reflect.Value) int {
	switch {
	case x.CanInt() && y.CanInt():
		return cmp.Compare(x.Int(), y.Int())
	case x.CanUint() && y.CanUint():
		return cmp.Compare(x.Uint(), y.Uint())
	}
	fx, fy := asFloat(x), asFloat(y)
	switch {
	case fx < fy:
		return -1
	case fx > fy:
		return 1
	}
	return 0
}

func asFloat(v reflect.Value) float64 {
	switch {
	case v.CanInt():
		return float64(v.Int())
	case v.CanUint():
		return float64(v.Uint())
	}
	return v.Float()
}
