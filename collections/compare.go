package collections

import (
	"cmp"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// toString renders v the way Join and composite keys see it: strings as-is,
// integers and floats in their shortest decimal form, true as "1", false and
// nil as "", and everything else through fmt's %v.
func toString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		if t {
			return "1"
		}
		return ""
	case Key:
		return t.String()
	case fmt.Stringer:
		return t.String()
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64)
	case reflect.String:
		return rv.String()
	}
	return fmt.Sprintf("%v", v)
}

// toFloat coerces numbers, numeric strings and bools to float64.
func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case nil:
		return 0, false
	case bool:
		if t {
			return 1, true
		}
		return 0, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(rv.String()), 64)
		return f, err == nil
	}
	return 0, false
}

// isNumber reports whether v is of an integer or floating-point kind.
func isNumber(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// LooseEqual reports whether a and b are equal under loose comparison:
// numbers of any kind compare by numeric value, a number equals a string
// holding the same number, and everything else compares with deep equality
// (recursing loosely into slices and string-keyed maps).
//
//	LooseEqual(1, 1.0)   // true
//	LooseEqual(1, "1")   // true
//	LooseEqual("a", "A") // false
func LooseEqual(a, b any) bool {
	if isNumber(a) || isNumber(b) {
		fa, okA := toFloat(a)
		fb, okB := toFloat(b)
		if okA && okB && (isNumber(a) || isNumericString(a)) && (isNumber(b) || isNumericString(b)) {
			return fa == fb
		}
		return false
	}

	switch ta := a.(type) {
	case []any:
		tb, ok := b.([]any)
		if !ok || len(ta) != len(tb) {
			return false
		}
		for i := range ta {
			if !LooseEqual(ta[i], tb[i]) {
				return false
			}
		}
		return true
	case map[string]any:
		tb, ok := b.(map[string]any)
		if !ok || len(ta) != len(tb) {
			return false
		}
		for k, va := range ta {
			vb, ok := tb[k]
			if !ok || !LooseEqual(va, vb) {
				return false
			}
		}
		return true
	case *Collection[any]:
		tb, ok := b.(*Collection[any])
		if !ok || ta.Count() != tb.Count() {
			return false
		}
		for i, k := range ta.keys {
			if tb.keys[i] != k || !LooseEqual(ta.values[i], tb.values[i]) {
				return false
			}
		}
		return true
	}
	return reflect.DeepEqual(a, b)
}

// StrictEqual reports whether a and b have the same dynamic type and are
// deeply equal.
func StrictEqual(a, b any) bool {
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	return reflect.DeepEqual(a, b)
}

func isNumericString(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	_, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil
}

// Compare is the natural ordering used by Sort and SortDesc without a key
// function. Numbers and numeric strings compare numerically, other strings
// lexically, and mixed or composite values by their string form. The result
// is -1, 0 or +1.
func Compare(a, b any) int {
	fa, okA := toFloat(a)
	fb, okB := toFloat(b)
	_, boolA := a.(bool)
	_, boolB := b.(bool)
	if okA && okB && !boolA && !boolB {
		if math.IsNaN(fa) || math.IsNaN(fb) {
			return cmp.Compare(toString(a), toString(b))
		}
		return cmp.Compare(fa, fb)
	}
	if sa, ok := a.(string); ok {
		if sb, ok := b.(string); ok {
			return strings.Compare(sa, sb)
		}
	}
	return strings.Compare(toString(a), toString(b))
}

// fingerprint is the identity used by Unique and Diff without columns.
func fingerprint(v any) string {
	switch v.(type) {
	case nil, string, bool:
		return toString(v)
	}
	if isNumber(v) {
		return toString(v)
	}
	return fmt.Sprintf("%T:%v", v, v)
}
