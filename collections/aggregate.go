package collections

import (
	"fmt"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Aggregation
// ─────────────────────────────────────────────────────────────────────────────

// Sum returns the sum of all values. Numbers, numeric strings and bools are
// coerced; any other value fails with [ErrNotNumeric].
func (c *Collection[V]) Sum() (float64, error) {
	return sumOf(c.anyValues())
}

// SumField returns the sum of the named field over all records. Records
// without the field are skipped, as in [Collection.Column].
func (c *Collection[V]) SumField(field string) (float64, error) {
	col, err := c.Column(field)
	if err != nil {
		return 0, err
	}
	return sumOf(col.values)
}

// SumFunc returns the sum of fn(value) over all values.
func (c *Collection[V]) SumFunc(fn func(V) float64) float64 {
	var sum float64
	for _, v := range c.values {
		sum += fn(v)
	}
	return sum
}

func sumOf(values []any) (float64, error) {
	var sum float64
	for i, v := range values {
		f, ok := toFloat(v)
		if !ok {
			return 0, fmt.Errorf("%w: %T at position %d", ErrNotNumeric, v, i)
		}
		sum += f
	}
	return sum, nil
}

// Average returns the arithmetic mean of all values. An empty collection
// fails with [ErrDivisionByZero].
func (c *Collection[V]) Average() (float64, error) {
	return averageOf(c.anyValues())
}

// AverageField returns the mean of the named field over the records that
// have it. When no record has it, the result is [ErrDivisionByZero].
func (c *Collection[V]) AverageField(field string) (float64, error) {
	col, err := c.Column(field)
	if err != nil {
		return 0, err
	}
	return averageOf(col.values)
}

func averageOf(values []any) (float64, error) {
	if len(values) == 0 {
		return 0, ErrDivisionByZero
	}
	sum, err := sumOf(values)
	if err != nil {
		return 0, err
	}
	return sum / float64(len(values)), nil
}

// Reduce folds the values from left to right: carry starts at initial (the
// zero value of V when omitted) and becomes fn(carry, value) at each step.
//
// For a result of a different type, use the package-level [Reduce].
func (c *Collection[V]) Reduce(fn func(carry, item V) V, initial ...V) V {
	var result V
	if len(initial) > 0 {
		result = initial[0]
	}
	for _, v := range c.values {
		result = fn(result, v)
	}
	return result
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration & predicates
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(value, key) for every entry in order. Returning false from
// fn stops the iteration.
func (c *Collection[V]) Each(fn func(V, Key) bool) {
	for i, k := range c.keys {
		if !fn(c.values[i], k) {
			return
		}
	}
}

// Every reports whether fn(value, key) holds for every entry. It is true
// for an empty collection.
func (c *Collection[V]) Every(fn func(V, Key) bool) bool {
	for i, k := range c.keys {
		if !fn(c.values[i], k) {
			return false
		}
	}
	return true
}

// Some reports whether fn(value, key) holds for at least one entry.
func (c *Collection[V]) Some(fn func(V, Key) bool) bool {
	_, found := c.FindIndex(fn)
	return found
}

// Includes reports whether the collection holds a value loosely equal to
// value (see [LooseEqual]).
func (c *Collection[V]) Includes(value V) bool {
	_, found := c.IndexOf(value, false)
	return found
}

// IndexOf returns the key of the first value equal to value. With strict,
// equality is [StrictEqual]; otherwise [LooseEqual]. Returns false when no
// value matches.
func (c *Collection[V]) IndexOf(value V, strict bool) (Key, bool) {
	equal := LooseEqual
	if strict {
		equal = StrictEqual
	}
	for i, k := range c.keys {
		if equal(any(c.values[i]), any(value)) {
			return k, true
		}
	}
	return Key{}, false
}

// Join concatenates the string form of the values separated by glue. When
// lastGlue is given and there are at least two values, it is prefixed to
// the final value:
//
//	collections.Of(1, 2, 3).Join(", ")         // "1, 2, 3"
//	collections.Of(1, 2, 3).Join(",", " and ") // "1,2, and 3"
//
// Strings are used as-is, numbers in shortest decimal form, true as "1",
// false and nil as "". An empty lastGlue counts as absent.
func (c *Collection[V]) Join(glue string, lastGlue ...string) string {
	parts := make([]string, len(c.values))
	for i, v := range c.values {
		parts[i] = toString(v)
	}
	if len(lastGlue) > 0 && lastGlue[0] != "" && len(parts) > 1 {
		parts[len(parts)-1] = lastGlue[0] + parts[len(parts)-1]
	}
	return strings.Join(parts, glue)
}
