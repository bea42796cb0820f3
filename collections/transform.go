package collections

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strings"
)

// ToEnd stands for "through the last entry" wherever a length or an end
// position is optional: Splice(2, ToEnd) removes everything from position 2,
// Fill(1, ToEnd, v) fills from position 1 to the last position.
const ToEnd = math.MaxInt

// FlattenAll is the Flatten depth that expands every nesting level.
const FlattenAll = math.MaxInt

// compositeSeparator joins the stringified column values of a composite key.
const compositeSeparator = "|"

// ─────────────────────────────────────────────────────────────────────────────
// Mapping & filtering (key-preserving)
// ─────────────────────────────────────────────────────────────────────────────

// Map returns a new collection with every value replaced by fn(value, key).
// Keys are preserved.
//
// For a result of a different value type, use the package-level [Map].
func (c *Collection[V]) Map(fn func(V, Key) V) *Collection[V] {
	out := c.derive()
	for i, k := range c.keys {
		out.put(k, fn(c.values[i], k))
	}
	return out
}

// Filter returns a new collection with the entries for which fn(value, key)
// returns true. Original keys are preserved; call Values on the result for
// a densely indexed collection.
func (c *Collection[V]) Filter(fn func(V, Key) bool) *Collection[V] {
	out := c.derive()
	for i, k := range c.keys {
		if fn(c.values[i], k) {
			out.put(k, c.values[i])
		}
	}
	return out
}

// Reject returns a new collection without the entries for which fn returns
// true. It is the complement of [Collection.Filter].
func (c *Collection[V]) Reject(fn func(V, Key) bool) *Collection[V] {
	return c.Filter(func(v V, k Key) bool { return !fn(v, k) })
}

// When returns the entries for which fn(value, key) holds, keeping keys.
func (c *Collection[V]) When(fn func(V, Key) bool) *Collection[V] {
	return c.Filter(fn)
}

// Unless returns the entries for which fn(value, key) does not hold,
// keeping keys.
func (c *Collection[V]) Unless(fn func(V, Key) bool) *Collection[V] {
	return c.Reject(fn)
}

// ─────────────────────────────────────────────────────────────────────────────
// Search
// ─────────────────────────────────────────────────────────────────────────────

// Find returns the first value, in insertion order, for which fn(value, key)
// returns true. Returns the zero value and false when nothing matches.
func (c *Collection[V]) Find(fn func(V, Key) bool) (V, bool) {
	for i, k := range c.keys {
		if fn(c.values[i], k) {
			return c.values[i], true
		}
	}
	var zero V
	return zero, false
}

// FindIndex returns the key of the first entry for which fn(value, key)
// returns true, and false when nothing matches.
func (c *Collection[V]) FindIndex(fn func(V, Key) bool) (Key, bool) {
	for i, k := range c.keys {
		if fn(c.values[i], k) {
			return k, true
		}
	}
	return Key{}, false
}

// ─────────────────────────────────────────────────────────────────────────────
// Restructuring
// ─────────────────────────────────────────────────────────────────────────────

// Flatten concatenates nested values into a single densely indexed
// collection, expanding at most depth levels of nesting (default 1, use
// [FlattenAll] for no limit). Values nested deeper than depth are kept as
// they are.
//
// Values are taken from the front of a work queue. A nested value with
// levels left to expand has its children pushed onto the back of the
// queue, so they follow everything already queued; on its last level its
// children go straight to the result.
//
// Nested values are collections, slices and arrays (except []byte), and
// string-keyed maps, whose values are taken in ascending key order.
//
//	c := collections.Of[any](1, 2, 3, []any{4, 5, []any{6, 7}})
//	c.Flatten()  // → [1 2 3 4 5 [6 7]]
//	c.Flatten(2) // → [1 2 3 4 5 6 7]
//
//	collections.Of[any]([]any{1, []any{2}}, 3).Flatten(2) // → [3 1 2]
func (c *Collection[V]) Flatten(depth ...int) *Collection[any] {
	limit := 1
	if len(depth) > 0 && depth[0] > 1 {
		limit = depth[0]
	}

	type pending struct {
		value     any
		remaining int
	}
	values := c.anyValues()
	queue := make([]pending, len(values))
	for i, v := range values {
		queue[i] = pending{value: v, remaining: limit}
	}

	out := withCapacity[any](len(values))
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		children, ok := nestedValues(item.value)
		switch {
		case !ok:
			out.append(item.value)
		case item.remaining > 1:
			for _, child := range children {
				queue = append(queue, pending{value: child, remaining: item.remaining - 1})
			}
		default:
			for _, child := range children {
				out.append(child)
			}
		}
	}
	return out
}

// anyValues returns the values boxed as any.
func (c *Collection[V]) anyValues() []any {
	out := make([]any, len(c.values))
	for i, v := range c.values {
		out[i] = v
	}
	return out
}

// anyEntries returns the entries with values boxed as any.
func (c *Collection[V]) anyEntries() []Entry[any] {
	out := make([]Entry[any], len(c.keys))
	for i, k := range c.keys {
		out[i] = Entry[any]{Key: k, Value: c.values[i]}
	}
	return out
}

// boxed is implemented by every *Collection[V], whatever V is.
type boxed interface {
	anyValues() []any
	anyEntries() []Entry[any]
}

// nestedValues returns the child values of a container value.
func nestedValues(v any) ([]any, bool) {
	switch t := v.(type) {
	case nil:
		return nil, false
	case boxed:
		return t.anyValues(), true
	case []any:
		return t, true
	case map[string]any:
		names := make([]string, 0, len(t))
		for k := range t {
			names = append(names, k)
		}
		sort.Strings(names)
		out := make([]any, len(names))
		for i, k := range names {
			out[i] = t[k]
		}
		return out, true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return nil, false
		}
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out, true
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		keys := rv.MapKeys()
		sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
		out := make([]any, len(keys))
		for i, k := range keys {
			out[i] = rv.MapIndex(k).Interface()
		}
		return out, true
	}
	return nil, false
}

// GroupBy partitions the entries into buckets keyed by the value of field.
// Each bucket is a densely indexed *Collection[V] holding the entries that
// share the field value, in their original relative order; the buckets
// appear in order of first occurrence.
//
// Only the first entry is checked for the field: when the collection is
// empty or the first entry lacks the field, the result is a copy of c
// (values boxed as any, keys preserved). A later entry without the field
// fails with [ErrFieldNotFound].
//
//	groups, _ := people.GroupBy("team")
//	red, _ := groups.Get(collections.StringKey("red")) // a *Collection[V] boxed as any
func (c *Collection[V]) GroupBy(field string) (*Collection[any], error) {
	if c.IsEmpty() || !HasField(any(c.values[0]), field) {
		return FromEntries(c.anyEntries()...), nil
	}

	buckets := make(map[Key]*Collection[V])
	var order []Key
	for _, v := range c.values {
		fv, err := FieldOf(any(v), field)
		if err != nil {
			return nil, err
		}
		k, err := KeyOf(fv)
		if err != nil {
			return nil, fmt.Errorf("collections: group by %q: %w", field, err)
		}
		bucket, ok := buckets[k]
		if !ok {
			bucket = Empty[V]()
			buckets[k] = bucket
			order = append(order, k)
		}
		bucket.append(v)
	}

	out := withCapacity[any](len(order))
	for _, k := range order {
		out.put(k, buckets[k])
	}
	return out, nil
}

// Unique returns the entries whose value was not seen earlier, keeping the
// first occurrence and its original key.
//
// Without columns, values are compared by their string form, so 1 and "1"
// are duplicates. With one or more column names, entries are compared by a
// composite key built from those fields; a missing field fails with
// [ErrFieldNotFound].
//
//	collections.Of(1, 2, 2, 3, 1, 5, 1, 3).Unique() // → {0:1 1:2 3:3 5:5}
//	users.Unique("id", "age")
func (c *Collection[V]) Unique(columns ...string) (*Collection[V], error) {
	if len(columns) == 0 {
		return c.UniqueBy(func(v V) any { return fingerprint(v) }), nil
	}

	seen := make(map[string]struct{}, len(c.values))
	out := c.derive()
	for i, k := range c.keys {
		ck, err := compositeKey(c.values[i], columns)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[ck]; dup {
			continue
		}
		seen[ck] = struct{}{}
		out.put(k, c.values[i])
	}
	return out, nil
}

// UniqueBy returns the entries whose fn(value) was not seen earlier, keeping
// the first occurrence and its original key. fn must return a comparable
// value.
func (c *Collection[V]) UniqueBy(fn func(V) any) *Collection[V] {
	seen := make(map[any]struct{}, len(c.values))
	return c.Filter(func(v V, _ Key) bool {
		id := fn(v)
		if _, dup := seen[id]; dup {
			return false
		}
		seen[id] = struct{}{}
		return true
	})
}

// compositeKey joins the string form of the named fields of v.
func compositeKey(v any, columns []string) (string, error) {
	parts := make([]string, len(columns))
	for i, col := range columns {
		fv, err := FieldOf(v, col)
		if err != nil {
			return "", err
		}
		parts[i] = toString(fv)
	}
	return strings.Join(parts, compositeSeparator), nil
}

// Diff returns the entries of c whose value is not present in other,
// keeping the original keys.
//
// Without columns, values are compared by their string form. With columns,
// an entry counts as present when some entry of other has equal values in
// every named field. A nil other counts as empty.
func (c *Collection[V]) Diff(other *Collection[V], columns ...string) (*Collection[V], error) {
	if other == nil {
		other = Empty[V]()
	}
	identity := func(v V) (string, error) { return fingerprint(v), nil }
	if len(columns) > 0 {
		identity = func(v V) (string, error) { return compositeKey(v, columns) }
	}

	present := make(map[string]struct{}, other.Count())
	for _, v := range other.values {
		id, err := identity(v)
		if err != nil {
			return nil, err
		}
		present[id] = struct{}{}
	}

	out := c.derive()
	for i, k := range c.keys {
		id, err := identity(c.values[i])
		if err != nil {
			return nil, err
		}
		if _, found := present[id]; !found {
			out.put(k, c.values[i])
		}
	}
	return out, nil
}

// DiffSlice is [Collection.Diff] against a plain slice of values.
func (c *Collection[V]) DiffSlice(other []V, columns ...string) (*Collection[V], error) {
	return c.Diff(FromSlice(other), columns...)
}

// Column projects every record onto one field. An empty field name keeps
// the whole record. When indexBy is given, the result is keyed by that
// field's value instead of 0..n-1.
//
// Records lacking field are skipped, and records lacking indexBy are
// appended under the next integer key. A value that is not a record fails
// with [ErrNotAccessible].
//
//	users.Column("name")       // → ["John", "Carter", "Steve"]
//	users.Column("name", "id") // → {1:"John", 2:"Carter", 3:"Steve"}
//	users.Column("", "id")     // → {1:{...}, 2:{...}, 3:{...}}
func (c *Collection[V]) Column(field string, indexBy ...string) (*Collection[any], error) {
	out := withCapacity[any](len(c.values))
	for _, v := range c.values {
		record := any(v)
		value := record
		if field != "" {
			fv, found, accessible := lookupField(record, field)
			if !accessible {
				return nil, fmt.Errorf("%w: %T (field %q)", ErrNotAccessible, record, field)
			}
			if !found {
				continue
			}
			value = fv
		}

		if len(indexBy) == 0 || indexBy[0] == "" {
			out.append(value)
			continue
		}
		iv, found, _ := lookupField(record, indexBy[0])
		if !found {
			out.append(value)
			continue
		}
		k, err := KeyOf(iv)
		if err != nil {
			return nil, fmt.Errorf("collections: column index %q: %w", indexBy[0], err)
		}
		out.put(k, value)
	}
	return out, nil
}

// Reverse returns the entries in reverse order. String keys travel with
// their values; integer keys are renumbered 0..n-1 in the new order.
func (c *Collection[V]) Reverse() *Collection[V] {
	n := len(c.keys)
	keys := make([]Key, n)
	values := make([]V, n)
	for i := range c.keys {
		keys[n-1-i] = c.keys[i]
		values[n-1-i] = c.values[i]
	}
	out := c.derive()
	out.reset(keys, values)
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing & filling (re-indexing)
// ─────────────────────────────────────────────────────────────────────────────

// bounds resolves an offset/length pair over n items: a negative offset
// counts from the end, a negative length stops that many items before the
// end, and ToEnd (or any overshoot) runs to the end.
func bounds(n, offset, length int) (from, to int) {
	from = offset
	if from < 0 {
		from += n
		if from < 0 {
			from = 0
		}
	}
	if from > n {
		from = n
	}

	switch {
	case length < 0:
		to = n + length
		if to < from {
			to = from
		}
	case length > n-from:
		to = n
	default:
		to = from + length
	}
	return from, to
}

// Slice returns the values starting at position start, at most length of
// them (default: all remaining), re-indexed 0..n-1. A negative start counts
// from the end; a negative length stops that many values before the end.
//
//	collections.Of(1, 2, 3, 4, 5).Slice(2)     // → [3 4 5]
//	collections.Of(1, 2, 3, 4, 5).Slice(-2)    // → [4 5]
//	collections.Of(1, 2, 3, 4, 5).Slice(1, 2)  // → [2 3]
func (c *Collection[V]) Slice(start int, length ...int) *Collection[V] {
	l := ToEnd
	if len(length) > 0 {
		l = length[0]
	}
	from, to := bounds(len(c.values), start, l)
	return FromSlice(c.values[from:to])
}

// Fill returns a new, densely indexed collection in which positions start
// through end (inclusive) hold value. Pass [ToEnd] as end to fill through
// the last position. Values before start and after end are copied from c;
// positions past the end of c are appended.
//
// When the resolved end is 0 or less, or start lies past end, the result is
// an unchanged copy of c.
//
//	collections.Of("a", "b", "c", "d").Fill(1, 3, "x") // → [a x x x]
//	collections.Empty[string]().Fill(0, 2, "x")       // → [x x x]
func (c *Collection[V]) Fill(start, end int, value V) *Collection[V] {
	n := len(c.values)
	if end == ToEnd {
		end = n - 1
	}
	if end <= 0 {
		return c.Clone()
	}
	if start < 0 {
		start = 0
	}
	if start > end {
		return c.Clone()
	}

	prefix := start
	if prefix > n {
		prefix = n
	}
	values := make([]V, 0, max(n, end+1))
	values = append(values, c.values[:prefix]...)
	for i := start; i <= end; i++ {
		values = append(values, value)
	}
	if end+1 < n {
		values = append(values, c.values[end+1:]...)
	}
	return FromSlice(values)
}
