package collections

import (
	"fmt"
	"iter"
	"sort"
)

// Collection is an ordered key/value container. Keys are integers or strings
// ([Key]), each key appears once, and iteration follows insertion order.
//
// Every method that transforms the collection returns a *new* Collection
// that shares no storage with the receiver. Only Push, Pop, Shift, Splice,
// Merge, Set and Forget modify the receiver in place.
//
// # Creating a collection
//
//	c := collections.Of(1, 2, 3, 4, 5)
//	c := collections.FromSlice([]string{"a", "b", "c"})
//	c := collections.FromEntries(collections.E("a", 1), collections.E("b", 2))
//	c := collections.Empty[int]()
//
// # Keys
//
// Operations either keep the original keys (Filter, Map, Unique, Diff,
// When, Unless) or re-index, replacing all keys with 0..n-1 (Values,
// Flatten, Sort, Slice, Fill). Appends use the next free integer key,
// one past the largest integer key seen so far.
//
// # Cursor
//
// Each collection carries a cursor used by First, Last, Next, Prev, Key and
// Valid. It starts on the first entry and is never copied to derived
// collections. A Collection is not safe for concurrent use.
type Collection[V any] struct {
	keys    []Key
	values  []V
	index   map[Key]int
	nextInt int
	cursor  int
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// Of creates a densely indexed Collection from a variadic list of values.
// Of() yields an empty collection.
func Of[V any](values ...V) *Collection[V] {
	return FromSlice(values)
}

// Empty creates an empty Collection of V.
func Empty[V any]() *Collection[V] {
	return withCapacity[V](0)
}

// FromSlice creates a Collection keyed 0..len(values)-1 (the slice is copied).
func FromSlice[V any](values []V) *Collection[V] {
	c := withCapacity[V](len(values))
	for _, v := range values {
		c.append(v)
	}
	return c
}

// FromMap creates a Collection with string keys from m. Go maps are
// unordered, so entries are added in ascending key order.
func FromMap[V any](m map[string]V) *Collection[V] {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)

	c := withCapacity[V](len(m))
	for _, k := range names {
		c.put(StringKey(k), m[k])
	}
	return c
}

// FromEntries creates a Collection from an explicit ordered mapping. A key
// that repeats overwrites the earlier value and keeps its first position.
func FromEntries[V any](entries ...Entry[V]) *Collection[V] {
	c := withCapacity[V](len(entries))
	for _, e := range entries {
		c.put(e.Key, e.Value)
	}
	return c
}

// Collect creates a Collection from a key/value iterator, such as the one
// returned by [Collection.All].
func Collect[V any](seq iter.Seq2[Key, V]) *Collection[V] {
	c := Empty[V]()
	for k, v := range seq {
		c.put(k, v)
	}
	return c
}

func withCapacity[V any](n int) *Collection[V] {
	return &Collection[V]{
		keys:   make([]Key, 0, n),
		values: make([]V, 0, n),
		index:  make(map[Key]int, n),
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Storage primitives
// ─────────────────────────────────────────────────────────────────────────────

// put sets k to v, appending k if it is new.
func (c *Collection[V]) put(k Key, v V) {
	if c.index == nil {
		c.index = make(map[Key]int)
	}
	if pos, ok := c.index[k]; ok {
		c.values[pos] = v
		return
	}
	c.index[k] = len(c.keys)
	c.keys = append(c.keys, k)
	c.values = append(c.values, v)
	if k.IsInt() && k.Int() >= c.nextInt {
		c.nextInt = k.Int() + 1
	}
}

// append adds v under the next free integer key.
func (c *Collection[V]) append(v V) {
	c.put(IntKey(c.nextInt), v)
}

// removeAt deletes the entry at position pos.
func (c *Collection[V]) removeAt(pos int) {
	c.keys = append(c.keys[:pos], c.keys[pos+1:]...)
	c.values = append(c.values[:pos], c.values[pos+1:]...)
	c.rebuildIndex()
	if pos < c.cursor {
		c.cursor--
	}
}

// reset replaces the whole content, re-keying integer keys densely from 0
// while string keys keep their names.
func (c *Collection[V]) reset(keys []Key, values []V) {
	c.keys = make([]Key, 0, len(keys))
	c.values = make([]V, 0, len(values))
	c.index = make(map[Key]int, len(keys))
	c.nextInt = 0
	c.cursor = 0
	for i, k := range keys {
		if k.IsInt() {
			c.append(values[i])
			continue
		}
		c.put(k, values[i])
	}
}

func (c *Collection[V]) rebuildIndex() {
	c.index = make(map[Key]int, len(c.keys))
	for i, k := range c.keys {
		c.index[k] = i
	}
}

// derive returns an empty collection sized like c, for key-preserving
// transformations.
func (c *Collection[V]) derive() *Collection[V] {
	return withCapacity[V](len(c.keys))
}

// Clone returns a copy of c with its own storage. The cursor is not copied.
func (c *Collection[V]) Clone() *Collection[V] {
	out := c.derive()
	out.keys = append(out.keys, c.keys...)
	out.values = append(out.values, c.values...)
	out.rebuildIndex()
	out.nextInt = c.nextInt
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Count returns the number of entries.
func (c *Collection[V]) Count() int { return len(c.keys) }

// IsEmpty reports whether the collection contains no entries.
func (c *Collection[V]) IsEmpty() bool { return len(c.keys) == 0 }

// IsNotEmpty reports whether the collection has at least one entry.
func (c *Collection[V]) IsNotEmpty() bool { return len(c.keys) > 0 }

// Get returns the value stored under k together with a presence flag.
func (c *Collection[V]) Get(k Key) (V, bool) {
	pos, ok := c.index[k]
	if !ok {
		var zero V
		return zero, false
	}
	return c.values[pos], true
}

// Has reports whether k is present.
func (c *Collection[V]) Has(k Key) bool {
	_, ok := c.index[k]
	return ok
}

// Set stores v under k, overwriting in place or appending a new entry.
// It modifies c and returns it for chaining.
func (c *Collection[V]) Set(k Key, v V) *Collection[V] {
	c.put(k, v)
	return c
}

// Forget removes the entry stored under k, if any. Remaining keys are left
// untouched. It modifies c and returns it for chaining.
func (c *Collection[V]) Forget(k Key) *Collection[V] {
	if pos, ok := c.index[k]; ok {
		c.removeAt(pos)
	}
	return c
}

// All returns an iterator over the entries in order.
//
//	for k, v := range c.All() {
//	    fmt.Println(k, v)
//	}
func (c *Collection[V]) All() iter.Seq2[Key, V] {
	return func(yield func(Key, V) bool) {
		for i, k := range c.keys {
			if !yield(k, c.values[i]) {
				return
			}
		}
	}
}

// Entries returns a copy of the entries in order.
func (c *Collection[V]) Entries() []Entry[V] {
	out := make([]Entry[V], len(c.keys))
	for i, k := range c.keys {
		out[i] = Entry[V]{Key: k, Value: c.values[i]}
	}
	return out
}

// ToSlice returns a copy of the values in order, dropping the keys.
func (c *Collection[V]) ToSlice() []V {
	out := make([]V, len(c.values))
	copy(out, c.values)
	return out
}

// ToMap returns the entries as a Go map. Order is lost.
func (c *Collection[V]) ToMap() map[Key]V {
	out := make(map[Key]V, len(c.keys))
	for i, k := range c.keys {
		out[k] = c.values[i]
	}
	return out
}

// Keys returns the keys of c as a new densely indexed collection.
func (c *Collection[V]) Keys() *Collection[Key] {
	return FromSlice(c.keys)
}

// Values returns the values of c re-indexed 0..n-1. The result is always a
// distinct collection, even when c is already densely indexed.
func (c *Collection[V]) Values() *Collection[V] {
	return FromSlice(c.values)
}

// IsList reports whether the keys are exactly 0..n-1 in order.
func (c *Collection[V]) IsList() bool {
	for i, k := range c.keys {
		if !k.IsInt() || k.Int() != i {
			return false
		}
	}
	return true
}

// String returns the JSON representation of the collection (see
// [Collection.ToJSON]). It implements [fmt.Stringer].
func (c *Collection[V]) String() string {
	b, err := c.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", c.Entries())
	}
	return string(b)
}
