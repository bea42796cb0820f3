package collections

import "iter"

// Enumerable is the read-only surface of [Collection][V].
//
// Accept Enumerable in your own functions and interfaces so that consumers
// can substitute alternative implementations without depending on the
// concrete *Collection type.
type Enumerable[V any] interface {
	// All returns an iterator over the entries in order.
	All() iter.Seq2[Key, V]

	// Count returns the number of entries.
	Count() int

	// Each calls fn(value, key) for every entry until fn returns false.
	Each(fn func(V, Key) bool)

	// Get returns the value stored under k together with a presence flag.
	Get(k Key) (V, bool)

	// Has reports whether k is present.
	Has(k Key) bool

	// IsEmpty reports whether the collection contains no entries.
	IsEmpty() bool

	// IsNotEmpty reports whether the collection has at least one entry.
	IsNotEmpty() bool

	// Filter returns a new collection with the entries for which fn holds,
	// keys preserved.
	Filter(fn func(V, Key) bool) *Collection[V]

	// Reject is the inverse of Filter.
	Reject(fn func(V, Key) bool) *Collection[V]

	// ToSlice returns the values in order, dropping the keys.
	ToSlice() []V
}

var _ Enumerable[int] = (*Collection[int])(nil)
