package collections

import "fmt"

// Entry is one key/value pair of a [Collection], in the collection's order.
type Entry[V any] struct {
	Key   Key `json:"key" yaml:"key"`
	Value V   `json:"value" yaml:"value"`
}

// E builds an Entry from a key that is either an int or a string (or a
// [Key]). It panics on any other key type; use [KeyOf] to convert
// arbitrary values with an error instead.
//
//	c := collections.FromEntries(collections.E("a", 1), collections.E(10, 2))
func E[V any](key any, value V) Entry[V] {
	k, err := KeyOf(key)
	if err != nil {
		panic(err)
	}
	return Entry[V]{Key: k, Value: value}
}

// String returns a human-readable representation: "key => value".
func (e Entry[V]) String() string {
	return fmt.Sprintf("%#v => %v", e.Key, e.Value)
}
