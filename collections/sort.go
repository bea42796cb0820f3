package collections

import (
	"cmp"
	"sort"
)

// Sort returns the values in ascending order, re-indexed 0..n-1.
//
// Without fn, values are ordered by [Compare]. With fn, they are ordered by
// Compare(fn(a), fn(b)). The sort is stable: values that compare equal keep
// their original relative order.
//
//	books.Sort(func(b Book) any { return b.Pages })
func (c *Collection[V]) Sort(fn ...func(V) any) *Collection[V] {
	return c.sortWith(keyCompare(fn), false)
}

// SortDesc is [Collection.Sort] in descending order. Equal values still keep
// their original relative order.
func (c *Collection[V]) SortDesc(fn ...func(V) any) *Collection[V] {
	return c.sortWith(keyCompare(fn), true)
}

// SortFunc returns the values ordered by the three-way comparison compare
// (negative when a sorts first), re-indexed 0..n-1. The sort is stable.
func (c *Collection[V]) SortFunc(compare func(a, b V) int) *Collection[V] {
	return c.sortWith(compare, false)
}

func keyCompare[V any](fn []func(V) any) func(a, b V) int {
	if len(fn) == 0 || fn[0] == nil {
		return func(a, b V) int { return Compare(a, b) }
	}
	key := fn[0]
	return func(a, b V) int { return Compare(key(a), key(b)) }
}

func (c *Collection[V]) sortWith(compare func(a, b V) int, desc bool) *Collection[V] {
	out := make([]V, len(c.values))
	copy(out, c.values)
	sort.SliceStable(out, func(i, j int) bool {
		if desc {
			return compare(out[i], out[j]) > 0
		}
		return compare(out[i], out[j]) < 0
	})
	return FromSlice(out)
}

// SortBy returns the values of c ordered ascending by the key fn extracts,
// re-indexed 0..n-1. The sort is stable.
//
//	byAge := collections.SortBy(people, func(p Person) int { return p.Age })
func SortBy[V any, K cmp.Ordered](c *Collection[V], fn func(V) K) *Collection[V] {
	return c.sortWith(func(a, b V) int { return cmp.Compare(fn(a), fn(b)) }, false)
}

// SortByDesc is [SortBy] in descending order.
func SortByDesc[V any, K cmp.Ordered](c *Collection[V], fn func(V) K) *Collection[V] {
	return c.sortWith(func(a, b V) int { return cmp.Compare(fn(a), fn(b)) }, true)
}
