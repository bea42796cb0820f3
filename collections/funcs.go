package collections

// This file contains package-level generic functions for operations that
// change the value type of a collection (V ≠ U).
//
// Go generics do not allow methods to introduce their own type parameters, so
// these operations must be stand-alone functions. They compose with method
// chains:
//
//	labels := collections.Map(
//	    collections.Of(1, 2, 3, 4).Filter(func(n int, _ collections.Key) bool { return n%2 == 0 }),
//	    func(n int, _ collections.Key) string { return strconv.Itoa(n) },
//	) // → {1:"2", 3:"4"}

// Map applies fn to every entry and returns a new Collection[U] with the
// same keys.
func Map[V, U any](c *Collection[V], fn func(V, Key) U) *Collection[U] {
	out := withCapacity[U](len(c.keys))
	for i, k := range c.keys {
		out.put(k, fn(c.values[i], k))
	}
	return out
}

// Reduce folds c into a single value of type U, from left to right.
//
//	total := collections.Reduce(orders,
//	    func(acc float64, o Order, _ collections.Key) float64 { return acc + o.Amount }, 0)
func Reduce[V, U any](c *Collection[V], fn func(U, V, Key) U, initial U) U {
	result := initial
	for i, k := range c.keys {
		result = fn(result, c.values[i], k)
	}
	return result
}

// Pluck extracts a U from every value, keeping the keys.
//
//	names := collections.Pluck(users, func(u User) string { return u.Name })
func Pluck[V, U any](c *Collection[V], fn func(V) U) *Collection[U] {
	return Map(c, func(v V, _ Key) U { return fn(v) })
}

// GroupByFunc partitions c into buckets keyed by fn(value, key). Buckets are
// densely indexed and appear in order of first occurrence.
//
//	byDept := collections.GroupByFunc(employees,
//	    func(e Employee, _ collections.Key) collections.Key { return collections.StringKey(e.Dept) })
func GroupByFunc[V any](c *Collection[V], fn func(V, Key) Key) *Collection[*Collection[V]] {
	groups := Empty[*Collection[V]]()
	for i, k := range c.keys {
		g := fn(c.values[i], k)
		bucket, ok := groups.Get(g)
		if !ok {
			bucket = Empty[V]()
			groups.put(g, bucket)
		}
		bucket.append(c.values[i])
	}
	return groups
}

// KeyBy re-keys c by fn(value). When several values produce the same key,
// the last one wins and keeps the position of the first.
func KeyBy[V any](c *Collection[V], fn func(V) Key) *Collection[V] {
	out := withCapacity[V](len(c.keys))
	for _, v := range c.values {
		out.put(fn(v), v)
	}
	return out
}

// Box converts c into a Collection[any] with the same entries.
func Box[V any](c *Collection[V]) *Collection[any] {
	return FromEntries(c.anyEntries()...)
}
