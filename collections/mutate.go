package collections

// ─────────────────────────────────────────────────────────────────────────────
// In-place mutation
//
// These methods change the receiver. Pop, Shift, Splice and Merge also
// rewind the cursor to the first entry.
// ─────────────────────────────────────────────────────────────────────────────

// Push appends values under the next free integer keys and returns c for
// chaining.
func (c *Collection[V]) Push(values ...V) *Collection[V] {
	for _, v := range values {
		c.append(v)
	}
	return c
}

// Pop removes and returns the last value. Returns the zero value and false
// when the collection is empty.
func (c *Collection[V]) Pop() (V, bool) {
	var zero V
	n := len(c.keys)
	if n == 0 {
		return zero, false
	}
	k, v := c.keys[n-1], c.values[n-1]
	c.keys[n-1] = Key{}
	c.values[n-1] = zero
	c.keys = c.keys[:n-1]
	c.values = c.values[:n-1]
	delete(c.index, k)
	if k.IsInt() && k.Int() == c.nextInt-1 {
		c.nextInt--
	}
	c.cursor = 0
	return v, true
}

// Shift removes and returns the first value. Integer keys of the remaining
// entries are renumbered from 0; string keys are kept. Returns the zero
// value and false when the collection is empty.
func (c *Collection[V]) Shift() (V, bool) {
	if len(c.keys) == 0 {
		var zero V
		return zero, false
	}
	v := c.values[0]
	c.reset(c.keys[1:], c.values[1:])
	return v, true
}

// Splice removes length values starting at position offset, inserts
// replacements in their place, and returns the removed values as a new
// densely indexed collection. Pass [ToEnd] as length to remove everything
// from offset on.
//
// A negative offset counts from the end; a negative length leaves that many
// values at the end. Afterwards the integer keys of c are renumbered from 0
// and string keys are kept.
//
//	c := collections.Of("red", "green", "yellow", "blue")
//	removed := c.Splice(2, collections.ToEnd) // removed: [yellow blue], c: [red green]
func (c *Collection[V]) Splice(offset, length int, replacements ...V) *Collection[V] {
	from, to := bounds(len(c.keys), offset, length)
	removed := FromSlice(c.values[from:to])

	keys := make([]Key, 0, len(c.keys)-(to-from)+len(replacements))
	values := make([]V, 0, cap(keys))
	keys = append(keys, c.keys[:from]...)
	values = append(values, c.values[:from]...)
	for _, r := range replacements {
		keys = append(keys, IntKey(0))
		values = append(values, r)
	}
	keys = append(keys, c.keys[to:]...)
	values = append(values, c.values[to:]...)

	c.reset(keys, values)
	return removed
}

// Merge appends the entries of every source to c, in the order given, and
// returns c for chaining. Integer-keyed entries (of c and of the sources)
// are renumbered from 0; a string key that already exists is overwritten in
// place, a new one is appended.
func (c *Collection[V]) Merge(sources ...*Collection[V]) *Collection[V] {
	keys := make([]Key, len(c.keys))
	values := make([]V, len(c.values))
	copy(keys, c.keys)
	copy(values, c.values)
	c.reset(keys, values)

	for _, src := range sources {
		if src == nil {
			continue
		}
		for i, k := range src.keys {
			if k.IsInt() {
				c.append(src.values[i])
				continue
			}
			c.put(k, src.values[i])
		}
	}
	return c
}

// MergeSlice appends plain values to c, as Merge does for a densely indexed
// source.
func (c *Collection[V]) MergeSlice(values ...[]V) *Collection[V] {
	sources := make([]*Collection[V], len(values))
	for i, vs := range values {
		sources[i] = FromSlice(vs)
	}
	return c.Merge(sources...)
}
