package collections

import "fmt"

// cursorInvalid marks a cursor that has moved past either end.
const cursorInvalid = -1

// First moves the cursor to the first entry and returns its value.
// Returns the zero value and false when the collection is empty.
func (c *Collection[V]) First() (V, bool) {
	c.cursor = 0
	return c.Current()
}

// Last moves the cursor to the last entry and returns its value.
// Returns the zero value and false when the collection is empty.
func (c *Collection[V]) Last() (V, bool) {
	c.cursor = len(c.keys) - 1
	if c.cursor < 0 {
		c.cursor = 0
	}
	return c.Current()
}

// Next advances the cursor and returns the value it lands on. A fresh
// collection's cursor sits on the first entry, so the first call to Next
// yields the second value.
//
// Returns the zero value and false once the cursor moves past the last
// entry, and keeps returning false until First, Last or Rewind is called.
func (c *Collection[V]) Next() (V, bool) {
	if !c.Valid() {
		var zero V
		return zero, false
	}
	c.cursor++
	if c.cursor >= len(c.keys) {
		c.cursor = cursorInvalid
	}
	return c.Current()
}

// Prev moves the cursor back one entry and returns the value it lands on.
// Returns the zero value and false when the cursor was already on the first
// entry; the cursor is then invalid until repositioned.
func (c *Collection[V]) Prev() (V, bool) {
	if !c.Valid() {
		var zero V
		return zero, false
	}
	c.cursor--
	return c.Current()
}

// Rewind puts the cursor back on the first entry without reading it.
func (c *Collection[V]) Rewind() { c.cursor = 0 }

// Current returns the value under the cursor.
func (c *Collection[V]) Current() (V, bool) {
	if !c.Valid() {
		var zero V
		return zero, false
	}
	return c.values[c.cursor], true
}

// Key returns the key under the cursor.
func (c *Collection[V]) Key() (Key, bool) {
	if !c.Valid() {
		return Key{}, false
	}
	return c.keys[c.cursor], true
}

// Valid reports whether the cursor is on an entry.
func (c *Collection[V]) Valid() bool {
	return c.cursor >= 0 && c.cursor < len(c.keys)
}

// At returns the value at position index, independent of keys and of the
// cursor. A negative index counts from the end: At(-1) is the last value.
// Returns [ErrIndexOutOfRange] when the resolved position does not exist.
func (c *Collection[V]) At(index int) (V, error) {
	pos := index
	if pos < 0 {
		pos += len(c.values)
	}
	if pos < 0 || pos >= len(c.values) {
		var zero V
		return zero, fmt.Errorf("%w: %d (count %d)", ErrIndexOutOfRange, index, len(c.values))
	}
	return c.values[pos], nil
}
