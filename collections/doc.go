// Package collections provides an ordered key/value Collection with a fluent
// API in the spirit of Laravel's Illuminate/Collections.
//
// # Overview
//
// The central type is [Collection][V]: an ordered mapping from [Key] (an int
// or a string) to V. Keys are unique and iteration follows insertion order,
// as with a PHP array:
//
//	c := collections.Of(5, 3, 1, 4, 2)
//	top := c.Filter(func(n int, _ collections.Key) bool { return n > 2 }).
//	    SortDesc().
//	    Join(", ") // → "5, 4, 3"
//
// # Keys and re-indexing
//
// Operations either keep keys (Filter, Map, Unique, Diff, When, Unless) or
// re-index the result densely from 0 (Values, Flatten, Sort, Slice, Fill).
// Reverse, Shift, Splice and Merge renumber integer keys and keep string
// keys.
//
// # Records and fields
//
// GroupBy, Column, Unique and Diff read named fields from values. Maps,
// structs (json tags honoured), raw JSON objects, nested collections and any
// type implementing [Fielder] are records; dot paths ("address.city")
// descend into nested maps and collections.
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// operations that change the value type are package-level functions:
// [Map], [Reduce], [Pluck], [GroupByFunc], [KeyBy], [Box].
//
// # Persistence
//
// [Collection.Serialize] and [Unserialize] round-trip a collection, keys and
// order included, through JSON, YAML or TOML inside a versioned envelope
// protected by a BLAKE2b checksum. Collections also implement the plain
// json and yaml Marshaler interfaces.
//
// # Macros (runtime extension)
//
// Register named operations at runtime via [RegisterMacro] and call them
// through [Collection.Macro].
package collections
