// Package arr resolves dot-notation paths in nested records, inspired by
// Laravel's Arr::get / Arr::has / Arr::dot.
//
// Records are the shapes produced by decoding JSON, YAML or TOML into Go
// interfaces: map[string]any and []any, plus any container implementing
// [Lookuper]:
//
//	m := map[string]any{
//	    "user": map[string]any{
//	        "name": "Alice",
//	        "address": map[string]any{"city": "London"},
//	    },
//	}
//	arr.Get(m, "user.address.city") // → "London", true
//	arr.Has(m, "user.email")        // → false
//	flat := arr.Dot(m)              // → {"user.name": "Alice", "user.address.city": "London"}
//
// The collections package uses these helpers to read named fields such as
// "address.city" from collection elements.
package arr
