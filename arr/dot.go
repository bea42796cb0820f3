package arr

import (
	"sort"
	"strconv"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Dot-notation helpers for nested records
//
// A path is a dot-separated list of segments. Each segment selects a key of
// a map[string]any, an index of a []any, or whatever a [Lookuper] resolves
// it to:
//
//	m := map[string]any{
//	    "user": map[string]any{
//	        "name": "Alice",
//	        "tags": []any{"admin", "ops"},
//	    },
//	}
//
//	Get(m, "user.name")   → "Alice", true
//	Get(m, "user.tags.1") → "ops", true
//	Has(m, "user.email")  → false
// ─────────────────────────────────────────────────────────────────────────────

// Lookuper is implemented by containers that resolve a single path segment
// themselves, such as ordered collections.
type Lookuper interface {
	Lookup(segment string) (any, bool)
}

// Get resolves the dot-notation path in data. It returns false when any
// segment is missing or when a segment would descend into a scalar.
//
// A key that itself contains dots is matched whole before the path is split,
// so {"a.b": 1} resolves "a.b".
func Get(data any, path string) (any, bool) {
	if v, ok := step(data, path); ok {
		return v, true
	}
	if !strings.Contains(path, ".") {
		return nil, false
	}
	current := data
	for _, seg := range strings.Split(path, ".") {
		next, ok := step(current, seg)
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

// Has reports whether the dot-notation path resolves in data.
func Has(data any, path string) bool {
	_, ok := Get(data, path)
	return ok
}

// step resolves one segment against one level of data.
func step(data any, seg string) (any, bool) {
	switch t := data.(type) {
	case map[string]any:
		v, ok := t[seg]
		return v, ok
	case []any:
		i, err := strconv.Atoi(seg)
		if err != nil || i < 0 || i >= len(t) {
			return nil, false
		}
		return t[i], true
	case Lookuper:
		return t.Lookup(seg)
	}
	return nil, false
}

// Dot flattens a nested map[string]any into a single-level map using dot
// notation for the keys. Nested []any values are kept as leaves.
//
//	Dot(map[string]any{"a": map[string]any{"b": 1}})
//	// → map[string]any{"a.b": 1}
func Dot(m map[string]any) map[string]any {
	out := make(map[string]any)
	dotFlatten("", m, out)
	return out
}

func dotFlatten(prefix string, m map[string]any, out map[string]any) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok && len(nested) > 0 {
			dotFlatten(key, nested, out)
		} else {
			out[key] = v
		}
	}
}

// Paths returns every leaf path of m in ascending order, the key set of
// [Dot].
func Paths(m map[string]any) []string {
	flat := Dot(m)
	out := make([]string, 0, len(flat))
	for k := range flat {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
