package arr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-collection/arr"
)

func makeNested() map[string]any {
	return map[string]any{
		"user": map[string]any{
			"name": "Alice",
			"address": map[string]any{
				"city":    "London",
				"country": "UK",
			},
			"tags": []any{"admin", map[string]any{"role": "ops"}},
		},
		"score": 42,
		"a.b":   "literal",
	}
}

// pairs is a minimal Lookuper over alternating key/value strings.
type pairs []string

func (p pairs) Lookup(seg string) (any, bool) {
	for i := 0; i+1 < len(p); i += 2 {
		if p[i] == seg {
			return p[i+1], true
		}
	}
	return nil, false
}

func TestGet(t *testing.T) {
	m := makeNested()
	for path, want := range map[string]any{
		"user.name":         "Alice",
		"user.address.city": "London",
		"user.tags.0":       "admin",
		"user.tags.1.role":  "ops",
		"score":             42,
		"a.b":               "literal",
	} {
		got, ok := arr.Get(m, path)
		require.True(t, ok, path)
		assert.Equal(t, want, got, path)
	}
}

func TestGetMissing(t *testing.T) {
	m := makeNested()
	for _, path := range []string{"user.email", "user.tags.5", "user.tags.-1", "score.value", "nope", ""} {
		_, ok := arr.Get(m, path)
		assert.False(t, ok, path)
	}
}

func TestGetLookuper(t *testing.T) {
	m := map[string]any{"meta": pairs{"k", "v", "x", "y"}}
	got, ok := arr.Get(m, "meta.x")
	require.True(t, ok)
	assert.Equal(t, "y", got)
	assert.False(t, arr.Has(m, "meta.z"))
}

func TestHas(t *testing.T) {
	m := makeNested()
	assert.True(t, arr.Has(m, "user.address.country"))
	assert.False(t, arr.Has(m, "user.address.zip"))
}

func TestDot(t *testing.T) {
	flat := arr.Dot(makeNested())
	assert.Equal(t, "Alice", flat["user.name"])
	assert.Equal(t, "London", flat["user.address.city"])
	assert.Equal(t, 42, flat["score"])
	assert.IsType(t, []any{}, flat["user.tags"], "slices are leaves")
}

func TestDotEmptyMapIsLeaf(t *testing.T) {
	flat := arr.Dot(map[string]any{"a": map[string]any{}})
	assert.Equal(t, map[string]any{"a": map[string]any{}}, flat)
}

func TestPaths(t *testing.T) {
	got := arr.Paths(map[string]any{
		"b": 1,
		"a": map[string]any{"y": 1, "x": 2},
	})
	assert.Equal(t, []string{"a.x", "a.y", "b"}, got)
}
