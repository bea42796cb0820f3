package collections_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/go-collection/collections"
)

var formats = []collections.Format{collections.FormatJSON, collections.FormatYAML, collections.FormatTOML}

func mixed() *collections.Collection[any] {
	return collections.FromEntries(
		collections.E[any]("name", "Ada"),
		collections.E[any](3, 1.5),
		collections.E[any]("1", true),
		collections.E[any](7, 42),
		collections.E[any]("nested", map[string]any{
			"a": 1,
			"b": []any{"x", 2},
			"c": map[string]any{"deep": "yes"},
		}),
	)
}

// ─────────────────────────────────────────────────────────────────────────────
// Serialize / Unserialize
// ─────────────────────────────────────────────────────────────────────────────

func TestRoundTrip(t *testing.T) {
	for _, format := range formats {
		t.Run(format.String(), func(t *testing.T) {
			c := mixed()
			data, err := c.Serialize(format)
			require.NoError(t, err)

			back, err := collections.Unserialize[any](data, format)
			require.NoError(t, err)
			require.Equal(t, c.Entries(), back.Entries())
			assert.Equal(t, c.Fingerprint(), back.Fingerprint())
		})
	}
}

func TestRoundTripTyped(t *testing.T) {
	for _, format := range formats {
		t.Run(format.String(), func(t *testing.T) {
			c := collections.FromEntries(
				collections.E("lead", user{ID: 1, Name: "Ada", Age: 36}),
				collections.E(4, user{ID: 2, Name: "Bob", Age: 41}),
			)
			data, err := c.Serialize(format)
			require.NoError(t, err)

			back, err := collections.Unserialize[user](data, format)
			require.NoError(t, err)
			require.Equal(t, c.Entries(), back.Entries())
		})
	}
}

func TestRoundTripNestedCollection(t *testing.T) {
	for _, format := range formats {
		t.Run(format.String(), func(t *testing.T) {
			c := collections.FromEntries(
				collections.E[any]("list", collections.Of[any](1, 2)),
				collections.E[any]("map", collections.FromEntries[any](collections.E[any]("z", 1), collections.E[any]("a", 2))),
			)
			data, err := c.Serialize(format)
			require.NoError(t, err)

			back, err := collections.Unserialize[any](data, format)
			require.NoError(t, err, "nested collections decode as plain lists and maps with the same fingerprint")
			assert.Equal(t, []collections.Key{sk("list"), sk("map")}, back.Keys().ToSlice())
		})
	}
}

func TestRoundTripKeepsIntegralFloats(t *testing.T) {
	for _, format := range formats {
		t.Run(format.String(), func(t *testing.T) {
			c := collections.FromEntries(
				collections.E[any]("a", 1.0),
				collections.E[any]("n", 7),
				collections.E[any]("list", []any{2.0, 3}),
				collections.E[any]("map", map[string]any{"x": 4.0}),
			)
			data, err := c.Serialize(format)
			require.NoError(t, err)

			back, err := collections.Unserialize[any](data, format)
			require.NoError(t, err)
			require.Equal(t, c.Entries(), back.Entries())

			a, _ := back.Get(sk("a"))
			assert.IsType(t, float64(0), a)
			n, _ := back.Get(sk("n"))
			assert.IsType(t, 0, n)
		})
	}

	c := collections.Of[any](1.0)
	_, err := c.Serialize(collections.FormatJSON)
	require.NoError(t, err)
	v, _ := c.At(0)
	assert.IsType(t, float64(0), v, "serializing leaves the collection untouched")
}

func TestRoundTripNull(t *testing.T) {
	for _, format := range []collections.Format{collections.FormatJSON, collections.FormatYAML} {
		c := collections.Of[any](nil, "x")
		data, err := c.Serialize(format)
		require.NoError(t, err)
		back, err := collections.Unserialize[any](data, format)
		require.NoError(t, err)
		require.Equal(t, c.Entries(), back.Entries())
	}
}

func TestRoundTripEmpty(t *testing.T) {
	for _, format := range formats {
		data, err := collections.Empty[int]().Serialize(format)
		require.NoError(t, err)
		back, err := collections.Unserialize[int](data, format)
		require.NoError(t, err, format.String())
		assert.True(t, back.IsEmpty())
	}
}

func TestUnserializeChecksumMismatch(t *testing.T) {
	data, err := mixed().Serialize(collections.FormatJSON)
	require.NoError(t, err)

	tampered := bytes.Replace(data, []byte(`"Ada"`), []byte(`"Eve"`), 1)
	_, err = collections.Unserialize[any](tampered, collections.FormatJSON)
	assert.ErrorIs(t, err, collections.ErrChecksumMismatch)
}

func TestUnserializeVersion(t *testing.T) {
	data, err := mixed().Serialize(collections.FormatJSON)
	require.NoError(t, err)

	future := bytes.Replace(data, []byte(`"version":1`), []byte(`"version":2`), 1)
	_, err = collections.Unserialize[any](future, collections.FormatJSON)
	assert.ErrorIs(t, err, collections.ErrUnsupportedVersion)
}

func TestUnserializeGarbage(t *testing.T) {
	_, err := collections.Unserialize[any]([]byte("{"), collections.FormatJSON)
	assert.Error(t, err)
}

func TestUnsupportedFormat(t *testing.T) {
	_, err := ints(1).Serialize(collections.Format(9))
	assert.ErrorIs(t, err, collections.ErrUnsupportedFormat)
	_, err = collections.Unserialize[int]([]byte("{}"), collections.Format(9))
	assert.ErrorIs(t, err, collections.ErrUnsupportedFormat)
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]collections.Format{
		"json": collections.FormatJSON, ".yml": collections.FormatYAML,
		"YAML": collections.FormatYAML, ".toml": collections.FormatTOML,
	} {
		got, err := collections.ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := collections.ParseFormat("xml")
	assert.ErrorIs(t, err, collections.ErrUnsupportedFormat)
}

func TestFingerprint(t *testing.T) {
	assert.Equal(t, ints(1, 2).Fingerprint(), ints(1, 2).Fingerprint())
	assert.Len(t, ints(1).Fingerprint(), 64)
	assert.Equal(t,
		collections.Of[any](1).Fingerprint(),
		collections.Of[any](1.0).Fingerprint(), "numbers hash by value")

	assert.NotEqual(t, ints(1, 2).Fingerprint(), ints(2, 1).Fingerprint(), "order matters")
	assert.NotEqual(t,
		collections.FromEntries(collections.E(1, "a")).Fingerprint(),
		collections.FromEntries(collections.E("1", "a")).Fingerprint(), "key type matters")
	assert.NotEqual(t,
		collections.Of[any]("1").Fingerprint(),
		collections.Of[any](1).Fingerprint(), "strings and numbers differ")
}

// ─────────────────────────────────────────────────────────────────────────────
// Plain JSON / YAML
// ─────────────────────────────────────────────────────────────────────────────

func TestToJSON(t *testing.T) {
	b, err := ints(1, 2, 3).ToJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `[1,2,3]`, string(b))

	b, err = collections.FromEntries(collections.E("b", 1), collections.E(3, 2)).ToJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"b":1,"3":2}`, string(b), "object members follow collection order")

	b, err = ints().ToJSON()
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(b))

	assert.Equal(t, `["a"]`, collections.Of("a").String())
}

func TestMarshalJSONNested(t *testing.T) {
	doc := map[string]any{"items": collections.FromEntries(collections.E("k", collections.Of(1, 2)))}
	b, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.Equal(t, `{"items":{"k":[1,2]}}`, string(b))
}

func TestUnmarshalJSON(t *testing.T) {
	var c collections.Collection[int]
	require.NoError(t, json.Unmarshal([]byte(`{"b":1,"0":2,"a":3}`), &c))
	requireEntries(t, &c, collections.E("b", 1), collections.E(0, 2), collections.E("a", 3))

	require.NoError(t, json.Unmarshal([]byte(`[4,5]`), &c))
	requireEntries(t, &c, collections.E(0, 4), collections.E(1, 5))

	require.NoError(t, json.Unmarshal([]byte(`null`), &c))
	assert.True(t, c.IsEmpty())

	assert.Error(t, json.Unmarshal([]byte(`5`), &c))
	assert.Error(t, json.Unmarshal([]byte(`["x"]`), &c))
}

func TestUnmarshalJSONAnyNumbers(t *testing.T) {
	var c collections.Collection[any]
	require.NoError(t, json.Unmarshal([]byte(`[1, 2.5, {"n": 3}]`), &c))
	assert.Equal(t, []any{1, 2.5, map[string]any{"n": 3}}, c.ToSlice())
}

func TestYAML(t *testing.T) {
	out, err := yaml.Marshal(ints(1, 2))
	require.NoError(t, err)
	assert.Equal(t, "- 1\n- 2\n", string(out))

	out, err = yaml.Marshal(collections.FromEntries(collections.E("b", 1), collections.E(3, 2)))
	require.NoError(t, err)
	assert.Equal(t, "b: 1\n3: 2\n", string(out))

	var c collections.Collection[int]
	require.NoError(t, yaml.Unmarshal([]byte("b: 1\n0: 2\na: 3\n"), &c))
	requireEntries(t, &c, collections.E("b", 1), collections.E(0, 2), collections.E("a", 3))

	require.NoError(t, yaml.Unmarshal([]byte("[7, 8]"), &c))
	requireEntries(t, &c, collections.E(0, 7), collections.E(1, 8))
}
