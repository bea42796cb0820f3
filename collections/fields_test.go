package collections_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-collection/collections"
)

type point struct{ x, y int }

func (p point) FieldNames() []string { return []string{"x", "y"} }

func (p point) Field(name string) (any, bool) {
	switch name {
	case "x":
		return p.x, true
	case "y":
		return p.y, true
	}
	return nil, false
}

func TestFieldOfMapPath(t *testing.T) {
	rec := map[string]any{
		"name":    "Ada",
		"address": map[string]any{"city": "London"},
		"tags":    []any{"a", "b"},
		"scores":  collections.FromEntries(collections.E("math", 9), collections.E(3, 7)),
	}

	for path, want := range map[string]any{
		"name":         "Ada",
		"address.city": "London",
		"tags.1":       "b",
		"scores.math":  9,
		"scores.3":     7,
	} {
		got, err := collections.FieldOf(rec, path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	_, err := collections.FieldOf(rec, "address.zip")
	assert.ErrorIs(t, err, collections.ErrFieldNotFound)
}

func TestFieldOfStruct(t *testing.T) {
	u := user{ID: 7, Name: "Ada", secret: "x"}

	v, err := collections.FieldOf(u, "name")
	require.NoError(t, err)
	assert.Equal(t, "Ada", v)

	v, err = collections.FieldOf(&u, "ID")
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	_, err = collections.FieldOf(u, "secret")
	assert.ErrorIs(t, err, collections.ErrFieldNotFound, "unexported fields are not visible")
}

func TestFieldOfNotAccessible(t *testing.T) {
	for _, v := range []any{42, "text", nil, (*user)(nil), map[int]any{1: 1}} {
		_, err := collections.FieldOf(v, "name")
		assert.ErrorIs(t, err, collections.ErrNotAccessible, "%#v", v)
	}
}

func TestFieldOfFielder(t *testing.T) {
	v, err := collections.FieldOf(point{1, 2}, "y")
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.False(t, collections.HasField(point{}, "z"))
}

func TestFieldOfRawJSON(t *testing.T) {
	raw := json.RawMessage(`{"user":{"name":"Ada","langs":["go","php"]}}`)
	v, err := collections.FieldOf(raw, "user.langs.1")
	require.NoError(t, err)
	assert.Equal(t, "php", v)
	assert.True(t, collections.HasField(raw, "user.name"))
	assert.False(t, collections.HasField(raw, "user.email"))
}

func TestFieldsOf(t *testing.T) {
	got, err := collections.FieldsOf(user{ID: 1, Name: "Ada", Age: 3})
	require.NoError(t, err)
	requireEntries(t, got, collections.E[any]("id", 1), collections.E[any]("name", "Ada"), collections.E[any]("age", 3))

	got, err = collections.FieldsOf(point{4, 5})
	require.NoError(t, err)
	requireEntries(t, got, collections.E[any]("x", 4), collections.E[any]("y", 5))

	got, err = collections.FieldsOf(json.RawMessage(`{"b":1,"a":"x"}`))
	require.NoError(t, err)
	requireEntries(t, got, collections.E[any]("b", 1.0), collections.E[any]("a", "x"))

	_, err = collections.FieldsOf(3.5)
	assert.ErrorIs(t, err, collections.ErrNotAccessible)
}
