package collections_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-collection/collections"
)

func TestFromSliceWithTransform(t *testing.T) {
	c, err := collections.From([]string{"foo", "bar"}, func(v any) any {
		return strings.ToUpper(v.(string))
	})
	require.NoError(t, err)
	assert.Equal(t, []any{"FOO", "BAR"}, c.ToSlice())
}

func TestFromEmptySkipsTransform(t *testing.T) {
	called := false
	c, err := collections.From([]int{}, func(v any) any { called = true; return v })
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())
	assert.False(t, called)

	c, err = collections.From(nil)
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())
}

func TestFromCollectionKeepsKeys(t *testing.T) {
	src := collections.FromEntries(collections.E("a", 1), collections.E(9, 2))
	c, err := collections.From(src)
	require.NoError(t, err)
	requireEntries(t, c, collections.E[any]("a", 1), collections.E[any](9, 2))
}

func TestFromMaps(t *testing.T) {
	c, err := collections.From(map[int]string{2: "b", 1: "a"})
	require.NoError(t, err)
	requireEntries(t, c, collections.E[any](1, "a"), collections.E[any](2, "b"))

	c, err = collections.From(map[any]any{"x": 1, 2: "y", "a": 3})
	require.NoError(t, err)
	requireEntries(t, c, collections.E[any](2, "y"), collections.E[any]("a", 3), collections.E[any]("x", 1))

	_, err = collections.From(map[any]any{[2]int{}: 1})
	assert.ErrorIs(t, err, collections.ErrUnsupportedSource)
}

func TestFromIterators(t *testing.T) {
	c, err := collections.From(slices.Values([]any{"a", "b"}))
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, c.ToSlice())

	src := collections.FromEntries(collections.E[any]("k", 1))
	c, err = collections.From(src.All())
	require.NoError(t, err)
	requireEntries(t, c, collections.E[any]("k", 1))
}

func TestFromChannel(t *testing.T) {
	ch := make(chan int, 3)
	ch <- 1
	ch <- 2
	close(ch)

	c, err := collections.From(ch)
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2}, c.ToSlice())
}

func TestFromRecord(t *testing.T) {
	c, err := collections.From(user{ID: 1, Name: "Ada"})
	require.NoError(t, err)
	assert.Equal(t, []collections.Key{sk("id"), sk("name"), sk("age")}, c.Keys().ToSlice())
}

func TestFromUnsupported(t *testing.T) {
	_, err := collections.From(42)
	assert.ErrorIs(t, err, collections.ErrUnsupportedSource)
}
