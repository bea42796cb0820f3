package collections_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-collection/collections"
)

type product struct {
	ID    string
	Price int
	Cat   int
}

func byPrice(p product) any { return p.Price }

func TestSortNatural(t *testing.T) {
	c := collections.FromEntries(collections.E("a", 3), collections.E("b", 1), collections.E("c", 2))
	got := c.Sort()
	requireEntries(t, got, collections.E(0, 1), collections.E(1, 2), collections.E(2, 3))
	assert.Equal(t, []int{3, 2, 1}, c.SortDesc().ToSlice())
}

func TestSortMixedNumericStrings(t *testing.T) {
	got := collections.Of[any]("10", 9, "b", "a", 1.5).Sort().ToSlice()
	assert.Equal(t, []any{1.5, 9, "10", "a", "b"}, got)
}

func TestSortIsStable(t *testing.T) {
	c := collections.Of(product{"x", 10, 2}, product{"y", 1, 2})
	assert.Equal(t, []product{{"y", 1, 2}, {"x", 10, 2}}, c.Sort(byPrice).ToSlice())

	ties := collections.Of(product{"a", 1, 0}, product{"b", 0, 0}, product{"c", 1, 0})
	ids := func(ps []product) []string {
		out := make([]string, len(ps))
		for i, p := range ps {
			out[i] = p.ID
		}
		return out
	}
	assert.Equal(t, []string{"b", "a", "c"}, ids(ties.Sort(byPrice).ToSlice()))
	assert.Equal(t, []string{"a", "c", "b"}, ids(ties.SortDesc(byPrice).ToSlice()))
}

func TestSortIdempotent(t *testing.T) {
	c := collections.Of(product{"a", 5, 0}, product{"b", 2, 0}, product{"c", 5, 1}, product{"d", 1, 0})
	once := c.Sort(byPrice)
	twice := once.Sort(byPrice)
	assert.Equal(t, once.Entries(), twice.Entries())

	prev := -1
	for _, p := range once.All() {
		assert.GreaterOrEqual(t, p.Price, prev)
		prev = p.Price
	}
}

func TestSortFunc(t *testing.T) {
	got := collections.Of("bb", "a", "ccc").SortFunc(func(a, b string) int { return len(b) - len(a) })
	assert.Equal(t, []string{"ccc", "bb", "a"}, got.ToSlice())
}

func TestSortBy(t *testing.T) {
	c := collections.Of(product{"a", 5, 0}, product{"b", 2, 0})
	assert.Equal(t, "b", collections.SortBy(c, func(p product) int { return p.Price }).ToSlice()[0].ID)
	assert.Equal(t, "a", collections.SortByDesc(c, func(p product) int { return p.Price }).ToSlice()[0].ID)
}

func TestCompare(t *testing.T) {
	assert.Equal(t, -1, collections.Compare(2, 10))
	assert.Equal(t, -1, collections.Compare("2", "10"), "numeric strings compare as numbers")
	assert.Equal(t, 1, collections.Compare("b", "a"))
	assert.Equal(t, 0, collections.Compare(1, 1.0))
}
