package collections_test

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hasbyte1/go-collection/collections"
)

func ExampleOf() {
	c := collections.Of(1, 2, 3, 4, 5)
	sum, _ := c.Sum()
	fmt.Println(c.Count(), sum)
	// Output: 5 15
}

func ExampleCollection_Filter() {
	result := collections.Of(1, 2, 3, 4, 5, 6).
		Filter(func(n int, _ collections.Key) bool { return n%2 == 0 })
	fmt.Println(result)
	fmt.Println(result.Values())
	// Output:
	// {"1":2,"3":4,"5":6}
	// [2,4,6]
}

func ExampleCollection_Unique() {
	unique, _ := collections.Of(1, 2, 2, 3, 1, 5, 1, 3).Unique()
	fmt.Println(unique)
	// Output: {"0":1,"1":2,"3":3,"5":5}
}

func ExampleCollection_Flatten() {
	c := collections.Of[any](1, 2, 3, []any{4, 5, []any{6, 7}})
	fmt.Println(c.Flatten().ToSlice())
	fmt.Println(c.Flatten(2).ToSlice())
	// Output:
	// [1 2 3 4 5 [6 7]]
	// [1 2 3 4 5 6 7]
}

func ExampleCollection_Splice() {
	c := collections.Of("red", "green", "yellow", "blue")
	removed := c.Splice(2, collections.ToEnd)
	fmt.Println(c.ToSlice(), removed.ToSlice())
	// Output: [red green] [yellow blue]
}

func ExampleCollection_Join() {
	fmt.Println(collections.Of(1, 2, 3).Join(", ", "and "))
	// Output: 1, 2, and 3
}

func ExampleCollection_Average() {
	avg, _ := collections.Of(1, 2, 3, 4, 5).Average()
	fmt.Println(avg)

	_, err := collections.Empty[int]().Average()
	fmt.Println(errors.Is(err, collections.ErrDivisionByZero))
	// Output:
	// 3
	// true
}

func ExampleCollection_Column() {
	people := collections.Of(
		map[string]any{"id": 1, "name": "John"},
		map[string]any{"id": 2, "name": "Carter"},
	)
	names, _ := people.Column("name", "id")
	fmt.Println(names)
	// Output: {"1":"John","2":"Carter"}
}

func ExampleCollection_Next() {
	c := collections.Of("a", "b", "c")
	for v, ok := c.Current(); ok; v, ok = c.Next() {
		fmt.Print(v)
	}
	fmt.Println()
	// Output: abc
}

func ExampleMap() {
	squares := collections.Map(
		collections.Of(1, 2, 3),
		func(n int, _ collections.Key) string { return strconv.Itoa(n * n) },
	)
	fmt.Println(squares.Join(", "))
	// Output: 1, 4, 9
}

func ExampleReduce() {
	sum := collections.Reduce(
		collections.Of(1, 2, 3, 4, 5),
		func(acc, n int, _ collections.Key) int { return acc + n },
		0,
	)
	fmt.Println(sum)
	// Output: 15
}

func ExampleGroupByFunc() {
	groups := collections.GroupByFunc(
		collections.Of(1, 2, 3, 4, 5, 6),
		func(n int, _ collections.Key) collections.Key {
			if n%2 == 0 {
				return collections.StringKey("even")
			}
			return collections.StringKey("odd")
		},
	)
	even, _ := groups.Get(collections.StringKey("even"))
	sum, _ := even.Sum()
	fmt.Println(sum)
	// Output: 12
}

func ExampleFrom() {
	c, _ := collections.From([]string{"foo", "bar"}, func(v any) any {
		return strings.ToUpper(v.(string))
	})
	fmt.Println(c.ToSlice())
	// Output: [FOO BAR]
}

func ExampleUnserialize() {
	c := collections.FromEntries(collections.E("a", 1), collections.E(5, 2))
	data, _ := c.Serialize(collections.FormatYAML)

	back, err := collections.Unserialize[int](data, collections.FormatYAML)
	fmt.Println(back, err)
	// Output: {"a":1,"5":2} <nil>
}
