package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-collection/arr"
	"github.com/hasbyte1/go-collection/collections"
)

// Every command body is a collections macro, so the same operations are
// reachable from Go code through collections.CallMacro.
func init() {
	registerOperations()
}

func registerOperations() {
	collections.RegisterMacro("unique", func(c *collections.Collection[any], args ...any) (any, error) {
		return c.Unique(argStrings(args, 0)...)
	})
	collections.RegisterMacro("group", func(c *collections.Collection[any], args ...any) (any, error) {
		return c.GroupBy(argString(args, 0))
	})
	collections.RegisterMacro("column", func(c *collections.Collection[any], args ...any) (any, error) {
		return c.Column(argString(args, 0), argString(args, 1))
	})
	collections.RegisterMacro("sort", func(c *collections.Collection[any], args ...any) (any, error) {
		field := argString(args, 0)
		var by []func(any) any
		if field != "" {
			for k, v := range c.All() {
				if _, err := collections.FieldOf(v, field); err != nil {
					return nil, fmt.Errorf("entry %#v: %w", k, err)
				}
			}
			by = append(by, func(v any) any {
				fv, _ := collections.FieldOf(v, field)
				return fv
			})
		}
		if argBool(args, 1) {
			return c.SortDesc(by...), nil
		}
		return c.Sort(by...), nil
	})
	collections.RegisterMacro("flatten", func(c *collections.Collection[any], args ...any) (any, error) {
		depth := argInt(args, 0, 1)
		if depth <= 0 {
			depth = collections.FlattenAll
		}
		return c.Flatten(depth), nil
	})
	collections.RegisterMacro("reverse", func(c *collections.Collection[any], _ ...any) (any, error) {
		return c.Reverse(), nil
	})
	collections.RegisterMacro("keys", func(c *collections.Collection[any], _ ...any) (any, error) {
		return c.Keys(), nil
	})
	collections.RegisterMacro("values", func(c *collections.Collection[any], _ ...any) (any, error) {
		return c.Values(), nil
	})
	collections.RegisterMacro("count", func(c *collections.Collection[any], _ ...any) (any, error) {
		return c.Count(), nil
	})
	collections.RegisterMacro("slice", func(c *collections.Collection[any], args ...any) (any, error) {
		return c.Slice(argInt(args, 0, 0), argInt(args, 1, collections.ToEnd)), nil
	})
	collections.RegisterMacro("sum", func(c *collections.Collection[any], args ...any) (any, error) {
		if field := argString(args, 0); field != "" {
			return c.SumField(field)
		}
		return c.Sum()
	})
	collections.RegisterMacro("average", func(c *collections.Collection[any], args ...any) (any, error) {
		if field := argString(args, 0); field != "" {
			return c.AverageField(field)
		}
		return c.Average()
	})
	collections.RegisterMacro("join", func(c *collections.Collection[any], args ...any) (any, error) {
		return c.Join(argString(args, 0), argString(args, 1)), nil
	})
	collections.RegisterMacro("diff", func(c *collections.Collection[any], args ...any) (any, error) {
		other, ok := arg(args, 0).(*collections.Collection[any])
		if !ok {
			return nil, fmt.Errorf("diff: missing collection to compare against")
		}
		return c.Diff(other, argStrings(args, 1)...)
	})
	collections.RegisterMacro("dot", func(c *collections.Collection[any], _ ...any) (any, error) {
		m := make(map[string]any, c.Count())
		for k, v := range c.All() {
			m[k.String()] = v
		}
		flat := arr.Dot(m)
		out := collections.Empty[any]()
		for _, path := range arr.Paths(m) {
			out.Set(collections.StringKey(path), flat[path])
		}
		return out, nil
	})
}

func arg(args []any, i int) any {
	if i < len(args) {
		return args[i]
	}
	return nil
}

func argString(args []any, i int) string {
	s, _ := arg(args, i).(string)
	return s
}

func argStrings(args []any, i int) []string {
	s, _ := arg(args, i).([]string)
	return s
}

func argInt(args []any, i, def int) int {
	if n, ok := arg(args, i).(int); ok {
		return n
	}
	return def
}

func argBool(args []any, i int) bool {
	b, _ := arg(args, i).(bool)
	return b
}

// runOperation loads the input file, applies the named macro and prints
// the result.
func runOperation(cmd *cobra.Command, name, path string, args ...any) error {
	c, err := loadCollection(cmd, path)
	if err != nil {
		return err
	}

	start := time.Now()
	result, err := collections.CallMacro(name, c, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	logger.Debug("operation applied", "op", name, "entries", c.Count(), "elapsed", time.Since(start))
	return writeResult(cmd, result)
}
