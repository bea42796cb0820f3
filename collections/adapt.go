package collections

import (
	"encoding/json"
	"fmt"
	"iter"
	"reflect"
	"sort"
)

// From builds a Collection[any] from an arbitrary source:
//
//   - nil: an empty collection
//   - any *Collection[X]: a copy of its entries
//   - iter.Seq[any] and iter.Seq2[Key, any]: the yielded values or entries
//   - slices and arrays: values keyed 0..n-1
//   - maps with string or integer keys: entries in ascending key order
//   - receive channels: values until the channel is closed
//   - any other record ([Fielder], struct, raw JSON object): its fields,
//     keyed by field name (see [FieldsOf])
//
// When transform is given it is applied to every value; it is never called
// for an empty source. A source of no supported shape fails with
// [ErrUnsupportedSource].
//
//	c, _ := collections.From([]string{"foo", "bar"}, func(v any) any {
//	    return strings.ToUpper(v.(string))
//	}) // → ["FOO", "BAR"]
func From(source any, transform ...func(any) any) (*Collection[any], error) {
	c, err := adapt(source)
	if err != nil {
		return nil, err
	}
	if len(transform) > 0 && transform[0] != nil {
		fn := transform[0]
		for i := range c.values {
			c.values[i] = fn(c.values[i])
		}
	}
	return c, nil
}

func adapt(source any) (*Collection[any], error) {
	switch t := source.(type) {
	case nil:
		return Empty[any](), nil
	case boxed:
		return FromEntries(t.anyEntries()...), nil
	case []any:
		return FromSlice(t), nil
	case iter.Seq[any]:
		c := Empty[any]()
		for v := range t {
			c.append(v)
		}
		return c, nil
	case iter.Seq2[Key, any]:
		return Collect(t), nil
	case Fielder:
		return FieldsOf(t)
	case json.RawMessage:
		return FieldsOf(t)
	}

	rv := reflect.ValueOf(source)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		c := withCapacity[any](rv.Len())
		for i := 0; i < rv.Len(); i++ {
			c.append(rv.Index(i).Interface())
		}
		return c, nil
	case reflect.Map:
		return adaptMap(rv)
	case reflect.Chan:
		if rv.Type().ChanDir()&reflect.RecvDir == 0 {
			break
		}
		c := Empty[any]()
		for {
			v, ok := rv.Recv()
			if !ok {
				return c, nil
			}
			c.append(v.Interface())
		}
	}

	c, err := FieldsOf(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedSource, source)
	}
	return c, nil
}

func adaptMap(rv reflect.Value) (*Collection[any], error) {
	type pair struct {
		key Key
		val any
	}
	pairs := make([]pair, 0, rv.Len())
	it := rv.MapRange()
	for it.Next() {
		k, err := KeyOf(it.Key().Interface())
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedSource, err)
		}
		pairs = append(pairs, pair{key: k, val: it.Value().Interface()})
	}
	sort.Slice(pairs, func(i, j int) bool {
		a, b := pairs[i].key, pairs[j].key
		if a.IsInt() != b.IsInt() {
			return a.IsInt()
		}
		if a.IsInt() {
			return a.Int() < b.Int()
		}
		return a.String() < b.String()
	})

	c := withCapacity[any](len(pairs))
	for _, p := range pairs {
		c.put(p.key, p.val)
	}
	return c, nil
}
