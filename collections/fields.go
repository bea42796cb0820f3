package collections

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/hasbyte1/go-collection/arr"
)

// Fielder is implemented by record types that describe their own fields.
// It is the adapter consulted by From, Column, GroupBy, Unique, Diff and the
// *Field aggregations before any built-in record shape.
//
//	type Point struct{ X, Y int }
//
//	func (p Point) FieldNames() []string { return []string{"x", "y"} }
//	func (p Point) Field(name string) (any, bool) {
//	    switch name {
//	    case "x":
//	        return p.X, true
//	    case "y":
//	        return p.Y, true
//	    }
//	    return nil, false
//	}
type Fielder interface {
	// FieldNames returns the field names in declaration order.
	FieldNames() []string

	// Field returns the named field and whether it exists.
	Field(name string) (any, bool)
}

// Lookup resolves one path segment against c, so that collections nested in
// records can be traversed by dot paths. The segment is tried as a string
// key first, then as an integer key.
func (c *Collection[V]) Lookup(segment string) (any, bool) {
	if v, ok := c.Get(StringKey(segment)); ok {
		return v, true
	}
	if k := ParseKey(segment); k.IsInt() {
		if v, ok := c.Get(k); ok {
			return v, true
		}
	}
	return nil, false
}

// FieldOf returns the named field of a record value. name may be a dot path
// ("address.city") for map, collection and JSON records.
//
// Supported records, in resolution order: [Fielder], map[string]any and
// anything [arr.Lookuper] handles, raw JSON documents (json.RawMessage,
// resolved with gjson path syntax), other maps with string keys, and
// structs or pointers to structs (matched by json tag, then field name).
//
// A record that lacks the field yields [ErrFieldNotFound]; a value that is
// not a record yields [ErrNotAccessible].
func FieldOf(record any, name string) (any, error) {
	v, found, accessible := lookupField(record, name)
	if !accessible {
		return nil, fmt.Errorf("%w: %T (field %q)", ErrNotAccessible, record, name)
	}
	if !found {
		return nil, fmt.Errorf("%w: %q", ErrFieldNotFound, name)
	}
	return v, nil
}

// HasField reports whether record has the named field.
func HasField(record any, name string) bool {
	_, found, _ := lookupField(record, name)
	return found
}

func lookupField(record any, name string) (value any, found, accessible bool) {
	switch t := record.(type) {
	case nil:
		return nil, false, false
	case Fielder:
		v, ok := t.Field(name)
		return v, ok, true
	case map[string]any, []any, arr.Lookuper:
		v, ok := arr.Get(t, name)
		return v, ok, true
	case json.RawMessage:
		return lookupJSON(t, name)
	}

	rv := reflect.ValueOf(record)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false, false
		}
		mv := rv.MapIndex(reflect.ValueOf(name).Convert(rv.Type().Key()))
		if !mv.IsValid() {
			return nil, false, true
		}
		return mv.Interface(), true, true
	case reflect.Struct:
		fv, ok := structField(rv, name)
		if !ok {
			return nil, false, true
		}
		return fv.Interface(), true, true
	}
	return nil, false, false
}

func lookupJSON(raw json.RawMessage, name string) (any, bool, bool) {
	if !gjson.ValidBytes(raw) {
		return nil, false, false
	}
	doc := gjson.ParseBytes(raw)
	if !doc.IsObject() && !doc.IsArray() {
		return nil, false, false
	}
	res := doc.Get(name)
	if !res.Exists() {
		return nil, false, true
	}
	return res.Value(), true, true
}

// structField finds an exported field by json tag name, then by Go name
// (case-insensitively).
func structField(rv reflect.Value, name string) (reflect.Value, bool) {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		if tagName(sf) == name {
			return rv.Field(i), true
		}
	}
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if sf.IsExported() && strings.EqualFold(sf.Name, name) {
			return rv.Field(i), true
		}
	}
	return reflect.Value{}, false
}

func tagName(sf reflect.StructField) string {
	tag, ok := sf.Tag.Lookup("json")
	if !ok {
		return ""
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "-" {
		return ""
	}
	return name
}

// FieldsOf returns the fields of a record as a collection keyed by field
// name, in declaration order. It is the adapter From uses for values that
// are neither collections nor iterables.
//
// Structs contribute their exported fields (named by json tag when present,
// skipping fields tagged "-"); string-keyed maps contribute their entries in
// ascending key order; raw JSON objects keep document order.
func FieldsOf(record any) (*Collection[any], error) {
	switch t := record.(type) {
	case nil:
		return Empty[any](), nil
	case Fielder:
		out := Empty[any]()
		for _, name := range t.FieldNames() {
			v, _ := t.Field(name)
			out.put(StringKey(name), v)
		}
		return out, nil
	case json.RawMessage:
		if !gjson.ValidBytes(t) || !gjson.ParseBytes(t).IsObject() {
			return nil, fmt.Errorf("%w: %T", ErrNotAccessible, record)
		}
		out := Empty[any]()
		gjson.ParseBytes(t).ForEach(func(k, v gjson.Result) bool {
			out.put(StringKey(k.String()), v.Value())
			return true
		})
		return out, nil
	}

	rv := reflect.ValueOf(record)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return Empty[any](), nil
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Struct:
		out := Empty[any]()
		rt := rv.Type()
		for i := 0; i < rt.NumField(); i++ {
			sf := rt.Field(i)
			if !sf.IsExported() {
				continue
			}
			name := sf.Name
			if tag, ok := sf.Tag.Lookup("json"); ok {
				if n, _, _ := strings.Cut(tag, ","); n == "-" {
					continue
				} else if n != "" {
					name = n
				}
			}
			out.put(StringKey(name), rv.Field(i).Interface())
		}
		return out, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		m := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[iter.Key().String()] = iter.Value().Interface()
		}
		return FromMap(m), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrNotAccessible, record)
}
