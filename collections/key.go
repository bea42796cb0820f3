package collections

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Key identifies one entry of a [Collection]. A key is either a
// non-negative-by-convention integer or an arbitrary string; the zero Key is
// the integer 0.
//
// Key is comparable and can be used as a Go map key.
type Key struct {
	str   string
	num   int
	isStr bool
}

// IntKey returns the integer key n.
func IntKey(n int) Key { return Key{num: n} }

// StringKey returns the string key s. Numeric-looking strings stay strings;
// use [ParseKey] for the coercing variant.
func StringKey(s string) Key { return Key{str: s, isStr: true} }

// ParseKey returns an integer key when s is the canonical decimal form of an
// int ("0", "42", "-7") and a string key otherwise. This is the rule used
// for object keys read from JSON and YAML documents.
func ParseKey(s string) Key {
	if n, err := strconv.Atoi(s); err == nil && strconv.Itoa(n) == s {
		return IntKey(n)
	}
	return StringKey(s)
}

// KeyOf converts a field value into a Key, as done by GroupBy and Column.
//
//   - integers become integer keys
//   - floats are truncated to integer keys
//   - strings become string keys
//   - bools become 0 or 1
//   - nil becomes the empty string key
//
// Any other value yields [ErrInvalidKey].
func KeyOf(v any) (Key, error) {
	switch t := v.(type) {
	case Key:
		return t, nil
	case nil:
		return StringKey(""), nil
	case string:
		return StringKey(t), nil
	case bool:
		if t {
			return IntKey(1), nil
		}
		return IntKey(0), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return IntKey(int(rv.Int())), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return IntKey(int(rv.Uint())), nil
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return Key{}, fmt.Errorf("%w: %v", ErrInvalidKey, f)
		}
		return IntKey(int(f)), nil
	case reflect.String:
		return StringKey(rv.String()), nil
	}
	if s, ok := v.(fmt.Stringer); ok {
		return StringKey(s.String()), nil
	}
	return Key{}, fmt.Errorf("%w: %T", ErrInvalidKey, v)
}

// IsInt reports whether k is an integer key.
func (k Key) IsInt() bool { return !k.isStr }

// IsString reports whether k is a string key.
func (k Key) IsString() bool { return k.isStr }

// Int returns the integer value of k, or 0 for a string key.
func (k Key) Int() int { return k.num }

// String returns the string key, or the decimal form of an integer key.
func (k Key) String() string {
	if k.isStr {
		return k.str
	}
	return strconv.Itoa(k.num)
}

// Value returns k as an int or a string.
func (k Key) Value() any {
	if k.isStr {
		return k.str
	}
	return k.num
}

// GoString renders k the way it would be written as a literal.
func (k Key) GoString() string {
	if k.isStr {
		return strconv.Quote(k.str)
	}
	return strconv.Itoa(k.num)
}

// MarshalJSON encodes k as a JSON number or string.
func (k Key) MarshalJSON() ([]byte, error) {
	if k.isStr {
		return json.Marshal(k.str)
	}
	return []byte(strconv.Itoa(k.num)), nil
}

// UnmarshalJSON accepts a JSON number (integer key) or string (string key).
func (k *Key) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*k = StringKey(s)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidKey, data)
	}
	*k = IntKey(n)
	return nil
}

// MarshalYAML encodes k as a YAML int or string scalar.
func (k Key) MarshalYAML() (any, error) {
	return k.Value(), nil
}

// UnmarshalYAML accepts an !!int scalar (integer key) or any other scalar
// (string key).
func (k *Key) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: yaml node kind %d", ErrInvalidKey, node.Kind)
	}
	if node.ShortTag() == "!!int" {
		var n int
		if err := node.Decode(&n); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidKey, err)
		}
		*k = IntKey(n)
		return nil
	}
	*k = StringKey(node.Value)
	return nil
}
