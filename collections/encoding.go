package collections

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// ─────────────────────────────────────────────────────────────────────────────
// Plain JSON / YAML
//
// A densely indexed collection (keys 0..n-1 in order) encodes as an array,
// anything else as an object whose members follow the collection's order.
// Decoding reverses this; object member names that are canonical integers
// ("0", "42") become integer keys.
//
// These encodings do not distinguish the integer key 1 from the string key
// "1". Use Serialize / Unserialize for an exact round trip.
// ─────────────────────────────────────────────────────────────────────────────

// ToJSON encodes c as a JSON array or an ordered JSON object.
func (c *Collection[V]) ToJSON() ([]byte, error) {
	if c.IsList() {
		if len(c.values) == 0 {
			return []byte("[]"), nil
		}
		return json.Marshal(c.values)
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range c.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(k.String())
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(c.values[i])
		if err != nil {
			return nil, fmt.Errorf("collections: encode %#v: %w", k, err)
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalJSON implements [json.Marshaler]; see [Collection.ToJSON].
func (c *Collection[V]) MarshalJSON() ([]byte, error) {
	return c.ToJSON()
}

// UnmarshalJSON implements [json.Unmarshaler]. It accepts a JSON array, an
// object (member order is kept) or null, replacing the content of c.
func (c *Collection[V]) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return errors.New("collections: invalid JSON")
	}
	doc := gjson.ParseBytes(data)

	c.reset(nil, nil)
	switch {
	case doc.Type == gjson.Null:
		return nil
	case doc.IsArray(), doc.IsObject():
	default:
		return fmt.Errorf("collections: cannot decode JSON %s into a collection", doc.Type)
	}

	var err error
	doc.ForEach(func(k, v gjson.Result) bool {
		var value V
		value, err = decodeJSON[V]([]byte(v.Raw))
		if err != nil {
			return false
		}
		if doc.IsArray() {
			c.append(value)
		} else {
			c.put(ParseKey(k.String()), value)
		}
		return true
	})
	return err
}

// decodeJSON decodes one JSON value into V. When V is an interface type,
// numbers come back as int when integral and float64 otherwise.
func decodeJSON[V any](raw []byte) (V, error) {
	var v V
	dec := json.NewDecoder(bytes.NewReader(raw))
	boxedV := isInterface[V]()
	if boxedV {
		dec.UseNumber()
	}
	if err := dec.Decode(&v); err != nil {
		return v, err
	}
	if boxedV {
		if n, ok := normalizeNumbers(any(v)).(V); ok {
			v = n
		}
	}
	return v, nil
}

func isInterface[V any]() bool {
	return reflect.TypeFor[V]().Kind() == reflect.Interface
}

// normalizeNumbers replaces json.Number and int64 leaves with int (when the
// value fits) or float64, recursing into maps and slices.
func normalizeNumbers(v any) any {
	switch t := v.(type) {
	case json.Number:
		if n, err := t.Int64(); err == nil && int64(int(n)) == n {
			return int(n)
		}
		f, err := t.Float64()
		if err != nil {
			return t.String()
		}
		return f
	case int64:
		if int64(int(t)) == t {
			return int(t)
		}
		return t
	case []any:
		for i := range t {
			t[i] = normalizeNumbers(t[i])
		}
		return t
	case map[string]any:
		for k := range t {
			t[k] = normalizeNumbers(t[k])
		}
		return t
	case []map[string]any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = normalizeNumbers(t[i])
		}
		return out
	}
	return v
}

// MarshalYAML implements [yaml.Marshaler]: a sequence for densely indexed
// collections, an ordered mapping otherwise.
func (c *Collection[V]) MarshalYAML() (any, error) {
	if c.IsList() {
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, v := range c.values {
			child := &yaml.Node{}
			if err := child.Encode(v); err != nil {
				return nil, err
			}
			node.Content = append(node.Content, child)
		}
		return node, nil
	}

	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for i, k := range c.keys {
		keyNode := &yaml.Node{}
		if err := keyNode.Encode(k.Value()); err != nil {
			return nil, err
		}
		child := &yaml.Node{}
		if err := child.Encode(c.values[i]); err != nil {
			return nil, fmt.Errorf("collections: encode %#v: %w", k, err)
		}
		node.Content = append(node.Content, keyNode, child)
	}
	return node, nil
}

// UnmarshalYAML implements [yaml.Unmarshaler]. It accepts a sequence, a
// mapping (order is kept) or null, replacing the content of c.
func (c *Collection[V]) UnmarshalYAML(node *yaml.Node) error {
	for node.Kind == yaml.DocumentNode || node.Kind == yaml.AliasNode {
		if node.Kind == yaml.AliasNode {
			node = node.Alias
			continue
		}
		if len(node.Content) == 0 {
			c.reset(nil, nil)
			return nil
		}
		node = node.Content[0]
	}

	c.reset(nil, nil)
	switch node.Kind {
	case yaml.SequenceNode:
		for _, child := range node.Content {
			var v V
			if err := child.Decode(&v); err != nil {
				return err
			}
			c.append(v)
		}
		return nil
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			var v V
			if err := node.Content[i+1].Decode(&v); err != nil {
				return err
			}
			c.put(ParseKey(node.Content[i].Value), v)
		}
		return nil
	case yaml.ScalarNode:
		if node.ShortTag() == "!!null" {
			return nil
		}
	}
	return fmt.Errorf("collections: cannot decode YAML %s into a collection", node.ShortTag())
}
