package collections

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/crypto/blake2b"
	"gopkg.in/yaml.v3"
)

// ─────────────────────────────────────────────────────────────────────────────
// Persistence
//
// Serialize writes a versioned envelope:
//
//	{"version": 1, "checksum": "<hex BLAKE2b-256>", "entries": [{"key": 0, "value": …}, …]}
//
// Keys keep their integer or string type and entries keep their order, so
// Unserialize restores an identical collection. The checksum is the
// collection's Fingerprint and is verified on the way back in.
// ─────────────────────────────────────────────────────────────────────────────

// Format selects the wire format of Serialize and Unserialize.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
	FormatTOML
)

// String returns the canonical lower-case name of f.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return "format(" + strconv.Itoa(int(f)) + ")"
	}
}

// ParseFormat maps a format name or file extension ("json", ".yml", "TOML")
// to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
}

const envelopeVersion = 1

type envelope[V any] struct {
	Version  int        `json:"version" yaml:"version"`
	Checksum string     `json:"checksum" yaml:"checksum"`
	Entries  []Entry[V] `json:"entries" yaml:"entries"`
}

// TOML has no notion of a union key, so keys travel as plain int64/string.
type tomlEntry[V any] struct {
	Key   any `toml:"key"`
	Value V   `toml:"value"`
}

type tomlEnvelope[V any] struct {
	Version  int            `toml:"version"`
	Checksum string         `toml:"checksum"`
	Entries  []tomlEntry[V] `toml:"entries"`
}

// Fingerprint returns the hex BLAKE2b-256 digest of the collection content:
// keys with their type, in order, and a canonical rendering of each value.
// Numbers hash by value (1 and 1.0 agree) and nested maps hash independent
// of member order, so a collection and its decoded copy share a fingerprint.
func (c *Collection[V]) Fingerprint() string {
	h, _ := blake2b.New256(nil)
	var buf bytes.Buffer
	for i, k := range c.keys {
		buf.Reset()
		buf.WriteString(k.GoString())
		buf.WriteByte('=')
		writeCanonical(&buf, c.values[i])
		buf.WriteByte('\n')
		h.Write(buf.Bytes())
	}
	return hex.EncodeToString(h.Sum(nil))
}

func writeCanonical(buf *bytes.Buffer, v any) {
	switch t := v.(type) {
	case nil:
		buf.WriteString("null")
		return
	case bool:
		buf.WriteString(strconv.FormatBool(t))
		return
	case string:
		buf.WriteString(strconv.Quote(t))
		return
	case Key:
		buf.WriteString(t.GoString())
		return
	case boxed:
		entries := t.anyEntries()
		if isDense(entries) {
			values := make([]any, len(entries))
			for i, e := range entries {
				values[i] = e.Value
			}
			writeCanonicalList(buf, values)
			return
		}
		m := make(map[string]any, len(entries))
		for _, e := range entries {
			m[e.Key.String()] = e.Value
		}
		writeCanonicalMap(buf, m)
		return
	}
	if isNumber(v) {
		buf.WriteString(toString(v))
		return
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			buf.WriteString("null")
			return
		}
		writeCanonical(buf, rv.Elem().Interface())
		return
	case reflect.String:
		buf.WriteString(strconv.Quote(rv.String()))
		return
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			buf.WriteString(fmt.Sprintf("%x", v))
			return
		}
		values := make([]any, rv.Len())
		for i := range values {
			values[i] = rv.Index(i).Interface()
		}
		writeCanonicalList(buf, values)
		return
	case reflect.Map:
		m := make(map[string]any, rv.Len())
		it := rv.MapRange()
		for it.Next() {
			m[toString(it.Key().Interface())] = it.Value().Interface()
		}
		writeCanonicalMap(buf, m)
		return
	case reflect.Struct:
		if fields, err := FieldsOf(v); err == nil {
			m := make(map[string]any, fields.Count())
			for i, k := range fields.keys {
				m[k.String()] = fields.values[i]
			}
			writeCanonicalMap(buf, m)
			return
		}
	}
	fmt.Fprintf(buf, "%v", v)
}

func writeCanonicalList(buf *bytes.Buffer, values []any) {
	buf.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeCanonical(buf, v)
	}
	buf.WriteByte(']')
}

func writeCanonicalMap(buf *bytes.Buffer, m map[string]any) {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)
	buf.WriteByte('{')
	for i, k := range names {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.Quote(k))
		buf.WriteByte(':')
		writeCanonical(buf, m[k])
	}
	buf.WriteByte('}')
}

func isDense(entries []Entry[any]) bool {
	for i, e := range entries {
		if !e.Key.IsInt() || e.Key.Int() != i {
			return false
		}
	}
	return true
}

// Serialize encodes c into a versioned, checksummed envelope in the given
// format. Use [Unserialize] to read it back.
func (c *Collection[V]) Serialize(format Format) ([]byte, error) {
	env := envelope[V]{
		Version:  envelopeVersion,
		Checksum: c.Fingerprint(),
		Entries:  c.Entries(),
	}

	switch format {
	case FormatJSON, FormatYAML:
		if isInterface[V]() {
			env.Entries = keepFloats(env.Entries, format)
		}
		if format == FormatJSON {
			return json.Marshal(env)
		}
		return yaml.Marshal(env)
	case FormatTOML:
		return c.serializeTOML(env)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
}

func (c *Collection[V]) serializeTOML(env envelope[V]) ([]byte, error) {
	out := tomlEnvelope[V]{
		Version:  env.Version,
		Checksum: env.Checksum,
		Entries:  make([]tomlEntry[V], len(env.Entries)),
	}
	boxedV := isInterface[V]()
	for i, e := range env.Entries {
		out.Entries[i] = tomlEntry[V]{Key: e.Key.Value(), Value: e.Value}
		if boxedV {
			if plain, ok := plainValue(any(e.Value)).(V); ok {
				out.Entries[i].Value = plain
			}
		}
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(out); err != nil {
		return nil, fmt.Errorf("collections: encode toml: %w", err)
	}
	return buf.Bytes(), nil
}

// keepFloats returns a copy of entries in which integral float64 leaves are
// spelled with a fraction ("1.0"), so that they decode as float64 rather
// than int. TOML keeps the distinction on its own.
func keepFloats[V any](entries []Entry[V], format Format) []Entry[V] {
	out := make([]Entry[V], len(entries))
	for i, e := range entries {
		out[i] = e
		if v, ok := fractional(any(e.Value), format).(V); ok {
			out[i].Value = v
		}
	}
	return out
}

func fractional(v any, format Format) any {
	switch t := v.(type) {
	case float64:
		if math.IsInf(t, 0) || math.IsNaN(t) || t != math.Trunc(t) {
			return t
		}
		s := strconv.FormatFloat(t, 'f', 1, 64)
		if format == FormatYAML {
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: s}
		}
		return json.Number(s)
	case boxed:
		return fractional(plainValue(t), format)
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = fractional(t[i], format)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = fractional(e, format)
		}
		return out
	}
	return v
}

// plainValue replaces nested collections with []any or map[string]any, the
// shapes the TOML encoder understands.
func plainValue(v any) any {
	switch t := v.(type) {
	case boxed:
		entries := t.anyEntries()
		if isDense(entries) {
			out := make([]any, len(entries))
			for i, e := range entries {
				out[i] = plainValue(e.Value)
			}
			return out
		}
		out := make(map[string]any, len(entries))
		for _, e := range entries {
			out[e.Key.String()] = plainValue(e.Value)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = plainValue(t[i])
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = plainValue(e)
		}
		return out
	}
	return v
}

// Unserialize decodes an envelope written by [Collection.Serialize]. It
// fails with [ErrUnsupportedVersion] for an unknown envelope version and
// with [ErrChecksumMismatch] when the decoded content does not match the
// recorded checksum.
//
// When V is an interface type, integral numbers decode as int and other
// numbers as float64.
func Unserialize[V any](data []byte, format Format) (*Collection[V], error) {
	var (
		env envelope[V]
		err error
	)
	switch format {
	case FormatJSON:
		env, err = unserializeJSON[V](data)
	case FormatYAML:
		err = yaml.Unmarshal(data, &env)
	case FormatTOML:
		env, err = unserializeTOML[V](data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("collections: decode %s: %w", format, err)
	}

	if env.Version != envelopeVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, env.Version)
	}

	c := FromEntries(env.Entries...)
	if got := c.Fingerprint(); got != env.Checksum {
		return nil, fmt.Errorf("%w: recorded %.12s, computed %.12s", ErrChecksumMismatch, env.Checksum, got)
	}
	return c, nil
}

func unserializeJSON[V any](data []byte) (envelope[V], error) {
	var env envelope[V]
	dec := json.NewDecoder(bytes.NewReader(data))
	boxedV := isInterface[V]()
	if boxedV {
		dec.UseNumber()
	}
	if err := dec.Decode(&env); err != nil {
		return env, err
	}
	if boxedV {
		for i := range env.Entries {
			if n, ok := normalizeNumbers(any(env.Entries[i].Value)).(V); ok {
				env.Entries[i].Value = n
			}
		}
	}
	return env, nil
}

func unserializeTOML[V any](data []byte) (envelope[V], error) {
	var raw tomlEnvelope[V]
	if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&raw); err != nil {
		return envelope[V]{}, err
	}

	env := envelope[V]{
		Version:  raw.Version,
		Checksum: raw.Checksum,
		Entries:  make([]Entry[V], len(raw.Entries)),
	}
	boxedV := isInterface[V]()
	for i, e := range raw.Entries {
		k, err := KeyOf(e.Key)
		if err != nil {
			return env, err
		}
		env.Entries[i] = Entry[V]{Key: k, Value: e.Value}
		if boxedV {
			if n, ok := normalizeNumbers(any(e.Value)).(V); ok {
				env.Entries[i].Value = n
			}
		}
	}
	return env, nil
}
