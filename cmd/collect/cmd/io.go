package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/go-collection/arr"
	"github.com/hasbyte1/go-collection/collections"
)

// readSource returns the raw bytes of path ("-" for standard input) and
// the format they are in.
func readSource(cmd *cobra.Command, path string) ([]byte, collections.Format, error) {
	if path == "-" {
		format, err := collections.ParseFormat(cfg.Input.Format)
		if err != nil {
			return nil, 0, err
		}
		data, err := io.ReadAll(cmd.InOrStdin())
		return data, format, err
	}

	format, err := collections.ParseFormat(filepath.Ext(path))
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", path, err)
	}
	data, err := os.ReadFile(path)
	return data, format, err
}

// loadCollection reads a document and, when --path is set, narrows it to
// the collection found at that dot path.
func loadCollection(cmd *cobra.Command, path string) (*collections.Collection[any], error) {
	data, format, err := readSource(cmd, path)
	if err != nil {
		return nil, err
	}

	c, err := decodeDocument(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if selectPath != "" {
		v, ok := arr.Get(c, selectPath)
		if !ok {
			return nil, fmt.Errorf("%s: path %q not found", path, selectPath)
		}
		if c, err = collections.From(v); err != nil {
			return nil, fmt.Errorf("%s: path %q: %w", path, selectPath, err)
		}
	}

	logger.Debug("input loaded", "file", path, "format", format, "path", selectPath, "entries", c.Count())
	return c, nil
}

// decodeDocument turns a whole document into a collection, keeping the
// order of the top-level keys.
func decodeDocument(data []byte, format collections.Format) (*collections.Collection[any], error) {
	c := collections.Empty[any]()
	switch format {
	case collections.FormatJSON:
		if err := c.UnmarshalJSON(data); err != nil {
			return nil, err
		}
	case collections.FormatYAML:
		if err := yaml.Unmarshal(data, c); err != nil {
			return nil, err
		}
	case collections.FormatTOML:
		var doc map[string]any
		md, err := toml.Decode(string(data), &doc)
		if err != nil {
			return nil, err
		}
		for _, key := range md.Keys() {
			if len(key) == 1 {
				c.Set(collections.ParseKey(key[0]), doc[key[0]])
			}
		}
	default:
		return nil, fmt.Errorf("%w: %s", collections.ErrUnsupportedFormat, format)
	}
	return c, nil
}

// loadRawJSON reads a JSON document as a collection of undecoded elements.
func loadRawJSON(cmd *cobra.Command, path string) (*collections.Collection[json.RawMessage], error) {
	data, format, err := readSource(cmd, path)
	if err != nil {
		return nil, err
	}
	if format != collections.FormatJSON {
		return nil, fmt.Errorf("%s: JSON input required, got %s", path, format)
	}
	if selectPath != "" {
		res := gjson.GetBytes(data, selectPath)
		if !res.Exists() {
			return nil, fmt.Errorf("%s: path %q not found", path, selectPath)
		}
		data = []byte(res.Raw)
	}

	var c collections.Collection[json.RawMessage]
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &c, nil
}

// writeResult prints v in the configured output format.
func writeResult(cmd *cobra.Command, v any) error {
	w := cmd.OutOrStdout()

	switch strings.ToLower(cfg.Output.Format) {
	case "yaml", "yml":
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(cfg.Output.Indent)
		if err := enc.Encode(v); err != nil {
			return err
		}
		if err := enc.Close(); err != nil {
			return err
		}
		_, err := w.Write(buf.Bytes())
		return err
	case "json", "":
		b, err := json.Marshal(v)
		if err != nil {
			return err
		}
		b = pretty.PrettyOptions(b, &pretty.Options{
			Width:  80,
			Indent: strings.Repeat(" ", cfg.Output.Indent),
		})
		if cfg.Output.Color {
			b = pretty.Color(b, nil)
		}
		_, err = w.Write(b)
		return err
	}
	return fmt.Errorf("unsupported output format %q", cfg.Output.Format)
}
