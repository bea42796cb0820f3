package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/hasbyte1/go-collection/collections"
)

var (
	setField string
	setValue string
)

var setCmd = &cobra.Command{
	Use:   "set <file>",
	Short: "Set a field on every record of a JSON document",
	Long: `Sets --field to the JSON literal --value on every element of a JSON array
or object, editing the raw JSON so that member order and number formatting
of each record are kept. Field paths use dot notation.

Examples:
  collect set --field active --value true users.json
  collect set --field meta.source --value '"import"' users.json`,
	Args: cobra.ExactArgs(1),
	RunE: runSet,
}

func init() {
	rootCmd.AddCommand(setCmd)

	setCmd.Flags().StringVar(&setField, "field", "", "dot path of the field to set")
	setCmd.Flags().StringVar(&setValue, "value", "", "JSON value to store")
	_ = setCmd.MarkFlagRequired("field")
	_ = setCmd.MarkFlagRequired("value")
}

func runSet(cmd *cobra.Command, args []string) error {
	if !gjson.Valid(setValue) {
		return fmt.Errorf("set: --value is not valid JSON: %s", setValue)
	}

	c, err := loadRawJSON(cmd, args[0])
	if err != nil {
		return err
	}

	var failed error
	out := c.Map(func(raw json.RawMessage, k collections.Key) json.RawMessage {
		if failed != nil {
			return raw
		}
		updated, err := sjson.SetRawBytes(raw, setField, []byte(setValue))
		if err != nil {
			failed = fmt.Errorf("set %s on %#v: %w", setField, k, err)
			return raw
		}
		return updated
	})
	if failed != nil {
		return failed
	}

	logger.Debug("fields set", "file", args[0], "field", setField, "entries", out.Count())
	return writeResult(cmd, out)
}
