package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

var (
	uniqueBy    string
	groupBy     string
	columnField string
	columnIndex string
	diffAgainst string
	diffColumns string
)

var uniqueCmd = &cobra.Command{
	Use:   "unique <file>",
	Short: "Drop duplicate entries, keeping the first key of each",
	Long: `Removes duplicate entries. Without --by, entries compare by their string
form; with --by, records compare by the listed fields.

Examples:
  collect unique tags.json
  collect unique --by id,age users.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOperation(cmd, "unique", args[0], splitList(uniqueBy))
	},
}

var groupCmd = &cobra.Command{
	Use:   "group <file>",
	Short: "Group records by the value of a field",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOperation(cmd, "group", args[0], groupBy)
	},
}

var columnCmd = &cobra.Command{
	Use:   "column <file>",
	Short: "Extract one field from every record",
	Long: `Extracts one field from every record, skipping records without it.
With --index-by, the result is keyed by another field of the same record.

Examples:
  collect column --field name users.json
  collect column --field name --index-by id users.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOperation(cmd, "column", args[0], columnField, columnIndex)
	},
}

var diffCmd = &cobra.Command{
	Use:   "diff <file>",
	Short: "Keep the entries not present in another document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		other, err := loadCollection(cmd, diffAgainst)
		if err != nil {
			return err
		}
		return runOperation(cmd, "diff", args[0], other, splitList(diffColumns))
	},
}

func init() {
	rootCmd.AddCommand(uniqueCmd)
	rootCmd.AddCommand(groupCmd)
	rootCmd.AddCommand(columnCmd)
	rootCmd.AddCommand(diffCmd)

	uniqueCmd.Flags().StringVar(&uniqueBy, "by", "", "comma-separated fields that identify a record")

	groupCmd.Flags().StringVar(&groupBy, "by", "", "field to group by")
	_ = groupCmd.MarkFlagRequired("by")

	columnCmd.Flags().StringVar(&columnField, "field", "", "field to extract")
	columnCmd.Flags().StringVar(&columnIndex, "index-by", "", "field whose value keys the result")
	_ = columnCmd.MarkFlagRequired("field")

	diffCmd.Flags().StringVar(&diffAgainst, "against", "", "document to compare against")
	diffCmd.Flags().StringVar(&diffColumns, "by", "", "comma-separated fields that identify a record")
	_ = diffCmd.MarkFlagRequired("against")
}

// splitList splits a comma-separated flag value, dropping empty items.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
