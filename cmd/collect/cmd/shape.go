package cmd

import (
	"github.com/spf13/cobra"
)

var (
	sortField    string
	sortDesc     bool
	flattenDepth int
	sliceOffset  int
	sliceLength  int
)

var sortCmd = &cobra.Command{
	Use:   "sort <file>",
	Short: "Sort values in natural order",
	Long: `Sorts values with a stable natural ordering: numbers and numeric strings
compare by value, other strings lexically. The result is re-indexed from 0.

Examples:
  collect sort prices.json
  collect sort --field price --desc cart.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOperation(cmd, "sort", args[0], sortField, sortDesc)
	},
}

var flattenCmd = &cobra.Command{
	Use:   "flatten <file>",
	Short: "Flatten nested arrays and objects into one list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOperation(cmd, "flatten", args[0], flattenDepth)
	},
}

var reverseCmd = &cobra.Command{
	Use:   "reverse <file>",
	Short: "Reverse entry order, renumbering integer keys",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOperation(cmd, "reverse", args[0])
	},
}

var keysCmd = &cobra.Command{
	Use:   "keys <file>",
	Short: "List the keys in order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOperation(cmd, "keys", args[0])
	},
}

var valuesCmd = &cobra.Command{
	Use:   "values <file>",
	Short: "List the values in order, re-indexed from 0",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOperation(cmd, "values", args[0])
	},
}

var countCmd = &cobra.Command{
	Use:   "count <file>",
	Short: "Print the number of entries",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOperation(cmd, "count", args[0])
	},
}

var sliceCmd = &cobra.Command{
	Use:   "slice <file>",
	Short: "Take a run of entries by position",
	Long: `Takes the entries from --offset on, at most --length of them. A negative
offset counts from the end and a negative length stops that many entries
before the end.

Examples:
  collect slice --offset 2 list.json
  collect slice --offset -3 --length 2 list.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opArgs := []any{sliceOffset}
		if cmd.Flags().Changed("length") {
			opArgs = append(opArgs, sliceLength)
		}
		return runOperation(cmd, "slice", args[0], opArgs...)
	},
}

var dotCmd = &cobra.Command{
	Use:   "dot <file>",
	Short: "Flatten nested objects into dot-notation keys",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOperation(cmd, "dot", args[0])
	},
}

func init() {
	rootCmd.AddCommand(sortCmd)
	rootCmd.AddCommand(flattenCmd)
	rootCmd.AddCommand(reverseCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(valuesCmd)
	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(sliceCmd)
	rootCmd.AddCommand(dotCmd)

	sortCmd.Flags().StringVar(&sortField, "field", "", "sort records by this field")
	sortCmd.Flags().BoolVar(&sortDesc, "desc", false, "sort in descending order")

	flattenCmd.Flags().IntVar(&flattenDepth, "depth", 1, "levels to flatten, 0 for all levels")

	sliceCmd.Flags().IntVar(&sliceOffset, "offset", 0, "position of the first entry")
	sliceCmd.Flags().IntVar(&sliceLength, "length", 0, "number of entries (default: through the end)")
}
