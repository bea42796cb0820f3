package cmd

import (
	"github.com/spf13/cobra"
)

var (
	sumField     string
	averageField string
	joinGlue     string
	joinLast     string
)

var sumCmd = &cobra.Command{
	Use:   "sum <file>",
	Short: "Add up numeric values or a numeric field",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOperation(cmd, "sum", args[0], sumField)
	},
}

var averageCmd = &cobra.Command{
	Use:   "average <file>",
	Short: "Average numeric values or a numeric field",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOperation(cmd, "average", args[0], averageField)
	},
}

var joinCmd = &cobra.Command{
	Use:   "join <file>",
	Short: "Join values into one string",
	Long: `Joins the values with --glue. With --last, the final value is also
prefixed with that string.

Examples:
  collect join --glue ", " --last "and " names.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOperation(cmd, "join", args[0], joinGlue, joinLast)
	},
}

func init() {
	rootCmd.AddCommand(sumCmd)
	rootCmd.AddCommand(averageCmd)
	rootCmd.AddCommand(joinCmd)

	sumCmd.Flags().StringVar(&sumField, "field", "", "sum this field of each record")
	averageCmd.Flags().StringVar(&averageField, "field", "", "average this field of each record")

	joinCmd.Flags().StringVar(&joinGlue, "glue", ",", "separator between values")
	joinCmd.Flags().StringVar(&joinLast, "last", "", "separator before the last value")
}
