package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-collection/collections"
)

var macrosCmd = &cobra.Command{
	Use:   "macros",
	Short: "List the registered collection operations",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range collections.Macros() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
	},
}

func init() {
	rootCmd.AddCommand(macrosCmd)
}
