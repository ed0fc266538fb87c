package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var Version = "0.3.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the xlsx2update version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "xlsx2update version %s\n", Version)
	},
}
