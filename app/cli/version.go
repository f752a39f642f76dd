package cli

import (
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the client version",
	Run: func(cmd *cobra.Command, args []string) {
		printer.Print("fluxdevs %s", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
