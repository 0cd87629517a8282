package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oshokin/cryptoalert-cli/internal/version"
)

//nolint:gochecknoglobals // Cobra commands are defined globally.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), version.Full())
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	rootCmd.AddCommand(versionCmd)
}
