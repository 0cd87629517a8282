package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/cryptoalert-cli/internal/app"
)

// minAddArgs is a symbol followed by at least one cycle.
const minAddArgs = 2

//nolint:gochecknoglobals // Cobra commands are defined globally.
var (
	subsCmd = &cobra.Command{
		Use:     "subs",
		Aliases: []string{"subscriptions"},
		Short:   "Alert subscription commands",
		Long: `Manage alert subscriptions.

A subscription is a symbol (e.g. BTC) and a cycle (e.g. 1h). Symbols are
case-insensitive and always sent in upper case.`,
	}

	subsListCmd = &cobra.Command{
		Use:              "list [symbol]",
		Short:            "List subscriptions, optionally for one symbol",
		Args:             cobra.MaximumNArgs(1),
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, args []string) {
			var symbol string
			if len(args) > 0 {
				symbol = args[0]
			}

			app.ExecuteSubsListCommand(cmd.Context(), appConfig, symbol)
		},
	}

	subsAddCmd = &cobra.Command{
		Use:              "add <symbol> <cycle>...",
		Short:            "Subscribe to a symbol for one or more cycles",
		Example:          "  cryptoalert subs add btc 1h 4h",
		Args:             cobra.MinimumNArgs(minAddArgs),
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, args []string) {
			app.ExecuteSubsAddCommand(cmd.Context(), appConfig, args[0], args[1:])
		},
	}

	subsRemoveCmd = &cobra.Command{
		Use:              "remove <symbol> <cycle>",
		Aliases:          []string{"rm", "delete"},
		Short:            "Remove one subscription",
		Args:             cobra.ExactArgs(minAddArgs),
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, args []string) {
			app.ExecuteSubsRemoveCommand(cmd.Context(), appConfig, args[0], args[1])
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	subsCmd.AddCommand(subsListCmd, subsAddCmd, subsRemoveCmd)

	rootCmd.AddCommand(subsCmd)
}
