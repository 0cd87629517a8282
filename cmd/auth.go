package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/cryptoalert-cli/internal/app"
)

//nolint:gochecknoglobals // Cobra commands are defined globally.
var (
	authCmd = &cobra.Command{
		Use:   "auth",
		Short: "Authentication management commands",
		Long: `Manage your CryptoAlert session.

Use 'auth login' or 'auth register' to get a session token, 'auth telegram'
to link the Telegram account that receives alerts, and 'auth logout' to forget the token.`,
	}

	authLoginCmd = &cobra.Command{
		Use:   "login",
		Short: "Log in with email and password",
		Long: `Logs in to CryptoAlert and stores the session token.

The password is always asked for interactively and is never echoed.
If --email is not given, it is asked for as well.`,
		Args:             cobra.NoArgs,
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, _ []string) {
			email, _ := cmd.Flags().GetString("email")
			app.ExecuteAuthLoginCommand(cmd.Context(), appConfig, email)
		},
	}

	authRegisterCmd = &cobra.Command{
		Use:              "register",
		Short:            "Create an account and log in",
		Args:             cobra.NoArgs,
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, _ []string) {
			email, _ := cmd.Flags().GetString("email")
			app.ExecuteAuthRegisterCommand(cmd.Context(), appConfig, email)
		},
	}

	authLogoutCmd = &cobra.Command{
		Use:              "logout",
		Short:            "Forget the stored session token",
		Args:             cobra.NoArgs,
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, _ []string) {
			app.ExecuteAuthLogoutCommand(cmd.Context(), appConfig)
		},
	}

	authStatusCmd = &cobra.Command{
		Use:              "status",
		Short:            "Show whether a session token is stored",
		Args:             cobra.NoArgs,
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, _ []string) {
			app.ExecuteAuthStatusCommand(cmd.Context(), appConfig)
		},
	}

	authWhoAmICmd = &cobra.Command{
		Use:              "whoami",
		Short:            "Show the account the stored token belongs to",
		Args:             cobra.NoArgs,
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, _ []string) {
			app.ExecuteAuthWhoAmICommand(cmd.Context(), appConfig)
		},
	}

	authTelegramCmd = &cobra.Command{
		Use:   "telegram",
		Short: "Link a Telegram account",
		Long: `Starts a Telegram binding session and prints a link to the CryptoAlert bot.

Open the link and press Start in Telegram. The command waits until the bot
confirms the account, the link expires, or you press Ctrl+C.`,
		Args:             cobra.NoArgs,
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, _ []string) {
			app.ExecuteAuthTelegramCommand(cmd.Context(), appConfig)
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	authLoginCmd.Flags().StringP("email", "e", "", "account email (asked for when omitted).")
	authRegisterCmd.Flags().StringP("email", "e", "", "account email (asked for when omitted).")

	authCmd.AddCommand(authLoginCmd, authRegisterCmd, authLogoutCmd, authStatusCmd, authWhoAmICmd, authTelegramCmd)

	rootCmd.AddCommand(authCmd)
}
