package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/oshokin/cryptoalert-cli/internal/config"
	"github.com/oshokin/cryptoalert-cli/internal/logger"
	"github.com/oshokin/cryptoalert-cli/internal/version"
)

var (
	//nolint:gochecknoglobals // It is required for configuration initialization before the application starts.
	configFilenameFromFlag string

	//nolint:gochecknoglobals,lll // It is initialized once during the application's startup and shared across the command execution logic.
	appConfig *config.Config

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	rootCmd = &cobra.Command{
		Use:   "cryptoalert",
		Short: "Manage your CryptoAlert account and alert subscriptions.",
		Long: `cryptoalert is a command-line client for the CryptoAlert dashboard API.
It can:
- Register and log in, keeping the session token on disk
- Link a Telegram account that receives the alerts
- List, add and remove symbol/cycle subscriptions

The API origin is taken from api_base_url (CRYPTOALERT_API_BASE_URL or VITE_API_BASE_URL).
When it is empty, requests go to /api on site_url.`,
		Version:       version.Short(),
		SilenceUsage:  true,
		SilenceErrors: false,
	}
)

// Execute executes the root command.
func Execute() {
	signals := []os.Signal{syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM}
	ctx, stop := signal.NotifyContext(context.Background(), signals...)

	defer func() {
		_ = logger.Logger().Sync()
	}()

	defer stop()

	go func() {
		defer stop()

		err := rootCmd.ExecuteContext(ctx)
		cobra.CheckErr(err)
	}()

	<-ctx.Done()
}

//nolint:gochecknoinits // Cobra requires the init function to set up flags before the command is executed.
func init() {
	flags := rootCmd.PersistentFlags()

	flags.StringVarP(
		&configFilenameFromFlag,
		"config",
		"c",
		"",
		fmt.Sprintf("path to the configuration file (default is '%s')",
			config.DefaultConfigFilename))

	flags.StringP(
		"api-url",
		"u",
		"",
		"absolute API origin, for example: https://api.example.com (overrides api_base_url).")

	flags.String(
		"credentials",
		"",
		"path to the file holding the session token (overrides credentials_path).")

	flags.StringP(
		"log-level",
		"l",
		"",
		"log level: debug, info, warn, error.")
}

func initConfig(cmd *cobra.Command, _ []string) {
	var err error

	appConfig, err = config.LoadConfig(configFilenameFromFlag)
	if err != nil {
		logger.Fatalf(cmd.Context(), "Failed to load configuration: %v", err)
	}

	if err = bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
		logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
	}

	logger.SetLevel(appConfig.ParsedLogLevel)
}

func bindFlagsToConfig(flags *pflag.FlagSet, cfg *config.Config) error {
	if flag := flags.Lookup("api-url"); flag != nil && flag.Changed {
		cfg.APIBaseURL, _ = flags.GetString("api-url")
	}

	if flag := flags.Lookup("credentials"); flag != nil && flag.Changed {
		cfg.CredentialsPath, _ = flags.GetString("credentials")
	}

	if flag := flags.Lookup("log-level"); flag != nil && flag.Changed {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}

	return config.ValidateConfig(cfg)
}
