package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/cryptoalert-cli/internal/config"
	"github.com/oshokin/cryptoalert-cli/internal/constants"
)

const testBaseConfigContent = `
api_base_url: "https://config.example.com"
site_url: "https://dashboard.example.com"
credentials_path: "/config/credentials.yaml"
log_level: "info"
request_timeout: "10s"
bind_poll_interval: "2s"
max_log_length: "64KB"
`

// newTestFlags returns a command with the root persistent flags.
func newTestFlags() *cobra.Command {
	testCmd := &cobra.Command{Use: "test"}
	testCmd.Flags().StringP("api-url", "u", "", "api url")
	testCmd.Flags().String("credentials", "", "credentials path")
	testCmd.Flags().StringP("log-level", "l", "", "log level")

	return testCmd
}

func loadTestConfig(t *testing.T, content string) *config.Config {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "test-config.yaml")

	err := os.WriteFile(configPath, []byte(content), constants.DefaultFilePermissions)
	require.NoError(t, err)

	cfg, err := config.LoadConfig(configPath)
	require.NoError(t, err)

	return cfg
}

// TestFlagOverrides tests that command-line flags correctly override configuration file values.
//
//nolint:tparallel // Cannot run in parallel due to environment-dependent config loading.
func TestFlagOverrides(t *testing.T) {
	tests := []struct {
		name           string
		flags          map[string]string
		expectedConfig func(*testing.T, *config.Config)
	}{
		{
			name:  "no flags - use config values",
			flags: map[string]string{},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "https://config.example.com", cfg.APIBaseURL)
				assert.Equal(t, "/config/credentials.yaml", cfg.CredentialsPath)
				assert.Equal(t, "info", cfg.LogLevel)
			},
		},
		{
			name:  "api-url flag overrides api_base_url",
			flags: map[string]string{"api-url": "https://flag.example.com"},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "https://flag.example.com", cfg.APIBaseURL)
				assert.Equal(t, "/config/credentials.yaml", cfg.CredentialsPath)
			},
		},
		{
			name:  "empty api-url flag selects relative paths",
			flags: map[string]string{"api-url": ""},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Empty(t, cfg.APIBaseURL)
			},
		},
		{
			name:  "credentials flag overrides credentials_path",
			flags: map[string]string{"credentials": "/flag/credentials.yaml"},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "/flag/credentials.yaml", cfg.CredentialsPath)
			},
		},
		{
			name: "all flags",
			flags: map[string]string{
				"api-url":     "https://all.example.com",
				"credentials": "/all/credentials.yaml",
				"log-level":   "debug",
			},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "https://all.example.com", cfg.APIBaseURL)
				assert.Equal(t, "/all/credentials.yaml", cfg.CredentialsPath)
				assert.Equal(t, "debug", cfg.LogLevel)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := loadTestConfig(t, testBaseConfigContent)
			testCmd := newTestFlags()

			for name, value := range tt.flags {
				require.NoError(t, testCmd.Flags().Set(name, value))
			}

			require.NoError(t, bindFlagsToConfig(testCmd.Flags(), cfg))
			tt.expectedConfig(t, cfg)
		})
	}
}

// TestFlagOverrides_InvalidValues tests that invalid flag values are caught during validation.
//
//nolint:tparallel // Cannot run in parallel due to environment-dependent config loading.
func TestFlagOverrides_InvalidValues(t *testing.T) {
	tests := []struct {
		name          string
		flagName      string
		flagValue     string
		expectedError error
	}{
		{
			name:          "relative api url",
			flagName:      "api-url",
			flagValue:     "/api",
			expectedError: config.ErrInvalidAPIBaseURL,
		},
		{
			name:          "unknown log level",
			flagName:      "log-level",
			flagValue:     "chatty",
			expectedError: config.ErrUnknownLogLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := loadTestConfig(t, testBaseConfigContent)
			testCmd := newTestFlags()

			require.NoError(t, testCmd.Flags().Set(tt.flagName, tt.flagValue))

			err := bindFlagsToConfig(testCmd.Flags(), cfg)
			require.ErrorIs(t, err, tt.expectedError)
		})
	}
}

// TestBindFlagsToConfig_EmptyFlagSet tests handling of empty flag set.
func TestBindFlagsToConfig_EmptyFlagSet(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		SiteURL:          config.DefaultSiteURL,
		LogLevel:         "info",
		RequestTimeout:   "30s",
		BindPollInterval: "2s",
		MaxLogLength:     "1MB",
	}

	emptyFlags := pflag.NewFlagSet("test", pflag.ContinueOnError)

	require.NoError(t, bindFlagsToConfig(emptyFlags, cfg))
	assert.Equal(t, uint64(1000*1000), cfg.ParsedMaxLogLength)
}

// TestCommandTree tests that every command is registered with its arguments policy.
func TestCommandTree(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path      []string
		validArgs []string
		badArgs   []string
	}{
		{path: []string{"auth", "login"}, validArgs: nil, badArgs: []string{"extra"}},
		{path: []string{"auth", "register"}, validArgs: nil, badArgs: []string{"extra"}},
		{path: []string{"auth", "logout"}, validArgs: nil, badArgs: []string{"extra"}},
		{path: []string{"auth", "status"}, validArgs: nil, badArgs: []string{"extra"}},
		{path: []string{"auth", "whoami"}, validArgs: nil, badArgs: []string{"extra"}},
		{path: []string{"auth", "telegram"}, validArgs: nil, badArgs: []string{"extra"}},
		{path: []string{"subs", "list"}, validArgs: []string{"btc"}, badArgs: []string{"btc", "eth"}},
		{path: []string{"subs", "add"}, validArgs: []string{"btc", "1h", "4h"}, badArgs: []string{"btc"}},
		{path: []string{"subs", "remove"}, validArgs: []string{"btc", "1h"}, badArgs: []string{"btc", "1h", "4h"}},
		{path: []string{"version"}, validArgs: nil, badArgs: []string{"extra"}},
	}

	for _, tt := range tests {
		t.Run(filepath.Join(tt.path...), func(t *testing.T) {
			t.Parallel()

			found, _, err := rootCmd.Find(tt.path)
			require.NoError(t, err)
			require.NotNil(t, found)
			assert.Equal(t, tt.path[len(tt.path)-1], found.Name())

			require.NotNil(t, found.Args)
			require.NoError(t, found.Args(found, tt.validArgs))
			require.Error(t, found.Args(found, tt.badArgs))
		})
	}
}

// TestRootFlags tests the persistent flags of the root command.
func TestRootFlags(t *testing.T) {
	t.Parallel()

	flags := rootCmd.PersistentFlags()

	for _, name := range []string{"config", "api-url", "credentials", "log-level"} {
		assert.NotNil(t, flags.Lookup(name), name)
	}

	assert.Equal(t, "c", flags.Lookup("config").Shorthand)
	assert.Equal(t, "u", flags.Lookup("api-url").Shorthand)
}
