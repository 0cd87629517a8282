package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/oshokin/cryptoalert-cli/internal/logger"
)

// Config holds all configuration settings.
type Config struct {
	// APIBaseURL is the absolute origin of the backend API.
	// Empty means requests use relative /api paths on SiteURL, which proxies them to the backend.
	APIBaseURL string `mapstructure:"api_base_url"`
	// SiteURL is the dashboard origin that reverse-proxies /api/* when APIBaseURL is empty.
	SiteURL string `mapstructure:"site_url"`
	// CredentialsPath is the file holding the bearer token. Empty selects the default location.
	CredentialsPath string `mapstructure:"credentials_path"`
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level"`
	// RequestTimeout limits a single HTTP request (e.g., "30s").
	RequestTimeout string `mapstructure:"request_timeout"`
	// BindPollInterval is the pause between Telegram bind status checks (e.g., "2s").
	BindPollInterval string `mapstructure:"bind_poll_interval"`
	// MaxLogLength caps the size of logged HTTP dumps (e.g., "1MB", "64KB").
	MaxLogLength string `mapstructure:"max_log_length"`
	// UserAgent overrides the User-Agent header. Empty selects the built-in one.
	UserAgent string `mapstructure:"user_agent"`
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level
	// ParsedRequestTimeout is the parsed request timeout.
	ParsedRequestTimeout time.Duration
	// ParsedBindPollInterval is the parsed bind status poll interval.
	ParsedBindPollInterval time.Duration
	// ParsedMaxLogLength is the parsed HTTP dump limit in bytes.
	ParsedMaxLogLength uint64
}

const (
	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".cryptoalert.yaml"

	// EnvPrefix is the prefix of environment variables overriding config keys.
	EnvPrefix = "CRYPTOALERT"

	// DashboardBaseURLEnv is the build-time variable the dashboard reads its API origin from.
	// It is honored as a fallback so one .env serves both.
	DashboardBaseURLEnv = "VITE_API_BASE_URL"

	// DefaultSiteURL is the dashboard origin used when nothing else is configured.
	DefaultSiteURL = "http://localhost"

	// DefaultLogLevel is the default logging level.
	DefaultLogLevel = "info"

	// DefaultRequestTimeout is the default timeout of a single HTTP request.
	DefaultRequestTimeout = "30s"

	// DefaultBindPollInterval is the default pause between bind status checks.
	DefaultBindPollInterval = "2s"

	// DefaultMaxLogLength is the default maximum size (in bytes) of a logged HTTP dump.
	DefaultMaxLogLength = 1 * 1024 * 1024 // 1 MB
)

// Static error definitions for better error handling.
var (
	// ErrInvalidAPIBaseURL indicates that api_base_url is not an absolute http(s) URL.
	ErrInvalidAPIBaseURL = errors.New("api_base_url must be an absolute http or https URL")
	// ErrInvalidSiteURL indicates that site_url is not an absolute http(s) URL.
	ErrInvalidSiteURL = errors.New("site_url must be an absolute http or https URL")
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrInvalidRequestTimeout indicates that the request timeout is not positive.
	ErrInvalidRequestTimeout = errors.New("request_timeout must be positive")
	// ErrInvalidBindPollInterval indicates that the bind poll interval is not positive.
	ErrInvalidBindPollInterval = errors.New("bind_poll_interval must be positive")
	// ErrInvalidMaxLogLength indicates that the log length limit is zero.
	ErrInvalidMaxLogLength = errors.New("max_log_length must be positive")
)

// LoadConfig loads configuration from defaults, an optional .env file,
// an optional YAML file and CRYPTOALERT_* environment variables, in increasing priority.
// An explicitly named file must exist; the default file is optional.
func LoadConfig(configFilename string) (*Config, error) {
	// Deploy-time values usually come from .env next to the binary; absence is fine.
	_ = godotenv.Load()

	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("api_base_url", EnvPrefix+"_API_BASE_URL", DashboardBaseURLEnv); err != nil {
		return nil, fmt.Errorf("failed to bind environment: %w", err)
	}

	explicit := configFilename != ""
	if !explicit {
		configFilename = DefaultConfigFilename
	}

	v.SetConfigFile(configFilename)

	if err := v.ReadInConfig(); err != nil {
		if explicit || !isMissingFile(configFilename) {
			return nil, fmt.Errorf("failed to read config from file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// ValidateConfig checks the configuration for validity and sets derived fields.
//
//nolint:cyclop // Validation functions naturally have high complexity due to sequential checks.
func ValidateConfig(cfg *Config) error {
	var err error

	cfg.APIBaseURL = strings.TrimSpace(cfg.APIBaseURL)
	if cfg.APIBaseURL != "" && !isAbsoluteHTTPURL(cfg.APIBaseURL) {
		return fmt.Errorf("%w: '%s'", ErrInvalidAPIBaseURL, cfg.APIBaseURL)
	}

	cfg.SiteURL = strings.TrimSpace(cfg.SiteURL)
	if cfg.SiteURL == "" {
		cfg.SiteURL = DefaultSiteURL
	}

	if !isAbsoluteHTTPURL(cfg.SiteURL) {
		return fmt.Errorf("%w: '%s'", ErrInvalidSiteURL, cfg.SiteURL)
	}

	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !isLogLevelCorrect {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	cfg.ParsedRequestTimeout, err = time.ParseDuration(cfg.RequestTimeout)
	if err != nil {
		return fmt.Errorf("failed to parse request timeout: %w", err)
	}

	if cfg.ParsedRequestTimeout <= 0 {
		return ErrInvalidRequestTimeout
	}

	cfg.ParsedBindPollInterval, err = time.ParseDuration(cfg.BindPollInterval)
	if err != nil {
		return fmt.Errorf("failed to parse bind poll interval: %w", err)
	}

	if cfg.ParsedBindPollInterval <= 0 {
		return ErrInvalidBindPollInterval
	}

	cfg.ParsedMaxLogLength, err = humanize.ParseBytes(cfg.MaxLogLength)
	if err != nil {
		return fmt.Errorf("failed to parse max log length: %w", err)
	}

	if cfg.ParsedMaxLogLength == 0 {
		return ErrInvalidMaxLogLength
	}

	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api_base_url", "")
	v.SetDefault("site_url", DefaultSiteURL)
	v.SetDefault("credentials_path", "")
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("request_timeout", DefaultRequestTimeout)
	v.SetDefault("bind_poll_interval", DefaultBindPollInterval)
	v.SetDefault("max_log_length", humanize.IBytes(DefaultMaxLogLength))
	v.SetDefault("user_agent", "")
}

func isMissingFile(path string) bool {
	_, err := os.Stat(path)

	return os.IsNotExist(err)
}

func isAbsoluteHTTPURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}

	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}
