package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"ceefax/internal/wttr"
)

// EnvPrefix namespaces environment overrides, e.g. CEEFAX_COUNTRY.
const EnvPrefix = "CEEFAX"

// Config holds every runtime setting. Use DefaultConfig() and override as needed.
type Config struct {
	Country      string // Country file stem to show first (default: "uk")
	TemplatesDir string // Directory of country files; empty means next to the executable

	RefreshInterval time.Duration // How long a Loaded snapshot stays current (default: 15m)
	FramePeriod     time.Duration // Event poll / animation period (default: 50ms)

	BaseURL           string        // Weather endpoint (default: https://wttr.in)
	RequestTimeout    time.Duration // Per-request HTTP timeout (default: 10s)
	MaxRetries        int           // Extra attempts for retryable failures (default: 2)
	RequestsPerSecond float64       // Pacing towards the endpoint (default: 4)

	LogFile  string // Log destination; empty means $TMPDIR/ceefax.log
	LogLevel string // debug, info, warn or error (default: info)

	PrintOnce bool // Print the map once to stdout and exit
	Mouse     bool // Enable mouse cell motion (default: true)
}

func DefaultConfig() Config {
	return Config{
		Country:           "uk",
		RefreshInterval:   15 * time.Minute,
		FramePeriod:       50 * time.Millisecond,
		BaseURL:           wttr.DefaultBaseURL,
		RequestTimeout:    10 * time.Second,
		MaxRetries:        2,
		RequestsPerSecond: 4,
		LogLevel:          "info",
		Mouse:             true,
	}
}

// ClientOptions maps the network settings onto a wttr client.
func (c Config) ClientOptions() wttr.ClientOptions {
	return wttr.ClientOptions{
		BaseURL:           c.BaseURL,
		Timeout:           c.RequestTimeout,
		RequestsPerSecond: c.RequestsPerSecond,
		Backoff: wttr.BackoffConfig{
			MaxRetries:      c.MaxRetries,
			InitialInterval: 500 * time.Millisecond,
			MaxInterval:     5 * time.Second,
		},
	}
}

// WithCountry returns a copy of the config showing country first.
func (c Config) WithCountry(country string) Config {
	c.Country = country
	return c
}

// WithTemplatesDir returns a copy of the config reading country files from dir.
func (c Config) WithTemplatesDir(dir string) Config {
	c.TemplatesDir = dir
	return c
}

// WithRefreshInterval returns a copy of the config with a different refresh interval.
func (c Config) WithRefreshInterval(d time.Duration) Config {
	c.RefreshInterval = d
	return c
}

// WithFramePeriod returns a copy of the config with a different frame period.
func (c Config) WithFramePeriod(d time.Duration) Config {
	c.FramePeriod = d
	return c
}

func (c Config) WithBaseURL(u string) Config {
	c.BaseURL = u
	return c
}

// Validate checks if the configuration is valid and returns an error if not.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Country) == "" {
		return &ConfigError{Field: "Country", Message: "must not be empty"}
	}
	if c.RefreshInterval <= 0 {
		return &ConfigError{Field: "RefreshInterval", Message: "must be positive"}
	}
	if c.FramePeriod <= 0 {
		return &ConfigError{Field: "FramePeriod", Message: "must be positive"}
	}
	if c.BaseURL == "" {
		return &ConfigError{Field: "BaseURL", Message: "must not be empty"}
	}
	if c.RequestTimeout <= 0 {
		return &ConfigError{Field: "RequestTimeout", Message: "must be positive"}
	}
	if c.MaxRetries < 0 {
		return &ConfigError{Field: "MaxRetries", Message: "must not be negative"}
	}
	if c.RequestsPerSecond <= 0 {
		return &ConfigError{Field: "RequestsPerSecond", Message: "must be positive"}
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return &ConfigError{Field: "LogLevel", Message: "must be one of debug, info, warn, error"}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error: " + e.Field + " " + e.Message
}

// Load builds a Config from defaults, an optional .env file, CEEFAX_*
// environment variables and command-line flags, in increasing precedence.
// A --help request returns pflag.ErrHelp.
func Load(args []string) (Config, error) {
	return load(args, ".env")
}

func load(args []string, envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, &ConfigError{Field: "env", Message: err.Error()}
	}

	def := DefaultConfig()
	flags := pflag.NewFlagSet("ceefax", pflag.ContinueOnError)
	flags.StringP("country", "c", def.Country, "country to display")
	flags.String("templates", def.TemplatesDir, "directory holding country files")
	flags.Duration("refresh", def.RefreshInterval, "refresh interval")
	flags.Duration("timeout", def.RequestTimeout, "per-request timeout")
	flags.Int("retries", def.MaxRetries, "retries for failed requests")
	flags.Float64("rps", def.RequestsPerSecond, "requests per second to the weather endpoint")
	flags.String("base-url", def.BaseURL, "weather endpoint base URL")
	flags.String("log-file", def.LogFile, "log file path")
	flags.String("log-level", def.LogLevel, "log level")
	flags.Bool("once", def.PrintOnce, "print the map once and exit")
	flags.Bool("no-mouse", !def.Mouse, "disable mouse support")

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return Config{}, err
	}

	cfg := Config{
		Country:           v.GetString("country"),
		TemplatesDir:      v.GetString("templates"),
		RefreshInterval:   v.GetDuration("refresh"),
		FramePeriod:       def.FramePeriod,
		BaseURL:           v.GetString("base-url"),
		RequestTimeout:    v.GetDuration("timeout"),
		MaxRetries:        v.GetInt("retries"),
		RequestsPerSecond: v.GetFloat64("rps"),
		LogFile:           v.GetString("log-file"),
		LogLevel:          v.GetString("log-level"),
		PrintOnce:         v.GetBool("once"),
		Mouse:             !v.GetBool("no-mouse"),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
