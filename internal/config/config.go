package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ryosukesatoh/newsdeck/internal/newsapi"
)

type Config struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`

	// Default search inputs. Topic is only required by watch mode.
	Topic     string `yaml:"topic"`
	Language  string `yaml:"language"`
	Category  string `yaml:"category"`
	DateRange string `yaml:"date_range"`

	// Cron expression for watch mode.
	Schedule string `yaml:"schedule"`

	// Debug log destination for TUI mode; empty disables logging there.
	LogFile string `yaml:"log_file"`

	// Boilerplate lead-in phrases stripped from summaries. Empty means the
	// built-in defaults.
	SummaryPrefixes []string `yaml:"summary_prefixes"`
}

func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Query builds the default search query from the configured inputs.
func (c *Config) Query() newsapi.Query {
	return newsapi.Query{
		Topic:     c.Topic,
		Language:  c.Language,
		Category:  c.Category,
		DateRange: c.DateRange,
	}
}

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

// expandEnvVars replaces ${VAR_NAME} patterns with environment variable values.
func expandEnvVars(s string) string {
	return envVarRegex.ReplaceAllStringFunc(s, func(match string) string {
		varName := strings.TrimSuffix(strings.TrimPrefix(match, "${"), "}")
		if val, ok := os.LookupEnv(varName); ok {
			return val
		}
		return match
	})
}

func setDefaults(cfg *Config) {
	if cfg.TimeoutSeconds == 0 {
		cfg.TimeoutSeconds = 15
	}
	if cfg.Language == "" {
		cfg.Language = "en"
	}
	if cfg.DateRange == "" {
		cfg.DateRange = "7d"
	}
	if cfg.Schedule == "" {
		cfg.Schedule = "0 * * * *"
	}
	if len(cfg.SummaryPrefixes) == 0 {
		cfg.SummaryPrefixes = newsapi.DefaultSummaryPrefixes
	}
}

func validate(cfg *Config) error {
	if cfg.BaseURL == "" {
		return fmt.Errorf("config: base_url is required")
	}
	switch cfg.DateRange {
	case "24h", "1d", "7d", "30d":
	default:
		return fmt.Errorf("config: unsupported date_range %q (supported: 24h, 1d, 7d, 30d)", cfg.DateRange)
	}
	if cfg.TimeoutSeconds < 0 {
		return fmt.Errorf("config: timeout_seconds must not be negative")
	}
	return nil
}

// Load reads the config file, expands environment variables, applies defaults,
// and validates the configuration.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	expanded := expandEnvVars(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}

	setDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
