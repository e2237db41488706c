// Package config defines the feed generator configuration and how it is loaded.
package config

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"

	govalorant "github.com/Feuerlord2/govalorant/pkg"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: trace, debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat is "text" or "json".
	LogFormat string `koanf:"log_format"`

	// BaseURL of the Valorant API.
	BaseURL string `koanf:"base_url"`

	// Timeout bounds every API request, including reading the body.
	Timeout time.Duration `koanf:"timeout"`

	UserAgent string `koanf:"user_agent"`

	// Languages lists the wire codes to build feeds for, e.g. ["en-US", "de-DE"].
	Languages []string `koanf:"languages"`

	// OutputDir receives bundles-<code>.rss and bundles-<code>.atom.
	OutputDir string `koanf:"output_dir"`

	// Formats selects "rss", "atom" or both.
	Formats []string `koanf:"formats"`

	// Concurrency caps how many languages are fetched at once.
	Concurrency int `koanf:"concurrency"`

	// MetricsFile, if set, receives request metrics in Prometheus text format.
	MetricsFile string `koanf:"metrics_file"`
}

var (
	defaultLanguages = []string{"en-US", "de-DE"}
	defaultFormats   = []string{"rss"}
)

// New returns a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:    "info",
		LogFormat:   "text",
		BaseURL:     govalorant.DefaultBaseURL,
		Timeout:     30 * time.Second,
		OutputDir:   "docs",
		Concurrency: 4,
	}
}

// applyListDefaults fills list settings after unmarshalling; lists are left nil
// in New so a configured list replaces the default instead of merging into it.
func (c *Config) applyListDefaults() {
	if len(c.Languages) == 0 {
		c.Languages = append([]string(nil), defaultLanguages...)
	}
	if len(c.Formats) == 0 {
		c.Formats = append([]string(nil), defaultFormats...)
	}
}

// ParsedLanguages returns the configured languages, de-duplicated, in order.
func (c *Config) ParsedLanguages() ([]govalorant.Language, error) {
	langs := make([]govalorant.Language, 0, len(c.Languages))
	for _, code := range c.Languages {
		l, err := govalorant.ParseLanguage(code)
		if err != nil {
			return nil, err
		}
		langs = append(langs, l)
	}
	return lo.Uniq(langs), nil
}

// Validate checks the configuration for values the generator cannot work with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return errors.Wrap(ErrInvalidConfig, "base_url must not be empty")
	}
	if c.Timeout <= 0 {
		return errors.Wrap(ErrInvalidConfig, "timeout must be positive")
	}
	if c.Concurrency < 1 {
		return errors.Wrap(ErrInvalidConfig, "concurrency must be at least 1")
	}
	if c.OutputDir == "" {
		return errors.Wrap(ErrInvalidConfig, "output_dir must not be empty")
	}
	if len(c.Languages) == 0 {
		return errors.Wrap(ErrInvalidConfig, "at least one language is required")
	}
	if _, err := c.ParsedLanguages(); err != nil {
		return errors.Mark(errors.Wrap(err, "languages"), ErrInvalidConfig)
	}
	for _, f := range c.Formats {
		if f != "rss" && f != "atom" {
			return errors.Wrapf(ErrInvalidConfig, "unsupported format %q", f)
		}
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return errors.Wrapf(ErrInvalidConfig, "unsupported log_format %q", c.LogFormat)
	}
	return nil
}
