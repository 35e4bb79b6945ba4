// Package config loads and validates scraper configuration via Viper.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config captures all service configuration knobs loaded via Viper.
type Config struct {
	Batch    BatchConfig    `mapstructure:"batch"`
	Fetch    FetchConfig    `mapstructure:"fetch"`
	Headless HeadlessConfig `mapstructure:"headless"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Chunk    ChunkConfig    `mapstructure:"chunk"`
	Extract  ExtractConfig  `mapstructure:"extract"`
	LLM      LLMConfig      `mapstructure:"llm"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// BatchConfig governs worker pool behavior.
type BatchConfig struct {
	Concurrency int `mapstructure:"concurrency"`
}

// FetchConfig controls the direct (non-rendering) fetch strategy.
type FetchConfig struct {
	UserAgent      string `mapstructure:"user_agent"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// HeadlessConfig configures the rendered-fetch fallback.
type HeadlessConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	NavTimeoutSec int  `mapstructure:"nav_timeout_seconds"`
}

// CacheConfig bounds the fetch-result cache. Size zero disables caching.
type CacheConfig struct {
	Size int `mapstructure:"size"`
}

// ChunkConfig sizes normalized-text segments for the model.
type ChunkConfig struct {
	MaxLen int `mapstructure:"max_len"`
}

// ExtractConfig caps contact extraction output.
type ExtractConfig struct {
	MaxEmails     int `mapstructure:"max_emails"`
	MaxPhones     int `mapstructure:"max_phones"`
	MaxPerSocial  int `mapstructure:"max_per_social"`
	MaxAnchorScan int `mapstructure:"max_anchor_scan"`
}

// LLMConfig points at the OpenAI-compatible completion endpoint.
type LLMConfig struct {
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
}

// LoggingConfig toggles zap development features.
type LoggingConfig struct {
	Development bool   `mapstructure:"development"`
	Level       string `mapstructure:"level"`
}

// Load builds a Config from disk/environment.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SCRAPER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("batch.concurrency", 6)
	v.SetDefault("fetch.user_agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")
	v.SetDefault("fetch.timeout_seconds", 10)
	v.SetDefault("headless.enabled", true)
	v.SetDefault("headless.nav_timeout_seconds", 25)
	v.SetDefault("cache.size", 128)
	v.SetDefault("chunk.max_len", 6000)
	v.SetDefault("extract.max_emails", 5)
	v.SetDefault("extract.max_phones", 3)
	v.SetDefault("extract.max_per_social", 3)
	v.SetDefault("extract.max_anchor_scan", 100)
	v.SetDefault("llm.base_url", "http://localhost:11434/v1")
	v.SetDefault("llm.model", "llama3.1")
	v.SetDefault("logging.development", true)
	v.SetDefault("logging.level", "info")
}

// Validate enforces required values and reasonable limits.
// Config errors are the only fatal errors in the system; everything past
// dispatch degrades per URL.
func (c Config) Validate() error {
	if c.Batch.Concurrency <= 0 {
		return fmt.Errorf("batch.concurrency must be > 0")
	}
	if c.Fetch.TimeoutSeconds <= 0 {
		return fmt.Errorf("fetch.timeout_seconds must be > 0")
	}
	if c.Headless.Enabled && c.Headless.NavTimeoutSec <= 0 {
		return fmt.Errorf("headless.nav_timeout_seconds must be > 0 when headless is enabled")
	}
	if c.Cache.Size < 0 {
		return fmt.Errorf("cache.size must be >= 0")
	}
	if c.Chunk.MaxLen <= 0 {
		return fmt.Errorf("chunk.max_len must be > 0")
	}
	if c.Extract.MaxEmails <= 0 || c.Extract.MaxPhones <= 0 || c.Extract.MaxPerSocial <= 0 {
		return fmt.Errorf("extract caps must be > 0")
	}
	if c.Extract.MaxAnchorScan <= 0 {
		return fmt.Errorf("extract.max_anchor_scan must be > 0")
	}
	return nil
}

// FetchTimeout converts the configured fetch timeout into a duration.
func (c Config) FetchTimeout() time.Duration {
	return time.Duration(c.Fetch.TimeoutSeconds) * time.Second
}

// NavTimeout converts the configured headless navigation timeout into a duration.
func (c Config) NavTimeout() time.Duration {
	return time.Duration(c.Headless.NavTimeoutSec) * time.Second
}
