package twitter

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	defaultHost          = "twitter-x.p.rapidapi.com"
	defaultBaseURL       = "https://" + defaultHost + "/"
	defaultTimeout       = 20 * time.Second
	defaultMaxConcurrent = 100
)

// ClientConfig holds all configuration for the Twitter client.
// It is immutable after the client is constructed.
type ClientConfig struct {
	// APIKey is the RapidAPI key sent with every request. Required.
	APIKey string `env:"TWITTER_API_KEY"`

	// Timeout is the per-request timeout. Default: 20s.
	Timeout time.Duration `env:"TWITTER_TIMEOUT"`

	// BaseURL overrides the API base URL.
	// Default: https://twitter-x.p.rapidapi.com/
	BaseURL string `env:"TWITTER_BASE_URL"`

	// Verbose enables debug-level request logging.
	Verbose bool `env:"TWITTER_VERBOSE"`

	// MaxConcurrent caps in-flight requests of the async client. Default: 100.
	MaxConcurrent int `env:"TWITTER_MAX_CONCURRENT"`

	// Logger overrides the default slog logger.
	Logger *slog.Logger
}

// defaults fills in zero-value config fields with sensible defaults.
func (cfg *ClientConfig) defaults() {
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.MaxConcurrent <= 0 {
		cfg.MaxConcurrent = defaultMaxConcurrent
	}
}

// logger returns the configured logger, or a stderr logger whose level is
// derived from Verbose.
func (cfg *ClientConfig) logger() *slog.Logger {
	if cfg.Logger != nil {
		return cfg.Logger
	}
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// ConfigFromEnv builds a ClientConfig from TWITTER_* environment variables.
// A .env file in the working directory is loaded first if present.
func ConfigFromEnv() (ClientConfig, error) {
	_ = godotenv.Load()

	var cfg ClientConfig
	if err := env.Parse(&cfg); err != nil {
		return ClientConfig{}, fmt.Errorf("parse env config: %w", err)
	}
	return cfg, nil
}
