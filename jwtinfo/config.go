package jwtinfo

import (
	"fmt"
	"log/slog"
)

// Config holds immutable configuration for Decode and the inspection adapters
type Config struct {
	logger       *slog.Logger
	cookieName   string
	pretty       bool
	maxTokenSize int // 0 means unlimited
}

// ConfigOption is a functional option for configuring decoding
type ConfigOption func(*Config) error

// NewConfig creates a new immutable configuration with the given options
func NewConfig(opts ...ConfigOption) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, NewError(ErrConfigError, fmt.Sprintf("configuration error: %v", err), err)
		}
	}

	return cfg, nil
}

// WithLogger sets a structured logger for decode events
func WithLogger(logger *slog.Logger) ConfigOption {
	return func(c *Config) error {
		c.logger = logger
		return nil
	}
}

// WithCookie enables token extraction from a cookie with the given name
// when a request carries no Authorization header
func WithCookie(cookieName string) ConfigOption {
	return func(c *Config) error {
		if cookieName == "" {
			return fmt.Errorf("cookie name cannot be empty")
		}
		c.cookieName = cookieName
		return nil
	}
}

// WithPretty makes DecodeHandler indent its JSON responses
func WithPretty(pretty bool) ConfigOption {
	return func(c *Config) error {
		c.pretty = pretty
		return nil
	}
}

// WithMaxTokenSize rejects tokens longer than n bytes before parsing.
// Zero disables the limit.
func WithMaxTokenSize(n int) ConfigOption {
	return func(c *Config) error {
		if n < 0 {
			return fmt.Errorf("max token size must be non-negative, got %d", n)
		}
		c.maxTokenSize = n
		return nil
	}
}

func (c *Config) Logger() *slog.Logger {
	return c.logger
}

func (c *Config) CookieName() string {
	return c.cookieName
}

func (c *Config) Pretty() bool {
	return c.pretty
}

func (c *Config) MaxTokenSize() int {
	return c.maxTokenSize
}
