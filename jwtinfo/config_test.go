package jwtinfo

import (
	"errors"
	"log/slog"
	"strings"
	"testing"
)

// TestNewConfig tests option handling and validation
func TestNewConfig(t *testing.T) {
	logger := slog.Default()

	tests := []struct {
		name        string
		options     []ConfigOption
		wantErr     bool
		errContains string
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name:    "defaults",
			options: nil,
			check: func(t *testing.T, cfg *Config) {
				if cfg.Logger() != nil || cfg.CookieName() != "" || cfg.Pretty() || cfg.MaxTokenSize() != 0 {
					t.Errorf("unexpected defaults: %+v", cfg)
				}
			},
		},
		{
			name:    "all options",
			options: []ConfigOption{WithLogger(logger), WithCookie("auth_token"), WithPretty(true), WithMaxTokenSize(8192)},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Logger() != logger {
					t.Error("logger not set")
				}
				if cfg.CookieName() != "auth_token" {
					t.Errorf("CookieName() = %q", cfg.CookieName())
				}
				if !cfg.Pretty() {
					t.Error("Pretty() = false")
				}
				if cfg.MaxTokenSize() != 8192 {
					t.Errorf("MaxTokenSize() = %d", cfg.MaxTokenSize())
				}
			},
		},
		{
			name:        "negative token size",
			options:     []ConfigOption{WithMaxTokenSize(-1)},
			wantErr:     true,
			errContains: "max token size must be non-negative",
		},
		{
			name:        "empty cookie name",
			options:     []ConfigOption{WithCookie("")},
			wantErr:     true,
			errContains: "cookie name cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := NewConfig(tt.options...)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, ErrConfigError) {
					t.Errorf("expected CONFIG_ERROR, got %v", err)
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q does not contain %q", err.Error(), tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

// mustCreateConfig is a test helper that panics on configuration errors
func mustCreateConfig(opts ...ConfigOption) *Config {
	cfg, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return cfg
}
