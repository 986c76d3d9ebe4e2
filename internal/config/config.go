// Package config loads application configuration from environment variables.
// Every value has a working default so a bare `docbrief-api` starts with an
// in-process SQLite database and the noop generator.
package config

import (
	"fmt"
	"time"

	pkgconfig "docbrief/pkg/config"
)

// Config holds the full runtime configuration of the API server.
type Config struct {
	// Addr is the listen address of the API server.
	// Default: ":8080"
	Addr string

	// MetricsAddr is the listen address of the Prometheus metrics server.
	// Empty disables the separate metrics listener.
	// Default: ":9090"
	MetricsAddr string

	// Version is reported by the health endpoint.
	// Default: "dev"
	Version string

	// DB configures the persistence backend.
	DB DBConfig

	// Generator configures the summary generation provider.
	Generator GeneratorConfig

	// Archive configures plain-text archiving of saved summaries.
	Archive ArchiveConfig

	// RateLimit configures per-IP request limiting.
	RateLimit RateLimitConfig

	// MaxBodyBytes bounds request body sizes.
	// Default: 10 MiB
	MaxBodyBytes int64

	// RequestTimeout bounds the total time spent on one request.
	// Default: 150s (generation itself may take up to two minutes)
	RequestTimeout time.Duration

	// ShutdownTimeout bounds graceful shutdown on SIGTERM.
	// Default: 15s
	ShutdownTimeout time.Duration
}

// DBConfig holds database settings.
type DBConfig struct {
	// Driver is "sqlite" or "postgres".
	// Default: "sqlite"
	Driver string

	// DSN is the driver-specific connection string.
	// Default: "docbrief.db" (a local SQLite file)
	DSN string
}

// GeneratorConfig holds generation provider settings.
type GeneratorConfig struct {
	// Provider is "gemini", "claude", "openai", or "noop".
	// Default: "noop" so the server starts without credentials
	Provider string

	// APIKey authenticates against the selected provider. Read from the
	// provider-specific variable (GEMINI_API_KEY, ANTHROPIC_API_KEY,
	// OPENAI_API_KEY).
	APIKey string

	// Model overrides the provider's default model.
	Model string

	// Timeout bounds a single provider call.
	// Default: 60s
	Timeout time.Duration

	// GenerationTimeout bounds one pipeline generation step end to end,
	// including retries.
	// Default: 120s
	GenerationTimeout time.Duration
}

// ArchiveConfig holds summary archive settings.
type ArchiveConfig struct {
	// Enabled controls whether saved summaries are also written to disk.
	// Default: true
	Enabled bool

	// Dir is the archive root directory.
	// Default: "summaries"
	Dir string
}

// RateLimitConfig holds per-IP rate limit settings.
type RateLimitConfig struct {
	// Enabled controls whether the limiter middleware is installed.
	// Default: true
	Enabled bool

	// Limit is the number of requests allowed per Window.
	// Default: 60
	Limit int

	// Window is the rate limit window.
	// Default: 1m
	Window time.Duration
}

// Load reads configuration from environment variables, applying defaults
// for anything unset.
func Load() (*Config, error) {
	cfg := &Config{
		Addr:        pkgconfig.GetEnvString("HTTP_ADDR", ":8080"),
		MetricsAddr: pkgconfig.GetEnvString("METRICS_ADDR", ":9090"),
		Version:     pkgconfig.GetEnvString("APP_VERSION", "dev"),
		DB: DBConfig{
			Driver: pkgconfig.GetEnvString("DB_DRIVER", "sqlite"),
			DSN:    pkgconfig.GetEnvString("DB_DSN", "docbrief.db"),
		},
		Generator: GeneratorConfig{
			Provider:          pkgconfig.GetEnvString("AI_PROVIDER", "noop"),
			Model:             pkgconfig.GetEnvString("AI_MODEL", ""),
			Timeout:           pkgconfig.GetEnvDuration("AI_TIMEOUT", 60*time.Second),
			GenerationTimeout: pkgconfig.GetEnvDuration("GENERATION_TIMEOUT", 120*time.Second),
		},
		Archive: ArchiveConfig{
			Enabled: pkgconfig.GetEnvBool("ARCHIVE_ENABLED", true),
			Dir:     pkgconfig.GetEnvString("ARCHIVE_DIR", "summaries"),
		},
		RateLimit: RateLimitConfig{
			Enabled: pkgconfig.GetEnvBool("RATE_LIMIT_ENABLED", true),
			Limit:   pkgconfig.GetEnvInt("RATE_LIMIT", 60),
			Window:  pkgconfig.GetEnvDuration("RATE_LIMIT_WINDOW", time.Minute),
		},
		MaxBodyBytes:    int64(pkgconfig.GetEnvInt("MAX_BODY_BYTES", 10<<20)),
		RequestTimeout:  pkgconfig.GetEnvDuration("REQUEST_TIMEOUT", 150*time.Second),
		ShutdownTimeout: pkgconfig.GetEnvDuration("SHUTDOWN_TIMEOUT", 15*time.Second),
	}

	cfg.Generator.APIKey = apiKeyFor(cfg.Generator.Provider)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// apiKeyFor reads the credential variable matching the provider.
func apiKeyFor(provider string) string {
	switch provider {
	case "gemini":
		return pkgconfig.GetEnvString("GEMINI_API_KEY", "")
	case "claude":
		return pkgconfig.GetEnvString("ANTHROPIC_API_KEY", "")
	case "openai":
		return pkgconfig.GetEnvString("OPENAI_API_KEY", "")
	}
	return ""
}

// validate rejects configurations that cannot possibly work. Provider
// specific checks (unknown provider, missing key) belong to the generator
// factory; this only covers structural settings.
func (c *Config) validate() error {
	switch c.DB.Driver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("config: unsupported DB_DRIVER %q", c.DB.Driver)
	}
	if c.DB.DSN == "" {
		return fmt.Errorf("config: DB_DSN is required")
	}
	if c.RateLimit.Enabled {
		if c.RateLimit.Limit <= 0 {
			return fmt.Errorf("config: RATE_LIMIT must be positive")
		}
		if err := pkgconfig.ValidatePositiveDuration(c.RateLimit.Window); err != nil {
			return fmt.Errorf("config: RATE_LIMIT_WINDOW: %w", err)
		}
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("config: MAX_BODY_BYTES must be positive")
	}
	for name, d := range map[string]time.Duration{
		"AI_TIMEOUT":         c.Generator.Timeout,
		"GENERATION_TIMEOUT": c.Generator.GenerationTimeout,
		"REQUEST_TIMEOUT":    c.RequestTimeout,
		"SHUTDOWN_TIMEOUT":   c.ShutdownTimeout,
	} {
		if err := pkgconfig.ValidatePositiveDuration(d); err != nil {
			return fmt.Errorf("config: %s: %w", name, err)
		}
	}
	return nil
}
