package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/rahul4469/gemini-relay/internal/models"
)

type Config struct {
	// Server config
	Server ServerConfig

	// CORS config
	Security SecurityConfig

	// Gemini API config
	APIs APIConfig

	// request limits
	Limits LimitsConfig

	// E-E-A-T analyzer behaviour
	Analyzer AnalyzerConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// Address returns the listen address for Port.
func (s ServerConfig) Address() string {
	return ":" + s.Port
}

// SecurityConfig holds cross-origin settings.
type SecurityConfig struct {
	AllowedOrigins []string
}

// APIConfig holds external API configuration.
type APIConfig struct {
	GeminiAPIKey  string
	GeminiModel   string
	// GeminiTimeout bounds each outbound call. It must stay below
	// Server.WriteTimeout so a slow call still gets a JSON 500.
	GeminiTimeout time.Duration
}

// LimitsConfig holds request size limits.
type LimitsConfig struct {
	MaxBodyBytes int64
}

// AnalyzerConfig controls how analyzer responses are checked.
type AnalyzerConfig struct {
	// StrictSchema rejects parsed results that lack any E-E-A-T key.
	StrictSchema bool
}

func Load() (*Config, error) {
	// .env is optional; in production the platform sets the environment
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.Server = ServerConfig{
		Port:         getEnvOrDefault("PORT", "3000"),
		ReadTimeout:  getDurationOrDefault("SERVER_READ_TIMEOUT", 15*time.Second),
		WriteTimeout: getDurationOrDefault("SERVER_WRITE_TIMEOUT", 120*time.Second),
		IdleTimeout:  getDurationOrDefault("SERVER_IDLE_TIMEOUT", 60*time.Second),
	}

	cfg.Security = SecurityConfig{
		AllowedOrigins: strings.Fields(getEnvOrDefault("CORS_ALLOWED_ORIGINS", "*")),
	}

	cfg.APIs = APIConfig{
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiModel:   getEnvOrDefault("GEMINI_MODEL", "gemini-1.5-flash"),
		GeminiTimeout: getDurationOrDefault("GEMINI_TIMEOUT", 110*time.Second),
	}

	maxBody, err := strconv.ParseInt(getEnvOrDefault("MAX_BODY_BYTES", "102400"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_BODY_BYTES: %w", err)
	}
	cfg.Limits = LimitsConfig{
		MaxBodyBytes: maxBody,
	}

	strict, err := strconv.ParseBool(getEnvOrDefault("ANALYZER_STRICT_SCHEMA", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid ANALYZER_STRICT_SCHEMA: %w", err)
	}
	cfg.Analyzer = AnalyzerConfig{
		StrictSchema: strict,
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks that all required configuration is present and valid.
func (c *Config) validate() error {
	var errs []error

	// Without a key no request can ever succeed
	if c.APIs.GeminiAPIKey == "" {
		errs = append(errs, fmt.Errorf("GEMINI_API_KEY is required: %w", models.ErrStartupConfigurationMissing))
	}

	if c.APIs.GeminiModel == "" {
		errs = append(errs, errors.New("GEMINI_MODEL must not be empty"))
	}

	switch {
	case c.APIs.GeminiTimeout <= 0:
		errs = append(errs, errors.New("GEMINI_TIMEOUT must be positive"))
	case c.Server.WriteTimeout > 0 && c.APIs.GeminiTimeout >= c.Server.WriteTimeout:
		errs = append(errs, fmt.Errorf("GEMINI_TIMEOUT (%v) must be shorter than SERVER_WRITE_TIMEOUT (%v)", c.APIs.GeminiTimeout, c.Server.WriteTimeout))
	}

	if c.Limits.MaxBodyBytes <= 0 {
		errs = append(errs, errors.New("MAX_BODY_BYTES must be positive"))
	}

	if len(c.Security.AllowedOrigins) == 0 {
		errs = append(errs, errors.New("CORS_ALLOWED_ORIGINS must name at least one origin"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n%w", errors.Join(errs...))
	}

	return nil
}

// getEnvOrDefault returns the .env value or a default.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		duration, err := time.ParseDuration(value)
		if err != nil {
			log.Printf("Warning: Invalid duration for %s: %v, using default", key, err)
			return defaultValue
		}
		return duration
	}
	return defaultValue
}

