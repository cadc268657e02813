package config

import (
	"errors"
	"testing"
	"time"

	"github.com/rahul4469/gemini-relay/internal/models"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	for _, key := range []string{"PORT", "GEMINI_MODEL", "CORS_ALLOWED_ORIGINS", "MAX_BODY_BYTES", "ANALYZER_STRICT_SCHEMA", "SERVER_WRITE_TIMEOUT", "GEMINI_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := cfg.Server.Address(); got != ":3000" {
		t.Errorf("Server.Address() = %q, want %q", got, ":3000")
	}
	if cfg.Server.WriteTimeout != 120*time.Second {
		t.Errorf("Server.WriteTimeout = %v, want 120s", cfg.Server.WriteTimeout)
	}
	if cfg.APIs.GeminiTimeout != 110*time.Second {
		t.Errorf("APIs.GeminiTimeout = %v, want 110s", cfg.APIs.GeminiTimeout)
	}
	if cfg.APIs.GeminiTimeout >= cfg.Server.WriteTimeout {
		t.Errorf("APIs.GeminiTimeout = %v, want below Server.WriteTimeout %v", cfg.APIs.GeminiTimeout, cfg.Server.WriteTimeout)
	}
	if cfg.APIs.GeminiModel != "gemini-1.5-flash" {
		t.Errorf("APIs.GeminiModel = %q, want gemini-1.5-flash", cfg.APIs.GeminiModel)
	}
	if len(cfg.Security.AllowedOrigins) != 1 || cfg.Security.AllowedOrigins[0] != "*" {
		t.Errorf("Security.AllowedOrigins = %v, want [*]", cfg.Security.AllowedOrigins)
	}
	if cfg.Limits.MaxBodyBytes != 102400 {
		t.Errorf("Limits.MaxBodyBytes = %d, want 102400", cfg.Limits.MaxBodyBytes)
	}
	if cfg.Analyzer.StrictSchema {
		t.Error("Analyzer.StrictSchema = true, want false")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("PORT", "8081")
	t.Setenv("GEMINI_MODEL", "gemini-2.0-flash")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example https://b.example")
	t.Setenv("MAX_BODY_BYTES", "2048")
	t.Setenv("ANALYZER_STRICT_SCHEMA", "true")
	t.Setenv("SERVER_READ_TIMEOUT", "not-a-duration")
	t.Setenv("SERVER_WRITE_TIMEOUT", "30s")
	t.Setenv("GEMINI_TIMEOUT", "25s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != "8081" {
		t.Errorf("Server.Port = %q, want 8081", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 15*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want fallback 15s", cfg.Server.ReadTimeout)
	}
	if cfg.APIs.GeminiTimeout != 25*time.Second {
		t.Errorf("APIs.GeminiTimeout = %v, want 25s", cfg.APIs.GeminiTimeout)
	}
	if cfg.APIs.GeminiModel != "gemini-2.0-flash" {
		t.Errorf("APIs.GeminiModel = %q", cfg.APIs.GeminiModel)
	}
	if len(cfg.Security.AllowedOrigins) != 2 {
		t.Errorf("Security.AllowedOrigins = %v, want 2 origins", cfg.Security.AllowedOrigins)
	}
	if cfg.Limits.MaxBodyBytes != 2048 {
		t.Errorf("Limits.MaxBodyBytes = %d, want 2048", cfg.Limits.MaxBodyBytes)
	}
	if !cfg.Analyzer.StrictSchema {
		t.Error("Analyzer.StrictSchema = false, want true")
	}
}

func TestLoadMissingAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() error = nil, want missing key error")
	}
	if !errors.Is(err, models.ErrStartupConfigurationMissing) {
		t.Errorf("Load() error = %v, want ErrStartupConfigurationMissing", err)
	}
}

func TestLoadInvalidValues(t *testing.T) {
	testCases := []struct {
		name  string
		key   string
		value string
	}{
		{"non numeric body limit", "MAX_BODY_BYTES", "lots"},
		{"negative body limit", "MAX_BODY_BYTES", "-1"},
		{"non boolean strict flag", "ANALYZER_STRICT_SCHEMA", "sometimes"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("GEMINI_API_KEY", "test-key")
			t.Setenv(tc.key, tc.value)

			if _, err := Load(); err == nil {
				t.Errorf("Load() with %s=%q error = nil, want error", tc.key, tc.value)
			}
		})
	}
}

func TestLoadGeminiTimeoutBounds(t *testing.T) {
	testCases := []struct {
		name         string
		writeTimeout string
		geminiTimeout string
		wantErr      bool
	}{
		{"below write timeout", "60s", "50s", false},
		{"equal to write timeout", "60s", "60s", true},
		{"beyond write timeout", "60s", "90s", true},
		{"beyond default write timeout", "", "5m", true},
		{"zero", "60s", "0s", true},
		{"write timeout disabled", "0s", "5m", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("GEMINI_API_KEY", "test-key")
			t.Setenv("SERVER_WRITE_TIMEOUT", tc.writeTimeout)
			t.Setenv("GEMINI_TIMEOUT", tc.geminiTimeout)

			_, err := Load()
			if (err != nil) != tc.wantErr {
				t.Errorf("Load() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
