// Package config loads runtime settings from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAddr        = ":8080"
	defaultGroqModel   = "llama-3.3-70b-versatile"
	defaultGroqBaseURL = "https://api.groq.com/openai/v1"
	defaultSessionTTL  = 60 * time.Minute
)

// Config holds everything the process needs to run. Credentials are read
// once at startup; handlers never touch the environment themselves.
type Config struct {
	// Addr is the listen address for the web UI, e.g. ":8080".
	Addr string

	// GroqAPIKey authorizes chat completion calls against the Groq API.
	GroqAPIKey string

	// GroqModel is the chat model identifier.
	GroqModel string

	// GroqBaseURL points the OpenAI-compatible client at Groq. Override
	// it to target any other OpenAI-compatible endpoint.
	GroqBaseURL string

	// SerperAPIKey authorizes web search calls against serper.dev.
	SerperAPIKey string

	// SessionTTL is how long an idle browser session keeps its history.
	SessionTTL time.Duration
}

// ConfigError describes a missing or malformed setting.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// Load reads settings from the environment. A .env file in the working
// directory is applied first when present. The returned Config is usable
// even when the error is non-nil, so callers that can run without
// credentials (mock mode) may proceed with the partial config.
func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		Addr:         getEnvOrDefault("ADDR", defaultAddr),
		GroqAPIKey:   os.Getenv("GROQ_API_KEY"),
		GroqModel:    getEnvOrDefault("GROQ_MODEL", defaultGroqModel),
		GroqBaseURL:  getEnvOrDefault("GROQ_BASE_URL", defaultGroqBaseURL),
		SerperAPIKey: os.Getenv("SERPER_API_KEY"),
		SessionTTL:   defaultSessionTTL,
	}

	if raw := os.Getenv("SESSION_TTL_MINUTES"); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil || minutes <= 0 {
			return cfg, &ConfigError{Field: "SESSION_TTL_MINUTES", Message: "must be a positive integer"}
		}
		cfg.SessionTTL = time.Duration(minutes) * time.Minute
	}

	return cfg, cfg.validate()
}

func (c *Config) validate() error {
	if c.GroqAPIKey == "" {
		return &ConfigError{Field: "GROQ_API_KEY", Message: "is required"}
	}
	if c.SerperAPIKey == "" {
		return &ConfigError{Field: "SERPER_API_KEY", Message: "is required"}
	}
	return nil
}

// CredentialsConfigured reports whether both API keys are present.
func (c *Config) CredentialsConfigured() bool {
	return c.GroqAPIKey != "" && c.SerperAPIKey != ""
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
