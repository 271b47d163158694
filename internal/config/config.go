// Package config provides environment-based configuration for Vellum.
package config

import (
	"os"
	"strconv"

	"github.com/velldocs/vellum/internal/embeddings"
)

// Config holds all configuration for the embedding service. It is read
// once at process start; the credential and the mode derived from it
// are immutable for the process lifetime.
type Config struct {
	LogLevel string

	// Embeddings
	OpenAIAPIKey  string
	OpenAIModel   string
	Dimension     int
	MaxInputChars int
	CacheSize     int

	// Mode derived from OpenAIAPIKey at load time.
	Mode embeddings.Mode
}

// Load reads configuration from environment variables with sensible
// defaults. A missing, empty, or placeholder OPENAI_API_KEY is not an
// error; it switches the process into mock mode.
func Load() *Config {
	c := &Config{
		LogLevel:      envStr("VELLUM_LOG_LEVEL", "info"),
		OpenAIAPIKey:  envStr("OPENAI_API_KEY", ""),
		OpenAIModel:   envStr("OPENAI_EMBEDDING_MODEL", "text-embedding-3-small"),
		Dimension:     envInt("VELLUM_DIMENSION", embeddings.Dimensions),
		MaxInputChars: envInt("VELLUM_MAX_INPUT_CHARS", embeddings.MaxInputChars),
		CacheSize:     envInt("VELLUM_CACHE_SIZE", 0),
	}
	c.Mode = embeddings.ResolveMode(c.OpenAIAPIKey)
	return c
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}
