package config

import (
	"testing"

	"github.com/velldocs/vellum/internal/embeddings"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("VELLUM_DIMENSION", "")
	t.Setenv("VELLUM_MAX_INPUT_CHARS", "")
	t.Setenv("VELLUM_CACHE_SIZE", "")
	t.Setenv("OPENAI_EMBEDDING_MODEL", "")

	cfg := Load()

	if cfg.Mode != embeddings.ModeMock {
		t.Errorf("expected mock mode without a key, got %s", cfg.Mode)
	}
	if cfg.Dimension != embeddings.Dimensions {
		t.Errorf("expected default dimension %d, got %d", embeddings.Dimensions, cfg.Dimension)
	}
	if cfg.MaxInputChars != embeddings.MaxInputChars {
		t.Errorf("expected default input cap %d, got %d", embeddings.MaxInputChars, cfg.MaxInputChars)
	}
	if cfg.OpenAIModel != "text-embedding-3-small" {
		t.Errorf("unexpected default model: %s", cfg.OpenAIModel)
	}
	if cfg.CacheSize != 0 {
		t.Errorf("expected caching disabled by default, got %d", cfg.CacheSize)
	}
}

func TestLoad_ModeFromCredential(t *testing.T) {
	cases := []struct {
		key  string
		want embeddings.Mode
	}{
		{"", embeddings.ModeMock},
		{"   ", embeddings.ModeMock},
		{embeddings.Placeholder, embeddings.ModeMock},
		{"sk-live-key", embeddings.ModeProvider},
	}

	for _, tc := range cases {
		t.Setenv("OPENAI_API_KEY", tc.key)
		if got := Load().Mode; got != tc.want {
			t.Errorf("key %q: expected %s, got %s", tc.key, tc.want, got)
		}
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("VELLUM_DIMENSION", "384")
	t.Setenv("VELLUM_MAX_INPUT_CHARS", "4000")
	t.Setenv("VELLUM_CACHE_SIZE", "128")
	t.Setenv("OPENAI_EMBEDDING_MODEL", "text-embedding-3-large")

	cfg := Load()
	if cfg.Dimension != 384 || cfg.MaxInputChars != 4000 || cfg.CacheSize != 128 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.OpenAIModel != "text-embedding-3-large" {
		t.Errorf("unexpected model: %s", cfg.OpenAIModel)
	}
}
