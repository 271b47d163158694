// Package embeddings turns text chunks into fixed-size vectors for
// similarity search, falling back to a deterministic offline generator
// when no provider credential is configured or a provider call fails.
package embeddings

import (
	"context"
	"strings"

	pgvector "github.com/pgvector/pgvector-go"
)

// Dimensions is the default embedding vector size (1536 = OpenAI
// text-embedding-3-small at full width, same as ada-002).
const Dimensions = 1536

// MaxInputChars is the default input cap; longer text is truncated
// before embedding.
const MaxInputChars = 8000

// Placeholder is the credential value shipped in .env templates. A key
// equal to it is treated the same as no key at all.
const Placeholder = "your-api-key-here"

// Provider generates text embeddings.
type Provider interface {
	// Embed generates an embedding vector for the given text.
	Embed(ctx context.Context, text string) (pgvector.Vector, error)

	// Name returns the provider name for logging.
	Name() string
}

// Mode selects the default embedding path for the process lifetime.
type Mode string

const (
	// ModeProvider calls the external provider, falling back to the
	// mock generator on failure.
	ModeProvider Mode = "provider"

	// ModeMock generates every vector offline.
	ModeMock Mode = "mock"
)

// ResolveMode derives the process embedding mode from the provider
// credential. Unset, blank, or placeholder credentials select ModeMock.
func ResolveMode(credential string) Mode {
	credential = strings.TrimSpace(credential)
	if credential == "" || credential == Placeholder {
		return ModeMock
	}
	return ModeProvider
}
