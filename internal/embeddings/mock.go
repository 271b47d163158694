package embeddings

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"math"
	"math/rand/v2"

	pgvector "github.com/pgvector/pgvector-go"
)

// MockVector generates a deterministic unit-length pseudo-embedding for
// text. The same (text, dim) pair yields the same vector on every call,
// process, and machine: the text's SHA-256 digest seeds a PCG stream,
// and both algorithms are fully specified independent of platform.
//
// The vector is not semantically meaningful. It exists so offline
// development and provider outages degrade to stable, comparable
// vectors instead of failed uploads.
func MockVector(text string, dim int) []float32 {
	sum := sha256.Sum256([]byte(text))
	rng := rand.New(rand.NewPCG(
		binary.BigEndian.Uint64(sum[0:8]),
		binary.BigEndian.Uint64(sum[8:16]),
	))

	raw := make([]float64, dim)
	var norm float64
	for i := range raw {
		raw[i] = rng.Float64()*2 - 1
		norm += raw[i] * raw[i]
	}

	vec := make([]float32, dim)
	if norm == 0 {
		// All-zero draw. Vanishingly unlikely, but dividing through
		// would produce NaNs; the zero vector is the defined result.
		return vec
	}
	norm = math.Sqrt(norm)
	for i := range raw {
		vec[i] = float32(raw[i] / norm)
	}
	return vec
}

// MockProvider is an offline Provider backed by MockVector. It never
// fails and needs no credential.
type MockProvider struct {
	dim int
}

// NewMockProvider creates a mock provider producing dim-length vectors.
// Non-positive dim falls back to the default Dimensions.
func NewMockProvider(dim int) *MockProvider {
	if dim <= 0 {
		dim = Dimensions
	}
	return &MockProvider{dim: dim}
}

// Name returns the provider name.
func (p *MockProvider) Name() string { return "mock" }

// Embed generates a deterministic vector for text.
func (p *MockProvider) Embed(_ context.Context, text string) (pgvector.Vector, error) {
	return pgvector.NewVector(MockVector(text, p.dim)), nil
}
