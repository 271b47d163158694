package embeddings

import (
	"context"
	"log/slog"
	"strings"

	pgvector "github.com/pgvector/pgvector-go"
)

// Config holds orchestrator settings, constructed once at startup.
type Config struct {
	Mode          Mode
	Dimension     int // requested vector width; <= 0 means Dimensions
	MaxInputChars int // truncation limit in runes; <= 0 means MaxInputChars
	CacheSize     int // vectors to cache; <= 0 disables caching
}

// Service is the single entry point for embedding generation. It
// validates and truncates input, routes between the provider and the
// mock generator, and converts every provider failure into a mock
// fallback: callers only ever see an absent result for blank input,
// never for a provider outage.
//
// Calls are independent; a Service is safe for concurrent use.
type Service struct {
	mode     Mode
	provider Provider
	dim      int
	maxChars int
	cache    *Cache
	logger   *slog.Logger
}

// NewService creates an orchestrator. provider may be nil, which forces
// mock mode regardless of cfg.Mode.
func NewService(cfg Config, provider Provider, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	dim := cfg.Dimension
	if dim <= 0 {
		dim = Dimensions
	}
	maxChars := cfg.MaxInputChars
	if maxChars <= 0 {
		maxChars = MaxInputChars
	}
	mode := cfg.Mode
	if mode != ModeProvider {
		mode = ModeMock
	}
	if mode == ModeProvider && provider == nil {
		logger.Warn("no embedding provider configured, using mock embeddings")
		mode = ModeMock
	}
	if mode == ModeMock {
		logger.Info("mock embedding mode selected", "dimensions", dim)
	} else {
		logger.Info("provider embedding mode selected", "provider", provider.Name(), "dimensions", dim)
	}
	return &Service{
		mode:     mode,
		provider: provider,
		dim:      dim,
		maxChars: maxChars,
		cache:    NewCache(cfg.CacheSize),
		logger:   logger,
	}
}

// Mode returns the mode the service resolved at construction.
func (s *Service) Mode() Mode { return s.mode }

// Dimension returns the requested vector width.
func (s *Service) Dimension() int { return s.dim }

// Embed generates an embedding for text. The second return is false
// only when text is blank after trimming; every other input yields a
// vector, degrading to the deterministic mock generator when the
// provider is unconfigured or fails.
func (s *Service) Embed(ctx context.Context, text string) (pgvector.Vector, bool) {
	if strings.TrimSpace(text) == "" {
		s.logger.Warn("empty text provided for embedding")
		return pgvector.Vector{}, false
	}

	text, truncated := truncateRunes(text, s.maxChars)
	if truncated {
		s.logger.Info("text too long for embedding, truncated", "limit", s.maxChars)
	}

	if vec, ok := s.cache.Get(text, s.dim); ok {
		return pgvector.NewVector(vec), true
	}

	if s.mode == ModeMock {
		vec := s.mock(text)
		s.cache.Put(text, s.dim, vec.Slice())
		return vec, true
	}

	vec, err := s.provider.Embed(ctx, text)
	if err != nil {
		// Includes cancellation and timeouts surfaced by the client;
		// anything unclassified counts as a call failure.
		pe := callErr(s.provider.Name(), err)
		s.logger.Error("embedding provider failed, falling back to mock",
			"provider", pe.Provider,
			"kind", string(pe.Kind),
			"error", pe.Err,
		)
		// Not cached: once the provider recovers, the next call for
		// this text should get a real vector.
		return s.mock(text), true
	}

	got := len(vec.Slice())
	if got != s.dim {
		// Pass the vector through unchanged; padding or truncating
		// would corrupt similarity rankings downstream.
		s.logger.Warn("provider returned unexpected dimensions",
			"provider", s.provider.Name(),
			"requested", s.dim,
			"got", got,
		)
	}
	s.cache.Put(text, s.dim, vec.Slice())
	s.logger.Info("embedding generated", "provider", s.provider.Name(), "dimensions", got)
	return vec, true
}

// Result is the outcome of one batch item, mirroring Embed's returns.
type Result struct {
	Vector pgvector.Vector
	OK     bool
}

// EmbedBatch embeds each text sequentially, one Result per input. Blank
// texts yield OK=false without aborting the rest of the batch.
func (s *Service) EmbedBatch(ctx context.Context, texts []string) []Result {
	results := make([]Result, len(texts))
	for i, text := range texts {
		vec, ok := s.Embed(ctx, text)
		results[i] = Result{Vector: vec, OK: ok}
	}
	return results
}

func (s *Service) mock(text string) pgvector.Vector {
	vec := MockVector(text, s.dim)
	s.logger.Info("mock embedding generated", "dimensions", len(vec))
	return pgvector.NewVector(vec)
}

// truncateRunes caps s at max runes. The byte-length check short-cuts
// the common case; rune counting only happens for oversized input.
func truncateRunes(s string, max int) (string, bool) {
	if len(s) <= max {
		return s, false
	}
	r := []rune(s)
	if len(r) <= max {
		return s, false
	}
	return string(r[:max]), true
}
