package embeddings

import (
	"errors"
	"testing"
)

func TestProviderError_Unwrap(t *testing.T) {
	inner := errors.New("connection refused")
	err := &ProviderError{Kind: KindCall, Provider: "openai", Err: inner}

	if !errors.Is(err, inner) {
		t.Error("expected Unwrap to expose the inner error")
	}
	if err.Error() == "" {
		t.Error("expected a non-empty message")
	}
}

func TestCallErr_PreservesClassification(t *testing.T) {
	auth := &ProviderError{Kind: KindAuth, Provider: "openai", Err: errors.New("rejected")}
	if got := callErr("openai", auth); got.Kind != KindAuth {
		t.Errorf("expected existing kind to survive, got %s", got.Kind)
	}

	plain := errors.New("boom")
	if got := callErr("openai", plain); got.Kind != KindCall {
		t.Errorf("expected plain errors to classify as call, got %s", got.Kind)
	}
}
