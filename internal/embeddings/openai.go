package embeddings

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	pgvector "github.com/pgvector/pgvector-go"
)

// OpenAIProvider generates embeddings using OpenAI's API.
type OpenAIProvider struct {
	apiKey string
	model  string
	dim    int
	url    string
	client *http.Client
}

// NewOpenAIProvider creates a new OpenAI embedding provider requesting
// dim-length vectors. dim <= 0 leaves the width to the model.
func NewOpenAIProvider(apiKey, model string, dim int) *OpenAIProvider {
	if model == "" {
		model = "text-embedding-3-small"
	}
	return &OpenAIProvider{
		apiKey: apiKey,
		model:  model,
		dim:    dim,
		url:    "https://api.openai.com/v1/embeddings",
		client: &http.Client{},
	}
}

// Name returns the provider name.
func (p *OpenAIProvider) Name() string { return "openai" }

type openAIRequest struct {
	Input      string `json:"input"`
	Model      string `json:"model"`
	Dimensions int    `json:"dimensions,omitempty"`
}

type openAIResponse struct {
	Data []struct {
		Embedding []float32 `json:"embedding"`
	} `json:"data"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Embed issues one embedding request and unpacks the response. Failures
// come back as *ProviderError: KindAuth for a rejected credential,
// KindProtocol for a response this client cannot unpack, KindCall for
// everything else. No retry is attempted here.
func (p *OpenAIProvider) Embed(ctx context.Context, text string) (pgvector.Vector, error) {
	body, err := json.Marshal(openAIRequest{
		Input:      text,
		Model:      p.model,
		Dimensions: p.dim,
	})
	if err != nil {
		return pgvector.Vector{}, callErr(p.Name(), fmt.Errorf("marshaling request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return pgvector.Vector{}, callErr(p.Name(), fmt.Errorf("creating request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		// Covers transport failures, timeouts, and context cancellation.
		return pgvector.Vector{}, callErr(p.Name(), fmt.Errorf("calling OpenAI: %w", err))
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return pgvector.Vector{}, callErr(p.Name(), fmt.Errorf("reading response: %w", err))
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return pgvector.Vector{}, &ProviderError{
			Kind:     KindAuth,
			Provider: p.Name(),
			Err:      fmt.Errorf("credential rejected (%d): %s", resp.StatusCode, apiErrorMessage(respBody)),
		}
	case resp.StatusCode != http.StatusOK:
		// Rate limits, server errors, anything else.
		return pgvector.Vector{}, callErr(p.Name(),
			fmt.Errorf("OpenAI returned %d: %s", resp.StatusCode, apiErrorMessage(respBody)))
	}

	var result openAIResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return pgvector.Vector{}, &ProviderError{
			Kind:     KindProtocol,
			Provider: p.Name(),
			Err:      fmt.Errorf("parsing response: %w (the embeddings API shape may have changed; check client compatibility)", err),
		}
	}

	if result.Error != nil {
		return pgvector.Vector{}, callErr(p.Name(), fmt.Errorf("OpenAI error: %s", result.Error.Message))
	}

	if len(result.Data) == 0 || len(result.Data[0].Embedding) == 0 {
		return pgvector.Vector{}, &ProviderError{
			Kind:     KindProtocol,
			Provider: p.Name(),
			Err:      fmt.Errorf("no embedding in response (the embeddings API shape may have changed; check client compatibility)"),
		}
	}

	return pgvector.NewVector(result.Data[0].Embedding), nil
}

// apiErrorMessage extracts the provider's error message from an error
// response body, falling back to the raw body.
func apiErrorMessage(body []byte) string {
	var parsed struct {
		Error *struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if json.Unmarshal(body, &parsed) == nil && parsed.Error != nil && parsed.Error.Message != "" {
		return parsed.Error.Message
	}
	return string(body)
}
