package embeddings

import "fmt"

// ErrorKind is the closed set of provider failure categories. The
// orchestrator treats every kind the same way (log and fall back); the
// kind exists so logs and callers can distinguish a bad credential from
// a transient outage.
type ErrorKind string

const (
	// KindAuth means the provider rejected the credential.
	KindAuth ErrorKind = "auth"

	// KindProtocol means the response could not be unpacked — a
	// malformed body or a shape this client does not understand.
	KindProtocol ErrorKind = "protocol"

	// KindCall covers everything else: network failure, timeout,
	// cancellation, rate limiting, provider server errors.
	KindCall ErrorKind = "call"
)

// ProviderError tags a provider failure with its category.
type ProviderError struct {
	Kind     ErrorKind
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s embedding %s error: %v", e.Provider, e.Kind, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// callErr wraps err as a KindCall failure unless it already carries a
// ProviderError classification.
func callErr(provider string, err error) *ProviderError {
	if pe, ok := err.(*ProviderError); ok {
		return pe
	}
	return &ProviderError{Kind: KindCall, Provider: provider, Err: err}
}
