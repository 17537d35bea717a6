package translator

import (
	"context"
	"errors"
)

var (
	// ErrNoProviders is returned when the service was built without any provider.
	ErrNoProviders = errors.New("no translation providers configured")
	// ErrAllProvidersFailed is returned when no provider was attempted for a request.
	ErrAllProvidersFailed = errors.New("all translation providers failed")
	// ErrProviderFailed wraps any network, status or decode failure of a single provider.
	ErrProviderFailed = errors.New("translation provider failed")
	// ErrUnknownProvider is returned for a provider name missing from the registry.
	ErrUnknownProvider = errors.New("unknown translation provider")
)

// Request is a single unit of text to translate. Language codes are in the
// internal code space (zh, en, ja, zh-TW, ...).
type Request struct {
	Text       string
	SourceLang string
	TargetLang string
}

// Response is the result of a successful translation.
type Response struct {
	TranslatedText   string
	DetectedLanguage *string
	Confidence       *float64
}

// Provider translates text through one remote translation API.
type Provider interface {
	// Translate sends the request to the remote API. Any failure is reported
	// as an error wrapping ErrProviderFailed.
	Translate(ctx context.Context, req *Request) (*Response, error)
	// Name returns the human readable provider name.
	Name() string
	// SupportsLanguage reports whether the provider accepts the language code.
	SupportsLanguage(code string) bool
}
