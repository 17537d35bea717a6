package translator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/megachinese/bot/internal/setup/config"
	"go.uber.org/zap"
)

// Service translates text by trying its providers in order until one succeeds.
// The provider list is fixed at construction, so a Service is safe for concurrent use.
type Service struct {
	providers []Provider
	logger    *zap.Logger
}

// NewService creates a Service. The first provider is the primary, the rest are fallbacks.
func NewService(logger *zap.Logger, providers ...Provider) *Service {
	return &Service{
		providers: append([]Provider(nil), providers...),
		logger:    logger.Named("translator"),
	}
}

// NewServiceFromConfig builds the providers named in the configuration, in order.
func NewServiceFromConfig(cfg *config.Translation, logger *zap.Logger) (*Service, error) {
	opts := ClientOptions{
		Timeout:   time.Duration(cfg.RequestTimeout) * time.Millisecond,
		UserAgent: cfg.UserAgent,
	}

	providers := make([]Provider, 0, len(cfg.Providers))
	for _, name := range cfg.Providers {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "libretranslate":
			providers = append(providers, NewLibreTranslate(cfg.LibreTranslateURL, opts))
		case "mymemory":
			providers = append(providers, NewMyMemory(cfg.MyMemoryURL, opts))
		case "lingva":
			providers = append(providers, NewLingva(cfg.LingvaURL, opts))
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, name)
		}
	}

	return NewService(logger, providers...), nil
}

// Translate returns the response of the first provider that succeeds.
// If every attempted provider fails, the last provider error is returned.
func (s *Service) Translate(ctx context.Context, req *Request) (*Response, error) {
	if len(s.providers) == 0 {
		return nil, ErrNoProviders
	}

	var lastErr error

	for _, provider := range s.providers {
		if !provider.SupportsLanguage(req.SourceLang) || !provider.SupportsLanguage(req.TargetLang) {
			continue
		}

		resp, err := provider.Translate(ctx, req)
		if err != nil {
			s.logger.Warn("Provider failed, trying next provider",
				zap.String("provider", provider.Name()),
				zap.Error(err))

			lastErr = err

			continue
		}

		s.logger.Debug("Translation successful",
			zap.String("provider", provider.Name()),
			zap.String("source", req.SourceLang),
			zap.String("target", req.TargetLang))

		return resp, nil
	}

	if lastErr != nil {
		return nil, lastErr
	}

	return nil, ErrAllProvidersFailed
}

// TranslateWithFallback translates text and returns only the translated string.
func (s *Service) TranslateWithFallback(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	resp, err := s.Translate(ctx, &Request{
		Text:       text,
		SourceLang: sourceLang,
		TargetLang: targetLang,
	})
	if err != nil {
		return "", err
	}

	return resp.TranslatedText, nil
}

// ProviderNames returns the provider names in fallback order.
func (s *Service) ProviderNames() []string {
	names := make([]string, len(s.providers))
	for i, provider := range s.providers {
		names[i] = provider.Name()
	}

	return names
}
