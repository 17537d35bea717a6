package translator

import (
	"context"
	"strings"

	"github.com/go-resty/resty/v2"
)

// DefaultLibreTranslateURL is the public LibreTranslate instance.
const DefaultLibreTranslateURL = "https://libretranslate.com"

// LibreTranslate translates through the LibreTranslate POST /translate endpoint.
type LibreTranslate struct {
	baseURL string
	client  *resty.Client
}

// NewLibreTranslate creates a LibreTranslate provider. An empty baseURL selects the public instance.
func NewLibreTranslate(baseURL string, opts ClientOptions) *LibreTranslate {
	if baseURL == "" {
		baseURL = DefaultLibreTranslateURL
	}

	return &LibreTranslate{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  newHTTPClient(opts),
	}
}

type libreTranslateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
}

type libreTranslateResponse struct {
	TranslatedText   string `json:"translatedText"`
	DetectedLanguage *struct {
		Language   string  `json:"language"`
		Confidence float64 `json:"confidence"`
	} `json:"detectedLanguage"`
}

// Translate implements Provider.
func (p *LibreTranslate) Translate(ctx context.Context, req *Request) (*Response, error) {
	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(libreTranslateRequest{
			Q:      req.Text,
			Source: normalizeLibreTranslate(req.SourceLang),
			Target: normalizeLibreTranslate(req.TargetLang),
			Format: "text",
		}).
		Post(p.baseURL + "/translate")
	if err != nil {
		return nil, requestError(p.Name(), err)
	}

	var result libreTranslateResponse
	if err := decodeResponse(p.Name(), resp, &result); err != nil {
		return nil, err
	}

	response := &Response{TranslatedText: result.TranslatedText}
	if result.DetectedLanguage != nil {
		language := result.DetectedLanguage.Language
		confidence := normalizeConfidence(result.DetectedLanguage.Confidence)
		response.DetectedLanguage = &language
		response.Confidence = &confidence
	}

	return response, nil
}

// normalizeConfidence scales the percentage reported by LibreTranslate into [0,1].
func normalizeConfidence(confidence float64) float64 {
	if confidence > 1 {
		confidence /= 100
	}

	return min(max(confidence, 0), 1)
}

// Name implements Provider.
func (p *LibreTranslate) Name() string {
	return "LibreTranslate"
}

// SupportsLanguage implements Provider. Every code is accepted.
func (p *LibreTranslate) SupportsLanguage(_ string) bool {
	return true
}
