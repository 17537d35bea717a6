package translator

import (
	"context"
	"strings"

	"github.com/go-resty/resty/v2"
)

// DefaultLingvaURL is the public Lingva instance.
const DefaultLingvaURL = "https://lingva.ml"

// Lingva translates through the Lingva GET /api/v1/{source}/{target}/{text} endpoint.
type Lingva struct {
	baseURL string
	client  *resty.Client
}

// NewLingva creates a Lingva provider. An empty baseURL selects the public instance.
func NewLingva(baseURL string, opts ClientOptions) *Lingva {
	if baseURL == "" {
		baseURL = DefaultLingvaURL
	}

	return &Lingva{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  newHTTPClient(opts),
	}
}

type lingvaResponse struct {
	Translation string `json:"translation"`
}

// Translate implements Provider.
func (p *Lingva) Translate(ctx context.Context, req *Request) (*Response, error) {
	resp, err := p.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{
			"source": normalizeLingva(req.SourceLang),
			"target": normalizeLingva(req.TargetLang),
			"text":   req.Text,
		}).
		Get(p.baseURL + "/api/v1/{source}/{target}/{text}")
	if err != nil {
		return nil, requestError(p.Name(), err)
	}

	var result lingvaResponse
	if err := decodeResponse(p.Name(), resp, &result); err != nil {
		return nil, err
	}

	return &Response{TranslatedText: result.Translation}, nil
}

// Name implements Provider.
func (p *Lingva) Name() string {
	return "Lingva"
}

// SupportsLanguage implements Provider. Every code is accepted.
func (p *Lingva) SupportsLanguage(_ string) bool {
	return true
}
