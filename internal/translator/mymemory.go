package translator

import (
	"context"
	"strings"

	"github.com/go-resty/resty/v2"
)

// DefaultMyMemoryURL is the public MyMemory API.
const DefaultMyMemoryURL = "https://api.mymemory.translated.net"

// MyMemory translates through the MyMemory GET /get endpoint.
type MyMemory struct {
	baseURL string
	client  *resty.Client
}

// NewMyMemory creates a MyMemory provider. An empty baseURL selects the public API.
func NewMyMemory(baseURL string, opts ClientOptions) *MyMemory {
	if baseURL == "" {
		baseURL = DefaultMyMemoryURL
	}

	return &MyMemory{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  newHTTPClient(opts),
	}
}

type myMemoryResponse struct {
	ResponseData struct {
		TranslatedText string `json:"translatedText"`
	} `json:"responseData"`
}

// Translate implements Provider.
func (p *MyMemory) Translate(ctx context.Context, req *Request) (*Response, error) {
	langPair := normalizeMyMemory(req.SourceLang) + "|" + normalizeMyMemory(req.TargetLang)

	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParam("q", req.Text).
		SetQueryParam("langpair", langPair).
		Get(p.baseURL + "/get")
	if err != nil {
		return nil, requestError(p.Name(), err)
	}

	var result myMemoryResponse
	if err := decodeResponse(p.Name(), resp, &result); err != nil {
		return nil, err
	}

	return &Response{TranslatedText: result.ResponseData.TranslatedText}, nil
}

// Name implements Provider.
func (p *MyMemory) Name() string {
	return "MyMemory"
}

// SupportsLanguage implements Provider. Every code is accepted.
func (p *MyMemory) SupportsLanguage(_ string) bool {
	return true
}
