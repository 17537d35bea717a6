package translator

import (
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
)

const (
	// DefaultTimeout bounds every provider request.
	DefaultTimeout = 30 * time.Second
	// DefaultUserAgent identifies the bot to the remote APIs.
	DefaultUserAgent = "MegaChinese-Bot/1.0"
)

// ClientOptions configures the HTTP client shared by a provider.
type ClientOptions struct {
	Timeout   time.Duration
	UserAgent string
}

// newHTTPClient builds a resty client with sonic as the JSON codec.
func newHTTPClient(opts ClientOptions) *resty.Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	return resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json").
		SetJSONMarshaler(sonic.Marshal).
		SetJSONUnmarshaler(sonic.Unmarshal)
}

// decodeResponse checks the status of a provider response and decodes its body.
func decodeResponse(name string, resp *resty.Response, v any) error {
	if !resp.IsSuccess() {
		return fmt.Errorf("%w: %s returned status %d", ErrProviderFailed, name, resp.StatusCode())
	}

	if err := sonic.Unmarshal(resp.Body(), v); err != nil {
		return fmt.Errorf("%w: %s returned an invalid body: %w", ErrProviderFailed, name, err)
	}

	return nil
}

// requestError wraps a transport error for the named provider.
func requestError(name string, err error) error {
	return fmt.Errorf("%w: %s request failed: %w", ErrProviderFailed, name, err)
}
