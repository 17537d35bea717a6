package translator_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/megachinese/bot/internal/translator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testOptions = translator.ClientOptions{Timeout: 5 * time.Second}

func TestLibreTranslate(t *testing.T) {
	t.Parallel()

	t.Run("posts normalized request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/translate", r.URL.Path)
			assert.Equal(t, translator.DefaultUserAgent, r.Header.Get("User-Agent"))

			body, err := io.ReadAll(r.Body)
			assert.NoError(t, err)

			var payload map[string]string
			assert.NoError(t, sonic.Unmarshal(body, &payload))
			assert.Equal(t, map[string]string{
				"q":      "你好世界",
				"source": "zh",
				"target": "en",
				"format": "text",
			}, payload)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"translatedText":"Hello world","detectedLanguage":{"language":"zh","confidence":92}}`))
		}))
		defer server.Close()

		provider := translator.NewLibreTranslate(server.URL+"/", testOptions)

		resp, err := provider.Translate(t.Context(), &translator.Request{
			Text:       "你好世界",
			SourceLang: "zh-CN",
			TargetLang: "english",
		})
		require.NoError(t, err)
		assert.Equal(t, "Hello world", resp.TranslatedText)
		require.NotNil(t, resp.DetectedLanguage)
		assert.Equal(t, "zh", *resp.DetectedLanguage)
		require.NotNil(t, resp.Confidence)
		assert.InDelta(t, 0.92, *resp.Confidence, 0.0001)
	})

	t.Run("no detected language", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"translatedText":"Hi"}`))
		}))
		defer server.Close()

		resp, err := translator.NewLibreTranslate(server.URL, testOptions).Translate(t.Context(), &translator.Request{
			Text: "嗨", SourceLang: "zh", TargetLang: "en",
		})
		require.NoError(t, err)
		assert.Equal(t, "Hi", resp.TranslatedText)
		assert.Nil(t, resp.DetectedLanguage)
		assert.Nil(t, resp.Confidence)
	})

	t.Run("non-2xx status fails", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, `{"error":"too many requests"}`, http.StatusTooManyRequests)
		}))
		defer server.Close()

		_, err := translator.NewLibreTranslate(server.URL, testOptions).Translate(t.Context(), &translator.Request{
			Text: "你好", SourceLang: "zh", TargetLang: "en",
		})
		require.ErrorIs(t, err, translator.ErrProviderFailed)
		assert.Contains(t, err.Error(), "LibreTranslate")
		assert.Contains(t, err.Error(), "429")
	})

	t.Run("invalid body fails", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`<html>not json</html>`))
		}))
		defer server.Close()

		_, err := translator.NewLibreTranslate(server.URL, testOptions).Translate(t.Context(), &translator.Request{
			Text: "你好", SourceLang: "zh", TargetLang: "en",
		})
		require.ErrorIs(t, err, translator.ErrProviderFailed)
	})
}

func TestMyMemory(t *testing.T) {
	t.Parallel()

	t.Run("sends language pair as query", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/get", r.URL.Path)
			assert.Equal(t, "你好 & 再见", r.URL.Query().Get("q"))
			assert.Equal(t, "zh-CN|en-US", r.URL.Query().Get("langpair"))

			_, _ = w.Write([]byte(`{"responseData":{"translatedText":"Hello & goodbye","match":1}}`))
		}))
		defer server.Close()

		resp, err := translator.NewMyMemory(server.URL, testOptions).Translate(t.Context(), &translator.Request{
			Text: "你好 & 再见", SourceLang: "zh", TargetLang: "en",
		})
		require.NoError(t, err)
		assert.Equal(t, "Hello & goodbye", resp.TranslatedText)
		assert.Nil(t, resp.DetectedLanguage)
	})

	t.Run("server error fails", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		_, err := translator.NewMyMemory(server.URL, testOptions).Translate(t.Context(), &translator.Request{
			Text: "你好", SourceLang: "zh", TargetLang: "en",
		})
		require.ErrorIs(t, err, translator.ErrProviderFailed)
		assert.Contains(t, err.Error(), "MyMemory")
	})
}

func TestLingva(t *testing.T) {
	t.Parallel()

	t.Run("embeds escaped text in path", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/api/v1/zh_HANT/en/你好 世界?", r.URL.Path)

			_, _ = w.Write([]byte(`{"translation":"Hello world?"}`))
		}))
		defer server.Close()

		resp, err := translator.NewLingva(server.URL, testOptions).Translate(t.Context(), &translator.Request{
			Text: "你好 世界?", SourceLang: "zh-TW", TargetLang: "EN",
		})
		require.NoError(t, err)
		assert.Equal(t, "Hello world?", resp.TranslatedText)
	})

	t.Run("unreachable host fails", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.NotFoundHandler())
		url := server.URL
		server.Close()

		_, err := translator.NewLingva(url, testOptions).Translate(t.Context(), &translator.Request{
			Text: "你好", SourceLang: "zh", TargetLang: "en",
		})
		require.ErrorIs(t, err, translator.ErrProviderFailed)
		assert.Contains(t, err.Error(), "Lingva")
	})
}

func TestProviderMetadata(t *testing.T) {
	t.Parallel()

	providers := []translator.Provider{
		translator.NewLibreTranslate("", testOptions),
		translator.NewMyMemory("", testOptions),
		translator.NewLingva("", testOptions),
	}

	names := make([]string, 0, len(providers))
	for _, provider := range providers {
		names = append(names, provider.Name())
		assert.True(t, provider.SupportsLanguage("zh"))
		assert.True(t, provider.SupportsLanguage("anything"))
	}

	assert.Equal(t, []string{"LibreTranslate", "MyMemory", "Lingva"}, names)
}

func TestNormalizeConfidence(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 0.5, translator.NormalizeConfidence(0.5), 0.0001)
	assert.InDelta(t, 0.75, translator.NormalizeConfidence(75), 0.0001)
	assert.InDelta(t, 1.0, translator.NormalizeConfidence(250), 0.0001)
	assert.InDelta(t, 0.0, translator.NormalizeConfidence(-3), 0.0001)
}
