package translator_test

import (
	"testing"

	"github.com/megachinese/bot/internal/translator"
	"github.com/stretchr/testify/assert"
)

var sampleCodes = []string{
	"zh", "ZH", "zh-cn", "zh-CN", "zh-Hans", "chinese", "Chinese",
	"zh-tw", "zh-TW", "zh-Hant", "zh_hant",
	"en", "English", "ja", "ko", "de", "fr", "es", "it", "pt", "ru",
	"ar", "hi", "nl", "pl", "en-gb", "pt-BR", "xx",
}

func TestNormalizeLibreTranslate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{input: "zh", want: "zh"},
		{input: "zh-CN", want: "zh"},
		{input: "zh-Hant", want: "zh"},
		{input: "Chinese", want: "zh"},
		{input: "english", want: "en"},
		{input: "hindi", want: "hi"},
		{input: "NL", want: "nl"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, translator.NormalizeLibreTranslate(tt.input))
		})
	}
}

func TestNormalizeMyMemory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{input: "zh", want: "zh-CN"},
		{input: "zh-cn", want: "zh-CN"},
		{input: "zh-CN", want: "zh-CN"},
		{input: "chinese", want: "zh-CN"},
		{input: "zh-tw", want: "zh-TW"},
		{input: "zh-Hant", want: "zh-TW"},
		{input: "en", want: "en-US"},
		{input: "ja", want: "ja-JP"},
		{input: "pt", want: "pt-PT"},
		{input: "nl", want: "nl-NL"},
		{input: "pt-br", want: "pt-BR"},
		{input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, translator.NormalizeMyMemory(tt.input))
		})
	}
}

func TestNormalizeLingva(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{input: "zh", want: "zh"},
		{input: "zh-CN", want: "zh"},
		{input: "zh-TW", want: "zh_HANT"},
		{input: "zh-hant", want: "zh_HANT"},
		{input: "EN", want: "en"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, translator.NormalizeLingva(tt.input))
		})
	}
}

func TestNormalizationIsIdempotent(t *testing.T) {
	t.Parallel()

	normalizers := map[string]func(string) string{
		"LibreTranslate": translator.NormalizeLibreTranslate,
		"MyMemory":       translator.NormalizeMyMemory,
		"Lingva":         translator.NormalizeLingva,
	}

	for name, normalize := range normalizers {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			for _, code := range sampleCodes {
				once := normalize(code)
				assert.Equal(t, once, normalize(once), "code %q", code)
			}
		})
	}
}

func TestParseLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{input: "chinese", want: "zh"},
		{input: "CN", want: "zh"},
		{input: "zh", want: "zh"},
		{input: "English", want: "en"},
		{input: "jp", want: "ja"},
		{input: "kr", want: "ko"},
		{input: "german", want: "de"},
		{input: "russian", want: "ru"},
		{input: "Dutch", want: "dutch"},
		{input: "zh-TW", want: "zh-tw"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, translator.ParseLanguage(tt.input))
		})
	}
}
