package translator

import (
	"strings"
)

// codeTable maps lower-cased language codes and names to a provider specific code.
type codeTable map[string]string

// lookup finds the provider code for the given input, ignoring case.
func (t codeTable) lookup(code string) (string, bool) {
	mapped, ok := t[strings.ToLower(code)]
	return mapped, ok
}

// withAliases assigns the same value to every alias.
func (t codeTable) withAliases(value string, aliases ...string) codeTable {
	for _, alias := range aliases {
		t[alias] = value
	}

	return t
}

var libreTranslateCodes = codeTable{}.
	withAliases("zh", "zh", "zh-cn", "zh-hans", "chinese", "zh-tw", "zh-hant").
	withAliases("en", "en", "english").
	withAliases("ja", "ja", "japanese").
	withAliases("ko", "ko", "korean").
	withAliases("de", "de", "german").
	withAliases("fr", "fr", "french").
	withAliases("es", "es", "spanish").
	withAliases("it", "it", "italian").
	withAliases("pt", "pt", "portuguese").
	withAliases("ru", "ru", "russian").
	withAliases("ar", "ar", "arabic").
	withAliases("hi", "hi", "hindi")

var myMemoryCodes = codeTable{}.
	withAliases("zh-CN", "zh", "zh-cn", "zh-hans", "chinese").
	withAliases("zh-TW", "zh-tw", "zh-hant").
	withAliases("en-US", "en", "english").
	withAliases("ja-JP", "ja", "japanese").
	withAliases("ko-KR", "ko", "korean").
	withAliases("de-DE", "de", "german").
	withAliases("fr-FR", "fr", "french").
	withAliases("es-ES", "es", "spanish").
	withAliases("it-IT", "it", "italian").
	withAliases("pt-PT", "pt", "portuguese").
	withAliases("ru-RU", "ru", "russian")

var lingvaCodes = codeTable{}.
	withAliases("zh", "zh", "zh-cn", "zh-hans", "chinese").
	withAliases("zh_HANT", "zh-tw", "zh-hant", "zh_hant")

// normalizeLibreTranslate maps a code to the LibreTranslate format.
// Unknown codes are passed through lower-cased.
func normalizeLibreTranslate(code string) string {
	if mapped, ok := libreTranslateCodes.lookup(code); ok {
		return mapped
	}

	return strings.ToLower(code)
}

// normalizeMyMemory maps a code to the region qualified MyMemory format.
// Unknown bare codes get their upper-cased form as region (xx becomes xx-XX),
// already qualified codes only have their region upper-cased.
func normalizeMyMemory(code string) string {
	if mapped, ok := myMemoryCodes.lookup(code); ok {
		return mapped
	}

	lower := strings.ToLower(code)
	if lower == "" {
		return lower
	}

	if lang, region, found := strings.Cut(lower, "-"); found && lang != "" && region != "" {
		return lang + "-" + strings.ToUpper(region)
	}

	return lower + "-" + strings.ToUpper(lower)
}

// normalizeLingva maps a code to the Lingva format.
// Unknown codes are passed through lower-cased.
func normalizeLingva(code string) string {
	if mapped, ok := lingvaCodes.lookup(code); ok {
		return mapped
	}

	return strings.ToLower(code)
}

// languageAliases maps the names accepted by configuration commands to internal codes.
var languageAliases = codeTable{}.
	withAliases("zh", "chinese", "zh", "cn").
	withAliases("en", "english", "en").
	withAliases("ja", "japanese", "ja", "jp").
	withAliases("ko", "korean", "ko", "kr").
	withAliases("de", "german", "de").
	withAliases("fr", "french", "fr").
	withAliases("es", "spanish", "es").
	withAliases("it", "italian", "it").
	withAliases("pt", "portuguese", "pt").
	withAliases("ru", "russian", "ru")

// ParseLanguage converts a user supplied language name or alias to an internal code.
// Unknown input is returned lower-cased.
func ParseLanguage(input string) string {
	if code, ok := languageAliases.lookup(input); ok {
		return code
	}

	return strings.ToLower(input)
}

// LanguageGroup is a set of related language codes shown to users.
type LanguageGroup struct {
	Title string
	Codes [][]string
}

// SupportedLanguages lists the language codes advertised to users.
// Codes sharing a slice are aliases for the same language.
var SupportedLanguages = []LanguageGroup{
	{
		Title: "Chinese",
		Codes: [][]string{
			{"zh", "zh-CN", "zh-Hans"},
			{"zh-TW", "zh-Hant"},
		},
	},
	{
		Title: "Other Languages",
		Codes: [][]string{
			{"en"}, {"ja"}, {"ko"}, {"de"}, {"fr"}, {"es"},
			{"it"}, {"pt"}, {"ru"}, {"nl"}, {"pl"},
		},
	},
}
