package commands

import (
	"fmt"
	"strings"

	"github.com/megachinese/bot/internal/translator"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// formatLanguages renders the supported language groups with English display names.
func formatLanguages() string {
	var sb strings.Builder
	sb.WriteString("**Supported Languages:**\n")

	for _, group := range translator.SupportedLanguages {
		fmt.Fprintf(&sb, "\n**%s:**\n", group.Title)

		for _, codes := range group.Codes {
			quoted := make([]string, len(codes))
			for i, code := range codes {
				quoted[i] = "`" + code + "`"
			}

			fmt.Fprintf(&sb, "• %s - %s\n", strings.Join(quoted, ", "), displayName(codes[len(codes)-1]))
		}
	}

	return sb.String()
}

// displayName returns the English name of a language code, or the code itself.
func displayName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}

	if name := display.English.Tags().Name(tag); name != "" {
		return name
	}

	return code
}
