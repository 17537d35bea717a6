package utils

import (
	"strings"
	"unicode/utf8"
)

// MaxMessageLength is the Discord limit for message and webhook content.
const MaxMessageLength = 2000

// truncationSuffix marks content cut by TruncateMessage.
const truncationSuffix = "..."

// TruncateMessage shortens s to at most limit characters, ending it with "..." when cut.
func TruncateMessage(s string, limit int) string {
	if limit <= 0 {
		return ""
	}

	if utf8.RuneCountInString(s) <= limit {
		return s
	}

	runes := []rune(s)
	if limit <= len(truncationSuffix) {
		return string(runes[:limit])
	}

	return string(runes[:limit-len(truncationSuffix)]) + truncationSuffix
}

// ParseCommand splits prefixed content into a lower-cased command name and its arguments.
// It reports false when the trimmed content does not start with prefix.
// A bare prefix yields an empty name.
func ParseCommand(content, prefix string) (string, []string, bool) {
	if prefix == "" {
		return "", nil, false
	}

	rest, ok := strings.CutPrefix(strings.TrimSpace(content), prefix)
	if !ok {
		return "", nil, false
	}

	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return "", nil, true
	}

	return strings.ToLower(fields[0]), fields[1:], true
}
