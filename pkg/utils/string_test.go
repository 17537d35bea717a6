package utils_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/megachinese/bot/pkg/utils"
	"github.com/stretchr/testify/assert"
)

func TestTruncateMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		limit int
		want  string
	}{
		{
			name:  "short text unchanged",
			input: "hello",
			limit: 10,
			want:  "hello",
		},
		{
			name:  "exact length unchanged",
			input: "hello",
			limit: 5,
			want:  "hello",
		},
		{
			name:  "long text cut with suffix",
			input: "hello world",
			limit: 8,
			want:  "hello...",
		},
		{
			name:  "multibyte characters counted once",
			input: "你好世界你好世界",
			limit: 6,
			want:  "你好世...",
		},
		{
			name:  "tiny limit",
			input: "hello",
			limit: 2,
			want:  "he",
		},
		{
			name:  "zero limit",
			input: "hello",
			limit: 0,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, utils.TruncateMessage(tt.input, tt.limit))
		})
	}
}

func TestTruncateMessageDiscordLimit(t *testing.T) {
	t.Parallel()

	got := utils.TruncateMessage(strings.Repeat("中", 2500), utils.MaxMessageLength)
	assert.Equal(t, utils.MaxMessageLength, utf8.RuneCountInString(got))
	assert.True(t, strings.HasSuffix(got, "..."))
}

func TestParseCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		prefix   string
		wantName string
		wantArgs []string
		wantOK   bool
	}{
		{
			name:     "command with args",
			content:  ";translate zh en 你好",
			prefix:   ";",
			wantName: "translate",
			wantArgs: []string{"zh", "en", "你好"},
			wantOK:   true,
		},
		{
			name:     "upper case name is lowered",
			content:  ";HELP",
			prefix:   ";",
			wantName: "help",
			wantArgs: []string{},
			wantOK:   true,
		},
		{
			name:     "leading whitespace is trimmed",
			content:  "   ;stats  ",
			prefix:   ";",
			wantName: "stats",
			wantArgs: []string{},
			wantOK:   true,
		},
		{
			name:     "bare prefix",
			content:  ";",
			prefix:   ";",
			wantName: "",
			wantOK:   true,
		},
		{
			name:    "no prefix",
			content: "hello",
			prefix:  ";",
			wantOK:  false,
		},
		{
			name:     "multi character prefix",
			content:  "!!langs",
			prefix:   "!!",
			wantName: "langs",
			wantArgs: []string{},
			wantOK:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			name, args, ok := utils.ParseCommand(tt.content, tt.prefix)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
