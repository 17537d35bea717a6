package dispatcher_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/disgoorg/snowflake/v2"
	"github.com/megachinese/bot/internal/bot/commands"
	"github.com/megachinese/bot/internal/bot/dispatcher"
	"github.com/megachinese/bot/internal/bot/fakes"
	"github.com/megachinese/bot/internal/bot/interfaces"
	"github.com/megachinese/bot/internal/bot/webhook"
	"github.com/megachinese/bot/internal/database/types"
	"github.com/megachinese/bot/internal/translator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const (
	testGuildID   = snowflake.ID(111111111111111111)
	testChannelID = snowflake.ID(222222222222222222)
)

// webhookServer records posted payloads and answers with status.
type webhookServer struct {
	*httptest.Server

	mu       sync.Mutex
	status   int
	payloads []map[string]string
}

func newWebhookServer(t *testing.T, status int) *webhookServer {
	t.Helper()

	ws := &webhookServer{status: status}
	ws.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)

		var payload map[string]string
		_ = sonic.Unmarshal(body, &payload)

		ws.mu.Lock()
		ws.payloads = append(ws.payloads, payload)
		ws.mu.Unlock()

		w.WriteHeader(ws.status)
	}))
	t.Cleanup(ws.Close)

	return ws
}

func (ws *webhookServer) Payloads() []map[string]string {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	return append([]map[string]string(nil), ws.payloads...)
}

// harness bundles a dispatcher with its fakes and an observed logger.
type harness struct {
	dispatcher *dispatcher.Dispatcher
	channels   *fakes.Channels
	history    *fakes.History
	settings   *fakes.GuildSettings
	responder  *fakes.Responder
	provider   *fakes.Provider
	server     *webhookServer
	logs       *observer.ObservedLogs
}

func newHarness(t *testing.T, status int) *harness {
	t.Helper()

	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	h := &harness{
		channels:  fakes.NewChannels(),
		history:   &fakes.History{},
		settings:  &fakes.GuildSettings{},
		responder: &fakes.Responder{},
		provider:  &fakes.Provider{ProviderName: "LibreTranslate", Text: "Hello world"},
		server:    newWebhookServer(t, status),
		logs:      logs,
	}

	service := translator.NewService(logger, h.provider)

	handler := commands.New(commands.Dependencies{
		Channels:      h.channels,
		History:       h.history,
		GuildSettings: h.settings,
		Translator:    service,
		Responder:     h.responder,
		Permissions:   &fakes.Permissions{Admin: true},
		Prefix:        ";",
	}, logger)

	h.dispatcher = dispatcher.New(dispatcher.Dependencies{
		Registry:      handler.Registry(),
		Channels:      h.channels,
		History:       h.history,
		GuildSettings: h.settings,
		Translator:    service,
		Webhooks:      webhook.New("", 5*time.Second, logger),
		Responder:     h.responder,
		Prefix:        ";",
	}, logger)

	return h
}

// configure registers testChannelID as a zh to en channel relaying to the test server.
func (h *harness) configure(t *testing.T) {
	t.Helper()

	require.NoError(t, h.channels.Upsert(t.Context(), &types.TranslationChannel{
		GuildID:        uint64(testGuildID),
		ChannelID:      uint64(testChannelID),
		WebhookURL:     h.server.URL + "/api/webhooks/1/token",
		SourceLanguage: "zh",
		TargetLanguage: "en",
		IsActive:       true,
	}))
}

func message(content string) *interfaces.Message {
	guildID := testGuildID
	return &interfaces.Message{
		ID:         10,
		ChannelID:  testChannelID,
		GuildID:    &guildID,
		AuthorID:   123456789,
		AuthorName: "alice",
		Content:    content,
	}
}

func TestAutoTranslateRelaysAndRecords(t *testing.T) {
	t.Parallel()

	h := newHarness(t, http.StatusNoContent)
	h.configure(t)

	h.dispatcher.HandleMessage(t.Context(), message("你好世界"))

	payloads := h.server.Payloads()
	require.Len(t, payloads, 1)
	assert.Equal(t,
		"alice (ID: 123456789) sent this:\n你好世界\n\nWhich translates to this:\nHello world",
		payloads[0]["content"])
	assert.Equal(t, webhook.DefaultUsername, payloads[0]["username"])

	records := h.history.Records()
	require.Len(t, records, 1)
	assert.Equal(t, uint64(testGuildID), records[0].GuildID)
	assert.Equal(t, uint64(testChannelID), records[0].ChannelID)
	assert.Equal(t, uint64(123456789), records[0].UserID)
	assert.Equal(t, "你好世界", records[0].OriginalMessage)
	assert.Equal(t, "Hello world", records[0].TranslatedMessage)
	assert.Equal(t, "zh", records[0].SourceLanguage)
	assert.Equal(t, "en", records[0].TargetLanguage)

	assert.Empty(t, h.responder.Replies())
	assert.Equal(t, 1, h.responder.TypingCount())
}

func TestAutoTranslateGuildToggle(t *testing.T) {
	t.Parallel()

	t.Run("disabled guild is not relayed", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t, http.StatusNoContent)
		h.configure(t)
		h.settings.AutoTranslateOff = true

		h.dispatcher.HandleMessage(t.Context(), message("你好"))

		assert.Empty(t, h.server.Payloads())
		assert.Empty(t, h.history.Records())
		assert.Zero(t, h.provider.Calls())
		assert.Zero(t, h.responder.TypingCount())
		assert.Equal(t, 1, h.logs.FilterMessage("Auto-translation disabled for guild").Len())
	})

	t.Run("settings failure keeps relaying", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t, http.StatusNoContent)
		h.configure(t)
		h.settings.Err = errors.New("database down")

		h.dispatcher.HandleMessage(t.Context(), message("你好"))

		assert.Len(t, h.server.Payloads(), 1)
		assert.Equal(t, 1, h.logs.FilterMessage("Failed to load guild settings").Len())
	})
}

func TestAutoTranslateWebhookFailure(t *testing.T) {
	t.Parallel()

	h := newHarness(t, http.StatusInternalServerError)
	h.configure(t)

	h.dispatcher.HandleMessage(t.Context(), message("你好"))

	assert.Len(t, h.server.Payloads(), 1)
	assert.Empty(t, h.history.Records())
	assert.Empty(t, h.responder.Replies())

	failures := h.logs.FilterMessage("Auto-translation failed").All()
	require.Len(t, failures, 1)
	assert.Equal(t, zapcore.ErrorLevel, failures[0].Level)
	assert.Equal(t, uint64(testChannelID), failures[0].ContextMap()["channelID"])
	assert.Contains(t, failures[0].ContextMap()["error"], "status 500")
}

func TestAutoTranslateTranslationFailure(t *testing.T) {
	t.Parallel()

	h := newHarness(t, http.StatusNoContent)
	h.configure(t)
	h.provider.Err = errors.New("provider down")

	h.dispatcher.HandleMessage(t.Context(), message("你好"))

	assert.Empty(t, h.server.Payloads())
	assert.Empty(t, h.history.Records())
	assert.Equal(t, 1, h.logs.FilterMessage("Auto-translation failed").Len())
}

func TestAutoTranslateHistoryFailureIsSwallowed(t *testing.T) {
	t.Parallel()

	h := newHarness(t, http.StatusOK)
	h.configure(t)
	h.history.Err = errors.New("database down")

	h.dispatcher.HandleMessage(t.Context(), message("你好"))

	assert.Len(t, h.server.Payloads(), 1)
	assert.Equal(t, 1, h.logs.FilterMessage("Failed to store translation history").Len())
	assert.Zero(t, h.logs.FilterMessage("Auto-translation failed").Len())
}

func TestAutoTranslateTruncatesRelay(t *testing.T) {
	t.Parallel()

	h := newHarness(t, http.StatusNoContent)
	h.configure(t)
	h.provider.Text = strings.Repeat("a", 1990)

	h.dispatcher.HandleMessage(t.Context(), message("你好"))

	payloads := h.server.Payloads()
	require.Len(t, payloads, 1)
	assert.Len(t, []rune(payloads[0]["content"]), 2000)
	assert.True(t, strings.HasSuffix(payloads[0]["content"], "..."))
}

func TestHandleMessageIgnored(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		configure bool
		msg       func() *interfaces.Message
	}{
		{
			name:      "bot author",
			configure: true,
			msg: func() *interfaces.Message {
				m := message("你好")
				m.AuthorBot = true
				return m
			},
		},
		{
			name: "unconfigured channel",
			msg:  func() *interfaces.Message { return message("你好") },
		},
		{
			name:      "blank content",
			configure: true,
			msg:       func() *interfaces.Message { return message("   ") },
		},
		{
			name:      "unknown command in configured channel",
			configure: true,
			msg:       func() *interfaces.Message { return message(";nonsense 你好") },
		},
		{
			name:      "bare prefix",
			configure: true,
			msg:       func() *interfaces.Message { return message(";") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := newHarness(t, http.StatusNoContent)
			if tt.configure {
				h.configure(t)
			}

			h.dispatcher.HandleMessage(t.Context(), tt.msg())

			assert.Empty(t, h.server.Payloads())
			assert.Empty(t, h.history.Records())
			assert.Empty(t, h.responder.Replies())
			assert.Zero(t, h.provider.Calls())
		})
	}
}

func TestCommandInConfiguredChannelIsNotTranslated(t *testing.T) {
	t.Parallel()

	h := newHarness(t, http.StatusNoContent)
	h.configure(t)

	h.dispatcher.HandleMessage(t.Context(), message(";HELP"))

	replies := h.responder.Replies()
	require.Len(t, replies, 1)
	assert.Contains(t, replies[0], "MegaChinese Translation Bot")
	assert.Empty(t, h.server.Payloads())
	assert.Zero(t, h.provider.Calls())
}

func TestCommandErrorIsLogged(t *testing.T) {
	t.Parallel()

	h := newHarness(t, http.StatusNoContent)

	h.dispatcher.HandleMessage(t.Context(), message(";set-log chinese #general https://discord.com/api/webhooks/1/x"))

	failures := h.logs.FilterMessage("Command failed").All()
	require.Len(t, failures, 1)
	assert.Equal(t, "set-log", failures[0].ContextMap()["command"])
	assert.Empty(t, h.responder.Replies())
}
