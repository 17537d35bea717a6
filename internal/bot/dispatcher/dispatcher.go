// Package dispatcher routes inbound messages to commands or the auto-translation relay.
package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/megachinese/bot/internal/bot/commands"
	"github.com/megachinese/bot/internal/bot/interfaces"
	"github.com/megachinese/bot/internal/database/types"
	"github.com/megachinese/bot/pkg/utils"
	"go.uber.org/zap"
)

// relayTemplate formats the webhook message of an auto-translation.
const relayTemplate = "%s (ID: %d) sent this:\n%s\n\nWhich translates to this:\n%s"

// Dependencies are the collaborators used by the dispatcher.
type Dependencies struct {
	Registry      *commands.Registry
	Channels      interfaces.ChannelDirectory
	History       interfaces.HistoryStore
	GuildSettings interfaces.GuildSettingsStore
	Translator    interfaces.Translator
	Webhooks      interfaces.WebhookSender
	Responder     interfaces.Responder
	Prefix        string
}

// Dispatcher handles every inbound message. It holds no per-message state and is
// safe for concurrent use.
type Dispatcher struct {
	registry      *commands.Registry
	channels      interfaces.ChannelDirectory
	history       interfaces.HistoryStore
	guildSettings interfaces.GuildSettingsStore
	translator    interfaces.Translator
	webhooks      interfaces.WebhookSender
	responder     interfaces.Responder
	prefix        string
	logger        *zap.Logger
}

// New creates a dispatcher.
func New(deps Dependencies, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		registry:      deps.Registry,
		channels:      deps.Channels,
		history:       deps.History,
		guildSettings: deps.GuildSettings,
		translator:    deps.Translator,
		webhooks:      deps.Webhooks,
		responder:     deps.Responder,
		prefix:        deps.Prefix,
		logger:        logger.Named("dispatcher"),
	}
}

// HandleMessage routes a message. Prefixed messages only ever reach the command
// path; everything else is considered for auto-translation. Errors are logged.
func (d *Dispatcher) HandleMessage(ctx context.Context, msg *interfaces.Message) {
	if msg.AuthorBot {
		return
	}

	if name, args, ok := utils.ParseCommand(msg.Content, d.prefix); ok {
		d.handleCommand(ctx, msg, name, args)
		return
	}

	if err := d.autoTranslate(ctx, msg); err != nil {
		d.logger.Error("Auto-translation failed",
			zap.Uint64("channelID", uint64(msg.ChannelID)),
			zap.Uint64("messageID", uint64(msg.ID)),
			zap.Error(err))
	}
}

// handleCommand runs a registered command. Unknown commands are ignored.
func (d *Dispatcher) handleCommand(ctx context.Context, msg *interfaces.Message, name string, args []string) {
	if name == "" {
		return
	}

	handler, ok := d.registry.Lookup(name)
	if !ok {
		return
	}

	if err := handler(ctx, msg, args); err != nil {
		d.logger.Error("Command failed",
			zap.String("command", name),
			zap.Uint64("channelID", uint64(msg.ChannelID)),
			zap.Uint64("userID", uint64(msg.AuthorID)),
			zap.Error(err))
	}
}

// autoTranslate translates a message posted in a configured channel and relays it
// to the channel webhook. History is written after a successful relay.
func (d *Dispatcher) autoTranslate(ctx context.Context, msg *interfaces.Message) error {
	if strings.TrimSpace(msg.Content) == "" {
		return nil
	}

	channel, err := d.channels.GetByChannelID(ctx, uint64(msg.ChannelID))
	if err != nil {
		if errors.Is(err, types.ErrChannelNotFound) {
			return nil
		}

		return fmt.Errorf("failed to look up channel: %w", err)
	}

	if !d.autoTranslateEnabled(ctx, msg) {
		return nil
	}

	if err := d.responder.Typing(ctx, msg.ChannelID); err != nil {
		d.logger.Debug("Failed to send typing indicator",
			zap.Uint64("channelID", uint64(msg.ChannelID)),
			zap.Error(err))
	}

	translated, err := d.translator.TranslateWithFallback(ctx, msg.Content, channel.SourceLanguage, channel.TargetLanguage)
	if err != nil {
		return fmt.Errorf("failed to translate message: %w", err)
	}

	content := utils.TruncateMessage(
		fmt.Sprintf(relayTemplate, msg.AuthorName, uint64(msg.AuthorID), msg.Content, translated),
		utils.MaxMessageLength,
	)

	if err := d.webhooks.Send(ctx, channel.WebhookURL, content); err != nil {
		return fmt.Errorf("failed to relay translation: %w", err)
	}

	d.logger.Debug("Relayed translation",
		zap.Uint64("channelID", uint64(msg.ChannelID)),
		zap.String("source", channel.SourceLanguage),
		zap.String("target", channel.TargetLanguage))

	if !msg.InGuild() {
		return nil
	}

	record := &types.TranslationHistory{
		GuildID:           uint64(*msg.GuildID),
		ChannelID:         uint64(msg.ChannelID),
		UserID:            uint64(msg.AuthorID),
		OriginalMessage:   msg.Content,
		TranslatedMessage: translated,
		SourceLanguage:    channel.SourceLanguage,
		TargetLanguage:    channel.TargetLanguage,
	}

	if err := d.history.Create(ctx, record); err != nil {
		d.logger.Warn("Failed to store translation history",
			zap.Uint64("channelID", uint64(msg.ChannelID)),
			zap.Error(err))
	}

	return nil
}

// autoTranslateEnabled reports whether the guild of msg allows auto-translation.
// Settings lookup failures leave auto-translation on.
func (d *Dispatcher) autoTranslateEnabled(ctx context.Context, msg *interfaces.Message) bool {
	if !msg.InGuild() {
		return true
	}

	settings, err := d.guildSettings.GetOrCreate(ctx, uint64(*msg.GuildID))
	if err != nil {
		d.logger.Warn("Failed to load guild settings",
			zap.Uint64("guildID", uint64(*msg.GuildID)),
			zap.Error(err))

		return true
	}

	if !settings.AutoTranslate {
		d.logger.Debug("Auto-translation disabled for guild",
			zap.Uint64("guildID", uint64(*msg.GuildID)),
			zap.Uint64("channelID", uint64(msg.ChannelID)))

		return false
	}

	return true
}
