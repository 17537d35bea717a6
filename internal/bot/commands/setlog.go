package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/megachinese/bot/internal/bot/interfaces"
	"github.com/megachinese/bot/internal/database/types"
	"github.com/megachinese/bot/internal/translator"
	"go.uber.org/zap"
)

// SetLog configures auto-translation for a channel:
// set-log <language> <channel-id> <webhook-url>.
func (h *Handler) SetLog(ctx context.Context, msg *interfaces.Message, args []string) error {
	if ok, err := h.requireGuildAdmin(ctx, msg); !ok {
		return err
	}

	if len(args) < 3 {
		return h.reply(ctx, msg, fmt.Sprintf(
			"Usage: `%[1]sset-log <language> <channel-id> <webhook-url>`\n"+
				"Example: `%[1]sset-log chinese #translations https://discord.com/api/webhooks/...`", h.prefix))
	}

	sourceLang := translator.ParseLanguage(args[0])

	channelID, err := ParseChannelID(args[1])
	if err != nil {
		return err
	}

	webhookURL := args[2]
	if !IsValidWebhookURL(webhookURL) {
		return h.reply(ctx, msg, invalidWebhookReply)
	}

	guildID := uint64(*msg.GuildID)

	settings, err := h.guildSettings.GetOrCreate(ctx, guildID)
	if err != nil {
		return fmt.Errorf("failed to load guild settings: %w", err)
	}

	targetLang := settings.DefaultTargetLang
	if targetLang == "" {
		targetLang = types.DefaultTargetLang
	}

	channel := &types.TranslationChannel{
		GuildID:        guildID,
		ChannelID:      uint64(channelID),
		WebhookURL:     webhookURL,
		SourceLanguage: sourceLang,
		TargetLanguage: targetLang,
		IsActive:       true,
	}

	if err := h.channels.Upsert(ctx, channel); err != nil {
		if errors.Is(err, types.ErrChannelOwnedByOtherGuild) {
			h.logger.Warn("Rejected translation channel owned by another guild",
				zap.Uint64("guildID", guildID),
				zap.Uint64("channelID", uint64(channelID)))

			return h.reply(ctx, msg, channelTakenReply)
		}

		return fmt.Errorf("failed to save translation channel: %w", err)
	}

	h.logger.Info("Configured translation channel",
		zap.Uint64("guildID", guildID),
		zap.Uint64("channelID", uint64(channelID)),
		zap.String("source", sourceLang),
		zap.String("target", targetLang))

	return h.reply(ctx, msg, fmt.Sprintf(
		"✅ Translation logging configured!\nChannel: <#%d>\nLanguage: %s → %s\nWebhook: Set",
		uint64(channelID), sourceLang, targetLang))
}

// RemoveLog deactivates auto-translation for a channel: remove-log <channel-id>.
func (h *Handler) RemoveLog(ctx context.Context, msg *interfaces.Message, args []string) error {
	if ok, err := h.requireGuildAdmin(ctx, msg); !ok {
		return err
	}

	if len(args) == 0 {
		return h.reply(ctx, msg, fmt.Sprintf("Usage: `%sremove-log <channel-id>`", h.prefix))
	}

	channelID, err := ParseChannelID(args[0])
	if err != nil {
		return err
	}

	removed, err := h.channels.Deactivate(ctx, uint64(*msg.GuildID), uint64(channelID))
	if err != nil {
		return fmt.Errorf("failed to remove translation channel: %w", err)
	}

	if !removed {
		return h.reply(ctx, msg, logNotFoundReply)
	}

	h.logger.Info("Removed translation channel",
		zap.Uint64("guildID", uint64(*msg.GuildID)),
		zap.Uint64("channelID", uint64(channelID)))

	return h.reply(ctx, msg, fmt.Sprintf("✅ Translation logging removed for <#%d>", uint64(channelID)))
}

// ListLogs lists the active translation channels of the current guild.
func (h *Handler) ListLogs(ctx context.Context, msg *interfaces.Message, _ []string) error {
	if ok, err := h.requireGuildAdmin(ctx, msg); !ok {
		return err
	}

	channels, err := h.channels.ListByGuild(ctx, uint64(*msg.GuildID))
	if err != nil {
		return fmt.Errorf("failed to list translation channels: %w", err)
	}

	if len(channels) == 0 {
		return h.reply(ctx, msg, noChannelsReply)
	}

	var sb strings.Builder
	sb.WriteString("**Configured Translation Channels:**\n\n")

	for _, channel := range channels {
		fmt.Fprintf(&sb, "• <#%d> - %s → %s\n", channel.ChannelID, channel.SourceLanguage, channel.TargetLanguage)
	}

	return h.reply(ctx, msg, sb.String())
}
