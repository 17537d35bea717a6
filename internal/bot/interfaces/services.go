package interfaces

import (
	"context"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/megachinese/bot/internal/database/types"
)

// ChannelDirectory stores the translation configuration of each channel.
type ChannelDirectory interface {
	// Upsert returns types.ErrChannelOwnedByOtherGuild when the channel is stored for another guild.
	Upsert(ctx context.Context, channel *types.TranslationChannel) error
	// GetByChannelID returns types.ErrChannelNotFound for unconfigured channels.
	GetByChannelID(ctx context.Context, channelID uint64) (*types.TranslationChannel, error)
	ListByGuild(ctx context.Context, guildID uint64) ([]*types.TranslationChannel, error)
	Deactivate(ctx context.Context, guildID, channelID uint64) (bool, error)
	CountActiveByGuild(ctx context.Context, guildID uint64) (int, error)
}

// HistoryStore records relayed translations.
type HistoryStore interface {
	Create(ctx context.Context, record *types.TranslationHistory) error
	CountByGuild(ctx context.Context, guildID uint64) (int, error)
	CountByGuildSince(ctx context.Context, guildID uint64, since time.Time) (int, error)
}

// GuildSettingsStore provides per-guild defaults.
type GuildSettingsStore interface {
	GetOrCreate(ctx context.Context, guildID uint64) (*types.GuildSettings, error)
}

// Translator translates text through the provider fallback chain.
type Translator interface {
	TranslateWithFallback(ctx context.Context, text, sourceLang, targetLang string) (string, error)
	ProviderNames() []string
}

// Responder sends chat output back to Discord.
type Responder interface {
	// Reply answers the message in its channel.
	Reply(ctx context.Context, msg *Message, content string) error
	// Typing shows the typing indicator in a channel.
	Typing(ctx context.Context, channelID snowflake.ID) error
}

// WebhookSender posts content to a channel webhook.
type WebhookSender interface {
	Send(ctx context.Context, webhookURL, content string) error
}

// PermissionChecker resolves whether a member may manage translation settings.
type PermissionChecker interface {
	IsAdmin(ctx context.Context, guildID, userID snowflake.ID) (bool, error)
}
