package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/megachinese/bot/internal/database/dbretry"
	"github.com/megachinese/bot/internal/database/types"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// ChannelModel handles database operations for translation channel configurations.
type ChannelModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewChannel creates a new channel model instance.
func NewChannel(db *bun.DB, logger *zap.Logger) *ChannelModel {
	return &ChannelModel{
		db:     db,
		logger: logger.Named("db_channel"),
	}
}

// Upsert stores a channel configuration. An existing row for the same channel is
// updated in place and reactivated, but only when it belongs to the same guild.
// Returns types.ErrChannelOwnedByOtherGuild otherwise.
func (m *ChannelModel) Upsert(ctx context.Context, channel *types.TranslationChannel) error {
	now := time.Now()
	if channel.CreatedAt.IsZero() {
		channel.CreatedAt = now
	}

	channel.UpdatedAt = now
	channel.IsActive = true

	err := dbretry.NoResult(ctx, func(ctx context.Context) error {
		result, err := m.db.NewInsert().
			Model(channel).
			On("CONFLICT (channel_id) DO UPDATE").
			Set("webhook_url = EXCLUDED.webhook_url").
			Set("source_language = EXCLUDED.source_language").
			Set("target_language = EXCLUDED.target_language").
			Set("is_active = TRUE").
			Set("updated_at = NOW()").
			Where("tc.guild_id = EXCLUDED.guild_id").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to upsert translation channel: %w", err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get affected rows: %w", err)
		}

		// A conflicting row of another guild leaves nothing inserted or updated
		if affected == 0 {
			return types.ErrChannelOwnedByOtherGuild
		}

		return nil
	})
	if err != nil {
		return err
	}

	m.logger.Debug("Upserted translation channel",
		zap.Uint64("guildID", channel.GuildID),
		zap.Uint64("channelID", channel.ChannelID),
		zap.String("source", channel.SourceLanguage),
		zap.String("target", channel.TargetLanguage))

	return nil
}

// GetByChannelID returns the active configuration for a channel.
// Returns types.ErrChannelNotFound when the channel is not configured or inactive.
func (m *ChannelModel) GetByChannelID(ctx context.Context, channelID uint64) (*types.TranslationChannel, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.TranslationChannel, error) {
		var channel types.TranslationChannel

		err := m.db.NewSelect().
			Model(&channel).
			Where("channel_id = ?", channelID).
			Where("is_active = TRUE").
			Limit(1).
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, types.ErrChannelNotFound
			}

			return nil, fmt.Errorf("failed to get translation channel: %w", err)
		}

		return &channel, nil
	})
}

// ListByGuild returns the active configurations of a guild, newest first.
func (m *ChannelModel) ListByGuild(ctx context.Context, guildID uint64) ([]*types.TranslationChannel, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.TranslationChannel, error) {
		var channels []*types.TranslationChannel

		err := m.db.NewSelect().
			Model(&channels).
			Where("guild_id = ?", guildID).
			Where("is_active = TRUE").
			Order("created_at DESC", "id DESC").
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list translation channels: %w", err)
		}

		return channels, nil
	})
}

// Deactivate disables auto-translation for a channel of a guild.
// It reports false when the guild had no active configuration for the channel.
func (m *ChannelModel) Deactivate(ctx context.Context, guildID, channelID uint64) (bool, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (bool, error) {
		result, err := m.db.NewUpdate().
			Model((*types.TranslationChannel)(nil)).
			Set("is_active = FALSE").
			Set("updated_at = NOW()").
			Where("guild_id = ?", guildID).
			Where("channel_id = ?", channelID).
			Where("is_active = TRUE").
			Exec(ctx)
		if err != nil {
			return false, fmt.Errorf("failed to deactivate translation channel: %w", err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return false, fmt.Errorf("failed to get affected rows: %w", err)
		}

		if affected > 0 {
			m.logger.Debug("Deactivated translation channel",
				zap.Uint64("guildID", guildID),
				zap.Uint64("channelID", channelID))
		}

		return affected > 0, nil
	})
}

// CountActiveByGuild returns the number of active configurations in a guild.
func (m *ChannelModel) CountActiveByGuild(ctx context.Context, guildID uint64) (int, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (int, error) {
		count, err := m.db.NewSelect().
			Model((*types.TranslationChannel)(nil)).
			Where("guild_id = ?", guildID).
			Where("is_active = TRUE").
			Count(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to count translation channels: %w", err)
		}

		return count, nil
	})
}
