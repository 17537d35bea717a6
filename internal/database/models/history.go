package models

import (
	"context"
	"fmt"
	"time"

	"github.com/megachinese/bot/internal/database/dbretry"
	"github.com/megachinese/bot/internal/database/types"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// HistoryModel handles database operations for translation history.
type HistoryModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewHistory creates a new history model instance.
func NewHistory(db *bun.DB, logger *zap.Logger) *HistoryModel {
	return &HistoryModel{
		db:     db,
		logger: logger.Named("db_history"),
	}
}

// Create stores a translation history record.
func (m *HistoryModel) Create(ctx context.Context, record *types.TranslationHistory) error {
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	err := dbretry.NoResult(ctx, func(ctx context.Context) error {
		_, err := m.db.NewInsert().Model(record).Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to insert translation history: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	m.logger.Debug("Stored translation history",
		zap.Uint64("guildID", record.GuildID),
		zap.Uint64("channelID", record.ChannelID),
		zap.Uint64("userID", record.UserID))

	return nil
}

// CountByGuild returns the total number of translations recorded for a guild.
func (m *HistoryModel) CountByGuild(ctx context.Context, guildID uint64) (int, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (int, error) {
		count, err := m.db.NewSelect().
			Model((*types.TranslationHistory)(nil)).
			Where("guild_id = ?", guildID).
			Count(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to count translation history: %w", err)
		}

		return count, nil
	})
}

// CountByGuildSince returns the number of translations recorded for a guild after since.
func (m *HistoryModel) CountByGuildSince(ctx context.Context, guildID uint64, since time.Time) (int, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (int, error) {
		count, err := m.db.NewSelect().
			Model((*types.TranslationHistory)(nil)).
			Where("guild_id = ?", guildID).
			Where("created_at >= ?", since).
			Count(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to count recent translation history: %w", err)
		}

		return count, nil
	})
}

// ListRecentByChannel returns the latest records of a channel, newest first.
func (m *HistoryModel) ListRecentByChannel(
	ctx context.Context, channelID uint64, limit int,
) ([]*types.TranslationHistory, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.TranslationHistory, error) {
		var records []*types.TranslationHistory

		err := m.db.NewSelect().
			Model(&records).
			Where("channel_id = ?", channelID).
			Order("created_at DESC", "id DESC").
			Limit(limit).
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list translation history: %w", err)
		}

		return records, nil
	})
}

// DeleteBefore removes records created before cutoff in batches of batchSize,
// optionally limited to one guild. It returns the number of deleted rows.
func (m *HistoryModel) DeleteBefore(
	ctx context.Context, cutoff time.Time, guildID *uint64, batchSize int,
) (int64, error) {
	var total int64

	for {
		affected, err := dbretry.Operation(ctx, func(ctx context.Context) (int64, error) {
			batch := m.db.NewSelect().
				Model((*types.TranslationHistory)(nil)).
				Column("id").
				Where("created_at < ?", cutoff).
				Limit(batchSize)
			if guildID != nil {
				batch = batch.Where("guild_id = ?", *guildID)
			}

			result, err := m.db.NewDelete().
				Model((*types.TranslationHistory)(nil)).
				Where("id IN (?)", batch).
				Exec(ctx)
			if err != nil {
				return 0, fmt.Errorf("failed to delete translation history: %w", err)
			}

			return result.RowsAffected()
		})
		if err != nil {
			return total, err
		}

		total += affected

		m.logger.Debug("Deleted translation history batch",
			zap.Int64("affected", affected),
			zap.Int64("total", total))

		if affected < int64(batchSize) {
			return total, nil
		}
	}
}
