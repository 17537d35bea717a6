package models

import (
	"context"
	"fmt"

	"github.com/megachinese/bot/internal/database/dbretry"
	"github.com/megachinese/bot/internal/database/types"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// GuildSettingModel handles database operations for per-guild settings.
type GuildSettingModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewGuildSetting creates a new guild setting model instance.
func NewGuildSetting(db *bun.DB, logger *zap.Logger) *GuildSettingModel {
	return &GuildSettingModel{
		db:     db,
		logger: logger.Named("db_guild_setting"),
	}
}

// GetOrCreate returns the settings of a guild, storing the defaults first if none exist.
func (m *GuildSettingModel) GetOrCreate(ctx context.Context, guildID uint64) (*types.GuildSettings, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.GuildSettings, error) {
		_, err := m.db.NewInsert().
			Model(types.NewGuildSettings(guildID)).
			On("CONFLICT (guild_id) DO NOTHING").
			Exec(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create guild settings: %w", err)
		}

		settings := &types.GuildSettings{GuildID: guildID}

		err = m.db.NewSelect().
			Model(settings).
			WherePK().
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get guild settings: %w", err)
		}

		return settings, nil
	})
}

// UpdateLanguages changes the default language pair of a guild.
func (m *GuildSettingModel) UpdateLanguages(ctx context.Context, guildID uint64, source, target string) error {
	return dbretry.NoResult(ctx, func(ctx context.Context) error {
		_, err := m.db.NewUpdate().
			Model((*types.GuildSettings)(nil)).
			Set("default_source_lang = ?", source).
			Set("default_target_lang = ?", target).
			Set("updated_at = NOW()").
			Where("guild_id = ?", guildID).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to update guild languages: %w", err)
		}

		return nil
	})
}

// UpdateAutoTranslate turns auto-translation on or off for every channel of a guild.
func (m *GuildSettingModel) UpdateAutoTranslate(ctx context.Context, guildID uint64, enabled bool) error {
	return dbretry.NoResult(ctx, func(ctx context.Context) error {
		_, err := m.db.NewUpdate().
			Model((*types.GuildSettings)(nil)).
			Set("auto_translate = ?", enabled).
			Set("updated_at = NOW()").
			Where("guild_id = ?", guildID).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to update guild auto-translate: %w", err)
		}

		return nil
	})
}
