package migrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		_, err := db.NewRaw(`
			CREATE INDEX IF NOT EXISTS idx_translation_channels_guild_active
			ON translation_channels (guild_id, created_at DESC)
			WHERE is_active = TRUE;

			CREATE INDEX IF NOT EXISTS idx_translation_history_guild_created
			ON translation_history (guild_id, created_at DESC);

			CREATE INDEX IF NOT EXISTS idx_translation_history_channel_created
			ON translation_history (channel_id, created_at DESC);
		`).Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to create indexes: %w", err)
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		_, err := db.NewRaw(`
			DROP INDEX IF EXISTS idx_translation_channels_guild_active;
			DROP INDEX IF EXISTS idx_translation_history_guild_created;
			DROP INDEX IF EXISTS idx_translation_history_channel_created;
		`).Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to drop indexes: %w", err)
		}

		return nil
	})
}
