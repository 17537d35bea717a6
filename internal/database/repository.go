package database

import (
	"github.com/megachinese/bot/internal/database/models"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// Repository provides access to all database models.
type Repository struct {
	channel      *models.ChannelModel
	history      *models.HistoryModel
	guildSetting *models.GuildSettingModel
}

// NewRepository creates a new repository instance with all models.
func NewRepository(db *bun.DB, logger *zap.Logger) *Repository {
	return &Repository{
		channel:      models.NewChannel(db, logger),
		history:      models.NewHistory(db, logger),
		guildSetting: models.NewGuildSetting(db, logger),
	}
}

// Channel returns the translation channel model.
func (r *Repository) Channel() *models.ChannelModel {
	return r.channel
}

// History returns the translation history model.
func (r *Repository) History() *models.HistoryModel {
	return r.history
}

// GuildSetting returns the guild setting model.
func (r *Repository) GuildSetting() *models.GuildSettingModel {
	return r.guildSetting
}
