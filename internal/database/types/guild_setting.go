package types

import (
	"time"

	"github.com/uptrace/bun"
)

// Default guild settings used when a guild has no stored row yet.
const (
	DefaultPrefix     = ";"
	DefaultSourceLang = "zh"
	DefaultTargetLang = "en"
)

// GuildSettings holds per-guild preferences.
type GuildSettings struct {
	bun.BaseModel `bun:"table:guild_settings,alias:gs"`

	GuildID           uint64    `bun:",pk"`
	Prefix            string    `bun:",notnull,default:';'"`
	DefaultSourceLang string    `bun:",notnull,default:'zh'"`
	DefaultTargetLang string    `bun:",notnull,default:'en'"`
	AutoTranslate     bool      `bun:",notnull,default:true"`
	CreatedAt         time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt         time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

// NewGuildSettings returns the default settings for a guild.
func NewGuildSettings(guildID uint64) *GuildSettings {
	now := time.Now()

	return &GuildSettings{
		GuildID:           guildID,
		Prefix:            DefaultPrefix,
		DefaultSourceLang: DefaultSourceLang,
		DefaultTargetLang: DefaultTargetLang,
		AutoTranslate:     true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}
