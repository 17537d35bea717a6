package types

import (
	"errors"
	"time"

	"github.com/uptrace/bun"
)

var (
	// ErrChannelNotFound is returned when no active translation channel matches a channel id.
	ErrChannelNotFound = errors.New("translation channel not found")
	// ErrChannelOwnedByOtherGuild is returned when a guild tries to configure a channel
	// that is already stored for a different guild.
	ErrChannelOwnedByOtherGuild = errors.New("translation channel belongs to another guild")
)

// TranslationChannel configures auto-translation for a single Discord channel.
type TranslationChannel struct {
	bun.BaseModel `bun:"table:translation_channels,alias:tc"`

	ID             int64     `bun:",pk,autoincrement"`
	GuildID        uint64    `bun:",notnull"`
	ChannelID      uint64    `bun:",notnull,unique"`
	WebhookURL     string    `bun:",notnull,type:text"`
	SourceLanguage string    `bun:",notnull,default:'zh'"`
	TargetLanguage string    `bun:",notnull,default:'en'"`
	IsActive       bool      `bun:",notnull,default:true"`
	CreatedAt      time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt      time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
