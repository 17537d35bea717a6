package types

import (
	"time"

	"github.com/uptrace/bun"
)

// TranslationHistory records one successfully relayed translation.
type TranslationHistory struct {
	bun.BaseModel `bun:"table:translation_history,alias:th"`

	ID                int64     `bun:",pk,autoincrement"`
	GuildID           uint64    `bun:",notnull"`
	ChannelID         uint64    `bun:",notnull"`
	UserID            uint64    `bun:",notnull"`
	OriginalMessage   string    `bun:",notnull,type:text"`
	TranslatedMessage string    `bun:",notnull,type:text"`
	SourceLanguage    string    `bun:",notnull"`
	TargetLanguage    string    `bun:",notnull"`
	CreatedAt         time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
