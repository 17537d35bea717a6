package commands

import (
	"errors"

	"github.com/megachinese/bot/internal/database"
	"github.com/uptrace/bun/migrate"
	"go.uber.org/zap"
)

var (
	ErrNameRequired    = errors.New("NAME argument required")
	ErrGuildRequired   = errors.New("GUILD_ID argument required")
	ErrChannelRequired = errors.New("CHANNEL_ID argument required")
	ErrCutoffRequired  = errors.New("BEFORE argument required")
	ErrArgumentCount   = errors.New("wrong number of arguments")
)

// CLIDependencies holds the common dependencies needed by CLI commands.
type CLIDependencies struct {
	Repo     *database.Repository
	Migrator *migrate.Migrator
	Logger   *zap.Logger
}
