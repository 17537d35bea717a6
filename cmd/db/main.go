package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"slices"

	"github.com/megachinese/bot/cmd/db/commands"
	"github.com/megachinese/bot/internal/database"
	"github.com/megachinese/bot/internal/database/migrations"
	"github.com/megachinese/bot/internal/setup/config"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}

func run() error {
	db, deps, err := setupDependencies()
	if err != nil {
		return fmt.Errorf("failed to setup dependencies: %w", err)
	}
	defer db.Close()

	app := &cli.Command{
		Name:  "db",
		Usage: "Database management tool",
		Commands: slices.Concat(
			commands.MigrationCommands(deps),
			commands.ChannelCommands(deps),
			commands.GuildCommands(deps),
			commands.HistoryCommands(deps),
		),
	}

	return app.Run(context.Background(), os.Args)
}

// setupDependencies opens the database without running or checking migrations.
func setupDependencies() (*bun.DB, *commands.CLIDependencies, error) {
	cfg, _, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	db := database.Open(&cfg.PostgreSQL, logger)

	return db, &commands.CLIDependencies{
		Repo:     database.NewRepository(db, logger),
		Migrator: migrate.NewMigrator(db, migrations.Migrations),
		Logger:   logger,
	}, nil
}
