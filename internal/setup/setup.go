package setup

import (
	"context"
	"log"

	"github.com/megachinese/bot/internal/database"
	"github.com/megachinese/bot/internal/setup/config"
	"github.com/megachinese/bot/internal/setup/telemetry"
	"github.com/megachinese/bot/internal/translator"
	"go.uber.org/zap"
)

// App bundles all core dependencies needed by the bot.
type App struct {
	Config     *config.Config      // Application configuration
	ConfigDir  string              // Directory config.toml was read from, if any
	Logger     *zap.Logger         // Main application logger
	DBLogger   *zap.Logger         // Database-specific logger
	DB         database.Client     // Database connection pool
	Translator *translator.Service // Provider fallback chain
	LogManager *telemetry.Manager  // Log management system
}

// InitializeApp bootstraps all application dependencies in order. Any failure here
// aborts startup before events are accepted.
func InitializeApp(ctx context.Context, logDir string) (*App, error) {
	cfg, configDir, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	// Logging system is initialized next to capture setup issues
	logManager := telemetry.NewManager(logDir, &cfg.Debug)

	logger, dbLogger, err := logManager.GetLoggers()
	if err != nil {
		return nil, err
	}

	if configDir != "" {
		logger.Info("Loaded configuration", zap.String("dir", configDir))
	} else {
		logger.Info("No config file found, using defaults and environment")
	}

	db, err := database.NewConnection(ctx, &cfg.PostgreSQL, dbLogger, cfg.PostgreSQL.AutoMigrate)
	if err != nil {
		return nil, err
	}

	translation, err := translator.NewServiceFromConfig(&cfg.Translation, logger)
	if err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("Translation providers ready", zap.Strings("providers", translation.ProviderNames()))

	return &App{
		Config:     cfg,
		ConfigDir:  configDir,
		Logger:     logger,
		DBLogger:   dbLogger.Named("database"),
		DB:         db,
		Translator: translation,
		LogManager: logManager,
	}, nil
}

// Cleanup shuts components down in reverse initialization order.
// Errors are logged so every component gets a cleanup attempt.
func (s *App) Cleanup(_ context.Context) {
	if err := s.DB.Close(); err != nil {
		log.Printf("Failed to close database connection: %v", err)
	}

	// Sync buffered logs last
	if err := s.Logger.Sync(); err != nil {
		log.Printf("Failed to sync logger: %v", err)
	}

	if err := s.DBLogger.Sync(); err != nil {
		log.Printf("Failed to sync DB logger: %v", err)
	}
}
