package telemetry

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/megachinese/bot/internal/setup/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestGetLoggers(t *testing.T) {
	t.Parallel()

	logDir := t.TempDir()
	manager := NewManager(logDir, &config.Debug{LogLevel: "info", MaxLogsToKeep: 3, MaxLogLines: 100})
	manager.console = zapcore.AddSync(io.Discard)

	mainLogger, dbLogger, err := manager.GetLoggers()
	require.NoError(t, err)

	mainLogger.Info("main message")
	dbLogger.Debug("filtered message")
	dbLogger.Warn("db message")
	require.NoError(t, mainLogger.Sync())
	require.NoError(t, dbLogger.Sync())

	sessionDir := manager.GetCurrentSessionDir()
	assert.Equal(t, logDir, filepath.Dir(sessionDir))

	mainLog, err := os.ReadFile(filepath.Join(sessionDir, "main.log"))
	require.NoError(t, err)
	assert.Contains(t, string(mainLog), "main message")
	assert.Contains(t, string(mainLog), manager.GetInstanceID())

	dbLog, err := os.ReadFile(filepath.Join(sessionDir, "database.log"))
	require.NoError(t, err)
	assert.Contains(t, string(dbLog), "db message")
	assert.NotContains(t, string(dbLog), "filtered message")
}

func TestGetLoggersInvalidLevel(t *testing.T) {
	t.Parallel()

	manager := NewManager(t.TempDir(), &config.Debug{LogLevel: "loud", MaxLogsToKeep: 3, MaxLogLines: 100})

	_, _, err := manager.GetLoggers()
	require.Error(t, err)
}

func TestRotateLogSessions(t *testing.T) {
	t.Parallel()

	logDir := t.TempDir()
	base := time.Now().Add(-time.Hour)

	for i, name := range []string{"old", "middle", "new"} {
		dir := filepath.Join(logDir, name)
		require.NoError(t, os.Mkdir(dir, 0o755))

		modTime := base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, os.Chtimes(dir, modTime, modTime))
	}

	manager := NewManager(logDir, &config.Debug{LogLevel: "info", MaxLogsToKeep: 2})
	require.NoError(t, manager.rotateLogSessions())

	entries, err := os.ReadDir(logDir)
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}

	assert.ElementsMatch(t, []string{"new"}, names)
}
