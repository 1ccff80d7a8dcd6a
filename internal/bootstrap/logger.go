package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/korvess/DeepMine_Go/internal/config"
	"github.com/korvess/DeepMine_Go/internal/handler"
	"github.com/korvess/DeepMine_Go/internal/logger"
)

// SetupLogger initializes the application logger with file and stdout output.
// It creates the log directory, cleans up old logs, sets up a MultiWriter for
// stdout and file output, and installs the default slog logger.
// Returns the log file handle (caller must close) and any error encountered.
func SetupLogger(cfg *config.Config) (*os.File, error) {
	// Create logs directory
	if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
		return nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	// Cleanup old logs, keeping one slot for the file opened below
	cleanupLogs(cfg.LogDir)

	// Create timestamped log file
	timestamp := time.Now().Format(LogFileTimestampFormat)
	logFileName := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, timestamp))

	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	// Initialize logger with MultiWriter (stdout + file)
	mw := io.MultiWriter(os.Stdout, logFile)

	logCfg := logger.NewConfig(
		cfg.LogLevel,
		logger.LogFormatText,
		logger.DefaultServiceName,
		handler.Version,
		cfg.Environment,
		cfg.Environment == logger.EnvironmentDev,
	)

	opts := &slog.HandlerOptions{
		Level:     logCfg.LogLevel(),
		AddSource: logCfg.AddSource,
	}

	var h slog.Handler
	if logCfg.IsJSON() {
		h = slog.NewJSONHandler(mw, opts)
	} else {
		h = slog.NewTextHandler(mw, opts)
	}
	h = h.WithAttrs(logCfg.BaseAttributes())

	slog.SetDefault(slog.New(h))

	// Log initialization messages
	slog.Info("Logging initialized", "level", logCfg.LogLevel())
	slog.Info("Starting DeepMine",
		"environment", cfg.Environment,
		"log_level", cfg.LogLevel)

	slog.Debug("Configuration loaded",
		"db_host", cfg.DBHost,
		"db_port", cfg.DBPort,
		"db_name", cfg.DBName,
		"catalog_dir", cfg.CatalogDir,
		"port", cfg.Port)

	return logFile, nil
}

// cleanupLogs removes old log files so at most LogFileRetentionLimit remain
// after the next file is created. This prevents unbounded log accumulation.
func cleanupLogs(logDir string) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var logFiles []os.DirEntry
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			logFiles = append(logFiles, entry)
		}
	}

	if len(logFiles) >= LogFileRetentionLimit {
		toDelete := len(logFiles) - (LogFileRetentionLimit - 1)
		for i := 0; i < toDelete; i++ {
			err := os.Remove(filepath.Join(logDir, logFiles[i].Name()))
			if err != nil {
				fmt.Printf("Failed to delete old log file %s: %v\n", logFiles[i].Name(), err)
			}
		}
	}
}
