// Package logging builds the zap loggers used for diagnostics.
// Game output never goes through here; logs go to stderr or a file so they
// do not interleave with prompts on stdout.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"guessgame/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category names a subsystem. Each category gets a named child logger.
type Category string

const (
	CategoryBoot    Category = "boot"    // Startup, flag and config resolution
	CategorySession Category = "session" // Guess session lifecycle
	CategoryInput   Category = "input"   // Line source failures
	CategoryTUI     Category = "tui"     // Full-screen mode
	CategoryConfig  Category = "config"  // config subcommands
)

// New builds a logger from cfg. An unknown level falls back to warn.
func New(cfg config.LoggingConfig) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(ParseLevel(cfg.Level))
	zc.Sampling = nil
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	switch cfg.Format {
	case "json":
		zc.Encoding = "json"
	default:
		zc.Encoding = "console"
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	out := "stderr"
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		out = cfg.File
	}
	zc.OutputPaths = []string{out}
	zc.ErrorOutputPaths = []string{"stderr"}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// ParseLevel maps a config level name to a zap level.
func ParseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.WarnLevel
	}
}

// For returns the child logger for a category.
func For(l *zap.Logger, cat Category) *zap.Logger {
	if l == nil {
		l = zap.NewNop()
	}
	return l.Named(string(cat))
}
