// Package logging owns the process loggers. Output is JSON, written to stdout
// and, when a log path is configured, to a size-rotated file.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// FileOptions controls rotation of the log file.
type FileOptions struct {
	Path       string // Full path including filename, parent directories are created
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

var (
	fileOptions FileOptions
	rotator     *lumberjack.Logger

	setupOnce   sync.Once
	multiWriter io.Writer = os.Stdout

	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   *slog.LevelVar

	internalLoggerOnce sync.Once
	internalLogger     *slog.Logger
	internalLevelVar   *slog.LevelVar
)

// SetFileOptions configures the log file. Must be called before the first
// logger is requested to take effect.
func SetFileOptions(opts FileOptions) {
	fileOptions = opts
}

func setup() {
	setupOnce.Do(func() {
		if fileOptions.Path == "" {
			multiWriter = os.Stdout
			return
		}

		if err := os.MkdirAll(filepath.Dir(fileOptions.Path), 0755); err != nil {
			multiWriter = os.Stdout
			return
		}

		maxSize := fileOptions.MaxSizeMB
		if maxSize <= 0 {
			maxSize = 8
		}

		rotator = &lumberjack.Logger{
			Filename:   fileOptions.Path,
			MaxSize:    maxSize,
			MaxBackups: fileOptions.MaxBackups,
			MaxAge:     fileOptions.MaxAgeDays,
		}

		multiWriter = io.MultiWriter(os.Stdout, rotator)
	})
}

func newLogger(level *slog.LevelVar) *slog.Logger {
	setup()

	handler := slog.NewJSONHandler(multiWriter, &slog.HandlerOptions{
		Level:     level,
		AddSource: false,
	})
	return slog.New(handler)
}

// Logger returns the application logger.
func Logger() *slog.Logger {
	loggerOnce.Do(func() {
		levelVar = &slog.LevelVar{}
		logger = newLogger(levelVar)
	})
	return logger
}

// Internal returns the logger used by the UI toolkit internals. It has its own
// level so toolkit chatter can be silenced independently.
func Internal() *slog.Logger {
	internalLoggerOnce.Do(func() {
		internalLevelVar = &slog.LevelVar{}
		internalLogger = newLogger(internalLevelVar)
	})
	return internalLogger
}

func SetLevel(level slog.Level) {
	Logger()
	levelVar.Set(level)
}

func SetInternalLevel(level slog.Level) {
	Internal()
	internalLevelVar.Set(level)
}

// ParseLevel maps a config string to a slog level, defaulting to info.
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func SetRawLevel(raw string) {
	SetLevel(ParseLevel(raw))
}

// Close flushes and closes the log file, if any.
func Close() {
	if rotator != nil {
		_ = rotator.Close()
	}
}
