// Package logger provides structured logging for reviewnorm.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	defaultLogger *slog.Logger
	mu            sync.RWMutex
)

func init() {
	defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// Options configures the logger.
type Options struct {
	Level  string       // debug, info, warn or error; overrides Debug and Quiet
	Debug  bool         // Enable debug level logging
	Quiet  bool         // Only show errors
	JSON   bool         // Output as JSON
	Output io.Writer    // Output destination (default: stderr)
	Logger *slog.Logger // Custom logger (overrides all other options)
}

// Init initializes the logger with the specified options.
func Init(opts Options) error {
	if opts.Logger != nil {
		SetLogger(opts.Logger)
		return nil
	}

	level := slog.LevelInfo
	switch {
	case opts.Level != "":
		var err error
		if level, err = ParseLevel(opts.Level); err != nil {
			return err
		}
	case opts.Quiet:
		level = slog.LevelError
	case opts.Debug:
		level = slog.LevelDebug
	}

	output := opts.Output
	if output == nil {
		output = os.Stderr
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if opts.JSON {
		handler = slog.NewJSONHandler(output, handlerOpts)
	} else {
		handler = slog.NewTextHandler(output, handlerOpts)
	}

	SetLogger(slog.New(handler))
	return nil
}

// ParseLevel converts a level name to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level: %s", name)
	}
}

// SetLogger sets a custom slog.Logger, for embedding reviewnorm in an
// application with its own logging.
func SetLogger(l *slog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	defaultLogger = l
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return defaultLogger
}

// Enabled reports whether messages at level are logged.
func Enabled(level slog.Level) bool {
	return Logger().Enabled(context.Background(), level)
}

// Debug logs a debug message.
func Debug(msg string, args ...any) { Logger().Debug(msg, args...) }

// Info logs an info message.
func Info(msg string, args ...any) { Logger().Info(msg, args...) }

// Warn logs a warning message.
func Warn(msg string, args ...any) { Logger().Warn(msg, args...) }

// Error logs an error message.
func Error(msg string, args ...any) { Logger().Error(msg, args...) }

// With returns a logger with the given attributes.
func With(args ...any) *slog.Logger { return Logger().With(args...) }

// DebugContext logs a debug message with context.
func DebugContext(ctx context.Context, msg string, args ...any) {
	Logger().DebugContext(ctx, msg, args...)
}

// WarnContext logs a warning message with context.
func WarnContext(ctx context.Context, msg string, args ...any) {
	Logger().WarnContext(ctx, msg, args...)
}
