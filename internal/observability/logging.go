// Package observability provides logging, metrics, and tracing.
package observability

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger to provide specialized logging methods.
type Logger struct {
	*slog.Logger
}

// GlobalLogger is the default logger instance for repository and auth logging.
var GlobalLogger *Logger

func init() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	GlobalLogger = &Logger{Logger: slog.New(handler)}
}

// LoggingConfig defines which types of automated logging are enabled.
type LoggingConfig struct {
	EnableRepoLogging bool
	EnableAuthLogging bool
}

var (
	// Config holds the current logging configuration.
	Config = LoggingConfig{
		EnableRepoLogging: true,
		EnableAuthLogging: true,
	}
)

// RepoLogger provides structured logging for repository operations.
type RepoLogger struct {
	tableName string
	logger    *Logger
}

// NewRepoLogger creates a new RepoLogger for the given table.
func NewRepoLogger(tableName string) *RepoLogger {
	return &RepoLogger{
		tableName: tableName,
		logger:    GlobalLogger,
	}
}

func (l *RepoLogger) log(ctx context.Context, operation string, fields map[string]any) {
	if !Config.EnableRepoLogging {
		return
	}
	attrs := []any{
		slog.String("table", l.tableName),
		slog.String("operation", operation),
	}
	for k, v := range fields {
		attrs = append(attrs, slog.Any(k, v))
	}
	l.logger.InfoContext(ctx, "repository "+operation, attrs...)
}

// LogCreate logs a repository create operation.
func (l *RepoLogger) LogCreate(ctx context.Context, fields map[string]any) {
	l.log(ctx, "create", fields)
}

// LogUpdate logs a repository update operation. Book read toggles are
// updates too and carry a "checked" field.
func (l *RepoLogger) LogUpdate(ctx context.Context, fields map[string]any) {
	l.log(ctx, "update", fields)
}

// LogDelete logs a repository delete operation. Deletes that matched no
// owned row are not logged.
func (l *RepoLogger) LogDelete(ctx context.Context, fields map[string]any) {
	l.log(ctx, "delete", fields)
}

// LogError logs a repository error.
func (l *RepoLogger) LogError(ctx context.Context, err error, operation string) {
	if !Config.EnableRepoLogging {
		return
	}
	l.logger.ErrorContext(ctx, "repository error",
		slog.String("table", l.tableName),
		slog.String("operation", operation),
		slog.String("error", err.Error()),
	)
}

// AuthLogger provides structured logging for signup, login and session events.
// Passwords and tokens never reach it.
type AuthLogger struct {
	logger *Logger
}

// NewAuthLogger creates a new AuthLogger.
func NewAuthLogger() *AuthLogger {
	return &AuthLogger{logger: GlobalLogger}
}

// LogAttempt logs the outcome of a signup or login. userID is zero when the
// attempt was rejected.
func (l *AuthLogger) LogAttempt(ctx context.Context, action, outcome string, userID uint) {
	if !Config.EnableAuthLogging {
		return
	}
	attrs := []any{
		slog.String("action", action),
		slog.String("outcome", outcome),
	}
	if userID != 0 {
		attrs = append(attrs, slog.Uint64("user_id", uint64(userID)))
	}

	// Rejections are expected traffic; only store failures are errors.
	if outcome == "error" {
		l.logger.ErrorContext(ctx, "auth attempt", attrs...)
		return
	}
	l.logger.InfoContext(ctx, "auth attempt", attrs...)
}

// LogSession logs a session cookie being issued or cleared.
func (l *AuthLogger) LogSession(ctx context.Context, event string, userID uint) {
	if !Config.EnableAuthLogging {
		return
	}
	l.logger.InfoContext(ctx, "session "+event,
		slog.String("event", event),
		slog.Uint64("user_id", uint64(userID)),
	)
}
