package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"
)

type ctxKey struct{}

var defaultLogger *slog.Logger

func init() {
	defaultLogger = New("info")
}

// New builds a JSON logger writing to stdout at the given level.
func New(level string) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: ParseLevel(level),
	})
	return slog.New(handler)
}

// ParseLevel maps debug|info|warn|error to a slog level. Unknown values
// fall back to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SetLogger allows setting a custom logger (useful for testing)
func SetLogger(logger *slog.Logger) {
	defaultLogger = logger
}

// GetLogger returns the default logger
func GetLogger() *slog.Logger {
	return defaultLogger
}

// Default returns the default logger (alias for GetLogger)
func Default() *slog.Logger {
	return defaultLogger
}

// Info logs an info message with optional attributes
func Info(msg string, args ...any) {
	defaultLogger.Info(msg, args...)
}

// InfoContext logs an info message with context
func InfoContext(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).InfoContext(ctx, msg, args...)
}

// Error logs an error message with optional attributes
func Error(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
}

// ErrorContext logs an error message with context
func ErrorContext(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).ErrorContext(ctx, msg, args...)
}

// Warn logs a warning message with optional attributes
func Warn(msg string, args ...any) {
	defaultLogger.Warn(msg, args...)
}

// WarnContext logs a warning message with context
func WarnContext(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).WarnContext(ctx, msg, args...)
}

// Debug logs a debug message with optional attributes
func Debug(msg string, args ...any) {
	defaultLogger.Debug(msg, args...)
}

// DebugContext logs a debug message with context
func DebugContext(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).DebugContext(ctx, msg, args...)
}

// Fatal logs a fatal message and exits
func Fatal(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
	os.Exit(1)
}

// WithRequestID returns ctx carrying a logger tagged with request_id.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return WithFields(ctx, slog.String("request_id", requestID))
}

// WithBatchID returns ctx carrying a logger tagged with batch_id.
func WithBatchID(ctx context.Context, batchID string) context.Context {
	return WithFields(ctx, slog.String("batch_id", batchID))
}

// WithAnalysisID returns ctx carrying a logger tagged with analysis_id.
func WithAnalysisID(ctx context.Context, analysisID string) context.Context {
	return WithFields(ctx, slog.String("analysis_id", analysisID))
}

// WithFields returns ctx carrying the context logger extended with attrs.
func WithFields(ctx context.Context, attrs ...slog.Attr) context.Context {
	args := make([]any, len(attrs))
	for i, attr := range attrs {
		args[i] = attr
	}
	return NewContext(ctx, FromContext(ctx).With(args...))
}

// NewContext returns a copy of ctx carrying l.
func NewContext(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the logger stored in ctx, or the default logger.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
			return l
		}
	}
	return defaultLogger
}
