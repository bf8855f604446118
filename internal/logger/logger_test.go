package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"florify-catalog/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_Info(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	testLogger := slog.New(handler)
	logger.SetLogger(testLogger)

	logger.Info("test message",
		slog.String("key", "value"),
		slog.Int("count", 42),
	)

	output := buf.String()
	assert.Contains(t, output, "test message")
	assert.Contains(t, output, "key")
	assert.Contains(t, output, "value")
	assert.Contains(t, output, "count")
	assert.Contains(t, output, "42")
}

func TestLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelError,
	})
	testLogger := slog.New(handler)
	logger.SetLogger(testLogger)

	logger.Error("error occurred",
		slog.String("error", "test error"),
	)

	output := buf.String()
	assert.Contains(t, output, "error occurred")
	assert.Contains(t, output, "test error")
}

func TestLogger_WithRequestID(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	testLogger := slog.New(handler)
	logger.SetLogger(testLogger)

	ctx := logger.WithRequestID(context.Background(), "req-123")
	logger.InfoContext(ctx, "processing request")

	output := buf.String()
	assert.Contains(t, output, "processing request")
	assert.Contains(t, output, "request_id")
	assert.Contains(t, output, "req-123")
}

func TestLogger_WithBatchAndAnalysisID(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	testLogger := slog.New(handler)
	logger.SetLogger(testLogger)

	ctx := logger.WithAnalysisID(context.Background(), "analysis-789")
	logger.InfoContext(ctx, "analysis stored")
	logger.InfoContext(logger.WithBatchID(ctx, "batch-456"), "applying batch")

	output := buf.String()
	assert.Contains(t, output, "applying batch")
	assert.Contains(t, output, `"batch_id":"batch-456"`)
	assert.Contains(t, output, "analysis stored")
	assert.Contains(t, output, `"analysis_id":"analysis-789"`)
}

func TestLogger_FromContext(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))
	logger.SetLogger(base)

	assert.Equal(t, base, logger.FromContext(context.Background()))

	scoped := base.With(slog.String("request_id", "req-1"))
	ctx := logger.NewContext(context.Background(), scoped)
	assert.Equal(t, scoped, logger.FromContext(ctx))

	logger.WarnContext(ctx, "scoped warning")
	assert.Contains(t, buf.String(), `"request_id":"req-1"`)
	assert.Contains(t, buf.String(), "scoped warning")
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, logger.ParseLevel(in), "level %q", in)
	}
}

func TestLogger_InfoContext(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	testLogger := slog.New(handler)
	logger.SetLogger(testLogger)

	ctx := context.Background()
	logger.InfoContext(ctx, "context message",
		slog.String("key", "value"),
	)

	output := buf.String()
	assert.Contains(t, output, "context message")
	assert.Contains(t, output, "key")
	assert.Contains(t, output, "value")
}

func TestLogger_GetLogger(t *testing.T) {
	lg := logger.GetLogger()
	require.NotNil(t, lg)
}

func TestLogger_Default(t *testing.T) {
	lg := logger.Default()
	require.NotNil(t, lg)
	// Default() should return the same instance as GetLogger()
	assert.Equal(t, logger.GetLogger(), lg)
}

func TestLogger_WithFields(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	testLogger := slog.New(handler)
	logger.SetLogger(testLogger)

	ctx := logger.WithFields(context.Background(),
		slog.String("service", "import"),
		slog.Int("chunk_size", 50),
	)
	logger.InfoContext(ctx, "audit flush")

	output := buf.String()
	assert.Contains(t, output, "audit flush")
	assert.Contains(t, output, "service")
	assert.Contains(t, output, "import")
	assert.Contains(t, output, "chunk_size")
	assert.Contains(t, output, "50")
}
