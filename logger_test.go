package submet

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogFitAll(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	ctx := context.Background()
	logger.WithCount(3).LogFitAll(ctx, 3, 3, true, nil)
	assert.Contains(t, buf.String(), `"msg":"fit all completed"`)
	assert.Contains(t, buf.String(), `"count":3`)
	assert.Contains(t, buf.String(), `"self":true`)

	buf.Reset()
	logger.LogFitAll(ctx, 2, 4, false, errors.New("boom"))
	assert.Contains(t, buf.String(), `"level":"ERROR"`)
	assert.Contains(t, buf.String(), `"error":"boom"`)
}

func TestLogFitPairLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	ctx := context.Background()
	logger.LogFitPair(ctx, 3, 2, 0.5, nil)
	assert.Empty(t, buf.String())

	logger.LogFitPair(ctx, 3, 0, 0, errors.New("bad input"))
	assert.Contains(t, buf.String(), "fit pair failed")
}

func TestNoopLogger(t *testing.T) {
	logger := NoopLogger()
	assert.False(t, logger.Enabled(context.Background(), slog.LevelError))
}
