package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(level slog.Level) (*SlogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLogger_Levels(t *testing.T) {
	ctx := context.Background()
	log, buf := newBufferLogger(slog.LevelDebug)

	log.Debug(ctx, "dbg")
	log.Info(ctx, "inf")
	log.Warn(ctx, "wrn")
	log.Error(ctx, "err")

	out := buf.String()
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, "msg=inf")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "msg=err")
}

func TestSlogLogger_WithAddsattributes(t *testing.T) {
	ctx := context.Background()
	log, buf := newBufferLogger(slog.LevelInfo)

	child := log.With("component", "gateway")
	require.NotNil(t, child)
	child.Info(ctx, "request failed", "status", 500)

	out := buf.String()
	assert.Contains(t, out, "component=gateway")
	assert.Contains(t, out, "status=500")
}
