package server

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"objectviewer/internal/config"
	"objectviewer/internal/testutil"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	previous := logOutput
	logOutput = buf
	t.Cleanup(func() { logOutput = previous })
	return buf
}

func TestSetupLogger_JSONFormat(t *testing.T) {
	buf := captureLogOutput(t)

	logger := setupLogger(&config.Config{Log: config.LogConfig{Level: "debug", Format: "json"}})
	logger.Debug("visible", "username", "sven")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "visible", entry["msg"])
	assert.Equal(t, "sven", entry["username"])
}

func TestSetupLogger_LevelFiltering(t *testing.T) {
	tests := []struct {
		level   string
		enabled slog.Level
		hidden  slog.Level
	}{
		{level: "debug", enabled: slog.LevelDebug, hidden: slog.LevelDebug - 1},
		{level: "info", enabled: slog.LevelInfo, hidden: slog.LevelDebug},
		{level: "warn", enabled: slog.LevelWarn, hidden: slog.LevelInfo},
		{level: "error", enabled: slog.LevelError, hidden: slog.LevelWarn},
		{level: "bogus", enabled: slog.LevelInfo, hidden: slog.LevelDebug},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			captureLogOutput(t)
			logger := setupLogger(&config.Config{Log: config.LogConfig{Level: tt.level, Format: "text"}})

			assert.True(t, logger.Enabled(context.Background(), tt.enabled))
			assert.False(t, logger.Enabled(context.Background(), tt.hidden))
		})
	}
}

func TestMultiHandler_FansOut(t *testing.T) {
	first := testutil.NewTestLogHandler()
	second := testutil.NewTestLogHandler()

	logger := slog.New(NewMultiHandler(first, second)).With("component", "test").WithGroup("request")
	logger.Info("Server Started")

	record, ok := first.FindMessage(slog.LevelInfo, "Server Started")
	require.True(t, ok)
	assert.Equal(t, "test", record.Attrs["component"])
	assert.True(t, second.ContainsMessage(slog.LevelInfo, "Server Started"))
}
