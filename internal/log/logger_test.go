package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out), "log line should be JSON")
	return out
}

func TestSetupWriter(t *testing.T) {
	// Reset logger for testing
	logger = nil
	once = *new(sync.Once)

	var buf bytes.Buffer
	SetupWriter("warn", &buf)
	require.NotNil(t, logger)

	Get().Info("dropped")
	assert.Zero(t, buf.Len(), "info should be below the configured level")

	Get().Warn("kept", "k", "v")
	out := decodeLine(t, &buf)
	assert.Equal(t, "kept", out["msg"])
	assert.Equal(t, "v", out["k"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("WARN"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	logger = slog.New(slog.NewJSONHandler(&buf, nil))

	WithComponent("test-comp").Info("hello")

	out := decodeLine(t, &buf)
	assert.Equal(t, "test-comp", out["component"])
	assert.Equal(t, "hello", out["msg"])
}

func TestWithInteractionAndReport(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	WithReport(WithInteraction(base, "123"), "abc").Info("report msg")

	out := decodeLine(t, &buf)
	assert.Equal(t, "123", out["interaction_id"])
	assert.Equal(t, "abc", out["report_id"])
}
