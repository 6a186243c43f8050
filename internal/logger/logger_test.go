package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesa-auction/internal/config/configs"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(configs.Logger{Level: "info", Format: "json"}, &buf)

	log.Debug("hidden")
	log.Warn("bid rejected", slog.Uint64("auction_id", 7), slog.String("bidder", "adv"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "bid rejected", entry["msg"])
	assert.Equal(t, float64(7), entry["auction_id"])
	assert.Equal(t, "adv", entry["bidder"])
}

func TestNew_TextHonoursLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(configs.Logger{Level: "debug", Format: "text"}, &buf)

	log.Debug("visible")

	assert.Contains(t, buf.String(), "DEBUG")
	assert.Contains(t, buf.String(), "visible")
}

func TestLoggerConfigLevels(t *testing.T) {
	cases := map[string]string{
		"debug":   "debug",
		"WARNING": "warn",
		"error":   "error",
		"bogus":   "info",
		"":        "info",
	}
	for in, want := range cases {
		assert.Equal(t, want, configs.Logger{Level: in}.ZapLevel().String(), in)
	}
	assert.Equal(t, configs.LogFormatJSON, configs.Logger{Format: "JSON"}.NormalizedFormat())
	assert.Equal(t, configs.LogFormatText, configs.Logger{Format: "yaml"}.NormalizedFormat())
}
