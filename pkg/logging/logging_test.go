package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tilsley/gallery/pkg/logging"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":        slog.LevelInfo,
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, logging.ParseLevel(in), "level %q", in)
	}
}

func TestNewWithWriter_JSONByDefault(t *testing.T) {
	var buf bytes.Buffer
	log := logging.NewWithWriter(&buf, "", "info")

	log.Info("hello", "folder", "travel")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "hello", rec["msg"])
	assert.Equal(t, "travel", rec["folder"])
}

func TestNewWithWriter_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	log := logging.NewWithWriter(&buf, "text", "info")

	log.Info("hello", "folder", "travel")

	assert.Contains(t, buf.String(), "msg=hello")
	assert.Contains(t, buf.String(), "folder=travel")
}

func TestNewWithWriter_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := logging.NewWithWriter(&buf, "json", "error")

	log.Warn("dropped")

	assert.Empty(t, buf.String())
}
