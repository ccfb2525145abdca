package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("trace")
	assert.Error(t, err)
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, slog.LevelInfo, "json")
	require.NoError(t, err)

	log.LogWrite(context.Background(), "out.stl", "binary", 12, nil)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "write completed", record["msg"])
	assert.Equal(t, "out.stl", record["file"])
	assert.Equal(t, "binary", record["format"])
	assert.Equal(t, float64(12), record["facets"])
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, slog.LevelInfo, "text")
	require.NoError(t, err)

	log.LogRead(context.Background(), "in.stl", "text", 3, nil)
	assert.Empty(t, buf.String(), "successful reads are debug output")

	log.LogRead(context.Background(), "in.stl", "", 0, errors.New("boom"))
	assert.Contains(t, buf.String(), "read failed")
	assert.Contains(t, buf.String(), "error=boom")
}

func TestLogConvert(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, slog.LevelDebug, "text")
	require.NoError(t, err)

	log.LogConvert(context.Background(), 3, 1, time.Second)
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "failed=1")

	buf.Reset()
	log.WithFile("a.stl").LogWatch(context.Background(), "a.stl", nil)
	assert.Contains(t, buf.String(), "file changed")
}

func TestNewUnknownFormat(t *testing.T) {
	_, err := New(&bytes.Buffer{}, slog.LevelInfo, "xml")
	assert.Error(t, err)
}

func TestNoop(t *testing.T) {
	log := Noop()
	log.Error("dropped")
	log.LogConvert(context.Background(), 1, 1, 0)
}
