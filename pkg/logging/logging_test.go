package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LevelWarn)
	logger.SetOutput(&buf)

	logger.Debug("dropped")
	logger.Info("dropped")
	logger.Warn("kept")
	logger.Error("kept too")

	output := buf.String()
	assert.NotContains(t, output, "dropped")
	assert.Contains(t, output, `"level":"warn"`)
	assert.Contains(t, output, `"level":"error"`)
}

func TestLogger_ErrorErr(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LevelError)
	logger.SetOutput(&buf)

	logger.ErrorErr("conversion failed", errors.New("bad octal"), map[string]any{"line": 3})

	var entry Entry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "conversion failed", entry.Message)
	assert.Equal(t, "bad octal", entry.Fields["error"])
	assert.Equal(t, float64(3), entry.Fields["line"])
}

func TestLogger_WithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LevelInfo)
	logger.SetOutput(&buf)

	child := logger.WithFields(map[string]any{"file": "s042.asc"})
	child.Info("read", map[string]any{"records": 29})

	var entry Entry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "s042.asc", entry.Fields["file"])
	assert.Equal(t, float64(29), entry.Fields["records"])

	// Original logger keeps its own field set.
	buf.Reset()
	logger.Info("plain")
	var plain Entry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &plain))
	assert.Nil(t, plain.Fields)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("debug"))
	assert.Equal(t, LevelWarn, ParseLevel("warn"))
	assert.Equal(t, LevelError, ParseLevel("error"))
	assert.Equal(t, LevelInfo, ParseLevel("info"))
	assert.Equal(t, LevelInfo, ParseLevel("bogus"))
}

func TestGlobal(t *testing.T) {
	var buf bytes.Buffer
	testLogger := NewLogger(LevelInfo)
	testLogger.SetOutput(&buf)
	SetGlobal(testLogger)
	defer SetGlobal(NewLogger(LevelInfo))

	Info("global info message")

	output := buf.String()
	assert.Contains(t, output, `"level":"info"`)
	assert.Contains(t, output, `"message":"global info message"`)
}
