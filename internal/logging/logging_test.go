package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestToLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, ToLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, ToLevel(" WARN "))
	assert.Equal(t, zapcore.ErrorLevel, ToLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, ToLevel("verbose"))

	assert.True(t, ValidLevel("Info"))
	assert.False(t, ValidLevel("trace"))
}

func TestWriterLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf, WarnLevel)

	logger.Infow("hidden", "k", 1)
	logger.Warnw("shown", "query", "jazz")
	require.NoError(t, logger.Sync())

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "jazz")
}

func TestFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")

	logger, closeFn, err := NewFileLogger(path, DebugLevel)
	require.NoError(t, err)

	logger.Debugw("dispatching search", "seq", 1)
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "dispatching search")
}
