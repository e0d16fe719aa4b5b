package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewLogger_NotNil verifies that NewLogger returns a non-nil *Logger.
func TestNewLogger_NotNil(t *testing.T) {
	l := NewLogger("test")
	require.NotNil(t, l)
}

// TestNewLogger_RoleField verifies that every log entry produced by a logger
// created with NewLogger contains the expected "role" field.
func TestNewLogger_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("test-role")
	l.Logger = l.Output(&buf)

	l.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test-role", entry["role"])
}

// TestNewLogger_CallerFieldName verifies that the caller field is named "func".
func TestNewLogger_CallerFieldName(t *testing.T) {
	NewLogger("caller-role") // sets zerolog.CallerFieldName as a side-effect
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

// TestNewFileLogger_WritesToFile verifies that entries land in the log file.
func TestNewFileLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.log")

	l := NewFileLogger("field-device", path)
	l.Info().Msg("sync started")

	payload, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(payload, &entry))
	assert.Equal(t, "field-device", entry["role"])
	assert.Equal(t, "sync started", entry["message"])
}

// TestNewFileLogger_FallsBackToStdout verifies that an unopenable path does
// not fail logger construction.
func TestNewFileLogger_FallsBackToStdout(t *testing.T) {
	l := NewFileLogger("test", "/nonexistent-dir/client.log")
	require.NotNil(t, l)
}

// TestNop verifies that the no-op logger discards output without panicking.
func TestNop(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)
	l.Error().Msg("discarded")
}

// TestGetChildLogger verifies that a child logger is independent of the parent.
func TestGetChildLogger(t *testing.T) {
	parent := Nop()
	child := parent.GetChildLogger()
	require.NotNil(t, child)
	assert.NotSame(t, parent, child)
}

// TestFromContext verifies that FromContext never returns nil.
func TestFromContext(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)
}
