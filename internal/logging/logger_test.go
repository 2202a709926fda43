package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("test", "warn", false, &buf)
	logger.Info("should be filtered")
	assert.Empty(t, buf.String())

	logger.Warn("should show", "key", 5)
	assert.Contains(t, buf.String(), "should show")
	assert.Contains(t, buf.String(), "test")
	assert.Contains(t, buf.String(), "key=5")
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("test", "debug", true, &buf)
	logger.Debug("structured", "path", "a/b.png")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "structured", entry["@message"])
	assert.Equal(t, "a/b.png", entry["path"])
	assert.Equal(t, "test", entry["@module"])
}

func TestValidLevel(t *testing.T) {
	for _, level := range []string{"trace", "debug", "info", "warn", "error", "off", "WARN"} {
		assert.True(t, ValidLevel(level), level)
	}
	assert.False(t, ValidLevel("loud"))
}
