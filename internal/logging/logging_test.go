package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger := New("warn", "text", &buf)

	logger.Info("hidden")
	logger.Warn("shown", "key", "v")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "key=v")
}

func TestNew_UnknownLevelIsInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := New("verbose", "text", &buf)

	logger.Debug("debug")
	logger.Info("info")

	assert.NotContains(t, buf.String(), "msg=debug")
	assert.Contains(t, buf.String(), "msg=info")
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	New("debug", "json", &buf).Debug("opened", "path", "a.json")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "opened", record["msg"])
	assert.Equal(t, "a.json", record["path"])
}

func TestOpen_AppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "cfgedit.log")

	logger, closer, err := Open(path, "info", "text")
	require.NoError(t, err)
	logger.Info("first")
	require.NoError(t, closer.Close())

	logger, closer, err = Open(path, "info", "text")
	require.NoError(t, err)
	logger.Info("second")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=first")
	assert.Contains(t, string(data), "msg=second")
}

func TestOpen_EmptyPathDiscards(t *testing.T) {
	logger, closer, err := Open("", "debug", "text")
	require.NoError(t, err)
	require.NotNil(t, logger)
	logger.Info("nowhere")
	assert.NoError(t, closer.Close())
}
