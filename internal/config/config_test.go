package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studiowebux/cfgedit/internal/errors"
)

func TestInitialize_ConfigDirOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CFGEDIT_CONFIG_DIR", dir)

	require.NoError(t, Initialize())
	assert.Equal(t, dir, ConfigDir)
	assert.Equal(t, filepath.Join(dir, "config.yaml"), SettingsFile)
	assert.Equal(t, filepath.Join(dir, "keybinds.json"), KeybindsFile)
}

func TestInitialize_XDG(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("CFGEDIT_CONFIG_DIR", "")
	t.Setenv("XDG_CONFIG_HOME", xdg)

	require.NoError(t, Initialize())
	assert.Equal(t, filepath.Join(xdg, "cfgedit"), ConfigDir)

	_, err := os.Stat(ConfigDir)
	assert.True(t, os.IsNotExist(err), "Initialize must not create the directory")
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
indent: 2
message_timeout: 10s
log_level: debug
log_format: json
show_preview: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Indent)
	assert.Equal(t, 10*time.Second, s.MessageTimeout)
	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, "json", s.LogFormat)
	assert.True(t, s.ShowPreview)
	assert.Equal(t, "monokai", s.Theme, "unset fields keep their default")
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"bad yaml":       "indent: [",
		"indent":         "indent: 40",
		"log level":      "log_level: loud",
		"log format":     "log_format: xml",
		"bad duration":   "message_timeout: soon",
		"negative delay": "message_timeout: -1s",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(content), 0644))

			s, err := Load(path)
			require.Error(t, err)
			assert.ErrorIs(t, err, errors.Config)
			assert.Equal(t, DefaultSettings(), s, "defaults are returned alongside the error")
		})
	}
}

func TestLoad_ExpandsLogFile(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_file: ~/cfgedit.log\n"), 0644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "cfgedit.log"), s.LogFile)
}
