package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/studiowebux/cfgedit/internal/errors"
	"gopkg.in/yaml.v3"
)

const (
	// FilePermissions is the default permission mode for regular files (read/write for owner, read for others)
	FilePermissions = 0644
	// DirPermissions is the default permission mode for directories (rwxr-xr-x)
	DirPermissions = 0755

	// AppName names the configuration directory
	AppName = "cfgedit"
	// SettingsFileName is the settings file inside the configuration directory
	SettingsFileName = "config.yaml"
	// KeybindsFileName is the keybinding file inside the configuration directory
	KeybindsFileName = "keybinds.json"
)

var (
	// ConfigDir is the configuration directory (~/.config/cfgedit)
	ConfigDir string

	// SettingsFile is the YAML settings file
	SettingsFile string

	// KeybindsFile is the keybinding override file
	KeybindsFile string
)

// Initialize resolves the configuration paths. The directory is taken from
// $CFGEDIT_CONFIG_DIR, then $XDG_CONFIG_HOME/cfgedit, then ~/.config/cfgedit.
// Nothing is created: the editor only ever reads these files.
func Initialize() error {
	dir, err := resolveConfigDir()
	if err != nil {
		return err
	}

	ConfigDir = dir
	SettingsFile = filepath.Join(ConfigDir, SettingsFileName)
	KeybindsFile = filepath.Join(ConfigDir, KeybindsFileName)
	return nil
}

func resolveConfigDir() (string, error) {
	if dir := os.Getenv("CFGEDIT_CONFIG_DIR"); dir != "" {
		return ExpandHome(dir)
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", AppName), nil
}

// ExpandHome expands a leading ~/ to the home directory
func ExpandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, path[2:]), nil
}

// Settings are the user-tunable options read from config.yaml
type Settings struct {
	// Indent is the number of spaces per object level when saving
	Indent int `yaml:"indent"`

	// MessageTimeout clears status messages after this long; 0 keeps them
	MessageTimeout time.Duration `yaml:"message_timeout"`

	LogFile   string `yaml:"log_file"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	// ShowPreview opens the output preview pane at startup
	ShowPreview bool `yaml:"show_preview"`

	// Theme is the chroma style used by the preview
	Theme string `yaml:"theme"`
}

// DefaultSettings returns the settings used when config.yaml is absent
func DefaultSettings() *Settings {
	return &Settings{
		Indent:         4,
		MessageTimeout: 4 * time.Second,
		LogLevel:       "info",
		LogFormat:      "text",
		ShowPreview:    false,
		Theme:          "monokai",
	}
}

// Load reads settings from a YAML file over the defaults. A missing file
// yields the defaults.
func Load(path string) (*Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return settings, errors.NewConfigError(fmt.Sprintf("cannot read %s", path), err)
	}

	if err := yaml.Unmarshal(data, settings); err != nil {
		return DefaultSettings(), errors.NewConfigError(fmt.Sprintf("cannot parse %s", path), err)
	}

	if err := settings.Validate(); err != nil {
		return DefaultSettings(), errors.NewConfigError(fmt.Sprintf("invalid %s", path), err)
	}

	if settings.LogFile != "" {
		if settings.LogFile, err = ExpandHome(settings.LogFile); err != nil {
			return DefaultSettings(), errors.NewConfigError("cannot resolve log_file", err)
		}
	}

	return settings, nil
}

// Validate checks field ranges
func (s *Settings) Validate() error {
	if s.Indent < 0 || s.Indent > 16 {
		return fmt.Errorf("indent must be between 0 and 16, got %d", s.Indent)
	}
	if s.MessageTimeout < 0 {
		return fmt.Errorf("message_timeout cannot be negative")
	}
	switch strings.ToLower(s.LogLevel) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", s.LogLevel)
	}
	switch s.LogFormat {
	case "", "text", "json":
	default:
		return fmt.Errorf("unknown log_format %q", s.LogFormat)
	}
	return nil
}
