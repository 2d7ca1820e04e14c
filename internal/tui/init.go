package tui

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/cfgedit/internal/config"
	"github.com/studiowebux/cfgedit/internal/keybinds"
	"github.com/studiowebux/cfgedit/internal/logging"
	"github.com/studiowebux/cfgedit/internal/session"
)

// Options configure a new Model
type Options struct {
	Session  *session.Manager
	Keybinds *keybinds.Registry
	Settings *config.Settings
	Logger   *slog.Logger
	Version  string

	// Path is opened when the program starts
	Path string
}

// New creates a new TUI model
func New(opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.Settings == nil {
		opts.Settings = config.DefaultSettings()
	}
	if opts.Keybinds == nil {
		opts.Keybinds = keybinds.NewDefaultRegistry()
	}
	if opts.Session == nil {
		opts.Session = session.NewManager(opts.Logger, opts.Settings.Indent)
	}

	m := Model{
		session:      opts.Session,
		keybinds:     opts.Keybinds,
		settings:     opts.Settings,
		logger:       opts.Logger,
		version:      opts.Version,
		initial:      opts.Path,
		mode:         ModeNormal,
		folds:        make(map[int]bool),
		pending:      make(map[int]interface{}),
		pressed:      make(map[string]bool),
		input:        textinput.New(),
		showPreview:  opts.Settings.ShowPreview,
		focusedPanel: focusForm,
		preview:      viewport.New(80, 20),
		resultView:   viewport.New(80, 20),
		helpView:     viewport.New(80, 20),
		help:         help.New(),
	}

	// First frame so View has rows before any message arrives
	m.runFrame()
	return m
}

// LoadKeybinds loads the user keybinding file over the defaults. When the
// file cannot be used the defaults are returned with the error. Validation
// findings are logged.
func LoadKeybinds(path string, logger *slog.Logger) (*keybinds.Registry, error) {
	registry, err := keybinds.LoadOrDefault(path)
	if err != nil {
		logger.Warn("keybinds ignored", "path", path, "error", err)
		return keybinds.NewDefaultRegistry(), fmt.Errorf("keybinds: %w", err)
	}

	result := keybinds.NewValidator().ValidateRegistry(registry)
	for _, e := range result.Errors {
		logger.Warn("keybind error", "context", e.Context, "key", e.Key, "message", e.Message)
	}
	for _, w := range result.Warnings {
		logger.Info("keybind warning", "context", w.Context, "key", w.Key, "message", w.Message)
	}
	return registry, nil
}

// Run starts the TUI
func Run(opts Options) error {
	m := New(opts)

	// Pass a pointer since Update uses a pointer receiver.
	// Bracketed paste is on by default, which is how terminals deliver
	// dropped files.
	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}

	if m.session.Modified() {
		m.logger.Info("exited with unsaved edits", "path", m.session.Path())
	}
	return nil
}
