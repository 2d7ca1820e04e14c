// Package session owns the document being edited and its file lifecycle.
package session

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/studiowebux/cfgedit/internal/config"
	"github.com/studiowebux/cfgedit/internal/errors"
	"github.com/studiowebux/cfgedit/internal/logging"
	"github.com/studiowebux/cfgedit/internal/projection"
	"github.com/studiowebux/cfgedit/internal/value"
)

// State is the lifecycle state of the document
type State int

const (
	// StateEmpty has no path and no content
	StateEmpty State = iota
	// StateLoaded has a path and a valid root
	StateLoaded
	// StateParseError has a path but the last open failed
	StateParseError
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateLoaded:
		return "loaded"
	case StateParseError:
		return "parse_error"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Labels and buttons emitted by RenderFrame
const (
	RootLabel    = "Document"
	DropPrompt   = "Drag and drop a JSON file here to open it"
	ErrorLabel   = "Error"
	ButtonSave   = "Save"
	ButtonReload = "Reload"
	ButtonClose  = "Close"
)

// Manager handles the open document
type Manager struct {
	path     string
	root     *value.Value
	state    State
	err      error
	modified bool

	indent int
	logger *slog.Logger
}

// NewManager creates an empty session. A nil logger discards records; a
// negative indent selects value.DefaultIndent.
func NewManager(logger *slog.Logger, indent int) *Manager {
	if logger == nil {
		logger = logging.Discard()
	}
	if indent < 0 {
		indent = value.DefaultIndent
	}
	return &Manager{
		indent: indent,
		logger: logger,
	}
}

// Open reads and parses the file at path. On success the document is
// Loaded. On any failure the path is kept so Reload can retry, the root is
// cleared and the state becomes StateParseError.
func (m *Manager) Open(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		var ioErr *errors.AppError
		if os.IsNotExist(err) {
			ioErr = errors.NewIOError(fmt.Sprintf("cannot open %s", path), errors.ErrFileNotFound)
		} else {
			ioErr = errors.NewIOError(fmt.Sprintf("cannot read %s", path), err)
		}
		m.fail(path, ioErr)
		return ioErr
	}

	root, err := value.Parse(data)
	if err != nil {
		m.fail(path, err)
		return err
	}

	m.path = path
	m.root = root
	m.state = StateLoaded
	m.err = nil
	m.modified = false
	m.logger.Info("document opened", "path", path, "bytes", len(data), "nodes", root.Count()+1)
	return nil
}

func (m *Manager) fail(path string, err error) {
	m.path = path
	m.root = nil
	m.state = StateParseError
	m.err = err
	m.modified = false
	m.logger.Warn("document open failed", "path", path, "error", err)
}

// Save writes the document back to its path. It does nothing unless a
// document is loaded. Write failures leave the state and path unchanged.
func (m *Manager) Save() error {
	if m.path == "" || m.state != StateLoaded {
		m.logger.Debug("save skipped", "state", m.state.String())
		return nil
	}

	data, err := m.Serialized()
	if err != nil {
		m.logger.Error("document serialize failed", "path", m.path, "error", err)
		return errors.NewIOError(fmt.Sprintf("cannot serialize %s", m.path), err)
	}

	if err := os.WriteFile(m.path, data, config.FilePermissions); err != nil {
		m.logger.Error("document save failed", "path", m.path, "error", err)
		return errors.NewIOError(fmt.Sprintf("cannot write %s", m.path), err)
	}

	m.modified = false
	m.logger.Info("document saved", "path", m.path, "bytes", len(data))
	return nil
}

// Serialized returns exactly the bytes Save would write
func (m *Manager) Serialized() ([]byte, error) {
	if m.root == nil {
		return nil, nil
	}
	return value.Serialize(m.root, m.indent)
}

// Reload re-opens the stored path, discarding unsaved edits
func (m *Manager) Reload() error {
	if m.path == "" {
		return nil
	}
	m.logger.Debug("document reload", "path", m.path, "discarded_edits", m.modified)
	return m.Open(m.path)
}

// Close forgets the document
func (m *Manager) Close() {
	if m.path != "" {
		m.logger.Info("document closed", "path", m.path, "discarded_edits", m.modified)
	}
	m.path = ""
	m.root = nil
	m.state = StateEmpty
	m.err = nil
	m.modified = false
}

// RenderFrame emits one frame of the document form into w. Buttons pressed
// in this frame are acted on before the form is projected; the first error
// they produce is returned.
func (m *Manager) RenderFrame(w projection.Widgets) error {
	switch m.state {
	case StateParseError:
		w.Label(ErrorLabel, errors.UserFriendly(m.err))
		w.Label("", DropPrompt)
		if w.Button(ButtonReload) {
			return m.Reload()
		}
		return nil

	case StateEmpty:
		w.Label("", DropPrompt)
		return nil
	}

	var err error
	save, reload, closeDoc := w.Button(ButtonSave), w.Button(ButtonReload), w.Button(ButtonClose)
	switch {
	case closeDoc:
		m.Close()
		return nil
	case reload:
		err = m.Reload()
	case save:
		err = m.Save()
	}

	if m.state != StateLoaded {
		return err
	}

	ids := 0
	if projection.Project(w, RootLabel, m.root, 0, &ids) {
		m.modified = true
	}
	return err
}

// State returns the lifecycle state
func (m *Manager) State() State {
	return m.state
}

// Path returns the path of the last open, empty when closed
func (m *Manager) Path() string {
	return m.path
}

// Root returns the document tree, nil unless loaded
func (m *Manager) Root() *value.Value {
	return m.root
}

// Err returns the error of the last failed open
func (m *Manager) Err() error {
	return m.err
}

// Modified reports whether edits were applied since the last open or save
func (m *Manager) Modified() bool {
	return m.modified
}

// Indent returns the indentation used when saving
func (m *Manager) Indent() int {
	return m.indent
}
