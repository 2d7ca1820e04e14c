package tui

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/cfgedit/internal/config"
	"github.com/studiowebux/cfgedit/internal/errors"
	"github.com/studiowebux/cfgedit/internal/keybinds"
	"github.com/studiowebux/cfgedit/internal/session"
)

// Mode represents the current TUI mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeEdit
	ModeColor
	ModeColorHex
	ModeSearch
	ModeQuery
	ModeQueryResult
	ModeOpen
	ModeHelp
	ModeConfirmQuit
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeEdit:
		return "edit"
	case ModeColor:
		return "color"
	case ModeColorHex:
		return "color_hex"
	case ModeSearch:
		return "search"
	case ModeQuery:
		return "query"
	case ModeQueryResult:
		return "query_result"
	case ModeOpen:
		return "open"
	case ModeHelp:
		return "help"
	case ModeConfirmQuit:
		return "confirm_quit"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Focus panes
const (
	focusForm    = "form"
	focusPreview = "preview"
)

// openFileMsg asks the model to open a path at the start of the next frame
type openFileMsg struct {
	path string
}

// clearStatusMsg clears the status line if nothing newer was shown
type clearStatusMsg struct {
	seq int
}

// Model represents the TUI state
type Model struct {
	// Core state
	session  *session.Manager
	keybinds *keybinds.Registry
	settings *config.Settings
	logger   *slog.Logger
	version  string
	initial  string
	mode     Mode

	// Form rows recorded by the last frame
	rows   []row
	cursor int
	offset int

	// Frame inputs
	folds   map[int]bool
	pending map[int]interface{}
	pressed map[string]bool

	// Inline editor and prompts
	input   textinput.Model
	editRow row
	picker  *colorPicker

	// Search state
	searchQuery   string
	searchMatches []int
	searchIndex   int

	// Query state
	lastQuery   string
	queryResult string
	resultView  viewport.Model

	// Preview and help
	showPreview  bool
	focusedPanel string
	preview      viewport.Model
	helpView     viewport.Model
	help         help.Model

	// UI state
	width     int
	height    int
	statusMsg string
	errorMsg  string
	statusSeq int
}

// Init opens the path given on the command line, if any
func (m *Model) Init() tea.Cmd {
	if m.initial == "" {
		return nil
	}
	path := m.initial
	return func() tea.Msg {
		return openFileMsg{path: path}
	}
}

// Update handles messages and renders a frame after each one
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd = m.handleKeyPress(msg)

	// Mouse events are captured so the terminal does not scroll
	case tea.MouseMsg:

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateViewport()

	case openFileMsg:
		cmd = m.openFile(msg.path)

	case queryResultMsg:
		cmd = m.handleQueryResult(msg)

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.statusMsg = ""
			m.errorMsg = ""
		}
	}

	return m, tea.Batch(cmd, m.runFrame())
}

// runFrame renders the document once, handing the pending outcomes to the
// matching controls, and keeps the cursor on the same row when it survives.
func (m *Model) runFrame() tea.Cmd {
	selected := ""
	if r, ok := m.selectedRow(); ok {
		selected = r.key()
	}

	pressed := m.pressed
	before := m.session.State()
	f := newFrame(m.folds, m.pending, pressed)
	m.pending = map[int]interface{}{}
	m.pressed = map[string]bool{}

	err := m.session.RenderFrame(f)
	m.rows = f.rows

	// A button that changed the state ended the frame early. Record the
	// new state's rows with nothing pending so the form is not stale.
	if m.session.State() != before {
		redraw := newFrame(m.folds, nil, nil)
		if rerr := m.session.RenderFrame(redraw); rerr != nil && err == nil {
			err = rerr
		}
		m.rows = redraw.rows
	}
	m.restoreCursor(selected)

	if m.searchQuery != "" {
		m.updateSearchMatches(false)
	}
	if m.showPreview {
		m.updatePreview()
	}

	if err != nil {
		return m.setError(err)
	}

	path := filepath.Base(m.session.Path())
	switch {
	case pressed[session.ButtonClose]:
		return m.setStatus("Document closed")
	case pressed[session.ButtonReload]:
		if m.session.State() == session.StateLoaded {
			return m.setStatus(fmt.Sprintf("Reloaded %s", path))
		}
	case pressed[session.ButtonSave]:
		return m.setStatus(fmt.Sprintf("Saved %s", path))
	}
	return nil
}

// openFile replaces the document with the file at path
func (m *Model) openFile(path string) tea.Cmd {
	if path == "" {
		return nil
	}
	if m.session.Modified() {
		m.logger.Info("unsaved edits discarded by open", "path", m.session.Path())
	}

	m.folds = map[int]bool{}
	m.cursor = 0
	m.offset = 0
	m.clearSearch()

	if err := m.session.Open(path); err != nil {
		return m.setError(err)
	}
	return m.setStatus(fmt.Sprintf("Opened %s", filepath.Base(path)))
}

// press queues a button press for the next frame
func (m *Model) press(label string) {
	m.pressed[label] = true
}

// commit queues a new value for the control with the given identity
func (m *Model) commit(id int, v interface{}) {
	if id == 0 {
		return
	}
	m.pending[id] = v
}

// setStatus shows an informational message
func (m *Model) setStatus(msg string) tea.Cmd {
	m.statusMsg = msg
	m.errorMsg = ""
	return m.scheduleClear()
}

// setError shows an error in the status bar
func (m *Model) setError(err error) tea.Cmd {
	m.errorMsg = errors.UserFriendly(err)
	m.statusMsg = ""
	m.logger.Debug("status error", "error", err)
	return m.scheduleClear()
}

func (m *Model) scheduleClear() tea.Cmd {
	m.statusSeq++
	if m.settings.MessageTimeout <= 0 {
		return nil
	}
	seq := m.statusSeq
	return tea.Tick(m.settings.MessageTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

// selectedRow returns the row under the cursor
func (m *Model) selectedRow() (row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return row{}, false
	}
	return m.rows[m.cursor], true
}

// restoreCursor puts the cursor back on the row with key, or clamps it
func (m *Model) restoreCursor(key string) {
	if key != "" {
		for i, r := range m.rows {
			if r.key() == key {
				m.cursor = i
				m.ensureVisible()
				return
			}
		}
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.ensureVisible()
}

// ensureVisible scrolls the form so the cursor row is shown
func (m *Model) ensureVisible() {
	height := m.formHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+height {
		m.offset = m.cursor - height + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// moveCursor moves the selection by delta rows
func (m *Model) moveCursor(delta int) {
	if len(m.rows) == 0 {
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	m.ensureVisible()
}

// Mode returns the current mode
func (m *Model) Mode() Mode {
	return m.mode
}
