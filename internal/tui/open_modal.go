package tui

import (
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/cfgedit/internal/config"
	"github.com/studiowebux/cfgedit/internal/keybinds"
)

// openPrompt asks for a path to open, starting from the current file's directory
func (m *Model) openPrompt() tea.Cmd {
	start := ""
	if path := m.session.Path(); path != "" {
		start = filepath.Dir(path) + string(filepath.Separator)
	}
	m.input = newInput("open: ", start, m.width-ModalWidthMargin)
	m.mode = ModeOpen
	return m.input.Focus()
}

// handleOpenKeys handles keyboard input in the open prompt
func (m *Model) handleOpenKeys(msg tea.KeyMsg) tea.Cmd {
	if !msg.Paste {
		if action, ok := m.keybinds.Match(keybinds.ContextTextInput, msg.String()); ok {
			switch action {
			case keybinds.ActionTextCancel:
				m.mode = ModeNormal
				return nil

			case keybinds.ActionTextSubmit:
				path := strings.TrimSpace(m.input.Value())
				if path == "" {
					return m.setStatus("Path cannot be empty")
				}
				expanded, err := config.ExpandHome(path)
				if err != nil {
					return m.setError(err)
				}
				m.mode = ModeNormal
				return func() tea.Msg {
					return openFileMsg{path: expanded}
				}

			case keybinds.ActionTextPaste:
				return m.pasteIntoInput()
			}
		}
	}

	// A dropped file replaces whatever was typed
	if msg.Paste {
		if paths := ParseDroppedPaths(string(msg.Runes)); len(paths) > 0 {
			m.input.SetValue(paths[0])
			m.input.CursorEnd()
			return nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}
