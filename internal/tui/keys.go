package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/cfgedit/internal/color"
	"github.com/studiowebux/cfgedit/internal/errors"
	"github.com/studiowebux/cfgedit/internal/keybinds"
	"github.com/studiowebux/cfgedit/internal/session"
)

// handleKeyPress routes key presses based on current mode
func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	// Global keys (work in all modes)
	if action, ok := m.keybinds.Match(keybinds.ContextGlobal, msg.String()); ok && action == keybinds.ActionQuitForce {
		return tea.Quit
	}

	// Mode-specific handling
	switch m.mode {
	case ModeNormal:
		if msg.Paste {
			return m.handleDrop(string(msg.Runes))
		}
		if m.focusedPanel == focusPreview && m.showPreview {
			return m.handlePreviewKeys(msg)
		}
		return m.handleEditorKeys(msg)
	case ModeEdit:
		return m.handleEditKeys(msg)
	case ModeColor:
		return m.handleColorKeys(msg)
	case ModeColorHex:
		return m.handleColorHexKeys(msg)
	case ModeSearch:
		return m.handleSearchKeys(msg)
	case ModeQuery:
		return m.handleQueryKeys(msg)
	case ModeQueryResult:
		return m.handleQueryResultKeys(msg)
	case ModeOpen:
		return m.handleOpenKeys(msg)
	case ModeHelp:
		return m.handleHelpKeys(msg)
	case ModeConfirmQuit:
		return m.handleConfirmQuitKeys(msg)
	}

	return nil
}

// handleEditorKeys handles keyboard input on the document form
func (m *Model) handleEditorKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok, partial := m.keybinds.MatchMultiKey(keybinds.ContextEditor, msg.String())
	if partial {
		return nil
	}
	if !ok {
		return nil
	}

	pageSize := m.formHeight()

	switch action {
	case keybinds.ActionQuit:
		return m.requestQuit()

	case keybinds.ActionNavigateUp:
		m.moveCursor(-1)
	case keybinds.ActionNavigateDown:
		m.moveCursor(1)
	case keybinds.ActionPageUp:
		m.moveCursor(-pageSize)
	case keybinds.ActionPageDown:
		m.moveCursor(pageSize)
	case keybinds.ActionHalfPageUp:
		m.moveCursor(-pageSize / 2)
	case keybinds.ActionHalfPageDown:
		m.moveCursor(pageSize / 2)
	case keybinds.ActionGoToTop:
		m.moveCursor(-len(m.rows))
	case keybinds.ActionGoToBottom:
		m.moveCursor(len(m.rows))

	case keybinds.ActionActivate:
		return m.activate()
	case keybinds.ActionExpand:
		m.setFold(true)
	case keybinds.ActionCollapse:
		m.collapse()

	case keybinds.ActionSave:
		if m.session.State() != session.StateLoaded {
			return m.setStatus("Nothing to save")
		}
		m.press(session.ButtonSave)
	case keybinds.ActionReload:
		if m.session.Path() == "" {
			return m.setStatus("Nothing to reload")
		}
		m.press(session.ButtonReload)
	case keybinds.ActionCloseDocument:
		if m.session.State() != session.StateLoaded {
			return m.setStatus("Nothing to close")
		}
		m.press(session.ButtonClose)
	case keybinds.ActionOpenFile:
		return m.openPrompt()

	case keybinds.ActionCopyValue:
		return m.copySelected()
	case keybinds.ActionPasteValue:
		return m.pasteSelected()

	case keybinds.ActionTogglePreview:
		m.togglePreview()
	case keybinds.ActionSwitchFocus:
		if m.showPreview {
			m.focusedPanel = focusPreview
		}

	case keybinds.ActionOpenSearch:
		return m.openSearch()
	case keybinds.ActionSearchNext:
		m.nextMatch(1)
	case keybinds.ActionSearchPrevious:
		m.nextMatch(-1)
	case keybinds.ActionSearchClear:
		m.clearSearch()

	case keybinds.ActionOpenQuery:
		return m.openQuery()

	case keybinds.ActionOpenHelp:
		m.updateHelpView()
		m.mode = ModeHelp
	}

	return nil
}

// activate acts on the selected row according to its kind
func (m *Model) activate() tea.Cmd {
	r, ok := m.selectedRow()
	if !ok {
		return nil
	}

	switch r.kind {
	case rowToggle:
		m.commit(r.id, !r.boolVal)
	case rowInt, rowFloat, rowText:
		return m.startEdit(r)
	case rowColor:
		m.openPicker(r)
	case rowGroup:
		m.setFold(!r.open)
	case rowButton:
		m.press(r.label)
	}
	return nil
}

// setFold opens or closes the selected group. The root stays open.
func (m *Model) setFold(open bool) {
	r, ok := m.selectedRow()
	if !ok || r.kind != rowGroup || r.alwaysOpen {
		return
	}
	m.folds[r.id] = open
}

// collapse closes the selected group, or moves to the enclosing group
func (m *Model) collapse() {
	r, ok := m.selectedRow()
	if !ok {
		return
	}
	if r.kind == rowGroup && r.open && !r.alwaysOpen {
		m.folds[r.id] = false
		return
	}
	for i := m.cursor - 1; i >= 0; i-- {
		if m.rows[i].kind == rowGroup && m.rows[i].depth < r.depth {
			m.cursor = i
			m.ensureVisible()
			return
		}
	}
}

// requestQuit quits, asking first when there are unsaved edits
func (m *Model) requestQuit() tea.Cmd {
	if m.session.Modified() {
		m.mode = ModeConfirmQuit
		return nil
	}
	return tea.Quit
}

// handleConfirmQuitKeys handles the unsaved-changes prompt
func (m *Model) handleConfirmQuitKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keybinds.Match(keybinds.ContextConfirm, msg.String())
	if !ok {
		return nil
	}

	switch action {
	case keybinds.ActionConfirm:
		return tea.Quit
	case keybinds.ActionCancel:
		m.mode = ModeNormal
	case keybinds.ActionSaveAndQuit:
		if err := m.session.Save(); err != nil {
			m.mode = ModeNormal
			return m.setError(err)
		}
		return tea.Quit
	}
	return nil
}

// handleDrop opens the first path of a paste delivered to the form
func (m *Model) handleDrop(text string) tea.Cmd {
	paths := ParseDroppedPaths(text)
	if len(paths) == 0 {
		return m.setStatus("Nothing to open in pasted text")
	}
	if len(paths) > 1 {
		m.logger.Debug("multiple paths dropped, opening the first", "count", len(paths))
	}
	path := paths[0]
	return func() tea.Msg {
		return openFileMsg{path: path}
	}
}

// copySelected copies the selected value to the clipboard
func (m *Model) copySelected() tea.Cmd {
	r, ok := m.selectedRow()
	if !ok {
		return nil
	}

	text, ok := copyText(r)
	if !ok {
		return m.setStatus("Nothing to copy")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return m.setError(fmt.Errorf("failed to copy: %w", err))
	}
	return m.setStatus(fmt.Sprintf("Copied %s", r.label))
}

// pasteSelected commits clipboard text into the selected field
func (m *Model) pasteSelected() tea.Cmd {
	r, ok := m.selectedRow()
	if !ok {
		return nil
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return m.setError(fmt.Errorf("failed to paste: %w", err))
	}
	return m.commitText(r, text)
}

// commitText coerces text for the row and queues it as the new value
func (m *Model) commitText(r row, text string) tea.Cmd {
	v, err := coerce(r, text)
	if err != nil {
		return m.setError(err)
	}
	m.commit(r.id, v)
	return m.setStatus(fmt.Sprintf("Updated %s", r.label))
}

// copyText returns the clipboard form of a row
func copyText(r row) (string, bool) {
	switch r.kind {
	case rowToggle, rowInt, rowFloat, rowText:
		return editText(r), true
	case rowColor:
		return color.Hex(r.rgba, r.channels), true
	case rowLabel:
		if r.id != 0 {
			return r.text, true
		}
	}
	return "", false
}

// handlePreviewKeys scrolls the preview pane while it has focus
func (m *Model) handlePreviewKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok, partial := m.keybinds.MatchMultiKey(keybinds.ContextViewer, msg.String())
	if partial {
		return nil
	}
	if !ok {
		return nil
	}

	switch action {
	case keybinds.ActionCloseModal, keybinds.ActionTogglePreview:
		m.togglePreview()
	case keybinds.ActionSwitchFocus:
		m.focusedPanel = focusForm
	default:
		scrollViewport(&m.preview, action)
	}
	return nil
}

// handleHelpKeys handles keyboard input in the help overlay
func (m *Model) handleHelpKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok, partial := m.keybinds.MatchMultiKey(keybinds.ContextHelp, msg.String())
	if partial {
		return nil
	}
	if !ok {
		return nil
	}

	if action == keybinds.ActionCloseModal {
		m.mode = ModeNormal
		return nil
	}
	scrollViewport(&m.helpView, action)
	return nil
}

// inputError builds the error shown when a field rejects text
func inputError(r row, expected, text string, err error) error {
	return errors.NewInputError(fmt.Sprintf("%s expects %s, got %q", r.label, expected, text), err)
}
