package tui

import (
	"math"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/cfgedit/internal/color"
	"github.com/studiowebux/cfgedit/internal/errors"
	"github.com/studiowebux/cfgedit/internal/keybinds"
	"github.com/studiowebux/cfgedit/internal/value"
)

// newInput creates a focused single-line text input
func newInput(prompt, text string, width int) textinput.Model {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.SetValue(text)
	ti.CursorEnd()
	if width > 0 {
		ti.Width = width
	}
	return ti
}

// startEdit opens the inline editor on a field row
func (m *Model) startEdit(r row) tea.Cmd {
	m.editRow = r
	m.input = newInput(r.label+": ", editText(r), m.width-ModalWidthMargin)
	m.mode = ModeEdit
	return m.input.Focus()
}

// handleEditKeys handles keyboard input in the inline editor
func (m *Model) handleEditKeys(msg tea.KeyMsg) tea.Cmd {
	if !msg.Paste {
		if action, ok := m.keybinds.Match(keybinds.ContextTextInput, msg.String()); ok {
			switch action {
			case keybinds.ActionTextCancel:
				m.mode = ModeNormal
				m.input.Blur()
				return nil

			case keybinds.ActionTextSubmit:
				v, err := coerce(m.editRow, m.input.Value())
				if err != nil {
					// Keep the editor open so the text can be fixed
					return m.setError(err)
				}
				m.mode = ModeNormal
				m.input.Blur()
				m.commit(m.editRow.id, v)
				return m.setStatus("Updated " + m.editRow.label)

			case keybinds.ActionTextPaste:
				return m.pasteIntoInput()
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// pasteIntoInput inserts clipboard text at the cursor of the active input
func (m *Model) pasteIntoInput() tea.Cmd {
	text, err := clipboard.ReadAll()
	if err != nil {
		return m.setError(err)
	}
	insertAtCursor(&m.input, text)
	return nil
}

// insertAtCursor inserts text at the input cursor. Newlines are dropped
// since inputs are single line.
func insertAtCursor(ti *textinput.Model, text string) {
	text = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(text)
	runes := []rune(ti.Value())
	pos := ti.Position()
	if pos > len(runes) {
		pos = len(runes)
	}
	inserted := []rune(text)
	out := make([]rune, 0, len(runes)+len(inserted))
	out = append(out, runes[:pos]...)
	out = append(out, inserted...)
	out = append(out, runes[pos:]...)
	ti.SetValue(string(out))
	ti.SetCursor(pos + len(inserted))
}

// editText returns the text the editor starts with for a row
func editText(r row) string {
	switch r.kind {
	case rowToggle:
		return strconv.FormatBool(r.boolVal)
	case rowInt:
		return strconv.FormatInt(r.intVal, 10)
	case rowFloat:
		s, err := value.FormatFloat(r.floatVal)
		if err != nil {
			return strconv.FormatFloat(r.floatVal, 'g', -1, 64)
		}
		return s
	case rowText:
		return r.strVal
	case rowColor:
		return color.Hex(r.rgba, r.channels)
	}
	return ""
}

// coerce converts text into the value type of the row's control. This is
// the primitive control's input check: the document is never touched when
// it fails.
func coerce(r row, text string) (interface{}, error) {
	trimmed := strings.TrimSpace(text)

	switch r.kind {
	case rowToggle:
		b, err := strconv.ParseBool(trimmed)
		if err != nil {
			return nil, inputError(r, "true or false", text, err)
		}
		return b, nil

	case rowInt:
		i, err := strconv.ParseInt(trimmed, 10, 64)
		if err != nil {
			return nil, inputError(r, "an integer", text, errors.ErrNotANumber)
		}
		return i, nil

	case rowFloat:
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return nil, inputError(r, "a number", text, errors.ErrNotANumber)
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, inputError(r, "a finite number", text, errors.ErrNonFinite)
		}
		return f, nil

	case rowText:
		return text, nil

	case rowColor:
		rgba, channels, err := color.ParseHex(trimmed)
		if err != nil {
			return nil, inputError(r, "a hex color", text, err)
		}
		if channels < 4 {
			rgba[3] = r.rgba[3]
		}
		// Unchanged hex text keeps the exact channels
		if color.Hex(rgba, r.channels) == color.Hex(r.rgba, r.channels) {
			return r.rgba, nil
		}
		return rgba, nil
	}

	return nil, errors.NewInputError(r.label+" is not editable", nil)
}

// scrollViewport applies a navigation action to a viewport
func scrollViewport(vp *viewport.Model, action keybinds.Action) {
	switch action {
	case keybinds.ActionNavigateUp:
		vp.LineUp(1)
	case keybinds.ActionNavigateDown:
		vp.LineDown(1)
	case keybinds.ActionPageUp:
		vp.ViewUp()
	case keybinds.ActionPageDown:
		vp.ViewDown()
	case keybinds.ActionHalfPageUp:
		vp.HalfViewUp()
	case keybinds.ActionHalfPageDown:
		vp.HalfViewDown()
	case keybinds.ActionGoToTop:
		vp.GotoTop()
	case keybinds.ActionGoToBottom:
		vp.GotoBottom()
	}
}
