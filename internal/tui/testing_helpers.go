package tui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/cfgedit/internal/config"
	"github.com/studiowebux/cfgedit/internal/session"
)

// Terminal size used by test models
const (
	testWidth  = 100
	testHeight = 30
)

// CreateTestModel creates a Model with an empty session and default keybinds
func CreateTestModel(t *testing.T) *Model {
	t.Helper()

	settings := config.DefaultSettings()
	settings.MessageTimeout = 0

	m := New(Options{
		Session:  session.NewManager(nil, settings.Indent),
		Settings: settings,
		Version:  "test-version",
	})
	m.Update(tea.WindowSizeMsg{Width: testWidth, Height: testHeight})
	return &m
}

// CreateTestModelWithFile writes content to a temporary JSON file, opens it
// and returns the model with the file path
func CreateTestModelWithFile(t *testing.T, content string) (*Model, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	m := CreateTestModel(t)
	m.Update(openFileMsg{path: path})
	return m, path
}

// keyMsg builds the key message a terminal sends for a key name
func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// pasteMsg builds the message a terminal sends for bracketed paste
func pasteMsg(text string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text), Paste: true}
}

// sendKeys feeds key presses through Update
func sendKeys(m *Model, keys ...string) {
	for _, k := range keys {
		m.Update(keyMsg(k))
	}
}

// typeText feeds each rune of text as a separate key press
func typeText(m *Model, text string) {
	for _, r := range text {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// selectRow moves the cursor to the first row with the given label
func selectRow(t *testing.T, m *Model, label string) row {
	t.Helper()
	for i, r := range m.rows {
		if r.label == label {
			m.cursor = i
			return r
		}
	}
	t.Fatalf("no row labeled %q in %v", label, rowLabels(m))
	return row{}
}

// rowLabels lists the labels of the recorded rows
func rowLabels(m *Model) []string {
	labels := make([]string, len(m.rows))
	for i, r := range m.rows {
		labels[i] = r.label
	}
	return labels
}

// AssertModelField checks a single model field with a readable message
func AssertModelField(t *testing.T, fieldName string, got, want interface{}) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %v, want %v", fieldName, got, want)
	}
}
