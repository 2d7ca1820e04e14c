package tui

import (
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studiowebux/cfgedit/internal/session"
)

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestNew_InitializesDefaultMode(t *testing.T) {
	m := CreateTestModel(t)

	AssertModelField(t, "mode", m.mode, ModeNormal)
	AssertModelField(t, "focusedPanel", m.focusedPanel, focusForm)
	AssertModelField(t, "showPreview", m.showPreview, false)
	AssertModelField(t, "session state", m.session.State(), session.StateEmpty)
}

func TestEmptyState_ShowsDropPrompt(t *testing.T) {
	m := CreateTestModel(t)

	require.Len(t, m.rows, 1)
	assert.Equal(t, rowLabel, m.rows[0].kind)
	assert.Equal(t, session.DropPrompt, m.rows[0].text)
	assert.Contains(t, m.View(), session.DropPrompt)
}

func TestEmptyState_SaveReportsNothingToSave(t *testing.T) {
	m := CreateTestModel(t)

	sendKeys(m, "s")
	assert.Equal(t, "Nothing to save", m.statusMsg)

	sendKeys(m, "r")
	assert.Equal(t, "Nothing to reload", m.statusMsg)
}

func TestOpenFile_ShowsForm(t *testing.T) {
	m, _ := CreateTestModelWithFile(t, `{"name": "panel", "x": [1, 2, 3]}`)

	assert.Equal(t, session.StateLoaded, m.session.State())
	assert.Equal(t, "Opened config.json", m.statusMsg)
	assert.Equal(t,
		[]string{"Save", "Reload", "Close", "Document", "name", "x", "x[0]", "x[1]", "x[2]"},
		rowLabels(m))
}

func TestOpenFile_MissingFile(t *testing.T) {
	m := CreateTestModel(t)
	m.Update(openFileMsg{path: "/nonexistent/cfgedit/config.json"})

	assert.Equal(t, session.StateParseError, m.session.State())
	assert.Contains(t, m.errorMsg, "not found")
}

func TestToggle_FlipsBool(t *testing.T) {
	m, _ := CreateTestModelWithFile(t, `{"enabled": true}`)

	selectRow(t, m, "enabled")
	sendKeys(m, "space")

	assert.False(t, m.session.Root().Get("enabled").Bool())
	assert.True(t, m.session.Modified())
	r, ok := m.selectedRow()
	require.True(t, ok)
	assert.Equal(t, "enabled", r.label)
	assert.False(t, r.boolVal)
}

func TestEdit_CommitAndSave(t *testing.T) {
	m, path := CreateTestModelWithFile(t, `{"x": [1, 2, 3]}`)

	selectRow(t, m, "x[1]")
	sendKeys(m, "enter")
	require.Equal(t, ModeEdit, m.mode)
	assert.Equal(t, "2", m.input.Value())

	m.input.SetValue("5")
	sendKeys(m, "enter")
	assert.Equal(t, ModeNormal, m.mode)
	assert.Equal(t, int64(5), m.session.Root().Get("x").Index(1).Int())
	assert.True(t, m.session.Modified())

	sendKeys(m, "s")
	assert.Equal(t, "{\n    \"x\": [1, 5, 3]\n}\n", readFile(t, path))
	assert.False(t, m.session.Modified())
	assert.Equal(t, "Saved config.json", m.statusMsg)
}

func TestEdit_ViewShowsCommittedValue(t *testing.T) {
	m, _ := CreateTestModelWithFile(t, `{"count": 2}`)

	selectRow(t, m, "count")
	sendKeys(m, "enter")
	m.input.SetValue("77")
	sendKeys(m, "enter")

	assert.Equal(t, int64(77), m.session.Root().Get("count").Int())
	r, ok := m.selectedRow()
	require.True(t, ok)
	assert.Equal(t, int64(77), r.intVal)
	var line string
	for _, l := range strings.Split(m.View(), "\n") {
		if strings.Contains(l, "count") {
			line = l
			break
		}
	}
	assert.Contains(t, line, "77")
}

func TestEdit_RejectedTextKeepsEditorOpen(t *testing.T) {
	m, _ := CreateTestModelWithFile(t, `{"x": [1, 2, 3]}`)

	selectRow(t, m, "x[1]")
	sendKeys(m, "enter")
	m.input.SetValue("abc")
	sendKeys(m, "enter")

	assert.Equal(t, ModeEdit, m.mode)
	assert.True(t, strings.HasPrefix(m.errorMsg, "Invalid input"), m.errorMsg)
	assert.Equal(t, int64(2), m.session.Root().Get("x").Index(1).Int())
	assert.False(t, m.session.Modified())

	sendKeys(m, "esc")
	assert.Equal(t, ModeNormal, m.mode)
}

func TestEdit_TextFieldTyping(t *testing.T) {
	m, _ := CreateTestModelWithFile(t, `{"name": "ab"}`)

	selectRow(t, m, "name")
	sendKeys(m, "enter")
	typeText(m, "cd")
	sendKeys(m, "enter")

	assert.Equal(t, "abcd", m.session.Root().Get("name").Str())
}

func TestColorPicker_FineStepAndCommit(t *testing.T) {
	m, path := CreateTestModelWithFile(t, `{"bgColor": [0, 128, 255]}`)

	r := selectRow(t, m, "bgColor")
	require.Equal(t, rowColor, r.kind)

	sendKeys(m, "enter")
	require.Equal(t, ModeColor, m.mode)
	sendKeys(m, "l", "enter")
	assert.Equal(t, ModeNormal, m.mode)

	sendKeys(m, "s")
	assert.Equal(t, "{\n    \"bgColor\": [1, 128, 255]\n}\n", readFile(t, path))
}

func TestColorPicker_HexEntry(t *testing.T) {
	m, path := CreateTestModelWithFile(t, `{"bgColor": [0, 128, 255]}`)

	selectRow(t, m, "bgColor")
	sendKeys(m, "enter", "#")
	require.Equal(t, ModeColorHex, m.mode)
	assert.Equal(t, "0080ff", m.input.Value())

	m.input.SetValue("00ff00")
	sendKeys(m, "enter")
	require.Equal(t, ModeColor, m.mode)
	sendKeys(m, "enter")

	sendKeys(m, "s")
	assert.Equal(t, "{\n    \"bgColor\": [0, 255, 0]\n}\n", readFile(t, path))
}

func TestColorPicker_UnchangedHexKeepsUnitChannels(t *testing.T) {
	m, _ := CreateTestModelWithFile(t, `{"tint_color": [0.5, 0.25, 1.0, 1.0]}`)

	selectRow(t, m, "tint_color")
	sendKeys(m, "enter", "#")
	require.Equal(t, ModeColorHex, m.mode)
	assert.Equal(t, "8040ffff", m.input.Value())

	sendKeys(m, "enter")
	require.Equal(t, ModeColor, m.mode)
	sendKeys(m, "enter")

	assert.False(t, m.session.Modified())
	assert.Equal(t, 0.5, m.session.Root().Get("tint_color").Index(0).Float())
	assert.Equal(t, 0.25, m.session.Root().Get("tint_color").Index(1).Float())
}

func TestColorPicker_CancelLeavesDocument(t *testing.T) {
	m, _ := CreateTestModelWithFile(t, `{"tint_color": [0.5, 0.5, 0.5, 1.0]}`)

	selectRow(t, m, "tint_color")
	sendKeys(m, "enter", "L", "L", "esc")

	assert.Equal(t, ModeNormal, m.mode)
	assert.Nil(t, m.picker)
	assert.False(t, m.session.Modified())
	assert.Equal(t, 0.5, m.session.Root().Get("tint_color").Index(0).Float())
}

func TestFold_CollapseAndExpand(t *testing.T) {
	m, _ := CreateTestModelWithFile(t, `{"a": {"b": 1}, "c": 2}`)

	selectRow(t, m, "a")
	sendKeys(m, "h")
	assert.Equal(t, []string{"Save", "Reload", "Close", "Document", "a", "c"}, rowLabels(m))
	r, _ := m.selectedRow()
	assert.Equal(t, "a", r.label)
	assert.Equal(t, 1, r.hidden)

	sendKeys(m, "l")
	assert.Equal(t, []string{"Save", "Reload", "Close", "Document", "a", "b", "c"}, rowLabels(m))
}

func TestFold_CollapseOnFieldMovesToParent(t *testing.T) {
	m, _ := CreateTestModelWithFile(t, `{"a": {"b": 1}}`)

	selectRow(t, m, "b")
	sendKeys(m, "h")

	r, _ := m.selectedRow()
	assert.Equal(t, "a", r.label)
	assert.Contains(t, rowLabels(m), "b")
}

func TestFold_RootStaysOpen(t *testing.T) {
	m, _ := CreateTestModelWithFile(t, `{"a": 1}`)

	selectRow(t, m, "Document")
	sendKeys(m, "enter", "h")

	assert.Contains(t, rowLabels(m), "a")
}

func TestSearch_JumpsToMatch(t *testing.T) {
	m, _ := CreateTestModelWithFile(t, `{"alpha": 1, "beta": 2, "gamma": 3}`)

	sendKeys(m, "/")
	require.Equal(t, ModeSearch, m.mode)
	typeText(m, "gam")
	sendKeys(m, "enter")

	assert.Equal(t, ModeNormal, m.mode)
	r, _ := m.selectedRow()
	assert.Equal(t, "gamma", r.label)
	assert.Len(t, m.searchMatches, 1)

	sendKeys(m, "esc")
	assert.Empty(t, m.searchQuery)
	assert.Empty(t, m.searchMatches)
}

func TestQuit_WithoutEditsQuits(t *testing.T) {
	m, _ := CreateTestModelWithFile(t, `{"on": true}`)

	cmd := m.handleKeyPress(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestQuit_WithEditsAsksFirst(t *testing.T) {
	m, path := CreateTestModelWithFile(t, `{"on": true}`)

	selectRow(t, m, "on")
	sendKeys(m, "space")
	sendKeys(m, "q")
	require.Equal(t, ModeConfirmQuit, m.mode)

	sendKeys(m, "n")
	assert.Equal(t, ModeNormal, m.mode)

	sendKeys(m, "q")
	cmd := m.handleKeyPress(keyMsg("s"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, "{\n    \"on\": false\n}\n", readFile(t, path))
}

func TestQuit_ForceQuitIgnoresEdits(t *testing.T) {
	m, _ := CreateTestModelWithFile(t, `{"on": true}`)

	selectRow(t, m, "on")
	sendKeys(m, "space")

	cmd := m.handleKeyPress(keyMsg("ctrl+c"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestDrop_OpensPastedPath(t *testing.T) {
	_, path := CreateTestModelWithFile(t, `{"a": 1}`)
	m := CreateTestModel(t)

	cmd := m.handleKeyPress(pasteMsg("'" + path + "'\n"))
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.Equal(t, session.StateLoaded, m.session.State())
	assert.Equal(t, path, m.session.Path())
}

func TestDrop_IgnoresNonFileText(t *testing.T) {
	m := CreateTestModel(t)

	cmd := m.handleKeyPress(pasteMsg("https://example.com/a.json"))
	assert.Nil(t, cmd)
	assert.Equal(t, "Nothing to open in pasted text", m.statusMsg)
	assert.Equal(t, session.StateEmpty, m.session.State())
}

func TestParseError_ReloadButtonRetries(t *testing.T) {
	m, path := CreateTestModelWithFile(t, `{"a": `)

	require.Equal(t, session.StateParseError, m.session.State())
	assert.True(t, strings.HasPrefix(m.errorMsg, "Parse error"), m.errorMsg)
	assert.Equal(t, []string{session.ErrorLabel, "", session.ButtonReload}, rowLabels(m))

	require.NoError(t, os.WriteFile(path, []byte(`{"a": 1}`), 0644))
	selectRow(t, m, session.ButtonReload)
	sendKeys(m, "enter")

	assert.Equal(t, session.StateLoaded, m.session.State())
	assert.Equal(t, "Reloaded config.json", m.statusMsg)
	assert.Contains(t, rowLabels(m), "a")
}

func TestReload_DiscardsEdits(t *testing.T) {
	m, _ := CreateTestModelWithFile(t, `{"on": true}`)

	selectRow(t, m, "on")
	sendKeys(m, "space")
	require.True(t, m.session.Modified())

	sendKeys(m, "r")
	assert.False(t, m.session.Modified())
	assert.True(t, m.session.Root().Get("on").Bool())
}

func TestClose_ReturnsToEmptyState(t *testing.T) {
	m, _ := CreateTestModelWithFile(t, `{"on": true}`)

	sendKeys(m, "x")

	assert.Equal(t, session.StateEmpty, m.session.State())
	assert.Equal(t, "Document closed", m.statusMsg)
	require.Len(t, m.rows, 1)
}

func TestQuery_ShowsResult(t *testing.T) {
	m, _ := CreateTestModelWithFile(t, `{"x": [1, 2]}`)

	sendKeys(m, ":")
	require.Equal(t, ModeQuery, m.mode)

	cmd := m.runQuery("x")
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.Equal(t, ModeQueryResult, m.mode)
	assert.Equal(t, "[\n  1,\n  2\n]", m.queryResult)

	sendKeys(m, "esc")
	assert.Equal(t, ModeNormal, m.mode)
}

func TestQuery_ErrorShownInStatus(t *testing.T) {
	m, _ := CreateTestModelWithFile(t, `{"x": [1, 2]}`)

	m.Update(m.runQuery("x[")())

	assert.Equal(t, ModeNormal, m.mode)
	assert.True(t, strings.HasPrefix(m.errorMsg, "Invalid input: query failed"), m.errorMsg)
}

func TestQuery_EmptyStateRefused(t *testing.T) {
	m := CreateTestModel(t)

	sendKeys(m, ":")
	assert.Equal(t, ModeNormal, m.mode)
	assert.Equal(t, "No document to query", m.statusMsg)
}

func TestPreview_ShowsSerializedDocument(t *testing.T) {
	m, _ := CreateTestModelWithFile(t, `{"x": [1, 2]}`)

	sendKeys(m, "P")
	assert.True(t, m.showPreview)
	assert.Contains(t, m.View(), "Output")

	sendKeys(m, "tab")
	assert.Equal(t, focusPreview, m.focusedPanel)
	sendKeys(m, "esc")
	assert.False(t, m.showPreview)
	assert.Equal(t, focusForm, m.focusedPanel)
}

func TestHelp_OpenAndClose(t *testing.T) {
	m := CreateTestModel(t)

	sendKeys(m, "?")
	assert.Equal(t, ModeHelp, m.mode)
	assert.Contains(t, m.View(), "Keyboard Shortcuts")

	sendKeys(m, "esc")
	assert.Equal(t, ModeNormal, m.mode)
}

func TestView_RendersEveryMode(t *testing.T) {
	m, _ := CreateTestModelWithFile(t, `{"name": "x", "bgColor": [1, 2, 3], "n": 1.5}`)
	r := selectRow(t, m, "bgColor")
	m.picker = newColorPicker(r)

	modes := []Mode{
		ModeNormal, ModeEdit, ModeColor, ModeColorHex, ModeSearch,
		ModeQuery, ModeQueryResult, ModeOpen, ModeHelp, ModeConfirmQuit,
	}
	for _, mode := range modes {
		t.Run(mode.String(), func(t *testing.T) {
			m.mode = mode
			assert.NotPanics(t, func() {
				assert.NotEmpty(t, m.View())
			})
		})
	}
}

func TestView_NarrowTerminal(t *testing.T) {
	m, _ := CreateTestModelWithFile(t, `{"a_very_long_field_name_that_needs_truncation": "value"}`)
	m.Update(tea.WindowSizeMsg{Width: 20, Height: 6})

	assert.NotPanics(t, func() {
		_ = m.View()
	})
}

func TestCursor_NavigationClamps(t *testing.T) {
	m, _ := CreateTestModelWithFile(t, `{"a": 1, "b": 2}`)

	sendKeys(m, "G")
	r, _ := m.selectedRow()
	assert.Equal(t, "b", r.label)

	sendKeys(m, "j")
	r, _ = m.selectedRow()
	assert.Equal(t, "b", r.label)

	sendKeys(m, "g", "g")
	assert.Equal(t, 0, m.cursor)
}
