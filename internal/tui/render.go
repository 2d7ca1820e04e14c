package tui

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/studiowebux/cfgedit/internal/color"
	"github.com/studiowebux/cfgedit/internal/keybinds"
	"github.com/studiowebux/cfgedit/internal/session"
)

// Adaptive color definitions for light/dark terminal support
var (
	colorGreen  = lipgloss.AdaptiveColor{Light: "#006400", Dark: "#00ff00"} // Dark green / Bright green
	colorRed    = lipgloss.AdaptiveColor{Light: "#8b0000", Dark: "#ff0000"} // Dark red / Bright red
	colorYellow = lipgloss.AdaptiveColor{Light: "#b8860b", Dark: "#ffff00"} // Dark goldenrod / Yellow
	colorBlue   = lipgloss.AdaptiveColor{Light: "#00008b", Dark: "#0000ff"} // Dark blue / Blue
	colorGray   = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"} // Dark gray / Light gray
	colorCyan   = lipgloss.AdaptiveColor{Light: "#008b8b", Dark: "#00ffff"} // Dark cyan / Cyan
)

// Style definitions
var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan)

	styleTitleFocused = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorGreen)

	styleTitleUnfocused = lipgloss.NewStyle().
				Foreground(colorGray)

	styleSelected = lipgloss.NewStyle().
			Background(lipgloss.AdaptiveColor{Light: "#d3d3d3", Dark: "#3a3a3a"}).
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"})

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorGreen)

	styleError = lipgloss.NewStyle().
			Foreground(colorRed)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorYellow)

	styleSubtle = lipgloss.NewStyle().
			Foreground(colorGray)

	styleButton = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan)
)

// View renders the current mode
func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	switch m.mode {
	case ModeColor, ModeColorHex:
		return m.renderColorPicker()
	case ModeHelp:
		return m.renderHelp()
	case ModeQueryResult:
		return m.renderQueryResult()
	case ModeConfirmQuit:
		return m.renderConfirmQuit()
	}

	return m.renderMain()
}

// renderMain renders the form, the optional preview and the status bar
func (m Model) renderMain() string {
	height := m.height - StatusBarLines
	cfg := SplitPaneConfig{
		Width:          m.width,
		Height:         height,
		IsSplitView:    m.showPreview && m.width >= PreviewMinWidth,
		LeftTitle:      m.formTitle(),
		LeftIsFocused:  m.focusedPanel == focusForm || !m.showPreview,
		RightTitle:     "Output",
		RightContent:   m.preview.View(),
		RightIsFocused: m.focusedPanel == focusPreview,
		LeftWidthRatio: FormWidthRatio,
	}

	// Narrow terminals show the preview in place of the form while it has focus
	if m.showPreview && !cfg.IsSplitView && m.focusedPanel == focusPreview {
		cfg.LeftTitle = "Output"
		cfg.LeftContent = m.preview.View()
	} else {
		leftWidth, _ := cfg.splitWidths()
		cfg.LeftContent = m.renderForm(leftWidth-ViewportBorderWidth, m.formHeight())
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		renderSplitPanes(cfg),
		m.renderStatusBar(),
		m.renderHintBar(),
	)
}

// formTitle shows the file name and an unsaved marker
func (m Model) formTitle() string {
	switch m.session.State() {
	case session.StateEmpty:
		return "cfgedit"
	case session.StateParseError:
		return filepath.Base(m.session.Path()) + " (error)"
	}
	title := filepath.Base(m.session.Path())
	if m.session.Modified() {
		title += " [+]"
	}
	return title
}

// formHeight is the number of rows visible in the form pane
func (m Model) formHeight() int {
	h := m.height - MainViewHeightOffset
	if h < 1 {
		return 1
	}
	return h
}

// renderForm renders the visible rows
func (m Model) renderForm(width, height int) string {
	if len(m.rows) == 0 {
		return ""
	}

	end := m.offset + height
	if end > len(m.rows) {
		end = len(m.rows)
	}

	labelWidth := m.labelWidth()
	lines := make([]string, 0, end-m.offset)
	for i := m.offset; i < end; i++ {
		line := renderRow(m.rows[i], width, labelWidth)
		switch {
		case i == m.cursor && m.focusedPanel != focusPreview:
			line = styleSelected.Render(padRight(line, width))
		case m.isMatch(i):
			line = styleWarning.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// labelWidth returns the column width used to align field values
func (m Model) labelWidth() int {
	w := MinLabelWidth
	for _, r := range m.rows {
		if r.kind == rowGroup || r.kind == rowButton || r.id == 0 {
			continue
		}
		if lw := runewidth.StringWidth(r.label) + r.depth*IndentWidth; lw > w {
			w = lw
		}
	}
	if w > MaxLabelWidth {
		w = MaxLabelWidth
	}
	return w
}

// renderRow renders one row as plain text, except for color swatches
func renderRow(r row, width, labelWidth int) string {
	indent := strings.Repeat(" ", r.depth*IndentWidth)

	switch r.kind {
	case rowButton:
		return styleButton.Render("[ " + r.label + " ]")

	case rowGroup:
		marker := "▾"
		if !r.open {
			marker = "▸"
		}
		line := indent + marker + " " + r.label
		if !r.open && r.hidden > 0 {
			line += styleSubtle.Render(fmt.Sprintf(" (%d hidden)", r.hidden))
		}
		return truncate(line, width)

	case rowLabel:
		if r.id == 0 {
			if r.label == session.ErrorLabel {
				return styleError.Render(truncate(r.text, width))
			}
			return styleSubtle.Render(truncate(r.text, width))
		}
	}

	prefix := padRight(truncate(indent+r.label, labelWidth), labelWidth) + "  "
	avail := width - runewidth.StringWidth(prefix)
	if avail < 1 {
		avail = 1
	}

	switch r.kind {
	case rowLabel:
		return prefix + styleSubtle.Render(truncate(r.text, avail))
	case rowToggle:
		if r.boolVal {
			return prefix + "[x]"
		}
		return prefix + "[ ]"
	case rowInt, rowFloat:
		return prefix + truncate(editText(r), avail)
	case rowText:
		return prefix + truncate(strconv.Quote(r.strVal), avail)
	case rowColor:
		return prefix + swatch(r.rgba, SwatchWidth) + " " + truncate(color.Hex(r.rgba, r.channels), avail-SwatchWidth-1)
	}
	return prefix
}

// truncate shortens s to width cells
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// padRight pads s with spaces to width cells
func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// renderStatusBar renders the input line or the last message
func (m Model) renderStatusBar() string {
	switch m.mode {
	case ModeEdit, ModeSearch, ModeQuery, ModeOpen:
		line := m.input.View()
		if m.errorMsg != "" {
			line += "  " + styleError.Render(m.errorMsg)
		}
		return line
	}

	// Left side - state
	left := m.session.State().String()
	if path := m.session.Path(); path != "" {
		left = path
	}
	if m.session.Modified() {
		left += " [modified]"
	}

	// Right side - messages
	right := ""
	if len(m.searchMatches) > 0 {
		right = styleWarning.Render(fmt.Sprintf("Search: %d of %d | ", m.searchIndex+1, len(m.searchMatches)))
	}
	if m.errorMsg != "" {
		right += styleError.Render(m.errorMsg)
	} else if m.statusMsg != "" {
		right += styleSuccess.Render(m.statusMsg)
	}

	left = truncate(left, m.width-lipgloss.Width(right)-1)

	// Center spacing
	spacing := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if spacing < 1 {
		spacing = 1
	}

	return styleSubtle.Render(left) + strings.Repeat(" ", spacing) + right
}

// renderHintBar renders the key hints for the current mode
func (m Model) renderHintBar() string {
	return m.footerHints()
}

// renderHelp renders the help overlay
func (m Model) renderHelp() string {
	title := styleTitle.Render("Keyboard Shortcuts")
	footer := m.bindingHints(keybinds.ContextHelp, keybinds.ActionNavigateDown, keybinds.ActionNavigateUp, keybinds.ActionCloseModal)

	// Footer is outside the viewport so it stays visible
	fullContent := title + "\n\n" + m.helpView.View() + "\n\n" + styleSubtle.Render(footer)

	helpView := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBlue).
		Width(m.width - ModalWidthMarginNarrow).
		Height(m.height - ModalHeightMarginMed).
		Padding(1, 2).
		Render(fullContent)

	// Center the help box
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		helpView,
	)
}

// renderQueryResult renders the result of the last query
func (m Model) renderQueryResult() string {
	footer := m.bindingHints(keybinds.ContextViewer, keybinds.ActionNavigateDown, keybinds.ActionNavigateUp, keybinds.ActionCloseModal)
	return renderModal("Query: "+m.lastQuery, m.resultView.View(), footer, m.width, m.height)
}

// renderConfirmQuit renders the unsaved-changes prompt
func (m Model) renderConfirmQuit() string {
	body := fmt.Sprintf("%s has unsaved changes.\n\n", filepath.Base(m.session.Path()))
	body += fmt.Sprintf("%s: quit without saving\n", m.keybinds.GetBindingString(keybinds.ContextConfirm, keybinds.ActionConfirm))
	body += fmt.Sprintf("%s: save and quit\n", m.keybinds.GetBindingString(keybinds.ContextConfirm, keybinds.ActionSaveAndQuit))
	body += fmt.Sprintf("%s: keep editing", m.keybinds.GetBindingString(keybinds.ContextConfirm, keybinds.ActionCancel))
	return renderModal("Quit", body, "", m.width, m.height)
}

// updateViewport sizes the viewports to the terminal
func (m *Model) updateViewport() {
	// MUST match width calculations in renderMain
	previewWidth := m.width
	if m.width >= PreviewMinWidth {
		previewWidth = m.width - int(float64(m.width)*FormWidthRatio)
	}
	m.preview.Width = atLeastOne(previewWidth - ViewportBorderWidth)
	m.preview.Height = m.formHeight()

	modalWidth := m.width - ModalWidthMarginNarrow
	if modalWidth < ModalMinWidth {
		modalWidth = ModalMinWidth
	}
	m.resultView.Width = atLeastOne(modalWidth - ViewportPaddingHorizontal)
	m.resultView.Height = atLeastOne(m.height - ModalOverheadLines - ModalHeightMarginMed)

	m.helpView.Width = atLeastOne(m.width - ModalWidthMarginNarrow - ViewportPaddingHorizontal)
	m.helpView.Height = atLeastOne(m.height - ModalOverheadLines - ModalHeightMarginMed)

	m.help.Width = m.width
	m.ensureVisible()
}

func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
