package tui

import (
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
)

// togglePreview shows or hides the output preview
func (m *Model) togglePreview() {
	m.showPreview = !m.showPreview
	if m.showPreview {
		m.updateViewport()
		m.updatePreview()
		return
	}
	m.focusedPanel = focusForm
}

// updatePreview refreshes the preview with the bytes Save would write
func (m *Model) updatePreview() {
	data, err := m.session.Serialized()
	if err != nil {
		m.preview.SetContent(styleError.Render(err.Error()))
		return
	}
	if data == nil {
		m.preview.SetContent(styleSubtle.Render("No document"))
		return
	}
	m.preview.SetContent(highlightJSON(string(data), m.settings.Theme))
}

// highlightJSON colors JSON for the terminal. The source is returned as is
// when highlighting fails.
func highlightJSON(source, theme string) string {
	if theme == "" {
		theme = "monokai"
	}
	var sb strings.Builder
	if err := quick.Highlight(&sb, source, "json", "terminal256", theme); err != nil {
		return source
	}
	return sb.String()
}
