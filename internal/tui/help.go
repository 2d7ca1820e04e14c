package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/studiowebux/cfgedit/internal/keybinds"
)

// helpSections lists the contexts shown in the help overlay, in order
var helpSections = []struct {
	context keybinds.Context
	title   string
}{
	{keybinds.ContextEditor, "Form"},
	{keybinds.ContextColor, "Color picker"},
	{keybinds.ContextTextInput, "Text input"},
	{keybinds.ContextSearch, "Search"},
	{keybinds.ContextQuery, "Query"},
	{keybinds.ContextViewer, "Preview and results"},
	{keybinds.ContextConfirm, "Confirmation"},
	{keybinds.ContextGlobal, "Global"},
}

// binding builds a bubbles key binding from the registry
func (m Model) binding(context keybinds.Context, action keybinds.Action) key.Binding {
	keys := m.keybinds.GetBinding(context, action)
	if len(keys) == 0 {
		return key.NewBinding(key.WithDisabled())
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(m.keybinds.GetBindingString(context, action), strings.ToLower(keybinds.GetActionInfo(action).Description)),
	)
}

// bindingHints renders a one-line hint for the given actions
func (m Model) bindingHints(context keybinds.Context, actions ...keybinds.Action) string {
	bindings := make([]key.Binding, 0, len(actions))
	for _, action := range actions {
		bindings = append(bindings, m.binding(context, action))
	}
	h := m.help
	h.Width = m.width - ViewportPaddingHorizontal
	return h.ShortHelpView(bindings)
}

// footerHints returns the hint line for the current mode
func (m Model) footerHints() string {
	switch m.mode {
	case ModeEdit, ModeOpen, ModeColorHex:
		return m.bindingHints(keybinds.ContextTextInput, keybinds.ActionTextSubmit, keybinds.ActionTextCancel, keybinds.ActionTextPaste)
	case ModeSearch:
		return m.bindingHints(keybinds.ContextSearch, keybinds.ActionTextSubmit, keybinds.ActionTextCancel, keybinds.ActionSearchNext, keybinds.ActionSearchPrevious)
	case ModeQuery:
		return m.bindingHints(keybinds.ContextQuery, keybinds.ActionTextSubmit, keybinds.ActionTextCancel)
	case ModeQueryResult, ModeHelp:
		return m.bindingHints(keybinds.ContextViewer, keybinds.ActionCloseModal, keybinds.ActionNavigateDown, keybinds.ActionNavigateUp)
	case ModeConfirmQuit:
		return m.bindingHints(keybinds.ContextConfirm, keybinds.ActionConfirm, keybinds.ActionSaveAndQuit, keybinds.ActionCancel)
	}

	if m.focusedPanel == focusPreview && m.showPreview {
		return m.bindingHints(keybinds.ContextViewer, keybinds.ActionSwitchFocus, keybinds.ActionCloseModal, keybinds.ActionNavigateDown)
	}
	return m.bindingHints(keybinds.ContextEditor,
		keybinds.ActionActivate,
		keybinds.ActionSave,
		keybinds.ActionReload,
		keybinds.ActionOpenSearch,
		keybinds.ActionOpenQuery,
		keybinds.ActionOpenHelp,
		keybinds.ActionQuit,
	)
}

// updateHelpView fills the help overlay with every bound action
func (m *Model) updateHelpView() {
	var sb strings.Builder

	sb.WriteString(styleTitle.Render("cfgedit"))
	if m.version != "" {
		sb.WriteString(styleSubtle.Render(" " + m.version))
	}
	sb.WriteString("\n\n")
	sb.WriteString("Drop a JSON file on the terminal, or press o, to open it.\n")
	sb.WriteString("Arrays named *Color or *Colour with 3 or 4 channels open the color picker.\n")

	for _, section := range helpSections {
		actions := m.keybinds.Actions(section.context)
		if len(actions) == 0 {
			continue
		}

		sb.WriteString("\n")
		sb.WriteString(styleTitle.Render(section.title))
		sb.WriteString("\n")
		for _, action := range actions {
			if action == keybinds.ActionGoToTopPrepare || action == keybinds.ActionNoOp {
				continue
			}
			keys := m.keybinds.GetBindingString(section.context, action)
			sb.WriteString(fmt.Sprintf("  %-22s %s\n", keys, keybinds.GetActionInfo(action).Description))
		}
	}

	m.helpView.SetContent(sb.String())
	m.helpView.GotoTop()
}
