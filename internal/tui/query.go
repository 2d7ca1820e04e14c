package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/cfgedit/internal/errors"
	"github.com/studiowebux/cfgedit/internal/filter"
	"github.com/studiowebux/cfgedit/internal/keybinds"
	"github.com/studiowebux/cfgedit/internal/value"
)

// queryResultMsg carries the outcome of a document query
type queryResultMsg struct {
	expression string
	result     string
	err        error
}

// openQuery opens the query input
func (m *Model) openQuery() tea.Cmd {
	if m.session.Root() == nil {
		return m.setStatus("No document to query")
	}
	m.input = newInput(":", m.lastQuery, m.width-ModalWidthMargin)
	m.mode = ModeQuery
	return m.input.Focus()
}

// handleQueryKeys handles keyboard input while typing a query
func (m *Model) handleQueryKeys(msg tea.KeyMsg) tea.Cmd {
	if !msg.Paste {
		if action, ok := m.keybinds.Match(keybinds.ContextQuery, msg.String()); ok {
			switch action {
			case keybinds.ActionTextCancel:
				m.mode = ModeNormal
				return nil
			case keybinds.ActionTextSubmit:
				m.mode = ModeNormal
				return m.runQuery(m.input.Value())
			case keybinds.ActionTextPaste:
				return m.pasteIntoInput()
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// runQuery evaluates the expression against a snapshot of the document so
// later edits cannot race with a running shell command.
func (m *Model) runQuery(expression string) tea.Cmd {
	root := m.session.Root()
	if root == nil {
		return m.setStatus("No document to query")
	}
	m.lastQuery = expression
	snapshot := root.Clone()
	m.logger.Debug("query started", "expression", expression, "shell", filter.IsShellCommand(expression))

	return func() tea.Msg {
		return evaluateQuery(context.Background(), snapshot, expression)
	}
}

func evaluateQuery(ctx context.Context, doc *value.Value, expression string) queryResultMsg {
	result, err := filter.Query(ctx, doc, expression)
	return queryResultMsg{expression: expression, result: result, err: err}
}

// handleQueryResult shows a finished query
func (m *Model) handleQueryResult(msg queryResultMsg) tea.Cmd {
	if msg.err != nil {
		return m.setError(errors.NewInputError("query failed", msg.err))
	}
	m.queryResult = msg.result
	m.resultView.SetContent(highlightJSON(msg.result, m.settings.Theme))
	m.resultView.GotoTop()
	m.mode = ModeQueryResult
	return nil
}

// handleQueryResultKeys scrolls or closes the query result
func (m *Model) handleQueryResultKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok, partial := m.keybinds.MatchMultiKey(keybinds.ContextViewer, msg.String())
	if partial || !ok {
		return nil
	}

	if action == keybinds.ActionCloseModal {
		m.mode = ModeNormal
		return nil
	}
	scrollViewport(&m.resultView, action)
	return nil
}
