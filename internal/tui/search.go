package tui

import (
	"fmt"
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"
	"github.com/studiowebux/cfgedit/internal/keybinds"
)

// openSearch opens the search input over the form
func (m *Model) openSearch() tea.Cmd {
	m.input = newInput("/", m.searchQuery, m.width-ModalWidthMargin)
	m.mode = ModeSearch
	return m.input.Focus()
}

// handleSearchKeys handles keyboard input while typing a search
func (m *Model) handleSearchKeys(msg tea.KeyMsg) tea.Cmd {
	if !msg.Paste {
		if action, ok := m.keybinds.Match(keybinds.ContextSearch, msg.String()); ok {
			switch action {
			case keybinds.ActionTextCancel:
				m.clearSearch()
				m.mode = ModeNormal
				return nil
			case keybinds.ActionTextSubmit:
				m.mode = ModeNormal
				if m.searchQuery != "" && len(m.searchMatches) == 0 {
					return m.setStatus(fmt.Sprintf("No match for %q", m.searchQuery))
				}
				return nil
			case keybinds.ActionSearchNext:
				m.nextMatch(1)
				return nil
			case keybinds.ActionSearchPrevious:
				m.nextMatch(-1)
				return nil
			case keybinds.ActionTextPaste:
				cmd := m.pasteIntoInput()
				m.searchQuery = m.input.Value()
				m.updateSearchMatches(true)
				return cmd
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != m.searchQuery {
		m.searchQuery = m.input.Value()
		m.updateSearchMatches(true)
	}
	return cmd
}

// updateSearchMatches fuzzy-matches the query against row paths. Matches
// are kept in row order so n and N walk the form top to bottom.
func (m *Model) updateSearchMatches(jump bool) {
	m.searchMatches = nil
	if m.searchQuery == "" {
		m.searchIndex = 0
		return
	}

	paths := make([]string, len(m.rows))
	for i, r := range m.rows {
		paths[i] = r.path
	}

	for _, match := range fuzzy.Find(m.searchQuery, paths) {
		m.searchMatches = append(m.searchMatches, match.Index)
	}
	sort.Ints(m.searchMatches)

	if m.searchIndex >= len(m.searchMatches) {
		m.searchIndex = 0
	}
	if jump && len(m.searchMatches) > 0 {
		m.searchIndex = m.firstMatchFrom(m.cursor)
		m.cursor = m.searchMatches[m.searchIndex]
		m.ensureVisible()
	}
}

// firstMatchFrom returns the index of the first match at or after row i
func (m *Model) firstMatchFrom(i int) int {
	for n, idx := range m.searchMatches {
		if idx >= i {
			return n
		}
	}
	return 0
}

// nextMatch moves the cursor to the next (delta 1) or previous (delta -1) match
func (m *Model) nextMatch(delta int) {
	if len(m.searchMatches) == 0 {
		return
	}
	n := len(m.searchMatches)
	m.searchIndex = ((m.searchIndex+delta)%n + n) % n
	m.cursor = m.searchMatches[m.searchIndex]
	m.ensureVisible()
}

// clearSearch forgets the query and its matches
func (m *Model) clearSearch() {
	m.searchQuery = ""
	m.searchMatches = nil
	m.searchIndex = 0
}

// isMatch reports whether row i matches the active search
func (m Model) isMatch(i int) bool {
	idx := sort.SearchInts(m.searchMatches, i)
	return idx < len(m.searchMatches) && m.searchMatches[idx] == i
}
