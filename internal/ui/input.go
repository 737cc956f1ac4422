package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// searchMsg applies a debounced query. Only the latest generation runs.
type searchMsg struct {
	generation int
	query      string
}

func (m *Model) focusSearch() tea.Cmd {
	if m.tree == nil || m.searching {
		return nil
	}
	m.searching = true
	return m.search.Focus()
}

func (m *Model) clearSearch() tea.Cmd {
	if m.tree == nil {
		return nil
	}
	m.searching = false
	m.search.Blur()
	if m.search.Value() == "" && m.tree.Query() == "" {
		return nil
	}
	m.search.SetValue("")
	m.searchGen++
	return m.applySearch("")
}

// handleSearchKey routes a key press while the search box has focus. Arrow
// and paging keys still move the cursor.
func (m *Model) handleSearchKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return true, m.clearSearch()
	case tea.KeyEnter:
		m.searching = false
		m.search.Blur()
		return true, nil
	case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown:
		return false, nil
	}
	if key.Matches(msg, m.keys.Reset) {
		return false, nil
	}
	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	after := m.search.Value()
	if after == before {
		return true, cmd
	}
	m.searchGen++
	throttle := m.tree.Params().Throttle
	if throttle <= 0 {
		return true, tea.Batch(cmd, m.applySearch(after))
	}
	gen := m.searchGen
	return true, tea.Batch(cmd, tea.Tick(throttle, func(time.Time) tea.Msg {
		return searchMsg{generation: gen, query: after}
	}))
}

func (m *Model) handleSearchMsg(msg tea.Msg) tea.Cmd {
	search, ok := msg.(searchMsg)
	if !ok || search.generation != m.searchGen {
		return nil
	}
	return m.applySearch(search.query)
}

func (m *Model) applySearch(query string) tea.Cmd {
	if m.tree == nil {
		return nil
	}
	m.tree.Search(query)
	return m.loadItems()
}
