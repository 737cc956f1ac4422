package ui

import (
	"github.com/atomicstack/uvlist/internal/logging/events"
	"github.com/atomicstack/uvlist/internal/ui/command"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if keyMsg.Type == tea.KeyCtrlC {
		return tea.Quit
	}
	if m.searching {
		if handled, cmd := m.handleSearchKey(keyMsg); handled {
			return cmd
		}
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return tea.Quit
	case key.Matches(keyMsg, m.keys.Reset):
		return m.Reset()
	case key.Matches(keyMsg, m.keys.Search):
		return m.focusSearch()
	case key.Matches(keyMsg, m.keys.ClearSearch):
		return m.clearSearch()
	}
	return m.handleNavigationKey(keyMsg)
}

func (m *Model) handleNavigationKey(msg tea.KeyMsg) tea.Cmd {
	page := m.cursorPage()
	var move func() bool
	switch {
	case key.Matches(msg, m.keys.Up):
		move = func() bool { return m.cursor.MoveBy(m.engine, -1) }
	case key.Matches(msg, m.keys.Down):
		move = func() bool { return m.cursor.MoveBy(m.engine, 1) }
	case key.Matches(msg, m.keys.PageUp):
		move = func() bool { return m.cursor.MovePageUp(m.engine, page) }
	case key.Matches(msg, m.keys.PageDown):
		move = func() bool { return m.cursor.MovePageDown(m.engine, page) }
	case key.Matches(msg, m.keys.HalfUp):
		move = func() bool { return m.cursor.MovePageUp(m.engine, max(1, page/2)) }
	case key.Matches(msg, m.keys.HalfDown):
		move = func() bool { return m.cursor.MovePageDown(m.engine, max(1, page/2)) }
	case key.Matches(msg, m.keys.Home):
		move = func() bool { return m.cursor.MoveHome(m.engine) }
	case key.Matches(msg, m.keys.End):
		move = func() bool { return m.cursor.MoveEnd(m.engine) }
	case key.Matches(msg, m.keys.Select):
		return m.selectCursor()
	case key.Matches(msg, m.keys.Toggle):
		return m.toggleCursor()
	case key.Matches(msg, m.keys.Expand):
		return m.expandCursor()
	case key.Matches(msg, m.keys.Collapse):
		return m.collapseCursor()
	default:
		return nil
	}
	if !m.keyThrottle.Allow() {
		return nil
	}
	if !move() {
		return nil
	}
	events.List.Cursor(m.cursor.Index)
	m.ensureCursorVisible()
	return m.edgeCmds()
}

// cursorPage approximates a page as the number of resident items that are
// actually visible.
func (m *Model) cursorPage() int {
	r := m.engine.Frame().Range
	return max(1, r.VisibleLast-r.VisibleFirst-1)
}

func (m *Model) cursorItem() (int, bool) {
	idx := m.cursor.Index
	if idx < 0 || idx >= m.engine.Len() {
		return -1, false
	}
	return idx, true
}

func (m *Model) selectCursor() tea.Cmd {
	idx, ok := m.cursorItem()
	if !ok {
		return nil
	}
	return m.bus.Selected(m.engine.Items()[idx], idx)
}

func (m *Model) toggleCursor() tea.Cmd {
	idx, ok := m.cursorItem()
	if !ok || m.tree == nil {
		return nil
	}
	it := m.engine.Items()[idx]
	if node, found := m.tree.Node(it.ID); !found || !node.HasChildren() {
		return m.bus.Selected(it, idx)
	}
	if _, changed := m.tree.Toggle(it.ID); !changed {
		return nil
	}
	return m.loadItems()
}

func (m *Model) expandCursor() tea.Cmd {
	idx, ok := m.cursorItem()
	if !ok || m.tree == nil {
		return nil
	}
	if !m.tree.Expand(m.engine.Items()[idx].ID) {
		return nil
	}
	return m.loadItems()
}

// collapseCursor closes the highlighted branch, or moves to its parent when
// it is already closed.
func (m *Model) collapseCursor() tea.Cmd {
	idx, ok := m.cursorItem()
	if !ok || m.tree == nil {
		return nil
	}
	id := m.engine.Items()[idx].ID
	if m.tree.Collapse(id) {
		return m.loadItems()
	}
	node, found := m.tree.Node(id)
	if !found {
		return nil
	}
	parent := m.engine.IndexOf(node.ParentID())
	if parent < 0 || !m.cursor.Set(m.engine, parent) {
		return nil
	}
	events.List.Cursor(m.cursor.Index)
	m.ensureCursorVisible()
	return m.edgeCmds()
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	switch ev.Button {
	case tea.MouseButtonWheelUp:
		return m.scrollBy(-wheelStep)
	case tea.MouseButtonWheelDown:
		return m.scrollBy(wheelStep)
	case tea.MouseButtonLeft:
		if ev.Action != tea.MouseActionPress {
			return nil
		}
		return m.clickRow(ev.Y - headerRows)
	}
	return nil
}

// clickRow selects the item drawn at a viewport row.
func (m *Model) clickRow(row int) tea.Cmd {
	if row < 0 || row >= m.engine.Viewport() {
		return nil
	}
	idx := m.engine.IndexAt(row)
	if idx < 0 {
		return nil
	}
	m.cursor.Set(m.engine, idx)
	events.List.Cursor(m.cursor.Index)
	return m.bus.Selected(m.engine.Items()[idx], idx)
}

func (m *Model) handleSelectedMsg(msg tea.Msg) tea.Cmd {
	sel, ok := msg.(command.SelectedMsg)
	if !ok {
		return nil
	}
	m.selectedID = sel.Item.ID
	m.infoMsg = "selected " + sel.Item.ID
	return nil
}

func (m *Model) handleReachedStartMsg(msg tea.Msg) tea.Cmd {
	return nil
}
