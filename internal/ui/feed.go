package ui

import (
	"github.com/atomicstack/uvlist/internal/feed"
	"github.com/atomicstack/uvlist/internal/item"
	"github.com/atomicstack/uvlist/internal/logging/events"
	"github.com/atomicstack/uvlist/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForFeedEvent(f *feed.Feed) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-f.Events()
		if !ok {
			return feedDoneMsg{}
		}
		return feedEventMsg{event: evt}
	}
}

type feedEventMsg struct {
	event feed.Event
}

type feedDoneMsg struct{}

func (m *Model) handleFeedEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(feedEventMsg)
	if !ok {
		return nil
	}
	cmd := m.applyFeedEvent(eventMsg.event)
	if m.feed != nil {
		return tea.Batch(cmd, waitForFeedEvent(m.feed))
	}
	return cmd
}

func (m *Model) handleFeedDoneMsg(msg tea.Msg) tea.Cmd {
	m.feed = nil
	return nil
}

func (m *Model) applyFeedEvent(evt feed.Event) tea.Cmd {
	if evt.Err != nil {
		events.Feed.Error(evt.Err)
		m.errMsg = evt.Err.Error()
		return nil
	}
	if m.tree != nil {
		return nil
	}
	res := m.dispatcher.Handle(m.source, evt)
	if !res.Updated {
		return nil
	}
	m.errMsg = ""
	m.source = res.Items
	return m.loadItems()
}

// handleReachedEndMsg loads the next page of items when paging is enabled.
func (m *Model) handleReachedEndMsg(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(command.ReachedEndMsg); !ok {
		return nil
	}
	if m.tree != nil || m.gen == nil || m.opts.PageSize <= 0 {
		return nil
	}
	n := m.opts.PageSize
	if m.opts.MaxItems > 0 {
		n = min(n, m.opts.MaxItems-len(m.source))
	}
	if n <= 0 {
		return nil
	}
	next := make([]item.Item, 0, len(m.source)+n)
	next = append(next, m.source...)
	m.source = append(next, m.gen.Items(n)...)
	return m.loadItems()
}
