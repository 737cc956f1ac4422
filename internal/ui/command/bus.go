package command

import (
	"fmt"

	"github.com/atomicstack/uvlist/internal/item"
	"github.com/atomicstack/uvlist/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// SelectedMsg reports that the user picked an item.
type SelectedMsg struct {
	Item  item.Item
	Index int
}

// ReachedStartMsg reports that the resident window touched the first item.
type ReachedStartMsg struct{}

// ReachedEndMsg reports that the resident window touched the last item.
// Count is the collection size at that moment.
type ReachedEndMsg struct {
	Count int
}

// Bus turns list events into Bubble Tea commands so listeners receive them
// through the regular update loop.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Selected emits SelectedMsg.
func (b *Bus) Selected(it item.Item, index int) tea.Cmd {
	events.List.Selected(it.ID, index)
	return b.emit("selected", SelectedMsg{Item: it, Index: index})
}

// ReachedStart emits ReachedStartMsg.
func (b *Bus) ReachedStart() tea.Cmd {
	events.List.ReachedStart()
	return b.emit("reachedStart", ReachedStartMsg{})
}

// ReachedEnd emits ReachedEndMsg.
func (b *Bus) ReachedEnd(count int) tea.Cmd {
	events.List.ReachedEnd(count)
	return b.emit("reachedEnd", ReachedEndMsg{Count: count})
}

func (b *Bus) emit(name string, msg tea.Msg) tea.Cmd {
	events.Command.Queue(name)
	return func() tea.Msg {
		events.Command.Result(name, fmt.Sprintf("%T", msg))
		return msg
	}
}
