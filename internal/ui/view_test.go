package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/uvlist/internal/engine"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func TestViewPaintsItemsWithSeparators(t *testing.T) {
	m := newTestModel(t, Options{Items: numbered(100)})
	lines := strings.Split(m.View(), "\n")
	if len(lines) != 12 {
		t.Fatalf("expected 12 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "uvlist  100 items") {
		t.Fatalf("expected header, got %q", lines[0])
	}
	if !strings.Contains(lines[1], "0/1") || !strings.Contains(lines[3], "1/1") {
		t.Fatalf("expected items on rows 0 and 2, got %q and %q", lines[1], lines[3])
	}
	if strings.Contains(lines[2], "/1") {
		t.Fatalf("expected a blank separator row, got %q", lines[2])
	}
	for i, line := range lines[1:11] {
		if lipgloss.Width(line) != 60 {
			t.Fatalf("expected row %d to be 60 cells wide, got %d", i, lipgloss.Width(line))
		}
	}
	if !strings.Contains(lines[1], "┃") {
		t.Fatalf("expected scrollbar thumb at the top, got %q", lines[1])
	}
}

func TestViewFollowsScroll(t *testing.T) {
	m := newTestModel(t, Options{Items: numbered(100)})
	m.ScrollToItem(10)
	lines := strings.Split(m.View(), "\n")
	if !strings.Contains(lines[1], "10/1") {
		t.Fatalf("expected item 10 at the top, got %q", lines[1])
	}
}

func TestViewEmptyList(t *testing.T) {
	m := newTestModel(t, Options{})
	if !strings.Contains(m.View(), "(no items)") {
		t.Fatalf("expected empty placeholder")
	}
}

func TestViewStatsPanelAndFooter(t *testing.T) {
	m := newTestModel(t, Options{
		Items:      numbered(50),
		Width:      100,
		Height:     20,
		ShowStats:  true,
		ShowFooter: true,
		Keyboard:   true,
		Engine:     engine.DefaultConfig(),
	})
	view := m.View()
	for _, want := range []string{"resident", "allocated", "state", "idle", "q quit"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected view to contain %q, got:\n%s", want, view)
		}
	}
	if got := len(strings.Split(view, "\n")); got != 20 {
		t.Fatalf("expected 20 lines, got %d", got)
	}
}

func TestViewHidesStatsWhenNarrow(t *testing.T) {
	m := newTestModel(t, Options{Items: numbered(5), Width: 40, ShowStats: true})
	if strings.Contains(m.View(), "resident") {
		t.Fatalf("expected stats hidden on a narrow terminal")
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t, Options{Items: numbered(5), Keyboard: true})
	h := NewHarness(m)
	h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !h.Quit() {
		t.Fatalf("expected quit")
	}
}
