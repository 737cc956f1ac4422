package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atomicstack/uvlist/internal/format/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const headerRows = 1

// View implements tea.Model.
func (m *Model) View() string {
	lines := make([]string, 0, m.engine.Viewport()+m.chromeRows())
	lines = append(lines, m.fitLine(styles.Header.Render(m.header()), m.totalWidth()))

	body := strings.Join(m.viewportLines(), "\n")
	if m.statsShown() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, m.statsPanel())
	}
	lines = append(lines, body)

	if m.tree != nil {
		lines = append(lines, m.fitLine(m.searchLine(), m.totalWidth()))
	}
	lines = append(lines, m.fitLine(m.statusLine(), m.totalWidth()))
	if m.showFooter {
		lines = append(lines, "")
		lines = append(lines, m.fitLine(styles.Footer.Render(m.footer()), m.totalWidth()))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) header() string {
	n := m.engine.Len()
	if m.tree != nil && m.tree.Searching() {
		return fmt.Sprintf("uvlist  %d of %d nodes match %q", n, len(m.tree.Ordered()), m.tree.Query())
	}
	noun := "items"
	if m.tree != nil {
		noun = "nodes"
	}
	return fmt.Sprintf("uvlist  %d %s", n, noun)
}

// viewportLines paints the resident views at their offsets. Each item
// occupies its measured rows followed by one blank separator row.
func (m *Model) viewportLines() []string {
	frame := m.engine.Frame()
	height := max(1, frame.Viewport)
	width := m.contentWidth()
	rows := make([]string, height)
	if m.engine.Len() == 0 {
		msg := "(no items)"
		if m.tree != nil && m.tree.Searching() {
			msg = fmt.Sprintf("No matches for %q", m.tree.Query())
		}
		rows[0] = styles.Info.Render(msg)
	}
	for _, v := range frame.Views {
		rec, ok := m.engine.Record(v.Item.ID)
		if !ok {
			continue
		}
		rv := m.renderView(v)
		for i, line := range rv.lines {
			if i >= rec.Size {
				break
			}
			row := rec.Start + i - frame.ScrollTop
			if row >= 0 && row < height {
				rows[row] = line
			}
		}
	}
	bar := m.scrollbar(height)
	for i, row := range rows {
		rows[i] = m.fitLine(row, width) + bar[i]
	}
	return rows
}

// fitLine truncates or pads line to exactly width cells.
func (m *Model) fitLine(line string, width int) string {
	if width <= 0 {
		return line
	}
	w := lipgloss.Width(line)
	if w > width {
		line = truncate.StringWithTail(line, uint(width), "…")
		w = lipgloss.Width(line)
	}
	if w < width {
		line += strings.Repeat(" ", width-w)
	}
	return line
}

// scrollbar returns one cell per row with a thumb sized to the viewport share
// of the full virtual extent.
func (m *Model) scrollbar(height int) []string {
	frame := m.engine.Frame()
	bar := make([]string, height)
	total := frame.Total
	if total <= height {
		for i := range bar {
			bar[i] = " "
		}
		return bar
	}
	thumb := max(1, height*height/total)
	travel := height - thumb
	top := 0
	if maxTop := total - height; maxTop > 0 {
		top = frame.ScrollTop * travel / maxTop
	}
	for i := range bar {
		if i >= top && i < top+thumb {
			bar[i] = styles.ScrollThumb.Render("┃")
		} else {
			bar[i] = styles.ScrollTrack.Render("│")
		}
	}
	return bar
}

func (m *Model) statsPanel() string {
	frame := m.engine.Frame()
	rows := table.Pairs(
		[2]string{"items", strconv.Itoa(m.engine.Len())},
		[2]string{"window", fmt.Sprintf("%d-%d", frame.Range.First, frame.Range.Last)},
		[2]string{"resident", strconv.Itoa(len(frame.Views))},
		[2]string{"prepared", strconv.Itoa(len(frame.Prepared))},
		[2]string{"allocated", strconv.Itoa(m.engine.Allocated())},
		[2]string{"scroll", strconv.Itoa(frame.ScrollTop)},
		[2]string{"padding", strconv.Itoa(frame.Padding)},
		[2]string{"scroller", strconv.Itoa(frame.ScrollerSize)},
		[2]string{"total", strconv.Itoa(frame.Total)},
		[2]string{"state", m.engine.State().String()},
	)
	return styles.Stats.Width(statsWidth - 2).Render(strings.Join(rows, "\n"))
}

func (m *Model) searchLine() string {
	if m.searching || m.search.Value() != "" {
		return m.search.View()
	}
	return styles.FilterPlaceholder.Render("/ to search")
}

func (m *Model) statusLine() string {
	if m.errMsg != "" {
		return styles.Error.Render("Error: " + m.errMsg)
	}
	if m.infoMsg != "" {
		return styles.Info.Render(m.infoMsg)
	}
	return ""
}

func (m *Model) footer() string {
	parts := make([]string, 0, 8)
	for _, b := range m.keys.help() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, "  ")
}
