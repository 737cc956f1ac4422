package ui

import (
	"strings"
	"time"

	"github.com/atomicstack/uvlist/internal/engine"
	"github.com/atomicstack/uvlist/internal/item"
	"github.com/atomicstack/uvlist/internal/logging/events"
	"github.com/atomicstack/uvlist/internal/pool"
	"github.com/atomicstack/uvlist/internal/render"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	gutterWidth    = 2
	markerWidth    = 2
	scrollbarWidth = 1
	statsWidth     = 24
	minListWidth   = 30
)

// frameMsg marks a frame boundary: pending scroll positions are applied.
type frameMsg struct{}

// flushMsg runs a deferred recompute for a non-blocking load.
type flushMsg struct {
	generation int
}

type renderedView struct {
	id       string
	index    int
	selected bool
	expanded bool
	width    int
	lines    []string
	height   int
}

func (m *Model) visibleItems() []item.Item {
	if m.tree != nil {
		return m.tree.Items()
	}
	return m.source
}

// loadItems pushes the current collection into the engine. In non-blocking
// mode the recompute is deferred to a flushMsg so the update loop returns
// first; a newer load supersedes an older pending flush.
func (m *Model) loadItems() tea.Cmd {
	if !m.opts.NonBlocking {
		m.loadNow()
		return m.edgeCmds()
	}
	gen := m.engine.Load(m.visibleItems())
	m.cursor.Sync(m.engine)
	return func() tea.Msg {
		return flushMsg{generation: gen}
	}
}

func (m *Model) loadNow() {
	m.noteFrame(m.engine.SetItems(m.visibleItems()))
	m.cursor.Sync(m.engine)
	m.settle()
	m.ensureCursorVisible()
}

func (m *Model) handleFlushMsg(msg tea.Msg) tea.Cmd {
	flush, ok := msg.(flushMsg)
	if !ok || flush.generation != m.engine.Generation() {
		return nil
	}
	if frame, ok := m.engine.Flush(); ok {
		m.noteFrame(frame)
		m.settle()
		m.ensureCursorVisible()
	}
	return m.edgeCmds()
}

func (m *Model) handleFrameMsg(msg tea.Msg) tea.Cmd {
	m.frameScheduled = false
	if frame, ok := m.engine.Flush(); ok {
		m.noteFrame(frame)
		m.settle()
	}
	return m.edgeCmds()
}

// scheduleFrame requests one frame boundary. Scroll events arriving before it
// fires coalesce in the engine.
func (m *Model) scheduleFrame() tea.Cmd {
	if m.frameScheduled {
		return nil
	}
	m.frameScheduled = true
	return tea.Tick(m.frameInterval, func(time.Time) tea.Msg {
		return frameMsg{}
	})
}

func (m *Model) scrollBy(delta int) tea.Cmd {
	if !m.engine.ScrollBy(delta) {
		return nil
	}
	return m.scheduleFrame()
}

// settle measures every resident and prepared view and feeds the heights
// back to the engine until the sizes stop changing.
func (m *Model) settle() {
	for pass := 0; pass < maxMeasurePasses; pass++ {
		frame := m.engine.Frame()
		batch := make([]engine.Measurement, 0, len(frame.Views)+len(frame.Prepared))
		for _, views := range [][]pool.View{frame.Views, frame.Prepared} {
			for _, v := range views {
				rv := m.renderView(v)
				batch = append(batch, engine.Measurement{ID: v.Item.ID, Height: rv.height, Index: v.Index})
			}
		}
		applied, frame := m.engine.Measure(batch)
		if applied == 0 {
			return
		}
		m.noteFrame(frame)
	}
}

func (m *Model) noteFrame(frame engine.Frame) {
	if frame.ReachedStart {
		m.reachedStart = true
	}
	if frame.ReachedEnd {
		m.reachedEnd = true
	}
}

// edgeCmds emits the edge events collected since the last call.
func (m *Model) edgeCmds() tea.Cmd {
	var cmds []tea.Cmd
	if m.reachedStart {
		m.reachedStart = false
		cmds = append(cmds, m.bus.ReachedStart())
	}
	if m.reachedEnd {
		m.reachedEnd = false
		cmds = append(cmds, m.bus.ReachedEnd(m.engine.Len()))
	}
	return tea.Batch(cmds...)
}

func (m *Model) ensureCursorVisible() {
	if m.engine.Len() == 0 {
		return
	}
	for pass := 0; pass < 2; pass++ {
		frame, ok := m.engine.EnsureVisible(m.cursor.Index)
		if !ok {
			return
		}
		m.noteFrame(frame)
		m.settle()
	}
}

// renderView returns the painted lines of v, re-rendering only when the bound
// item or its display state changed since the view was last painted.
func (m *Model) renderView(v pool.View) renderedView {
	selected := v.Index == m.cursor.Index && v.Item.ID == m.cursor.ID
	expanded := m.tree != nil && m.tree.Expanded(v.Item.ID)
	if cached, ok := m.cache[v.UID]; ok &&
		cached.id == v.Item.ID &&
		cached.index == v.Index &&
		cached.selected == selected &&
		cached.expanded == expanded &&
		cached.width == m.renderWidth {
		return cached
	}
	content := m.render(v.Item, v.Index, selected, expanded)
	rv := renderedView{
		id:       v.Item.ID,
		index:    v.Index,
		selected: selected,
		expanded: expanded,
		width:    m.renderWidth,
		height:   lipgloss.Height(content),
		lines:    m.decorate(v.Item, content, selected, expanded),
	}
	m.cache[v.UID] = rv
	return rv
}

// decorate adds the selection gutter and, for trees, indentation and the
// branch marker to each rendered line.
func (m *Model) decorate(it item.Item, content string, selected, expanded bool) []string {
	lines := strings.Split(content, "\n")
	gutter := strings.Repeat(" ", gutterWidth)
	if selected {
		gutter = styles.SelectedItem.Render("▌") + " "
	}
	lead, cont := "", ""
	if m.tree != nil {
		indent := strings.Repeat(" ", m.tree.Indent(it.ID)*m.opts.OpenPadding)
		marker := "  "
		if node, ok := m.tree.Node(it.ID); ok && node.HasChildren() {
			marker = "▸ "
			if expanded {
				marker = "▾ "
			}
			marker = styles.Branch.Render(marker)
		}
		lead = indent + marker
		cont = indent + strings.Repeat(" ", markerWidth)
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		if !strings.Contains(line, "\x1b[") {
			if selected {
				line = styles.SelectedItem.Render(line)
			} else {
				line = styles.Item.Render(line)
			}
		}
		prefix := cont
		if i == 0 {
			prefix = lead
		}
		out[i] = gutter + prefix + line
	}
	return out
}

func (m *Model) rebuildRenderer() error {
	width := m.contentWidth() - gutterWidth
	if m.tree != nil {
		width -= markerWidth
	}
	width = max(1, width)
	if m.render != nil && width == m.renderWidth {
		return nil
	}
	factory := m.opts.Render
	if factory == nil {
		name := m.opts.Renderer
		factory = func(w int) (render.Func, error) {
			return render.New(name, w)
		}
	}
	fn, err := factory(width)
	m.renderWidth = width
	if err != nil {
		return err
	}
	m.render = fn
	clear(m.cache)
	return nil
}

func (m *Model) chromeRows() int {
	rows := 2 // header + status
	if m.tree != nil {
		rows++
	}
	if m.showFooter {
		rows += 2
	}
	return rows
}

func (m *Model) viewportRows() int {
	if m.height <= 0 {
		return defaultViewport
	}
	return max(1, m.height-m.chromeRows())
}

func (m *Model) totalWidth() int {
	if m.width <= 0 {
		return defaultWidth
	}
	return m.width
}

func (m *Model) statsShown() bool {
	return m.showStats && m.totalWidth()-statsWidth-scrollbarWidth >= minListWidth
}

func (m *Model) contentWidth() int {
	w := m.totalWidth() - scrollbarWidth
	if m.statsShown() {
		w -= statsWidth
	}
	return max(1, w)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	if err := m.rebuildRenderer(); err != nil {
		m.errMsg = err.Error()
	}
	m.noteFrame(m.engine.SetViewport(m.viewportRows()))
	m.settle()
	m.ensureCursorVisible()
	return m.edgeCmds()
}

// ScrollToItem scrolls the item at index to the top edge. Out-of-range
// indices are ignored.
func (m *Model) ScrollToItem(index int) {
	frame, ok := m.engine.ScrollToIndex(index)
	if !ok {
		return
	}
	m.noteFrame(frame)
	m.settle()
}

// ScrollToTop scrolls back to the first item.
func (m *Model) ScrollToTop() {
	m.noteFrame(m.engine.ScrollToTop())
	m.settle()
}

// Reset collapses the whole tree, clears the search and returns to the top.
// In list mode it only scrolls to the top.
func (m *Model) Reset() tea.Cmd {
	var cmd tea.Cmd
	if m.tree != nil {
		m.tree.Reset()
		m.search.SetValue("")
		m.search.Blur()
		m.searching = false
		cmd = m.loadItems()
	}
	m.cursor.MoveHome(m.engine)
	m.ScrollToTop()
	events.List.Cursor(m.cursor.Index)
	return tea.Batch(cmd, m.edgeCmds())
}
