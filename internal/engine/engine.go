// Package engine drives a virtualized list: it owns the offset table and view
// pool for one collection, decides when the resident window is recomputed and
// reports render-ready frames to the host.
package engine

import (
	"github.com/atomicstack/uvlist/internal/item"
	"github.com/atomicstack/uvlist/internal/logging/events"
	"github.com/atomicstack/uvlist/internal/offsets"
	"github.com/atomicstack/uvlist/internal/pool"
	"github.com/atomicstack/uvlist/internal/window"
)

// State is the driver state. The engine cycles Idle -> Scrolling ->
// Recomputing -> Idle, and data changes enter Recomputing directly.
type State int

const (
	Idle State = iota
	Scrolling
	Recomputing
)

func (s State) String() string {
	switch s {
	case Scrolling:
		return "scrolling"
	case Recomputing:
		return "recomputing"
	default:
		return "idle"
	}
}

// Config holds the sizing options of one engine.
type Config struct {
	// InitialSize is the extent assumed for items that were never measured.
	InitialSize int
	// Buffer extends the viewport on both edges when locating the window.
	Buffer int
	// Overscan is the number of extra items kept on each side.
	Overscan int
	// PrepareDistance is the number of items after the window bound to
	// not-ready views so they can be measured before they scroll in.
	PrepareDistance int
}

// DefaultConfig returns the sizing used by the terminal host.
func DefaultConfig() Config {
	return Config{
		InitialSize: 1,
		Buffer:      4,
		Overscan:    window.DefaultOverscan,
	}
}

// Frame is everything the host needs to paint one pass.
type Frame struct {
	Views        []pool.View
	Prepared     []pool.View
	Range        window.Range
	ScrollTop    int
	Viewport     int
	Padding      int
	Total        int
	ScrollerSize int
	ReachedStart bool
	ReachedEnd   bool
}

// Engine is the per-list context. It is not safe for concurrent use; the host
// calls it from its single update loop.
type Engine struct {
	cfg   Config
	table *offsets.Table
	pool  *pool.Pool
	items []item.Item

	state      State
	scrollTop  int
	pendingTop int
	pending    bool
	viewport   int

	suppress    bool
	suppressTop int

	atStart    bool
	atEnd      bool
	generation int

	frame Frame
}

// New returns an engine with no items.
func New(cfg Config) *Engine {
	if cfg.Overscan < 0 {
		cfg.Overscan = 0
	}
	if cfg.Buffer < 0 {
		cfg.Buffer = 0
	}
	if cfg.PrepareDistance < 0 {
		cfg.PrepareDistance = 0
	}
	return &Engine{
		cfg:   cfg,
		table: offsets.New(cfg.InitialSize),
		pool:  pool.New(),
	}
}

// Load replaces the collection and rebuilds the offset table, keeping the
// measured size of items that persist. The window is not recomputed until
// the next Flush or Recompute. It returns the load generation so a deferred
// flush can tell whether a newer load superseded it.
func (e *Engine) Load(items []item.Item) int {
	items = item.Dedup(items)
	if len(items) != len(e.items) {
		e.atStart = false
		e.atEnd = false
	}
	e.items = items
	e.table.Rebuild(item.IDs(items))
	e.state = Recomputing
	e.generation++
	events.Engine.Load(len(items))
	return e.generation
}

// SetItems replaces the collection and recomputes immediately.
func (e *Engine) SetItems(items []item.Item) Frame {
	e.Load(items)
	return e.recompute()
}

// Generation returns the generation of the latest Load.
func (e *Engine) Generation() int {
	return e.generation
}

// SetViewport sets the visible extent and recomputes.
func (e *Engine) SetViewport(size int) Frame {
	if size < 0 {
		size = 0
	}
	e.viewport = size
	return e.recompute()
}

// Viewport returns the visible extent.
func (e *Engine) Viewport() int {
	return e.viewport
}

// Flush runs the pending recomputation at a frame boundary. It reports false
// when nothing was pending.
func (e *Engine) Flush() (Frame, bool) {
	if e.state == Idle {
		return e.frame, false
	}
	return e.recompute(), true
}

// Recompute forces a recomputation regardless of state.
func (e *Engine) Recompute() Frame {
	return e.recompute()
}

// Frame returns the last computed frame.
func (e *Engine) Frame() Frame {
	return e.frame
}

// State returns the driver state.
func (e *Engine) State() State {
	return e.state
}

// ScrollTop returns the applied scroll position.
func (e *Engine) ScrollTop() int {
	return e.scrollTop
}

// Items returns the deduplicated collection.
func (e *Engine) Items() []item.Item {
	return e.items
}

// Len returns the number of items.
func (e *Engine) Len() int {
	return len(e.items)
}

// Record returns the offset record of id.
func (e *Engine) Record(id string) (offsets.Record, bool) {
	return e.table.Record(id)
}

// IndexOf returns the position of id, or -1.
func (e *Engine) IndexOf(id string) int {
	return e.table.IndexOf(id)
}

// IDAt returns the id at index, or "".
func (e *Engine) IDAt(index int) string {
	return e.table.IDAt(index)
}

// Total returns the full extent of the collection.
func (e *Engine) Total() int {
	return e.table.Total()
}

// Allocated returns how many views the pool has created.
func (e *Engine) Allocated() int {
	return e.pool.Allocated()
}

func (e *Engine) maxTop() int {
	return max(0, e.table.Total()-e.viewport)
}

func (e *Engine) clampTop(top int) int {
	return min(max(0, top), e.maxTop())
}

func (e *Engine) recompute() Frame {
	if e.pending {
		e.scrollTop = e.pendingTop
		e.pending = false
	}
	e.scrollTop = e.clampTop(e.scrollTop)
	n := len(e.items)
	r := window.Compute(e.table, window.Params{
		ScrollTop: e.scrollTop,
		Viewport:  e.viewport,
		Buffer:    e.cfg.Buffer,
		Overscan:  e.cfg.Overscan,
	})
	ready := e.pool.Reconcile(e.items[r.First:r.Last], r.First)

	e.pool.ReleasePrepared()
	for i := r.Last; i < min(n, r.Last+e.cfg.PrepareDistance); i++ {
		e.pool.Prepare(e.items[i], i)
	}

	frame := Frame{
		Views:     make([]pool.View, len(ready)),
		Range:     r,
		ScrollTop: e.scrollTop,
		Viewport:  e.viewport,
		Total:     e.table.Total(),
	}
	for i, v := range ready {
		frame.Views[i] = *v
	}
	if prepared := e.pool.Prepared(); len(prepared) > 0 {
		frame.Prepared = make([]pool.View, len(prepared))
		for i, v := range prepared {
			frame.Prepared[i] = *v
		}
	}
	if len(ready) > 0 {
		frame.Padding = e.table.StartAt(ready[0].Index)
	}
	frame.ScrollerSize = frame.Total - frame.Padding

	touchingStart := n > 0 && r.First == 0
	touchingEnd := n > 0 && r.Last == n
	frame.ReachedStart = touchingStart && !e.atStart
	frame.ReachedEnd = touchingEnd && !e.atEnd
	e.atStart = touchingStart
	e.atEnd = touchingEnd

	e.frame = frame
	e.state = Idle
	events.Engine.Recompute(r.First, r.Last, len(ready), frame.Padding, frame.Total, e.scrollTop)
	return frame
}
