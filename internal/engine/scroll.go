package engine

import (
	"github.com/atomicstack/uvlist/internal/logging/events"
	"github.com/atomicstack/uvlist/internal/window"
)

// OnScroll captures a scroll position reported by the host. Repeated calls
// before the next Flush coalesce to the latest position. A report matching
// a position set by ScrollToIndex is the echo of that programmatic scroll and
// is dropped; OnScroll then returns false.
func (e *Engine) OnScroll(top int) bool {
	if e.suppress {
		e.suppress = false
		if top == e.suppressTop {
			events.Engine.ScrollSuppressed(top)
			return false
		}
	}
	e.pendingTop = top
	e.pending = true
	if e.state == Idle {
		e.state = Scrolling
	}
	events.Engine.Scroll(top)
	return true
}

// ScrollBy offsets the latest captured position by delta.
func (e *Engine) ScrollBy(delta int) bool {
	base := e.scrollTop
	if e.pending {
		base = e.pendingTop
	}
	return e.OnScroll(e.clampTop(base + delta))
}

// ScrollToIndex moves the start of the item at index to the top edge and
// recomputes. An out-of-range index is a no-op and reports false.
func (e *Engine) ScrollToIndex(index int) (Frame, bool) {
	if index < 0 || index >= e.table.Len() {
		return e.frame, false
	}
	top := e.clampTop(e.table.StartAt(index))
	e.scrollTop = top
	e.pending = false
	e.suppress = true
	e.suppressTop = top
	events.Engine.ScrollTo(index, top)
	return e.recompute(), true
}

// ScrollToTop resets the scroll position to the start of the collection.
func (e *Engine) ScrollToTop() Frame {
	if e.table.Len() == 0 {
		e.scrollTop = 0
		e.pending = false
		return e.recompute()
	}
	frame, _ := e.ScrollToIndex(0)
	return frame
}

// EnsureVisible scrolls the minimum distance that brings the item at index
// fully inside the viewport. Items taller than the viewport are aligned to
// their start. It reports false when no scroll was needed or index is out of
// range.
func (e *Engine) EnsureVisible(index int) (Frame, bool) {
	rec, ok := e.table.At(index)
	if !ok {
		return e.frame, false
	}
	top := e.scrollTop
	switch {
	case rec.Start < top:
		top = rec.Start
	case rec.End() > top+e.viewport:
		top = rec.End() - e.viewport
		if rec.Size > e.viewport {
			top = rec.Start
		}
	}
	top = e.clampTop(top)
	if top == e.scrollTop && !e.pending {
		return e.frame, false
	}
	e.scrollTop = top
	e.pending = false
	return e.recompute(), true
}

// IndexAt maps a row relative to the top edge of the viewport to the item
// drawn there, or -1.
func (e *Engine) IndexAt(row int) int {
	if row < 0 {
		return -1
	}
	return window.IndexAt(e.table, e.scrollTop+row)
}
