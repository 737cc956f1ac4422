package engine

import (
	"sort"

	"github.com/atomicstack/uvlist/internal/logging/events"
)

// Measurement is a size reported by the host after painting an item. ID is
// preferred; Index is used when ID is empty.
type Measurement struct {
	ID     string
	Height int
	Index  int
}

// ResizeResult describes the effect of one measurement.
type ResizeResult struct {
	Index        int
	Delta        int
	ScrollAdjust int
	Applied      bool
}

// Resize applies one measurement and recomputes. Measurements for items the
// table does not track are ignored.
func (e *Engine) Resize(m Measurement) (ResizeResult, Frame) {
	res := e.apply(m)
	if !res.Applied {
		return res, e.frame
	}
	return res, e.recompute()
}

// Measure applies a batch of measurements and recomputes once. It returns
// the number of measurements that changed a size.
func (e *Engine) Measure(batch []Measurement) (int, Frame) {
	applied := 0
	for _, m := range batch {
		if e.apply(m).Applied {
			applied++
		}
	}
	if applied == 0 {
		return 0, e.frame
	}
	return applied, e.recompute()
}

// apply updates the table for m. When the item starts above the top edge of
// the viewport, the scroll position follows the anchor, the first item
// starting at or below the top edge, so the content on screen stays put.
func (e *Engine) apply(m Measurement) ResizeResult {
	id := m.ID
	if id == "" {
		id = e.table.IDAt(m.Index)
	}
	rec, ok := e.table.Record(id)
	if !ok {
		return ResizeResult{Index: -1}
	}
	if rec.Size == m.Height || m.Height < 0 {
		return ResizeResult{Index: rec.Index}
	}

	top := e.scrollTop
	if e.pending {
		top = e.pendingTop
	}
	anchor := e.anchorIndex(top)
	before := e.startOf(anchor)
	e.table.Resize(id, m.Height)
	adjust := 0
	if rec.Start < top {
		adjust = e.startOf(anchor) - before
	}
	if adjust != 0 {
		if e.pending {
			e.pendingTop += adjust
		}
		e.scrollTop += adjust
		e.suppress = false
	}
	events.Engine.Resize(id, rec.Size, m.Height, adjust)
	return ResizeResult{
		Index:        rec.Index,
		Delta:        rec.Size - m.Height,
		ScrollAdjust: adjust,
		Applied:      true,
	}
}

// anchorIndex returns the first item whose start is at or below top. It
// returns Len when there is none.
func (e *Engine) anchorIndex(top int) int {
	return sort.Search(e.table.Len(), func(i int) bool {
		return e.table.StartAt(i) >= top
	})
}

// startOf returns the start of the item at index, treating Len as the
// position just past the end.
func (e *Engine) startOf(index int) int {
	if index >= e.table.Len() {
		return e.table.Total() + 1
	}
	return e.table.StartAt(index)
}
