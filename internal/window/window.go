// Package window finds the range of items that must stay resident for a given
// scroll position. Offsets are non-decreasing in index, so both edges are
// located with a binary search over a monotonic predicate.
package window

import "sort"

// DefaultOverscan is the number of extra items kept on each side of the
// visible range.
const DefaultOverscan = 5

// Extents exposes item offsets by position.
type Extents interface {
	Len() int
	StartAt(i int) int
	EndAt(i int) int
}

// Params describes the viewport. ScrollTop is the content offset at the top
// edge of the viewport.
type Params struct {
	ScrollTop int
	Viewport  int
	Buffer    int
	Overscan  int
}

// Range is a pair of half-open index ranges. [First, Last) is the resident
// window including overscan; [VisibleFirst, VisibleLast) excludes it.
type Range struct {
	First        int
	Last         int
	VisibleFirst int
	VisibleLast  int
}

// Len returns the number of resident items.
func (r Range) Len() int {
	return r.Last - r.First
}

// Contains reports whether index is resident.
func (r Range) Contains(index int) bool {
	return index >= r.First && index < r.Last
}

// FirstVisible returns the first index whose end, extended by buffer, reaches
// the top edge. When every item ends above the edge it falls back to 0.
func FirstVisible(e Extents, scrollTop, buffer int) int {
	n := e.Len()
	found := sort.Search(n, func(i int) bool {
		return e.EndAt(i)+buffer-scrollTop >= 0
	})
	if found == n {
		return 0
	}
	return found
}

// LastVisible returns the first index whose start lies beyond the bottom edge
// extended by buffer. It is an exclusive bound.
func LastVisible(e Extents, scrollTop, viewport, buffer int) int {
	return sort.Search(e.Len(), func(i int) bool {
		return e.StartAt(i)-buffer-scrollTop-viewport > 0
	})
}

// Compute returns the resident range for p.
func Compute(e Extents, p Params) Range {
	n := e.Len()
	if n == 0 {
		return Range{}
	}
	overscan := p.Overscan
	if overscan < 0 {
		overscan = 0
	}
	first := FirstVisible(e, p.ScrollTop, p.Buffer)
	last := LastVisible(e, p.ScrollTop, p.Viewport, p.Buffer)
	if last < first {
		last = first
	}
	return Range{
		First:        max(0, first-overscan),
		Last:         min(n, last+overscan),
		VisibleFirst: first,
		VisibleLast:  last,
	}
}

// IndexAt returns the index of the item covering offset, or of the item that
// follows when offset falls in the gap after an item. It returns -1 when the
// collection is empty or offset is past the end.
func IndexAt(e Extents, offset int) int {
	n := e.Len()
	idx := sort.Search(n, func(i int) bool {
		return e.EndAt(i) > offset
	})
	if idx == n {
		return -1
	}
	return idx
}
