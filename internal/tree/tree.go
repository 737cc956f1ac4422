package tree

import (
	"github.com/atomicstack/uvlist/internal/item"
	"github.com/atomicstack/uvlist/internal/logging/events"
)

// Options configures a Tree.
type Options struct {
	Band Band
	// Compare orders siblings. When nil, SortField selects the default
	// comparator; when both are empty input order is kept.
	Compare   Compare `json:"-"`
	SortField string
	Search    SearchParams
}

// Tree owns the hierarchy, its visual state and the current search for one
// widget. The visual state survives SetItems until Reset.
type Tree struct {
	opts    Options
	forest  *Forest
	ordered []*Node
	visual  Visual
	query   string
	visible []*Node
	matches int
}

// New returns an empty tree.
func New(opts Options) *Tree {
	if opts.Compare == nil {
		opts.Compare = CompareBy(opts.SortField)
	}
	return &Tree{
		opts:   opts,
		forest: Flatten(nil),
		visual: Visual{},
	}
}

// SetItems replaces the hierarchy and refreshes the visible list.
func (t *Tree) SetItems(roots []item.Item) {
	t.forest = Flatten(roots)
	t.ordered = Ordered(t.forest, t.opts.Compare)
	t.refresh()
}

// Ordered returns every reachable node in parent order.
func (t *Tree) Ordered() []*Node {
	return t.ordered
}

// Visible returns the nodes currently shown.
func (t *Tree) Visible() []*Node {
	return t.visible
}

// Items returns the visible nodes as items, ready for the engine.
func (t *Tree) Items() []item.Item {
	out := make([]item.Item, len(t.visible))
	for i, n := range t.visible {
		out[i] = n.Item
	}
	return out
}

// Node returns the node for id.
func (t *Tree) Node(id string) (*Node, bool) {
	return t.forest.Node(id)
}

// Indent returns the display depth of id relative to the band.
func (t *Tree) Indent(id string) int {
	n, ok := t.forest.Node(id)
	if !ok {
		return 0
	}
	return max(0, n.Depth()-t.opts.Band.TrackShift)
}

// Expanded reports whether id shows its children. While searching every
// included node is shown expanded.
func (t *Tree) Expanded(id string) bool {
	n, ok := t.forest.Node(id)
	if !ok {
		return false
	}
	if t.Searching() {
		return n.HasChildren()
	}
	return t.visual.Expanded(n, t.opts.Band)
}

// Toggle flips id and returns the new state. It is ignored for unknown ids,
// leaves and while a search is active.
func (t *Tree) Toggle(id string) (bool, bool) {
	n, ok := t.forest.Node(id)
	if !ok || !n.HasChildren() || t.Searching() {
		return false, false
	}
	open := t.visual.Toggle(t.forest, n, t.opts.Band)
	events.Tree.Toggle(id, open)
	t.refresh()
	return open, true
}

// Expand opens id. It reports whether anything changed.
func (t *Tree) Expand(id string) bool {
	if t.Expanded(id) {
		return false
	}
	_, ok := t.Toggle(id)
	return ok
}

// Collapse closes id. It reports whether anything changed.
func (t *Tree) Collapse(id string) bool {
	if !t.Expanded(id) {
		return false
	}
	_, ok := t.Toggle(id)
	return ok
}

// Reset collapses every node and clears the search.
func (t *Tree) Reset() {
	t.visual = Visual{}
	for _, n := range t.ordered {
		if n.HasChildren() {
			t.visual[n.ID] = false
		}
	}
	t.query = ""
	t.refresh()
	events.Tree.Reset(len(t.visible))
}

// Search filters the tree by query. Queries shorter than the minimal length
// restore the normal view. It returns the number of direct matches.
func (t *Tree) Search(query string) int {
	t.query = query
	t.refresh()
	if t.Searching() {
		events.Tree.Search(query, t.matches, len(t.visible))
	}
	return t.matches
}

// Query returns the last search query.
func (t *Tree) Query() string {
	return t.query
}

// Searching reports whether the current query filters the tree.
func (t *Tree) Searching() bool {
	return t.opts.Search.Active(t.query)
}

// Params returns the search configuration.
func (t *Tree) Params() SearchParams {
	return t.opts.Search
}

func (t *Tree) refresh() {
	if t.Searching() {
		filtered, matches := Filter(t.ordered, t.opts.Search, t.query)
		t.matches = matches
		t.visible = filtered[:0]
		for _, n := range filtered {
			if n.Depth() >= t.opts.Band.TrackShift {
				t.visible = append(t.visible, n)
			}
		}
		return
	}
	t.matches = 0
	t.visible = Visible(t.ordered, t.visual, t.opts.Band)
}
