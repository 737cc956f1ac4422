package tree

// Band is the initial expand band. Nodes shallower than TrackShift are not
// shown and their descendants at TrackShift act as roots. Nodes up to
// ShowDepth are shown before anything is toggled.
type Band struct {
	TrackShift int
	ShowDepth  int
}

// Visual holds explicit expand state. A node without an entry falls back to
// the band: it is expanded when its children lie within ShowDepth.
type Visual map[string]bool

// Expanded reports whether n shows its children.
func (v Visual) Expanded(n *Node, band Band) bool {
	if open, ok := v[n.ID]; ok {
		return open
	}
	return n.Depth() < band.ShowDepth
}

// Toggle flips n and returns the new state.
func (v Visual) Toggle(f *Forest, n *Node, band Band) bool {
	if v.Expanded(n, band) {
		v.Collapse(f, n, band)
		return false
	}
	v[n.ID] = true
	return true
}

// Collapse closes n and drops the state of every descendant, so expanding n
// again only reveals its immediate children. Descendants that the band would
// open by default are pinned closed.
func (v Visual) Collapse(f *Forest, n *Node, band Band) {
	v[n.ID] = false
	seen := map[string]bool{n.ID: true}
	var drop func(ids []string)
	drop = func(ids []string) {
		for _, id := range ids {
			child, ok := f.Node(id)
			if !ok || seen[id] {
				continue
			}
			seen[id] = true
			delete(v, id)
			if child.HasChildren() && child.Depth() < band.ShowDepth {
				v[id] = false
			}
			drop(child.ChildIDs)
		}
	}
	drop(n.ChildIDs)
}

// Visible filters ordered down to the nodes the user can see: nodes at
// TrackShift depth, and deeper nodes whose parent is visible and expanded.
func Visible(ordered []*Node, v Visual, band Band) []*Node {
	shown := make(map[string]bool, len(ordered))
	out := make([]*Node, 0, len(ordered))
	for _, n := range ordered {
		depth := n.Depth()
		switch {
		case depth < band.TrackShift:
			continue
		case depth == band.TrackShift:
		default:
			parent := n.ParentID()
			if !shown[parent] {
				continue
			}
		}
		shown[n.ID] = v.Expanded(n, band)
		out = append(out, n)
	}
	return out
}
