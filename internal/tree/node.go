// Package tree turns hierarchical items into the flat, parent-ordered list the
// engine windows over, and tracks expand/collapse and search visibility.
package tree

import "github.com/atomicstack/uvlist/internal/item"

// Node is an item placed in the hierarchy. Track lists ancestor ids from the
// root down to the immediate parent, so len(Track) is the depth.
type Node struct {
	item.Item
	Track    []string
	ChildIDs []string
}

// Depth returns the number of ancestors.
func (n *Node) Depth() int {
	return len(n.Track)
}

// ParentID returns the immediate parent, or "" for a root.
func (n *Node) ParentID() string {
	if len(n.Track) == 0 {
		return ""
	}
	return n.Track[len(n.Track)-1]
}

// HasChildren reports whether any node names n as its parent.
func (n *Node) HasChildren() bool {
	return len(n.ChildIDs) > 0
}

// Forest indexes every node by id. Keys keeps first-seen input order.
type Forest struct {
	nodes map[string]*Node
	keys  []string
}

// Node returns the node for id.
func (f *Forest) Node(id string) (*Node, bool) {
	n, ok := f.nodes[id]
	return n, ok
}

// Keys returns node ids in input order.
func (f *Forest) Keys() []string {
	return f.keys
}

// Len returns the number of nodes.
func (f *Forest) Len() int {
	return len(f.keys)
}

// Flatten indexes roots and every nested child. Children may be declared
// nested in Item.Children or flat through Item.Parent; both shapes can be
// mixed. Tracks are built first, then child lists are derived from them. A
// node whose parent chain ends at an unknown id or loops keeps that partial
// track, which later keeps it out of the ordered list.
func Flatten(roots []item.Item) *Forest {
	f := &Forest{nodes: make(map[string]*Node, len(roots))}
	parents := map[string]string{}
	var visit func(it item.Item, parent string)
	visit = func(it item.Item, parent string) {
		if _, dup := f.nodes[it.ID]; dup {
			return
		}
		if parent == "" {
			parent = it.Parent
		}
		children := it.Children
		it.Children = nil
		it.Parent = parent
		f.nodes[it.ID] = &Node{Item: it}
		f.keys = append(f.keys, it.ID)
		parents[it.ID] = parent
		for _, child := range children {
			visit(child, it.ID)
		}
	}
	for _, root := range roots {
		visit(root, "")
	}

	for _, id := range f.keys {
		f.nodes[id].Track = trackOf(id, parents)
	}
	f.normalize()
	return f
}

func trackOf(id string, parents map[string]string) []string {
	var track []string
	seen := map[string]bool{id: true}
	for p := parents[id]; p != ""; p = parents[p] {
		track = append(track, p)
		if seen[p] {
			break
		}
		seen[p] = true
		if _, known := parents[p]; !known {
			break
		}
	}
	for i, j := 0, len(track)-1; i < j; i, j = i+1, j-1 {
		track[i], track[j] = track[j], track[i]
	}
	return track
}

// normalize fills ChildIDs of every parent from the tracks, adding each
// child once.
func (f *Forest) normalize() {
	added := map[string]map[string]bool{}
	for _, id := range f.keys {
		node := f.nodes[id]
		parentID := node.ParentID()
		parent, ok := f.nodes[parentID]
		if !ok {
			continue
		}
		if added[parentID] == nil {
			added[parentID] = map[string]bool{}
		}
		if added[parentID][id] {
			continue
		}
		added[parentID][id] = true
		parent.ChildIDs = append(parent.ChildIDs, id)
	}
}
