package tree

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Compare orders two siblings. It returns a negative number when a sorts
// before b, zero when they are equal and a positive number otherwise.
type Compare func(a, b *Node) int

// CompareBy returns the default comparator on field. Numbers compare
// numerically, including strings that parse as numbers; other strings
// compare case-insensitively. An empty field returns nil, which keeps input
// order.
func CompareBy(field string) Compare {
	if field == "" {
		return nil
	}
	return func(a, b *Node) int {
		av, aok := a.Field(field)
		bv, bok := b.Field(field)
		switch {
		case !aok && !bok:
			return 0
		case !aok:
			return 1
		case !bok:
			return -1
		}
		return compareValues(av, bv)
	}
}

func compareValues(a, b interface{}) int {
	af, aNum := number(a)
	bf, bNum := number(b)
	switch {
	case aNum && bNum:
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		}
		return 0
	case aNum:
		return -1
	case bNum:
		return 1
	}
	return strings.Compare(strings.ToLower(fmt.Sprint(a)), strings.ToLower(fmt.Sprint(b)))
}

func number(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}
	return 0, false
}

// Ordered lists every reachable node with each parent immediately followed
// by its whole subtree. Siblings are sorted with cmp when it is non-nil.
// Nodes whose parent never makes it into the list are left out together with
// their subtree.
func Ordered(f *Forest, cmp Compare) []*Node {
	keys := append([]string(nil), f.keys...)
	children := make(map[string][]string, len(f.nodes))
	for id, n := range f.nodes {
		if len(n.ChildIDs) > 0 {
			children[id] = append([]string(nil), n.ChildIDs...)
		}
	}
	if cmp != nil {
		byID := func(ids []string) func(i, j int) bool {
			return func(i, j int) bool {
				return cmp(f.nodes[ids[i]], f.nodes[ids[j]]) < 0
			}
		}
		sort.SliceStable(keys, byID(keys))
		for _, ids := range children {
			sort.SliceStable(ids, byID(ids))
		}
	}

	list := make([]*Node, 0, len(keys))
	present := make(map[string]bool, len(keys))
	var add func(id string)
	add = func(id string) {
		node, ok := f.nodes[id]
		if !ok || present[id] {
			return
		}
		if parent := node.ParentID(); parent != "" && !present[parent] {
			return
		}
		present[id] = true
		list = append(list, node)
		for _, child := range children[id] {
			add(child)
		}
	}
	for _, id := range keys {
		add(id)
	}
	return list
}
