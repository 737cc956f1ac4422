// Package item defines the application record rendered by the list and tree.
package item

import (
	"fmt"
	"strconv"
)

// Item is an application record identified by a stable ID. Parent and
// Children are only read by the tree layer; the list engine ignores them.
type Item struct {
	ID       string
	Label    string
	Parent   string
	Children []Item
	Fields   map[string]interface{}
}

// Field returns the named value. "id" and "label" resolve to the struct
// fields, anything else is looked up in Fields.
func (i Item) Field(name string) (interface{}, bool) {
	switch name {
	case "id":
		return i.ID, true
	case "label":
		return i.Label, true
	}
	if i.Fields == nil {
		return nil, false
	}
	v, ok := i.Fields[name]
	return v, ok
}

// Text returns the named field formatted as a string.
func (i Item) Text(name string) (string, bool) {
	v, ok := i.Field(name)
	if !ok || v == nil {
		return "", false
	}
	switch value := v.(type) {
	case string:
		return value, true
	case int:
		return strconv.Itoa(value), true
	case fmt.Stringer:
		return value.String(), true
	default:
		return fmt.Sprint(value), true
	}
}

// ID formats an integer identifier.
func ID(n int) string {
	return strconv.Itoa(n)
}

// IDs returns the identifiers of items in order.
func IDs(items []Item) []string {
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}

// Dedup drops every item whose ID already appeared earlier in the slice.
// The input is returned unchanged when it has no duplicates.
func Dedup(items []Item) []Item {
	seen := make(map[string]struct{}, len(items))
	for i, it := range items {
		if _, ok := seen[it.ID]; ok {
			return dedupFrom(items, i, seen)
		}
		seen[it.ID] = struct{}{}
	}
	return items
}

func dedupFrom(items []Item, from int, seen map[string]struct{}) []Item {
	out := make([]Item, from, len(items))
	copy(out, items[:from])
	for _, it := range items[from:] {
		if _, ok := seen[it.ID]; ok {
			continue
		}
		seen[it.ID] = struct{}{}
		out = append(out, it)
	}
	return out
}

// Clone produces a shallow copy of the provided items.
func Clone(items []Item) []Item {
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}
