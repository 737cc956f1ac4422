package dispatcher

import (
	"github.com/atomicstack/uvlist/internal/feed"
	"github.com/atomicstack/uvlist/internal/item"
)

// Result reports how an event changed the collection.
type Result struct {
	Items   []item.Item
	Updated bool
	Added   int
}

// Dispatcher applies feed events to a collection. A positive max caps the
// collection size; items beyond it are dropped from the end.
type Dispatcher struct {
	max int
}

func New(maxItems int) *Dispatcher {
	return &Dispatcher{max: maxItems}
}

// Handle returns the collection after evt. The input slice is never
// modified, so a caller holding the old collection can still diff against it.
func (d *Dispatcher) Handle(items []item.Item, evt feed.Event) Result {
	res := Result{Items: items}
	if evt.Err != nil {
		return res
	}
	var next []item.Item
	switch evt.Kind {
	case feed.Append, feed.Push:
		if len(evt.Items) == 0 {
			return res
		}
		next = make([]item.Item, 0, len(items)+len(evt.Items))
		next = append(next, items...)
		next = append(next, evt.Items...)
	case feed.Unshift:
		if len(evt.Items) == 0 {
			return res
		}
		next = make([]item.Item, 0, len(items)+len(evt.Items))
		next = append(next, evt.Items...)
		next = append(next, items...)
	case feed.Swap:
		if len(items) < 2 {
			return res
		}
		next = item.Clone(items)
		next[0], next[1] = next[1], next[0]
	default:
		return res
	}
	if d.max > 0 && len(next) > d.max {
		next = next[:d.max]
	}
	res.Items = next
	res.Updated = true
	res.Added = max(0, len(next)-len(items))
	return res
}
