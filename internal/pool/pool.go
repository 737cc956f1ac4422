// Package pool recycles view handles so that scrolling rebinds existing views
// to new items instead of allocating fresh ones.
package pool

import (
	"sort"

	"github.com/atomicstack/uvlist/internal/item"
	"github.com/atomicstack/uvlist/internal/logging/events"
)

// View binds a pool slot to an item. UID stays stable while the bound item
// changes, so renderers can key on it across recycling.
type View struct {
	UID   int
	Item  item.Item
	Index int
	Ready bool
	Used  bool
}

// Pool owns every view created for one list. At most one ready view is bound
// to a given item id.
type Pool struct {
	seq      int
	ready    []*View
	bound    map[string]*View
	prepared []*View
	unused   []*View
}

// New returns an empty pool.
func New() *Pool {
	return &Pool{bound: map[string]*View{}}
}

// Acquire binds a ready view to it. A view already ready for it.ID is
// rebound in place; otherwise a view prepared for the item is preferred, then
// any unused view, and only then a new allocation.
func (p *Pool) Acquire(it item.Item, index int) *View {
	if v, ok := p.bound[it.ID]; ok {
		v.Item = it
		v.Index = index
		return v
	}
	v := p.takePrepared(it.ID)
	if v == nil {
		v = p.take()
	}
	v.Item = it
	v.Index = index
	v.Ready = true
	v.Used = true
	p.ready = append(p.ready, v)
	p.bound[it.ID] = v
	return v
}

// Prepare binds a not-ready view to it so the host can measure the item
// before it becomes resident. It returns nil when a ready view already
// exists for the item.
func (p *Pool) Prepare(it item.Item, index int) *View {
	if _, ok := p.bound[it.ID]; ok {
		return nil
	}
	for _, v := range p.prepared {
		if v.Item.ID == it.ID {
			v.Item = it
			v.Index = index
			return v
		}
	}
	v := p.take()
	v.Item = it
	v.Index = index
	v.Ready = false
	v.Used = true
	p.prepared = append(p.prepared, v)
	return v
}

// Release returns v to the unused list. The view itself is kept for reuse.
func (p *Pool) Release(v *View) {
	if v == nil || (!v.Used && !v.Ready) {
		return
	}
	if v.Ready {
		if bound, ok := p.bound[v.Item.ID]; ok && bound == v {
			delete(p.bound, v.Item.ID)
		}
		p.ready = removeView(p.ready, v)
	} else {
		p.prepared = removeView(p.prepared, v)
	}
	v.Ready = false
	v.Used = false
	p.unused = append(p.unused, v)
}

// ReleasePrepared returns every prepared view to the unused list.
func (p *Pool) ReleasePrepared() {
	for _, v := range p.prepared {
		v.Used = false
		p.unused = append(p.unused, v)
	}
	p.prepared = p.prepared[:0]
}

// Reconcile makes the ready set equal to items, where items[i] sits at
// position offset+i. Views for items that left are released before views
// for entering items are acquired, so steady scrolling reuses views instead
// of allocating. The ready views are returned sorted by index.
func (p *Pool) Reconcile(items []item.Item, offset int) []*View {
	wanted := make(map[string]int, len(items))
	for i, it := range items {
		wanted[it.ID] = offset + i
	}
	kept := p.ready[:0]
	for _, v := range p.ready {
		if idx, ok := wanted[v.Item.ID]; ok {
			v.Index = idx
			kept = append(kept, v)
			continue
		}
		delete(p.bound, v.Item.ID)
		v.Ready = false
		v.Used = false
		p.unused = append(p.unused, v)
	}
	p.ready = kept
	for i, it := range items {
		p.Acquire(it, offset+i)
	}
	sort.SliceStable(p.ready, func(i, j int) bool {
		return p.ready[i].Index < p.ready[j].Index
	})
	return p.ready
}

// Ready returns the ready views in index order as of the last Reconcile.
func (p *Pool) Ready() []*View {
	return p.ready
}

// Prepared returns the views bound for measurement only.
func (p *Pool) Prepared() []*View {
	return p.prepared
}

// Find returns the ready view bound to id.
func (p *Pool) Find(id string) (*View, bool) {
	v, ok := p.bound[id]
	return v, ok
}

// Allocated returns how many views were ever created.
func (p *Pool) Allocated() int {
	return p.seq
}

// Unused returns the number of idle views.
func (p *Pool) Unused() int {
	return len(p.unused)
}

func (p *Pool) take() *View {
	if n := len(p.unused); n > 0 {
		v := p.unused[n-1]
		p.unused[n-1] = nil
		p.unused = p.unused[:n-1]
		return v
	}
	p.seq++
	events.Pool.Allocate(p.seq, p.seq)
	return &View{UID: p.seq}
}

func (p *Pool) takePrepared(id string) *View {
	for i, v := range p.prepared {
		if v.Item.ID == id {
			p.prepared = append(p.prepared[:i], p.prepared[i+1:]...)
			return v
		}
	}
	return nil
}

func removeView(views []*View, target *View) []*View {
	for i, v := range views {
		if v == target {
			return append(views[:i], views[i+1:]...)
		}
	}
	return views
}
