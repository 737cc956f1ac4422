// Package offsets keeps per-item size and position bookkeeping for an ordered
// collection. Every record starts one unit after the previous record ends, so
// for i > 0: Start(i) == End(i-1) + 1 and Start(0) == 0.
package offsets

// Record is the size bookkeeping for one item.
type Record struct {
	Size  int
	Start int
	Index int
}

// End returns Start + Size.
func (r Record) End() int {
	return r.Start + r.Size
}

// Table maps item ids to records. Ids must be unique within one rebuild.
type Table struct {
	initialSize int
	ids         []string
	records     []Record
	index       map[string]int
}

// New returns an empty table whose unmeasured items use initialSize.
func New(initialSize int) *Table {
	if initialSize < 0 {
		initialSize = 0
	}
	return &Table{initialSize: initialSize, index: map[string]int{}}
}

// InitialSize returns the size assigned to items that were never measured.
func (t *Table) InitialSize() int {
	return t.initialSize
}

// Len returns the number of tracked items.
func (t *Table) Len() int {
	return len(t.records)
}

// Rebuild recomputes every record for ids in order, keeping the size of ids
// that were already tracked.
func (t *Table) Rebuild(ids []string) {
	t.RebuildFrom(ids, t.Sizes())
}

// RebuildFrom recomputes every record for ids in order. Sizes are taken from
// previous when present, otherwise the initial size is used.
func (t *Table) RebuildFrom(ids []string, previous map[string]int) {
	records := make([]Record, len(ids))
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		size := t.initialSize
		if prev, ok := previous[id]; ok && prev >= 0 {
			size = prev
		}
		start := 0
		if i > 0 {
			start = records[i-1].End() + 1
		}
		records[i] = Record{Size: size, Start: start, Index: i}
		index[id] = i
	}
	t.ids = append(t.ids[:0:0], ids...)
	t.records = records
	t.index = index
}

// Sizes snapshots the current size of every tracked id.
func (t *Table) Sizes() map[string]int {
	sizes := make(map[string]int, len(t.ids))
	for i, id := range t.ids {
		sizes[id] = t.records[i].Size
	}
	return sizes
}

// FixupFrom recomputes Start for index and everything after it.
func (t *Table) FixupFrom(index int) {
	if index < 0 {
		index = 0
	}
	for i := index; i < len(t.records); i++ {
		if i == 0 {
			t.records[i].Start = 0
			continue
		}
		t.records[i].Start = t.records[i-1].End() + 1
	}
}

// Resize sets the size of id and fixes up every following start. It returns
// the record before the change; ok is false when id is not tracked.
func (t *Table) Resize(id string, size int) (before Record, ok bool) {
	idx, ok := t.index[id]
	if !ok {
		return Record{}, false
	}
	if size < 0 {
		size = 0
	}
	before = t.records[idx]
	if before.Size == size {
		return before, true
	}
	t.records[idx].Size = size
	t.FixupFrom(idx + 1)
	return before, true
}

// Record returns the record for id.
func (t *Table) Record(id string) (Record, bool) {
	idx, ok := t.index[id]
	if !ok {
		return Record{}, false
	}
	return t.records[idx], true
}

// IndexOf returns the position of id, or -1.
func (t *Table) IndexOf(id string) int {
	if idx, ok := t.index[id]; ok {
		return idx
	}
	return -1
}

// Start returns the start offset of id.
func (t *Table) Start(id string) (int, bool) {
	rec, ok := t.Record(id)
	return rec.Start, ok
}

// End returns the end offset of id.
func (t *Table) End(id string) (int, bool) {
	rec, ok := t.Record(id)
	return rec.End(), ok
}

// At returns the record at position i.
func (t *Table) At(i int) (Record, bool) {
	if i < 0 || i >= len(t.records) {
		return Record{}, false
	}
	return t.records[i], true
}

// IDAt returns the id at position i, or "" when out of range.
func (t *Table) IDAt(i int) string {
	if i < 0 || i >= len(t.ids) {
		return ""
	}
	return t.ids[i]
}

// StartAt returns the start offset at position i. i must be in range.
func (t *Table) StartAt(i int) int {
	return t.records[i].Start
}

// EndAt returns the end offset at position i. i must be in range.
func (t *Table) EndAt(i int) int {
	return t.records[i].End()
}

// Total returns the full extent of the collection: the end of the last
// record, or 0 when empty.
func (t *Table) Total() int {
	if len(t.records) == 0 {
		return 0
	}
	return t.records[len(t.records)-1].End()
}
