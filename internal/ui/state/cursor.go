package state

// Source is the list a Cursor moves over.
type Source interface {
	Len() int
	IndexOf(id string) int
	IDAt(i int) string
}

// Cursor tracks the highlighted row by position and by id, so it can follow
// its item when the collection changes.
type Cursor struct {
	Index int
	ID    string
}

// Sync re-resolves the cursor after the source changed. The cursor follows
// its id when the item is still present and otherwise keeps its position,
// clamped to the new length. It reports whether the index moved.
func (c *Cursor) Sync(src Source) bool {
	old := c.Index
	n := src.Len()
	if n == 0 {
		c.Index = 0
		c.ID = ""
		return old != c.Index
	}
	if c.ID != "" {
		if idx := src.IndexOf(c.ID); idx >= 0 {
			c.Index = idx
			return old != c.Index
		}
	}
	c.Index = min(max(0, c.Index), n-1)
	c.ID = src.IDAt(c.Index)
	return old != c.Index
}

// Set moves the cursor to index when it is in range.
func (c *Cursor) Set(src Source, index int) bool {
	if index < 0 || index >= src.Len() {
		return false
	}
	old := c.Index
	c.Index = index
	c.ID = src.IDAt(index)
	return old != c.Index
}

// MoveHome moves the cursor to the first item.
func (c *Cursor) MoveHome(src Source) bool {
	return c.moveTo(src, 0)
}

// MoveEnd moves the cursor to the last item.
func (c *Cursor) MoveEnd(src Source) bool {
	return c.moveTo(src, src.Len()-1)
}

// MoveBy moves the cursor delta rows, clamped to the list.
func (c *Cursor) MoveBy(src Source, delta int) bool {
	return c.moveTo(src, c.Index+delta)
}

// MovePageUp moves the cursor up by the given page size.
func (c *Cursor) MovePageUp(src Source, page int) bool {
	return c.MoveBy(src, -pageSize(src.Len(), page))
}

// MovePageDown moves the cursor down by the given page size.
func (c *Cursor) MovePageDown(src Source, page int) bool {
	return c.MoveBy(src, pageSize(src.Len(), page))
}

func (c *Cursor) moveTo(src Source, index int) bool {
	n := src.Len()
	if n == 0 {
		c.Index = 0
		c.ID = ""
		return false
	}
	old := c.Index
	c.Index = min(max(0, index), n-1)
	c.ID = src.IDAt(c.Index)
	return c.Index != old
}

func pageSize(total, page int) int {
	if total == 0 {
		return 0
	}
	size := page
	if size <= 0 || size > total {
		size = total
	}
	return max(1, size)
}
