package state

import "testing"

type ids []string

func (s ids) Len() int { return len(s) }

func (s ids) IDAt(i int) string { return s[i] }

func (s ids) IndexOf(id string) int {
	for i, v := range s {
		if v == id {
			return i
		}
	}
	return -1
}

func TestMoveCursorHome(t *testing.T) {
	src := ids{"a", "b", "c"}
	c := &Cursor{Index: 2, ID: "c"}
	if !c.MoveHome(src) {
		t.Fatalf("expected move when items exist")
	}
	if c.Index != 0 || c.ID != "a" {
		t.Fatalf("expected cursor at a, got %d %q", c.Index, c.ID)
	}

	empty := &Cursor{Index: 5}
	if empty.MoveHome(ids{}) {
		t.Fatalf("expected no movement for empty list")
	}
	if empty.Index != 0 {
		t.Fatalf("expected cursor reset to 0, got %d", empty.Index)
	}
}

func TestMoveCursorEnd(t *testing.T) {
	src := ids{"a", "b", "c"}
	c := &Cursor{}
	if !c.MoveEnd(src) {
		t.Fatalf("expected movement to end")
	}
	if c.Index != 2 {
		t.Fatalf("expected cursor 2, got %d", c.Index)
	}
	if c.MoveEnd(src) {
		t.Fatalf("expected no movement when already at end")
	}
}

func TestMoveCursorPaging(t *testing.T) {
	src := ids{"a", "b", "c", "d", "e"}
	c := &Cursor{}
	if !c.MovePageDown(src, 2) {
		t.Fatalf("expected movement on first page down")
	}
	if c.Index != 2 {
		t.Fatalf("expected cursor 2, got %d", c.Index)
	}
	if !c.MovePageDown(src, 2) {
		t.Fatalf("expected movement on second page down")
	}
	if c.Index != 4 {
		t.Fatalf("expected cursor 4, got %d", c.Index)
	}
	if c.MovePageDown(src, 2) {
		t.Fatalf("expected no further movement past end")
	}
	if !c.MovePageUp(src, 2) {
		t.Fatalf("expected movement on page up")
	}
	if c.Index != 2 {
		t.Fatalf("expected cursor 2 after page up, got %d", c.Index)
	}
	if !c.MovePageUp(src, 10) {
		t.Fatalf("expected movement back to start")
	}
	if c.Index != 0 {
		t.Fatalf("expected cursor at start, got %d", c.Index)
	}
}

func TestSyncFollowsID(t *testing.T) {
	c := &Cursor{}
	c.Set(ids{"a", "b", "c"}, 1)
	if !c.Sync(ids{"z", "a", "b", "c"}) {
		t.Fatalf("expected index to move after unshift")
	}
	if c.Index != 2 || c.ID != "b" {
		t.Fatalf("expected cursor to follow b to 2, got %d %q", c.Index, c.ID)
	}
}

func TestSyncClampsWhenItemLeaves(t *testing.T) {
	c := &Cursor{}
	c.Set(ids{"a", "b", "c"}, 2)
	c.Sync(ids{"a", "b"})
	if c.Index != 1 || c.ID != "b" {
		t.Fatalf("expected cursor clamped to b, got %d %q", c.Index, c.ID)
	}
	c.Sync(ids{})
	if c.Index != 0 || c.ID != "" {
		t.Fatalf("expected cursor reset on empty list, got %d %q", c.Index, c.ID)
	}
}

func TestSetRejectsOutOfRange(t *testing.T) {
	c := &Cursor{}
	if c.Set(ids{"a"}, 3) || c.Set(ids{"a"}, -1) {
		t.Fatalf("expected out-of-range set to be rejected")
	}
}
