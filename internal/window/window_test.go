package window

import "testing"

type fixed struct {
	sizes []int
}

func (f fixed) Len() int { return len(f.sizes) }

func (f fixed) StartAt(i int) int {
	start := 0
	for j := 0; j < i; j++ {
		start += f.sizes[j] + 1
	}
	return start
}

func (f fixed) EndAt(i int) int { return f.StartAt(i) + f.sizes[i] }

func uniform(n, size int) fixed {
	sizes := make([]int, n)
	for i := range sizes {
		sizes[i] = size
	}
	return fixed{sizes: sizes}
}

func TestComputeEmpty(t *testing.T) {
	r := Compute(uniform(0, 10), Params{Viewport: 100})
	if r != (Range{}) {
		t.Fatalf("expected empty range, got %+v", r)
	}
}

func TestComputeAtTop(t *testing.T) {
	// items are 9 wide plus one gap, so item i spans [10i, 10i+9]
	e := uniform(100, 9)
	r := Compute(e, Params{ScrollTop: 0, Viewport: 50, Buffer: 0, Overscan: 5})
	if r.VisibleFirst != 0 {
		t.Fatalf("expected visible first 0, got %d", r.VisibleFirst)
	}
	if r.VisibleLast != 6 {
		t.Fatalf("expected visible last 6, got %d", r.VisibleLast)
	}
	if r.First != 0 || r.Last != 11 {
		t.Fatalf("expected resident [0,11), got [%d,%d)", r.First, r.Last)
	}
}

func TestComputeMiddleWithBuffer(t *testing.T) {
	e := uniform(100, 9)
	r := Compute(e, Params{ScrollTop: 500, Viewport: 50, Buffer: 20, Overscan: 2})
	if r.VisibleFirst != 48 {
		t.Fatalf("expected visible first 48, got %d", r.VisibleFirst)
	}
	if r.VisibleLast != 58 {
		t.Fatalf("expected visible last 58, got %d", r.VisibleLast)
	}
	if r.First != 46 || r.Last != 60 {
		t.Fatalf("expected resident [46,60), got [%d,%d)", r.First, r.Last)
	}
	if !r.Contains(46) || r.Contains(60) {
		t.Fatalf("unexpected containment for %+v", r)
	}
}

func TestComputeClampsAtEnd(t *testing.T) {
	e := uniform(10, 9)
	r := Compute(e, Params{ScrollTop: 60, Viewport: 50, Overscan: 5})
	if r.Last != 10 {
		t.Fatalf("expected last clamped to 10, got %d", r.Last)
	}
	if r.First != 1 {
		t.Fatalf("expected first 1, got %d", r.First)
	}
}

func TestFirstVisibleFallsBackToZeroPastEnd(t *testing.T) {
	e := uniform(10, 9)
	if got := FirstVisible(e, 10000, 0); got != 0 {
		t.Fatalf("expected fallback 0, got %d", got)
	}
}

func TestComputeIsMonotonicInScrollTop(t *testing.T) {
	e := fixed{sizes: []int{3, 40, 1, 1, 7, 22, 5, 5, 5, 90, 2, 8, 13, 1, 4}}
	total := e.EndAt(e.Len() - 1)
	prev := Compute(e, Params{ScrollTop: 0, Viewport: 20, Buffer: 3, Overscan: 1})
	for top := 1; top <= total; top++ {
		cur := Compute(e, Params{ScrollTop: top, Viewport: 20, Buffer: 3, Overscan: 1})
		if cur.First < prev.First || cur.Last < prev.Last {
			t.Fatalf("range went backwards at top=%d: %+v -> %+v", top, prev, cur)
		}
		prev = cur
	}
}

func TestIndexAt(t *testing.T) {
	e := uniform(5, 9)
	cases := map[int]int{0: 0, 8: 0, 9: 1, 10: 1, 25: 2, 48: 4, 49: -1}
	for offset, want := range cases {
		if got := IndexAt(e, offset); got != want {
			t.Fatalf("IndexAt(%d): expected %d, got %d", offset, want, got)
		}
	}
}
