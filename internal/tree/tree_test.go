package tree

import (
	"reflect"
	"testing"

	"github.com/atomicstack/uvlist/internal/item"
)

func ids(nodes []*Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.ID
	}
	return out
}

func flat(pairs ...string) []item.Item {
	out := make([]item.Item, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, item.Item{ID: pairs[i], Label: pairs[i], Parent: pairs[i+1]})
	}
	return out
}

func sample() []item.Item {
	return []item.Item{
		{ID: "X", Label: "x", Children: []item.Item{
			{ID: "Y", Label: "y", Children: []item.Item{{ID: "Z", Label: "z"}}},
			{ID: "W", Label: "w"},
		}},
	}
}

func TestOrderedParentsPrecedeSubtree(t *testing.T) {
	f := Flatten(flat("1", "", "2", "1", "3", "", "4", "2"))
	for _, cmp := range []Compare{nil, CompareBy("id")} {
		got := ids(Ordered(f, cmp))
		want := []string{"1", "2", "4", "3"}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestOrderedChildBeforeParentInInput(t *testing.T) {
	f := Flatten(flat("4", "2", "2", "1", "3", "", "1", ""))
	got := ids(Ordered(f, CompareBy("id")))
	want := []string{"1", "2", "4", "3"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFlattenNestedTracks(t *testing.T) {
	f := Flatten(sample())
	z, ok := f.Node("Z")
	if !ok {
		t.Fatalf("expected nested node to be indexed")
	}
	if !reflect.DeepEqual(z.Track, []string{"X", "Y"}) {
		t.Fatalf("expected track [X Y], got %v", z.Track)
	}
	if z.Depth() != 2 || z.ParentID() != "Y" {
		t.Fatalf("expected depth 2 under Y, got depth %d parent %q", z.Depth(), z.ParentID())
	}
	x, _ := f.Node("X")
	if !reflect.DeepEqual(x.ChildIDs, []string{"Y", "W"}) {
		t.Fatalf("expected children [Y W], got %v", x.ChildIDs)
	}
	if x.Children != nil {
		t.Fatalf("expected nested children to be moved into ChildIDs")
	}
}

func TestFlattenMixedShapes(t *testing.T) {
	roots := append(sample(), item.Item{ID: "V", Label: "v", Parent: "Y"})
	f := Flatten(roots)
	y, _ := f.Node("Y")
	if !reflect.DeepEqual(y.ChildIDs, []string{"Z", "V"}) {
		t.Fatalf("expected children [Z V], got %v", y.ChildIDs)
	}
	got := ids(Ordered(f, nil))
	want := []string{"X", "Y", "Z", "V", "W"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestOrderedOmitsMissingParentSubtree(t *testing.T) {
	f := Flatten(flat("1", "", "2", "99", "3", "2"))
	got := ids(Ordered(f, nil))
	if !reflect.DeepEqual(got, []string{"1"}) {
		t.Fatalf("expected only the root, got %v", got)
	}
}

func TestOrderedSurvivesCycles(t *testing.T) {
	f := Flatten(flat("a", "b", "b", "a", "c", "", "s", "s"))
	got := ids(Ordered(f, nil))
	if !reflect.DeepEqual(got, []string{"c"}) {
		t.Fatalf("expected cyclic nodes to be omitted, got %v", got)
	}
}

func TestCompareByNumbersThenStrings(t *testing.T) {
	f := Flatten(flat("b", "", "10", "", "A", "", "9", ""))
	got := ids(Ordered(f, CompareBy("id")))
	want := []string{"9", "10", "A", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestCompareByNumericField(t *testing.T) {
	roots := []item.Item{
		{ID: "a", Fields: map[string]interface{}{"rank": 3}},
		{ID: "b", Fields: map[string]interface{}{"rank": 1.5}},
		{ID: "c"},
		{ID: "d", Fields: map[string]interface{}{"rank": 2}},
	}
	got := ids(Ordered(Flatten(roots), CompareBy("rank")))
	want := []string{"b", "d", "a", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestCollapseClearsDescendants(t *testing.T) {
	tr := New(Options{})
	tr.SetItems(sample())
	if got := ids(tr.Visible()); !reflect.DeepEqual(got, []string{"X"}) {
		t.Fatalf("expected only the root, got %v", got)
	}
	tr.Expand("X")
	tr.Expand("Y")
	if got := ids(tr.Visible()); !reflect.DeepEqual(got, []string{"X", "Y", "Z", "W"}) {
		t.Fatalf("expected fully expanded tree, got %v", got)
	}
	tr.Collapse("X")
	if got := ids(tr.Visible()); !reflect.DeepEqual(got, []string{"X"}) {
		t.Fatalf("expected collapsed root, got %v", got)
	}
	tr.Expand("X")
	if got := ids(tr.Visible()); !reflect.DeepEqual(got, []string{"X", "Y", "W"}) {
		t.Fatalf("expected immediate children only, got %v", got)
	}
	if tr.Expanded("Y") {
		t.Fatalf("expected Y to start collapsed")
	}
}

func TestCollapsePinsBandDefaults(t *testing.T) {
	tr := New(Options{Band: Band{ShowDepth: 2}})
	tr.SetItems(sample())
	if got := ids(tr.Visible()); !reflect.DeepEqual(got, []string{"X", "Y", "Z", "W"}) {
		t.Fatalf("expected band to open two levels, got %v", got)
	}
	tr.Collapse("X")
	tr.Expand("X")
	if got := ids(tr.Visible()); !reflect.DeepEqual(got, []string{"X", "Y", "W"}) {
		t.Fatalf("expected Y to stay closed after re-expanding X, got %v", got)
	}
}

func TestTrackShiftHidesShallowLevels(t *testing.T) {
	tr := New(Options{Band: Band{TrackShift: 1, ShowDepth: 1}})
	tr.SetItems(sample())
	if got := ids(tr.Visible()); !reflect.DeepEqual(got, []string{"Y", "W"}) {
		t.Fatalf("expected shifted roots, got %v", got)
	}
	if tr.Indent("Z") != 1 || tr.Indent("Y") != 0 {
		t.Fatalf("expected indents relative to the band, got Y=%d Z=%d", tr.Indent("Y"), tr.Indent("Z"))
	}
}

func TestToggleIgnoresLeaves(t *testing.T) {
	tr := New(Options{})
	tr.SetItems(sample())
	if _, ok := tr.Toggle("W"); ok {
		t.Fatalf("expected leaf toggle to be ignored")
	}
	if _, ok := tr.Toggle("missing"); ok {
		t.Fatalf("expected unknown toggle to be ignored")
	}
	open, ok := tr.Toggle("X")
	if !ok || !open {
		t.Fatalf("expected X to open, got open=%v ok=%v", open, ok)
	}
}

func searchTree(params SearchParams) *Tree {
	tr := New(Options{Search: params})
	tr.SetItems([]item.Item{
		{ID: "r", Label: "root", Children: []item.Item{
			{ID: "a", Label: "branch", Children: []item.Item{
				{ID: "n", Label: "Needle"},
				{ID: "h", Label: "hay"},
			}},
			{ID: "b", Label: "other"},
		}},
		{ID: "s", Label: "second"},
	})
	return tr
}

func TestSearchIncludesAncestors(t *testing.T) {
	tr := searchTree(SearchParams{MinimalQueryLength: 1})
	if matches := tr.Search("needle"); matches != 1 {
		t.Fatalf("expected 1 match, got %d", matches)
	}
	if got := ids(tr.Visible()); !reflect.DeepEqual(got, []string{"r", "a", "n"}) {
		t.Fatalf("expected leaf with ancestors, got %v", got)
	}
	if !tr.Expanded("a") {
		t.Fatalf("expected ancestors to render expanded while searching")
	}
	tr.Search("")
	if got := ids(tr.Visible()); !reflect.DeepEqual(got, []string{"r", "s"}) {
		t.Fatalf("expected normal view after clearing search, got %v", got)
	}
}

func TestSearchCaseSensitivity(t *testing.T) {
	tr := searchTree(SearchParams{CaseSensitive: true})
	if matches := tr.Search("needle"); matches != 0 {
		t.Fatalf("expected no case-sensitive match, got %d", matches)
	}
	if matches := tr.Search("Needle"); matches != 1 {
		t.Fatalf("expected 1 case-sensitive match, got %d", matches)
	}
}

func TestSearchMinimalLength(t *testing.T) {
	tr := searchTree(SearchParams{MinimalQueryLength: 3})
	tr.Search("ne")
	if tr.Searching() {
		t.Fatalf("expected short query to be ignored")
	}
	if got := ids(tr.Visible()); !reflect.DeepEqual(got, []string{"r", "s"}) {
		t.Fatalf("expected normal view for short query, got %v", got)
	}
}

func TestSearchFuzzyAndFields(t *testing.T) {
	tr := searchTree(SearchParams{Fuzzy: true})
	if matches := tr.Search("ndl"); matches != 1 {
		t.Fatalf("expected fuzzy match, got %d", matches)
	}
	byID := searchTree(SearchParams{Fields: []string{"id"}})
	byID.Search("h")
	if got := ids(byID.Visible()); !reflect.DeepEqual(got, []string{"r", "a", "h"}) {
		t.Fatalf("expected id match with ancestors, got %v", got)
	}
}

func TestResetCollapsesAll(t *testing.T) {
	tr := New(Options{Band: Band{ShowDepth: 3}})
	tr.SetItems(sample())
	tr.Search("z")
	tr.Reset()
	if tr.Query() != "" {
		t.Fatalf("expected reset to clear the query")
	}
	if got := ids(tr.Visible()); !reflect.DeepEqual(got, []string{"X"}) {
		t.Fatalf("expected everything collapsed, got %v", got)
	}
}

func TestVisualStateSurvivesSetItems(t *testing.T) {
	tr := New(Options{})
	tr.SetItems(sample())
	tr.Expand("X")
	tr.SetItems(append(sample(), item.Item{ID: "Q", Label: "q", Parent: "X"}))
	if got := ids(tr.Visible()); !reflect.DeepEqual(got, []string{"X", "Y", "W", "Q"}) {
		t.Fatalf("expected X to stay open across updates, got %v", got)
	}
}
