package app

import (
	"testing"
	"time"

	"github.com/atomicstack/uvlist/internal/item"
)

func countNodes(items []item.Item) int {
	n := len(items)
	for _, it := range items {
		n += countNodes(it.Children)
	}
	return n
}

func TestOptionsBuildsFlatList(t *testing.T) {
	opts, f, err := Options(Config{Count: 50, PageSize: 10, MaxItems: 80, Seed: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f != nil {
		t.Fatalf("expected no feed without an interval")
	}
	if len(opts.Items) != 50 || opts.Generator == nil || opts.PageSize != 10 || opts.MaxItems != 80 {
		t.Fatalf("expected flat list options, got %d items page %d max %d", len(opts.Items), opts.PageSize, opts.MaxItems)
	}
}

func TestOptionsStartsFeed(t *testing.T) {
	opts, f, err := Options(Config{Count: 5, FeedInterval: time.Hour, Seed: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f == nil || opts.Feed != f {
		t.Fatalf("expected feed to be wired into the options")
	}
	f.Stop()
	f.Wait()
}

func TestOptionsBuildsTree(t *testing.T) {
	opts, f, err := Options(Config{Tree: true, Count: 42, TreeDepth: 2, TreeFanout: 5, FeedInterval: time.Second, Seed: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f != nil || opts.Generator != nil {
		t.Fatalf("expected tree mode to skip the feed and paging")
	}
	if len(opts.Items) != 7 {
		t.Fatalf("expected 7 roots, got %d", len(opts.Items))
	}
	if got := countNodes(opts.Items); got != 42 {
		t.Fatalf("expected 42 nodes, got %d", got)
	}
}

func TestOptionsRejectsUnknownRenderer(t *testing.T) {
	if _, _, err := Options(Config{Renderer: "html"}); err == nil {
		t.Fatalf("expected error for unknown renderer")
	}
}
