package config

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Engine.InitialSize != 1 || cfg.App.Engine.Buffer != 4 || cfg.App.Engine.Overscan != 5 {
		t.Fatalf("expected engine defaults, got %+v", cfg.App.Engine)
	}
	if !cfg.App.Keyboard || cfg.App.Count != 1000 || cfg.App.OpenPadding != 2 || cfg.App.Renderer != "plain" {
		t.Fatalf("unexpected app defaults %+v", cfg.App)
	}
	if !reflect.DeepEqual(cfg.App.TreeOptions.Search.Fields, []string{"label"}) {
		t.Fatalf("expected label search field, got %v", cfg.App.TreeOptions.Search.Fields)
	}
	if cfg.Flags["overscan"] != "5" {
		t.Fatalf("expected overscan flag recorded, got %q", cfg.Flags["overscan"])
	}
}

func TestLoadArgsFlagsOverrideEnv(t *testing.T) {
	env := []string{"UVLIST_PAGE_SIZE=25", "UVLIST_TREE=true", "UVLIST_SEARCH_THROTTLE=150", "UVLIST_WIDTH=90"}
	args := []string{"-width", "70", "-search-fields", "label, path", "-vim"}
	cfg, err := LoadArgs(args, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.PageSize != 25 || !cfg.App.Tree {
		t.Fatalf("expected env values applied, got page %d tree %v", cfg.App.PageSize, cfg.App.Tree)
	}
	if cfg.App.Width != 70 {
		t.Fatalf("expected flag to win over env, got width %d", cfg.App.Width)
	}
	if cfg.App.TreeOptions.Search.Throttle != 150*time.Millisecond {
		t.Fatalf("expected 150ms throttle, got %v", cfg.App.TreeOptions.Search.Throttle)
	}
	if !reflect.DeepEqual(cfg.App.TreeOptions.Search.Fields, []string{"label", "path"}) {
		t.Fatalf("expected trimmed field list, got %v", cfg.App.TreeOptions.Search.Fields)
	}
	if !cfg.App.Vim {
		t.Fatalf("expected vim enabled")
	}
	if !reflect.DeepEqual(cfg.Args, args) {
		t.Fatalf("expected args preserved, got %v", cfg.Args)
	}
}

func TestLoadArgsInvalidEnvFallsBack(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"UVLIST_COUNT=lots", "UVLIST_STATS=maybe"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Count != 1000 || cfg.App.ShowStats {
		t.Fatalf("expected defaults for unparsable env, got count %d stats %v", cfg.App.Count, cfg.App.ShowStats)
	}
}

func TestLoadArgsRejectsNegativeSizes(t *testing.T) {
	for _, args := range [][]string{
		{"-buffer", "-1"},
		{"-overscan", "-2"},
		{"-page-size", "-5"},
		{"-height", "-1"},
		{"-initial-size", "0"},
	} {
		if _, err := LoadArgs(args, nil); err == nil {
			t.Fatalf("expected error for %v", args)
		}
	}
}

func TestLoadArgsRejectsUnknownRenderer(t *testing.T) {
	_, err := LoadArgs([]string{"-renderer", "html"}, nil)
	if err == nil || !strings.Contains(err.Error(), "renderer") {
		t.Fatalf("expected renderer error, got %v", err)
	}
}

func TestValidateCountAgainstMaxItems(t *testing.T) {
	cfg, err := LoadArgs([]string{"-count", "50", "-max-items", "40"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected validation error")
	}
	cfg.App.MaxItems = 0
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected unbounded config to validate, got %v", err)
	}
}
