package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/atomicstack/uvlist/internal/config"
)

func TestProbeTerminalReportsEveryFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()

	info := probeTerminal(f, nil, f)
	if len(info.Descriptors) != 2 {
		t.Fatalf("expected 2 descriptors, got %d", len(info.Descriptors))
	}
	if info.Descriptors[0].Name != path || info.Descriptors[0].IsTerminal {
		t.Fatalf("expected a non-terminal entry for %s, got %+v", path, info.Descriptors[0])
	}
	if info.Source != "" || info.Width != 0 {
		t.Fatalf("expected no detected size for regular files, got %+v", info)
	}
}

func TestStartupInfoCarriesConfig(t *testing.T) {
	cfg, err := config.LoadArgs([]string{"-width", "80", "-tree"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	info := newStartupInfo(cfg)

	if info.Flags["width"] != "80" || info.Flags["tree"] != "true" {
		t.Fatalf("expected parsed flags, got %v", info.Flags)
	}
	if info.App.Width != 80 || !info.App.Tree {
		t.Fatalf("expected app config to carry the flags, got %+v", info.App)
	}
	if len(info.Terminal.Descriptors) != 0 {
		t.Fatalf("expected no descriptors without files, got %d", len(info.Terminal.Descriptors))
	}
	if info.Executable == "" && len(info.Errors) == 0 {
		t.Fatalf("expected executable or an error entry")
	}
}
