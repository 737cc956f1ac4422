package logging

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTraceWritesJSONWhenEnabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "trace.log")
	Configure(path)
	SetTraceEnabled(true)
	t.Cleanup(func() {
		SetTraceEnabled(false)
		Configure("")
	})

	Trace("engine.recompute", map[string]interface{}{"first": 3})

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected trace file, got %v", err)
	}
	var entry struct {
		Event   string                 `json:"event"`
		Payload map[string]interface{} `json:"payload"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(data))), &entry); err != nil {
		t.Fatalf("expected JSON line, got %q: %v", data, err)
	}
	if entry.Event != "engine.recompute" {
		t.Fatalf("expected event engine.recompute, got %q", entry.Event)
	}
	if entry.Payload["first"] != float64(3) {
		t.Fatalf("expected payload first=3, got %v", entry.Payload["first"])
	}
}

func TestTraceDisabledWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.log")
	Configure(path)
	SetTraceEnabled(false)
	t.Cleanup(func() { Configure("") })

	Trace("ignored", nil)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no trace file, got %v", err)
	}
}

func TestErrorAppendsMessage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "error.log")
	Configure(path)
	t.Cleanup(func() { Configure("") })

	Error(errors.New("boom"))
	Error(nil)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected log file, got %v", err)
	}
	if !strings.Contains(string(data), "boom") {
		t.Fatalf("expected boom in log, got %q", data)
	}
	if strings.Count(string(data), "\n") != 1 {
		t.Fatalf("expected a single line, got %q", data)
	}
}
