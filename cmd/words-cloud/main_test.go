package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/sblando/words-cloud/internal/app"
)

// Smoke test: run over a tiny corpus and check the primary artifact lands.
func TestRun_WritesOutputs(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "docs")
	out := filepath.Join(dir, "out")
	if err := os.Mkdir(in, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(in, "note.txt"), []byte("gopher gopher cloud"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	cfg := app.Config{InputDir: in, OutputDir: out, TopN: 100, MinTokenLen: 3}
	if err := run(cfg); err != nil {
		t.Fatalf("run error: %v", err)
	}
	b, err := os.ReadFile(filepath.Join(out, "note_top_terms.csv"))
	if err != nil || len(b) == 0 {
		t.Fatalf("expected csv output, err=%v", err)
	}
}

// Ensures the exit code policy conditions are surfaced as errors from run().
func TestRun_NoFilesProcessed_Error(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "docs")
	if err := os.Mkdir(in, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	cfg := app.Config{InputDir: in, OutputDir: filepath.Join(dir, "out"), TopN: 100}
	err := run(cfg)
	if !errors.Is(err, app.ErrNoFilesProcessed) {
		t.Fatalf("expected ErrNoFilesProcessed, got %v", err)
	}
}

// Config validation failures must be recognizable through run's wrapping so
// main can map them to exit code 2.
func TestIsConfigError(t *testing.T) {
	err := run(app.Config{})
	if err == nil {
		t.Fatal("expected an error for an empty config")
	}
	if !isConfigError(err) {
		t.Fatalf("expected a config error, got %v", err)
	}
	if isConfigError(fmt.Errorf("extract: %w", os.ErrNotExist)) {
		t.Fatal("processing errors must not look like config errors")
	}
}

func TestStopList_SplitsAndRepeats(t *testing.T) {
	var s stopList
	for _, v := range []string{"lorem, ipsum", "dolor", " , "} {
		if err := s.Set(v); err != nil {
			t.Fatalf("Set(%q): %v", v, err)
		}
	}
	want := stopList{"lorem", "ipsum", "dolor"}
	if !reflect.DeepEqual(s, want) {
		t.Fatalf("stopList = %v, want %v", s, want)
	}
	if got := s.String(); got != "lorem,ipsum,dolor" {
		t.Fatalf("String() = %q", got)
	}
}
