package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/pathgrid/internal/config"
	"github.com/vovakirdan/pathgrid/internal/grid"
	"github.com/vovakirdan/pathgrid/internal/layouts"
	"github.com/vovakirdan/pathgrid/internal/registry"
	"github.com/vovakirdan/pathgrid/internal/storage"
)

const detourYAML = `id: detour
name: Detour
rows:
  - "..."
  - "S#F"
  - "..."
`

func writeLayout(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "layout.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestSolveLayoutFile(t *testing.T) {
	l, err := resolveLayout(writeLayout(t, detourYAML), "", "", 0)
	if err != nil {
		t.Fatalf("resolveLayout: %v", err)
	}
	e := l.NewEngine()

	var buf bytes.Buffer
	res, _ := solve(&buf, e, false)

	if !res.Found || res.Path.Len() != 4 {
		t.Fatalf("result = %+v, expected a 4-step path", res)
	}

	out := buf.String()
	for _, want := range []string{
		"│ • • • │",
		"│ S █ F │",
		"│ · · · │",
		"Path found successfully!",
		"Length: 4 steps",
		"Time spent: ",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSolveNotFound(t *testing.T) {
	l, err := resolveLayout("", "enclosed", "", 5)
	if err != nil {
		t.Fatalf("resolveLayout: %v", err)
	}

	var buf bytes.Buffer
	res, _ := solve(&buf, l.NewEngine(), false)

	if res.Reason != grid.ReasonNotFound {
		t.Errorf("reason = %v, expected not_found", res.Reason)
	}
	if !strings.Contains(buf.String(), "No path found!") {
		t.Errorf("output missing not-found message:\n%s", buf.String())
	}
}

func TestSolveMissingEndpoints(t *testing.T) {
	l, err := resolveLayout(writeLayout(t, "size: 3\nbarriers:\n  - {x: 1, y: 1}\n"), "", "", 0)
	if err != nil {
		t.Fatalf("resolveLayout: %v", err)
	}

	var buf bytes.Buffer
	res, _ := solve(&buf, l.NewEngine(), false)

	if res.Reason != grid.ReasonMissingEndpoints {
		t.Errorf("reason = %v, expected missing_endpoints", res.Reason)
	}
	if !strings.Contains(buf.String(), "Choose start and finish positions!") {
		t.Errorf("output missing endpoints message:\n%s", buf.String())
	}
}

func TestResolveLayoutErrors(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		preset string
	}{
		{"neither", "", ""},
		{"both", "x.yaml", "open"},
		{"missing file", filepath.Join(t.TempDir(), "nope.yaml"), ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := resolveLayout(tc.path, tc.preset, t.TempDir(), 5); err == nil {
				t.Error("expected an error")
			}
		})
	}

	_, err := resolveLayout("", "lava-lake", "", 5)
	if !errors.Is(err, registry.ErrUnknownPreset) {
		t.Errorf("unknown preset error = %v, expected ErrUnknownPreset", err)
	}
}

func TestResolveLayoutByID(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "detour.yaml"), []byte(detourYAML), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	l, err := resolveLayout("detour", "", dir, 0)
	if err != nil {
		t.Fatalf("resolveLayout: %v", err)
	}
	if l.ID != "detour" || l.Size != 3 {
		t.Errorf("layout = %s size %d, expected detour size 3", l.ID, l.Size)
	}

	_, err = resolveLayout("maze", "", dir, 0)
	if !errors.Is(err, layouts.ErrLayoutNotFound) {
		t.Errorf("unknown ID error = %v, expected ErrLayoutNotFound", err)
	}

	_, err = resolveLayout("detour", "", filepath.Join(dir, "missing"), 0)
	if !errors.Is(err, layouts.ErrLayoutNotFound) {
		t.Errorf("missing directory error = %v, expected ErrLayoutNotFound", err)
	}
}

func TestAdoptLayoutSize(t *testing.T) {
	saved := cfg
	t.Cleanup(func() { cfg = saved })

	tests := []struct {
		name     string
		size     int
		override int
		want     int
		wantErr  bool
	}{
		{"layout size", 12, 0, 12, false},
		{"override wins", 12, 30, 30, false},
		{"layout too large", 500, 0, 0, true},
		{"override too large", 12, 500, 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg = config.Default()
			err := adoptLayoutSize(layouts.Layout{ID: "big", Size: tc.size}, tc.override)
			if tc.wantErr {
				if err == nil {
					t.Errorf("expected an error for grid size %d", cfg.GridSize)
				}
				return
			}
			if err != nil {
				t.Fatalf("adoptLayoutSize: %v", err)
			}
			if cfg.GridSize != tc.want {
				t.Errorf("grid size = %d, expected %d", cfg.GridSize, tc.want)
			}
		})
	}
}

func TestPrintPresets(t *testing.T) {
	var buf bytes.Buffer
	printPresets(&buf)

	for _, info := range registry.List() {
		if !strings.Contains(buf.String(), info.ID) {
			t.Errorf("preset %q not listed", info.ID)
		}
	}
}

func TestPrintHistory(t *testing.T) {
	var buf bytes.Buffer
	printHistory(&buf, nil, &storage.Stats{})
	if !strings.Contains(buf.String(), "No searches recorded yet.") {
		t.Errorf("empty history output:\n%s", buf.String())
	}

	buf.Reset()
	runs := []storage.Run{
		{Source: "local", GridSize: 20, Found: true, Reason: "none", PathLength: 12,
			Duration: 80 * time.Microsecond, CreatedAt: time.Date(2026, 1, 2, 3, 4, 0, 0, time.UTC)},
		{Source: "bob", GridSize: 8, Reason: "not_found"},
	}
	printHistory(&buf, runs, &storage.Stats{Runs: 2, Found: 1, LongestPath: 12})

	out := buf.String()
	for _, want := range []string{"2026-01-02 03:04", "bob", "not_found", "Total: 2 searches, 1 found"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
