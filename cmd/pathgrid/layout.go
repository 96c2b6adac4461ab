package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/vovakirdan/pathgrid/internal/layouts"
	"github.com/vovakirdan/pathgrid/internal/registry"
)

// loadLayout loads the layout named by ref. An existing file is loaded
// directly; anything else is looked up by ID among the layout files under dir.
func loadLayout(ref, dir string) (layouts.Layout, error) {
	if info, err := os.Stat(ref); err == nil && !info.IsDir() {
		l, err := layouts.LoadFile(ref)
		if err != nil {
			return layouts.Layout{}, fmt.Errorf("loading layout: %w", err)
		}
		return l, nil
	}

	l, err := layouts.NewLoader(dir).LoadByID(ref)
	switch {
	case errors.Is(err, layouts.ErrLayoutNotFound):
		return layouts.Layout{}, fmt.Errorf("%w (no file %q and no layout with that ID in %s)", err, ref, dir)
	case errors.Is(err, fs.ErrNotExist):
		return layouts.Layout{}, fmt.Errorf("%w: %s (no such file and no layouts directory %s)", layouts.ErrLayoutNotFound, ref, dir)
	case err != nil:
		return layouts.Layout{}, fmt.Errorf("loading layout %s: %w", ref, err)
	}
	return l, nil
}

// resolveLayout returns the layout named by exactly one of ref or presetID.
// Presets are built at size; layout files keep their own size.
func resolveLayout(ref, presetID, dir string, size int) (layouts.Layout, error) {
	switch {
	case ref != "" && presetID != "":
		return layouts.Layout{}, errors.New("use either --layout or --preset, not both")
	case ref != "":
		return loadLayout(ref, dir)
	case presetID != "":
		l, err := registry.Build(presetID, size)
		if err != nil {
			return layouts.Layout{}, fmt.Errorf("%w (run 'pathgrid presets' to see available presets)", err)
		}
		return l, nil
	default:
		return layouts.Layout{}, errors.New("one of --layout or --preset is required")
	}
}

// adoptLayoutSize makes l's size the grid size unless override is set.
// Either way the resulting config must validate.
func adoptLayoutSize(l layouts.Layout, override int) error {
	if override != 0 {
		return applyGridSize(override)
	}
	cfg.GridSize = l.Size
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("layout %s: %w", l.ID, err)
	}
	return nil
}
