package layouts

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/pathgrid/internal/grid"
	"github.com/vovakirdan/pathgrid/internal/layouts/formats"
)

// ErrLayoutNotFound is returned by LoadByID when no file has the given ID.
var ErrLayoutNotFound = errors.New("layouts: layout not found")

// Loader handles loading layouts from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new layout loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all layout files.
// Invalid files are skipped. Returns layouts sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Layout, error) {
	var layouts []Layout

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !isSupportedExtension(ext) {
			return nil
		}

		layout, err := LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}

		layouts = append(layouts, layout)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(layouts, func(i, j int) bool {
		return layouts[i].ID < layouts[j].ID
	})

	return layouts, nil
}

// LoadByID loads a specific layout by ID.
func (l *Loader) LoadByID(id string) (Layout, error) {
	layouts, err := l.LoadAll()
	if err != nil {
		return Layout{}, err
	}

	for _, lay := range layouts {
		if lay.ID == id {
			return lay, nil
		}
	}

	return Layout{}, fmt.Errorf("%w: %s", ErrLayoutNotFound, id)
}

// LoadFile loads and validates a single layout file.
// A file without an id takes its base name as ID.
func LoadFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return Layout{}, fmt.Errorf("parsing file %s: %w", path, err)
	}

	layout := Layout{
		ID:       parsed.ID,
		Name:     parsed.Name,
		Size:     parsed.Size,
		Metadata: parsed.Metadata,
		FilePath: path,
	}
	if layout.ID == "" {
		layout.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	for _, c := range parsed.Cells {
		layout.Cells = append(layout.Cells, grid.MarkedCell{Pos: c.Pos, Role: c.Role})
	}

	if err := layout.Validate(); err != nil {
		return Layout{}, fmt.Errorf("validating file %s: %w", path, err)
	}
	return layout, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Layout, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Layout{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
