// Package formats provides pluggable layout file format parsers.
package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/pathgrid/internal/grid"
)

// YAMLLayout represents the YAML structure for a layout file.
type YAMLLayout struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Size     int               `yaml:"size"`
	Start    *YAMLPos          `yaml:"start,omitempty"`
	Finish   *YAMLPos          `yaml:"finish,omitempty"`
	Barriers []YAMLPos         `yaml:"barriers,omitempty"`
	Rows     []string          `yaml:"rows,omitempty"`
	Cells    []YAMLCell        `yaml:"cells,omitempty"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// YAMLPos represents a single cell position in YAML format.
type YAMLPos struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// YAMLCell is one entry of the cells form: a position and a role name.
type YAMLCell struct {
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
	Role string `yaml:"role"`
}

// Row glyphs accepted in the rows form.
const (
	GlyphEmpty   = '.'
	GlyphStart   = 'S'
	GlyphFinish  = 'F'
	GlyphBarrier = '#'
)

// Cell is one marked cell read from a file, before validation.
type Cell struct {
	Pos  grid.Position
	Role grid.Role
}

// Layout represents a parsed layout ready for validation.
type Layout struct {
	ID       string
	Name     string
	Size     int
	Cells    []Cell
	Metadata map[string]string
}

// ParseYAML parses a YAML layout file. Cells may be given as ASCII rows,
// as explicit start/finish/barriers entries, or as a cells list of
// {x, y, role}, in any combination; they are read in that order. When rows
// are present and size is omitted, size is the row count.
func ParseYAML(data []byte) (Layout, error) {
	var yl YAMLLayout
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Layout{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	layout := Layout{
		ID:       yl.ID,
		Name:     yl.Name,
		Size:     yl.Size,
		Metadata: yl.Metadata,
	}
	if layout.Size == 0 {
		layout.Size = len(yl.Rows)
	}

	for y, row := range yl.Rows {
		x := 0
		for _, r := range row {
			switch r {
			case GlyphEmpty, ' ':
			case GlyphStart:
				layout.Cells = append(layout.Cells, Cell{Pos: grid.P(x, y), Role: grid.RoleStart})
			case GlyphFinish:
				layout.Cells = append(layout.Cells, Cell{Pos: grid.P(x, y), Role: grid.RoleFinish})
			case GlyphBarrier:
				layout.Cells = append(layout.Cells, Cell{Pos: grid.P(x, y), Role: grid.RoleBarrier})
			default:
				return Layout{}, fmt.Errorf("row %d: unknown glyph %q", y, r)
			}
			x++
		}
	}

	if yl.Start != nil {
		layout.Cells = append(layout.Cells, Cell{Pos: grid.P(yl.Start.X, yl.Start.Y), Role: grid.RoleStart})
	}
	if yl.Finish != nil {
		layout.Cells = append(layout.Cells, Cell{Pos: grid.P(yl.Finish.X, yl.Finish.Y), Role: grid.RoleFinish})
	}
	for _, b := range yl.Barriers {
		layout.Cells = append(layout.Cells, Cell{Pos: grid.P(b.X, b.Y), Role: grid.RoleBarrier})
	}
	for i, c := range yl.Cells {
		role, ok := grid.ParseRole(c.Role)
		if !ok {
			return Layout{}, fmt.Errorf("cells[%d]: unknown role %q", i, c.Role)
		}
		if role == grid.RoleEmpty {
			continue
		}
		layout.Cells = append(layout.Cells, Cell{Pos: grid.P(c.X, c.Y), Role: role})
	}

	return layout, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
