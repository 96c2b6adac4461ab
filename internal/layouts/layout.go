// Package layouts loads read-only grid layouts (start, finish, barriers)
// from files and applies them to an engine. This package depends on grid
// but grid does not depend on layouts.
package layouts

import (
	"fmt"

	"github.com/vovakirdan/pathgrid/internal/grid"
)

// Layout is a validated set of marked cells for a square grid.
type Layout struct {
	ID       string
	Name     string
	Size     int
	Cells    []grid.MarkedCell
	Metadata map[string]string
	FilePath string
}

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks that the layout could have been produced by the editor:
// every cell in bounds, one role per cell, at most one start and one finish,
// and no path overlay cells.
func (l *Layout) Validate() error {
	if l.Size < 2 {
		return ValidationError{
			Code:    "BAD_SIZE",
			Message: fmt.Sprintf("layout %q has size %d", l.ID, l.Size),
		}
	}

	seen := make(map[grid.Position]grid.Role, len(l.Cells))
	starts, finishes := 0, 0
	for _, c := range l.Cells {
		if !grid.InBounds(c.Pos, l.Size) {
			return ValidationError{
				Code:    "OUT_OF_BOUNDS",
				Message: fmt.Sprintf("%s %s outside %dx%d grid", c.Role, c.Pos, l.Size, l.Size),
			}
		}
		if prev, ok := seen[c.Pos]; ok {
			return ValidationError{
				Code:    "OVERLAP",
				Message: fmt.Sprintf("%s at %s already holds %s", c.Role, c.Pos, prev),
			}
		}
		seen[c.Pos] = c.Role

		switch c.Role {
		case grid.RoleStart:
			starts++
		case grid.RoleFinish:
			finishes++
		case grid.RoleBarrier:
		default:
			return ValidationError{
				Code:    "BAD_ROLE",
				Message: fmt.Sprintf("role %s at %s cannot be loaded", c.Role, c.Pos),
			}
		}
	}

	if starts > 1 {
		return ValidationError{Code: "DUPLICATE_START", Message: fmt.Sprintf("%d start cells", starts)}
	}
	if finishes > 1 {
		return ValidationError{Code: "DUPLICATE_FINISH", Message: fmt.Sprintf("%d finish cells", finishes)}
	}
	return nil
}

// NewEngine creates an engine of the layout's size with the layout applied.
func (l *Layout) NewEngine() *grid.Engine {
	e := grid.NewEngine(l.Size)
	l.Apply(e)
	return e
}

// Apply clears e and marks the layout's cells on it. Cells outside e's grid
// are skipped so a layout can be loaded into a smaller editor.
func (l *Layout) Apply(e *grid.Engine) {
	e.ClearAll()
	for _, c := range l.Cells {
		if grid.InBounds(c.Pos, e.Size()) {
			e.Mark(c.Pos, c.Role)
		}
	}
}

// FromEngine captures the start, finish and barriers of e as a layout.
// Path overlay cells are not captured.
func FromEngine(id, name string, e *grid.Engine) Layout {
	l := Layout{ID: id, Name: name, Size: e.Size()}
	for _, c := range e.Cells() {
		if c.Role != grid.RolePath {
			l.Cells = append(l.Cells, c)
		}
	}
	return l
}
