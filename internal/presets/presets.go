// Package presets registers the built-in layouts offered by the editor and
// the CLI. Import it for its side effects.
package presets

import (
	"github.com/vovakirdan/pathgrid/internal/grid"
	"github.com/vovakirdan/pathgrid/internal/layouts"
	"github.com/vovakirdan/pathgrid/internal/registry"
)

func init() {
	registry.Register("open", func() registry.Preset { return open{} })
	registry.Register("wall", func() registry.Preset { return wall{} })
	registry.Register("enclosed", func() registry.Preset { return enclosed{} })
	registry.Register("corridor", func() registry.Preset { return corridor{} })
	registry.Register("spiral", func() registry.Preset { return spiral{} })
}

// builder collects cells for a layout, letting later marks replace earlier
// ones the same way the editor does.
type builder struct {
	e *grid.Engine
}

func newBuilder(size int) builder {
	return builder{e: grid.NewEngine(size)}
}

func (b builder) mark(x, y int, role grid.Role) {
	if grid.InBounds(grid.P(x, y), b.e.Size()) {
		b.e.Mark(grid.P(x, y), role)
	}
}

func (b builder) layout(id, name string) layouts.Layout {
	return layouts.FromEngine(id, name, b.e)
}

// open: empty grid, start and finish in opposite corners.
type open struct{}

func (open) ID() string    { return "open" }
func (open) Title() string { return "Open field" }

func (p open) Build(size int) layouts.Layout {
	b := newBuilder(size)
	b.mark(0, 0, grid.RoleStart)
	b.mark(size-1, size-1, grid.RoleFinish)
	return b.layout(p.ID(), p.Title())
}

// wall: a vertical wall down the middle with a single gap at the bottom.
type wall struct{}

func (wall) ID() string    { return "wall" }
func (wall) Title() string { return "Wall with a gap" }

func (p wall) Build(size int) layouts.Layout {
	b := newBuilder(size)
	mid := size / 2
	for y := 0; y < size-1; y++ {
		b.mark(mid, y, grid.RoleBarrier)
	}
	b.mark(0, 0, grid.RoleStart)
	b.mark(size-1, 0, grid.RoleFinish)
	return b.layout(p.ID(), p.Title())
}

// enclosed: the finish is boxed in, so no path exists.
type enclosed struct{}

func (enclosed) ID() string    { return "enclosed" }
func (enclosed) Title() string { return "Enclosed finish" }

func (p enclosed) Build(size int) layouts.Layout {
	b := newBuilder(size)
	fx, fy := size-1, size-1
	b.mark(fx-1, fy, grid.RoleBarrier)
	b.mark(fx, fy-1, grid.RoleBarrier)
	b.mark(0, 0, grid.RoleStart)
	b.mark(fx, fy, grid.RoleFinish)
	return b.layout(p.ID(), p.Title())
}

// corridor: horizontal walls with alternating gaps, forcing a zigzag.
type corridor struct{}

func (corridor) ID() string    { return "corridor" }
func (corridor) Title() string { return "Zigzag corridor" }

func (p corridor) Build(size int) layouts.Layout {
	b := newBuilder(size)
	for y, n := 1, 0; y < size-1; y, n = y+2, n+1 {
		gap := size - 1
		if n%2 == 1 {
			gap = 0
		}
		for x := 0; x < size; x++ {
			if x != gap {
				b.mark(x, y, grid.RoleBarrier)
			}
		}
	}
	b.mark(0, 0, grid.RoleStart)
	b.mark(size-1, size-1, grid.RoleFinish)
	return b.layout(p.ID(), p.Title())
}

// spiral: nested walls, each ring open on alternating sides, with the
// finish in the centre.
type spiral struct{}

func (spiral) ID() string    { return "spiral" }
func (spiral) Title() string { return "Spiral" }

func (p spiral) Build(size int) layouts.Layout {
	b := newBuilder(size)
	for ring := 1; 2*ring < size-1; ring += 2 {
		lo, hi := ring, size-1-ring
		for i := lo; i <= hi; i++ {
			b.mark(i, lo, grid.RoleBarrier)
			b.mark(i, hi, grid.RoleBarrier)
			b.mark(lo, i, grid.RoleBarrier)
			b.mark(hi, i, grid.RoleBarrier)
		}
		// door on the left wall for odd rings, right wall for even ones
		door := lo
		if (ring/2)%2 == 1 {
			door = hi
		}
		b.mark(door, (lo+hi)/2, grid.RoleEmpty)
	}
	b.mark(0, 0, grid.RoleStart)
	b.mark(size/2, size/2, grid.RoleFinish)
	return b.layout(p.ID(), p.Title())
}
