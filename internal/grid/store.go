package grid

import "fmt"

// Store holds the authoritative sparse set of non-empty cells.
//
// After every call returns the store contains at most one start, at most one
// finish and no duplicate positions. Mark and Unmark also drop every path
// overlay cell before changing anything else.
type Store struct {
	size  int
	cells []MarkedCell // insertion order
}

// NewStore creates an empty store for a size x size grid.
func NewStore(size int) *Store {
	if size <= 0 {
		panic(fmt.Sprintf("grid: invalid grid size %d", size))
	}
	return &Store{size: size}
}

// Size returns the grid side length.
func (s *Store) Size() int {
	return s.size
}

// Len returns the number of marked cells, overlay included.
func (s *Store) Len() int {
	return len(s.cells)
}

// Cells returns a copy of the marked cells in insertion order.
func (s *Store) Cells() []MarkedCell {
	out := make([]MarkedCell, len(s.cells))
	copy(out, s.cells)
	return out
}

// Mark places role at p, replacing whatever was there.
// Marking with RoleEmpty is the same as Unmark. Path cells are owned by the
// engine and cannot be marked directly.
func (s *Store) Mark(p Position, role Role) {
	mustInBounds(p, s.size)
	switch role {
	case RoleEmpty:
		s.Unmark(p)
		return
	case RolePath:
		panic("grid: path cells are added by the engine only")
	}

	s.evictPosition(p)
	s.evictOverlay()
	s.evictSingleton(role)
	s.cells = append(s.cells, MarkedCell{Pos: p, Role: role})
}

// Unmark removes the cell at p, if any, and drops the path overlay.
func (s *Store) Unmark(p Position) {
	mustInBounds(p, s.size)
	s.evictPosition(p)
	s.evictOverlay()
}

// Clear empties the store.
func (s *Store) Clear() {
	s.cells = s.cells[:0]
}

// Lookup returns the role stored at p, or RoleEmpty.
func (s *Store) Lookup(p Position) Role {
	mustInBounds(p, s.size)
	for _, c := range s.cells {
		if c.Pos == p {
			return c.Role
		}
	}
	return RoleEmpty
}

// FindByRole returns the position holding a start or finish role.
func (s *Store) FindByRole(role Role) (Position, bool) {
	for _, c := range s.cells {
		if c.Role == role {
			return c.Pos, true
		}
	}
	return Position{}, false
}

// Count returns how many cells hold role.
func (s *Store) Count(role Role) int {
	n := 0
	for _, c := range s.cells {
		if c.Role == role {
			n++
		}
	}
	return n
}

// evictPosition drops the entry at p: a cell holds one role at a time.
func (s *Store) evictPosition(p Position) {
	s.filter(func(c MarkedCell) bool { return c.Pos != p })
}

// evictOverlay drops every path cell. Any edit invalidates the last route.
func (s *Store) evictOverlay() {
	s.filter(func(c MarkedCell) bool { return c.Role != RolePath })
}

// evictSingleton drops the previous holder of a start or finish role.
// Only same-role collisions count: a new start never displaces the finish.
func (s *Store) evictSingleton(role Role) {
	if !role.singleton() {
		return
	}
	s.filter(func(c MarkedCell) bool { return c.Role != role })
}

// overlay appends path cells for the interior of a found path. Start and
// finish keep their own roles. The caller has already evicted the previous
// overlay.
func (s *Store) overlay(path Path) {
	for _, p := range path {
		if s.Lookup(p) != RoleEmpty {
			continue
		}
		s.cells = append(s.cells, MarkedCell{Pos: p, Role: RolePath})
	}
}

// filter keeps cells for which keep returns true, preserving order.
func (s *Store) filter(keep func(MarkedCell) bool) {
	kept := s.cells[:0]
	for _, c := range s.cells {
		if keep(c) {
			kept = append(kept, c)
		}
	}
	s.cells = kept
}
