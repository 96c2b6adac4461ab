// Package grid implements the pathfinding engine behind the editor: a sparse
// store of marked cells, the dense barrier matrix derived from it, and a
// breadth-first search over that matrix.
//
// The package has no external dependencies and performs no I/O so that the
// engine stays deterministic and testable. The platform layer owns one Engine
// per editing session.
package grid

import "fmt"

// Position is a cell coordinate on the grid.
// X increases to the right, Y increases downward (screen coordinates).
type Position struct {
	X int
	Y int
}

// P is a convenience constructor for Position.
func P(x, y int) Position {
	return Position{X: x, Y: y}
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns a new Position offset by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// InBounds reports whether p lies on a square grid with the given side length.
func InBounds(p Position, size int) bool {
	return p.X >= 0 && p.X < size && p.Y >= 0 && p.Y < size
}

// mustInBounds panics when p is outside the grid. Out-of-range positions
// can only come from a broken caller, never from user input.
func mustInBounds(p Position, size int) {
	if !InBounds(p, size) {
		panic(fmt.Sprintf("grid: position %s out of bounds for size %d", p, size))
	}
}

// Role is what a marked cell represents.
type Role uint8

const (
	RoleEmpty Role = iota // never stored; absence from the store
	RoleStart
	RoleFinish
	RoleBarrier
	RolePath // transient overlay of the last successful search
)

// String returns the lowercase name of the role.
func (r Role) String() string {
	switch r {
	case RoleEmpty:
		return "empty"
	case RoleStart:
		return "start"
	case RoleFinish:
		return "finish"
	case RoleBarrier:
		return "barrier"
	case RolePath:
		return "path"
	default:
		return "unknown"
	}
}

// ParseRole converts a role name back to a Role.
func ParseRole(s string) (Role, bool) {
	switch s {
	case "empty", "":
		return RoleEmpty, true
	case "start":
		return RoleStart, true
	case "finish":
		return RoleFinish, true
	case "barrier":
		return RoleBarrier, true
	case "path":
		return RolePath, true
	default:
		return RoleEmpty, false
	}
}

// singleton reports whether at most one cell may hold the role.
func (r Role) singleton() bool {
	return r == RoleStart || r == RoleFinish
}

// MarkedCell is a non-empty cell held by the store.
type MarkedCell struct {
	Pos  Position
	Role Role
}
