package grid

// Reason explains why a path request produced no path.
type Reason uint8

const (
	ReasonNone             Reason = iota // path found
	ReasonMissingEndpoints               // start or finish not marked
	ReasonNotFound                       // finish unreachable
)

// String returns a short name for the reason.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonMissingEndpoints:
		return "missing_endpoints"
	case ReasonNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// Result is the outcome of RequestPath. Missing endpoints and unreachable
// finishes are ordinary results, not errors.
type Result struct {
	Found   bool
	Path    Path
	Reason  Reason
	Visited int // cells discovered by the search; 0 if no search ran
}

// Engine is the call surface used by the editor. It owns one marked-cell
// store for the lifetime of a grid session.
type Engine struct {
	store *Store
}

// NewEngine creates an engine with an empty size x size grid.
func NewEngine(size int) *Engine {
	return &Engine{store: NewStore(size)}
}

// Size returns the grid side length.
func (e *Engine) Size() int {
	return e.store.Size()
}

// Mark places role at p. See Store.Mark.
func (e *Engine) Mark(p Position, role Role) {
	e.store.Mark(p, role)
}

// Unmark clears the cell at p. See Store.Unmark.
func (e *Engine) Unmark(p Position) {
	e.store.Unmark(p)
}

// Lookup returns the role at p.
func (e *Engine) Lookup(p Position) Role {
	return e.store.Lookup(p)
}

// Find returns the position of the start or finish cell.
func (e *Engine) Find(role Role) (Position, bool) {
	return e.store.FindByRole(role)
}

// Cells returns a snapshot of the marked cells.
func (e *Engine) Cells() []MarkedCell {
	return e.store.Cells()
}

// Count returns how many cells hold role.
func (e *Engine) Count(role Role) int {
	return e.store.Count(role)
}

// Clear empties the store, overlay included.
func (e *Engine) Clear() {
	e.store.Clear()
}

// ClearAll empties the grid before a whole layout is applied.
func (e *Engine) ClearAll() {
	e.Clear()
}

// RequestPath searches from the marked start to the marked finish.
// On success the interior of the path is added to the store as overlay
// cells; otherwise the store is left as it was, minus any stale overlay.
func (e *Engine) RequestPath() Result {
	start, okStart := e.store.FindByRole(RoleStart)
	finish, okFinish := e.store.FindByRole(RoleFinish)
	if !okStart || !okFinish {
		return Result{Reason: ReasonMissingEndpoints}
	}

	matrix := BuildMatrix(e.store)
	e.store.evictOverlay()

	path, stats, ok := FindPathStats(matrix, start, finish)
	if !ok {
		return Result{Reason: ReasonNotFound, Visited: stats.Visited}
	}

	e.store.overlay(path)
	return Result{Found: true, Path: path, Visited: stats.Visited}
}
