package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestPathOverlaysInterior(t *testing.T) {
	e := NewEngine(5)
	e.Mark(P(0, 0), RoleStart)
	e.Mark(P(4, 4), RoleFinish)

	res := e.RequestPath()
	require.True(t, res.Found)
	assert.Equal(t, ReasonNone, res.Reason)
	assert.Equal(t, 8, res.Path.Len())

	assert.Equal(t, 7, e.Count(RolePath))
	assert.Equal(t, RoleStart, e.Lookup(P(0, 0)))
	assert.Equal(t, RoleFinish, e.Lookup(P(4, 4)))
	for _, p := range res.Path[1 : len(res.Path)-1] {
		assert.Equal(t, RolePath, e.Lookup(p))
	}
}

func TestRequestPathMissingEndpoints(t *testing.T) {
	tests := []struct {
		name  string
		setup func(e *Engine)
	}{
		{"empty grid", func(e *Engine) {}},
		{"finish only", func(e *Engine) { e.Mark(P(2, 2), RoleFinish) }},
		{"start only", func(e *Engine) { e.Mark(P(2, 2), RoleStart) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := NewEngine(4)
			tc.setup(e)
			before := e.Cells()

			res := e.RequestPath()
			assert.False(t, res.Found)
			assert.Equal(t, ReasonMissingEndpoints, res.Reason)
			assert.Equal(t, 0, res.Visited, "no search attempted")
			assert.Equal(t, before, e.Cells())
		})
	}
}

func TestRequestPathNotFoundLeavesStore(t *testing.T) {
	e := NewEngine(5)
	e.Mark(P(0, 0), RoleStart)
	e.Mark(P(2, 2), RoleFinish)
	for _, b := range []Position{P(2, 1), P(1, 2), P(3, 2), P(2, 3)} {
		e.Mark(b, RoleBarrier)
	}
	before := e.Cells()

	res := e.RequestPath()
	assert.False(t, res.Found)
	assert.Equal(t, ReasonNotFound, res.Reason)
	assert.Nil(t, res.Path)
	assert.Equal(t, before, e.Cells())
}

func TestRequestPathReplacesOverlay(t *testing.T) {
	e := NewEngine(5)
	e.Mark(P(0, 0), RoleStart)
	e.Mark(P(0, 4), RoleFinish)

	first := e.RequestPath()
	require.True(t, first.Found)
	second := e.RequestPath()
	require.True(t, second.Found)

	assert.Equal(t, first.Path, second.Path)
	assert.Equal(t, len(second.Path)-2, e.Count(RolePath), "overlay not duplicated")
}

func TestRequestPathSameStartAndFinishCell(t *testing.T) {
	// Start and finish cannot share a cell through Mark, so the trivial
	// path is only reachable through FindPath. The engine path for two
	// adjacent endpoints has no interior cells.
	e := NewEngine(3)
	e.Mark(P(1, 1), RoleStart)
	e.Mark(P(2, 1), RoleFinish)

	res := e.RequestPath()
	require.True(t, res.Found)
	assert.Equal(t, 1, res.Path.Len())
	assert.Equal(t, 0, e.Count(RolePath))
}

func TestEngineClearAll(t *testing.T) {
	e := NewEngine(3)
	e.Mark(P(0, 0), RoleStart)
	e.Mark(P(2, 2), RoleFinish)
	e.RequestPath()
	e.ClearAll()

	assert.Empty(t, e.Cells())
	assert.Equal(t, ReasonMissingEndpoints, e.RequestPath().Reason)
}

func TestEngineClear(t *testing.T) {
	e := NewEngine(4)
	e.Mark(P(0, 0), RoleStart)
	e.Mark(P(3, 3), RoleFinish)
	e.Mark(P(1, 0), RoleBarrier)
	require.True(t, e.RequestPath().Found)
	require.NotZero(t, e.Count(RolePath))

	e.Clear()
	assert.Empty(t, e.Cells())
	assert.Zero(t, e.Count(RolePath))

	// The store stays usable at the same size.
	assert.Equal(t, 4, e.Size())
	e.Mark(P(3, 0), RoleStart)
	assert.Equal(t, RoleStart, e.Lookup(P(3, 0)))
}

func TestReasonString(t *testing.T) {
	assert.Equal(t, "none", ReasonNone.String())
	assert.Equal(t, "missing_endpoints", ReasonMissingEndpoints.String())
	assert.Equal(t, "not_found", ReasonNotFound.String())
}
