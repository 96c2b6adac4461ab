package layouts_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/pathgrid/internal/grid"
	"github.com/vovakirdan/pathgrid/internal/layouts"
	"github.com/vovakirdan/pathgrid/internal/layouts/formats"
)

func testdataPath() string {
	return filepath.Join("testdata", "layouts")
}

func TestLoaderLoadAllSkipsInvalid(t *testing.T) {
	lays, err := layouts.NewLoader(testdataPath()).LoadAll()
	require.NoError(t, err)

	ids := make([]string, len(lays))
	for i, l := range lays {
		ids[i] = l.ID
	}
	assert.Equal(t, []string{"corner", "detour", "walled"}, ids)
}

func TestLoaderLoadByID(t *testing.T) {
	loader := layouts.NewLoader(testdataPath())

	lay, err := loader.LoadByID("detour")
	require.NoError(t, err)
	assert.Equal(t, "Detour", lay.Name)
	assert.Equal(t, 3, lay.Size)
	assert.Equal(t, "tests", lay.Metadata["author"])

	_, err = loader.LoadByID("nope")
	assert.True(t, errors.Is(err, layouts.ErrLayoutNotFound))
}

func TestLoadFileRejectsOverlap(t *testing.T) {
	_, err := layouts.LoadFile(filepath.Join(testdataPath(), "broken.yaml"))
	require.Error(t, err)

	var verr layouts.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "OVERLAP", verr.Code)
}

func TestLayoutSolves(t *testing.T) {
	loader := layouts.NewLoader(testdataPath())

	detour, err := loader.LoadByID("detour")
	require.NoError(t, err)
	res := detour.NewEngine().RequestPath()
	require.True(t, res.Found)
	assert.Equal(t, 4, res.Path.Len())

	walled, err := loader.LoadByID("walled")
	require.NoError(t, err)
	res = walled.NewEngine().RequestPath()
	assert.Equal(t, grid.ReasonNotFound, res.Reason)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		size  int
		cells []grid.MarkedCell
		code  string
	}{
		{"ok", 3, []grid.MarkedCell{{Pos: grid.P(0, 0), Role: grid.RoleStart}}, ""},
		{"bad size", 1, nil, "BAD_SIZE"},
		{"out of bounds", 3, []grid.MarkedCell{{Pos: grid.P(3, 0), Role: grid.RoleBarrier}}, "OUT_OF_BOUNDS"},
		{"two starts", 3, []grid.MarkedCell{
			{Pos: grid.P(0, 0), Role: grid.RoleStart},
			{Pos: grid.P(1, 0), Role: grid.RoleStart},
		}, "DUPLICATE_START"},
		{"two finishes", 3, []grid.MarkedCell{
			{Pos: grid.P(0, 0), Role: grid.RoleFinish},
			{Pos: grid.P(1, 0), Role: grid.RoleFinish},
		}, "DUPLICATE_FINISH"},
		{"path cell", 3, []grid.MarkedCell{{Pos: grid.P(0, 0), Role: grid.RolePath}}, "BAD_ROLE"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := layouts.Layout{ID: tc.name, Size: tc.size, Cells: tc.cells}
			err := l.Validate()
			if tc.code == "" {
				assert.NoError(t, err)
				return
			}
			var verr layouts.ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Equal(t, tc.code, verr.Code)
		})
	}
}

func TestApplySkipsCellsOutsideSmallerGrid(t *testing.T) {
	l := layouts.Layout{ID: "big", Size: 10, Cells: []grid.MarkedCell{
		{Pos: grid.P(1, 1), Role: grid.RoleStart},
		{Pos: grid.P(8, 8), Role: grid.RoleFinish},
	}}
	e := grid.NewEngine(5)
	e.Mark(grid.P(0, 0), grid.RoleBarrier)
	l.Apply(e)

	assert.Equal(t, grid.RoleEmpty, e.Lookup(grid.P(0, 0)), "apply clears first")
	assert.Equal(t, grid.RoleStart, e.Lookup(grid.P(1, 1)))
	_, ok := e.Find(grid.RoleFinish)
	assert.False(t, ok)
}

func TestFromEngineDropsOverlay(t *testing.T) {
	e := grid.NewEngine(4)
	e.Mark(grid.P(0, 0), grid.RoleStart)
	e.Mark(grid.P(3, 3), grid.RoleFinish)
	require.True(t, e.RequestPath().Found)

	l := layouts.FromEngine("snap", "Snapshot", e)
	assert.Len(t, l.Cells, 2)
	assert.NoError(t, l.Validate())
}

func TestParseYAMLUnknownGlyph(t *testing.T) {
	_, err := formats.ParseYAML([]byte("rows:\n  - \"S?F\"\n"))
	assert.Error(t, err)
}

func TestParseYAMLRowsAndLists(t *testing.T) {
	data := []byte(`
size: 4
rows:
  - "S..."
  - ".#.."
barriers:
  - {x: 3, y: 3}
finish: {x: 3, y: 0}
`)
	l, err := formats.ParseYAML(data)
	require.NoError(t, err)
	assert.Equal(t, 4, l.Size)
	assert.Equal(t, []formats.Cell{
		{Pos: grid.P(0, 0), Role: grid.RoleStart},
		{Pos: grid.P(1, 1), Role: grid.RoleBarrier},
		{Pos: grid.P(3, 0), Role: grid.RoleFinish},
		{Pos: grid.P(3, 3), Role: grid.RoleBarrier},
	}, l.Cells)
}

func TestParseYAMLCells(t *testing.T) {
	data := []byte(`
size: 3
cells:
  - {x: 0, y: 0, role: start}
  - {x: 1, y: 0, role: barrier}
  - {x: 2, y: 1, role: empty}
  - {x: 2, y: 2, role: finish}
`)
	l, err := formats.ParseYAML(data)
	require.NoError(t, err)
	assert.Equal(t, []formats.Cell{
		{Pos: grid.P(0, 0), Role: grid.RoleStart},
		{Pos: grid.P(1, 0), Role: grid.RoleBarrier},
		{Pos: grid.P(2, 2), Role: grid.RoleFinish},
	}, l.Cells)

	_, err = formats.ParseYAML([]byte("size: 3\ncells:\n  - {x: 0, y: 0, role: lava}\n"))
	assert.ErrorContains(t, err, `unknown role "lava"`)
}

func TestLoadFileCellsRejectsPathRole(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overlay.yaml")
	require.NoError(t, os.WriteFile(path, []byte("size: 3\ncells:\n  - {x: 1, y: 1, role: path}\n"), 0o600))

	_, err := layouts.LoadFile(path)
	var verr layouts.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "BAD_ROLE", verr.Code)
}

func TestLoaderLoadByIDCellsForm(t *testing.T) {
	corner, err := layouts.NewLoader(testdataPath()).LoadByID("corner")
	require.NoError(t, err)

	res := corner.NewEngine().RequestPath()
	require.True(t, res.Found)
	assert.Equal(t, 6, res.Path.Len())
}
