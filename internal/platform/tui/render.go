package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pathgrid/internal/core"
	"github.com/vovakirdan/pathgrid/internal/grid"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// Grid glyphs. Each cell is one column wide with a separator column on
// either side, which is where the cursor brackets go.
const (
	glyphEmpty   = '·'
	glyphStart   = 'S'
	glyphFinish  = 'F'
	glyphBarrier = '█'
	glyphPath    = '•'
)

// GridWidth returns the screen columns DrawGrid needs, border included.
func GridWidth(size int) int {
	return 2*size + 3
}

// GridHeight returns the screen rows DrawGrid needs, border included.
func GridHeight(size int) int {
	return size + 2
}

// cellGlyph returns the rune and colour used for a role.
func cellGlyph(r grid.Role) (rune, core.Color) {
	switch r {
	case grid.RoleStart:
		return glyphStart, core.ColorBrightGreen
	case grid.RoleFinish:
		return glyphFinish, core.ColorBrightRed
	case grid.RoleBarrier:
		return glyphBarrier, core.ColorGray
	case grid.RolePath:
		return glyphPath, core.ColorYellow
	default:
		return glyphEmpty, core.ColorGray
	}
}

// cellColumn returns the screen column of grid column gx for a grid drawn at x.
func cellColumn(x, gx int) int {
	return x + 2 + 2*gx
}

// DrawGrid draws the engine's cells inside a box whose top-left corner is at
// (x, y). A nil cursor draws no brackets.
func DrawGrid(s *core.Screen, e *grid.Engine, x, y int, cursor *grid.Position) {
	size := e.Size()
	s.DrawBox(core.NewRect(x, y, GridWidth(size), GridHeight(size)), core.ColorGray)

	roles := make(map[grid.Position]grid.Role, e.Count(grid.RoleBarrier)+2)
	for _, c := range e.Cells() {
		roles[c.Pos] = c.Role
	}

	for gy := range size {
		for gx := range size {
			r, c := cellGlyph(roles[grid.P(gx, gy)])
			s.SetColored(cellColumn(x, gx), y+1+gy, r, c)
		}
	}

	if cursor != nil && grid.InBounds(*cursor, size) {
		col := cellColumn(x, cursor.X)
		row := y + 1 + cursor.Y
		s.SetColored(col-1, row, '[', core.ColorBrightYellow)
		s.SetColored(col+1, row, ']', core.ColorBrightYellow)
	}
}

// GridString renders the engine as plain text without a cursor.
func GridString(e *grid.Engine) string {
	s := core.NewScreen(GridWidth(e.Size()), GridHeight(e.Size()))
	DrawGrid(s, e, 0, 0, nil)
	return s.String()
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
