package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pathgrid/internal/core"
	"github.com/vovakirdan/pathgrid/internal/grid"
	"github.com/vovakirdan/pathgrid/internal/layouts"
	"github.com/vovakirdan/pathgrid/internal/registry"
	"github.com/vovakirdan/pathgrid/internal/storage"
)

// gridTop is the screen row of the grid border: title line plus a blank line.
const gridTop = 2

// User-facing notification texts.
const (
	msgChooseEndpoints = "Choose start and finish positions!"
	msgNoPath          = "No path found!"
	msgPathFound       = "Path found successfully!"
)

// RunRecorder persists search telemetry. *storage.Store satisfies it.
type RunRecorder interface {
	SaveRun(r storage.Run) (int64, error)
}

// Options configures a new editor model.
type Options struct {
	Config   core.RuntimeConfig
	ToastTTL time.Duration   // zero keeps toasts until replaced
	ShowHelp bool            // open the info panel on start
	PresetID string          // preset loaded on start; also where "next preset" continues from
	Layout   *layouts.Layout // loaded on start instead of PresetID
	Recorder RunRecorder     // may be nil
	Logger   *log.Logger     // may be nil
}

// Model is the Bubble Tea model for the grid editor.
// Each model owns its own engine, so every session edits a private grid.
type Model struct {
	engine   *grid.Engine
	screen   *core.Screen
	config   core.RuntimeConfig
	recorder RunRecorder
	logger   *log.Logger
	keys     EditorKeyMap
	help     help.Model
	cursor   grid.Position
	presetID string
	toasts   []Toast
	toastSeq int
	toastTTL time.Duration
	showHelp bool
	last     *grid.Result
	quitting bool
}

// NewModel creates an editor with an empty grid, or with the layout or
// preset named in opts applied.
func NewModel(opts Options) Model {
	cfg := opts.Config
	if cfg.GridSize <= 0 {
		cfg.GridSize = core.DefaultConfig().GridSize
	}
	if cfg.Source == "" {
		cfg.Source = "local"
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = true
	h.Width = cfg.ScreenW

	m := Model{
		engine:   grid.NewEngine(cfg.GridSize),
		screen:   core.NewScreen(GridWidth(cfg.GridSize), GridHeight(cfg.GridSize)),
		config:   cfg,
		recorder: opts.Recorder,
		logger:   logger,
		keys:     DefaultEditorKeyMap(),
		help:     h,
		presetID: opts.PresetID,
		toastTTL: opts.ToastTTL,
		showHelp: opts.ShowHelp,
	}

	switch {
	case opts.Layout != nil:
		opts.Layout.Apply(m.engine)
	case opts.PresetID != "":
		if err := m.loadPreset(opts.PresetID); err != nil {
			logger.Warn("could not load preset", "preset", opts.PresetID, "error", err)
		}
	}

	return m
}

// Engine returns the engine edited by this model.
func (m Model) Engine() *grid.Engine {
	return m.engine
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("pathgrid")
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.apply(m.keys.Action(msg))

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case ToastExpiredMsg:
		m.dropToast(msg.ID)
		return m, nil
	}

	return m, nil
}

// apply performs one editor action.
func (m Model) apply(action core.Action) (tea.Model, tea.Cmd) {
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		dx, dy := action.Delta()
		last := m.engine.Size() - 1
		m.cursor = grid.P(
			core.Clamp(m.cursor.X+dx, 0, last),
			core.Clamp(m.cursor.Y+dy, 0, last),
		)

	case core.ActionMarkStart:
		m.engine.Mark(m.cursor, grid.RoleStart)
		m.last = nil

	case core.ActionMarkFinish:
		m.engine.Mark(m.cursor, grid.RoleFinish)
		m.last = nil

	case core.ActionToggleBarrier:
		m.toggleBarrier(m.cursor)

	case core.ActionUnmark:
		m.engine.Unmark(m.cursor)
		m.last = nil

	case core.ActionFindPath:
		return m.findPath()

	case core.ActionClear:
		m.engine.Clear()
		m.last = nil

	case core.ActionNextPreset:
		next, ok := registry.Next(m.presetID)
		if !ok {
			return m, nil
		}
		var cmd tea.Cmd
		if err := m.loadPreset(next); err != nil {
			cmd = m.pushToast(ToastWarn, err.Error())
		} else {
			cmd = m.pushToast(ToastInfo, "Preset: "+m.presetTitle())
		}
		return m, cmd

	case core.ActionToggleHelp:
		m.showHelp = !m.showHelp
	}

	return m, nil
}

// handleMouse moves the cursor to a clicked cell. Left click toggles a
// barrier there, right click clears it.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}

	size := m.engine.Size()
	cells := core.NewRect(1, gridTop+1, 2*size, size)
	if !cells.Contains(msg.X, msg.Y) {
		return m, nil
	}
	p := grid.P((msg.X-1)/2, msg.Y-gridTop-1)

	switch msg.Button {
	case tea.MouseButtonLeft:
		m.cursor = p
		m.toggleBarrier(p)
	case tea.MouseButtonRight:
		m.cursor = p
		m.engine.Unmark(p)
		m.last = nil
	}
	return m, nil
}

func (m *Model) toggleBarrier(p grid.Position) {
	if m.engine.Lookup(p) == grid.RoleBarrier {
		m.engine.Unmark(p)
	} else {
		m.engine.Mark(p, grid.RoleBarrier)
	}
	m.last = nil
}

// findPath runs a search, records it and reports the outcome.
func (m Model) findPath() (tea.Model, tea.Cmd) {
	began := time.Now()
	res := m.engine.RequestPath()
	elapsed := time.Since(began)

	m.last = &res
	m.record(res, elapsed)

	if res.Reason == grid.ReasonMissingEndpoints {
		cmd := m.pushToast(ToastWarn, msgChooseEndpoints)
		return m, cmd
	}

	cmds := []tea.Cmd{
		m.pushToast(ToastInfo, fmt.Sprintf("Time spent: %d ms", elapsed.Milliseconds())),
	}
	if res.Found {
		cmds = append(cmds, m.pushToast(ToastSuccess, msgPathFound))
	} else {
		cmds = append(cmds, m.pushToast(ToastInfo, msgNoPath))
	}
	return m, tea.Batch(cmds...)
}

// record logs a search and saves it to the history store.
func (m *Model) record(res grid.Result, elapsed time.Duration) {
	run := NewRun(m.engine, res, elapsed, m.config.Source)

	m.logger.Info("search",
		"source", run.Source,
		"reason", run.Reason,
		"length", run.PathLength,
		"visited", run.Visited,
		"elapsed", elapsed,
	)

	if m.recorder == nil {
		return
	}
	if _, err := m.recorder.SaveRun(run); err != nil {
		m.logger.Warn("could not save run", "error", err)
	}
}

// NewRun describes a finished path request for the history store.
// Unmarked endpoints are stored as -1.
func NewRun(e *grid.Engine, res grid.Result, elapsed time.Duration, source string) storage.Run {
	run := storage.Run{
		Source:     source,
		GridSize:   e.Size(),
		StartX:     -1,
		StartY:     -1,
		FinishX:    -1,
		FinishY:    -1,
		Barriers:   e.Count(grid.RoleBarrier),
		Found:      res.Found,
		Reason:     res.Reason.String(),
		PathLength: res.Path.Len(),
		Visited:    res.Visited,
		Duration:   elapsed,
	}
	if p, ok := e.Find(grid.RoleStart); ok {
		run.StartX, run.StartY = p.X, p.Y
	}
	if p, ok := e.Find(grid.RoleFinish); ok {
		run.FinishX, run.FinishY = p.X, p.Y
	}
	return run
}

// loadPreset replaces the grid with a built-in layout.
func (m *Model) loadPreset(id string) error {
	l, err := registry.Build(id, m.engine.Size())
	if err != nil {
		return err
	}
	l.Apply(m.engine)
	m.presetID = id
	m.last = nil
	return nil
}

func (m Model) presetTitle() string {
	p, err := registry.Create(m.presetID)
	if err != nil {
		return m.presetID
	}
	return p.Title()
}

// pushToast shows a notification and returns the command that expires it.
func (m *Model) pushToast(level ToastLevel, text string) tea.Cmd {
	m.toastSeq++
	m.toasts = append(m.toasts, Toast{ID: m.toastSeq, Level: level, Text: text})
	// Only the most recent toasts stay on screen.
	const maxToasts = 3
	if len(m.toasts) > maxToasts {
		m.toasts = m.toasts[len(m.toasts)-maxToasts:]
	}
	if m.toastTTL <= 0 {
		return nil
	}
	return toastCmd(m.toastSeq, m.toastTTL)
}

func (m *Model) dropToast(id int) {
	kept := m.toasts[:0:0]
	for _, t := range m.toasts {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	m.toasts = kept
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render("PATHGRID"))
	b.WriteString(statusStyle.Render(m.statusLine()))
	b.WriteString("\n\n")

	m.screen.Clear()
	cursor := m.cursor
	DrawGrid(m.screen, m.engine, 0, 0, &cursor)
	gridView := RenderScreen(m.screen)

	if m.showHelp {
		gridView = lipgloss.JoinHorizontal(lipgloss.Top, gridView, "  ", m.infoPanel())
	}
	b.WriteString(gridView)
	b.WriteString("\n")

	for _, t := range m.toasts {
		b.WriteString("\n")
		b.WriteString(toastStyle(t.Level).Render(t.Text))
	}

	if !m.showHelp {
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp())))
	}

	return b.String()
}

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginLeft(2)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	panelStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

func toastStyle(level ToastLevel) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	switch level {
	case ToastWarn:
		return s.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("214"))
	case ToastSuccess:
		return s.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("42"))
	default:
		return s.Foreground(lipgloss.Color("15")).Background(lipgloss.Color("25"))
	}
}

// statusLine summarises the cursor and the last search.
func (m Model) statusLine() string {
	s := fmt.Sprintf("%dx%d  cursor %s  %s",
		m.engine.Size(), m.engine.Size(), m.cursor, m.engine.Lookup(m.cursor))
	if m.presetID != "" {
		s += "  preset " + m.presetID
	}
	if m.last != nil && m.last.Found {
		s += fmt.Sprintf("  path %d steps, %d visited", m.last.Path.Len(), m.last.Visited)
	}
	return s
}

// infoPanel explains the editor: legend plus every key binding.
func (m Model) infoPanel() string {
	legend := func(r grid.Role, label string) string {
		g, c := cellGlyph(r)
		return colorStyles[c].Render(string(g)) + " " + label
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("How to use"))
	b.WriteString("\n")
	b.WriteString("Mark a start and a finish, draw\nbarriers, then ask for a path.\n")
	b.WriteString("The shortest route avoids barriers\nand moves up, down, left or right.\n\n")
	b.WriteString(legend(grid.RoleStart, "start") + "   " + legend(grid.RoleFinish, "finish") + "\n")
	b.WriteString(legend(grid.RoleBarrier, "barrier") + " " + legend(grid.RolePath, "path") + "\n\n")
	b.WriteString("Mouse: left click toggles a barrier,\nright click clears a cell.\n\n")
	b.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	return panelStyle.Render(b.String())
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
