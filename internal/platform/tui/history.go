package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pathgrid/internal/storage"
)

// History layout constants
const (
	minWidthForSidebar = 100 // Minimum width to show the stats sidebar
	sidebarWidth       = 26  // Width of stats sidebar
	maxRuns            = 200 // Runs loaded when no limit is given
)

// HistorySource provides recorded searches. *storage.Store satisfies it.
type HistorySource interface {
	RecentRuns(limit int) ([]storage.Run, error)
	Stats() (*storage.Stats, error)
	ClearRuns() error
}

// HistoryKeyMap defines the key bindings for the history screen.
type HistoryKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Refresh key.Binding
	Clear   key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Refresh, k.Clear, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Refresh, k.Clear, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Clear: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "delete all"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for the search history screen.
type HistoryModel struct {
	source      HistorySource
	limit       int
	runs        []storage.Run
	stats       *storage.Stats
	err         error
	table       table.Model
	help        help.Model
	keys        HistoryKeyMap
	width       int
	height      int
	quitting    bool
	showSidebar bool
}

// NewHistoryModel creates a new history model and loads up to limit of the
// most recent runs. A limit of zero or less loads maxRuns.
func NewHistoryModel(source HistorySource, limit, width, height int) HistoryModel {
	if limit <= 0 {
		limit = maxRuns
	}
	h := help.New()
	h.ShowAll = false

	m := HistoryModel{
		source:      source,
		limit:       limit,
		keys:        DefaultHistoryKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	m.table = m.createTable()
	m.load()

	return m
}

// createTable creates a new table sized for the current window.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "When", Width: 12},
		{Title: "Source", Width: 10},
		{Title: "Grid", Width: 5},
		{Title: "Start", Width: 8},
		{Title: "Finish", Width: 8},
		{Title: "Result", Width: 17},
		{Title: "Steps", Width: 5},
		{Title: "Time", Width: 9},
	}

	height := m.height - 8 // Leave room for header, help, and margins
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads runs and stats from the source.
func (m *HistoryModel) load() {
	m.runs, m.stats, m.err = nil, nil, nil
	if m.source == nil {
		m.updateTableRows()
		return
	}

	runs, err := m.source.RecentRuns(m.limit)
	if err != nil {
		m.err = err
	} else {
		m.runs = runs
	}

	stats, err := m.source.Stats()
	if err == nil {
		m.stats = stats
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded runs.
func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = runRow(r)
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// runRow formats one run as table cells.
func runRow(r storage.Run) table.Row {
	steps := "-"
	if r.Found {
		steps = fmt.Sprintf("%d", r.PathLength)
	}
	return table.Row{
		r.CreatedAt.Format("Jan 02 15:04"),
		r.Source,
		fmt.Sprintf("%d", r.GridSize),
		formatXY(r.StartX, r.StartY),
		formatXY(r.FinishX, r.FinishY),
		r.Reason,
		steps,
		r.Duration.Round(time.Microsecond).String(),
	}
}

// formatXY renders a stored coordinate; -1 means the endpoint was not marked.
func formatXY(x, y int) string {
	if x < 0 || y < 0 {
		return "-"
	}
	return fmt.Sprintf("(%d,%d)", x, y)
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Refresh):
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.Clear):
			if m.source != nil {
				if err := m.source.ClearRuns(); err != nil {
					m.err = err
					return m, nil
				}
			}
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("SEARCH HISTORY", m.width)))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	tableRendered := boxStyle.Render(m.renderTableContent())

	if m.showSidebar {
		sidebar := boxStyle.Width(sidebarWidth).Render(m.renderStats())
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, sidebar, "  ", tableRendered))
	} else {
		b.WriteString(tableRendered)
		b.WriteString("\n")
		b.WriteString(m.renderStatsLine())
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderStats renders the aggregated statistics for the sidebar.
func (m HistoryModel) renderStats() string {
	if m.stats == nil {
		return "Stats\n\nunavailable"
	}
	var b strings.Builder
	b.WriteString("Stats\n")
	b.WriteString(strings.Repeat("-", sidebarWidth-4))
	fmt.Fprintf(&b, "\nSearches:  %d", m.stats.Runs)
	fmt.Fprintf(&b, "\nFound:     %d", m.stats.Found)
	fmt.Fprintf(&b, "\nAvg time:  %s", m.stats.AvgDuration)
	fmt.Fprintf(&b, "\nLongest:   %d steps", m.stats.LongestPath)
	return b.String()
}

// renderStatsLine renders the statistics on one line for narrow windows.
func (m HistoryModel) renderStatsLine() string {
	if m.stats == nil {
		return ""
	}
	return fmt.Sprintf("%d searches, %d found, avg %s, longest %d steps",
		m.stats.Runs, m.stats.Found, m.stats.AvgDuration, m.stats.LongestPath)
}

// renderTableContent renders the table or an empty/error message.
func (m HistoryModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	if m.err != nil {
		return emptyStyle.Render("Could not read history:\n" + m.err.Error())
	}
	if len(m.runs) == 0 {
		return emptyStyle.Render("No searches recorded yet.\nRun 'pathgrid edit' and find a path!")
	}
	return m.table.View()
}

// centerText pads text so it is centered within width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunHistory runs the history screen showing up to limit runs.
func RunHistory(source HistorySource, limit, width, height int) error {
	p := tea.NewProgram(
		NewHistoryModel(source, limit, width, height),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
