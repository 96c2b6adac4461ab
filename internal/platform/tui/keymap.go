package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pathgrid/internal/core"
)

// EditorKeyMap defines the key bindings for the grid editor.
// It translates Bubble Tea key messages to editor actions and doubles as the
// help.KeyMap shown in the info panel.
type EditorKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Start    key.Binding
	Finish   key.Binding
	Barrier  key.Binding
	Unmark   key.Binding
	FindPath key.Binding
	Clear    key.Binding
	Preset   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultEditorKeyMap returns default key bindings.
func DefaultEditorKeyMap() EditorKeyMap {
	return EditorKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Start: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "mark start"),
		),
		Finish: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "mark finish"),
		),
		Barrier: key.NewBinding(
			key.WithKeys("x", " "),
			key.WithHelp("x/space", "toggle barrier"),
		),
		Unmark: key.NewBinding(
			key.WithKeys("d", "backspace", "delete"),
			key.WithHelp("d/bksp", "clear cell"),
		),
		FindPath: key.NewBinding(
			key.WithKeys("enter", "p"),
			key.WithHelp("enter/p", "find path"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear grid"),
		),
		Preset: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next preset"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "info"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k EditorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Finish, k.Barrier, k.FindPath, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k EditorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Start, k.Finish, k.Barrier, k.Unmark},
		{k.FindPath, k.Clear, k.Preset},
		{k.Help, k.Quit},
	}
}

// Action maps a key message to an editor action.
// Unbound keys yield core.ActionNone.
func (k EditorKeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Start):
		return core.ActionMarkStart
	case key.Matches(msg, k.Finish):
		return core.ActionMarkFinish
	case key.Matches(msg, k.Barrier):
		return core.ActionToggleBarrier
	case key.Matches(msg, k.Unmark):
		return core.ActionUnmark
	case key.Matches(msg, k.FindPath):
		return core.ActionFindPath
	case key.Matches(msg, k.Clear):
		return core.ActionClear
	case key.Matches(msg, k.Preset):
		return core.ActionNextPreset
	case key.Matches(msg, k.Help):
		return core.ActionToggleHelp
	}
	return core.ActionNone
}
