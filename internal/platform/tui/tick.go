// Package tui provides the Bubble Tea integration for the pathgrid editor.
// It handles the terminal UI loop, input mapping, notifications and the
// search history screen.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ToastLevel selects the colour of a notification.
type ToastLevel int

const (
	ToastInfo ToastLevel = iota
	ToastWarn
	ToastSuccess
)

// Toast is a short-lived notification shown under the grid.
type Toast struct {
	ID    int
	Level ToastLevel
	Text  string
}

// ToastExpiredMsg is sent when the toast with the given ID should disappear.
type ToastExpiredMsg struct {
	ID int
}

// toastCmd returns a Bubble Tea command that expires a toast after ttl.
func toastCmd(id int, ttl time.Duration) tea.Cmd {
	return tea.Tick(ttl, func(time.Time) tea.Msg {
		return ToastExpiredMsg{ID: id}
	})
}
