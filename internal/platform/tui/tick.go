// Package tui provides the Bubble Tea integration for the arcade
// platform: the terminal loop, input mapping, menus and rendering.
// Frames arrive at the render rate; each game's own fixed-rate clock
// decides when a simulation tick actually fires.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per render frame.
type TickMsg time.Time

// tickCmd returns a command that emits frame messages at the given rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
