// ABOUTME: TUI initialization and control
// ABOUTME: Wraps the bubbletea program for the player UI
package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Control holds channels for playback control from the TUI
type Control struct {
	Toggle chan struct{} // play/pause
	Stop   chan struct{}
}

// NewControl creates a new playback control handler
func NewControl() *Control {
	return &Control{
		Toggle: make(chan struct{}, 1),
		Stop:   make(chan struct{}, 1),
	}
}

// NewModel creates a new TUI model
func NewModel(control *Control) Model {
	return Model{
		phase:   "stopped",
		control: control,
	}
}

// Run starts the TUI
func Run(control *Control) (*tea.Program, error) {
	p := tea.NewProgram(NewModel(control), tea.WithAltScreen())
	return p, nil
}
