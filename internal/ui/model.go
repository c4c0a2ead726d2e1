// ABOUTME: Bubbletea model for the player TUI
// ABOUTME: Defines application state and update logic
package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Model represents the TUI state
type Model struct {
	// Stream
	codec      string
	sampleRate int
	channels   int
	vendor     string

	// Playback
	phase   string
	elapsed int
	session string

	// Last absorbed failure, if any
	lastErr string

	control *Control

	// Dimensions
	width  int
	height int
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case StatusMsg:
		m.applyStatus(msg)
	}

	return m, nil
}

// View renders the TUI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	s := ""
	s += m.renderHeader()
	s += m.renderStream()
	s += m.renderHelp()

	return s
}

// renderHeader renders the playback phase
func (m Model) renderHeader() string {
	phase := m.phase
	if phase == "" {
		phase = "stopped"
	}

	return fmt.Sprintf(`┌─ OpenPlayer ─────────────────────────────────────────┐
│ Phase:   %-44s│
│ Elapsed: %-44s│
├──────────────────────────────────────────────────────┤
`, phase, formatElapsed(m.elapsed))
}

// renderStream renders the decoded stream description
func (m Model) renderStream() string {
	if m.codec == "" {
		return "│ No stream                                            │\n"
	}

	s := fmt.Sprintf("│ Format: %s %dHz %s%-24s │\n",
		m.codec, m.sampleRate, channelName(m.channels), "")
	if m.vendor != "" {
		s += fmt.Sprintf("│ Vendor: %-44s │\n", truncate(m.vendor, 44))
	}
	if m.session != "" {
		s += fmt.Sprintf("│ Session: %-43s │\n", truncate(m.session, 43))
	}
	if m.lastErr != "" {
		s += fmt.Sprintf("│ Error:  %-44s │\n", truncate(m.lastErr, 44))
	}

	return s
}

// renderHelp renders keyboard shortcuts
func (m Model) renderHelp() string {
	return `│ space:Play/Pause  s:Stop  q:Quit                     │
└──────────────────────────────────────────────────────┘
`
}

// handleKey handles keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		if m.control != nil {
			select {
			case m.control.Stop <- struct{}{}:
			default:
			}
		}
		return m, tea.Quit
	case " ":
		if m.control != nil {
			select {
			case m.control.Toggle <- struct{}{}:
			default:
			}
		}
	case "s":
		if m.control != nil {
			select {
			case m.control.Stop <- struct{}{}:
			default:
			}
		}
	}

	return m, nil
}

// applyStatus updates model from status message
func (m *Model) applyStatus(msg StatusMsg) {
	if msg.Phase != "" {
		m.phase = msg.Phase
	}
	if msg.Codec != "" {
		m.codec = msg.Codec
		m.sampleRate = msg.SampleRate
		m.channels = msg.Channels
		m.vendor = msg.Vendor
	}
	if msg.Session != "" {
		m.session = msg.Session
	}
	if msg.Elapsed != 0 {
		m.elapsed = msg.Elapsed
	}
	if msg.Err != "" {
		m.lastErr = msg.Err
	}
}

// StatusMsg updates TUI state
type StatusMsg struct {
	Phase      string
	Codec      string
	SampleRate int
	Channels   int
	Vendor     string
	Session    string
	Elapsed    int
	Err        string
}

// formatElapsed renders whole seconds as m:ss
func formatElapsed(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// channelName returns a human-readable channel layout name
func channelName(channels int) string {
	switch channels {
	case 1:
		return "mono"
	case 2:
		return "stereo"
	default:
		return fmt.Sprintf("%dch", channels)
	}
}

// truncate shortens a string to fit the box
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
