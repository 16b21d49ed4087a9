package spinner

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// hideMsg tells the model to stop and clear itself.
type hideMsg struct{}

type model struct {
	spinner     spinner.Model
	title       string
	started     time.Time
	elapsed     time.Duration
	onInterrupt func()
	quitting    bool
}

var spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

func newModel(title string, onInterrupt func()) model {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	s.Style = spinnerStyle

	return model{
		spinner:     s,
		title:       title,
		started:     time.Now(),
		onInterrupt: onInterrupt,
	}
}

func (m model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case hideMsg:
		m.quitting = true
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.elapsed = time.Since(m.started)
		return m, cmd

	case tea.KeyMsg:
		// Raw mode swallows SIGINT, so Ctrl+C arrives here instead.
		if msg.Type == tea.KeyCtrlC {
			if m.onInterrupt != nil {
				m.onInterrupt()
			}
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m model) View() string {
	// The spinner is transient progress UI and leaves nothing behind.
	if m.quitting {
		return ""
	}
	return m.spinner.View() + " " + FormatTitle(m.title, m.elapsed)
}
