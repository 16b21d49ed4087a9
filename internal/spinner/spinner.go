package spinner

import (
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// Hider is a loading indicator that can be taken down.
type Hider interface {
	Hide()
}

// Noop is the indicator used when no spinner should be drawn.
type Noop struct{}

func (Noop) Hide() {}

// Indicator is a spinner running in the background until Hide is called.
type Indicator struct {
	program *tea.Program
	done    chan struct{}
	once    sync.Once
	err     error
}

// Start draws a spinner with title on out. onInterrupt, if set, runs when
// the player presses Ctrl+C while the spinner owns the terminal.
func Start(out io.Writer, title string, onInterrupt func()) *Indicator {
	p := tea.NewProgram(newModel(title, onInterrupt), tea.WithOutput(out))
	ind := &Indicator{program: p, done: make(chan struct{})}
	go func() {
		_, ind.err = p.Run()
		close(ind.done)
	}()
	return ind
}

// Hide stops the spinner and waits until the terminal is restored. Calls
// after the first are no-ops.
func (i *Indicator) Hide() {
	i.once.Do(func() {
		i.program.Send(hideMsg{})
		<-i.done
	})
}

// Err reports why the spinner program stopped abnormally, if it did. It is
// only meaningful after Hide returns.
func (i *Indicator) Err() error {
	return i.err
}
