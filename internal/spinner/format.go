package spinner

import (
	"fmt"
	"time"
)

// DefaultTitle is shown while the game master composes a reply.
const DefaultTitle = "The game master is thinking..."

// ShouldShow reports whether the spinner should be displayed.
// It is hidden for quiet mode, JSON output, or non-TTY (piped) output.
func ShouldShow(quiet, json, nonTTY bool) bool {
	return !quiet && !json && !nonTTY
}

// FormatTitle appends whole elapsed seconds once the wait passes a second.
func FormatTitle(title string, elapsed time.Duration) string {
	if title == "" {
		title = DefaultTitle
	}
	secs := int(elapsed / time.Second)
	if secs < 1 {
		return title
	}
	return fmt.Sprintf("%s %ds", title, secs)
}
