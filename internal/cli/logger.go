package cli

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/vardovia/vardovia/internal/logging"
)

// newConfiguredLogger creates a logger on stderr configured from CLI flags.
func newConfiguredLogger() *log.Logger {
	l := logging.NewLogger(os.Stderr)
	logging.Configure(l, logging.Flags{
		Verbose: verbose,
		Quiet:   quiet,
		NoColor: noColor,
		JSON:    jsonOutput,
	})
	return l
}
