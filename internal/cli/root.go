package cli

import (
	"context"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/vardovia/vardovia/internal/config"
	"github.com/vardovia/vardovia/internal/logging"
)

// version is injected at build time via -ldflags.
var version = "dev"

var (
	jsonOutput bool
	noColor    bool
	verbose    bool
	quiet      bool
	serverURL  string
)

var rootCmd = &cobra.Command{
	Use:          "vardovia",
	Short:        "Play Escape from Vardovia in your terminal",
	Long:         "A terminal client for the Escape from Vardovia text adventure server. Type actions, read the game master's narration, and watch your status as you try to escape.",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose && quiet {
			verbose = false
		}
		l := newConfiguredLogger()
		ctx := logging.WithLogger(cmd.Context(), l)
		cmd.SetContext(ctx)

		// Load config from disk so malformed files surface a warning.
		cfg, err := config.Init()
		if err != nil {
			l.Warn("config file is malformed, using defaults", "err", err)
		}
		if noColor || !cfg.Display.Colors {
			lipgloss.SetColorProfile(termenv.Ascii)
		}
	},
	RunE: runRoot,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show detailed output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Minimal output")
	rootCmd.PersistentFlags().StringVarP(&serverURL, "server", "s", "", "Game server URL (overrides config)")
	rootCmd.Flags().Bool("version", false, "Show version and exit")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(actCmd)
	rootCmd.AddCommand(stateCmd)
	rootCmd.AddCommand(configCmd)
}

func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with the given context.
// Commands access it via cmd.Context().
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// runRoot starts a play session unless --version was given.
func runRoot(cmd *cobra.Command, args []string) error {
	if v, _ := cmd.Flags().GetBool("version"); v {
		out("vardovia %s\n", version)
		return nil
	}
	return runPlay(cmd, args)
}

func isTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
