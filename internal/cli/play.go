package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vardovia/vardovia/internal/display"
	"github.com/vardovia/vardovia/internal/logging"
	"github.com/vardovia/vardovia/internal/presenter"
	"github.com/vardovia/vardovia/internal/prompt"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start an interactive session",
	RunE:  runPlay,
}

func isQuit(action string) bool {
	switch strings.ToLower(strings.TrimSpace(action)) {
	case "quit", "exit", "q":
		return true
	}
	return false
}

func runPlay(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)
	s := newSession(ctx)
	decorate := !jsonOutput && !quiet

	if decorate {
		outln(display.RenderBanner())
		outln()
	}

	if st, err := s.client.State(ctx); err != nil {
		logger.Warn("could not load game state", "server", s.client.BaseURL(), "err", err)
	} else {
		s.status.UpdateStatus(st)
	}

	for {
		if ctx.Err() != nil {
			return nil
		}

		action, err := prompt.Default.Input(prompt.InputConfig{
			Title:       "What do you want to do?",
			Description: "or 'quit' to exit",
			Placeholder: "search the room",
			Validate:    prompt.ValidateAction,
		})
		if err != nil {
			if prompt.IsAborted(err) {
				if decorate {
					outln("Session interrupted. Goodbye.")
				}
				return nil
			}
			return fmt.Errorf("reading action: %w", err)
		}

		action = strings.TrimSpace(action)
		if action == "" {
			continue
		}
		if isQuit(action) {
			if decorate {
				outln("Thanks for playing!")
			}
			return nil
		}

		if err := s.messages.AddMessage(ctx, action, true); err != nil {
			logger.Debug("could not echo action", "err", err)
		}

		outcome := s.turn(ctx, action)
		logger.Debug("turn complete", "outcome", outcome.Kind)

		if outcome.Kind == presenter.Success {
			if ending, ok := outcome.State.Ending(); ok {
				if decorate {
					outln(display.RenderEnding(ending))
				}
				return nil
			}
		}

		if decorate {
			outln(display.RenderSeparator(50))
		}
	}
}
