package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vardovia/vardovia/internal/display"
	"github.com/vardovia/vardovia/internal/presenter"
)

var actCmd = &cobra.Command{
	Use:   "act <action...>",
	Short: "Send a single action and show the reply",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s := newSession(ctx)
		action := strings.Join(args, " ")

		outcome := s.turn(ctx, action)

		if s.events != nil {
			if err := s.events.Outcome(display.OutcomeJSON{
				Outcome: outcome.Kind.String(),
				Message: outcome.Message,
				State:   outcome.State,
			}); err != nil {
				return err
			}
		}

		if outcome.Kind != presenter.Success {
			return fmt.Errorf("action %q ended in %s", action, outcome.Kind)
		}
		if ending, ok := outcome.State.Ending(); ok && s.events == nil && !quiet {
			outln(display.RenderEnding(ending))
		}
		return nil
	},
}
