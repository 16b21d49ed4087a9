package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/vardovia/vardovia/internal/display"
)

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Show the current game state",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		s := newSession(ctx)

		loading := s.startLoading(cancel)
		st, err := s.client.State(ctx)
		loading.Hide()
		if err != nil {
			return err
		}

		if jsonOutput {
			return display.OutputJSON(outWriter, st)
		}

		if quiet {
			out("%s %s health=%s danger=%s\n", st.Location, st.Time,
				display.FormatNumber(st.Health), display.FormatNumber(st.Danger))
			return nil
		}

		outln(display.RenderStatus(st))
		return nil
	},
}
