package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newSeedCmd(app *App) *cobra.Command {
	var reset bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the demo semester",
		Long:  "Load the demo profile, tasks, plan and welcome message. Without --reset an already populated store is left alone.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Seed == nil {
				return errors.New("seeding is not available")
			}
			loaded, err := app.Seed(cmd.Context(), reset)
			if err != nil {
				return fmt.Errorf("seeding demo data: %w", err)
			}
			if !loaded {
				fmt.Fprintln(cmd.OutOrStdout(), "Store already has data; use --reset to replace it.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Demo semester loaded.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&reset, "reset", false, "Delete tasks and chat history before loading")

	return cmd
}
