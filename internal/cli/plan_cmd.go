package cli

import (
	"fmt"

	"github.com/alexanderramin/aurora/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	var regenerate bool

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show the weekly focus map",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			plan, err := app.Plans.Current(ctx)
			if regenerate {
				plan, err = app.Plans.Regenerate(ctx)
			}
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlan(plan, app.now()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&regenerate, "regenerate", false, "Rebuild the plan from current tasks and save it")

	return cmd
}
