package cli

import (
	"fmt"

	"github.com/alexanderramin/aurora/internal/cli/formatter"
	"github.com/alexanderramin/aurora/internal/seed"
	"github.com/spf13/cobra"
)

func newProfileCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show the student profile and achievements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Profiles.Get(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, formatter.FormatProfile(p))
			fmt.Fprint(out, "\n")
			fmt.Fprint(out, formatter.FormatAchievements(seed.Achievements()))
			return nil
		},
	}
}

func newResourcesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "resources",
		Short: "List curated study resources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatResources(seed.Resources()))
			return nil
		},
	}
}
