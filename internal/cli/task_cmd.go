package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/aurora/internal/cli/formatter"
	"github.com/alexanderramin/aurora/internal/domain"
	"github.com/spf13/cobra"
)

func newTasksCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tasks",
		Short: "List tasks by due date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := app.Tasks.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTasks(tasks, app.now()))
			return nil
		},
	}
}

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}
	cmd.AddCommand(newTaskAddCmd(app), newTaskRemoveCmd(app), newTaskImportCmd(app))
	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var (
		v       taskFormValues
		minutes int
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task",
		Long:  "Add a task from flags, or through a form when run in a terminal without flags.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().NFlag() == 0 && app.interactive() {
				if err := taskForm(&v).Run(); err != nil {
					return err
				}
			} else {
				v.Minutes = fmt.Sprint(minutes)
			}

			now := app.now()
			task, err := v.toTask(now.Location())
			if err != nil {
				return err
			}
			if err := app.Tasks.Add(cmd.Context(), task); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n\n%s\n",
				formatter.StyleGreen.Render("Added"),
				formatter.TruncID(task.ID),
				formatter.FormatTaskCard(*task, now),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&v.Course, "course", "", "Course name")
	cmd.Flags().StringVar(&v.Title, "title", "", "Task title")
	cmd.Flags().StringVar(&v.Due, "due", time.Now().AddDate(0, 0, 1).Format(domain.DueDateLayout), "Due date (YYYY-MM-DD or RFC 3339)")
	cmd.Flags().StringVar(&v.Effort, "effort", "moderate", "Effort: light, moderate or intensive")
	cmd.Flags().IntVar(&minutes, "minutes", 60, "Estimated minutes")

	return cmd
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove ID",
		Aliases: []string{"rm"},
		Short:   "Remove a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Tasks.Remove(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("removing task %s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed task %s\n", args[0])
			return nil
		},
	}
}

func newTaskImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import tasks from a JSON file",
		Long: `Import tasks from a JSON file of the form
  {"tasks": [{"course": "...", "title": "...", "due": "2025-06-20", "effort": "light", "estimated_minutes": 30}]}
Every task is validated first; either all are stored or none are.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Import == nil {
				return errors.New("import is not available")
			}
			res, err := app.Import.ImportFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d tasks\n\n", formatter.StyleGreen.Render("Imported"), len(res.Tasks))
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTasks(res.Tasks, app.now()))
			return nil
		},
	}
}
