package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/aurora/internal/cli/formatter"
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

const replyWrapWidth = 80

func newAskCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "ask MESSAGE...",
		Short: "Ask the study assistant",
		Example: `  aurora ask "plan my week"
  aurora ask I have an exam on friday`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Chat.Ask(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", formatter.SpeakerLabel(res.Answer.Role))
			fmt.Fprint(out, renderReply(res.Response.Reply, app.interactive()))

			if recs := formatter.FormatRecommendations(res.Response.RecommendedTasks, app.now()); recs != "" {
				fmt.Fprintf(out, "%s\n\n", recs)
			}
			if len(res.Response.UpdatedPlan) > 0 {
				fmt.Fprintf(out, "%s\n\n", formatter.Dim("Weekly plan updated. Run: aurora plan"))
			}
			fmt.Fprint(out, formatter.FormatFollowUps(res.Response.FollowUpPrompts))
			fmt.Fprintf(out, "\n%s\n", formatter.FormatCategories(res.Categories))
			return nil
		},
	}
}

// renderReply renders assistant markdown. Terminals get the auto-detected
// style; pipes get plain text.
func renderReply(reply string, interactive bool) string {
	style := glamour.WithStandardStyle("notty")
	if interactive {
		style = glamour.WithAutoStyle()
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(replyWrapWidth))
	if err != nil {
		return reply + "\n\n"
	}
	rendered, err := r.Render(reply)
	if err != nil {
		return reply + "\n\n"
	}
	return rendered
}
