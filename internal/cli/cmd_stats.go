package cli

import (
	"fmt"

	"github.com/avillega/pulse/internal/cli/formatter"
	"github.com/spf13/cobra"
)

// newStatsCmd prints the aggregate dashboard numbers once and exits.
func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show aggregate dashboard numbers",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := app.Stats.Stats(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			t := stats.TaskData
			fmt.Fprintf(out, "%s\n", formatter.Header("Tasks"))
			fmt.Fprintf(out, "%d done, %d pending, %d overdue  %s\n\n",
				t.Completed, t.Pending, t.Overdue,
				formatter.RenderProgress(float64(t.CompletionPercentage), 12))

			s := stats.SkillData
			fmt.Fprintf(out, "%s\n", formatter.Header("Skills"))
			fmt.Fprintf(out, "%d done, %d in progress, %d on hold  %s\n\n",
				s.Completed, s.InProgress, s.OnHold,
				formatter.RenderProgress(float64(s.CompletionPercentage), 12))

			n := stats.NetworkData
			fmt.Fprintf(out, "%s\n", formatter.Header("Network"))
			fmt.Fprintf(out, "%d contacts (+%d new), %d follow-ups, goals %d/%d  %s\n",
				n.TotalContacts, n.NewContacts, n.FollowUps,
				n.CompletedGoals, n.TotalGoals,
				formatter.RenderProgress(float64(n.GoalAchievementPercentage), 12))
			return nil
		},
	}
}
