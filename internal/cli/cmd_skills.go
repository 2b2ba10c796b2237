package cli

import (
	"fmt"

	"github.com/avillega/pulse/internal/cli/formatter"
	"github.com/spf13/cobra"
)

// newSkillsCmd prints the skill list once and exits.
func newSkillsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "skills",
		Short: "List tracked skills",
		RunE: func(cmd *cobra.Command, args []string) error {
			skills, err := app.Skills.List(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			now := app.now()

			fmt.Fprintf(out, "%s\n\n", formatter.Header("Skills"))
			for _, s := range skills {
				line := fmt.Sprintf("%s %s  %s  %s",
					formatter.RenderProgress(float64(s.Completed), 10),
					formatter.Bold(s.Name),
					formatter.SkillLevelBadge(s.Level),
					formatter.Dim("from "+s.LearningFrom),
				)
				if d := s.DaysRemaining(now); d > 0 && !s.IsComplete() {
					line += "  " + formatter.Dim(fmt.Sprintf("%dd remaining", d))
				}
				fmt.Fprintln(out, line)
			}
			if len(skills) == 0 {
				fmt.Fprintln(out, formatter.Dim("No skills tracked."))
			}
			return nil
		},
	}
}
