package cli

import (
	"fmt"

	"github.com/avillega/pulse/internal/cli/formatter"
	"github.com/spf13/cobra"
)

// newNetworkCmd prints contacts and goals once and exits.
func newNetworkCmd(app *App) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "network",
		Short: "List contacts and networking goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			now := app.now()

			contacts, err := app.Contacts.List(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s\n\n", formatter.Header("Contacts"))
			shown := 0
			for _, c := range contacts {
				if !c.Matches(search) {
					continue
				}
				shown++
				fmt.Fprintf(out, "%s  %s  %s  %s\n",
					formatter.Bold(c.Name),
					formatter.CategoryBadge(c.Category),
					formatter.OrPlaceholder(c.Email, "No email"),
					formatter.LastInteraction(c, now),
				)
			}
			if shown == 0 {
				fmt.Fprintln(out, formatter.Dim("No contacts."))
			}

			goals, err := app.Goals.List(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "\n%s\n\n", formatter.Header("Goals"))
			for _, g := range goals {
				fmt.Fprintf(out, "%s %s  %s  %s\n",
					formatter.RenderProgress(g.ProgressPercent(), 10),
					formatter.Dim(fmt.Sprintf("%d/%d", g.Completed, g.Target)),
					g.Description,
					formatter.Deadline(g, now),
				)
			}
			if len(goals) == 0 {
				fmt.Fprintln(out, formatter.Dim("No goals."))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "filter contacts by name, category, or email")
	return cmd
}
