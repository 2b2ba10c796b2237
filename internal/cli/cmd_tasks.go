package cli

import (
	"fmt"

	"github.com/avillega/pulse/internal/cli/formatter"
	"github.com/avillega/pulse/internal/domain"
	"github.com/spf13/cobra"
)

// newTasksCmd prints the task list once and exits. Useful for scripts
// and non-interactive shells.
func newTasksCmd(app *App) *cobra.Command {
	var pendingOnly bool

	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "List dashboard tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := app.Tasks.List(cmd.Context())
			if err != nil {
				return err
			}

			counts := domain.CountTasks(tasks)
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n", formatter.Header(
				fmt.Sprintf("Tasks (%d done / %d total)", counts.Completed, counts.Total)))

			now := app.now()
			for _, t := range tasks {
				if pendingOnly && t.Completed() {
					continue
				}
				check := "○"
				if t.Completed() {
					check = formatter.StyleGreen.Render("✔")
				}
				line := fmt.Sprintf("%s %s  %s", check, t.Name, formatter.PriorityPill(t.Priority))
				if when, ok := domain.ParseWhen(t.DueDate); ok {
					line += "  " + formatter.Dim("due "+formatter.RelativeDate(when, now))
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			if len(tasks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No tasks."))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&pendingOnly, "pending", false, "show only pending tasks")
	return cmd
}
