package cli

import (
	"fmt"
	"time"

	"github.com/avillega/pulse/internal/api"
	"github.com/avillega/pulse/internal/prefs"
	"github.com/spf13/cobra"
)

// App holds the remote stores and local preferences used by the TUI and
// the one-shot subcommands.
type App struct {
	Tasks    *api.TaskStore
	Contacts *api.ContactStore
	Goals    *api.GoalStore
	Skills   *api.SkillStore
	Stats    *api.StatsClient
	Uploads  *api.Client
	Prefs    *prefs.Store

	// IsInteractive reports whether stdin is a terminal. The TUI only
	// launches when it returns true.
	IsInteractive func() bool

	// Now is the clock for derived date statuses.
	Now func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// NewRootCmd creates the top-level "pulse" command. Running it bare
// launches the TUI; subcommands print one-shot snapshots for scripting.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "pulse",
		Short: "Terminal dashboard for tasks, skills, and networking",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("stdin is not a terminal; use a subcommand (tasks, network, skills, stats)")
			}
			return launchTUI(app)
		},
	}

	root.AddCommand(
		newTasksCmd(app),
		newNetworkCmd(app),
		newSkillsCmd(app),
		newStatsCmd(app),
	)

	return root
}
