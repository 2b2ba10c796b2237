package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/avillega/pulse/internal/cli/formatter"
	"github.com/avillega/pulse/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// statsLoadedMsg signals that the aggregate numbers have been fetched.
// A best-effort refresh sets soft so failures are swallowed instead of
// replacing the last good numbers with an error screen.
type statsLoadedMsg struct {
	stats domain.DashboardStats
	soft  bool
	err   error
}

// dashboardView is the home screen: the aggregate numbers for all three
// sections plus navigation into them.
type dashboardView struct {
	state   *SharedState
	stats   domain.DashboardStats
	loaded  bool
	loading bool
	err     error
}

func newDashboardView(state *SharedState) *dashboardView {
	return &dashboardView{state: state, loading: true}
}

func (v *dashboardView) ID() ViewID    { return ViewDashboard }
func (v *dashboardView) Title() string { return "Overview" }

func (v *dashboardView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "tasks")),
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "network")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "skills")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *dashboardView) Init() tea.Cmd {
	return v.loadStats(false)
}

func (v *dashboardView) loadStats(soft bool) tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		stats, err := app.Stats.Stats(context.Background())
		return statsLoadedMsg{stats: stats, soft: soft, err: err}
	}
}

func (v *dashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		v.loading = false
		if msg.err != nil {
			if !msg.soft {
				v.err = msg.err
			}
			return v, nil
		}
		v.err = nil
		v.stats = msg.stats
		v.loaded = true
		return v, nil

	case refreshViewMsg:
		v.loading = true
		v.err = nil
		return v, v.loadStats(false)

	case statsChangedMsg:
		// Cross-section refresh: reload quietly, keep stale numbers on
		// failure.
		return v, v.loadStats(true)

	case tea.KeyMsg:
		switch msg.String() {
		case "t":
			return v, pushView(newTasksView(v.state))
		case "n":
			return v, pushView(newNetworkView(v.state))
		case "s":
			return v, pushView(newSkillsView(v.state))
		case "r":
			v.loading = true
			v.err = nil
			return v, v.loadStats(false)
		}
	}

	return v, nil
}

const dashPanelWidth = 30

func (v *dashboardView) View() string {
	if v.loading && !v.loaded {
		return "\n  " + formatter.Dim("Loading...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}

	tasks := v.renderTaskPanel()
	skills := v.renderSkillPanel()
	network := v.renderNetworkPanel()

	if v.state.Width >= dashPanelWidth*3+4 {
		style := lipgloss.NewStyle().Width(dashPanelWidth)
		return "\n" + lipgloss.JoinHorizontal(lipgloss.Top,
			style.Render(tasks), "  ", style.Render(skills), "  ", style.Render(network))
	}
	return "\n" + tasks + "\n\n" + skills + "\n\n" + network
}

func (v *dashboardView) renderTaskPanel() string {
	d := v.stats.TaskData
	var b strings.Builder
	b.WriteString("  " + formatter.Header("Tasks") + "\n")
	b.WriteString(fmt.Sprintf("  %s %s   %s %s   %s %s\n",
		formatter.StyleGreen.Render(fmt.Sprintf("%d", d.Completed)), formatter.Dim("done"),
		formatter.StyleBlue.Render(fmt.Sprintf("%d", d.Pending)), formatter.Dim("pending"),
		formatter.StyleRed.Render(fmt.Sprintf("%d", d.Overdue)), formatter.Dim("overdue"),
	))
	b.WriteString("  " + formatter.RenderProgress(float64(d.CompletionPercentage), 16))
	return b.String()
}

func (v *dashboardView) renderSkillPanel() string {
	d := v.stats.SkillData
	var b strings.Builder
	b.WriteString("  " + formatter.Header("Skills") + "\n")
	b.WriteString(fmt.Sprintf("  %s %s   %s %s   %s %s\n",
		formatter.StyleGreen.Render(fmt.Sprintf("%d", d.Completed)), formatter.Dim("done"),
		formatter.StyleYellow.Render(fmt.Sprintf("%d", d.InProgress)), formatter.Dim("active"),
		formatter.Dim(fmt.Sprintf("%d", d.OnHold)), formatter.Dim("on hold"),
	))
	b.WriteString("  " + formatter.RenderProgress(float64(d.CompletionPercentage), 16))
	return b.String()
}

func (v *dashboardView) renderNetworkPanel() string {
	d := v.stats.NetworkData
	var b strings.Builder
	b.WriteString("  " + formatter.Header("Network") + "\n")
	b.WriteString(fmt.Sprintf("  %s %s  %s %s  %s %s\n",
		formatter.Bold(fmt.Sprintf("%d", d.TotalContacts)), formatter.Dim("contacts"),
		formatter.StyleGreen.Render(fmt.Sprintf("+%d", d.NewContacts)), formatter.Dim("new"),
		formatter.StyleYellow.Render(fmt.Sprintf("%d", d.FollowUps)), formatter.Dim("follow-ups"),
	))
	b.WriteString(fmt.Sprintf("  %s %s\n",
		formatter.Dim(fmt.Sprintf("goals %d/%d", d.CompletedGoals, d.TotalGoals)),
		formatter.Dim(fmt.Sprintf("growth %d%%", d.GrowthPercentage)),
	))
	b.WriteString("  " + formatter.RenderProgress(float64(d.GoalAchievementPercentage), 16))
	return b.String()
}
