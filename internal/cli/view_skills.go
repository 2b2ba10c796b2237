package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/avillega/pulse/internal/cache"
	"github.com/avillega/pulse/internal/cli/formatter"
	"github.com/avillega/pulse/internal/domain"
	"github.com/avillega/pulse/internal/prefs"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ── messages ─────────────────────────────────────────────────────────────────

// skillsLoadedMsg signals that the skill list has been fetched.
type skillsLoadedMsg struct {
	skills []domain.Skill
	err    error
}

// skillSavedMsg carries the server's record after any skill write,
// including per-day journal updates and uploads. The server recomputes
// percentage and status, so the record replaces the cached one wholesale.
type skillSavedMsg struct {
	skill domain.Skill
}

// skillDeletedMsg resolves a confirmed skill delete.
type skillDeletedMsg struct {
	id   string
	name string
	err  error
}

// ── view ─────────────────────────────────────────────────────────────────────

const skillsSection = "skills"

// skillsView lists tracked skills with their server-computed progress.
type skillsView struct {
	state    *SharedState
	skills   *cache.Collection[domain.Skill]
	cursor   int
	viewMode domain.ViewMode
	sortKey  string
	loading  bool
	err      error
}

func newSkillsView(state *SharedState) *skillsView {
	v := &skillsView{
		state:    state,
		skills:   cache.New(func(s domain.Skill) string { return s.ID }),
		viewMode: domain.ViewGrid,
		loading:  true,
	}
	if p, err := state.App.Prefs.Get(skillsSection); err == nil {
		v.viewMode = p.ViewMode
		v.sortKey = p.SortKey
	}
	return v
}

func (v *skillsView) ID() ViewID    { return ViewSkills }
func (v *skillsView) Title() string { return "Skills" }

func (v *skillsView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "journal")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
		key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "grid/list")),
		key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "sort")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *skillsView) Init() tea.Cmd {
	return v.loadSkills()
}

func (v *skillsView) loadSkills() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		skills, err := app.Skills.List(context.Background())
		return skillsLoadedMsg{skills: skills, err: err}
	}
}

func (v *skillsView) applySort() {
	switch v.sortKey {
	case "name":
		v.skills.SortBy(cache.TextAsc(func(s domain.Skill) string { return s.Name }))
	case "progress":
		v.skills.SortBy(cache.NumberDesc(func(s domain.Skill) float64 { return float64(s.Completed) }))
	}
}

func (v *skillsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case skillsLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.err = nil
		v.skills.Replace(msg.skills)
		v.applySort()
		v.clampCursor()
		return v, nil

	case refreshViewMsg:
		v.loading = true
		return v, v.loadSkills()

	case skillSavedMsg:
		v.skills.Upsert(msg.skill)
		v.applySort()
		return v, nil

	case skillDeletedMsg:
		if msg.err != nil {
			return v, notifyError("Could not delete skill: " + msg.err.Error())
		}
		v.skills.RemoveByID(msg.id)
		v.clampCursor()
		return v, notifySuccess("Deleted " + msg.name)

	case tea.KeyMsg:
		all := v.skills.All()
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(all)-1 {
				v.cursor++
			}
		case "enter":
			if v.cursor < len(all) {
				return v, pushView(newSkillJournalView(v.state, all[v.cursor].ID))
			}
		case "a":
			return v, pushView(newSkillFormView(v.state, nil))
		case "e":
			if v.cursor < len(all) {
				s := all[v.cursor]
				return v, pushView(newSkillFormView(v.state, &s))
			}
		case "x":
			if v.cursor < len(all) {
				return v, v.deleteSkill(all[v.cursor])
			}
		case "v":
			v.viewMode = v.viewMode.Toggle()
			v.savePrefs()
		case "o":
			v.cycleSort()
		case "r":
			v.loading = true
			return v, v.loadSkills()
		}
	}
	return v, nil
}

func (v *skillsView) deleteSkill(s domain.Skill) tea.Cmd {
	app := v.state.App
	prompt := fmt.Sprintf("Delete skill %q and its journal?", s.Name)
	return confirmView(v.state, "Delete Skill", prompt, func() tea.Cmd {
		return func() tea.Msg {
			err := app.Skills.Remove(context.Background(), s.ID)
			return formResultMsg{next: func() tea.Msg {
				return skillDeletedMsg{id: s.ID, name: s.Name, err: err}
			}}
		}
	})
}

func (v *skillsView) cycleSort() {
	switch v.sortKey {
	case "":
		v.sortKey = "progress"
	case "progress":
		v.sortKey = "name"
	default:
		v.sortKey = ""
	}
	v.applySort()
	v.savePrefs()
}

func (v *skillsView) savePrefs() {
	_ = v.state.App.Prefs.Set(skillsSection, prefs.SectionPrefs{
		ViewMode: v.viewMode,
		SortKey:  v.sortKey,
	})
}

func (v *skillsView) clampCursor() {
	if n := v.skills.Len(); v.cursor >= n {
		v.cursor = max(0, n-1)
	}
}

// ── rendering ────────────────────────────────────────────────────────────────

func (v *skillsView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading skills...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}

	all := v.skills.All()
	if len(all) == 0 {
		return "\n  " + formatter.Dim("No skills yet. Press 'a' to add one.")
	}

	if v.viewMode == domain.ViewGrid && v.state.Width >= gridMinWidth {
		return "\n" + v.renderSkillGrid(all)
	}

	now := v.state.Now()
	var b strings.Builder
	b.WriteString("\n")
	for i, s := range all {
		cursor := "  "
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}

		remaining := ""
		if !s.IsComplete() {
			if d := s.DaysRemaining(now); d > 0 {
				remaining = "  " + formatter.Dim(fmt.Sprintf("%dd remaining", d))
			}
		}

		b.WriteString(fmt.Sprintf("  %s%s %s  %s\n",
			cursor,
			formatter.Bold(formatter.Truncate(s.Name, 26)),
			formatter.SkillLevelBadge(s.Level),
			formatter.Dim("from "+s.LearningFrom),
		))
		b.WriteString(fmt.Sprintf("      %s%s\n",
			formatter.RenderProgress(float64(s.Completed), 16),
			remaining,
		))
	}
	return b.String()
}

// renderSkillGrid lays the skills out as two-column cards.
func (v *skillsView) renderSkillGrid(all []domain.Skill) string {
	colWidth := (v.state.Width - 6) / 2
	now := v.state.Now()

	var cards []string
	for i, s := range all {
		remaining := ""
		if !s.IsComplete() {
			if d := s.DaysRemaining(now); d > 0 {
				remaining = "  " + formatter.Dim(fmt.Sprintf("%dd remaining", d))
			}
		}
		body := formatter.Bold(formatter.Truncate(s.Name, colWidth-6)) + "  " +
			formatter.SkillLevelBadge(s.Level) + "\n" +
			formatter.Dim("from "+formatter.Truncate(s.LearningFrom, colWidth-10)) + "\n" +
			formatter.RenderProgress(float64(s.Completed), 16) + remaining
		cards = append(cards, cardStyle(colWidth, i == v.cursor).Render(body))
	}
	return joinCardRows(cards)
}
