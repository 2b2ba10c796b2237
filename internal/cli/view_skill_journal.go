package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/avillega/pulse/internal/cli/formatter"
	"github.com/avillega/pulse/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// ── messages ─────────────────────────────────────────────────────────────────

// journalLoadedMsg signals that the journal's skill record has been
// fetched.
type journalLoadedMsg struct {
	skill domain.Skill
	found bool
	err   error
}

// dayUpdatedMsg resolves a per-day journal write. The carried record is
// the server's, with percentage and status already recomputed.
type dayUpdatedMsg struct {
	skill domain.Skill
	err   error
}

// ── view ─────────────────────────────────────────────────────────────────────

// skillJournalView shows one skill's day-by-day journal. Only today's
// entry can be marked done or annotated; past and future days are
// read-only.
type skillJournalView struct {
	state   *SharedState
	skillID string
	skill   domain.Skill
	cursor  int
	loading bool
	err     error
}

func newSkillJournalView(state *SharedState, skillID string) *skillJournalView {
	return &skillJournalView{state: state, skillID: skillID, loading: true}
}

func (v *skillJournalView) ID() ViewID { return ViewSkillJournal }
func (v *skillJournalView) Title() string {
	if v.skill.Name != "" {
		return v.skill.Name
	}
	return "Journal"
}

func (v *skillJournalView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("space"), key.WithHelp("space", "toggle today")),
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "note today")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "attach document")),
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "attach certificate")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *skillJournalView) Init() tea.Cmd {
	return v.loadSkill()
}

func (v *skillJournalView) loadSkill() tea.Cmd {
	app := v.state.App
	id := v.skillID
	return func() tea.Msg {
		skills, err := app.Skills.List(context.Background())
		if err != nil {
			return journalLoadedMsg{err: err}
		}
		for _, s := range skills {
			if s.ID == id {
				return journalLoadedMsg{skill: s, found: true}
			}
		}
		return journalLoadedMsg{}
	}
}

func (v *skillJournalView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case journalLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		if !msg.found {
			v.err = fmt.Errorf("skill no longer exists")
			return v, nil
		}
		v.err = nil
		v.skill = msg.skill
		v.focusToday()
		return v, nil

	case refreshViewMsg:
		v.loading = true
		return v, v.loadSkill()

	case skillSavedMsg:
		if msg.skill.ID == v.skillID {
			v.skill = msg.skill
		}
		return v, nil

	case dayUpdatedMsg:
		if msg.err != nil {
			return v, notifyError("Could not update day: " + msg.err.Error())
		}
		// Adopt the server's record everywhere, including the list below.
		return v, func() tea.Msg { return skillSavedMsg{skill: msg.skill} }

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.skill.Days)-1 {
				v.cursor++
			}
		case " ", "space":
			return v, v.toggleToday()
		case "n":
			if day := v.today(); day != nil {
				return v, pushView(newDayNoteView(v.state, v.skill, *day))
			}
			return v, notifyError("Only today's entry can be annotated")
		case "d":
			return v, pushView(newUploadFormView(v.state, v.skill, uploadDocument))
		case "c":
			return v, pushView(newUploadFormView(v.state, v.skill, uploadCertificate))
		case "r":
			v.loading = true
			return v, v.loadSkill()
		}
	}
	return v, nil
}

// today returns the journal entry for the current calendar date, or nil.
func (v *skillJournalView) today() *domain.SkillDay {
	now := v.state.Now()
	for i := range v.skill.Days {
		if v.skill.Days[i].IsToday(now) {
			return &v.skill.Days[i]
		}
	}
	return nil
}

func (v *skillJournalView) focusToday() {
	now := v.state.Now()
	for i := range v.skill.Days {
		if v.skill.Days[i].IsToday(now) {
			v.cursor = i
			return
		}
	}
	if v.cursor >= len(v.skill.Days) {
		v.cursor = max(0, len(v.skill.Days)-1)
	}
}

// toggleToday flips today's completion flag. The cursor position does
// not matter: past and future days are never writable.
func (v *skillJournalView) toggleToday() tea.Cmd {
	day := v.today()
	if day == nil {
		return notifyError("No journal entry for today")
	}

	app := v.state.App
	id := v.skillID
	date, note, completed := day.Date, day.Note, !day.Completed
	return func() tea.Msg {
		skill, err := app.Skills.UpdateDay(context.Background(), id, date, note, completed)
		return dayUpdatedMsg{skill: skill, err: err}
	}
}

// ── rendering ────────────────────────────────────────────────────────────────

func (v *skillJournalView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading journal...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}

	s := v.skill
	now := v.state.Now()
	var b strings.Builder

	b.WriteString("\n  " + formatter.Bold(s.Name) + "  " + formatter.SkillLevelBadge(s.Level) + "\n")
	b.WriteString("  " + formatter.RenderProgress(float64(s.Completed), 20) +
		formatter.Dim(fmt.Sprintf("  %d/%d days", s.CompletedDays(), len(s.Days))) + "\n")
	b.WriteString("  " + formatter.Dim(s.StartDate+" → "+s.ExpectedEndDate) + "\n")
	if len(s.Documents) > 0 {
		b.WriteString("  " + formatter.Dim(fmt.Sprintf("%d document(s) attached", len(s.Documents))) + "\n")
	}
	if s.CompletionCertificate != "" {
		b.WriteString("  " + formatter.StyleGreen.Render("✔ certificate on file") + "\n")
	}
	b.WriteString("\n")

	if len(s.Days) == 0 {
		b.WriteString("  " + formatter.Dim("No journal entries."))
		return b.String()
	}

	// Window the day list around the cursor.
	height := v.state.ContentHeight() - 7
	if height < 3 {
		height = 3
	}
	start := 0
	if v.cursor >= height {
		start = v.cursor - height + 1
	}
	end := min(start+height, len(s.Days))

	for i := start; i < end; i++ {
		day := s.Days[i]
		cursor := "  "
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}

		check := formatter.Dim("○")
		if day.Completed {
			check = formatter.StyleGreen.Render("✔")
		}

		label := day.Date
		if day.IsToday(now) {
			label = formatter.StyleYellow.Render(label + " (today)")
		} else {
			label = formatter.Dim(label)
		}

		note := ""
		if day.Note != "" {
			note = "  " + formatter.Truncate(day.Note, 46)
		}

		b.WriteString(fmt.Sprintf("  %s%s %s%s\n", cursor, check, label, note))
	}

	return b.String()
}

// ── today's note form ────────────────────────────────────────────────────────

// newDayNoteView edits today's journal note, preserving the completion
// flag.
func newDayNoteView(state *SharedState, skill domain.Skill, day domain.SkillDay) View {
	note := day.Note

	build := func() *huh.Form {
		return newForm(
			huh.NewGroup(
				huh.NewText().
					Title("What did you learn on " + day.Date + "?").
					Value(&note),
			),
		)
	}

	app := state.App
	submit := func() tea.Cmd {
		return func() tea.Msg {
			updated, err := app.Skills.UpdateDay(context.Background(), skill.ID, day.Date, note, day.Completed)
			if err != nil {
				return formResultMsg{err: err}
			}
			return formResultMsg{next: tea.Batch(
				notifySuccess("Noted"),
				func() tea.Msg { return skillSavedMsg{skill: updated} },
			)}
		}
	}

	return newFormView(state, "Today's Note", build, submit)
}
