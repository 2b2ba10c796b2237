package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/avillega/pulse/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// newSkillFormView builds the add/edit form for a skill. On create the
// server generates the day journal from the date range.
func newSkillFormView(state *SharedState, existing *domain.Skill) View {
	var (
		name     string
		source   string
		start    string
		end      string
		priority = string(domain.PriorityMedium)
		level    = string(domain.LevelBeginner)
	)
	title := "New Skill"
	if existing != nil {
		title = "Edit Skill"
		name = existing.Name
		source = existing.LearningFrom
		start = existing.StartDate
		end = existing.ExpectedEndDate
		priority = string(existing.Priority)
		level = string(existing.Level)
	}

	build := func() *huh.Form {
		return newForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Skill").
					Value(&name).
					Validate(validateRequired),
				huh.NewInput().
					Title("Learning From").
					Placeholder("book, course, mentor ...").
					Value(&source).
					Validate(validateRequired),
				huh.NewInput().
					Title("Start Date").
					Placeholder("2026-09-01").
					Value(&start).
					Validate(validateDate),
				huh.NewInput().
					Title("Expected End Date").
					Placeholder("2026-10-01").
					Value(&end).
					Validate(validateDate),
				huh.NewSelect[string]().
					Title("Priority").
					Options(
						huh.NewOption("Low", string(domain.PriorityLow)),
						huh.NewOption("Medium", string(domain.PriorityMedium)),
						huh.NewOption("High", string(domain.PriorityHigh)),
					).
					Value(&priority),
				huh.NewSelect[string]().
					Title("Level").
					Options(
						huh.NewOption("Beginner", string(domain.LevelBeginner)),
						huh.NewOption("Intermediate", string(domain.LevelIntermediate)),
						huh.NewOption("Advanced", string(domain.LevelAdvanced)),
					).
					Value(&level),
			),
		)
	}

	app := state.App
	submit := func() tea.Cmd {
		return func() tea.Msg {
			skill := domain.Skill{
				Name:            name,
				LearningFrom:    source,
				StartDate:       start,
				ExpectedEndDate: end,
				Priority:        domain.NormalizePriority(priority),
				Level:           domain.SkillLevel(level),
			}
			if err := skill.Validate(); err != nil {
				return formResultMsg{err: err}
			}

			ctx := context.Background()
			var (
				saved domain.Skill
				err   error
				done  string
			)
			if existing == nil {
				saved, err = app.Skills.Create(ctx, skill)
				done = "Tracking " + skill.Name
			} else {
				saved, err = app.Skills.Update(ctx, existing.ID, map[string]any{
					"name":            name,
					"learningFrom":    source,
					"startDate":       start,
					"expectedEndDate": end,
					"priority":        priority,
					"level":           level,
				})
				done = "Updated " + skill.Name
			}
			if err != nil {
				return formResultMsg{err: err}
			}
			return formResultMsg{next: tea.Batch(
				notifySuccess(done),
				func() tea.Msg { return skillSavedMsg{skill: saved} },
			)}
		}
	}

	return newFormView(state, title, build, submit)
}

// ── attachments ──────────────────────────────────────────────────────────────

type uploadKind int

const (
	uploadDocument uploadKind = iota
	uploadCertificate
)

// newUploadFormView attaches a local file to a skill as a document or a
// completion certificate, then reloads the record so the attachment
// shows up.
func newUploadFormView(state *SharedState, skill domain.Skill, kind uploadKind) View {
	var path string

	title := "Attach Document"
	if kind == uploadCertificate {
		title = "Attach Certificate"
	}

	build := func() *huh.Form {
		return newForm(
			huh.NewGroup(
				huh.NewInput().
					Title("File path").
					Placeholder("~/notes/" + strings.ToLower(skill.Name) + ".pdf").
					Value(&path).
					Validate(validateRequired),
			),
		)
	}

	app := state.App
	submit := func() tea.Cmd {
		return func() tea.Msg {
			expanded := expandHome(path)
			f, err := os.Open(expanded)
			if err != nil {
				return formResultMsg{err: fmt.Errorf("opening %s: %w", expanded, err)}
			}
			defer f.Close()

			ctx := context.Background()
			name := filepath.Base(expanded)
			if kind == uploadCertificate {
				_, err = app.Uploads.UploadCertificate(ctx, skill.ID, name, f)
			} else {
				_, err = app.Uploads.UploadDocument(ctx, skill.ID, name, f)
			}
			if err != nil {
				return formResultMsg{err: err}
			}
			return formResultMsg{next: tea.Batch(
				notifySuccess("Attached "+name),
				func() tea.Msg { return refreshViewMsg{} },
			)}
		}
	}

	return newFormView(state, title, build, submit)
}

// expandHome resolves a leading ~ to the user's home directory.
func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}
