package cli

import (
	"context"
	"strconv"

	"github.com/avillega/pulse/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// newGoalFormView builds the add/edit form for a networking goal.
func newGoalFormView(state *SharedState, existing *domain.Goal) View {
	var (
		description string
		goalType    = string(domain.GoalMeet)
		target      = "1"
		deadline    string
	)
	title := "New Goal"
	if existing != nil {
		title = "Edit Goal"
		description = existing.Description
		goalType = string(existing.Type)
		target = strconv.Itoa(existing.Target)
		deadline = existing.Deadline
	}

	build := func() *huh.Form {
		return newForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Description").
					Value(&description).
					Validate(validateRequired),
				huh.NewSelect[string]().
					Title("Type").
					Options(
						huh.NewOption("Meet new people", string(domain.GoalMeet)),
						huh.NewOption("Reconnect", string(domain.GoalReconnect)),
						huh.NewOption("Attend event", string(domain.GoalEvent)),
						huh.NewOption("Other", string(domain.GoalOther)),
					).
					Value(&goalType),
				huh.NewInput().
					Title("Target").
					Placeholder("5").
					Value(&target).
					Validate(validatePositiveInt),
				dateInput("Deadline (optional)", &deadline),
			),
		)
	}

	app := state.App
	submit := func() tea.Cmd {
		return func() tea.Msg {
			goal := domain.Goal{
				Description: description,
				Type:        domain.GoalType(goalType),
				Target:      parseInt(target, 1),
				Deadline:    deadline,
			}
			if existing != nil {
				goal.Completed = existing.Completed
			}
			if err := goal.Validate(); err != nil {
				return formResultMsg{err: err}
			}

			ctx := context.Background()
			var (
				saved domain.Goal
				err   error
				done  string
			)
			if existing == nil {
				saved, err = app.Goals.Create(ctx, goal)
				done = "Added goal"
			} else {
				saved, err = app.Goals.Update(ctx, existing.ID, goal)
				done = "Updated goal"
			}
			if err != nil {
				return formResultMsg{err: err}
			}
			return formResultMsg{next: tea.Batch(
				notifySuccess(done),
				func() tea.Msg { return goalSavedMsg{goal: saved} },
			)}
		}
	}

	return newFormView(state, title, build, submit)
}
