package cli

import (
	"context"

	"github.com/avillega/pulse/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// newTaskFormView builds the add/edit form for a task. A nil existing
// creates a new record; otherwise the fields are prefilled and the
// submission is a full-record update against the same identifier.
func newTaskFormView(state *SharedState, existing *domain.Task) View {
	var (
		name        string
		description string
		priority    = string(domain.PriorityLow)
		dueDate     string
		reminder    string
	)
	title := "New Task"
	if existing != nil {
		title = "Edit Task"
		name = existing.Name
		description = existing.Description
		priority = string(existing.Priority)
		dueDate = existing.DueDate
		reminder = existing.Reminder
	}

	build := func() *huh.Form {
		return newForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Name").
					Value(&name).
					Validate(validateRequired),
				huh.NewInput().
					Title("Description (optional)").
					Value(&description),
				huh.NewSelect[string]().
					Title("Priority").
					Options(
						huh.NewOption("Low", string(domain.PriorityLow)),
						huh.NewOption("Medium", string(domain.PriorityMedium)),
						huh.NewOption("High", string(domain.PriorityHigh)),
					).
					Value(&priority),
				dateInput("Due Date (optional)", &dueDate),
				dateInput("Reminder (optional)", &reminder),
			),
		)
	}

	app := state.App
	submit := func() tea.Cmd {
		return func() tea.Msg {
			task := domain.Task{
				Name:        name,
				Description: description,
				Status:      domain.TaskPending,
				Priority:    domain.NormalizePriority(priority),
				DueDate:     dueDate,
				Reminder:    reminder,
			}

			ctx := context.Background()
			var (
				saved domain.Task
				err   error
				done  string
			)
			if existing == nil {
				saved, err = app.Tasks.Create(ctx, task)
				done = "Added " + task.Name
			} else {
				task.Status = existing.Status
				saved, err = app.Tasks.Update(ctx, existing.ID, task)
				done = "Updated " + task.Name
			}
			if err != nil {
				return formResultMsg{err: err}
			}
			return formResultMsg{next: tea.Batch(
				notifySuccess(done),
				func() tea.Msg { return taskSavedMsg{task: saved} },
			)}
		}
	}

	return newFormView(state, title, build, submit)
}
