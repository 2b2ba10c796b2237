package cli

import (
	"context"

	"github.com/avillega/pulse/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

func contactCategoryOptions() []huh.Option[string] {
	return []huh.Option[string]{
		huh.NewOption("Friends", string(domain.CategoryFriends)),
		huh.NewOption("Colleagues", string(domain.CategoryColleagues)),
		huh.NewOption("Mentors", string(domain.CategoryMentors)),
		huh.NewOption("Potential", string(domain.CategoryPotential)),
		huh.NewOption("Alumni", string(domain.CategoryAlumni)),
		huh.NewOption("Other", string(domain.CategoryOther)),
	}
}

// newContactFormView builds the add/edit form for a contact. Editing
// updates the existing record in place, so its identifier and accrued
// notes survive the edit.
func newContactFormView(state *SharedState, existing *domain.Contact) View {
	var (
		name        string
		email       string
		phone       string
		category    = string(domain.CategoryOther)
		lastSeen    string
		nextMeeting string
	)
	title := "New Contact"
	if existing != nil {
		title = "Edit Contact"
		name = existing.Name
		email = existing.Email
		phone = existing.Phone
		category = string(existing.Category)
		lastSeen = existing.LastInteraction
		nextMeeting = existing.NextMeeting
	}

	build := func() *huh.Form {
		return newForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Name").
					Value(&name).
					Validate(validateRequired),
				huh.NewInput().
					Title("Email (optional)").
					Value(&email),
				huh.NewInput().
					Title("Phone (optional)").
					Value(&phone),
				huh.NewSelect[string]().
					Title("Category").
					Options(contactCategoryOptions()...).
					Value(&category),
				dateInput("Last Interaction (optional)", &lastSeen),
				dateInput("Next Meeting (optional)", &nextMeeting),
			),
		)
	}

	app := state.App
	submit := func() tea.Cmd {
		return func() tea.Msg {
			contact := domain.Contact{
				Name:            name,
				Email:           email,
				Phone:           phone,
				Category:        domain.ContactCategory(category),
				LastInteraction: lastSeen,
				NextMeeting:     nextMeeting,
			}
			if err := contact.Validate(); err != nil {
				return formResultMsg{err: err}
			}

			ctx := context.Background()
			var (
				saved domain.Contact
				err   error
				done  string
			)
			if existing == nil {
				saved, err = app.Contacts.Create(ctx, contact)
				done = "Added " + contact.Name
			} else {
				contact.Notes = existing.Notes
				saved, err = app.Contacts.Update(ctx, existing.ID, contact)
				done = "Updated " + contact.Name
			}
			if err != nil {
				return formResultMsg{err: err}
			}
			return formResultMsg{next: tea.Batch(
				notifySuccess(done),
				func() tea.Msg { return contactSavedMsg{contact: saved} },
			)}
		}
	}

	return newFormView(state, title, build, submit)
}

// newContactNoteView appends one note to a contact. The full notes text
// is sent so the server stores the concatenated history.
func newContactNoteView(state *SharedState, contact domain.Contact) View {
	var note string

	build := func() *huh.Form {
		return newForm(
			huh.NewGroup(
				huh.NewText().
					Title("Note for " + contact.Name).
					Value(&note).
					Validate(validateRequired),
			),
		)
	}

	app := state.App
	submit := func() tea.Cmd {
		return func() tea.Msg {
			updated := contact
			updated.AppendNote(note)
			saved, err := app.Contacts.Update(context.Background(), contact.ID,
				map[string]any{"notes": updated.Notes})
			if err != nil {
				return formResultMsg{err: err}
			}
			return formResultMsg{next: tea.Batch(
				notifySuccess("Noted"),
				func() tea.Msg { return contactSavedMsg{contact: saved} },
			)}
		}
	}

	return newFormView(state, "Add Note", build, submit)
}
