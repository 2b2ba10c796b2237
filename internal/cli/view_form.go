package cli

import (
	"github.com/avillega/pulse/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// formResultMsg carries the outcome of a form submission. On success,
// next runs after the form view is popped; on error the form reopens
// for correction.
type formResultMsg struct {
	err  error
	next tea.Cmd
}

// formView wraps a huh.Form as a View on the navigation stack. When the
// form completes, it enters a submitting state that ignores further key
// input until the server call resolves, so a slow request can never be
// submitted twice.
type formView struct {
	state      *SharedState
	build      func() *huh.Form
	form       *huh.Form
	titleStr   string
	submitting bool

	// submit performs the server call once the form completes. It must
	// return a formResultMsg.
	submit func() tea.Cmd
}

func newFormView(state *SharedState, title string, build func() *huh.Form, submit func() tea.Cmd) *formView {
	return &formView{
		state:    state,
		build:    build,
		form:     build(),
		titleStr: title,
		submit:   submit,
	}
}

func (v *formView) Init() tea.Cmd {
	return v.form.Init()
}

func (v *formView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case formResultMsg:
		if msg.err != nil {
			// Reopen the form with its values intact for correction.
			v.submitting = false
			v.form = v.build()
			return v, tea.Batch(v.form.Init(), notifyError(msg.err.Error()))
		}
		return v, func() tea.Msg { return formCompleteMsg{nextCmd: msg.next} }

	case tea.KeyMsg:
		if v.submitting {
			return v, nil
		}
		// Escape cancels.
		if msg.Type == tea.KeyEsc {
			return v, func() tea.Msg { return formCompleteMsg{} }
		}
	}

	if v.submitting {
		return v, nil
	}

	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}

	if v.form.State == huh.StateCompleted {
		v.submitting = true
		return v, tea.Batch(cmd, v.submit())
	}

	return v, cmd
}

func (v *formView) View() string {
	if v.submitting {
		return "\n  " + formatter.Dim("Saving...")
	}
	return v.form.View()
}

func (v *formView) ID() ViewID    { return ViewForm }
func (v *formView) Title() string { return v.titleStr }
func (v *formView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next/submit")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// confirmView pushes a yes/no form and runs the action only when
// confirmed. The action must return a formResultMsg.
func confirmView(state *SharedState, title, prompt string, action func() tea.Cmd) tea.Cmd {
	var confirmed bool
	build := func() *huh.Form {
		return newForm(huh.NewGroup(
			huh.NewConfirm().
				Title(prompt).
				Affirmative("Delete").
				Negative("Keep").
				Value(&confirmed),
		))
	}
	submit := func() tea.Cmd {
		if !confirmed {
			return func() tea.Msg { return formResultMsg{} }
		}
		return action()
	}
	return pushView(newFormView(state, title, build, submit))
}
