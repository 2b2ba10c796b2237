package cli

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// popViewMsg pops the current view off the navigation stack,
// returning to the previous view.
type popViewMsg struct{}

// replaceViewMsg replaces the current top view with a new one.
type replaceViewMsg struct {
	view View
}

// refreshViewMsg asks every view on the stack to reload its data.
type refreshViewMsg struct{}

// statsChangedMsg signals that a mutation may have moved the aggregate
// dashboard numbers. The appModel broadcasts it to every view on the
// stack; the dashboard reloads its stats and swallows any failure.
type statsChangedMsg struct{}

// formCompleteMsg is sent when a form view finishes or is cancelled.
// The appModel handles it atomically: pop the form view, then run nextCmd.
type formCompleteMsg struct {
	nextCmd tea.Cmd
}

// quitMsg asks the appModel to exit the program.
type quitMsg struct{}

// pushView returns a tea.Cmd that pushes a view onto the stack.
func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

// popView returns a tea.Cmd that pops the current view.
func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

// replaceView returns a tea.Cmd that replaces the top view.
func replaceView(v View) tea.Cmd {
	return func() tea.Msg { return replaceViewMsg{view: v} }
}

// refreshStats returns a tea.Cmd carrying the cross-section refresh signal.
func refreshStats() tea.Cmd {
	return func() tea.Msg { return statsChangedMsg{} }
}

// ── toasts ──────────────────────────────────────────────────────────────────

// toastLifetime is how long a toast stays on screen before auto-dismissal.
const toastLifetime = 3 * time.Second

type toastLevel int

const (
	toastInfo toastLevel = iota
	toastSuccess
	toastError
)

// toast is one transient notification. Each entry dismisses independently
// on its own timer, so a burst of mutations never truncates earlier toasts.
type toast struct {
	id    int
	level toastLevel
	text  string
}

// showToastMsg asks the appModel to display a notification.
type showToastMsg struct {
	level toastLevel
	text  string
}

// toastExpireMsg dismisses the toast with the matching id.
type toastExpireMsg struct {
	id int
}

// notify returns a tea.Cmd that displays a toast.
func notify(level toastLevel, text string) tea.Cmd {
	return func() tea.Msg { return showToastMsg{level: level, text: text} }
}

func notifySuccess(text string) tea.Cmd { return notify(toastSuccess, text) }
func notifyError(text string) tea.Cmd   { return notify(toastError, text) }
