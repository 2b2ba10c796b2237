package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/avillega/pulse/internal/cache"
	"github.com/avillega/pulse/internal/cli/formatter"
	"github.com/avillega/pulse/internal/domain"
	"github.com/avillega/pulse/internal/prefs"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ── messages ─────────────────────────────────────────────────────────────────

// tasksLoadedMsg signals that the task list has been fetched.
type tasksLoadedMsg struct {
	tasks []domain.Task
	err   error
}

// taskSavedMsg carries the server's record after a create or edit.
type taskSavedMsg struct {
	task domain.Task
}

// taskToggleDoneMsg resolves an optimistic completion toggle. On error
// the view rolls the record back to prev.
type taskToggleDoneMsg struct {
	id     string
	prev   domain.TaskStatus
	server domain.Task
	err    error
}

// taskDeleteDoneMsg resolves an optimistic delete. On error the removed
// record is reinserted.
type taskDeleteDoneMsg struct {
	removed domain.Task
	err     error
}

// ── view ─────────────────────────────────────────────────────────────────────

const tasksSection = "tasks"

// tasksView lists dashboard tasks. Completion toggles and deletes apply
// to the local cache immediately and roll back if the server rejects
// them.
type tasksView struct {
	state    *SharedState
	tasks    *cache.Collection[domain.Task]
	cursor   int
	viewMode domain.ViewMode
	sortKey  string
	loading  bool
	err      error
}

func newTasksView(state *SharedState) *tasksView {
	v := &tasksView{
		state:    state,
		tasks:    cache.New(func(t domain.Task) string { return t.ID }),
		viewMode: domain.ViewGrid,
		loading:  true,
	}
	if p, err := state.App.Prefs.Get(tasksSection); err == nil {
		v.viewMode = p.ViewMode
		v.sortKey = p.SortKey
	}
	return v
}

func (v *tasksView) ID() ViewID    { return ViewTasks }
func (v *tasksView) Title() string { return "Tasks" }

func (v *tasksView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("space"), key.WithHelp("space", "toggle done")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
		key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "grid/list")),
		key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "sort")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *tasksView) Init() tea.Cmd {
	return v.loadTasks()
}

func (v *tasksView) loadTasks() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		tasks, err := app.Tasks.List(context.Background())
		return tasksLoadedMsg{tasks: tasks, err: err}
	}
}

// applySort reorders the cache by the active sort key.
func (v *tasksView) applySort() {
	switch v.sortKey {
	case "name":
		v.tasks.SortBy(cache.TextAsc(func(t domain.Task) string { return t.Name }))
	case "due":
		v.tasks.SortBy(cache.DateAsc(func(t domain.Task) (time.Time, bool) {
			return domain.ParseWhen(t.DueDate)
		}))
	}
}

func (v *tasksView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tasksLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.err = nil
		v.tasks.Replace(msg.tasks)
		v.applySort()
		v.clampCursor()
		return v, nil

	case refreshViewMsg:
		v.loading = true
		return v, v.loadTasks()

	case taskSavedMsg:
		v.tasks.Upsert(msg.task)
		v.applySort()
		return v, nil

	case taskToggleDoneMsg:
		if msg.err != nil {
			// Roll the optimistic flip back.
			if t, ok := v.tasks.Get(msg.id); ok {
				t.Status = msg.prev
				v.tasks.Upsert(t)
			}
			return v, notifyError("Could not update task: " + msg.err.Error())
		}
		v.tasks.Upsert(msg.server)
		return v, nil

	case taskDeleteDoneMsg:
		if msg.err != nil {
			v.tasks.Upsert(msg.removed)
			v.applySort()
			v.clampCursor()
			return v, notifyError("Could not delete task: " + msg.err.Error())
		}
		return v, notifySuccess("Deleted " + msg.removed.Name)

	case tea.KeyMsg:
		all := v.tasks.All()
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(all)-1 {
				v.cursor++
			}
		case " ", "space":
			if v.cursor < len(all) {
				return v, v.toggleDone(all[v.cursor])
			}
		case "a":
			return v, pushView(newTaskFormView(v.state, nil))
		case "e":
			if v.cursor < len(all) {
				t := all[v.cursor]
				return v, pushView(newTaskFormView(v.state, &t))
			}
		case "x":
			if v.cursor < len(all) {
				return v, v.deleteTask(all[v.cursor])
			}
		case "v":
			v.viewMode = v.viewMode.Toggle()
			v.savePrefs()
		case "o":
			v.cycleSort()
		case "r":
			v.loading = true
			return v, v.loadTasks()
		}
	}
	return v, nil
}

// toggleDone flips the completion flag in the cache first, then confirms
// with the server. The reply either adopts the server record or rolls
// back.
func (v *tasksView) toggleDone(t domain.Task) tea.Cmd {
	prev := t.Status
	next := t.ToggledStatus()
	t.Status = next
	v.tasks.Upsert(t)

	app := v.state.App
	id := t.ID
	return func() tea.Msg {
		server, err := app.Tasks.Update(context.Background(), id, map[string]any{"status": next})
		return taskToggleDoneMsg{id: id, prev: prev, server: server, err: err}
	}
}

// deleteTask asks for confirmation, then removes the record from the
// cache before the server call resolves, keeping a copy for rollback.
func (v *tasksView) deleteTask(t domain.Task) tea.Cmd {
	app := v.state.App
	prompt := fmt.Sprintf("Delete task %q?", t.Name)
	return confirmView(v.state, "Delete Task", prompt, func() tea.Cmd {
		removed, ok := v.tasks.RemoveByID(t.ID)
		if !ok {
			return func() tea.Msg { return formResultMsg{} }
		}
		v.clampCursor()
		return func() tea.Msg {
			err := app.Tasks.Remove(context.Background(), t.ID)
			return formResultMsg{next: func() tea.Msg {
				return taskDeleteDoneMsg{removed: removed, err: err}
			}}
		}
	})
}

func (v *tasksView) cycleSort() {
	switch v.sortKey {
	case "":
		v.sortKey = "due"
	case "due":
		v.sortKey = "name"
	default:
		v.sortKey = ""
	}
	v.applySort()
	v.savePrefs()
}

func (v *tasksView) savePrefs() {
	_ = v.state.App.Prefs.Set(tasksSection, prefs.SectionPrefs{
		ViewMode: v.viewMode,
		SortKey:  v.sortKey,
	})
}

func (v *tasksView) clampCursor() {
	if n := v.tasks.Len(); v.cursor >= n {
		v.cursor = max(0, n-1)
	}
}

// ── rendering ────────────────────────────────────────────────────────────────

func (v *tasksView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading tasks...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}

	all := v.tasks.All()
	var b strings.Builder

	counts := domain.CountTasks(all)
	b.WriteString(fmt.Sprintf("\n  %s %s  %s %s  %s %s",
		formatter.Bold(fmt.Sprintf("%d", counts.Total)), formatter.Dim("total"),
		formatter.StyleGreen.Render(fmt.Sprintf("%d", counts.Completed)), formatter.Dim("done"),
		formatter.StyleBlue.Render(fmt.Sprintf("%d", counts.Pending)), formatter.Dim("pending"),
	))
	if v.sortKey != "" {
		b.WriteString("  " + formatter.Dim("sort: "+v.sortKey))
	}
	b.WriteString("\n\n")

	if len(all) == 0 {
		b.WriteString("  " + formatter.Dim("No tasks yet. Press 'a' to add one."))
		return b.String()
	}

	if v.viewMode == domain.ViewGrid && v.state.Width >= gridMinWidth {
		return b.String() + v.renderTaskGrid(all)
	}

	now := v.state.Now()
	for i, t := range all {
		cursor := "  "
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}

		check := formatter.Dim("○")
		name := t.Name
		if t.Completed() {
			check = formatter.StyleGreen.Render("✔")
			name = formatter.Dim(name)
		}

		due := ""
		if when, ok := domain.ParseWhen(t.DueDate); ok {
			due = "  " + formatter.Dim("due ") + formatter.RelativeDate(when, now)
		}

		b.WriteString(fmt.Sprintf("  %s%s %s  %s%s\n",
			cursor, check, name, formatter.PriorityPill(t.Priority), due))
		if t.Description != "" && i == v.cursor {
			b.WriteString("      " + formatter.Dim(formatter.Truncate(t.Description, 60)) + "\n")
		}
	}

	return b.String()
}

// renderTaskGrid lays the tasks out as two-column cards.
func (v *tasksView) renderTaskGrid(all []domain.Task) string {
	colWidth := (v.state.Width - 6) / 2
	now := v.state.Now()

	var cards []string
	for i, t := range all {
		check := formatter.Dim("○")
		name := formatter.Bold(formatter.Truncate(t.Name, colWidth-8))
		if t.Completed() {
			check = formatter.StyleGreen.Render("✔")
			name = formatter.Dim(formatter.Truncate(t.Name, colWidth-8))
		}
		due := formatter.Dim("no due date")
		if when, ok := domain.ParseWhen(t.DueDate); ok {
			due = formatter.Dim("due ") + formatter.RelativeDate(when, now)
		}
		body := check + " " + name + "\n" +
			formatter.PriorityPill(t.Priority) + "  " + due
		if t.Description != "" {
			body += "\n" + formatter.Dim(formatter.Truncate(t.Description, colWidth-4))
		}
		cards = append(cards, cardStyle(colWidth, i == v.cursor).Render(body))
	}
	return joinCardRows(cards)
}
