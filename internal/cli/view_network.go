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
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ── messages ─────────────────────────────────────────────────────────────────

// networkLoadedMsg signals that both network collections have been
// fetched.
type networkLoadedMsg struct {
	contacts []domain.Contact
	goals    []domain.Goal
	err      error
}

// contactSavedMsg carries the server's record after a create or edit.
type contactSavedMsg struct {
	contact domain.Contact
}

// goalSavedMsg carries the server's record after a create, edit, or
// progress bump.
type goalSavedMsg struct {
	goal domain.Goal
}

// contactDeletedMsg resolves a confirmed contact delete. The cache entry
// is only dropped on success.
type contactDeletedMsg struct {
	id   string
	name string
	err  error
}

// goalDeletedMsg resolves a confirmed goal delete.
type goalDeletedMsg struct {
	id          string
	description string
	err         error
}

// goalProgressMsg resolves a progress increment.
type goalProgressMsg struct {
	goal domain.Goal
	err  error
}

// ── view ─────────────────────────────────────────────────────────────────────

const (
	networkSection      = "network"
	networkGoalsSection = "network.goals"
)

type networkPane int

const (
	paneContacts networkPane = iota
	paneGoals
)

// networkView shows contacts and goals side by side. Every mutation here
// waits for the server before touching the cache, and nudges the
// overview to refresh its aggregate numbers afterwards.
type networkView struct {
	state    *SharedState
	contacts *cache.Collection[domain.Contact]
	goals    *cache.Collection[domain.Goal]

	pane          networkPane
	contactCursor int
	goalCursor    int

	viewMode    domain.ViewMode
	sortKey     string
	goalSortKey string

	search    textinput.Model
	searching bool

	loading bool
	err     error
}

func newNetworkView(state *SharedState) *networkView {
	search := textinput.New()
	search.Placeholder = "name, category, or email"
	search.Prompt = "/ "
	search.CharLimit = 60

	v := &networkView{
		state:    state,
		contacts: cache.New(func(c domain.Contact) string { return c.ID }),
		goals:    cache.New(func(g domain.Goal) string { return g.ID }),
		viewMode: domain.ViewGrid,
		search:   search,
		loading:  true,
	}
	if p, err := state.App.Prefs.Get(networkSection); err == nil {
		v.viewMode = p.ViewMode
		v.sortKey = p.SortKey
	}
	if p, err := state.App.Prefs.Get(networkGoalsSection); err == nil {
		v.goalSortKey = p.SortKey
	}
	return v
}

func (v *networkView) ID() ViewID    { return ViewNetwork }
func (v *networkView) Title() string { return "Network" }

// capturingInput claims raw keys while the search field is focused.
func (v *networkView) capturingInput() bool { return v.searching }

func (v *networkView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "contacts/goals")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add contact")),
		key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "add goal")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		key.NewBinding(key.WithKeys("N"), key.WithHelp("N", "note")),
		key.NewBinding(key.WithKeys("+"), key.WithHelp("+", "progress")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
		key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "grid/list")),
		key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "sort")),
	}
}

func (v *networkView) Init() tea.Cmd {
	return v.loadNetwork()
}

func (v *networkView) loadNetwork() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		ctx := context.Background()
		contacts, err := app.Contacts.List(ctx)
		if err != nil {
			return networkLoadedMsg{err: err}
		}
		goals, err := app.Goals.List(ctx)
		if err != nil {
			return networkLoadedMsg{err: err}
		}
		return networkLoadedMsg{contacts: contacts, goals: goals}
	}
}

// applySort reorders the contact cache by the active sort key.
func (v *networkView) applySort() {
	switch v.sortKey {
	case "name":
		v.contacts.SortBy(cache.TextAsc(func(c domain.Contact) string { return c.Name }))
	case "category":
		v.contacts.SortBy(cache.TextAsc(func(c domain.Contact) string { return string(c.Category) }))
	case "interaction":
		v.contacts.SortBy(cache.DateAsc(func(c domain.Contact) (time.Time, bool) {
			return c.LastInteractionTime()
		}))
	}
}

// applyGoalSort reorders the goal cache by its own sort key.
func (v *networkView) applyGoalSort() {
	switch v.goalSortKey {
	case "description":
		v.goals.SortBy(cache.TextAsc(func(g domain.Goal) string { return g.Description }))
	case "type":
		v.goals.SortBy(cache.TextAsc(func(g domain.Goal) string { return string(g.Type) }))
	case "deadline":
		v.goals.SortBy(cache.DateAsc(func(g domain.Goal) (time.Time, bool) {
			return domain.ParseWhen(g.Deadline)
		}))
	case "progress":
		v.goals.SortBy(cache.NumberDesc(func(g domain.Goal) float64 { return g.ProgressPercent() }))
	}
}

// visibleContacts applies the search filter over the cache order.
func (v *networkView) visibleContacts() []domain.Contact {
	term := v.search.Value()
	all := v.contacts.All()
	if term == "" {
		return all
	}
	var out []domain.Contact
	for _, c := range all {
		if c.Matches(term) {
			out = append(out, c)
		}
	}
	return out
}

func (v *networkView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case networkLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.err = nil
		v.contacts.Replace(msg.contacts)
		v.goals.Replace(msg.goals)
		v.applySort()
		v.applyGoalSort()
		v.clampCursors()
		return v, nil

	case refreshViewMsg:
		v.loading = true
		return v, v.loadNetwork()

	case contactSavedMsg:
		v.contacts.Upsert(msg.contact)
		v.applySort()
		return v, refreshStats()

	case goalSavedMsg:
		v.goals.Upsert(msg.goal)
		v.applyGoalSort()
		return v, refreshStats()

	case contactDeletedMsg:
		if msg.err != nil {
			return v, notifyError("Could not delete contact: " + msg.err.Error())
		}
		v.contacts.RemoveByID(msg.id)
		v.clampCursors()
		return v, tea.Batch(notifySuccess("Deleted "+msg.name), refreshStats())

	case goalDeletedMsg:
		if msg.err != nil {
			return v, notifyError("Could not delete goal: " + msg.err.Error())
		}
		v.goals.RemoveByID(msg.id)
		v.clampCursors()
		return v, tea.Batch(notifySuccess("Deleted goal"), refreshStats())

	case goalProgressMsg:
		if msg.err != nil {
			return v, notifyError("Could not update progress: " + msg.err.Error())
		}
		v.goals.Upsert(msg.goal)
		next := tea.Batch(refreshStats())
		if msg.goal.IsComplete() {
			next = tea.Batch(notifySuccess("Goal achieved: "+msg.goal.Description), refreshStats())
		}
		return v, next

	case tea.KeyMsg:
		if v.searching {
			return v.updateSearch(msg)
		}
		return v.handleKey(msg)
	}

	if v.searching {
		var cmd tea.Cmd
		v.search, cmd = v.search.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *networkView) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		v.searching = false
		v.search.Blur()
		v.search.SetValue("")
		return v, nil
	case tea.KeyEnter:
		v.searching = false
		v.search.Blur()
		return v, nil
	}
	var cmd tea.Cmd
	v.search, cmd = v.search.Update(msg)
	v.contactCursor = 0
	return v, cmd
}

func (v *networkView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := v.visibleContacts()
	goals := v.goals.All()

	switch msg.String() {
	case "tab":
		if v.pane == paneContacts {
			v.pane = paneGoals
		} else {
			v.pane = paneContacts
		}
	case "up", "k":
		if v.pane == paneContacts && v.contactCursor > 0 {
			v.contactCursor--
		} else if v.pane == paneGoals && v.goalCursor > 0 {
			v.goalCursor--
		}
	case "down", "j":
		if v.pane == paneContacts && v.contactCursor < len(visible)-1 {
			v.contactCursor++
		} else if v.pane == paneGoals && v.goalCursor < len(goals)-1 {
			v.goalCursor++
		}
	case "/":
		v.searching = true
		return v, v.search.Focus()
	case "v":
		v.viewMode = v.viewMode.Toggle()
		v.savePrefs()
	case "o":
		v.cycleSort()
	case "a":
		return v, pushView(newContactFormView(v.state, nil))
	case "g":
		return v, pushView(newGoalFormView(v.state, nil))
	case "e":
		if v.pane == paneContacts {
			if v.contactCursor < len(visible) {
				c := visible[v.contactCursor]
				return v, pushView(newContactFormView(v.state, &c))
			}
		} else if v.goalCursor < len(goals) {
			g := goals[v.goalCursor]
			return v, pushView(newGoalFormView(v.state, &g))
		}
	case "N":
		if v.pane == paneContacts && v.contactCursor < len(visible) {
			c := visible[v.contactCursor]
			return v, pushView(newContactNoteView(v.state, c))
		}
	case "+":
		if v.pane == paneGoals && v.goalCursor < len(goals) {
			return v, v.bumpProgress(goals[v.goalCursor])
		}
	case "x":
		if v.pane == paneContacts {
			if v.contactCursor < len(visible) {
				return v, v.deleteContact(visible[v.contactCursor])
			}
		} else if v.goalCursor < len(goals) {
			return v, v.deleteGoal(goals[v.goalCursor])
		}
	case "r":
		v.loading = true
		return v, v.loadNetwork()
	}
	return v, nil
}

// deleteContact confirms, then awaits the server before dropping the
// cache entry. A rejected delete leaves the record in place.
func (v *networkView) deleteContact(c domain.Contact) tea.Cmd {
	app := v.state.App
	prompt := fmt.Sprintf("Delete contact %q?", c.Name)
	return confirmView(v.state, "Delete Contact", prompt, func() tea.Cmd {
		return func() tea.Msg {
			err := app.Contacts.Remove(context.Background(), c.ID)
			return formResultMsg{next: func() tea.Msg {
				return contactDeletedMsg{id: c.ID, name: c.Name, err: err}
			}}
		}
	})
}

func (v *networkView) deleteGoal(g domain.Goal) tea.Cmd {
	app := v.state.App
	prompt := fmt.Sprintf("Delete goal %q?", formatter.Truncate(g.Description, 40))
	return confirmView(v.state, "Delete Goal", prompt, func() tea.Cmd {
		return func() tea.Msg {
			err := app.Goals.Remove(context.Background(), g.ID)
			return formResultMsg{next: func() tea.Msg {
				return goalDeletedMsg{id: g.ID, description: g.Description, err: err}
			}}
		}
	})
}

// bumpProgress increments the completed count by one. The cache adopts
// the server's record only after a successful reply.
func (v *networkView) bumpProgress(g domain.Goal) tea.Cmd {
	app := v.state.App
	next := g.Completed + 1
	return func() tea.Msg {
		goal, err := app.Goals.Update(context.Background(), g.ID, map[string]any{"completed": next})
		return goalProgressMsg{goal: goal, err: err}
	}
}

// cycleSort advances the sort key of whichever pane is focused.
func (v *networkView) cycleSort() {
	if v.pane == paneGoals {
		switch v.goalSortKey {
		case "":
			v.goalSortKey = "deadline"
		case "deadline":
			v.goalSortKey = "progress"
		case "progress":
			v.goalSortKey = "type"
		case "type":
			v.goalSortKey = "description"
		default:
			v.goalSortKey = ""
		}
		v.applyGoalSort()
		v.savePrefs()
		return
	}
	switch v.sortKey {
	case "":
		v.sortKey = "name"
	case "name":
		v.sortKey = "category"
	case "category":
		v.sortKey = "interaction"
	default:
		v.sortKey = ""
	}
	v.applySort()
	v.savePrefs()
}

func (v *networkView) savePrefs() {
	_ = v.state.App.Prefs.Set(networkSection, prefs.SectionPrefs{
		ViewMode: v.viewMode,
		SortKey:  v.sortKey,
	})
	_ = v.state.App.Prefs.Set(networkGoalsSection, prefs.SectionPrefs{
		ViewMode: v.viewMode,
		SortKey:  v.goalSortKey,
	})
}

func (v *networkView) clampCursors() {
	if n := len(v.visibleContacts()); v.contactCursor >= n {
		v.contactCursor = max(0, n-1)
	}
	if n := v.goals.Len(); v.goalCursor >= n {
		v.goalCursor = max(0, n-1)
	}
}

// ── rendering ────────────────────────────────────────────────────────────────

func (v *networkView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading network...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}

	var b strings.Builder
	b.WriteString("\n")

	if v.searching || v.search.Value() != "" {
		b.WriteString("  " + v.search.View() + "\n\n")
	}

	b.WriteString(v.renderContacts())
	b.WriteString("\n")
	b.WriteString(v.renderGoals())
	return b.String()
}

func (v *networkView) renderContacts() string {
	var b strings.Builder
	header := "Contacts"
	if v.pane == paneContacts {
		header += " ◂"
	}
	b.WriteString("  " + formatter.Header(header) + "\n")

	visible := v.visibleContacts()
	if len(visible) == 0 {
		b.WriteString("  " + formatter.Dim("No contacts found.") + "\n")
		return b.String()
	}

	if v.viewMode == domain.ViewGrid && v.state.Width >= gridMinWidth {
		return b.String() + v.renderContactGrid(visible)
	}
	for i, c := range visible {
		b.WriteString(v.renderContactRow(c, v.pane == paneContacts && i == v.contactCursor))
	}
	return b.String()
}

func (v *networkView) renderContactRow(c domain.Contact, selected bool) string {
	cursor := "  "
	if selected {
		cursor = formatter.StyleGreen.Render("▸ ")
	}
	now := v.state.Now()
	return fmt.Sprintf("  %s%s %s  %s  %s\n",
		cursor,
		formatter.Bold(formatter.Truncate(c.Name, 22)),
		formatter.CategoryBadge(c.Category),
		formatter.OrPlaceholder(c.Email, "No email"),
		formatter.LastInteraction(c, now),
	)
}

// renderContactGrid lays the contacts out as two-column cards.
func (v *networkView) renderContactGrid(visible []domain.Contact) string {
	colWidth := (v.state.Width - 6) / 2
	now := v.state.Now()

	var cards []string
	for i, c := range visible {
		body := formatter.Bold(formatter.Truncate(c.Name, colWidth-6)) + "  " +
			formatter.CategoryBadge(c.Category) + "\n" +
			formatter.OrPlaceholder(c.Email, "No email") + "  " +
			formatter.OrPlaceholder(c.Phone, "No phone") + "\n" +
			formatter.Dim("last seen ") + formatter.LastInteraction(c, now)
		selected := v.pane == paneContacts && i == v.contactCursor
		cards = append(cards, cardStyle(colWidth, selected).Render(body))
	}
	return joinCardRows(cards)
}

func (v *networkView) renderGoals() string {
	var b strings.Builder
	header := "Goals"
	if v.pane == paneGoals {
		header += " ◂"
	}
	b.WriteString("  " + formatter.Header(header) + "\n")

	goals := v.goals.All()
	if len(goals) == 0 {
		b.WriteString("  " + formatter.Dim("No goals yet. Press 'g' to add one.") + "\n")
		return b.String()
	}

	now := v.state.Now()
	for i, g := range goals {
		cursor := "  "
		if v.pane == paneGoals && i == v.goalCursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}
		b.WriteString(fmt.Sprintf("  %s%s %s\n",
			cursor,
			formatter.Truncate(g.Description, 40),
			formatter.Dim(string(g.Type)),
		))
		b.WriteString(fmt.Sprintf("      %s %s  %s\n",
			formatter.RenderProgress(g.ProgressPercent(), 12),
			formatter.Dim(fmt.Sprintf("%d/%d", g.Completed, g.Target)),
			formatter.Deadline(g, now),
		))
	}
	return b.String()
}
