package cli

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/avillega/pulse/internal/api"
	"github.com/avillega/pulse/internal/prefs"
	"github.com/avillega/pulse/internal/teatest"
	"github.com/stretchr/testify/require"
)

// testNow is the pinned clock for all TUI tests.
var testNow = time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

// fakeBackend is an in-memory stand-in for the dashboard server. It
// serves the collection endpoints with mutable state, logs every
// request, and can be switched to reject writes.
type fakeBackend struct {
	mu  sync.Mutex
	seq int

	collections map[string][]map[string]any

	requests   []string
	failWrites bool

	srv *httptest.Server
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	b := &fakeBackend{
		collections: map[string][]map[string]any{
			"/api/dashboard/tasks": {},
			"/api/contacts":        {},
			"/api/goals":           {},
			"/api/skills":          {},
		},
	}
	b.srv = httptest.NewServer(http.HandlerFunc(b.handle))
	t.Cleanup(b.srv.Close)
	return b
}

func (b *fakeBackend) handle(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.requests = append(b.requests, r.Method+" "+r.URL.Path)

	if b.failWrites && r.Method != http.MethodGet {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"message": "backend unavailable"})
		return
	}

	if r.URL.Path == "/dashboard_data" {
		json.NewEncoder(w).Encode(b.stats())
		return
	}

	// Skill day endpoint: PUT /api/skills/{id}/day/{date}
	if strings.HasPrefix(r.URL.Path, "/api/skills/") && strings.Contains(r.URL.Path, "/day/") {
		b.handleSkillDay(w, r)
		return
	}

	for prefix, records := range b.collections {
		switch {
		case r.URL.Path == prefix:
			b.handleCollection(w, r, prefix)
			return
		case strings.HasPrefix(r.URL.Path, prefix+"/"):
			id := strings.TrimPrefix(r.URL.Path, prefix+"/")
			b.handleRecord(w, r, prefix, id, records)
			return
		}
	}

	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(map[string]string{"message": "not found"})
}

func (b *fakeBackend) handleCollection(w http.ResponseWriter, r *http.Request, prefix string) {
	switch r.Method {
	case http.MethodGet:
		json.NewEncoder(w).Encode(b.collections[prefix])
	case http.MethodPost:
		var record map[string]any
		json.NewDecoder(r.Body).Decode(&record)
		b.seq++
		record["_id"] = fmt.Sprintf("id%d", b.seq)
		b.collections[prefix] = append(b.collections[prefix], record)
		json.NewEncoder(w).Encode(record)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (b *fakeBackend) handleRecord(w http.ResponseWriter, r *http.Request, prefix, id string, records []map[string]any) {
	idx := -1
	for i, rec := range records {
		if rec["_id"] == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "record not found"})
		return
	}

	switch r.Method {
	case http.MethodPut:
		var fields map[string]any
		json.NewDecoder(r.Body).Decode(&fields)
		for k, v := range fields {
			records[idx][k] = v
		}
		json.NewEncoder(w).Encode(records[idx])
	case http.MethodDelete:
		b.collections[prefix] = append(records[:idx], records[idx+1:]...)
		json.NewEncoder(w).Encode(map[string]string{"message": "deleted"})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (b *fakeBackend) handleSkillDay(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/skills/")
	parts := strings.SplitN(rest, "/day/", 2)
	id, date := parts[0], parts[1]

	for _, rec := range b.collections["/api/skills"] {
		if rec["_id"] != id {
			continue
		}
		var fields struct {
			Note      string `json:"note"`
			Completed bool   `json:"completed"`
		}
		json.NewDecoder(r.Body).Decode(&fields)

		days, _ := rec["days"].([]any)
		done := 0
		for _, d := range days {
			day := d.(map[string]any)
			if day["date"] == date {
				day["note"] = fields.Note
				day["completed"] = fields.Completed
			}
			if v, _ := day["completed"].(bool); v {
				done++
			}
		}
		if len(days) > 0 {
			rec["completed"] = done * 100 / len(days)
		}
		json.NewEncoder(w).Encode(rec)
		return
	}
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(map[string]string{"message": "skill not found"})
}

// stats derives the aggregate payload from the current collections.
func (b *fakeBackend) stats() map[string]any {
	tasksDone, tasksPending := 0, 0
	for _, t := range b.collections["/api/dashboard/tasks"] {
		if t["status"] == "completed" {
			tasksDone++
		} else {
			tasksPending++
		}
	}
	goalsDone := 0
	for _, g := range b.collections["/api/goals"] {
		target, _ := g["target"].(float64)
		completed, _ := g["completed"].(float64)
		if target > 0 && completed >= target {
			goalsDone++
		}
	}
	return map[string]any{
		"task_data": map[string]any{
			"completed": tasksDone,
			"pending":   tasksPending,
		},
		"skill_data": map[string]any{
			"in_progress": len(b.collections["/api/skills"]),
		},
		"network_data": map[string]any{
			"total_contacts":  len(b.collections["/api/contacts"]),
			"completed_goals": goalsDone,
			"total_goals":     len(b.collections["/api/goals"]),
		},
	}
}

// countRequests returns how many logged requests match the method+path
// prefix.
func (b *fakeBackend) countRequests(prefix string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, r := range b.requests {
		if strings.HasPrefix(r, prefix) {
			n++
		}
	}
	return n
}

func (b *fakeBackend) lastRequest() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.requests) == 0 {
		return ""
	}
	return b.requests[len(b.requests)-1]
}

// ── seeding ──────────────────────────────────────────────────────────────────

func (b *fakeBackend) seed(collection string, record map[string]any) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.seq++
	id := fmt.Sprintf("id%d", b.seq)
	record["_id"] = id
	b.collections[collection] = append(b.collections[collection], record)
	return id
}

func (b *fakeBackend) seedTask(name, status string) string {
	return b.seed("/api/dashboard/tasks", map[string]any{
		"name": name, "status": status, "priority": "medium",
	})
}

func (b *fakeBackend) seedContact(name, category, lastInteraction string) string {
	return b.seed("/api/contacts", map[string]any{
		"name": name, "category": category, "lastInteraction": lastInteraction,
		"email": strings.ToLower(name) + "@example.com",
	})
}

func (b *fakeBackend) seedGoal(description string, target, completed int) string {
	return b.seed("/api/goals", map[string]any{
		"description": description, "type": "meet",
		"target": target, "completed": completed,
	})
}

func (b *fakeBackend) seedSkill(name string, days []map[string]any) string {
	anyDays := make([]any, len(days))
	for i, d := range days {
		anyDays[i] = d
	}
	return b.seed("/api/skills", map[string]any{
		"name": name, "learningFrom": "book",
		"startDate": "2026-08-29", "expectedEndDate": "2026-09-02",
		"completed": 0, "level": "beginner", "days": anyDays,
	})
}

// ── app + driver construction ────────────────────────────────────────────────

// testApp wires an App against the fake backend and an in-memory prefs
// store, with the clock pinned to testNow.
func testApp(t *testing.T, backend *fakeBackend) *App {
	t.Helper()

	db, err := prefs.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	client := api.NewClient(backend.srv.URL, 5*time.Second)
	return &App{
		Tasks:    api.NewTaskStore(client),
		Contacts: api.NewContactStore(client),
		Goals:    api.NewGoalStore(client),
		Skills:   api.NewSkillStore(client),
		Stats:    api.NewStatsClient(client),
		Uploads:  client,
		Prefs:    prefs.NewStore(db),
		Now:      func() time.Time { return testNow },
	}
}

// TestDriver wraps teatest.Driver with app-specific inspection methods.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver constructs the appModel, sets terminal size, and drains
// Init() so the overview loads synchronously from the fake backend.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// ViewStackIDs returns the ViewIDs of all views on the stack, bottom to
// top.
func (d *TestDriver) ViewStackIDs() []ViewID {
	m := d.appModel()
	ids := make([]ViewID, len(m.viewStack))
	for i, v := range m.viewStack {
		ids[i] = v.ID()
	}
	return ids
}

// ActiveView returns the top view for type assertions in tests.
func (d *TestDriver) ActiveView() View {
	m := d.appModel()
	return m.activeView()
}

// Toasts returns the texts of the toasts currently on screen.
func (d *TestDriver) Toasts() []string {
	m := d.appModel()
	out := make([]string, len(m.toasts))
	for i, t := range m.toasts {
		out[i] = t.text
	}
	return out
}

// IsQuitting reports whether the app has signaled a quit.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}
