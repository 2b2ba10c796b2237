package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/avillega/pulse/internal/domain"
)

// Collection endpoints on the dashboard backend.
const (
	tasksPath    = "/api/dashboard/tasks"
	skillsPath   = "/api/skills"
	contactsPath = "/api/contacts"
	goalsPath    = "/api/goals"
	statsPath    = "/dashboard_data"
)

// TaskStore is the remote record store for dashboard tasks.
type TaskStore struct {
	*Store[domain.Task]
}

func NewTaskStore(c *Client) *TaskStore {
	return &TaskStore{NewStore[domain.Task](c, tasksPath)}
}

// ContactStore is the remote record store for networking contacts.
// Updates are true partial PUTs against the record; the record's
// identifier never changes across an edit.
type ContactStore struct {
	*Store[domain.Contact]
}

func NewContactStore(c *Client) *ContactStore {
	return &ContactStore{NewStore[domain.Contact](c, contactsPath)}
}

// GoalStore is the remote record store for networking goals.
type GoalStore struct {
	*Store[domain.Goal]
}

func NewGoalStore(c *Client) *GoalStore {
	return &GoalStore{NewStore[domain.Goal](c, goalsPath)}
}

// SkillStore is the remote record store for skills, with the extra
// per-day journal operation.
type SkillStore struct {
	*Store[domain.Skill]
}

func NewSkillStore(c *Client) *SkillStore {
	return &SkillStore{NewStore[domain.Skill](c, skillsPath)}
}

// UpdateDay updates one journal entry's note and completion flag. The
// server recomputes the skill's completion percentage and status from the
// full days array and returns the whole updated record.
func (s *SkillStore) UpdateDay(ctx context.Context, skillID, date, note string, completed bool) (domain.Skill, error) {
	body := map[string]any{"note": note, "completed": completed}
	path := skillsPath + "/" + url.PathEscape(skillID) + "/day/" + url.PathEscape(date)

	var updated domain.Skill
	if err := s.client.do(ctx, http.MethodPut, path, body, &updated); err != nil {
		return domain.Skill{}, err
	}
	return updated, nil
}

// StatsClient fetches the aggregate dashboard numbers. Used by the
// cross-section refresh hook; callers must treat failures as non-fatal.
type StatsClient struct {
	client *Client
}

func NewStatsClient(c *Client) *StatsClient {
	return &StatsClient{client: c}
}

func (s *StatsClient) Stats(ctx context.Context) (domain.DashboardStats, error) {
	var stats domain.DashboardStats
	if err := s.client.get(ctx, statsPath, &stats); err != nil {
		return domain.DashboardStats{}, err
	}
	return stats, nil
}
