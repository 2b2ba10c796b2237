package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Goal is one networking goal with a numeric target and deadline.
type Goal struct {
	ID          string   `json:"_id,omitempty"`
	Description string   `json:"description"`
	Type        GoalType `json:"type"`
	Target      int      `json:"target"`
	Completed   int      `json:"completed"`
	Deadline    string   `json:"deadline,omitempty"`
}

// Validate checks the fields required before submission.
func (g *Goal) Validate() error {
	if strings.TrimSpace(g.Description) == "" {
		return fmt.Errorf("goal description is required")
	}
	if !ValidGoalTypes[string(g.Type)] {
		return fmt.Errorf("unknown goal type %q", g.Type)
	}
	if g.Target < 0 || g.Completed < 0 {
		return fmt.Errorf("target and completed must be non-negative")
	}
	return nil
}

// IsComplete reports whether the goal has met its target.
func (g *Goal) IsComplete() bool {
	return g.Target > 0 && g.Completed >= g.Target
}

// ProgressPercent returns completion as a percentage, capped at 100 for
// display. A zero target yields 0.
func (g *Goal) ProgressPercent() float64 {
	if g.Target <= 0 {
		return 0
	}
	pct := float64(g.Completed) / float64(g.Target) * 100
	return math.Min(pct, 100)
}

// DeadlineTime parses the stored deadline date.
func (g *Goal) DeadlineTime() (time.Time, bool) {
	return parseFlexibleTime(g.Deadline)
}

// DaysLeft returns whole days until the deadline, negative when past.
// The second return is false when no deadline is set.
func (g *Goal) DaysLeft(now time.Time) (int, bool) {
	deadline, ok := g.DeadlineTime()
	if !ok {
		return 0, false
	}
	return int(math.Ceil(deadline.Sub(now).Hours() / 24)), true
}

// DeadlineStatus derives deadline urgency: a complete goal is always good,
// a past deadline is overdue, under a week out is warning.
func (g *Goal) DeadlineStatus(now time.Time) HealthStatus {
	if g.IsComplete() {
		return HealthGood
	}
	days, ok := g.DaysLeft(now)
	if !ok {
		return HealthGood
	}
	switch {
	case days < 0:
		return HealthOverdue
	case days < 7:
		return HealthWarning
	default:
		return HealthGood
	}
}
