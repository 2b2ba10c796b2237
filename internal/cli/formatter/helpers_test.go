package formatter

import (
	"testing"
	"time"

	"github.com/avillega/pulse/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRelativeDate(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input time.Time
		want  string
	}{
		{"today", now, "today"},
		{"yesterday", now.Add(-24 * time.Hour), "yesterday"},
		{"3 days past", now.Add(-3 * 24 * time.Hour), "3d ago"},
		{"3 days past, midnight stamp", time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC), "3d ago"},
		{"2 weeks past", now.Add(-14 * 24 * time.Hour), "2w ago"},
		{"3 months past", now.Add(-90 * 24 * time.Hour), "3mo ago"},
		{"tomorrow", now.Add(24 * time.Hour), "tomorrow"},
		{"3 days future", now.Add(3 * 24 * time.Hour), "in 3d"},
		{"3 weeks future", now.Add(21 * 24 * time.Hour), "in 3w"},
		{"3 months future", now.Add(90 * 24 * time.Hour), "in 3mo"},
		{"zero time", time.Time{}, "never"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RelativeDate(tt.input, now)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHumanDate(t *testing.T) {
	d := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Sep 30, 2026", HumanDate(d))
	assert.Equal(t, "--", HumanDate(time.Time{}))
}

func TestOrPlaceholder(t *testing.T) {
	assert.Equal(t, "alice@example.com", OrPlaceholder("alice@example.com", "No email"))
	assert.Contains(t, OrPlaceholder("", "No email"), "No email")
}

func TestLastInteraction(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	never := domain.Contact{Name: "Ana"}
	assert.Contains(t, LastInteraction(never, now), "Never")

	recent := domain.Contact{Name: "Ben", LastInteraction: "2026-08-28"}
	assert.Contains(t, LastInteraction(recent, now), "3d ago")

	stale := domain.Contact{Name: "Cleo", LastInteraction: "2026-06-01"}
	assert.Contains(t, LastInteraction(stale, now), "mo ago")
}

func TestDeadline(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	none := domain.Goal{Description: "open-ended"}
	assert.Contains(t, Deadline(none, now), "no deadline")

	done := domain.Goal{Description: "done", Target: 2, Completed: 2, Deadline: "2026-09-10"}
	assert.Contains(t, Deadline(done, now), "achieved")

	ahead := domain.Goal{Description: "ahead", Target: 5, Deadline: "2026-09-10"}
	assert.Contains(t, Deadline(ahead, now), "left")

	past := domain.Goal{Description: "past", Target: 5, Deadline: "2026-08-20"}
	assert.Contains(t, Deadline(past, now), "overdue")
}

func TestPriorityPill(t *testing.T) {
	tests := []struct {
		priority domain.Priority
		contains string
	}{
		{domain.PriorityHigh, "high"},
		{domain.PriorityMedium, "medium"},
		{domain.PriorityLow, "low"},
	}
	for _, tt := range tests {
		t.Run(string(tt.priority), func(t *testing.T) {
			assert.Contains(t, PriorityPill(tt.priority), tt.contains)
		})
	}
}

func TestTaskStatusPill(t *testing.T) {
	assert.Contains(t, TaskStatusPill(domain.TaskCompleted), "Done")
	assert.Contains(t, TaskStatusPill(domain.TaskPending), "Pending")
}

func TestCategoryBadge(t *testing.T) {
	assert.Contains(t, CategoryBadge(domain.CategoryMentors), "Mentors")
	assert.Contains(t, CategoryBadge(""), "--")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "long str…", Truncate("long string here", 9))
}
