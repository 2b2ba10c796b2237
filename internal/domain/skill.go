package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// dayLayout is the calendar-date format used throughout the skill journal.
const dayLayout = "2006-01-02"

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// SkillDay is one journal entry in a skill's learning period. The server
// generates one per calendar day between start and expected end on create.
type SkillDay struct {
	Date      string `json:"date"`
	Note      string `json:"note"`
	Completed bool   `json:"completed"`
}

// IsToday reports whether the entry's date is the current calendar date.
// Completion of past or future entries is rejected in the journal view;
// only today's learning can be marked done.
func (d *SkillDay) IsToday(now time.Time) bool {
	return d.Date == now.Format(dayLayout)
}

// Skill is one tracked learning effort with a per-day progress journal.
// The completed percentage and status are recomputed server-side from the
// days array; the server's returned record is authoritative after any write.
type Skill struct {
	ID                    string      `json:"_id,omitempty"`
	Name                  string      `json:"name"`
	LearningFrom          string      `json:"learningFrom"`
	StartDate             string      `json:"startDate"`
	ExpectedEndDate       string      `json:"expectedEndDate"`
	Completed             int         `json:"completed"`
	Status                SkillStatus `json:"status,omitempty"`
	Priority              Priority    `json:"priority,omitempty"`
	Level                 SkillLevel  `json:"level,omitempty"`
	Days                  []SkillDay  `json:"days,omitempty"`
	Documents             []string    `json:"documents,omitempty"`
	CompletionCertificate string      `json:"completionCertificate,omitempty"`
}

// Validate checks the fields required before submission.
func (s *Skill) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("skill name is required")
	}
	if strings.TrimSpace(s.LearningFrom) == "" {
		return fmt.Errorf("learning source is required")
	}
	if !dateRe.MatchString(s.StartDate) {
		return fmt.Errorf("start date must be YYYY-MM-DD")
	}
	if !dateRe.MatchString(s.ExpectedEndDate) {
		return fmt.Errorf("expected end date must be YYYY-MM-DD")
	}
	start, err := time.Parse(dayLayout, s.StartDate)
	if err != nil {
		return fmt.Errorf("invalid start date: %w", err)
	}
	end, err := time.Parse(dayLayout, s.ExpectedEndDate)
	if err != nil {
		return fmt.Errorf("invalid expected end date: %w", err)
	}
	if end.Before(start) {
		return fmt.Errorf("expected end date precedes start date")
	}
	return nil
}

// IsComplete reports whether the skill reached its terminal state.
func (s *Skill) IsComplete() bool {
	return s.Completed >= 100
}

// Day returns the journal entry for the given date, or nil.
func (s *Skill) Day(date string) *SkillDay {
	for i := range s.Days {
		if s.Days[i].Date == date {
			return &s.Days[i]
		}
	}
	return nil
}

// CompletedDays counts journal entries marked done.
func (s *Skill) CompletedDays() int {
	n := 0
	for i := range s.Days {
		if s.Days[i].Completed {
			n++
		}
	}
	return n
}

// DaysRemaining returns whole days until the expected end date, or 0 once
// the end has passed.
func (s *Skill) DaysRemaining(now time.Time) int {
	end, ok := parseFlexibleTime(s.ExpectedEndDate)
	if !ok || !end.After(now) {
		return 0
	}
	days := int(end.Sub(now).Hours()/24) + 1
	return days
}
