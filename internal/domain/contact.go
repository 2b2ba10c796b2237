package domain

import (
	"fmt"
	"strings"
	"time"
)

// Contact is one networking contact. Notes are append-only: the client
// concatenates and sends the full text on update.
type Contact struct {
	ID              string          `json:"_id,omitempty"`
	Name            string          `json:"name"`
	Email           string          `json:"email,omitempty"`
	Phone           string          `json:"phone,omitempty"`
	Category        ContactCategory `json:"category"`
	LastInteraction string          `json:"lastInteraction,omitempty"`
	NextMeeting     string          `json:"next_meeting,omitempty"`
	Notes           string          `json:"notes,omitempty"`
}

// Validate checks the fields required before submission.
func (c *Contact) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("contact name is required")
	}
	if !ValidContactCategories[string(c.Category)] {
		return fmt.Errorf("unknown category %q", c.Category)
	}
	return nil
}

// AppendNote concatenates a new note onto the existing notes text.
func (c *Contact) AppendNote(note string) {
	note = strings.TrimSpace(note)
	if note == "" {
		return
	}
	if c.Notes == "" {
		c.Notes = note
		return
	}
	c.Notes = c.Notes + "\n" + note
}

// LastInteractionTime parses the stored interaction timestamp.
// The second return is false when the field is absent or malformed.
func (c *Contact) LastInteractionTime() (time.Time, bool) {
	return parseFlexibleTime(c.LastInteraction)
}

// InteractionStatus derives the contact's follow-up urgency from the time
// since the last interaction: >30 days overdue, >14 warning, else good.
// A contact with no recorded interaction is overdue.
func (c *Contact) InteractionStatus(now time.Time) HealthStatus {
	last, ok := c.LastInteractionTime()
	if !ok {
		return HealthOverdue
	}
	days := int(now.Sub(last).Hours() / 24)
	switch {
	case days > 30:
		return HealthOverdue
	case days > 14:
		return HealthWarning
	default:
		return HealthGood
	}
}

// Matches reports whether the contact matches a search term by name,
// category, or email substring. The empty term matches everything.
func (c *Contact) Matches(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(c.Name), term) ||
		strings.Contains(strings.ToLower(string(c.Category)), term) ||
		strings.Contains(strings.ToLower(c.Email), term)
}

// ParseWhen parses a stored date-time string in any of the layouts the
// server emits. The second return is false for blank or malformed input.
func ParseWhen(s string) (time.Time, bool) {
	return parseFlexibleTime(s)
}

// parseFlexibleTime accepts the date-time layouts the server emits.
func parseFlexibleTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02 15:04",
		"2006-01-02",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
