package formatter

import (
	"fmt"
	"math"
	"time"

	"github.com/avillega/pulse/internal/domain"
)

// RelativeDate returns a short human-friendly description of how far a
// time is from now: "today", "3d ago", "in 2d", "in 3w".
func RelativeDate(t, now time.Time) string {
	if t.IsZero() {
		return "never"
	}
	days := int(math.Floor(now.Sub(t).Hours() / 24))
	switch {
	case days == 0:
		return "today"
	case days == 1:
		return "yesterday"
	case days > 1 && days < 7:
		return fmt.Sprintf("%dd ago", days)
	case days >= 7 && days < 30:
		return fmt.Sprintf("%dw ago", days/7)
	case days >= 30:
		return fmt.Sprintf("%dmo ago", days/30)
	case days == -1:
		return "tomorrow"
	case days > -7:
		return fmt.Sprintf("in %dd", -days)
	case days > -30:
		return fmt.Sprintf("in %dw", -days/7)
	default:
		return fmt.Sprintf("in %dmo", -days/30)
	}
}

// HumanDate formats a time as "Jan 2, 2006", or "--" for the zero time.
func HumanDate(t time.Time) string {
	if t.IsZero() {
		return "--"
	}
	return t.Format("Jan 2, 2006")
}

// OrPlaceholder returns s, or a dim placeholder when s is empty.
func OrPlaceholder(s, placeholder string) string {
	if s == "" {
		return Dim(placeholder)
	}
	return s
}

// LastInteraction renders a contact's last interaction colored by how
// overdue it is.
func LastInteraction(c domain.Contact, now time.Time) string {
	t, ok := c.LastInteractionTime()
	if !ok {
		return StyleRed.Render("Never")
	}
	return HealthStyle(c.InteractionStatus(now)).Render(RelativeDate(t, now))
}

// Deadline renders a goal deadline with its remaining days, colored by
// urgency.
func Deadline(g domain.Goal, now time.Time) string {
	days, ok := g.DaysLeft(now)
	style := HealthStyle(g.DeadlineStatus(now))
	if !ok {
		return Dim("no deadline")
	}
	if g.IsComplete() {
		return style.Render("achieved")
	}
	if days < 0 {
		return style.Render(fmt.Sprintf("%dd overdue", -days))
	}
	return style.Render(fmt.Sprintf("%dd left", days))
}

// Truncate shortens s to max runes, appending an ellipsis when cut.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return string(runes[:max])
	}
	return string(runes[:max-1]) + "…"
}
