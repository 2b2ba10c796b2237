package domain

type TaskStatus string

const (
	TaskPending   TaskStatus = "pending"
	TaskCompleted TaskStatus = "completed"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// NormalizePriority maps unknown values to low. The server stores priority
// as a free-form string, so records may carry anything.
func NormalizePriority(s string) Priority {
	switch Priority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return Priority(s)
	}
	return PriorityLow
}

type SkillStatus string

const (
	SkillPending    SkillStatus = "pending"
	SkillInProgress SkillStatus = "in_progress"
	SkillCompleted  SkillStatus = "completed"
)

type SkillLevel string

const (
	LevelBeginner     SkillLevel = "beginner"
	LevelIntermediate SkillLevel = "intermediate"
	LevelAdvanced     SkillLevel = "advanced"
)

type ContactCategory string

const (
	CategoryFriends    ContactCategory = "friends"
	CategoryColleagues ContactCategory = "colleagues"
	CategoryMentors    ContactCategory = "mentors"
	CategoryPotential  ContactCategory = "potential"
	CategoryAlumni     ContactCategory = "alumni"
	CategoryOther      ContactCategory = "other"
)

// ValidContactCategories is the canonical set of accepted category strings.
var ValidContactCategories = map[string]bool{
	"friends": true, "colleagues": true, "mentors": true,
	"potential": true, "alumni": true, "other": true,
}

type GoalType string

const (
	GoalMeet      GoalType = "meet"
	GoalReconnect GoalType = "reconnect"
	GoalEvent     GoalType = "event"
	GoalOther     GoalType = "other"
)

// ValidGoalTypes is the canonical set of accepted goal type strings.
var ValidGoalTypes = map[string]bool{
	"meet": true, "reconnect": true, "event": true, "other": true,
}

// HealthStatus classifies a date-derived urgency. Presentation only,
// computed from (now, stored date), never persisted.
type HealthStatus string

const (
	HealthGood    HealthStatus = "good"
	HealthWarning HealthStatus = "warning"
	HealthOverdue HealthStatus = "overdue"
)

// ViewMode selects the collection rendering layout.
type ViewMode string

const (
	ViewGrid ViewMode = "grid"
	ViewList ViewMode = "list"
)

// Toggle returns the other view mode.
func (m ViewMode) Toggle() ViewMode {
	if m == ViewGrid {
		return ViewList
	}
	return ViewGrid
}
