package domain

// DashboardStats mirrors the aggregate payload served by the dashboard
// endpoint. Read-only; the client patches these numbers into the overview
// after cross-cutting mutations.
type DashboardStats struct {
	TaskData    TaskStats    `json:"task_data"`
	SkillData   SkillStats   `json:"skill_data"`
	NetworkData NetworkStats `json:"network_data"`
}

type TaskStats struct {
	Completed            int `json:"completed"`
	Pending              int `json:"pending"`
	Overdue              int `json:"overdue"`
	CompletionPercentage int `json:"completion_percentage"`
}

type SkillStats struct {
	Completed            int `json:"completed"`
	InProgress           int `json:"in_progress"`
	OnHold               int `json:"on_hold"`
	CompletionPercentage int `json:"completion_percentage"`
}

type NetworkStats struct {
	TotalContacts             int `json:"total_contacts"`
	NewContacts               int `json:"new_contacts"`
	MeetingsAttended          int `json:"meetings_attended"`
	FollowUps                 int `json:"follow_ups"`
	GrowthPercentage          int `json:"growth_percentage"`
	CompletedGoals            int `json:"completed_goals"`
	TotalGoals                int `json:"total_goals"`
	GoalAchievementPercentage int `json:"goal_achievement_percentage"`
}
