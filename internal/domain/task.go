package domain

import (
	"fmt"
	"strings"
)

// Task is one entry in the dashboard task list. The server assigns the ID;
// due date and reminder are free date-time strings the server never parses.
type Task struct {
	ID          string     `json:"_id,omitempty"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Status      TaskStatus `json:"status"`
	Priority    Priority   `json:"priority"`
	DueDate     string     `json:"due_date,omitempty"`
	Reminder    string     `json:"reminder,omitempty"`
}

// Validate checks the fields required before submission.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("task name is required")
	}
	return nil
}

// Completed reports whether the task is in its terminal state.
func (t *Task) Completed() bool {
	return t.Status == TaskCompleted
}

// ToggledStatus returns the status a completion toggle should move to.
func (t *Task) ToggledStatus() TaskStatus {
	if t.Completed() {
		return TaskPending
	}
	return TaskCompleted
}

// TaskCounts summarizes a task collection for the list header.
type TaskCounts struct {
	Total     int
	Completed int
	Pending   int
}

// CountTasks tallies completion state across a collection.
func CountTasks(tasks []Task) TaskCounts {
	c := TaskCounts{Total: len(tasks)}
	for i := range tasks {
		if tasks[i].Completed() {
			c.Completed++
		}
	}
	c.Pending = c.Total - c.Completed
	return c
}
