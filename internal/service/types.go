// Package service defines the backend-agnostic interface for remote task operations.
package service

// User represents a user entity. The ID is assigned by the backend on
// creation and is never generated locally.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Task represents a single task item belonging to a user.
// Tags marshals to the "priority" wire field as a ", "-joined string.
type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Tags        TagSet `json:"priority"`
	Completed   bool   `json:"completed"`
	DueDate     string `json:"dueDate"`
}

// TaskDraft is the writable subset of Task sent on create and update.
// A zero Tags set marshals to the empty string, so the backend never
// receives a missing priority field.
type TaskDraft struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Tags        TagSet `json:"priority"`
	Completed   bool   `json:"completed"`
	DueDate     string `json:"dueDate"`
}

// Draft returns the writable fields of t as a TaskDraft.
func (t Task) Draft() TaskDraft {
	return TaskDraft{
		Title:       t.Title,
		Description: t.Description,
		Tags:        t.Tags.Clone(),
		Completed:   t.Completed,
		DueDate:     t.DueDate,
	}
}
