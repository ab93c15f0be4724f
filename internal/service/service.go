// Package service defines the backend-agnostic interface for remote task operations.
package service

import "context"

// Service defines the interface for backend CRUD operations.
// All network calls go through this interface; the store and the
// presentation layers never speak HTTP directly.
//
// Create and update operations return the entity exactly as echoed by the
// backend. Callers must treat that echo as the new source of truth so
// backend-assigned fields such as IDs are always picked up.
type Service interface {
	// ListUsers returns all users in backend order.
	ListUsers(ctx context.Context) ([]User, error)

	// CreateUser creates a user and returns the backend echo,
	// including the assigned ID.
	CreateUser(ctx context.Context, name string) (User, error)

	// UpdateUser renames a user and returns the backend echo.
	UpdateUser(ctx context.Context, id, name string) (User, error)

	// DeleteUser deletes a user by ID.
	DeleteUser(ctx context.Context, id string) error

	// ListTasks returns all tasks belonging to a user, in backend order.
	ListTasks(ctx context.Context, userID string) ([]Task, error)

	// CreateTask creates a task under a user and returns the backend echo.
	CreateTask(ctx context.Context, userID string, draft TaskDraft) (Task, error)

	// UpdateTask replaces a task's writable fields and returns the backend echo.
	UpdateTask(ctx context.Context, userID, taskID string, draft TaskDraft) (Task, error)

	// DeleteTask deletes a task scoped to its owning user.
	DeleteTask(ctx context.Context, userID, taskID string) error
}
