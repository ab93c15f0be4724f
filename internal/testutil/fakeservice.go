// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"utask/internal/service"
)

// FakeService is an in-memory implementation of service.Service for
// testing. Like the real backend, it assigns entity IDs itself and echoes
// the stored entity back from create and update calls.
type FakeService struct {
	mu    sync.RWMutex
	users []service.User
	tasks map[string][]service.Task // userID -> tasks

	// Error injection for testing
	ListUsersErr  error
	CreateUserErr error
	UpdateUserErr error
	DeleteUserErr error
	ListTasksErr  map[string]error // userID -> error
	CreateTaskErr error
	UpdateTaskErr error
	DeleteTaskErr error
}

// NewFakeService creates an empty FakeService.
func NewFakeService() *FakeService {
	return &FakeService{
		tasks:        make(map[string][]service.Task),
		ListTasksErr: make(map[string]error),
	}
}

// SeedUser adds a user with a fixed ID.
func (f *FakeService) SeedUser(id, name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users = append(f.users, service.User{ID: id, Name: name})
	if f.tasks[id] == nil {
		f.tasks[id] = nil
	}
}

// SeedTask adds a task under a user, keeping whatever ID it carries.
func (f *FakeService) SeedTask(userID string, task service.Task) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks[userID] = append(f.tasks[userID], task)
}

// ListUsers implements service.Service.
func (f *FakeService) ListUsers(ctx context.Context) ([]service.User, error) {
	if f.ListUsersErr != nil {
		return nil, f.ListUsersErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]service.User, len(f.users))
	copy(out, f.users)
	return out, nil
}

// CreateUser implements service.Service.
func (f *FakeService) CreateUser(ctx context.Context, name string) (service.User, error) {
	if f.CreateUserErr != nil {
		return service.User{}, f.CreateUserErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	user := service.User{ID: "u-" + uuid.NewString(), Name: name}
	f.users = append(f.users, user)
	f.tasks[user.ID] = nil
	return user, nil
}

// UpdateUser implements service.Service.
func (f *FakeService) UpdateUser(ctx context.Context, id, name string) (service.User, error) {
	if f.UpdateUserErr != nil {
		return service.User{}, f.UpdateUserErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.users {
		if f.users[i].ID == id {
			f.users[i].Name = name
			return f.users[i], nil
		}
	}
	return service.User{}, &service.NotFoundError{Resource: "user", ID: id}
}

// DeleteUser implements service.Service.
func (f *FakeService) DeleteUser(ctx context.Context, id string) error {
	if f.DeleteUserErr != nil {
		return f.DeleteUserErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.users {
		if f.users[i].ID == id {
			f.users = append(f.users[:i], f.users[i+1:]...)
			delete(f.tasks, id)
			return nil
		}
	}
	return &service.NotFoundError{Resource: "user", ID: id}
}

// ListTasks implements service.Service.
func (f *FakeService) ListTasks(ctx context.Context, userID string) ([]service.Task, error) {
	if err := f.ListTasksErr[userID]; err != nil {
		return nil, err
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	tasks, ok := f.tasks[userID]
	if !ok {
		return nil, &service.NotFoundError{Resource: "user", ID: userID}
	}
	out := make([]service.Task, len(tasks))
	copy(out, tasks)
	return out, nil
}

// CreateTask implements service.Service.
func (f *FakeService) CreateTask(ctx context.Context, userID string, draft service.TaskDraft) (service.Task, error) {
	if f.CreateTaskErr != nil {
		return service.Task{}, f.CreateTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.tasks[userID]; !ok {
		return service.Task{}, &service.NotFoundError{Resource: "user", ID: userID}
	}
	task := service.Task{
		ID:          "t-" + uuid.NewString(),
		Title:       draft.Title,
		Description: draft.Description,
		Tags:        draft.Tags.Clone(),
		Completed:   draft.Completed,
		DueDate:     draft.DueDate,
	}
	f.tasks[userID] = append(f.tasks[userID], task)
	return task, nil
}

// UpdateTask implements service.Service.
func (f *FakeService) UpdateTask(ctx context.Context, userID, taskID string, draft service.TaskDraft) (service.Task, error) {
	if f.UpdateTaskErr != nil {
		return service.Task{}, f.UpdateTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	tasks, ok := f.tasks[userID]
	if !ok {
		return service.Task{}, &service.NotFoundError{Resource: "user", ID: userID}
	}
	for i := range tasks {
		if tasks[i].ID == taskID {
			tasks[i] = service.Task{
				ID:          taskID,
				Title:       draft.Title,
				Description: draft.Description,
				Tags:        draft.Tags.Clone(),
				Completed:   draft.Completed,
				DueDate:     draft.DueDate,
			}
			return tasks[i], nil
		}
	}
	return service.Task{}, &service.NotFoundError{Resource: "task", ID: taskID}
}

// DeleteTask implements service.Service.
func (f *FakeService) DeleteTask(ctx context.Context, userID, taskID string) error {
	if f.DeleteTaskErr != nil {
		return f.DeleteTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	tasks, ok := f.tasks[userID]
	if !ok {
		return &service.NotFoundError{Resource: "user", ID: userID}
	}
	for i := range tasks {
		if tasks[i].ID == taskID {
			f.tasks[userID] = append(tasks[:i], tasks[i+1:]...)
			return nil
		}
	}
	return &service.NotFoundError{Resource: "task", ID: taskID}
}

// TasksOf returns the stored tasks for a user (for assertions).
func (f *FakeService) TasksOf(userID string) []service.Task {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]service.Task, len(f.tasks[userID]))
	copy(out, f.tasks[userID])
	return out
}
