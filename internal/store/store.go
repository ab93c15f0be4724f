// Package store holds the canonical in-memory copies of users and tasks
// and reconciles them with the remote backend.
//
// Every mutation is remote-then-local: the backend call happens first, and
// the local collections change only after it succeeds, using the backend
// echo as the new source of truth. A failed call leaves local state exactly
// as it was, so no rollback is ever needed.
package store

import (
	"context"
	"math"
	"strings"
	"sync"

	"utask/internal/logging"
	"utask/internal/service"
)

// Store is the single authority for the Users and Tasks collections,
// the active user selection, and the edit session.
//
// Methods may be called from any goroutine; collections are guarded by a
// mutex and accessors hand out copies. The mutex is never held across a
// network call, so overlapping mutations apply their effects in completion
// order, which is not guaranteed to match issue order.
type Store struct {
	mu  sync.RWMutex
	svc service.Service
	log *logging.Logger

	users    []service.User
	tasks    []service.Task
	selected *service.User

	form   FormState
	editID string
}

// New creates a Store backed by svc. A nil log discards all output.
func New(svc service.Service, log *logging.Logger) *Store {
	if log == nil {
		log = logging.Discard()
	}
	return &Store{
		svc: svc,
		log: log.With("component", "store"),
	}
}

// LoadUsers fetches and replaces the Users collection wholesale.
// On failure the collection is left empty; there is no partial merge.
func (s *Store) LoadUsers(ctx context.Context) error {
	users, err := s.svc.ListUsers(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.users = nil
		s.log.Warn("load users failed", "err", err)
		return err
	}
	s.users = users
	s.log.Debug("users loaded", "count", len(users))
	return nil
}

// SelectUser sets the active user and replaces the Tasks collection with
// that user's tasks. Until the fetch resolves the previous state remains
// visible. On fetch failure the user is still selected but the Tasks
// collection becomes empty.
func (s *Store) SelectUser(ctx context.Context, user service.User) error {
	tasks, err := s.svc.ListTasks(ctx, user.ID)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = &user
	if err != nil {
		s.tasks = nil
		s.log.Warn("select user: task fetch failed", "user", user.ID, "err", err)
		return err
	}
	s.tasks = tasks
	s.log.Debug("user selected", "user", user.ID, "tasks", len(tasks))
	return nil
}

// AddUser creates a user and appends the backend echo to the collection.
// Append order is arrival order; no sorting is applied.
func (s *Store) AddUser(ctx context.Context, name string) (service.User, error) {
	if strings.TrimSpace(name) == "" {
		return service.User{}, &service.ValidationError{Field: "name", Reason: "must not be empty"}
	}

	user, err := s.svc.CreateUser(ctx, name)
	if err != nil {
		return service.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append(s.users, user)
	s.log.Info("user added", "id", user.ID)
	return user, nil
}

// EditUser renames a user and replaces the matching local entry in place
// with the backend echo. Relative order is preserved. Renaming an id that
// is no longer present locally changes nothing beyond the remote call.
func (s *Store) EditUser(ctx context.Context, id, name string) (service.User, error) {
	if strings.TrimSpace(name) == "" {
		return service.User{}, &service.ValidationError{Field: "name", Reason: "must not be empty"}
	}

	user, err := s.svc.UpdateUser(ctx, id, name)
	if err != nil {
		return service.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i] = user
			break
		}
	}
	if s.selected != nil && s.selected.ID == id {
		s.selected = &user
	}
	s.log.Info("user renamed", "id", id)
	return user, nil
}

// DeleteUser deletes a user and removes the matching local entry.
// If the deleted user is the active selection, the selection is cleared
// and the Tasks collection emptied as one atomic effect. A backend 404 is
// treated as success: the server already agrees the user is gone.
func (s *Store) DeleteUser(ctx context.Context, id string) error {
	if err := s.svc.DeleteUser(ctx, id); err != nil && !service.IsNotFound(err) {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			break
		}
	}
	if s.selected != nil && s.selected.ID == id {
		s.selected = nil
		s.tasks = nil
		s.form = FormClosed
		s.editID = ""
	}
	s.log.Info("user deleted", "id", id)
	return nil
}

// AddOrEditTask submits the add-or-edit form. With an edit session active
// it updates the session's task and replaces the local entry in place;
// otherwise it creates a task and appends the echo. Either way a
// successful submit closes the form. On failure the Tasks collection and
// the edit session are left untouched so the form can be retried.
func (s *Store) AddOrEditTask(ctx context.Context, draft service.TaskDraft) (service.Task, error) {
	if strings.TrimSpace(draft.Title) == "" {
		return service.Task{}, &service.ValidationError{Field: "title", Reason: "must not be empty"}
	}

	s.mu.RLock()
	if s.selected == nil {
		s.mu.RUnlock()
		return service.Task{}, &service.ValidationError{Field: "user", Reason: "no user selected"}
	}
	userID := s.selected.ID
	editing := s.form == FormEditing
	editID := s.editID
	s.mu.RUnlock()

	if editing {
		task, err := s.svc.UpdateTask(ctx, userID, editID, draft)
		if err != nil {
			return service.Task{}, err
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		for i := range s.tasks {
			if s.tasks[i].ID == editID {
				s.tasks[i] = task
				break
			}
		}
		s.form = FormClosed
		s.editID = ""
		s.log.Info("task updated", "user", userID, "task", task.ID)
		return task, nil
	}

	task, err := s.svc.CreateTask(ctx, userID, draft)
	if err != nil {
		return service.Task{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append(s.tasks, task)
	s.form = FormClosed
	s.editID = ""
	s.log.Info("task created", "user", userID, "task", task.ID)
	return task, nil
}

// DeleteTask deletes a task scoped to the active user and removes the
// matching local entry. Deleting an id that is no longer present locally
// is a no-op; a backend 404 is treated as success.
func (s *Store) DeleteTask(ctx context.Context, taskID string) error {
	s.mu.RLock()
	if s.selected == nil {
		s.mu.RUnlock()
		return &service.ValidationError{Field: "user", Reason: "no user selected"}
	}
	userID := s.selected.ID
	present := false
	for i := range s.tasks {
		if s.tasks[i].ID == taskID {
			present = true
			break
		}
	}
	s.mu.RUnlock()

	if !present {
		return nil
	}

	if err := s.svc.DeleteTask(ctx, userID, taskID); err != nil && !service.IsNotFound(err) {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == taskID {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			break
		}
	}
	if s.editID == taskID {
		s.form = FormClosed
		s.editID = ""
	}
	s.log.Info("task deleted", "user", userID, "task", taskID)
	return nil
}

// CompleteTask toggles a task's completed flag, sending the full task
// payload with only the flag flipped, and replaces the local entry with
// the backend echo.
func (s *Store) CompleteTask(ctx context.Context, taskID string) (service.Task, error) {
	s.mu.RLock()
	if s.selected == nil {
		s.mu.RUnlock()
		return service.Task{}, &service.ValidationError{Field: "user", Reason: "no user selected"}
	}
	userID := s.selected.ID
	var current *service.Task
	for i := range s.tasks {
		if s.tasks[i].ID == taskID {
			t := s.tasks[i]
			current = &t
			break
		}
	}
	s.mu.RUnlock()

	if current == nil {
		return service.Task{}, &service.NotFoundError{Resource: "task", ID: taskID}
	}

	draft := current.Draft()
	draft.Completed = !draft.Completed

	task, err := s.svc.UpdateTask(ctx, userID, taskID, draft)
	if err != nil {
		return service.Task{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == taskID {
			s.tasks[i] = task
			break
		}
	}
	s.log.Info("task toggled", "user", userID, "task", taskID, "completed", task.Completed)
	return task, nil
}

// Users returns a copy of the Users collection.
func (s *Store) Users() []service.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]service.User, len(s.users))
	copy(out, s.users)
	return out
}

// Tasks returns a copy of the Tasks collection for the active user.
func (s *Store) Tasks() []service.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]service.Task, len(s.tasks))
	copy(out, s.tasks)
	for i := range out {
		out[i].Tags = out[i].Tags.Clone()
	}
	return out
}

// SelectedUser returns the active user, if any.
func (s *Store) SelectedUser() (service.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selected == nil {
		return service.User{}, false
	}
	return *s.selected, true
}

// Progress reports completion of the active user's task list:
// completed count, total count, and the rounded percentage.
// An empty list is 0%.
func (s *Store) Progress() (completed, total, percent int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total = len(s.tasks)
	for i := range s.tasks {
		if s.tasks[i].Completed {
			completed++
		}
	}
	if total == 0 {
		return 0, 0, 0
	}
	percent = int(math.Round(float64(completed) / float64(total) * 100))
	return completed, total, percent
}
