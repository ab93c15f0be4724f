package store

import "utask/internal/service"

// FormState tracks the add-or-edit form lifecycle.
type FormState int

const (
	// FormClosed means no form is open and no edit target is set.
	FormClosed FormState = iota
	// FormCreating means the form is open for a new task.
	FormCreating
	// FormEditing means the form is open and bound to an existing task.
	FormEditing
)

// String returns a readable name for the state.
func (f FormState) String() string {
	switch f {
	case FormClosed:
		return "closed"
	case FormCreating:
		return "creating"
	case FormEditing:
		return "editing"
	default:
		return "unknown"
	}
}

// OpenCreate opens the form for a new task, clearing any edit target.
func (s *Store) OpenCreate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form = FormCreating
	s.editID = ""
}

// OpenEdit opens the form bound to an existing task. Opening the form for
// a second task while one is already targeted replaces the target. The
// task must be present in the current Tasks collection.
func (s *Store) OpenEdit(taskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == taskID {
			s.form = FormEditing
			s.editID = taskID
			return nil
		}
	}
	return &service.NotFoundError{Resource: "task", ID: taskID}
}

// CloseForm closes the form and clears the edit target.
func (s *Store) CloseForm() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form = FormClosed
	s.editID = ""
}

// FormState returns the current form state.
func (s *Store) FormState() FormState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.form
}

// EditTarget returns the task the form is bound to, if the form is open
// in editing state.
func (s *Store) EditTarget() (service.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.form != FormEditing {
		return service.Task{}, false
	}
	for i := range s.tasks {
		if s.tasks[i].ID == s.editID {
			t := s.tasks[i]
			t.Tags = t.Tags.Clone()
			return t, true
		}
	}
	return service.Task{}, false
}
