package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"utask/internal/config"
	"utask/internal/service"
	"utask/internal/store"
	"utask/internal/testutil"
)

func newTestApp(t *testing.T) (*App, *testutil.FakeService) {
	t.Helper()
	fake := testutil.NewFakeService()
	st := store.New(fake, nil)
	cfg := &config.Config{}
	cfg.Dir = t.TempDir()
	return New(context.Background(), cfg, st), fake
}

// step runs a command synchronously and feeds its message back in, the way
// the Bubble Tea runtime would.
func step(t *testing.T, a *App, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, c := a.Update(cmd()); c != nil {
		c()
	}
}

func TestApp_LoadsUsers(t *testing.T) {
	app, fake := newTestApp(t)
	fake.SeedUser("u1", "Ann")
	fake.SeedUser("u2", "Ben")

	step(t, app, app.loadUsers())
	if len(app.users) != 2 {
		t.Fatalf("snapshot not refreshed: %v", app.users)
	}
	if app.view != viewUsers {
		t.Errorf("expected users view, got %v", app.view)
	}
}

func TestApp_EnterSelectsUserAndShowsTasks(t *testing.T) {
	app, fake := newTestApp(t)
	fake.SeedUser("u1", "Ann")
	fake.SeedTask("u1", service.Task{ID: "t1", Title: "Buy milk"})
	step(t, app, app.loadUsers())

	_, cmd := app.Update(key("enter"))
	step(t, app, cmd)

	if app.view != viewTasks {
		t.Fatalf("expected tasks view, got %v", app.view)
	}
	if len(app.tasks) != 1 || app.tasks[0].ID != "t1" {
		t.Errorf("unexpected task snapshot: %v", app.tasks)
	}
}

func TestApp_SearchFiltersUsers(t *testing.T) {
	app, fake := newTestApp(t)
	fake.SeedUser("u1", "Ann")
	fake.SeedUser("u2", "Ben")
	step(t, app, app.loadUsers())

	app.search.SetValue("be")
	users := app.filteredUsers()
	if len(users) != 1 || users[0].ID != "u2" {
		t.Errorf("unexpected filter result: %v", users)
	}

	app.search.SetValue("")
	if len(app.filteredUsers()) != 2 {
		t.Error("empty query must show everyone")
	}
}

func TestApp_NewTaskFormOpensAndCancels(t *testing.T) {
	app, fake := newTestApp(t)
	fake.SeedUser("u1", "Ann")
	step(t, app, app.loadUsers())
	_, cmd := app.Update(key("enter"))
	step(t, app, cmd)

	app.Update(key("n"))
	if app.view != viewForm {
		t.Fatalf("expected form view, got %v", app.view)
	}
	if app.store.FormState() != store.FormCreating {
		t.Errorf("expected creating form, got %v", app.store.FormState())
	}

	app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if app.view != viewTasks {
		t.Errorf("expected tasks view after cancel, got %v", app.view)
	}
	if app.store.FormState() != store.FormClosed {
		t.Errorf("cancel must close the form, got %v", app.store.FormState())
	}
}

func TestApp_EditKeepsCompletedFlag(t *testing.T) {
	app, fake := newTestApp(t)
	fake.SeedUser("u1", "Ann")
	fake.SeedTask("u1", service.Task{ID: "t1", Title: "Buy milk", Completed: true})
	step(t, app, app.loadUsers())
	_, cmd := app.Update(key("enter"))
	step(t, app, cmd)

	app.Update(key("e"))
	if app.view != viewForm {
		t.Fatalf("expected form view, got %v", app.view)
	}
	app.form.title.SetValue("Buy oat milk")
	app.form.setFocus(app.form.submitFocus())
	_, cmd = app.Update(key("enter"))
	step(t, app, cmd)

	task := fake.TasksOf("u1")[0]
	if task.Title != "Buy oat milk" {
		t.Errorf("title not updated: %v", task)
	}
	if !task.Completed {
		t.Error("editing must not clear the completed flag")
	}
	if app.view != viewTasks {
		t.Errorf("expected tasks view after save, got %v", app.view)
	}
}

func TestApp_ToggleTask(t *testing.T) {
	app, fake := newTestApp(t)
	fake.SeedUser("u1", "Ann")
	fake.SeedTask("u1", service.Task{ID: "t1", Title: "Buy milk"})
	step(t, app, app.loadUsers())
	_, cmd := app.Update(key("enter"))
	step(t, app, cmd)

	_, cmd = app.Update(key(" "))
	step(t, app, cmd)
	if !app.tasks[0].Completed {
		t.Error("snapshot not refreshed after toggle")
	}
}

func TestApp_DeleteSelectedUserReturnsToUserList(t *testing.T) {
	app, fake := newTestApp(t)
	fake.SeedUser("u1", "Ann")
	step(t, app, app.loadUsers())
	_, cmd := app.Update(key("enter"))
	step(t, app, cmd)
	if app.view != viewTasks {
		t.Fatalf("expected tasks view, got %v", app.view)
	}

	step(t, app, app.deleteUser("u1"))
	if app.view != viewUsers {
		t.Errorf("deleting the active user must return to the user list, got %v", app.view)
	}
	if len(app.users) != 0 {
		t.Errorf("snapshot not refreshed: %v", app.users)
	}
}

func TestApp_AddUserPrompt(t *testing.T) {
	app, fake := newTestApp(t)
	step(t, app, app.loadUsers())

	app.Update(key("a"))
	if app.inputMode != inputAddUser {
		t.Fatalf("expected add prompt, got %v", app.inputMode)
	}
	app.input.SetValue("Ann")
	_, cmd := app.Update(key("enter"))
	step(t, app, cmd)

	if len(app.users) != 1 || app.users[0].Name != "Ann" {
		t.Errorf("user not added: %v", app.users)
	}
	users, _ := fake.ListUsers(context.Background())
	if len(users) != 1 {
		t.Errorf("backend not updated: %v", users)
	}
}

func TestApp_ErrorShowsInView(t *testing.T) {
	app, _ := newTestApp(t)
	app.Update(errMsg{&service.RemoteError{Op: "list users", Status: 500}})

	view := app.View()
	if !strings.Contains(view, "error:") {
		t.Errorf("error not rendered:\n%s", view)
	}
}

func TestApp_FailedLoadKeepsRunning(t *testing.T) {
	app, fake := newTestApp(t)
	fake.ListUsersErr = &service.RemoteError{Op: "list users", Status: 500}

	step(t, app, app.loadUsers())
	if app.err == nil {
		t.Error("expected error recorded")
	}
	if app.view != viewUsers {
		t.Errorf("a failed load must not change the view, got %v", app.view)
	}
}
