// Package tui provides the interactive terminal UI.
//
// The UI is a thin presentation layer over the store: every mutation goes
// through store operations inside tea commands, and the visible lists are
// snapshots refreshed after each completed operation. Failures land in the
// status line and leave the previous state on screen.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"utask/internal/config"
	"utask/internal/service"
	"utask/internal/store"
)

// view identifies the current screen.
type view int

const (
	viewUsers view = iota
	viewTasks
	viewForm
)

// inputMode identifies what the one-line prompt is collecting.
type inputMode int

const (
	inputNone inputMode = iota
	inputAddUser
	inputRenameUser
)

// Message types
type errMsg struct{ err error }
type usersLoadedMsg struct{}
type tasksLoadedMsg struct{}
type taskSavedMsg struct{}
type taskDeletedMsg struct{}
type taskToggledMsg struct{}
type userMutatedMsg struct{ status string }

// App is the main Bubble Tea model for the application.
type App struct {
	ctx   context.Context
	cfg   *config.Config
	store *store.Store

	view view

	// Snapshots of store state for rendering
	users []service.User
	tasks []service.Task

	userCursor int
	taskCursor int

	search    textinput.Model
	searching bool

	input     textinput.Model
	inputMode inputMode
	renameID  string

	form *taskForm

	spin    spinner.Model
	loading bool

	err    error
	status string

	theme  Theme
	width  int
	height int
}

// New creates the App model.
func New(ctx context.Context, cfg *config.Config, st *store.Store) *App {
	search := textinput.New()
	search.Placeholder = "Search users"
	search.CharLimit = 100

	input := textinput.New()
	input.CharLimit = 100

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return &App{
		ctx:    ctx,
		cfg:    cfg,
		store:  st,
		search: search,
		input:  input,
		spin:   spin,
		theme:  themeFor(cfg.TUI.Theme),
	}
}

// Run starts the UI and blocks until it exits.
func Run(ctx context.Context, cfg *config.Config, st *store.Store) error {
	app := New(ctx, cfg, st)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.spin.Tick, a.loadUsers())
}

func (a *App) loadUsers() tea.Cmd {
	a.loading = true
	return func() tea.Msg {
		if err := a.store.LoadUsers(a.ctx); err != nil {
			return errMsg{err}
		}
		return usersLoadedMsg{}
	}
}

func (a *App) selectUser(user service.User) tea.Cmd {
	a.loading = true
	return func() tea.Msg {
		if err := a.store.SelectUser(a.ctx, user); err != nil {
			return errMsg{err}
		}
		return tasksLoadedMsg{}
	}
}

func (a *App) submitForm() tea.Cmd {
	draft := a.form.draft()
	if target, ok := a.store.EditTarget(); ok {
		draft.Completed = target.Completed
	}
	a.loading = true
	return func() tea.Msg {
		if _, err := a.store.AddOrEditTask(a.ctx, draft); err != nil {
			return errMsg{err}
		}
		return taskSavedMsg{}
	}
}

func (a *App) deleteTask(id string) tea.Cmd {
	a.loading = true
	return func() tea.Msg {
		if err := a.store.DeleteTask(a.ctx, id); err != nil {
			return errMsg{err}
		}
		return taskDeletedMsg{}
	}
}

func (a *App) toggleTask(id string) tea.Cmd {
	a.loading = true
	return func() tea.Msg {
		if _, err := a.store.CompleteTask(a.ctx, id); err != nil {
			return errMsg{err}
		}
		return taskToggledMsg{}
	}
}

func (a *App) addUser(name string) tea.Cmd {
	a.loading = true
	return func() tea.Msg {
		if _, err := a.store.AddUser(a.ctx, name); err != nil {
			return errMsg{err}
		}
		return userMutatedMsg{status: "User added"}
	}
}

func (a *App) renameUser(id, name string) tea.Cmd {
	a.loading = true
	return func() tea.Msg {
		if _, err := a.store.EditUser(a.ctx, id, name); err != nil {
			return errMsg{err}
		}
		return userMutatedMsg{status: "User renamed"}
	}
}

func (a *App) deleteUser(id string) tea.Cmd {
	a.loading = true
	return func() tea.Msg {
		if err := a.store.DeleteUser(a.ctx, id); err != nil {
			return errMsg{err}
		}
		return userMutatedMsg{status: "User deleted"}
	}
}

// refresh resyncs the rendering snapshots from the store.
func (a *App) refresh() {
	a.users = a.store.Users()
	a.tasks = a.store.Tasks()
	if a.userCursor >= len(a.filteredUsers()) {
		a.userCursor = max(0, len(a.filteredUsers())-1)
	}
	if a.taskCursor >= len(a.tasks) {
		a.taskCursor = max(0, len(a.tasks)-1)
	}
}

// filteredUsers applies the search box to the user list.
func (a *App) filteredUsers() []service.User {
	query := strings.ToLower(strings.TrimSpace(a.search.Value()))
	if query == "" {
		return a.users
	}
	var out []service.User
	for _, u := range a.users {
		if strings.Contains(strings.ToLower(u.Name), query) {
			out = append(out, u)
		}
	}
	return out
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKey(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		return a, cmd

	case errMsg:
		a.loading = false
		a.err = msg.err
		a.refresh()
		return a, nil

	case usersLoadedMsg:
		a.loading = false
		a.err = nil
		a.refresh()
		return a, nil

	case tasksLoadedMsg:
		a.loading = false
		a.err = nil
		a.refresh()
		a.taskCursor = 0
		a.view = viewTasks
		return a, nil

	case taskSavedMsg:
		a.loading = false
		a.err = nil
		a.status = "Task saved"
		a.refresh()
		a.form = nil
		a.view = viewTasks
		return a, nil

	case taskDeletedMsg:
		a.loading = false
		a.err = nil
		a.status = "Task deleted"
		a.refresh()
		return a, nil

	case taskToggledMsg:
		a.loading = false
		a.err = nil
		a.refresh()
		return a, nil

	case userMutatedMsg:
		a.loading = false
		a.err = nil
		a.status = msg.status
		a.inputMode = inputNone
		a.input.Blur()
		a.refresh()
		// The active selection may have been cleared by a cascade.
		if _, ok := a.store.SelectedUser(); !ok && a.view == viewTasks {
			a.view = viewUsers
		}
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a.status = ""

	// One-line prompt (add or rename user) swallows keys first.
	if a.inputMode != inputNone {
		switch msg.String() {
		case "esc":
			a.inputMode = inputNone
			a.input.Blur()
			return a, nil
		case "enter":
			name := strings.TrimSpace(a.input.Value())
			mode := a.inputMode
			a.inputMode = inputNone
			a.input.Blur()
			if name == "" {
				a.err = &service.ValidationError{Field: "name", Reason: "must not be empty"}
				return a, nil
			}
			if mode == inputRenameUser {
				return a, a.renameUser(a.renameID, name)
			}
			return a, a.addUser(name)
		}
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd
	}

	if a.view == viewForm {
		return a.handleFormKey(msg)
	}

	if a.searching {
		switch msg.String() {
		case "esc", "enter":
			a.searching = false
			a.search.Blur()
			return a, nil
		}
		var cmd tea.Cmd
		a.search, cmd = a.search.Update(msg)
		a.userCursor = 0
		return a, cmd
	}

	switch a.view {
	case viewUsers:
		return a.handleUsersKey(msg)
	case viewTasks:
		return a.handleTasksKey(msg)
	}
	return a, nil
}

func (a *App) handleUsersKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	users := a.filteredUsers()
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "j", "down":
		if a.userCursor < len(users)-1 {
			a.userCursor++
		}
	case "k", "up":
		if a.userCursor > 0 {
			a.userCursor--
		}
	case "enter":
		if a.userCursor < len(users) {
			return a, a.selectUser(users[a.userCursor])
		}
	case "a":
		a.inputMode = inputAddUser
		a.input.Placeholder = "New user name"
		a.input.SetValue("")
		a.input.Focus()
	case "r":
		if a.userCursor < len(users) {
			a.inputMode = inputRenameUser
			a.renameID = users[a.userCursor].ID
			a.input.Placeholder = "New name"
			a.input.SetValue(users[a.userCursor].Name)
			a.input.Focus()
		}
	case "d", "x":
		if a.userCursor < len(users) {
			return a, a.deleteUser(users[a.userCursor].ID)
		}
	case "/":
		a.searching = true
		a.search.Focus()
	case "R":
		return a, a.loadUsers()
	case "t":
		return a, a.toggleTheme()
	}
	return a, nil
}

func (a *App) handleTasksKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "esc", "b":
		a.view = viewUsers
	case "j", "down":
		if a.taskCursor < len(a.tasks)-1 {
			a.taskCursor++
		}
	case "k", "up":
		if a.taskCursor > 0 {
			a.taskCursor--
		}
	case "n":
		a.store.OpenCreate()
		a.form = newTaskForm()
		a.view = viewForm
	case "e", "enter":
		if a.taskCursor < len(a.tasks) {
			if err := a.store.OpenEdit(a.tasks[a.taskCursor].ID); err != nil {
				a.err = err
				return a, nil
			}
			a.form = newTaskForm()
			if target, ok := a.store.EditTarget(); ok {
				a.form.populate(target)
			}
			a.view = viewForm
		}
	case " ", "c":
		if a.taskCursor < len(a.tasks) {
			return a, a.toggleTask(a.tasks[a.taskCursor].ID)
		}
	case "d", "x":
		if a.taskCursor < len(a.tasks) {
			return a, a.deleteTask(a.tasks[a.taskCursor].ID)
		}
	case "t":
		return a, a.toggleTheme()
	}
	return a, nil
}

func (a *App) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.store.CloseForm()
		a.form = nil
		a.view = viewTasks
		return a, nil
	case "ctrl+c":
		return a, tea.Quit
	}

	submit, cmd := a.form.update(msg)
	if submit {
		return a, a.submitForm()
	}
	return a, cmd
}

func (a *App) toggleTheme() tea.Cmd {
	next := config.ThemeDark
	if a.theme.Name == config.ThemeDark {
		next = config.ThemeLight
	}
	a.theme = themeFor(next)
	return func() tea.Msg {
		if err := a.cfg.SaveTheme(next); err != nil {
			return errMsg{err}
		}
		return userMutatedMsg{status: "Theme: " + next}
	}
}

// View implements tea.Model.
func (a *App) View() string {
	var b strings.Builder

	title := "utask"
	if user, ok := a.store.SelectedUser(); ok && a.view != viewUsers {
		title = fmt.Sprintf("utask - Tasks for %s", user.Name)
	}
	b.WriteString(a.theme.Title.Render(title))
	if a.loading {
		b.WriteString(" " + a.spin.View())
	}
	b.WriteString("\n\n")

	switch a.view {
	case viewUsers:
		b.WriteString(a.viewUsersBody())
	case viewTasks:
		b.WriteString(a.viewTasksBody())
	case viewForm:
		b.WriteString(a.form.view(a.theme))
	}

	b.WriteString("\n")
	if a.err != nil {
		b.WriteString(a.theme.Error.Render("error: "+a.err.Error()) + "\n")
	} else if a.status != "" {
		b.WriteString(a.theme.Status.Render(a.status) + "\n")
	}
	b.WriteString(a.theme.Help.Render(a.helpLine()))
	return b.String()
}

func (a *App) viewUsersBody() string {
	var b strings.Builder
	b.WriteString(a.theme.Dim.Render("Select a user") + "\n")
	if a.searching || a.search.Value() != "" {
		b.WriteString(a.search.View() + "\n")
	}
	if a.inputMode != inputNone {
		b.WriteString(a.input.View() + "\n")
	}
	b.WriteString("\n")

	users := a.filteredUsers()
	if len(users) == 0 {
		b.WriteString(a.theme.Dim.Render("no users") + "\n")
		return b.String()
	}
	for i, user := range users {
		line := user.Name
		if i == a.userCursor {
			b.WriteString(a.theme.Selected.Render("> "+line) + "\n")
		} else {
			b.WriteString(a.theme.Normal.Render("  "+line) + "\n")
		}
	}
	return b.String()
}

func (a *App) viewTasksBody() string {
	var b strings.Builder

	completed, total, percent := a.store.Progress()
	b.WriteString(a.theme.Dim.Render(fmt.Sprintf("%d of %d tasks completed (%d%%)", completed, total, percent)) + "\n\n")

	if len(a.tasks) == 0 {
		b.WriteString(a.theme.Dim.Render("no tasks") + "\n")
		return b.String()
	}
	for i, task := range a.tasks {
		box := "[ ]"
		if task.Completed {
			box = "[x]"
		}
		titleStyle := a.theme.Normal
		if task.Completed {
			titleStyle = a.theme.Completed
		}
		line := box + " " + titleStyle.Render(task.Title)
		if len(task.Tags) > 0 {
			line += "  " + a.theme.Tag.Render("#"+task.Tags.String())
		}
		if task.DueDate != "" {
			line += "  " + a.theme.Dim.Render("due "+task.DueDate)
		}
		if i == a.taskCursor {
			b.WriteString(a.theme.Selected.Render("> ") + line + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}
	return b.String()
}

func (a *App) helpLine() string {
	switch a.view {
	case viewUsers:
		return "enter select · a add · r rename · d delete · / search · t theme · q quit"
	case viewTasks:
		return "n new · e edit · space toggle · d delete · esc back · t theme · q quit"
	case viewForm:
		return "tab next · space toggle tag · enter save · esc cancel"
	default:
		return ""
	}
}
