package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"utask/internal/service"
)

// Form focus positions: the three inputs, the six tag checkboxes, submit.
const (
	focusTitle = iota
	focusDescription
	focusDueDate
	focusTags // first tag; tags occupy focusTags..focusTags+len(AllTags)-1
)

// taskForm is the add-or-edit form model. It binds to the store's edit
// session: an empty form creates, a populated one updates.
type taskForm struct {
	title       textinput.Model
	description textinput.Model
	dueDate     textinput.Model
	tags        service.TagSet
	focus       int
	editing     bool
}

func newTaskForm() *taskForm {
	title := textinput.New()
	title.Placeholder = "Task title"
	title.CharLimit = 200
	title.Focus()

	description := textinput.New()
	description.Placeholder = "Description"
	description.CharLimit = 500

	dueDate := textinput.New()
	dueDate.Placeholder = "YYYY-MM-DD"
	dueDate.CharLimit = 10

	return &taskForm{
		title:       title,
		description: description,
		dueDate:     dueDate,
	}
}

// populate fills the form from an existing task for editing.
func (f *taskForm) populate(task service.Task) {
	f.title.SetValue(task.Title)
	f.description.SetValue(task.Description)
	f.dueDate.SetValue(task.DueDate)
	f.tags = task.Tags.Clone()
	f.editing = true
}

// draft builds the task payload from the current form values.
// The completed flag is not part of the form; editing keeps the task's
// current value via the caller, creating starts incomplete.
func (f *taskForm) draft() service.TaskDraft {
	return service.TaskDraft{
		Title:       f.title.Value(),
		Description: f.description.Value(),
		Tags:        f.tags.Clone(),
		DueDate:     f.dueDate.Value(),
	}
}

func (f *taskForm) submitFocus() int {
	return focusTags + len(service.AllTags)
}

func (f *taskForm) focusNext() {
	f.setFocus(f.focus + 1)
}

func (f *taskForm) focusPrev() {
	f.setFocus(f.focus - 1)
}

func (f *taskForm) setFocus(pos int) {
	max := f.submitFocus()
	if pos < 0 {
		pos = max
	}
	if pos > max {
		pos = 0
	}
	f.focus = pos

	f.title.Blur()
	f.description.Blur()
	f.dueDate.Blur()
	switch pos {
	case focusTitle:
		f.title.Focus()
	case focusDescription:
		f.description.Focus()
	case focusDueDate:
		f.dueDate.Focus()
	}
}

// update handles a key while the form is open. It reports whether the
// form wants to submit.
func (f *taskForm) update(msg tea.KeyMsg) (submit bool, cmd tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		f.focusNext()
		return false, nil
	case "shift+tab", "up":
		f.focusPrev()
		return false, nil
	case "enter":
		if f.focus == f.submitFocus() {
			return true, nil
		}
		if f.onTag() {
			f.toggleFocusedTag()
			return false, nil
		}
		f.focusNext()
		return false, nil
	case " ":
		if f.onTag() {
			f.toggleFocusedTag()
			return false, nil
		}
	}

	switch f.focus {
	case focusTitle:
		f.title, cmd = f.title.Update(msg)
	case focusDescription:
		f.description, cmd = f.description.Update(msg)
	case focusDueDate:
		f.dueDate, cmd = f.dueDate.Update(msg)
	}
	return false, cmd
}

func (f *taskForm) onTag() bool {
	return f.focus >= focusTags && f.focus < f.submitFocus()
}

func (f *taskForm) toggleFocusedTag() {
	tag := service.AllTags[f.focus-focusTags]
	f.tags = f.tags.Toggle(tag)
}

// view renders the form.
func (f *taskForm) view(theme Theme) string {
	var b strings.Builder

	header := "Add Task"
	if f.editing {
		header = "Edit Task"
	}
	b.WriteString(theme.Title.Render(header))
	b.WriteString("\n\n")

	b.WriteString(theme.FormLabel.Render("Title"))
	b.WriteString("\n" + f.title.View() + "\n\n")
	b.WriteString(theme.FormLabel.Render("Description"))
	b.WriteString("\n" + f.description.View() + "\n\n")
	b.WriteString(theme.FormLabel.Render("Due date"))
	b.WriteString("\n" + f.dueDate.View() + "\n\n")

	b.WriteString(theme.FormLabel.Render("Tags"))
	b.WriteString("\n")
	for i, tag := range service.AllTags {
		box := "[ ]"
		if f.tags.Has(tag) {
			box = "[x]"
		}
		line := fmt.Sprintf("%s %s", box, tag)
		if f.focus == focusTags+i {
			line = theme.Focused.Render("> " + line)
		} else {
			line = theme.Normal.Render("  " + line)
		}
		b.WriteString(line + "\n")
	}

	submit := "  Save"
	if f.focus == f.submitFocus() {
		submit = theme.Focused.Render("> Save")
	}
	b.WriteString("\n" + submit + "\n")

	return b.String()
}
