package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"utask/internal/service"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestForm_PopulateAndDraft(t *testing.T) {
	f := newTaskForm()
	f.populate(service.Task{
		ID:          "t1",
		Title:       "Buy milk",
		Description: "2L",
		Tags:        service.TagSet{service.TagWork},
		DueDate:     "2026-09-01",
	})

	if !f.editing {
		t.Error("populate must mark the form as editing")
	}
	draft := f.draft()
	if draft.Title != "Buy milk" || draft.Description != "2L" || draft.DueDate != "2026-09-01" {
		t.Errorf("unexpected draft: %v", draft)
	}
	if !draft.Tags.Has(service.TagWork) {
		t.Errorf("tags not carried over: %v", draft.Tags)
	}
	if draft.Completed {
		t.Error("the form never sets the completed flag")
	}
}

func TestForm_TypingFillsTitle(t *testing.T) {
	f := newTaskForm()
	for _, r := range "Buy milk" {
		f.update(key(string(r)))
	}
	if got := f.draft().Title; got != "Buy milk" {
		t.Errorf("title = %q", got)
	}
}

func TestForm_FocusCycle(t *testing.T) {
	f := newTaskForm()
	if f.focus != focusTitle {
		t.Fatalf("initial focus = %d", f.focus)
	}

	steps := f.submitFocus() + 1
	for i := 0; i < steps; i++ {
		f.update(key("tab"))
	}
	if f.focus != focusTitle {
		t.Errorf("focus must wrap back to the title, got %d", f.focus)
	}

	f.update(key("shift+tab"))
	if f.focus != f.submitFocus() {
		t.Errorf("reverse from title must land on submit, got %d", f.focus)
	}
}

func TestForm_SpaceTogglesFocusedTag(t *testing.T) {
	f := newTaskForm()
	f.setFocus(focusTags) // first tag: Work

	f.update(key(" "))
	if !f.tags.Has(service.TagWork) {
		t.Errorf("tag not toggled on: %v", f.tags)
	}
	f.update(key(" "))
	if f.tags.Has(service.TagWork) {
		t.Errorf("tag not toggled off: %v", f.tags)
	}
}

func TestForm_EnterOnTagTogglesInsteadOfSubmitting(t *testing.T) {
	f := newTaskForm()
	f.setFocus(focusTags + 1) // Personal

	submit, _ := f.update(key("enter"))
	if submit {
		t.Error("enter on a tag must not submit")
	}
	if !f.tags.Has(service.TagPersonal) {
		t.Errorf("tag not toggled: %v", f.tags)
	}
}

func TestForm_EnterOnSubmit(t *testing.T) {
	f := newTaskForm()
	f.setFocus(f.submitFocus())

	submit, _ := f.update(key("enter"))
	if !submit {
		t.Error("enter on the save button must submit")
	}
}

func TestForm_ViewShowsTagState(t *testing.T) {
	f := newTaskForm()
	f.tags = service.TagSet{service.TagUrgent}

	view := f.view(darkTheme())
	if want := "[x] Urgent"; !strings.Contains(view, want) {
		t.Errorf("view missing %q:\n%s", want, view)
	}
	if want := "[ ] Work"; !strings.Contains(view, want) {
		t.Errorf("view missing %q:\n%s", want, view)
	}
}
