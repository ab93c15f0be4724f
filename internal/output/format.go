// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"utask/internal/service"
)

const (
	// Separator is the separator line above and below section headers.
	Separator = "------------"
)

// FormatUser formats one user line.
// Format: "{N:>4}  {NAME}  ({ID})\n"
func FormatUser(w io.Writer, num int, user service.User) {
	fmt.Fprintf(w, "%4d  %s  (%s)\n", num, normalize(user.Name), user.ID)
}

// FormatTask formats one task line with a completion checkbox.
// Tags and due date are appended when present.
func FormatTask(w io.Writer, num int, task service.Task) {
	box := "[ ]"
	if task.Completed {
		box = "[x]"
	}
	line := fmt.Sprintf("%4d  %s %s", num, box, normalize(task.Title))
	if len(task.Tags) > 0 {
		line += fmt.Sprintf("  #%s", task.Tags.String())
	}
	if task.DueDate != "" {
		line += fmt.Sprintf("  due %s", task.DueDate)
	}
	fmt.Fprintln(w, line)
}

// FormatHeader formats a section header for a user's task list.
func FormatHeader(w io.Writer, user service.User) {
	fmt.Fprintln(w, Separator)
	fmt.Fprintf(w, "Tasks for %s\n", normalize(user.Name))
	fmt.Fprintln(w, Separator)
}

// FormatProgress formats the completion summary line.
// Format: "{completed} of {total} tasks completed ({percent}%)\n"
func FormatProgress(w io.Writer, completed, total, percent int) {
	fmt.Fprintf(w, "%d of %d tasks completed (%d%%)\n", completed, total, percent)
}

// normalize prepares a display string.
// Newlines become spaces; blank strings become "(untitled)".
func normalize(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	if strings.TrimSpace(s) == "" {
		return "(untitled)"
	}
	return s
}
