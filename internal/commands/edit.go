package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"utask/internal/config"
	"utask/internal/exitcode"
	"utask/internal/service"
)

func init() {
	Register(&EditCmd{})
}

// EditCmd edits an existing task through an edit session: only the fields
// given as flags change, everything else keeps its current value.
type EditCmd struct {
	title *string
	desc  *string
	due   *string
	tags  *string
}

func (c *EditCmd) Name() string      { return "edit" }
func (c *EditCmd) Aliases() []string { return nil }
func (c *EditCmd) Synopsis() string  { return "Edit a task" }
func (c *EditCmd) Usage() string {
	return "utask edit [--title <text>] [--desc <text>] [--due <date>] [--tags <tags>] <user> <task-id>"
}
func (c *EditCmd) NeedsBackend() bool { return true }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.Func("title", "", func(v string) error { c.title = &v; return nil })
	fs.Func("desc", "", func(v string) error { c.desc = &v; return nil })
	fs.Func("due", "", func(v string) error { c.due = &v; return nil })
	fs.Func("tags", "", func(v string) error { c.tags = &v; return nil })
}

func (c *EditCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) != 2 {
		fmt.Fprintln(errOut, "error: user and task id required")
		return exitcode.UserError
	}
	if c.title == nil && c.desc == nil && c.due == nil && c.tags == nil {
		fmt.Fprintln(errOut, "error: nothing to change")
		return exitcode.UserError
	}

	st := newStore(cfg, svc)
	if _, err := selectUserByRef(ctx, st, args[0]); err != nil {
		return fail(errOut, err)
	}

	if err := st.OpenEdit(args[1]); err != nil {
		return fail(errOut, err)
	}
	target, _ := st.EditTarget()

	draft := target.Draft()
	if c.title != nil {
		draft.Title = *c.title
	}
	if c.desc != nil {
		draft.Description = *c.desc
	}
	if c.due != nil {
		draft.DueDate = *c.due
	}
	if c.tags != nil {
		draft.Tags = service.ParseTagSet(*c.tags)
	}

	if _, err := st.AddOrEditTask(ctx, draft); err != nil {
		st.CloseForm()
		return fail(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
