package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"utask/internal/config"
	"utask/internal/exitcode"
	"utask/internal/service"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd creates a task under a user.
type AddCmd struct {
	desc string
	due  string
	tags string
}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Synopsis() string  { return "Create a task" }
func (c *AddCmd) Usage() string {
	return "utask add [--desc <text>] [--due <date>] [--tags <tags>] <user> <title...>"
}
func (c *AddCmd) NeedsBackend() bool { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.desc, "desc", "", "")
	fs.StringVar(&c.due, "due", "", "")
	fs.StringVar(&c.tags, "tags", "", "")
}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) < 2 {
		fmt.Fprintln(errOut, "error: user and title required")
		return exitcode.UserError
	}

	st := newStore(cfg, svc)
	if _, err := selectUserByRef(ctx, st, args[0]); err != nil {
		return fail(errOut, err)
	}

	draft := service.TaskDraft{
		Title:       strings.Join(args[1:], " "),
		Description: c.desc,
		Tags:        service.ParseTagSet(c.tags),
		DueDate:     c.due,
	}
	task, err := st.AddOrEditTask(ctx, draft)
	if err != nil {
		return fail(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "ok %s\n", task.ID)
	}
	return exitcode.Success
}
