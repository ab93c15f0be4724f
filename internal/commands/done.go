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
	Register(&DoneCmd{})
}

// DoneCmd toggles a task's completed flag.
type DoneCmd struct{}

func (c *DoneCmd) Name() string       { return "done" }
func (c *DoneCmd) Aliases() []string  { return []string{"toggle"} }
func (c *DoneCmd) Synopsis() string   { return "Toggle a task completed" }
func (c *DoneCmd) Usage() string      { return "utask done <user> <task-id>" }
func (c *DoneCmd) NeedsBackend() bool { return true }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) != 2 {
		fmt.Fprintln(errOut, "error: user and task id required")
		return exitcode.UserError
	}

	st := newStore(cfg, svc)
	if _, err := selectUserByRef(ctx, st, args[0]); err != nil {
		return fail(errOut, err)
	}

	task, err := st.CompleteTask(ctx, args[1])
	if err != nil {
		return fail(errOut, err)
	}

	if !cfg.Quiet {
		if task.Completed {
			fmt.Fprintln(out, "completed")
		} else {
			fmt.Fprintln(out, "reopened")
		}
	}
	return exitcode.Success
}
