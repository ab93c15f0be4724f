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
	Register(&RmCmd{})
}

// RmCmd deletes a task.
type RmCmd struct{}

func (c *RmCmd) Name() string       { return "rm" }
func (c *RmCmd) Aliases() []string  { return []string{"delete"} }
func (c *RmCmd) Synopsis() string   { return "Delete a task" }
func (c *RmCmd) Usage() string      { return "utask rm <user> <task-id>" }
func (c *RmCmd) NeedsBackend() bool { return true }

func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RmCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) != 2 {
		fmt.Fprintln(errOut, "error: user and task id required")
		return exitcode.UserError
	}

	st := newStore(cfg, svc)
	if _, err := selectUserByRef(ctx, st, args[0]); err != nil {
		return fail(errOut, err)
	}

	if err := st.DeleteTask(ctx, args[1]); err != nil {
		return fail(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
