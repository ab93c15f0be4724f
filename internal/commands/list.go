package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"utask/internal/config"
	"utask/internal/exitcode"
	"utask/internal/output"
	"utask/internal/service"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd lists a user's tasks with a completion summary.
type ListCmd struct{}

func (c *ListCmd) Name() string       { return "list" }
func (c *ListCmd) Aliases() []string  { return []string{"ls"} }
func (c *ListCmd) Synopsis() string   { return "List a user's tasks" }
func (c *ListCmd) Usage() string      { return "utask list <user>" }
func (c *ListCmd) NeedsBackend() bool { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: user required")
		return exitcode.UserError
	}

	st := newStore(cfg, svc)
	user, err := selectUserByRef(ctx, st, args[0])
	if err != nil {
		return fail(errOut, err)
	}

	output.FormatHeader(out, user)
	for i, task := range st.Tasks() {
		output.FormatTask(out, i+1, task)
	}
	completed, total, percent := st.Progress()
	output.FormatProgress(out, completed, total, percent)
	return exitcode.Success
}
