package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"utask/internal/config"
	"utask/internal/exitcode"
	"utask/internal/service"
	"utask/internal/tui"
)

func init() {
	Register(&UICmd{})
}

// UICmd launches the interactive terminal UI.
type UICmd struct{}

func (c *UICmd) Name() string       { return "ui" }
func (c *UICmd) Aliases() []string  { return []string{"tui"} }
func (c *UICmd) Synopsis() string   { return "Open the interactive UI" }
func (c *UICmd) Usage() string      { return "utask ui" }
func (c *UICmd) NeedsBackend() bool { return true }

func (c *UICmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *UICmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	st := newStore(cfg, svc)
	if err := tui.Run(ctx, cfg, st); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.BackendError
	}
	return exitcode.Success
}
