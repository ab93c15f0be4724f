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
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string       { return "help" }
func (c *HelpCmd) Aliases() []string  { return nil }
func (c *HelpCmd) Synopsis() string   { return "Print usage" }
func (c *HelpCmd) Usage() string      { return "utask help" }
func (c *HelpCmd) NeedsBackend() bool { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  utask                                             List users
  utask users                                       List users
  utask useradd <name...>                           Create a user
  utask username <user> <name...>                   Rename a user
  utask userrm <user>                               Delete a user
  utask list <user>                                 List a user's tasks
  utask add [--desc] [--due] [--tags] <user> <title...>
  utask edit [--title] [--desc] [--due] [--tags] <user> <task-id>
  utask done <user> <task-id>                       Toggle a task completed
  utask rm <user> <task-id>                         Delete a task
  utask ui                                          Open the interactive UI
  utask help
  utask version

A <user> is a user id or a unique user name (case-insensitive).
Tags is a comma-separated subset of: Work, Personal, Urgent, Important,
Low Priority, High Priority.

Common flags:
  --config <dir>   Override config directory
  --api <url>      Override backend base URL
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
