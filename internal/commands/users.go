package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"utask/internal/config"
	"utask/internal/exitcode"
	"utask/internal/output"
	"utask/internal/service"
)

func init() {
	Register(&UsersCmd{})
	Register(&UserAddCmd{})
	Register(&UserRenameCmd{})
	Register(&UserRmCmd{})
}

// UsersCmd lists all users.
type UsersCmd struct{}

func (c *UsersCmd) Name() string       { return "users" }
func (c *UsersCmd) Aliases() []string  { return nil }
func (c *UsersCmd) Synopsis() string   { return "List users" }
func (c *UsersCmd) Usage() string      { return "utask users" }
func (c *UsersCmd) NeedsBackend() bool { return true }

func (c *UsersCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *UsersCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	st := newStore(cfg, svc)
	if err := st.LoadUsers(ctx); err != nil {
		return fail(errOut, err)
	}

	users := st.Users()
	if len(users) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no users found")
		}
		return exitcode.Success
	}
	for i, user := range users {
		output.FormatUser(out, i+1, user)
	}
	return exitcode.Success
}

// UserAddCmd creates a user.
type UserAddCmd struct{}

func (c *UserAddCmd) Name() string       { return "useradd" }
func (c *UserAddCmd) Aliases() []string  { return nil }
func (c *UserAddCmd) Synopsis() string   { return "Create a user" }
func (c *UserAddCmd) Usage() string      { return "utask useradd <name...>" }
func (c *UserAddCmd) NeedsBackend() bool { return true }

func (c *UserAddCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *UserAddCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		fmt.Fprintln(errOut, "error: name required")
		return exitcode.UserError
	}

	st := newStore(cfg, svc)
	if err := st.LoadUsers(ctx); err != nil {
		return fail(errOut, err)
	}
	user, err := st.AddUser(ctx, name)
	if err != nil {
		return fail(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "ok %s\n", user.ID)
	}
	return exitcode.Success
}

// UserRenameCmd renames a user.
type UserRenameCmd struct{}

func (c *UserRenameCmd) Name() string       { return "username" }
func (c *UserRenameCmd) Aliases() []string  { return []string{"rename"} }
func (c *UserRenameCmd) Synopsis() string   { return "Rename a user" }
func (c *UserRenameCmd) Usage() string      { return "utask username <user> <name...>" }
func (c *UserRenameCmd) NeedsBackend() bool { return true }

func (c *UserRenameCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *UserRenameCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) < 2 {
		fmt.Fprintln(errOut, "error: user and new name required")
		return exitcode.UserError
	}

	st := newStore(cfg, svc)
	if err := st.LoadUsers(ctx); err != nil {
		return fail(errOut, err)
	}
	user, err := ResolveUser(st, args[0])
	if err != nil {
		return fail(errOut, err)
	}

	name := strings.TrimSpace(strings.Join(args[1:], " "))
	if _, err := st.EditUser(ctx, user.ID, name); err != nil {
		return fail(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

// UserRmCmd deletes a user.
type UserRmCmd struct{}

func (c *UserRmCmd) Name() string       { return "userrm" }
func (c *UserRmCmd) Aliases() []string  { return nil }
func (c *UserRmCmd) Synopsis() string   { return "Delete a user" }
func (c *UserRmCmd) Usage() string      { return "utask userrm <user>" }
func (c *UserRmCmd) NeedsBackend() bool { return true }

func (c *UserRmCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *UserRmCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(errOut, "error: user required")
		return exitcode.UserError
	}

	st := newStore(cfg, svc)
	if err := st.LoadUsers(ctx); err != nil {
		return fail(errOut, err)
	}
	user, err := ResolveUser(st, args[0])
	if err != nil {
		return fail(errOut, err)
	}

	if err := st.DeleteUser(ctx, user.ID); err != nil {
		return fail(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
