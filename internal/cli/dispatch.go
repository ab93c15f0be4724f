// Package cli handles command-line parsing and dispatch.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"utask/internal/commands"
	"utask/internal/config"
	"utask/internal/exitcode"
	"utask/internal/service"
)

// ServiceFactory creates a Service from config.
// Used to inject the backend during dispatch.
type ServiceFactory func(ctx context.Context, cfg *config.Config) (service.Service, error)

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	factory  ServiceFactory
}

// NewDispatcher creates a new dispatcher with the given registry and service factory.
func NewDispatcher(registry *commands.Registry, factory ServiceFactory) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		factory:  factory,
	}
}

// Run parses arguments and dispatches to the appropriate command.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	// No args -> list users
	if len(args) == 0 {
		return d.dispatch(ctx, "users", nil, out, errOut)
	}

	cmdName := args[0]

	// Flags require a command in front of them
	if strings.HasPrefix(cmdName, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	return d.dispatchCommand(ctx, cmd, args[1:], out, errOut)
}

func (d *Dispatcher) dispatch(ctx context.Context, cmdName string, args []string, out, errOut io.Writer) int {
	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}
	return d.dispatchCommand(ctx, cmd, args, out, errOut)
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, out, errOut io.Writer) int {
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves

	// Common flags
	var configDir string
	var apiURL string
	var quiet bool
	var debug bool

	fs.StringVar(&configDir, "config", "", "")
	fs.StringVar(&apiURL, "api", "", "")
	fs.BoolVar(&quiet, "quiet", false, "")
	fs.BoolVar(&debug, "debug", false, "")

	cmd.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		errStr := err.Error()

		if strings.Contains(errStr, "flag needs an argument") {
			parts := strings.Split(errStr, ":")
			flagPart := strings.TrimSpace(parts[0])
			flagPart = strings.TrimPrefix(flagPart, "flag ")
			fmt.Fprintf(errOut, "error: flag needs an argument: %s\n", flagPart)
			return exitcode.UserError
		}
		if strings.HasPrefix(errStr, "flag provided but not defined:") {
			flagName := strings.TrimPrefix(errStr, "flag provided but not defined: ")
			fmt.Fprintf(errOut, "error: unknown flag: %s\n", flagName)
			return exitcode.UserError
		}

		fmt.Fprintf(errOut, "error: %s\n", errStr)
		return exitcode.UserError
	}

	// A leading dash in the positionals means a flag slipped past parsing
	positionalArgs := fs.Args()
	if len(positionalArgs) > 0 && strings.HasPrefix(positionalArgs[0], "-") {
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", positionalArgs[0])
		return exitcode.UserError
	}

	cfg, err := config.Load(configDir)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.UserError
	}
	cfg.Quiet = quiet
	cfg.Debug = debug
	if apiURL != "" {
		cfg.API.BaseURL = apiURL
	}

	var svc service.Service
	if cmd.NeedsBackend() {
		if d.factory == nil {
			fmt.Fprintln(errOut, "error: no backend configured")
			return exitcode.UserError
		}
		svc, err = d.factory(ctx, cfg)
		if err != nil {
			fmt.Fprintf(errOut, "error: %s\n", err)
			return exitcode.UserError
		}
	}

	return cmd.Run(ctx, cfg, svc, positionalArgs, out, errOut)
}
