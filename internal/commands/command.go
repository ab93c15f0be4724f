// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"
	"os"

	"utask/internal/config"
	"utask/internal/logging"
	"utask/internal/service"
	"utask/internal/store"
)

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsBackend returns true if the command talks to the backend.
	// Commands like help and version return false.
	NeedsBackend() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command.
	// cfg is always provided; svc is nil if NeedsBackend() returns false.
	// args contains positional arguments after flag parsing.
	// Returns exit code.
	Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int
}

// newStore builds the entity store every backend command drives.
// All mutations go through the store so local state always mirrors the
// last-known-good backend state.
func newStore(cfg *config.Config, svc service.Service) *store.Store {
	return store.New(svc, newLogger(cfg))
}

func newLogger(cfg *config.Config) *logging.Logger {
	if cfg.Debug {
		return logging.New(os.Stderr, logging.LevelDebug)
	}
	return logging.Discard()
}
