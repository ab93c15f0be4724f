// Package main is the entry point for the utask CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"utask/internal/backend/rest"
	"utask/internal/cli"
	"utask/internal/commands"
	"utask/internal/config"
	"utask/internal/logging"
	"utask/internal/service"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	factory := func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		log := logging.Discard()
		if cfg.Debug {
			log = logging.New(os.Stderr, logging.LevelDebug)
		}
		return rest.New(cfg, log)
	}

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}
