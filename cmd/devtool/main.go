package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	registry := NewRegistry()
	if err := registry.Register(&MigrateCommand{}, &WaitForDBCommand{}, &CheckCatalogCommand{}); err != nil {
		ui.Error("%v", err)
		os.Exit(1)
	}

	if len(os.Args) < 2 {
		registry.PrintHelp(os.Stderr)
		os.Exit(1)
	}

	cmd, ok := registry.Get(os.Args[1])
	if !ok {
		ui.Error("Unknown command: %s", os.Args[1])
		registry.PrintHelp(os.Stderr)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cmd.Run(ctx, os.Args[2:])
	stop()
	if err != nil {
		ui.Error("%s failed: %v", cmd.Name(), err)
		os.Exit(1)
	}
}
