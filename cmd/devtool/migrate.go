package main

import (
	"context"
	"fmt"

	"github.com/osse101/HexHarvest_Go/internal/config"
	"github.com/osse101/HexHarvest_Go/internal/database"
)

type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Manage database migrations (up, status, create)"
}

func (c *MigrateCommand) Run(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("subcommand required: up, status, create")
	}

	switch args[0] {
	case "up":
		return c.up(ctx)
	case "create":
		if len(args) < 2 {
			return fmt.Errorf("migration name required for create")
		}
		return runTool(ctx, "go", "run", "github.com/pressly/goose/v3/cmd/goose",
			"-dir", "migrations", "create", args[1], "sql")
	default:
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		gooseArgs := []string{"run", "github.com/pressly/goose/v3/cmd/goose",
			"-dir", "migrations", "postgres", cfg.GetDBConnString()}
		return runTool(ctx, "go", append(gooseArgs, args...)...)
	}
}

// up applies the embedded migrations the same way the server does at startup
func (c *MigrateCommand) up(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), 1, cfg.DBMaxIdleTime, cfg.DBMaxLifetime)
	if err != nil {
		return err
	}
	defer pool.Close()

	applied, err := database.Migrate(ctx, pool)
	if err != nil {
		return err
	}
	ui.Success("Applied %d migration(s)", applied)
	return nil
}
