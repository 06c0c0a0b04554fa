package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/HexHarvest_Go/internal/config"
)

const (
	waitMaxRetries    = 30
	waitRetryInterval = 2 * time.Second
)

type WaitForDBCommand struct{}

func (c *WaitForDBCommand) Name() string {
	return "wait-for-db"
}

func (c *WaitForDBCommand) Description() string {
	return "Wait for database to be ready (with retries)"
}

func (c *WaitForDBCommand) Run(ctx context.Context, args []string) error {
	ui.Header("Waiting for database...")

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	for i := 0; i < waitMaxRetries; i++ {
		err = ping(ctx, cfg.GetDBConnString())
		if err == nil {
			ui.Success("Database is ready")
			return nil
		}
		ui.Warn("Database not ready (%d/%d): %v", i+1, waitMaxRetries, err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitRetryInterval):
		}
	}

	return fmt.Errorf("database failed to become ready after %d attempts", waitMaxRetries)
}

func ping(ctx context.Context, connString string) error {
	ctx, cancel := context.WithTimeout(ctx, waitRetryInterval)
	defer cancel()

	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return err
	}
	defer pool.Close()
	return pool.Ping(ctx)
}
