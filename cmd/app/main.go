package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/HexHarvest_Go/internal/bootstrap"
	"github.com/osse101/HexHarvest_Go/internal/catalog"
	"github.com/osse101/HexHarvest_Go/internal/clock"
	"github.com/osse101/HexHarvest_Go/internal/config"
	"github.com/osse101/HexHarvest_Go/internal/database"
	"github.com/osse101/HexHarvest_Go/internal/database/postgres"
	"github.com/osse101/HexHarvest_Go/internal/harvester"
	"github.com/osse101/HexHarvest_Go/internal/scan"
	"github.com/osse101/HexHarvest_Go/internal/server"
	"github.com/osse101/HexHarvest_Go/internal/validation"
)

// @title HexHarvest API
// @version 1.0
// @description Energy and time accounting for harvesters deployed on an H3 grid.
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	initLogger(cfg)
	slog.Info(bootstrap.LogMsgStarting, "environment", cfg.Environment, "port", cfg.Port)

	if err := run(cfg); err != nil {
		slog.Error("Fatal error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxIdleTime, cfg.DBMaxLifetime)
	if err != nil {
		return err
	}

	if cfg.RunMigrations {
		if _, err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return err
		}
	}

	schemas := validation.NewSchemaValidator()
	clk := clock.NewReal()
	harvesterRepo := postgres.NewHarvesterRepository(pool)
	resourceRepo := postgres.NewResourceRepository(pool)

	if err := bootstrap.SyncCatalog(ctx, catalog.NewLoader(schemas, clk), resourceRepo, cfg.CatalogPath); err != nil {
		pool.Close()
		return err
	}

	finder, err := scan.NewService(resourceRepo, cfg.Game.ScanCacheSize)
	if err != nil {
		pool.Close()
		return err
	}

	harvesterSvc := harvester.NewService(harvesterRepo, finder, schemas, clk, harvester.Config{
		Rates: harvester.Rates{
			BaseMinutesPerUnit:      cfg.Game.BaseMinutesPerUnit,
			ExtractionRatePerMinute: cfg.Game.ExtractionRatePerMinute,
		},
		InteractionRadius: cfg.Game.InteractionRadius,
	})

	opts := server.Options{
		APIKey:             cfg.APIKey,
		TrustedProxies:     cfg.TrustedProxies,
		CORSAllowedOrigins: cfg.CORSOrigins,
	}
	if cfg.RateLimitPerSecond > 0 {
		opts.RateLimiter, err = server.NewClientRateLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst, cfg.RateLimitMaxClients)
		if err != nil {
			pool.Close()
			return err
		}
	}

	srv := server.NewServer(cfg.Port, opts, pool, harvesterSvc)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
	case err := <-serverErr:
		if err != nil {
			slog.Error("Server failed", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{Server: srv, DBPool: pool})
	return nil
}
