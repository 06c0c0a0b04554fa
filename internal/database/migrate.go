package database

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/pressly/goose/v3/lock"

	"github.com/osse101/HexHarvest_Go/internal/logger"
	"github.com/osse101/HexHarvest_Go/migrations"
)

// Migrate applies every pending migration embedded in the binary.
// A Postgres advisory lock serialises concurrent replicas starting at once.
func Migrate(ctx context.Context, pool *pgxpool.Pool) (int, error) {
	return migrateFS(ctx, pool, migrations.FS)
}

func migrateFS(ctx context.Context, pool *pgxpool.Pool, fsys fs.FS) (applied int, err error) {
	log := logger.FromContext(ctx)

	db := stdlib.OpenDBFromPool(pool)
	defer func() {
		if cerr := db.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%s: %w", ErrMsgFailedToCloseMigrationDB, cerr)
		}
	}()

	locker, err := lock.NewPostgresSessionLocker()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCreateLocker, err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys,
		goose.WithSessionLocker(locker),
	)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCreateMigrator, err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToApplyMigrations, err)
	}

	for _, r := range results {
		log.Info(LogMsgMigrationApplied, "migration", r.String())
	}
	if len(results) == 0 {
		log.Info(LogMsgMigrationsUpToDate)
	}
	return len(results), nil
}
