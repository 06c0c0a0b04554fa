package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/osse101/HexHarvest_Go/internal/catalog"
	"github.com/osse101/HexHarvest_Go/internal/repository"
)

// SyncCatalog loads, validates, and syncs the resource catalog to the database.
// A missing catalog file is not an error; deployments may manage resources out of band.
func SyncCatalog(ctx context.Context, loader catalog.Loader, repo repository.ResourceCatalog, path string) error {
	slog.Info(LogMsgSyncingCatalog, "path", path)

	cfg, err := loader.Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Warn(LogMsgCatalogMissing, "path", path)
			return nil
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}

	if err := loader.Validate(cfg); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgInvalidCatalog, err)
	}

	if _, err := loader.SyncToDatabase(ctx, cfg, repo); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSyncCatalog, err)
	}
	return nil
}
