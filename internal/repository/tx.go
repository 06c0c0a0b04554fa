package repository

import (
	"context"

	"github.com/osse101/HexHarvest_Go/internal/domain"
)

// Tx defines the interface for transactional operations
type Tx interface {
	// AdjustInventory applies a signed delta; the row is removed when it reaches zero
	AdjustInventory(ctx context.Context, userID, itemID string, itemType domain.ItemType, delta int) (*domain.InventoryItem, error)
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
