package postgres

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/HexHarvest_Go/internal/database/generated"
	"github.com/osse101/HexHarvest_Go/internal/domain"
)

// adjustInventory locks the row, applies delta and deletes the row when it reaches zero
func adjustInventory(ctx context.Context, q *generated.Queries, userID, itemID string, itemType domain.ItemType, delta int) (*domain.InventoryItem, error) {
	current := 0
	row, err := q.GetInventoryItemForUpdate(ctx, generated.GetInventoryItemForUpdateParams{
		UserID:   userID,
		ItemID:   itemID,
		ItemType: string(itemType),
	})
	switch {
	case err == nil:
		current = int(row.Quantity)
	case errors.Is(err, pgx.ErrNoRows):
	default:
		return nil, mapPgError(err, ErrMsgFailedToGetInventoryItemForUpdate)
	}

	next := current + delta
	if next < 0 {
		return nil, fmt.Errorf("%w: %s has %d of %s, needs %d", domain.ErrInsufficientQuantity, userID, current, itemID, -delta)
	}
	if next > math.MaxInt32 {
		return nil, fmt.Errorf("%s: %s %s", ErrMsgInventoryQuantityOverflow, userID, itemID)
	}

	item := &domain.InventoryItem{UserID: userID, ItemID: itemID, ItemType: itemType, Quantity: next}

	if next == 0 {
		if current == 0 {
			return item, nil
		}
		err := q.DeleteInventoryItem(ctx, generated.DeleteInventoryItemParams{
			UserID:   userID,
			ItemID:   itemID,
			ItemType: string(itemType),
		})
		if err != nil {
			return nil, mapPgError(err, ErrMsgFailedToDeleteInventoryItem)
		}
		return item, nil
	}

	err = q.SetInventoryQuantity(ctx, generated.SetInventoryQuantityParams{
		UserID:   userID,
		ItemID:   itemID,
		ItemType: string(itemType),
		Quantity: int32(next),
	})
	if err != nil {
		return nil, mapPgError(err, ErrMsgFailedToSetInventoryQuantity)
	}
	return item, nil
}
