package harvester

import (
	"context"
	"fmt"
	"maps"
	"math"
	"slices"
	"time"

	"github.com/osse101/HexHarvest_Go/internal/domain"
	"github.com/osse101/HexHarvest_Go/internal/logger"
	"github.com/osse101/HexHarvest_Go/internal/metrics"
	"github.com/osse101/HexHarvest_Go/internal/repository"
)

// Collect credits every whole unit accrued so far to the owner's inventory.
// Banked amounts and running windows are left in place; Collected tracks what was paid out.
func (s *service) Collect(ctx context.Context, ownerID, harvesterID string) (*domain.CollectResult, error) {
	log := logger.FromContext(ctx)
	log.Info("Collect called", "owner_id", ownerID, "harvester_id", harvesterID)

	now := s.clock.Now()
	var credited map[string]int

	err := s.inTx(ctx, func(tx repository.HarvesterTx) error {
		h, err := lockHarvester(ctx, tx, harvesterID)
		if err != nil {
			return err
		}
		if h.OwnerID != ownerID {
			return fmt.Errorf("%w: %s", domain.ErrNotOwner, harvesterID)
		}
		credited, err = s.collectInTx(ctx, tx, h, now)
		return err
	})
	if err != nil {
		return nil, err
	}

	recordCollected(credited)
	log.Info("Harvest collected", "harvester_id", harvesterID, "credited", credited)
	return &domain.CollectResult{HarvesterID: harvesterID, Credited: credited}, nil
}

// collectInTx pays out the whole units each operation has accrued at now
func (s *service) collectInTx(ctx context.Context, tx repository.HarvesterTx, h *domain.Harvester, now time.Time) (map[string]int, error) {
	ops, err := tx.GetOperations(ctx, h.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get operations: %w", err)
	}

	credited := make(map[string]int)
	var changed []domain.HarvestOperation
	for _, op := range ops {
		accrued, err := s.rates.AccruedAt(op.HarvestOperation, now)
		if err != nil {
			return nil, err
		}

		credit := math.Floor(op.PriorHarvested+accrued) - op.Collected
		if credit < 1 {
			continue
		}

		next := op.HarvestOperation
		next.Collected += credit
		changed = append(changed, next)
		credited[op.ResourceID] += int(credit)
	}

	if len(changed) == 0 {
		return credited, nil
	}

	if err := tx.UpdateOperations(ctx, changed); err != nil {
		return nil, fmt.Errorf("failed to record collected amounts: %w", err)
	}

	for _, resourceID := range slices.Sorted(maps.Keys(credited)) {
		if _, err := tx.AdjustInventory(ctx, h.OwnerID, resourceID, domain.ItemTypeResource, credited[resourceID]); err != nil {
			return nil, fmt.Errorf("failed to credit %s: %w", resourceID, err)
		}
	}
	return credited, nil
}

func recordCollected(credited map[string]int) {
	for resourceID, units := range credited {
		metrics.ResourcesCollected.WithLabelValues(resourceID).Add(float64(units))
	}
}
