package harvester

import (
	"context"
	"fmt"
	"math"

	"github.com/osse101/HexHarvest_Go/internal/domain"
	"github.com/osse101/HexHarvest_Go/internal/logger"
	"github.com/osse101/HexHarvest_Go/internal/metrics"
	"github.com/osse101/HexHarvest_Go/internal/repository"
	"github.com/osse101/HexHarvest_Go/internal/saga"
)

// Reclaim collects outstanding yield, refunds unused energy, returns the harvester
// item to its owner and frees its operations
func (s *service) Reclaim(ctx context.Context, harvesterID string) (*domain.ReclaimResult, error) {
	log := logger.FromContext(ctx)
	log.Info("Reclaim called", "harvester_id", harvesterID)

	now := s.clock.Now()
	var result *domain.ReclaimResult

	err := s.inTx(ctx, func(tx repository.HarvesterTx) error {
		h, err := lockHarvester(ctx, tx, harvesterID)
		if err != nil {
			return err
		}
		if !h.IsDeployed() {
			return fmt.Errorf("%w: %s", domain.ErrNotDeployed, harvesterID)
		}

		// Yield must be paid out while the operations still exist
		collected, err := s.collectInTx(ctx, tx, h, now)
		if err != nil {
			return err
		}

		refund := 0
		if h.HasEnergy() {
			res, err := tx.GetResource(ctx, *h.EnergySourceID)
			if err != nil {
				return fmt.Errorf("failed to get energy resource: %w", err)
			}
			eff, err := s.energyEfficiency(res)
			if err != nil {
				return err
			}
			remaining, err := s.rates.remainingAt(h, eff, now)
			if err != nil {
				return err
			}
			refund = int(math.Floor(remaining))
		}

		prevEnergy := h.Energy()
		prevDeployment := domain.HarvesterDeployment{CellID: h.DeployedCellID, DeployedAt: h.DeployedAt}

		reclaim := saga.NewBuilder(SagaReclaim).
			Add(saga.NewStep(StepClearEnergy,
				func(ctx context.Context) (struct{}, error) {
					return struct{}{}, tx.UpdateHarvesterEnergy(ctx, h.ID, domain.HarvesterEnergy{})
				},
				func(ctx context.Context, _ struct{}) error {
					return tx.UpdateHarvesterEnergy(ctx, h.ID, prevEnergy)
				})).
			Add(saga.NewStep(StepClearDeployment,
				func(ctx context.Context) (struct{}, error) {
					return struct{}{}, tx.UpdateHarvesterDeployment(ctx, h.ID, domain.HarvesterDeployment{})
				},
				func(ctx context.Context, _ struct{}) error {
					return tx.UpdateHarvesterDeployment(ctx, h.ID, prevDeployment)
				})).
			AddIf(refund > 0, saga.NewStep(StepRefundEnergy,
				func(ctx context.Context) (*domain.InventoryItem, error) {
					return tx.AdjustInventory(ctx, h.OwnerID, *prevEnergy.EnergySourceID, domain.ItemTypeResource, refund)
				},
				func(ctx context.Context, _ *domain.InventoryItem) error {
					_, err := tx.AdjustInventory(ctx, h.OwnerID, *prevEnergy.EnergySourceID, domain.ItemTypeResource, -refund)
					return err
				})).
			Add(saga.NewStep(StepReturnHarvester,
				func(ctx context.Context) (*domain.InventoryItem, error) {
					return tx.AdjustInventory(ctx, h.OwnerID, h.ItemID, domain.ItemTypeHarvester, 1)
				},
				func(ctx context.Context, _ *domain.InventoryItem) error {
					_, err := tx.AdjustInventory(ctx, h.OwnerID, h.ItemID, domain.ItemTypeHarvester, -1)
					return err
				})).
			Add(saga.NewStep[int](StepDeleteOperations,
				func(ctx context.Context) (int, error) {
					return tx.DeleteOperations(ctx, h.ID)
				},
				nil)).
			Build()

		results, err := reclaim.Execute(ctx)
		if err != nil {
			return fmt.Errorf("reclaim failed: %w", err)
		}

		h.SetEnergy(domain.HarvesterEnergy{})
		h.DeployedCellID = nil
		h.DeployedAt = nil
		result = &domain.ReclaimResult{
			Harvester:       h,
			EnergyRefunded:  refund,
			Collected:       collected,
			OperationsFreed: results[len(results)-1].(int),
		}
		return nil
	})
	if err != nil {
		log.Warn("Reclaim failed", "harvester_id", harvesterID, "error", err)
		return nil, err
	}

	recordCollected(result.Collected)
	metrics.HarvestersReclaimed.Inc()
	log.Info("Harvester reclaimed",
		"harvester_id", harvesterID,
		"energy_refunded", result.EnergyRefunded,
		"operations_freed", result.OperationsFreed)
	return result, nil
}
