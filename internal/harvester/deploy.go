package harvester

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/HexHarvest_Go/internal/domain"
	"github.com/osse101/HexHarvest_Go/internal/logger"
	"github.com/osse101/HexHarvest_Go/internal/metrics"
	"github.com/osse101/HexHarvest_Go/internal/repository"
	"github.com/osse101/HexHarvest_Go/internal/saga"
	"github.com/osse101/HexHarvest_Go/internal/scan"
)

// Deploy places a harvester in a cell and opens an operation per nearby instance.
// The cell id is stored in canonical form so differently cased ids of one cell collide.
func (s *service) Deploy(ctx context.Context, harvesterID, cellID string) (*domain.DeployResult, error) {
	log := logger.FromContext(ctx)
	log.Info("Deploy called", "harvester_id", harvesterID, "cell_id", cellID)

	cell, err := scan.ParseCell(cellID)
	if err != nil {
		return nil, err
	}
	cellID = cell.String()

	now := s.clock.Now()
	var result *domain.DeployResult

	err = s.inTx(ctx, func(tx repository.HarvesterTx) error {
		h, err := lockHarvester(ctx, tx, harvesterID)
		if err != nil {
			return err
		}
		if h.IsDeployed() {
			return fmt.Errorf("%w: %s is in cell %s", domain.ErrAlreadyDeployed, h.ID, *h.DeployedCellID)
		}

		occupant, err := tx.GetDeployedHarvesterInCell(ctx, h.OwnerID, cellID)
		if err != nil {
			return fmt.Errorf("failed to check cell occupancy: %w", err)
		}
		if occupant != nil {
			return fmt.Errorf("%w: harvester %s already in %s", domain.ErrCellOccupied, occupant.ID, cellID)
		}

		instances, err := s.finder.FindHarvestableInstancesNear(ctx, cellID, s.radius)
		if err != nil {
			return fmt.Errorf("failed to discover resource instances: %w", err)
		}

		ops := make([]domain.HarvestOperation, 0, len(instances))
		for _, inst := range instances {
			if inst.ResetDeadline == nil {
				return fmt.Errorf("%w: instance %s", domain.ErrMissingResetDeadline, inst.ID)
			}
			ops = append(ops, domain.HarvestOperation{
				ID:                 uuid.NewString(),
				HarvesterID:        h.ID,
				ResourceInstanceID: inst.ID,
				EndTime:            timePtr(*inst.ResetDeadline),
			})
		}

		// Energy loaded before deployment keeps draining, so windows open right away
		if h.EnergyEndTime != nil && h.EnergyEndTime.After(now) {
			if ops, err = s.openWindows(ops, instances, now, *h.EnergyEndTime); err != nil {
				return err
			}
		}

		deployment := domain.HarvesterDeployment{CellID: &cellID, DeployedAt: timePtr(now)}

		deploy := saga.NewBuilder(SagaDeploy).
			Add(saga.NewStep(StepMarkDeployed,
				func(ctx context.Context) (struct{}, error) {
					return struct{}{}, tx.UpdateHarvesterDeployment(ctx, h.ID, deployment)
				},
				func(ctx context.Context, _ struct{}) error {
					return tx.UpdateHarvesterDeployment(ctx, h.ID, domain.HarvesterDeployment{})
				})).
			Add(saga.NewStep(StepRemoveFromInventory,
				func(ctx context.Context) (*domain.InventoryItem, error) {
					return tx.AdjustInventory(ctx, h.OwnerID, h.ItemID, domain.ItemTypeHarvester, -1)
				},
				func(ctx context.Context, _ *domain.InventoryItem) error {
					_, err := tx.AdjustInventory(ctx, h.OwnerID, h.ItemID, domain.ItemTypeHarvester, 1)
					return err
				})).
			AddIf(len(ops) > 0, saga.NewStep[int](StepCreateOperations,
				func(ctx context.Context) (int, error) {
					return len(ops), tx.CreateOperations(ctx, ops)
				},
				nil)).
			Build()

		if _, err := deploy.Execute(ctx); err != nil {
			return fmt.Errorf("deploy failed: %w", err)
		}

		h.DeployedCellID = deployment.CellID
		h.DeployedAt = deployment.DeployedAt
		result = &domain.DeployResult{Harvester: h, Operations: ops}
		return nil
	})
	if err != nil {
		log.Warn("Deploy failed", "harvester_id", harvesterID, "cell_id", cellID, "error", err)
		return nil, err
	}

	metrics.HarvestersDeployed.Inc()
	metrics.OperationsCreated.Add(float64(len(result.Operations)))
	log.Info("Harvester deployed", "harvester_id", harvesterID, "cell_id", cellID, "operations", len(result.Operations))
	return result, nil
}

// openWindows starts every new operation at now and caps it at the energy end
func (s *service) openWindows(ops []domain.HarvestOperation, instances []domain.ResourceInstance, now, energyEnd time.Time) ([]domain.HarvestOperation, error) {
	pending := make([]domain.HarvestOperationWithInstance, len(ops))
	for i, op := range ops {
		pending[i] = domain.HarvestOperationWithInstance{
			HarvestOperation: op,
			ResourceID:       instances[i].ResourceID,
			ResetDeadline:    instances[i].ResetDeadline,
		}
	}
	return s.rates.Recalculate(pending, now, energyEnd)
}
