package harvester

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/osse101/HexHarvest_Go/internal/domain"
	"github.com/osse101/HexHarvest_Go/internal/logger"
	"github.com/osse101/HexHarvest_Go/internal/metrics"
	"github.com/osse101/HexHarvest_Go/internal/repository"
	"github.com/osse101/HexHarvest_Go/internal/saga"
)

type inventoryMode int

const (
	inventoryOwner inventoryMode = iota
	inventoryUser
	inventoryNone
)

// InventoryTarget selects whose inventory an energy transfer settles against.
// The zero value is the harvester owner.
type InventoryTarget struct {
	mode   inventoryMode
	userID string
}

// OwnerInventory settles against the harvester owner
func OwnerInventory() InventoryTarget { return InventoryTarget{} }

// UserInventory settles against an explicit user
func UserInventory(userID string) InventoryTarget {
	return InventoryTarget{mode: inventoryUser, userID: userID}
}

// NoInventory skips inventory accounting entirely
func NoInventory() InventoryTarget { return InventoryTarget{mode: inventoryNone} }

// resolve returns the user to settle against, false when inventory is skipped
func (t InventoryTarget) resolve(ownerID string) (string, bool) {
	switch t.mode {
	case inventoryNone:
		return "", false
	case inventoryUser:
		return t.userID, true
	default:
		return ownerID, true
	}
}

// TransferRequest describes an energy transfer
type TransferRequest struct {
	Amount           float64 // Positive adds energy, negative withdraws
	EnergyResourceID string
	At               *time.Time // nil means now
	Inventory        InventoryTarget
}

// TransferEnergy adds or withdraws energy and re-plans every open operation
func (s *service) TransferEnergy(ctx context.Context, harvesterID string, req TransferRequest) (*domain.Harvester, error) {
	log := logger.FromContext(ctx)
	log.Info("TransferEnergy called", "harvester_id", harvesterID, "amount", req.Amount, "energy_resource_id", req.EnergyResourceID)

	direction := metrics.DirectionAdd
	if req.Amount < 0 {
		direction = metrics.DirectionWithdraw
	}

	if req.EnergyResourceID == "" || math.IsNaN(req.Amount) || math.IsInf(req.Amount, 0) {
		metrics.EnergyTransfers.WithLabelValues(direction, metrics.OutcomeFailed).Inc()
		return nil, fmt.Errorf("%w: energy resource and finite amount are required", domain.ErrInvalidInput)
	}

	now := s.clock.Now()
	at := now
	if req.At != nil {
		if req.At.After(now) {
			metrics.EnergyTransfers.WithLabelValues(direction, metrics.OutcomeFailed).Inc()
			return nil, fmt.Errorf("%w: transfer time %s is after now %s", domain.ErrInvalidInput, req.At.Format(time.RFC3339), now.Format(time.RFC3339))
		}
		at = *req.At
	}

	var updated *domain.Harvester
	err := s.inTx(ctx, func(tx repository.HarvesterTx) error {
		h, err := lockHarvester(ctx, tx, harvesterID)
		if err != nil {
			return err
		}
		if err := checkBackdate(h, at); err != nil {
			return err
		}
		updated, err = s.transferInTx(ctx, tx, h, req, at)
		return err
	})
	if err != nil {
		metrics.EnergyTransfers.WithLabelValues(direction, metrics.OutcomeFailed).Inc()
		log.Warn("Energy transfer failed", "harvester_id", harvesterID, "error", err)
		return nil, err
	}

	metrics.EnergyTransfers.WithLabelValues(direction, metrics.OutcomeSuccess).Inc()
	metrics.EnergyUnits.WithLabelValues(direction).Add(math.Abs(req.Amount))
	log.Info("Energy transferred",
		"harvester_id", harvesterID,
		"initial_energy", updated.InitialEnergy,
		"energy_end_time", updated.EnergyEndTime)
	return updated, nil
}

// checkBackdate rejects a transfer time that precedes the current energy window or the deployment
func checkBackdate(h *domain.Harvester, at time.Time) error {
	if h.EnergyStartTime != nil && at.Before(*h.EnergyStartTime) {
		return fmt.Errorf("%w: transfer time %s precedes energy start %s",
			domain.ErrInvalidInput, at.Format(time.RFC3339), h.EnergyStartTime.Format(time.RFC3339))
	}
	if h.DeployedAt != nil && at.Before(*h.DeployedAt) {
		return fmt.Errorf("%w: transfer time %s precedes deployment %s",
			domain.ErrInvalidInput, at.Format(time.RFC3339), h.DeployedAt.Format(time.RFC3339))
	}
	return nil
}

// transferInTx runs the transfer against a harvester already locked in tx
func (s *service) transferInTx(ctx context.Context, tx repository.HarvesterTx, h *domain.Harvester, req TransferRequest, at time.Time) (*domain.Harvester, error) {
	log := logger.FromContext(ctx)

	switching := h.HasEnergy() && *h.EnergySourceID != req.EnergyResourceID
	if switching {
		if err := s.ensureDrained(ctx, tx, h, at); err != nil {
			return nil, err
		}
	}

	res, err := tx.GetResource(ctx, req.EnergyResourceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get energy resource: %w", err)
	}
	eff, err := s.energyEfficiency(res)
	if err != nil {
		return nil, err
	}

	remaining := 0.0
	if !switching {
		if remaining, err = s.rates.remainingAt(h, eff, at); err != nil {
			return nil, err
		}
	}

	newTotal := remaining + req.Amount
	if newTotal < 0 {
		return nil, fmt.Errorf("%w: %.4f remaining, transfer of %.4f", domain.ErrInsufficientEnergy, remaining, req.Amount)
	}

	inventoryUserID, settle := req.Inventory.resolve(h.OwnerID)
	if settle && req.Amount != math.Trunc(req.Amount) {
		return nil, fmt.Errorf("%w: %v", domain.ErrFractionalAmount, req.Amount)
	}

	newEnd := at.Add(s.rates.EnergyDuration(newTotal, eff))

	ops, err := tx.GetOperations(ctx, h.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get operations: %w", err)
	}
	originals := make([]domain.HarvestOperation, len(ops))
	for i, op := range ops {
		originals[i] = op.HarvestOperation
	}
	recalculated, err := s.rates.Recalculate(ops, at, newEnd)
	if err != nil {
		return nil, err
	}

	prevEnergy := h.Energy()
	sourceID := req.EnergyResourceID
	nextEnergy := domain.HarvesterEnergy{
		InitialEnergy:   newTotal,
		EnergyStartTime: timePtr(at),
		EnergyEndTime:   timePtr(newEnd),
		EnergySourceID:  &sourceID,
	}
	delta := int(-req.Amount)

	transfer := saga.NewBuilder(SagaTransferEnergy).
		Add(saga.NewStep(StepUpdateOperations,
			func(ctx context.Context) (int, error) {
				if err := tx.UpdateOperations(ctx, recalculated); err != nil {
					return 0, err
				}
				open := countOpen(recalculated)
				if open == 0 {
					log.Warn("No open harvest operations after recalculation", "harvester_id", h.ID, "operations", len(recalculated))
				}
				return open, nil
			},
			func(ctx context.Context, _ int) error {
				return tx.UpdateOperations(ctx, originals)
			})).
		Add(saga.NewStep(StepUpdateHarvester,
			func(ctx context.Context) (domain.HarvesterEnergy, error) {
				return prevEnergy, tx.UpdateHarvesterEnergy(ctx, h.ID, nextEnergy)
			},
			func(ctx context.Context, prev domain.HarvesterEnergy) error {
				return tx.UpdateHarvesterEnergy(ctx, h.ID, prev)
			})).
		AddIf(settle && delta != 0, saga.NewStep[*domain.InventoryItem](StepAdjustInventory,
			func(ctx context.Context) (*domain.InventoryItem, error) {
				return tx.AdjustInventory(ctx, inventoryUserID, req.EnergyResourceID, domain.ItemTypeResource, delta)
			},
			nil)).
		Build()

	if _, err := transfer.Execute(ctx); err != nil {
		return nil, fmt.Errorf("energy transfer failed: %w", err)
	}

	h.SetEnergy(nextEnergy)
	return h, nil
}

// ensureDrained fails unless the currently loaded energy is used up
func (s *service) ensureDrained(ctx context.Context, tx repository.HarvesterTx, h *domain.Harvester, at time.Time) error {
	current, err := tx.GetResource(ctx, *h.EnergySourceID)
	if err != nil {
		return fmt.Errorf("failed to get loaded energy resource: %w", err)
	}
	eff, err := s.energyEfficiency(current)
	if err != nil {
		return err
	}
	remaining, err := s.rates.remainingAt(h, eff, at)
	if err != nil {
		return err
	}
	if remaining > 0 {
		return fmt.Errorf("%w: %.4f units of %s remain", domain.ErrEnergyTypeMismatch, remaining, *h.EnergySourceID)
	}
	return nil
}
