// Package harvester implements the energy and time accounting of deployed harvesters.
package harvester

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/HexHarvest_Go/internal/clock"
	"github.com/osse101/HexHarvest_Go/internal/domain"
	"github.com/osse101/HexHarvest_Go/internal/logger"
	"github.com/osse101/HexHarvest_Go/internal/repository"
	"github.com/osse101/HexHarvest_Go/internal/validation"
)

// InstanceFinder discovers harvestable resource instances around a cell
type InstanceFinder interface {
	FindHarvestableInstancesNear(ctx context.Context, cellID string, radius int) ([]domain.ResourceInstance, error)
}

// Service defines the harvester lifecycle and energy operations
type Service interface {
	// Grant creates an undeployed harvester in the owner's inventory
	Grant(ctx context.Context, ownerID, itemID string) (*domain.Harvester, error)
	// Deploy places a harvester in a cell and opens an operation per nearby instance
	Deploy(ctx context.Context, harvesterID, cellID string) (*domain.DeployResult, error)
	// TransferEnergy adds (positive) or withdraws (negative) energy
	TransferEnergy(ctx context.Context, harvesterID string, req TransferRequest) (*domain.Harvester, error)
	// Collect credits accrued whole units to the owner's inventory
	Collect(ctx context.Context, ownerID, harvesterID string) (*domain.CollectResult, error)
	// Reclaim collects, refunds energy and returns the harvester to inventory
	Reclaim(ctx context.Context, harvesterID string) (*domain.ReclaimResult, error)

	GetHarvester(ctx context.Context, harvesterID string) (*domain.Harvester, error)
	ListHarvesters(ctx context.Context, ownerID string) ([]domain.Harvester, error)
	GetStatus(ctx context.Context, harvesterID string) (*domain.HarvesterStatus, error)
}

// Config holds the service tunables
type Config struct {
	Rates             Rates
	InteractionRadius int
}

// DefaultConfig returns the stock tunables
func DefaultConfig() Config {
	return Config{
		Rates:             DefaultRates(),
		InteractionRadius: DefaultInteractionRadius,
	}
}

type service struct {
	repo    repository.HarvesterRepository
	finder  InstanceFinder
	schemas validation.SchemaValidator
	clock   clock.Clock
	rates   Rates
	radius  int
}

// NewService creates a new harvester service
func NewService(
	repo repository.HarvesterRepository,
	finder InstanceFinder,
	schemas validation.SchemaValidator,
	clk clock.Clock,
	cfg Config,
) Service {
	return &service{
		repo:    repo,
		finder:  finder,
		schemas: schemas,
		clock:   clk,
		rates:   cfg.Rates,
		radius:  cfg.InteractionRadius,
	}
}

// inTx runs fn in a transaction and commits when it succeeds
func (s *service) inTx(ctx context.Context, fn func(tx repository.HarvesterTx) error) error {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("Failed to begin transaction", "error", err)
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		logger.FromContext(ctx).Error("Failed to commit transaction", "error", err)
		return fmt.Errorf("%w: %w", domain.ErrCommitFailed, err)
	}
	return nil
}

// Grant creates an undeployed harvester and credits one harvester item to the owner
func (s *service) Grant(ctx context.Context, ownerID, itemID string) (*domain.Harvester, error) {
	log := logger.FromContext(ctx)
	if ownerID == "" || itemID == "" {
		return nil, fmt.Errorf("%w: owner and item are required", domain.ErrInvalidInput)
	}

	now := s.clock.Now()
	h := &domain.Harvester{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		ItemID:    itemID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.inTx(ctx, func(tx repository.HarvesterTx) error {
		if err := tx.CreateHarvester(ctx, h); err != nil {
			return fmt.Errorf("failed to create harvester: %w", err)
		}
		if _, err := tx.AdjustInventory(ctx, ownerID, itemID, domain.ItemTypeHarvester, 1); err != nil {
			return fmt.Errorf("failed to add harvester to inventory: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("Harvester granted", "harvester_id", h.ID, "owner_id", ownerID, "item_id", itemID)
	return h, nil
}

// GetHarvester retrieves a harvester by ID
func (s *service) GetHarvester(ctx context.Context, harvesterID string) (*domain.Harvester, error) {
	h, err := s.repo.GetHarvester(ctx, harvesterID)
	if err != nil {
		return nil, fmt.Errorf("failed to get harvester: %w", err)
	}
	return h, nil
}

// ListHarvesters lists the harvesters a user owns
func (s *service) ListHarvesters(ctx context.Context, ownerID string) ([]domain.Harvester, error) {
	harvesters, err := s.repo.GetHarvestersByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list harvesters: %w", err)
	}
	return harvesters, nil
}

// GetStatus returns the harvester with its remaining energy and operations as of now
func (s *service) GetStatus(ctx context.Context, harvesterID string) (*domain.HarvesterStatus, error) {
	now := s.clock.Now()

	h, err := s.repo.GetHarvester(ctx, harvesterID)
	if err != nil {
		return nil, fmt.Errorf("failed to get harvester: %w", err)
	}

	ops, err := s.repo.GetOperations(ctx, harvesterID)
	if err != nil {
		return nil, fmt.Errorf("failed to get operations: %w", err)
	}

	remaining := h.InitialEnergy
	if h.HasEnergy() {
		res, err := s.repo.GetResource(ctx, *h.EnergySourceID)
		if err != nil {
			return nil, fmt.Errorf("failed to get energy resource: %w", err)
		}
		eff, err := s.energyEfficiency(res)
		if err != nil {
			return nil, err
		}
		if remaining, err = s.rates.remainingAt(h, eff, now); err != nil {
			return nil, err
		}
	}

	return &domain.HarvesterStatus{
		Harvester:       h,
		RemainingEnergy: remaining,
		Operations:      ops,
		AsOf:            now,
	}, nil
}

// lockHarvester loads the harvester with a row lock
func lockHarvester(ctx context.Context, tx repository.HarvesterTx, harvesterID string) (*domain.Harvester, error) {
	h, err := tx.GetHarvesterForUpdate(ctx, harvesterID)
	if err != nil {
		if errors.Is(err, domain.ErrHarvesterNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to lock harvester: %w", err)
	}
	return h, nil
}

func timePtr(t time.Time) *time.Time { return &t }
