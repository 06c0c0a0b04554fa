package repository

import (
	"context"

	"github.com/osse101/HexHarvest_Go/internal/domain"
)

// HarvesterRepository handles harvester persistence outside of a transaction
type HarvesterRepository interface {
	// GetHarvester retrieves a harvester by ID
	GetHarvester(ctx context.Context, harvesterID string) (*domain.Harvester, error)

	// GetHarvestersByOwner lists every harvester a user owns
	GetHarvestersByOwner(ctx context.Context, ownerID string) ([]domain.Harvester, error)

	// GetOperations lists a harvester's operations joined with their instances
	GetOperations(ctx context.Context, harvesterID string) ([]domain.HarvestOperationWithInstance, error)

	// GetResource retrieves a resource type by ID
	GetResource(ctx context.Context, resourceID string) (*domain.Resource, error)

	// GetInventoryItem returns the quantity held, 0 when the row does not exist
	GetInventoryItem(ctx context.Context, userID, itemID string, itemType domain.ItemType) (*domain.InventoryItem, error)

	// Transaction support
	BeginTx(ctx context.Context) (HarvesterTx, error)
}

// HarvesterTx defines the interface for harvester transactions.
// Implementations run with serializable isolation.
type HarvesterTx interface {
	Tx

	// CreateHarvester inserts a new undeployed harvester
	CreateHarvester(ctx context.Context, harvester *domain.Harvester) error

	// GetHarvesterForUpdate retrieves the harvester with FOR UPDATE lock
	GetHarvesterForUpdate(ctx context.Context, harvesterID string) (*domain.Harvester, error)

	// GetDeployedHarvesterInCell finds the owner's harvester deployed in a cell, nil when none
	GetDeployedHarvesterInCell(ctx context.Context, ownerID, cellID string) (*domain.Harvester, error)

	// UpdateHarvesterEnergy persists the energy fields
	UpdateHarvesterEnergy(ctx context.Context, harvesterID string, energy domain.HarvesterEnergy) error

	// UpdateHarvesterDeployment persists the deployment fields
	UpdateHarvesterDeployment(ctx context.Context, harvesterID string, deployment domain.HarvesterDeployment) error

	// Harvest operations
	GetOperations(ctx context.Context, harvesterID string) ([]domain.HarvestOperationWithInstance, error)
	CreateOperations(ctx context.Context, ops []domain.HarvestOperation) error
	// UpdateOperations updates every row or none
	UpdateOperations(ctx context.Context, ops []domain.HarvestOperation) error
	DeleteOperations(ctx context.Context, harvesterID string) (int, error)

	GetResource(ctx context.Context, resourceID string) (*domain.Resource, error)
}
