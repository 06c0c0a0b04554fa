package repository

import (
	"context"

	"github.com/osse101/HexHarvest_Go/internal/domain"
)

// ResourceInstance defines read access to placed resource instances
type ResourceInstance interface {
	// GetHarvestableInstancesInCells lists harvestable instances located in any of the cells
	GetHarvestableInstancesInCells(ctx context.Context, cellIDs []string) ([]domain.ResourceInstance, error)
}

// ResourceCatalog writes resource definitions and placed instances
type ResourceCatalog interface {
	// UpsertResource inserts or replaces a resource type
	UpsertResource(ctx context.Context, res domain.Resource) error
	// UpsertResourceInstance inserts or replaces a placed instance
	UpsertResourceInstance(ctx context.Context, inst domain.ResourceInstance) error
}
