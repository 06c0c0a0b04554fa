package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/HexHarvest_Go/internal/database/generated"
	"github.com/osse101/HexHarvest_Go/internal/domain"
)

// ResourceRepository implements repository.ResourceInstance and seeds resource rows
type ResourceRepository struct {
	db *pgxpool.Pool
	q  *generated.Queries
}

// NewResourceRepository creates a new resource repository
func NewResourceRepository(db *pgxpool.Pool) *ResourceRepository {
	return &ResourceRepository{
		db: db,
		q:  generated.New(db),
	}
}

// GetResource retrieves a resource type by ID
func (r *ResourceRepository) GetResource(ctx context.Context, resourceID string) (*domain.Resource, error) {
	return getResource(ctx, r.q, resourceID)
}

// GetHarvestableInstancesInCells lists harvestable instances located in any of the cells
func (r *ResourceRepository) GetHarvestableInstancesInCells(ctx context.Context, cellIDs []string) ([]domain.ResourceInstance, error) {
	if len(cellIDs) == 0 {
		return []domain.ResourceInstance{}, nil
	}

	rows, err := r.q.GetHarvestableInstancesInCells(ctx, cellIDs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryInstances, err)
	}

	instances := make([]domain.ResourceInstance, 0, len(rows))
	for _, row := range rows {
		instances = append(instances, domain.ResourceInstance{
			ID:            row.ResourceInstanceID,
			ResourceID:    row.ResourceID,
			CellID:        row.CellID,
			ResetDeadline: ptrTime(row.ResetDeadline),
		})
	}
	return instances, nil
}

// UpsertResource inserts or replaces a resource type definition
func (r *ResourceRepository) UpsertResource(ctx context.Context, res domain.Resource) error {
	var metadata []byte
	if len(res.Metadata) > 0 {
		metadata = res.Metadata
	}

	err := r.q.UpsertResource(ctx, generated.UpsertResourceParams{
		ResourceID: res.ID,
		Name:       res.Name,
		Category:   string(res.Category),
		Metadata:   metadata,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertResource, err)
	}
	return nil
}

// UpsertResourceInstance inserts or moves a resource instance
func (r *ResourceRepository) UpsertResourceInstance(ctx context.Context, inst domain.ResourceInstance) error {
	err := r.q.UpsertResourceInstance(ctx, generated.UpsertResourceInstanceParams{
		ResourceInstanceID: inst.ID,
		ResourceID:         inst.ResourceID,
		CellID:             inst.CellID,
		ResetDeadline:      toTimestamptz(inst.ResetDeadline),
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertResourceInstance, err)
	}
	return nil
}

func getResource(ctx context.Context, q *generated.Queries, resourceID string) (*domain.Resource, error) {
	row, err := q.GetResource(ctx, resourceID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrResourceNotFound, resourceID)
		}
		return nil, mapPgError(err, ErrMsgFailedToGetResource)
	}

	res := &domain.Resource{
		ID:       row.ResourceID,
		Name:     row.Name,
		Category: domain.ResourceCategory(row.Category),
	}
	if len(row.Metadata) > 0 {
		res.Metadata = json.RawMessage(row.Metadata)
	}
	return res, nil
}
