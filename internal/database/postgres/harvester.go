package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/HexHarvest_Go/internal/database/generated"
	"github.com/osse101/HexHarvest_Go/internal/domain"
	"github.com/osse101/HexHarvest_Go/internal/repository"
)

// HarvesterRepository implements repository.HarvesterRepository for PostgreSQL
type HarvesterRepository struct {
	db *pgxpool.Pool
	q  *generated.Queries
}

// NewHarvesterRepository creates a new harvester repository
func NewHarvesterRepository(db *pgxpool.Pool) *HarvesterRepository {
	return &HarvesterRepository{
		db: db,
		q:  generated.New(db),
	}
}

// GetHarvester retrieves a harvester by ID
func (r *HarvesterRepository) GetHarvester(ctx context.Context, harvesterID string) (*domain.Harvester, error) {
	return getHarvester(ctx, harvesterID, r.q.GetHarvester, ErrMsgFailedToGetHarvester)
}

// GetHarvestersByOwner lists every harvester a user owns, oldest first
func (r *HarvesterRepository) GetHarvestersByOwner(ctx context.Context, ownerID string) ([]domain.Harvester, error) {
	rows, err := r.q.GetHarvestersByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListHarvesters, err)
	}

	harvesters := make([]domain.Harvester, 0, len(rows))
	for _, row := range rows {
		harvesters = append(harvesters, *mapHarvester(row))
	}
	return harvesters, nil
}

// GetOperations lists a harvester's operations outside of a transaction
func (r *HarvesterRepository) GetOperations(ctx context.Context, harvesterID string) ([]domain.HarvestOperationWithInstance, error) {
	return getOperations(ctx, r.q, harvesterID)
}

// GetResource retrieves a resource type by ID
func (r *HarvesterRepository) GetResource(ctx context.Context, resourceID string) (*domain.Resource, error) {
	return getResource(ctx, r.q, resourceID)
}

// GetInventoryItem returns the quantity a user holds, 0 when the row does not exist
func (r *HarvesterRepository) GetInventoryItem(ctx context.Context, userID, itemID string, itemType domain.ItemType) (*domain.InventoryItem, error) {
	item := &domain.InventoryItem{UserID: userID, ItemID: itemID, ItemType: itemType}

	row, err := r.q.GetInventoryItem(ctx, generated.GetInventoryItemParams{
		UserID:   userID,
		ItemID:   itemID,
		ItemType: string(itemType),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return item, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetInventoryItem, err)
	}

	item.Quantity = int(row.Quantity)
	return item, nil
}

// BeginTx starts a serializable transaction and returns a HarvesterTx
func (r *HarvesterRepository) BeginTx(ctx context.Context) (repository.HarvesterTx, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &harvesterTx{
		tx: tx,
		q:  r.q.WithTx(tx),
	}, nil
}

// harvesterTx implements repository.HarvesterTx
type harvesterTx struct {
	tx pgx.Tx
	q  *generated.Queries
}

// Commit commits the transaction
func (t *harvesterTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return mapPgError(err, ErrMsgFailedToCommitTransaction)
	}
	return nil
}

// Rollback rolls back the transaction
func (t *harvesterTx) Rollback(ctx context.Context) error {
	err := t.tx.Rollback(ctx)
	if errors.Is(err, pgx.ErrTxClosed) {
		return errors.New(domain.ErrMsgTxClosed)
	}
	return err
}

// savepoint runs fn inside a nested transaction. A failing statement rolls back
// to the savepoint only, so the outer transaction stays usable for compensation.
func (t *harvesterTx) savepoint(ctx context.Context, fn func(q *generated.Queries) error) error {
	sp, err := t.tx.Begin(ctx)
	if err != nil {
		return mapPgError(err, ErrMsgFailedToOpenSavepoint)
	}
	defer SafeRollback(ctx, sp)

	if err := fn(t.q.WithTx(sp)); err != nil {
		return err
	}

	if err := sp.Commit(ctx); err != nil {
		return mapPgError(err, ErrMsgFailedToReleaseSavepoint)
	}
	return nil
}

// CreateHarvester inserts a new undeployed harvester
func (t *harvesterTx) CreateHarvester(ctx context.Context, harvester *domain.Harvester) error {
	id, err := uuid.Parse(harvester.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgInvalidHarvesterID, err)
	}

	return t.savepoint(ctx, func(q *generated.Queries) error {
		err := q.CreateHarvester(ctx, generated.CreateHarvesterParams{
			HarvesterID: id,
			OwnerID:     harvester.OwnerID,
			ItemID:      harvester.ItemID,
			CreatedAt:   pgtype.Timestamptz{Time: harvester.CreatedAt, Valid: true},
		})
		if err != nil {
			return mapPgError(err, ErrMsgFailedToCreateHarvester)
		}
		return nil
	})
}

// GetHarvesterForUpdate retrieves the harvester with FOR UPDATE lock
func (t *harvesterTx) GetHarvesterForUpdate(ctx context.Context, harvesterID string) (*domain.Harvester, error) {
	return getHarvester(ctx, harvesterID, t.q.GetHarvesterForUpdate, ErrMsgFailedToGetHarvesterForUpdate)
}

// GetDeployedHarvesterInCell finds the owner's harvester deployed in a cell, nil when none
func (t *harvesterTx) GetDeployedHarvesterInCell(ctx context.Context, ownerID, cellID string) (*domain.Harvester, error) {
	row, err := t.q.GetDeployedHarvesterInCell(ctx, generated.GetDeployedHarvesterInCellParams{
		OwnerID:        ownerID,
		DeployedCellID: strToText(cellID),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, mapPgError(err, ErrMsgFailedToGetDeployedHarvester)
	}
	return mapHarvester(row), nil
}

// UpdateHarvesterEnergy persists the energy fields
func (t *harvesterTx) UpdateHarvesterEnergy(ctx context.Context, harvesterID string, energy domain.HarvesterEnergy) error {
	id, err := parseHarvesterUUID(harvesterID)
	if err != nil {
		return err
	}

	return t.savepoint(ctx, func(q *generated.Queries) error {
		n, err := q.UpdateHarvesterEnergy(ctx, generated.UpdateHarvesterEnergyParams{
			HarvesterID:     id,
			InitialEnergy:   energy.InitialEnergy,
			EnergyStartTime: toTimestamptz(energy.EnergyStartTime),
			EnergyEndTime:   toTimestamptz(energy.EnergyEndTime),
			EnergySourceID:  ptrToText(energy.EnergySourceID),
		})
		if err != nil {
			return mapPgError(err, ErrMsgFailedToUpdateHarvesterEnergy)
		}
		if n == 0 {
			return fmt.Errorf("%w: %s", domain.ErrHarvesterNotFound, harvesterID)
		}
		return nil
	})
}

// UpdateHarvesterDeployment persists the deployment fields.
// The partial unique index on (owner_id, deployed_cell_id) backs the one-per-cell rule.
func (t *harvesterTx) UpdateHarvesterDeployment(ctx context.Context, harvesterID string, deployment domain.HarvesterDeployment) error {
	id, err := parseHarvesterUUID(harvesterID)
	if err != nil {
		return err
	}

	return t.savepoint(ctx, func(q *generated.Queries) error {
		n, err := q.UpdateHarvesterDeployment(ctx, generated.UpdateHarvesterDeploymentParams{
			HarvesterID:    id,
			DeployedCellID: ptrToText(deployment.CellID),
			DeployedAt:     toTimestamptz(deployment.DeployedAt),
		})
		if err != nil {
			return mapPgError(err, ErrMsgFailedToUpdateHarvesterDeploment)
		}
		if n == 0 {
			return fmt.Errorf("%w: %s", domain.ErrHarvesterNotFound, harvesterID)
		}
		return nil
	})
}

// GetOperations lists a harvester's operations inside the transaction
func (t *harvesterTx) GetOperations(ctx context.Context, harvesterID string) ([]domain.HarvestOperationWithInstance, error) {
	return getOperations(ctx, t.q, harvesterID)
}

// CreateOperations inserts a batch of operations, all or none
func (t *harvesterTx) CreateOperations(ctx context.Context, ops []domain.HarvestOperation) error {
	if len(ops) == 0 {
		return nil
	}
	return t.savepoint(ctx, func(q *generated.Queries) error {
		for _, op := range ops {
			params, err := createOperationParams(op)
			if err != nil {
				return err
			}
			if err := q.CreateOperation(ctx, params); err != nil {
				return mapPgError(err, ErrMsgFailedToCreateOperation)
			}
		}
		return nil
	})
}

// UpdateOperations updates every operation or none; a missing row fails the batch
func (t *harvesterTx) UpdateOperations(ctx context.Context, ops []domain.HarvestOperation) error {
	if len(ops) == 0 {
		return nil
	}

	return t.savepoint(ctx, func(q *generated.Queries) error {
		for _, op := range ops {
			id, err := uuid.Parse(op.ID)
			if err != nil {
				return fmt.Errorf("%w: %s %q", domain.ErrOperationNotFound, ErrMsgInvalidOperationID, op.ID)
			}

			n, err := q.UpdateOperation(ctx, generated.UpdateOperationParams{
				OperationID:    id,
				StartTime:      toTimestamptz(op.StartTime),
				EndTime:        toTimestamptz(op.EndTime),
				PriorHarvested: op.PriorHarvested,
				Collected:      op.Collected,
				IsCompleted:    op.IsCompleted,
			})
			if err != nil {
				return mapPgError(err, ErrMsgFailedToUpdateOperation)
			}
			if n == 0 {
				return fmt.Errorf("%w: %s", domain.ErrOperationNotFound, op.ID)
			}
		}
		return nil
	})
}

// DeleteOperations removes every operation of a harvester and returns how many were removed
func (t *harvesterTx) DeleteOperations(ctx context.Context, harvesterID string) (int, error) {
	id, err := parseHarvesterUUID(harvesterID)
	if err != nil {
		return 0, err
	}

	var deleted int
	err = t.savepoint(ctx, func(q *generated.Queries) error {
		n, err := q.DeleteOperationsByHarvester(ctx, id)
		if err != nil {
			return mapPgError(err, ErrMsgFailedToDeleteOperations)
		}
		deleted = int(n)
		return nil
	})
	return deleted, err
}

// GetResource retrieves a resource type inside the transaction
func (t *harvesterTx) GetResource(ctx context.Context, resourceID string) (*domain.Resource, error) {
	return getResource(ctx, t.q, resourceID)
}

// AdjustInventory applies a signed delta to an inventory row
func (t *harvesterTx) AdjustInventory(ctx context.Context, userID, itemID string, itemType domain.ItemType, delta int) (*domain.InventoryItem, error) {
	var item *domain.InventoryItem
	err := t.savepoint(ctx, func(q *generated.Queries) error {
		var err error
		item, err = adjustInventory(ctx, q, userID, itemID, itemType, delta)
		return err
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// getHarvester is a helper to fetch and map a harvester with either the plain or the locking query
func getHarvester(ctx context.Context, harvesterID string, fetcher func(context.Context, uuid.UUID) (generated.Harvester, error), msg string) (*domain.Harvester, error) {
	id, err := parseHarvesterUUID(harvesterID)
	if err != nil {
		return nil, err
	}

	row, err := fetcher(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrHarvesterNotFound, harvesterID)
		}
		return nil, mapPgError(err, msg)
	}
	return mapHarvester(row), nil
}

func getOperations(ctx context.Context, q *generated.Queries, harvesterID string) ([]domain.HarvestOperationWithInstance, error) {
	id, err := parseHarvesterUUID(harvesterID)
	if err != nil {
		return nil, err
	}

	rows, err := q.GetOperationsByHarvester(ctx, id)
	if err != nil {
		return nil, mapPgError(err, ErrMsgFailedToGetOperations)
	}

	ops := make([]domain.HarvestOperationWithInstance, 0, len(rows))
	for _, row := range rows {
		ops = append(ops, domain.HarvestOperationWithInstance{
			HarvestOperation: domain.HarvestOperation{
				ID:                 row.OperationID.String(),
				HarvesterID:        row.HarvesterID.String(),
				ResourceInstanceID: row.ResourceInstanceID,
				StartTime:          ptrTime(row.StartTime),
				EndTime:            ptrTime(row.EndTime),
				PriorHarvested:     row.PriorHarvested,
				Collected:          row.Collected,
				IsCompleted:        row.IsCompleted,
			},
			ResourceID:    row.ResourceID,
			ResetDeadline: ptrTime(row.ResetDeadline),
		})
	}
	return ops, nil
}

func createOperationParams(op domain.HarvestOperation) (generated.CreateOperationParams, error) {
	opID, err := uuid.Parse(op.ID)
	if err != nil {
		return generated.CreateOperationParams{}, fmt.Errorf("%s %q: %w", ErrMsgInvalidOperationID, op.ID, err)
	}
	harvesterID, err := uuid.Parse(op.HarvesterID)
	if err != nil {
		return generated.CreateOperationParams{}, fmt.Errorf("%s %q: %w", ErrMsgInvalidHarvesterID, op.HarvesterID, err)
	}

	return generated.CreateOperationParams{
		OperationID:        opID,
		HarvesterID:        harvesterID,
		ResourceInstanceID: op.ResourceInstanceID,
		StartTime:          toTimestamptz(op.StartTime),
		EndTime:            toTimestamptz(op.EndTime),
		PriorHarvested:     op.PriorHarvested,
		Collected:          op.Collected,
		IsCompleted:        op.IsCompleted,
	}, nil
}
