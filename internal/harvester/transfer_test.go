package harvester

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HexHarvest_Go/internal/domain"
	"github.com/osse101/HexHarvest_Go/internal/saga"
)

// seedDeployed stores a deployed harvester with a short-lived and a long-lived operation
func seedDeployed(store *fakeStore) domain.Harvester {
	h := domain.Harvester{
		ID:             "h-1",
		OwnerID:        ownerID,
		ItemID:         harvesterItemID,
		DeployedCellID: strPtr(testCell),
		DeployedAt:     timePtr(t0.Add(-time.Hour)),
		CreatedAt:      t0.Add(-2 * time.Hour),
	}
	store.addHarvester(h)

	store.addInstance(domain.ResourceInstance{ID: "inst-near", ResourceID: copperID, CellID: testCell, ResetDeadline: hours(2)})
	store.addInstance(domain.ResourceInstance{ID: "inst-far", ResourceID: tinID, CellID: testCell, ResetDeadline: hours(10)})
	store.addOperation(domain.HarvestOperation{ID: "op-near", HarvesterID: h.ID, ResourceInstanceID: "inst-near", EndTime: hours(2)})
	store.addOperation(domain.HarvestOperation{ID: "op-far", HarvesterID: h.ID, ResourceInstanceID: "inst-far", EndTime: hours(10)})

	store.addEnergyResource(coalID, 0.5)
	store.addEnergyResource(peatID, 0.25)
	store.addResource(domain.Resource{ID: copperID, Name: "Copper", Category: domain.ResourceCategoryHarvestable})
	store.setInventory(ownerID, coalID, domain.ItemTypeResource, 20)
	return h
}

func TestTransferEnergy_AddFromEmpty(t *testing.T) {
	store := newFakeStore()
	h := seedDeployed(store)
	svc, _ := newTestService(t, store, nil)

	got, err := svc.TransferEnergy(context.Background(), h.ID, TransferRequest{Amount: 10, EnergyResourceID: coalID})

	require.NoError(t, err)
	// 10 units * 60 min * 0.5 efficiency = 5h of runtime
	assert.Equal(t, 10.0, got.InitialEnergy)
	assert.Equal(t, t0, *got.EnergyStartTime)
	assert.Equal(t, *hours(5), *got.EnergyEndTime)
	assert.Equal(t, coalID, *got.EnergySourceID)

	stored := store.harvester(h.ID)
	assert.Equal(t, got.Energy(), stored.Energy())

	near := store.operation("op-near")
	assert.Equal(t, *hours(2), *near.EndTime, "capped at the instance deadline")
	assert.Equal(t, t0, *near.StartTime)

	far := store.operation("op-far")
	assert.Equal(t, *hours(5), *far.EndTime, "capped at energy exhaustion")
	assert.Equal(t, t0, *far.StartTime)

	assert.Equal(t, 10, store.quantity(ownerID, coalID, domain.ItemTypeResource))
	assert.Equal(t, 1, store.commits)
}

func TestTransferEnergy_WithdrawPartial(t *testing.T) {
	store := newFakeStore()
	h := seedDeployed(store)
	svc, clk := newTestService(t, store, nil)
	ctx := context.Background()

	_, err := svc.TransferEnergy(ctx, h.ID, TransferRequest{Amount: 10, EnergyResourceID: coalID})
	require.NoError(t, err)

	clk.Advance(time.Hour)
	got, err := svc.TransferEnergy(ctx, h.ID, TransferRequest{Amount: -4, EnergyResourceID: coalID})

	require.NoError(t, err)
	// 10 - 60/(60*0.5) = 8 remaining, minus 4 withdrawn
	assert.InDelta(t, 4.0, got.InitialEnergy, 1e-6)
	assert.Equal(t, *hours(1), *got.EnergyStartTime)
	assert.Equal(t, 14, store.quantity(ownerID, coalID, domain.ItemTypeResource))

	near := store.operation("op-near")
	assert.InDelta(t, 6.0, near.PriorHarvested, 1e-9, "one hour banked at 0.1 per minute")
	assert.Equal(t, *hours(1), *near.StartTime)
}

func TestTransferEnergy_NegativeTotalIsConflictWithoutMutation(t *testing.T) {
	store := newFakeStore()
	h := seedDeployed(store)
	svc, _ := newTestService(t, store, nil)
	ctx := context.Background()

	_, err := svc.TransferEnergy(ctx, h.ID, TransferRequest{Amount: 2, EnergyResourceID: coalID, Inventory: NoInventory()})
	require.NoError(t, err)

	before := store.harvester(h.ID)
	opsBefore := store.operationsOf(h.ID)
	updatesBefore := store.calls["UpdateOperations"]

	_, err = svc.TransferEnergy(ctx, h.ID, TransferRequest{Amount: -5, EnergyResourceID: coalID})

	assert.ErrorIs(t, err, domain.ErrInsufficientEnergy)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, before, store.harvester(h.ID))
	assert.Equal(t, opsBefore, store.operationsOf(h.ID))
	assert.Equal(t, updatesBefore, store.calls["UpdateOperations"])
	assert.Equal(t, 20, store.quantity(ownerID, coalID, domain.ItemTypeResource))
}

func TestTransferEnergy_EnergyTypeMismatch(t *testing.T) {
	store := newFakeStore()
	h := seedDeployed(store)
	svc, clk := newTestService(t, store, nil)
	ctx := context.Background()

	_, err := svc.TransferEnergy(ctx, h.ID, TransferRequest{Amount: 10, EnergyResourceID: coalID})
	require.NoError(t, err)
	before := store.harvester(h.ID)

	clk.Advance(10 * time.Minute)
	_, err = svc.TransferEnergy(ctx, h.ID, TransferRequest{Amount: 1, EnergyResourceID: peatID, Inventory: NoInventory()})

	assert.ErrorIs(t, err, domain.ErrEnergyTypeMismatch)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, before, store.harvester(h.ID))
}

func TestTransferEnergy_SwitchTypeOnceDrained(t *testing.T) {
	store := newFakeStore()
	h := seedDeployed(store)
	svc, clk := newTestService(t, store, nil)
	ctx := context.Background()

	// One unit of coal lasts 30 minutes
	_, err := svc.TransferEnergy(ctx, h.ID, TransferRequest{Amount: 1, EnergyResourceID: coalID, Inventory: NoInventory()})
	require.NoError(t, err)

	clk.Advance(time.Hour)
	got, err := svc.TransferEnergy(ctx, h.ID, TransferRequest{Amount: 5, EnergyResourceID: peatID, Inventory: NoInventory()})

	require.NoError(t, err)
	assert.Equal(t, peatID, *got.EnergySourceID)
	assert.Equal(t, 5.0, got.InitialEnergy)
}

func TestTransferEnergy_ResourceChecks(t *testing.T) {
	tests := []struct {
		name       string
		resourceID string
		setup      func(*fakeStore)
		wantErr    error
		wantFamily error
	}{
		{
			name:       "unknown resource",
			resourceID: "res-unobtanium",
			wantErr:    domain.ErrResourceNotFound,
			wantFamily: domain.ErrNotFound,
		},
		{
			name:       "not an energy resource",
			resourceID: copperID,
			wantErr:    domain.ErrNotEnergyResource,
			wantFamily: domain.ErrNotFound,
		},
		{
			name:       "efficiency out of range",
			resourceID: "res-bad",
			setup: func(s *fakeStore) {
				s.addResource(domain.Resource{ID: "res-bad", Category: domain.ResourceCategoryEnergy, Metadata: []byte(`{"energyEfficiency": 2}`)})
			},
			wantErr:    domain.ErrInvalidMetadata,
			wantFamily: domain.ErrValidation,
		},
		{
			name:       "missing metadata",
			resourceID: "res-empty",
			setup: func(s *fakeStore) {
				s.addResource(domain.Resource{ID: "res-empty", Category: domain.ResourceCategoryEnergy})
			},
			wantErr:    domain.ErrInvalidMetadata,
			wantFamily: domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			h := seedDeployed(store)
			if tt.setup != nil {
				tt.setup(store)
			}
			svc, _ := newTestService(t, store, nil)
			before := store.harvester(h.ID)

			_, err := svc.TransferEnergy(context.Background(), h.ID, TransferRequest{Amount: 1, EnergyResourceID: tt.resourceID, Inventory: NoInventory()})

			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, tt.wantFamily)
			assert.Equal(t, before, store.harvester(h.ID))
		})
	}
}

func TestTransferEnergy_HarvesterNotFound(t *testing.T) {
	store := newFakeStore()
	seedDeployed(store)
	svc, _ := newTestService(t, store, nil)

	_, err := svc.TransferEnergy(context.Background(), "missing", TransferRequest{Amount: 1, EnergyResourceID: coalID})

	assert.ErrorIs(t, err, domain.ErrHarvesterNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTransferEnergy_InvalidInput(t *testing.T) {
	store := newFakeStore()
	h := seedDeployed(store)
	svc, _ := newTestService(t, store, nil)

	_, err := svc.TransferEnergy(context.Background(), h.ID, TransferRequest{Amount: 1})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, store.calls["BeginTx"])
}

func TestTransferEnergy_InventoryTargets(t *testing.T) {
	t.Run("fractional amount rejected when inventory is settled", func(t *testing.T) {
		store := newFakeStore()
		h := seedDeployed(store)
		svc, _ := newTestService(t, store, nil)

		_, err := svc.TransferEnergy(context.Background(), h.ID, TransferRequest{Amount: 2.5, EnergyResourceID: coalID})

		assert.ErrorIs(t, err, domain.ErrFractionalAmount)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("fractional amount allowed without inventory", func(t *testing.T) {
		store := newFakeStore()
		h := seedDeployed(store)
		svc, _ := newTestService(t, store, nil)

		got, err := svc.TransferEnergy(context.Background(), h.ID, TransferRequest{Amount: 2.5, EnergyResourceID: coalID, Inventory: NoInventory()})

		require.NoError(t, err)
		assert.Equal(t, 2.5, got.InitialEnergy)
		assert.Equal(t, 20, store.quantity(ownerID, coalID, domain.ItemTypeResource))
		assert.Zero(t, store.calls["AdjustInventory"])
	})

	t.Run("explicit user inventory", func(t *testing.T) {
		store := newFakeStore()
		h := seedDeployed(store)
		store.setInventory(otherUserID, coalID, domain.ItemTypeResource, 5)
		svc, _ := newTestService(t, store, nil)

		_, err := svc.TransferEnergy(context.Background(), h.ID, TransferRequest{Amount: 5, EnergyResourceID: coalID, Inventory: UserInventory(otherUserID)})

		require.NoError(t, err)
		assert.Equal(t, 0, store.quantity(otherUserID, coalID, domain.ItemTypeResource))
		assert.Equal(t, 20, store.quantity(ownerID, coalID, domain.ItemTypeResource))
	})
}

func TestTransferEnergy_ForcedTime(t *testing.T) {
	store := newFakeStore()
	h := seedDeployed(store)
	svc, clk := newTestService(t, store, nil)
	clk.Advance(time.Hour)
	at := *hours(0.5)

	got, err := svc.TransferEnergy(context.Background(), h.ID, TransferRequest{Amount: 4, EnergyResourceID: coalID, At: &at})

	require.NoError(t, err)
	assert.Equal(t, at, *got.EnergyStartTime)
	assert.Equal(t, at.Add(2*time.Hour), *got.EnergyEndTime)
}

func TestTransferEnergy_FutureTimeRejected(t *testing.T) {
	store := newFakeStore()
	h := seedDeployed(store)
	svc, _ := newTestService(t, store, nil)
	future := t0.Add(time.Minute)

	_, err := svc.TransferEnergy(context.Background(), h.ID, TransferRequest{Amount: 4, EnergyResourceID: coalID, At: &future})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.False(t, store.harvester(h.ID).HasEnergy())
	assert.Equal(t, 20, store.quantity(ownerID, coalID, domain.ItemTypeResource))
	assert.Zero(t, store.commits)

	// The harvester stays usable at the present time
	got, err := svc.TransferEnergy(context.Background(), h.ID, TransferRequest{Amount: 4, EnergyResourceID: coalID})
	require.NoError(t, err)
	assert.Equal(t, t0, *got.EnergyStartTime)
}

func TestTransferEnergy_BackdatedTimeRejected(t *testing.T) {
	tests := []struct {
		name   string
		prime  bool
		offset time.Duration
	}{
		{name: "before energy start", prime: true, offset: -30 * time.Minute},
		{name: "before deployment", offset: -2 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			h := seedDeployed(store)
			svc, clk := newTestService(t, store, nil)
			ctx := context.Background()

			if tt.prime {
				_, err := svc.TransferEnergy(ctx, h.ID, TransferRequest{Amount: 4, EnergyResourceID: coalID})
				require.NoError(t, err)
			}
			before := store.harvester(h.ID)
			beforeOps := store.operationsOf(h.ID)
			clk.Advance(time.Hour)
			at := t0.Add(tt.offset)

			_, err := svc.TransferEnergy(ctx, h.ID, TransferRequest{Amount: 2, EnergyResourceID: coalID, At: &at})

			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Equal(t, before, store.harvester(h.ID))
			assert.Equal(t, beforeOps, store.operationsOf(h.ID))
		})
	}
}

func TestTransferEnergy_NoOpenOperationsStillSucceeds(t *testing.T) {
	store := newFakeStore()
	seedDeployed(store)
	store.addHarvester(domain.Harvester{ID: "h-bare", OwnerID: ownerID, ItemID: harvesterItemID})
	svc, _ := newTestService(t, store, nil)

	got, err := svc.TransferEnergy(context.Background(), "h-bare", TransferRequest{Amount: 3, EnergyResourceID: coalID})

	require.NoError(t, err)
	assert.Equal(t, 3.0, got.InitialEnergy)
}

func TestTransferEnergy_HarvesterUpdateFailureRestoresOperations(t *testing.T) {
	store := newFakeStore()
	h := seedDeployed(store)
	store.failOn("UpdateHarvesterEnergy", errInjected)
	svc, _ := newTestService(t, store, nil)

	before := store.harvester(h.ID)
	opsBefore := store.operationsOf(h.ID)

	_, err := svc.TransferEnergy(context.Background(), h.ID, TransferRequest{Amount: 10, EnergyResourceID: coalID})

	require.Error(t, err)
	assert.ErrorIs(t, err, errInjected)
	var stepErr *saga.StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, StepUpdateHarvester, stepErr.Step)

	assert.Equal(t, before, store.harvester(h.ID))
	assert.Equal(t, opsBefore, store.operationsOf(h.ID))
	assert.Equal(t, 2, store.calls["UpdateOperations"], "applied then restored")
	assert.Equal(t, 20, store.quantity(ownerID, coalID, domain.ItemTypeResource))
	assert.Zero(t, store.commits)
}

func TestTransferEnergy_InventoryFailureRestoresState(t *testing.T) {
	store := newFakeStore()
	h := seedDeployed(store)
	store.setInventory(ownerID, coalID, domain.ItemTypeResource, 3)
	svc, _ := newTestService(t, store, nil)

	before := store.harvester(h.ID)
	opsBefore := store.operationsOf(h.ID)

	_, err := svc.TransferEnergy(context.Background(), h.ID, TransferRequest{Amount: 10, EnergyResourceID: coalID})

	assert.ErrorIs(t, err, domain.ErrInsufficientQuantity)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, before, store.harvester(h.ID))
	assert.Equal(t, opsBefore, store.operationsOf(h.ID))
	assert.Equal(t, 3, store.quantity(ownerID, coalID, domain.ItemTypeResource))
}

func TestTransferEnergy_CompensationFailure(t *testing.T) {
	store := newFakeStore()
	h := seedDeployed(store)
	undoErr := errors.New("restore failed")
	store.failOn("UpdateHarvesterEnergy", errInjected)
	store.failOnCall("UpdateOperations", 2, undoErr)
	svc, _ := newTestService(t, store, nil)

	_, err := svc.TransferEnergy(context.Background(), h.ID, TransferRequest{Amount: 10, EnergyResourceID: coalID})

	require.Error(t, err)
	assert.ErrorIs(t, err, saga.ErrCompensationFailed)
	assert.ErrorIs(t, err, undoErr)
	var compErr *saga.CompensationError
	require.ErrorAs(t, err, &compErr)
	assert.Equal(t, StepUpdateOperations, compErr.Step)
	assert.ErrorIs(t, compErr.Cause, errInjected)
}

func TestTransferEnergy_CommitFailure(t *testing.T) {
	store := newFakeStore()
	h := seedDeployed(store)
	store.failOn("Commit", errInjected)
	svc, _ := newTestService(t, store, nil)

	_, err := svc.TransferEnergy(context.Background(), h.ID, TransferRequest{Amount: 10, EnergyResourceID: coalID})

	assert.ErrorIs(t, err, domain.ErrCommitFailed)
	assert.ErrorIs(t, err, domain.ErrTransactionFailure)
	assert.Equal(t, 1, store.rollbacks)
}

func TestInventoryTarget_Resolve(t *testing.T) {
	user, ok := OwnerInventory().resolve(ownerID)
	assert.True(t, ok)
	assert.Equal(t, ownerID, user)

	var zero InventoryTarget
	user, ok = zero.resolve(ownerID)
	assert.True(t, ok)
	assert.Equal(t, ownerID, user)

	user, ok = UserInventory(otherUserID).resolve(ownerID)
	assert.True(t, ok)
	assert.Equal(t, otherUserID, user)

	_, ok = NoInventory().resolve(ownerID)
	assert.False(t, ok)
}
