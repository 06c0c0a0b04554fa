package harvester

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/osse101/HexHarvest_Go/internal/clock"
	"github.com/osse101/HexHarvest_Go/internal/domain"
	"github.com/osse101/HexHarvest_Go/internal/repository"
	"github.com/osse101/HexHarvest_Go/internal/validation"
)

var (
	t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	errInjected = errors.New("injected failure")
)

const (
	ownerID         = "user-1"
	otherUserID     = "user-2"
	harvesterItemID = "item-harvester-mk1"
	coalID          = "res-coal"
	peatID          = "res-peat"
	copperID        = "res-copper"
	tinID           = "res-tin"
	testCell        = "8928308280fffff"
)

type invKey struct {
	user     string
	item     string
	itemType domain.ItemType
}

// fakeStore is an in-memory store whose writes apply immediately.
// Commit and Rollback only mark the tx closed, so any undo must come from saga compensation.
type fakeStore struct {
	mu         sync.Mutex
	harvesters map[string]domain.Harvester
	ops        map[string]domain.HarvestOperation
	opOrder    []string
	instances  map[string]domain.ResourceInstance
	resources  map[string]domain.Resource
	inventory  map[invKey]int
	failures   map[string]injected
	calls      map[string]int
	commits    int
	rollbacks  int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		harvesters: make(map[string]domain.Harvester),
		ops:        make(map[string]domain.HarvestOperation),
		instances:  make(map[string]domain.ResourceInstance),
		resources:  make(map[string]domain.Resource),
		inventory:  make(map[invKey]int),
		failures:   make(map[string]injected),
		calls:      make(map[string]int),
	}
}

type injected struct {
	err  error
	call int // 0 fails every call
}

// failOn makes every call of the named method return err
func (f *fakeStore) failOn(method string, err error) {
	f.failOnCall(method, 0, err)
}

// failOnCall makes only the n-th call of the named method return err
func (f *fakeStore) failOnCall(method string, n int, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[method] = injected{err: err, call: n}
}

// enter records a call and returns the injected failure, lock must be held
func (f *fakeStore) enter(method string) error {
	f.calls[method]++
	inj, ok := f.failures[method]
	if !ok {
		return nil
	}
	if inj.call == 0 || inj.call == f.calls[method] {
		return inj.err
	}
	return nil
}

// --- fixtures ---

func (f *fakeStore) addEnergyResource(id string, efficiency float64) {
	f.addResource(domain.Resource{
		ID:       id,
		Name:     id,
		Category: domain.ResourceCategoryEnergy,
		Metadata: []byte(fmt.Sprintf(`{"energyEfficiency": %v}`, efficiency)),
	})
}

func (f *fakeStore) addResource(r domain.Resource) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resources[r.ID] = r
}

func (f *fakeStore) addHarvester(h domain.Harvester) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.harvesters[h.ID] = h
}

func (f *fakeStore) addInstance(inst domain.ResourceInstance) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.instances[inst.ID] = inst
}

func (f *fakeStore) addOperation(op domain.HarvestOperation) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ops[op.ID] = op
	f.opOrder = append(f.opOrder, op.ID)
}

func (f *fakeStore) setInventory(user, item string, itemType domain.ItemType, qty int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inventory[invKey{user, item, itemType}] = qty
}

func (f *fakeStore) quantity(user, item string, itemType domain.ItemType) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.inventory[invKey{user, item, itemType}]
}

// harvester returns a copy of the stored row, nil when absent
func (f *fakeStore) harvester(id string) *domain.Harvester {
	f.mu.Lock()
	defer f.mu.Unlock()
	h, ok := f.harvesters[id]
	if !ok {
		return nil
	}
	return &h
}

func (f *fakeStore) operation(id string) domain.HarvestOperation {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ops[id]
}

func (f *fakeStore) operationsOf(harvesterID string) []domain.HarvestOperation {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.HarvestOperation
	for _, id := range f.opOrder {
		if op, ok := f.ops[id]; ok && op.HarvesterID == harvesterID {
			out = append(out, op)
		}
	}
	return out
}

// --- repository.HarvesterRepository ---

func (f *fakeStore) GetHarvester(ctx context.Context, harvesterID string) (*domain.Harvester, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("GetHarvester"); err != nil {
		return nil, err
	}
	h, ok := f.harvesters[harvesterID]
	if !ok {
		return nil, domain.ErrHarvesterNotFound
	}
	return &h, nil
}

func (f *fakeStore) GetHarvestersByOwner(ctx context.Context, owner string) ([]domain.Harvester, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("GetHarvestersByOwner"); err != nil {
		return nil, err
	}
	var out []domain.Harvester
	for _, h := range f.harvesters {
		if h.OwnerID == owner {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeStore) GetOperations(ctx context.Context, harvesterID string) ([]domain.HarvestOperationWithInstance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("GetOperations"); err != nil {
		return nil, err
	}
	var out []domain.HarvestOperationWithInstance
	for _, id := range f.opOrder {
		op, ok := f.ops[id]
		if !ok || op.HarvesterID != harvesterID {
			continue
		}
		inst := f.instances[op.ResourceInstanceID]
		out = append(out, domain.HarvestOperationWithInstance{
			HarvestOperation: op,
			ResourceID:       inst.ResourceID,
			ResetDeadline:    inst.ResetDeadline,
		})
	}
	return out, nil
}

func (f *fakeStore) GetResource(ctx context.Context, resourceID string) (*domain.Resource, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("GetResource"); err != nil {
		return nil, err
	}
	r, ok := f.resources[resourceID]
	if !ok {
		return nil, domain.ErrResourceNotFound
	}
	return &r, nil
}

func (f *fakeStore) GetInventoryItem(ctx context.Context, userID, itemID string, itemType domain.ItemType) (*domain.InventoryItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &domain.InventoryItem{
		UserID:   userID,
		ItemID:   itemID,
		ItemType: itemType,
		Quantity: f.inventory[invKey{userID, itemID, itemType}],
	}, nil
}

func (f *fakeStore) BeginTx(ctx context.Context) (repository.HarvesterTx, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("BeginTx"); err != nil {
		return nil, err
	}
	return &fakeTx{fakeStore: f}, nil
}

// --- repository.HarvesterTx ---

type fakeTx struct {
	*fakeStore
	closed bool
}

func (t *fakeTx) Commit(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.enter("Commit"); err != nil {
		return err
	}
	t.closed = true
	t.commits++
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return errors.New(domain.ErrMsgTxClosed)
	}
	t.closed = true
	t.rollbacks++
	return nil
}

func (f *fakeStore) CreateHarvester(ctx context.Context, h *domain.Harvester) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("CreateHarvester"); err != nil {
		return err
	}
	f.harvesters[h.ID] = *h
	return nil
}

func (f *fakeStore) GetHarvesterForUpdate(ctx context.Context, harvesterID string) (*domain.Harvester, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("GetHarvesterForUpdate"); err != nil {
		return nil, err
	}
	h, ok := f.harvesters[harvesterID]
	if !ok {
		return nil, domain.ErrHarvesterNotFound
	}
	return &h, nil
}

func (f *fakeStore) GetDeployedHarvesterInCell(ctx context.Context, owner, cellID string) (*domain.Harvester, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, h := range f.harvesters {
		if h.OwnerID == owner && h.DeployedCellID != nil && *h.DeployedCellID == cellID {
			return &h, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) UpdateHarvesterEnergy(ctx context.Context, harvesterID string, energy domain.HarvesterEnergy) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("UpdateHarvesterEnergy"); err != nil {
		return err
	}
	h, ok := f.harvesters[harvesterID]
	if !ok {
		return domain.ErrHarvesterNotFound
	}
	h.SetEnergy(energy)
	f.harvesters[harvesterID] = h
	return nil
}

func (f *fakeStore) UpdateHarvesterDeployment(ctx context.Context, harvesterID string, d domain.HarvesterDeployment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("UpdateHarvesterDeployment"); err != nil {
		return err
	}
	h, ok := f.harvesters[harvesterID]
	if !ok {
		return domain.ErrHarvesterNotFound
	}
	h.DeployedCellID = d.CellID
	h.DeployedAt = d.DeployedAt
	f.harvesters[harvesterID] = h
	return nil
}

func (f *fakeStore) CreateOperations(ctx context.Context, ops []domain.HarvestOperation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("CreateOperations"); err != nil {
		return err
	}
	for _, op := range ops {
		f.ops[op.ID] = op
		f.opOrder = append(f.opOrder, op.ID)
	}
	return nil
}

func (f *fakeStore) UpdateOperations(ctx context.Context, ops []domain.HarvestOperation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("UpdateOperations"); err != nil {
		return err
	}
	for _, op := range ops {
		if _, ok := f.ops[op.ID]; !ok {
			return fmt.Errorf("%w: %s", domain.ErrOperationNotFound, op.ID)
		}
	}
	for _, op := range ops {
		f.ops[op.ID] = op
	}
	return nil
}

func (f *fakeStore) DeleteOperations(ctx context.Context, harvesterID string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("DeleteOperations"); err != nil {
		return 0, err
	}
	n := 0
	for id, op := range f.ops {
		if op.HarvesterID == harvesterID {
			delete(f.ops, id)
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) AdjustInventory(ctx context.Context, userID, itemID string, itemType domain.ItemType, delta int) (*domain.InventoryItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("AdjustInventory"); err != nil {
		return nil, err
	}
	key := invKey{userID, itemID, itemType}
	next := f.inventory[key] + delta
	if next < 0 {
		return nil, fmt.Errorf("%w: %s has %d %s", domain.ErrInsufficientQuantity, userID, f.inventory[key], itemID)
	}
	if next == 0 {
		delete(f.inventory, key)
	} else {
		f.inventory[key] = next
	}
	return &domain.InventoryItem{UserID: userID, ItemID: itemID, ItemType: itemType, Quantity: next}, nil
}

// --- service wiring ---

func newTestService(t *testing.T, store *fakeStore, finder InstanceFinder) (*service, *clock.Simulated) {
	t.Helper()
	clk := clock.NewSimulated(t0)
	svc := NewService(store, finder, validation.NewSchemaValidator(), clk, DefaultConfig())
	s, ok := svc.(*service)
	require.True(t, ok)
	return s, clk
}

func strPtr(s string) *string { return &s }
