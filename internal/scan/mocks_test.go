package scan

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/HexHarvest_Go/internal/domain"
)

// MockRepository implements repository.ResourceInstance for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetHarvestableInstancesInCells(ctx context.Context, cellIDs []string) ([]domain.ResourceInstance, error) {
	args := m.Called(ctx, cellIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ResourceInstance), args.Error(1)
}
