package harvester

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/HexHarvest_Go/internal/domain"
)

// MockInstanceFinder implements InstanceFinder for testing
type MockInstanceFinder struct {
	mock.Mock
}

func (m *MockInstanceFinder) FindHarvestableInstancesNear(ctx context.Context, cellID string, radius int) ([]domain.ResourceInstance, error) {
	args := m.Called(ctx, cellID, radius)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ResourceInstance), args.Error(1)
}
