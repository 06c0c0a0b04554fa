package harvester

import (
	"encoding/json"
	"fmt"

	"github.com/osse101/HexHarvest_Go/internal/domain"
	"github.com/osse101/HexHarvest_Go/internal/validation"
)

// energyEfficiency validates an energy resource and decodes its efficiency
func (s *service) energyEfficiency(res *domain.Resource) (float64, error) {
	if res.Category != domain.ResourceCategoryEnergy {
		return 0, fmt.Errorf("%w: %s has category %q", domain.ErrNotEnergyResource, res.ID, res.Category)
	}

	if err := s.schemas.ValidateBytes(res.Metadata, validation.SchemaEnergyMetadata); err != nil {
		return 0, fmt.Errorf("%w: resource %s: %v", domain.ErrInvalidMetadata, res.ID, err)
	}

	var meta domain.EnergyMetadata
	if err := json.Unmarshal(res.Metadata, &meta); err != nil {
		return 0, fmt.Errorf("%w: resource %s: %v", domain.ErrInvalidMetadata, res.ID, err)
	}
	return meta.EnergyEfficiency, nil
}
