package domain

import (
	"encoding/json"
	"time"
)

// ResourceCategory classifies resource types
type ResourceCategory string

const (
	ResourceCategoryEnergy      ResourceCategory = "energy"
	ResourceCategoryHarvestable ResourceCategory = "harvestable"
)

// Resource is a resource type definition
type Resource struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Category ResourceCategory `json:"category"`
	Metadata json.RawMessage  `json:"metadata,omitempty"` // Opaque, validated per category
}

// EnergyMetadata is the decoded metadata of energy resources.
// Its shape is enforced by the energy metadata JSON schema before decoding.
type EnergyMetadata struct {
	EnergyEfficiency float64 `json:"energyEfficiency"`
}

// ResourceInstance is a harvestable deposit located in a cell
type ResourceInstance struct {
	ID            string     `json:"id"`
	ResourceID    string     `json:"resource_id"`
	CellID        string     `json:"cell_id"`
	ResetDeadline *time.Time `json:"reset_deadline,omitempty"`
}
