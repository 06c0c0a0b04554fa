package domain

import "time"

// Harvester is an owned extraction device that can be placed in a cell and fuelled with energy
type Harvester struct {
	ID              string     `json:"id"`
	OwnerID         string     `json:"owner_id"`
	ItemID          string     `json:"item_id"` // Inventory item the harvester occupies while undeployed
	DeployedCellID  *string    `json:"deployed_cell_id,omitempty"`
	DeployedAt      *time.Time `json:"deployed_at,omitempty"`
	InitialEnergy   float64    `json:"initial_energy"` // Energy present at EnergyStartTime
	EnergyStartTime *time.Time `json:"energy_start_time,omitempty"`
	EnergyEndTime   *time.Time `json:"energy_end_time,omitempty"` // Projected exhaustion
	EnergySourceID  *string    `json:"energy_source_id,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// IsDeployed reports whether the harvester is placed in a cell
func (h *Harvester) IsDeployed() bool {
	return h.DeployedCellID != nil && h.DeployedAt != nil
}

// HasEnergy reports whether an energy resource has ever been loaded
func (h *Harvester) HasEnergy() bool {
	return h.EnergySourceID != nil
}

// Energy returns a copy of the energy-related fields
func (h *Harvester) Energy() HarvesterEnergy {
	return HarvesterEnergy{
		InitialEnergy:   h.InitialEnergy,
		EnergyStartTime: h.EnergyStartTime,
		EnergyEndTime:   h.EnergyEndTime,
		EnergySourceID:  h.EnergySourceID,
	}
}

// SetEnergy overwrites the energy-related fields
func (h *Harvester) SetEnergy(e HarvesterEnergy) {
	h.InitialEnergy = e.InitialEnergy
	h.EnergyStartTime = e.EnergyStartTime
	h.EnergyEndTime = e.EnergyEndTime
	h.EnergySourceID = e.EnergySourceID
}

// HarvesterEnergy is the subset of harvester fields mutated by an energy transfer
type HarvesterEnergy struct {
	InitialEnergy   float64
	EnergyStartTime *time.Time
	EnergyEndTime   *time.Time
	EnergySourceID  *string
}

// HarvesterDeployment is the subset of harvester fields mutated by deploy and reclaim
type HarvesterDeployment struct {
	CellID     *string
	DeployedAt *time.Time
}

// HarvestOperation is one harvester's extraction lease against one resource instance
type HarvestOperation struct {
	ID                 string     `json:"id"`
	HarvesterID        string     `json:"harvester_id"`
	ResourceInstanceID string     `json:"resource_instance_id"`
	StartTime          *time.Time `json:"start_time,omitempty"` // nil = not currently accruing
	EndTime            *time.Time `json:"end_time,omitempty"`
	PriorHarvested     float64    `json:"prior_harvested"` // Banked from closed windows, never decreases
	Collected          float64    `json:"collected"`       // Whole units already credited to inventory
	IsCompleted        bool       `json:"is_completed"`
}

// HarvestOperationWithInstance joins an operation with the instance it extracts from
type HarvestOperationWithInstance struct {
	HarvestOperation
	ResourceID    string     `json:"resource_id"`
	ResetDeadline *time.Time `json:"reset_deadline,omitempty"`
}

// HarvesterStatus is the read model returned to clients
type HarvesterStatus struct {
	Harvester       *Harvester                     `json:"harvester"`
	RemainingEnergy float64                        `json:"remaining_energy"`
	Operations      []HarvestOperationWithInstance `json:"operations"`
	AsOf            time.Time                      `json:"as_of"`
}

// DeployResult is the deployed harvester with the operations it opened
type DeployResult struct {
	Harvester  *Harvester         `json:"harvester"`
	Operations []HarvestOperation `json:"operations"`
}

// CollectResult summarises the yield credited by a collect
type CollectResult struct {
	HarvesterID string         `json:"harvester_id"`
	Credited    map[string]int `json:"credited"` // Resource ID -> units
}

// ReclaimResult summarises what a reclaim returned to the owner
type ReclaimResult struct {
	Harvester       *Harvester     `json:"harvester"`
	EnergyRefunded  int            `json:"energy_refunded"`
	Collected       map[string]int `json:"collected"`
	OperationsFreed int            `json:"operations_freed"`
}
