package harvester

import "time"

// Accounting constants
const (
	// Epsilon keeps the energy divisor away from zero at zero efficiency
	Epsilon = 1e-6

	DefaultBaseMinutesPerUnit      = 60.0
	DefaultExtractionRatePerMinute = 0.1
	DefaultInteractionRadius       = 1

	// maxEnergyDuration keeps projected runtimes inside time.Duration range
	maxEnergyDuration = 100 * 365 * 24 * time.Hour
)

// Saga names
const (
	SagaTransferEnergy = "transfer-energy"
	SagaDeploy         = "deploy-harvester"
	SagaReclaim        = "reclaim-harvester"
)

// Step names
const (
	StepUpdateOperations    = "update-operations"
	StepUpdateHarvester     = "update-harvester"
	StepAdjustInventory     = "adjust-inventory"
	StepMarkDeployed        = "mark-deployed"
	StepRemoveFromInventory = "remove-from-inventory"
	StepCreateOperations    = "create-operations"
	StepClearEnergy         = "clear-energy"
	StepClearDeployment     = "clear-deployment"
	StepRefundEnergy        = "refund-energy"
	StepReturnHarvester     = "return-harvester-item"
	StepDeleteOperations    = "delete-operations"
)
