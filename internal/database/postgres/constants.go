package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
	// PgErrorCodeSerializationFailure is raised when a serializable transaction loses a conflict
	PgErrorCodeSerializationFailure = "40001"
	// PgErrorCodeDeadlockDetected is raised when two transactions wait on each other's row locks
	PgErrorCodeDeadlockDetected = "40P01"
)

// Constraint names referenced when mapping violations to domain errors
const (
	ConstraintHarvesterOwnerCell = "idx_harvesters_owner_cell"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
	ErrMsgFailedToOpenSavepoint     = "failed to open savepoint"
	ErrMsgFailedToReleaseSavepoint  = "failed to release savepoint"
)

// Error Messages - Harvester Operations
const (
	ErrMsgInvalidHarvesterID               = "invalid harvester id"
	ErrMsgFailedToCreateHarvester          = "failed to create harvester"
	ErrMsgFailedToGetHarvester             = "failed to get harvester"
	ErrMsgFailedToGetHarvesterForUpdate    = "failed to get harvester for update"
	ErrMsgFailedToListHarvesters           = "failed to list harvesters"
	ErrMsgFailedToGetDeployedHarvester     = "failed to get deployed harvester in cell"
	ErrMsgFailedToUpdateHarvesterEnergy    = "failed to update harvester energy"
	ErrMsgFailedToUpdateHarvesterDeploment = "failed to update harvester deployment"
)

// Error Messages - Operation Operations
const (
	ErrMsgInvalidOperationID       = "invalid operation id"
	ErrMsgFailedToGetOperations    = "failed to get harvest operations"
	ErrMsgFailedToCreateOperation  = "failed to create harvest operation"
	ErrMsgFailedToUpdateOperation  = "failed to update harvest operation"
	ErrMsgFailedToDeleteOperations = "failed to delete harvest operations"
)

// Error Messages - Resource Operations
const (
	ErrMsgFailedToGetResource            = "failed to get resource"
	ErrMsgFailedToUpsertResource         = "failed to upsert resource"
	ErrMsgFailedToUpsertResourceInstance = "failed to upsert resource instance"
	ErrMsgFailedToQueryInstances         = "failed to query resource instances"
)

// Error Messages - Inventory Operations
const (
	ErrMsgFailedToGetInventoryItem          = "failed to get inventory item"
	ErrMsgFailedToGetInventoryItemForUpdate = "failed to get inventory item for update"
	ErrMsgFailedToSetInventoryQuantity      = "failed to set inventory quantity"
	ErrMsgFailedToDeleteInventoryItem       = "failed to delete inventory item"
	ErrMsgInventoryQuantityOverflow         = "inventory quantity overflow"
)
