package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Path parameter error messages
	ErrMsgMissingPathParam = "Missing %s path parameter"

	// Harvester operation error messages
	ErrMsgGrantHarvesterFailed  = "Failed to grant harvester"
	ErrMsgGetHarvesterFailed    = "Failed to retrieve harvester"
	ErrMsgListHarvestersFailed  = "Failed to list harvesters"
	ErrMsgDeployHarvesterFailed = "Failed to deploy harvester"
	ErrMsgTransferEnergyFailed  = "Failed to transfer energy"
	ErrMsgCollectFailed         = "Failed to collect resources"
	ErrMsgReclaimFailed         = "Failed to reclaim harvester"
)

// Action names used in request logging
const (
	ActionGrantHarvester  = "Grant harvester"
	ActionDeployHarvester = "Deploy harvester"
	ActionTransferEnergy  = "Transfer energy"
	ActionCollect         = "Collect"
)

// Path parameter names
const (
	ParamHarvesterID = "id"
	ParamUserID      = "userID"
)
