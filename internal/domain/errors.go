package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Error families
	ErrMsgNotFound           = "not found"
	ErrMsgConflict           = "conflict"
	ErrMsgValidation         = "validation failed"
	ErrMsgIntegrityFault     = "integrity fault"
	ErrMsgTransactionFailure = "transaction failure"

	// Harvester errors
	ErrMsgHarvesterNotFound  = "harvester not found"
	ErrMsgAlreadyDeployed    = "harvester is already deployed"
	ErrMsgNotDeployed        = "harvester is not deployed"
	ErrMsgCellOccupied       = "owner already has a harvester deployed in this cell"
	ErrMsgNotOwner           = "harvester belongs to another user"
	ErrMsgEnergyTypeMismatch = "harvester is loaded with a different energy type"
	ErrMsgInsufficientEnergy = "resulting energy would be negative"

	// Operation errors
	ErrMsgOperationNotFound = "harvest operation not found"

	// Resource errors
	ErrMsgResourceNotFound  = "resource not found"
	ErrMsgNotEnergyResource = "resource is not an energy resource"

	// Inventory errors
	ErrMsgInsufficientQuantity = "insufficient quantity"

	// Validation errors
	ErrMsgInvalidMetadata  = "invalid resource metadata"
	ErrMsgInvalidCell      = "invalid cell id"
	ErrMsgFractionalAmount = "amount must be a whole number when inventory is adjusted"
	ErrMsgInvalidInput     = "invalid input"
	ErrMsgNegativeElapsed  = "negative elapsed interval"
	ErrMsgMissingDeadline  = "resource instance has no reset deadline"
	ErrMsgCommitFailed     = "commit failed"
	ErrMsgSerialization    = "concurrent update, retry the request"
	ErrMsgTxClosed         = "tx is closed"
)

// Error families. Every specific error below belongs to exactly one family, so
// callers can branch on either errors.Is(err, ErrConflict) or the specific error.
var (
	ErrNotFound           = errors.New(ErrMsgNotFound)
	ErrConflict           = errors.New(ErrMsgConflict)
	ErrValidation         = errors.New(ErrMsgValidation)
	ErrIntegrityFault     = errors.New(ErrMsgIntegrityFault)
	ErrTransactionFailure = errors.New(ErrMsgTransactionFailure)
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// NotFound
	ErrHarvesterNotFound = newCategorized(ErrMsgHarvesterNotFound, ErrNotFound)
	ErrOperationNotFound = newCategorized(ErrMsgOperationNotFound, ErrNotFound)
	ErrResourceNotFound  = newCategorized(ErrMsgResourceNotFound, ErrNotFound)
	ErrNotEnergyResource = newCategorized(ErrMsgNotEnergyResource, ErrNotFound)

	// Conflict
	ErrAlreadyDeployed      = newCategorized(ErrMsgAlreadyDeployed, ErrConflict)
	ErrNotDeployed          = newCategorized(ErrMsgNotDeployed, ErrConflict)
	ErrCellOccupied         = newCategorized(ErrMsgCellOccupied, ErrConflict)
	ErrNotOwner             = newCategorized(ErrMsgNotOwner, ErrConflict)
	ErrEnergyTypeMismatch   = newCategorized(ErrMsgEnergyTypeMismatch, ErrConflict)
	ErrInsufficientEnergy   = newCategorized(ErrMsgInsufficientEnergy, ErrConflict)
	ErrInsufficientQuantity = newCategorized(ErrMsgInsufficientQuantity, ErrConflict)

	// Validation
	ErrInvalidMetadata  = newCategorized(ErrMsgInvalidMetadata, ErrValidation)
	ErrInvalidCell      = newCategorized(ErrMsgInvalidCell, ErrValidation)
	ErrFractionalAmount = newCategorized(ErrMsgFractionalAmount, ErrValidation)
	ErrInvalidInput     = newCategorized(ErrMsgInvalidInput, ErrValidation)

	// IntegrityFault
	ErrNegativeElapsed      = newCategorized(ErrMsgNegativeElapsed, ErrIntegrityFault)
	ErrMissingResetDeadline = newCategorized(ErrMsgMissingDeadline, ErrIntegrityFault)

	// TransactionFailure
	ErrCommitFailed         = newCategorized(ErrMsgCommitFailed, ErrTransactionFailure)
	ErrSerializationFailure = newCategorized(ErrMsgSerialization, ErrTransactionFailure)
)

// categorized is a sentinel that also matches its family with errors.Is.
type categorized struct {
	msg    string
	family error
}

func newCategorized(msg string, family error) error {
	return &categorized{msg: msg, family: family}
}

func (e *categorized) Error() string { return e.msg }

func (e *categorized) Is(target error) bool { return target == e.family }
