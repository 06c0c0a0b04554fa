package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/HexHarvest_Go/internal/domain"
	"github.com/osse101/HexHarvest_Go/internal/logger"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// bufferPool reduces allocations during JSON encoding
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// Encode before writing headers so an encoding failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and maps it to a client response
func respondServiceError(w http.ResponseWriter, r *http.Request, action string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(action, "error", err)
	} else {
		log.Warn(action, "error", err, "status", status)
	}
	respondError(w, status, msg)
}

// User-facing error messages for service errors
const (
	// Generic messages
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgNotFoundError      = "Not found"
	ErrMsgConflictError      = "Request conflicts with the current state"
	ErrMsgValidationError    = "Invalid request. Please check your inputs."
	ErrMsgRetryError         = "Concurrent update detected. Please retry."

	// Harvester messages
	ErrMsgHarvesterNotFoundError  = "Harvester not found"
	ErrMsgAlreadyDeployedError    = "Harvester is already deployed"
	ErrMsgNotDeployedError        = "Harvester is not deployed"
	ErrMsgCellOccupiedError       = "You already have a harvester in that cell"
	ErrMsgNotOwnerError           = "That harvester belongs to someone else"
	ErrMsgEnergyTypeMismatchError = "Harvester is loaded with a different energy type"
	ErrMsgInsufficientEnergyError = "Not enough energy in the harvester"

	// Resource and inventory messages
	ErrMsgResourceNotFoundError     = "Resource not found"
	ErrMsgNotEnergyResourceError    = "That resource cannot be used as energy"
	ErrMsgInsufficientQuantityError = "Not enough items"

	// Input messages
	ErrMsgInvalidCellError      = "Invalid cell id"
	ErrMsgFractionalAmountError = "Amount must be a whole number when inventory is adjusted"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses.
// Specific errors are matched first, then their families.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrHarvesterNotFound):
		return http.StatusNotFound, ErrMsgHarvesterNotFoundError
	case errors.Is(err, domain.ErrResourceNotFound):
		return http.StatusNotFound, ErrMsgResourceNotFoundError
	case errors.Is(err, domain.ErrNotEnergyResource):
		return http.StatusBadRequest, ErrMsgNotEnergyResourceError
	case errors.Is(err, domain.ErrAlreadyDeployed):
		return http.StatusConflict, ErrMsgAlreadyDeployedError
	case errors.Is(err, domain.ErrNotDeployed):
		return http.StatusConflict, ErrMsgNotDeployedError
	case errors.Is(err, domain.ErrCellOccupied):
		return http.StatusConflict, ErrMsgCellOccupiedError
	case errors.Is(err, domain.ErrNotOwner):
		return http.StatusForbidden, ErrMsgNotOwnerError
	case errors.Is(err, domain.ErrEnergyTypeMismatch):
		return http.StatusConflict, ErrMsgEnergyTypeMismatchError
	case errors.Is(err, domain.ErrInsufficientEnergy):
		return http.StatusConflict, ErrMsgInsufficientEnergyError
	case errors.Is(err, domain.ErrInsufficientQuantity):
		return http.StatusConflict, ErrMsgInsufficientQuantityError
	case errors.Is(err, domain.ErrInvalidCell):
		return http.StatusBadRequest, ErrMsgInvalidCellError
	case errors.Is(err, domain.ErrFractionalAmount):
		return http.StatusBadRequest, ErrMsgFractionalAmountError
	case errors.Is(err, domain.ErrSerializationFailure):
		return http.StatusConflict, ErrMsgRetryError
	case errors.Is(err, domain.ErrInvalidMetadata):
		// Stored resource definitions are broken, not the request
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, ErrMsgNotFoundError
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, ErrMsgConflictError
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, ErrMsgValidationError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
