package handler

import (
	"net/http"
	"time"

	"github.com/osse101/HexHarvest_Go/internal/domain"
	"github.com/osse101/HexHarvest_Go/internal/harvester"
	"github.com/osse101/HexHarvest_Go/internal/logger"
)

// GrantHarvesterRequest creates an undeployed harvester for a user
type GrantHarvesterRequest struct {
	OwnerID string `json:"owner_id" validate:"required,max=100,excludesall=\x00\n\r\t"`
	ItemID  string `json:"item_id" validate:"required,max=100,excludesall=\x00\n\r\t"`
}

// DeployHarvesterRequest places a harvester in a cell
type DeployHarvesterRequest struct {
	CellID string `json:"cell_id" validate:"required,h3cell"`
}

// TransferEnergyRequest adds (positive amount) or withdraws (negative amount) energy.
// Inventory settles against the owner unless InventoryUserID is set or SkipInventory is true.
type TransferEnergyRequest struct {
	Amount           float64    `json:"amount"`
	EnergyResourceID string     `json:"energy_resource_id" validate:"required,max=100"`
	At               *time.Time `json:"at,omitempty"`
	InventoryUserID  string     `json:"inventory_user_id,omitempty" validate:"omitempty,max=100"`
	SkipInventory    bool       `json:"skip_inventory,omitempty" validate:"excluded_with=InventoryUserID"`
}

// CollectRequest identifies the user collecting a harvester's yield
type CollectRequest struct {
	OwnerID string `json:"owner_id" validate:"required,max=100"`
}

// HarvesterListResponse wraps a user's harvesters
type HarvesterListResponse struct {
	Harvesters []domain.Harvester `json:"harvesters"`
}

// HarvesterHandler handles harvester HTTP requests
type HarvesterHandler struct {
	svc harvester.Service
}

// NewHarvesterHandler creates a new harvester handler
func NewHarvesterHandler(svc harvester.Service) *HarvesterHandler {
	return &HarvesterHandler{svc: svc}
}

// HandleGrant creates a harvester in the owner's inventory
// @Summary Grant a harvester
// @Description Create an undeployed harvester and credit one harvester item to the owner
// @Tags harvesters
// @Accept json
// @Produce json
// @Param request body GrantHarvesterRequest true "Grant request"
// @Success 201 {object} domain.Harvester
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /harvesters [post]
func (h *HarvesterHandler) HandleGrant(w http.ResponseWriter, r *http.Request) {
	var req GrantHarvesterRequest
	if err := DecodeAndValidateRequest(r, w, &req, ActionGrantHarvester); err != nil {
		return
	}

	created, err := h.svc.Grant(r.Context(), req.OwnerID, req.ItemID)
	if err != nil {
		respondServiceError(w, r, ErrMsgGrantHarvesterFailed, err)
		return
	}

	logger.FromContext(r.Context()).Info("Harvester granted", "harvester_id", created.ID, "owner_id", created.OwnerID)
	respondJSON(w, http.StatusCreated, created)
}

// HandleGetStatus returns the harvester with its remaining energy and operations
// @Summary Get harvester status
// @Tags harvesters
// @Produce json
// @Param id path string true "Harvester ID"
// @Success 200 {object} domain.HarvesterStatus
// @Failure 404 {object} ErrorResponse "Harvester not found"
// @Security ApiKeyAuth
// @Router /harvesters/{id} [get]
func (h *HarvesterHandler) HandleGetStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := GetPathParam(r, w, ParamHarvesterID)
	if !ok {
		return
	}

	status, err := h.svc.GetStatus(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetHarvesterFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, status)
}

// HandleListByOwner lists every harvester a user owns
// @Summary List a user's harvesters
// @Tags harvesters
// @Produce json
// @Param userID path string true "Owner ID"
// @Success 200 {object} HarvesterListResponse
// @Security ApiKeyAuth
// @Router /users/{userID}/harvesters [get]
func (h *HarvesterHandler) HandleListByOwner(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetPathParam(r, w, ParamUserID)
	if !ok {
		return
	}

	list, err := h.svc.ListHarvesters(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, ErrMsgListHarvestersFailed, err)
		return
	}
	if list == nil {
		list = []domain.Harvester{}
	}

	respondJSON(w, http.StatusOK, HarvesterListResponse{Harvesters: list})
}

// HandleDeploy deploys a harvester into a cell
// @Summary Deploy a harvester
// @Description Place a harvester in an H3 cell and open an operation per nearby resource instance
// @Tags harvesters
// @Accept json
// @Produce json
// @Param id path string true "Harvester ID"
// @Param request body DeployHarvesterRequest true "Target cell"
// @Success 200 {object} domain.DeployResult
// @Failure 400 {object} ErrorResponse "Invalid cell"
// @Failure 404 {object} ErrorResponse "Harvester not found"
// @Failure 409 {object} ErrorResponse "Already deployed or cell occupied"
// @Security ApiKeyAuth
// @Router /harvesters/{id}/deploy [post]
func (h *HarvesterHandler) HandleDeploy(w http.ResponseWriter, r *http.Request) {
	id, ok := GetPathParam(r, w, ParamHarvesterID)
	if !ok {
		return
	}

	var req DeployHarvesterRequest
	if err := DecodeAndValidateRequest(r, w, &req, ActionDeployHarvester); err != nil {
		return
	}

	result, err := h.svc.Deploy(r.Context(), id, req.CellID)
	if err != nil {
		respondServiceError(w, r, ErrMsgDeployHarvesterFailed, err)
		return
	}

	logger.FromContext(r.Context()).Info("Harvester deployed",
		"harvester_id", id,
		"cell_id", req.CellID,
		"operations", len(result.Operations))
	respondJSON(w, http.StatusOK, result)
}

// HandleTransferEnergy loads or withdraws energy
// @Summary Transfer energy
// @Description Add (positive amount) or withdraw (negative amount) energy and re-plan open operations
// @Tags harvesters
// @Accept json
// @Produce json
// @Param id path string true "Harvester ID"
// @Param request body TransferEnergyRequest true "Transfer request"
// @Success 200 {object} domain.Harvester
// @Failure 400 {object} ErrorResponse "Invalid amount or time"
// @Failure 404 {object} ErrorResponse "Harvester or energy resource not found"
// @Failure 409 {object} ErrorResponse "Insufficient energy or inventory"
// @Security ApiKeyAuth
// @Router /harvesters/{id}/energy [post]
func (h *HarvesterHandler) HandleTransferEnergy(w http.ResponseWriter, r *http.Request) {
	id, ok := GetPathParam(r, w, ParamHarvesterID)
	if !ok {
		return
	}

	var req TransferEnergyRequest
	if err := DecodeAndValidateRequest(r, w, &req, ActionTransferEnergy); err != nil {
		return
	}

	updated, err := h.svc.TransferEnergy(r.Context(), id, req.toTransfer())
	if err != nil {
		respondServiceError(w, r, ErrMsgTransferEnergyFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, updated)
}

// HandleCollect credits accrued whole units to the owner
// @Summary Collect harvested resources
// @Tags harvesters
// @Accept json
// @Produce json
// @Param id path string true "Harvester ID"
// @Param request body CollectRequest true "Collecting owner"
// @Success 200 {object} domain.CollectResult
// @Failure 404 {object} ErrorResponse "Harvester not found"
// @Failure 409 {object} ErrorResponse "Not the owner"
// @Security ApiKeyAuth
// @Router /harvesters/{id}/collect [post]
func (h *HarvesterHandler) HandleCollect(w http.ResponseWriter, r *http.Request) {
	id, ok := GetPathParam(r, w, ParamHarvesterID)
	if !ok {
		return
	}

	var req CollectRequest
	if err := DecodeAndValidateRequest(r, w, &req, ActionCollect); err != nil {
		return
	}

	result, err := h.svc.Collect(r.Context(), req.OwnerID, id)
	if err != nil {
		respondServiceError(w, r, ErrMsgCollectFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// HandleReclaim undeploys a harvester and refunds its energy
// @Summary Reclaim a harvester
// @Tags harvesters
// @Produce json
// @Param id path string true "Harvester ID"
// @Success 200 {object} domain.ReclaimResult
// @Failure 404 {object} ErrorResponse "Harvester not found"
// @Failure 409 {object} ErrorResponse "Not deployed"
// @Security ApiKeyAuth
// @Router /harvesters/{id}/reclaim [post]
func (h *HarvesterHandler) HandleReclaim(w http.ResponseWriter, r *http.Request) {
	id, ok := GetPathParam(r, w, ParamHarvesterID)
	if !ok {
		return
	}

	result, err := h.svc.Reclaim(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, ErrMsgReclaimFailed, err)
		return
	}

	logger.FromContext(r.Context()).Info("Harvester reclaimed",
		"harvester_id", id,
		"energy_refunded", result.EnergyRefunded,
		"operations_freed", result.OperationsFreed)
	respondJSON(w, http.StatusOK, result)
}

func (req TransferEnergyRequest) toTransfer() harvester.TransferRequest {
	target := harvester.OwnerInventory()
	switch {
	case req.SkipInventory:
		target = harvester.NoInventory()
	case req.InventoryUserID != "":
		target = harvester.UserInventory(req.InventoryUserID)
	}
	return harvester.TransferRequest{
		Amount:           req.Amount,
		EnergyResourceID: req.EnergyResourceID,
		At:               req.At,
		Inventory:        target,
	}
}
