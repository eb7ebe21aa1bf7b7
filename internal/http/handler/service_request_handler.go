package handler

import (
	"net/http"

	"github.com/datalab-ge/datalab-api/internal/domain"
	"github.com/datalab-ge/datalab-api/internal/service"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ServiceRequestHandler handles HTTP requests for service requests
type ServiceRequestHandler struct {
	service *service.ServiceRequestService
	logger  *zap.Logger
}

// NewServiceRequestHandler creates a new ServiceRequestHandler
func NewServiceRequestHandler(svc *service.ServiceRequestService, logger *zap.Logger) *ServiceRequestHandler {
	return &ServiceRequestHandler{service: svc, logger: logger}
}

// Create godoc
// @Summary Submit service request
// @Description Public form submission. Returns the generated case code and the promised completion date.
// @Tags Service Requests
// @Accept json
// @Produce json
// @Param request body domain.CreateServiceRequestRequest true "Service request"
// @Success 201 {object} domain.CreateServiceRequestResponse
// @Failure 400 {object} domain.APIError
// @Failure 429 {object} map[string]interface{}
// @Router /service-requests/ [post]
func (h *ServiceRequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateServiceRequestRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := h.service.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "Service request not found", "Failed to create service request")
		return
	}

	respondJSON(w, http.StatusCreated, resp)
}

// List godoc
// @Summary List active service requests
// @Description Every request that is not archived, newest first
// @Tags Service Requests
// @Produce json
// @Success 200 {array} domain.ServiceRequestDTO
// @Failure 401 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /service-requests/ [get]
func (h *ServiceRequestHandler) List(w http.ResponseWriter, r *http.Request) {
	requests, err := h.service.ListActive(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, err, "", "Failed to list service requests")
		return
	}
	respondJSON(w, http.StatusOK, requests)
}

// ListArchived godoc
// @Summary List archived service requests
// @Tags Service Requests
// @Produce json
// @Success 200 {array} domain.ServiceRequestDTO
// @Failure 401 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /service-requests/archived [get]
func (h *ServiceRequestHandler) ListArchived(w http.ResponseWriter, r *http.Request) {
	requests, err := h.service.ListArchived(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, err, "", "Failed to list archived service requests")
		return
	}
	respondJSON(w, http.StatusOK, requests)
}

// GetCase godoc
// @Summary Track a case
// @Description Public case tracking by case code, matched case-insensitively
// @Tags Service Requests
// @Produce json
// @Param case_id path string true "Case code, e.g. DL20250001"
// @Success 200 {object} domain.CaseRecord
// @Failure 404 {object} domain.APIError
// @Router /service-requests/{case_id} [get]
func (h *ServiceRequestHandler) GetCase(w http.ResponseWriter, r *http.Request) {
	record, err := h.service.GetCase(r.Context(), chi.URLParam(r, "case_id"))
	if err != nil {
		respondServiceError(w, h.logger, err, "Case not found", "Failed to retrieve case")
		return
	}
	respondJSON(w, http.StatusOK, record)
}

// Update godoc
// @Summary Update service request
// @Description Partial update of status, price, read flag and timestamps
// @Tags Service Requests
// @Accept json
// @Produce json
// @Param id path string true "Service request ID"
// @Param request body domain.UpdateServiceRequestRequest true "Fields to change"
// @Success 200 {object} domain.ServiceRequestDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /service-requests/{id} [put]
func (h *ServiceRequestHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "service request")
	if !ok {
		return
	}

	var req domain.UpdateServiceRequestRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	dto, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "Service request not found", "Failed to update service request")
		return
	}
	respondJSON(w, http.StatusOK, dto)
}

// Archive godoc
// @Summary Archive service request
// @Description Moves a completed request to the archive. Archived requests cannot change status again.
// @Tags Service Requests
// @Produce json
// @Param id path string true "Service request ID"
// @Success 200 {object} domain.ServiceRequestDTO
// @Failure 404 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /service-requests/{id}/archive [put]
func (h *ServiceRequestHandler) Archive(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "service request")
	if !ok {
		return
	}

	dto, err := h.service.Archive(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "Service request not found", "Failed to archive service request")
		return
	}
	respondJSON(w, http.StatusOK, dto)
}

// History godoc
// @Summary Status history
// @Tags Service Requests
// @Produce json
// @Param id path string true "Service request ID"
// @Success 200 {array} domain.StatusHistoryDTO
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /service-requests/{id}/history [get]
func (h *ServiceRequestHandler) History(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "service request")
	if !ok {
		return
	}

	history, err := h.service.History(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "Service request not found", "Failed to get status history")
		return
	}
	respondJSON(w, http.StatusOK, history)
}
