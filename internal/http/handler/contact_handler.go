package handler

import (
	"net/http"

	"github.com/datalab-ge/datalab-api/internal/domain"
	"github.com/datalab-ge/datalab-api/internal/service"
	"go.uber.org/zap"
)

// ContactHandler handles HTTP requests for contact messages
type ContactHandler struct {
	service *service.ContactService
	logger  *zap.Logger
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(svc *service.ContactService, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{service: svc, logger: logger}
}

// Create godoc
// @Summary Send contact message
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body domain.CreateContactMessageRequest true "Message"
// @Success 201 {object} domain.ContactMessageReceipt
// @Failure 400 {object} domain.APIError
// @Failure 429 {object} map[string]interface{}
// @Router /contact/ [post]
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateContactMessageRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	receipt, err := h.service.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "", "Failed to send message")
		return
	}
	respondJSON(w, http.StatusCreated, receipt)
}

// List godoc
// @Summary List contact messages
// @Tags Contact
// @Produce json
// @Success 200 {array} domain.ContactMessageDTO
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /contact/ [get]
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	messages, err := h.service.List(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, err, "", "Failed to list contact messages")
		return
	}
	respondJSON(w, http.StatusOK, messages)
}

// Stats godoc
// @Summary Contact message counts per status
// @Tags Contact
// @Produce json
// @Success 200 {object} domain.ContactStatsDTO
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /contact/stats [get]
func (h *ContactHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, err, "", "Failed to get contact statistics")
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

// UpdateStatus godoc
// @Summary Change contact message status
// @Tags Contact
// @Accept json
// @Produce json
// @Param id path string true "Message ID"
// @Param request body domain.UpdateContactStatusRequest true "New status"
// @Success 200 {object} domain.MessageResponse
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /contact/{id}/status [put]
func (h *ContactHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "message")
	if !ok {
		return
	}

	var req domain.UpdateContactStatusRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.service.UpdateStatus(r.Context(), id, req.Status); err != nil {
		respondServiceError(w, h.logger, err, "Message not found", "Failed to update message status")
		return
	}
	respondJSON(w, http.StatusOK, domain.MessageResponse{Success: true, Message: "Status updated successfully"})
}
