package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/datalab-ge/datalab-api/internal/pricing"
	"go.uber.org/zap"
)

// PricingHandler exposes the price estimator
type PricingHandler struct {
	logger *zap.Logger
}

// NewPricingHandler creates a new PricingHandler
func NewPricingHandler(logger *zap.Logger) *PricingHandler {
	return &PricingHandler{logger: logger}
}

// Estimate godoc
// @Summary Estimate a recovery price
// @Description price = round(base[device] * problem multiplier * urgency multiplier)
// @Tags Pricing
// @Accept json
// @Produce json
// @Param request body pricing.Selection true "Device, problem and urgency"
// @Success 200 {object} pricing.Estimate
// @Failure 400 {object} domain.APIError
// @Router /price-estimate/ [post]
func (h *PricingHandler) Estimate(w http.ResponseWriter, r *http.Request) {
	var sel pricing.Selection
	if err := json.NewDecoder(r.Body).Decode(&sel); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body: malformed JSON")
		return
	}

	estimate, err := pricing.Calculate(sel)
	if err != nil {
		if errors.Is(err, pricing.ErrIncompleteSelection) || errors.Is(err, pricing.ErrUnknownOption) {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("failed to calculate price estimate", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to calculate price estimate")
		return
	}
	respondJSON(w, http.StatusOK, estimate)
}

// Info godoc
// @Summary Pricing tables
// @Tags Pricing
// @Produce json
// @Success 200 {object} pricing.Info
// @Router /price-estimate/pricing-info [get]
func (h *PricingHandler) Info(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, pricing.PricingInfo())
}
