package handler

import (
	"net/http"
	"time"

	"github.com/datalab-ge/datalab-api/internal/analytics"
	"github.com/datalab-ge/datalab-api/internal/service"
	"go.uber.org/zap"
)

// AnalyticsHandler serves dashboard metrics
type AnalyticsHandler struct {
	service *service.AnalyticsService
	logger  *zap.Logger
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(svc *service.AnalyticsService, logger *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{service: svc, logger: logger}
}

// Metrics godoc
// @Summary Dashboard metrics
// @Tags Analytics
// @Produce json
// @Param timeframe query string false "week, month or year" Enums(week, month, year) default(week)
// @Success 200 {object} analytics.Report
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /analytics/metrics [get]
func (h *AnalyticsHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	report, ok := h.report(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, report)
}

// Export godoc
// @Summary Download metrics as a JSON document
// @Tags Analytics
// @Produce json
// @Param timeframe query string false "week, month or year" Enums(week, month, year) default(week)
// @Success 200 {object} analytics.ExportDocument
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /analytics/export [get]
func (h *AnalyticsHandler) Export(w http.ResponseWriter, r *http.Request) {
	report, ok := h.report(w, r)
	if !ok {
		return
	}

	now := time.Now()
	data, err := analytics.Export(*report, now)
	if err != nil {
		h.logger.Error("failed to export analytics", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to export analytics")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+analytics.ExportFilename(report.Timeframe, now)+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *AnalyticsHandler) report(w http.ResponseWriter, r *http.Request) (*analytics.Report, bool) {
	tf, err := analytics.ParseTimeframe(r.URL.Query().Get("timeframe"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}

	report, err := h.service.Report(r.Context(), tf)
	if err != nil {
		h.logger.Error("failed to compute analytics", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to compute analytics")
		return nil, false
	}
	return report, true
}
