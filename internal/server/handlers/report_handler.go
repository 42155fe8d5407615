package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/agrodesk/agrodesk/internal/domain/models"
	"github.com/agrodesk/agrodesk/internal/service/reporting"
)

// ReportHandler exposes the dashboard and ranged reports over HTTP.
type ReportHandler struct {
	svc    *reporting.Service
	logger *zap.Logger
}

// NewReportHandler constructs the HTTP handler adapter.
func NewReportHandler(svc *reporting.Service, logger *zap.Logger) *ReportHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportHandler{svc: svc, logger: logger}
}

// Dashboard returns the landing-page payload: metrics, low stock alerts and
// the most recent sales and customers.
func (h *ReportHandler) Dashboard(c *gin.Context) {
	report, err := h.svc.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// Sales builds the ranged analytics report. The range query parameter
// defaults to the last 30 days.
func (h *ReportHandler) Sales(c *gin.Context) {
	report, err := h.svc.SalesReport(c.Request.Context(), rangeParam(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// Export appends the current ranged report to the configured spreadsheet
// and returns the exported payload.
func (h *ReportHandler) Export(c *gin.Context) {
	report, err := h.svc.Export(c.Request.Context(), rangeParam(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func rangeParam(c *gin.Context) models.RangeKind {
	if raw := c.Query("range"); raw != "" {
		return models.RangeKind(raw)
	}
	return models.RangeLast30
}
