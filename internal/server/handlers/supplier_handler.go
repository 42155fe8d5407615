package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/agrodesk/agrodesk/internal/domain/models"
	"github.com/agrodesk/agrodesk/internal/service/suppliers"
)

// SupplierHandler exposes the supplier record service over HTTP.
type SupplierHandler struct {
	svc    *suppliers.Service
	logger *zap.Logger
}

// NewSupplierHandler constructs the HTTP handler adapter.
func NewSupplierHandler(svc *suppliers.Service, logger *zap.Logger) *SupplierHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SupplierHandler{svc: svc, logger: logger}
}

// List returns all suppliers, or the matches for the q query parameter.
func (h *SupplierHandler) List(c *gin.Context) {
	result, err := h.svc.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Get returns one supplier by id.
func (h *SupplierHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	supplier, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, supplier)
}

// Create stores a new supplier with default reliability and payment terms.
func (h *SupplierHandler) Create(c *gin.Context) {
	var supplier models.Supplier
	if err := c.ShouldBindJSON(&supplier); err != nil {
		h.logger.Warn("invalid supplier payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	created, err := h.svc.Create(c.Request.Context(), supplier)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Update replaces one supplier record.
func (h *SupplierHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var supplier models.Supplier
	if err := c.ShouldBindJSON(&supplier); err != nil {
		h.logger.Warn("invalid supplier payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	updated, err := h.svc.Update(c.Request.Context(), id, supplier)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete removes one supplier record.
func (h *SupplierHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type reliabilityRequest struct {
	Reliability int `json:"reliability"`
}

// UpdateReliability rescores one supplier, clamping to the 0..100 scale.
func (h *SupplierHandler) UpdateReliability(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req reliabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid reliability payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	updated, err := h.svc.UpdateReliabilityScore(c.Request.Context(), id, req.Reliability)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

type deliveryRequest struct {
	DeliveryDate time.Time `json:"deliveryDate"`
}

// UpdateDelivery records the latest delivery date for one supplier. An
// omitted date defaults to now.
func (h *SupplierHandler) UpdateDelivery(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req deliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid delivery payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.DeliveryDate.IsZero() {
		req.DeliveryDate = time.Now()
	}

	updated, err := h.svc.UpdateDeliveryDate(c.Request.Context(), id, req.DeliveryDate)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// ReliabilityReport buckets all suppliers into reliability bands.
func (h *SupplierHandler) ReliabilityReport(c *gin.Context) {
	report, err := h.svc.ReliabilityReport(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
