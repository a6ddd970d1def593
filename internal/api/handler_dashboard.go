package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetDashboardStats handles GET /api/dashboard/stats.
func (h *Handler) GetDashboardStats(c *gin.Context) {
	stats, err := h.svc.GetDashboardStats(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetFailureTrend handles GET /api/dashboard/failure-trend?period=.
// Unknown periods fall back to the monthly series.
func (h *Handler) GetFailureTrend(c *gin.Context) {
	trend, err := h.svc.GetFailureTrend(c.Request.Context(), c.Query("period"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, trend)
}

// GetReportSummary handles GET /api/reports/summary.
func (h *Handler) GetReportSummary(c *gin.Context) {
	summary, err := h.svc.GetReportSummary(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

type exportRequest struct {
	Type string `json:"type" binding:"required"`
	ID   int    `json:"id"`
}

// ExportPDF handles POST /api/reports/export. The response is a stub
// acknowledgement; document rendering happens client-side.
func (h *Handler) ExportPDF(c *gin.Context) {
	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Export type is required"})
		return
	}
	result, err := h.svc.ExportPDF(c.Request.Context(), req.Type, req.ID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
