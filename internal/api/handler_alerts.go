package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"predictive-maintenance-backend/internal/service"
)

// GetAlerts handles GET /api/alerts?severity=&acknowledged=.
func (h *Handler) GetAlerts(c *gin.Context) {
	filters := service.AlertFilters{Severity: c.Query("severity")}
	if v := c.Query("acknowledged"); v != "" {
		acked, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid acknowledged value"})
			return
		}
		filters.Acknowledged = &acked
	}
	alerts, err := h.svc.GetAlerts(c.Request.Context(), filters)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, alerts)
}

type acknowledgeRequest struct {
	User string `json:"user" binding:"required"`
}

// AcknowledgeAlert handles PUT /api/alerts/:id/acknowledge.
func (h *Handler) AcknowledgeAlert(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req acknowledgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User is required"})
		return
	}
	a, err := h.svc.AcknowledgeAlert(c.Request.Context(), id, req.User)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// DeleteAlert handles DELETE /api/alerts/:id.
func (h *Handler) DeleteAlert(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteAlert(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetNotifications handles GET /api/notifications.
func (h *Handler) GetNotifications(c *gin.Context) {
	notifications, err := h.svc.GetNotifications(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// MarkNotificationRead handles PUT /api/notifications/:id/read.
func (h *Handler) MarkNotificationRead(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.MarkNotificationRead(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// MarkAllNotificationsRead handles PUT /api/notifications/read-all.
func (h *Handler) MarkAllNotificationsRead(c *gin.Context) {
	if err := h.svc.MarkAllNotificationsRead(c.Request.Context()); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
