package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"predictive-maintenance-backend/internal/service"
)

// GetWorkOrders handles GET /api/work-orders.
func (h *Handler) GetWorkOrders(c *gin.Context) {
	filters := service.WorkOrderFilters{
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
	}
	if v := c.Query("machine_id"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid machine_id"})
			return
		}
		filters.MachineID = id
	}
	if v := c.Query("assigned_to"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid assigned_to"})
			return
		}
		filters.AssignedTo = id
	}
	orders, err := h.svc.GetWorkOrders(c.Request.Context(), filters)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetWorkOrder handles GET /api/work-orders/:id.
func (h *Handler) GetWorkOrder(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	w, err := h.svc.GetWorkOrderByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

type createWorkOrderRequest struct {
	Title     string `json:"title" binding:"required"`
	MachineID int    `json:"machine_id" binding:"required"`
	service.CreateWorkOrderInput
}

// CreateWorkOrder handles POST /api/work-orders. Title and machine_id are
// required at this boundary.
func (h *Handler) CreateWorkOrder(c *gin.Context) {
	var req createWorkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Title and machine_id are required"})
		return
	}
	req.CreateWorkOrderInput.Title = req.Title
	req.CreateWorkOrderInput.MachineID = req.MachineID

	w, err := h.svc.CreateWorkOrder(c.Request.Context(), req.CreateWorkOrderInput)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, w)
}

// UpdateWorkOrder handles PUT /api/work-orders/:id with a shallow-merge body.
func (h *Handler) UpdateWorkOrder(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var patch service.WorkOrderPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	w, err := h.svc.UpdateWorkOrder(c.Request.Context(), id, patch)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

// DeleteWorkOrder handles DELETE /api/work-orders/:id.
func (h *Handler) DeleteWorkOrder(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteWorkOrder(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type addNoteRequest struct {
	User string `json:"user"`
	Text string `json:"text" binding:"required"`
}

// AddWorkOrderNote handles POST /api/work-orders/:id/notes.
func (h *Handler) AddWorkOrderNote(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req addNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Note text is required"})
		return
	}
	w, err := h.svc.AddWorkOrderNote(c.Request.Context(), id, req.User, req.Text)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, w)
}

// GetMaintenanceCalendar handles GET /api/calendar?month=&year=.
func (h *Handler) GetMaintenanceCalendar(c *gin.Context) {
	var month time.Month
	var year int
	if v := c.Query("month"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 || parsed > 12 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid month"})
			return
		}
		month = time.Month(parsed)
	}
	if v := c.Query("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid year"})
			return
		}
		year = parsed
	}
	events, err := h.svc.GetMaintenanceCalendar(c.Request.Context(), month, year)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}
