package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"predictive-maintenance-backend/internal/service"
)

// GetMachines handles GET /api/machines. Query parameters become the filter
// record; absent parameters leave the corresponding filter off.
func (h *Handler) GetMachines(c *gin.Context) {
	filters := service.MachineFilters{
		Type:     c.Query("type"),
		Location: c.Query("location"),
		Status:   c.Query("status"),
		Search:   c.Query("search"),
	}
	machines, err := h.svc.GetMachines(c.Request.Context(), filters)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, machines)
}

// GetMachine handles GET /api/machines/:id.
func (h *Handler) GetMachine(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	m, err := h.svc.GetMachineByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

type createMachineRequest struct {
	Name string `json:"name" binding:"required"`
	Type string `json:"type" binding:"required"`
	service.CreateMachineInput
}

// CreateMachine handles POST /api/machines. Name and type are required at
// this boundary.
func (h *Handler) CreateMachine(c *gin.Context) {
	var req createMachineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name and type are required"})
		return
	}
	req.CreateMachineInput.Name = req.Name
	req.CreateMachineInput.Type = req.Type

	m, err := h.svc.CreateMachine(c.Request.Context(), req.CreateMachineInput)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

// UpdateMachine handles PUT /api/machines/:id with a shallow-merge body.
func (h *Handler) UpdateMachine(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var patch service.MachinePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	m, err := h.svc.UpdateMachine(c.Request.Context(), id, patch)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// DeleteMachine handles DELETE /api/machines/:id.
func (h *Handler) DeleteMachine(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteMachine(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetMachineSensorHistory handles GET /api/machines/:id/sensor-history.
// The hours query parameter defaults to 24.
func (h *Handler) GetMachineSensorHistory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	hours := 24
	if v := c.Query("hours"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid hours"})
			return
		}
		hours = parsed
	}
	history, err := h.svc.GetMachineSensorHistory(c.Request.Context(), id, hours)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}
