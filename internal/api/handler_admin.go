package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"predictive-maintenance-backend/internal/service"
)

// GetAssetTypes handles GET /api/asset-types.
func (h *Handler) GetAssetTypes(c *gin.Context) {
	types, err := h.svc.GetAssetTypes(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, types)
}

type createAssetTypeRequest struct {
	Name string `json:"name" binding:"required"`
	service.CreateAssetTypeInput
}

// CreateAssetType handles POST /api/asset-types.
func (h *Handler) CreateAssetType(c *gin.Context) {
	var req createAssetTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name is required"})
		return
	}
	req.CreateAssetTypeInput.Name = req.Name

	t, err := h.svc.CreateAssetType(c.Request.Context(), req.CreateAssetTypeInput)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// UpdateAssetType handles PUT /api/asset-types/:id.
func (h *Handler) UpdateAssetType(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var patch service.AssetTypePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	t, err := h.svc.UpdateAssetType(c.Request.Context(), id, patch)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// DeleteAssetType handles DELETE /api/asset-types/:id.
func (h *Handler) DeleteAssetType(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteAssetType(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetSensorThresholds handles GET /api/sensor-thresholds.
func (h *Handler) GetSensorThresholds(c *gin.Context) {
	thresholds, err := h.svc.GetSensorThresholds(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, thresholds)
}

type createThresholdRequest struct {
	SensorName string `json:"sensor_name" binding:"required"`
	service.CreateSensorThresholdInput
}

// CreateSensorThreshold handles POST /api/sensor-thresholds.
func (h *Handler) CreateSensorThreshold(c *gin.Context) {
	var req createThresholdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Sensor name is required"})
		return
	}
	req.CreateSensorThresholdInput.SensorName = req.SensorName

	t, err := h.svc.CreateSensorThreshold(c.Request.Context(), req.CreateSensorThresholdInput)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// UpdateSensorThreshold handles PUT /api/sensor-thresholds/:id.
func (h *Handler) UpdateSensorThreshold(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var patch service.SensorThresholdPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	t, err := h.svc.UpdateSensorThreshold(c.Request.Context(), id, patch)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// DeleteSensorThreshold handles DELETE /api/sensor-thresholds/:id.
func (h *Handler) DeleteSensorThreshold(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteSensorThreshold(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetAccessRequests handles GET /api/access-requests.
func (h *Handler) GetAccessRequests(c *gin.Context) {
	requests, err := h.svc.GetAccessRequests(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

type createAccessRequestRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	service.CreateAccessRequestInput
}

// CreateAccessRequest handles POST /api/access-requests.
func (h *Handler) CreateAccessRequest(c *gin.Context) {
	var req createAccessRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name and email are required"})
		return
	}
	req.CreateAccessRequestInput.Name = req.Name
	req.CreateAccessRequestInput.Email = req.Email

	r, err := h.svc.CreateAccessRequest(c.Request.Context(), req.CreateAccessRequestInput)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, r)
}

type reviewAccessRequestBody struct {
	Approve  *bool  `json:"approve" binding:"required"`
	Reviewer string `json:"reviewer" binding:"required"`
}

// ReviewAccessRequest handles PUT /api/access-requests/:id.
func (h *Handler) ReviewAccessRequest(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reviewAccessRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Approve and reviewer are required"})
		return
	}
	r, err := h.svc.ReviewAccessRequest(c.Request.Context(), id, *req.Approve, req.Reviewer)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// GetAIModelInfo handles GET /api/ai/model.
func (h *Handler) GetAIModelInfo(c *gin.Context) {
	info, err := h.svc.GetAIModelInfo(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

// TrainAIModel handles POST /api/ai/model/train with a 202 acknowledgement.
func (h *Handler) TrainAIModel(c *gin.Context) {
	result, err := h.svc.TrainAIModel(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, result)
}
