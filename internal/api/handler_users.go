package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"predictive-maintenance-backend/internal/service"
)

// GetUsers handles GET /api/users.
func (h *Handler) GetUsers(c *gin.Context) {
	users, err := h.svc.GetUsers(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUser handles GET /api/users/:id.
func (h *Handler) GetUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	u, err := h.svc.GetUserByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

type createUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	service.CreateUserInput
}

// CreateUser handles POST /api/users.
func (h *Handler) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name, email and password are required"})
		return
	}
	req.CreateUserInput.Name = req.Name
	req.CreateUserInput.Email = req.Email
	req.CreateUserInput.Password = req.Password

	u, err := h.svc.CreateUser(c.Request.Context(), req.CreateUserInput)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

// UpdateUser handles PUT /api/users/:id with a shallow-merge body.
func (h *Handler) UpdateUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var patch service.UserPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	u, err := h.svc.UpdateUser(c.Request.Context(), id, patch)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// DeleteUser handles DELETE /api/users/:id.
func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteUser(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type updateAvatarRequest struct {
	Avatar string `json:"avatar" binding:"required"`
}

// UpdateAvatar handles PUT /api/users/:id/avatar. A missing avatar payload
// short-circuits with 400.
func (h *Handler) UpdateAvatar(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req updateAvatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Avatar is required"})
		return
	}
	u, err := h.svc.UpdateAvatar(c.Request.Context(), id, req.Avatar)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// GetCompanySettings handles GET /api/company.
func (h *Handler) GetCompanySettings(c *gin.Context) {
	company, err := h.svc.GetCompanySettings(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

// UpdateCompanySettings handles PUT /api/company with a shallow-merge body.
func (h *Handler) UpdateCompanySettings(c *gin.Context) {
	var patch service.CompanyPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	company, err := h.svc.UpdateCompanySettings(c.Request.Context(), patch)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}
