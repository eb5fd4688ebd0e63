package handlers

import (
	"net/http"

	apperrors "openlab-reservation-backend/internal/errors"
	"openlab-reservation-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves the standalone reception-authority probe
type AuthHandler struct {
	service service.AuthServiceInterface
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service service.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{service: service}
}

// CheckReceptionResponse carries the probe verdict
type CheckReceptionResponse struct {
	IsAuthorized bool `json:"isAuthorized"`
}

// CheckReception godoc
// @Summary Check reception authority
// @Description Answers whether the employee may receive reservations on the equipment at the site
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.CheckReceptionRequest true "Probe payload"
// @Success 200 {object} CheckReceptionResponse
// @Failure 400 {object} map[string]string
// @Router /auth/check-reception [post]
func (h *AuthHandler) CheckReception(c *gin.Context) {
	var req service.CheckReceptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	authorized, err := h.service.CheckReception(&req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check reception authority", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, CheckReceptionResponse{IsAuthorized: authorized})
}
