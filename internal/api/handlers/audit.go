package handlers

import (
	"net/http"

	apperrors "openlab-reservation-backend/internal/errors"
	"openlab-reservation-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AuditHandler serves the fire-and-forget UI audit writes
type AuditHandler struct {
	service service.AuditServiceInterface
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(service service.AuditServiceInterface) *AuditHandler {
	return &AuditHandler{service: service}
}

// SaveSearchHistory godoc
// @Summary Save a search-history row
// @Description Records the filter state a shared UI control submitted on search
// @Tags uiaudit
// @Accept json
// @Produce json
// @Param request body service.SearchHistoryRequest true "Audit payload"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Router /ui-audit/search-history [post]
func (h *AuditHandler) SaveSearchHistory(c *gin.Context) {
	var req service.SearchHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.service.SaveSearchHistory(&req); err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save search history", "details": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
