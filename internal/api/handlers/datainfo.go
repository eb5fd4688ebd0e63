package handlers

import (
	"errors"
	"net/http"

	apperrors "openlab-reservation-backend/internal/errors"
	"openlab-reservation-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DataInfoHandler serves the generic class/method dispatch endpoint the
// shared UI controls call.
type DataInfoHandler struct {
	service service.DataInfoServiceInterface
}

// NewDataInfoHandler creates a new datainfo handler
func NewDataInfoHandler(service service.DataInfoServiceInterface) *DataInfoHandler {
	return &DataInfoHandler{service: service}
}

// Execute godoc
// @Summary Execute a datainfo lookup
// @Description Routes a className/methodName pair to one of the fixed lookup queries
// @Tags datainfo
// @Accept json
// @Produce json
// @Param request body service.DataInfoRequest true "Dispatch payload"
// @Success 200 {object} repository.DataTable
// @Failure 400 {object} map[string]string
// @Router /datainfo/execute [post]
func (h *DataInfoHandler) Execute(c *gin.Context) {
	var req service.DataInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	table, err := h.service.Execute(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnknownDataInfoMethod) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to execute datainfo lookup", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, table)
}
