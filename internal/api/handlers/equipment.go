package handlers

import (
	"net/http"

	"openlab-reservation-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// EquipmentHandler serves the equipment catalog reads
type EquipmentHandler struct {
	service service.EquipmentServiceInterface
}

// NewEquipmentHandler creates a new equipment handler
func NewEquipmentHandler(service service.EquipmentServiceInterface) *EquipmentHandler {
	return &EquipmentHandler{service: service}
}

// ListEquipments godoc
// @Summary List equipment
// @Description Returns catalog rows matching the comma-joined line/class/type filters
// @Tags equipments
// @Produce json
// @Param lineId query string false "Comma-joined line ids"
// @Param largeClass query string false "Comma-joined process classes"
// @Param eqpType query string false "Comma-joined equipment types"
// @Success 200 {array} models.Equipment
// @Failure 500 {object} map[string]string
// @Router /equipments [get]
func (h *EquipmentHandler) ListEquipments(c *gin.Context) {
	equipments, err := h.service.ListEquipments(c.Query("lineId"), c.Query("largeClass"), c.Query("eqpType"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list equipments", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, equipments)
}

// GetLines godoc
// @Summary List line ids
// @Description Returns the distinct line ids of the catalog
// @Tags equipments
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} map[string]string
// @Router /equipments/lines [get]
func (h *EquipmentHandler) GetLines(c *gin.Context) {
	lines, err := h.service.GetLines()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list lines", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, lines)
}

// GetClasses godoc
// @Summary List process classes
// @Description Returns the distinct classes, optionally scoped to the given lines
// @Tags equipments
// @Produce json
// @Param lineId query string false "Comma-joined line ids"
// @Success 200 {array} string
// @Failure 500 {object} map[string]string
// @Router /equipments/classes [get]
func (h *EquipmentHandler) GetClasses(c *gin.Context) {
	classes, err := h.service.GetClasses(c.Query("lineId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list classes", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, classes)
}
