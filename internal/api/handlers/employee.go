package handlers

import (
	"net/http"

	"openlab-reservation-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// EmployeeHandler serves the directory reads
type EmployeeHandler struct {
	service service.EmployeeServiceInterface
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(service service.EmployeeServiceInterface) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

// ListEmployees godoc
// @Summary List employees
// @Description Returns the directory, optionally filtered to one site
// @Tags employees
// @Produce json
// @Param site query string false "Site code"
// @Success 200 {array} models.Employee
// @Failure 500 {object} map[string]string
// @Router /employees [get]
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	employees, err := h.service.ListEmployees(c.Query("site"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list employees", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, employees)
}

// ListAdminCandidates godoc
// @Summary List admin candidates
// @Description Returns the distinct holders of ADMIN authority at a site
// @Tags employees
// @Produce json
// @Param site query string false "Site code"
// @Success 200 {array} service.AdminCandidateResponse
// @Failure 500 {object} map[string]string
// @Router /employees/admins [get]
func (h *EmployeeHandler) ListAdminCandidates(c *gin.Context) {
	candidates, err := h.service.ListAdminCandidates(c.Query("site"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list admin candidates", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, candidates)
}
