package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"openlab-reservation-backend/internal/database/models"
	apperrors "openlab-reservation-backend/internal/errors"
	"openlab-reservation-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ReservationHandler serves the plain reservation CRUD surface
type ReservationHandler struct {
	service service.ReservationServiceInterface
}

// NewReservationHandler creates a new reservation handler
func NewReservationHandler(service service.ReservationServiceInterface) *ReservationHandler {
	return &ReservationHandler{service: service}
}

// ListReservations godoc
// @Summary List reservations
// @Description Returns reservations matching the comma-joined line/class filters and the purpose tab
// @Tags reservations
// @Produce json
// @Param lineId query string false "Comma-joined line ids"
// @Param largeClass query string false "Comma-joined process classes"
// @Param tab query string false "Purpose substring; ALL disables the filter"
// @Success 200 {array} models.Reservation
// @Failure 500 {object} map[string]string
// @Router /reservations [get]
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	reservations, err := h.service.ListReservations(service.ReservationListRequest{
		LineIDs:         models.SplitFilter(c.Query("lineId")),
		Classes:         models.SplitFilter(c.Query("largeClass")),
		PurposeContains: c.Query("tab"),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list reservations", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reservations)
}

// GetReservation godoc
// @Summary Get a reservation
// @Description Returns one reservation with its notification recipient user ids
// @Tags reservations
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} service.ReservationResponse
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	reservation, err := h.service.GetReservation(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrReservationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get reservation", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reservation)
}

// CreateReservation godoc
// @Summary Create a reservation
// @Description Creates a reservation with a generated issue number and replaces its recipient set
// @Tags reservations
// @Accept json
// @Produce json
// @Param reservation body service.ReservationUpsertRequest true "Reservation payload"
// @Success 201 {object} service.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req service.ReservationUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	reservation, err := h.service.CreateReservation(&req)
	if err != nil {
		respondReservationWriteError(c, err, "Failed to create reservation")
		return
	}
	c.JSON(http.StatusCreated, reservation)
}

// UpdateReservation godoc
// @Summary Update a reservation
// @Description Edits a reservation in place; the issue number never changes
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path int true "Reservation ID"
// @Param reservation body service.ReservationUpsertRequest true "Reservation payload"
// @Success 200 {object} service.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [put]
func (h *ReservationHandler) UpdateReservation(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req service.ReservationUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	reservation, err := h.service.UpdateReservation(id, &req)
	if err != nil {
		respondReservationWriteError(c, err, "Failed to update reservation")
		return
	}
	c.JSON(http.StatusOK, reservation)
}

// DeleteReservation godoc
// @Summary Delete a reservation
// @Description Removes a reservation and all of its notification rows
// @Tags reservations
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) DeleteReservation(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.service.DeleteReservation(id); err != nil {
		if errors.Is(err, apperrors.ErrReservationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete reservation", "details": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func respondReservationWriteError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"error": "접수 권한이 없습니다."})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback, "details": err.Error()})
	}
}

// parseIDParam reads the numeric :id path parameter, answering 400 itself
// when the value is not a positive integer.
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}
