package handlers

import (
	"errors"
	"net/http"

	"openlab-reservation-backend/internal/database/models"
	apperrors "openlab-reservation-backend/internal/errors"
	"openlab-reservation-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// OpenLabHandler serves the /main route surface: the page-load aggregate and
// the admin-view variants of the reservation, equipment and authorization
// grids. It reuses the same services as the plain surface; only the query
// contract differs.
type OpenLabHandler struct {
	lookupService      service.LookupServiceInterface
	reservationService service.ReservationServiceInterface
	equipmentService   service.EquipmentServiceInterface
	authService        service.AuthServiceInterface
	notificationSvc    service.NotificationServiceInterface
}

// NewOpenLabHandler creates a new openlab handler
func NewOpenLabHandler(
	lookupService service.LookupServiceInterface,
	reservationService service.ReservationServiceInterface,
	equipmentService service.EquipmentServiceInterface,
	authService service.AuthServiceInterface,
	notificationSvc service.NotificationServiceInterface,
) *OpenLabHandler {
	return &OpenLabHandler{
		lookupService:      lookupService,
		reservationService: reservationService,
		equipmentService:   equipmentService,
		authService:        authService,
		notificationSvc:    notificationSvc,
	}
}

// GetLookups godoc
// @Summary Page-load lookups
// @Description Returns filter facets, the equipment catalog and the site-scoped directory in one aggregate
// @Tags main
// @Produce json
// @Param site query string false "Site code; ALL disables the employee filter"
// @Success 200 {object} service.LookupResponse
// @Failure 500 {object} map[string]string
// @Router /main/lookups [get]
func (h *OpenLabHandler) GetLookups(c *gin.Context) {
	lookups, err := h.lookupService.GetLookups(c.Query("site"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load lookups", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, lookups)
}

// ListReservations godoc
// @Summary List reservations (admin view)
// @Description Returns reservations filtered by line, class, purpose and requester site
// @Tags main
// @Produce json
// @Param lineId query string false "Comma-joined line ids"
// @Param largeClass query string false "Comma-joined process classes"
// @Param purpose query string false "Purpose substring; ALL disables the filter"
// @Param site query string false "Requester site; ALL disables the filter"
// @Success 200 {array} models.Reservation
// @Failure 500 {object} map[string]string
// @Router /main/openlab-resv [get]
func (h *OpenLabHandler) ListReservations(c *gin.Context) {
	reservations, err := h.reservationService.ListReservations(service.ReservationListRequest{
		LineIDs:         models.SplitFilter(c.Query("lineId")),
		Classes:         models.SplitFilter(c.Query("largeClass")),
		PurposeContains: c.Query("purpose"),
		Site:            models.NormalizeSite(c.Query("site")),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list reservations", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reservations)
}

// GetReservation godoc
// @Summary Get a reservation (admin view)
// @Tags main
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} service.ReservationResponse
// @Failure 404 {object} map[string]string
// @Router /main/openlab-resv/{id} [get]
func (h *OpenLabHandler) GetReservation(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	reservation, err := h.reservationService.GetReservation(id)
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
// @Summary Create a reservation (admin view)
// @Tags main
// @Accept json
// @Produce json
// @Param reservation body service.ReservationUpsertRequest true "Reservation payload"
// @Success 201 {object} service.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /main/openlab-resv [post]
func (h *OpenLabHandler) CreateReservation(c *gin.Context) {
	var req service.ReservationUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	reservation, err := h.reservationService.CreateReservation(&req)
	if err != nil {
		respondReservationWriteError(c, err, "Failed to create reservation")
		return
	}
	c.JSON(http.StatusCreated, reservation)
}

// UpdateReservation godoc
// @Summary Update a reservation (admin view)
// @Tags main
// @Accept json
// @Produce json
// @Param id path int true "Reservation ID"
// @Param reservation body service.ReservationUpsertRequest true "Reservation payload"
// @Success 200 {object} service.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /main/openlab-resv/{id} [put]
func (h *OpenLabHandler) UpdateReservation(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req service.ReservationUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	reservation, err := h.reservationService.UpdateReservation(id, &req)
	if err != nil {
		respondReservationWriteError(c, err, "Failed to update reservation")
		return
	}
	c.JSON(http.StatusOK, reservation)
}

// DeleteReservation godoc
// @Summary Delete a reservation (admin view)
// @Tags main
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /main/openlab-resv/{id} [delete]
func (h *OpenLabHandler) DeleteReservation(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.reservationService.DeleteReservation(id); err != nil {
		if errors.Is(err, apperrors.ErrReservationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete reservation", "details": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// ListEquipments godoc
// @Summary List equipment with reservation counts
// @Tags main
// @Produce json
// @Param lineId query string false "Comma-joined line ids"
// @Param largeClass query string false "Comma-joined process classes"
// @Success 200 {array} repository.EquipmentCountRow
// @Failure 500 {object} map[string]string
// @Router /main/openlab-eqp [get]
func (h *OpenLabHandler) ListEquipments(c *gin.Context) {
	rows, err := h.equipmentService.ListWithReservationCounts(c.Query("lineId"), c.Query("largeClass"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list equipments", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// ListAuthorizations godoc
// @Summary List equipment authorizations
// @Tags main
// @Produce json
// @Param site query string false "Site code; ALL disables the filter"
// @Param eqpName query string false "Equipment id"
// @Param authType query string false "RESV or ADMIN"
// @Success 200 {array} repository.AuthRow
// @Failure 500 {object} map[string]string
// @Router /main/openlab-auth [get]
func (h *OpenLabHandler) ListAuthorizations(c *gin.Context) {
	rows, err := h.authService.ListAuthorizations(c.Query("site"), c.Query("eqpName"), c.Query("authType"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list authorizations", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// CreateAuthorization godoc
// @Summary Create an equipment authorization
// @Description Stores one grant; re-creating an existing grant returns the stored row unchanged
// @Tags main
// @Accept json
// @Produce json
// @Param request body service.AuthUpsertRequest true "Grant payload"
// @Success 200 {object} repository.AuthRow
// @Failure 400 {object} map[string]string
// @Router /main/openlab-auth [post]
func (h *OpenLabHandler) CreateAuthorization(c *gin.Context) {
	var req service.AuthUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	row, err := h.authService.CreateAuthorization(&req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create authorization", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, row)
}

// DeleteAuthorization godoc
// @Summary Delete an equipment authorization
// @Tags main
// @Produce json
// @Param id path int true "Authorization ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /main/openlab-auth/{id} [delete]
func (h *OpenLabHandler) DeleteAuthorization(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.authService.DeleteAuthorization(id); err != nil {
		if errors.Is(err, apperrors.ErrEquipmentAuthNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Authorization not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete authorization", "details": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// ListReceivers godoc
// @Summary List notification receivers (admin view)
// @Tags main
// @Produce json
// @Param issueNo query string true "Issue number"
// @Param approvalSeq query string false "Approval sequence, defaults to 0"
// @Success 200 {array} service.ReceiverResponse
// @Failure 400 {object} map[string]string
// @Router /main/openlab-receivers [get]
func (h *OpenLabHandler) ListReceivers(c *gin.Context) {
	receivers, err := h.notificationSvc.ListReceivers(c.Query("issueNo"), c.Query("approvalSeq"))
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list receivers", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, receivers)
}
