package handlers

import (
	"net/http"

	apperrors "openlab-reservation-backend/internal/errors"
	"openlab-reservation-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// NotificationHandler serves the recipient grid and the template fan-out
type NotificationHandler struct {
	service service.NotificationServiceInterface
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(service service.NotificationServiceInterface) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// NoticeTemplateResponse reports how many recipient rows were inserted
type NoticeTemplateResponse struct {
	InsertedCount int `json:"insertedCount"`
}

// ListReceivers godoc
// @Summary List notification receivers
// @Description Returns the distinct recipients of an issue and approval sequence
// @Tags notifications
// @Produce json
// @Param issueNo query string true "Issue number"
// @Param approvalSeq query string false "Approval sequence, defaults to 0"
// @Success 200 {array} service.ReceiverResponse
// @Failure 400 {object} map[string]string
// @Router /notifications/receivers [get]
func (h *NotificationHandler) ListReceivers(c *gin.Context) {
	receivers, err := h.service.ListReceivers(c.Query("issueNo"), c.Query("approvalSeq"))
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

// ApplyNoticeTemplate godoc
// @Summary Apply a notice template
// @Description Copies the recipients of a NOTICE template onto an issue, plus the requester
// @Tags notifications
// @Accept json
// @Produce json
// @Param request body service.NoticeTemplateRequest true "Template payload"
// @Success 200 {object} NoticeTemplateResponse
// @Failure 400 {object} map[string]string
// @Router /notifications/request [post]
func (h *NotificationHandler) ApplyNoticeTemplate(c *gin.Context) {
	var req service.NoticeTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	inserted, err := h.service.ApplyNoticeTemplate(&req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to apply notice template", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, NoticeTemplateResponse{InsertedCount: inserted})
}
