package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// @Summary Create an SOS alert
// @Description Persist a new alert, record a "created" notification and email the creator's emergency contacts.
// @Tags Alerts
// @Accept json
// @Produce json
// @Param alert body CreateAlertRequest true "Alert creation request"
// @Success 201 {object} CreateAlertResponse
// @Failure 400 {object} MessageResponse "Invalid request body or validation error"
// @Failure 500 {object} MessageResponse "Internal server error"
// @Router /api/alertas/crear [post]
func (h *Handler) createAlert(c *gin.Context) {
	var input CreateAlertRequest
	log := h.logger.WithField("method", "createAlert")

	if !h.bind(c, log, &input) {
		return
	}
	creatorID, err := uuid.Parse(input.CreatorID)
	if err != nil {
		c.JSON(http.StatusBadRequest, MessageResponse{Message: "invalid creator ID", Field: "creator_id"})
		return
	}

	alert := DTOToAlertModel(input, creatorID)
	notification, err := h.alertService.CreateAlert(c.Request.Context(), alert)
	if err != nil {
		h.respondError(c, log, err, "alert")
		return
	}

	c.JSON(http.StatusCreated, CreateAlertResponse{
		Message:      "alert created successfully",
		Alert:        ModelToAlertResponse(alert),
		Notification: ModelToNotificationResponse(notification),
	})
}

// @Summary List all alerts
// @Description Administrative list of every alert with creator and handler details. Requires API key.
// @Tags Alerts
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} AlertResponse
// @Failure 401 {object} MessageResponse "Unauthorized"
// @Failure 500 {object} MessageResponse "Internal server error"
// @Router /api/alertas [get]
func (h *Handler) listAlerts(c *gin.Context) {
	log := h.logger.WithField("method", "listAlerts")

	alerts, err := h.alertService.ListAll(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err, "alert")
		return
	}
	c.JSON(http.StatusOK, ModelsToAlertResponses(alerts))
}

// @Summary List alerts of a user
// @Description Visible alerts created by the user, newest first.
// @Tags Alerts
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {array} AlertResponse
// @Failure 400 {object} MessageResponse "Invalid user ID"
// @Failure 500 {object} MessageResponse "Internal server error"
// @Router /api/alertas/usuario/{id} [get]
func (h *Handler) listUserAlerts(c *gin.Context) {
	userID, ok := pathID(c, "id", "user")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "listUserAlerts").WithField("user_id", userID)

	alerts, err := h.alertService.ListByCreator(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, log, err, "alert")
		return
	}
	c.JSON(http.StatusOK, ModelsToAlertResponses(alerts))
}

// @Summary List open alerts
// @Description Visible alerts in pending, assigned or en-route status for responders, newest first.
// @Tags Alerts
// @Produce json
// @Success 200 {array} AlertResponse
// @Failure 500 {object} MessageResponse "Internal server error"
// @Router /api/alertas/pendientes [get]
func (h *Handler) listPendingAlerts(c *gin.Context) {
	log := h.logger.WithField("method", "listPendingAlerts")

	alerts, err := h.alertService.ListPending(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err, "alert")
		return
	}
	c.JSON(http.StatusOK, ModelsToAlertResponses(alerts))
}

// @Summary List alerts resolved by a police user
// @Tags Alerts
// @Produce json
// @Param policiaId path string true "Police user ID"
// @Success 200 {array} AlertResponse
// @Failure 400 {object} MessageResponse "Invalid police ID"
// @Failure 500 {object} MessageResponse "Internal server error"
// @Router /api/alertas/atendidas/{policiaId} [get]
func (h *Handler) listResolvedAlerts(c *gin.Context) {
	policeID, ok := pathID(c, "policiaId", "police")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "listResolvedAlerts").WithField("police_id", policeID)

	alerts, err := h.alertService.ListResolvedByHandler(c.Request.Context(), policeID)
	if err != nil {
		h.respondError(c, log, err, "alert")
		return
	}
	c.JSON(http.StatusOK, ModelsToAlertResponses(alerts))
}

// @Summary Change alert status
// @Description Apply a status transition. Resolving requires resolution notes; illegal transitions are rejected.
// @Tags Alerts
// @Accept json
// @Produce json
// @Param id path string true "Alert ID"
// @Param update body UpdateStatusRequest true "Status transition"
// @Success 200 {object} AlertResponse
// @Failure 400 {object} MessageResponse "Invalid request, validation error or illegal transition"
// @Failure 404 {object} MessageResponse "Alert not found"
// @Failure 500 {object} MessageResponse "Internal server error"
// @Router /api/alertas/{id}/status [put]
func (h *Handler) updateAlertStatus(c *gin.Context) {
	id, ok := pathID(c, "id", "alert")
	if !ok {
		return
	}
	log := h.logger.WithFields(logrus.Fields{"method": "updateAlertStatus", "id": id})

	var input UpdateStatusRequest
	if !h.bind(c, log, &input) {
		return
	}

	alert, err := h.alertService.UpdateStatus(c.Request.Context(), id, DTOToStatusUpdate(input))
	if err != nil {
		h.respondError(c, log, err, "alert")
		return
	}
	c.JSON(http.StatusOK, ModelToAlertResponse(alert))
}

// @Summary Cancel an alert
// @Description Cancel the alert and hide it from the creator's list.
// @Tags Alerts
// @Produce json
// @Param id path string true "Alert ID"
// @Success 200 {object} AlertResponse
// @Failure 400 {object} MessageResponse "Invalid alert ID or alert already closed"
// @Failure 404 {object} MessageResponse "Alert not found"
// @Failure 500 {object} MessageResponse "Internal server error"
// @Router /api/alertas/{id}/cancelar [put]
func (h *Handler) cancelAlert(c *gin.Context) {
	id, ok := pathID(c, "id", "alert")
	if !ok {
		return
	}
	log := h.logger.WithFields(logrus.Fields{"method": "cancelAlert", "id": id})

	alert, err := h.alertService.CancelAlert(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err, "alert")
		return
	}
	c.JSON(http.StatusOK, ModelToAlertResponse(alert))
}
