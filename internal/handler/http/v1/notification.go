package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// @Summary List recent notifications
// @Description Newest first. With user_id only notifications not yet read by that user are returned.
// @Tags Notifications
// @Produce json
// @Param user_id query string false "Reader user ID"
// @Param limit query int false "Maximum number of notifications (default 10, max 100)"
// @Success 200 {array} NotificationResponse
// @Failure 400 {object} MessageResponse "Invalid query parameters"
// @Failure 500 {object} MessageResponse "Internal server error"
// @Router /api/notification [get]
func (h *Handler) listNotifications(c *gin.Context) {
	log := h.logger.WithField("method", "listNotifications")

	var unreadBy *uuid.UUID
	if raw := c.Query("user_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, MessageResponse{Message: "invalid user ID", Field: "user_id"})
			return
		}
		unreadBy = &id
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, MessageResponse{Message: "limit must be an integer", Field: "limit"})
			return
		}
		limit = n
	}

	notifications, err := h.notificationService.ListRecent(c.Request.Context(), unreadBy, limit)
	if err != nil {
		h.respondError(c, log, err, "notification")
		return
	}
	c.JSON(http.StatusOK, ModelsToNotificationResponses(notifications))
}

// @Summary Mark a notification as read
// @Description Idempotent per user.
// @Tags Notifications
// @Accept json
// @Produce json
// @Param id path string true "Notification ID"
// @Param request body MarkAsReadRequest true "Reader"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} MessageResponse "Invalid request"
// @Failure 404 {object} MessageResponse "Notification not found"
// @Failure 500 {object} MessageResponse "Internal server error"
// @Router /api/notification/marcar-leida/{id} [patch]
func (h *Handler) markNotificationAsRead(c *gin.Context) {
	id, ok := pathID(c, "id", "notification")
	if !ok {
		return
	}
	log := h.logger.WithFields(logrus.Fields{"method": "markNotificationAsRead", "id": id})

	var input MarkAsReadRequest
	if !h.bind(c, log, &input) {
		return
	}
	userID, err := uuid.Parse(input.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, MessageResponse{Message: "invalid user ID", Field: "user_id"})
		return
	}

	if err := h.notificationService.MarkAsRead(c.Request.Context(), id, userID); err != nil {
		h.respondError(c, log, err, "notification")
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "notification marked as read"})
}
