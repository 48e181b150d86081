package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/sos_alert_system/internal/config"
	"github.com/shenikar/sos_alert_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	alertService        service.AlertService
	authService         service.AuthService
	userService         service.UserService
	contactService      service.ContactService
	notificationService service.NotificationService
	logger              *logrus.Logger
	validate            *validator.Validate
	cfg                 *config.Config
}

func NewHandler(
	alertService service.AlertService,
	authService service.AuthService,
	userService service.UserService,
	contactService service.ContactService,
	notificationService service.NotificationService,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		alertService:        alertService,
		authService:         authService,
		userService:         userService,
		contactService:      contactService,
		notificationService: notificationService,
		logger:              logger,
		validate:            validator.New(),
		cfg:                 cfg,
	}
}

// bind разбирает и валидирует тело запроса; при ошибке ответ уже отправлен
func (h *Handler) bind(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, MessageResponse{Message: "invalid request body"})
		return false
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, MessageResponse{Message: err.Error()})
		return false
	}
	return true
}

// pathID разбирает UUID из параметра пути
func pathID(c *gin.Context, param, resource string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, MessageResponse{Message: "invalid " + resource + " ID"})
		return uuid.Nil, false
	}
	return id, true
}

// respondError переводит ошибку сервиса в HTTP-ответ. Текст 500 не раскрывает исходную ошибку.
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error, resource string) {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		log.WithError(err).Warn("Request rejected by validation")
		c.JSON(http.StatusBadRequest, MessageResponse{Message: vErr.Message, Field: vErr.Field})
	case errors.Is(err, service.ErrInvalidTransition):
		log.WithError(err).Warn("Invalid status transition")
		c.JSON(http.StatusBadRequest, MessageResponse{Message: err.Error()})
	case errors.Is(err, service.ErrConflict):
		log.WithError(err).Warn("Conflict")
		c.JSON(http.StatusBadRequest, MessageResponse{Message: "username or email already exists"})
	case errors.Is(err, service.ErrInvalidCredentials):
		log.Warn("Invalid credentials")
		c.JSON(http.StatusBadRequest, MessageResponse{Message: service.ErrInvalidCredentials.Error()})
	case errors.Is(err, service.ErrNotFound):
		log.WithError(err).Warn("Resource not found")
		c.JSON(http.StatusNotFound, MessageResponse{Message: resource + " not found"})
	default:
		log.WithError(err).Error("Request failed in service")
		c.JSON(http.StatusInternalServerError, MessageResponse{Message: "internal server error"})
	}
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /api/test [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
