package service

//go:generate mockgen -source=alert.go -destination=mocks/alert.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shenikar/sos_alert_system/internal/config"
	"github.com/shenikar/sos_alert_system/internal/mailer"
	"github.com/shenikar/sos_alert_system/internal/metrics"
	"github.com/shenikar/sos_alert_system/internal/models"
	"github.com/sirupsen/logrus"
)

// AlertRepository определяет контракт для работы с бд тревог
type AlertRepository interface {
	Create(ctx context.Context, alert *models.Alert) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Alert, error)
	Update(ctx context.Context, alert *models.Alert) error
	ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]*models.Alert, error)
	ListByStatuses(ctx context.Context, statuses []models.AlertStatus) ([]*models.Alert, error)
	ListAll(ctx context.Context) ([]*models.Alert, error)
	ListResolvedByHandler(ctx context.Context, handlerID uuid.UUID) ([]*models.Alert, error)
	HideByCreator(ctx context.Context, creatorID uuid.UUID) (int64, error)
	DeleteByCreator(ctx context.Context, creatorID uuid.UUID) ([]uuid.UUID, error)
}

// AlertService определяет контракт жизненного цикла тревоги
type AlertService interface {
	CreateAlert(ctx context.Context, alert *models.Alert) (*models.Notification, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, update models.StatusUpdate) (*models.Alert, error)
	CancelAlert(ctx context.Context, id uuid.UUID) (*models.Alert, error)
	ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]*models.Alert, error)
	ListPending(ctx context.Context) ([]*models.Alert, error)
	ListAll(ctx context.Context) ([]*models.Alert, error)
	ListResolvedByHandler(ctx context.Context, handlerID uuid.UUID) ([]*models.Alert, error)
}

type alertService struct {
	alerts           AlertRepository
	notifications    NotificationRepository
	contacts         ContactRepository
	users            UserRepository
	dispatcher       mailer.Dispatcher
	logger           *logrus.Logger
	detailPolicy     DetailPolicy
	minNotesLength   int
	notificationZone *time.Location
}

func NewAlertService(
	alerts AlertRepository,
	notifications NotificationRepository,
	contacts ContactRepository,
	users UserRepository,
	dispatcher mailer.Dispatcher,
	logger *logrus.Logger,
	cfg *config.Config,
) AlertService {
	return &alertService{
		alerts:           alerts,
		notifications:    notifications,
		contacts:         contacts,
		users:            users,
		dispatcher:       dispatcher,
		logger:           logger,
		detailPolicy:     NewDetailPolicy(cfg),
		minNotesLength:   cfg.ResolutionNotesMinChars,
		notificationZone: cfg.Location(),
	}
}

// CreateAlert валидирует и сохраняет тревогу, создает уведомление и рассылает письма контактам
func (s *alertService) CreateAlert(ctx context.Context, alert *models.Alert) (*models.Notification, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "alert",
		"method":     "CreateAlert",
		"creator_id": alert.CreatorID,
	})

	if err := s.validateNewAlert(alert); err != nil {
		log.WithError(err).Warn("Alert validation failed")
		return nil, err
	}

	alert.Address = strings.TrimSpace(alert.Address)
	alert.Detail = strings.TrimSpace(alert.Detail)
	alert.Status = models.StatusPending
	alert.Visible = true
	alert.HandlerID = nil
	alert.ResolutionNotes = ""
	if alert.Evidence == nil {
		alert.Evidence = []string{}
	}
	if alert.Timestamp.IsZero() {
		alert.Timestamp = time.Now().UTC()
	}

	if err := s.alerts.Create(ctx, alert); err != nil {
		log.WithError(err).Error("Failed to create alert in repository")
		return nil, fmt.Errorf("service: could not create alert: %w", err)
	}
	log = log.WithField("alert_id", alert.ID)
	log.Info("Alert created successfully")
	metrics.AlertTransitionsTotal.WithLabelValues(string(models.StatusPending)).Inc()

	// Тревога уже сохранена: сбой уведомления не должен мешать рассылке контактам
	notification := s.recordNotification(ctx, alert, models.NotificationCreated,
		fmt.Sprintf("New SOS alert at %s", alert.Address))

	s.notifyContacts(ctx, alert)

	return notification, nil
}

func (s *alertService) validateNewAlert(alert *models.Alert) error {
	if strings.TrimSpace(alert.Address) == "" {
		return newValidationError("address", "address is required")
	}
	if alert.CreatorID == uuid.Nil {
		return newValidationError("creator_id", "creator is required")
	}
	if !validCoordinates(alert.Location) {
		return newValidationError("location", "location must contain valid lat and lng")
	}
	return s.detailPolicy.Validate(alert.Detail)
}

// notifyContacts рассылает письма контактам создателя; ошибки только логируются
func (s *alertService) notifyContacts(ctx context.Context, alert *models.Alert) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "notifyContacts",
		"alert_id": alert.ID,
	})

	contacts, err := s.contacts.ListNotifiable(ctx, alert.CreatorID)
	if err != nil {
		log.WithError(err).Error("Failed to load emergency contacts")
		return
	}
	if len(contacts) == 0 {
		log.Info("No emergency contacts to notify")
		return
	}

	msgs := make([]mailer.Message, 0, len(contacts))
	for _, contact := range contacts {
		msg, err := mailer.NewAlertMessage(contact, alert, s.notificationZone)
		if err != nil {
			log.WithError(err).WithField("contact_id", contact.ID).Error("Failed to compose email")
			continue
		}
		msgs = append(msgs, msg)
	}

	outcomes := s.dispatcher.Dispatch(ctx, msgs)
	failed := mailer.Failed(outcomes)
	log.WithFields(logrus.Fields{
		"sent":   len(outcomes) - failed,
		"failed": failed,
	}).Info("Emergency contacts notified")
}

// recordNotification сохраняет уведомление; при ошибке возвращает nil и пишет в лог
func (s *alertService) recordNotification(ctx context.Context, alert *models.Alert, typ models.NotificationType, message string) *models.Notification {
	notification := &models.Notification{
		AlertID: alert.ID,
		Message: message,
		ReadBy:  []uuid.UUID{},
		Type:    typ,
	}
	if err := s.notifications.Create(ctx, notification); err != nil {
		s.logger.WithFields(logrus.Fields{
			"service":  "alert",
			"alert_id": alert.ID,
			"type":     typ,
		}).WithError(err).Error("Failed to create notification")
		return nil
	}
	return notification
}

// UpdateStatus применяет переход статуса по таблице переходов
func (s *alertService) UpdateStatus(ctx context.Context, id uuid.UUID, update models.StatusUpdate) (*models.Alert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "UpdateStatus",
		"alert_id": id,
		"status":   update.Status,
	})
	log.Info("Attempting to update alert status")

	status, ok := models.ParseAlertStatus(update.Status)
	if !ok {
		return nil, newValidationError("status", "invalid status %q", update.Status)
	}
	if status == models.StatusCancelled {
		return s.CancelAlert(ctx, id)
	}

	notes := strings.TrimSpace(update.ResolutionNotes)
	if status == models.StatusResolved && utf8.RuneCountInString(notes) < s.minNotesLength {
		return nil, newValidationError("resolution_notes",
			"resolution notes of at least %d characters are required", s.minNotesLength)
	}

	alert, err := s.alerts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("Attempted to update a non-existent alert")
		}
		return nil, fmt.Errorf("service: could not get alert %s: %w", id, err)
	}

	if err := checkTransition(alert.Status, status); err != nil {
		log.WithField("from", alert.Status).Warn("Rejected status transition")
		return nil, err
	}

	if update.HandlerID != nil {
		if err := s.checkHandler(ctx, *update.HandlerID); err != nil {
			return nil, err
		}
		handlerID := *update.HandlerID
		alert.HandlerID = &handlerID
	}

	if update.Origin != nil && update.Destination != nil {
		alert.Route = &models.Route{Origin: *update.Origin, Destination: *update.Destination}
	}

	if status == models.StatusResolved {
		alert.ResolutionNotes = notes
		if url := strings.TrimSpace(update.EvidenceURL); url != "" {
			alert.Evidence = append(alert.Evidence, url)
		}
	}

	alert.Status = status
	if err := s.alerts.Update(ctx, alert); err != nil {
		log.WithError(err).Error("Failed to update alert in repository")
		return nil, fmt.Errorf("service: could not update alert: %w", err)
	}
	metrics.AlertTransitionsTotal.WithLabelValues(string(status)).Inc()

	if status == models.StatusResolved {
		s.recordNotification(ctx, alert, models.NotificationResolved,
			fmt.Sprintf("Alert at %s was resolved", alert.Address))
	}

	log.Info("Alert status updated successfully")
	return alert, nil
}

// checkTransition сверяет переход с таблицей; закрытую тревогу менять нельзя
func checkTransition(from, to models.AlertStatus) error {
	if from.IsTerminal() {
		return fmt.Errorf("%w: alert is already %s", ErrInvalidTransition, from)
	}
	if !from.CanTransitionTo(to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	return nil
}

// checkHandler проверяет, что ответственный существует и имеет роль полиции или администратора
func (s *alertService) checkHandler(ctx context.Context, handlerID uuid.UUID) error {
	user, err := s.users.GetByID(ctx, handlerID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return newValidationError("handler_id", "handler %s not found", handlerID)
		}
		return fmt.Errorf("service: could not get handler: %w", err)
	}
	if !user.Role.CanHandleAlerts() {
		return newValidationError("handler_id", "user %s is not allowed to handle alerts", handlerID)
	}
	return nil
}

// CancelAlert отменяет тревогу и скрывает ее из списков
func (s *alertService) CancelAlert(ctx context.Context, id uuid.UUID) (*models.Alert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "CancelAlert",
		"alert_id": id,
	})
	log.Info("Attempting to cancel alert")

	alert, err := s.alerts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get alert %s: %w", id, err)
	}

	if err := checkTransition(alert.Status, models.StatusCancelled); err != nil {
		log.WithField("from", alert.Status).Warn("Rejected cancellation")
		return nil, err
	}

	alert.Status = models.StatusCancelled
	alert.Visible = false
	if err := s.alerts.Update(ctx, alert); err != nil {
		log.WithError(err).Error("Failed to cancel alert in repository")
		return nil, fmt.Errorf("service: could not cancel alert: %w", err)
	}
	metrics.AlertTransitionsTotal.WithLabelValues(string(models.StatusCancelled)).Inc()

	s.recordNotification(ctx, alert, models.NotificationCancelled,
		fmt.Sprintf("Alert at %s was cancelled", alert.Address))

	log.Info("Alert cancelled successfully")
	return alert, nil
}

// ListByCreator возвращает видимые тревоги пользователя, новые первыми
func (s *alertService) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]*models.Alert, error) {
	alerts, err := s.alerts.ListByCreator(ctx, creatorID)
	if err != nil {
		s.logger.WithField("creator_id", creatorID).WithError(err).Error("Failed to list alerts by creator")
		return nil, fmt.Errorf("service: could not list alerts: %w", err)
	}
	return alerts, nil
}

// ListPending возвращает открытые видимые тревоги для дежурных
func (s *alertService) ListPending(ctx context.Context) ([]*models.Alert, error) {
	alerts, err := s.alerts.ListByStatuses(ctx, models.OpenStatuses)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list pending alerts")
		return nil, fmt.Errorf("service: could not list pending alerts: %w", err)
	}
	return alerts, nil
}

// ListAll возвращает все тревоги со связанными пользователями
func (s *alertService) ListAll(ctx context.Context) ([]*models.Alert, error) {
	alerts, err := s.alerts.ListAll(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list alerts")
		return nil, fmt.Errorf("service: could not list alerts: %w", err)
	}
	return alerts, nil
}

// ListResolvedByHandler возвращает тревоги, закрытые указанным полицейским
func (s *alertService) ListResolvedByHandler(ctx context.Context, handlerID uuid.UUID) ([]*models.Alert, error) {
	alerts, err := s.alerts.ListResolvedByHandler(ctx, handlerID)
	if err != nil {
		s.logger.WithField("handler_id", handlerID).WithError(err).Error("Failed to list resolved alerts")
		return nil, fmt.Errorf("service: could not list resolved alerts: %w", err)
	}
	return alerts, nil
}
