package service

//go:generate mockgen -source=notification.go -destination=mocks/notification.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/sos_alert_system/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	defaultNotificationLimit = 10
	maxNotificationLimit     = 100
)

// NotificationRepository определяет контракт для работы с бд уведомлений
type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	ListRecent(ctx context.Context, unreadBy *uuid.UUID, limit int) ([]*models.Notification, error)
	MarkAsRead(ctx context.Context, id, userID uuid.UUID) error
	DeleteByAlertIDs(ctx context.Context, alertIDs []uuid.UUID) error
}

// NotificationService определяет контракт для ленты уведомлений
type NotificationService interface {
	ListRecent(ctx context.Context, unreadBy *uuid.UUID, limit int) ([]*models.Notification, error)
	MarkAsRead(ctx context.Context, id, userID uuid.UUID) error
}

type notificationService struct {
	repo   NotificationRepository
	logger *logrus.Logger
}

func NewNotificationService(repo NotificationRepository, logger *logrus.Logger) NotificationService {
	return &notificationService{
		repo:   repo,
		logger: logger,
	}
}

// ListRecent возвращает последние уведомления; с unreadBy - только непрочитанные этим пользователем
func (s *notificationService) ListRecent(ctx context.Context, unreadBy *uuid.UUID, limit int) ([]*models.Notification, error) {
	if limit < 1 {
		limit = defaultNotificationLimit
	}
	if limit > maxNotificationLimit {
		limit = maxNotificationLimit
	}

	notifications, err := s.repo.ListRecent(ctx, unreadBy, limit)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "notification",
			"method":  "ListRecent",
		}).WithError(err).Error("Failed to list notifications")
		return nil, fmt.Errorf("service: could not list notifications: %w", err)
	}
	return notifications, nil
}

// MarkAsRead отмечает уведомление прочитанным; повторный вызов ничего не меняет
func (s *notificationService) MarkAsRead(ctx context.Context, id, userID uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":         "notification",
		"method":          "MarkAsRead",
		"notification_id": id,
		"user_id":         userID,
	})

	if userID == uuid.Nil {
		return newValidationError("user_id", "user_id is required")
	}

	if err := s.repo.MarkAsRead(ctx, id, userID); err != nil {
		log.WithError(err).Warn("Failed to mark notification as read")
		return fmt.Errorf("service: could not mark notification %s as read: %w", id, err)
	}

	log.Info("Notification marked as read")
	return nil
}
