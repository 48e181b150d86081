package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/sos_alert_system/internal/models"
	"github.com/shenikar/sos_alert_system/internal/service"
)

type NotificationRepository struct {
	db DB
}

func NewNotificationRepository(db DB) service.NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	if notification.ReadBy == nil {
		notification.ReadBy = []uuid.UUID{}
	}
	query := `
		INSERT INTO notifications (alert_id, message, read_by, type)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		notification.AlertID,
		notification.Message,
		notification.ReadBy,
		notification.Type,
	).Scan(&notification.ID, &notification.CreatedAt, &notification.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// ListRecent возвращает последние уведомления; с unreadBy - только непрочитанные этим пользователем
func (r *NotificationRepository) ListRecent(ctx context.Context, unreadBy *uuid.UUID, limit int) ([]*models.Notification, error) {
	query := `
		SELECT id, alert_id, message, read_by, type, created_at, updated_at
		FROM notifications
		WHERE $1::uuid IS NULL OR NOT ($1::uuid = ANY(read_by))
		ORDER BY created_at DESC
		LIMIT $2;
	`
	rows, err := r.db.Query(ctx, query, unreadBy, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	notifications := make([]*models.Notification, 0)
	for rows.Next() {
		n := &models.Notification{}
		if err := rows.Scan(&n.ID, &n.AlertID, &n.Message, &n.ReadBy, &n.Type, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan notification row: %w", err)
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return notifications, nil
}

// MarkAsRead добавляет пользователя в read_by; повторный вызов ничего не меняет
func (r *NotificationRepository) MarkAsRead(ctx context.Context, id, userID uuid.UUID) error {
	query := `
		WITH target AS (
			SELECT id FROM notifications WHERE id = $1
		), updated AS (
			UPDATE notifications SET
				read_by = array_append(read_by, $2::uuid),
				updated_at = NOW()
			WHERE id = $1 AND NOT ($2::uuid = ANY(read_by))
			RETURNING id
		)
		SELECT EXISTS (SELECT 1 FROM target);
	`
	var exists bool
	if err := r.db.QueryRow(ctx, query, id, userID).Scan(&exists); err != nil {
		return fmt.Errorf("failed to mark notification as read: %w", err)
	}
	if !exists {
		return fmt.Errorf("notification with id %s: %w", id, service.ErrNotFound)
	}
	return nil
}

func (r *NotificationRepository) DeleteByAlertIDs(ctx context.Context, alertIDs []uuid.UUID) error {
	if len(alertIDs) == 0 {
		return nil
	}
	if _, err := r.db.Exec(ctx, `DELETE FROM notifications WHERE alert_id = ANY($1);`, alertIDs); err != nil {
		return fmt.Errorf("failed to delete notifications: %w", err)
	}
	return nil
}
