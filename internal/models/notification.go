package models

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationCreated   NotificationType = "created"
	NotificationUpdated   NotificationType = "updated"
	NotificationResolved  NotificationType = "resolved"
	NotificationCancelled NotificationType = "cancelled"
)

// Notification - запись во "входящих", привязанная к тревоге
type Notification struct {
	ID        uuid.UUID        `json:"id"`
	AlertID   uuid.UUID        `json:"alert_id"`
	Message   string           `json:"message"`
	ReadBy    []uuid.UUID      `json:"read_by"`
	Type      NotificationType `json:"type"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}
