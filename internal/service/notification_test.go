package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/sos_alert_system/internal/models"
	"github.com/shenikar/sos_alert_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestNotificationService(t *testing.T) (*notificationService, *mocks.MockNotificationRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockNotificationRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	svc := NewNotificationService(repoMock, logger)
	return svc.(*notificationService), repoMock
}

func TestListRecent_Limits(t *testing.T) {
	tests := []struct {
		name     string
		limit    int
		expected int
	}{
		{"default", 0, 10},
		{"negative", -5, 10},
		{"custom", 25, 25},
		{"capped", 1000, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repoMock := newTestNotificationService(t)
			ctx := context.Background()

			repoMock.EXPECT().ListRecent(ctx, nil, tt.expected).Return([]*models.Notification{}, nil).Times(1)

			_, err := service.ListRecent(ctx, nil, tt.limit)
			require.NoError(t, err)
		})
	}
}

func TestListRecent_UnreadByUser(t *testing.T) {
	service, repoMock := newTestNotificationService(t)
	ctx := context.Background()
	userID := uuid.New()
	expected := []*models.Notification{{ID: uuid.New(), Type: models.NotificationCreated}}

	repoMock.EXPECT().ListRecent(ctx, &userID, 10).Return(expected, nil).Times(1)

	notifications, err := service.ListRecent(ctx, &userID, 0)

	require.NoError(t, err)
	assert.Equal(t, expected, notifications)
}

func TestMarkAsRead(t *testing.T) {
	service, repoMock := newTestNotificationService(t)
	ctx := context.Background()
	id, userID := uuid.New(), uuid.New()

	// Повторная отметка тем же пользователем тоже успешна
	repoMock.EXPECT().MarkAsRead(ctx, id, userID).Return(nil).Times(2)

	require.NoError(t, service.MarkAsRead(ctx, id, userID))
	require.NoError(t, service.MarkAsRead(ctx, id, userID))
}

func TestMarkAsRead_RequiresUser(t *testing.T) {
	service, repoMock := newTestNotificationService(t)
	repoMock.EXPECT().MarkAsRead(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := service.MarkAsRead(context.Background(), uuid.New(), uuid.Nil)

	assert.True(t, isValidation(err))
}

func TestMarkAsRead_NotFound(t *testing.T) {
	service, repoMock := newTestNotificationService(t)
	ctx := context.Background()
	id, userID := uuid.New(), uuid.New()

	repoMock.EXPECT().MarkAsRead(ctx, id, userID).Return(ErrNotFound).Times(1)

	assert.ErrorIs(t, service.MarkAsRead(ctx, id, userID), ErrNotFound)
}
