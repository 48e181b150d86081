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

func newTestContactService(t *testing.T) (*contactService, *mocks.MockContactRepository, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	contactsMock := mocks.NewMockContactRepository(ctrl)
	usersMock := mocks.NewMockUserRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	svc := NewContactService(contactsMock, usersMock, logger)
	return svc.(*contactService), contactsMock, usersMock
}

func validContact(ownerID uuid.UUID) *models.Contact {
	return &models.Contact{
		OwnerID:              ownerID,
		FirstName:            "Ana",
		LastName:             "Pérez",
		Phone:                "3001234567",
		Email:                "Ana@Example.com",
		Relationship:         "hermana",
		NotificationsEnabled: true,
	}
}

func TestCreateContact_Success(t *testing.T) {
	service, contactsMock, usersMock := newTestContactService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	contact := validContact(ownerID)

	usersMock.EXPECT().GetByID(ctx, ownerID).Return(&models.User{ID: ownerID}, nil).Times(1)
	contactsMock.EXPECT().
		Create(ctx, contact).
		DoAndReturn(func(_ context.Context, c *models.Contact) error {
			c.ID = uuid.New()
			return nil
		}).Times(1)

	require.NoError(t, service.CreateContact(ctx, contact))
	assert.NotEqual(t, uuid.Nil, contact.ID)
	assert.True(t, contact.NotificationsEnabled)
}

func TestCreateContact_RequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *models.Contact)
	}{
		{"missing owner", func(c *models.Contact) { c.OwnerID = uuid.Nil }},
		{"missing first name", func(c *models.Contact) { c.FirstName = " " }},
		{"missing last name", func(c *models.Contact) { c.LastName = "" }},
		{"missing phone", func(c *models.Contact) { c.Phone = "" }},
		{"missing relationship", func(c *models.Contact) { c.Relationship = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, _ := newTestContactService(t)
			contact := validContact(uuid.New())
			tt.modify(contact)

			err := service.CreateContact(context.Background(), contact)

			assert.True(t, isValidation(err))
		})
	}
}

func TestCreateContact_UnknownOwner(t *testing.T) {
	service, contactsMock, usersMock := newTestContactService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	usersMock.EXPECT().GetByID(ctx, ownerID).Return(nil, ErrNotFound).Times(1)
	contactsMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	err := service.CreateContact(ctx, validContact(ownerID))

	assert.True(t, isValidation(err))
}

func TestUpdateContact_KeepsOwnerAndFlag(t *testing.T) {
	service, contactsMock, _ := newTestContactService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	existing := validContact(ownerID)
	existing.ID = uuid.New()
	existing.NotificationsEnabled = false

	contactsMock.EXPECT().GetByID(ctx, existing.ID).Return(existing, nil).Times(1)
	contactsMock.EXPECT().Update(ctx, existing).Return(nil).Times(1)

	updated, err := service.UpdateContact(ctx, &models.Contact{
		ID:                   existing.ID,
		OwnerID:              uuid.New(),
		FirstName:            "Ana María",
		LastName:             "Pérez",
		Phone:                "3109876543",
		Relationship:         "hermana",
		NotificationsEnabled: true,
	})

	require.NoError(t, err)
	assert.Equal(t, ownerID, updated.OwnerID)
	assert.False(t, updated.NotificationsEnabled)
	assert.Equal(t, "Ana María", updated.FirstName)
	assert.Equal(t, "3109876543", updated.Phone)
}

func TestUpdateContact_NotFound(t *testing.T) {
	service, contactsMock, _ := newTestContactService(t)
	ctx := context.Background()
	id := uuid.New()

	contactsMock.EXPECT().GetByID(ctx, id).Return(nil, ErrNotFound).Times(1)

	_, err := service.UpdateContact(ctx, &models.Contact{ID: id})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestToggleNotifications(t *testing.T) {
	service, contactsMock, _ := newTestContactService(t)
	ctx := context.Background()
	id := uuid.New()

	contactsMock.EXPECT().SetNotifications(ctx, id, false).Return(nil).Times(1)

	require.NoError(t, service.ToggleNotifications(ctx, id, false))
}

func TestDeleteContact_NotFound(t *testing.T) {
	service, contactsMock, _ := newTestContactService(t)
	ctx := context.Background()
	id := uuid.New()

	contactsMock.EXPECT().Delete(ctx, id).Return(ErrNotFound).Times(1)

	assert.ErrorIs(t, service.DeleteContact(ctx, id), ErrNotFound)
}
