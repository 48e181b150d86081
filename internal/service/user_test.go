package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/sos_alert_system/internal/models"
	"github.com/shenikar/sos_alert_system/internal/service/mocks"
	"github.com/shenikar/sos_alert_system/pkg/hasher"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

type userMocks struct {
	users         *mocks.MockUserRepository
	alerts        *mocks.MockAlertRepository
	contacts      *mocks.MockContactRepository
	notifications *mocks.MockNotificationRepository
}

var testHasher = hasher.New(bcrypt.MinCost)

func newTestUserService(t *testing.T) (*userService, userMocks) {
	ctrl := gomock.NewController(t)
	m := userMocks{
		users:         mocks.NewMockUserRepository(ctrl),
		alerts:        mocks.NewMockAlertRepository(ctrl),
		contacts:      mocks.NewMockContactRepository(ctrl),
		notifications: mocks.NewMockNotificationRepository(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	svc := NewUserService(m.users, m.alerts, m.contacts, m.notifications, testHasher, logger)
	return svc.(*userService), m
}

func userWithPassword(t *testing.T, password string) *models.User {
	t.Helper()
	hash, err := testHasher.Hash(password)
	require.NoError(t, err)
	return &models.User{
		ID:           uuid.New(),
		Username:     "mruiz",
		FullName:     "Marta Ruiz",
		Email:        "marta@example.com",
		PasswordHash: hash,
		Gender:       models.GenderFemale,
		Role:         models.RoleCitizen,
		Active:       true,
	}
}

func TestCreateUser_DefaultsToPolice(t *testing.T) {
	service, m := newTestUserService(t)
	ctx := context.Background()
	user := &models.User{
		Username: " jgomez ",
		FullName: "Juan Gómez",
		Email:    " JGomez@Example.com ",
		Gender:   models.GenderMale,
	}

	m.users.EXPECT().ExistsByUsernameOrEmail(ctx, "jgomez", "jgomez@example.com", uuid.Nil).Return(false, nil).Times(1)
	m.users.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			assert.NoError(t, testHasher.Compare(u.PasswordHash, "Secret#123"))
			u.ID = uuid.New()
			return nil
		}).Times(1)

	err := service.CreateUser(ctx, user, "Secret#123")

	require.NoError(t, err)
	assert.Equal(t, models.RolePolice, user.Role)
	assert.True(t, user.Active)
	assert.Equal(t, "jgomez@example.com", user.Email)
}

func TestCreateUser_Conflict(t *testing.T) {
	service, m := newTestUserService(t)
	ctx := context.Background()

	m.users.EXPECT().ExistsByUsernameOrEmail(ctx, gomock.Any(), gomock.Any(), uuid.Nil).Return(true, nil).Times(1)
	m.users.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	err := service.CreateUser(ctx, &models.User{
		Username: "jgomez",
		FullName: "Juan Gómez",
		Email:    "jgomez@example.com",
		Gender:   models.GenderMale,
		Role:     models.RoleAdmin,
	}, "Secret#123")

	assert.ErrorIs(t, err, ErrConflict)
}

func TestCreateUser_InvalidRole(t *testing.T) {
	service, _ := newTestUserService(t)

	err := service.CreateUser(context.Background(), &models.User{
		Username: "jgomez",
		FullName: "Juan Gómez",
		Email:    "jgomez@example.com",
		Gender:   models.GenderMale,
		Role:     "superuser",
	}, "Secret#123")

	assert.True(t, isValidation(err))
}

func TestUpdateUser_ChecksUniquenessOnIdentityChange(t *testing.T) {
	service, m := newTestUserService(t)
	ctx := context.Background()
	user := userWithPassword(t, "Secret#123")
	newEmail := "marta.ruiz@example.com"
	phone := "3001234567"

	m.users.EXPECT().GetByID(ctx, user.ID).Return(user, nil).Times(1)
	m.users.EXPECT().ExistsByUsernameOrEmail(ctx, "mruiz", newEmail, user.ID).Return(false, nil).Times(1)
	m.users.EXPECT().Update(ctx, user).Return(nil).Times(1)

	updated, err := service.UpdateUser(ctx, user.ID, models.UserUpdate{Email: &newEmail, Phone: &phone})

	require.NoError(t, err)
	assert.Equal(t, newEmail, updated.Email)
	assert.Equal(t, phone, updated.Phone)
}

func TestUpdateUser_NotFound(t *testing.T) {
	service, m := newTestUserService(t)
	ctx := context.Background()
	id := uuid.New()

	m.users.EXPECT().GetByID(ctx, id).Return(nil, ErrNotFound).Times(1)

	_, err := service.UpdateUser(ctx, id, models.UserUpdate{})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestChangePassword(t *testing.T) {
	tests := []struct {
		name    string
		current string
		next    string
		check   func(t *testing.T, err error)
		updates int
	}{
		{
			name:    "success",
			current: "Secret#123",
			next:    "Nuevo$Pass9",
			check:   func(t *testing.T, err error) { assert.NoError(t, err) },
			updates: 1,
		},
		{
			name:    "wrong current password",
			current: "Wrong#123",
			next:    "Nuevo$Pass9",
			check:   func(t *testing.T, err error) { assert.ErrorIs(t, err, ErrInvalidCredentials) },
		},
		{
			name:    "same password",
			current: "Secret#123",
			next:    "Secret#123",
			check:   func(t *testing.T, err error) { assert.True(t, isValidation(err)) },
		},
		{
			name:    "weak password",
			current: "Secret#123",
			next:    "weakpass",
			check:   func(t *testing.T, err error) { assert.True(t, isValidation(err)) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newTestUserService(t)
			ctx := context.Background()
			user := userWithPassword(t, "Secret#123")

			m.users.EXPECT().GetByID(ctx, user.ID).Return(user, nil).Times(1)
			m.users.EXPECT().UpdatePassword(ctx, user.ID, gomock.Any()).Return(nil).Times(tt.updates)

			tt.check(t, service.ChangePassword(ctx, user.ID, tt.current, tt.next))
		})
	}
}

func TestAdminResetPassword(t *testing.T) {
	service, m := newTestUserService(t)
	ctx := context.Background()
	user := userWithPassword(t, "Secret#123")

	m.users.EXPECT().GetByID(ctx, user.ID).Return(user, nil).Times(1)
	m.users.EXPECT().
		UpdatePassword(ctx, user.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, hash string) error {
			assert.NoError(t, testHasher.Compare(hash, "Admin!Reset1"))
			return nil
		}).Times(1)

	require.NoError(t, service.AdminResetPassword(ctx, user.ID, "Admin!Reset1"))
}

func TestAdminResetPassword_WeakPassword(t *testing.T) {
	service, m := newTestUserService(t)
	m.users.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)

	err := service.AdminResetPassword(context.Background(), uuid.New(), "NoSpecial1")

	assert.True(t, isValidation(err))
}

func TestDeleteAccount_PreserveAlerts(t *testing.T) {
	service, m := newTestUserService(t)
	ctx := context.Background()
	user := userWithPassword(t, "Secret#123")

	gomock.InOrder(
		m.users.EXPECT().GetByID(ctx, user.ID).Return(user, nil),
		m.alerts.EXPECT().HideByCreator(ctx, user.ID).Return(int64(3), nil),
		m.contacts.EXPECT().DeleteByOwner(ctx, user.ID).Return(nil),
		m.users.EXPECT().Delete(ctx, user.ID).Return(nil),
	)
	m.alerts.EXPECT().DeleteByCreator(gomock.Any(), gomock.Any()).Times(0)
	m.notifications.EXPECT().DeleteByAlertIDs(gomock.Any(), gomock.Any()).Times(0)

	require.NoError(t, service.DeleteAccount(ctx, user.ID, "Secret#123", true))
}

func TestDeleteAccount_RemovesAlertsAndNotifications(t *testing.T) {
	service, m := newTestUserService(t)
	ctx := context.Background()
	user := userWithPassword(t, "Secret#123")
	alertIDs := []uuid.UUID{uuid.New(), uuid.New()}

	gomock.InOrder(
		m.users.EXPECT().GetByID(ctx, user.ID).Return(user, nil),
		m.alerts.EXPECT().DeleteByCreator(ctx, user.ID).Return(alertIDs, nil),
		m.notifications.EXPECT().DeleteByAlertIDs(ctx, alertIDs).Return(nil),
		m.contacts.EXPECT().DeleteByOwner(ctx, user.ID).Return(nil),
		m.users.EXPECT().Delete(ctx, user.ID).Return(nil),
	)
	m.alerts.EXPECT().HideByCreator(gomock.Any(), gomock.Any()).Times(0)

	require.NoError(t, service.DeleteAccount(ctx, user.ID, "Secret#123", false))
}

func TestDeleteAccount_WrongPassword(t *testing.T) {
	service, m := newTestUserService(t)
	ctx := context.Background()
	user := userWithPassword(t, "Secret#123")

	m.users.EXPECT().GetByID(ctx, user.ID).Return(user, nil).Times(1)
	m.users.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)

	err := service.DeleteAccount(ctx, user.ID, "Wrong#123", true)

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestDeleteAccount_StopsOnHideFailure(t *testing.T) {
	service, m := newTestUserService(t)
	ctx := context.Background()
	user := userWithPassword(t, "Secret#123")

	m.users.EXPECT().GetByID(ctx, user.ID).Return(user, nil).Times(1)
	m.alerts.EXPECT().HideByCreator(ctx, user.ID).Return(int64(0), errors.New("db down")).Times(1)
	m.contacts.EXPECT().DeleteByOwner(gomock.Any(), gomock.Any()).Times(0)
	m.users.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)

	assert.Error(t, service.DeleteAccount(ctx, user.ID, "Secret#123", true))
}
