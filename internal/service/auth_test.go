package service

import (
	"bytes"
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/sos_alert_system/internal/mailer"
	mailer_mocks "github.com/shenikar/sos_alert_system/internal/mailer/mocks"
	"github.com/shenikar/sos_alert_system/internal/models"
	"github.com/shenikar/sos_alert_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type authMocks struct {
	users      *mocks.MockUserRepository
	codes      *mocks.MockResetCodeStore
	dispatcher *mailer_mocks.MockDispatcher
}

func newTestAuthService(t *testing.T) (*authService, authMocks) {
	ctrl := gomock.NewController(t)
	m := authMocks{
		users:      mocks.NewMockUserRepository(ctrl),
		codes:      mocks.NewMockResetCodeStore(ctrl),
		dispatcher: mailer_mocks.NewMockDispatcher(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	svc := NewAuthService(m.users, m.codes, testHasher, m.dispatcher, logger, testConfig())
	return svc.(*authService), m
}

func TestRegister_ForcesCitizenRole(t *testing.T) {
	service, m := newTestAuthService(t)
	ctx := context.Background()
	user := &models.User{
		Username: "mruiz",
		FullName: "Marta Ruiz",
		Email:    "marta@example.com",
		Gender:   models.GenderFemale,
		Role:     models.RoleAdmin,
	}

	m.users.EXPECT().ExistsByUsernameOrEmail(ctx, "mruiz", "marta@example.com", uuid.Nil).Return(false, nil).Times(1)
	m.users.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			assert.Equal(t, models.RoleCitizen, u.Role)
			return nil
		}).Times(1)

	require.NoError(t, service.Register(ctx, user, "Secret#123"))
	assert.Equal(t, models.RoleCitizen, user.Role)
}

func TestRegister_WeakPassword(t *testing.T) {
	service, m := newTestAuthService(t)
	m.users.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	err := service.Register(context.Background(), &models.User{
		Username: "mruiz",
		FullName: "Marta Ruiz",
		Email:    "marta@example.com",
		Gender:   models.GenderFemale,
	}, "short")

	assert.True(t, isValidation(err))
}

func TestLogin_Success(t *testing.T) {
	service, m := newTestAuthService(t)
	ctx := context.Background()
	user := userWithPassword(t, "Secret#123")

	m.users.EXPECT().GetByEmail(ctx, "marta@example.com").Return(user, nil).Times(1)

	got, err := service.Login(ctx, "  Marta@Example.com ", "Secret#123")

	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestLogin_UniformFailure(t *testing.T) {
	inactive := func(t *testing.T) *models.User {
		u := userWithPassword(t, "Secret#123")
		u.Active = false
		return u
	}

	tests := []struct {
		name     string
		password string
		user     func(t *testing.T) *models.User
	}{
		{"unknown email", "Secret#123", nil},
		{"wrong password", "Wrong#123", func(t *testing.T) *models.User { return userWithPassword(t, "Secret#123") }},
		{"inactive account", "Secret#123", inactive},
	}

	var messages []string
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newTestAuthService(t)
			ctx := context.Background()
			if tt.user == nil {
				m.users.EXPECT().GetByEmail(ctx, "marta@example.com").Return(nil, ErrNotFound).Times(1)
			} else {
				m.users.EXPECT().GetByEmail(ctx, "marta@example.com").Return(tt.user(t), nil).Times(1)
			}

			user, err := service.Login(ctx, "marta@example.com", tt.password)

			assert.Nil(t, user)
			require.ErrorIs(t, err, ErrInvalidCredentials)
			messages = append(messages, err.Error())
		})
	}

	for _, msg := range messages {
		assert.Equal(t, ErrInvalidCredentials.Error(), msg)
	}
}

func TestAuthChangePassword_UnknownEmail(t *testing.T) {
	service, m := newTestAuthService(t)
	ctx := context.Background()

	m.users.EXPECT().GetByEmail(ctx, "nadie@example.com").Return(nil, ErrNotFound).Times(1)
	m.users.EXPECT().UpdatePassword(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := service.ChangePassword(ctx, "nadie@example.com", "Secret#123", "Nuevo$Pass9")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthChangePassword_RequiresCurrentPassword(t *testing.T) {
	service, m := newTestAuthService(t)
	ctx := context.Background()
	user := userWithPassword(t, "Secret#123")

	m.users.EXPECT().GetByEmail(ctx, user.Email).Return(user, nil).Times(1)
	m.users.EXPECT().UpdatePassword(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := service.ChangePassword(ctx, user.Email, "Guess#123", "Nuevo$Pass9")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestForgotPassword_IssuesCode(t *testing.T) {
	service, m := newTestAuthService(t)
	ctx := context.Background()
	user := userWithPassword(t, "Secret#123")

	var savedCode string
	m.users.EXPECT().GetByEmail(ctx, user.Email).Return(user, nil).Times(1)
	m.codes.EXPECT().
		Save(ctx, user.Email, gomock.Any(), 15*time.Minute).
		DoAndReturn(func(_ context.Context, _, code string, _ time.Duration) error {
			savedCode = code
			return nil
		}).Times(1)
	release := make(chan struct{})
	delivered := make(chan []mailer.Message, 1)
	m.dispatcher.EXPECT().
		Dispatch(gomock.Any(), gomock.Len(1)).
		DoAndReturn(func(_ context.Context, msgs []mailer.Message) []mailer.Outcome {
			<-release
			delivered <- msgs
			return []mailer.Outcome{{Message: msgs[0]}}
		}).Times(1)

	// ответ не ждет отправки письма
	require.NoError(t, service.ForgotPassword(ctx, user.Email))
	assert.Regexp(t, regexp.MustCompile(`^\d{6}$`), savedCode)
	close(release)

	select {
	case msgs := <-delivered:
		assert.Equal(t, user.Email, msgs[0].To)
		assert.Contains(t, msgs[0].Body, savedCode)
	case <-time.After(time.Second):
		t.Fatal("reset code email was not dispatched")
	}
}

func TestForgotPassword_DispatchOutlivesRequestContext(t *testing.T) {
	service, m := newTestAuthService(t)
	ctx, cancel := context.WithCancel(context.Background())
	user := userWithPassword(t, "Secret#123")

	m.users.EXPECT().GetByEmail(gomock.Any(), user.Email).Return(user, nil).Times(1)
	m.codes.EXPECT().Save(gomock.Any(), user.Email, gomock.Any(), gomock.Any()).Return(nil).Times(1)
	dispatched := make(chan error, 1)
	m.dispatcher.EXPECT().
		Dispatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, msgs []mailer.Message) []mailer.Outcome {
			dispatched <- ctx.Err()
			return []mailer.Outcome{{Message: msgs[0]}}
		}).Times(1)

	require.NoError(t, service.ForgotPassword(ctx, user.Email))
	cancel()

	select {
	case err := <-dispatched:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("reset code email was not dispatched")
	}
}

func TestForgotPassword_UnknownAndInactiveAnswerTheSame(t *testing.T) {
	service, m := newTestAuthService(t)
	ctx := context.Background()
	inactive := userWithPassword(t, "Secret#123")
	inactive.Active = false

	m.users.EXPECT().GetByEmail(ctx, "nadie@example.com").Return(nil, ErrNotFound).Times(1)
	m.users.EXPECT().GetByEmail(ctx, inactive.Email).Return(inactive, nil).Times(1)
	m.codes.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	m.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Times(0)

	assert.NoError(t, service.ForgotPassword(ctx, "nadie@example.com"))
	assert.NoError(t, service.ForgotPassword(ctx, inactive.Email))
}

func TestResetPassword_Success(t *testing.T) {
	service, m := newTestAuthService(t)
	ctx := context.Background()
	user := userWithPassword(t, "Secret#123")

	m.codes.EXPECT().Consume(ctx, user.Email).Return("042917", nil).Times(1)
	m.users.EXPECT().GetByEmail(ctx, user.Email).Return(user, nil).Times(1)
	m.users.EXPECT().
		UpdatePassword(ctx, user.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, hash string) error {
			assert.NoError(t, testHasher.Compare(hash, "Nuevo$Pass9"))
			return nil
		}).Times(1)

	require.NoError(t, service.ResetPassword(ctx, user.Email, "042917", "Nuevo$Pass9"))
}

func TestResetPassword_CodeWorksOnce(t *testing.T) {
	service, m := newTestAuthService(t)
	ctx := context.Background()
	user := userWithPassword(t, "Secret#123")

	gomock.InOrder(
		m.codes.EXPECT().Consume(ctx, user.Email).Return("042917", nil),
		m.codes.EXPECT().Consume(ctx, user.Email).Return("", nil),
	)
	m.users.EXPECT().GetByEmail(ctx, user.Email).Return(user, nil).Times(1)
	m.users.EXPECT().UpdatePassword(ctx, user.ID, gomock.Any()).Return(nil).Times(1)

	require.NoError(t, service.ResetPassword(ctx, user.Email, "042917", "Nuevo$Pass9"))
	err := service.ResetPassword(ctx, user.Email, "042917", "Otro$Pass10")
	assert.ErrorIs(t, err, ErrInvalidResetCode)
}

func TestResetPassword_WrongCode(t *testing.T) {
	service, m := newTestAuthService(t)
	ctx := context.Background()

	m.codes.EXPECT().Consume(ctx, "marta@example.com").Return("042917", nil).Times(1)
	m.users.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Times(0)

	err := service.ResetPassword(ctx, "marta@example.com", "111111", "Nuevo$Pass9")

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "invalid or expired reset code", vErr.Message)
}

func TestResetPassword_WeakPasswordKeepsCode(t *testing.T) {
	service, m := newTestAuthService(t)
	m.codes.EXPECT().Consume(gomock.Any(), gomock.Any()).Times(0)

	err := service.ResetPassword(context.Background(), "marta@example.com", "042917", "weak")

	assert.True(t, isValidation(err))
}
