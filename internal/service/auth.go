package service

//go:generate mockgen -source=auth.go -destination=mocks/auth.go -package=mocks

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"
	"time"

	"github.com/shenikar/sos_alert_system/internal/config"
	"github.com/shenikar/sos_alert_system/internal/mailer"
	"github.com/shenikar/sos_alert_system/internal/models"
	"github.com/sirupsen/logrus"
)

// ErrInvalidResetCode - единое сообщение для неверного, просроченного кода и неизвестного email
var ErrInvalidResetCode = &ValidationError{Field: "code", Message: "invalid or expired reset code"}

// ResetCodeStore хранит одноразовые коды сброса пароля с ограниченным временем жизни
type ResetCodeStore interface {
	Save(ctx context.Context, email, code string, ttl time.Duration) error
	// Consume возвращает код и удаляет его; пустая строка - кода нет
	Consume(ctx context.Context, email string) (string, error)
}

// AuthService определяет контракт публичной аутентификации
type AuthService interface {
	Register(ctx context.Context, user *models.User, password string) error
	Login(ctx context.Context, email, password string) (*models.User, error)
	ChangePassword(ctx context.Context, email, current, next string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, email, code, next string) error
}

type authService struct {
	users      UserRepository
	codes      ResetCodeStore
	hasher     PasswordHasher
	dispatcher mailer.Dispatcher
	logger     *logrus.Logger
	codeTTL    time.Duration
	dummyHash  string
}

func NewAuthService(
	users UserRepository,
	codes ResetCodeStore,
	hasher PasswordHasher,
	dispatcher mailer.Dispatcher,
	logger *logrus.Logger,
	cfg *config.Config,
) AuthService {
	// Хеш для выравнивания времени ответа при неизвестном email
	dummyHash, err := hasher.Hash("timing-padding-Password!")
	if err != nil {
		logger.WithError(err).Warn("Failed to prepare dummy password hash")
	}
	return &authService{
		users:      users,
		codes:      codes,
		hasher:     hasher,
		dispatcher: dispatcher,
		logger:     logger,
		codeTTL:    cfg.ResetCodeTTL,
		dummyHash:  dummyHash,
	}
}

// Register создает учетную запись гражданина; роль из запроса игнорируется
func (s *authService) Register(ctx context.Context, user *models.User, password string) error {
	user.Role = models.RoleCitizen
	return createAccount(ctx, s.users, s.hasher, s.logger, user, password)
}

// Login проверяет учетные данные; любая неудача дает ErrInvalidCredentials
func (s *authService) Login(ctx context.Context, email, password string) (*models.User, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "Login",
	})

	user, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if isNotFound(err) {
			_ = s.hasher.Compare(s.dummyHash, password)
			log.Warn("Login attempt for unknown email")
			return nil, ErrInvalidCredentials
		}
		log.WithError(err).Error("Failed to get user by email")
		return nil, fmt.Errorf("service: could not get user: %w", err)
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil || !user.Active {
		log.WithField("user_id", user.ID).Warn("Login attempt with invalid credentials")
		return nil, ErrInvalidCredentials
	}

	log.WithField("user_id", user.ID).Info("User logged in")
	return user, nil
}

// ChangePassword меняет пароль по email после проверки текущего пароля
func (s *authService) ChangePassword(ctx context.Context, email, current, next string) error {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if isNotFound(err) {
			_ = s.hasher.Compare(s.dummyHash, current)
			return ErrInvalidCredentials
		}
		return fmt.Errorf("service: could not get user: %w", err)
	}
	return changePassword(ctx, s.users, s.hasher, s.logger, user, current, next)
}

// ForgotPassword выпускает одноразовый код и отправляет его на почту.
// Ответ не зависит от того, существует ли учетная запись.
func (s *authService) ForgotPassword(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "ForgotPassword",
	})

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if isNotFound(err) {
			log.Info("Password reset requested for unknown email")
			return nil
		}
		return fmt.Errorf("service: could not get user: %w", err)
	}
	if !user.Active {
		log.WithField("user_id", user.ID).Info("Password reset requested for inactive account")
		return nil
	}

	code, err := generateResetCode()
	if err != nil {
		return fmt.Errorf("service: could not generate reset code: %w", err)
	}
	if err := s.codes.Save(ctx, email, code, s.codeTTL); err != nil {
		log.WithError(err).Error("Failed to store reset code")
		return fmt.Errorf("service: could not store reset code: %w", err)
	}

	msg, err := mailer.NewResetCodeMessage(user, code, s.codeTTL)
	if err != nil {
		return fmt.Errorf("service: could not compose reset email: %w", err)
	}
	go func(ctx context.Context) {
		outcomes := s.dispatcher.Dispatch(ctx, []mailer.Message{msg})
		if mailer.Failed(outcomes) > 0 {
			log.WithField("user_id", user.ID).Error("Reset code email was not delivered")
		}
	}(context.WithoutCancel(ctx))

	log.WithField("user_id", user.ID).Info("Password reset code issued")
	return nil
}

// ResetPassword задает новый пароль по одноразовому коду; код сгорает после первой проверки
func (s *authService) ResetPassword(ctx context.Context, email, code, next string) error {
	email = normalizeEmail(email)
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "ResetPassword",
	})

	if err := ValidatePassword(next); err != nil {
		return err
	}

	stored, err := s.codes.Consume(ctx, email)
	if err != nil {
		log.WithError(err).Error("Failed to read reset code")
		return fmt.Errorf("service: could not read reset code: %w", err)
	}
	if stored == "" || subtle.ConstantTimeCompare([]byte(stored), []byte(code)) != 1 {
		log.Warn("Invalid reset code")
		return ErrInvalidResetCode
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if isNotFound(err) {
			return ErrInvalidResetCode
		}
		return fmt.Errorf("service: could not get user: %w", err)
	}

	if err := setPassword(ctx, s.users, s.hasher, user.ID, next); err != nil {
		log.WithError(err).Error("Failed to reset password")
		return err
	}

	log.WithField("user_id", user.ID).Info("Password reset with code")
	return nil
}

// generateResetCode возвращает случайный шестизначный код
func generateResetCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
