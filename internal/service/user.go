package service

//go:generate mockgen -source=user.go -destination=mocks/user.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shenikar/sos_alert_system/internal/models"
	"github.com/sirupsen/logrus"
)

// UserRepository определяет контракт для работы с бд пользователей
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string, excludeID uuid.UUID) (bool, error)
	List(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, user *models.User) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PasswordHasher - сервис хеширования паролей
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// UserService определяет контракт для управления учетными записями
type UserService interface {
	ListUsers(ctx context.Context) ([]*models.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User, password string) error
	UpdateUser(ctx context.Context, id uuid.UUID, update models.UserUpdate) (*models.User, error)
	ChangePassword(ctx context.Context, id uuid.UUID, current, next string) error
	AdminResetPassword(ctx context.Context, id uuid.UUID, next string) error
	DeleteUser(ctx context.Context, id uuid.UUID) error
	DeleteAccount(ctx context.Context, id uuid.UUID, password string, preserveAlerts bool) error
}

type userService struct {
	users         UserRepository
	alerts        AlertRepository
	contacts      ContactRepository
	notifications NotificationRepository
	hasher        PasswordHasher
	logger        *logrus.Logger
}

func NewUserService(
	users UserRepository,
	alerts AlertRepository,
	contacts ContactRepository,
	notifications NotificationRepository,
	hasher PasswordHasher,
	logger *logrus.Logger,
) UserService {
	return &userService{
		users:         users,
		alerts:        alerts,
		contacts:      contacts,
		notifications: notifications,
		hasher:        hasher,
		logger:        logger,
	}
}

func (s *userService) ListUsers(ctx context.Context) ([]*models.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list users")
		return nil, fmt.Errorf("service: could not list users: %w", err)
	}
	return users, nil
}

func (s *userService) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get user %s: %w", id, err)
	}
	return user, nil
}

// CreateUser - административное создание; роль по умолчанию police
func (s *userService) CreateUser(ctx context.Context, user *models.User, password string) error {
	if user.Role == "" {
		user.Role = models.RolePolice
	}
	return createAccount(ctx, s.users, s.hasher, s.logger, user, password)
}

// UpdateUser обновляет профиль; пароль меняется только отдельными операциями
func (s *userService) UpdateUser(ctx context.Context, id uuid.UUID, update models.UserUpdate) (*models.User, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "UpdateUser",
		"user_id": id,
	})

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: user %s not found for update: %w", id, err)
	}

	identityChanged := false
	if update.Username != nil && strings.TrimSpace(*update.Username) != user.Username {
		user.Username = strings.TrimSpace(*update.Username)
		identityChanged = true
	}
	if update.Email != nil && normalizeEmail(*update.Email) != user.Email {
		user.Email = normalizeEmail(*update.Email)
		identityChanged = true
	}
	if update.FullName != nil {
		user.FullName = strings.TrimSpace(*update.FullName)
	}
	if update.Phone != nil {
		user.Phone = strings.TrimSpace(*update.Phone)
	}
	if update.Address != nil {
		user.Address = strings.TrimSpace(*update.Address)
	}
	if update.Gender != nil {
		user.Gender = *update.Gender
	}
	if update.Role != nil {
		user.Role = *update.Role
	}
	if update.Active != nil {
		user.Active = *update.Active
	}

	if err := validateUser(user); err != nil {
		return nil, err
	}

	if identityChanged {
		exists, err := s.users.ExistsByUsernameOrEmail(ctx, user.Username, user.Email, user.ID)
		if err != nil {
			return nil, fmt.Errorf("service: could not check user uniqueness: %w", err)
		}
		if exists {
			return nil, fmt.Errorf("%w: username or email", ErrConflict)
		}
	}

	if err := s.users.Update(ctx, user); err != nil {
		log.WithError(err).Error("Failed to update user in repository")
		return nil, fmt.Errorf("service: could not update user: %w", err)
	}

	log.Info("User updated successfully")
	return user, nil
}

// ChangePassword меняет пароль после проверки текущего
func (s *userService) ChangePassword(ctx context.Context, id uuid.UUID, current, next string) error {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("service: could not get user %s: %w", id, err)
	}
	return changePassword(ctx, s.users, s.hasher, s.logger, user, current, next)
}

// AdminResetPassword задает новый пароль без проверки текущего
func (s *userService) AdminResetPassword(ctx context.Context, id uuid.UUID, next string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "AdminResetPassword",
		"user_id": id,
	})

	if err := ValidatePassword(next); err != nil {
		return err
	}
	if _, err := s.users.GetByID(ctx, id); err != nil {
		return fmt.Errorf("service: could not get user %s: %w", id, err)
	}
	if err := setPassword(ctx, s.users, s.hasher, id, next); err != nil {
		log.WithError(err).Error("Failed to reset password")
		return err
	}

	log.Warn("Password reset by administrator")
	return nil
}

// DeleteUser удаляет только запись пользователя; тревоги и контакты остаются
func (s *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := s.users.Delete(ctx, id); err != nil {
		s.logger.WithField("user_id", id).WithError(err).Warn("Failed to delete user")
		return fmt.Errorf("service: could not delete user: %w", err)
	}
	return nil
}

// DeleteAccount удаляет учетную запись владельцем. С preserveAlerts тревоги
// скрываются (visible=false), иначе удаляются вместе с их уведомлениями.
func (s *userService) DeleteAccount(ctx context.Context, id uuid.UUID, password string, preserveAlerts bool) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":         "user",
		"method":          "DeleteAccount",
		"user_id":         id,
		"preserve_alerts": preserveAlerts,
	})
	log.Info("Attempting to delete account")

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("service: could not get user %s: %w", id, err)
	}
	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return ErrInvalidCredentials
	}

	if preserveAlerts {
		hidden, err := s.alerts.HideByCreator(ctx, id)
		if err != nil {
			log.WithError(err).Error("Failed to hide user alerts")
			return fmt.Errorf("service: could not hide alerts: %w", err)
		}
		log = log.WithField("alerts_hidden", hidden)
	} else {
		alertIDs, err := s.alerts.DeleteByCreator(ctx, id)
		if err != nil {
			log.WithError(err).Error("Failed to delete user alerts")
			return fmt.Errorf("service: could not delete alerts: %w", err)
		}
		if err := s.notifications.DeleteByAlertIDs(ctx, alertIDs); err != nil {
			log.WithError(err).Error("Failed to delete alert notifications")
			return fmt.Errorf("service: could not delete notifications: %w", err)
		}
		log = log.WithField("alerts_deleted", len(alertIDs))
	}

	if err := s.contacts.DeleteByOwner(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete user contacts")
		return fmt.Errorf("service: could not delete contacts: %w", err)
	}

	if err := s.users.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete user")
		return fmt.Errorf("service: could not delete user: %w", err)
	}

	log.Info("Account deleted successfully")
	return nil
}

// createAccount - общая логика регистрации и административного создания
func createAccount(ctx context.Context, repo UserRepository, hasher PasswordHasher, logger *logrus.Logger, user *models.User, password string) error {
	log := logger.WithFields(logrus.Fields{
		"service":  "user",
		"method":   "createAccount",
		"username": user.Username,
		"role":     user.Role,
	})

	user.Username = strings.TrimSpace(user.Username)
	user.FullName = strings.TrimSpace(user.FullName)
	user.Email = normalizeEmail(user.Email)
	user.Active = true
	if err := validateUser(user); err != nil {
		return err
	}
	if err := ValidatePassword(password); err != nil {
		return err
	}

	exists, err := repo.ExistsByUsernameOrEmail(ctx, user.Username, user.Email, uuid.Nil)
	if err != nil {
		return fmt.Errorf("service: could not check user uniqueness: %w", err)
	}
	if exists {
		log.Warn("Username or email already taken")
		return fmt.Errorf("%w: username or email", ErrConflict)
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("service: could not hash password: %w", err)
	}
	user.PasswordHash = hash

	if err := repo.Create(ctx, user); err != nil {
		log.WithError(err).Error("Failed to create user in repository")
		return fmt.Errorf("service: could not create user: %w", err)
	}

	log.WithField("user_id", user.ID).Info("User created successfully")
	return nil
}

// changePassword проверяет текущий пароль, запрещает повтор и проверяет сложность нового
func changePassword(ctx context.Context, repo UserRepository, hasher PasswordHasher, logger *logrus.Logger, user *models.User, current, next string) error {
	log := logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "changePassword",
		"user_id": user.ID,
	})

	if err := hasher.Compare(user.PasswordHash, current); err != nil {
		log.Warn("Current password mismatch")
		return ErrInvalidCredentials
	}
	if current == next {
		return newValidationError("new_password", "new password must differ from the current one")
	}
	if err := ValidatePassword(next); err != nil {
		return err
	}
	if err := setPassword(ctx, repo, hasher, user.ID, next); err != nil {
		log.WithError(err).Error("Failed to change password")
		return err
	}

	log.Info("Password changed successfully")
	return nil
}

func setPassword(ctx context.Context, repo UserRepository, hasher PasswordHasher, id uuid.UUID, password string) error {
	hash, err := hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("service: could not hash password: %w", err)
	}
	if err := repo.UpdatePassword(ctx, id, hash); err != nil {
		return fmt.Errorf("service: could not update password: %w", err)
	}
	return nil
}

func validateUser(u *models.User) error {
	switch {
	case u.Username == "":
		return newValidationError("username", "username is required")
	case u.FullName == "":
		return newValidationError("full_name", "full name is required")
	case u.Email == "" || !strings.Contains(u.Email, "@"):
		return newValidationError("email", "a valid email is required")
	case u.Gender != models.GenderMale && u.Gender != models.GenderFemale:
		return newValidationError("gender", "gender must be male or female")
	case !u.Role.Valid():
		return newValidationError("role", "invalid role %q", u.Role)
	}
	return nil
}

// isNotFound - короткая форма для проверки ErrNotFound
func isNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
