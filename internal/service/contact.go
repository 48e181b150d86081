package service

//go:generate mockgen -source=contact.go -destination=mocks/contact.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shenikar/sos_alert_system/internal/models"
	"github.com/sirupsen/logrus"
)

// ContactRepository определяет контракт для работы с бд экстренных контактов
type ContactRepository interface {
	Create(ctx context.Context, contact *models.Contact) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Contact, error)
	Update(ctx context.Context, contact *models.Contact) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Contact, error)
	ListNotifiable(ctx context.Context, ownerID uuid.UUID) ([]*models.Contact, error)
	SetNotifications(ctx context.Context, id uuid.UUID, enabled bool) error
	DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error
}

// ContactService определяет контракт для управления экстренными контактами
type ContactService interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Contact, error)
	CreateContact(ctx context.Context, contact *models.Contact) error
	UpdateContact(ctx context.Context, contact *models.Contact) (*models.Contact, error)
	DeleteContact(ctx context.Context, id uuid.UUID) error
	ToggleNotifications(ctx context.Context, id uuid.UUID, enabled bool) error
}

type contactService struct {
	contacts ContactRepository
	users    UserRepository
	logger   *logrus.Logger
}

func NewContactService(contacts ContactRepository, users UserRepository, logger *logrus.Logger) ContactService {
	return &contactService{
		contacts: contacts,
		users:    users,
		logger:   logger,
	}
}

func (s *contactService) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Contact, error) {
	contacts, err := s.contacts.ListByOwner(ctx, ownerID)
	if err != nil {
		s.logger.WithField("owner_id", ownerID).WithError(err).Error("Failed to list contacts")
		return nil, fmt.Errorf("service: could not list contacts: %w", err)
	}
	return contacts, nil
}

// CreateContact создает контакт для существующего пользователя
func (s *contactService) CreateContact(ctx context.Context, contact *models.Contact) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "contact",
		"method":   "CreateContact",
		"owner_id": contact.OwnerID,
	})

	normalizeContact(contact)
	if err := validateContact(contact); err != nil {
		return err
	}

	if _, err := s.users.GetByID(ctx, contact.OwnerID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return newValidationError("owner_id", "owner %s not found", contact.OwnerID)
		}
		return fmt.Errorf("service: could not get contact owner: %w", err)
	}

	if err := s.contacts.Create(ctx, contact); err != nil {
		log.WithError(err).Error("Failed to create contact in repository")
		return fmt.Errorf("service: could not create contact: %w", err)
	}

	log.WithField("contact_id", contact.ID).Info("Contact created successfully")
	return nil
}

// UpdateContact обновляет поля контакта; владелец и флаг уведомлений не меняются
func (s *contactService) UpdateContact(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "contact",
		"method":     "UpdateContact",
		"contact_id": contact.ID,
	})

	existing, err := s.contacts.GetByID(ctx, contact.ID)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent contact")
		return nil, fmt.Errorf("service: contact %s not found for update: %w", contact.ID, err)
	}

	normalizeContact(contact)
	existing.FirstName = contact.FirstName
	existing.LastName = contact.LastName
	existing.Phone = contact.Phone
	existing.Email = contact.Email
	existing.Relationship = contact.Relationship
	if err := validateContact(existing); err != nil {
		return nil, err
	}

	if err := s.contacts.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update contact in repository")
		return nil, fmt.Errorf("service: could not update contact: %w", err)
	}

	log.Info("Contact updated successfully")
	return existing, nil
}

func (s *contactService) DeleteContact(ctx context.Context, id uuid.UUID) error {
	if err := s.contacts.Delete(ctx, id); err != nil {
		s.logger.WithField("contact_id", id).WithError(err).Warn("Failed to delete contact")
		return fmt.Errorf("service: could not delete contact: %w", err)
	}
	return nil
}

// ToggleNotifications включает или выключает письма контакту
func (s *contactService) ToggleNotifications(ctx context.Context, id uuid.UUID, enabled bool) error {
	if err := s.contacts.SetNotifications(ctx, id, enabled); err != nil {
		s.logger.WithField("contact_id", id).WithError(err).Warn("Failed to toggle contact notifications")
		return fmt.Errorf("service: could not toggle notifications: %w", err)
	}
	return nil
}

func normalizeContact(c *models.Contact) {
	c.FirstName = strings.TrimSpace(c.FirstName)
	c.LastName = strings.TrimSpace(c.LastName)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Email = normalizeEmail(c.Email)
	c.Relationship = strings.TrimSpace(c.Relationship)
}

func validateContact(c *models.Contact) error {
	switch {
	case c.OwnerID == uuid.Nil:
		return newValidationError("owner_id", "owner is required")
	case c.FirstName == "":
		return newValidationError("first_name", "first name is required")
	case c.LastName == "":
		return newValidationError("last_name", "last name is required")
	case c.Phone == "":
		return newValidationError("phone", "phone is required")
	case c.Relationship == "":
		return newValidationError("relationship", "relationship is required")
	}
	return nil
}
