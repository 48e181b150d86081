package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shenikar/sos_alert_system/internal/models"
	"github.com/shenikar/sos_alert_system/internal/service"
)

const contactColumns = `id, owner_id, first_name, last_name, phone, email, relationship, notifications_enabled, created_at, updated_at`

type ContactRepository struct {
	db DB
}

func NewContactRepository(db DB) service.ContactRepository {
	return &ContactRepository{db: db}
}

func scanContact(row pgx.Row) (*models.Contact, error) {
	contact := &models.Contact{}
	err := row.Scan(
		&contact.ID,
		&contact.OwnerID,
		&contact.FirstName,
		&contact.LastName,
		&contact.Phone,
		&contact.Email,
		&contact.Relationship,
		&contact.NotificationsEnabled,
		&contact.CreatedAt,
		&contact.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return contact, nil
}

func (r *ContactRepository) Create(ctx context.Context, contact *models.Contact) error {
	query := `
		INSERT INTO contacts (owner_id, first_name, last_name, phone, email, relationship, notifications_enabled)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		contact.OwnerID,
		contact.FirstName,
		contact.LastName,
		contact.Phone,
		contact.Email,
		contact.Relationship,
		contact.NotificationsEnabled,
	).Scan(&contact.ID, &contact.CreatedAt, &contact.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}
	return nil
}

func (r *ContactRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE id = $1;`
	contact, err := scanContact(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("contact with id %s: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get contact by id: %w", err)
	}
	return contact, nil
}

func (r *ContactRepository) Update(ctx context.Context, contact *models.Contact) error {
	query := `
		UPDATE contacts SET
			first_name = $1,
			last_name = $2,
			phone = $3,
			email = $4,
			relationship = $5,
			notifications_enabled = $6,
			updated_at = NOW()
		WHERE id = $7
		RETURNING updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		contact.FirstName,
		contact.LastName,
		contact.Phone,
		contact.Email,
		contact.Relationship,
		contact.NotificationsEnabled,
		contact.ID,
	).Scan(&contact.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("contact with id %s not found for update: %w", contact.ID, service.ErrNotFound)
		}
		return fmt.Errorf("failed to update contact: %w", err)
	}
	return nil
}

func (r *ContactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM contacts WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("contact with id %s not found for delete: %w", id, service.ErrNotFound)
	}
	return nil
}

func (r *ContactRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE owner_id = $1 ORDER BY created_at;`
	return r.list(ctx, query, ownerID)
}

// ListNotifiable - контакты владельца с включенными уведомлениями и непустым email
func (r *ContactRepository) ListNotifiable(ctx context.Context, ownerID uuid.UUID) ([]*models.Contact, error) {
	query := `
		SELECT ` + contactColumns + `
		FROM contacts
		WHERE owner_id = $1 AND notifications_enabled = TRUE AND email <> ''
		ORDER BY created_at;
	`
	return r.list(ctx, query, ownerID)
}

func (r *ContactRepository) SetNotifications(ctx context.Context, id uuid.UUID, enabled bool) error {
	query := `UPDATE contacts SET notifications_enabled = $1, updated_at = NOW() WHERE id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, enabled, id)
	if err != nil {
		return fmt.Errorf("failed to toggle contact notifications: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("contact with id %s not found for toggle: %w", id, service.ErrNotFound)
	}
	return nil
}

func (r *ContactRepository) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM contacts WHERE owner_id = $1;`, ownerID); err != nil {
		return fmt.Errorf("failed to delete owner contacts: %w", err)
	}
	return nil
}

func (r *ContactRepository) list(ctx context.Context, query string, args ...any) ([]*models.Contact, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	defer rows.Close()

	contacts := make([]*models.Contact, 0)
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact row: %w", err)
		}
		contacts = append(contacts, contact)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return contacts, nil
}
