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

const alertColumns = `
	a.id, a.address, a.creator_id, a.timestamp, a.detail, a.status, a.visible, a.handler_id,
	a.evidence, a.route_origin_lat, a.route_origin_lng, a.route_dest_lat, a.route_dest_lng,
	a.resolution_notes, a.lat, a.lng,
	a.street, a.neighborhood, a.city, a.state, a.country, a.postal_code,
	a.created_at, a.updated_at`

type AlertRepository struct {
	db DB
}

func NewAlertRepository(db DB) service.AlertRepository {
	return &AlertRepository{db: db}
}

// alertRow - строка alerts; маршрут хранится в nullable колонках
type alertRow struct {
	alert                          models.Alert
	originLat, originLng           *float64
	destinationLat, destinationLng *float64
}

func (r *alertRow) targets() []any {
	a := &r.alert
	return []any{
		&a.ID, &a.Address, &a.CreatorID, &a.Timestamp, &a.Detail, &a.Status, &a.Visible, &a.HandlerID,
		&a.Evidence, &r.originLat, &r.originLng, &r.destinationLat, &r.destinationLng,
		&a.ResolutionNotes, &a.Location.Lat, &a.Location.Lng,
		&a.PostalAddress.Street, &a.PostalAddress.Neighborhood, &a.PostalAddress.City,
		&a.PostalAddress.State, &a.PostalAddress.Country, &a.PostalAddress.PostalCode,
		&a.CreatedAt, &a.UpdatedAt,
	}
}

func (r *alertRow) model() *models.Alert {
	a := r.alert
	if r.originLat != nil && r.originLng != nil && r.destinationLat != nil && r.destinationLng != nil {
		a.Route = &models.Route{
			Origin:      models.Coordinates{Lat: *r.originLat, Lng: *r.originLng},
			Destination: models.Coordinates{Lat: *r.destinationLat, Lng: *r.destinationLng},
		}
	}
	if a.Evidence == nil {
		a.Evidence = []string{}
	}
	return &a
}

func routeArgs(route *models.Route) (originLat, originLng, destinationLat, destinationLng *float64) {
	if route == nil {
		return nil, nil, nil, nil
	}
	return &route.Origin.Lat, &route.Origin.Lng, &route.Destination.Lat, &route.Destination.Lng
}

// Create сохраняет тревогу и заполняет id и временные метки
func (r *AlertRepository) Create(ctx context.Context, alert *models.Alert) error {
	query := `
		INSERT INTO alerts (
			address, creator_id, timestamp, detail, status, visible, evidence,
			lat, lng, street, neighborhood, city, state, country, postal_code
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		alert.Address,
		alert.CreatorID,
		alert.Timestamp,
		alert.Detail,
		alert.Status,
		alert.Visible,
		alert.Evidence,
		alert.Location.Lat,
		alert.Location.Lng,
		alert.PostalAddress.Street,
		alert.PostalAddress.Neighborhood,
		alert.PostalAddress.City,
		alert.PostalAddress.State,
		alert.PostalAddress.Country,
		alert.PostalAddress.PostalCode,
	).Scan(&alert.ID, &alert.CreatedAt, &alert.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create alert: %w", err)
	}
	return nil
}

func (r *AlertRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Alert, error) {
	query := `SELECT ` + alertColumns + ` FROM alerts a WHERE a.id = $1;`
	row := &alertRow{}
	if err := r.db.QueryRow(ctx, query, id).Scan(row.targets()...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("alert with id %s: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get alert by id: %w", err)
	}
	return row.model(), nil
}

// Update сохраняет изменяемые поля жизненного цикла тревоги
func (r *AlertRepository) Update(ctx context.Context, alert *models.Alert) error {
	originLat, originLng, destinationLat, destinationLng := routeArgs(alert.Route)
	query := `
		UPDATE alerts SET
			status = $1,
			visible = $2,
			handler_id = $3,
			evidence = $4,
			route_origin_lat = $5,
			route_origin_lng = $6,
			route_dest_lat = $7,
			route_dest_lng = $8,
			resolution_notes = $9,
			updated_at = NOW()
		WHERE id = $10
		RETURNING updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		alert.Status,
		alert.Visible,
		alert.HandlerID,
		alert.Evidence,
		originLat,
		originLng,
		destinationLat,
		destinationLng,
		alert.ResolutionNotes,
		alert.ID,
	).Scan(&alert.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("alert with id %s not found for update: %w", alert.ID, service.ErrNotFound)
		}
		return fmt.Errorf("failed to update alert: %w", err)
	}
	return nil
}

func (r *AlertRepository) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]*models.Alert, error) {
	query := `
		SELECT ` + alertColumns + `
		FROM alerts a
		WHERE a.creator_id = $1 AND a.visible = TRUE
		ORDER BY a.created_at DESC;
	`
	return r.list(ctx, "ListByCreator", query, creatorID)
}

// ListByStatuses возвращает видимые тревоги с одним из статусов, новые первыми
func (r *AlertRepository) ListByStatuses(ctx context.Context, statuses []models.AlertStatus) ([]*models.Alert, error) {
	labels := make([]string, len(statuses))
	for i, s := range statuses {
		labels[i] = string(s)
	}
	query := `
		SELECT ` + alertColumns + `
		FROM alerts a
		WHERE a.status = ANY($1) AND a.visible = TRUE
		ORDER BY a.created_at DESC;
	`
	return r.list(ctx, "ListByStatuses", query, labels)
}

func (r *AlertRepository) ListResolvedByHandler(ctx context.Context, handlerID uuid.UUID) ([]*models.Alert, error) {
	query := `
		SELECT ` + alertColumns + `
		FROM alerts a
		WHERE a.handler_id = $1 AND a.status = $2
		ORDER BY a.created_at DESC;
	`
	return r.list(ctx, "ListResolvedByHandler", query, handlerID, models.StatusResolved)
}

// ListAll - административный список с полями создателя и ответственного
func (r *AlertRepository) ListAll(ctx context.Context) ([]*models.Alert, error) {
	query := `
		SELECT ` + alertColumns + `,
			c.id, c.username, c.full_name, c.email, c.phone,
			h.id, h.username, h.full_name, h.email, h.phone
		FROM alerts a
		LEFT JOIN users c ON c.id = a.creator_id
		LEFT JOIN users h ON h.id = a.handler_id
		ORDER BY a.created_at DESC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	defer rows.Close()

	alerts := make([]*models.Alert, 0)
	for rows.Next() {
		row := &alertRow{}
		creator, handler := &nullableUser{}, &nullableUser{}
		targets := append(row.targets(), creator.targets()...)
		targets = append(targets, handler.targets()...)
		if err := rows.Scan(targets...); err != nil {
			return nil, fmt.Errorf("failed to scan alert row in ListAll: %w", err)
		}
		alert := row.model()
		alert.Creator = creator.summary()
		alert.Handler = handler.summary()
		alerts = append(alerts, alert)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in ListAll: %w", err)
	}
	return alerts, nil
}

// HideByCreator скрывает все тревоги пользователя, не удаляя их
func (r *AlertRepository) HideByCreator(ctx context.Context, creatorID uuid.UUID) (int64, error) {
	query := `UPDATE alerts SET visible = FALSE, updated_at = NOW() WHERE creator_id = $1;`
	cmdTag, err := r.db.Exec(ctx, query, creatorID)
	if err != nil {
		return 0, fmt.Errorf("failed to hide alerts: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// DeleteByCreator удаляет тревоги пользователя и возвращает их id
func (r *AlertRepository) DeleteByCreator(ctx context.Context, creatorID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, `DELETE FROM alerts WHERE creator_id = $1 RETURNING id;`, creatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete alerts: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, fmt.Errorf("failed to collect deleted alert ids: %w", err)
	}
	return ids, nil
}

func (r *AlertRepository) list(ctx context.Context, method, query string, args ...any) ([]*models.Alert, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts in %s: %w", method, err)
	}
	defer rows.Close()

	alerts := make([]*models.Alert, 0)
	for rows.Next() {
		row := &alertRow{}
		if err := rows.Scan(row.targets()...); err != nil {
			return nil, fmt.Errorf("failed to scan alert row in %s: %w", method, err)
		}
		alerts = append(alerts, row.model())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in %s: %w", method, err)
	}
	return alerts, nil
}

// nullableUser - колонки пользователя из LEFT JOIN
type nullableUser struct {
	id                               *uuid.UUID
	username, fullName, email, phone *string
}

func (u *nullableUser) targets() []any {
	return []any{&u.id, &u.username, &u.fullName, &u.email, &u.phone}
}

func (u *nullableUser) summary() *models.UserSummary {
	if u.id == nil {
		return nil
	}
	s := &models.UserSummary{ID: *u.id}
	if u.username != nil {
		s.Username = *u.username
	}
	if u.fullName != nil {
		s.FullName = *u.fullName
	}
	if u.email != nil {
		s.Email = *u.email
	}
	if u.phone != nil {
		s.Phone = *u.phone
	}
	return s
}
