package models

import (
	"time"

	"github.com/google/uuid"
)

// AlertStatus - состояние жизненного цикла тревоги
type AlertStatus string

const (
	StatusPending   AlertStatus = "pending"
	StatusAssigned  AlertStatus = "assigned"
	StatusEnRoute   AlertStatus = "en-route"
	StatusResolved  AlertStatus = "resolved"
	StatusCancelled AlertStatus = "cancelled"
)

// transitions - разрешенные переходы статуса: from -> {to}
var transitions = map[AlertStatus][]AlertStatus{
	StatusPending:   {StatusPending, StatusAssigned, StatusEnRoute, StatusResolved, StatusCancelled},
	StatusAssigned:  {StatusAssigned, StatusEnRoute, StatusResolved, StatusCancelled},
	StatusEnRoute:   {StatusEnRoute, StatusResolved, StatusCancelled},
	StatusResolved:  {},
	StatusCancelled: {},
}

// OpenStatuses - статусы, которые видит дежурный полицейский
var OpenStatuses = []AlertStatus{StatusPending, StatusAssigned, StatusEnRoute}

// ParseAlertStatus проверяет, что метка входит в перечисление
func ParseAlertStatus(s string) (AlertStatus, bool) {
	status := AlertStatus(s)
	_, ok := transitions[status]
	return status, ok
}

// IsTerminal - resolved и cancelled не имеют исходящих переходов
func (s AlertStatus) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// CanTransitionTo сообщает, разрешен ли переход s -> next
func (s AlertStatus) CanTransitionTo(next AlertStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Coordinates - пара широта/долгота
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Route - маршрут реагирования от точки отправления до места тревоги
type Route struct {
	Origin      Coordinates `json:"origin"`
	Destination Coordinates `json:"destination"`
}

// PostalAddress - детальная разбивка адреса
type PostalAddress struct {
	Street       string `json:"street,omitempty"`
	Neighborhood string `json:"neighborhood,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	Country      string `json:"country,omitempty"`
	PostalCode   string `json:"postal_code,omitempty"`
}

// UserSummary - поля связанного пользователя для административного списка
type UserSummary struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	FullName string    `json:"full_name"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone,omitempty"`
}

type Alert struct {
	ID              uuid.UUID     `json:"id"`
	Address         string        `json:"address"`
	CreatorID       uuid.UUID     `json:"creator_id"`
	Timestamp       time.Time     `json:"timestamp"`
	Detail          string        `json:"detail"`
	Status          AlertStatus   `json:"status"`
	Visible         bool          `json:"visible"`
	HandlerID       *uuid.UUID    `json:"handler_id,omitempty"`
	Evidence        []string      `json:"evidence"`
	Route           *Route        `json:"route,omitempty"`
	ResolutionNotes string        `json:"resolution_notes,omitempty"`
	Location        Coordinates   `json:"location"`
	PostalAddress   PostalAddress `json:"postal_address"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`

	// Заполняются только в административном списке
	Creator *UserSummary `json:"creator,omitempty"`
	Handler *UserSummary `json:"handler,omitempty"`
}

// StatusUpdate - параметры перехода статуса
type StatusUpdate struct {
	Status          string
	HandlerID       *uuid.UUID
	Origin          *Coordinates
	Destination     *Coordinates
	ResolutionNotes string
	EvidenceURL     string
}
