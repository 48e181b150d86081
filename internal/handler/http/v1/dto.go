package v1

import (
	"time"

	"github.com/google/uuid"
)

// MessageResponse - стандартный конверт ответа с сообщением
// @Description Стандартный конверт ответа с сообщением
type MessageResponse struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// CoordinatesDTO пара широта/долгота
// @Description Пара широта/долгота
type CoordinatesDTO struct {
	Lat *float64 `json:"lat" validate:"required,latitude"`
	Lng *float64 `json:"lng" validate:"required,longitude"`
}

// PostalAddressDTO детальная разбивка адреса
// @Description Детальная разбивка адреса
type PostalAddressDTO struct {
	Street       string `json:"street,omitempty"`
	Neighborhood string `json:"neighborhood,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	Country      string `json:"country,omitempty"`
	PostalCode   string `json:"postal_code,omitempty"`
}

// CreateAlertRequest DTO для создания тревоги
// @Description DTO для создания тревоги
type CreateAlertRequest struct {
	Address       string            `json:"address" validate:"required"`
	CreatorID     string            `json:"creator_id" validate:"required,uuid"`
	Timestamp     *time.Time        `json:"timestamp,omitempty"`
	Detail        string            `json:"detail" validate:"required"`
	Location      *CoordinatesDTO   `json:"location" validate:"required"`
	PostalAddress *PostalAddressDTO `json:"postal_address,omitempty"`
	Evidence      []string          `json:"evidence,omitempty" validate:"omitempty,dive,url"`
}

// UpdateStatusRequest DTO для перехода статуса тревоги
// @Description DTO для перехода статуса тревоги
type UpdateStatusRequest struct {
	Status          string          `json:"status" validate:"required"`
	HandlerID       string          `json:"handler_id,omitempty" validate:"omitempty,uuid"`
	Origin          *CoordinatesDTO `json:"origin,omitempty" validate:"omitempty"`
	Destination     *CoordinatesDTO `json:"destination,omitempty" validate:"omitempty"`
	ResolutionNotes string          `json:"resolution_notes,omitempty"`
	EvidenceURL     string          `json:"evidence_url,omitempty" validate:"omitempty,url"`
}

// RouteResponse маршрут реагирования
// @Description Маршрут реагирования
type RouteResponse struct {
	Origin      CoordinatesResponse `json:"origin"`
	Destination CoordinatesResponse `json:"destination"`
}

// CoordinatesResponse координаты в ответе
// @Description Координаты в ответе
type CoordinatesResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// UserSummaryResponse поля связанного пользователя
// @Description Поля связанного пользователя
type UserSummaryResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	FullName string    `json:"full_name"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone,omitempty"`
}

// AlertResponse DTO для ответа с информацией о тревоге
// @Description DTO для ответа с информацией о тревоге
type AlertResponse struct {
	ID              uuid.UUID            `json:"id"`
	Address         string               `json:"address"`
	CreatorID       uuid.UUID            `json:"creator_id"`
	Timestamp       time.Time            `json:"timestamp"`
	Detail          string               `json:"detail"`
	Status          string               `json:"status"`
	Visible         bool                 `json:"visible"`
	HandlerID       *uuid.UUID           `json:"handler_id,omitempty"`
	Evidence        []string             `json:"evidence"`
	Route           *RouteResponse       `json:"route,omitempty"`
	ResolutionNotes string               `json:"resolution_notes,omitempty"`
	Location        CoordinatesResponse  `json:"location"`
	PostalAddress   PostalAddressDTO     `json:"postal_address"`
	Creator         *UserSummaryResponse `json:"creator,omitempty"`
	Handler         *UserSummaryResponse `json:"handler,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

// NotificationResponse DTO для ответа с уведомлением
// @Description DTO для ответа с уведомлением
type NotificationResponse struct {
	ID        uuid.UUID   `json:"id"`
	AlertID   uuid.UUID   `json:"alert_id"`
	Message   string      `json:"message"`
	ReadBy    []uuid.UUID `json:"read_by"`
	Type      string      `json:"type"`
	CreatedAt time.Time   `json:"created_at"`
}

// CreateAlertResponse ответ на создание тревоги
// @Description Ответ на создание тревоги
type CreateAlertResponse struct {
	Message      string                `json:"message"`
	Alert        *AlertResponse        `json:"alert"`
	Notification *NotificationResponse `json:"notification,omitempty"`
}

// MarkAsReadRequest DTO для отметки уведомления прочитанным
// @Description DTO для отметки уведомления прочитанным
type MarkAsReadRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
}

// CreateContactRequest DTO для создания экстренного контакта
// @Description DTO для создания экстренного контакта
type CreateContactRequest struct {
	OwnerID              string `json:"owner_id" validate:"required,uuid"`
	FirstName            string `json:"first_name" validate:"required,max=100"`
	LastName             string `json:"last_name" validate:"required,max=100"`
	Phone                string `json:"phone" validate:"required,max=50"`
	Email                string `json:"email,omitempty" validate:"omitempty,email"`
	Relationship         string `json:"relationship" validate:"required,max=100"`
	NotificationsEnabled *bool  `json:"notifications_enabled,omitempty"`
}

// UpdateContactRequest DTO для обновления экстренного контакта
// @Description DTO для обновления экстренного контакта
type UpdateContactRequest struct {
	FirstName    string `json:"first_name" validate:"required,max=100"`
	LastName     string `json:"last_name" validate:"required,max=100"`
	Phone        string `json:"phone" validate:"required,max=50"`
	Email        string `json:"email,omitempty" validate:"omitempty,email"`
	Relationship string `json:"relationship" validate:"required,max=100"`
}

// ToggleNotificationsRequest DTO для включения/выключения писем контакту
// @Description DTO для включения/выключения писем контакту
type ToggleNotificationsRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

// ContactResponse DTO для ответа с экстренным контактом
// @Description DTO для ответа с экстренным контактом
type ContactResponse struct {
	ID                   uuid.UUID `json:"id"`
	OwnerID              uuid.UUID `json:"owner_id"`
	FirstName            string    `json:"first_name"`
	LastName             string    `json:"last_name"`
	Phone                string    `json:"phone"`
	Email                string    `json:"email,omitempty"`
	Relationship         string    `json:"relationship"`
	NotificationsEnabled bool      `json:"notifications_enabled"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// RegisterRequest DTO для регистрации гражданина
// @Description DTO для регистрации гражданина; роль всегда citizen
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	FullName string `json:"full_name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Phone    string `json:"phone,omitempty" validate:"max=50"`
	Address  string `json:"address,omitempty"`
	Gender   string `json:"gender" validate:"required,oneof=male female"`
}

// CreateUserRequest DTO для административного создания пользователя
// @Description DTO для административного создания пользователя; роль по умолчанию police
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	FullName string `json:"full_name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Phone    string `json:"phone,omitempty" validate:"max=50"`
	Address  string `json:"address,omitempty"`
	Gender   string `json:"gender" validate:"required,oneof=male female"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=citizen police admin"`
}

// UpdateUserRequest DTO для частичного обновления профиля
// @Description DTO для частичного обновления профиля; пароль здесь не меняется
type UpdateUserRequest struct {
	Username *string `json:"username,omitempty" validate:"omitempty,min=3,max=100"`
	FullName *string `json:"full_name,omitempty" validate:"omitempty,max=255"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=50"`
	Address  *string `json:"address,omitempty"`
	Gender   *string `json:"gender,omitempty" validate:"omitempty,oneof=male female"`
	Role     *string `json:"role,omitempty" validate:"omitempty,oneof=citizen police admin"`
	Active   *bool   `json:"active,omitempty"`
}

// UserResponse DTO для ответа с пользователем; хеш пароля никогда не возвращается
// @Description DTO для ответа с пользователем
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	Gender    string    `json:"gender"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserEnvelope ответ с сообщением и пользователем
// @Description Ответ с сообщением и пользователем
type UserEnvelope struct {
	Message string        `json:"message"`
	User    *UserResponse `json:"user"`
}

// LoginRequest DTO для входа
// @Description DTO для входа
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ChangePasswordRequest DTO для смены пароля по email
// @Description DTO для смены пароля по email; требует текущий пароль
type ChangePasswordRequest struct {
	Email           string `json:"email" validate:"required,email"`
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required"`
}

// ForgotPasswordRequest DTO для запроса кода сброса
// @Description DTO для запроса кода сброса
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest DTO для сброса пароля по коду
// @Description DTO для сброса пароля по коду
type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Code        string `json:"code" validate:"required,len=6,numeric"`
	NewPassword string `json:"new_password" validate:"required"`
}

// UserChangePasswordRequest DTO для смены пароля владельцем учетной записи
// @Description DTO для смены пароля владельцем учетной записи
type UserChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required"`
}

// AdminResetPasswordRequest DTO для смены пароля администратором
// @Description DTO для смены пароля администратором
type AdminResetPasswordRequest struct {
	NewPassword string `json:"new_password" validate:"required"`
}

// DeleteAccountRequest DTO для удаления учетной записи владельцем
// @Description DTO для удаления учетной записи владельцем
type DeleteAccountRequest struct {
	Password       string `json:"password" validate:"required"`
	PreserveAlerts bool   `json:"preserve_alerts"`
}
