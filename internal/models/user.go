package models

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleCitizen Role = "citizen"
	RolePolice  Role = "police"
	RoleAdmin   Role = "admin"
)

// Valid сообщает, входит ли роль в перечисление
func (r Role) Valid() bool {
	switch r {
	case RoleCitizen, RolePolice, RoleAdmin:
		return true
	}
	return false
}

// CanHandleAlerts - только полиция и администраторы работают с тревогами
func (r Role) CanHandleAlerts() bool {
	return r == RolePolice || r == RoleAdmin
}

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// User - учетная запись. PasswordHash никогда не сериализуется в ответы.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Phone        string    `json:"phone,omitempty"`
	Address      string    `json:"address,omitempty"`
	Gender       Gender    `json:"gender"`
	Role         Role      `json:"role"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserUpdate - частичное обновление профиля; nil означает "не менять"
type UserUpdate struct {
	Username *string
	FullName *string
	Email    *string
	Phone    *string
	Address  *string
	Gender   *Gender
	Role     *Role
	Active   *bool
}
