package service

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shenikar/sos_alert_system/internal/config"
	"github.com/shenikar/sos_alert_system/internal/models"
)

const minPasswordLength = 8

// DetailPolicy - границы длины и количества слов в описании тревоги
type DetailPolicy struct {
	MinChars int
	MaxChars int
	MinWords int
	MaxWords int
}

// NewDetailPolicy строит политику из конфигурации
func NewDetailPolicy(cfg *config.Config) DetailPolicy {
	return DetailPolicy{
		MinChars: cfg.DetailMinChars,
		MaxChars: cfg.DetailMaxChars,
		MinWords: cfg.DetailMinWords,
		MaxWords: cfg.DetailMaxWords,
	}
}

// Validate проверяет обрезанное описание на соответствие политике
func (p DetailPolicy) Validate(detail string) error {
	trimmed := strings.TrimSpace(detail)
	if trimmed == "" {
		return newValidationError("detail", "detail is required")
	}

	chars := utf8.RuneCountInString(trimmed)
	if chars < p.MinChars {
		return newValidationError("detail", "detail must be at least %d characters long", p.MinChars)
	}
	if chars > p.MaxChars {
		return newValidationError("detail", "detail must be at most %d characters long", p.MaxChars)
	}

	words := len(strings.Fields(trimmed))
	if words < p.MinWords {
		return newValidationError("detail", "detail must contain at least %d words", p.MinWords)
	}
	if words > p.MaxWords {
		return newValidationError("detail", "detail must contain at most %d words", p.MaxWords)
	}
	return nil
}

// validCoordinates проверяет диапазоны широты и долготы
func validCoordinates(c models.Coordinates) bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// ValidatePassword проверяет сложность пароля: длина, заглавная буква, спецсимвол
func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < minPasswordLength {
		return newValidationError("password", "password must be at least %d characters long", minPasswordLength)
	}

	var hasUpper, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsSpace(r):
			hasSpecial = true
		}
	}
	if !hasUpper {
		return newValidationError("password", "password must contain at least one uppercase letter")
	}
	if !hasSpecial {
		return newValidationError("password", "password must contain at least one special character")
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
