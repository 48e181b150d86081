package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		password string
		valid    bool
	}{
		{"Secret#123", true},
		{"Ñandú_2024", true},
		{"S#1", false},
		{"lowercase#1", false},
		{"NoSpecial123", false},
		{"Spaces Only1", false},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.True(t, isValidation(err))
			}
		})
	}
}

func TestDetailPolicy_BoundsAreInclusive(t *testing.T) {
	policy := DetailPolicy{MinChars: 5, MaxChars: 20, MinWords: 2, MaxWords: 4}

	assert.NoError(t, policy.Validate("ab cd"))
	assert.NoError(t, policy.Validate("  uno dos tres cuatro ")) // 19 символов после обрезки
	assert.Error(t, policy.Validate("abcd"))
	assert.Error(t, policy.Validate("uno dos tres cuatro cinco"))
	assert.Error(t, policy.Validate("abcdefgh"))
}
