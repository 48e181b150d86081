package hasher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcrypt_HashAndCompare(t *testing.T) {
	h := New(bcrypt.MinCost)

	hash, err := h.Hash("Secret#123")
	require.NoError(t, err)
	assert.NotEqual(t, "Secret#123", hash)

	assert.NoError(t, h.Compare(hash, "Secret#123"))
	assert.Error(t, h.Compare(hash, "secret#123"))
	assert.Error(t, h.Compare("", "Secret#123"))
}

func TestNew_InvalidCostFallsBack(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, New(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, New(100).cost)
	assert.Equal(t, 12, New(12).cost)
}
