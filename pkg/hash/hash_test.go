package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher_RoundTrip(t *testing.T) {
	t.Parallel()

	h := New(bcrypt.MinCost)
	hashed, err := h.HashPassword("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, "secret1", hashed)
	assert.True(t, h.CheckPassword(hashed, "secret1"))
	assert.False(t, h.CheckPassword(hashed, "secret2"))
	assert.False(t, h.CheckPassword("not-a-hash", "secret1"))
}

func TestHasher_SaltsEachHash(t *testing.T) {
	t.Parallel()

	h := New(bcrypt.MinCost)
	a, err := h.HashPassword("same")
	require.NoError(t, err)
	b, err := h.HashPassword("same")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestNew_ClampsCost(t *testing.T) {
	t.Parallel()

	assert.Equal(t, bcrypt.DefaultCost, New(0).Cost)
	assert.Equal(t, bcrypt.DefaultCost, New(99).Cost)
	assert.Equal(t, 12, New(12).Cost)
}
