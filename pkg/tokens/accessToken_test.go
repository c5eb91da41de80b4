package tokens

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-jwt-secret")

func TestSignAccessToken_RoundTrip(t *testing.T) {
	t.Parallel()

	id := uuid.NewString()
	now := time.Now().UTC()
	token, err := SignAccessToken(id, AccessClaims{Email: "a@b.c", Type: TypeAdmin, Role: "admin"}, secret, now, now.Add(AccessTTL))
	require.NoError(t, err)

	claims, err := AccessClaimsFromToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, id, claims.Subject)
	assert.Equal(t, "a@b.c", claims.Email)
	assert.True(t, claims.IsAdmin())
	assert.Equal(t, "admin", claims.Role)
	assert.WithinDuration(t, now.Add(24*time.Hour), claims.ExpiresAt.Time, time.Second)
}

func TestAccessClaimsFromToken_Errors(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	valid, err := SignAccessToken("u1", AccessClaims{Type: TypeUser}, secret, now, now.Add(time.Hour))
	require.NoError(t, err)
	expired, err := SignAccessToken("u1", AccessClaims{Type: TypeUser}, secret, now.Add(-2*time.Hour), now.Add(-time.Hour))
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, AccessClaims{
		Type:             TypeUser,
		RegisteredClaims: jwt.RegisteredClaims{Subject: "u1", ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour))},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		secret []byte
		want   error
	}{
		{name: "expired", token: expired, secret: secret, want: ErrExpiredToken},
		{name: "wrong secret", token: valid, secret: []byte("other"), want: ErrInvalidToken},
		{name: "garbage", token: "not.a.token", secret: secret, want: ErrInvalidToken},
		{name: "alg none", token: none, secret: secret, want: ErrInvalidToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			claims, err := AccessClaimsFromToken(tt.token, tt.secret)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSignAccessToken_EmptySecret(t *testing.T) {
	t.Parallel()

	_, err := SignAccessToken("u1", AccessClaims{}, nil, time.Now(), time.Now().Add(time.Hour))
	assert.Error(t, err)
}
