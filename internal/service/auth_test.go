package service

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dheerghayush/naturals/internal/events"
	"github.com/dheerghayush/naturals/internal/models"
	"github.com/dheerghayush/naturals/internal/transport"
	authmw "github.com/dheerghayush/naturals/pkg/middleware/auth"
	"github.com/dheerghayush/naturals/pkg/tokens"
)

func subject(id string) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{Subject: id}
}

func signup(name, email, phone, password string) transport.SignupRequest {
	return transport.SignupRequest{Name: name, Email: email, Phone: phone, Password: password}
}

func TestAuthService_SignupAndLogin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	svc := f.auth()
	svc.Now = nil // tokens are checked against wall time

	resp, err := svc.Signup(ctx, signup("Asha", " Asha@Example.com ", "9876543210", "secret1"))
	require.NoError(t, err)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, "asha@example.com", resp.User.Email)
	assert.Equal(t, tokens.TypeUser, resp.User.Type)

	claims, err := tokens.AccessClaimsFromToken(resp.AccessToken, []byte(testSecret))
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.Subject)
	assert.False(t, claims.IsAdmin())

	_, err = svc.Signup(ctx, signup("Other", "asha@example.com", "1111111111", "secret1"))
	require.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, "This email is already registered. Please login instead.", Message(err))

	_, err = svc.Signup(ctx, signup("Other", "other@example.com", "9876543210", "secret1"))
	require.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, "This phone number is already registered.", Message(err))

	_, err = svc.Signup(ctx, signup("Short", "short@example.com", "2222222222", "12345"))
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "Password must be at least 6 characters long", Message(err))

	login, err := svc.Login(ctx, transport.LoginRequest{Email: "ASHA@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)

	_, err = svc.Login(ctx, transport.LoginRequest{Email: "asha@example.com", Password: "wrong"})
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "Incorrect password. Please try again.", Message(err))

	_, err = svc.Login(ctx, transport.LoginRequest{Email: "nobody@example.com", Password: "secret1"})
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Email not found. Please sign up first.", Message(err))

	assert.Equal(t, []string{events.UserRegistered}, f.events.Types())
}

func TestAuthService_AdminLogin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	svc := f.auth()
	svc.Now = nil

	created, err := svc.EnsureAdmin(ctx, "", "Admin@Naturals.in", "adminpass")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = svc.EnsureAdmin(ctx, "", "admin@naturals.in", "other")
	require.NoError(t, err)
	assert.False(t, created)

	resp, err := svc.AdminLogin(ctx, transport.LoginRequest{Email: "admin@naturals.in", Password: "adminpass"})
	require.NoError(t, err)
	assert.Equal(t, tokens.TypeAdmin, resp.User.Type)
	assert.Equal(t, AdminRoleDefault, resp.User.Role)
	assert.Equal(t, "Admin", resp.User.Name)

	// Admins may also use the shared login.
	resp, err = svc.Login(ctx, transport.LoginRequest{Email: "admin@naturals.in", Password: "adminpass"})
	require.NoError(t, err)
	assert.Equal(t, tokens.TypeAdmin, resp.User.Type)

	_, err = svc.AdminLogin(ctx, transport.LoginRequest{Email: "admin@naturals.in", Password: "nope"})
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "Incorrect password", Message(err))

	_, err = svc.AdminLogin(ctx, transport.LoginRequest{Email: "ghost@naturals.in", Password: "nope"})
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Admin not found", Message(err))

	_, err = svc.EnsureAdmin(ctx, "", "", "x")
	require.ErrorIs(t, err, ErrValidation)
}

func TestAuthService_InactiveAccounts(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	svc := f.auth()

	pw, err := f.hasher.HashPassword("secret1")
	require.NoError(t, err)
	require.NoError(t, f.repo.CreateCustomer(ctx, &models.Customer{
		ID: "u-off", Name: "Off", Email: "off@example.com", Phone: "5555555555", PasswordHash: pw,
	}))
	require.NoError(t, f.repo.CreateAdmin(ctx, &models.Admin{
		ID: "a-off", Name: "Off", Email: "root@naturals.in", PasswordHash: pw, Role: AdminRoleDefault,
	}))

	_, err = svc.Login(ctx, transport.LoginRequest{Email: "off@example.com", Password: "secret1"})
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "Account is inactive", Message(err))

	_, err = svc.Login(ctx, transport.LoginRequest{Email: "root@naturals.in", Password: "secret1"})
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "Admin account is inactive", Message(err))

	_, err = svc.Resolve(ctx, &tokens.AccessClaims{Type: tokens.TypeUser, RegisteredClaims: subject("u-off")})
	require.ErrorIs(t, err, authmw.ErrRejected)

	_, err = svc.Resolve(ctx, &tokens.AccessClaims{Type: tokens.TypeAdmin, RegisteredClaims: subject("a-off")})
	require.ErrorIs(t, err, authmw.ErrRejected)

	_, err = svc.Resolve(ctx, &tokens.AccessClaims{Type: tokens.TypeUser, RegisteredClaims: subject("missing")})
	require.ErrorIs(t, err, authmw.ErrRejected)
}

func TestAuthService_Resolve(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	svc := f.auth()
	u := f.customer(t)

	p, err := svc.Resolve(ctx, &tokens.AccessClaims{Type: tokens.TypeUser, RegisteredClaims: subject(u.ID)})
	require.NoError(t, err)
	assert.Equal(t, u.ID, p.PrincipalID())
	assert.False(t, p.IsAdmin())

	// A customer id presented with an admin-typed token is not an admin.
	_, err = svc.Resolve(ctx, &tokens.AccessClaims{Type: tokens.TypeAdmin, RegisteredClaims: subject(u.ID)})
	require.ErrorIs(t, err, authmw.ErrRejected)
}
