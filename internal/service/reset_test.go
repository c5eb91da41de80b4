package service

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dheerghayush/naturals/internal/events"
	"github.com/dheerghayush/naturals/internal/mailer"
	"github.com/dheerghayush/naturals/internal/models"
	"github.com/dheerghayush/naturals/internal/transport"
)

var tokenInLink = regexp.MustCompile(`reset-password\?token=([A-Za-z0-9_-]+)`)

func (f *fixture) resets() *PasswordResetService {
	return &PasswordResetService{
		Store:       f.repo,
		Hasher:      f.hasher,
		Mail:        f.mail,
		Events:      f.events,
		FrontendURL: "https://shop.example.com/",
		Now:         f.clock,
	}
}

func mailedToken(t *testing.T, f *fixture) string {
	t.Helper()
	sent := f.mail.Sent()
	require.NotEmpty(t, sent)
	m := tokenInLink.FindStringSubmatch(sent[len(sent)-1].Body)
	require.Len(t, m, 2, "reset link not found in mail body")
	return m[1]
}

func TestPasswordReset_FullFlow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	authSvc := f.auth()
	authSvc.Now = nil
	_, err := authSvc.Signup(ctx, signup("Asha", "asha@example.com", "9876543210", "oldpass"))
	require.NoError(t, err)
	svc := f.resets()

	msg, err := svc.ForgotPassword(ctx, "Asha@Example.com")
	require.NoError(t, err)
	assert.Equal(t, ForgotPasswordMessage, msg)

	sent := f.mail.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "asha@example.com", sent[0].To)
	assert.Equal(t, mailer.ResetSubject, sent[0].Subject)
	assert.Contains(t, sent[0].Body, "https://shop.example.com/reset-password?token=")
	token := mailedToken(t, f)

	v, err := svc.VerifyResetToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, transport.VerifyResetTokenResponse{Valid: true, Email: "asha@example.com"}, *v)

	_, err = svc.ResetPassword(ctx, token, "123")
	require.ErrorIs(t, err, ErrValidation)

	msg, err = svc.ResetPassword(ctx, token, "newpass")
	require.NoError(t, err)
	assert.Equal(t, ResetSuccessMessage, msg)

	_, err = svc.ResetPassword(ctx, token, "another")
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "This reset link has already been used", Message(err))

	_, err = authSvc.Login(ctx, transport.LoginRequest{Email: "asha@example.com", Password: "oldpass"})
	require.ErrorIs(t, err, ErrUnauthorized)
	_, err = authSvc.Login(ctx, transport.LoginRequest{Email: "asha@example.com", Password: "newpass"})
	require.NoError(t, err)

	assert.Equal(t, []string{events.UserRegistered, events.PasswordResetRequested, events.PasswordResetCompleted}, f.events.Types())
}

func TestPasswordReset_UnknownEmailLooksTheSame(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	msg, err := f.resets().ForgotPassword(context.Background(), "ghost@example.com")
	require.NoError(t, err)
	assert.Equal(t, ForgotPasswordMessage, msg)
	assert.Empty(t, f.mail.Sent())
	assert.Empty(t, f.events.Types())
}

func TestPasswordReset_Expiry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	u := f.customer(t)
	svc := f.resets()

	_, err := svc.ForgotPassword(ctx, u.Email)
	require.NoError(t, err)
	token := mailedToken(t, f)

	f.advance(ResetTokenTTL - time.Second)
	_, err = svc.VerifyResetToken(ctx, token)
	require.NoError(t, err)

	f.advance(time.Second)
	_, err = svc.VerifyResetToken(ctx, token)
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "This reset link has expired. Please request a new one.", Message(err))

	_, err = svc.VerifyResetToken(ctx, "does-not-exist")
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Invalid or expired reset token", Message(err))
}

func TestPasswordReset_NewRequestInvalidatesOldToken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	u := f.customer(t)
	svc := f.resets()

	_, err := svc.ForgotPassword(ctx, u.Email)
	require.NoError(t, err)
	first := mailedToken(t, f)

	_, err = svc.ForgotPassword(ctx, u.Email)
	require.NoError(t, err)
	second := mailedToken(t, f)
	require.NotEqual(t, first, second)

	_, err = svc.VerifyResetToken(ctx, first)
	require.ErrorIs(t, err, ErrValidation)
	_, err = svc.VerifyResetToken(ctx, second)
	require.NoError(t, err)
}

func TestPasswordReset_MailFailureIsNotReported(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	u := f.customer(t)
	f.mail.fail = true

	msg, err := f.resets().ForgotPassword(ctx, u.Email)
	require.NoError(t, err)
	assert.Equal(t, ForgotPasswordMessage, msg)
}

func TestPasswordReset_FailedWriteKeepsToken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	u := f.customer(t)
	svc := f.resets()

	_, err := svc.ForgotPassword(ctx, u.Email)
	require.NoError(t, err)
	token := mailedToken(t, f)

	require.NoError(t, f.repo.DB.Unscoped().Where("id = ?", u.ID).Delete(&models.Customer{}).Error)

	_, err = svc.ResetPassword(ctx, token, "newpass1")
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "User not found", Message(err))

	stored, err := f.repo.ResetTokenByToken(ctx, token)
	require.NoError(t, err)
	assert.False(t, stored.Used)
	_, err = svc.VerifyResetToken(ctx, token)
	require.NoError(t, err)
}
