package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dheerghayush/naturals/internal/events"
	"github.com/dheerghayush/naturals/internal/mailer"
	"github.com/dheerghayush/naturals/internal/models"
	"github.com/dheerghayush/naturals/internal/repo"
	"github.com/dheerghayush/naturals/internal/transport"
	"github.com/dheerghayush/naturals/pkg/hash"
	"github.com/dheerghayush/naturals/pkg/logging"
)

const (
	ResetTokenTTL   = time.Hour
	resetTokenBytes = 32

	ForgotPasswordMessage = "If an account with this email exists, you will receive a password reset link shortly."
	ResetSuccessMessage   = "Password has been reset successfully. You can now login with your new password."
)

type resetStore interface {
	AccountStore
	ResetTokenStore
}

type PasswordResetService struct {
	Store       resetStore
	Hasher      hash.Hasher
	Mail        mailer.Sender
	Events      events.Publisher
	FrontendURL string
	Now         Clock
}

func newResetToken() (string, error) {
	b := make([]byte, resetTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// ForgotPassword answers with the same message whether or not the email
// belongs to an account.
func (s *PasswordResetService) ForgotPassword(ctx context.Context, email string) (string, error) {
	l := logging.FromContext(ctx).With("svc", "auth.forgot_password")
	email = normalizeEmail(email)

	c, err := s.Store.CustomerByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			l.Info("forgot_password_unknown_email")
			return ForgotPasswordMessage, nil
		}
		return "", fmt.Errorf("lookup customer: %w", err)
	}

	if err := s.Store.InvalidateResetTokens(ctx, email); err != nil {
		return "", fmt.Errorf("invalidate reset tokens: %w", err)
	}
	token, err := newResetToken()
	if err != nil {
		return "", fmt.Errorf("generate reset token: %w", err)
	}
	now := s.Now.now()
	if err := s.Store.CreateResetToken(ctx, &models.PasswordResetToken{
		ID:        uuid.NewString(),
		UserID:    c.ID,
		Email:     email,
		Token:     token,
		ExpiresAt: now.Add(ResetTokenTTL),
		CreatedAt: now,
	}); err != nil {
		return "", fmt.Errorf("store reset token: %w", err)
	}

	s.sendResetEmail(ctx, c, token)
	publish(ctx, s.Events, events.TopicUsers, c.ID, events.UserEvent{
		Type:       events.PasswordResetRequested,
		UserID:     c.ID,
		Email:      email,
		OccurredAt: now,
	})
	return ForgotPasswordMessage, nil
}

func (s *PasswordResetService) sendResetEmail(ctx context.Context, c *models.Customer, token string) {
	l := logging.FromContext(ctx)
	if s.Mail == nil {
		l.Warn("reset_email_error", "reason", "mailer not configured")
		return
	}
	link := strings.TrimRight(s.FrontendURL, "/") + "/reset-password?token=" + token
	body, err := mailer.RenderReset(mailer.ResetData{Name: c.Name, Link: link, ValidFor: "1 hour"})
	if err != nil {
		l.Error("reset_email_error", "reason", "cannot render template", "error", err)
		return
	}
	if err := s.Mail.Send(ctx, c.Email, c.Name, mailer.ResetSubject, body); err != nil {
		l.Error("reset_email_error", "reason", "cannot send email", "user_id", c.ID, "error", err)
		return
	}
	l.Info("reset_email_sent", "user_id", c.ID)
}

func (s *PasswordResetService) validToken(ctx context.Context, token string) (*models.PasswordResetToken, error) {
	t, err := s.Store.ResetTokenByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, newErr(ErrNotFound, "Invalid or expired reset token")
		}
		return nil, fmt.Errorf("lookup reset token: %w", err)
	}
	if t.Used {
		return nil, newErr(ErrValidation, "This reset link has already been used")
	}
	if !s.Now.now().Before(t.ExpiresAt) {
		return nil, newErr(ErrValidation, "This reset link has expired. Please request a new one.")
	}
	return t, nil
}

func (s *PasswordResetService) VerifyResetToken(ctx context.Context, token string) (*transport.VerifyResetTokenResponse, error) {
	t, err := s.validToken(ctx, token)
	if err != nil {
		return nil, err
	}
	return &transport.VerifyResetTokenResponse{Valid: true, Email: t.Email}, nil
}

// ResetPassword consumes the token and replaces the password hash together,
// so two concurrent redemptions cannot both succeed and a failed write
// leaves the token usable.
func (s *PasswordResetService) ResetPassword(ctx context.Context, token, newPassword string) (string, error) {
	if len(newPassword) < minPasswordLen {
		return "", newErr(ErrValidation, "Password must be at least 6 characters long")
	}
	t, err := s.validToken(ctx, token)
	if err != nil {
		return "", err
	}

	pwHash, err := s.Hasher.HashPassword(newPassword)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	ok, err := s.Store.RedeemResetToken(ctx, token, t.UserID, pwHash)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return "", newErr(ErrNotFound, "User not found")
		}
		return "", fmt.Errorf("redeem reset token: %w", err)
	}
	if !ok {
		return "", newErr(ErrValidation, "This reset link has already been used")
	}

	logging.FromContext(ctx).Info("password_reset_success", "user_id", t.UserID)
	publish(ctx, s.Events, events.TopicUsers, t.UserID, events.UserEvent{
		Type:       events.PasswordResetCompleted,
		UserID:     t.UserID,
		Email:      t.Email,
		OccurredAt: s.Now.now(),
	})
	return ResetSuccessMessage, nil
}
