package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dheerghayush/naturals/internal/events"
	"github.com/dheerghayush/naturals/internal/models"
	"github.com/dheerghayush/naturals/internal/repo"
	"github.com/dheerghayush/naturals/internal/transport"
	"github.com/dheerghayush/naturals/pkg/hash"
	"github.com/dheerghayush/naturals/pkg/logging"
	authmw "github.com/dheerghayush/naturals/pkg/middleware/auth"
	"github.com/dheerghayush/naturals/pkg/tokens"
)

const (
	AdminRoleDefault = "admin"
	minPasswordLen   = 6
)

// Principal is an authenticated customer or administrator.
type Principal struct {
	ID    string
	Name  string
	Email string
	Phone string
	Type  string
	Role  string
}

func (p *Principal) PrincipalID() string { return p.ID }

func (p *Principal) IsAdmin() bool { return p.Type == tokens.TypeAdmin }

func (p *Principal) Profile() transport.Profile {
	return transport.Profile{ID: p.ID, Name: p.Name, Email: p.Email, Phone: p.Phone, Role: p.Role, Type: p.Type}
}

func customerPrincipal(c *models.Customer) *Principal {
	return &Principal{ID: c.ID, Name: c.Name, Email: c.Email, Phone: c.Phone, Type: tokens.TypeUser}
}

func adminPrincipal(a *models.Admin) *Principal {
	return &Principal{ID: a.ID, Name: a.Name, Email: a.Email, Type: tokens.TypeAdmin, Role: a.Role}
}

type AuthService struct {
	Accounts AccountStore
	Hasher   hash.Hasher
	Secret   []byte
	Events   events.Publisher
	Now      Clock
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) issue(p *Principal) (*transport.TokenResponse, error) {
	now := s.Now.now()
	exp := now.Add(tokens.AccessTTL)
	token, err := tokens.SignAccessToken(p.ID, tokens.AccessClaims{
		Email: p.Email,
		Type:  p.Type,
		Role:  p.Role,
	}, s.Secret, now, exp)
	if err != nil {
		return nil, err
	}
	return &transport.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   exp,
		User:        p.Profile(),
	}, nil
}

func (s *AuthService) Signup(ctx context.Context, req transport.SignupRequest) (*transport.TokenResponse, error) {
	l := logging.FromContext(ctx).With("svc", "auth.signup")

	email := normalizeEmail(req.Email)
	phone := strings.TrimSpace(req.Phone)
	if strings.TrimSpace(req.Name) == "" || email == "" || phone == "" {
		return nil, newErr(ErrValidation, "Name, email and phone are required")
	}
	if len(req.Password) < minPasswordLen {
		return nil, newErr(ErrValidation, "Password must be at least 6 characters long")
	}

	if _, err := s.Accounts.CustomerByEmail(ctx, email); err == nil {
		return nil, newErr(ErrConflict, "This email is already registered. Please login instead.")
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, fmt.Errorf("lookup email: %w", err)
	}
	if _, err := s.Accounts.CustomerByPhone(ctx, phone); err == nil {
		return nil, newErr(ErrConflict, "This phone number is already registered.")
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, fmt.Errorf("lookup phone: %w", err)
	}

	pwHash, err := s.Hasher.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	c := &models.Customer{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		Phone:        phone,
		PasswordHash: pwHash,
		IsActive:     true,
		CreatedAt:    s.Now.now(),
	}
	if err := s.Accounts.CreateCustomer(ctx, c); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, newErr(ErrConflict, "This email is already registered. Please login instead.")
		}
		return nil, fmt.Errorf("create customer: %w", err)
	}

	publish(ctx, s.Events, events.TopicUsers, c.ID, events.UserEvent{
		Type:       events.UserRegistered,
		UserID:     c.ID,
		Email:      c.Email,
		OccurredAt: c.CreatedAt,
	})

	l.Info("signup_success", "user_id", c.ID)
	return s.issue(customerPrincipal(c))
}

// Login checks the admin store first so administrators can use the shared
// login form, then falls back to customers.
func (s *AuthService) Login(ctx context.Context, req transport.LoginRequest) (*transport.TokenResponse, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")
	email := normalizeEmail(req.Email)

	a, err := s.Accounts.AdminByEmail(ctx, email)
	switch {
	case err == nil:
		if s.Hasher.CheckPassword(a.PasswordHash, req.Password) {
			if !a.IsActive {
				return nil, newErr(ErrUnauthorized, "Admin account is inactive")
			}
			l.Info("login_success", "admin_id", a.ID)
			return s.issue(adminPrincipal(a))
		}
	case !errors.Is(err, repo.ErrNotFound):
		return nil, fmt.Errorf("lookup admin: %w", err)
	}

	c, err := s.Accounts.CustomerByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, newErr(ErrNotFound, "Email not found. Please sign up first.")
		}
		return nil, fmt.Errorf("lookup customer: %w", err)
	}
	if !s.Hasher.CheckPassword(c.PasswordHash, req.Password) {
		return nil, newErr(ErrUnauthorized, "Incorrect password. Please try again.")
	}
	if !c.IsActive {
		return nil, newErr(ErrUnauthorized, "Account is inactive")
	}

	l.Info("login_success", "user_id", c.ID)
	return s.issue(customerPrincipal(c))
}

func (s *AuthService) AdminLogin(ctx context.Context, req transport.LoginRequest) (*transport.TokenResponse, error) {
	a, err := s.Accounts.AdminByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, newErr(ErrNotFound, "Admin not found")
		}
		return nil, fmt.Errorf("lookup admin: %w", err)
	}
	if !s.Hasher.CheckPassword(a.PasswordHash, req.Password) {
		return nil, newErr(ErrUnauthorized, "Incorrect password")
	}
	if !a.IsActive {
		return nil, newErr(ErrUnauthorized, "Admin account is inactive")
	}
	logging.FromContext(ctx).Info("admin_login_success", "admin_id", a.ID)
	return s.issue(adminPrincipal(a))
}

// Resolve loads the account named by the token subject. Admin-typed tokens
// are looked up among administrators, all others among customers.
func (s *AuthService) Resolve(ctx context.Context, claims *tokens.AccessClaims) (authmw.Principal, error) {
	if claims.IsAdmin() {
		a, err := s.Accounts.AdminByID(ctx, claims.Subject)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return nil, fmt.Errorf("%w: admin not found", authmw.ErrRejected)
			}
			return nil, err
		}
		if !a.IsActive {
			return nil, fmt.Errorf("%w: admin inactive", authmw.ErrRejected)
		}
		return adminPrincipal(a), nil
	}

	c, err := s.Accounts.CustomerByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, fmt.Errorf("%w: user not found", authmw.ErrRejected)
		}
		return nil, err
	}
	if !c.IsActive {
		return nil, fmt.Errorf("%w: user inactive", authmw.ErrRejected)
	}
	return customerPrincipal(c), nil
}

// EnsureAdmin creates the administrator account when it does not exist yet.
// It reports whether an account was created.
func (s *AuthService) EnsureAdmin(ctx context.Context, name, email, password string) (bool, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return false, newErr(ErrValidation, "Admin email and password are required")
	}
	if _, err := s.Accounts.AdminByEmail(ctx, email); err == nil {
		return false, nil
	} else if !errors.Is(err, repo.ErrNotFound) {
		return false, fmt.Errorf("lookup admin: %w", err)
	}

	pwHash, err := s.Hasher.HashPassword(password)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}
	if name == "" {
		name = "Admin"
	}
	err = s.Accounts.CreateAdmin(ctx, &models.Admin{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: pwHash,
		Role:         AdminRoleDefault,
		IsActive:     true,
		CreatedAt:    s.Now.now(),
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return false, nil
		}
		return false, fmt.Errorf("create admin: %w", err)
	}
	logging.FromContext(ctx).Info("admin_created", "email", email)
	return true, nil
}
