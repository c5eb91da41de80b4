package authmw

import (
	"context"
	"errors"
	"net/http"
	"strings"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/dheerghayush/naturals/pkg/logging"
	"github.com/dheerghayush/naturals/pkg/tokens"
)

const (
	claimsKey    = "claims"
	principalKey = "principal"
)

// ErrRejected marks resolver failures caused by the account itself
// (missing or inactive) rather than by the store.
var ErrRejected = errors.New("principal rejected")

// Principal is whatever the application resolves a token subject into.
type Principal interface {
	PrincipalID() string
	IsAdmin() bool
}

// ResolverFunc loads the account behind decoded claims.
type ResolverFunc func(ctx context.Context, claims *tokens.AccessClaims) (Principal, error)

type Middleware struct {
	Secret  []byte
	Resolve ResolverFunc
}

func New(secret []byte, resolve ResolverFunc) *Middleware {
	return &Middleware{Secret: secret, Resolve: resolve}
}

func (m *Middleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return m.bearer()(m.resolve(next))
}

func (m *Middleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return m.RequireAuth(func(c echo.Context) error {
		p := PrincipalFrom(c)
		if p == nil || !p.IsAdmin() {
			logging.FromContext(c.Request().Context()).Warn("auth_error", "status", 403, "reason", "admin access required")
			return echo.NewHTTPError(http.StatusForbidden, "admin access required")
		}
		return next(c)
	})
}

// OptionalAuth resolves a principal when an Authorization header is present
// and lets anonymous requests through untouched.
func (m *Middleware) OptionalAuth(next echo.HandlerFunc) echo.HandlerFunc {
	authed := m.RequireAuth(next)
	return func(c echo.Context) error {
		if strings.TrimSpace(c.Request().Header.Get(echo.HeaderAuthorization)) == "" {
			return next(c)
		}
		return authed(c)
	}
}

func (m *Middleware) bearer() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  claimsKey,
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, auth string) (any, error) {
			return tokens.AccessClaimsFromToken(auth, m.Secret)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			l := logging.FromContext(c.Request().Context())
			switch {
			case errors.Is(err, tokens.ErrExpiredToken):
				l.Warn("auth_error", "status", 401, "reason", "token expired")
				return echo.NewHTTPError(http.StatusUnauthorized, "Token has expired")
			case errors.Is(err, tokens.ErrInvalidToken):
				l.Warn("auth_error", "status", 401, "reason", "invalid token", "error", err)
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			default:
				l.Warn("auth_error", "status", 401, "reason", "missing token", "error", err)
				return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
			}
		},
	})
}

func (m *Middleware) resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get(claimsKey).(*tokens.AccessClaims)
		if !ok || claims == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
		}
		p, err := m.Resolve(c.Request().Context(), claims)
		if err != nil {
			l := logging.FromContext(c.Request().Context())
			if errors.Is(err, ErrRejected) {
				l.Warn("auth_error", "status", 401, "reason", "principal rejected", "error", err)
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or inactive account")
			}
			l.Error("auth_error", "status", 500, "reason", "cannot resolve principal", "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "cannot resolve account")
		}
		setUserContext(c, claims, p)
		return next(c)
	}
}

func setUserContext(c echo.Context, claims *tokens.AccessClaims, p Principal) {
	c.Set(principalKey, p)
	c.Set("user_id", p.PrincipalID())
	c.Set("role", claims.Role)
	ctx := logging.IntoContext(c.Request().Context(), logging.FromContext(c.Request().Context()).With("principal_id", p.PrincipalID()))
	c.SetRequest(c.Request().WithContext(ctx))
}

// PrincipalFrom returns the resolved principal, or nil for anonymous requests.
func PrincipalFrom(c echo.Context) Principal {
	p, _ := c.Get(principalKey).(Principal)
	return p
}
