package authmw

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dheerghayush/naturals/pkg/tokens"
)

var testSecret = []byte("test-secret")

type testPrincipal struct {
	id    string
	admin bool
}

func (p testPrincipal) PrincipalID() string { return p.id }
func (p testPrincipal) IsAdmin() bool       { return p.admin }

func resolver(_ context.Context, claims *tokens.AccessClaims) (Principal, error) {
	switch claims.Subject {
	case "inactive":
		return nil, fmt.Errorf("%w: account disabled", ErrRejected)
	case "broken":
		return nil, fmt.Errorf("store down")
	}
	return testPrincipal{id: claims.Subject, admin: claims.IsAdmin()}, nil
}

func sign(t *testing.T, sub, typ string, exp time.Time) string {
	t.Helper()
	tok, err := tokens.SignAccessToken(sub, tokens.AccessClaims{Type: typ}, testSecret, exp.Add(-time.Hour), exp)
	require.NoError(t, err)
	return tok
}

func newServer() *echo.Echo {
	m := New(testSecret, resolver)
	e := echo.New()
	who := func(c echo.Context) error {
		p := PrincipalFrom(c)
		if p == nil {
			return c.String(http.StatusOK, "anonymous")
		}
		return c.String(http.StatusOK, p.PrincipalID())
	}
	e.GET("/me", who, m.RequireAuth)
	e.GET("/admin", who, m.RequireAdmin)
	e.GET("/maybe", who, m.OptionalAuth)
	return e
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	future := time.Now().Add(time.Hour)
	tests := []struct {
		name     string
		path     string
		token    string
		wantCode int
		wantBody string
	}{
		{name: "missing token", path: "/me", wantCode: http.StatusUnauthorized},
		{name: "user token", path: "/me", token: sign(t, "u1", tokens.TypeUser, future), wantCode: http.StatusOK, wantBody: "u1"},
		{name: "expired token", path: "/me", token: sign(t, "u1", tokens.TypeUser, time.Now().Add(-time.Minute)), wantCode: http.StatusUnauthorized},
		{name: "garbage token", path: "/me", token: "abc.def.ghi", wantCode: http.StatusUnauthorized},
		{name: "inactive account", path: "/me", token: sign(t, "inactive", tokens.TypeUser, future), wantCode: http.StatusUnauthorized},
		{name: "store failure", path: "/me", token: sign(t, "broken", tokens.TypeUser, future), wantCode: http.StatusInternalServerError},
		{name: "user on admin route", path: "/admin", token: sign(t, "u1", tokens.TypeUser, future), wantCode: http.StatusForbidden},
		{name: "admin on admin route", path: "/admin", token: sign(t, "a1", tokens.TypeAdmin, future), wantCode: http.StatusOK, wantBody: "a1"},
		{name: "optional anonymous", path: "/maybe", wantCode: http.StatusOK, wantBody: "anonymous"},
		{name: "optional with token", path: "/maybe", token: sign(t, "u2", tokens.TypeUser, future), wantCode: http.StatusOK, wantBody: "u2"},
		{name: "optional with bad token", path: "/maybe", token: "nope", wantCode: http.StatusUnauthorized},
	}

	e := newServer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.token != "" {
				req.Header.Set(echo.HeaderAuthorization, "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}
