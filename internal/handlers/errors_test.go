package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dheerghayush/naturals/internal/service"
	"github.com/dheerghayush/naturals/internal/transport"
)

func TestFail_MapsKinds(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"validation", &service.Error{Kind: service.ErrValidation, Msg: "bad"}, http.StatusBadRequest, "bad"},
		{"conflict", &service.Error{Kind: service.ErrConflict, Msg: "dup"}, http.StatusBadRequest, "dup"},
		{"transition", &service.Error{Kind: service.ErrForbiddenTransition, Msg: "no"}, http.StatusBadRequest, "no"},
		{"not found", &service.Error{Kind: service.ErrNotFound, Msg: "gone"}, http.StatusNotFound, "gone"},
		{"unauthorized", &service.Error{Kind: service.ErrUnauthorized, Msg: "who"}, http.StatusUnauthorized, "who"},
		{"wrapped", fmt.Errorf("outer: %w", &service.Error{Kind: service.ErrNotFound, Msg: "gone"}), http.StatusNotFound, "gone"},
		{"internal", errors.New("connection refused"), http.StatusInternalServerError, "Failed to do it"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := jsonContext(t, http.MethodGet, "/", nil)
			err := fail(c, "test", "test_error", tt.err, "Failed to do it")

			var he *echo.HTTPError
			require.ErrorAs(t, err, &he)
			assert.Equal(t, tt.code, he.Code)
			assert.Equal(t, tt.msg, he.Message)
		})
	}
}

func TestErrorHandler_RendersDetail(t *testing.T) {
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	ErrorHandler(echo.NewHTTPError(http.StatusNotFound, "Order not found"), e.NewContext(req, rec))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail":"Order not found"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	ErrorHandler(errors.New("db exploded"), e.NewContext(req, rec))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"detail":"Internal server error"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	ErrorHandler(echo.ErrMethodNotAllowed, e.NewContext(req, rec))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t, `{"detail":"Method Not Allowed"}`, rec.Body.String())
}

func TestValidator_Messages(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&transport.CreateOrderRequest{
		CustomerInfo:  transport.CustomerInfoRequest{Name: "A", Email: "a@b.in", Phone: "1", Address: "x", City: "y", State: "z", Pincode: "1"},
		Items:         []transport.OrderItemRequest{{ID: "p1", Name: "Dal", Quantity: 0}},
		PaymentMethod: "COD",
	})
	require.Error(t, err)
	assert.Equal(t, "items[0].quantity must be greater than 0", describe(err))

	err = v.Validate(&transport.CreateOrderRequest{
		CustomerInfo:  transport.CustomerInfoRequest{Name: "A", Email: "a@b.in", Phone: "1", Address: "x", City: "y", State: "z", Pincode: "1"},
		Items:         []transport.OrderItemRequest{{ID: "p1", Name: "Dal", Quantity: 1}},
		PaymentMethod: "CARD",
	})
	require.Error(t, err)
	assert.Equal(t, "payment_method must be one of: COD RAZORPAY", describe(err))

	err = v.Validate(&transport.LoginRequest{Email: "a@b.in"})
	require.Error(t, err)
	assert.Equal(t, "password is required", describe(err))

	assert.NoError(t, v.Validate(&transport.LoginRequest{Email: "a@b.in", Password: "x"}))
	assert.Equal(t, "Invalid request body", describe(errors.New("other")))
}
