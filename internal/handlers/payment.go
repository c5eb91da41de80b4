package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dheerghayush/naturals/internal/service"
	"github.com/dheerghayush/naturals/internal/transport"
	"github.com/dheerghayush/naturals/pkg/logging"
)

type PaymentHandler struct {
	Payments *service.PaymentService
}

func (h *PaymentHandler) CreateOrder(c echo.Context) error {
	var req transport.PaymentOrderRequest
	if err := bind(c, "payment.create_order", &req); err != nil {
		return err
	}

	resp, err := h.Payments.CreateOrder(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrGatewayUnavailable) {
			logging.FromContext(c.Request().Context()).With("handler", "payment.create_order").
				Error("create_payment_order_error", "status", 503, "reason", "gateway not configured")
			return echo.NewHTTPError(http.StatusServiceUnavailable, "Online payments are not available")
		}
		return fail(c, "payment.create_order", "create_payment_order_error", err, "Failed to create payment order")
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *PaymentHandler) Verify(c echo.Context) error {
	var req transport.VerifyPaymentRequest
	if err := bind(c, "payment.verify", &req); err != nil {
		return err
	}

	resp, err := h.Payments.Verify(c.Request().Context(), req)
	if err != nil {
		return fail(c, "payment.verify", "verify_payment_error", err, "Failed to verify payment")
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *PaymentHandler) Key(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Payments.Key())
}
