package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dheerghayush/naturals/internal/models"
	"github.com/dheerghayush/naturals/internal/service"
	"github.com/dheerghayush/naturals/internal/transport"
	"github.com/dheerghayush/naturals/internal/util"
	"github.com/dheerghayush/naturals/pkg/logging"
)

type OrderHandler struct {
	Orders *service.OrderService
}

// CreateOrder places an order for a guest or, when a bearer token was
// presented, for the authenticated customer.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	var req transport.CreateOrderRequest
	if err := bind(c, "order.create", &req); err != nil {
		return err
	}

	var userID string
	if p := principal(c); p != nil {
		userID = p.ID
	}
	o, err := h.Orders.Create(ctx, userID, req)
	if err != nil {
		return fail(c, "order.create", "create_order_error", err, "Failed to create order")
	}
	logging.FromContext(ctx).With("handler", "order.create").Info("create_order_success", "order_id", o.ID, "total", o.Total)
	return c.JSON(http.StatusOK, o)
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	o, err := h.Orders.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(c, "order.get", "get_order_error", err, "Failed to fetch order")
	}
	return c.JSON(http.StatusOK, o)
}

func (h *OrderHandler) UserOrders(c echo.Context) error {
	p, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	list, err := h.Orders.ListForUser(c.Request().Context(), p.ID)
	if err != nil {
		return fail(c, "order.user_list", "list_user_orders_error", err, "")
	}
	if list == nil {
		list = []models.Order{}
	}
	return c.JSON(http.StatusOK, list)
}

func (h *OrderHandler) UserOrder(c echo.Context) error {
	p, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	o, err := h.Orders.GetForUser(c.Request().Context(), c.Param("id"), p.ID)
	if err != nil {
		return fail(c, "order.user_get", "get_user_order_error", err, "")
	}
	return c.JSON(http.StatusOK, o)
}

// act runs a customer-initiated state change and replies with its message.
func (h *OrderHandler) act(c echo.Context, handler, event string, do func(ctx context.Context, id, userID string) (string, error)) error {
	p, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	msg, err := do(c.Request().Context(), c.Param("id"), p.ID)
	if err != nil {
		return fail(c, handler, event, err, "")
	}
	return message(c, msg)
}

func (h *OrderHandler) Cancel(c echo.Context) error {
	return h.act(c, "order.cancel", "cancel_order_error", h.Orders.Cancel)
}

func (h *OrderHandler) Refund(c echo.Context) error {
	return h.act(c, "order.refund", "refund_request_error", h.Orders.RequestRefund)
}

func (h *OrderHandler) Replace(c echo.Context) error {
	return h.act(c, "order.replace", "replacement_request_error", h.Orders.RequestReplacement)
}

func (h *OrderHandler) Track(c echo.Context) error {
	p, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	resp, err := h.Orders.Track(c.Request().Context(), c.Param("id"), p.ID)
	if err != nil {
		return fail(c, "order.track", "track_order_error", err, "")
	}
	return c.JSON(http.StatusOK, resp)
}

// AdminOrders lists all orders, newest first, optionally filtered by
// ?order_status= (or ?status=) and windowed by ?skip= and ?limit=.
func (h *OrderHandler) AdminOrders(c echo.Context) error {
	skip, limit := util.Window(
		util.ParseIntDefault(c.QueryParam("skip"), 0),
		util.ParseIntDefault(c.QueryParam("limit"), util.DefaultLimit),
		util.DefaultLimit,
	)

	status := c.QueryParam("order_status")
	if status == "" {
		status = c.QueryParam("status")
	}

	total, list, err := h.Orders.List(c.Request().Context(), status, skip, limit)
	if err != nil {
		return fail(c, "order.admin_list", "list_orders_error", err, "")
	}
	if list == nil {
		list = []models.Order{}
	}
	return c.JSON(http.StatusOK, transport.OrderPage{Orders: list, Total: total, Limit: limit, Skip: skip})
}

func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	ctx := c.Request().Context()
	var req transport.UpdateOrderStatusRequest
	if err := bind(c, "order.update_status", &req); err != nil {
		return err
	}

	o, err := h.Orders.UpdateStatus(ctx, c.Param("id"), req)
	if err != nil {
		return fail(c, "order.update_status", "update_order_status_error", err, "")
	}
	logging.FromContext(ctx).With("handler", "order.update_status").Info("update_order_status_success",
		"order_id", o.ID, "order_status", o.OrderStatus, "payment_status", o.PaymentStatus)
	return c.JSON(http.StatusOK, o)
}
