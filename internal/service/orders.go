package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dheerghayush/naturals/internal/events"
	"github.com/dheerghayush/naturals/internal/models"
	"github.com/dheerghayush/naturals/internal/payment"
	"github.com/dheerghayush/naturals/internal/repo"
	"github.com/dheerghayush/naturals/internal/transport"
	"github.com/dheerghayush/naturals/pkg/logging"
)

const (
	RefundWindowDays      = 7
	estimatedDeliveryDays = 5
	estimatedDeliveryFmt  = "January 02, 2006"
	updateAttempts        = 3

	CancelMessage      = "Order cancelled successfully"
	RefundMessage      = "Refund request submitted successfully. We will process it within 3-5 business days."
	ReplacementMessage = "Replacement request submitted successfully. We will contact you shortly."
)

type orderStore interface {
	OrderStore
	StockStore
}

// OrderService drives the order lifecycle: placement against catalog stock,
// customer cancellation and after-delivery requests, and administrative
// status changes.
type OrderService struct {
	Store         orderStore
	Events        events.Publisher
	PaymentSecret string
	Now           Clock
}

type lineDemand struct {
	productID string
	name      string
	qty       int
}

// demands folds the requested lines into one entry per product, keeping
// first-seen order.
func demands(items []transport.OrderItemRequest) ([]lineDemand, error) {
	out := make([]lineDemand, 0, len(items))
	idx := make(map[string]int, len(items))
	for _, it := range items {
		id := strings.TrimSpace(it.ID)
		if id == "" {
			return nil, newErr(ErrValidation, "Every item needs a product id")
		}
		if it.Quantity <= 0 {
			return nil, newErr(ErrValidation, "Quantity for %s must be at least 1", it.Name)
		}
		if it.Price < 0 {
			return nil, newErr(ErrValidation, "Price for %s must not be negative", it.Name)
		}
		if i, ok := idx[id]; ok {
			out[i].qty += it.Quantity
			continue
		}
		idx[id] = len(out)
		out = append(out, lineDemand{productID: id, name: it.Name, qty: it.Quantity})
	}
	return out, nil
}

// Create places an order. Every line is checked against live stock before
// anything is written; stock is then reserved per product with a
// conditional decrement, and reservations already taken are released if a
// later one loses a race.
func (s *OrderService) Create(ctx context.Context, userID string, req transport.CreateOrderRequest) (*models.Order, error) {
	l := logging.FromContext(ctx).With("svc", "order.create")

	if len(req.Items) == 0 {
		return nil, newErr(ErrValidation, "Order must contain at least one item")
	}
	if req.PaymentMethod != models.PaymentCOD && req.PaymentMethod != models.PaymentRazorpay {
		return nil, newErr(ErrValidation, "Invalid payment method")
	}
	want, err := demands(req.Items)
	if err != nil {
		return nil, err
	}

	paymentStatus := models.PaymentPending
	if req.PaymentMethod == models.PaymentRazorpay {
		if req.RazorpayOrderID != "" && req.RazorpaySignature != "" &&
			!payment.VerifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature, s.PaymentSecret) {
			l.Warn("order_payment_rejected", "razorpay_order_id", req.RazorpayOrderID)
			return nil, newErr(ErrValidation, "Payment signature verification failed")
		}
		if req.RazorpayPaymentID != "" {
			paymentStatus = models.PaymentPaid
		}
	}

	for _, d := range want {
		p, err := s.Store.ProductByID(ctx, d.productID, true)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return nil, newErr(ErrValidation, "Product %s not found", d.name)
			}
			return nil, fmt.Errorf("lookup product: %w", err)
		}
		if p.Stock < d.qty {
			return nil, newErr(ErrValidation, "Insufficient stock for %s. Available: %d", d.name, p.Stock)
		}
	}

	reserved := make([]lineDemand, 0, len(want))
	for _, d := range want {
		ok, err := s.Store.ReserveStock(ctx, d.productID, d.qty)
		if err != nil || !ok {
			s.release(ctx, reserved)
			if err != nil {
				return nil, fmt.Errorf("reserve stock: %w", err)
			}
			return nil, newErr(ErrValidation, "Insufficient stock for %s", d.name)
		}
		reserved = append(reserved, d)
	}

	now := s.Now.now()
	o := &models.Order{
		ID: uuid.NewString(),
		CustomerInfo: models.CustomerInfo{
			Name:    req.CustomerInfo.Name,
			Email:   normalizeEmail(req.CustomerInfo.Email),
			Phone:   req.CustomerInfo.Phone,
			Address: req.CustomerInfo.Address,
			City:    req.CustomerInfo.City,
			State:   req.CustomerInfo.State,
			Pincode: req.CustomerInfo.Pincode,
		},
		Items:             make([]models.OrderItem, 0, len(req.Items)),
		Subtotal:          req.Subtotal,
		ShippingFee:       req.ShippingFee,
		Total:             req.Total,
		PaymentMethod:     req.PaymentMethod,
		RazorpayPaymentID: req.RazorpayPaymentID,
		RazorpayOrderID:   req.RazorpayOrderID,
		RazorpaySignature: req.RazorpaySignature,
		OrderStatus:       models.StatusPending,
		PaymentStatus:     paymentStatus,
		TrackingEvents: []models.TrackingEvent{{
			Status:      models.StatusPending,
			Description: StatusDescription(models.StatusPending),
			Timestamp:   now,
		}},
		EstimatedDelivery: now.AddDate(0, 0, estimatedDeliveryDays).Format(estimatedDeliveryFmt),
		CreatedAt:         now,
	}
	if userID != "" {
		o.UserID = &userID
	}
	for _, it := range req.Items {
		o.Items = append(o.Items, models.OrderItem{
			ID:       strings.TrimSpace(it.ID),
			Name:     it.Name,
			Price:    it.Price,
			Quantity: it.Quantity,
			Weight:   it.Weight,
			Image:    it.Image,
		})
	}

	if err := s.Store.CreateOrder(ctx, o); err != nil {
		s.release(ctx, reserved)
		return nil, fmt.Errorf("create order: %w", err)
	}

	l.Info("order_created", "order_id", o.ID, "items", len(o.Items), "payment_status", o.PaymentStatus)
	s.emit(ctx, events.OrderCreated, o)
	return o, nil
}

func (s *OrderService) release(ctx context.Context, taken []lineDemand) {
	for _, d := range taken {
		if err := s.Store.ReleaseStock(ctx, d.productID, d.qty); err != nil {
			logging.FromContext(ctx).Error("stock_release_error", "product_id", d.productID, "qty", d.qty, "error", err)
		}
	}
}

func (s *OrderService) emit(ctx context.Context, kind string, o *models.Order) {
	ev := events.OrderEvent{
		Type:          kind,
		OrderID:       o.ID,
		OrderStatus:   o.OrderStatus,
		PaymentStatus: o.PaymentStatus,
		Total:         o.Total,
		OccurredAt:    s.Now.now(),
	}
	if o.UserID != nil {
		ev.UserID = *o.UserID
	}
	publish(ctx, s.Events, events.TopicOrders, o.ID, ev)
}

func notFoundOrder(err error) error {
	if errors.Is(err, repo.ErrNotFound) {
		return newErr(ErrNotFound, "Order not found")
	}
	return err
}

func (s *OrderService) Get(ctx context.Context, id string) (*models.Order, error) {
	o, err := s.Store.OrderByID(ctx, id)
	if err != nil {
		return nil, notFoundOrder(err)
	}
	return o, nil
}

func (s *OrderService) GetForUser(ctx context.Context, id, userID string) (*models.Order, error) {
	o, err := s.Store.OrderForUser(ctx, id, userID)
	if err != nil {
		return nil, notFoundOrder(err)
	}
	return o, nil
}

func (s *OrderService) ListForUser(ctx context.Context, userID string) ([]models.Order, error) {
	return s.Store.ListOrdersForUser(ctx, userID)
}

func (s *OrderService) List(ctx context.Context, status string, offset, limit int) (int64, []models.Order, error) {
	return s.Store.ListOrders(ctx, repo.OrderFilter{Status: status, Offset: offset, Limit: limit})
}

// update reloads the order, applies change and writes it back guarded by
// the order_status it was loaded with. A lost race is retried on a fresh
// copy; change decides again whether the transition is still allowed.
func (s *OrderService) update(ctx context.Context, load func() (*models.Order, error), change func(o *models.Order) error) (*models.Order, error) {
	for attempt := 0; attempt < updateAttempts; attempt++ {
		o, err := load()
		if err != nil {
			return nil, notFoundOrder(err)
		}
		expected := o.OrderStatus
		if err := change(o); err != nil {
			return nil, err
		}
		ok, err := s.Store.UpdateOrderIfStatus(ctx, o, expected)
		if err != nil {
			return nil, fmt.Errorf("update order: %w", err)
		}
		if ok {
			return o, nil
		}
		logging.FromContext(ctx).Warn("order_update_conflict", "order_id", o.ID, "attempt", attempt+1)
	}
	return nil, newErr(ErrConflict, "Order was modified concurrently. Please retry.")
}

func (s *OrderService) userOrder(ctx context.Context, id, userID string) func() (*models.Order, error) {
	return func() (*models.Order, error) { return s.Store.OrderForUser(ctx, id, userID) }
}

// Cancel cancels a customer's order and returns its stock. Stock is
// restored only by the call whose write moved the order to cancelled.
func (s *OrderService) Cancel(ctx context.Context, id, userID string) (string, error) {
	o, err := s.update(ctx, s.userOrder(ctx, id, userID), func(o *models.Order) error {
		if o.OrderStatus == models.StatusDelivered || o.OrderStatus == models.StatusCancelled {
			return newErr(ErrForbiddenTransition, "This order cannot be cancelled")
		}
		o.OrderStatus = models.StatusCancelled
		o.TrackingEvents = append(o.TrackingEvents, models.TrackingEvent{
			Status:      models.StatusCancelled,
			Description: "Order cancelled by customer",
			Timestamp:   s.Now.now(),
		})
		return nil
	})
	if err != nil {
		return "", err
	}

	for _, it := range o.Items {
		if err := s.Store.ReleaseStock(ctx, it.ID, it.Quantity); err != nil {
			logging.FromContext(ctx).Error("stock_release_error", "order_id", o.ID, "product_id", it.ID, "error", err)
		}
	}
	logging.FromContext(ctx).Info("order_cancelled", "order_id", o.ID, "user_id", userID)
	s.emit(ctx, events.OrderCancelled, o)
	return CancelMessage, nil
}

type afterDelivery struct {
	label     string
	status    string
	eventType string
	message   string
	requested func(o *models.Order) bool
	mark      func(o *models.Order, at time.Time)
}

var (
	refundRequest = afterDelivery{
		label:     "Refund",
		status:    models.StatusRefundRequested,
		eventType: events.RefundRequested,
		message:   RefundMessage,
		requested: func(o *models.Order) bool { return o.RefundStatus != "" },
		mark: func(o *models.Order, at time.Time) {
			o.RefundStatus = models.SubStatusRequested
			o.RefundRequestedAt = &at
		},
	}
	replacementRequest = afterDelivery{
		label:     "Replacement",
		status:    models.StatusReplacementRequested,
		eventType: events.ReplacementRequested,
		message:   ReplacementMessage,
		requested: func(o *models.Order) bool { return o.ReplacementStatus != "" },
		mark: func(o *models.Order, at time.Time) {
			o.ReplacementStatus = models.SubStatusRequested
			o.ReplacementRequestedAt = &at
		},
	}
)

func (s *OrderService) RequestRefund(ctx context.Context, id, userID string) (string, error) {
	return s.requestAfterDelivery(ctx, id, userID, refundRequest)
}

func (s *OrderService) RequestReplacement(ctx context.Context, id, userID string) (string, error) {
	return s.requestAfterDelivery(ctx, id, userID, replacementRequest)
}

// requestAfterDelivery files a refund or replacement request. The window
// counts whole days since the last delivered event and includes day 7.
func (s *OrderService) requestAfterDelivery(ctx context.Context, id, userID string, kind afterDelivery) (string, error) {
	o, err := s.update(ctx, s.userOrder(ctx, id, userID), func(o *models.Order) error {
		if o.OrderStatus != models.StatusDelivered {
			return newErr(ErrForbiddenTransition, "%s can only be requested for delivered orders", kind.label)
		}
		now := s.Now.now()
		days := int(now.Sub(o.DeliveredAt()) / (24 * time.Hour))
		if days > RefundWindowDays {
			return newErr(ErrForbiddenTransition, "%s request period has expired (7 days)", kind.label)
		}
		if kind.requested(o) {
			return newErr(ErrConflict, "%s has already been requested for this order", kind.label)
		}
		kind.mark(o, now)
		o.OrderStatus = kind.status
		return nil
	})
	if err != nil {
		return "", err
	}
	logging.FromContext(ctx).Info("after_delivery_requested", "order_id", o.ID, "kind", kind.status)
	s.emit(ctx, kind.eventType, o)
	return kind.message, nil
}

func (s *OrderService) Track(ctx context.Context, id, userID string) (*transport.TrackingResponse, error) {
	o, err := s.GetForUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	return &transport.TrackingResponse{
		OrderID:           o.ID,
		OrderStatus:       o.OrderStatus,
		PaymentStatus:     o.PaymentStatus,
		EstimatedDelivery: o.EstimatedDelivery,
		TrackingEvents:    TrackingSteps(o),
		CustomerInfo:      o.CustomerInfo,
		Items:             o.Items,
		Total:             o.Total,
	}, nil
}

var paymentStatuses = map[string]bool{
	models.PaymentPending: true,
	models.PaymentPaid:    true,
	models.PaymentFailed:  true,
}

// UpdateStatus is the administrative overwrite. Any order_status value is
// accepted; a tracking event is appended only when the status changes.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, req transport.UpdateOrderStatusRequest) (*models.Order, error) {
	if req.OrderStatus == nil && req.PaymentStatus == nil {
		return nil, newErr(ErrValidation, "No fields to update")
	}
	var newStatus string
	if req.OrderStatus != nil {
		newStatus = strings.TrimSpace(*req.OrderStatus)
		if newStatus == "" {
			return nil, newErr(ErrValidation, "Order status must not be empty")
		}
	}
	if req.PaymentStatus != nil && !paymentStatuses[*req.PaymentStatus] {
		return nil, newErr(ErrValidation, "Invalid payment status")
	}

	changed := false
	o, err := s.update(ctx, func() (*models.Order, error) { return s.Store.OrderByID(ctx, id) }, func(o *models.Order) error {
		changed = false
		if newStatus != "" && newStatus != o.OrderStatus {
			changed = true
			o.OrderStatus = newStatus
			o.TrackingEvents = append(o.TrackingEvents, models.TrackingEvent{
				Status:      newStatus,
				Description: StatusDescription(newStatus),
				Timestamp:   s.Now.now(),
			})
		}
		if req.PaymentStatus != nil {
			o.PaymentStatus = *req.PaymentStatus
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Info("order_status_updated", "order_id", o.ID, "order_status", o.OrderStatus, "payment_status", o.PaymentStatus)
	if changed {
		s.emit(ctx, events.OrderStatusUpdated, o)
	}
	return o, nil
}
