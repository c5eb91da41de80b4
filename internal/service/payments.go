package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dheerghayush/naturals/internal/payment"
	"github.com/dheerghayush/naturals/internal/transport"
	"github.com/dheerghayush/naturals/pkg/logging"
)

const DefaultCurrency = "INR"

var ErrGatewayUnavailable = errors.New("payment gateway not configured")

type PaymentService struct {
	Gateway   payment.Gateway
	KeyID     string
	KeySecret string
}

// CreateOrder opens an auto-capturing order on the gateway for amount,
// given in major units.
func (s *PaymentService) CreateOrder(ctx context.Context, req transport.PaymentOrderRequest) (*transport.PaymentOrderResponse, error) {
	if req.Amount <= 0 {
		return nil, newErr(ErrValidation, "Amount must be greater than zero")
	}
	if s.Gateway == nil {
		return nil, ErrGatewayUnavailable
	}
	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = DefaultCurrency
	}

	minor := payment.ToMinorUnits(req.Amount)
	id, err := s.Gateway.CreateOrder(ctx, minor, currency, true)
	if err != nil {
		return nil, fmt.Errorf("create gateway order: %w", err)
	}
	logging.FromContext(ctx).Info("payment_order_created", "razorpay_order_id", id, "amount", minor)
	return &transport.PaymentOrderResponse{
		RazorpayOrderID: id,
		RazorpayKeyID:   s.KeyID,
		Amount:          minor,
		Currency:        currency,
	}, nil
}

func (s *PaymentService) Verify(ctx context.Context, req transport.VerifyPaymentRequest) (*transport.VerifyPaymentResponse, error) {
	l := logging.FromContext(ctx)
	if !payment.VerifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature, s.KeySecret) {
		l.Warn("payment_verify_failed", "razorpay_payment_id", req.RazorpayPaymentID)
		return nil, newErr(ErrValidation, "Payment signature verification failed")
	}
	l.Info("payment_verified", "razorpay_payment_id", req.RazorpayPaymentID)
	return &transport.VerifyPaymentResponse{
		Verified:          true,
		RazorpayOrderID:   req.RazorpayOrderID,
		RazorpayPaymentID: req.RazorpayPaymentID,
		Message:           "Payment signature verified successfully",
	}, nil
}

func (s *PaymentService) Key() transport.PaymentKeyResponse {
	return transport.PaymentKeyResponse{KeyID: s.KeyID}
}
