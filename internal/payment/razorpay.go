package payment

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dheerghayush/naturals/pkg/apiclient"
)

// Gateway creates orders on the remote payment provider.
type Gateway interface {
	CreateOrder(ctx context.Context, amountMinor int64, currency string, autoCapture bool) (string, error)
}

type RazorpayClient struct {
	api *apiclient.Client
}

func NewRazorpayClient(baseURL, keyID, keySecret string) *RazorpayClient {
	return &RazorpayClient{
		api: apiclient.NewClient(baseURL, apiclient.WithBasicAuth(keyID, keySecret)),
	}
}

type createOrderRequest struct {
	Amount         int64  `json:"amount"`
	Currency       string `json:"currency"`
	PaymentCapture int    `json:"payment_capture"`
}

type createOrderResponse struct {
	ID     string `json:"id"`
	Amount int64  `json:"amount"`
	Status string `json:"status"`
}

func (c *RazorpayClient) CreateOrder(ctx context.Context, amountMinor int64, currency string, autoCapture bool) (string, error) {
	req := createOrderRequest{Amount: amountMinor, Currency: currency}
	if autoCapture {
		req.PaymentCapture = 1
	}

	var resp createOrderResponse
	if err := c.api.Do(ctx, http.MethodPost, "orders", req, &resp); err != nil {
		return "", fmt.Errorf("razorpay create order: %w", err)
	}
	if resp.ID == "" {
		return "", fmt.Errorf("razorpay create order: empty order id")
	}
	return resp.ID, nil
}
