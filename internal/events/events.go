package events

import "time"

const (
	OrderCreated         = "order_created"
	OrderCancelled       = "order_cancelled"
	OrderStatusUpdated   = "order_status_updated"
	RefundRequested      = "refund_requested"
	ReplacementRequested = "replacement_requested"

	UserRegistered         = "user_registered"
	PasswordResetRequested = "password_reset_requested"
	PasswordResetCompleted = "password_reset_completed"

	ProductCreated = "product_created"
	ProductUpdated = "product_updated"
	ProductDeleted = "product_deleted"
)

type OrderEvent struct {
	Type          string    `json:"type"`
	OrderID       string    `json:"order_id"`
	UserID        string    `json:"user_id,omitempty"`
	OrderStatus   string    `json:"order_status"`
	PaymentStatus string    `json:"payment_status"`
	Total         float64   `json:"total"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type UserEvent struct {
	Type       string    `json:"type"`
	UserID     string    `json:"user_id"`
	Email      string    `json:"email"`
	OccurredAt time.Time `json:"occurred_at"`
}

type ProductEvent struct {
	Type       string    `json:"type"`
	ProductID  string    `json:"product_id"`
	Category   string    `json:"category,omitempty"`
	Stock      int       `json:"stock"`
	OccurredAt time.Time `json:"occurred_at"`
}
