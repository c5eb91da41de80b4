package models

import "time"

const (
	PaymentCOD      = "COD"
	PaymentRazorpay = "RAZORPAY"
)

const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
	PaymentFailed  = "failed"
)

const (
	StatusPending                   = "pending"
	StatusConfirmed                 = "confirmed"
	StatusProcessing                = "processing"
	StatusShipped                   = "shipped"
	StatusOutForDelivery            = "out_for_delivery"
	StatusDelivered                 = "delivered"
	StatusCancelled                 = "cancelled"
	StatusRefundRequested           = "refund_requested"
	StatusRefundApproved            = "refund_approved"
	StatusRefundRejected            = "refund_rejected"
	StatusRefundProcessing          = "refund_processing"
	StatusRefundCompleted           = "refund_completed"
	StatusReplacementRequested      = "replacement_requested"
	StatusReplacementAccepted       = "replacement_accepted"
	StatusReplacementRejected       = "replacement_rejected"
	StatusReplacementProcessing     = "replacement_processing"
	StatusReplacementShipped        = "replacement_shipped"
	StatusReplacementOutForDelivery = "replacement_out_for_delivery"
	StatusReplacementDelivered      = "replacement_delivered"
)

// SubStatusRequested is the value recorded in RefundStatus / ReplacementStatus
// when the customer files a request.
const SubStatusRequested = "requested"

type OrderItem struct {
	ID       string  `bson:"id"       json:"id"`
	Name     string  `bson:"name"     json:"name"`
	Price    float64 `bson:"price"    json:"price"`
	Quantity int     `bson:"quantity" json:"quantity"`
	Weight   string  `bson:"weight"   json:"weight"`
	Image    string  `bson:"image"    json:"image"`
}

type CustomerInfo struct {
	Name    string `bson:"name"    json:"name"`
	Email   string `bson:"email"   json:"email"`
	Phone   string `bson:"phone"   json:"phone"`
	Address string `bson:"address" json:"address"`
	City    string `bson:"city"    json:"city"`
	State   string `bson:"state"   json:"state"`
	Pincode string `bson:"pincode" json:"pincode"`
}

type TrackingEvent struct {
	Status      string    `bson:"status"             json:"status"`
	Description string    `bson:"description"        json:"description"`
	Timestamp   time.Time `bson:"timestamp"          json:"timestamp"`
	Location    string    `bson:"location,omitempty" json:"location,omitempty"`
}

type Order struct {
	ID           string       `gorm:"primaryKey;size:36"         bson:"order_id"      json:"order_id"`
	UserID       *string      `gorm:"index;size:36"              bson:"user_id"       json:"user_id"`
	CustomerInfo CustomerInfo `gorm:"serializer:json;type:text"  bson:"customer_info" json:"customer_info"`
	Items        []OrderItem  `gorm:"serializer:json;type:text"  bson:"items"         json:"items"`
	Subtotal     float64      `                                  bson:"subtotal"      json:"subtotal"`
	ShippingFee  float64      `                                  bson:"shipping_fee"  json:"shipping_fee"`
	Total        float64      `                                  bson:"total"         json:"total"`

	PaymentMethod     string `gorm:"not null" bson:"payment_method"                json:"payment_method"`
	RazorpayPaymentID string `                bson:"razorpay_payment_id,omitempty" json:"razorpay_payment_id,omitempty"`
	RazorpayOrderID   string `                bson:"razorpay_order_id,omitempty"   json:"razorpay_order_id,omitempty"`
	RazorpaySignature string `                bson:"razorpay_signature,omitempty"  json:"razorpay_signature,omitempty"`

	OrderStatus       string          `gorm:"index;not null"            bson:"order_status"       json:"order_status"`
	PaymentStatus     string          `gorm:"index;not null"            bson:"payment_status"     json:"payment_status"`
	TrackingEvents    []TrackingEvent `gorm:"serializer:json;type:text" bson:"tracking_events"    json:"tracking_events"`
	EstimatedDelivery string          `                                 bson:"estimated_delivery" json:"estimated_delivery,omitempty"`

	RefundStatus           string     `bson:"refund_status,omitempty"            json:"refund_status,omitempty"`
	RefundRequestedAt      *time.Time `bson:"refund_requested_at,omitempty"      json:"refund_requested_at,omitempty"`
	ReplacementStatus      string     `bson:"replacement_status,omitempty"       json:"replacement_status,omitempty"`
	ReplacementRequestedAt *time.Time `bson:"replacement_requested_at,omitempty" json:"replacement_requested_at,omitempty"`

	CreatedAt time.Time `gorm:"index" bson:"created_at" json:"created_at"`
}

func (Order) TableName() string { return "orders" }

// DeliveredAt returns the timestamp of the most recent delivered tracking
// event, or CreatedAt when none was recorded.
func (o *Order) DeliveredAt() time.Time {
	for i := len(o.TrackingEvents) - 1; i >= 0; i-- {
		if o.TrackingEvents[i].Status == StatusDelivered {
			return o.TrackingEvents[i].Timestamp
		}
	}
	return o.CreatedAt
}

func (o *Order) HasItem(productID string) bool {
	for _, it := range o.Items {
		if it.ID == productID {
			return true
		}
	}
	return false
}

type Review struct {
	ID                 string    `gorm:"primaryKey;size:36"                       bson:"id"                   json:"id"`
	ProductID          string    `gorm:"index;uniqueIndex:idx_review_once;size:36" bson:"product_id"           json:"product_id"`
	UserID             string    `gorm:"index;uniqueIndex:idx_review_once;size:36" bson:"user_id"              json:"user_id"`
	OrderID            string    `gorm:"uniqueIndex:idx_review_once;size:36"      bson:"order_id"             json:"order_id"`
	UserName           string    `                                                bson:"user_name"            json:"user_name"`
	Rating             int       `gorm:"not null;check:rating BETWEEN 1 AND 5"    bson:"rating"               json:"rating"`
	ReviewText         string    `                                                bson:"review_text"          json:"review_text"`
	IsVerifiedPurchase bool      `gorm:"not null"                                 bson:"is_verified_purchase" json:"is_verified_purchase"`
	CreatedAt          time.Time `gorm:"index"                                    bson:"created_at"           json:"created_at"`
}

func (Review) TableName() string { return "reviews" }

// All lists every persisted model, in migration order.
func All() []any {
	return []any{
		&Customer{}, &Admin{}, &PasswordResetToken{}, &Address{},
		&Category{}, &Product{}, &Banner{},
		&Order{}, &Review{},
	}
}
