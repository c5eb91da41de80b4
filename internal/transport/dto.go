package transport

import (
	"time"

	"github.com/dheerghayush/naturals/internal/models"
)

type SignupRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Phone    string `json:"phone"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type Profile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	Role  string `json:"role,omitempty"`
	Type  string `json:"type"`
}

type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	User        Profile   `json:"user"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type VerifyResetTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

type VerifyResetTokenResponse struct {
	Valid bool   `json:"valid"`
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token"        validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type AddressRequest struct {
	Name      string `json:"name"       validate:"required"`
	Email     string `json:"email"      validate:"required,email"`
	Phone     string `json:"phone"      validate:"required"`
	Address   string `json:"address"    validate:"required"`
	City      string `json:"city"       validate:"required"`
	State     string `json:"state"      validate:"required"`
	Pincode   string `json:"pincode"    validate:"required"`
	IsPrimary bool   `json:"is_primary"`
}

type PatchAddressRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"   validate:"omitempty,email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	City    *string `json:"city"`
	State   *string `json:"state"`
	Pincode *string `json:"pincode"`
}

type CategoryRequest struct {
	Name      string `json:"name"       validate:"required"`
	Slug      string `json:"slug"       validate:"required"`
	Image     string `json:"image"`
	SortOrder int    `json:"sort_order"`
}

type PatchCategoryRequest struct {
	Name      *string `json:"name"`
	Slug      *string `json:"slug"`
	Image     *string `json:"image"`
	SortOrder *int    `json:"sort_order"`
	IsActive  *bool   `json:"is_active"`
}

type ProductRequest struct {
	Name          string  `json:"name"           validate:"required"`
	Category      string  `json:"category"       validate:"required"`
	Weight        string  `json:"weight"`
	Price         float64 `json:"price"          validate:"gte=0"`
	OriginalPrice float64 `json:"original_price" validate:"gte=0"`
	Image         string  `json:"image"`
	IsBestseller  bool    `json:"is_bestseller"`
	Description   string  `json:"description"`
	Stock         *int    `json:"stock"          validate:"omitempty,gte=0"`
}

type PatchProductRequest struct {
	Name          *string  `json:"name"`
	Category      *string  `json:"category"`
	Weight        *string  `json:"weight"`
	Price         *float64 `json:"price"          validate:"omitempty,gte=0"`
	OriginalPrice *float64 `json:"original_price" validate:"omitempty,gte=0"`
	Image         *string  `json:"image"`
	IsBestseller  *bool    `json:"is_bestseller"`
	Description   *string  `json:"description"`
	Stock         *int     `json:"stock"          validate:"omitempty,gte=0"`
	IsActive      *bool    `json:"is_active"`
}

type SearchResponse struct {
	Query    string           `json:"query"`
	Total    int64            `json:"total"`
	Products []models.Product `json:"products"`
}

type BannerRequest struct {
	Title       string `json:"title"       validate:"required"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	BgColor     string `json:"bg_color"`
	Image       string `json:"image"`
	ButtonText  string `json:"button_text"`
	ButtonLink  string `json:"button_link"`
	Order       int    `json:"order"`
}

type PatchBannerRequest struct {
	Title       *string `json:"title"`
	Subtitle    *string `json:"subtitle"`
	Description *string `json:"description"`
	BgColor     *string `json:"bg_color"`
	Image       *string `json:"image"`
	ButtonText  *string `json:"button_text"`
	ButtonLink  *string `json:"button_link"`
	Order       *int    `json:"order"`
	IsActive    *bool   `json:"is_active"`
}

type OrderItemRequest struct {
	ID       string  `json:"id"       validate:"required"`
	Name     string  `json:"name"     validate:"required"`
	Price    float64 `json:"price"    validate:"gte=0"`
	Quantity int     `json:"quantity" validate:"gt=0"`
	Weight   string  `json:"weight"`
	Image    string  `json:"image"`
}

type CustomerInfoRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Phone   string `json:"phone"   validate:"required"`
	Address string `json:"address" validate:"required"`
	City    string `json:"city"    validate:"required"`
	State   string `json:"state"   validate:"required"`
	Pincode string `json:"pincode" validate:"required"`
}

type CreateOrderRequest struct {
	CustomerInfo      CustomerInfoRequest `json:"customer_info"`
	Items             []OrderItemRequest  `json:"items"               validate:"required,min=1,dive"`
	Subtotal          float64             `json:"subtotal"            validate:"gte=0"`
	ShippingFee       float64             `json:"shipping_fee"        validate:"gte=0"`
	Total             float64             `json:"total"               validate:"gte=0"`
	PaymentMethod     string              `json:"payment_method"      validate:"required,oneof=COD RAZORPAY"`
	RazorpayPaymentID string              `json:"razorpay_payment_id"`
	RazorpayOrderID   string              `json:"razorpay_order_id"`
	RazorpaySignature string              `json:"razorpay_signature"`
}

type UpdateOrderStatusRequest struct {
	OrderStatus   *string `json:"order_status"`
	PaymentStatus *string `json:"payment_status" validate:"omitempty,oneof=pending paid failed"`
}

type OrderPage struct {
	Orders []models.Order `json:"orders"`
	Total  int64          `json:"total"`
	Limit  int            `json:"limit"`
	Skip   int            `json:"skip"`
}

// TrackingStep is a tracking event as shown to the customer. Synthesized
// stages carry no timestamp.
type TrackingStep struct {
	Status      string     `json:"status"`
	Description string     `json:"description"`
	Timestamp   *time.Time `json:"timestamp"`
	Location    string     `json:"location,omitempty"`
	Completed   bool       `json:"completed"`
}

type TrackingResponse struct {
	OrderID           string              `json:"order_id"`
	OrderStatus       string              `json:"order_status"`
	PaymentStatus     string              `json:"payment_status"`
	EstimatedDelivery string              `json:"estimated_delivery,omitempty"`
	TrackingEvents    []TrackingStep      `json:"tracking_events"`
	CustomerInfo      models.CustomerInfo `json:"customer_info"`
	Items             []models.OrderItem  `json:"items"`
	Total             float64             `json:"total"`
}

type PaymentOrderRequest struct {
	Amount   float64 `json:"amount"   validate:"gt=0"`
	Currency string  `json:"currency"`
}

type PaymentOrderResponse struct {
	RazorpayOrderID string `json:"razorpay_order_id"`
	RazorpayKeyID   string `json:"razorpay_key_id"`
	Amount          int64  `json:"amount"`
	Currency        string `json:"currency"`
}

type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"   validate:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" validate:"required"`
	RazorpaySignature string `json:"razorpay_signature"  validate:"required"`
}

type VerifyPaymentResponse struct {
	Verified          bool   `json:"verified"`
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	Message           string `json:"message"`
}

type PaymentKeyResponse struct {
	KeyID string `json:"key_id"`
}

type CreateReviewRequest struct {
	ProductID  string `json:"product_id"  validate:"required"`
	OrderID    string `json:"order_id"    validate:"required"`
	Rating     int    `json:"rating"`
	ReviewText string `json:"review_text"`
}

type ReviewList struct {
	Reviews []models.Review `json:"reviews"`
	Total   int64           `json:"total"`
}

type ProductRating struct {
	ProductID          string         `json:"product_id"`
	AverageRating      float64        `json:"average_rating"`
	TotalReviews       int            `json:"total_reviews"`
	RatingDistribution map[string]int `json:"rating_distribution"`
}

// ReviewableProduct is an order line plus whether the customer already
// reviewed it for that order.
type ReviewableProduct struct {
	models.OrderItem
	Reviewed bool `json:"reviewed"`
}

type ReviewableProducts struct {
	Products []ReviewableProduct `json:"products"`
	Message  string              `json:"message,omitempty"`
}

type DashboardStats struct {
	TotalOrders     int64   `json:"total_orders"`
	TotalRevenue    float64 `json:"total_revenue"`
	PendingOrders   int64   `json:"pending_orders"`
	DeliveredOrders int64   `json:"delivered_orders"`
	TotalProducts   int64   `json:"total_products"`
	TotalCategories int64   `json:"total_categories"`
}

type SeedResult struct {
	Message    string `json:"message"`
	Categories int    `json:"categories_count"`
	Products   int    `json:"products_count"`
	Banners    int    `json:"banners_count"`
}
