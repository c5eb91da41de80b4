package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dheerghayush/naturals/internal/handlers"
	authmw "github.com/dheerghayush/naturals/pkg/middleware/auth"
	"github.com/dheerghayush/naturals/pkg/logging"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Deps struct {
	Store          Pinger
	Auth           *authmw.Middleware
	AuthHandler    *handlers.AuthHandler
	AddressHandler *handlers.AddressHandler
	ProductHandler *handlers.ProductHandler
	SearchHandler  *handlers.SearchHandler
	BannerHandler  *handlers.BannerHandler
	OrderHandler   *handlers.OrderHandler
	PaymentHandler *handlers.PaymentHandler
	ReviewHandler  *handlers.ReviewHandler
	AdminHandler   *handlers.AdminHandler
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()
		if err := d.Store.Ping(ctx); err != nil {
			logging.FromContext(ctx).Error("readiness_error", "status", 503, "error", err)
			return c.NoContent(http.StatusServiceUnavailable)
		}
		return c.NoContent(http.StatusOK)
	})

	api := e.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/signup", d.AuthHandler.Signup)
	auth.POST("/login", d.AuthHandler.Login)
	auth.GET("/me", d.AuthHandler.Me, d.Auth.RequireAuth)
	auth.POST("/forgot-password", d.AuthHandler.ForgotPassword)
	auth.POST("/verify-reset-token", d.AuthHandler.VerifyResetToken)
	auth.POST("/reset-password", d.AuthHandler.ResetPassword)

	user := api.Group("/user", d.Auth.RequireAuth)

	user.GET("/addresses", d.AddressHandler.List)
	user.POST("/addresses", d.AddressHandler.Create)
	user.PUT("/addresses/:id", d.AddressHandler.Update)
	user.DELETE("/addresses/:id", d.AddressHandler.Delete)
	user.PUT("/addresses/:id/primary", d.AddressHandler.SetPrimary)

	user.GET("/orders", d.OrderHandler.UserOrders)
	user.GET("/orders/:id", d.OrderHandler.UserOrder)
	user.POST("/orders/:id/cancel", d.OrderHandler.Cancel)
	user.POST("/orders/:id/refund", d.OrderHandler.Refund)
	user.POST("/orders/:id/replace", d.OrderHandler.Replace)
	user.GET("/orders/:id/track", d.OrderHandler.Track)
	user.GET("/orders/:id/reviewable-products", d.ReviewHandler.Reviewable)
	user.GET("/reviews", d.ReviewHandler.UserReviews)

	api.POST("/reviews", d.ReviewHandler.Create, d.Auth.RequireAuth)

	api.GET("/categories", d.ProductHandler.GetCategories)
	api.GET("/categories/:slug", d.ProductHandler.GetCategory)

	products := api.Group("/products")

	products.GET("", d.ProductHandler.GetProducts)
	products.GET("/search", d.SearchHandler.Search)
	products.GET("/:id", d.ProductHandler.GetProduct)
	products.GET("/:id/reviews", d.ReviewHandler.ProductReviews)
	products.GET("/:id/rating", d.ReviewHandler.ProductRating)

	api.POST("/orders", d.OrderHandler.CreateOrder, d.Auth.OptionalAuth)
	api.GET("/orders/:id", d.OrderHandler.GetOrder)

	rzp := api.Group("/razorpay")
	rzp.POST("/create-order", d.PaymentHandler.CreateOrder)
	rzp.POST("/verify-payment", d.PaymentHandler.Verify)
	rzp.GET("/key", d.PaymentHandler.Key)

	api.GET("/banners", d.BannerHandler.GetBanners)

	api.POST("/admin/login", d.AuthHandler.AdminLogin)

	admin := api.Group("/admin", d.Auth.RequireAdmin)

	admin.GET("/me", d.AuthHandler.Me)
	admin.GET("/dashboard", d.AdminHandler.Stats)
	admin.POST("/seed-data", d.AdminHandler.SeedData)

	admin.GET("/categories", d.ProductHandler.AdminGetCategories)
	admin.POST("/categories", d.ProductHandler.CreateCategory)
	admin.PUT("/categories/:id", d.ProductHandler.UpdateCategory)
	admin.DELETE("/categories/:id", d.ProductHandler.DeleteCategory)

	admin.GET("/products", d.ProductHandler.AdminGetProducts)
	admin.POST("/products", d.ProductHandler.CreateProduct)
	admin.PUT("/products/:id", d.ProductHandler.PatchProduct)
	admin.PATCH("/products/:id", d.ProductHandler.PatchProduct)
	admin.DELETE("/products/:id", d.ProductHandler.DeleteProduct)

	admin.GET("/orders", d.OrderHandler.AdminOrders)
	admin.PUT("/orders/:id", d.OrderHandler.UpdateStatus)
	admin.PUT("/orders/:id/status", d.OrderHandler.UpdateStatus)

	admin.GET("/banners", d.BannerHandler.AdminGetBanners)
	admin.POST("/banners", d.BannerHandler.Create)
	admin.PUT("/banners/:id", d.BannerHandler.Update)
	admin.DELETE("/banners/:id", d.BannerHandler.Delete)
}
