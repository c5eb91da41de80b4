package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/dheerghayush/naturals/internal/app"
	"github.com/dheerghayush/naturals/internal/events"
	"github.com/dheerghayush/naturals/internal/handlers"
	"github.com/dheerghayush/naturals/internal/mailer"
	"github.com/dheerghayush/naturals/internal/payment"
	"github.com/dheerghayush/naturals/internal/seed"
	"github.com/dheerghayush/naturals/internal/service"
	httpserver "github.com/dheerghayush/naturals/internal/transport/http"
	"github.com/dheerghayush/naturals/pkg/config"
	"github.com/dheerghayush/naturals/pkg/hash"
	"github.com/dheerghayush/naturals/pkg/logging"
	authmw "github.com/dheerghayush/naturals/pkg/middleware/auth"
	loggingmw "github.com/dheerghayush/naturals/pkg/middleware/logging"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: could not load .env: %v", err)
	}

	cfg := config.Load()
	config.MustNonEmptyBytes(cfg.JWTSecret, "JWT_SECRET")
	cfg.MustStoreURL()

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)
	ctx := logging.IntoContext(context.Background(), logger)

	openCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	store, err := app.OpenStore(openCtx, cfg)
	cancel()
	if err != nil {
		log.Fatalf("store open: %v", err)
	}

	var publisher events.Publisher = events.Nop{}
	var producer *events.Producer
	if len(cfg.KafkaBrokers) > 0 {
		producer = events.NewProducer(cfg.KafkaBrokers, logger)
		publisher = producer
	} else {
		logger.Warn("kafka_disabled", "reason", "KAFKA_BROKERS not set")
	}

	hasher := hash.New(cfg.BcryptCost)
	authSvc := &service.AuthService{Accounts: store, Hasher: hasher, Secret: cfg.JWTSecret, Events: publisher}
	catalog := &service.CatalogService{Store: store, Events: publisher}

	idxCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	idx, err := app.OpenIndex(idxCtx, cfg)
	cancel()
	switch {
	case err != nil:
		logger.Error("search_index_unavailable", "reason", "falling back to store search", "error", err)
	case idx != nil:
		catalog.Index = idx
	}

	var mail mailer.Sender = mailer.Disabled{}
	if cfg.BrevoAPIKey != "" {
		mail = mailer.NewBrevoClient(cfg.BrevoURL, cfg.BrevoAPIKey, cfg.SenderEmail, cfg.SenderName)
	} else {
		logger.Warn("mailer_disabled", "reason", "BREVO_API_KEY not set")
	}

	payments := &service.PaymentService{KeyID: cfg.RazorpayKeyID, KeySecret: cfg.RazorpayKeySecret}
	if cfg.RazorpayKeyID != "" && cfg.RazorpayKeySecret != "" {
		payments.Gateway = payment.NewRazorpayClient(cfg.RazorpayURL, cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	} else {
		logger.Warn("payments_disabled", "reason", "RAZORPAY_KEY_ID or RAZORPAY_KEY_SECRET not set")
	}

	seeder := &service.Seeder{Store: store}
	bootstrap(ctx, cfg, authSvc, seeder)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = handlers.ErrorHandler
	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(echomw.BodyLimit("2M"))

	httpserver.Register(e, &httpserver.Deps{
		Store: store,
		Auth:  authmw.New(cfg.JWTSecret, authSvc.Resolve),
		AuthHandler: &handlers.AuthHandler{
			Auth: authSvc,
			Resets: &service.PasswordResetService{
				Store:       store,
				Hasher:      hasher,
				Mail:        mail,
				Events:      publisher,
				FrontendURL: cfg.FrontendURL,
			},
		},
		AddressHandler: &handlers.AddressHandler{Addresses: &service.AddressService{Store: store}},
		ProductHandler: &handlers.ProductHandler{Catalog: catalog},
		SearchHandler:  &handlers.SearchHandler{Catalog: catalog},
		BannerHandler:  &handlers.BannerHandler{Banners: &service.BannerService{Store: store}},
		OrderHandler: &handlers.OrderHandler{Orders: &service.OrderService{
			Store:         store,
			Events:        publisher,
			PaymentSecret: cfg.RazorpayKeySecret,
		}},
		PaymentHandler: &handlers.PaymentHandler{Payments: payments},
		ReviewHandler:  &handlers.ReviewHandler{Reviews: &service.ReviewService{Store: store}},
		AdminHandler: &handlers.AdminHandler{
			Dashboard: &service.DashboardService{Store: store},
			Seeder:    seeder,
			Catalog:   catalog,
			Seed:      seed.Default,
		},
	})

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server_listening", "addr", srv.Addr, "store", cfg.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting_down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server_shutdown_error", "error", err)
	}
	if producer != nil {
		if err := producer.Close(); err != nil {
			logger.Error("kafka_close_error", "error", err)
		}
	}
	if err := store.Close(shutdownCtx); err != nil {
		logger.Error("store_close_error", "error", err)
	}

	logger.Info("shutdown_complete")
}

// bootstrap creates the default admin and the default banners. Failures are
// logged; the API still starts.
func bootstrap(ctx context.Context, cfg config.Config, authSvc *service.AuthService, seeder *service.Seeder) {
	l := logging.FromContext(ctx)

	if cfg.DefaultAdminEmail != "" && cfg.DefaultAdminPassword != "" {
		created, err := authSvc.EnsureAdmin(ctx, "", cfg.DefaultAdminEmail, cfg.DefaultAdminPassword)
		if err != nil {
			l.Error("default_admin_error", "error", err)
		} else if created {
			l.Info("default_admin_created", "email", cfg.DefaultAdminEmail)
		}
	}

	banners, err := seed.DefaultBanners()
	if err != nil {
		l.Error("default_banners_error", "error", err)
		return
	}
	n, err := seeder.EnsureBanners(ctx, banners)
	if err != nil {
		l.Error("default_banners_error", "error", err)
		return
	}
	if n > 0 {
		l.Info("default_banners_created", "count", n)
	}
}
