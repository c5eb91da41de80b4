package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dheerghayush/naturals/internal/models"
	"github.com/dheerghayush/naturals/internal/payment"
	"github.com/dheerghayush/naturals/internal/repo"
	"github.com/dheerghayush/naturals/internal/transport"
)

func TestDashboardService_Stats(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	f.product(t, "p1", 50)
	orders := f.orders()

	paid := func(total float64) transport.CreateOrderRequest {
		r := orderRequest(line("p1", 1))
		r.PaymentMethod = models.PaymentRazorpay
		r.RazorpayPaymentID = "pay"
		r.Total = total
		return r
	}
	_, err := orders.Create(ctx, "", paid(100.10))
	require.NoError(t, err)
	o, err := orders.Create(ctx, "", paid(200.20))
	require.NoError(t, err)
	_, err = orders.Create(ctx, "", orderRequest(line("p1", 1)))
	require.NoError(t, err)
	deliver(t, f, o.ID)

	hidden := f.product(t, "p2", 1)
	hidden.IsActive = false
	require.NoError(t, f.repo.SaveProduct(ctx, hidden))
	_, err = f.catalog(nil).CreateCategory(ctx, transport.CategoryRequest{Name: "Pulses", Slug: "pulses"})
	require.NoError(t, err)

	st, err := (&DashboardService{Store: f.repo}).Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, transport.DashboardStats{
		TotalOrders:     3,
		TotalRevenue:    300.3,
		PendingOrders:   2,
		DeliveredOrders: 1,
		TotalProducts:   1,
		TotalCategories: 1,
	}, *st)
}

func TestSeeder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	s := &Seeder{Store: f.repo, Now: f.clock}

	res, err := s.SeedCatalog(ctx, repo.CatalogSeed{
		Categories: []models.Category{{Name: "Pulses", Slug: "pulses"}},
		Products:   []models.Product{{ID: "1", Name: "Toor Dal", Category: "pulses", Price: 145, Stock: 100}},
		Banners:    []models.Banner{{Title: "Fresh"}},
	})
	require.NoError(t, err)
	assert.Equal(t, transport.SeedResult{Message: "Database seeded successfully", Categories: 1, Products: 1, Banners: 1}, *res)

	p, err := f.repo.ProductByID(ctx, "1", true)
	require.NoError(t, err)
	assert.Equal(t, 100, p.Stock)

	n, err := s.EnsureBanners(ctx, []models.Banner{{Title: "Other"}})
	require.NoError(t, err)
	assert.Zero(t, n, "banners exist already")

	_, err = s.SeedCatalog(ctx, repo.CatalogSeed{Products: []models.Product{{Name: "Bad", Category: "x", Stock: -1}}})
	require.ErrorIs(t, err, ErrValidation)

	// Reseeding replaces the previous catalog.
	_, err = s.SeedCatalog(ctx, repo.CatalogSeed{})
	require.NoError(t, err)
	count, err := f.repo.CountProducts(ctx, false)
	require.NoError(t, err)
	assert.Zero(t, count)

	n, err = s.EnsureBanners(ctx, []models.Banner{{Title: "A"}, {Title: "B"}})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestBannerService(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	svc := &BannerService{Store: f.repo, Now: f.clock}

	_, err := svc.Create(ctx, transport.BannerRequest{})
	require.ErrorIs(t, err, ErrValidation)

	b, err := svc.Create(ctx, transport.BannerRequest{Title: "Monsoon Sale", Order: 1})
	require.NoError(t, err)

	_, err = svc.Update(ctx, b.ID, transport.PatchBannerRequest{})
	require.ErrorIs(t, err, ErrValidation)

	b, err = svc.Update(ctx, b.ID, transport.PatchBannerRequest{IsActive: boolPtr(false), Subtitle: strPtr("Up to 30% off")})
	require.NoError(t, err)
	assert.Equal(t, "Up to 30% off", b.Subtitle)

	active, err := svc.List(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, active)

	require.NoError(t, svc.Delete(ctx, b.ID))
	err = svc.Delete(ctx, b.ID)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Banner not found", Message(err))
}

type fakeGateway struct {
	gotAmount   int64
	gotCurrency string
	gotCapture  bool
	err         error
}

func (g *fakeGateway) CreateOrder(_ context.Context, amountMinor int64, currency string, autoCapture bool) (string, error) {
	g.gotAmount, g.gotCurrency, g.gotCapture = amountMinor, currency, autoCapture
	if g.err != nil {
		return "", g.err
	}
	return "order_test_1", nil
}

func TestPaymentService(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	gw := &fakeGateway{}
	svc := &PaymentService{Gateway: gw, KeyID: "rzp_test_key", KeySecret: "rzp_test_secret"}

	resp, err := svc.CreateOrder(ctx, transport.PaymentOrderRequest{Amount: 499.99})
	require.NoError(t, err)
	assert.Equal(t, transport.PaymentOrderResponse{
		RazorpayOrderID: "order_test_1",
		RazorpayKeyID:   "rzp_test_key",
		Amount:          49999,
		Currency:        DefaultCurrency,
	}, *resp)
	assert.True(t, gw.gotCapture)

	_, err = svc.CreateOrder(ctx, transport.PaymentOrderRequest{Amount: 0})
	require.ErrorIs(t, err, ErrValidation)

	gw.err = errors.New("gateway down")
	_, err = svc.CreateOrder(ctx, transport.PaymentOrderRequest{Amount: 10, Currency: "usd"})
	require.Error(t, err)
	assert.Empty(t, Message(err))
	assert.Equal(t, "USD", gw.gotCurrency)

	_, err = (&PaymentService{}).CreateOrder(ctx, transport.PaymentOrderRequest{Amount: 10})
	require.ErrorIs(t, err, ErrGatewayUnavailable)

	sig := payment.Sign("order_test_1", "pay_1", "rzp_test_secret")
	v, err := svc.Verify(ctx, transport.VerifyPaymentRequest{RazorpayOrderID: "order_test_1", RazorpayPaymentID: "pay_1", RazorpaySignature: sig})
	require.NoError(t, err)
	assert.True(t, v.Verified)
	assert.Equal(t, "Payment signature verified successfully", v.Message)

	_, err = svc.Verify(ctx, transport.VerifyPaymentRequest{RazorpayOrderID: "order_test_1", RazorpayPaymentID: "pay_1", RazorpaySignature: "bad"})
	require.ErrorIs(t, err, ErrValidation)

	assert.Equal(t, "rzp_test_key", svc.Key().KeyID)
}
