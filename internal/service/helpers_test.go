package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dheerghayush/naturals/internal/events"
	"github.com/dheerghayush/naturals/internal/models"
	"github.com/dheerghayush/naturals/internal/repo"
	"github.com/dheerghayush/naturals/internal/transport"
	pkgdb "github.com/dheerghayush/naturals/pkg/db"
	"github.com/dheerghayush/naturals/pkg/hash"
)

const testSecret = "test-jwt-secret"

var baseTime = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

type fixture struct {
	repo   *repo.GormRepo
	events *events.Recorder
	mail   *fakeMailer
	hasher hash.Hasher

	mu  sync.Mutex
	now time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gdb, err := pkgdb.Open(context.Background(), "sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = pkgdb.Close(gdb) })

	r := repo.NewGormRepo(gdb)
	require.NoError(t, r.Migrate(context.Background()))

	return &fixture{
		repo:   r,
		events: &events.Recorder{},
		mail:   &fakeMailer{},
		hasher: hash.New(bcrypt.MinCost),
		now:    baseTime,
	}
}

func (f *fixture) clock() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fixture) advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func (f *fixture) auth() *AuthService {
	return &AuthService{Accounts: f.repo, Hasher: f.hasher, Secret: []byte(testSecret), Events: f.events, Now: f.clock}
}

func (f *fixture) orders() *OrderService {
	return &OrderService{Store: f.repo, Events: f.events, PaymentSecret: "rzp_test_secret", Now: f.clock}
}

func (f *fixture) catalog(idx ProductSearcher) *CatalogService {
	return &CatalogService{Store: f.repo, Index: idx, Events: f.events, Now: f.clock}
}

func (f *fixture) reviews() *ReviewService {
	return &ReviewService{Store: f.repo, Now: f.clock}
}

func (f *fixture) product(t *testing.T, id string, stock int) *models.Product {
	t.Helper()
	p := &models.Product{
		ID:        id,
		Name:      "Product " + id,
		Category:  "pulses",
		Price:     100,
		Stock:     stock,
		IsActive:  true,
		CreatedAt: f.clock(),
	}
	require.NoError(t, f.repo.CreateProduct(context.Background(), p))
	return p
}

func (f *fixture) stock(t *testing.T, id string) int {
	t.Helper()
	p, err := f.repo.ProductByID(context.Background(), id, false)
	require.NoError(t, err)
	return p.Stock
}

func (f *fixture) customer(t *testing.T) *Principal {
	t.Helper()
	c := &models.Customer{
		ID:           uuid.NewString(),
		Name:         "Asha",
		Email:        uuid.NewString()[:8] + "@example.com",
		Phone:        uuid.NewString()[:10],
		PasswordHash: "x",
		IsActive:     true,
		CreatedAt:    f.clock(),
	}
	require.NoError(t, f.repo.CreateCustomer(context.Background(), c))
	return customerPrincipal(c)
}

func orderRequest(items ...transport.OrderItemRequest) transport.CreateOrderRequest {
	var subtotal float64
	for _, it := range items {
		subtotal += it.Price * float64(it.Quantity)
	}
	return transport.CreateOrderRequest{
		CustomerInfo: transport.CustomerInfoRequest{
			Name:    "Asha",
			Email:   "asha@example.com",
			Phone:   "9876543210",
			Address: "12 MG Road",
			City:    "Hyderabad",
			State:   "Telangana",
			Pincode: "500001",
		},
		Items:         items,
		Subtotal:      subtotal,
		Total:         subtotal,
		PaymentMethod: models.PaymentCOD,
	}
}

func line(id string, qty int) transport.OrderItemRequest {
	return transport.OrderItemRequest{ID: id, Name: "Product " + id, Price: 100, Quantity: qty, Weight: "500 gms"}
}

func strPtr(s string) *string { return &s }

type sentMail struct {
	To      string
	Subject string
	Body    string
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
	fail bool
}

func (m *fakeMailer) Send(_ context.Context, to, _, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errors.New("smtp down")
	}
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

func (m *fakeMailer) Sent() []sentMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]sentMail(nil), m.sent...)
}

type fakeIndex struct {
	mu      sync.Mutex
	indexed []string
	deleted []string
	result  []models.Product
	err     error
}

func (i *fakeIndex) IndexProduct(_ context.Context, p models.Product) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.indexed = append(i.indexed, p.ID)
	return i.err
}

func (i *fakeIndex) DeleteProduct(_ context.Context, id string) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.deleted = append(i.deleted, id)
	return i.err
}

func (i *fakeIndex) Search(context.Context, string, int, int) (int64, []models.Product, error) {
	if i.err != nil {
		return 0, nil, i.err
	}
	return int64(len(i.result)), i.result, nil
}
