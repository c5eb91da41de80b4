package service

import (
	"context"
	"time"

	"github.com/dheerghayush/naturals/internal/models"
	"github.com/dheerghayush/naturals/internal/repo"
)

type AccountStore interface {
	CreateCustomer(ctx context.Context, c *models.Customer) error
	CustomerByEmail(ctx context.Context, email string) (*models.Customer, error)
	CustomerByPhone(ctx context.Context, phone string) (*models.Customer, error)
	CustomerByID(ctx context.Context, id string) (*models.Customer, error)
	UpdateCustomerPassword(ctx context.Context, id, passwordHash string) error

	CreateAdmin(ctx context.Context, a *models.Admin) error
	AdminByEmail(ctx context.Context, email string) (*models.Admin, error)
	AdminByID(ctx context.Context, id string) (*models.Admin, error)
}

type ResetTokenStore interface {
	CreateResetToken(ctx context.Context, t *models.PasswordResetToken) error
	InvalidateResetTokens(ctx context.Context, email string) error
	ResetTokenByToken(ctx context.Context, token string) (*models.PasswordResetToken, error)
	RedeemResetToken(ctx context.Context, token, userID, passwordHash string) (bool, error)
}

type AddressStore interface {
	ListAddresses(ctx context.Context, userID string) ([]models.Address, error)
	CountAddresses(ctx context.Context, userID string) (int64, error)
	CreateAddress(ctx context.Context, a *models.Address) error
	AddressByID(ctx context.Context, id, userID string) (*models.Address, error)
	SaveAddress(ctx context.Context, a *models.Address) error
	DeleteAddress(ctx context.Context, id, userID string) error
	ClearPrimary(ctx context.Context, userID, exceptID string) error
	SetPrimary(ctx context.Context, id, userID string) error
}

type CategoryStore interface {
	ListCategories(ctx context.Context, activeOnly bool) ([]models.Category, error)
	CategoryBySlug(ctx context.Context, slug string, activeOnly bool) (*models.Category, error)
	CategoryByID(ctx context.Context, id string) (*models.Category, error)
	CreateCategory(ctx context.Context, c *models.Category) error
	SaveCategory(ctx context.Context, c *models.Category) error
	CountCategories(ctx context.Context, activeOnly bool) (int64, error)
}

type ProductStore interface {
	ListProducts(ctx context.Context, f repo.ProductFilter) ([]models.Product, error)
	ProductByID(ctx context.Context, id string, activeOnly bool) (*models.Product, error)
	CreateProduct(ctx context.Context, p *models.Product) error
	SaveProduct(ctx context.Context, p *models.Product) error
	DeleteProduct(ctx context.Context, id string) error
	CountProducts(ctx context.Context, activeOnly bool) (int64, error)
	SearchProducts(ctx context.Context, query string, limit int) ([]models.Product, error)
}

// StockStore reserves and releases product stock. ReserveStock decrements
// only when the product is active and the result stays non-negative.
type StockStore interface {
	ProductByID(ctx context.Context, id string, activeOnly bool) (*models.Product, error)
	ReserveStock(ctx context.Context, productID string, qty int) (bool, error)
	ReleaseStock(ctx context.Context, productID string, qty int) error
}

type BannerStore interface {
	ListBanners(ctx context.Context, activeOnly bool) ([]models.Banner, error)
	BannerByID(ctx context.Context, id string) (*models.Banner, error)
	CreateBanner(ctx context.Context, b *models.Banner) error
	SaveBanner(ctx context.Context, b *models.Banner) error
	DeleteBanner(ctx context.Context, id string) error
	CountBanners(ctx context.Context) (int64, error)
}

// OrderStore persists orders. UpdateOrderIfStatus writes o only while the
// stored order_status still equals expected.
type OrderStore interface {
	CreateOrder(ctx context.Context, o *models.Order) error
	OrderByID(ctx context.Context, id string) (*models.Order, error)
	OrderForUser(ctx context.Context, id, userID string) (*models.Order, error)
	ListOrdersForUser(ctx context.Context, userID string) ([]models.Order, error)
	ListOrders(ctx context.Context, f repo.OrderFilter) (int64, []models.Order, error)
	UpdateOrderIfStatus(ctx context.Context, o *models.Order, expected string) (bool, error)
	CountOrders(ctx context.Context, status string) (int64, error)
	PaidRevenue(ctx context.Context) (float64, error)
}

type ReviewStore interface {
	CreateReview(ctx context.Context, rv *models.Review) error
	ReviewExists(ctx context.Context, userID, productID, orderID string) (bool, error)
	ListReviewsForProduct(ctx context.Context, productID string, offset, limit int) (int64, []models.Review, error)
	ProductRatings(ctx context.Context, productID string) ([]int, error)
	ListReviewsByUser(ctx context.Context, userID string) ([]models.Review, error)
	ReviewedProductIDs(ctx context.Context, userID, orderID string) ([]string, error)
}

// Store is the full persistence surface; both repo.GormRepo and
// repo.MongoRepo implement it.
type Store interface {
	AccountStore
	ResetTokenStore
	AddressStore
	CategoryStore
	ProductStore
	BannerStore
	OrderStore
	ReviewStore

	ReserveStock(ctx context.Context, productID string, qty int) (bool, error)
	ReleaseStock(ctx context.Context, productID string, qty int) error
	ReplaceCatalog(ctx context.Context, seed repo.CatalogSeed) error
	Migrate(ctx context.Context) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

var (
	_ Store = (*repo.GormRepo)(nil)
	_ Store = (*repo.MongoRepo)(nil)
)

// Clock returns the current time. Services default to UTC wall time.
type Clock func() time.Time

func utcNow() time.Time { return time.Now().UTC() }

func (c Clock) now() time.Time {
	if c == nil {
		return utcNow()
	}
	return c()
}
