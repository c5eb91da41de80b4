package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dheerghayush/naturals/internal/models"
	"github.com/dheerghayush/naturals/internal/repo"
	"github.com/dheerghayush/naturals/internal/transport"
	"github.com/dheerghayush/naturals/pkg/logging"
)

type seedStore interface {
	ReplaceCatalog(ctx context.Context, seed repo.CatalogSeed) error
	CountBanners(ctx context.Context) (int64, error)
	CreateBanner(ctx context.Context, b *models.Banner) error
}

// Seeder loads a catalog snapshot into the store.
type Seeder struct {
	Store seedStore
	Now   Clock
}

// SeedCatalog replaces categories, products and banners with seed. Records
// without an id get a fresh one; every seeded record is active.
func (s *Seeder) SeedCatalog(ctx context.Context, seed repo.CatalogSeed) (*transport.SeedResult, error) {
	now := s.Now.now()
	for i := range seed.Categories {
		c := &seed.Categories[i]
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		c.IsActive, c.CreatedAt = true, now
	}
	for i := range seed.Products {
		p := &seed.Products[i]
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		if p.Stock < 0 {
			return nil, newErr(ErrValidation, "Product %s has negative stock", p.Name)
		}
		p.IsActive, p.CreatedAt = true, now
	}
	for i := range seed.Banners {
		b := &seed.Banners[i]
		if b.ID == "" {
			b.ID = uuid.NewString()
		}
		b.IsActive, b.CreatedAt = true, now
	}

	if err := s.Store.ReplaceCatalog(ctx, seed); err != nil {
		return nil, fmt.Errorf("replace catalog: %w", err)
	}
	logging.FromContext(ctx).Info("catalog_seeded",
		"categories", len(seed.Categories), "products", len(seed.Products), "banners", len(seed.Banners))
	return &transport.SeedResult{
		Message:    "Database seeded successfully",
		Categories: len(seed.Categories),
		Products:   len(seed.Products),
		Banners:    len(seed.Banners),
	}, nil
}

// EnsureBanners inserts banners only when the store has none.
func (s *Seeder) EnsureBanners(ctx context.Context, banners []models.Banner) (int, error) {
	n, err := s.Store.CountBanners(ctx)
	if err != nil {
		return 0, fmt.Errorf("count banners: %w", err)
	}
	if n > 0 {
		return 0, nil
	}
	now := s.Now.now()
	for i := range banners {
		b := banners[i]
		if b.ID == "" {
			b.ID = uuid.NewString()
		}
		b.IsActive, b.CreatedAt = true, now
		if err := s.Store.CreateBanner(ctx, &b); err != nil {
			return i, fmt.Errorf("create banner: %w", err)
		}
	}
	return len(banners), nil
}
