package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dheerghayush/naturals/internal/events"
	"github.com/dheerghayush/naturals/internal/models"
	"github.com/dheerghayush/naturals/internal/repo"
	"github.com/dheerghayush/naturals/internal/transport"
	"github.com/dheerghayush/naturals/pkg/logging"
)

const (
	DefaultProductStock = 100
	defaultSearchLimit  = 20
	maxSearchLimit      = 100
)

type catalogStore interface {
	CategoryStore
	ProductStore
}

// ProductSearcher is a full-text product index kept in step with the store.
type ProductSearcher interface {
	IndexProduct(ctx context.Context, p models.Product) error
	DeleteProduct(ctx context.Context, id string) error
	Search(ctx context.Context, query string, from, size int) (int64, []models.Product, error)
}

type CatalogService struct {
	Store  catalogStore
	Index  ProductSearcher
	Events events.Publisher
	Now    Clock
}

func (s *CatalogService) ListCategories(ctx context.Context, activeOnly bool) ([]models.Category, error) {
	return s.Store.ListCategories(ctx, activeOnly)
}

func (s *CatalogService) CategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	c, err := s.Store.CategoryBySlug(ctx, slug, true)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, newErr(ErrNotFound, "Category not found")
		}
		return nil, err
	}
	return c, nil
}

func (s *CatalogService) slugTaken(ctx context.Context, slug string) (bool, error) {
	_, err := s.Store.CategoryBySlug(ctx, slug, false)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, repo.ErrNotFound):
		return false, nil
	}
	return false, err
}

func (s *CatalogService) CreateCategory(ctx context.Context, req transport.CategoryRequest) (*models.Category, error) {
	slug := strings.TrimSpace(req.Slug)
	if strings.TrimSpace(req.Name) == "" || slug == "" {
		return nil, newErr(ErrValidation, "Name and slug are required")
	}
	taken, err := s.slugTaken(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("lookup slug: %w", err)
	}
	if taken {
		return nil, newErr(ErrConflict, "Category with this slug already exists")
	}

	c := &models.Category{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(req.Name),
		Slug:      slug,
		Image:     req.Image,
		SortOrder: req.SortOrder,
		IsActive:  true,
		CreatedAt: s.Now.now(),
	}
	if err := s.Store.CreateCategory(ctx, c); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, newErr(ErrConflict, "Category with this slug already exists")
		}
		return nil, fmt.Errorf("create category: %w", err)
	}
	logging.FromContext(ctx).Info("category_created", "category_id", c.ID, "slug", c.Slug)
	return c, nil
}

func (s *CatalogService) UpdateCategory(ctx context.Context, id string, req transport.PatchCategoryRequest) (*models.Category, error) {
	if req.Name == nil && req.Slug == nil && req.Image == nil && req.SortOrder == nil && req.IsActive == nil {
		return nil, newErr(ErrValidation, "No fields to update")
	}
	c, err := s.Store.CategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, newErr(ErrNotFound, "Category not found")
		}
		return nil, err
	}

	if req.Slug != nil && *req.Slug != c.Slug {
		taken, err := s.slugTaken(ctx, *req.Slug)
		if err != nil {
			return nil, fmt.Errorf("lookup slug: %w", err)
		}
		if taken {
			return nil, newErr(ErrConflict, "Category with this slug already exists")
		}
		c.Slug = *req.Slug
	}
	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Image != nil {
		c.Image = *req.Image
	}
	if req.SortOrder != nil {
		c.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}

	if err := s.Store.SaveCategory(ctx, c); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, newErr(ErrConflict, "Category with this slug already exists")
		}
		return nil, fmt.Errorf("save category: %w", err)
	}
	return c, nil
}

// DeactivateCategory hides a category. Categories are never removed.
func (s *CatalogService) DeactivateCategory(ctx context.Context, id string) error {
	c, err := s.Store.CategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return newErr(ErrNotFound, "Category not found")
		}
		return err
	}
	c.IsActive = false
	if err := s.Store.SaveCategory(ctx, c); err != nil {
		return fmt.Errorf("save category: %w", err)
	}
	return nil
}

func (s *CatalogService) ListProducts(ctx context.Context, f repo.ProductFilter) ([]models.Product, error) {
	return s.Store.ListProducts(ctx, f)
}

func (s *CatalogService) Product(ctx context.Context, id string, activeOnly bool) (*models.Product, error) {
	p, err := s.Store.ProductByID(ctx, id, activeOnly)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, newErr(ErrNotFound, "Product not found")
		}
		return nil, err
	}
	return p, nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, req transport.ProductRequest) (*models.Product, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Category) == "" {
		return nil, newErr(ErrValidation, "Name and category are required")
	}
	if req.Price < 0 || req.OriginalPrice < 0 {
		return nil, newErr(ErrValidation, "Price must not be negative")
	}
	stock := DefaultProductStock
	if req.Stock != nil {
		if *req.Stock < 0 {
			return nil, newErr(ErrValidation, "Stock must not be negative")
		}
		stock = *req.Stock
	}

	p := &models.Product{
		ID:            uuid.NewString(),
		Name:          strings.TrimSpace(req.Name),
		Category:      strings.TrimSpace(req.Category),
		Weight:        req.Weight,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Image:         req.Image,
		IsBestseller:  req.IsBestseller,
		Description:   req.Description,
		Stock:         stock,
		IsActive:      true,
		CreatedAt:     s.Now.now(),
	}
	if err := s.Store.CreateProduct(ctx, p); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	logging.FromContext(ctx).Info("product_created", "product_id", p.ID)
	s.productChanged(ctx, events.ProductCreated, p)
	return p, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id string, req transport.PatchProductRequest) (*models.Product, error) {
	if req.Name == nil && req.Category == nil && req.Weight == nil && req.Price == nil &&
		req.OriginalPrice == nil && req.Image == nil && req.IsBestseller == nil &&
		req.Description == nil && req.Stock == nil && req.IsActive == nil {
		return nil, newErr(ErrValidation, "No fields to update")
	}
	p, err := s.Product(ctx, id, false)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Category != nil {
		p.Category = *req.Category
	}
	if req.Weight != nil {
		p.Weight = *req.Weight
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, newErr(ErrValidation, "Price must not be negative")
		}
		p.Price = *req.Price
	}
	if req.OriginalPrice != nil {
		if *req.OriginalPrice < 0 {
			return nil, newErr(ErrValidation, "Price must not be negative")
		}
		p.OriginalPrice = *req.OriginalPrice
	}
	if req.Image != nil {
		p.Image = *req.Image
	}
	if req.IsBestseller != nil {
		p.IsBestseller = *req.IsBestseller
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Stock != nil {
		if *req.Stock < 0 {
			return nil, newErr(ErrValidation, "Stock must not be negative")
		}
		p.Stock = *req.Stock
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}

	if err := s.Store.SaveProduct(ctx, p); err != nil {
		return nil, fmt.Errorf("save product: %w", err)
	}
	s.productChanged(ctx, events.ProductUpdated, p)
	return p, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.Store.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return newErr(ErrNotFound, "Product not found")
		}
		return fmt.Errorf("delete product: %w", err)
	}
	logging.FromContext(ctx).Info("product_deleted", "product_id", id)
	if s.Index != nil {
		if err := s.Index.DeleteProduct(ctx, id); err != nil {
			logging.FromContext(ctx).Warn("search_index_error", "product_id", id, "error", err)
		}
	}
	publish(ctx, s.Events, events.TopicProducts, id, events.ProductEvent{
		Type:       events.ProductDeleted,
		ProductID:  id,
		OccurredAt: s.Now.now(),
	})
	return nil
}

func (s *CatalogService) productChanged(ctx context.Context, kind string, p *models.Product) {
	if s.Index != nil {
		if err := s.Index.IndexProduct(ctx, *p); err != nil {
			logging.FromContext(ctx).Warn("search_index_error", "product_id", p.ID, "error", err)
		}
	}
	publish(ctx, s.Events, events.TopicProducts, p.ID, events.ProductEvent{
		Type:       kind,
		ProductID:  p.ID,
		Category:   p.Category,
		Stock:      p.Stock,
		OccurredAt: s.Now.now(),
	})
}

// Search queries the product index when one is configured and falls back
// to a substring match in the store otherwise or when the index fails.
func (s *CatalogService) Search(ctx context.Context, query string, limit int) (*transport.SearchResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, newErr(ErrValidation, "Search query is required")
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	if s.Index != nil {
		total, products, err := s.Index.Search(ctx, query, 0, limit)
		if err == nil {
			return &transport.SearchResponse{Query: query, Total: total, Products: products}, nil
		}
		logging.FromContext(ctx).Warn("search_index_error", "reason", "falling back to store", "error", err)
	}

	products, err := s.Store.SearchProducts(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return &transport.SearchResponse{Query: query, Total: int64(len(products)), Products: products}, nil
}

// Reindex pushes every product into the search index and returns how many
// were indexed.
func (s *CatalogService) Reindex(ctx context.Context) (int, error) {
	if s.Index == nil {
		return 0, errors.New("search index not configured")
	}
	products, err := s.Store.ListProducts(ctx, repo.ProductFilter{})
	if err != nil {
		return 0, fmt.Errorf("list products: %w", err)
	}
	for _, p := range products {
		if err := s.Index.IndexProduct(ctx, p); err != nil {
			return 0, fmt.Errorf("index product %s: %w", p.ID, err)
		}
	}
	return len(products), nil
}
