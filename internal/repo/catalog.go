package repo

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/dheerghayush/naturals/internal/models"
)

func (r *GormRepo) ListCategories(ctx context.Context, activeOnly bool) ([]models.Category, error) {
	q := r.DB.WithContext(ctx).Model(&models.Category{})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var out []models.Category
	err := q.Order("sort_order ASC").Order("name ASC").Find(&out).Error
	return out, err
}

func (r *GormRepo) CategoryBySlug(ctx context.Context, slug string, activeOnly bool) (*models.Category, error) {
	q := r.DB.WithContext(ctx).Where("slug = ?", slug)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var c models.Category
	if err := q.First(&c).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r *GormRepo) CategoryByID(ctx context.Context, id string) (*models.Category, error) {
	var c models.Category
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r *GormRepo) CreateCategory(ctx context.Context, c *models.Category) error {
	return translate(r.DB.WithContext(ctx).Create(c).Error)
}

func (r *GormRepo) SaveCategory(ctx context.Context, c *models.Category) error {
	return translate(r.DB.WithContext(ctx).Save(c).Error)
}

func (r *GormRepo) CountCategories(ctx context.Context, activeOnly bool) (int64, error) {
	q := r.DB.WithContext(ctx).Model(&models.Category{})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var n int64
	err := q.Count(&n).Error
	return n, err
}

func (r *GormRepo) ListProducts(ctx context.Context, f ProductFilter) ([]models.Product, error) {
	q := r.DB.WithContext(ctx).Model(&models.Product{})
	if f.ActiveOnly {
		q = q.Where("is_active = ?", true)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Bestseller != nil {
		q = q.Where("is_bestseller = ?", *f.Bestseller)
	}
	var out []models.Product
	err := q.Order("created_at ASC").Order("id ASC").Find(&out).Error
	return out, err
}

func (r *GormRepo) ProductByID(ctx context.Context, id string, activeOnly bool) (*models.Product, error) {
	q := r.DB.WithContext(ctx).Where("id = ?", id)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var p models.Product
	if err := q.First(&p).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *GormRepo) CreateProduct(ctx context.Context, p *models.Product) error {
	return translate(r.DB.WithContext(ctx).Create(p).Error)
}

func (r *GormRepo) SaveProduct(ctx context.Context, p *models.Product) error {
	return translate(r.DB.WithContext(ctx).Save(p).Error)
}

func (r *GormRepo) DeleteProduct(ctx context.Context, id string) error {
	return affected(r.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Product{}))
}

func (r *GormRepo) CountProducts(ctx context.Context, activeOnly bool) (int64, error) {
	q := r.DB.WithContext(ctx).Model(&models.Product{})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var n int64
	err := q.Count(&n).Error
	return n, err
}

// SearchProducts is a substring match over active products, used when no
// search index is configured.
func (r *GormRepo) SearchProducts(ctx context.Context, query string, limit int) ([]models.Product, error) {
	like := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"
	var out []models.Product
	err := r.DB.WithContext(ctx).
		Where("is_active = ?", true).
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(category) LIKE ?", like, like, like).
		Order("name ASC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

// ReserveStock decrements stock by qty only if the product is active and has
// at least qty units left. It reports whether the decrement happened.
func (r *GormRepo) ReserveStock(ctx context.Context, productID string, qty int) (bool, error) {
	res := r.DB.WithContext(ctx).Model(&models.Product{}).
		Where("id = ? AND is_active = ? AND stock >= ?", productID, true, qty).
		Update("stock", gorm.Expr("stock - ?", qty))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *GormRepo) ReleaseStock(ctx context.Context, productID string, qty int) error {
	return r.DB.WithContext(ctx).Model(&models.Product{}).
		Where("id = ?", productID).
		Update("stock", gorm.Expr("stock + ?", qty)).Error
}

func (r *GormRepo) ListBanners(ctx context.Context, activeOnly bool) ([]models.Banner, error) {
	q := r.DB.WithContext(ctx).Model(&models.Banner{})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var out []models.Banner
	err := q.Order("sort_order ASC").Order("created_at ASC").Find(&out).Error
	return out, err
}

func (r *GormRepo) BannerByID(ctx context.Context, id string) (*models.Banner, error) {
	var b models.Banner
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&b).Error; err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

func (r *GormRepo) CreateBanner(ctx context.Context, b *models.Banner) error {
	return translate(r.DB.WithContext(ctx).Create(b).Error)
}

func (r *GormRepo) SaveBanner(ctx context.Context, b *models.Banner) error {
	return translate(r.DB.WithContext(ctx).Save(b).Error)
}

func (r *GormRepo) DeleteBanner(ctx context.Context, id string) error {
	return affected(r.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Banner{}))
}

func (r *GormRepo) CountBanners(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&models.Banner{}).Count(&n).Error
	return n, err
}

// ReplaceCatalog swaps categories, products and banners for seed in one transaction.
func (r *GormRepo) ReplaceCatalog(ctx context.Context, seed CatalogSeed) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, m := range []any{&models.Category{}, &models.Product{}, &models.Banner{}} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(m).Error; err != nil {
				return err
			}
		}
		if len(seed.Categories) > 0 {
			if err := tx.Create(&seed.Categories).Error; err != nil {
				return translate(err)
			}
		}
		if len(seed.Products) > 0 {
			if err := tx.Create(&seed.Products).Error; err != nil {
				return translate(err)
			}
		}
		if len(seed.Banners) > 0 {
			if err := tx.Create(&seed.Banners).Error; err != nil {
				return translate(err)
			}
		}
		return nil
	})
}
