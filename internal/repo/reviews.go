package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/dheerghayush/naturals/internal/models"
)

func (r *GormRepo) CreateReview(ctx context.Context, rv *models.Review) error {
	return translate(r.DB.WithContext(ctx).Create(rv).Error)
}

func (r *GormRepo) ReviewExists(ctx context.Context, userID, productID, orderID string) (bool, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&models.Review{}).
		Where("user_id = ? AND product_id = ? AND order_id = ?", userID, productID, orderID).
		Count(&n).Error
	return n > 0, err
}

func (r *GormRepo) ListReviewsForProduct(ctx context.Context, productID string, offset, limit int) (int64, []models.Review, error) {
	byProduct := func() *gorm.DB {
		return r.DB.WithContext(ctx).Model(&models.Review{}).Where("product_id = ?", productID)
	}
	var total int64
	if err := byProduct().Count(&total).Error; err != nil {
		return 0, nil, err
	}
	var out []models.Review
	if err := byProduct().Order("created_at DESC").Offset(offset).Limit(limit).Find(&out).Error; err != nil {
		return 0, nil, err
	}
	return total, out, nil
}

func (r *GormRepo) ProductRatings(ctx context.Context, productID string) ([]int, error) {
	var ratings []int
	err := r.DB.WithContext(ctx).Model(&models.Review{}).Where("product_id = ?", productID).Pluck("rating", &ratings).Error
	return ratings, err
}

func (r *GormRepo) ListReviewsByUser(ctx context.Context, userID string) ([]models.Review, error) {
	var out []models.Review
	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&out).Error
	return out, err
}

// ReviewedProductIDs lists the products userID already reviewed from orderID.
func (r *GormRepo) ReviewedProductIDs(ctx context.Context, userID, orderID string) ([]string, error) {
	var ids []string
	err := r.DB.WithContext(ctx).Model(&models.Review{}).
		Where("user_id = ? AND order_id = ?", userID, orderID).
		Pluck("product_id", &ids).Error
	return ids, err
}
