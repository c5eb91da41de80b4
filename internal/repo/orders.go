package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/dheerghayush/naturals/internal/models"
)

func (r *GormRepo) CreateOrder(ctx context.Context, o *models.Order) error {
	return translate(r.DB.WithContext(ctx).Create(o).Error)
}

func (r *GormRepo) OrderByID(ctx context.Context, id string) (*models.Order, error) {
	var o models.Order
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&o).Error; err != nil {
		return nil, translate(err)
	}
	return &o, nil
}

func (r *GormRepo) OrderForUser(ctx context.Context, id, userID string) (*models.Order, error) {
	var o models.Order
	if err := r.DB.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&o).Error; err != nil {
		return nil, translate(err)
	}
	return &o, nil
}

func (r *GormRepo) ListOrdersForUser(ctx context.Context, userID string) ([]models.Order, error) {
	var out []models.Order
	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *GormRepo) ListOrders(ctx context.Context, f OrderFilter) (int64, []models.Order, error) {
	filtered := func() *gorm.DB {
		q := r.DB.WithContext(ctx).Model(&models.Order{})
		if f.Status != "" {
			q = q.Where("order_status = ?", f.Status)
		}
		return q
	}
	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return 0, nil, err
	}
	var out []models.Order
	if err := filtered().Order("created_at DESC").Offset(f.Offset).Limit(f.Limit).Find(&out).Error; err != nil {
		return 0, nil, err
	}
	return total, out, nil
}

// UpdateOrderIfStatus overwrites o only while the stored order_status still
// equals expected, and reports whether the write happened.
func (r *GormRepo) UpdateOrderIfStatus(ctx context.Context, o *models.Order, expected string) (bool, error) {
	res := r.DB.WithContext(ctx).Model(&models.Order{}).
		Where("id = ? AND order_status = ?", o.ID, expected).
		Select("*").Omit("id", "created_at").
		Updates(o)
	if res.Error != nil {
		return false, translate(res.Error)
	}
	return res.RowsAffected == 1, nil
}

func (r *GormRepo) CountOrders(ctx context.Context, status string) (int64, error) {
	q := r.DB.WithContext(ctx).Model(&models.Order{})
	if status != "" {
		q = q.Where("order_status = ?", status)
	}
	var n int64
	err := q.Count(&n).Error
	return n, err
}

// PaidRevenue sums the totals of every paid order.
func (r *GormRepo) PaidRevenue(ctx context.Context) (float64, error) {
	var sum float64
	err := r.DB.WithContext(ctx).Model(&models.Order{}).
		Where("payment_status = ?", models.PaymentPaid).
		Select("COALESCE(SUM(total), 0)").
		Scan(&sum).Error
	return sum, err
}
