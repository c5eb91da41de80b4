package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/dheerghayush/naturals/internal/models"
)

func (r *GormRepo) CreateCustomer(ctx context.Context, c *models.Customer) error {
	return translate(r.DB.WithContext(ctx).Create(c).Error)
}

func (r *GormRepo) CustomerByEmail(ctx context.Context, email string) (*models.Customer, error) {
	var c models.Customer
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&c).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r *GormRepo) CustomerByPhone(ctx context.Context, phone string) (*models.Customer, error) {
	var c models.Customer
	if err := r.DB.WithContext(ctx).Where("phone = ?", phone).First(&c).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r *GormRepo) CustomerByID(ctx context.Context, id string) (*models.Customer, error) {
	var c models.Customer
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r *GormRepo) UpdateCustomerPassword(ctx context.Context, id, passwordHash string) error {
	res := r.DB.WithContext(ctx).Model(&models.Customer{}).Where("id = ?", id).Update("password_hash", passwordHash)
	return affected(res)
}

func (r *GormRepo) CreateAdmin(ctx context.Context, a *models.Admin) error {
	return translate(r.DB.WithContext(ctx).Create(a).Error)
}

func (r *GormRepo) AdminByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var a models.Admin
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&a).Error; err != nil {
		return nil, translate(err)
	}
	return &a, nil
}

func (r *GormRepo) AdminByID(ctx context.Context, id string) (*models.Admin, error) {
	var a models.Admin
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&a).Error; err != nil {
		return nil, translate(err)
	}
	return &a, nil
}

func (r *GormRepo) CreateResetToken(ctx context.Context, t *models.PasswordResetToken) error {
	return translate(r.DB.WithContext(ctx).Create(t).Error)
}

func (r *GormRepo) InvalidateResetTokens(ctx context.Context, email string) error {
	return r.DB.WithContext(ctx).Model(&models.PasswordResetToken{}).
		Where("email = ? AND used = ?", email, false).
		Update("used", true).Error
}

func (r *GormRepo) ResetTokenByToken(ctx context.Context, token string) (*models.PasswordResetToken, error) {
	var t models.PasswordResetToken
	if err := r.DB.WithContext(ctx).Where("token = ?", token).First(&t).Error; err != nil {
		return nil, translate(err)
	}
	return &t, nil
}

// RedeemResetToken flips the token's used flag from false to true and stores
// the new password hash in one transaction. It reports false when the token
// was already used; a missing account rolls the flag back and returns
// ErrNotFound.
func (r *GormRepo) RedeemResetToken(ctx context.Context, token, userID, passwordHash string) (bool, error) {
	redeemed := false
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.PasswordResetToken{}).
			Where("token = ? AND used = ?", token, false).
			Update("used", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != 1 {
			return nil
		}
		if err := (&GormRepo{DB: tx}).UpdateCustomerPassword(ctx, userID, passwordHash); err != nil {
			return err
		}
		redeemed = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return redeemed, nil
}

func (r *GormRepo) ListAddresses(ctx context.Context, userID string) ([]models.Address, error) {
	var out []models.Address
	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).Order("created_at ASC").Find(&out).Error
	return out, err
}

func (r *GormRepo) CountAddresses(ctx context.Context, userID string) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&models.Address{}).Where("user_id = ?", userID).Count(&n).Error
	return n, err
}

func (r *GormRepo) CreateAddress(ctx context.Context, a *models.Address) error {
	return translate(r.DB.WithContext(ctx).Create(a).Error)
}

func (r *GormRepo) AddressByID(ctx context.Context, id, userID string) (*models.Address, error) {
	var a models.Address
	if err := r.DB.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&a).Error; err != nil {
		return nil, translate(err)
	}
	return &a, nil
}

func (r *GormRepo) SaveAddress(ctx context.Context, a *models.Address) error {
	return translate(r.DB.WithContext(ctx).Save(a).Error)
}

func (r *GormRepo) DeleteAddress(ctx context.Context, id, userID string) error {
	res := r.DB.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.Address{})
	return affected(res)
}

// ClearPrimary unsets is_primary on every address of userID except exceptID.
func (r *GormRepo) ClearPrimary(ctx context.Context, userID, exceptID string) error {
	return r.DB.WithContext(ctx).Model(&models.Address{}).
		Where("user_id = ? AND id <> ? AND is_primary = ?", userID, exceptID, true).
		Update("is_primary", false).Error
}

func (r *GormRepo) SetPrimary(ctx context.Context, id, userID string) error {
	res := r.DB.WithContext(ctx).Model(&models.Address{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_primary", true)
	return affected(res)
}
