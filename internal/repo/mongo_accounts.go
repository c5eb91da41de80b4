package repo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dheerghayush/naturals/internal/models"
)

func (m *MongoRepo) CreateCustomer(ctx context.Context, c *models.Customer) error {
	return insert(ctx, m.Users, c)
}

func (m *MongoRepo) CustomerByEmail(ctx context.Context, email string) (*models.Customer, error) {
	return findOne[models.Customer](ctx, m.Users, bson.M{"email": email})
}

func (m *MongoRepo) CustomerByPhone(ctx context.Context, phone string) (*models.Customer, error) {
	return findOne[models.Customer](ctx, m.Users, bson.M{"phone": phone})
}

func (m *MongoRepo) CustomerByID(ctx context.Context, id string) (*models.Customer, error) {
	return findOne[models.Customer](ctx, m.Users, bson.M{"id": id})
}

func (m *MongoRepo) UpdateCustomerPassword(ctx context.Context, id, passwordHash string) error {
	res, err := m.Users.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"password_hash": passwordHash}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoRepo) CreateAdmin(ctx context.Context, a *models.Admin) error {
	return insert(ctx, m.Admins, a)
}

func (m *MongoRepo) AdminByEmail(ctx context.Context, email string) (*models.Admin, error) {
	return findOne[models.Admin](ctx, m.Admins, bson.M{"email": email})
}

func (m *MongoRepo) AdminByID(ctx context.Context, id string) (*models.Admin, error) {
	return findOne[models.Admin](ctx, m.Admins, bson.M{"id": id})
}

func (m *MongoRepo) CreateResetToken(ctx context.Context, t *models.PasswordResetToken) error {
	return insert(ctx, m.ResetTokens, t)
}

func (m *MongoRepo) InvalidateResetTokens(ctx context.Context, email string) error {
	_, err := m.ResetTokens.UpdateMany(ctx,
		bson.M{"email": email, "used": false},
		bson.M{"$set": bson.M{"used": true}})
	return err
}

func (m *MongoRepo) ResetTokenByToken(ctx context.Context, token string) (*models.PasswordResetToken, error) {
	return findOne[models.PasswordResetToken](ctx, m.ResetTokens, bson.M{"token": token})
}

// RedeemResetToken consumes the token, then writes the password hash. A failed
// write puts the token back so it can be used again.
func (m *MongoRepo) RedeemResetToken(ctx context.Context, token, userID, passwordHash string) (bool, error) {
	res, err := m.ResetTokens.UpdateOne(ctx,
		bson.M{"token": token, "used": false},
		bson.M{"$set": bson.M{"used": true}})
	if err != nil {
		return false, err
	}
	if res.ModifiedCount != 1 {
		return false, nil
	}
	if err := m.UpdateCustomerPassword(ctx, userID, passwordHash); err != nil {
		if _, rerr := m.ResetTokens.UpdateOne(ctx,
			bson.M{"token": token},
			bson.M{"$set": bson.M{"used": false}}); rerr != nil {
			return false, errors.Join(err, fmt.Errorf("restore reset token: %w", rerr))
		}
		return false, err
	}
	return true, nil
}

func (m *MongoRepo) ListAddresses(ctx context.Context, userID string) ([]models.Address, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	return findAll[models.Address](ctx, m.Addresses, bson.M{"user_id": userID}, opts)
}

func (m *MongoRepo) CountAddresses(ctx context.Context, userID string) (int64, error) {
	return m.Addresses.CountDocuments(ctx, bson.M{"user_id": userID})
}

func (m *MongoRepo) CreateAddress(ctx context.Context, a *models.Address) error {
	return insert(ctx, m.Addresses, a)
}

func (m *MongoRepo) AddressByID(ctx context.Context, id, userID string) (*models.Address, error) {
	return findOne[models.Address](ctx, m.Addresses, bson.M{"id": id, "user_id": userID})
}

func (m *MongoRepo) SaveAddress(ctx context.Context, a *models.Address) error {
	return replace(ctx, m.Addresses, bson.M{"id": a.ID, "user_id": a.UserID}, a)
}

func (m *MongoRepo) DeleteAddress(ctx context.Context, id, userID string) error {
	return deleteOne(ctx, m.Addresses, bson.M{"id": id, "user_id": userID})
}

func (m *MongoRepo) ClearPrimary(ctx context.Context, userID, exceptID string) error {
	_, err := m.Addresses.UpdateMany(ctx,
		bson.M{"user_id": userID, "id": bson.M{"$ne": exceptID}, "is_primary": true},
		bson.M{"$set": bson.M{"is_primary": false}})
	return err
}

func (m *MongoRepo) SetPrimary(ctx context.Context, id, userID string) error {
	res, err := m.Addresses.UpdateOne(ctx,
		bson.M{"id": id, "user_id": userID},
		bson.M{"$set": bson.M{"is_primary": true}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
