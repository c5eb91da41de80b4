package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dheerghayush/naturals/internal/models"
)

func (m *MongoRepo) CreateReview(ctx context.Context, rv *models.Review) error {
	return insert(ctx, m.Reviews, rv)
}

func (m *MongoRepo) ReviewExists(ctx context.Context, userID, productID, orderID string) (bool, error) {
	n, err := m.Reviews.CountDocuments(ctx,
		bson.M{"user_id": userID, "product_id": productID, "order_id": orderID},
		options.Count().SetLimit(1))
	return n > 0, err
}

func (m *MongoRepo) ListReviewsForProduct(ctx context.Context, productID string, offset, limit int) (int64, []models.Review, error) {
	filter := bson.M{"product_id": productID}
	total, err := m.Reviews.CountDocuments(ctx, filter)
	if err != nil {
		return 0, nil, err
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))
	out, err := findAll[models.Review](ctx, m.Reviews, filter, opts)
	if err != nil {
		return 0, nil, err
	}
	return total, out, nil
}

func (m *MongoRepo) ProductRatings(ctx context.Context, productID string) ([]int, error) {
	opts := options.Find().SetProjection(bson.M{"rating": 1, "_id": 0})
	docs, err := findAll[struct {
		Rating int `bson:"rating"`
	}](ctx, m.Reviews, bson.M{"product_id": productID}, opts)
	if err != nil {
		return nil, err
	}
	out := make([]int, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.Rating)
	}
	return out, nil
}

func (m *MongoRepo) ListReviewsByUser(ctx context.Context, userID string) ([]models.Review, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return findAll[models.Review](ctx, m.Reviews, bson.M{"user_id": userID}, opts)
}

func (m *MongoRepo) ReviewedProductIDs(ctx context.Context, userID, orderID string) ([]string, error) {
	values, err := m.Reviews.Distinct(ctx, "product_id", bson.M{"user_id": userID, "order_id": orderID})
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			ids = append(ids, s)
		}
	}
	return ids, nil
}
