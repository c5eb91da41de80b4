package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dheerghayush/naturals/internal/models"
)

func (m *MongoRepo) CreateOrder(ctx context.Context, o *models.Order) error {
	return insert(ctx, m.Orders, o)
}

func (m *MongoRepo) OrderByID(ctx context.Context, id string) (*models.Order, error) {
	return findOne[models.Order](ctx, m.Orders, bson.M{"order_id": id})
}

func (m *MongoRepo) OrderForUser(ctx context.Context, id, userID string) (*models.Order, error) {
	return findOne[models.Order](ctx, m.Orders, bson.M{"order_id": id, "user_id": userID})
}

func (m *MongoRepo) ListOrdersForUser(ctx context.Context, userID string) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return findAll[models.Order](ctx, m.Orders, bson.M{"user_id": userID}, opts)
}

func (m *MongoRepo) ListOrders(ctx context.Context, f OrderFilter) (int64, []models.Order, error) {
	filter := bson.M{}
	if f.Status != "" {
		filter["order_status"] = f.Status
	}
	total, err := m.Orders.CountDocuments(ctx, filter)
	if err != nil {
		return 0, nil, err
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(f.Offset)).
		SetLimit(int64(f.Limit))
	out, err := findAll[models.Order](ctx, m.Orders, filter, opts)
	if err != nil {
		return 0, nil, err
	}
	return total, out, nil
}

func (m *MongoRepo) UpdateOrderIfStatus(ctx context.Context, o *models.Order, expected string) (bool, error) {
	res, err := m.Orders.ReplaceOne(ctx, bson.M{"order_id": o.ID, "order_status": expected}, o)
	if err != nil {
		return false, mongoErr(err)
	}
	return res.MatchedCount == 1, nil
}

func (m *MongoRepo) CountOrders(ctx context.Context, status string) (int64, error) {
	filter := bson.M{}
	if status != "" {
		filter["order_status"] = status
	}
	return m.Orders.CountDocuments(ctx, filter)
}

func (m *MongoRepo) PaidRevenue(ctx context.Context) (float64, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"payment_status": models.PaymentPaid}},
		{"$group": bson.M{"_id": nil, "total": bson.M{"$sum": "$total"}}},
	}
	cur, err := m.Orders.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cur.Close(ctx)
	var results []struct {
		Total float64 `bson:"total"`
	}
	if err := cur.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}
