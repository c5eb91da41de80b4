package repo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoRepo keeps every aggregate in its own collection, keyed by an
// application-chosen string id.
type MongoRepo struct {
	DB          *mongo.Database
	Users       *mongo.Collection
	Admins      *mongo.Collection
	ResetTokens *mongo.Collection
	Addresses   *mongo.Collection
	Categories  *mongo.Collection
	Products    *mongo.Collection
	Banners     *mongo.Collection
	Orders      *mongo.Collection
	Reviews     *mongo.Collection
}

func NewMongoRepo(db *mongo.Database) *MongoRepo {
	return &MongoRepo{
		DB:          db,
		Users:       db.Collection("users"),
		Admins:      db.Collection("admins"),
		ResetTokens: db.Collection("password_reset_tokens"),
		Addresses:   db.Collection("addresses"),
		Categories:  db.Collection("categories"),
		Products:    db.Collection("products"),
		Banners:     db.Collection("banners"),
		Orders:      db.Collection("orders"),
		Reviews:     db.Collection("reviews"),
	}
}

// Migrate creates the indexes the services rely on for uniqueness.
func (m *MongoRepo) Migrate(ctx context.Context) error {
	unique := options.Index().SetUnique(true)
	specs := []struct {
		coll *mongo.Collection
		keys bson.D
		opts *options.IndexOptions
	}{
		{m.Users, bson.D{{Key: "id", Value: 1}}, unique},
		{m.Users, bson.D{{Key: "email", Value: 1}}, unique},
		{m.Users, bson.D{{Key: "phone", Value: 1}}, unique},
		{m.Admins, bson.D{{Key: "id", Value: 1}}, unique},
		{m.Admins, bson.D{{Key: "email", Value: 1}}, unique},
		{m.ResetTokens, bson.D{{Key: "token", Value: 1}}, unique},
		{m.ResetTokens, bson.D{{Key: "email", Value: 1}, {Key: "used", Value: 1}}, nil},
		{m.Addresses, bson.D{{Key: "user_id", Value: 1}}, nil},
		{m.Categories, bson.D{{Key: "id", Value: 1}}, unique},
		{m.Categories, bson.D{{Key: "slug", Value: 1}}, unique},
		{m.Products, bson.D{{Key: "id", Value: 1}}, unique},
		{m.Products, bson.D{{Key: "category", Value: 1}, {Key: "is_active", Value: 1}}, nil},
		{m.Banners, bson.D{{Key: "id", Value: 1}}, unique},
		{m.Orders, bson.D{{Key: "order_id", Value: 1}}, unique},
		{m.Orders, bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}, nil},
		{m.Reviews, bson.D{{Key: "user_id", Value: 1}, {Key: "product_id", Value: 1}, {Key: "order_id", Value: 1}}, unique},
		{m.Reviews, bson.D{{Key: "product_id", Value: 1}, {Key: "created_at", Value: -1}}, nil},
	}
	for _, s := range specs {
		if _, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: s.keys, Options: s.opts}); err != nil {
			return fmt.Errorf("create index on %s: %w", s.coll.Name(), err)
		}
	}
	return nil
}

func (m *MongoRepo) Ping(ctx context.Context) error {
	return m.DB.Client().Ping(ctx, readpref.Primary())
}

func (m *MongoRepo) Close(ctx context.Context) error {
	return m.DB.Client().Disconnect(ctx)
}

func mongoErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	}
	return err
}

func findOne[T any](ctx context.Context, coll *mongo.Collection, filter any) (*T, error) {
	var out T
	if err := coll.FindOne(ctx, filter).Decode(&out); err != nil {
		return nil, mongoErr(err)
	}
	return &out, nil
}

func findAll[T any](ctx context.Context, coll *mongo.Collection, filter any, opts ...*options.FindOptions) ([]T, error) {
	cur, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func insert(ctx context.Context, coll *mongo.Collection, doc any) error {
	_, err := coll.InsertOne(ctx, doc)
	return mongoErr(err)
}

func replace(ctx context.Context, coll *mongo.Collection, filter, doc any) error {
	res, err := coll.ReplaceOne(ctx, filter, doc)
	if err != nil {
		return mongoErr(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func deleteOne(ctx context.Context, coll *mongo.Collection, filter any) error {
	res, err := coll.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func activeFilter(filter bson.M, activeOnly bool) bson.M {
	if activeOnly {
		filter["is_active"] = true
	}
	return filter
}
