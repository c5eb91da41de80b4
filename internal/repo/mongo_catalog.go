package repo

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dheerghayush/naturals/internal/models"
)

func (m *MongoRepo) ListCategories(ctx context.Context, activeOnly bool) ([]models.Category, error) {
	opts := options.Find().SetSort(bson.D{{Key: "sort_order", Value: 1}, {Key: "name", Value: 1}})
	return findAll[models.Category](ctx, m.Categories, activeFilter(bson.M{}, activeOnly), opts)
}

func (m *MongoRepo) CategoryBySlug(ctx context.Context, slug string, activeOnly bool) (*models.Category, error) {
	return findOne[models.Category](ctx, m.Categories, activeFilter(bson.M{"slug": slug}, activeOnly))
}

func (m *MongoRepo) CategoryByID(ctx context.Context, id string) (*models.Category, error) {
	return findOne[models.Category](ctx, m.Categories, bson.M{"id": id})
}

func (m *MongoRepo) CreateCategory(ctx context.Context, c *models.Category) error {
	return insert(ctx, m.Categories, c)
}

func (m *MongoRepo) SaveCategory(ctx context.Context, c *models.Category) error {
	return replace(ctx, m.Categories, bson.M{"id": c.ID}, c)
}

func (m *MongoRepo) CountCategories(ctx context.Context, activeOnly bool) (int64, error) {
	return m.Categories.CountDocuments(ctx, activeFilter(bson.M{}, activeOnly))
}

func (m *MongoRepo) ListProducts(ctx context.Context, f ProductFilter) ([]models.Product, error) {
	filter := activeFilter(bson.M{}, f.ActiveOnly)
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.Bestseller != nil {
		filter["is_bestseller"] = *f.Bestseller
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "id", Value: 1}})
	return findAll[models.Product](ctx, m.Products, filter, opts)
}

func (m *MongoRepo) ProductByID(ctx context.Context, id string, activeOnly bool) (*models.Product, error) {
	return findOne[models.Product](ctx, m.Products, activeFilter(bson.M{"id": id}, activeOnly))
}

func (m *MongoRepo) CreateProduct(ctx context.Context, p *models.Product) error {
	return insert(ctx, m.Products, p)
}

func (m *MongoRepo) SaveProduct(ctx context.Context, p *models.Product) error {
	return replace(ctx, m.Products, bson.M{"id": p.ID}, p)
}

func (m *MongoRepo) DeleteProduct(ctx context.Context, id string) error {
	return deleteOne(ctx, m.Products, bson.M{"id": id})
}

func (m *MongoRepo) CountProducts(ctx context.Context, activeOnly bool) (int64, error) {
	return m.Products.CountDocuments(ctx, activeFilter(bson.M{}, activeOnly))
}

func (m *MongoRepo) SearchProducts(ctx context.Context, query string, limit int) ([]models.Product, error) {
	rx := bson.M{"$regex": regexp.QuoteMeta(query), "$options": "i"}
	filter := bson.M{
		"is_active": true,
		"$or": bson.A{
			bson.M{"name": rx},
			bson.M{"description": rx},
			bson.M{"category": rx},
		},
	}
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}}).SetLimit(int64(limit))
	return findAll[models.Product](ctx, m.Products, filter, opts)
}

func (m *MongoRepo) ReserveStock(ctx context.Context, productID string, qty int) (bool, error) {
	res, err := m.Products.UpdateOne(ctx,
		bson.M{"id": productID, "is_active": true, "stock": bson.M{"$gte": qty}},
		bson.M{"$inc": bson.M{"stock": -qty}})
	if err != nil {
		return false, err
	}
	return res.ModifiedCount == 1, nil
}

func (m *MongoRepo) ReleaseStock(ctx context.Context, productID string, qty int) error {
	_, err := m.Products.UpdateOne(ctx, bson.M{"id": productID}, bson.M{"$inc": bson.M{"stock": qty}})
	return err
}

func (m *MongoRepo) ListBanners(ctx context.Context, activeOnly bool) ([]models.Banner, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "created_at", Value: 1}})
	return findAll[models.Banner](ctx, m.Banners, activeFilter(bson.M{}, activeOnly), opts)
}

func (m *MongoRepo) BannerByID(ctx context.Context, id string) (*models.Banner, error) {
	return findOne[models.Banner](ctx, m.Banners, bson.M{"id": id})
}

func (m *MongoRepo) CreateBanner(ctx context.Context, b *models.Banner) error {
	return insert(ctx, m.Banners, b)
}

func (m *MongoRepo) SaveBanner(ctx context.Context, b *models.Banner) error {
	return replace(ctx, m.Banners, bson.M{"id": b.ID}, b)
}

func (m *MongoRepo) DeleteBanner(ctx context.Context, id string) error {
	return deleteOne(ctx, m.Banners, bson.M{"id": id})
}

func (m *MongoRepo) CountBanners(ctx context.Context) (int64, error) {
	return m.Banners.CountDocuments(ctx, bson.M{})
}

// ReplaceCatalog clears and refills the catalog collections. Mongo deployments
// without replica sets have no multi-document transactions, so a failure
// midway leaves a partially seeded catalog.
func (m *MongoRepo) ReplaceCatalog(ctx context.Context, seed CatalogSeed) error {
	for _, c := range []*mongo.Collection{m.Categories, m.Products, m.Banners} {
		if _, err := c.DeleteMany(ctx, bson.M{}); err != nil {
			return err
		}
	}
	if err := insertMany(ctx, m.Categories, seed.Categories); err != nil {
		return err
	}
	if err := insertMany(ctx, m.Products, seed.Products); err != nil {
		return err
	}
	return insertMany(ctx, m.Banners, seed.Banners)
}

func insertMany[T any](ctx context.Context, coll *mongo.Collection, docs []T) error {
	if len(docs) == 0 {
		return nil
	}
	batch := make([]any, 0, len(docs))
	for i := range docs {
		batch = append(batch, docs[i])
	}
	_, err := coll.InsertMany(ctx, batch)
	return mongoErr(err)
}
