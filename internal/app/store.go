package app

import (
	"context"
	"fmt"

	"github.com/dheerghayush/naturals/internal/repo"
	"github.com/dheerghayush/naturals/internal/search"
	"github.com/dheerghayush/naturals/internal/service"
	"github.com/dheerghayush/naturals/pkg/config"
	pkgdb "github.com/dheerghayush/naturals/pkg/db"
)

// OpenStore connects to the store selected by cfg.StoreDriver and brings its
// schema up to date.
func OpenStore(ctx context.Context, cfg config.Config) (service.Store, error) {
	var store service.Store
	switch cfg.StoreDriver {
	case "mongo":
		db, err := pkgdb.OpenMongo(ctx, cfg.MongoURL, cfg.MongoDatabase)
		if err != nil {
			return nil, err
		}
		store = repo.NewMongoRepo(db)
	default:
		db, err := pkgdb.Open(ctx, cfg.StoreDriver, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		store = repo.NewGormRepo(db)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close(context.Background())
		return nil, fmt.Errorf("migrate %s store: %w", cfg.StoreDriver, err)
	}
	return store, nil
}

// OpenIndex returns the product search index, or nil when ES_URL is unset.
func OpenIndex(ctx context.Context, cfg config.Config) (*search.ProductIndex, error) {
	if cfg.ESURL == "" {
		return nil, nil
	}
	es, err := search.NewClient(cfg.ESURL, cfg.ESUsername, cfg.ESPassword)
	if err != nil {
		return nil, err
	}
	idx := search.NewProductIndex(es, cfg.ESIndex)
	if err := idx.EnsureIndex(ctx); err != nil {
		return nil, err
	}
	return idx, nil
}
