package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dheerghayush/naturals/internal/repo"
	"github.com/dheerghayush/naturals/internal/service"
	"github.com/dheerghayush/naturals/pkg/logging"
)

type AdminHandler struct {
	Dashboard *service.DashboardService
	Seeder    *service.Seeder
	Catalog   *service.CatalogService
	// Seed yields the catalog loaded by SeedData.
	Seed func() (repo.CatalogSeed, error)
}

func (h *AdminHandler) Stats(c echo.Context) error {
	st, err := h.Dashboard.Stats(c.Request().Context())
	if err != nil {
		return fail(c, "admin.dashboard", "dashboard_error", err, "")
	}
	return c.JSON(http.StatusOK, st)
}

// SeedData replaces the catalog with the bundled seed and rebuilds the
// search index when one is configured.
func (h *AdminHandler) SeedData(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.seed_data")

	seed, err := h.Seed()
	if err != nil {
		l.Error("seed_data_error", "status", 500, "reason", "cannot load seed catalog", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load seed data")
	}
	res, err := h.Seeder.SeedCatalog(ctx, seed)
	if err != nil {
		return fail(c, "admin.seed_data", "seed_data_error", err, "Failed to seed data")
	}

	if h.Catalog != nil && h.Catalog.Index != nil {
		if n, err := h.Catalog.Reindex(ctx); err != nil {
			l.Warn("reindex_error", "reason", "search index left stale", "error", err)
		} else {
			l.Info("reindex_success", "products", n)
		}
	}
	l.Info("seed_data_success", "categories", res.Categories, "products", res.Products, "banners", res.Banners)
	return c.JSON(http.StatusOK, res)
}
