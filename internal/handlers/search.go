package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dheerghayush/naturals/internal/service"
	"github.com/dheerghayush/naturals/internal/util"
)

type SearchHandler struct {
	Catalog *service.CatalogService
}

func (h *SearchHandler) Search(c echo.Context) error {
	limit := util.ParseIntDefault(c.QueryParam("limit"), 0)

	resp, err := h.Catalog.Search(c.Request().Context(), c.QueryParam("q"), limit)
	if err != nil {
		return fail(c, "catalog.search", "search_error", err, "Search failed")
	}
	return c.JSON(http.StatusOK, resp)
}
